package diet

import "errors"

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrNoMealPlan      = errors.New("patient has no meal plan")
	ErrInvalidDays     = errors.New("days must be 3, 7 or 15")
)
