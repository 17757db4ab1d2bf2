package patient

import "errors"

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrGoalNotFound    = errors.New("goal not found")
	ErrRecordNotFound  = errors.New("anthropometry record not found")
	ErrNameRequired    = errors.New("name is required")
	ErrEmailRequired   = errors.New("email is required")
	ErrInvalidPhone    = errors.New("invalid phone number")
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")
)
