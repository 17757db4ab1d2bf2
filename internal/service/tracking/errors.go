package tracking

import "errors"

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrInvalidGoal     = errors.New("water goal must be positive")
)
