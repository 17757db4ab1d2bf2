package appointment

import "errors"

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidTime     = errors.New("invalid time, expected HH:MM")
)
