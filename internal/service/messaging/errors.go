package messaging

import "errors"

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrEmptyMessage    = errors.New("message text is empty")
)
