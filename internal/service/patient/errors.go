package patient

import "errors"

var (
	ErrPatientNotFound    = errors.New("patient not found")
	ErrInvalidDateOfBirth = errors.New("date of birth must be a valid past date")
	ErrInvalidPhone       = errors.New("invalid phone number")
	ErrPatientIDExhausted = errors.New("could not allocate a unique patient id")
)
