package medication

import "errors"

var (
	ErrMedicationNotFound   = errors.New("medication not found")
	ErrPrescriptionNotFound = errors.New("prescription not found")
	ErrPatientNotFound      = errors.New("patient not found")
	ErrProviderNotFound     = errors.New("provider not found")
	ErrGenericNameRequired  = errors.New("generic name is required")
	ErrInvalidDate          = errors.New("invalid date")
)
