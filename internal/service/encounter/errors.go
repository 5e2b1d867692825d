package encounter

import "errors"

var (
	ErrEncounterNotFound = errors.New("encounter not found")
	ErrPatientNotFound   = errors.New("patient not found")
	ErrProviderNotFound  = errors.New("provider not found")
	ErrInvalidDate       = errors.New("invalid encounter date")
	ErrIDConflict        = errors.New("could not allocate a unique encounter id")
)
