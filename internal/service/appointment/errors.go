package appointment

import "errors"

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrProviderNotFound    = errors.New("provider not found")
	ErrEncounterNotFound   = errors.New("encounter not found")
	ErrInvalidDate         = errors.New("invalid appointment date")
	ErrInvalidTime         = errors.New("appointment time must be HH:MM")
	ErrIDConflict          = errors.New("could not allocate a unique appointment id")
)
