// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// Encounter is the predicate function for encounter builders.
type Encounter func(*sql.Selector)

// MedicationMaster is the predicate function for medicationmaster builders.
type MedicationMaster func(*sql.Selector)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)

// PatientMedication is the predicate function for patientmedication builders.
type PatientMedication func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
