// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/caretide/caretide_backend/internal/repo/medicationmaster"
	"github.com/caretide/caretide_backend/internal/repo/patient"
	"github.com/caretide/caretide_backend/internal/repo/patientmedication"
	"github.com/caretide/caretide_backend/internal/repo/user"
	"github.com/google/uuid"
)

// PatientMedication is the model entity for the PatientMedication schema.
type PatientMedication struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → patients.id
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// FK → medication_masters.id
	MedicationID uuid.UUID `json:"medication_id,omitempty"`
	// FK → users.id (prescriber)
	ProviderID uuid.UUID `json:"provider_id,omitempty"`
	// Dosage holds the value of the "dosage" field.
	Dosage string `json:"dosage,omitempty"`
	// e.g. twice daily, every 8 hours
	Frequency string `json:"frequency,omitempty"`
	// e.g. oral, IV, topical
	Route *string `json:"route,omitempty"`
	// StartDate holds the value of the "start_date" field.
	StartDate time.Time `json:"start_date,omitempty"`
	// EndDate holds the value of the "end_date" field.
	EndDate *time.Time `json:"end_date,omitempty"`
	// Status holds the value of the "status" field.
	Status patientmedication.Status `json:"status,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason *string `json:"reason,omitempty"`
	// Instructions holds the value of the "instructions" field.
	Instructions *string `json:"instructions,omitempty"`
	// Encounter this prescription was written in
	EncounterID *uuid.UUID `json:"encounter_id,omitempty"`
	// AdverseReactions holds the value of the "adverse_reactions" field.
	AdverseReactions *string `json:"adverse_reactions,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PatientMedicationQuery when eager-loading is set.
	Edges        PatientMedicationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PatientMedicationEdges holds the relations/edges for other nodes in the graph.
type PatientMedicationEdges struct {
	// Patient holds the value of the patient edge.
	Patient *Patient `json:"patient,omitempty"`
	// Medication holds the value of the medication edge.
	Medication *MedicationMaster `json:"medication,omitempty"`
	// Provider holds the value of the provider edge.
	Provider *User `json:"provider,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatientMedicationEdges) PatientOrErr() (*Patient, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// MedicationOrErr returns the Medication value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatientMedicationEdges) MedicationOrErr() (*MedicationMaster, error) {
	if e.Medication != nil {
		return e.Medication, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: medicationmaster.Label}
	}
	return nil, &NotLoadedError{edge: "medication"}
}

// ProviderOrErr returns the Provider value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatientMedicationEdges) ProviderOrErr() (*User, error) {
	if e.Provider != nil {
		return e.Provider, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "provider"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PatientMedication) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case patientmedication.FieldEncounterID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case patientmedication.FieldDosage, patientmedication.FieldFrequency, patientmedication.FieldRoute, patientmedication.FieldStatus, patientmedication.FieldReason, patientmedication.FieldInstructions, patientmedication.FieldAdverseReactions:
			values[i] = new(sql.NullString)
		case patientmedication.FieldCreatedAt, patientmedication.FieldUpdatedAt, patientmedication.FieldStartDate, patientmedication.FieldEndDate:
			values[i] = new(sql.NullTime)
		case patientmedication.FieldID, patientmedication.FieldPatientID, patientmedication.FieldMedicationID, patientmedication.FieldProviderID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PatientMedication fields.
func (_m *PatientMedication) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case patientmedication.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case patientmedication.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case patientmedication.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case patientmedication.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case patientmedication.FieldMedicationID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field medication_id", values[i])
			} else if value != nil {
				_m.MedicationID = *value
			}
		case patientmedication.FieldProviderID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field provider_id", values[i])
			} else if value != nil {
				_m.ProviderID = *value
			}
		case patientmedication.FieldDosage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dosage", values[i])
			} else if value.Valid {
				_m.Dosage = value.String
			}
		case patientmedication.FieldFrequency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field frequency", values[i])
			} else if value.Valid {
				_m.Frequency = value.String
			}
		case patientmedication.FieldRoute:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field route", values[i])
			} else if value.Valid {
				_m.Route = new(string)
				*_m.Route = value.String
			}
		case patientmedication.FieldStartDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_date", values[i])
			} else if value.Valid {
				_m.StartDate = value.Time
			}
		case patientmedication.FieldEndDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_date", values[i])
			} else if value.Valid {
				_m.EndDate = new(time.Time)
				*_m.EndDate = value.Time
			}
		case patientmedication.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = patientmedication.Status(value.String)
			}
		case patientmedication.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = new(string)
				*_m.Reason = value.String
			}
		case patientmedication.FieldInstructions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instructions", values[i])
			} else if value.Valid {
				_m.Instructions = new(string)
				*_m.Instructions = value.String
			}
		case patientmedication.FieldEncounterID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field encounter_id", values[i])
			} else if value.Valid {
				_m.EncounterID = new(uuid.UUID)
				*_m.EncounterID = *value.S.(*uuid.UUID)
			}
		case patientmedication.FieldAdverseReactions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field adverse_reactions", values[i])
			} else if value.Valid {
				_m.AdverseReactions = new(string)
				*_m.AdverseReactions = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PatientMedication.
// This includes values selected through modifiers, order, etc.
func (_m *PatientMedication) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPatient queries the "patient" edge of the PatientMedication entity.
func (_m *PatientMedication) QueryPatient() *PatientQuery {
	return NewPatientMedicationClient(_m.config).QueryPatient(_m)
}

// QueryMedication queries the "medication" edge of the PatientMedication entity.
func (_m *PatientMedication) QueryMedication() *MedicationMasterQuery {
	return NewPatientMedicationClient(_m.config).QueryMedication(_m)
}

// QueryProvider queries the "provider" edge of the PatientMedication entity.
func (_m *PatientMedication) QueryProvider() *UserQuery {
	return NewPatientMedicationClient(_m.config).QueryProvider(_m)
}

// Update returns a builder for updating this PatientMedication.
// Note that you need to call PatientMedication.Unwrap() before calling this method if this PatientMedication
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PatientMedication) Update() *PatientMedicationUpdateOne {
	return NewPatientMedicationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PatientMedication entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PatientMedication) Unwrap() *PatientMedication {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: PatientMedication is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PatientMedication) String() string {
	var builder strings.Builder
	builder.WriteString("PatientMedication(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("medication_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.MedicationID))
	builder.WriteString(", ")
	builder.WriteString("provider_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProviderID))
	builder.WriteString(", ")
	builder.WriteString("dosage=")
	builder.WriteString(_m.Dosage)
	builder.WriteString(", ")
	builder.WriteString("frequency=")
	builder.WriteString(_m.Frequency)
	builder.WriteString(", ")
	if v := _m.Route; v != nil {
		builder.WriteString("route=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("start_date=")
	builder.WriteString(_m.StartDate.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.EndDate; v != nil {
		builder.WriteString("end_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.Reason; v != nil {
		builder.WriteString("reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Instructions; v != nil {
		builder.WriteString("instructions=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EncounterID; v != nil {
		builder.WriteString("encounter_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AdverseReactions; v != nil {
		builder.WriteString("adverse_reactions=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// PatientMedications is a parsable slice of PatientMedication.
type PatientMedications []*PatientMedication
