// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/caretide/caretide_backend/internal/repo/encounter"
	"github.com/caretide/caretide_backend/internal/repo/patient"
	"github.com/caretide/caretide_backend/internal/repo/user"
	"github.com/google/uuid"
)

// Encounter is the model entity for the Encounter schema.
type Encounter struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Business identifier, ENC + YYYYMMDD + 4-digit daily sequence
	EncounterID string `json:"encounter_id,omitempty"`
	// FK → patients.id
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// FK → users.id
	ProviderID uuid.UUID `json:"provider_id,omitempty"`
	// Back-reference to the appointment this visit came from
	AppointmentID *uuid.UUID `json:"appointment_id,omitempty"`
	// EncounterType holds the value of the "encounter_type" field.
	EncounterType encounter.EncounterType `json:"encounter_type,omitempty"`
	// EncounterDate holds the value of the "encounter_date" field.
	EncounterDate time.Time `json:"encounter_date,omitempty"`
	// ChiefComplaint holds the value of the "chief_complaint" field.
	ChiefComplaint *string `json:"chief_complaint,omitempty"`
	// HistoryOfPresentIllness holds the value of the "history_of_present_illness" field.
	HistoryOfPresentIllness *string `json:"history_of_present_illness,omitempty"`
	// PhysicalExamination holds the value of the "physical_examination" field.
	PhysicalExamination *string `json:"physical_examination,omitempty"`
	// Assessment holds the value of the "assessment" field.
	Assessment *string `json:"assessment,omitempty"`
	// Plan holds the value of the "plan" field.
	Plan *string `json:"plan,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// Status holds the value of the "status" field.
	Status encounter.Status `json:"status,omitempty"`
	// Minutes
	Duration *int `json:"duration,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EncounterQuery when eager-loading is set.
	Edges        EncounterEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EncounterEdges holds the relations/edges for other nodes in the graph.
type EncounterEdges struct {
	// Patient holds the value of the patient edge.
	Patient *Patient `json:"patient,omitempty"`
	// Provider holds the value of the provider edge.
	Provider *User `json:"provider,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EncounterEdges) PatientOrErr() (*Patient, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// ProviderOrErr returns the Provider value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EncounterEdges) ProviderOrErr() (*User, error) {
	if e.Provider != nil {
		return e.Provider, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "provider"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Encounter) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case encounter.FieldAppointmentID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case encounter.FieldDuration:
			values[i] = new(sql.NullInt64)
		case encounter.FieldEncounterID, encounter.FieldEncounterType, encounter.FieldChiefComplaint, encounter.FieldHistoryOfPresentIllness, encounter.FieldPhysicalExamination, encounter.FieldAssessment, encounter.FieldPlan, encounter.FieldNotes, encounter.FieldStatus:
			values[i] = new(sql.NullString)
		case encounter.FieldCreatedAt, encounter.FieldUpdatedAt, encounter.FieldEncounterDate:
			values[i] = new(sql.NullTime)
		case encounter.FieldID, encounter.FieldPatientID, encounter.FieldProviderID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Encounter fields.
func (_m *Encounter) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case encounter.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case encounter.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case encounter.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case encounter.FieldEncounterID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field encounter_id", values[i])
			} else if value.Valid {
				_m.EncounterID = value.String
			}
		case encounter.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case encounter.FieldProviderID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field provider_id", values[i])
			} else if value != nil {
				_m.ProviderID = *value
			}
		case encounter.FieldAppointmentID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field appointment_id", values[i])
			} else if value.Valid {
				_m.AppointmentID = new(uuid.UUID)
				*_m.AppointmentID = *value.S.(*uuid.UUID)
			}
		case encounter.FieldEncounterType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field encounter_type", values[i])
			} else if value.Valid {
				_m.EncounterType = encounter.EncounterType(value.String)
			}
		case encounter.FieldEncounterDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field encounter_date", values[i])
			} else if value.Valid {
				_m.EncounterDate = value.Time
			}
		case encounter.FieldChiefComplaint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chief_complaint", values[i])
			} else if value.Valid {
				_m.ChiefComplaint = new(string)
				*_m.ChiefComplaint = value.String
			}
		case encounter.FieldHistoryOfPresentIllness:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field history_of_present_illness", values[i])
			} else if value.Valid {
				_m.HistoryOfPresentIllness = new(string)
				*_m.HistoryOfPresentIllness = value.String
			}
		case encounter.FieldPhysicalExamination:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field physical_examination", values[i])
			} else if value.Valid {
				_m.PhysicalExamination = new(string)
				*_m.PhysicalExamination = value.String
			}
		case encounter.FieldAssessment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assessment", values[i])
			} else if value.Valid {
				_m.Assessment = new(string)
				*_m.Assessment = value.String
			}
		case encounter.FieldPlan:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan", values[i])
			} else if value.Valid {
				_m.Plan = new(string)
				*_m.Plan = value.String
			}
		case encounter.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case encounter.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = encounter.Status(value.String)
			}
		case encounter.FieldDuration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration", values[i])
			} else if value.Valid {
				_m.Duration = new(int)
				*_m.Duration = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Encounter.
// This includes values selected through modifiers, order, etc.
func (_m *Encounter) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPatient queries the "patient" edge of the Encounter entity.
func (_m *Encounter) QueryPatient() *PatientQuery {
	return NewEncounterClient(_m.config).QueryPatient(_m)
}

// QueryProvider queries the "provider" edge of the Encounter entity.
func (_m *Encounter) QueryProvider() *UserQuery {
	return NewEncounterClient(_m.config).QueryProvider(_m)
}

// Update returns a builder for updating this Encounter.
// Note that you need to call Encounter.Unwrap() before calling this method if this Encounter
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Encounter) Update() *EncounterUpdateOne {
	return NewEncounterClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Encounter entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Encounter) Unwrap() *Encounter {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Encounter is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Encounter) String() string {
	var builder strings.Builder
	builder.WriteString("Encounter(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("encounter_id=")
	builder.WriteString(_m.EncounterID)
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("provider_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProviderID))
	builder.WriteString(", ")
	if v := _m.AppointmentID; v != nil {
		builder.WriteString("appointment_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("encounter_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.EncounterType))
	builder.WriteString(", ")
	builder.WriteString("encounter_date=")
	builder.WriteString(_m.EncounterDate.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ChiefComplaint; v != nil {
		builder.WriteString("chief_complaint=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.HistoryOfPresentIllness; v != nil {
		builder.WriteString("history_of_present_illness=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PhysicalExamination; v != nil {
		builder.WriteString("physical_examination=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Assessment; v != nil {
		builder.WriteString("assessment=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Plan; v != nil {
		builder.WriteString("plan=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.Duration; v != nil {
		builder.WriteString("duration=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Encounters is a parsable slice of Encounter.
type Encounters []*Encounter
