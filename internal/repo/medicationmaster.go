// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/caretide/caretide_backend/internal/repo/medicationmaster"
	"github.com/google/uuid"
)

// MedicationMaster is the model entity for the MedicationMaster schema.
type MedicationMaster struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// GenericName holds the value of the "generic_name" field.
	GenericName string `json:"generic_name,omitempty"`
	// BrandName holds the value of the "brand_name" field.
	BrandName *string `json:"brand_name,omitempty"`
	// DosageForm holds the value of the "dosage_form" field.
	DosageForm medicationmaster.DosageForm `json:"dosage_form,omitempty"`
	// e.g. 500mg, 10mg/ml
	Strength string `json:"strength,omitempty"`
	// Manufacturer holds the value of the "manufacturer" field.
	Manufacturer *string `json:"manufacturer,omitempty"`
	// Classification holds the value of the "classification" field.
	Classification medicationmaster.Classification `json:"classification,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MedicationMasterQuery when eager-loading is set.
	Edges        MedicationMasterEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MedicationMasterEdges holds the relations/edges for other nodes in the graph.
type MedicationMasterEdges struct {
	// PatientMedications holds the value of the patient_medications edge.
	PatientMedications []*PatientMedication `json:"patient_medications,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PatientMedicationsOrErr returns the PatientMedications value or an error if the edge
// was not loaded in eager-loading.
func (e MedicationMasterEdges) PatientMedicationsOrErr() ([]*PatientMedication, error) {
	if e.loadedTypes[0] {
		return e.PatientMedications, nil
	}
	return nil, &NotLoadedError{edge: "patient_medications"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MedicationMaster) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case medicationmaster.FieldIsActive:
			values[i] = new(sql.NullBool)
		case medicationmaster.FieldGenericName, medicationmaster.FieldBrandName, medicationmaster.FieldDosageForm, medicationmaster.FieldStrength, medicationmaster.FieldManufacturer, medicationmaster.FieldClassification, medicationmaster.FieldDescription:
			values[i] = new(sql.NullString)
		case medicationmaster.FieldCreatedAt, medicationmaster.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case medicationmaster.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MedicationMaster fields.
func (_m *MedicationMaster) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case medicationmaster.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case medicationmaster.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case medicationmaster.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case medicationmaster.FieldGenericName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field generic_name", values[i])
			} else if value.Valid {
				_m.GenericName = value.String
			}
		case medicationmaster.FieldBrandName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field brand_name", values[i])
			} else if value.Valid {
				_m.BrandName = new(string)
				*_m.BrandName = value.String
			}
		case medicationmaster.FieldDosageForm:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dosage_form", values[i])
			} else if value.Valid {
				_m.DosageForm = medicationmaster.DosageForm(value.String)
			}
		case medicationmaster.FieldStrength:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field strength", values[i])
			} else if value.Valid {
				_m.Strength = value.String
			}
		case medicationmaster.FieldManufacturer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field manufacturer", values[i])
			} else if value.Valid {
				_m.Manufacturer = new(string)
				*_m.Manufacturer = value.String
			}
		case medicationmaster.FieldClassification:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field classification", values[i])
			} else if value.Valid {
				_m.Classification = medicationmaster.Classification(value.String)
			}
		case medicationmaster.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case medicationmaster.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MedicationMaster.
// This includes values selected through modifiers, order, etc.
func (_m *MedicationMaster) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPatientMedications queries the "patient_medications" edge of the MedicationMaster entity.
func (_m *MedicationMaster) QueryPatientMedications() *PatientMedicationQuery {
	return NewMedicationMasterClient(_m.config).QueryPatientMedications(_m)
}

// Update returns a builder for updating this MedicationMaster.
// Note that you need to call MedicationMaster.Unwrap() before calling this method if this MedicationMaster
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MedicationMaster) Update() *MedicationMasterUpdateOne {
	return NewMedicationMasterClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MedicationMaster entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MedicationMaster) Unwrap() *MedicationMaster {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: MedicationMaster is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MedicationMaster) String() string {
	var builder strings.Builder
	builder.WriteString("MedicationMaster(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("generic_name=")
	builder.WriteString(_m.GenericName)
	builder.WriteString(", ")
	if v := _m.BrandName; v != nil {
		builder.WriteString("brand_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("dosage_form=")
	builder.WriteString(fmt.Sprintf("%v", _m.DosageForm))
	builder.WriteString(", ")
	builder.WriteString("strength=")
	builder.WriteString(_m.Strength)
	builder.WriteString(", ")
	if v := _m.Manufacturer; v != nil {
		builder.WriteString("manufacturer=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("classification=")
	builder.WriteString(fmt.Sprintf("%v", _m.Classification))
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteByte(')')
	return builder.String()
}

// MedicationMasters is a parsable slice of MedicationMaster.
type MedicationMasters []*MedicationMaster
