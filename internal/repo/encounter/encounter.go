// Code generated by ent, DO NOT EDIT.

package encounter

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the encounter type in the database.
	Label = "encounter"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldEncounterID holds the string denoting the encounter_id field in the database.
	FieldEncounterID = "encounter_id"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldProviderID holds the string denoting the provider_id field in the database.
	FieldProviderID = "provider_id"
	// FieldAppointmentID holds the string denoting the appointment_id field in the database.
	FieldAppointmentID = "appointment_id"
	// FieldEncounterType holds the string denoting the encounter_type field in the database.
	FieldEncounterType = "encounter_type"
	// FieldEncounterDate holds the string denoting the encounter_date field in the database.
	FieldEncounterDate = "encounter_date"
	// FieldChiefComplaint holds the string denoting the chief_complaint field in the database.
	FieldChiefComplaint = "chief_complaint"
	// FieldHistoryOfPresentIllness holds the string denoting the history_of_present_illness field in the database.
	FieldHistoryOfPresentIllness = "history_of_present_illness"
	// FieldPhysicalExamination holds the string denoting the physical_examination field in the database.
	FieldPhysicalExamination = "physical_examination"
	// FieldAssessment holds the string denoting the assessment field in the database.
	FieldAssessment = "assessment"
	// FieldPlan holds the string denoting the plan field in the database.
	FieldPlan = "plan"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldDuration holds the string denoting the duration field in the database.
	FieldDuration = "duration"
	// EdgePatient holds the string denoting the patient edge name in mutations.
	EdgePatient = "patient"
	// EdgeProvider holds the string denoting the provider edge name in mutations.
	EdgeProvider = "provider"
	// Table holds the table name of the encounter in the database.
	Table = "encounters"
	// PatientTable is the table that holds the patient relation/edge.
	PatientTable = "encounters"
	// PatientInverseTable is the table name for the Patient entity.
	// It exists in this package in order to avoid circular dependency with the "patient" package.
	PatientInverseTable = "patients"
	// PatientColumn is the table column denoting the patient relation/edge.
	PatientColumn = "patient_id"
	// ProviderTable is the table that holds the provider relation/edge.
	ProviderTable = "encounters"
	// ProviderInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	ProviderInverseTable = "users"
	// ProviderColumn is the table column denoting the provider relation/edge.
	ProviderColumn = "provider_id"
)

// Columns holds all SQL columns for encounter fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldEncounterID,
	FieldPatientID,
	FieldProviderID,
	FieldAppointmentID,
	FieldEncounterType,
	FieldEncounterDate,
	FieldChiefComplaint,
	FieldHistoryOfPresentIllness,
	FieldPhysicalExamination,
	FieldAssessment,
	FieldPlan,
	FieldNotes,
	FieldStatus,
	FieldDuration,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// EncounterIDValidator is a validator for the "encounter_id" field. It is called by the builders before save.
	EncounterIDValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// EncounterType defines the type for the "encounter_type" enum field.
type EncounterType string

// EncounterType values.
const (
	EncounterTypeConsultation EncounterType = "consultation"
	EncounterTypeFollowUp     EncounterType = "follow-up"
	EncounterTypeEmergency    EncounterType = "emergency"
	EncounterTypeRoutine      EncounterType = "routine"
)

func (et EncounterType) String() string {
	return string(et)
}

// EncounterTypeValidator is a validator for the "encounter_type" field enum values. It is called by the builders before save.
func EncounterTypeValidator(et EncounterType) error {
	switch et {
	case EncounterTypeConsultation, EncounterTypeFollowUp, EncounterTypeEmergency, EncounterTypeRoutine:
		return nil
	default:
		return fmt.Errorf("encounter: invalid enum value for encounter_type field: %q", et)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusCompleted, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("encounter: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Encounter queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByEncounterID orders the results by the encounter_id field.
func ByEncounterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEncounterID, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByProviderID orders the results by the provider_id field.
func ByProviderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProviderID, opts...).ToFunc()
}

// ByAppointmentID orders the results by the appointment_id field.
func ByAppointmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppointmentID, opts...).ToFunc()
}

// ByEncounterType orders the results by the encounter_type field.
func ByEncounterType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEncounterType, opts...).ToFunc()
}

// ByEncounterDate orders the results by the encounter_date field.
func ByEncounterDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEncounterDate, opts...).ToFunc()
}

// ByChiefComplaint orders the results by the chief_complaint field.
func ByChiefComplaint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChiefComplaint, opts...).ToFunc()
}

// ByHistoryOfPresentIllness orders the results by the history_of_present_illness field.
func ByHistoryOfPresentIllness(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHistoryOfPresentIllness, opts...).ToFunc()
}

// ByPhysicalExamination orders the results by the physical_examination field.
func ByPhysicalExamination(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhysicalExamination, opts...).ToFunc()
}

// ByAssessment orders the results by the assessment field.
func ByAssessment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssessment, opts...).ToFunc()
}

// ByPlan orders the results by the plan field.
func ByPlan(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlan, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByDuration orders the results by the duration field.
func ByDuration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDuration, opts...).ToFunc()
}

// ByPatientField orders the results by patient field.
func ByPatientField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPatientStep(), sql.OrderByField(field, opts...))
	}
}

// ByProviderField orders the results by provider field.
func ByProviderField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProviderStep(), sql.OrderByField(field, opts...))
	}
}
func newPatientStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PatientInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
	)
}
func newProviderStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProviderInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProviderTable, ProviderColumn),
	)
}
