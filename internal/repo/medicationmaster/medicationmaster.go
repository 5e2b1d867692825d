// Code generated by ent, DO NOT EDIT.

package medicationmaster

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the medicationmaster type in the database.
	Label = "medication_master"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldGenericName holds the string denoting the generic_name field in the database.
	FieldGenericName = "generic_name"
	// FieldBrandName holds the string denoting the brand_name field in the database.
	FieldBrandName = "brand_name"
	// FieldDosageForm holds the string denoting the dosage_form field in the database.
	FieldDosageForm = "dosage_form"
	// FieldStrength holds the string denoting the strength field in the database.
	FieldStrength = "strength"
	// FieldManufacturer holds the string denoting the manufacturer field in the database.
	FieldManufacturer = "manufacturer"
	// FieldClassification holds the string denoting the classification field in the database.
	FieldClassification = "classification"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// EdgePatientMedications holds the string denoting the patient_medications edge name in mutations.
	EdgePatientMedications = "patient_medications"
	// Table holds the table name of the medicationmaster in the database.
	Table = "medication_masters"
	// PatientMedicationsTable is the table that holds the patient_medications relation/edge.
	PatientMedicationsTable = "patient_medications"
	// PatientMedicationsInverseTable is the table name for the PatientMedication entity.
	// It exists in this package in order to avoid circular dependency with the "patientmedication" package.
	PatientMedicationsInverseTable = "patient_medications"
	// PatientMedicationsColumn is the table column denoting the patient_medications relation/edge.
	PatientMedicationsColumn = "medication_id"
)

// Columns holds all SQL columns for medicationmaster fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldGenericName,
	FieldBrandName,
	FieldDosageForm,
	FieldStrength,
	FieldManufacturer,
	FieldClassification,
	FieldDescription,
	FieldIsActive,
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
	// GenericNameValidator is a validator for the "generic_name" field. It is called by the builders before save.
	GenericNameValidator func(string) error
	// BrandNameValidator is a validator for the "brand_name" field. It is called by the builders before save.
	BrandNameValidator func(string) error
	// StrengthValidator is a validator for the "strength" field. It is called by the builders before save.
	StrengthValidator func(string) error
	// ManufacturerValidator is a validator for the "manufacturer" field. It is called by the builders before save.
	ManufacturerValidator func(string) error
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// DosageForm defines the type for the "dosage_form" enum field.
type DosageForm string

// DosageForm values.
const (
	DosageFormTablet    DosageForm = "tablet"
	DosageFormCapsule   DosageForm = "capsule"
	DosageFormSyrup     DosageForm = "syrup"
	DosageFormInjection DosageForm = "injection"
	DosageFormInhaler   DosageForm = "inhaler"
	DosageFormCream     DosageForm = "cream"
	DosageFormDrops     DosageForm = "drops"
	DosageFormPatch     DosageForm = "patch"
)

func (df DosageForm) String() string {
	return string(df)
}

// DosageFormValidator is a validator for the "dosage_form" field enum values. It is called by the builders before save.
func DosageFormValidator(df DosageForm) error {
	switch df {
	case DosageFormTablet, DosageFormCapsule, DosageFormSyrup, DosageFormInjection, DosageFormInhaler, DosageFormCream, DosageFormDrops, DosageFormPatch:
		return nil
	default:
		return fmt.Errorf("medicationmaster: invalid enum value for dosage_form field: %q", df)
	}
}

// Classification defines the type for the "classification" enum field.
type Classification string

// ClassificationOther is the default value of the Classification enum.
const DefaultClassification = ClassificationOther

// Classification values.
const (
	ClassificationAntibiotic       Classification = "antibiotic"
	ClassificationAnalgesic        Classification = "analgesic"
	ClassificationAntihypertensive Classification = "antihypertensive"
	ClassificationAntidiabetic     Classification = "antidiabetic"
	ClassificationAntihistamine    Classification = "antihistamine"
	ClassificationOther            Classification = "other"
)

func (c Classification) String() string {
	return string(c)
}

// ClassificationValidator is a validator for the "classification" field enum values. It is called by the builders before save.
func ClassificationValidator(c Classification) error {
	switch c {
	case ClassificationAntibiotic, ClassificationAnalgesic, ClassificationAntihypertensive, ClassificationAntidiabetic, ClassificationAntihistamine, ClassificationOther:
		return nil
	default:
		return fmt.Errorf("medicationmaster: invalid enum value for classification field: %q", c)
	}
}

// OrderOption defines the ordering options for the MedicationMaster queries.
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

// ByGenericName orders the results by the generic_name field.
func ByGenericName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenericName, opts...).ToFunc()
}

// ByBrandName orders the results by the brand_name field.
func ByBrandName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBrandName, opts...).ToFunc()
}

// ByDosageForm orders the results by the dosage_form field.
func ByDosageForm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDosageForm, opts...).ToFunc()
}

// ByStrength orders the results by the strength field.
func ByStrength(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrength, opts...).ToFunc()
}

// ByManufacturer orders the results by the manufacturer field.
func ByManufacturer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldManufacturer, opts...).ToFunc()
}

// ByClassification orders the results by the classification field.
func ByClassification(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassification, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByPatientMedicationsCount orders the results by patient_medications count.
func ByPatientMedicationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPatientMedicationsStep(), opts...)
	}
}

// ByPatientMedications orders the results by patient_medications terms.
func ByPatientMedications(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPatientMedicationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPatientMedicationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PatientMedicationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PatientMedicationsTable, PatientMedicationsColumn),
	)
}
