// Code generated by ent, DO NOT EDIT.

package medicationmaster

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/caretide/caretide_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldEQ(FieldUpdatedAt, v))
}

// GenericName applies equality check predicate on the "generic_name" field. It's identical to GenericNameEQ.
func GenericName(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldEQ(FieldGenericName, v))
}

// BrandName applies equality check predicate on the "brand_name" field. It's identical to BrandNameEQ.
func BrandName(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldEQ(FieldBrandName, v))
}

// Strength applies equality check predicate on the "strength" field. It's identical to StrengthEQ.
func Strength(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldEQ(FieldStrength, v))
}

// Manufacturer applies equality check predicate on the "manufacturer" field. It's identical to ManufacturerEQ.
func Manufacturer(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldEQ(FieldManufacturer, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldEQ(FieldDescription, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldLTE(FieldUpdatedAt, v))
}

// GenericNameEQ applies the EQ predicate on the "generic_name" field.
func GenericNameEQ(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldEQ(FieldGenericName, v))
}

// GenericNameNEQ applies the NEQ predicate on the "generic_name" field.
func GenericNameNEQ(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldNEQ(FieldGenericName, v))
}

// GenericNameIn applies the In predicate on the "generic_name" field.
func GenericNameIn(vs ...string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldIn(FieldGenericName, vs...))
}

// GenericNameNotIn applies the NotIn predicate on the "generic_name" field.
func GenericNameNotIn(vs ...string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldNotIn(FieldGenericName, vs...))
}

// GenericNameGT applies the GT predicate on the "generic_name" field.
func GenericNameGT(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldGT(FieldGenericName, v))
}

// GenericNameGTE applies the GTE predicate on the "generic_name" field.
func GenericNameGTE(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldGTE(FieldGenericName, v))
}

// GenericNameLT applies the LT predicate on the "generic_name" field.
func GenericNameLT(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldLT(FieldGenericName, v))
}

// GenericNameLTE applies the LTE predicate on the "generic_name" field.
func GenericNameLTE(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldLTE(FieldGenericName, v))
}

// GenericNameContains applies the Contains predicate on the "generic_name" field.
func GenericNameContains(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldContains(FieldGenericName, v))
}

// GenericNameHasPrefix applies the HasPrefix predicate on the "generic_name" field.
func GenericNameHasPrefix(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldHasPrefix(FieldGenericName, v))
}

// GenericNameHasSuffix applies the HasSuffix predicate on the "generic_name" field.
func GenericNameHasSuffix(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldHasSuffix(FieldGenericName, v))
}

// GenericNameEqualFold applies the EqualFold predicate on the "generic_name" field.
func GenericNameEqualFold(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldEqualFold(FieldGenericName, v))
}

// GenericNameContainsFold applies the ContainsFold predicate on the "generic_name" field.
func GenericNameContainsFold(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldContainsFold(FieldGenericName, v))
}

// BrandNameEQ applies the EQ predicate on the "brand_name" field.
func BrandNameEQ(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldEQ(FieldBrandName, v))
}

// BrandNameNEQ applies the NEQ predicate on the "brand_name" field.
func BrandNameNEQ(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldNEQ(FieldBrandName, v))
}

// BrandNameIn applies the In predicate on the "brand_name" field.
func BrandNameIn(vs ...string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldIn(FieldBrandName, vs...))
}

// BrandNameNotIn applies the NotIn predicate on the "brand_name" field.
func BrandNameNotIn(vs ...string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldNotIn(FieldBrandName, vs...))
}

// BrandNameGT applies the GT predicate on the "brand_name" field.
func BrandNameGT(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldGT(FieldBrandName, v))
}

// BrandNameGTE applies the GTE predicate on the "brand_name" field.
func BrandNameGTE(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldGTE(FieldBrandName, v))
}

// BrandNameLT applies the LT predicate on the "brand_name" field.
func BrandNameLT(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldLT(FieldBrandName, v))
}

// BrandNameLTE applies the LTE predicate on the "brand_name" field.
func BrandNameLTE(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldLTE(FieldBrandName, v))
}

// BrandNameContains applies the Contains predicate on the "brand_name" field.
func BrandNameContains(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldContains(FieldBrandName, v))
}

// BrandNameHasPrefix applies the HasPrefix predicate on the "brand_name" field.
func BrandNameHasPrefix(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldHasPrefix(FieldBrandName, v))
}

// BrandNameHasSuffix applies the HasSuffix predicate on the "brand_name" field.
func BrandNameHasSuffix(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldHasSuffix(FieldBrandName, v))
}

// BrandNameIsNil applies the IsNil predicate on the "brand_name" field.
func BrandNameIsNil() predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldIsNull(FieldBrandName))
}

// BrandNameNotNil applies the NotNil predicate on the "brand_name" field.
func BrandNameNotNil() predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldNotNull(FieldBrandName))
}

// BrandNameEqualFold applies the EqualFold predicate on the "brand_name" field.
func BrandNameEqualFold(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldEqualFold(FieldBrandName, v))
}

// BrandNameContainsFold applies the ContainsFold predicate on the "brand_name" field.
func BrandNameContainsFold(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldContainsFold(FieldBrandName, v))
}

// DosageFormEQ applies the EQ predicate on the "dosage_form" field.
func DosageFormEQ(v DosageForm) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldEQ(FieldDosageForm, v))
}

// DosageFormNEQ applies the NEQ predicate on the "dosage_form" field.
func DosageFormNEQ(v DosageForm) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldNEQ(FieldDosageForm, v))
}

// DosageFormIn applies the In predicate on the "dosage_form" field.
func DosageFormIn(vs ...DosageForm) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldIn(FieldDosageForm, vs...))
}

// DosageFormNotIn applies the NotIn predicate on the "dosage_form" field.
func DosageFormNotIn(vs ...DosageForm) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldNotIn(FieldDosageForm, vs...))
}

// StrengthEQ applies the EQ predicate on the "strength" field.
func StrengthEQ(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldEQ(FieldStrength, v))
}

// StrengthNEQ applies the NEQ predicate on the "strength" field.
func StrengthNEQ(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldNEQ(FieldStrength, v))
}

// StrengthIn applies the In predicate on the "strength" field.
func StrengthIn(vs ...string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldIn(FieldStrength, vs...))
}

// StrengthNotIn applies the NotIn predicate on the "strength" field.
func StrengthNotIn(vs ...string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldNotIn(FieldStrength, vs...))
}

// StrengthGT applies the GT predicate on the "strength" field.
func StrengthGT(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldGT(FieldStrength, v))
}

// StrengthGTE applies the GTE predicate on the "strength" field.
func StrengthGTE(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldGTE(FieldStrength, v))
}

// StrengthLT applies the LT predicate on the "strength" field.
func StrengthLT(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldLT(FieldStrength, v))
}

// StrengthLTE applies the LTE predicate on the "strength" field.
func StrengthLTE(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldLTE(FieldStrength, v))
}

// StrengthContains applies the Contains predicate on the "strength" field.
func StrengthContains(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldContains(FieldStrength, v))
}

// StrengthHasPrefix applies the HasPrefix predicate on the "strength" field.
func StrengthHasPrefix(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldHasPrefix(FieldStrength, v))
}

// StrengthHasSuffix applies the HasSuffix predicate on the "strength" field.
func StrengthHasSuffix(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldHasSuffix(FieldStrength, v))
}

// StrengthEqualFold applies the EqualFold predicate on the "strength" field.
func StrengthEqualFold(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldEqualFold(FieldStrength, v))
}

// StrengthContainsFold applies the ContainsFold predicate on the "strength" field.
func StrengthContainsFold(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldContainsFold(FieldStrength, v))
}

// ManufacturerEQ applies the EQ predicate on the "manufacturer" field.
func ManufacturerEQ(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldEQ(FieldManufacturer, v))
}

// ManufacturerNEQ applies the NEQ predicate on the "manufacturer" field.
func ManufacturerNEQ(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldNEQ(FieldManufacturer, v))
}

// ManufacturerIn applies the In predicate on the "manufacturer" field.
func ManufacturerIn(vs ...string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldIn(FieldManufacturer, vs...))
}

// ManufacturerNotIn applies the NotIn predicate on the "manufacturer" field.
func ManufacturerNotIn(vs ...string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldNotIn(FieldManufacturer, vs...))
}

// ManufacturerGT applies the GT predicate on the "manufacturer" field.
func ManufacturerGT(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldGT(FieldManufacturer, v))
}

// ManufacturerGTE applies the GTE predicate on the "manufacturer" field.
func ManufacturerGTE(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldGTE(FieldManufacturer, v))
}

// ManufacturerLT applies the LT predicate on the "manufacturer" field.
func ManufacturerLT(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldLT(FieldManufacturer, v))
}

// ManufacturerLTE applies the LTE predicate on the "manufacturer" field.
func ManufacturerLTE(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldLTE(FieldManufacturer, v))
}

// ManufacturerContains applies the Contains predicate on the "manufacturer" field.
func ManufacturerContains(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldContains(FieldManufacturer, v))
}

// ManufacturerHasPrefix applies the HasPrefix predicate on the "manufacturer" field.
func ManufacturerHasPrefix(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldHasPrefix(FieldManufacturer, v))
}

// ManufacturerHasSuffix applies the HasSuffix predicate on the "manufacturer" field.
func ManufacturerHasSuffix(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldHasSuffix(FieldManufacturer, v))
}

// ManufacturerIsNil applies the IsNil predicate on the "manufacturer" field.
func ManufacturerIsNil() predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldIsNull(FieldManufacturer))
}

// ManufacturerNotNil applies the NotNil predicate on the "manufacturer" field.
func ManufacturerNotNil() predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldNotNull(FieldManufacturer))
}

// ManufacturerEqualFold applies the EqualFold predicate on the "manufacturer" field.
func ManufacturerEqualFold(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldEqualFold(FieldManufacturer, v))
}

// ManufacturerContainsFold applies the ContainsFold predicate on the "manufacturer" field.
func ManufacturerContainsFold(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldContainsFold(FieldManufacturer, v))
}

// ClassificationEQ applies the EQ predicate on the "classification" field.
func ClassificationEQ(v Classification) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldEQ(FieldClassification, v))
}

// ClassificationNEQ applies the NEQ predicate on the "classification" field.
func ClassificationNEQ(v Classification) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldNEQ(FieldClassification, v))
}

// ClassificationIn applies the In predicate on the "classification" field.
func ClassificationIn(vs ...Classification) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldIn(FieldClassification, vs...))
}

// ClassificationNotIn applies the NotIn predicate on the "classification" field.
func ClassificationNotIn(vs ...Classification) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldNotIn(FieldClassification, vs...))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldContainsFold(FieldDescription, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.FieldNEQ(FieldIsActive, v))
}

// HasPatientMedications applies the HasEdge predicate on the "patient_medications" edge.
func HasPatientMedications() predicate.MedicationMaster {
	return predicate.MedicationMaster(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PatientMedicationsTable, PatientMedicationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientMedicationsWith applies the HasEdge predicate on the "patient_medications" edge with a given conditions (other predicates).
func HasPatientMedicationsWith(preds ...predicate.PatientMedication) predicate.MedicationMaster {
	return predicate.MedicationMaster(func(s *sql.Selector) {
		step := newPatientMedicationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MedicationMaster) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MedicationMaster) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MedicationMaster) predicate.MedicationMaster {
	return predicate.MedicationMaster(sql.NotPredicates(p))
}
