// Code generated by ent, DO NOT EDIT.

package patientmedication

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/caretide/caretide_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEQ(FieldUpdatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEQ(FieldPatientID, v))
}

// MedicationID applies equality check predicate on the "medication_id" field. It's identical to MedicationIDEQ.
func MedicationID(v uuid.UUID) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEQ(FieldMedicationID, v))
}

// ProviderID applies equality check predicate on the "provider_id" field. It's identical to ProviderIDEQ.
func ProviderID(v uuid.UUID) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEQ(FieldProviderID, v))
}

// Dosage applies equality check predicate on the "dosage" field. It's identical to DosageEQ.
func Dosage(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEQ(FieldDosage, v))
}

// Frequency applies equality check predicate on the "frequency" field. It's identical to FrequencyEQ.
func Frequency(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEQ(FieldFrequency, v))
}

// Route applies equality check predicate on the "route" field. It's identical to RouteEQ.
func Route(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEQ(FieldRoute, v))
}

// StartDate applies equality check predicate on the "start_date" field. It's identical to StartDateEQ.
func StartDate(v time.Time) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEQ(FieldStartDate, v))
}

// EndDate applies equality check predicate on the "end_date" field. It's identical to EndDateEQ.
func EndDate(v time.Time) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEQ(FieldEndDate, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEQ(FieldReason, v))
}

// Instructions applies equality check predicate on the "instructions" field. It's identical to InstructionsEQ.
func Instructions(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEQ(FieldInstructions, v))
}

// EncounterID applies equality check predicate on the "encounter_id" field. It's identical to EncounterIDEQ.
func EncounterID(v uuid.UUID) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEQ(FieldEncounterID, v))
}

// AdverseReactions applies equality check predicate on the "adverse_reactions" field. It's identical to AdverseReactionsEQ.
func AdverseReactions(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEQ(FieldAdverseReactions, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldLTE(FieldUpdatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNotIn(FieldPatientID, vs...))
}

// MedicationIDEQ applies the EQ predicate on the "medication_id" field.
func MedicationIDEQ(v uuid.UUID) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEQ(FieldMedicationID, v))
}

// MedicationIDNEQ applies the NEQ predicate on the "medication_id" field.
func MedicationIDNEQ(v uuid.UUID) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNEQ(FieldMedicationID, v))
}

// MedicationIDIn applies the In predicate on the "medication_id" field.
func MedicationIDIn(vs ...uuid.UUID) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldIn(FieldMedicationID, vs...))
}

// MedicationIDNotIn applies the NotIn predicate on the "medication_id" field.
func MedicationIDNotIn(vs ...uuid.UUID) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNotIn(FieldMedicationID, vs...))
}

// ProviderIDEQ applies the EQ predicate on the "provider_id" field.
func ProviderIDEQ(v uuid.UUID) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEQ(FieldProviderID, v))
}

// ProviderIDNEQ applies the NEQ predicate on the "provider_id" field.
func ProviderIDNEQ(v uuid.UUID) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNEQ(FieldProviderID, v))
}

// ProviderIDIn applies the In predicate on the "provider_id" field.
func ProviderIDIn(vs ...uuid.UUID) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldIn(FieldProviderID, vs...))
}

// ProviderIDNotIn applies the NotIn predicate on the "provider_id" field.
func ProviderIDNotIn(vs ...uuid.UUID) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNotIn(FieldProviderID, vs...))
}

// DosageEQ applies the EQ predicate on the "dosage" field.
func DosageEQ(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEQ(FieldDosage, v))
}

// DosageNEQ applies the NEQ predicate on the "dosage" field.
func DosageNEQ(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNEQ(FieldDosage, v))
}

// DosageIn applies the In predicate on the "dosage" field.
func DosageIn(vs ...string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldIn(FieldDosage, vs...))
}

// DosageNotIn applies the NotIn predicate on the "dosage" field.
func DosageNotIn(vs ...string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNotIn(FieldDosage, vs...))
}

// DosageGT applies the GT predicate on the "dosage" field.
func DosageGT(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldGT(FieldDosage, v))
}

// DosageGTE applies the GTE predicate on the "dosage" field.
func DosageGTE(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldGTE(FieldDosage, v))
}

// DosageLT applies the LT predicate on the "dosage" field.
func DosageLT(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldLT(FieldDosage, v))
}

// DosageLTE applies the LTE predicate on the "dosage" field.
func DosageLTE(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldLTE(FieldDosage, v))
}

// DosageContains applies the Contains predicate on the "dosage" field.
func DosageContains(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldContains(FieldDosage, v))
}

// DosageHasPrefix applies the HasPrefix predicate on the "dosage" field.
func DosageHasPrefix(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldHasPrefix(FieldDosage, v))
}

// DosageHasSuffix applies the HasSuffix predicate on the "dosage" field.
func DosageHasSuffix(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldHasSuffix(FieldDosage, v))
}

// DosageEqualFold applies the EqualFold predicate on the "dosage" field.
func DosageEqualFold(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEqualFold(FieldDosage, v))
}

// DosageContainsFold applies the ContainsFold predicate on the "dosage" field.
func DosageContainsFold(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldContainsFold(FieldDosage, v))
}

// FrequencyEQ applies the EQ predicate on the "frequency" field.
func FrequencyEQ(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEQ(FieldFrequency, v))
}

// FrequencyNEQ applies the NEQ predicate on the "frequency" field.
func FrequencyNEQ(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNEQ(FieldFrequency, v))
}

// FrequencyIn applies the In predicate on the "frequency" field.
func FrequencyIn(vs ...string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldIn(FieldFrequency, vs...))
}

// FrequencyNotIn applies the NotIn predicate on the "frequency" field.
func FrequencyNotIn(vs ...string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNotIn(FieldFrequency, vs...))
}

// FrequencyGT applies the GT predicate on the "frequency" field.
func FrequencyGT(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldGT(FieldFrequency, v))
}

// FrequencyGTE applies the GTE predicate on the "frequency" field.
func FrequencyGTE(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldGTE(FieldFrequency, v))
}

// FrequencyLT applies the LT predicate on the "frequency" field.
func FrequencyLT(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldLT(FieldFrequency, v))
}

// FrequencyLTE applies the LTE predicate on the "frequency" field.
func FrequencyLTE(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldLTE(FieldFrequency, v))
}

// FrequencyContains applies the Contains predicate on the "frequency" field.
func FrequencyContains(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldContains(FieldFrequency, v))
}

// FrequencyHasPrefix applies the HasPrefix predicate on the "frequency" field.
func FrequencyHasPrefix(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldHasPrefix(FieldFrequency, v))
}

// FrequencyHasSuffix applies the HasSuffix predicate on the "frequency" field.
func FrequencyHasSuffix(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldHasSuffix(FieldFrequency, v))
}

// FrequencyEqualFold applies the EqualFold predicate on the "frequency" field.
func FrequencyEqualFold(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEqualFold(FieldFrequency, v))
}

// FrequencyContainsFold applies the ContainsFold predicate on the "frequency" field.
func FrequencyContainsFold(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldContainsFold(FieldFrequency, v))
}

// RouteEQ applies the EQ predicate on the "route" field.
func RouteEQ(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEQ(FieldRoute, v))
}

// RouteNEQ applies the NEQ predicate on the "route" field.
func RouteNEQ(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNEQ(FieldRoute, v))
}

// RouteIn applies the In predicate on the "route" field.
func RouteIn(vs ...string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldIn(FieldRoute, vs...))
}

// RouteNotIn applies the NotIn predicate on the "route" field.
func RouteNotIn(vs ...string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNotIn(FieldRoute, vs...))
}

// RouteGT applies the GT predicate on the "route" field.
func RouteGT(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldGT(FieldRoute, v))
}

// RouteGTE applies the GTE predicate on the "route" field.
func RouteGTE(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldGTE(FieldRoute, v))
}

// RouteLT applies the LT predicate on the "route" field.
func RouteLT(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldLT(FieldRoute, v))
}

// RouteLTE applies the LTE predicate on the "route" field.
func RouteLTE(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldLTE(FieldRoute, v))
}

// RouteContains applies the Contains predicate on the "route" field.
func RouteContains(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldContains(FieldRoute, v))
}

// RouteHasPrefix applies the HasPrefix predicate on the "route" field.
func RouteHasPrefix(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldHasPrefix(FieldRoute, v))
}

// RouteHasSuffix applies the HasSuffix predicate on the "route" field.
func RouteHasSuffix(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldHasSuffix(FieldRoute, v))
}

// RouteIsNil applies the IsNil predicate on the "route" field.
func RouteIsNil() predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldIsNull(FieldRoute))
}

// RouteNotNil applies the NotNil predicate on the "route" field.
func RouteNotNil() predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNotNull(FieldRoute))
}

// RouteEqualFold applies the EqualFold predicate on the "route" field.
func RouteEqualFold(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEqualFold(FieldRoute, v))
}

// RouteContainsFold applies the ContainsFold predicate on the "route" field.
func RouteContainsFold(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldContainsFold(FieldRoute, v))
}

// StartDateEQ applies the EQ predicate on the "start_date" field.
func StartDateEQ(v time.Time) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEQ(FieldStartDate, v))
}

// StartDateNEQ applies the NEQ predicate on the "start_date" field.
func StartDateNEQ(v time.Time) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNEQ(FieldStartDate, v))
}

// StartDateIn applies the In predicate on the "start_date" field.
func StartDateIn(vs ...time.Time) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldIn(FieldStartDate, vs...))
}

// StartDateNotIn applies the NotIn predicate on the "start_date" field.
func StartDateNotIn(vs ...time.Time) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNotIn(FieldStartDate, vs...))
}

// StartDateGT applies the GT predicate on the "start_date" field.
func StartDateGT(v time.Time) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldGT(FieldStartDate, v))
}

// StartDateGTE applies the GTE predicate on the "start_date" field.
func StartDateGTE(v time.Time) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldGTE(FieldStartDate, v))
}

// StartDateLT applies the LT predicate on the "start_date" field.
func StartDateLT(v time.Time) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldLT(FieldStartDate, v))
}

// StartDateLTE applies the LTE predicate on the "start_date" field.
func StartDateLTE(v time.Time) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldLTE(FieldStartDate, v))
}

// EndDateEQ applies the EQ predicate on the "end_date" field.
func EndDateEQ(v time.Time) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEQ(FieldEndDate, v))
}

// EndDateNEQ applies the NEQ predicate on the "end_date" field.
func EndDateNEQ(v time.Time) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNEQ(FieldEndDate, v))
}

// EndDateIn applies the In predicate on the "end_date" field.
func EndDateIn(vs ...time.Time) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldIn(FieldEndDate, vs...))
}

// EndDateNotIn applies the NotIn predicate on the "end_date" field.
func EndDateNotIn(vs ...time.Time) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNotIn(FieldEndDate, vs...))
}

// EndDateGT applies the GT predicate on the "end_date" field.
func EndDateGT(v time.Time) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldGT(FieldEndDate, v))
}

// EndDateGTE applies the GTE predicate on the "end_date" field.
func EndDateGTE(v time.Time) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldGTE(FieldEndDate, v))
}

// EndDateLT applies the LT predicate on the "end_date" field.
func EndDateLT(v time.Time) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldLT(FieldEndDate, v))
}

// EndDateLTE applies the LTE predicate on the "end_date" field.
func EndDateLTE(v time.Time) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldLTE(FieldEndDate, v))
}

// EndDateIsNil applies the IsNil predicate on the "end_date" field.
func EndDateIsNil() predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldIsNull(FieldEndDate))
}

// EndDateNotNil applies the NotNil predicate on the "end_date" field.
func EndDateNotNil() predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNotNull(FieldEndDate))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNotIn(FieldStatus, vs...))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldContainsFold(FieldReason, v))
}

// InstructionsEQ applies the EQ predicate on the "instructions" field.
func InstructionsEQ(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEQ(FieldInstructions, v))
}

// InstructionsNEQ applies the NEQ predicate on the "instructions" field.
func InstructionsNEQ(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNEQ(FieldInstructions, v))
}

// InstructionsIn applies the In predicate on the "instructions" field.
func InstructionsIn(vs ...string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldIn(FieldInstructions, vs...))
}

// InstructionsNotIn applies the NotIn predicate on the "instructions" field.
func InstructionsNotIn(vs ...string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNotIn(FieldInstructions, vs...))
}

// InstructionsGT applies the GT predicate on the "instructions" field.
func InstructionsGT(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldGT(FieldInstructions, v))
}

// InstructionsGTE applies the GTE predicate on the "instructions" field.
func InstructionsGTE(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldGTE(FieldInstructions, v))
}

// InstructionsLT applies the LT predicate on the "instructions" field.
func InstructionsLT(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldLT(FieldInstructions, v))
}

// InstructionsLTE applies the LTE predicate on the "instructions" field.
func InstructionsLTE(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldLTE(FieldInstructions, v))
}

// InstructionsContains applies the Contains predicate on the "instructions" field.
func InstructionsContains(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldContains(FieldInstructions, v))
}

// InstructionsHasPrefix applies the HasPrefix predicate on the "instructions" field.
func InstructionsHasPrefix(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldHasPrefix(FieldInstructions, v))
}

// InstructionsHasSuffix applies the HasSuffix predicate on the "instructions" field.
func InstructionsHasSuffix(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldHasSuffix(FieldInstructions, v))
}

// InstructionsIsNil applies the IsNil predicate on the "instructions" field.
func InstructionsIsNil() predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldIsNull(FieldInstructions))
}

// InstructionsNotNil applies the NotNil predicate on the "instructions" field.
func InstructionsNotNil() predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNotNull(FieldInstructions))
}

// InstructionsEqualFold applies the EqualFold predicate on the "instructions" field.
func InstructionsEqualFold(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEqualFold(FieldInstructions, v))
}

// InstructionsContainsFold applies the ContainsFold predicate on the "instructions" field.
func InstructionsContainsFold(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldContainsFold(FieldInstructions, v))
}

// EncounterIDEQ applies the EQ predicate on the "encounter_id" field.
func EncounterIDEQ(v uuid.UUID) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEQ(FieldEncounterID, v))
}

// EncounterIDNEQ applies the NEQ predicate on the "encounter_id" field.
func EncounterIDNEQ(v uuid.UUID) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNEQ(FieldEncounterID, v))
}

// EncounterIDIn applies the In predicate on the "encounter_id" field.
func EncounterIDIn(vs ...uuid.UUID) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldIn(FieldEncounterID, vs...))
}

// EncounterIDNotIn applies the NotIn predicate on the "encounter_id" field.
func EncounterIDNotIn(vs ...uuid.UUID) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNotIn(FieldEncounterID, vs...))
}

// EncounterIDGT applies the GT predicate on the "encounter_id" field.
func EncounterIDGT(v uuid.UUID) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldGT(FieldEncounterID, v))
}

// EncounterIDGTE applies the GTE predicate on the "encounter_id" field.
func EncounterIDGTE(v uuid.UUID) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldGTE(FieldEncounterID, v))
}

// EncounterIDLT applies the LT predicate on the "encounter_id" field.
func EncounterIDLT(v uuid.UUID) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldLT(FieldEncounterID, v))
}

// EncounterIDLTE applies the LTE predicate on the "encounter_id" field.
func EncounterIDLTE(v uuid.UUID) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldLTE(FieldEncounterID, v))
}

// EncounterIDIsNil applies the IsNil predicate on the "encounter_id" field.
func EncounterIDIsNil() predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldIsNull(FieldEncounterID))
}

// EncounterIDNotNil applies the NotNil predicate on the "encounter_id" field.
func EncounterIDNotNil() predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNotNull(FieldEncounterID))
}

// AdverseReactionsEQ applies the EQ predicate on the "adverse_reactions" field.
func AdverseReactionsEQ(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEQ(FieldAdverseReactions, v))
}

// AdverseReactionsNEQ applies the NEQ predicate on the "adverse_reactions" field.
func AdverseReactionsNEQ(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNEQ(FieldAdverseReactions, v))
}

// AdverseReactionsIn applies the In predicate on the "adverse_reactions" field.
func AdverseReactionsIn(vs ...string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldIn(FieldAdverseReactions, vs...))
}

// AdverseReactionsNotIn applies the NotIn predicate on the "adverse_reactions" field.
func AdverseReactionsNotIn(vs ...string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNotIn(FieldAdverseReactions, vs...))
}

// AdverseReactionsGT applies the GT predicate on the "adverse_reactions" field.
func AdverseReactionsGT(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldGT(FieldAdverseReactions, v))
}

// AdverseReactionsGTE applies the GTE predicate on the "adverse_reactions" field.
func AdverseReactionsGTE(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldGTE(FieldAdverseReactions, v))
}

// AdverseReactionsLT applies the LT predicate on the "adverse_reactions" field.
func AdverseReactionsLT(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldLT(FieldAdverseReactions, v))
}

// AdverseReactionsLTE applies the LTE predicate on the "adverse_reactions" field.
func AdverseReactionsLTE(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldLTE(FieldAdverseReactions, v))
}

// AdverseReactionsContains applies the Contains predicate on the "adverse_reactions" field.
func AdverseReactionsContains(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldContains(FieldAdverseReactions, v))
}

// AdverseReactionsHasPrefix applies the HasPrefix predicate on the "adverse_reactions" field.
func AdverseReactionsHasPrefix(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldHasPrefix(FieldAdverseReactions, v))
}

// AdverseReactionsHasSuffix applies the HasSuffix predicate on the "adverse_reactions" field.
func AdverseReactionsHasSuffix(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldHasSuffix(FieldAdverseReactions, v))
}

// AdverseReactionsIsNil applies the IsNil predicate on the "adverse_reactions" field.
func AdverseReactionsIsNil() predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldIsNull(FieldAdverseReactions))
}

// AdverseReactionsNotNil applies the NotNil predicate on the "adverse_reactions" field.
func AdverseReactionsNotNil() predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldNotNull(FieldAdverseReactions))
}

// AdverseReactionsEqualFold applies the EqualFold predicate on the "adverse_reactions" field.
func AdverseReactionsEqualFold(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldEqualFold(FieldAdverseReactions, v))
}

// AdverseReactionsContainsFold applies the ContainsFold predicate on the "adverse_reactions" field.
func AdverseReactionsContainsFold(v string) predicate.PatientMedication {
	return predicate.PatientMedication(sql.FieldContainsFold(FieldAdverseReactions, v))
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.PatientMedication {
	return predicate.PatientMedication(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.Patient) predicate.PatientMedication {
	return predicate.PatientMedication(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMedication applies the HasEdge predicate on the "medication" edge.
func HasMedication() predicate.PatientMedication {
	return predicate.PatientMedication(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MedicationTable, MedicationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMedicationWith applies the HasEdge predicate on the "medication" edge with a given conditions (other predicates).
func HasMedicationWith(preds ...predicate.MedicationMaster) predicate.PatientMedication {
	return predicate.PatientMedication(func(s *sql.Selector) {
		step := newMedicationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProvider applies the HasEdge predicate on the "provider" edge.
func HasProvider() predicate.PatientMedication {
	return predicate.PatientMedication(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProviderTable, ProviderColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProviderWith applies the HasEdge predicate on the "provider" edge with a given conditions (other predicates).
func HasProviderWith(preds ...predicate.User) predicate.PatientMedication {
	return predicate.PatientMedication(func(s *sql.Selector) {
		step := newProviderStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PatientMedication) predicate.PatientMedication {
	return predicate.PatientMedication(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PatientMedication) predicate.PatientMedication {
	return predicate.PatientMedication(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PatientMedication) predicate.PatientMedication {
	return predicate.PatientMedication(sql.NotPredicates(p))
}
