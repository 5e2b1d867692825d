// Code generated by ent, DO NOT EDIT.

package encounter

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/caretide/caretide_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldUpdatedAt, v))
}

// EncounterID applies equality check predicate on the "encounter_id" field. It's identical to EncounterIDEQ.
func EncounterID(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldEncounterID, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldPatientID, v))
}

// ProviderID applies equality check predicate on the "provider_id" field. It's identical to ProviderIDEQ.
func ProviderID(v uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldProviderID, v))
}

// AppointmentID applies equality check predicate on the "appointment_id" field. It's identical to AppointmentIDEQ.
func AppointmentID(v uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldAppointmentID, v))
}

// EncounterDate applies equality check predicate on the "encounter_date" field. It's identical to EncounterDateEQ.
func EncounterDate(v time.Time) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldEncounterDate, v))
}

// ChiefComplaint applies equality check predicate on the "chief_complaint" field. It's identical to ChiefComplaintEQ.
func ChiefComplaint(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldChiefComplaint, v))
}

// HistoryOfPresentIllness applies equality check predicate on the "history_of_present_illness" field. It's identical to HistoryOfPresentIllnessEQ.
func HistoryOfPresentIllness(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldHistoryOfPresentIllness, v))
}

// PhysicalExamination applies equality check predicate on the "physical_examination" field. It's identical to PhysicalExaminationEQ.
func PhysicalExamination(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldPhysicalExamination, v))
}

// Assessment applies equality check predicate on the "assessment" field. It's identical to AssessmentEQ.
func Assessment(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldAssessment, v))
}

// Plan applies equality check predicate on the "plan" field. It's identical to PlanEQ.
func Plan(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldPlan, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldNotes, v))
}

// Duration applies equality check predicate on the "duration" field. It's identical to DurationEQ.
func Duration(v int) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldDuration, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Encounter {
	return predicate.Encounter(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Encounter {
	return predicate.Encounter(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Encounter {
	return predicate.Encounter(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Encounter {
	return predicate.Encounter(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Encounter {
	return predicate.Encounter(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Encounter {
	return predicate.Encounter(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Encounter {
	return predicate.Encounter(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Encounter {
	return predicate.Encounter(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Encounter {
	return predicate.Encounter(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Encounter {
	return predicate.Encounter(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Encounter {
	return predicate.Encounter(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Encounter {
	return predicate.Encounter(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Encounter {
	return predicate.Encounter(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Encounter {
	return predicate.Encounter(sql.FieldLTE(FieldUpdatedAt, v))
}

// EncounterIDEQ applies the EQ predicate on the "encounter_id" field.
func EncounterIDEQ(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldEncounterID, v))
}

// EncounterIDNEQ applies the NEQ predicate on the "encounter_id" field.
func EncounterIDNEQ(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldNEQ(FieldEncounterID, v))
}

// EncounterIDIn applies the In predicate on the "encounter_id" field.
func EncounterIDIn(vs ...string) predicate.Encounter {
	return predicate.Encounter(sql.FieldIn(FieldEncounterID, vs...))
}

// EncounterIDNotIn applies the NotIn predicate on the "encounter_id" field.
func EncounterIDNotIn(vs ...string) predicate.Encounter {
	return predicate.Encounter(sql.FieldNotIn(FieldEncounterID, vs...))
}

// EncounterIDGT applies the GT predicate on the "encounter_id" field.
func EncounterIDGT(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldGT(FieldEncounterID, v))
}

// EncounterIDGTE applies the GTE predicate on the "encounter_id" field.
func EncounterIDGTE(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldGTE(FieldEncounterID, v))
}

// EncounterIDLT applies the LT predicate on the "encounter_id" field.
func EncounterIDLT(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldLT(FieldEncounterID, v))
}

// EncounterIDLTE applies the LTE predicate on the "encounter_id" field.
func EncounterIDLTE(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldLTE(FieldEncounterID, v))
}

// EncounterIDContains applies the Contains predicate on the "encounter_id" field.
func EncounterIDContains(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldContains(FieldEncounterID, v))
}

// EncounterIDHasPrefix applies the HasPrefix predicate on the "encounter_id" field.
func EncounterIDHasPrefix(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldHasPrefix(FieldEncounterID, v))
}

// EncounterIDHasSuffix applies the HasSuffix predicate on the "encounter_id" field.
func EncounterIDHasSuffix(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldHasSuffix(FieldEncounterID, v))
}

// EncounterIDEqualFold applies the EqualFold predicate on the "encounter_id" field.
func EncounterIDEqualFold(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldEqualFold(FieldEncounterID, v))
}

// EncounterIDContainsFold applies the ContainsFold predicate on the "encounter_id" field.
func EncounterIDContainsFold(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldContainsFold(FieldEncounterID, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldNotIn(FieldPatientID, vs...))
}

// ProviderIDEQ applies the EQ predicate on the "provider_id" field.
func ProviderIDEQ(v uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldProviderID, v))
}

// ProviderIDNEQ applies the NEQ predicate on the "provider_id" field.
func ProviderIDNEQ(v uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldNEQ(FieldProviderID, v))
}

// ProviderIDIn applies the In predicate on the "provider_id" field.
func ProviderIDIn(vs ...uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldIn(FieldProviderID, vs...))
}

// ProviderIDNotIn applies the NotIn predicate on the "provider_id" field.
func ProviderIDNotIn(vs ...uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldNotIn(FieldProviderID, vs...))
}

// AppointmentIDEQ applies the EQ predicate on the "appointment_id" field.
func AppointmentIDEQ(v uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldAppointmentID, v))
}

// AppointmentIDNEQ applies the NEQ predicate on the "appointment_id" field.
func AppointmentIDNEQ(v uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldNEQ(FieldAppointmentID, v))
}

// AppointmentIDIn applies the In predicate on the "appointment_id" field.
func AppointmentIDIn(vs ...uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldIn(FieldAppointmentID, vs...))
}

// AppointmentIDNotIn applies the NotIn predicate on the "appointment_id" field.
func AppointmentIDNotIn(vs ...uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldNotIn(FieldAppointmentID, vs...))
}

// AppointmentIDGT applies the GT predicate on the "appointment_id" field.
func AppointmentIDGT(v uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldGT(FieldAppointmentID, v))
}

// AppointmentIDGTE applies the GTE predicate on the "appointment_id" field.
func AppointmentIDGTE(v uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldGTE(FieldAppointmentID, v))
}

// AppointmentIDLT applies the LT predicate on the "appointment_id" field.
func AppointmentIDLT(v uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldLT(FieldAppointmentID, v))
}

// AppointmentIDLTE applies the LTE predicate on the "appointment_id" field.
func AppointmentIDLTE(v uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldLTE(FieldAppointmentID, v))
}

// AppointmentIDIsNil applies the IsNil predicate on the "appointment_id" field.
func AppointmentIDIsNil() predicate.Encounter {
	return predicate.Encounter(sql.FieldIsNull(FieldAppointmentID))
}

// AppointmentIDNotNil applies the NotNil predicate on the "appointment_id" field.
func AppointmentIDNotNil() predicate.Encounter {
	return predicate.Encounter(sql.FieldNotNull(FieldAppointmentID))
}

// EncounterTypeEQ applies the EQ predicate on the "encounter_type" field.
func EncounterTypeEQ(v EncounterType) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldEncounterType, v))
}

// EncounterTypeNEQ applies the NEQ predicate on the "encounter_type" field.
func EncounterTypeNEQ(v EncounterType) predicate.Encounter {
	return predicate.Encounter(sql.FieldNEQ(FieldEncounterType, v))
}

// EncounterTypeIn applies the In predicate on the "encounter_type" field.
func EncounterTypeIn(vs ...EncounterType) predicate.Encounter {
	return predicate.Encounter(sql.FieldIn(FieldEncounterType, vs...))
}

// EncounterTypeNotIn applies the NotIn predicate on the "encounter_type" field.
func EncounterTypeNotIn(vs ...EncounterType) predicate.Encounter {
	return predicate.Encounter(sql.FieldNotIn(FieldEncounterType, vs...))
}

// EncounterDateEQ applies the EQ predicate on the "encounter_date" field.
func EncounterDateEQ(v time.Time) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldEncounterDate, v))
}

// EncounterDateNEQ applies the NEQ predicate on the "encounter_date" field.
func EncounterDateNEQ(v time.Time) predicate.Encounter {
	return predicate.Encounter(sql.FieldNEQ(FieldEncounterDate, v))
}

// EncounterDateIn applies the In predicate on the "encounter_date" field.
func EncounterDateIn(vs ...time.Time) predicate.Encounter {
	return predicate.Encounter(sql.FieldIn(FieldEncounterDate, vs...))
}

// EncounterDateNotIn applies the NotIn predicate on the "encounter_date" field.
func EncounterDateNotIn(vs ...time.Time) predicate.Encounter {
	return predicate.Encounter(sql.FieldNotIn(FieldEncounterDate, vs...))
}

// EncounterDateGT applies the GT predicate on the "encounter_date" field.
func EncounterDateGT(v time.Time) predicate.Encounter {
	return predicate.Encounter(sql.FieldGT(FieldEncounterDate, v))
}

// EncounterDateGTE applies the GTE predicate on the "encounter_date" field.
func EncounterDateGTE(v time.Time) predicate.Encounter {
	return predicate.Encounter(sql.FieldGTE(FieldEncounterDate, v))
}

// EncounterDateLT applies the LT predicate on the "encounter_date" field.
func EncounterDateLT(v time.Time) predicate.Encounter {
	return predicate.Encounter(sql.FieldLT(FieldEncounterDate, v))
}

// EncounterDateLTE applies the LTE predicate on the "encounter_date" field.
func EncounterDateLTE(v time.Time) predicate.Encounter {
	return predicate.Encounter(sql.FieldLTE(FieldEncounterDate, v))
}

// ChiefComplaintEQ applies the EQ predicate on the "chief_complaint" field.
func ChiefComplaintEQ(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldChiefComplaint, v))
}

// ChiefComplaintNEQ applies the NEQ predicate on the "chief_complaint" field.
func ChiefComplaintNEQ(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldNEQ(FieldChiefComplaint, v))
}

// ChiefComplaintIn applies the In predicate on the "chief_complaint" field.
func ChiefComplaintIn(vs ...string) predicate.Encounter {
	return predicate.Encounter(sql.FieldIn(FieldChiefComplaint, vs...))
}

// ChiefComplaintNotIn applies the NotIn predicate on the "chief_complaint" field.
func ChiefComplaintNotIn(vs ...string) predicate.Encounter {
	return predicate.Encounter(sql.FieldNotIn(FieldChiefComplaint, vs...))
}

// ChiefComplaintGT applies the GT predicate on the "chief_complaint" field.
func ChiefComplaintGT(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldGT(FieldChiefComplaint, v))
}

// ChiefComplaintGTE applies the GTE predicate on the "chief_complaint" field.
func ChiefComplaintGTE(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldGTE(FieldChiefComplaint, v))
}

// ChiefComplaintLT applies the LT predicate on the "chief_complaint" field.
func ChiefComplaintLT(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldLT(FieldChiefComplaint, v))
}

// ChiefComplaintLTE applies the LTE predicate on the "chief_complaint" field.
func ChiefComplaintLTE(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldLTE(FieldChiefComplaint, v))
}

// ChiefComplaintContains applies the Contains predicate on the "chief_complaint" field.
func ChiefComplaintContains(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldContains(FieldChiefComplaint, v))
}

// ChiefComplaintHasPrefix applies the HasPrefix predicate on the "chief_complaint" field.
func ChiefComplaintHasPrefix(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldHasPrefix(FieldChiefComplaint, v))
}

// ChiefComplaintHasSuffix applies the HasSuffix predicate on the "chief_complaint" field.
func ChiefComplaintHasSuffix(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldHasSuffix(FieldChiefComplaint, v))
}

// ChiefComplaintIsNil applies the IsNil predicate on the "chief_complaint" field.
func ChiefComplaintIsNil() predicate.Encounter {
	return predicate.Encounter(sql.FieldIsNull(FieldChiefComplaint))
}

// ChiefComplaintNotNil applies the NotNil predicate on the "chief_complaint" field.
func ChiefComplaintNotNil() predicate.Encounter {
	return predicate.Encounter(sql.FieldNotNull(FieldChiefComplaint))
}

// ChiefComplaintEqualFold applies the EqualFold predicate on the "chief_complaint" field.
func ChiefComplaintEqualFold(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldEqualFold(FieldChiefComplaint, v))
}

// ChiefComplaintContainsFold applies the ContainsFold predicate on the "chief_complaint" field.
func ChiefComplaintContainsFold(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldContainsFold(FieldChiefComplaint, v))
}

// HistoryOfPresentIllnessEQ applies the EQ predicate on the "history_of_present_illness" field.
func HistoryOfPresentIllnessEQ(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldHistoryOfPresentIllness, v))
}

// HistoryOfPresentIllnessNEQ applies the NEQ predicate on the "history_of_present_illness" field.
func HistoryOfPresentIllnessNEQ(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldNEQ(FieldHistoryOfPresentIllness, v))
}

// HistoryOfPresentIllnessIn applies the In predicate on the "history_of_present_illness" field.
func HistoryOfPresentIllnessIn(vs ...string) predicate.Encounter {
	return predicate.Encounter(sql.FieldIn(FieldHistoryOfPresentIllness, vs...))
}

// HistoryOfPresentIllnessNotIn applies the NotIn predicate on the "history_of_present_illness" field.
func HistoryOfPresentIllnessNotIn(vs ...string) predicate.Encounter {
	return predicate.Encounter(sql.FieldNotIn(FieldHistoryOfPresentIllness, vs...))
}

// HistoryOfPresentIllnessGT applies the GT predicate on the "history_of_present_illness" field.
func HistoryOfPresentIllnessGT(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldGT(FieldHistoryOfPresentIllness, v))
}

// HistoryOfPresentIllnessGTE applies the GTE predicate on the "history_of_present_illness" field.
func HistoryOfPresentIllnessGTE(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldGTE(FieldHistoryOfPresentIllness, v))
}

// HistoryOfPresentIllnessLT applies the LT predicate on the "history_of_present_illness" field.
func HistoryOfPresentIllnessLT(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldLT(FieldHistoryOfPresentIllness, v))
}

// HistoryOfPresentIllnessLTE applies the LTE predicate on the "history_of_present_illness" field.
func HistoryOfPresentIllnessLTE(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldLTE(FieldHistoryOfPresentIllness, v))
}

// HistoryOfPresentIllnessContains applies the Contains predicate on the "history_of_present_illness" field.
func HistoryOfPresentIllnessContains(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldContains(FieldHistoryOfPresentIllness, v))
}

// HistoryOfPresentIllnessHasPrefix applies the HasPrefix predicate on the "history_of_present_illness" field.
func HistoryOfPresentIllnessHasPrefix(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldHasPrefix(FieldHistoryOfPresentIllness, v))
}

// HistoryOfPresentIllnessHasSuffix applies the HasSuffix predicate on the "history_of_present_illness" field.
func HistoryOfPresentIllnessHasSuffix(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldHasSuffix(FieldHistoryOfPresentIllness, v))
}

// HistoryOfPresentIllnessIsNil applies the IsNil predicate on the "history_of_present_illness" field.
func HistoryOfPresentIllnessIsNil() predicate.Encounter {
	return predicate.Encounter(sql.FieldIsNull(FieldHistoryOfPresentIllness))
}

// HistoryOfPresentIllnessNotNil applies the NotNil predicate on the "history_of_present_illness" field.
func HistoryOfPresentIllnessNotNil() predicate.Encounter {
	return predicate.Encounter(sql.FieldNotNull(FieldHistoryOfPresentIllness))
}

// HistoryOfPresentIllnessEqualFold applies the EqualFold predicate on the "history_of_present_illness" field.
func HistoryOfPresentIllnessEqualFold(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldEqualFold(FieldHistoryOfPresentIllness, v))
}

// HistoryOfPresentIllnessContainsFold applies the ContainsFold predicate on the "history_of_present_illness" field.
func HistoryOfPresentIllnessContainsFold(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldContainsFold(FieldHistoryOfPresentIllness, v))
}

// PhysicalExaminationEQ applies the EQ predicate on the "physical_examination" field.
func PhysicalExaminationEQ(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldPhysicalExamination, v))
}

// PhysicalExaminationNEQ applies the NEQ predicate on the "physical_examination" field.
func PhysicalExaminationNEQ(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldNEQ(FieldPhysicalExamination, v))
}

// PhysicalExaminationIn applies the In predicate on the "physical_examination" field.
func PhysicalExaminationIn(vs ...string) predicate.Encounter {
	return predicate.Encounter(sql.FieldIn(FieldPhysicalExamination, vs...))
}

// PhysicalExaminationNotIn applies the NotIn predicate on the "physical_examination" field.
func PhysicalExaminationNotIn(vs ...string) predicate.Encounter {
	return predicate.Encounter(sql.FieldNotIn(FieldPhysicalExamination, vs...))
}

// PhysicalExaminationGT applies the GT predicate on the "physical_examination" field.
func PhysicalExaminationGT(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldGT(FieldPhysicalExamination, v))
}

// PhysicalExaminationGTE applies the GTE predicate on the "physical_examination" field.
func PhysicalExaminationGTE(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldGTE(FieldPhysicalExamination, v))
}

// PhysicalExaminationLT applies the LT predicate on the "physical_examination" field.
func PhysicalExaminationLT(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldLT(FieldPhysicalExamination, v))
}

// PhysicalExaminationLTE applies the LTE predicate on the "physical_examination" field.
func PhysicalExaminationLTE(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldLTE(FieldPhysicalExamination, v))
}

// PhysicalExaminationContains applies the Contains predicate on the "physical_examination" field.
func PhysicalExaminationContains(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldContains(FieldPhysicalExamination, v))
}

// PhysicalExaminationHasPrefix applies the HasPrefix predicate on the "physical_examination" field.
func PhysicalExaminationHasPrefix(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldHasPrefix(FieldPhysicalExamination, v))
}

// PhysicalExaminationHasSuffix applies the HasSuffix predicate on the "physical_examination" field.
func PhysicalExaminationHasSuffix(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldHasSuffix(FieldPhysicalExamination, v))
}

// PhysicalExaminationIsNil applies the IsNil predicate on the "physical_examination" field.
func PhysicalExaminationIsNil() predicate.Encounter {
	return predicate.Encounter(sql.FieldIsNull(FieldPhysicalExamination))
}

// PhysicalExaminationNotNil applies the NotNil predicate on the "physical_examination" field.
func PhysicalExaminationNotNil() predicate.Encounter {
	return predicate.Encounter(sql.FieldNotNull(FieldPhysicalExamination))
}

// PhysicalExaminationEqualFold applies the EqualFold predicate on the "physical_examination" field.
func PhysicalExaminationEqualFold(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldEqualFold(FieldPhysicalExamination, v))
}

// PhysicalExaminationContainsFold applies the ContainsFold predicate on the "physical_examination" field.
func PhysicalExaminationContainsFold(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldContainsFold(FieldPhysicalExamination, v))
}

// AssessmentEQ applies the EQ predicate on the "assessment" field.
func AssessmentEQ(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldAssessment, v))
}

// AssessmentNEQ applies the NEQ predicate on the "assessment" field.
func AssessmentNEQ(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldNEQ(FieldAssessment, v))
}

// AssessmentIn applies the In predicate on the "assessment" field.
func AssessmentIn(vs ...string) predicate.Encounter {
	return predicate.Encounter(sql.FieldIn(FieldAssessment, vs...))
}

// AssessmentNotIn applies the NotIn predicate on the "assessment" field.
func AssessmentNotIn(vs ...string) predicate.Encounter {
	return predicate.Encounter(sql.FieldNotIn(FieldAssessment, vs...))
}

// AssessmentGT applies the GT predicate on the "assessment" field.
func AssessmentGT(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldGT(FieldAssessment, v))
}

// AssessmentGTE applies the GTE predicate on the "assessment" field.
func AssessmentGTE(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldGTE(FieldAssessment, v))
}

// AssessmentLT applies the LT predicate on the "assessment" field.
func AssessmentLT(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldLT(FieldAssessment, v))
}

// AssessmentLTE applies the LTE predicate on the "assessment" field.
func AssessmentLTE(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldLTE(FieldAssessment, v))
}

// AssessmentContains applies the Contains predicate on the "assessment" field.
func AssessmentContains(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldContains(FieldAssessment, v))
}

// AssessmentHasPrefix applies the HasPrefix predicate on the "assessment" field.
func AssessmentHasPrefix(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldHasPrefix(FieldAssessment, v))
}

// AssessmentHasSuffix applies the HasSuffix predicate on the "assessment" field.
func AssessmentHasSuffix(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldHasSuffix(FieldAssessment, v))
}

// AssessmentIsNil applies the IsNil predicate on the "assessment" field.
func AssessmentIsNil() predicate.Encounter {
	return predicate.Encounter(sql.FieldIsNull(FieldAssessment))
}

// AssessmentNotNil applies the NotNil predicate on the "assessment" field.
func AssessmentNotNil() predicate.Encounter {
	return predicate.Encounter(sql.FieldNotNull(FieldAssessment))
}

// AssessmentEqualFold applies the EqualFold predicate on the "assessment" field.
func AssessmentEqualFold(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldEqualFold(FieldAssessment, v))
}

// AssessmentContainsFold applies the ContainsFold predicate on the "assessment" field.
func AssessmentContainsFold(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldContainsFold(FieldAssessment, v))
}

// PlanEQ applies the EQ predicate on the "plan" field.
func PlanEQ(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldPlan, v))
}

// PlanNEQ applies the NEQ predicate on the "plan" field.
func PlanNEQ(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldNEQ(FieldPlan, v))
}

// PlanIn applies the In predicate on the "plan" field.
func PlanIn(vs ...string) predicate.Encounter {
	return predicate.Encounter(sql.FieldIn(FieldPlan, vs...))
}

// PlanNotIn applies the NotIn predicate on the "plan" field.
func PlanNotIn(vs ...string) predicate.Encounter {
	return predicate.Encounter(sql.FieldNotIn(FieldPlan, vs...))
}

// PlanGT applies the GT predicate on the "plan" field.
func PlanGT(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldGT(FieldPlan, v))
}

// PlanGTE applies the GTE predicate on the "plan" field.
func PlanGTE(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldGTE(FieldPlan, v))
}

// PlanLT applies the LT predicate on the "plan" field.
func PlanLT(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldLT(FieldPlan, v))
}

// PlanLTE applies the LTE predicate on the "plan" field.
func PlanLTE(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldLTE(FieldPlan, v))
}

// PlanContains applies the Contains predicate on the "plan" field.
func PlanContains(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldContains(FieldPlan, v))
}

// PlanHasPrefix applies the HasPrefix predicate on the "plan" field.
func PlanHasPrefix(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldHasPrefix(FieldPlan, v))
}

// PlanHasSuffix applies the HasSuffix predicate on the "plan" field.
func PlanHasSuffix(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldHasSuffix(FieldPlan, v))
}

// PlanIsNil applies the IsNil predicate on the "plan" field.
func PlanIsNil() predicate.Encounter {
	return predicate.Encounter(sql.FieldIsNull(FieldPlan))
}

// PlanNotNil applies the NotNil predicate on the "plan" field.
func PlanNotNil() predicate.Encounter {
	return predicate.Encounter(sql.FieldNotNull(FieldPlan))
}

// PlanEqualFold applies the EqualFold predicate on the "plan" field.
func PlanEqualFold(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldEqualFold(FieldPlan, v))
}

// PlanContainsFold applies the ContainsFold predicate on the "plan" field.
func PlanContainsFold(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldContainsFold(FieldPlan, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Encounter {
	return predicate.Encounter(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Encounter {
	return predicate.Encounter(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Encounter {
	return predicate.Encounter(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Encounter {
	return predicate.Encounter(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldContainsFold(FieldNotes, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Encounter {
	return predicate.Encounter(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Encounter {
	return predicate.Encounter(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Encounter {
	return predicate.Encounter(sql.FieldNotIn(FieldStatus, vs...))
}

// DurationEQ applies the EQ predicate on the "duration" field.
func DurationEQ(v int) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldDuration, v))
}

// DurationNEQ applies the NEQ predicate on the "duration" field.
func DurationNEQ(v int) predicate.Encounter {
	return predicate.Encounter(sql.FieldNEQ(FieldDuration, v))
}

// DurationIn applies the In predicate on the "duration" field.
func DurationIn(vs ...int) predicate.Encounter {
	return predicate.Encounter(sql.FieldIn(FieldDuration, vs...))
}

// DurationNotIn applies the NotIn predicate on the "duration" field.
func DurationNotIn(vs ...int) predicate.Encounter {
	return predicate.Encounter(sql.FieldNotIn(FieldDuration, vs...))
}

// DurationGT applies the GT predicate on the "duration" field.
func DurationGT(v int) predicate.Encounter {
	return predicate.Encounter(sql.FieldGT(FieldDuration, v))
}

// DurationGTE applies the GTE predicate on the "duration" field.
func DurationGTE(v int) predicate.Encounter {
	return predicate.Encounter(sql.FieldGTE(FieldDuration, v))
}

// DurationLT applies the LT predicate on the "duration" field.
func DurationLT(v int) predicate.Encounter {
	return predicate.Encounter(sql.FieldLT(FieldDuration, v))
}

// DurationLTE applies the LTE predicate on the "duration" field.
func DurationLTE(v int) predicate.Encounter {
	return predicate.Encounter(sql.FieldLTE(FieldDuration, v))
}

// DurationIsNil applies the IsNil predicate on the "duration" field.
func DurationIsNil() predicate.Encounter {
	return predicate.Encounter(sql.FieldIsNull(FieldDuration))
}

// DurationNotNil applies the NotNil predicate on the "duration" field.
func DurationNotNil() predicate.Encounter {
	return predicate.Encounter(sql.FieldNotNull(FieldDuration))
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.Encounter {
	return predicate.Encounter(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.Patient) predicate.Encounter {
	return predicate.Encounter(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProvider applies the HasEdge predicate on the "provider" edge.
func HasProvider() predicate.Encounter {
	return predicate.Encounter(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProviderTable, ProviderColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProviderWith applies the HasEdge predicate on the "provider" edge with a given conditions (other predicates).
func HasProviderWith(preds ...predicate.User) predicate.Encounter {
	return predicate.Encounter(func(s *sql.Selector) {
		step := newProviderStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Encounter) predicate.Encounter {
	return predicate.Encounter(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Encounter) predicate.Encounter {
	return predicate.Encounter(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Encounter) predicate.Encounter {
	return predicate.Encounter(sql.NotPredicates(p))
}
