// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/caretide/caretide_backend/internal/repo/encounter"
	"github.com/caretide/caretide_backend/internal/repo/patient"
	"github.com/caretide/caretide_backend/internal/repo/predicate"
	"github.com/caretide/caretide_backend/internal/repo/user"
	"github.com/google/uuid"
)

// EncounterUpdate is the builder for updating Encounter entities.
type EncounterUpdate struct {
	config
	hooks    []Hook
	mutation *EncounterMutation
}

// Where appends a list predicates to the EncounterUpdate builder.
func (_u *EncounterUpdate) Where(ps ...predicate.Encounter) *EncounterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EncounterUpdate) SetUpdatedAt(v time.Time) *EncounterUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *EncounterUpdate) SetPatientID(v uuid.UUID) *EncounterUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *EncounterUpdate) SetNillablePatientID(v *uuid.UUID) *EncounterUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetProviderID sets the "provider_id" field.
func (_u *EncounterUpdate) SetProviderID(v uuid.UUID) *EncounterUpdate {
	_u.mutation.SetProviderID(v)
	return _u
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (_u *EncounterUpdate) SetNillableProviderID(v *uuid.UUID) *EncounterUpdate {
	if v != nil {
		_u.SetProviderID(*v)
	}
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *EncounterUpdate) SetAppointmentID(v uuid.UUID) *EncounterUpdate {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *EncounterUpdate) SetNillableAppointmentID(v *uuid.UUID) *EncounterUpdate {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// ClearAppointmentID clears the value of the "appointment_id" field.
func (_u *EncounterUpdate) ClearAppointmentID() *EncounterUpdate {
	_u.mutation.ClearAppointmentID()
	return _u
}

// SetEncounterType sets the "encounter_type" field.
func (_u *EncounterUpdate) SetEncounterType(v encounter.EncounterType) *EncounterUpdate {
	_u.mutation.SetEncounterType(v)
	return _u
}

// SetNillableEncounterType sets the "encounter_type" field if the given value is not nil.
func (_u *EncounterUpdate) SetNillableEncounterType(v *encounter.EncounterType) *EncounterUpdate {
	if v != nil {
		_u.SetEncounterType(*v)
	}
	return _u
}

// SetEncounterDate sets the "encounter_date" field.
func (_u *EncounterUpdate) SetEncounterDate(v time.Time) *EncounterUpdate {
	_u.mutation.SetEncounterDate(v)
	return _u
}

// SetNillableEncounterDate sets the "encounter_date" field if the given value is not nil.
func (_u *EncounterUpdate) SetNillableEncounterDate(v *time.Time) *EncounterUpdate {
	if v != nil {
		_u.SetEncounterDate(*v)
	}
	return _u
}

// SetChiefComplaint sets the "chief_complaint" field.
func (_u *EncounterUpdate) SetChiefComplaint(v string) *EncounterUpdate {
	_u.mutation.SetChiefComplaint(v)
	return _u
}

// SetNillableChiefComplaint sets the "chief_complaint" field if the given value is not nil.
func (_u *EncounterUpdate) SetNillableChiefComplaint(v *string) *EncounterUpdate {
	if v != nil {
		_u.SetChiefComplaint(*v)
	}
	return _u
}

// ClearChiefComplaint clears the value of the "chief_complaint" field.
func (_u *EncounterUpdate) ClearChiefComplaint() *EncounterUpdate {
	_u.mutation.ClearChiefComplaint()
	return _u
}

// SetHistoryOfPresentIllness sets the "history_of_present_illness" field.
func (_u *EncounterUpdate) SetHistoryOfPresentIllness(v string) *EncounterUpdate {
	_u.mutation.SetHistoryOfPresentIllness(v)
	return _u
}

// SetNillableHistoryOfPresentIllness sets the "history_of_present_illness" field if the given value is not nil.
func (_u *EncounterUpdate) SetNillableHistoryOfPresentIllness(v *string) *EncounterUpdate {
	if v != nil {
		_u.SetHistoryOfPresentIllness(*v)
	}
	return _u
}

// ClearHistoryOfPresentIllness clears the value of the "history_of_present_illness" field.
func (_u *EncounterUpdate) ClearHistoryOfPresentIllness() *EncounterUpdate {
	_u.mutation.ClearHistoryOfPresentIllness()
	return _u
}

// SetPhysicalExamination sets the "physical_examination" field.
func (_u *EncounterUpdate) SetPhysicalExamination(v string) *EncounterUpdate {
	_u.mutation.SetPhysicalExamination(v)
	return _u
}

// SetNillablePhysicalExamination sets the "physical_examination" field if the given value is not nil.
func (_u *EncounterUpdate) SetNillablePhysicalExamination(v *string) *EncounterUpdate {
	if v != nil {
		_u.SetPhysicalExamination(*v)
	}
	return _u
}

// ClearPhysicalExamination clears the value of the "physical_examination" field.
func (_u *EncounterUpdate) ClearPhysicalExamination() *EncounterUpdate {
	_u.mutation.ClearPhysicalExamination()
	return _u
}

// SetAssessment sets the "assessment" field.
func (_u *EncounterUpdate) SetAssessment(v string) *EncounterUpdate {
	_u.mutation.SetAssessment(v)
	return _u
}

// SetNillableAssessment sets the "assessment" field if the given value is not nil.
func (_u *EncounterUpdate) SetNillableAssessment(v *string) *EncounterUpdate {
	if v != nil {
		_u.SetAssessment(*v)
	}
	return _u
}

// ClearAssessment clears the value of the "assessment" field.
func (_u *EncounterUpdate) ClearAssessment() *EncounterUpdate {
	_u.mutation.ClearAssessment()
	return _u
}

// SetPlan sets the "plan" field.
func (_u *EncounterUpdate) SetPlan(v string) *EncounterUpdate {
	_u.mutation.SetPlan(v)
	return _u
}

// SetNillablePlan sets the "plan" field if the given value is not nil.
func (_u *EncounterUpdate) SetNillablePlan(v *string) *EncounterUpdate {
	if v != nil {
		_u.SetPlan(*v)
	}
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *EncounterUpdate) ClearPlan() *EncounterUpdate {
	_u.mutation.ClearPlan()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *EncounterUpdate) SetNotes(v string) *EncounterUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *EncounterUpdate) SetNillableNotes(v *string) *EncounterUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *EncounterUpdate) ClearNotes() *EncounterUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetStatus sets the "status" field.
func (_u *EncounterUpdate) SetStatus(v encounter.Status) *EncounterUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EncounterUpdate) SetNillableStatus(v *encounter.Status) *EncounterUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDuration sets the "duration" field.
func (_u *EncounterUpdate) SetDuration(v int) *EncounterUpdate {
	_u.mutation.ResetDuration()
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *EncounterUpdate) SetNillableDuration(v *int) *EncounterUpdate {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// AddDuration adds value to the "duration" field.
func (_u *EncounterUpdate) AddDuration(v int) *EncounterUpdate {
	_u.mutation.AddDuration(v)
	return _u
}

// ClearDuration clears the value of the "duration" field.
func (_u *EncounterUpdate) ClearDuration() *EncounterUpdate {
	_u.mutation.ClearDuration()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *EncounterUpdate) SetPatient(v *Patient) *EncounterUpdate {
	return _u.SetPatientID(v.ID)
}

// SetProvider sets the "provider" edge to the User entity.
func (_u *EncounterUpdate) SetProvider(v *User) *EncounterUpdate {
	return _u.SetProviderID(v.ID)
}

// Mutation returns the EncounterMutation object of the builder.
func (_u *EncounterUpdate) Mutation() *EncounterMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *EncounterUpdate) ClearPatient() *EncounterUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// ClearProvider clears the "provider" edge to the User entity.
func (_u *EncounterUpdate) ClearProvider() *EncounterUpdate {
	_u.mutation.ClearProvider()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EncounterUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EncounterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EncounterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EncounterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EncounterUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := encounter.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EncounterUpdate) check() error {
	if v, ok := _u.mutation.EncounterType(); ok {
		if err := encounter.EncounterTypeValidator(v); err != nil {
			return &ValidationError{Name: "encounter_type", err: fmt.Errorf(`repo: validator failed for field "Encounter.encounter_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := encounter.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Encounter.status": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Encounter.patient"`)
	}
	if _u.mutation.ProviderCleared() && len(_u.mutation.ProviderIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Encounter.provider"`)
	}
	return nil
}

func (_u *EncounterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(encounter.Table, encounter.Columns, sqlgraph.NewFieldSpec(encounter.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(encounter.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(encounter.FieldAppointmentID, field.TypeUUID, value)
	}
	if _u.mutation.AppointmentIDCleared() {
		_spec.ClearField(encounter.FieldAppointmentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.EncounterType(); ok {
		_spec.SetField(encounter.FieldEncounterType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EncounterDate(); ok {
		_spec.SetField(encounter.FieldEncounterDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ChiefComplaint(); ok {
		_spec.SetField(encounter.FieldChiefComplaint, field.TypeString, value)
	}
	if _u.mutation.ChiefComplaintCleared() {
		_spec.ClearField(encounter.FieldChiefComplaint, field.TypeString)
	}
	if value, ok := _u.mutation.HistoryOfPresentIllness(); ok {
		_spec.SetField(encounter.FieldHistoryOfPresentIllness, field.TypeString, value)
	}
	if _u.mutation.HistoryOfPresentIllnessCleared() {
		_spec.ClearField(encounter.FieldHistoryOfPresentIllness, field.TypeString)
	}
	if value, ok := _u.mutation.PhysicalExamination(); ok {
		_spec.SetField(encounter.FieldPhysicalExamination, field.TypeString, value)
	}
	if _u.mutation.PhysicalExaminationCleared() {
		_spec.ClearField(encounter.FieldPhysicalExamination, field.TypeString)
	}
	if value, ok := _u.mutation.Assessment(); ok {
		_spec.SetField(encounter.FieldAssessment, field.TypeString, value)
	}
	if _u.mutation.AssessmentCleared() {
		_spec.ClearField(encounter.FieldAssessment, field.TypeString)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(encounter.FieldPlan, field.TypeString, value)
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(encounter.FieldPlan, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(encounter.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(encounter.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(encounter.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(encounter.FieldDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDuration(); ok {
		_spec.AddField(encounter.FieldDuration, field.TypeInt, value)
	}
	if _u.mutation.DurationCleared() {
		_spec.ClearField(encounter.FieldDuration, field.TypeInt)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   encounter.PatientTable,
			Columns: []string{encounter.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   encounter.PatientTable,
			Columns: []string{encounter.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProviderCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   encounter.ProviderTable,
			Columns: []string{encounter.ProviderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProviderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   encounter.ProviderTable,
			Columns: []string{encounter.ProviderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{encounter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EncounterUpdateOne is the builder for updating a single Encounter entity.
type EncounterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EncounterMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EncounterUpdateOne) SetUpdatedAt(v time.Time) *EncounterUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *EncounterUpdateOne) SetPatientID(v uuid.UUID) *EncounterUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *EncounterUpdateOne) SetNillablePatientID(v *uuid.UUID) *EncounterUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetProviderID sets the "provider_id" field.
func (_u *EncounterUpdateOne) SetProviderID(v uuid.UUID) *EncounterUpdateOne {
	_u.mutation.SetProviderID(v)
	return _u
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (_u *EncounterUpdateOne) SetNillableProviderID(v *uuid.UUID) *EncounterUpdateOne {
	if v != nil {
		_u.SetProviderID(*v)
	}
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *EncounterUpdateOne) SetAppointmentID(v uuid.UUID) *EncounterUpdateOne {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *EncounterUpdateOne) SetNillableAppointmentID(v *uuid.UUID) *EncounterUpdateOne {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// ClearAppointmentID clears the value of the "appointment_id" field.
func (_u *EncounterUpdateOne) ClearAppointmentID() *EncounterUpdateOne {
	_u.mutation.ClearAppointmentID()
	return _u
}

// SetEncounterType sets the "encounter_type" field.
func (_u *EncounterUpdateOne) SetEncounterType(v encounter.EncounterType) *EncounterUpdateOne {
	_u.mutation.SetEncounterType(v)
	return _u
}

// SetNillableEncounterType sets the "encounter_type" field if the given value is not nil.
func (_u *EncounterUpdateOne) SetNillableEncounterType(v *encounter.EncounterType) *EncounterUpdateOne {
	if v != nil {
		_u.SetEncounterType(*v)
	}
	return _u
}

// SetEncounterDate sets the "encounter_date" field.
func (_u *EncounterUpdateOne) SetEncounterDate(v time.Time) *EncounterUpdateOne {
	_u.mutation.SetEncounterDate(v)
	return _u
}

// SetNillableEncounterDate sets the "encounter_date" field if the given value is not nil.
func (_u *EncounterUpdateOne) SetNillableEncounterDate(v *time.Time) *EncounterUpdateOne {
	if v != nil {
		_u.SetEncounterDate(*v)
	}
	return _u
}

// SetChiefComplaint sets the "chief_complaint" field.
func (_u *EncounterUpdateOne) SetChiefComplaint(v string) *EncounterUpdateOne {
	_u.mutation.SetChiefComplaint(v)
	return _u
}

// SetNillableChiefComplaint sets the "chief_complaint" field if the given value is not nil.
func (_u *EncounterUpdateOne) SetNillableChiefComplaint(v *string) *EncounterUpdateOne {
	if v != nil {
		_u.SetChiefComplaint(*v)
	}
	return _u
}

// ClearChiefComplaint clears the value of the "chief_complaint" field.
func (_u *EncounterUpdateOne) ClearChiefComplaint() *EncounterUpdateOne {
	_u.mutation.ClearChiefComplaint()
	return _u
}

// SetHistoryOfPresentIllness sets the "history_of_present_illness" field.
func (_u *EncounterUpdateOne) SetHistoryOfPresentIllness(v string) *EncounterUpdateOne {
	_u.mutation.SetHistoryOfPresentIllness(v)
	return _u
}

// SetNillableHistoryOfPresentIllness sets the "history_of_present_illness" field if the given value is not nil.
func (_u *EncounterUpdateOne) SetNillableHistoryOfPresentIllness(v *string) *EncounterUpdateOne {
	if v != nil {
		_u.SetHistoryOfPresentIllness(*v)
	}
	return _u
}

// ClearHistoryOfPresentIllness clears the value of the "history_of_present_illness" field.
func (_u *EncounterUpdateOne) ClearHistoryOfPresentIllness() *EncounterUpdateOne {
	_u.mutation.ClearHistoryOfPresentIllness()
	return _u
}

// SetPhysicalExamination sets the "physical_examination" field.
func (_u *EncounterUpdateOne) SetPhysicalExamination(v string) *EncounterUpdateOne {
	_u.mutation.SetPhysicalExamination(v)
	return _u
}

// SetNillablePhysicalExamination sets the "physical_examination" field if the given value is not nil.
func (_u *EncounterUpdateOne) SetNillablePhysicalExamination(v *string) *EncounterUpdateOne {
	if v != nil {
		_u.SetPhysicalExamination(*v)
	}
	return _u
}

// ClearPhysicalExamination clears the value of the "physical_examination" field.
func (_u *EncounterUpdateOne) ClearPhysicalExamination() *EncounterUpdateOne {
	_u.mutation.ClearPhysicalExamination()
	return _u
}

// SetAssessment sets the "assessment" field.
func (_u *EncounterUpdateOne) SetAssessment(v string) *EncounterUpdateOne {
	_u.mutation.SetAssessment(v)
	return _u
}

// SetNillableAssessment sets the "assessment" field if the given value is not nil.
func (_u *EncounterUpdateOne) SetNillableAssessment(v *string) *EncounterUpdateOne {
	if v != nil {
		_u.SetAssessment(*v)
	}
	return _u
}

// ClearAssessment clears the value of the "assessment" field.
func (_u *EncounterUpdateOne) ClearAssessment() *EncounterUpdateOne {
	_u.mutation.ClearAssessment()
	return _u
}

// SetPlan sets the "plan" field.
func (_u *EncounterUpdateOne) SetPlan(v string) *EncounterUpdateOne {
	_u.mutation.SetPlan(v)
	return _u
}

// SetNillablePlan sets the "plan" field if the given value is not nil.
func (_u *EncounterUpdateOne) SetNillablePlan(v *string) *EncounterUpdateOne {
	if v != nil {
		_u.SetPlan(*v)
	}
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *EncounterUpdateOne) ClearPlan() *EncounterUpdateOne {
	_u.mutation.ClearPlan()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *EncounterUpdateOne) SetNotes(v string) *EncounterUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *EncounterUpdateOne) SetNillableNotes(v *string) *EncounterUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *EncounterUpdateOne) ClearNotes() *EncounterUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetStatus sets the "status" field.
func (_u *EncounterUpdateOne) SetStatus(v encounter.Status) *EncounterUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EncounterUpdateOne) SetNillableStatus(v *encounter.Status) *EncounterUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDuration sets the "duration" field.
func (_u *EncounterUpdateOne) SetDuration(v int) *EncounterUpdateOne {
	_u.mutation.ResetDuration()
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *EncounterUpdateOne) SetNillableDuration(v *int) *EncounterUpdateOne {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// AddDuration adds value to the "duration" field.
func (_u *EncounterUpdateOne) AddDuration(v int) *EncounterUpdateOne {
	_u.mutation.AddDuration(v)
	return _u
}

// ClearDuration clears the value of the "duration" field.
func (_u *EncounterUpdateOne) ClearDuration() *EncounterUpdateOne {
	_u.mutation.ClearDuration()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *EncounterUpdateOne) SetPatient(v *Patient) *EncounterUpdateOne {
	return _u.SetPatientID(v.ID)
}

// SetProvider sets the "provider" edge to the User entity.
func (_u *EncounterUpdateOne) SetProvider(v *User) *EncounterUpdateOne {
	return _u.SetProviderID(v.ID)
}

// Mutation returns the EncounterMutation object of the builder.
func (_u *EncounterUpdateOne) Mutation() *EncounterMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *EncounterUpdateOne) ClearPatient() *EncounterUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// ClearProvider clears the "provider" edge to the User entity.
func (_u *EncounterUpdateOne) ClearProvider() *EncounterUpdateOne {
	_u.mutation.ClearProvider()
	return _u
}

// Where appends a list predicates to the EncounterUpdate builder.
func (_u *EncounterUpdateOne) Where(ps ...predicate.Encounter) *EncounterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EncounterUpdateOne) Select(field string, fields ...string) *EncounterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Encounter entity.
func (_u *EncounterUpdateOne) Save(ctx context.Context) (*Encounter, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EncounterUpdateOne) SaveX(ctx context.Context) *Encounter {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EncounterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EncounterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EncounterUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := encounter.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EncounterUpdateOne) check() error {
	if v, ok := _u.mutation.EncounterType(); ok {
		if err := encounter.EncounterTypeValidator(v); err != nil {
			return &ValidationError{Name: "encounter_type", err: fmt.Errorf(`repo: validator failed for field "Encounter.encounter_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := encounter.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Encounter.status": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Encounter.patient"`)
	}
	if _u.mutation.ProviderCleared() && len(_u.mutation.ProviderIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Encounter.provider"`)
	}
	return nil
}

func (_u *EncounterUpdateOne) sqlSave(ctx context.Context) (_node *Encounter, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(encounter.Table, encounter.Columns, sqlgraph.NewFieldSpec(encounter.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Encounter.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, encounter.FieldID)
		for _, f := range fields {
			if !encounter.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != encounter.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(encounter.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(encounter.FieldAppointmentID, field.TypeUUID, value)
	}
	if _u.mutation.AppointmentIDCleared() {
		_spec.ClearField(encounter.FieldAppointmentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.EncounterType(); ok {
		_spec.SetField(encounter.FieldEncounterType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EncounterDate(); ok {
		_spec.SetField(encounter.FieldEncounterDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ChiefComplaint(); ok {
		_spec.SetField(encounter.FieldChiefComplaint, field.TypeString, value)
	}
	if _u.mutation.ChiefComplaintCleared() {
		_spec.ClearField(encounter.FieldChiefComplaint, field.TypeString)
	}
	if value, ok := _u.mutation.HistoryOfPresentIllness(); ok {
		_spec.SetField(encounter.FieldHistoryOfPresentIllness, field.TypeString, value)
	}
	if _u.mutation.HistoryOfPresentIllnessCleared() {
		_spec.ClearField(encounter.FieldHistoryOfPresentIllness, field.TypeString)
	}
	if value, ok := _u.mutation.PhysicalExamination(); ok {
		_spec.SetField(encounter.FieldPhysicalExamination, field.TypeString, value)
	}
	if _u.mutation.PhysicalExaminationCleared() {
		_spec.ClearField(encounter.FieldPhysicalExamination, field.TypeString)
	}
	if value, ok := _u.mutation.Assessment(); ok {
		_spec.SetField(encounter.FieldAssessment, field.TypeString, value)
	}
	if _u.mutation.AssessmentCleared() {
		_spec.ClearField(encounter.FieldAssessment, field.TypeString)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(encounter.FieldPlan, field.TypeString, value)
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(encounter.FieldPlan, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(encounter.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(encounter.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(encounter.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(encounter.FieldDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDuration(); ok {
		_spec.AddField(encounter.FieldDuration, field.TypeInt, value)
	}
	if _u.mutation.DurationCleared() {
		_spec.ClearField(encounter.FieldDuration, field.TypeInt)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   encounter.PatientTable,
			Columns: []string{encounter.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   encounter.PatientTable,
			Columns: []string{encounter.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProviderCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   encounter.ProviderTable,
			Columns: []string{encounter.ProviderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProviderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   encounter.ProviderTable,
			Columns: []string{encounter.ProviderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Encounter{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{encounter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
