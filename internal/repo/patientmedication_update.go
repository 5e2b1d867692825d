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
	"github.com/caretide/caretide_backend/internal/repo/medicationmaster"
	"github.com/caretide/caretide_backend/internal/repo/patient"
	"github.com/caretide/caretide_backend/internal/repo/patientmedication"
	"github.com/caretide/caretide_backend/internal/repo/predicate"
	"github.com/caretide/caretide_backend/internal/repo/user"
	"github.com/google/uuid"
)

// PatientMedicationUpdate is the builder for updating PatientMedication entities.
type PatientMedicationUpdate struct {
	config
	hooks    []Hook
	mutation *PatientMedicationMutation
}

// Where appends a list predicates to the PatientMedicationUpdate builder.
func (_u *PatientMedicationUpdate) Where(ps ...predicate.PatientMedication) *PatientMedicationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientMedicationUpdate) SetUpdatedAt(v time.Time) *PatientMedicationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PatientMedicationUpdate) SetPatientID(v uuid.UUID) *PatientMedicationUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PatientMedicationUpdate) SetNillablePatientID(v *uuid.UUID) *PatientMedicationUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetMedicationID sets the "medication_id" field.
func (_u *PatientMedicationUpdate) SetMedicationID(v uuid.UUID) *PatientMedicationUpdate {
	_u.mutation.SetMedicationID(v)
	return _u
}

// SetNillableMedicationID sets the "medication_id" field if the given value is not nil.
func (_u *PatientMedicationUpdate) SetNillableMedicationID(v *uuid.UUID) *PatientMedicationUpdate {
	if v != nil {
		_u.SetMedicationID(*v)
	}
	return _u
}

// SetProviderID sets the "provider_id" field.
func (_u *PatientMedicationUpdate) SetProviderID(v uuid.UUID) *PatientMedicationUpdate {
	_u.mutation.SetProviderID(v)
	return _u
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (_u *PatientMedicationUpdate) SetNillableProviderID(v *uuid.UUID) *PatientMedicationUpdate {
	if v != nil {
		_u.SetProviderID(*v)
	}
	return _u
}

// SetDosage sets the "dosage" field.
func (_u *PatientMedicationUpdate) SetDosage(v string) *PatientMedicationUpdate {
	_u.mutation.SetDosage(v)
	return _u
}

// SetNillableDosage sets the "dosage" field if the given value is not nil.
func (_u *PatientMedicationUpdate) SetNillableDosage(v *string) *PatientMedicationUpdate {
	if v != nil {
		_u.SetDosage(*v)
	}
	return _u
}

// SetFrequency sets the "frequency" field.
func (_u *PatientMedicationUpdate) SetFrequency(v string) *PatientMedicationUpdate {
	_u.mutation.SetFrequency(v)
	return _u
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_u *PatientMedicationUpdate) SetNillableFrequency(v *string) *PatientMedicationUpdate {
	if v != nil {
		_u.SetFrequency(*v)
	}
	return _u
}

// SetRoute sets the "route" field.
func (_u *PatientMedicationUpdate) SetRoute(v string) *PatientMedicationUpdate {
	_u.mutation.SetRoute(v)
	return _u
}

// SetNillableRoute sets the "route" field if the given value is not nil.
func (_u *PatientMedicationUpdate) SetNillableRoute(v *string) *PatientMedicationUpdate {
	if v != nil {
		_u.SetRoute(*v)
	}
	return _u
}

// ClearRoute clears the value of the "route" field.
func (_u *PatientMedicationUpdate) ClearRoute() *PatientMedicationUpdate {
	_u.mutation.ClearRoute()
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *PatientMedicationUpdate) SetStartDate(v time.Time) *PatientMedicationUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *PatientMedicationUpdate) SetNillableStartDate(v *time.Time) *PatientMedicationUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *PatientMedicationUpdate) SetEndDate(v time.Time) *PatientMedicationUpdate {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *PatientMedicationUpdate) SetNillableEndDate(v *time.Time) *PatientMedicationUpdate {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// ClearEndDate clears the value of the "end_date" field.
func (_u *PatientMedicationUpdate) ClearEndDate() *PatientMedicationUpdate {
	_u.mutation.ClearEndDate()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PatientMedicationUpdate) SetStatus(v patientmedication.Status) *PatientMedicationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PatientMedicationUpdate) SetNillableStatus(v *patientmedication.Status) *PatientMedicationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *PatientMedicationUpdate) SetReason(v string) *PatientMedicationUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *PatientMedicationUpdate) SetNillableReason(v *string) *PatientMedicationUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *PatientMedicationUpdate) ClearReason() *PatientMedicationUpdate {
	_u.mutation.ClearReason()
	return _u
}

// SetInstructions sets the "instructions" field.
func (_u *PatientMedicationUpdate) SetInstructions(v string) *PatientMedicationUpdate {
	_u.mutation.SetInstructions(v)
	return _u
}

// SetNillableInstructions sets the "instructions" field if the given value is not nil.
func (_u *PatientMedicationUpdate) SetNillableInstructions(v *string) *PatientMedicationUpdate {
	if v != nil {
		_u.SetInstructions(*v)
	}
	return _u
}

// ClearInstructions clears the value of the "instructions" field.
func (_u *PatientMedicationUpdate) ClearInstructions() *PatientMedicationUpdate {
	_u.mutation.ClearInstructions()
	return _u
}

// SetEncounterID sets the "encounter_id" field.
func (_u *PatientMedicationUpdate) SetEncounterID(v uuid.UUID) *PatientMedicationUpdate {
	_u.mutation.SetEncounterID(v)
	return _u
}

// SetNillableEncounterID sets the "encounter_id" field if the given value is not nil.
func (_u *PatientMedicationUpdate) SetNillableEncounterID(v *uuid.UUID) *PatientMedicationUpdate {
	if v != nil {
		_u.SetEncounterID(*v)
	}
	return _u
}

// ClearEncounterID clears the value of the "encounter_id" field.
func (_u *PatientMedicationUpdate) ClearEncounterID() *PatientMedicationUpdate {
	_u.mutation.ClearEncounterID()
	return _u
}

// SetAdverseReactions sets the "adverse_reactions" field.
func (_u *PatientMedicationUpdate) SetAdverseReactions(v string) *PatientMedicationUpdate {
	_u.mutation.SetAdverseReactions(v)
	return _u
}

// SetNillableAdverseReactions sets the "adverse_reactions" field if the given value is not nil.
func (_u *PatientMedicationUpdate) SetNillableAdverseReactions(v *string) *PatientMedicationUpdate {
	if v != nil {
		_u.SetAdverseReactions(*v)
	}
	return _u
}

// ClearAdverseReactions clears the value of the "adverse_reactions" field.
func (_u *PatientMedicationUpdate) ClearAdverseReactions() *PatientMedicationUpdate {
	_u.mutation.ClearAdverseReactions()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *PatientMedicationUpdate) SetPatient(v *Patient) *PatientMedicationUpdate {
	return _u.SetPatientID(v.ID)
}

// SetMedication sets the "medication" edge to the MedicationMaster entity.
func (_u *PatientMedicationUpdate) SetMedication(v *MedicationMaster) *PatientMedicationUpdate {
	return _u.SetMedicationID(v.ID)
}

// SetProvider sets the "provider" edge to the User entity.
func (_u *PatientMedicationUpdate) SetProvider(v *User) *PatientMedicationUpdate {
	return _u.SetProviderID(v.ID)
}

// Mutation returns the PatientMedicationMutation object of the builder.
func (_u *PatientMedicationUpdate) Mutation() *PatientMedicationMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *PatientMedicationUpdate) ClearPatient() *PatientMedicationUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// ClearMedication clears the "medication" edge to the MedicationMaster entity.
func (_u *PatientMedicationUpdate) ClearMedication() *PatientMedicationUpdate {
	_u.mutation.ClearMedication()
	return _u
}

// ClearProvider clears the "provider" edge to the User entity.
func (_u *PatientMedicationUpdate) ClearProvider() *PatientMedicationUpdate {
	_u.mutation.ClearProvider()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatientMedicationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientMedicationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatientMedicationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientMedicationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientMedicationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patientmedication.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientMedicationUpdate) check() error {
	if v, ok := _u.mutation.Dosage(); ok {
		if err := patientmedication.DosageValidator(v); err != nil {
			return &ValidationError{Name: "dosage", err: fmt.Errorf(`repo: validator failed for field "PatientMedication.dosage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Frequency(); ok {
		if err := patientmedication.FrequencyValidator(v); err != nil {
			return &ValidationError{Name: "frequency", err: fmt.Errorf(`repo: validator failed for field "PatientMedication.frequency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Route(); ok {
		if err := patientmedication.RouteValidator(v); err != nil {
			return &ValidationError{Name: "route", err: fmt.Errorf(`repo: validator failed for field "PatientMedication.route": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := patientmedication.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "PatientMedication.status": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PatientMedication.patient"`)
	}
	if _u.mutation.MedicationCleared() && len(_u.mutation.MedicationIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PatientMedication.medication"`)
	}
	if _u.mutation.ProviderCleared() && len(_u.mutation.ProviderIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PatientMedication.provider"`)
	}
	return nil
}

func (_u *PatientMedicationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patientmedication.Table, patientmedication.Columns, sqlgraph.NewFieldSpec(patientmedication.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(patientmedication.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Dosage(); ok {
		_spec.SetField(patientmedication.FieldDosage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Frequency(); ok {
		_spec.SetField(patientmedication.FieldFrequency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Route(); ok {
		_spec.SetField(patientmedication.FieldRoute, field.TypeString, value)
	}
	if _u.mutation.RouteCleared() {
		_spec.ClearField(patientmedication.FieldRoute, field.TypeString)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(patientmedication.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(patientmedication.FieldEndDate, field.TypeTime, value)
	}
	if _u.mutation.EndDateCleared() {
		_spec.ClearField(patientmedication.FieldEndDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(patientmedication.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(patientmedication.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(patientmedication.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.Instructions(); ok {
		_spec.SetField(patientmedication.FieldInstructions, field.TypeString, value)
	}
	if _u.mutation.InstructionsCleared() {
		_spec.ClearField(patientmedication.FieldInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.EncounterID(); ok {
		_spec.SetField(patientmedication.FieldEncounterID, field.TypeUUID, value)
	}
	if _u.mutation.EncounterIDCleared() {
		_spec.ClearField(patientmedication.FieldEncounterID, field.TypeUUID)
	}
	if value, ok := _u.mutation.AdverseReactions(); ok {
		_spec.SetField(patientmedication.FieldAdverseReactions, field.TypeString, value)
	}
	if _u.mutation.AdverseReactionsCleared() {
		_spec.ClearField(patientmedication.FieldAdverseReactions, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patientmedication.PatientTable,
			Columns: []string{patientmedication.PatientColumn},
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
			Table:   patientmedication.PatientTable,
			Columns: []string{patientmedication.PatientColumn},
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
	if _u.mutation.MedicationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patientmedication.MedicationTable,
			Columns: []string{patientmedication.MedicationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(medicationmaster.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MedicationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patientmedication.MedicationTable,
			Columns: []string{patientmedication.MedicationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(medicationmaster.FieldID, field.TypeUUID),
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
			Table:   patientmedication.ProviderTable,
			Columns: []string{patientmedication.ProviderColumn},
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
			Table:   patientmedication.ProviderTable,
			Columns: []string{patientmedication.ProviderColumn},
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
			err = &NotFoundError{patientmedication.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatientMedicationUpdateOne is the builder for updating a single PatientMedication entity.
type PatientMedicationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatientMedicationMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientMedicationUpdateOne) SetUpdatedAt(v time.Time) *PatientMedicationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PatientMedicationUpdateOne) SetPatientID(v uuid.UUID) *PatientMedicationUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PatientMedicationUpdateOne) SetNillablePatientID(v *uuid.UUID) *PatientMedicationUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetMedicationID sets the "medication_id" field.
func (_u *PatientMedicationUpdateOne) SetMedicationID(v uuid.UUID) *PatientMedicationUpdateOne {
	_u.mutation.SetMedicationID(v)
	return _u
}

// SetNillableMedicationID sets the "medication_id" field if the given value is not nil.
func (_u *PatientMedicationUpdateOne) SetNillableMedicationID(v *uuid.UUID) *PatientMedicationUpdateOne {
	if v != nil {
		_u.SetMedicationID(*v)
	}
	return _u
}

// SetProviderID sets the "provider_id" field.
func (_u *PatientMedicationUpdateOne) SetProviderID(v uuid.UUID) *PatientMedicationUpdateOne {
	_u.mutation.SetProviderID(v)
	return _u
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (_u *PatientMedicationUpdateOne) SetNillableProviderID(v *uuid.UUID) *PatientMedicationUpdateOne {
	if v != nil {
		_u.SetProviderID(*v)
	}
	return _u
}

// SetDosage sets the "dosage" field.
func (_u *PatientMedicationUpdateOne) SetDosage(v string) *PatientMedicationUpdateOne {
	_u.mutation.SetDosage(v)
	return _u
}

// SetNillableDosage sets the "dosage" field if the given value is not nil.
func (_u *PatientMedicationUpdateOne) SetNillableDosage(v *string) *PatientMedicationUpdateOne {
	if v != nil {
		_u.SetDosage(*v)
	}
	return _u
}

// SetFrequency sets the "frequency" field.
func (_u *PatientMedicationUpdateOne) SetFrequency(v string) *PatientMedicationUpdateOne {
	_u.mutation.SetFrequency(v)
	return _u
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_u *PatientMedicationUpdateOne) SetNillableFrequency(v *string) *PatientMedicationUpdateOne {
	if v != nil {
		_u.SetFrequency(*v)
	}
	return _u
}

// SetRoute sets the "route" field.
func (_u *PatientMedicationUpdateOne) SetRoute(v string) *PatientMedicationUpdateOne {
	_u.mutation.SetRoute(v)
	return _u
}

// SetNillableRoute sets the "route" field if the given value is not nil.
func (_u *PatientMedicationUpdateOne) SetNillableRoute(v *string) *PatientMedicationUpdateOne {
	if v != nil {
		_u.SetRoute(*v)
	}
	return _u
}

// ClearRoute clears the value of the "route" field.
func (_u *PatientMedicationUpdateOne) ClearRoute() *PatientMedicationUpdateOne {
	_u.mutation.ClearRoute()
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *PatientMedicationUpdateOne) SetStartDate(v time.Time) *PatientMedicationUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *PatientMedicationUpdateOne) SetNillableStartDate(v *time.Time) *PatientMedicationUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *PatientMedicationUpdateOne) SetEndDate(v time.Time) *PatientMedicationUpdateOne {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *PatientMedicationUpdateOne) SetNillableEndDate(v *time.Time) *PatientMedicationUpdateOne {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// ClearEndDate clears the value of the "end_date" field.
func (_u *PatientMedicationUpdateOne) ClearEndDate() *PatientMedicationUpdateOne {
	_u.mutation.ClearEndDate()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PatientMedicationUpdateOne) SetStatus(v patientmedication.Status) *PatientMedicationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PatientMedicationUpdateOne) SetNillableStatus(v *patientmedication.Status) *PatientMedicationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *PatientMedicationUpdateOne) SetReason(v string) *PatientMedicationUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *PatientMedicationUpdateOne) SetNillableReason(v *string) *PatientMedicationUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *PatientMedicationUpdateOne) ClearReason() *PatientMedicationUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// SetInstructions sets the "instructions" field.
func (_u *PatientMedicationUpdateOne) SetInstructions(v string) *PatientMedicationUpdateOne {
	_u.mutation.SetInstructions(v)
	return _u
}

// SetNillableInstructions sets the "instructions" field if the given value is not nil.
func (_u *PatientMedicationUpdateOne) SetNillableInstructions(v *string) *PatientMedicationUpdateOne {
	if v != nil {
		_u.SetInstructions(*v)
	}
	return _u
}

// ClearInstructions clears the value of the "instructions" field.
func (_u *PatientMedicationUpdateOne) ClearInstructions() *PatientMedicationUpdateOne {
	_u.mutation.ClearInstructions()
	return _u
}

// SetEncounterID sets the "encounter_id" field.
func (_u *PatientMedicationUpdateOne) SetEncounterID(v uuid.UUID) *PatientMedicationUpdateOne {
	_u.mutation.SetEncounterID(v)
	return _u
}

// SetNillableEncounterID sets the "encounter_id" field if the given value is not nil.
func (_u *PatientMedicationUpdateOne) SetNillableEncounterID(v *uuid.UUID) *PatientMedicationUpdateOne {
	if v != nil {
		_u.SetEncounterID(*v)
	}
	return _u
}

// ClearEncounterID clears the value of the "encounter_id" field.
func (_u *PatientMedicationUpdateOne) ClearEncounterID() *PatientMedicationUpdateOne {
	_u.mutation.ClearEncounterID()
	return _u
}

// SetAdverseReactions sets the "adverse_reactions" field.
func (_u *PatientMedicationUpdateOne) SetAdverseReactions(v string) *PatientMedicationUpdateOne {
	_u.mutation.SetAdverseReactions(v)
	return _u
}

// SetNillableAdverseReactions sets the "adverse_reactions" field if the given value is not nil.
func (_u *PatientMedicationUpdateOne) SetNillableAdverseReactions(v *string) *PatientMedicationUpdateOne {
	if v != nil {
		_u.SetAdverseReactions(*v)
	}
	return _u
}

// ClearAdverseReactions clears the value of the "adverse_reactions" field.
func (_u *PatientMedicationUpdateOne) ClearAdverseReactions() *PatientMedicationUpdateOne {
	_u.mutation.ClearAdverseReactions()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *PatientMedicationUpdateOne) SetPatient(v *Patient) *PatientMedicationUpdateOne {
	return _u.SetPatientID(v.ID)
}

// SetMedication sets the "medication" edge to the MedicationMaster entity.
func (_u *PatientMedicationUpdateOne) SetMedication(v *MedicationMaster) *PatientMedicationUpdateOne {
	return _u.SetMedicationID(v.ID)
}

// SetProvider sets the "provider" edge to the User entity.
func (_u *PatientMedicationUpdateOne) SetProvider(v *User) *PatientMedicationUpdateOne {
	return _u.SetProviderID(v.ID)
}

// Mutation returns the PatientMedicationMutation object of the builder.
func (_u *PatientMedicationUpdateOne) Mutation() *PatientMedicationMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *PatientMedicationUpdateOne) ClearPatient() *PatientMedicationUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// ClearMedication clears the "medication" edge to the MedicationMaster entity.
func (_u *PatientMedicationUpdateOne) ClearMedication() *PatientMedicationUpdateOne {
	_u.mutation.ClearMedication()
	return _u
}

// ClearProvider clears the "provider" edge to the User entity.
func (_u *PatientMedicationUpdateOne) ClearProvider() *PatientMedicationUpdateOne {
	_u.mutation.ClearProvider()
	return _u
}

// Where appends a list predicates to the PatientMedicationUpdate builder.
func (_u *PatientMedicationUpdateOne) Where(ps ...predicate.PatientMedication) *PatientMedicationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatientMedicationUpdateOne) Select(field string, fields ...string) *PatientMedicationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PatientMedication entity.
func (_u *PatientMedicationUpdateOne) Save(ctx context.Context) (*PatientMedication, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientMedicationUpdateOne) SaveX(ctx context.Context) *PatientMedication {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatientMedicationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientMedicationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientMedicationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patientmedication.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientMedicationUpdateOne) check() error {
	if v, ok := _u.mutation.Dosage(); ok {
		if err := patientmedication.DosageValidator(v); err != nil {
			return &ValidationError{Name: "dosage", err: fmt.Errorf(`repo: validator failed for field "PatientMedication.dosage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Frequency(); ok {
		if err := patientmedication.FrequencyValidator(v); err != nil {
			return &ValidationError{Name: "frequency", err: fmt.Errorf(`repo: validator failed for field "PatientMedication.frequency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Route(); ok {
		if err := patientmedication.RouteValidator(v); err != nil {
			return &ValidationError{Name: "route", err: fmt.Errorf(`repo: validator failed for field "PatientMedication.route": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := patientmedication.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "PatientMedication.status": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PatientMedication.patient"`)
	}
	if _u.mutation.MedicationCleared() && len(_u.mutation.MedicationIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PatientMedication.medication"`)
	}
	if _u.mutation.ProviderCleared() && len(_u.mutation.ProviderIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PatientMedication.provider"`)
	}
	return nil
}

func (_u *PatientMedicationUpdateOne) sqlSave(ctx context.Context) (_node *PatientMedication, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patientmedication.Table, patientmedication.Columns, sqlgraph.NewFieldSpec(patientmedication.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "PatientMedication.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patientmedication.FieldID)
		for _, f := range fields {
			if !patientmedication.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != patientmedication.FieldID {
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
		_spec.SetField(patientmedication.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Dosage(); ok {
		_spec.SetField(patientmedication.FieldDosage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Frequency(); ok {
		_spec.SetField(patientmedication.FieldFrequency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Route(); ok {
		_spec.SetField(patientmedication.FieldRoute, field.TypeString, value)
	}
	if _u.mutation.RouteCleared() {
		_spec.ClearField(patientmedication.FieldRoute, field.TypeString)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(patientmedication.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(patientmedication.FieldEndDate, field.TypeTime, value)
	}
	if _u.mutation.EndDateCleared() {
		_spec.ClearField(patientmedication.FieldEndDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(patientmedication.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(patientmedication.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(patientmedication.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.Instructions(); ok {
		_spec.SetField(patientmedication.FieldInstructions, field.TypeString, value)
	}
	if _u.mutation.InstructionsCleared() {
		_spec.ClearField(patientmedication.FieldInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.EncounterID(); ok {
		_spec.SetField(patientmedication.FieldEncounterID, field.TypeUUID, value)
	}
	if _u.mutation.EncounterIDCleared() {
		_spec.ClearField(patientmedication.FieldEncounterID, field.TypeUUID)
	}
	if value, ok := _u.mutation.AdverseReactions(); ok {
		_spec.SetField(patientmedication.FieldAdverseReactions, field.TypeString, value)
	}
	if _u.mutation.AdverseReactionsCleared() {
		_spec.ClearField(patientmedication.FieldAdverseReactions, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patientmedication.PatientTable,
			Columns: []string{patientmedication.PatientColumn},
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
			Table:   patientmedication.PatientTable,
			Columns: []string{patientmedication.PatientColumn},
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
	if _u.mutation.MedicationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patientmedication.MedicationTable,
			Columns: []string{patientmedication.MedicationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(medicationmaster.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MedicationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patientmedication.MedicationTable,
			Columns: []string{patientmedication.MedicationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(medicationmaster.FieldID, field.TypeUUID),
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
			Table:   patientmedication.ProviderTable,
			Columns: []string{patientmedication.ProviderColumn},
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
			Table:   patientmedication.ProviderTable,
			Columns: []string{patientmedication.ProviderColumn},
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
	_node = &PatientMedication{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patientmedication.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
