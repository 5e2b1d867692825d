// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/caretide/caretide_backend/internal/repo/encounter"
	"github.com/caretide/caretide_backend/internal/repo/patient"
	"github.com/caretide/caretide_backend/internal/repo/user"
	"github.com/google/uuid"
)

// EncounterCreate is the builder for creating a Encounter entity.
type EncounterCreate struct {
	config
	mutation *EncounterMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *EncounterCreate) SetCreatedAt(v time.Time) *EncounterCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EncounterCreate) SetNillableCreatedAt(v *time.Time) *EncounterCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EncounterCreate) SetUpdatedAt(v time.Time) *EncounterCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EncounterCreate) SetNillableUpdatedAt(v *time.Time) *EncounterCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetEncounterID sets the "encounter_id" field.
func (_c *EncounterCreate) SetEncounterID(v string) *EncounterCreate {
	_c.mutation.SetEncounterID(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *EncounterCreate) SetPatientID(v uuid.UUID) *EncounterCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetProviderID sets the "provider_id" field.
func (_c *EncounterCreate) SetProviderID(v uuid.UUID) *EncounterCreate {
	_c.mutation.SetProviderID(v)
	return _c
}

// SetAppointmentID sets the "appointment_id" field.
func (_c *EncounterCreate) SetAppointmentID(v uuid.UUID) *EncounterCreate {
	_c.mutation.SetAppointmentID(v)
	return _c
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_c *EncounterCreate) SetNillableAppointmentID(v *uuid.UUID) *EncounterCreate {
	if v != nil {
		_c.SetAppointmentID(*v)
	}
	return _c
}

// SetEncounterType sets the "encounter_type" field.
func (_c *EncounterCreate) SetEncounterType(v encounter.EncounterType) *EncounterCreate {
	_c.mutation.SetEncounterType(v)
	return _c
}

// SetEncounterDate sets the "encounter_date" field.
func (_c *EncounterCreate) SetEncounterDate(v time.Time) *EncounterCreate {
	_c.mutation.SetEncounterDate(v)
	return _c
}

// SetChiefComplaint sets the "chief_complaint" field.
func (_c *EncounterCreate) SetChiefComplaint(v string) *EncounterCreate {
	_c.mutation.SetChiefComplaint(v)
	return _c
}

// SetNillableChiefComplaint sets the "chief_complaint" field if the given value is not nil.
func (_c *EncounterCreate) SetNillableChiefComplaint(v *string) *EncounterCreate {
	if v != nil {
		_c.SetChiefComplaint(*v)
	}
	return _c
}

// SetHistoryOfPresentIllness sets the "history_of_present_illness" field.
func (_c *EncounterCreate) SetHistoryOfPresentIllness(v string) *EncounterCreate {
	_c.mutation.SetHistoryOfPresentIllness(v)
	return _c
}

// SetNillableHistoryOfPresentIllness sets the "history_of_present_illness" field if the given value is not nil.
func (_c *EncounterCreate) SetNillableHistoryOfPresentIllness(v *string) *EncounterCreate {
	if v != nil {
		_c.SetHistoryOfPresentIllness(*v)
	}
	return _c
}

// SetPhysicalExamination sets the "physical_examination" field.
func (_c *EncounterCreate) SetPhysicalExamination(v string) *EncounterCreate {
	_c.mutation.SetPhysicalExamination(v)
	return _c
}

// SetNillablePhysicalExamination sets the "physical_examination" field if the given value is not nil.
func (_c *EncounterCreate) SetNillablePhysicalExamination(v *string) *EncounterCreate {
	if v != nil {
		_c.SetPhysicalExamination(*v)
	}
	return _c
}

// SetAssessment sets the "assessment" field.
func (_c *EncounterCreate) SetAssessment(v string) *EncounterCreate {
	_c.mutation.SetAssessment(v)
	return _c
}

// SetNillableAssessment sets the "assessment" field if the given value is not nil.
func (_c *EncounterCreate) SetNillableAssessment(v *string) *EncounterCreate {
	if v != nil {
		_c.SetAssessment(*v)
	}
	return _c
}

// SetPlan sets the "plan" field.
func (_c *EncounterCreate) SetPlan(v string) *EncounterCreate {
	_c.mutation.SetPlan(v)
	return _c
}

// SetNillablePlan sets the "plan" field if the given value is not nil.
func (_c *EncounterCreate) SetNillablePlan(v *string) *EncounterCreate {
	if v != nil {
		_c.SetPlan(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *EncounterCreate) SetNotes(v string) *EncounterCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *EncounterCreate) SetNillableNotes(v *string) *EncounterCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *EncounterCreate) SetStatus(v encounter.Status) *EncounterCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *EncounterCreate) SetNillableStatus(v *encounter.Status) *EncounterCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDuration sets the "duration" field.
func (_c *EncounterCreate) SetDuration(v int) *EncounterCreate {
	_c.mutation.SetDuration(v)
	return _c
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_c *EncounterCreate) SetNillableDuration(v *int) *EncounterCreate {
	if v != nil {
		_c.SetDuration(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EncounterCreate) SetID(v uuid.UUID) *EncounterCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EncounterCreate) SetNillableID(v *uuid.UUID) *EncounterCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *EncounterCreate) SetPatient(v *Patient) *EncounterCreate {
	return _c.SetPatientID(v.ID)
}

// SetProvider sets the "provider" edge to the User entity.
func (_c *EncounterCreate) SetProvider(v *User) *EncounterCreate {
	return _c.SetProviderID(v.ID)
}

// Mutation returns the EncounterMutation object of the builder.
func (_c *EncounterCreate) Mutation() *EncounterMutation {
	return _c.mutation
}

// Save creates the Encounter in the database.
func (_c *EncounterCreate) Save(ctx context.Context) (*Encounter, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EncounterCreate) SaveX(ctx context.Context) *Encounter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EncounterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EncounterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EncounterCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := encounter.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := encounter.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := encounter.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := encounter.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EncounterCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Encounter.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Encounter.updated_at"`)}
	}
	if _, ok := _c.mutation.EncounterID(); !ok {
		return &ValidationError{Name: "encounter_id", err: errors.New(`repo: missing required field "Encounter.encounter_id"`)}
	}
	if v, ok := _c.mutation.EncounterID(); ok {
		if err := encounter.EncounterIDValidator(v); err != nil {
			return &ValidationError{Name: "encounter_id", err: fmt.Errorf(`repo: validator failed for field "Encounter.encounter_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "Encounter.patient_id"`)}
	}
	if _, ok := _c.mutation.ProviderID(); !ok {
		return &ValidationError{Name: "provider_id", err: errors.New(`repo: missing required field "Encounter.provider_id"`)}
	}
	if _, ok := _c.mutation.EncounterType(); !ok {
		return &ValidationError{Name: "encounter_type", err: errors.New(`repo: missing required field "Encounter.encounter_type"`)}
	}
	if v, ok := _c.mutation.EncounterType(); ok {
		if err := encounter.EncounterTypeValidator(v); err != nil {
			return &ValidationError{Name: "encounter_type", err: fmt.Errorf(`repo: validator failed for field "Encounter.encounter_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EncounterDate(); !ok {
		return &ValidationError{Name: "encounter_date", err: errors.New(`repo: missing required field "Encounter.encounter_date"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Encounter.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := encounter.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Encounter.status": %w`, err)}
		}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "Encounter.patient"`)}
	}
	if len(_c.mutation.ProviderIDs()) == 0 {
		return &ValidationError{Name: "provider", err: errors.New(`repo: missing required edge "Encounter.provider"`)}
	}
	return nil
}

func (_c *EncounterCreate) sqlSave(ctx context.Context) (*Encounter, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EncounterCreate) createSpec() (*Encounter, *sqlgraph.CreateSpec) {
	var (
		_node = &Encounter{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(encounter.Table, sqlgraph.NewFieldSpec(encounter.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(encounter.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(encounter.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.EncounterID(); ok {
		_spec.SetField(encounter.FieldEncounterID, field.TypeString, value)
		_node.EncounterID = value
	}
	if value, ok := _c.mutation.AppointmentID(); ok {
		_spec.SetField(encounter.FieldAppointmentID, field.TypeUUID, value)
		_node.AppointmentID = &value
	}
	if value, ok := _c.mutation.EncounterType(); ok {
		_spec.SetField(encounter.FieldEncounterType, field.TypeEnum, value)
		_node.EncounterType = value
	}
	if value, ok := _c.mutation.EncounterDate(); ok {
		_spec.SetField(encounter.FieldEncounterDate, field.TypeTime, value)
		_node.EncounterDate = value
	}
	if value, ok := _c.mutation.ChiefComplaint(); ok {
		_spec.SetField(encounter.FieldChiefComplaint, field.TypeString, value)
		_node.ChiefComplaint = &value
	}
	if value, ok := _c.mutation.HistoryOfPresentIllness(); ok {
		_spec.SetField(encounter.FieldHistoryOfPresentIllness, field.TypeString, value)
		_node.HistoryOfPresentIllness = &value
	}
	if value, ok := _c.mutation.PhysicalExamination(); ok {
		_spec.SetField(encounter.FieldPhysicalExamination, field.TypeString, value)
		_node.PhysicalExamination = &value
	}
	if value, ok := _c.mutation.Assessment(); ok {
		_spec.SetField(encounter.FieldAssessment, field.TypeString, value)
		_node.Assessment = &value
	}
	if value, ok := _c.mutation.Plan(); ok {
		_spec.SetField(encounter.FieldPlan, field.TypeString, value)
		_node.Plan = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(encounter.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(encounter.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Duration(); ok {
		_spec.SetField(encounter.FieldDuration, field.TypeInt, value)
		_node.Duration = &value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
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
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProviderIDs(); len(nodes) > 0 {
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
		_node.ProviderID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Encounter.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EncounterUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *EncounterCreate) OnConflict(opts ...sql.ConflictOption) *EncounterUpsertOne {
	_c.conflict = opts
	return &EncounterUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Encounter.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EncounterCreate) OnConflictColumns(columns ...string) *EncounterUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EncounterUpsertOne{
		create: _c,
	}
}

type (
	// EncounterUpsertOne is the builder for "upsert"-ing
	//  one Encounter node.
	EncounterUpsertOne struct {
		create *EncounterCreate
	}

	// EncounterUpsert is the "OnConflict" setter.
	EncounterUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *EncounterUpsert) SetUpdatedAt(v time.Time) *EncounterUpsert {
	u.Set(encounter.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EncounterUpsert) UpdateUpdatedAt() *EncounterUpsert {
	u.SetExcluded(encounter.FieldUpdatedAt)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *EncounterUpsert) SetPatientID(v uuid.UUID) *EncounterUpsert {
	u.Set(encounter.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *EncounterUpsert) UpdatePatientID() *EncounterUpsert {
	u.SetExcluded(encounter.FieldPatientID)
	return u
}

// SetProviderID sets the "provider_id" field.
func (u *EncounterUpsert) SetProviderID(v uuid.UUID) *EncounterUpsert {
	u.Set(encounter.FieldProviderID, v)
	return u
}

// UpdateProviderID sets the "provider_id" field to the value that was provided on create.
func (u *EncounterUpsert) UpdateProviderID() *EncounterUpsert {
	u.SetExcluded(encounter.FieldProviderID)
	return u
}

// SetAppointmentID sets the "appointment_id" field.
func (u *EncounterUpsert) SetAppointmentID(v uuid.UUID) *EncounterUpsert {
	u.Set(encounter.FieldAppointmentID, v)
	return u
}

// UpdateAppointmentID sets the "appointment_id" field to the value that was provided on create.
func (u *EncounterUpsert) UpdateAppointmentID() *EncounterUpsert {
	u.SetExcluded(encounter.FieldAppointmentID)
	return u
}

// ClearAppointmentID clears the value of the "appointment_id" field.
func (u *EncounterUpsert) ClearAppointmentID() *EncounterUpsert {
	u.SetNull(encounter.FieldAppointmentID)
	return u
}

// SetEncounterType sets the "encounter_type" field.
func (u *EncounterUpsert) SetEncounterType(v encounter.EncounterType) *EncounterUpsert {
	u.Set(encounter.FieldEncounterType, v)
	return u
}

// UpdateEncounterType sets the "encounter_type" field to the value that was provided on create.
func (u *EncounterUpsert) UpdateEncounterType() *EncounterUpsert {
	u.SetExcluded(encounter.FieldEncounterType)
	return u
}

// SetEncounterDate sets the "encounter_date" field.
func (u *EncounterUpsert) SetEncounterDate(v time.Time) *EncounterUpsert {
	u.Set(encounter.FieldEncounterDate, v)
	return u
}

// UpdateEncounterDate sets the "encounter_date" field to the value that was provided on create.
func (u *EncounterUpsert) UpdateEncounterDate() *EncounterUpsert {
	u.SetExcluded(encounter.FieldEncounterDate)
	return u
}

// SetChiefComplaint sets the "chief_complaint" field.
func (u *EncounterUpsert) SetChiefComplaint(v string) *EncounterUpsert {
	u.Set(encounter.FieldChiefComplaint, v)
	return u
}

// UpdateChiefComplaint sets the "chief_complaint" field to the value that was provided on create.
func (u *EncounterUpsert) UpdateChiefComplaint() *EncounterUpsert {
	u.SetExcluded(encounter.FieldChiefComplaint)
	return u
}

// ClearChiefComplaint clears the value of the "chief_complaint" field.
func (u *EncounterUpsert) ClearChiefComplaint() *EncounterUpsert {
	u.SetNull(encounter.FieldChiefComplaint)
	return u
}

// SetHistoryOfPresentIllness sets the "history_of_present_illness" field.
func (u *EncounterUpsert) SetHistoryOfPresentIllness(v string) *EncounterUpsert {
	u.Set(encounter.FieldHistoryOfPresentIllness, v)
	return u
}

// UpdateHistoryOfPresentIllness sets the "history_of_present_illness" field to the value that was provided on create.
func (u *EncounterUpsert) UpdateHistoryOfPresentIllness() *EncounterUpsert {
	u.SetExcluded(encounter.FieldHistoryOfPresentIllness)
	return u
}

// ClearHistoryOfPresentIllness clears the value of the "history_of_present_illness" field.
func (u *EncounterUpsert) ClearHistoryOfPresentIllness() *EncounterUpsert {
	u.SetNull(encounter.FieldHistoryOfPresentIllness)
	return u
}

// SetPhysicalExamination sets the "physical_examination" field.
func (u *EncounterUpsert) SetPhysicalExamination(v string) *EncounterUpsert {
	u.Set(encounter.FieldPhysicalExamination, v)
	return u
}

// UpdatePhysicalExamination sets the "physical_examination" field to the value that was provided on create.
func (u *EncounterUpsert) UpdatePhysicalExamination() *EncounterUpsert {
	u.SetExcluded(encounter.FieldPhysicalExamination)
	return u
}

// ClearPhysicalExamination clears the value of the "physical_examination" field.
func (u *EncounterUpsert) ClearPhysicalExamination() *EncounterUpsert {
	u.SetNull(encounter.FieldPhysicalExamination)
	return u
}

// SetAssessment sets the "assessment" field.
func (u *EncounterUpsert) SetAssessment(v string) *EncounterUpsert {
	u.Set(encounter.FieldAssessment, v)
	return u
}

// UpdateAssessment sets the "assessment" field to the value that was provided on create.
func (u *EncounterUpsert) UpdateAssessment() *EncounterUpsert {
	u.SetExcluded(encounter.FieldAssessment)
	return u
}

// ClearAssessment clears the value of the "assessment" field.
func (u *EncounterUpsert) ClearAssessment() *EncounterUpsert {
	u.SetNull(encounter.FieldAssessment)
	return u
}

// SetPlan sets the "plan" field.
func (u *EncounterUpsert) SetPlan(v string) *EncounterUpsert {
	u.Set(encounter.FieldPlan, v)
	return u
}

// UpdatePlan sets the "plan" field to the value that was provided on create.
func (u *EncounterUpsert) UpdatePlan() *EncounterUpsert {
	u.SetExcluded(encounter.FieldPlan)
	return u
}

// ClearPlan clears the value of the "plan" field.
func (u *EncounterUpsert) ClearPlan() *EncounterUpsert {
	u.SetNull(encounter.FieldPlan)
	return u
}

// SetNotes sets the "notes" field.
func (u *EncounterUpsert) SetNotes(v string) *EncounterUpsert {
	u.Set(encounter.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *EncounterUpsert) UpdateNotes() *EncounterUpsert {
	u.SetExcluded(encounter.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *EncounterUpsert) ClearNotes() *EncounterUpsert {
	u.SetNull(encounter.FieldNotes)
	return u
}

// SetStatus sets the "status" field.
func (u *EncounterUpsert) SetStatus(v encounter.Status) *EncounterUpsert {
	u.Set(encounter.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EncounterUpsert) UpdateStatus() *EncounterUpsert {
	u.SetExcluded(encounter.FieldStatus)
	return u
}

// SetDuration sets the "duration" field.
func (u *EncounterUpsert) SetDuration(v int) *EncounterUpsert {
	u.Set(encounter.FieldDuration, v)
	return u
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *EncounterUpsert) UpdateDuration() *EncounterUpsert {
	u.SetExcluded(encounter.FieldDuration)
	return u
}

// AddDuration adds v to the "duration" field.
func (u *EncounterUpsert) AddDuration(v int) *EncounterUpsert {
	u.Add(encounter.FieldDuration, v)
	return u
}

// ClearDuration clears the value of the "duration" field.
func (u *EncounterUpsert) ClearDuration() *EncounterUpsert {
	u.SetNull(encounter.FieldDuration)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Encounter.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(encounter.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EncounterUpsertOne) UpdateNewValues() *EncounterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(encounter.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(encounter.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.EncounterID(); exists {
			s.SetIgnore(encounter.FieldEncounterID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Encounter.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EncounterUpsertOne) Ignore() *EncounterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EncounterUpsertOne) DoNothing() *EncounterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EncounterCreate.OnConflict
// documentation for more info.
func (u *EncounterUpsertOne) Update(set func(*EncounterUpsert)) *EncounterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EncounterUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EncounterUpsertOne) SetUpdatedAt(v time.Time) *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EncounterUpsertOne) UpdateUpdatedAt() *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *EncounterUpsertOne) SetPatientID(v uuid.UUID) *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *EncounterUpsertOne) UpdatePatientID() *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.UpdatePatientID()
	})
}

// SetProviderID sets the "provider_id" field.
func (u *EncounterUpsertOne) SetProviderID(v uuid.UUID) *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.SetProviderID(v)
	})
}

// UpdateProviderID sets the "provider_id" field to the value that was provided on create.
func (u *EncounterUpsertOne) UpdateProviderID() *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.UpdateProviderID()
	})
}

// SetAppointmentID sets the "appointment_id" field.
func (u *EncounterUpsertOne) SetAppointmentID(v uuid.UUID) *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.SetAppointmentID(v)
	})
}

// UpdateAppointmentID sets the "appointment_id" field to the value that was provided on create.
func (u *EncounterUpsertOne) UpdateAppointmentID() *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.UpdateAppointmentID()
	})
}

// ClearAppointmentID clears the value of the "appointment_id" field.
func (u *EncounterUpsertOne) ClearAppointmentID() *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.ClearAppointmentID()
	})
}

// SetEncounterType sets the "encounter_type" field.
func (u *EncounterUpsertOne) SetEncounterType(v encounter.EncounterType) *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.SetEncounterType(v)
	})
}

// UpdateEncounterType sets the "encounter_type" field to the value that was provided on create.
func (u *EncounterUpsertOne) UpdateEncounterType() *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.UpdateEncounterType()
	})
}

// SetEncounterDate sets the "encounter_date" field.
func (u *EncounterUpsertOne) SetEncounterDate(v time.Time) *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.SetEncounterDate(v)
	})
}

// UpdateEncounterDate sets the "encounter_date" field to the value that was provided on create.
func (u *EncounterUpsertOne) UpdateEncounterDate() *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.UpdateEncounterDate()
	})
}

// SetChiefComplaint sets the "chief_complaint" field.
func (u *EncounterUpsertOne) SetChiefComplaint(v string) *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.SetChiefComplaint(v)
	})
}

// UpdateChiefComplaint sets the "chief_complaint" field to the value that was provided on create.
func (u *EncounterUpsertOne) UpdateChiefComplaint() *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.UpdateChiefComplaint()
	})
}

// ClearChiefComplaint clears the value of the "chief_complaint" field.
func (u *EncounterUpsertOne) ClearChiefComplaint() *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.ClearChiefComplaint()
	})
}

// SetHistoryOfPresentIllness sets the "history_of_present_illness" field.
func (u *EncounterUpsertOne) SetHistoryOfPresentIllness(v string) *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.SetHistoryOfPresentIllness(v)
	})
}

// UpdateHistoryOfPresentIllness sets the "history_of_present_illness" field to the value that was provided on create.
func (u *EncounterUpsertOne) UpdateHistoryOfPresentIllness() *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.UpdateHistoryOfPresentIllness()
	})
}

// ClearHistoryOfPresentIllness clears the value of the "history_of_present_illness" field.
func (u *EncounterUpsertOne) ClearHistoryOfPresentIllness() *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.ClearHistoryOfPresentIllness()
	})
}

// SetPhysicalExamination sets the "physical_examination" field.
func (u *EncounterUpsertOne) SetPhysicalExamination(v string) *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.SetPhysicalExamination(v)
	})
}

// UpdatePhysicalExamination sets the "physical_examination" field to the value that was provided on create.
func (u *EncounterUpsertOne) UpdatePhysicalExamination() *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.UpdatePhysicalExamination()
	})
}

// ClearPhysicalExamination clears the value of the "physical_examination" field.
func (u *EncounterUpsertOne) ClearPhysicalExamination() *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.ClearPhysicalExamination()
	})
}

// SetAssessment sets the "assessment" field.
func (u *EncounterUpsertOne) SetAssessment(v string) *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.SetAssessment(v)
	})
}

// UpdateAssessment sets the "assessment" field to the value that was provided on create.
func (u *EncounterUpsertOne) UpdateAssessment() *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.UpdateAssessment()
	})
}

// ClearAssessment clears the value of the "assessment" field.
func (u *EncounterUpsertOne) ClearAssessment() *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.ClearAssessment()
	})
}

// SetPlan sets the "plan" field.
func (u *EncounterUpsertOne) SetPlan(v string) *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.SetPlan(v)
	})
}

// UpdatePlan sets the "plan" field to the value that was provided on create.
func (u *EncounterUpsertOne) UpdatePlan() *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.UpdatePlan()
	})
}

// ClearPlan clears the value of the "plan" field.
func (u *EncounterUpsertOne) ClearPlan() *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.ClearPlan()
	})
}

// SetNotes sets the "notes" field.
func (u *EncounterUpsertOne) SetNotes(v string) *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *EncounterUpsertOne) UpdateNotes() *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *EncounterUpsertOne) ClearNotes() *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.ClearNotes()
	})
}

// SetStatus sets the "status" field.
func (u *EncounterUpsertOne) SetStatus(v encounter.Status) *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EncounterUpsertOne) UpdateStatus() *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.UpdateStatus()
	})
}

// SetDuration sets the "duration" field.
func (u *EncounterUpsertOne) SetDuration(v int) *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.SetDuration(v)
	})
}

// AddDuration adds v to the "duration" field.
func (u *EncounterUpsertOne) AddDuration(v int) *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.AddDuration(v)
	})
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *EncounterUpsertOne) UpdateDuration() *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.UpdateDuration()
	})
}

// ClearDuration clears the value of the "duration" field.
func (u *EncounterUpsertOne) ClearDuration() *EncounterUpsertOne {
	return u.Update(func(s *EncounterUpsert) {
		s.ClearDuration()
	})
}

// Exec executes the query.
func (u *EncounterUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for EncounterCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EncounterUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EncounterUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: EncounterUpsertOne.ID is not supported by MySQL driver. Use EncounterUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EncounterUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EncounterCreateBulk is the builder for creating many Encounter entities in bulk.
type EncounterCreateBulk struct {
	config
	err      error
	builders []*EncounterCreate
	conflict []sql.ConflictOption
}

// Save creates the Encounter entities in the database.
func (_c *EncounterCreateBulk) Save(ctx context.Context) ([]*Encounter, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Encounter, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EncounterMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EncounterCreateBulk) SaveX(ctx context.Context) []*Encounter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EncounterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EncounterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Encounter.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EncounterUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *EncounterCreateBulk) OnConflict(opts ...sql.ConflictOption) *EncounterUpsertBulk {
	_c.conflict = opts
	return &EncounterUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Encounter.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EncounterCreateBulk) OnConflictColumns(columns ...string) *EncounterUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EncounterUpsertBulk{
		create: _c,
	}
}

// EncounterUpsertBulk is the builder for "upsert"-ing
// a bulk of Encounter nodes.
type EncounterUpsertBulk struct {
	create *EncounterCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Encounter.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(encounter.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EncounterUpsertBulk) UpdateNewValues() *EncounterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(encounter.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(encounter.FieldCreatedAt)
			}
			if _, exists := b.mutation.EncounterID(); exists {
				s.SetIgnore(encounter.FieldEncounterID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Encounter.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EncounterUpsertBulk) Ignore() *EncounterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EncounterUpsertBulk) DoNothing() *EncounterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EncounterCreateBulk.OnConflict
// documentation for more info.
func (u *EncounterUpsertBulk) Update(set func(*EncounterUpsert)) *EncounterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EncounterUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EncounterUpsertBulk) SetUpdatedAt(v time.Time) *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EncounterUpsertBulk) UpdateUpdatedAt() *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *EncounterUpsertBulk) SetPatientID(v uuid.UUID) *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *EncounterUpsertBulk) UpdatePatientID() *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.UpdatePatientID()
	})
}

// SetProviderID sets the "provider_id" field.
func (u *EncounterUpsertBulk) SetProviderID(v uuid.UUID) *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.SetProviderID(v)
	})
}

// UpdateProviderID sets the "provider_id" field to the value that was provided on create.
func (u *EncounterUpsertBulk) UpdateProviderID() *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.UpdateProviderID()
	})
}

// SetAppointmentID sets the "appointment_id" field.
func (u *EncounterUpsertBulk) SetAppointmentID(v uuid.UUID) *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.SetAppointmentID(v)
	})
}

// UpdateAppointmentID sets the "appointment_id" field to the value that was provided on create.
func (u *EncounterUpsertBulk) UpdateAppointmentID() *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.UpdateAppointmentID()
	})
}

// ClearAppointmentID clears the value of the "appointment_id" field.
func (u *EncounterUpsertBulk) ClearAppointmentID() *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.ClearAppointmentID()
	})
}

// SetEncounterType sets the "encounter_type" field.
func (u *EncounterUpsertBulk) SetEncounterType(v encounter.EncounterType) *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.SetEncounterType(v)
	})
}

// UpdateEncounterType sets the "encounter_type" field to the value that was provided on create.
func (u *EncounterUpsertBulk) UpdateEncounterType() *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.UpdateEncounterType()
	})
}

// SetEncounterDate sets the "encounter_date" field.
func (u *EncounterUpsertBulk) SetEncounterDate(v time.Time) *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.SetEncounterDate(v)
	})
}

// UpdateEncounterDate sets the "encounter_date" field to the value that was provided on create.
func (u *EncounterUpsertBulk) UpdateEncounterDate() *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.UpdateEncounterDate()
	})
}

// SetChiefComplaint sets the "chief_complaint" field.
func (u *EncounterUpsertBulk) SetChiefComplaint(v string) *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.SetChiefComplaint(v)
	})
}

// UpdateChiefComplaint sets the "chief_complaint" field to the value that was provided on create.
func (u *EncounterUpsertBulk) UpdateChiefComplaint() *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.UpdateChiefComplaint()
	})
}

// ClearChiefComplaint clears the value of the "chief_complaint" field.
func (u *EncounterUpsertBulk) ClearChiefComplaint() *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.ClearChiefComplaint()
	})
}

// SetHistoryOfPresentIllness sets the "history_of_present_illness" field.
func (u *EncounterUpsertBulk) SetHistoryOfPresentIllness(v string) *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.SetHistoryOfPresentIllness(v)
	})
}

// UpdateHistoryOfPresentIllness sets the "history_of_present_illness" field to the value that was provided on create.
func (u *EncounterUpsertBulk) UpdateHistoryOfPresentIllness() *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.UpdateHistoryOfPresentIllness()
	})
}

// ClearHistoryOfPresentIllness clears the value of the "history_of_present_illness" field.
func (u *EncounterUpsertBulk) ClearHistoryOfPresentIllness() *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.ClearHistoryOfPresentIllness()
	})
}

// SetPhysicalExamination sets the "physical_examination" field.
func (u *EncounterUpsertBulk) SetPhysicalExamination(v string) *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.SetPhysicalExamination(v)
	})
}

// UpdatePhysicalExamination sets the "physical_examination" field to the value that was provided on create.
func (u *EncounterUpsertBulk) UpdatePhysicalExamination() *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.UpdatePhysicalExamination()
	})
}

// ClearPhysicalExamination clears the value of the "physical_examination" field.
func (u *EncounterUpsertBulk) ClearPhysicalExamination() *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.ClearPhysicalExamination()
	})
}

// SetAssessment sets the "assessment" field.
func (u *EncounterUpsertBulk) SetAssessment(v string) *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.SetAssessment(v)
	})
}

// UpdateAssessment sets the "assessment" field to the value that was provided on create.
func (u *EncounterUpsertBulk) UpdateAssessment() *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.UpdateAssessment()
	})
}

// ClearAssessment clears the value of the "assessment" field.
func (u *EncounterUpsertBulk) ClearAssessment() *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.ClearAssessment()
	})
}

// SetPlan sets the "plan" field.
func (u *EncounterUpsertBulk) SetPlan(v string) *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.SetPlan(v)
	})
}

// UpdatePlan sets the "plan" field to the value that was provided on create.
func (u *EncounterUpsertBulk) UpdatePlan() *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.UpdatePlan()
	})
}

// ClearPlan clears the value of the "plan" field.
func (u *EncounterUpsertBulk) ClearPlan() *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.ClearPlan()
	})
}

// SetNotes sets the "notes" field.
func (u *EncounterUpsertBulk) SetNotes(v string) *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *EncounterUpsertBulk) UpdateNotes() *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *EncounterUpsertBulk) ClearNotes() *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.ClearNotes()
	})
}

// SetStatus sets the "status" field.
func (u *EncounterUpsertBulk) SetStatus(v encounter.Status) *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EncounterUpsertBulk) UpdateStatus() *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.UpdateStatus()
	})
}

// SetDuration sets the "duration" field.
func (u *EncounterUpsertBulk) SetDuration(v int) *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.SetDuration(v)
	})
}

// AddDuration adds v to the "duration" field.
func (u *EncounterUpsertBulk) AddDuration(v int) *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.AddDuration(v)
	})
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *EncounterUpsertBulk) UpdateDuration() *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.UpdateDuration()
	})
}

// ClearDuration clears the value of the "duration" field.
func (u *EncounterUpsertBulk) ClearDuration() *EncounterUpsertBulk {
	return u.Update(func(s *EncounterUpsert) {
		s.ClearDuration()
	})
}

// Exec executes the query.
func (u *EncounterUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the EncounterCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for EncounterCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EncounterUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
