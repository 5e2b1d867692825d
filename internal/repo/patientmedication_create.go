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
	"github.com/caretide/caretide_backend/internal/repo/medicationmaster"
	"github.com/caretide/caretide_backend/internal/repo/patient"
	"github.com/caretide/caretide_backend/internal/repo/patientmedication"
	"github.com/caretide/caretide_backend/internal/repo/user"
	"github.com/google/uuid"
)

// PatientMedicationCreate is the builder for creating a PatientMedication entity.
type PatientMedicationCreate struct {
	config
	mutation *PatientMedicationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PatientMedicationCreate) SetCreatedAt(v time.Time) *PatientMedicationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PatientMedicationCreate) SetNillableCreatedAt(v *time.Time) *PatientMedicationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PatientMedicationCreate) SetUpdatedAt(v time.Time) *PatientMedicationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PatientMedicationCreate) SetNillableUpdatedAt(v *time.Time) *PatientMedicationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *PatientMedicationCreate) SetPatientID(v uuid.UUID) *PatientMedicationCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetMedicationID sets the "medication_id" field.
func (_c *PatientMedicationCreate) SetMedicationID(v uuid.UUID) *PatientMedicationCreate {
	_c.mutation.SetMedicationID(v)
	return _c
}

// SetProviderID sets the "provider_id" field.
func (_c *PatientMedicationCreate) SetProviderID(v uuid.UUID) *PatientMedicationCreate {
	_c.mutation.SetProviderID(v)
	return _c
}

// SetDosage sets the "dosage" field.
func (_c *PatientMedicationCreate) SetDosage(v string) *PatientMedicationCreate {
	_c.mutation.SetDosage(v)
	return _c
}

// SetFrequency sets the "frequency" field.
func (_c *PatientMedicationCreate) SetFrequency(v string) *PatientMedicationCreate {
	_c.mutation.SetFrequency(v)
	return _c
}

// SetRoute sets the "route" field.
func (_c *PatientMedicationCreate) SetRoute(v string) *PatientMedicationCreate {
	_c.mutation.SetRoute(v)
	return _c
}

// SetNillableRoute sets the "route" field if the given value is not nil.
func (_c *PatientMedicationCreate) SetNillableRoute(v *string) *PatientMedicationCreate {
	if v != nil {
		_c.SetRoute(*v)
	}
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *PatientMedicationCreate) SetStartDate(v time.Time) *PatientMedicationCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetEndDate sets the "end_date" field.
func (_c *PatientMedicationCreate) SetEndDate(v time.Time) *PatientMedicationCreate {
	_c.mutation.SetEndDate(v)
	return _c
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_c *PatientMedicationCreate) SetNillableEndDate(v *time.Time) *PatientMedicationCreate {
	if v != nil {
		_c.SetEndDate(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PatientMedicationCreate) SetStatus(v patientmedication.Status) *PatientMedicationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PatientMedicationCreate) SetNillableStatus(v *patientmedication.Status) *PatientMedicationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *PatientMedicationCreate) SetReason(v string) *PatientMedicationCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *PatientMedicationCreate) SetNillableReason(v *string) *PatientMedicationCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetInstructions sets the "instructions" field.
func (_c *PatientMedicationCreate) SetInstructions(v string) *PatientMedicationCreate {
	_c.mutation.SetInstructions(v)
	return _c
}

// SetNillableInstructions sets the "instructions" field if the given value is not nil.
func (_c *PatientMedicationCreate) SetNillableInstructions(v *string) *PatientMedicationCreate {
	if v != nil {
		_c.SetInstructions(*v)
	}
	return _c
}

// SetEncounterID sets the "encounter_id" field.
func (_c *PatientMedicationCreate) SetEncounterID(v uuid.UUID) *PatientMedicationCreate {
	_c.mutation.SetEncounterID(v)
	return _c
}

// SetNillableEncounterID sets the "encounter_id" field if the given value is not nil.
func (_c *PatientMedicationCreate) SetNillableEncounterID(v *uuid.UUID) *PatientMedicationCreate {
	if v != nil {
		_c.SetEncounterID(*v)
	}
	return _c
}

// SetAdverseReactions sets the "adverse_reactions" field.
func (_c *PatientMedicationCreate) SetAdverseReactions(v string) *PatientMedicationCreate {
	_c.mutation.SetAdverseReactions(v)
	return _c
}

// SetNillableAdverseReactions sets the "adverse_reactions" field if the given value is not nil.
func (_c *PatientMedicationCreate) SetNillableAdverseReactions(v *string) *PatientMedicationCreate {
	if v != nil {
		_c.SetAdverseReactions(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PatientMedicationCreate) SetID(v uuid.UUID) *PatientMedicationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PatientMedicationCreate) SetNillableID(v *uuid.UUID) *PatientMedicationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *PatientMedicationCreate) SetPatient(v *Patient) *PatientMedicationCreate {
	return _c.SetPatientID(v.ID)
}

// SetMedication sets the "medication" edge to the MedicationMaster entity.
func (_c *PatientMedicationCreate) SetMedication(v *MedicationMaster) *PatientMedicationCreate {
	return _c.SetMedicationID(v.ID)
}

// SetProvider sets the "provider" edge to the User entity.
func (_c *PatientMedicationCreate) SetProvider(v *User) *PatientMedicationCreate {
	return _c.SetProviderID(v.ID)
}

// Mutation returns the PatientMedicationMutation object of the builder.
func (_c *PatientMedicationCreate) Mutation() *PatientMedicationMutation {
	return _c.mutation
}

// Save creates the PatientMedication in the database.
func (_c *PatientMedicationCreate) Save(ctx context.Context) (*PatientMedication, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatientMedicationCreate) SaveX(ctx context.Context) *PatientMedication {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientMedicationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientMedicationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatientMedicationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := patientmedication.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := patientmedication.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := patientmedication.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := patientmedication.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatientMedicationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "PatientMedication.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "PatientMedication.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "PatientMedication.patient_id"`)}
	}
	if _, ok := _c.mutation.MedicationID(); !ok {
		return &ValidationError{Name: "medication_id", err: errors.New(`repo: missing required field "PatientMedication.medication_id"`)}
	}
	if _, ok := _c.mutation.ProviderID(); !ok {
		return &ValidationError{Name: "provider_id", err: errors.New(`repo: missing required field "PatientMedication.provider_id"`)}
	}
	if _, ok := _c.mutation.Dosage(); !ok {
		return &ValidationError{Name: "dosage", err: errors.New(`repo: missing required field "PatientMedication.dosage"`)}
	}
	if v, ok := _c.mutation.Dosage(); ok {
		if err := patientmedication.DosageValidator(v); err != nil {
			return &ValidationError{Name: "dosage", err: fmt.Errorf(`repo: validator failed for field "PatientMedication.dosage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Frequency(); !ok {
		return &ValidationError{Name: "frequency", err: errors.New(`repo: missing required field "PatientMedication.frequency"`)}
	}
	if v, ok := _c.mutation.Frequency(); ok {
		if err := patientmedication.FrequencyValidator(v); err != nil {
			return &ValidationError{Name: "frequency", err: fmt.Errorf(`repo: validator failed for field "PatientMedication.frequency": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Route(); ok {
		if err := patientmedication.RouteValidator(v); err != nil {
			return &ValidationError{Name: "route", err: fmt.Errorf(`repo: validator failed for field "PatientMedication.route": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartDate(); !ok {
		return &ValidationError{Name: "start_date", err: errors.New(`repo: missing required field "PatientMedication.start_date"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "PatientMedication.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := patientmedication.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "PatientMedication.status": %w`, err)}
		}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "PatientMedication.patient"`)}
	}
	if len(_c.mutation.MedicationIDs()) == 0 {
		return &ValidationError{Name: "medication", err: errors.New(`repo: missing required edge "PatientMedication.medication"`)}
	}
	if len(_c.mutation.ProviderIDs()) == 0 {
		return &ValidationError{Name: "provider", err: errors.New(`repo: missing required edge "PatientMedication.provider"`)}
	}
	return nil
}

func (_c *PatientMedicationCreate) sqlSave(ctx context.Context) (*PatientMedication, error) {
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

func (_c *PatientMedicationCreate) createSpec() (*PatientMedication, *sqlgraph.CreateSpec) {
	var (
		_node = &PatientMedication{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(patientmedication.Table, sqlgraph.NewFieldSpec(patientmedication.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(patientmedication.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(patientmedication.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Dosage(); ok {
		_spec.SetField(patientmedication.FieldDosage, field.TypeString, value)
		_node.Dosage = value
	}
	if value, ok := _c.mutation.Frequency(); ok {
		_spec.SetField(patientmedication.FieldFrequency, field.TypeString, value)
		_node.Frequency = value
	}
	if value, ok := _c.mutation.Route(); ok {
		_spec.SetField(patientmedication.FieldRoute, field.TypeString, value)
		_node.Route = &value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(patientmedication.FieldStartDate, field.TypeTime, value)
		_node.StartDate = value
	}
	if value, ok := _c.mutation.EndDate(); ok {
		_spec.SetField(patientmedication.FieldEndDate, field.TypeTime, value)
		_node.EndDate = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(patientmedication.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(patientmedication.FieldReason, field.TypeString, value)
		_node.Reason = &value
	}
	if value, ok := _c.mutation.Instructions(); ok {
		_spec.SetField(patientmedication.FieldInstructions, field.TypeString, value)
		_node.Instructions = &value
	}
	if value, ok := _c.mutation.EncounterID(); ok {
		_spec.SetField(patientmedication.FieldEncounterID, field.TypeUUID, value)
		_node.EncounterID = &value
	}
	if value, ok := _c.mutation.AdverseReactions(); ok {
		_spec.SetField(patientmedication.FieldAdverseReactions, field.TypeString, value)
		_node.AdverseReactions = &value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
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
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MedicationIDs(); len(nodes) > 0 {
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
		_node.MedicationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProviderIDs(); len(nodes) > 0 {
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
		_node.ProviderID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PatientMedication.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientMedicationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientMedicationCreate) OnConflict(opts ...sql.ConflictOption) *PatientMedicationUpsertOne {
	_c.conflict = opts
	return &PatientMedicationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PatientMedication.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientMedicationCreate) OnConflictColumns(columns ...string) *PatientMedicationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientMedicationUpsertOne{
		create: _c,
	}
}

type (
	// PatientMedicationUpsertOne is the builder for "upsert"-ing
	//  one PatientMedication node.
	PatientMedicationUpsertOne struct {
		create *PatientMedicationCreate
	}

	// PatientMedicationUpsert is the "OnConflict" setter.
	PatientMedicationUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientMedicationUpsert) SetUpdatedAt(v time.Time) *PatientMedicationUpsert {
	u.Set(patientmedication.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientMedicationUpsert) UpdateUpdatedAt() *PatientMedicationUpsert {
	u.SetExcluded(patientmedication.FieldUpdatedAt)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *PatientMedicationUpsert) SetPatientID(v uuid.UUID) *PatientMedicationUpsert {
	u.Set(patientmedication.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PatientMedicationUpsert) UpdatePatientID() *PatientMedicationUpsert {
	u.SetExcluded(patientmedication.FieldPatientID)
	return u
}

// SetMedicationID sets the "medication_id" field.
func (u *PatientMedicationUpsert) SetMedicationID(v uuid.UUID) *PatientMedicationUpsert {
	u.Set(patientmedication.FieldMedicationID, v)
	return u
}

// UpdateMedicationID sets the "medication_id" field to the value that was provided on create.
func (u *PatientMedicationUpsert) UpdateMedicationID() *PatientMedicationUpsert {
	u.SetExcluded(patientmedication.FieldMedicationID)
	return u
}

// SetProviderID sets the "provider_id" field.
func (u *PatientMedicationUpsert) SetProviderID(v uuid.UUID) *PatientMedicationUpsert {
	u.Set(patientmedication.FieldProviderID, v)
	return u
}

// UpdateProviderID sets the "provider_id" field to the value that was provided on create.
func (u *PatientMedicationUpsert) UpdateProviderID() *PatientMedicationUpsert {
	u.SetExcluded(patientmedication.FieldProviderID)
	return u
}

// SetDosage sets the "dosage" field.
func (u *PatientMedicationUpsert) SetDosage(v string) *PatientMedicationUpsert {
	u.Set(patientmedication.FieldDosage, v)
	return u
}

// UpdateDosage sets the "dosage" field to the value that was provided on create.
func (u *PatientMedicationUpsert) UpdateDosage() *PatientMedicationUpsert {
	u.SetExcluded(patientmedication.FieldDosage)
	return u
}

// SetFrequency sets the "frequency" field.
func (u *PatientMedicationUpsert) SetFrequency(v string) *PatientMedicationUpsert {
	u.Set(patientmedication.FieldFrequency, v)
	return u
}

// UpdateFrequency sets the "frequency" field to the value that was provided on create.
func (u *PatientMedicationUpsert) UpdateFrequency() *PatientMedicationUpsert {
	u.SetExcluded(patientmedication.FieldFrequency)
	return u
}

// SetRoute sets the "route" field.
func (u *PatientMedicationUpsert) SetRoute(v string) *PatientMedicationUpsert {
	u.Set(patientmedication.FieldRoute, v)
	return u
}

// UpdateRoute sets the "route" field to the value that was provided on create.
func (u *PatientMedicationUpsert) UpdateRoute() *PatientMedicationUpsert {
	u.SetExcluded(patientmedication.FieldRoute)
	return u
}

// ClearRoute clears the value of the "route" field.
func (u *PatientMedicationUpsert) ClearRoute() *PatientMedicationUpsert {
	u.SetNull(patientmedication.FieldRoute)
	return u
}

// SetStartDate sets the "start_date" field.
func (u *PatientMedicationUpsert) SetStartDate(v time.Time) *PatientMedicationUpsert {
	u.Set(patientmedication.FieldStartDate, v)
	return u
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *PatientMedicationUpsert) UpdateStartDate() *PatientMedicationUpsert {
	u.SetExcluded(patientmedication.FieldStartDate)
	return u
}

// SetEndDate sets the "end_date" field.
func (u *PatientMedicationUpsert) SetEndDate(v time.Time) *PatientMedicationUpsert {
	u.Set(patientmedication.FieldEndDate, v)
	return u
}

// UpdateEndDate sets the "end_date" field to the value that was provided on create.
func (u *PatientMedicationUpsert) UpdateEndDate() *PatientMedicationUpsert {
	u.SetExcluded(patientmedication.FieldEndDate)
	return u
}

// ClearEndDate clears the value of the "end_date" field.
func (u *PatientMedicationUpsert) ClearEndDate() *PatientMedicationUpsert {
	u.SetNull(patientmedication.FieldEndDate)
	return u
}

// SetStatus sets the "status" field.
func (u *PatientMedicationUpsert) SetStatus(v patientmedication.Status) *PatientMedicationUpsert {
	u.Set(patientmedication.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PatientMedicationUpsert) UpdateStatus() *PatientMedicationUpsert {
	u.SetExcluded(patientmedication.FieldStatus)
	return u
}

// SetReason sets the "reason" field.
func (u *PatientMedicationUpsert) SetReason(v string) *PatientMedicationUpsert {
	u.Set(patientmedication.FieldReason, v)
	return u
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *PatientMedicationUpsert) UpdateReason() *PatientMedicationUpsert {
	u.SetExcluded(patientmedication.FieldReason)
	return u
}

// ClearReason clears the value of the "reason" field.
func (u *PatientMedicationUpsert) ClearReason() *PatientMedicationUpsert {
	u.SetNull(patientmedication.FieldReason)
	return u
}

// SetInstructions sets the "instructions" field.
func (u *PatientMedicationUpsert) SetInstructions(v string) *PatientMedicationUpsert {
	u.Set(patientmedication.FieldInstructions, v)
	return u
}

// UpdateInstructions sets the "instructions" field to the value that was provided on create.
func (u *PatientMedicationUpsert) UpdateInstructions() *PatientMedicationUpsert {
	u.SetExcluded(patientmedication.FieldInstructions)
	return u
}

// ClearInstructions clears the value of the "instructions" field.
func (u *PatientMedicationUpsert) ClearInstructions() *PatientMedicationUpsert {
	u.SetNull(patientmedication.FieldInstructions)
	return u
}

// SetEncounterID sets the "encounter_id" field.
func (u *PatientMedicationUpsert) SetEncounterID(v uuid.UUID) *PatientMedicationUpsert {
	u.Set(patientmedication.FieldEncounterID, v)
	return u
}

// UpdateEncounterID sets the "encounter_id" field to the value that was provided on create.
func (u *PatientMedicationUpsert) UpdateEncounterID() *PatientMedicationUpsert {
	u.SetExcluded(patientmedication.FieldEncounterID)
	return u
}

// ClearEncounterID clears the value of the "encounter_id" field.
func (u *PatientMedicationUpsert) ClearEncounterID() *PatientMedicationUpsert {
	u.SetNull(patientmedication.FieldEncounterID)
	return u
}

// SetAdverseReactions sets the "adverse_reactions" field.
func (u *PatientMedicationUpsert) SetAdverseReactions(v string) *PatientMedicationUpsert {
	u.Set(patientmedication.FieldAdverseReactions, v)
	return u
}

// UpdateAdverseReactions sets the "adverse_reactions" field to the value that was provided on create.
func (u *PatientMedicationUpsert) UpdateAdverseReactions() *PatientMedicationUpsert {
	u.SetExcluded(patientmedication.FieldAdverseReactions)
	return u
}

// ClearAdverseReactions clears the value of the "adverse_reactions" field.
func (u *PatientMedicationUpsert) ClearAdverseReactions() *PatientMedicationUpsert {
	u.SetNull(patientmedication.FieldAdverseReactions)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PatientMedication.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patientmedication.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientMedicationUpsertOne) UpdateNewValues() *PatientMedicationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(patientmedication.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(patientmedication.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PatientMedication.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PatientMedicationUpsertOne) Ignore() *PatientMedicationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientMedicationUpsertOne) DoNothing() *PatientMedicationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientMedicationCreate.OnConflict
// documentation for more info.
func (u *PatientMedicationUpsertOne) Update(set func(*PatientMedicationUpsert)) *PatientMedicationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientMedicationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientMedicationUpsertOne) SetUpdatedAt(v time.Time) *PatientMedicationUpsertOne {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientMedicationUpsertOne) UpdateUpdatedAt() *PatientMedicationUpsertOne {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *PatientMedicationUpsertOne) SetPatientID(v uuid.UUID) *PatientMedicationUpsertOne {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PatientMedicationUpsertOne) UpdatePatientID() *PatientMedicationUpsertOne {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.UpdatePatientID()
	})
}

// SetMedicationID sets the "medication_id" field.
func (u *PatientMedicationUpsertOne) SetMedicationID(v uuid.UUID) *PatientMedicationUpsertOne {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.SetMedicationID(v)
	})
}

// UpdateMedicationID sets the "medication_id" field to the value that was provided on create.
func (u *PatientMedicationUpsertOne) UpdateMedicationID() *PatientMedicationUpsertOne {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.UpdateMedicationID()
	})
}

// SetProviderID sets the "provider_id" field.
func (u *PatientMedicationUpsertOne) SetProviderID(v uuid.UUID) *PatientMedicationUpsertOne {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.SetProviderID(v)
	})
}

// UpdateProviderID sets the "provider_id" field to the value that was provided on create.
func (u *PatientMedicationUpsertOne) UpdateProviderID() *PatientMedicationUpsertOne {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.UpdateProviderID()
	})
}

// SetDosage sets the "dosage" field.
func (u *PatientMedicationUpsertOne) SetDosage(v string) *PatientMedicationUpsertOne {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.SetDosage(v)
	})
}

// UpdateDosage sets the "dosage" field to the value that was provided on create.
func (u *PatientMedicationUpsertOne) UpdateDosage() *PatientMedicationUpsertOne {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.UpdateDosage()
	})
}

// SetFrequency sets the "frequency" field.
func (u *PatientMedicationUpsertOne) SetFrequency(v string) *PatientMedicationUpsertOne {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.SetFrequency(v)
	})
}

// UpdateFrequency sets the "frequency" field to the value that was provided on create.
func (u *PatientMedicationUpsertOne) UpdateFrequency() *PatientMedicationUpsertOne {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.UpdateFrequency()
	})
}

// SetRoute sets the "route" field.
func (u *PatientMedicationUpsertOne) SetRoute(v string) *PatientMedicationUpsertOne {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.SetRoute(v)
	})
}

// UpdateRoute sets the "route" field to the value that was provided on create.
func (u *PatientMedicationUpsertOne) UpdateRoute() *PatientMedicationUpsertOne {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.UpdateRoute()
	})
}

// ClearRoute clears the value of the "route" field.
func (u *PatientMedicationUpsertOne) ClearRoute() *PatientMedicationUpsertOne {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.ClearRoute()
	})
}

// SetStartDate sets the "start_date" field.
func (u *PatientMedicationUpsertOne) SetStartDate(v time.Time) *PatientMedicationUpsertOne {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.SetStartDate(v)
	})
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *PatientMedicationUpsertOne) UpdateStartDate() *PatientMedicationUpsertOne {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.UpdateStartDate()
	})
}

// SetEndDate sets the "end_date" field.
func (u *PatientMedicationUpsertOne) SetEndDate(v time.Time) *PatientMedicationUpsertOne {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.SetEndDate(v)
	})
}

// UpdateEndDate sets the "end_date" field to the value that was provided on create.
func (u *PatientMedicationUpsertOne) UpdateEndDate() *PatientMedicationUpsertOne {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.UpdateEndDate()
	})
}

// ClearEndDate clears the value of the "end_date" field.
func (u *PatientMedicationUpsertOne) ClearEndDate() *PatientMedicationUpsertOne {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.ClearEndDate()
	})
}

// SetStatus sets the "status" field.
func (u *PatientMedicationUpsertOne) SetStatus(v patientmedication.Status) *PatientMedicationUpsertOne {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PatientMedicationUpsertOne) UpdateStatus() *PatientMedicationUpsertOne {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.UpdateStatus()
	})
}

// SetReason sets the "reason" field.
func (u *PatientMedicationUpsertOne) SetReason(v string) *PatientMedicationUpsertOne {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *PatientMedicationUpsertOne) UpdateReason() *PatientMedicationUpsertOne {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.UpdateReason()
	})
}

// ClearReason clears the value of the "reason" field.
func (u *PatientMedicationUpsertOne) ClearReason() *PatientMedicationUpsertOne {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.ClearReason()
	})
}

// SetInstructions sets the "instructions" field.
func (u *PatientMedicationUpsertOne) SetInstructions(v string) *PatientMedicationUpsertOne {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.SetInstructions(v)
	})
}

// UpdateInstructions sets the "instructions" field to the value that was provided on create.
func (u *PatientMedicationUpsertOne) UpdateInstructions() *PatientMedicationUpsertOne {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.UpdateInstructions()
	})
}

// ClearInstructions clears the value of the "instructions" field.
func (u *PatientMedicationUpsertOne) ClearInstructions() *PatientMedicationUpsertOne {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.ClearInstructions()
	})
}

// SetEncounterID sets the "encounter_id" field.
func (u *PatientMedicationUpsertOne) SetEncounterID(v uuid.UUID) *PatientMedicationUpsertOne {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.SetEncounterID(v)
	})
}

// UpdateEncounterID sets the "encounter_id" field to the value that was provided on create.
func (u *PatientMedicationUpsertOne) UpdateEncounterID() *PatientMedicationUpsertOne {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.UpdateEncounterID()
	})
}

// ClearEncounterID clears the value of the "encounter_id" field.
func (u *PatientMedicationUpsertOne) ClearEncounterID() *PatientMedicationUpsertOne {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.ClearEncounterID()
	})
}

// SetAdverseReactions sets the "adverse_reactions" field.
func (u *PatientMedicationUpsertOne) SetAdverseReactions(v string) *PatientMedicationUpsertOne {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.SetAdverseReactions(v)
	})
}

// UpdateAdverseReactions sets the "adverse_reactions" field to the value that was provided on create.
func (u *PatientMedicationUpsertOne) UpdateAdverseReactions() *PatientMedicationUpsertOne {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.UpdateAdverseReactions()
	})
}

// ClearAdverseReactions clears the value of the "adverse_reactions" field.
func (u *PatientMedicationUpsertOne) ClearAdverseReactions() *PatientMedicationUpsertOne {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.ClearAdverseReactions()
	})
}

// Exec executes the query.
func (u *PatientMedicationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PatientMedicationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientMedicationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PatientMedicationUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PatientMedicationUpsertOne.ID is not supported by MySQL driver. Use PatientMedicationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PatientMedicationUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PatientMedicationCreateBulk is the builder for creating many PatientMedication entities in bulk.
type PatientMedicationCreateBulk struct {
	config
	err      error
	builders []*PatientMedicationCreate
	conflict []sql.ConflictOption
}

// Save creates the PatientMedication entities in the database.
func (_c *PatientMedicationCreateBulk) Save(ctx context.Context) ([]*PatientMedication, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PatientMedication, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatientMedicationMutation)
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
func (_c *PatientMedicationCreateBulk) SaveX(ctx context.Context) []*PatientMedication {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientMedicationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientMedicationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PatientMedication.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientMedicationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientMedicationCreateBulk) OnConflict(opts ...sql.ConflictOption) *PatientMedicationUpsertBulk {
	_c.conflict = opts
	return &PatientMedicationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PatientMedication.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientMedicationCreateBulk) OnConflictColumns(columns ...string) *PatientMedicationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientMedicationUpsertBulk{
		create: _c,
	}
}

// PatientMedicationUpsertBulk is the builder for "upsert"-ing
// a bulk of PatientMedication nodes.
type PatientMedicationUpsertBulk struct {
	create *PatientMedicationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PatientMedication.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patientmedication.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientMedicationUpsertBulk) UpdateNewValues() *PatientMedicationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(patientmedication.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(patientmedication.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PatientMedication.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PatientMedicationUpsertBulk) Ignore() *PatientMedicationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientMedicationUpsertBulk) DoNothing() *PatientMedicationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientMedicationCreateBulk.OnConflict
// documentation for more info.
func (u *PatientMedicationUpsertBulk) Update(set func(*PatientMedicationUpsert)) *PatientMedicationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientMedicationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientMedicationUpsertBulk) SetUpdatedAt(v time.Time) *PatientMedicationUpsertBulk {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientMedicationUpsertBulk) UpdateUpdatedAt() *PatientMedicationUpsertBulk {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *PatientMedicationUpsertBulk) SetPatientID(v uuid.UUID) *PatientMedicationUpsertBulk {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PatientMedicationUpsertBulk) UpdatePatientID() *PatientMedicationUpsertBulk {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.UpdatePatientID()
	})
}

// SetMedicationID sets the "medication_id" field.
func (u *PatientMedicationUpsertBulk) SetMedicationID(v uuid.UUID) *PatientMedicationUpsertBulk {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.SetMedicationID(v)
	})
}

// UpdateMedicationID sets the "medication_id" field to the value that was provided on create.
func (u *PatientMedicationUpsertBulk) UpdateMedicationID() *PatientMedicationUpsertBulk {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.UpdateMedicationID()
	})
}

// SetProviderID sets the "provider_id" field.
func (u *PatientMedicationUpsertBulk) SetProviderID(v uuid.UUID) *PatientMedicationUpsertBulk {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.SetProviderID(v)
	})
}

// UpdateProviderID sets the "provider_id" field to the value that was provided on create.
func (u *PatientMedicationUpsertBulk) UpdateProviderID() *PatientMedicationUpsertBulk {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.UpdateProviderID()
	})
}

// SetDosage sets the "dosage" field.
func (u *PatientMedicationUpsertBulk) SetDosage(v string) *PatientMedicationUpsertBulk {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.SetDosage(v)
	})
}

// UpdateDosage sets the "dosage" field to the value that was provided on create.
func (u *PatientMedicationUpsertBulk) UpdateDosage() *PatientMedicationUpsertBulk {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.UpdateDosage()
	})
}

// SetFrequency sets the "frequency" field.
func (u *PatientMedicationUpsertBulk) SetFrequency(v string) *PatientMedicationUpsertBulk {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.SetFrequency(v)
	})
}

// UpdateFrequency sets the "frequency" field to the value that was provided on create.
func (u *PatientMedicationUpsertBulk) UpdateFrequency() *PatientMedicationUpsertBulk {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.UpdateFrequency()
	})
}

// SetRoute sets the "route" field.
func (u *PatientMedicationUpsertBulk) SetRoute(v string) *PatientMedicationUpsertBulk {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.SetRoute(v)
	})
}

// UpdateRoute sets the "route" field to the value that was provided on create.
func (u *PatientMedicationUpsertBulk) UpdateRoute() *PatientMedicationUpsertBulk {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.UpdateRoute()
	})
}

// ClearRoute clears the value of the "route" field.
func (u *PatientMedicationUpsertBulk) ClearRoute() *PatientMedicationUpsertBulk {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.ClearRoute()
	})
}

// SetStartDate sets the "start_date" field.
func (u *PatientMedicationUpsertBulk) SetStartDate(v time.Time) *PatientMedicationUpsertBulk {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.SetStartDate(v)
	})
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *PatientMedicationUpsertBulk) UpdateStartDate() *PatientMedicationUpsertBulk {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.UpdateStartDate()
	})
}

// SetEndDate sets the "end_date" field.
func (u *PatientMedicationUpsertBulk) SetEndDate(v time.Time) *PatientMedicationUpsertBulk {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.SetEndDate(v)
	})
}

// UpdateEndDate sets the "end_date" field to the value that was provided on create.
func (u *PatientMedicationUpsertBulk) UpdateEndDate() *PatientMedicationUpsertBulk {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.UpdateEndDate()
	})
}

// ClearEndDate clears the value of the "end_date" field.
func (u *PatientMedicationUpsertBulk) ClearEndDate() *PatientMedicationUpsertBulk {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.ClearEndDate()
	})
}

// SetStatus sets the "status" field.
func (u *PatientMedicationUpsertBulk) SetStatus(v patientmedication.Status) *PatientMedicationUpsertBulk {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PatientMedicationUpsertBulk) UpdateStatus() *PatientMedicationUpsertBulk {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.UpdateStatus()
	})
}

// SetReason sets the "reason" field.
func (u *PatientMedicationUpsertBulk) SetReason(v string) *PatientMedicationUpsertBulk {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *PatientMedicationUpsertBulk) UpdateReason() *PatientMedicationUpsertBulk {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.UpdateReason()
	})
}

// ClearReason clears the value of the "reason" field.
func (u *PatientMedicationUpsertBulk) ClearReason() *PatientMedicationUpsertBulk {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.ClearReason()
	})
}

// SetInstructions sets the "instructions" field.
func (u *PatientMedicationUpsertBulk) SetInstructions(v string) *PatientMedicationUpsertBulk {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.SetInstructions(v)
	})
}

// UpdateInstructions sets the "instructions" field to the value that was provided on create.
func (u *PatientMedicationUpsertBulk) UpdateInstructions() *PatientMedicationUpsertBulk {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.UpdateInstructions()
	})
}

// ClearInstructions clears the value of the "instructions" field.
func (u *PatientMedicationUpsertBulk) ClearInstructions() *PatientMedicationUpsertBulk {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.ClearInstructions()
	})
}

// SetEncounterID sets the "encounter_id" field.
func (u *PatientMedicationUpsertBulk) SetEncounterID(v uuid.UUID) *PatientMedicationUpsertBulk {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.SetEncounterID(v)
	})
}

// UpdateEncounterID sets the "encounter_id" field to the value that was provided on create.
func (u *PatientMedicationUpsertBulk) UpdateEncounterID() *PatientMedicationUpsertBulk {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.UpdateEncounterID()
	})
}

// ClearEncounterID clears the value of the "encounter_id" field.
func (u *PatientMedicationUpsertBulk) ClearEncounterID() *PatientMedicationUpsertBulk {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.ClearEncounterID()
	})
}

// SetAdverseReactions sets the "adverse_reactions" field.
func (u *PatientMedicationUpsertBulk) SetAdverseReactions(v string) *PatientMedicationUpsertBulk {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.SetAdverseReactions(v)
	})
}

// UpdateAdverseReactions sets the "adverse_reactions" field to the value that was provided on create.
func (u *PatientMedicationUpsertBulk) UpdateAdverseReactions() *PatientMedicationUpsertBulk {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.UpdateAdverseReactions()
	})
}

// ClearAdverseReactions clears the value of the "adverse_reactions" field.
func (u *PatientMedicationUpsertBulk) ClearAdverseReactions() *PatientMedicationUpsertBulk {
	return u.Update(func(s *PatientMedicationUpsert) {
		s.ClearAdverseReactions()
	})
}

// Exec executes the query.
func (u *PatientMedicationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PatientMedicationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PatientMedicationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientMedicationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
