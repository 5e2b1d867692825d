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
	"github.com/caretide/caretide_backend/internal/repo/appointment"
	"github.com/caretide/caretide_backend/internal/repo/patient"
	"github.com/caretide/caretide_backend/internal/repo/predicate"
	"github.com/caretide/caretide_backend/internal/repo/user"
	"github.com/google/uuid"
)

// AppointmentUpdate is the builder for updating Appointment entities.
type AppointmentUpdate struct {
	config
	hooks    []Hook
	mutation *AppointmentMutation
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdate) Where(ps ...predicate.Appointment) *AppointmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentUpdate) SetUpdatedAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *AppointmentUpdate) SetPatientID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillablePatientID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetProviderID sets the "provider_id" field.
func (_u *AppointmentUpdate) SetProviderID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetProviderID(v)
	return _u
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableProviderID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetProviderID(*v)
	}
	return _u
}

// SetAppointmentDate sets the "appointment_date" field.
func (_u *AppointmentUpdate) SetAppointmentDate(v time.Time) *AppointmentUpdate {
	_u.mutation.SetAppointmentDate(v)
	return _u
}

// SetNillableAppointmentDate sets the "appointment_date" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableAppointmentDate(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetAppointmentDate(*v)
	}
	return _u
}

// SetAppointmentTime sets the "appointment_time" field.
func (_u *AppointmentUpdate) SetAppointmentTime(v string) *AppointmentUpdate {
	_u.mutation.SetAppointmentTime(v)
	return _u
}

// SetNillableAppointmentTime sets the "appointment_time" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableAppointmentTime(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetAppointmentTime(*v)
	}
	return _u
}

// SetDuration sets the "duration" field.
func (_u *AppointmentUpdate) SetDuration(v int) *AppointmentUpdate {
	_u.mutation.ResetDuration()
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableDuration(v *int) *AppointmentUpdate {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// AddDuration adds value to the "duration" field.
func (_u *AppointmentUpdate) AddDuration(v int) *AppointmentUpdate {
	_u.mutation.AddDuration(v)
	return _u
}

// SetAppointmentType sets the "appointment_type" field.
func (_u *AppointmentUpdate) SetAppointmentType(v appointment.AppointmentType) *AppointmentUpdate {
	_u.mutation.SetAppointmentType(v)
	return _u
}

// SetNillableAppointmentType sets the "appointment_type" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableAppointmentType(v *appointment.AppointmentType) *AppointmentUpdate {
	if v != nil {
		_u.SetAppointmentType(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *AppointmentUpdate) SetReason(v string) *AppointmentUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableReason(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *AppointmentUpdate) ClearReason() *AppointmentUpdate {
	_u.mutation.ClearReason()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *AppointmentUpdate) SetNotes(v string) *AppointmentUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableNotes(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *AppointmentUpdate) ClearNotes() *AppointmentUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentUpdate) SetStatus(v appointment.Status) *AppointmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableStatus(v *appointment.Status) *AppointmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEncounterID sets the "encounter_id" field.
func (_u *AppointmentUpdate) SetEncounterID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetEncounterID(v)
	return _u
}

// SetNillableEncounterID sets the "encounter_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableEncounterID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetEncounterID(*v)
	}
	return _u
}

// ClearEncounterID clears the value of the "encounter_id" field.
func (_u *AppointmentUpdate) ClearEncounterID() *AppointmentUpdate {
	_u.mutation.ClearEncounterID()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *AppointmentUpdate) SetPatient(v *Patient) *AppointmentUpdate {
	return _u.SetPatientID(v.ID)
}

// SetProvider sets the "provider" edge to the User entity.
func (_u *AppointmentUpdate) SetProvider(v *User) *AppointmentUpdate {
	return _u.SetProviderID(v.ID)
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdate) Mutation() *AppointmentMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *AppointmentUpdate) ClearPatient() *AppointmentUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// ClearProvider clears the "provider" edge to the User entity.
func (_u *AppointmentUpdate) ClearProvider() *AppointmentUpdate {
	_u.mutation.ClearProvider()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AppointmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AppointmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdate) check() error {
	if v, ok := _u.mutation.AppointmentTime(); ok {
		if err := appointment.AppointmentTimeValidator(v); err != nil {
			return &ValidationError{Name: "appointment_time", err: fmt.Errorf(`repo: validator failed for field "Appointment.appointment_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Duration(); ok {
		if err := appointment.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`repo: validator failed for field "Appointment.duration": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AppointmentType(); ok {
		if err := appointment.AppointmentTypeValidator(v); err != nil {
			return &ValidationError{Name: "appointment_type", err: fmt.Errorf(`repo: validator failed for field "Appointment.appointment_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Appointment.patient"`)
	}
	if _u.mutation.ProviderCleared() && len(_u.mutation.ProviderIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Appointment.provider"`)
	}
	return nil
}

func (_u *AppointmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AppointmentDate(); ok {
		_spec.SetField(appointment.FieldAppointmentDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AppointmentTime(); ok {
		_spec.SetField(appointment.FieldAppointmentTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(appointment.FieldDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDuration(); ok {
		_spec.AddField(appointment.FieldDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AppointmentType(); ok {
		_spec.SetField(appointment.FieldAppointmentType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(appointment.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(appointment.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(appointment.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(appointment.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EncounterID(); ok {
		_spec.SetField(appointment.FieldEncounterID, field.TypeUUID, value)
	}
	if _u.mutation.EncounterIDCleared() {
		_spec.ClearField(appointment.FieldEncounterID, field.TypeUUID)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   appointment.PatientTable,
			Columns: []string{appointment.PatientColumn},
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
			Table:   appointment.PatientTable,
			Columns: []string{appointment.PatientColumn},
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
			Table:   appointment.ProviderTable,
			Columns: []string{appointment.ProviderColumn},
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
			Table:   appointment.ProviderTable,
			Columns: []string{appointment.ProviderColumn},
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
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AppointmentUpdateOne is the builder for updating a single Appointment entity.
type AppointmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AppointmentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentUpdateOne) SetUpdatedAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *AppointmentUpdateOne) SetPatientID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillablePatientID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetProviderID sets the "provider_id" field.
func (_u *AppointmentUpdateOne) SetProviderID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetProviderID(v)
	return _u
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableProviderID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetProviderID(*v)
	}
	return _u
}

// SetAppointmentDate sets the "appointment_date" field.
func (_u *AppointmentUpdateOne) SetAppointmentDate(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetAppointmentDate(v)
	return _u
}

// SetNillableAppointmentDate sets the "appointment_date" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableAppointmentDate(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetAppointmentDate(*v)
	}
	return _u
}

// SetAppointmentTime sets the "appointment_time" field.
func (_u *AppointmentUpdateOne) SetAppointmentTime(v string) *AppointmentUpdateOne {
	_u.mutation.SetAppointmentTime(v)
	return _u
}

// SetNillableAppointmentTime sets the "appointment_time" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableAppointmentTime(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetAppointmentTime(*v)
	}
	return _u
}

// SetDuration sets the "duration" field.
func (_u *AppointmentUpdateOne) SetDuration(v int) *AppointmentUpdateOne {
	_u.mutation.ResetDuration()
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableDuration(v *int) *AppointmentUpdateOne {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// AddDuration adds value to the "duration" field.
func (_u *AppointmentUpdateOne) AddDuration(v int) *AppointmentUpdateOne {
	_u.mutation.AddDuration(v)
	return _u
}

// SetAppointmentType sets the "appointment_type" field.
func (_u *AppointmentUpdateOne) SetAppointmentType(v appointment.AppointmentType) *AppointmentUpdateOne {
	_u.mutation.SetAppointmentType(v)
	return _u
}

// SetNillableAppointmentType sets the "appointment_type" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableAppointmentType(v *appointment.AppointmentType) *AppointmentUpdateOne {
	if v != nil {
		_u.SetAppointmentType(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *AppointmentUpdateOne) SetReason(v string) *AppointmentUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableReason(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *AppointmentUpdateOne) ClearReason() *AppointmentUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *AppointmentUpdateOne) SetNotes(v string) *AppointmentUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableNotes(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *AppointmentUpdateOne) ClearNotes() *AppointmentUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentUpdateOne) SetStatus(v appointment.Status) *AppointmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableStatus(v *appointment.Status) *AppointmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEncounterID sets the "encounter_id" field.
func (_u *AppointmentUpdateOne) SetEncounterID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetEncounterID(v)
	return _u
}

// SetNillableEncounterID sets the "encounter_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableEncounterID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetEncounterID(*v)
	}
	return _u
}

// ClearEncounterID clears the value of the "encounter_id" field.
func (_u *AppointmentUpdateOne) ClearEncounterID() *AppointmentUpdateOne {
	_u.mutation.ClearEncounterID()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *AppointmentUpdateOne) SetPatient(v *Patient) *AppointmentUpdateOne {
	return _u.SetPatientID(v.ID)
}

// SetProvider sets the "provider" edge to the User entity.
func (_u *AppointmentUpdateOne) SetProvider(v *User) *AppointmentUpdateOne {
	return _u.SetProviderID(v.ID)
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdateOne) Mutation() *AppointmentMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *AppointmentUpdateOne) ClearPatient() *AppointmentUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// ClearProvider clears the "provider" edge to the User entity.
func (_u *AppointmentUpdateOne) ClearProvider() *AppointmentUpdateOne {
	_u.mutation.ClearProvider()
	return _u
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdateOne) Where(ps ...predicate.Appointment) *AppointmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AppointmentUpdateOne) Select(field string, fields ...string) *AppointmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Appointment entity.
func (_u *AppointmentUpdateOne) Save(ctx context.Context) (*Appointment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdateOne) SaveX(ctx context.Context) *Appointment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AppointmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdateOne) check() error {
	if v, ok := _u.mutation.AppointmentTime(); ok {
		if err := appointment.AppointmentTimeValidator(v); err != nil {
			return &ValidationError{Name: "appointment_time", err: fmt.Errorf(`repo: validator failed for field "Appointment.appointment_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Duration(); ok {
		if err := appointment.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`repo: validator failed for field "Appointment.duration": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AppointmentType(); ok {
		if err := appointment.AppointmentTypeValidator(v); err != nil {
			return &ValidationError{Name: "appointment_type", err: fmt.Errorf(`repo: validator failed for field "Appointment.appointment_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Appointment.patient"`)
	}
	if _u.mutation.ProviderCleared() && len(_u.mutation.ProviderIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Appointment.provider"`)
	}
	return nil
}

func (_u *AppointmentUpdateOne) sqlSave(ctx context.Context) (_node *Appointment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Appointment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, appointment.FieldID)
		for _, f := range fields {
			if !appointment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != appointment.FieldID {
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
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AppointmentDate(); ok {
		_spec.SetField(appointment.FieldAppointmentDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AppointmentTime(); ok {
		_spec.SetField(appointment.FieldAppointmentTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(appointment.FieldDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDuration(); ok {
		_spec.AddField(appointment.FieldDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AppointmentType(); ok {
		_spec.SetField(appointment.FieldAppointmentType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(appointment.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(appointment.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(appointment.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(appointment.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EncounterID(); ok {
		_spec.SetField(appointment.FieldEncounterID, field.TypeUUID, value)
	}
	if _u.mutation.EncounterIDCleared() {
		_spec.ClearField(appointment.FieldEncounterID, field.TypeUUID)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   appointment.PatientTable,
			Columns: []string{appointment.PatientColumn},
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
			Table:   appointment.PatientTable,
			Columns: []string{appointment.PatientColumn},
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
			Table:   appointment.ProviderTable,
			Columns: []string{appointment.ProviderColumn},
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
			Table:   appointment.ProviderTable,
			Columns: []string{appointment.ProviderColumn},
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
	_node = &Appointment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
