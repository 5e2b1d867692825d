// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/caretide/caretide_backend/internal/repo/appointment"
	"github.com/caretide/caretide_backend/internal/repo/encounter"
	"github.com/caretide/caretide_backend/internal/repo/medicationmaster"
	"github.com/caretide/caretide_backend/internal/repo/patient"
	"github.com/caretide/caretide_backend/internal/repo/patientmedication"
	"github.com/caretide/caretide_backend/internal/repo/predicate"
	"github.com/caretide/caretide_backend/internal/repo/user"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAppointment       = "Appointment"
	TypeEncounter         = "Encounter"
	TypeMedicationMaster  = "MedicationMaster"
	TypePatient           = "Patient"
	TypePatientMedication = "PatientMedication"
	TypeUser              = "User"
)

// AppointmentMutation represents an operation that mutates the Appointment nodes in the graph.
type AppointmentMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	created_at       *time.Time
	updated_at       *time.Time
	appointment_id   *string
	appointment_date *time.Time
	appointment_time *string
	duration         *int
	addduration      *int
	appointment_type *appointment.AppointmentType
	reason           *string
	notes            *string
	status           *appointment.Status
	encounter_id     *uuid.UUID
	clearedFields    map[string]struct{}
	patient          *uuid.UUID
	clearedpatient   bool
	provider         *uuid.UUID
	clearedprovider  bool
	done             bool
	oldValue         func(context.Context) (*Appointment, error)
	predicates       []predicate.Appointment
}

var _ ent.Mutation = (*AppointmentMutation)(nil)

// appointmentOption allows management of the mutation configuration using functional options.
type appointmentOption func(*AppointmentMutation)

// newAppointmentMutation creates new mutation for the Appointment entity.
func newAppointmentMutation(c config, op Op, opts ...appointmentOption) *AppointmentMutation {
	m := &AppointmentMutation{
		config:        c,
		op:            op,
		typ:           TypeAppointment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAppointmentID sets the ID field of the mutation.
func withAppointmentID(id uuid.UUID) appointmentOption {
	return func(m *AppointmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Appointment
		)
		m.oldValue = func(ctx context.Context) (*Appointment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Appointment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAppointment sets the old Appointment of the mutation.
func withAppointment(node *Appointment) appointmentOption {
	return func(m *AppointmentMutation) {
		m.oldValue = func(context.Context) (*Appointment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AppointmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AppointmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Appointment entities.
func (m *AppointmentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AppointmentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AppointmentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Appointment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AppointmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AppointmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AppointmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AppointmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AppointmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AppointmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetAppointmentID sets the "appointment_id" field.
func (m *AppointmentMutation) SetAppointmentID(s string) {
	m.appointment_id = &s
}

// AppointmentID returns the value of the "appointment_id" field in the mutation.
func (m *AppointmentMutation) AppointmentID() (r string, exists bool) {
	v := m.appointment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAppointmentID returns the old "appointment_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldAppointmentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppointmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppointmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppointmentID: %w", err)
	}
	return oldValue.AppointmentID, nil
}

// ResetAppointmentID resets all changes to the "appointment_id" field.
func (m *AppointmentMutation) ResetAppointmentID() {
	m.appointment_id = nil
}

// SetPatientID sets the "patient_id" field.
func (m *AppointmentMutation) SetPatientID(u uuid.UUID) {
	m.patient = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *AppointmentMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *AppointmentMutation) ResetPatientID() {
	m.patient = nil
}

// SetProviderID sets the "provider_id" field.
func (m *AppointmentMutation) SetProviderID(u uuid.UUID) {
	m.provider = &u
}

// ProviderID returns the value of the "provider_id" field in the mutation.
func (m *AppointmentMutation) ProviderID() (r uuid.UUID, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderID returns the old "provider_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldProviderID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderID: %w", err)
	}
	return oldValue.ProviderID, nil
}

// ResetProviderID resets all changes to the "provider_id" field.
func (m *AppointmentMutation) ResetProviderID() {
	m.provider = nil
}

// SetAppointmentDate sets the "appointment_date" field.
func (m *AppointmentMutation) SetAppointmentDate(t time.Time) {
	m.appointment_date = &t
}

// AppointmentDate returns the value of the "appointment_date" field in the mutation.
func (m *AppointmentMutation) AppointmentDate() (r time.Time, exists bool) {
	v := m.appointment_date
	if v == nil {
		return
	}
	return *v, true
}

// OldAppointmentDate returns the old "appointment_date" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldAppointmentDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppointmentDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppointmentDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppointmentDate: %w", err)
	}
	return oldValue.AppointmentDate, nil
}

// ResetAppointmentDate resets all changes to the "appointment_date" field.
func (m *AppointmentMutation) ResetAppointmentDate() {
	m.appointment_date = nil
}

// SetAppointmentTime sets the "appointment_time" field.
func (m *AppointmentMutation) SetAppointmentTime(s string) {
	m.appointment_time = &s
}

// AppointmentTime returns the value of the "appointment_time" field in the mutation.
func (m *AppointmentMutation) AppointmentTime() (r string, exists bool) {
	v := m.appointment_time
	if v == nil {
		return
	}
	return *v, true
}

// OldAppointmentTime returns the old "appointment_time" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldAppointmentTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppointmentTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppointmentTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppointmentTime: %w", err)
	}
	return oldValue.AppointmentTime, nil
}

// ResetAppointmentTime resets all changes to the "appointment_time" field.
func (m *AppointmentMutation) ResetAppointmentTime() {
	m.appointment_time = nil
}

// SetDuration sets the "duration" field.
func (m *AppointmentMutation) SetDuration(i int) {
	m.duration = &i
	m.addduration = nil
}

// Duration returns the value of the "duration" field in the mutation.
func (m *AppointmentMutation) Duration() (r int, exists bool) {
	v := m.duration
	if v == nil {
		return
	}
	return *v, true
}

// OldDuration returns the old "duration" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldDuration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuration: %w", err)
	}
	return oldValue.Duration, nil
}

// AddDuration adds i to the "duration" field.
func (m *AppointmentMutation) AddDuration(i int) {
	if m.addduration != nil {
		*m.addduration += i
	} else {
		m.addduration = &i
	}
}

// AddedDuration returns the value that was added to the "duration" field in this mutation.
func (m *AppointmentMutation) AddedDuration() (r int, exists bool) {
	v := m.addduration
	if v == nil {
		return
	}
	return *v, true
}

// ResetDuration resets all changes to the "duration" field.
func (m *AppointmentMutation) ResetDuration() {
	m.duration = nil
	m.addduration = nil
}

// SetAppointmentType sets the "appointment_type" field.
func (m *AppointmentMutation) SetAppointmentType(at appointment.AppointmentType) {
	m.appointment_type = &at
}

// AppointmentType returns the value of the "appointment_type" field in the mutation.
func (m *AppointmentMutation) AppointmentType() (r appointment.AppointmentType, exists bool) {
	v := m.appointment_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAppointmentType returns the old "appointment_type" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldAppointmentType(ctx context.Context) (v appointment.AppointmentType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppointmentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppointmentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppointmentType: %w", err)
	}
	return oldValue.AppointmentType, nil
}

// ResetAppointmentType resets all changes to the "appointment_type" field.
func (m *AppointmentMutation) ResetAppointmentType() {
	m.appointment_type = nil
}

// SetReason sets the "reason" field.
func (m *AppointmentMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *AppointmentMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *AppointmentMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[appointment.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *AppointmentMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[appointment.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *AppointmentMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, appointment.FieldReason)
}

// SetNotes sets the "notes" field.
func (m *AppointmentMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *AppointmentMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *AppointmentMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[appointment.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *AppointmentMutation) NotesCleared() bool {
	_, ok := m.clearedFields[appointment.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *AppointmentMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, appointment.FieldNotes)
}

// SetStatus sets the "status" field.
func (m *AppointmentMutation) SetStatus(a appointment.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AppointmentMutation) Status() (r appointment.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldStatus(ctx context.Context) (v appointment.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AppointmentMutation) ResetStatus() {
	m.status = nil
}

// SetEncounterID sets the "encounter_id" field.
func (m *AppointmentMutation) SetEncounterID(u uuid.UUID) {
	m.encounter_id = &u
}

// EncounterID returns the value of the "encounter_id" field in the mutation.
func (m *AppointmentMutation) EncounterID() (r uuid.UUID, exists bool) {
	v := m.encounter_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEncounterID returns the old "encounter_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldEncounterID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEncounterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEncounterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEncounterID: %w", err)
	}
	return oldValue.EncounterID, nil
}

// ClearEncounterID clears the value of the "encounter_id" field.
func (m *AppointmentMutation) ClearEncounterID() {
	m.encounter_id = nil
	m.clearedFields[appointment.FieldEncounterID] = struct{}{}
}

// EncounterIDCleared returns if the "encounter_id" field was cleared in this mutation.
func (m *AppointmentMutation) EncounterIDCleared() bool {
	_, ok := m.clearedFields[appointment.FieldEncounterID]
	return ok
}

// ResetEncounterID resets all changes to the "encounter_id" field.
func (m *AppointmentMutation) ResetEncounterID() {
	m.encounter_id = nil
	delete(m.clearedFields, appointment.FieldEncounterID)
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (m *AppointmentMutation) ClearPatient() {
	m.clearedpatient = true
	m.clearedFields[appointment.FieldPatientID] = struct{}{}
}

// PatientCleared reports if the "patient" edge to the Patient entity was cleared.
func (m *AppointmentMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *AppointmentMutation) PatientIDs() (ids []uuid.UUID) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *AppointmentMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// ClearProvider clears the "provider" edge to the User entity.
func (m *AppointmentMutation) ClearProvider() {
	m.clearedprovider = true
	m.clearedFields[appointment.FieldProviderID] = struct{}{}
}

// ProviderCleared reports if the "provider" edge to the User entity was cleared.
func (m *AppointmentMutation) ProviderCleared() bool {
	return m.clearedprovider
}

// ProviderIDs returns the "provider" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProviderID instead. It exists only for internal usage by the builders.
func (m *AppointmentMutation) ProviderIDs() (ids []uuid.UUID) {
	if id := m.provider; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProvider resets all changes to the "provider" edge.
func (m *AppointmentMutation) ResetProvider() {
	m.provider = nil
	m.clearedprovider = false
}

// Where appends a list predicates to the AppointmentMutation builder.
func (m *AppointmentMutation) Where(ps ...predicate.Appointment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AppointmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AppointmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Appointment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AppointmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AppointmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Appointment).
func (m *AppointmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AppointmentMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.created_at != nil {
		fields = append(fields, appointment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, appointment.FieldUpdatedAt)
	}
	if m.appointment_id != nil {
		fields = append(fields, appointment.FieldAppointmentID)
	}
	if m.patient != nil {
		fields = append(fields, appointment.FieldPatientID)
	}
	if m.provider != nil {
		fields = append(fields, appointment.FieldProviderID)
	}
	if m.appointment_date != nil {
		fields = append(fields, appointment.FieldAppointmentDate)
	}
	if m.appointment_time != nil {
		fields = append(fields, appointment.FieldAppointmentTime)
	}
	if m.duration != nil {
		fields = append(fields, appointment.FieldDuration)
	}
	if m.appointment_type != nil {
		fields = append(fields, appointment.FieldAppointmentType)
	}
	if m.reason != nil {
		fields = append(fields, appointment.FieldReason)
	}
	if m.notes != nil {
		fields = append(fields, appointment.FieldNotes)
	}
	if m.status != nil {
		fields = append(fields, appointment.FieldStatus)
	}
	if m.encounter_id != nil {
		fields = append(fields, appointment.FieldEncounterID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AppointmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case appointment.FieldCreatedAt:
		return m.CreatedAt()
	case appointment.FieldUpdatedAt:
		return m.UpdatedAt()
	case appointment.FieldAppointmentID:
		return m.AppointmentID()
	case appointment.FieldPatientID:
		return m.PatientID()
	case appointment.FieldProviderID:
		return m.ProviderID()
	case appointment.FieldAppointmentDate:
		return m.AppointmentDate()
	case appointment.FieldAppointmentTime:
		return m.AppointmentTime()
	case appointment.FieldDuration:
		return m.Duration()
	case appointment.FieldAppointmentType:
		return m.AppointmentType()
	case appointment.FieldReason:
		return m.Reason()
	case appointment.FieldNotes:
		return m.Notes()
	case appointment.FieldStatus:
		return m.Status()
	case appointment.FieldEncounterID:
		return m.EncounterID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AppointmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case appointment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case appointment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case appointment.FieldAppointmentID:
		return m.OldAppointmentID(ctx)
	case appointment.FieldPatientID:
		return m.OldPatientID(ctx)
	case appointment.FieldProviderID:
		return m.OldProviderID(ctx)
	case appointment.FieldAppointmentDate:
		return m.OldAppointmentDate(ctx)
	case appointment.FieldAppointmentTime:
		return m.OldAppointmentTime(ctx)
	case appointment.FieldDuration:
		return m.OldDuration(ctx)
	case appointment.FieldAppointmentType:
		return m.OldAppointmentType(ctx)
	case appointment.FieldReason:
		return m.OldReason(ctx)
	case appointment.FieldNotes:
		return m.OldNotes(ctx)
	case appointment.FieldStatus:
		return m.OldStatus(ctx)
	case appointment.FieldEncounterID:
		return m.OldEncounterID(ctx)
	}
	return nil, fmt.Errorf("unknown Appointment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppointmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case appointment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case appointment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case appointment.FieldAppointmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppointmentID(v)
		return nil
	case appointment.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case appointment.FieldProviderID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderID(v)
		return nil
	case appointment.FieldAppointmentDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppointmentDate(v)
		return nil
	case appointment.FieldAppointmentTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppointmentTime(v)
		return nil
	case appointment.FieldDuration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuration(v)
		return nil
	case appointment.FieldAppointmentType:
		v, ok := value.(appointment.AppointmentType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppointmentType(v)
		return nil
	case appointment.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case appointment.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case appointment.FieldStatus:
		v, ok := value.(appointment.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case appointment.FieldEncounterID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEncounterID(v)
		return nil
	}
	return fmt.Errorf("unknown Appointment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AppointmentMutation) AddedFields() []string {
	var fields []string
	if m.addduration != nil {
		fields = append(fields, appointment.FieldDuration)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AppointmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case appointment.FieldDuration:
		return m.AddedDuration()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppointmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case appointment.FieldDuration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDuration(v)
		return nil
	}
	return fmt.Errorf("unknown Appointment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AppointmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(appointment.FieldReason) {
		fields = append(fields, appointment.FieldReason)
	}
	if m.FieldCleared(appointment.FieldNotes) {
		fields = append(fields, appointment.FieldNotes)
	}
	if m.FieldCleared(appointment.FieldEncounterID) {
		fields = append(fields, appointment.FieldEncounterID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AppointmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AppointmentMutation) ClearField(name string) error {
	switch name {
	case appointment.FieldReason:
		m.ClearReason()
		return nil
	case appointment.FieldNotes:
		m.ClearNotes()
		return nil
	case appointment.FieldEncounterID:
		m.ClearEncounterID()
		return nil
	}
	return fmt.Errorf("unknown Appointment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AppointmentMutation) ResetField(name string) error {
	switch name {
	case appointment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case appointment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case appointment.FieldAppointmentID:
		m.ResetAppointmentID()
		return nil
	case appointment.FieldPatientID:
		m.ResetPatientID()
		return nil
	case appointment.FieldProviderID:
		m.ResetProviderID()
		return nil
	case appointment.FieldAppointmentDate:
		m.ResetAppointmentDate()
		return nil
	case appointment.FieldAppointmentTime:
		m.ResetAppointmentTime()
		return nil
	case appointment.FieldDuration:
		m.ResetDuration()
		return nil
	case appointment.FieldAppointmentType:
		m.ResetAppointmentType()
		return nil
	case appointment.FieldReason:
		m.ResetReason()
		return nil
	case appointment.FieldNotes:
		m.ResetNotes()
		return nil
	case appointment.FieldStatus:
		m.ResetStatus()
		return nil
	case appointment.FieldEncounterID:
		m.ResetEncounterID()
		return nil
	}
	return fmt.Errorf("unknown Appointment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AppointmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.patient != nil {
		edges = append(edges, appointment.EdgePatient)
	}
	if m.provider != nil {
		edges = append(edges, appointment.EdgeProvider)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AppointmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case appointment.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	case appointment.EdgeProvider:
		if id := m.provider; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AppointmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AppointmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AppointmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedpatient {
		edges = append(edges, appointment.EdgePatient)
	}
	if m.clearedprovider {
		edges = append(edges, appointment.EdgeProvider)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AppointmentMutation) EdgeCleared(name string) bool {
	switch name {
	case appointment.EdgePatient:
		return m.clearedpatient
	case appointment.EdgeProvider:
		return m.clearedprovider
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AppointmentMutation) ClearEdge(name string) error {
	switch name {
	case appointment.EdgePatient:
		m.ClearPatient()
		return nil
	case appointment.EdgeProvider:
		m.ClearProvider()
		return nil
	}
	return fmt.Errorf("unknown Appointment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AppointmentMutation) ResetEdge(name string) error {
	switch name {
	case appointment.EdgePatient:
		m.ResetPatient()
		return nil
	case appointment.EdgeProvider:
		m.ResetProvider()
		return nil
	}
	return fmt.Errorf("unknown Appointment edge %s", name)
}

// EncounterMutation represents an operation that mutates the Encounter nodes in the graph.
type EncounterMutation struct {
	config
	op                         Op
	typ                        string
	id                         *uuid.UUID
	created_at                 *time.Time
	updated_at                 *time.Time
	encounter_id               *string
	appointment_id             *uuid.UUID
	encounter_type             *encounter.EncounterType
	encounter_date             *time.Time
	chief_complaint            *string
	history_of_present_illness *string
	physical_examination       *string
	assessment                 *string
	plan                       *string
	notes                      *string
	status                     *encounter.Status
	duration                   *int
	addduration                *int
	clearedFields              map[string]struct{}
	patient                    *uuid.UUID
	clearedpatient             bool
	provider                   *uuid.UUID
	clearedprovider            bool
	done                       bool
	oldValue                   func(context.Context) (*Encounter, error)
	predicates                 []predicate.Encounter
}

var _ ent.Mutation = (*EncounterMutation)(nil)

// encounterOption allows management of the mutation configuration using functional options.
type encounterOption func(*EncounterMutation)

// newEncounterMutation creates new mutation for the Encounter entity.
func newEncounterMutation(c config, op Op, opts ...encounterOption) *EncounterMutation {
	m := &EncounterMutation{
		config:        c,
		op:            op,
		typ:           TypeEncounter,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEncounterID sets the ID field of the mutation.
func withEncounterID(id uuid.UUID) encounterOption {
	return func(m *EncounterMutation) {
		var (
			err   error
			once  sync.Once
			value *Encounter
		)
		m.oldValue = func(ctx context.Context) (*Encounter, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Encounter.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEncounter sets the old Encounter of the mutation.
func withEncounter(node *Encounter) encounterOption {
	return func(m *EncounterMutation) {
		m.oldValue = func(context.Context) (*Encounter, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EncounterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EncounterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Encounter entities.
func (m *EncounterMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EncounterMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EncounterMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Encounter.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *EncounterMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EncounterMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Encounter entity.
// If the Encounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EncounterMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EncounterMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EncounterMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EncounterMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Encounter entity.
// If the Encounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EncounterMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EncounterMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetEncounterID sets the "encounter_id" field.
func (m *EncounterMutation) SetEncounterID(s string) {
	m.encounter_id = &s
}

// EncounterID returns the value of the "encounter_id" field in the mutation.
func (m *EncounterMutation) EncounterID() (r string, exists bool) {
	v := m.encounter_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEncounterID returns the old "encounter_id" field's value of the Encounter entity.
// If the Encounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EncounterMutation) OldEncounterID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEncounterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEncounterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEncounterID: %w", err)
	}
	return oldValue.EncounterID, nil
}

// ResetEncounterID resets all changes to the "encounter_id" field.
func (m *EncounterMutation) ResetEncounterID() {
	m.encounter_id = nil
}

// SetPatientID sets the "patient_id" field.
func (m *EncounterMutation) SetPatientID(u uuid.UUID) {
	m.patient = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *EncounterMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the Encounter entity.
// If the Encounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EncounterMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *EncounterMutation) ResetPatientID() {
	m.patient = nil
}

// SetProviderID sets the "provider_id" field.
func (m *EncounterMutation) SetProviderID(u uuid.UUID) {
	m.provider = &u
}

// ProviderID returns the value of the "provider_id" field in the mutation.
func (m *EncounterMutation) ProviderID() (r uuid.UUID, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderID returns the old "provider_id" field's value of the Encounter entity.
// If the Encounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EncounterMutation) OldProviderID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderID: %w", err)
	}
	return oldValue.ProviderID, nil
}

// ResetProviderID resets all changes to the "provider_id" field.
func (m *EncounterMutation) ResetProviderID() {
	m.provider = nil
}

// SetAppointmentID sets the "appointment_id" field.
func (m *EncounterMutation) SetAppointmentID(u uuid.UUID) {
	m.appointment_id = &u
}

// AppointmentID returns the value of the "appointment_id" field in the mutation.
func (m *EncounterMutation) AppointmentID() (r uuid.UUID, exists bool) {
	v := m.appointment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAppointmentID returns the old "appointment_id" field's value of the Encounter entity.
// If the Encounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EncounterMutation) OldAppointmentID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppointmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppointmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppointmentID: %w", err)
	}
	return oldValue.AppointmentID, nil
}

// ClearAppointmentID clears the value of the "appointment_id" field.
func (m *EncounterMutation) ClearAppointmentID() {
	m.appointment_id = nil
	m.clearedFields[encounter.FieldAppointmentID] = struct{}{}
}

// AppointmentIDCleared returns if the "appointment_id" field was cleared in this mutation.
func (m *EncounterMutation) AppointmentIDCleared() bool {
	_, ok := m.clearedFields[encounter.FieldAppointmentID]
	return ok
}

// ResetAppointmentID resets all changes to the "appointment_id" field.
func (m *EncounterMutation) ResetAppointmentID() {
	m.appointment_id = nil
	delete(m.clearedFields, encounter.FieldAppointmentID)
}

// SetEncounterType sets the "encounter_type" field.
func (m *EncounterMutation) SetEncounterType(et encounter.EncounterType) {
	m.encounter_type = &et
}

// EncounterType returns the value of the "encounter_type" field in the mutation.
func (m *EncounterMutation) EncounterType() (r encounter.EncounterType, exists bool) {
	v := m.encounter_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEncounterType returns the old "encounter_type" field's value of the Encounter entity.
// If the Encounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EncounterMutation) OldEncounterType(ctx context.Context) (v encounter.EncounterType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEncounterType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEncounterType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEncounterType: %w", err)
	}
	return oldValue.EncounterType, nil
}

// ResetEncounterType resets all changes to the "encounter_type" field.
func (m *EncounterMutation) ResetEncounterType() {
	m.encounter_type = nil
}

// SetEncounterDate sets the "encounter_date" field.
func (m *EncounterMutation) SetEncounterDate(t time.Time) {
	m.encounter_date = &t
}

// EncounterDate returns the value of the "encounter_date" field in the mutation.
func (m *EncounterMutation) EncounterDate() (r time.Time, exists bool) {
	v := m.encounter_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEncounterDate returns the old "encounter_date" field's value of the Encounter entity.
// If the Encounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EncounterMutation) OldEncounterDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEncounterDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEncounterDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEncounterDate: %w", err)
	}
	return oldValue.EncounterDate, nil
}

// ResetEncounterDate resets all changes to the "encounter_date" field.
func (m *EncounterMutation) ResetEncounterDate() {
	m.encounter_date = nil
}

// SetChiefComplaint sets the "chief_complaint" field.
func (m *EncounterMutation) SetChiefComplaint(s string) {
	m.chief_complaint = &s
}

// ChiefComplaint returns the value of the "chief_complaint" field in the mutation.
func (m *EncounterMutation) ChiefComplaint() (r string, exists bool) {
	v := m.chief_complaint
	if v == nil {
		return
	}
	return *v, true
}

// OldChiefComplaint returns the old "chief_complaint" field's value of the Encounter entity.
// If the Encounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EncounterMutation) OldChiefComplaint(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChiefComplaint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChiefComplaint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChiefComplaint: %w", err)
	}
	return oldValue.ChiefComplaint, nil
}

// ClearChiefComplaint clears the value of the "chief_complaint" field.
func (m *EncounterMutation) ClearChiefComplaint() {
	m.chief_complaint = nil
	m.clearedFields[encounter.FieldChiefComplaint] = struct{}{}
}

// ChiefComplaintCleared returns if the "chief_complaint" field was cleared in this mutation.
func (m *EncounterMutation) ChiefComplaintCleared() bool {
	_, ok := m.clearedFields[encounter.FieldChiefComplaint]
	return ok
}

// ResetChiefComplaint resets all changes to the "chief_complaint" field.
func (m *EncounterMutation) ResetChiefComplaint() {
	m.chief_complaint = nil
	delete(m.clearedFields, encounter.FieldChiefComplaint)
}

// SetHistoryOfPresentIllness sets the "history_of_present_illness" field.
func (m *EncounterMutation) SetHistoryOfPresentIllness(s string) {
	m.history_of_present_illness = &s
}

// HistoryOfPresentIllness returns the value of the "history_of_present_illness" field in the mutation.
func (m *EncounterMutation) HistoryOfPresentIllness() (r string, exists bool) {
	v := m.history_of_present_illness
	if v == nil {
		return
	}
	return *v, true
}

// OldHistoryOfPresentIllness returns the old "history_of_present_illness" field's value of the Encounter entity.
// If the Encounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EncounterMutation) OldHistoryOfPresentIllness(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHistoryOfPresentIllness is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHistoryOfPresentIllness requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHistoryOfPresentIllness: %w", err)
	}
	return oldValue.HistoryOfPresentIllness, nil
}

// ClearHistoryOfPresentIllness clears the value of the "history_of_present_illness" field.
func (m *EncounterMutation) ClearHistoryOfPresentIllness() {
	m.history_of_present_illness = nil
	m.clearedFields[encounter.FieldHistoryOfPresentIllness] = struct{}{}
}

// HistoryOfPresentIllnessCleared returns if the "history_of_present_illness" field was cleared in this mutation.
func (m *EncounterMutation) HistoryOfPresentIllnessCleared() bool {
	_, ok := m.clearedFields[encounter.FieldHistoryOfPresentIllness]
	return ok
}

// ResetHistoryOfPresentIllness resets all changes to the "history_of_present_illness" field.
func (m *EncounterMutation) ResetHistoryOfPresentIllness() {
	m.history_of_present_illness = nil
	delete(m.clearedFields, encounter.FieldHistoryOfPresentIllness)
}

// SetPhysicalExamination sets the "physical_examination" field.
func (m *EncounterMutation) SetPhysicalExamination(s string) {
	m.physical_examination = &s
}

// PhysicalExamination returns the value of the "physical_examination" field in the mutation.
func (m *EncounterMutation) PhysicalExamination() (r string, exists bool) {
	v := m.physical_examination
	if v == nil {
		return
	}
	return *v, true
}

// OldPhysicalExamination returns the old "physical_examination" field's value of the Encounter entity.
// If the Encounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EncounterMutation) OldPhysicalExamination(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhysicalExamination is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhysicalExamination requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhysicalExamination: %w", err)
	}
	return oldValue.PhysicalExamination, nil
}

// ClearPhysicalExamination clears the value of the "physical_examination" field.
func (m *EncounterMutation) ClearPhysicalExamination() {
	m.physical_examination = nil
	m.clearedFields[encounter.FieldPhysicalExamination] = struct{}{}
}

// PhysicalExaminationCleared returns if the "physical_examination" field was cleared in this mutation.
func (m *EncounterMutation) PhysicalExaminationCleared() bool {
	_, ok := m.clearedFields[encounter.FieldPhysicalExamination]
	return ok
}

// ResetPhysicalExamination resets all changes to the "physical_examination" field.
func (m *EncounterMutation) ResetPhysicalExamination() {
	m.physical_examination = nil
	delete(m.clearedFields, encounter.FieldPhysicalExamination)
}

// SetAssessment sets the "assessment" field.
func (m *EncounterMutation) SetAssessment(s string) {
	m.assessment = &s
}

// Assessment returns the value of the "assessment" field in the mutation.
func (m *EncounterMutation) Assessment() (r string, exists bool) {
	v := m.assessment
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessment returns the old "assessment" field's value of the Encounter entity.
// If the Encounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EncounterMutation) OldAssessment(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessment: %w", err)
	}
	return oldValue.Assessment, nil
}

// ClearAssessment clears the value of the "assessment" field.
func (m *EncounterMutation) ClearAssessment() {
	m.assessment = nil
	m.clearedFields[encounter.FieldAssessment] = struct{}{}
}

// AssessmentCleared returns if the "assessment" field was cleared in this mutation.
func (m *EncounterMutation) AssessmentCleared() bool {
	_, ok := m.clearedFields[encounter.FieldAssessment]
	return ok
}

// ResetAssessment resets all changes to the "assessment" field.
func (m *EncounterMutation) ResetAssessment() {
	m.assessment = nil
	delete(m.clearedFields, encounter.FieldAssessment)
}

// SetPlan sets the "plan" field.
func (m *EncounterMutation) SetPlan(s string) {
	m.plan = &s
}

// Plan returns the value of the "plan" field in the mutation.
func (m *EncounterMutation) Plan() (r string, exists bool) {
	v := m.plan
	if v == nil {
		return
	}
	return *v, true
}

// OldPlan returns the old "plan" field's value of the Encounter entity.
// If the Encounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EncounterMutation) OldPlan(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlan: %w", err)
	}
	return oldValue.Plan, nil
}

// ClearPlan clears the value of the "plan" field.
func (m *EncounterMutation) ClearPlan() {
	m.plan = nil
	m.clearedFields[encounter.FieldPlan] = struct{}{}
}

// PlanCleared returns if the "plan" field was cleared in this mutation.
func (m *EncounterMutation) PlanCleared() bool {
	_, ok := m.clearedFields[encounter.FieldPlan]
	return ok
}

// ResetPlan resets all changes to the "plan" field.
func (m *EncounterMutation) ResetPlan() {
	m.plan = nil
	delete(m.clearedFields, encounter.FieldPlan)
}

// SetNotes sets the "notes" field.
func (m *EncounterMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *EncounterMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Encounter entity.
// If the Encounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EncounterMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *EncounterMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[encounter.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *EncounterMutation) NotesCleared() bool {
	_, ok := m.clearedFields[encounter.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *EncounterMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, encounter.FieldNotes)
}

// SetStatus sets the "status" field.
func (m *EncounterMutation) SetStatus(e encounter.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *EncounterMutation) Status() (r encounter.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Encounter entity.
// If the Encounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EncounterMutation) OldStatus(ctx context.Context) (v encounter.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *EncounterMutation) ResetStatus() {
	m.status = nil
}

// SetDuration sets the "duration" field.
func (m *EncounterMutation) SetDuration(i int) {
	m.duration = &i
	m.addduration = nil
}

// Duration returns the value of the "duration" field in the mutation.
func (m *EncounterMutation) Duration() (r int, exists bool) {
	v := m.duration
	if v == nil {
		return
	}
	return *v, true
}

// OldDuration returns the old "duration" field's value of the Encounter entity.
// If the Encounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EncounterMutation) OldDuration(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuration: %w", err)
	}
	return oldValue.Duration, nil
}

// AddDuration adds i to the "duration" field.
func (m *EncounterMutation) AddDuration(i int) {
	if m.addduration != nil {
		*m.addduration += i
	} else {
		m.addduration = &i
	}
}

// AddedDuration returns the value that was added to the "duration" field in this mutation.
func (m *EncounterMutation) AddedDuration() (r int, exists bool) {
	v := m.addduration
	if v == nil {
		return
	}
	return *v, true
}

// ClearDuration clears the value of the "duration" field.
func (m *EncounterMutation) ClearDuration() {
	m.duration = nil
	m.addduration = nil
	m.clearedFields[encounter.FieldDuration] = struct{}{}
}

// DurationCleared returns if the "duration" field was cleared in this mutation.
func (m *EncounterMutation) DurationCleared() bool {
	_, ok := m.clearedFields[encounter.FieldDuration]
	return ok
}

// ResetDuration resets all changes to the "duration" field.
func (m *EncounterMutation) ResetDuration() {
	m.duration = nil
	m.addduration = nil
	delete(m.clearedFields, encounter.FieldDuration)
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (m *EncounterMutation) ClearPatient() {
	m.clearedpatient = true
	m.clearedFields[encounter.FieldPatientID] = struct{}{}
}

// PatientCleared reports if the "patient" edge to the Patient entity was cleared.
func (m *EncounterMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *EncounterMutation) PatientIDs() (ids []uuid.UUID) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *EncounterMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// ClearProvider clears the "provider" edge to the User entity.
func (m *EncounterMutation) ClearProvider() {
	m.clearedprovider = true
	m.clearedFields[encounter.FieldProviderID] = struct{}{}
}

// ProviderCleared reports if the "provider" edge to the User entity was cleared.
func (m *EncounterMutation) ProviderCleared() bool {
	return m.clearedprovider
}

// ProviderIDs returns the "provider" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProviderID instead. It exists only for internal usage by the builders.
func (m *EncounterMutation) ProviderIDs() (ids []uuid.UUID) {
	if id := m.provider; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProvider resets all changes to the "provider" edge.
func (m *EncounterMutation) ResetProvider() {
	m.provider = nil
	m.clearedprovider = false
}

// Where appends a list predicates to the EncounterMutation builder.
func (m *EncounterMutation) Where(ps ...predicate.Encounter) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EncounterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EncounterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Encounter, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EncounterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EncounterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Encounter).
func (m *EncounterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EncounterMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.created_at != nil {
		fields = append(fields, encounter.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, encounter.FieldUpdatedAt)
	}
	if m.encounter_id != nil {
		fields = append(fields, encounter.FieldEncounterID)
	}
	if m.patient != nil {
		fields = append(fields, encounter.FieldPatientID)
	}
	if m.provider != nil {
		fields = append(fields, encounter.FieldProviderID)
	}
	if m.appointment_id != nil {
		fields = append(fields, encounter.FieldAppointmentID)
	}
	if m.encounter_type != nil {
		fields = append(fields, encounter.FieldEncounterType)
	}
	if m.encounter_date != nil {
		fields = append(fields, encounter.FieldEncounterDate)
	}
	if m.chief_complaint != nil {
		fields = append(fields, encounter.FieldChiefComplaint)
	}
	if m.history_of_present_illness != nil {
		fields = append(fields, encounter.FieldHistoryOfPresentIllness)
	}
	if m.physical_examination != nil {
		fields = append(fields, encounter.FieldPhysicalExamination)
	}
	if m.assessment != nil {
		fields = append(fields, encounter.FieldAssessment)
	}
	if m.plan != nil {
		fields = append(fields, encounter.FieldPlan)
	}
	if m.notes != nil {
		fields = append(fields, encounter.FieldNotes)
	}
	if m.status != nil {
		fields = append(fields, encounter.FieldStatus)
	}
	if m.duration != nil {
		fields = append(fields, encounter.FieldDuration)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EncounterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case encounter.FieldCreatedAt:
		return m.CreatedAt()
	case encounter.FieldUpdatedAt:
		return m.UpdatedAt()
	case encounter.FieldEncounterID:
		return m.EncounterID()
	case encounter.FieldPatientID:
		return m.PatientID()
	case encounter.FieldProviderID:
		return m.ProviderID()
	case encounter.FieldAppointmentID:
		return m.AppointmentID()
	case encounter.FieldEncounterType:
		return m.EncounterType()
	case encounter.FieldEncounterDate:
		return m.EncounterDate()
	case encounter.FieldChiefComplaint:
		return m.ChiefComplaint()
	case encounter.FieldHistoryOfPresentIllness:
		return m.HistoryOfPresentIllness()
	case encounter.FieldPhysicalExamination:
		return m.PhysicalExamination()
	case encounter.FieldAssessment:
		return m.Assessment()
	case encounter.FieldPlan:
		return m.Plan()
	case encounter.FieldNotes:
		return m.Notes()
	case encounter.FieldStatus:
		return m.Status()
	case encounter.FieldDuration:
		return m.Duration()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EncounterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case encounter.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case encounter.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case encounter.FieldEncounterID:
		return m.OldEncounterID(ctx)
	case encounter.FieldPatientID:
		return m.OldPatientID(ctx)
	case encounter.FieldProviderID:
		return m.OldProviderID(ctx)
	case encounter.FieldAppointmentID:
		return m.OldAppointmentID(ctx)
	case encounter.FieldEncounterType:
		return m.OldEncounterType(ctx)
	case encounter.FieldEncounterDate:
		return m.OldEncounterDate(ctx)
	case encounter.FieldChiefComplaint:
		return m.OldChiefComplaint(ctx)
	case encounter.FieldHistoryOfPresentIllness:
		return m.OldHistoryOfPresentIllness(ctx)
	case encounter.FieldPhysicalExamination:
		return m.OldPhysicalExamination(ctx)
	case encounter.FieldAssessment:
		return m.OldAssessment(ctx)
	case encounter.FieldPlan:
		return m.OldPlan(ctx)
	case encounter.FieldNotes:
		return m.OldNotes(ctx)
	case encounter.FieldStatus:
		return m.OldStatus(ctx)
	case encounter.FieldDuration:
		return m.OldDuration(ctx)
	}
	return nil, fmt.Errorf("unknown Encounter field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EncounterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case encounter.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case encounter.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case encounter.FieldEncounterID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEncounterID(v)
		return nil
	case encounter.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case encounter.FieldProviderID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderID(v)
		return nil
	case encounter.FieldAppointmentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppointmentID(v)
		return nil
	case encounter.FieldEncounterType:
		v, ok := value.(encounter.EncounterType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEncounterType(v)
		return nil
	case encounter.FieldEncounterDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEncounterDate(v)
		return nil
	case encounter.FieldChiefComplaint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChiefComplaint(v)
		return nil
	case encounter.FieldHistoryOfPresentIllness:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHistoryOfPresentIllness(v)
		return nil
	case encounter.FieldPhysicalExamination:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhysicalExamination(v)
		return nil
	case encounter.FieldAssessment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessment(v)
		return nil
	case encounter.FieldPlan:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlan(v)
		return nil
	case encounter.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case encounter.FieldStatus:
		v, ok := value.(encounter.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case encounter.FieldDuration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuration(v)
		return nil
	}
	return fmt.Errorf("unknown Encounter field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EncounterMutation) AddedFields() []string {
	var fields []string
	if m.addduration != nil {
		fields = append(fields, encounter.FieldDuration)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EncounterMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case encounter.FieldDuration:
		return m.AddedDuration()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EncounterMutation) AddField(name string, value ent.Value) error {
	switch name {
	case encounter.FieldDuration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDuration(v)
		return nil
	}
	return fmt.Errorf("unknown Encounter numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EncounterMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(encounter.FieldAppointmentID) {
		fields = append(fields, encounter.FieldAppointmentID)
	}
	if m.FieldCleared(encounter.FieldChiefComplaint) {
		fields = append(fields, encounter.FieldChiefComplaint)
	}
	if m.FieldCleared(encounter.FieldHistoryOfPresentIllness) {
		fields = append(fields, encounter.FieldHistoryOfPresentIllness)
	}
	if m.FieldCleared(encounter.FieldPhysicalExamination) {
		fields = append(fields, encounter.FieldPhysicalExamination)
	}
	if m.FieldCleared(encounter.FieldAssessment) {
		fields = append(fields, encounter.FieldAssessment)
	}
	if m.FieldCleared(encounter.FieldPlan) {
		fields = append(fields, encounter.FieldPlan)
	}
	if m.FieldCleared(encounter.FieldNotes) {
		fields = append(fields, encounter.FieldNotes)
	}
	if m.FieldCleared(encounter.FieldDuration) {
		fields = append(fields, encounter.FieldDuration)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EncounterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EncounterMutation) ClearField(name string) error {
	switch name {
	case encounter.FieldAppointmentID:
		m.ClearAppointmentID()
		return nil
	case encounter.FieldChiefComplaint:
		m.ClearChiefComplaint()
		return nil
	case encounter.FieldHistoryOfPresentIllness:
		m.ClearHistoryOfPresentIllness()
		return nil
	case encounter.FieldPhysicalExamination:
		m.ClearPhysicalExamination()
		return nil
	case encounter.FieldAssessment:
		m.ClearAssessment()
		return nil
	case encounter.FieldPlan:
		m.ClearPlan()
		return nil
	case encounter.FieldNotes:
		m.ClearNotes()
		return nil
	case encounter.FieldDuration:
		m.ClearDuration()
		return nil
	}
	return fmt.Errorf("unknown Encounter nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EncounterMutation) ResetField(name string) error {
	switch name {
	case encounter.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case encounter.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case encounter.FieldEncounterID:
		m.ResetEncounterID()
		return nil
	case encounter.FieldPatientID:
		m.ResetPatientID()
		return nil
	case encounter.FieldProviderID:
		m.ResetProviderID()
		return nil
	case encounter.FieldAppointmentID:
		m.ResetAppointmentID()
		return nil
	case encounter.FieldEncounterType:
		m.ResetEncounterType()
		return nil
	case encounter.FieldEncounterDate:
		m.ResetEncounterDate()
		return nil
	case encounter.FieldChiefComplaint:
		m.ResetChiefComplaint()
		return nil
	case encounter.FieldHistoryOfPresentIllness:
		m.ResetHistoryOfPresentIllness()
		return nil
	case encounter.FieldPhysicalExamination:
		m.ResetPhysicalExamination()
		return nil
	case encounter.FieldAssessment:
		m.ResetAssessment()
		return nil
	case encounter.FieldPlan:
		m.ResetPlan()
		return nil
	case encounter.FieldNotes:
		m.ResetNotes()
		return nil
	case encounter.FieldStatus:
		m.ResetStatus()
		return nil
	case encounter.FieldDuration:
		m.ResetDuration()
		return nil
	}
	return fmt.Errorf("unknown Encounter field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EncounterMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.patient != nil {
		edges = append(edges, encounter.EdgePatient)
	}
	if m.provider != nil {
		edges = append(edges, encounter.EdgeProvider)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EncounterMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case encounter.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	case encounter.EdgeProvider:
		if id := m.provider; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EncounterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EncounterMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EncounterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedpatient {
		edges = append(edges, encounter.EdgePatient)
	}
	if m.clearedprovider {
		edges = append(edges, encounter.EdgeProvider)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EncounterMutation) EdgeCleared(name string) bool {
	switch name {
	case encounter.EdgePatient:
		return m.clearedpatient
	case encounter.EdgeProvider:
		return m.clearedprovider
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EncounterMutation) ClearEdge(name string) error {
	switch name {
	case encounter.EdgePatient:
		m.ClearPatient()
		return nil
	case encounter.EdgeProvider:
		m.ClearProvider()
		return nil
	}
	return fmt.Errorf("unknown Encounter unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EncounterMutation) ResetEdge(name string) error {
	switch name {
	case encounter.EdgePatient:
		m.ResetPatient()
		return nil
	case encounter.EdgeProvider:
		m.ResetProvider()
		return nil
	}
	return fmt.Errorf("unknown Encounter edge %s", name)
}

// MedicationMasterMutation represents an operation that mutates the MedicationMaster nodes in the graph.
type MedicationMasterMutation struct {
	config
	op                         Op
	typ                        string
	id                         *uuid.UUID
	created_at                 *time.Time
	updated_at                 *time.Time
	generic_name               *string
	brand_name                 *string
	dosage_form                *medicationmaster.DosageForm
	strength                   *string
	manufacturer               *string
	classification             *medicationmaster.Classification
	description                *string
	is_active                  *bool
	clearedFields              map[string]struct{}
	patient_medications        map[uuid.UUID]struct{}
	removedpatient_medications map[uuid.UUID]struct{}
	clearedpatient_medications bool
	done                       bool
	oldValue                   func(context.Context) (*MedicationMaster, error)
	predicates                 []predicate.MedicationMaster
}

var _ ent.Mutation = (*MedicationMasterMutation)(nil)

// medicationmasterOption allows management of the mutation configuration using functional options.
type medicationmasterOption func(*MedicationMasterMutation)

// newMedicationMasterMutation creates new mutation for the MedicationMaster entity.
func newMedicationMasterMutation(c config, op Op, opts ...medicationmasterOption) *MedicationMasterMutation {
	m := &MedicationMasterMutation{
		config:        c,
		op:            op,
		typ:           TypeMedicationMaster,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMedicationMasterID sets the ID field of the mutation.
func withMedicationMasterID(id uuid.UUID) medicationmasterOption {
	return func(m *MedicationMasterMutation) {
		var (
			err   error
			once  sync.Once
			value *MedicationMaster
		)
		m.oldValue = func(ctx context.Context) (*MedicationMaster, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MedicationMaster.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMedicationMaster sets the old MedicationMaster of the mutation.
func withMedicationMaster(node *MedicationMaster) medicationmasterOption {
	return func(m *MedicationMasterMutation) {
		m.oldValue = func(context.Context) (*MedicationMaster, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MedicationMasterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MedicationMasterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MedicationMaster entities.
func (m *MedicationMasterMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MedicationMasterMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MedicationMasterMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MedicationMaster.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *MedicationMasterMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MedicationMasterMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MedicationMaster entity.
// If the MedicationMaster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicationMasterMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MedicationMasterMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MedicationMasterMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MedicationMasterMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MedicationMaster entity.
// If the MedicationMaster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicationMasterMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MedicationMasterMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetGenericName sets the "generic_name" field.
func (m *MedicationMasterMutation) SetGenericName(s string) {
	m.generic_name = &s
}

// GenericName returns the value of the "generic_name" field in the mutation.
func (m *MedicationMasterMutation) GenericName() (r string, exists bool) {
	v := m.generic_name
	if v == nil {
		return
	}
	return *v, true
}

// OldGenericName returns the old "generic_name" field's value of the MedicationMaster entity.
// If the MedicationMaster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicationMasterMutation) OldGenericName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenericName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenericName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenericName: %w", err)
	}
	return oldValue.GenericName, nil
}

// ResetGenericName resets all changes to the "generic_name" field.
func (m *MedicationMasterMutation) ResetGenericName() {
	m.generic_name = nil
}

// SetBrandName sets the "brand_name" field.
func (m *MedicationMasterMutation) SetBrandName(s string) {
	m.brand_name = &s
}

// BrandName returns the value of the "brand_name" field in the mutation.
func (m *MedicationMasterMutation) BrandName() (r string, exists bool) {
	v := m.brand_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBrandName returns the old "brand_name" field's value of the MedicationMaster entity.
// If the MedicationMaster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicationMasterMutation) OldBrandName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBrandName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBrandName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBrandName: %w", err)
	}
	return oldValue.BrandName, nil
}

// ClearBrandName clears the value of the "brand_name" field.
func (m *MedicationMasterMutation) ClearBrandName() {
	m.brand_name = nil
	m.clearedFields[medicationmaster.FieldBrandName] = struct{}{}
}

// BrandNameCleared returns if the "brand_name" field was cleared in this mutation.
func (m *MedicationMasterMutation) BrandNameCleared() bool {
	_, ok := m.clearedFields[medicationmaster.FieldBrandName]
	return ok
}

// ResetBrandName resets all changes to the "brand_name" field.
func (m *MedicationMasterMutation) ResetBrandName() {
	m.brand_name = nil
	delete(m.clearedFields, medicationmaster.FieldBrandName)
}

// SetDosageForm sets the "dosage_form" field.
func (m *MedicationMasterMutation) SetDosageForm(mf medicationmaster.DosageForm) {
	m.dosage_form = &mf
}

// DosageForm returns the value of the "dosage_form" field in the mutation.
func (m *MedicationMasterMutation) DosageForm() (r medicationmaster.DosageForm, exists bool) {
	v := m.dosage_form
	if v == nil {
		return
	}
	return *v, true
}

// OldDosageForm returns the old "dosage_form" field's value of the MedicationMaster entity.
// If the MedicationMaster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicationMasterMutation) OldDosageForm(ctx context.Context) (v medicationmaster.DosageForm, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDosageForm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDosageForm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDosageForm: %w", err)
	}
	return oldValue.DosageForm, nil
}

// ResetDosageForm resets all changes to the "dosage_form" field.
func (m *MedicationMasterMutation) ResetDosageForm() {
	m.dosage_form = nil
}

// SetStrength sets the "strength" field.
func (m *MedicationMasterMutation) SetStrength(s string) {
	m.strength = &s
}

// Strength returns the value of the "strength" field in the mutation.
func (m *MedicationMasterMutation) Strength() (r string, exists bool) {
	v := m.strength
	if v == nil {
		return
	}
	return *v, true
}

// OldStrength returns the old "strength" field's value of the MedicationMaster entity.
// If the MedicationMaster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicationMasterMutation) OldStrength(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrength is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrength requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrength: %w", err)
	}
	return oldValue.Strength, nil
}

// ResetStrength resets all changes to the "strength" field.
func (m *MedicationMasterMutation) ResetStrength() {
	m.strength = nil
}

// SetManufacturer sets the "manufacturer" field.
func (m *MedicationMasterMutation) SetManufacturer(s string) {
	m.manufacturer = &s
}

// Manufacturer returns the value of the "manufacturer" field in the mutation.
func (m *MedicationMasterMutation) Manufacturer() (r string, exists bool) {
	v := m.manufacturer
	if v == nil {
		return
	}
	return *v, true
}

// OldManufacturer returns the old "manufacturer" field's value of the MedicationMaster entity.
// If the MedicationMaster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicationMasterMutation) OldManufacturer(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldManufacturer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldManufacturer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldManufacturer: %w", err)
	}
	return oldValue.Manufacturer, nil
}

// ClearManufacturer clears the value of the "manufacturer" field.
func (m *MedicationMasterMutation) ClearManufacturer() {
	m.manufacturer = nil
	m.clearedFields[medicationmaster.FieldManufacturer] = struct{}{}
}

// ManufacturerCleared returns if the "manufacturer" field was cleared in this mutation.
func (m *MedicationMasterMutation) ManufacturerCleared() bool {
	_, ok := m.clearedFields[medicationmaster.FieldManufacturer]
	return ok
}

// ResetManufacturer resets all changes to the "manufacturer" field.
func (m *MedicationMasterMutation) ResetManufacturer() {
	m.manufacturer = nil
	delete(m.clearedFields, medicationmaster.FieldManufacturer)
}

// SetClassification sets the "classification" field.
func (m *MedicationMasterMutation) SetClassification(value medicationmaster.Classification) {
	m.classification = &value
}

// Classification returns the value of the "classification" field in the mutation.
func (m *MedicationMasterMutation) Classification() (r medicationmaster.Classification, exists bool) {
	v := m.classification
	if v == nil {
		return
	}
	return *v, true
}

// OldClassification returns the old "classification" field's value of the MedicationMaster entity.
// If the MedicationMaster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicationMasterMutation) OldClassification(ctx context.Context) (v medicationmaster.Classification, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassification is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassification requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassification: %w", err)
	}
	return oldValue.Classification, nil
}

// ResetClassification resets all changes to the "classification" field.
func (m *MedicationMasterMutation) ResetClassification() {
	m.classification = nil
}

// SetDescription sets the "description" field.
func (m *MedicationMasterMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *MedicationMasterMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the MedicationMaster entity.
// If the MedicationMaster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicationMasterMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *MedicationMasterMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[medicationmaster.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *MedicationMasterMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[medicationmaster.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *MedicationMasterMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, medicationmaster.FieldDescription)
}

// SetIsActive sets the "is_active" field.
func (m *MedicationMasterMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *MedicationMasterMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the MedicationMaster entity.
// If the MedicationMaster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicationMasterMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *MedicationMasterMutation) ResetIsActive() {
	m.is_active = nil
}

// AddPatientMedicationIDs adds the "patient_medications" edge to the PatientMedication entity by ids.
func (m *MedicationMasterMutation) AddPatientMedicationIDs(ids ...uuid.UUID) {
	if m.patient_medications == nil {
		m.patient_medications = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.patient_medications[ids[i]] = struct{}{}
	}
}

// ClearPatientMedications clears the "patient_medications" edge to the PatientMedication entity.
func (m *MedicationMasterMutation) ClearPatientMedications() {
	m.clearedpatient_medications = true
}

// PatientMedicationsCleared reports if the "patient_medications" edge to the PatientMedication entity was cleared.
func (m *MedicationMasterMutation) PatientMedicationsCleared() bool {
	return m.clearedpatient_medications
}

// RemovePatientMedicationIDs removes the "patient_medications" edge to the PatientMedication entity by IDs.
func (m *MedicationMasterMutation) RemovePatientMedicationIDs(ids ...uuid.UUID) {
	if m.removedpatient_medications == nil {
		m.removedpatient_medications = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.patient_medications, ids[i])
		m.removedpatient_medications[ids[i]] = struct{}{}
	}
}

// RemovedPatientMedications returns the removed IDs of the "patient_medications" edge to the PatientMedication entity.
func (m *MedicationMasterMutation) RemovedPatientMedicationsIDs() (ids []uuid.UUID) {
	for id := range m.removedpatient_medications {
		ids = append(ids, id)
	}
	return
}

// PatientMedicationsIDs returns the "patient_medications" edge IDs in the mutation.
func (m *MedicationMasterMutation) PatientMedicationsIDs() (ids []uuid.UUID) {
	for id := range m.patient_medications {
		ids = append(ids, id)
	}
	return
}

// ResetPatientMedications resets all changes to the "patient_medications" edge.
func (m *MedicationMasterMutation) ResetPatientMedications() {
	m.patient_medications = nil
	m.clearedpatient_medications = false
	m.removedpatient_medications = nil
}

// Where appends a list predicates to the MedicationMasterMutation builder.
func (m *MedicationMasterMutation) Where(ps ...predicate.MedicationMaster) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MedicationMasterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MedicationMasterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MedicationMaster, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MedicationMasterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MedicationMasterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MedicationMaster).
func (m *MedicationMasterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MedicationMasterMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, medicationmaster.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, medicationmaster.FieldUpdatedAt)
	}
	if m.generic_name != nil {
		fields = append(fields, medicationmaster.FieldGenericName)
	}
	if m.brand_name != nil {
		fields = append(fields, medicationmaster.FieldBrandName)
	}
	if m.dosage_form != nil {
		fields = append(fields, medicationmaster.FieldDosageForm)
	}
	if m.strength != nil {
		fields = append(fields, medicationmaster.FieldStrength)
	}
	if m.manufacturer != nil {
		fields = append(fields, medicationmaster.FieldManufacturer)
	}
	if m.classification != nil {
		fields = append(fields, medicationmaster.FieldClassification)
	}
	if m.description != nil {
		fields = append(fields, medicationmaster.FieldDescription)
	}
	if m.is_active != nil {
		fields = append(fields, medicationmaster.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MedicationMasterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case medicationmaster.FieldCreatedAt:
		return m.CreatedAt()
	case medicationmaster.FieldUpdatedAt:
		return m.UpdatedAt()
	case medicationmaster.FieldGenericName:
		return m.GenericName()
	case medicationmaster.FieldBrandName:
		return m.BrandName()
	case medicationmaster.FieldDosageForm:
		return m.DosageForm()
	case medicationmaster.FieldStrength:
		return m.Strength()
	case medicationmaster.FieldManufacturer:
		return m.Manufacturer()
	case medicationmaster.FieldClassification:
		return m.Classification()
	case medicationmaster.FieldDescription:
		return m.Description()
	case medicationmaster.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MedicationMasterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case medicationmaster.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case medicationmaster.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case medicationmaster.FieldGenericName:
		return m.OldGenericName(ctx)
	case medicationmaster.FieldBrandName:
		return m.OldBrandName(ctx)
	case medicationmaster.FieldDosageForm:
		return m.OldDosageForm(ctx)
	case medicationmaster.FieldStrength:
		return m.OldStrength(ctx)
	case medicationmaster.FieldManufacturer:
		return m.OldManufacturer(ctx)
	case medicationmaster.FieldClassification:
		return m.OldClassification(ctx)
	case medicationmaster.FieldDescription:
		return m.OldDescription(ctx)
	case medicationmaster.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown MedicationMaster field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MedicationMasterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case medicationmaster.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case medicationmaster.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case medicationmaster.FieldGenericName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenericName(v)
		return nil
	case medicationmaster.FieldBrandName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBrandName(v)
		return nil
	case medicationmaster.FieldDosageForm:
		v, ok := value.(medicationmaster.DosageForm)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDosageForm(v)
		return nil
	case medicationmaster.FieldStrength:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrength(v)
		return nil
	case medicationmaster.FieldManufacturer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetManufacturer(v)
		return nil
	case medicationmaster.FieldClassification:
		v, ok := value.(medicationmaster.Classification)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassification(v)
		return nil
	case medicationmaster.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case medicationmaster.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown MedicationMaster field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MedicationMasterMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MedicationMasterMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MedicationMasterMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MedicationMaster numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MedicationMasterMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(medicationmaster.FieldBrandName) {
		fields = append(fields, medicationmaster.FieldBrandName)
	}
	if m.FieldCleared(medicationmaster.FieldManufacturer) {
		fields = append(fields, medicationmaster.FieldManufacturer)
	}
	if m.FieldCleared(medicationmaster.FieldDescription) {
		fields = append(fields, medicationmaster.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MedicationMasterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MedicationMasterMutation) ClearField(name string) error {
	switch name {
	case medicationmaster.FieldBrandName:
		m.ClearBrandName()
		return nil
	case medicationmaster.FieldManufacturer:
		m.ClearManufacturer()
		return nil
	case medicationmaster.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown MedicationMaster nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MedicationMasterMutation) ResetField(name string) error {
	switch name {
	case medicationmaster.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case medicationmaster.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case medicationmaster.FieldGenericName:
		m.ResetGenericName()
		return nil
	case medicationmaster.FieldBrandName:
		m.ResetBrandName()
		return nil
	case medicationmaster.FieldDosageForm:
		m.ResetDosageForm()
		return nil
	case medicationmaster.FieldStrength:
		m.ResetStrength()
		return nil
	case medicationmaster.FieldManufacturer:
		m.ResetManufacturer()
		return nil
	case medicationmaster.FieldClassification:
		m.ResetClassification()
		return nil
	case medicationmaster.FieldDescription:
		m.ResetDescription()
		return nil
	case medicationmaster.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown MedicationMaster field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MedicationMasterMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.patient_medications != nil {
		edges = append(edges, medicationmaster.EdgePatientMedications)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MedicationMasterMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case medicationmaster.EdgePatientMedications:
		ids := make([]ent.Value, 0, len(m.patient_medications))
		for id := range m.patient_medications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MedicationMasterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedpatient_medications != nil {
		edges = append(edges, medicationmaster.EdgePatientMedications)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MedicationMasterMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case medicationmaster.EdgePatientMedications:
		ids := make([]ent.Value, 0, len(m.removedpatient_medications))
		for id := range m.removedpatient_medications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MedicationMasterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpatient_medications {
		edges = append(edges, medicationmaster.EdgePatientMedications)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MedicationMasterMutation) EdgeCleared(name string) bool {
	switch name {
	case medicationmaster.EdgePatientMedications:
		return m.clearedpatient_medications
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MedicationMasterMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown MedicationMaster unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MedicationMasterMutation) ResetEdge(name string) error {
	switch name {
	case medicationmaster.EdgePatientMedications:
		m.ResetPatientMedications()
		return nil
	}
	return fmt.Errorf("unknown MedicationMaster edge %s", name)
}

// PatientMutation represents an operation that mutates the Patient nodes in the graph.
type PatientMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	patient_id          *string
	first_name          *string
	last_name           *string
	date_of_birth       *time.Time
	gender              *patient.Gender
	phone               *string
	email               *string
	address             *string
	emergency_contact   *string
	emergency_phone     *string
	blood_type          *patient.BloodType
	allergies           *string
	medical_history     *string
	is_active           *bool
	clearedFields       map[string]struct{}
	appointments        map[uuid.UUID]struct{}
	removedappointments map[uuid.UUID]struct{}
	clearedappointments bool
	encounters          map[uuid.UUID]struct{}
	removedencounters   map[uuid.UUID]struct{}
	clearedencounters   bool
	medications         map[uuid.UUID]struct{}
	removedmedications  map[uuid.UUID]struct{}
	clearedmedications  bool
	done                bool
	oldValue            func(context.Context) (*Patient, error)
	predicates          []predicate.Patient
}

var _ ent.Mutation = (*PatientMutation)(nil)

// patientOption allows management of the mutation configuration using functional options.
type patientOption func(*PatientMutation)

// newPatientMutation creates new mutation for the Patient entity.
func newPatientMutation(c config, op Op, opts ...patientOption) *PatientMutation {
	m := &PatientMutation{
		config:        c,
		op:            op,
		typ:           TypePatient,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPatientID sets the ID field of the mutation.
func withPatientID(id uuid.UUID) patientOption {
	return func(m *PatientMutation) {
		var (
			err   error
			once  sync.Once
			value *Patient
		)
		m.oldValue = func(ctx context.Context) (*Patient, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Patient.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPatient sets the old Patient of the mutation.
func withPatient(node *Patient) patientOption {
	return func(m *PatientMutation) {
		m.oldValue = func(context.Context) (*Patient, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PatientMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PatientMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Patient entities.
func (m *PatientMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PatientMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PatientMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Patient.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PatientMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PatientMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PatientMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PatientMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PatientMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PatientMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPatientID sets the "patient_id" field.
func (m *PatientMutation) SetPatientID(s string) {
	m.patient_id = &s
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *PatientMutation) PatientID() (r string, exists bool) {
	v := m.patient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldPatientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *PatientMutation) ResetPatientID() {
	m.patient_id = nil
}

// SetFirstName sets the "first_name" field.
func (m *PatientMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *PatientMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *PatientMutation) ResetFirstName() {
	m.first_name = nil
}

// SetLastName sets the "last_name" field.
func (m *PatientMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *PatientMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ResetLastName resets all changes to the "last_name" field.
func (m *PatientMutation) ResetLastName() {
	m.last_name = nil
}

// SetDateOfBirth sets the "date_of_birth" field.
func (m *PatientMutation) SetDateOfBirth(t time.Time) {
	m.date_of_birth = &t
}

// DateOfBirth returns the value of the "date_of_birth" field in the mutation.
func (m *PatientMutation) DateOfBirth() (r time.Time, exists bool) {
	v := m.date_of_birth
	if v == nil {
		return
	}
	return *v, true
}

// OldDateOfBirth returns the old "date_of_birth" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldDateOfBirth(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateOfBirth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateOfBirth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateOfBirth: %w", err)
	}
	return oldValue.DateOfBirth, nil
}

// ResetDateOfBirth resets all changes to the "date_of_birth" field.
func (m *PatientMutation) ResetDateOfBirth() {
	m.date_of_birth = nil
}

// SetGender sets the "gender" field.
func (m *PatientMutation) SetGender(pa patient.Gender) {
	m.gender = &pa
}

// Gender returns the value of the "gender" field in the mutation.
func (m *PatientMutation) Gender() (r patient.Gender, exists bool) {
	v := m.gender
	if v == nil {
		return
	}
	return *v, true
}

// OldGender returns the old "gender" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldGender(ctx context.Context) (v patient.Gender, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGender: %w", err)
	}
	return oldValue.Gender, nil
}

// ResetGender resets all changes to the "gender" field.
func (m *PatientMutation) ResetGender() {
	m.gender = nil
}

// SetPhone sets the "phone" field.
func (m *PatientMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *PatientMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ResetPhone resets all changes to the "phone" field.
func (m *PatientMutation) ResetPhone() {
	m.phone = nil
}

// SetEmail sets the "email" field.
func (m *PatientMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *PatientMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *PatientMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[patient.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *PatientMutation) EmailCleared() bool {
	_, ok := m.clearedFields[patient.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *PatientMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, patient.FieldEmail)
}

// SetAddress sets the "address" field.
func (m *PatientMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *PatientMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *PatientMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[patient.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *PatientMutation) AddressCleared() bool {
	_, ok := m.clearedFields[patient.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *PatientMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, patient.FieldAddress)
}

// SetEmergencyContact sets the "emergency_contact" field.
func (m *PatientMutation) SetEmergencyContact(s string) {
	m.emergency_contact = &s
}

// EmergencyContact returns the value of the "emergency_contact" field in the mutation.
func (m *PatientMutation) EmergencyContact() (r string, exists bool) {
	v := m.emergency_contact
	if v == nil {
		return
	}
	return *v, true
}

// OldEmergencyContact returns the old "emergency_contact" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldEmergencyContact(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmergencyContact is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmergencyContact requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmergencyContact: %w", err)
	}
	return oldValue.EmergencyContact, nil
}

// ClearEmergencyContact clears the value of the "emergency_contact" field.
func (m *PatientMutation) ClearEmergencyContact() {
	m.emergency_contact = nil
	m.clearedFields[patient.FieldEmergencyContact] = struct{}{}
}

// EmergencyContactCleared returns if the "emergency_contact" field was cleared in this mutation.
func (m *PatientMutation) EmergencyContactCleared() bool {
	_, ok := m.clearedFields[patient.FieldEmergencyContact]
	return ok
}

// ResetEmergencyContact resets all changes to the "emergency_contact" field.
func (m *PatientMutation) ResetEmergencyContact() {
	m.emergency_contact = nil
	delete(m.clearedFields, patient.FieldEmergencyContact)
}

// SetEmergencyPhone sets the "emergency_phone" field.
func (m *PatientMutation) SetEmergencyPhone(s string) {
	m.emergency_phone = &s
}

// EmergencyPhone returns the value of the "emergency_phone" field in the mutation.
func (m *PatientMutation) EmergencyPhone() (r string, exists bool) {
	v := m.emergency_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldEmergencyPhone returns the old "emergency_phone" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldEmergencyPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmergencyPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmergencyPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmergencyPhone: %w", err)
	}
	return oldValue.EmergencyPhone, nil
}

// ClearEmergencyPhone clears the value of the "emergency_phone" field.
func (m *PatientMutation) ClearEmergencyPhone() {
	m.emergency_phone = nil
	m.clearedFields[patient.FieldEmergencyPhone] = struct{}{}
}

// EmergencyPhoneCleared returns if the "emergency_phone" field was cleared in this mutation.
func (m *PatientMutation) EmergencyPhoneCleared() bool {
	_, ok := m.clearedFields[patient.FieldEmergencyPhone]
	return ok
}

// ResetEmergencyPhone resets all changes to the "emergency_phone" field.
func (m *PatientMutation) ResetEmergencyPhone() {
	m.emergency_phone = nil
	delete(m.clearedFields, patient.FieldEmergencyPhone)
}

// SetBloodType sets the "blood_type" field.
func (m *PatientMutation) SetBloodType(pt patient.BloodType) {
	m.blood_type = &pt
}

// BloodType returns the value of the "blood_type" field in the mutation.
func (m *PatientMutation) BloodType() (r patient.BloodType, exists bool) {
	v := m.blood_type
	if v == nil {
		return
	}
	return *v, true
}

// OldBloodType returns the old "blood_type" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldBloodType(ctx context.Context) (v *patient.BloodType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBloodType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBloodType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBloodType: %w", err)
	}
	return oldValue.BloodType, nil
}

// ClearBloodType clears the value of the "blood_type" field.
func (m *PatientMutation) ClearBloodType() {
	m.blood_type = nil
	m.clearedFields[patient.FieldBloodType] = struct{}{}
}

// BloodTypeCleared returns if the "blood_type" field was cleared in this mutation.
func (m *PatientMutation) BloodTypeCleared() bool {
	_, ok := m.clearedFields[patient.FieldBloodType]
	return ok
}

// ResetBloodType resets all changes to the "blood_type" field.
func (m *PatientMutation) ResetBloodType() {
	m.blood_type = nil
	delete(m.clearedFields, patient.FieldBloodType)
}

// SetAllergies sets the "allergies" field.
func (m *PatientMutation) SetAllergies(s string) {
	m.allergies = &s
}

// Allergies returns the value of the "allergies" field in the mutation.
func (m *PatientMutation) Allergies() (r string, exists bool) {
	v := m.allergies
	if v == nil {
		return
	}
	return *v, true
}

// OldAllergies returns the old "allergies" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldAllergies(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllergies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllergies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllergies: %w", err)
	}
	return oldValue.Allergies, nil
}

// ClearAllergies clears the value of the "allergies" field.
func (m *PatientMutation) ClearAllergies() {
	m.allergies = nil
	m.clearedFields[patient.FieldAllergies] = struct{}{}
}

// AllergiesCleared returns if the "allergies" field was cleared in this mutation.
func (m *PatientMutation) AllergiesCleared() bool {
	_, ok := m.clearedFields[patient.FieldAllergies]
	return ok
}

// ResetAllergies resets all changes to the "allergies" field.
func (m *PatientMutation) ResetAllergies() {
	m.allergies = nil
	delete(m.clearedFields, patient.FieldAllergies)
}

// SetMedicalHistory sets the "medical_history" field.
func (m *PatientMutation) SetMedicalHistory(s string) {
	m.medical_history = &s
}

// MedicalHistory returns the value of the "medical_history" field in the mutation.
func (m *PatientMutation) MedicalHistory() (r string, exists bool) {
	v := m.medical_history
	if v == nil {
		return
	}
	return *v, true
}

// OldMedicalHistory returns the old "medical_history" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldMedicalHistory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMedicalHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMedicalHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMedicalHistory: %w", err)
	}
	return oldValue.MedicalHistory, nil
}

// ClearMedicalHistory clears the value of the "medical_history" field.
func (m *PatientMutation) ClearMedicalHistory() {
	m.medical_history = nil
	m.clearedFields[patient.FieldMedicalHistory] = struct{}{}
}

// MedicalHistoryCleared returns if the "medical_history" field was cleared in this mutation.
func (m *PatientMutation) MedicalHistoryCleared() bool {
	_, ok := m.clearedFields[patient.FieldMedicalHistory]
	return ok
}

// ResetMedicalHistory resets all changes to the "medical_history" field.
func (m *PatientMutation) ResetMedicalHistory() {
	m.medical_history = nil
	delete(m.clearedFields, patient.FieldMedicalHistory)
}

// SetIsActive sets the "is_active" field.
func (m *PatientMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *PatientMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *PatientMutation) ResetIsActive() {
	m.is_active = nil
}

// AddAppointmentIDs adds the "appointments" edge to the Appointment entity by ids.
func (m *PatientMutation) AddAppointmentIDs(ids ...uuid.UUID) {
	if m.appointments == nil {
		m.appointments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.appointments[ids[i]] = struct{}{}
	}
}

// ClearAppointments clears the "appointments" edge to the Appointment entity.
func (m *PatientMutation) ClearAppointments() {
	m.clearedappointments = true
}

// AppointmentsCleared reports if the "appointments" edge to the Appointment entity was cleared.
func (m *PatientMutation) AppointmentsCleared() bool {
	return m.clearedappointments
}

// RemoveAppointmentIDs removes the "appointments" edge to the Appointment entity by IDs.
func (m *PatientMutation) RemoveAppointmentIDs(ids ...uuid.UUID) {
	if m.removedappointments == nil {
		m.removedappointments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.appointments, ids[i])
		m.removedappointments[ids[i]] = struct{}{}
	}
}

// RemovedAppointments returns the removed IDs of the "appointments" edge to the Appointment entity.
func (m *PatientMutation) RemovedAppointmentsIDs() (ids []uuid.UUID) {
	for id := range m.removedappointments {
		ids = append(ids, id)
	}
	return
}

// AppointmentsIDs returns the "appointments" edge IDs in the mutation.
func (m *PatientMutation) AppointmentsIDs() (ids []uuid.UUID) {
	for id := range m.appointments {
		ids = append(ids, id)
	}
	return
}

// ResetAppointments resets all changes to the "appointments" edge.
func (m *PatientMutation) ResetAppointments() {
	m.appointments = nil
	m.clearedappointments = false
	m.removedappointments = nil
}

// AddEncounterIDs adds the "encounters" edge to the Encounter entity by ids.
func (m *PatientMutation) AddEncounterIDs(ids ...uuid.UUID) {
	if m.encounters == nil {
		m.encounters = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.encounters[ids[i]] = struct{}{}
	}
}

// ClearEncounters clears the "encounters" edge to the Encounter entity.
func (m *PatientMutation) ClearEncounters() {
	m.clearedencounters = true
}

// EncountersCleared reports if the "encounters" edge to the Encounter entity was cleared.
func (m *PatientMutation) EncountersCleared() bool {
	return m.clearedencounters
}

// RemoveEncounterIDs removes the "encounters" edge to the Encounter entity by IDs.
func (m *PatientMutation) RemoveEncounterIDs(ids ...uuid.UUID) {
	if m.removedencounters == nil {
		m.removedencounters = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.encounters, ids[i])
		m.removedencounters[ids[i]] = struct{}{}
	}
}

// RemovedEncounters returns the removed IDs of the "encounters" edge to the Encounter entity.
func (m *PatientMutation) RemovedEncountersIDs() (ids []uuid.UUID) {
	for id := range m.removedencounters {
		ids = append(ids, id)
	}
	return
}

// EncountersIDs returns the "encounters" edge IDs in the mutation.
func (m *PatientMutation) EncountersIDs() (ids []uuid.UUID) {
	for id := range m.encounters {
		ids = append(ids, id)
	}
	return
}

// ResetEncounters resets all changes to the "encounters" edge.
func (m *PatientMutation) ResetEncounters() {
	m.encounters = nil
	m.clearedencounters = false
	m.removedencounters = nil
}

// AddMedicationIDs adds the "medications" edge to the PatientMedication entity by ids.
func (m *PatientMutation) AddMedicationIDs(ids ...uuid.UUID) {
	if m.medications == nil {
		m.medications = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.medications[ids[i]] = struct{}{}
	}
}

// ClearMedications clears the "medications" edge to the PatientMedication entity.
func (m *PatientMutation) ClearMedications() {
	m.clearedmedications = true
}

// MedicationsCleared reports if the "medications" edge to the PatientMedication entity was cleared.
func (m *PatientMutation) MedicationsCleared() bool {
	return m.clearedmedications
}

// RemoveMedicationIDs removes the "medications" edge to the PatientMedication entity by IDs.
func (m *PatientMutation) RemoveMedicationIDs(ids ...uuid.UUID) {
	if m.removedmedications == nil {
		m.removedmedications = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.medications, ids[i])
		m.removedmedications[ids[i]] = struct{}{}
	}
}

// RemovedMedications returns the removed IDs of the "medications" edge to the PatientMedication entity.
func (m *PatientMutation) RemovedMedicationsIDs() (ids []uuid.UUID) {
	for id := range m.removedmedications {
		ids = append(ids, id)
	}
	return
}

// MedicationsIDs returns the "medications" edge IDs in the mutation.
func (m *PatientMutation) MedicationsIDs() (ids []uuid.UUID) {
	for id := range m.medications {
		ids = append(ids, id)
	}
	return
}

// ResetMedications resets all changes to the "medications" edge.
func (m *PatientMutation) ResetMedications() {
	m.medications = nil
	m.clearedmedications = false
	m.removedmedications = nil
}

// Where appends a list predicates to the PatientMutation builder.
func (m *PatientMutation) Where(ps ...predicate.Patient) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PatientMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PatientMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Patient, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PatientMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PatientMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Patient).
func (m *PatientMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PatientMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.created_at != nil {
		fields = append(fields, patient.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, patient.FieldUpdatedAt)
	}
	if m.patient_id != nil {
		fields = append(fields, patient.FieldPatientID)
	}
	if m.first_name != nil {
		fields = append(fields, patient.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, patient.FieldLastName)
	}
	if m.date_of_birth != nil {
		fields = append(fields, patient.FieldDateOfBirth)
	}
	if m.gender != nil {
		fields = append(fields, patient.FieldGender)
	}
	if m.phone != nil {
		fields = append(fields, patient.FieldPhone)
	}
	if m.email != nil {
		fields = append(fields, patient.FieldEmail)
	}
	if m.address != nil {
		fields = append(fields, patient.FieldAddress)
	}
	if m.emergency_contact != nil {
		fields = append(fields, patient.FieldEmergencyContact)
	}
	if m.emergency_phone != nil {
		fields = append(fields, patient.FieldEmergencyPhone)
	}
	if m.blood_type != nil {
		fields = append(fields, patient.FieldBloodType)
	}
	if m.allergies != nil {
		fields = append(fields, patient.FieldAllergies)
	}
	if m.medical_history != nil {
		fields = append(fields, patient.FieldMedicalHistory)
	}
	if m.is_active != nil {
		fields = append(fields, patient.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PatientMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case patient.FieldCreatedAt:
		return m.CreatedAt()
	case patient.FieldUpdatedAt:
		return m.UpdatedAt()
	case patient.FieldPatientID:
		return m.PatientID()
	case patient.FieldFirstName:
		return m.FirstName()
	case patient.FieldLastName:
		return m.LastName()
	case patient.FieldDateOfBirth:
		return m.DateOfBirth()
	case patient.FieldGender:
		return m.Gender()
	case patient.FieldPhone:
		return m.Phone()
	case patient.FieldEmail:
		return m.Email()
	case patient.FieldAddress:
		return m.Address()
	case patient.FieldEmergencyContact:
		return m.EmergencyContact()
	case patient.FieldEmergencyPhone:
		return m.EmergencyPhone()
	case patient.FieldBloodType:
		return m.BloodType()
	case patient.FieldAllergies:
		return m.Allergies()
	case patient.FieldMedicalHistory:
		return m.MedicalHistory()
	case patient.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PatientMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case patient.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case patient.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case patient.FieldPatientID:
		return m.OldPatientID(ctx)
	case patient.FieldFirstName:
		return m.OldFirstName(ctx)
	case patient.FieldLastName:
		return m.OldLastName(ctx)
	case patient.FieldDateOfBirth:
		return m.OldDateOfBirth(ctx)
	case patient.FieldGender:
		return m.OldGender(ctx)
	case patient.FieldPhone:
		return m.OldPhone(ctx)
	case patient.FieldEmail:
		return m.OldEmail(ctx)
	case patient.FieldAddress:
		return m.OldAddress(ctx)
	case patient.FieldEmergencyContact:
		return m.OldEmergencyContact(ctx)
	case patient.FieldEmergencyPhone:
		return m.OldEmergencyPhone(ctx)
	case patient.FieldBloodType:
		return m.OldBloodType(ctx)
	case patient.FieldAllergies:
		return m.OldAllergies(ctx)
	case patient.FieldMedicalHistory:
		return m.OldMedicalHistory(ctx)
	case patient.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown Patient field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientMutation) SetField(name string, value ent.Value) error {
	switch name {
	case patient.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case patient.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case patient.FieldPatientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case patient.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case patient.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case patient.FieldDateOfBirth:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateOfBirth(v)
		return nil
	case patient.FieldGender:
		v, ok := value.(patient.Gender)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGender(v)
		return nil
	case patient.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case patient.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case patient.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case patient.FieldEmergencyContact:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmergencyContact(v)
		return nil
	case patient.FieldEmergencyPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmergencyPhone(v)
		return nil
	case patient.FieldBloodType:
		v, ok := value.(patient.BloodType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBloodType(v)
		return nil
	case patient.FieldAllergies:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllergies(v)
		return nil
	case patient.FieldMedicalHistory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMedicalHistory(v)
		return nil
	case patient.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown Patient field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PatientMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PatientMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Patient numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PatientMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(patient.FieldEmail) {
		fields = append(fields, patient.FieldEmail)
	}
	if m.FieldCleared(patient.FieldAddress) {
		fields = append(fields, patient.FieldAddress)
	}
	if m.FieldCleared(patient.FieldEmergencyContact) {
		fields = append(fields, patient.FieldEmergencyContact)
	}
	if m.FieldCleared(patient.FieldEmergencyPhone) {
		fields = append(fields, patient.FieldEmergencyPhone)
	}
	if m.FieldCleared(patient.FieldBloodType) {
		fields = append(fields, patient.FieldBloodType)
	}
	if m.FieldCleared(patient.FieldAllergies) {
		fields = append(fields, patient.FieldAllergies)
	}
	if m.FieldCleared(patient.FieldMedicalHistory) {
		fields = append(fields, patient.FieldMedicalHistory)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PatientMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PatientMutation) ClearField(name string) error {
	switch name {
	case patient.FieldEmail:
		m.ClearEmail()
		return nil
	case patient.FieldAddress:
		m.ClearAddress()
		return nil
	case patient.FieldEmergencyContact:
		m.ClearEmergencyContact()
		return nil
	case patient.FieldEmergencyPhone:
		m.ClearEmergencyPhone()
		return nil
	case patient.FieldBloodType:
		m.ClearBloodType()
		return nil
	case patient.FieldAllergies:
		m.ClearAllergies()
		return nil
	case patient.FieldMedicalHistory:
		m.ClearMedicalHistory()
		return nil
	}
	return fmt.Errorf("unknown Patient nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PatientMutation) ResetField(name string) error {
	switch name {
	case patient.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case patient.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case patient.FieldPatientID:
		m.ResetPatientID()
		return nil
	case patient.FieldFirstName:
		m.ResetFirstName()
		return nil
	case patient.FieldLastName:
		m.ResetLastName()
		return nil
	case patient.FieldDateOfBirth:
		m.ResetDateOfBirth()
		return nil
	case patient.FieldGender:
		m.ResetGender()
		return nil
	case patient.FieldPhone:
		m.ResetPhone()
		return nil
	case patient.FieldEmail:
		m.ResetEmail()
		return nil
	case patient.FieldAddress:
		m.ResetAddress()
		return nil
	case patient.FieldEmergencyContact:
		m.ResetEmergencyContact()
		return nil
	case patient.FieldEmergencyPhone:
		m.ResetEmergencyPhone()
		return nil
	case patient.FieldBloodType:
		m.ResetBloodType()
		return nil
	case patient.FieldAllergies:
		m.ResetAllergies()
		return nil
	case patient.FieldMedicalHistory:
		m.ResetMedicalHistory()
		return nil
	case patient.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown Patient field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PatientMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.appointments != nil {
		edges = append(edges, patient.EdgeAppointments)
	}
	if m.encounters != nil {
		edges = append(edges, patient.EdgeEncounters)
	}
	if m.medications != nil {
		edges = append(edges, patient.EdgeMedications)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PatientMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case patient.EdgeAppointments:
		ids := make([]ent.Value, 0, len(m.appointments))
		for id := range m.appointments {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeEncounters:
		ids := make([]ent.Value, 0, len(m.encounters))
		for id := range m.encounters {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeMedications:
		ids := make([]ent.Value, 0, len(m.medications))
		for id := range m.medications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PatientMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedappointments != nil {
		edges = append(edges, patient.EdgeAppointments)
	}
	if m.removedencounters != nil {
		edges = append(edges, patient.EdgeEncounters)
	}
	if m.removedmedications != nil {
		edges = append(edges, patient.EdgeMedications)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PatientMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case patient.EdgeAppointments:
		ids := make([]ent.Value, 0, len(m.removedappointments))
		for id := range m.removedappointments {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeEncounters:
		ids := make([]ent.Value, 0, len(m.removedencounters))
		for id := range m.removedencounters {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeMedications:
		ids := make([]ent.Value, 0, len(m.removedmedications))
		for id := range m.removedmedications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PatientMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedappointments {
		edges = append(edges, patient.EdgeAppointments)
	}
	if m.clearedencounters {
		edges = append(edges, patient.EdgeEncounters)
	}
	if m.clearedmedications {
		edges = append(edges, patient.EdgeMedications)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PatientMutation) EdgeCleared(name string) bool {
	switch name {
	case patient.EdgeAppointments:
		return m.clearedappointments
	case patient.EdgeEncounters:
		return m.clearedencounters
	case patient.EdgeMedications:
		return m.clearedmedications
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PatientMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Patient unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PatientMutation) ResetEdge(name string) error {
	switch name {
	case patient.EdgeAppointments:
		m.ResetAppointments()
		return nil
	case patient.EdgeEncounters:
		m.ResetEncounters()
		return nil
	case patient.EdgeMedications:
		m.ResetMedications()
		return nil
	}
	return fmt.Errorf("unknown Patient edge %s", name)
}

// PatientMedicationMutation represents an operation that mutates the PatientMedication nodes in the graph.
type PatientMedicationMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	created_at        *time.Time
	updated_at        *time.Time
	dosage            *string
	frequency         *string
	route             *string
	start_date        *time.Time
	end_date          *time.Time
	status            *patientmedication.Status
	reason            *string
	instructions      *string
	encounter_id      *uuid.UUID
	adverse_reactions *string
	clearedFields     map[string]struct{}
	patient           *uuid.UUID
	clearedpatient    bool
	medication        *uuid.UUID
	clearedmedication bool
	provider          *uuid.UUID
	clearedprovider   bool
	done              bool
	oldValue          func(context.Context) (*PatientMedication, error)
	predicates        []predicate.PatientMedication
}

var _ ent.Mutation = (*PatientMedicationMutation)(nil)

// patientmedicationOption allows management of the mutation configuration using functional options.
type patientmedicationOption func(*PatientMedicationMutation)

// newPatientMedicationMutation creates new mutation for the PatientMedication entity.
func newPatientMedicationMutation(c config, op Op, opts ...patientmedicationOption) *PatientMedicationMutation {
	m := &PatientMedicationMutation{
		config:        c,
		op:            op,
		typ:           TypePatientMedication,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPatientMedicationID sets the ID field of the mutation.
func withPatientMedicationID(id uuid.UUID) patientmedicationOption {
	return func(m *PatientMedicationMutation) {
		var (
			err   error
			once  sync.Once
			value *PatientMedication
		)
		m.oldValue = func(ctx context.Context) (*PatientMedication, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PatientMedication.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPatientMedication sets the old PatientMedication of the mutation.
func withPatientMedication(node *PatientMedication) patientmedicationOption {
	return func(m *PatientMedicationMutation) {
		m.oldValue = func(context.Context) (*PatientMedication, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PatientMedicationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PatientMedicationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PatientMedication entities.
func (m *PatientMedicationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PatientMedicationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PatientMedicationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PatientMedication.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PatientMedicationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PatientMedicationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PatientMedication entity.
// If the PatientMedication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMedicationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PatientMedicationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PatientMedicationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PatientMedicationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PatientMedication entity.
// If the PatientMedication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMedicationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PatientMedicationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPatientID sets the "patient_id" field.
func (m *PatientMedicationMutation) SetPatientID(u uuid.UUID) {
	m.patient = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *PatientMedicationMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the PatientMedication entity.
// If the PatientMedication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMedicationMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *PatientMedicationMutation) ResetPatientID() {
	m.patient = nil
}

// SetMedicationID sets the "medication_id" field.
func (m *PatientMedicationMutation) SetMedicationID(u uuid.UUID) {
	m.medication = &u
}

// MedicationID returns the value of the "medication_id" field in the mutation.
func (m *PatientMedicationMutation) MedicationID() (r uuid.UUID, exists bool) {
	v := m.medication
	if v == nil {
		return
	}
	return *v, true
}

// OldMedicationID returns the old "medication_id" field's value of the PatientMedication entity.
// If the PatientMedication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMedicationMutation) OldMedicationID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMedicationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMedicationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMedicationID: %w", err)
	}
	return oldValue.MedicationID, nil
}

// ResetMedicationID resets all changes to the "medication_id" field.
func (m *PatientMedicationMutation) ResetMedicationID() {
	m.medication = nil
}

// SetProviderID sets the "provider_id" field.
func (m *PatientMedicationMutation) SetProviderID(u uuid.UUID) {
	m.provider = &u
}

// ProviderID returns the value of the "provider_id" field in the mutation.
func (m *PatientMedicationMutation) ProviderID() (r uuid.UUID, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderID returns the old "provider_id" field's value of the PatientMedication entity.
// If the PatientMedication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMedicationMutation) OldProviderID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderID: %w", err)
	}
	return oldValue.ProviderID, nil
}

// ResetProviderID resets all changes to the "provider_id" field.
func (m *PatientMedicationMutation) ResetProviderID() {
	m.provider = nil
}

// SetDosage sets the "dosage" field.
func (m *PatientMedicationMutation) SetDosage(s string) {
	m.dosage = &s
}

// Dosage returns the value of the "dosage" field in the mutation.
func (m *PatientMedicationMutation) Dosage() (r string, exists bool) {
	v := m.dosage
	if v == nil {
		return
	}
	return *v, true
}

// OldDosage returns the old "dosage" field's value of the PatientMedication entity.
// If the PatientMedication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMedicationMutation) OldDosage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDosage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDosage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDosage: %w", err)
	}
	return oldValue.Dosage, nil
}

// ResetDosage resets all changes to the "dosage" field.
func (m *PatientMedicationMutation) ResetDosage() {
	m.dosage = nil
}

// SetFrequency sets the "frequency" field.
func (m *PatientMedicationMutation) SetFrequency(s string) {
	m.frequency = &s
}

// Frequency returns the value of the "frequency" field in the mutation.
func (m *PatientMedicationMutation) Frequency() (r string, exists bool) {
	v := m.frequency
	if v == nil {
		return
	}
	return *v, true
}

// OldFrequency returns the old "frequency" field's value of the PatientMedication entity.
// If the PatientMedication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMedicationMutation) OldFrequency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFrequency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFrequency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFrequency: %w", err)
	}
	return oldValue.Frequency, nil
}

// ResetFrequency resets all changes to the "frequency" field.
func (m *PatientMedicationMutation) ResetFrequency() {
	m.frequency = nil
}

// SetRoute sets the "route" field.
func (m *PatientMedicationMutation) SetRoute(s string) {
	m.route = &s
}

// Route returns the value of the "route" field in the mutation.
func (m *PatientMedicationMutation) Route() (r string, exists bool) {
	v := m.route
	if v == nil {
		return
	}
	return *v, true
}

// OldRoute returns the old "route" field's value of the PatientMedication entity.
// If the PatientMedication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMedicationMutation) OldRoute(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoute is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoute requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoute: %w", err)
	}
	return oldValue.Route, nil
}

// ClearRoute clears the value of the "route" field.
func (m *PatientMedicationMutation) ClearRoute() {
	m.route = nil
	m.clearedFields[patientmedication.FieldRoute] = struct{}{}
}

// RouteCleared returns if the "route" field was cleared in this mutation.
func (m *PatientMedicationMutation) RouteCleared() bool {
	_, ok := m.clearedFields[patientmedication.FieldRoute]
	return ok
}

// ResetRoute resets all changes to the "route" field.
func (m *PatientMedicationMutation) ResetRoute() {
	m.route = nil
	delete(m.clearedFields, patientmedication.FieldRoute)
}

// SetStartDate sets the "start_date" field.
func (m *PatientMedicationMutation) SetStartDate(t time.Time) {
	m.start_date = &t
}

// StartDate returns the value of the "start_date" field in the mutation.
func (m *PatientMedicationMutation) StartDate() (r time.Time, exists bool) {
	v := m.start_date
	if v == nil {
		return
	}
	return *v, true
}

// OldStartDate returns the old "start_date" field's value of the PatientMedication entity.
// If the PatientMedication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMedicationMutation) OldStartDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartDate: %w", err)
	}
	return oldValue.StartDate, nil
}

// ResetStartDate resets all changes to the "start_date" field.
func (m *PatientMedicationMutation) ResetStartDate() {
	m.start_date = nil
}

// SetEndDate sets the "end_date" field.
func (m *PatientMedicationMutation) SetEndDate(t time.Time) {
	m.end_date = &t
}

// EndDate returns the value of the "end_date" field in the mutation.
func (m *PatientMedicationMutation) EndDate() (r time.Time, exists bool) {
	v := m.end_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEndDate returns the old "end_date" field's value of the PatientMedication entity.
// If the PatientMedication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMedicationMutation) OldEndDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndDate: %w", err)
	}
	return oldValue.EndDate, nil
}

// ClearEndDate clears the value of the "end_date" field.
func (m *PatientMedicationMutation) ClearEndDate() {
	m.end_date = nil
	m.clearedFields[patientmedication.FieldEndDate] = struct{}{}
}

// EndDateCleared returns if the "end_date" field was cleared in this mutation.
func (m *PatientMedicationMutation) EndDateCleared() bool {
	_, ok := m.clearedFields[patientmedication.FieldEndDate]
	return ok
}

// ResetEndDate resets all changes to the "end_date" field.
func (m *PatientMedicationMutation) ResetEndDate() {
	m.end_date = nil
	delete(m.clearedFields, patientmedication.FieldEndDate)
}

// SetStatus sets the "status" field.
func (m *PatientMedicationMutation) SetStatus(pa patientmedication.Status) {
	m.status = &pa
}

// Status returns the value of the "status" field in the mutation.
func (m *PatientMedicationMutation) Status() (r patientmedication.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PatientMedication entity.
// If the PatientMedication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMedicationMutation) OldStatus(ctx context.Context) (v patientmedication.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PatientMedicationMutation) ResetStatus() {
	m.status = nil
}

// SetReason sets the "reason" field.
func (m *PatientMedicationMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *PatientMedicationMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the PatientMedication entity.
// If the PatientMedication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMedicationMutation) OldReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *PatientMedicationMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[patientmedication.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *PatientMedicationMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[patientmedication.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *PatientMedicationMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, patientmedication.FieldReason)
}

// SetInstructions sets the "instructions" field.
func (m *PatientMedicationMutation) SetInstructions(s string) {
	m.instructions = &s
}

// Instructions returns the value of the "instructions" field in the mutation.
func (m *PatientMedicationMutation) Instructions() (r string, exists bool) {
	v := m.instructions
	if v == nil {
		return
	}
	return *v, true
}

// OldInstructions returns the old "instructions" field's value of the PatientMedication entity.
// If the PatientMedication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMedicationMutation) OldInstructions(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstructions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstructions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstructions: %w", err)
	}
	return oldValue.Instructions, nil
}

// ClearInstructions clears the value of the "instructions" field.
func (m *PatientMedicationMutation) ClearInstructions() {
	m.instructions = nil
	m.clearedFields[patientmedication.FieldInstructions] = struct{}{}
}

// InstructionsCleared returns if the "instructions" field was cleared in this mutation.
func (m *PatientMedicationMutation) InstructionsCleared() bool {
	_, ok := m.clearedFields[patientmedication.FieldInstructions]
	return ok
}

// ResetInstructions resets all changes to the "instructions" field.
func (m *PatientMedicationMutation) ResetInstructions() {
	m.instructions = nil
	delete(m.clearedFields, patientmedication.FieldInstructions)
}

// SetEncounterID sets the "encounter_id" field.
func (m *PatientMedicationMutation) SetEncounterID(u uuid.UUID) {
	m.encounter_id = &u
}

// EncounterID returns the value of the "encounter_id" field in the mutation.
func (m *PatientMedicationMutation) EncounterID() (r uuid.UUID, exists bool) {
	v := m.encounter_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEncounterID returns the old "encounter_id" field's value of the PatientMedication entity.
// If the PatientMedication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMedicationMutation) OldEncounterID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEncounterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEncounterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEncounterID: %w", err)
	}
	return oldValue.EncounterID, nil
}

// ClearEncounterID clears the value of the "encounter_id" field.
func (m *PatientMedicationMutation) ClearEncounterID() {
	m.encounter_id = nil
	m.clearedFields[patientmedication.FieldEncounterID] = struct{}{}
}

// EncounterIDCleared returns if the "encounter_id" field was cleared in this mutation.
func (m *PatientMedicationMutation) EncounterIDCleared() bool {
	_, ok := m.clearedFields[patientmedication.FieldEncounterID]
	return ok
}

// ResetEncounterID resets all changes to the "encounter_id" field.
func (m *PatientMedicationMutation) ResetEncounterID() {
	m.encounter_id = nil
	delete(m.clearedFields, patientmedication.FieldEncounterID)
}

// SetAdverseReactions sets the "adverse_reactions" field.
func (m *PatientMedicationMutation) SetAdverseReactions(s string) {
	m.adverse_reactions = &s
}

// AdverseReactions returns the value of the "adverse_reactions" field in the mutation.
func (m *PatientMedicationMutation) AdverseReactions() (r string, exists bool) {
	v := m.adverse_reactions
	if v == nil {
		return
	}
	return *v, true
}

// OldAdverseReactions returns the old "adverse_reactions" field's value of the PatientMedication entity.
// If the PatientMedication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMedicationMutation) OldAdverseReactions(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdverseReactions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdverseReactions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdverseReactions: %w", err)
	}
	return oldValue.AdverseReactions, nil
}

// ClearAdverseReactions clears the value of the "adverse_reactions" field.
func (m *PatientMedicationMutation) ClearAdverseReactions() {
	m.adverse_reactions = nil
	m.clearedFields[patientmedication.FieldAdverseReactions] = struct{}{}
}

// AdverseReactionsCleared returns if the "adverse_reactions" field was cleared in this mutation.
func (m *PatientMedicationMutation) AdverseReactionsCleared() bool {
	_, ok := m.clearedFields[patientmedication.FieldAdverseReactions]
	return ok
}

// ResetAdverseReactions resets all changes to the "adverse_reactions" field.
func (m *PatientMedicationMutation) ResetAdverseReactions() {
	m.adverse_reactions = nil
	delete(m.clearedFields, patientmedication.FieldAdverseReactions)
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (m *PatientMedicationMutation) ClearPatient() {
	m.clearedpatient = true
	m.clearedFields[patientmedication.FieldPatientID] = struct{}{}
}

// PatientCleared reports if the "patient" edge to the Patient entity was cleared.
func (m *PatientMedicationMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *PatientMedicationMutation) PatientIDs() (ids []uuid.UUID) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *PatientMedicationMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// ClearMedication clears the "medication" edge to the MedicationMaster entity.
func (m *PatientMedicationMutation) ClearMedication() {
	m.clearedmedication = true
	m.clearedFields[patientmedication.FieldMedicationID] = struct{}{}
}

// MedicationCleared reports if the "medication" edge to the MedicationMaster entity was cleared.
func (m *PatientMedicationMutation) MedicationCleared() bool {
	return m.clearedmedication
}

// MedicationIDs returns the "medication" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MedicationID instead. It exists only for internal usage by the builders.
func (m *PatientMedicationMutation) MedicationIDs() (ids []uuid.UUID) {
	if id := m.medication; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMedication resets all changes to the "medication" edge.
func (m *PatientMedicationMutation) ResetMedication() {
	m.medication = nil
	m.clearedmedication = false
}

// ClearProvider clears the "provider" edge to the User entity.
func (m *PatientMedicationMutation) ClearProvider() {
	m.clearedprovider = true
	m.clearedFields[patientmedication.FieldProviderID] = struct{}{}
}

// ProviderCleared reports if the "provider" edge to the User entity was cleared.
func (m *PatientMedicationMutation) ProviderCleared() bool {
	return m.clearedprovider
}

// ProviderIDs returns the "provider" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProviderID instead. It exists only for internal usage by the builders.
func (m *PatientMedicationMutation) ProviderIDs() (ids []uuid.UUID) {
	if id := m.provider; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProvider resets all changes to the "provider" edge.
func (m *PatientMedicationMutation) ResetProvider() {
	m.provider = nil
	m.clearedprovider = false
}

// Where appends a list predicates to the PatientMedicationMutation builder.
func (m *PatientMedicationMutation) Where(ps ...predicate.PatientMedication) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PatientMedicationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PatientMedicationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PatientMedication, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PatientMedicationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PatientMedicationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PatientMedication).
func (m *PatientMedicationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PatientMedicationMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.created_at != nil {
		fields = append(fields, patientmedication.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, patientmedication.FieldUpdatedAt)
	}
	if m.patient != nil {
		fields = append(fields, patientmedication.FieldPatientID)
	}
	if m.medication != nil {
		fields = append(fields, patientmedication.FieldMedicationID)
	}
	if m.provider != nil {
		fields = append(fields, patientmedication.FieldProviderID)
	}
	if m.dosage != nil {
		fields = append(fields, patientmedication.FieldDosage)
	}
	if m.frequency != nil {
		fields = append(fields, patientmedication.FieldFrequency)
	}
	if m.route != nil {
		fields = append(fields, patientmedication.FieldRoute)
	}
	if m.start_date != nil {
		fields = append(fields, patientmedication.FieldStartDate)
	}
	if m.end_date != nil {
		fields = append(fields, patientmedication.FieldEndDate)
	}
	if m.status != nil {
		fields = append(fields, patientmedication.FieldStatus)
	}
	if m.reason != nil {
		fields = append(fields, patientmedication.FieldReason)
	}
	if m.instructions != nil {
		fields = append(fields, patientmedication.FieldInstructions)
	}
	if m.encounter_id != nil {
		fields = append(fields, patientmedication.FieldEncounterID)
	}
	if m.adverse_reactions != nil {
		fields = append(fields, patientmedication.FieldAdverseReactions)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PatientMedicationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case patientmedication.FieldCreatedAt:
		return m.CreatedAt()
	case patientmedication.FieldUpdatedAt:
		return m.UpdatedAt()
	case patientmedication.FieldPatientID:
		return m.PatientID()
	case patientmedication.FieldMedicationID:
		return m.MedicationID()
	case patientmedication.FieldProviderID:
		return m.ProviderID()
	case patientmedication.FieldDosage:
		return m.Dosage()
	case patientmedication.FieldFrequency:
		return m.Frequency()
	case patientmedication.FieldRoute:
		return m.Route()
	case patientmedication.FieldStartDate:
		return m.StartDate()
	case patientmedication.FieldEndDate:
		return m.EndDate()
	case patientmedication.FieldStatus:
		return m.Status()
	case patientmedication.FieldReason:
		return m.Reason()
	case patientmedication.FieldInstructions:
		return m.Instructions()
	case patientmedication.FieldEncounterID:
		return m.EncounterID()
	case patientmedication.FieldAdverseReactions:
		return m.AdverseReactions()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PatientMedicationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case patientmedication.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case patientmedication.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case patientmedication.FieldPatientID:
		return m.OldPatientID(ctx)
	case patientmedication.FieldMedicationID:
		return m.OldMedicationID(ctx)
	case patientmedication.FieldProviderID:
		return m.OldProviderID(ctx)
	case patientmedication.FieldDosage:
		return m.OldDosage(ctx)
	case patientmedication.FieldFrequency:
		return m.OldFrequency(ctx)
	case patientmedication.FieldRoute:
		return m.OldRoute(ctx)
	case patientmedication.FieldStartDate:
		return m.OldStartDate(ctx)
	case patientmedication.FieldEndDate:
		return m.OldEndDate(ctx)
	case patientmedication.FieldStatus:
		return m.OldStatus(ctx)
	case patientmedication.FieldReason:
		return m.OldReason(ctx)
	case patientmedication.FieldInstructions:
		return m.OldInstructions(ctx)
	case patientmedication.FieldEncounterID:
		return m.OldEncounterID(ctx)
	case patientmedication.FieldAdverseReactions:
		return m.OldAdverseReactions(ctx)
	}
	return nil, fmt.Errorf("unknown PatientMedication field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientMedicationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case patientmedication.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case patientmedication.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case patientmedication.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case patientmedication.FieldMedicationID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMedicationID(v)
		return nil
	case patientmedication.FieldProviderID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderID(v)
		return nil
	case patientmedication.FieldDosage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDosage(v)
		return nil
	case patientmedication.FieldFrequency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFrequency(v)
		return nil
	case patientmedication.FieldRoute:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoute(v)
		return nil
	case patientmedication.FieldStartDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartDate(v)
		return nil
	case patientmedication.FieldEndDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndDate(v)
		return nil
	case patientmedication.FieldStatus:
		v, ok := value.(patientmedication.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case patientmedication.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case patientmedication.FieldInstructions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstructions(v)
		return nil
	case patientmedication.FieldEncounterID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEncounterID(v)
		return nil
	case patientmedication.FieldAdverseReactions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdverseReactions(v)
		return nil
	}
	return fmt.Errorf("unknown PatientMedication field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PatientMedicationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PatientMedicationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientMedicationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PatientMedication numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PatientMedicationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(patientmedication.FieldRoute) {
		fields = append(fields, patientmedication.FieldRoute)
	}
	if m.FieldCleared(patientmedication.FieldEndDate) {
		fields = append(fields, patientmedication.FieldEndDate)
	}
	if m.FieldCleared(patientmedication.FieldReason) {
		fields = append(fields, patientmedication.FieldReason)
	}
	if m.FieldCleared(patientmedication.FieldInstructions) {
		fields = append(fields, patientmedication.FieldInstructions)
	}
	if m.FieldCleared(patientmedication.FieldEncounterID) {
		fields = append(fields, patientmedication.FieldEncounterID)
	}
	if m.FieldCleared(patientmedication.FieldAdverseReactions) {
		fields = append(fields, patientmedication.FieldAdverseReactions)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PatientMedicationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PatientMedicationMutation) ClearField(name string) error {
	switch name {
	case patientmedication.FieldRoute:
		m.ClearRoute()
		return nil
	case patientmedication.FieldEndDate:
		m.ClearEndDate()
		return nil
	case patientmedication.FieldReason:
		m.ClearReason()
		return nil
	case patientmedication.FieldInstructions:
		m.ClearInstructions()
		return nil
	case patientmedication.FieldEncounterID:
		m.ClearEncounterID()
		return nil
	case patientmedication.FieldAdverseReactions:
		m.ClearAdverseReactions()
		return nil
	}
	return fmt.Errorf("unknown PatientMedication nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PatientMedicationMutation) ResetField(name string) error {
	switch name {
	case patientmedication.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case patientmedication.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case patientmedication.FieldPatientID:
		m.ResetPatientID()
		return nil
	case patientmedication.FieldMedicationID:
		m.ResetMedicationID()
		return nil
	case patientmedication.FieldProviderID:
		m.ResetProviderID()
		return nil
	case patientmedication.FieldDosage:
		m.ResetDosage()
		return nil
	case patientmedication.FieldFrequency:
		m.ResetFrequency()
		return nil
	case patientmedication.FieldRoute:
		m.ResetRoute()
		return nil
	case patientmedication.FieldStartDate:
		m.ResetStartDate()
		return nil
	case patientmedication.FieldEndDate:
		m.ResetEndDate()
		return nil
	case patientmedication.FieldStatus:
		m.ResetStatus()
		return nil
	case patientmedication.FieldReason:
		m.ResetReason()
		return nil
	case patientmedication.FieldInstructions:
		m.ResetInstructions()
		return nil
	case patientmedication.FieldEncounterID:
		m.ResetEncounterID()
		return nil
	case patientmedication.FieldAdverseReactions:
		m.ResetAdverseReactions()
		return nil
	}
	return fmt.Errorf("unknown PatientMedication field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PatientMedicationMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.patient != nil {
		edges = append(edges, patientmedication.EdgePatient)
	}
	if m.medication != nil {
		edges = append(edges, patientmedication.EdgeMedication)
	}
	if m.provider != nil {
		edges = append(edges, patientmedication.EdgeProvider)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PatientMedicationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case patientmedication.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	case patientmedication.EdgeMedication:
		if id := m.medication; id != nil {
			return []ent.Value{*id}
		}
	case patientmedication.EdgeProvider:
		if id := m.provider; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PatientMedicationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PatientMedicationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PatientMedicationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedpatient {
		edges = append(edges, patientmedication.EdgePatient)
	}
	if m.clearedmedication {
		edges = append(edges, patientmedication.EdgeMedication)
	}
	if m.clearedprovider {
		edges = append(edges, patientmedication.EdgeProvider)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PatientMedicationMutation) EdgeCleared(name string) bool {
	switch name {
	case patientmedication.EdgePatient:
		return m.clearedpatient
	case patientmedication.EdgeMedication:
		return m.clearedmedication
	case patientmedication.EdgeProvider:
		return m.clearedprovider
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PatientMedicationMutation) ClearEdge(name string) error {
	switch name {
	case patientmedication.EdgePatient:
		m.ClearPatient()
		return nil
	case patientmedication.EdgeMedication:
		m.ClearMedication()
		return nil
	case patientmedication.EdgeProvider:
		m.ClearProvider()
		return nil
	}
	return fmt.Errorf("unknown PatientMedication unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PatientMedicationMutation) ResetEdge(name string) error {
	switch name {
	case patientmedication.EdgePatient:
		m.ResetPatient()
		return nil
	case patientmedication.EdgeMedication:
		m.ResetMedication()
		return nil
	case patientmedication.EdgeProvider:
		m.ResetProvider()
		return nil
	}
	return fmt.Errorf("unknown PatientMedication edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	created_at           *time.Time
	updated_at           *time.Time
	email                *string
	password_hash        *string
	first_name           *string
	last_name            *string
	role                 *user.Role
	department           *string
	license_number       *string
	is_active            *bool
	created_by           *uuid.UUID
	last_login_at        *time.Time
	clearedFields        map[string]struct{}
	appointments         map[uuid.UUID]struct{}
	removedappointments  map[uuid.UUID]struct{}
	clearedappointments  bool
	encounters           map[uuid.UUID]struct{}
	removedencounters    map[uuid.UUID]struct{}
	clearedencounters    bool
	prescriptions        map[uuid.UUID]struct{}
	removedprescriptions map[uuid.UUID]struct{}
	clearedprescriptions bool
	done                 bool
	oldValue             func(context.Context) (*User, error)
	predicates           []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetFirstName sets the "first_name" field.
func (m *UserMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *UserMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *UserMutation) ResetFirstName() {
	m.first_name = nil
}

// SetLastName sets the "last_name" field.
func (m *UserMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *UserMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ResetLastName resets all changes to the "last_name" field.
func (m *UserMutation) ResetLastName() {
	m.last_name = nil
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetDepartment sets the "department" field.
func (m *UserMutation) SetDepartment(s string) {
	m.department = &s
}

// Department returns the value of the "department" field in the mutation.
func (m *UserMutation) Department() (r string, exists bool) {
	v := m.department
	if v == nil {
		return
	}
	return *v, true
}

// OldDepartment returns the old "department" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDepartment(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepartment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepartment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepartment: %w", err)
	}
	return oldValue.Department, nil
}

// ClearDepartment clears the value of the "department" field.
func (m *UserMutation) ClearDepartment() {
	m.department = nil
	m.clearedFields[user.FieldDepartment] = struct{}{}
}

// DepartmentCleared returns if the "department" field was cleared in this mutation.
func (m *UserMutation) DepartmentCleared() bool {
	_, ok := m.clearedFields[user.FieldDepartment]
	return ok
}

// ResetDepartment resets all changes to the "department" field.
func (m *UserMutation) ResetDepartment() {
	m.department = nil
	delete(m.clearedFields, user.FieldDepartment)
}

// SetLicenseNumber sets the "license_number" field.
func (m *UserMutation) SetLicenseNumber(s string) {
	m.license_number = &s
}

// LicenseNumber returns the value of the "license_number" field in the mutation.
func (m *UserMutation) LicenseNumber() (r string, exists bool) {
	v := m.license_number
	if v == nil {
		return
	}
	return *v, true
}

// OldLicenseNumber returns the old "license_number" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLicenseNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLicenseNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLicenseNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLicenseNumber: %w", err)
	}
	return oldValue.LicenseNumber, nil
}

// ClearLicenseNumber clears the value of the "license_number" field.
func (m *UserMutation) ClearLicenseNumber() {
	m.license_number = nil
	m.clearedFields[user.FieldLicenseNumber] = struct{}{}
}

// LicenseNumberCleared returns if the "license_number" field was cleared in this mutation.
func (m *UserMutation) LicenseNumberCleared() bool {
	_, ok := m.clearedFields[user.FieldLicenseNumber]
	return ok
}

// ResetLicenseNumber resets all changes to the "license_number" field.
func (m *UserMutation) ResetLicenseNumber() {
	m.license_number = nil
	delete(m.clearedFields, user.FieldLicenseNumber)
}

// SetIsActive sets the "is_active" field.
func (m *UserMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *UserMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *UserMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *UserMutation) SetCreatedBy(u uuid.UUID) {
	m.created_by = &u
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *UserMutation) CreatedBy() (r uuid.UUID, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedBy(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *UserMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[user.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *UserMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[user.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *UserMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, user.FieldCreatedBy)
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *UserMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *UserMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *UserMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[user.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *UserMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[user.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *UserMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, user.FieldLastLoginAt)
}

// AddAppointmentIDs adds the "appointments" edge to the Appointment entity by ids.
func (m *UserMutation) AddAppointmentIDs(ids ...uuid.UUID) {
	if m.appointments == nil {
		m.appointments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.appointments[ids[i]] = struct{}{}
	}
}

// ClearAppointments clears the "appointments" edge to the Appointment entity.
func (m *UserMutation) ClearAppointments() {
	m.clearedappointments = true
}

// AppointmentsCleared reports if the "appointments" edge to the Appointment entity was cleared.
func (m *UserMutation) AppointmentsCleared() bool {
	return m.clearedappointments
}

// RemoveAppointmentIDs removes the "appointments" edge to the Appointment entity by IDs.
func (m *UserMutation) RemoveAppointmentIDs(ids ...uuid.UUID) {
	if m.removedappointments == nil {
		m.removedappointments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.appointments, ids[i])
		m.removedappointments[ids[i]] = struct{}{}
	}
}

// RemovedAppointments returns the removed IDs of the "appointments" edge to the Appointment entity.
func (m *UserMutation) RemovedAppointmentsIDs() (ids []uuid.UUID) {
	for id := range m.removedappointments {
		ids = append(ids, id)
	}
	return
}

// AppointmentsIDs returns the "appointments" edge IDs in the mutation.
func (m *UserMutation) AppointmentsIDs() (ids []uuid.UUID) {
	for id := range m.appointments {
		ids = append(ids, id)
	}
	return
}

// ResetAppointments resets all changes to the "appointments" edge.
func (m *UserMutation) ResetAppointments() {
	m.appointments = nil
	m.clearedappointments = false
	m.removedappointments = nil
}

// AddEncounterIDs adds the "encounters" edge to the Encounter entity by ids.
func (m *UserMutation) AddEncounterIDs(ids ...uuid.UUID) {
	if m.encounters == nil {
		m.encounters = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.encounters[ids[i]] = struct{}{}
	}
}

// ClearEncounters clears the "encounters" edge to the Encounter entity.
func (m *UserMutation) ClearEncounters() {
	m.clearedencounters = true
}

// EncountersCleared reports if the "encounters" edge to the Encounter entity was cleared.
func (m *UserMutation) EncountersCleared() bool {
	return m.clearedencounters
}

// RemoveEncounterIDs removes the "encounters" edge to the Encounter entity by IDs.
func (m *UserMutation) RemoveEncounterIDs(ids ...uuid.UUID) {
	if m.removedencounters == nil {
		m.removedencounters = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.encounters, ids[i])
		m.removedencounters[ids[i]] = struct{}{}
	}
}

// RemovedEncounters returns the removed IDs of the "encounters" edge to the Encounter entity.
func (m *UserMutation) RemovedEncountersIDs() (ids []uuid.UUID) {
	for id := range m.removedencounters {
		ids = append(ids, id)
	}
	return
}

// EncountersIDs returns the "encounters" edge IDs in the mutation.
func (m *UserMutation) EncountersIDs() (ids []uuid.UUID) {
	for id := range m.encounters {
		ids = append(ids, id)
	}
	return
}

// ResetEncounters resets all changes to the "encounters" edge.
func (m *UserMutation) ResetEncounters() {
	m.encounters = nil
	m.clearedencounters = false
	m.removedencounters = nil
}

// AddPrescriptionIDs adds the "prescriptions" edge to the PatientMedication entity by ids.
func (m *UserMutation) AddPrescriptionIDs(ids ...uuid.UUID) {
	if m.prescriptions == nil {
		m.prescriptions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.prescriptions[ids[i]] = struct{}{}
	}
}

// ClearPrescriptions clears the "prescriptions" edge to the PatientMedication entity.
func (m *UserMutation) ClearPrescriptions() {
	m.clearedprescriptions = true
}

// PrescriptionsCleared reports if the "prescriptions" edge to the PatientMedication entity was cleared.
func (m *UserMutation) PrescriptionsCleared() bool {
	return m.clearedprescriptions
}

// RemovePrescriptionIDs removes the "prescriptions" edge to the PatientMedication entity by IDs.
func (m *UserMutation) RemovePrescriptionIDs(ids ...uuid.UUID) {
	if m.removedprescriptions == nil {
		m.removedprescriptions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.prescriptions, ids[i])
		m.removedprescriptions[ids[i]] = struct{}{}
	}
}

// RemovedPrescriptions returns the removed IDs of the "prescriptions" edge to the PatientMedication entity.
func (m *UserMutation) RemovedPrescriptionsIDs() (ids []uuid.UUID) {
	for id := range m.removedprescriptions {
		ids = append(ids, id)
	}
	return
}

// PrescriptionsIDs returns the "prescriptions" edge IDs in the mutation.
func (m *UserMutation) PrescriptionsIDs() (ids []uuid.UUID) {
	for id := range m.prescriptions {
		ids = append(ids, id)
	}
	return
}

// ResetPrescriptions resets all changes to the "prescriptions" edge.
func (m *UserMutation) ResetPrescriptions() {
	m.prescriptions = nil
	m.clearedprescriptions = false
	m.removedprescriptions = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.first_name != nil {
		fields = append(fields, user.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, user.FieldLastName)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.department != nil {
		fields = append(fields, user.FieldDepartment)
	}
	if m.license_number != nil {
		fields = append(fields, user.FieldLicenseNumber)
	}
	if m.is_active != nil {
		fields = append(fields, user.FieldIsActive)
	}
	if m.created_by != nil {
		fields = append(fields, user.FieldCreatedBy)
	}
	if m.last_login_at != nil {
		fields = append(fields, user.FieldLastLoginAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldEmail:
		return m.Email()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldFirstName:
		return m.FirstName()
	case user.FieldLastName:
		return m.LastName()
	case user.FieldRole:
		return m.Role()
	case user.FieldDepartment:
		return m.Department()
	case user.FieldLicenseNumber:
		return m.LicenseNumber()
	case user.FieldIsActive:
		return m.IsActive()
	case user.FieldCreatedBy:
		return m.CreatedBy()
	case user.FieldLastLoginAt:
		return m.LastLoginAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldFirstName:
		return m.OldFirstName(ctx)
	case user.FieldLastName:
		return m.OldLastName(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldDepartment:
		return m.OldDepartment(ctx)
	case user.FieldLicenseNumber:
		return m.OldLicenseNumber(ctx)
	case user.FieldIsActive:
		return m.OldIsActive(ctx)
	case user.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case user.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case user.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldDepartment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepartment(v)
		return nil
	case user.FieldLicenseNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLicenseNumber(v)
		return nil
	case user.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case user.FieldCreatedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case user.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldDepartment) {
		fields = append(fields, user.FieldDepartment)
	}
	if m.FieldCleared(user.FieldLicenseNumber) {
		fields = append(fields, user.FieldLicenseNumber)
	}
	if m.FieldCleared(user.FieldCreatedBy) {
		fields = append(fields, user.FieldCreatedBy)
	}
	if m.FieldCleared(user.FieldLastLoginAt) {
		fields = append(fields, user.FieldLastLoginAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldDepartment:
		m.ClearDepartment()
		return nil
	case user.FieldLicenseNumber:
		m.ClearLicenseNumber()
		return nil
	case user.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case user.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldFirstName:
		m.ResetFirstName()
		return nil
	case user.FieldLastName:
		m.ResetLastName()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldDepartment:
		m.ResetDepartment()
		return nil
	case user.FieldLicenseNumber:
		m.ResetLicenseNumber()
		return nil
	case user.FieldIsActive:
		m.ResetIsActive()
		return nil
	case user.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case user.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.appointments != nil {
		edges = append(edges, user.EdgeAppointments)
	}
	if m.encounters != nil {
		edges = append(edges, user.EdgeEncounters)
	}
	if m.prescriptions != nil {
		edges = append(edges, user.EdgePrescriptions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeAppointments:
		ids := make([]ent.Value, 0, len(m.appointments))
		for id := range m.appointments {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeEncounters:
		ids := make([]ent.Value, 0, len(m.encounters))
		for id := range m.encounters {
			ids = append(ids, id)
		}
		return ids
	case user.EdgePrescriptions:
		ids := make([]ent.Value, 0, len(m.prescriptions))
		for id := range m.prescriptions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedappointments != nil {
		edges = append(edges, user.EdgeAppointments)
	}
	if m.removedencounters != nil {
		edges = append(edges, user.EdgeEncounters)
	}
	if m.removedprescriptions != nil {
		edges = append(edges, user.EdgePrescriptions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeAppointments:
		ids := make([]ent.Value, 0, len(m.removedappointments))
		for id := range m.removedappointments {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeEncounters:
		ids := make([]ent.Value, 0, len(m.removedencounters))
		for id := range m.removedencounters {
			ids = append(ids, id)
		}
		return ids
	case user.EdgePrescriptions:
		ids := make([]ent.Value, 0, len(m.removedprescriptions))
		for id := range m.removedprescriptions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedappointments {
		edges = append(edges, user.EdgeAppointments)
	}
	if m.clearedencounters {
		edges = append(edges, user.EdgeEncounters)
	}
	if m.clearedprescriptions {
		edges = append(edges, user.EdgePrescriptions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeAppointments:
		return m.clearedappointments
	case user.EdgeEncounters:
		return m.clearedencounters
	case user.EdgePrescriptions:
		return m.clearedprescriptions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeAppointments:
		m.ResetAppointments()
		return nil
	case user.EdgeEncounters:
		m.ResetEncounters()
		return nil
	case user.EdgePrescriptions:
		m.ResetPrescriptions()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
