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
	"github.com/caretide/caretide_backend/internal/repo/patientmedication"
	"github.com/google/uuid"
)

// MedicationMasterCreate is the builder for creating a MedicationMaster entity.
type MedicationMasterCreate struct {
	config
	mutation *MedicationMasterMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *MedicationMasterCreate) SetCreatedAt(v time.Time) *MedicationMasterCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MedicationMasterCreate) SetNillableCreatedAt(v *time.Time) *MedicationMasterCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MedicationMasterCreate) SetUpdatedAt(v time.Time) *MedicationMasterCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MedicationMasterCreate) SetNillableUpdatedAt(v *time.Time) *MedicationMasterCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetGenericName sets the "generic_name" field.
func (_c *MedicationMasterCreate) SetGenericName(v string) *MedicationMasterCreate {
	_c.mutation.SetGenericName(v)
	return _c
}

// SetBrandName sets the "brand_name" field.
func (_c *MedicationMasterCreate) SetBrandName(v string) *MedicationMasterCreate {
	_c.mutation.SetBrandName(v)
	return _c
}

// SetNillableBrandName sets the "brand_name" field if the given value is not nil.
func (_c *MedicationMasterCreate) SetNillableBrandName(v *string) *MedicationMasterCreate {
	if v != nil {
		_c.SetBrandName(*v)
	}
	return _c
}

// SetDosageForm sets the "dosage_form" field.
func (_c *MedicationMasterCreate) SetDosageForm(v medicationmaster.DosageForm) *MedicationMasterCreate {
	_c.mutation.SetDosageForm(v)
	return _c
}

// SetStrength sets the "strength" field.
func (_c *MedicationMasterCreate) SetStrength(v string) *MedicationMasterCreate {
	_c.mutation.SetStrength(v)
	return _c
}

// SetManufacturer sets the "manufacturer" field.
func (_c *MedicationMasterCreate) SetManufacturer(v string) *MedicationMasterCreate {
	_c.mutation.SetManufacturer(v)
	return _c
}

// SetNillableManufacturer sets the "manufacturer" field if the given value is not nil.
func (_c *MedicationMasterCreate) SetNillableManufacturer(v *string) *MedicationMasterCreate {
	if v != nil {
		_c.SetManufacturer(*v)
	}
	return _c
}

// SetClassification sets the "classification" field.
func (_c *MedicationMasterCreate) SetClassification(v medicationmaster.Classification) *MedicationMasterCreate {
	_c.mutation.SetClassification(v)
	return _c
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_c *MedicationMasterCreate) SetNillableClassification(v *medicationmaster.Classification) *MedicationMasterCreate {
	if v != nil {
		_c.SetClassification(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *MedicationMasterCreate) SetDescription(v string) *MedicationMasterCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *MedicationMasterCreate) SetNillableDescription(v *string) *MedicationMasterCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *MedicationMasterCreate) SetIsActive(v bool) *MedicationMasterCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *MedicationMasterCreate) SetNillableIsActive(v *bool) *MedicationMasterCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MedicationMasterCreate) SetID(v uuid.UUID) *MedicationMasterCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MedicationMasterCreate) SetNillableID(v *uuid.UUID) *MedicationMasterCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddPatientMedicationIDs adds the "patient_medications" edge to the PatientMedication entity by IDs.
func (_c *MedicationMasterCreate) AddPatientMedicationIDs(ids ...uuid.UUID) *MedicationMasterCreate {
	_c.mutation.AddPatientMedicationIDs(ids...)
	return _c
}

// AddPatientMedications adds the "patient_medications" edges to the PatientMedication entity.
func (_c *MedicationMasterCreate) AddPatientMedications(v ...*PatientMedication) *MedicationMasterCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPatientMedicationIDs(ids...)
}

// Mutation returns the MedicationMasterMutation object of the builder.
func (_c *MedicationMasterCreate) Mutation() *MedicationMasterMutation {
	return _c.mutation
}

// Save creates the MedicationMaster in the database.
func (_c *MedicationMasterCreate) Save(ctx context.Context) (*MedicationMaster, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MedicationMasterCreate) SaveX(ctx context.Context) *MedicationMaster {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MedicationMasterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MedicationMasterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MedicationMasterCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := medicationmaster.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := medicationmaster.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Classification(); !ok {
		v := medicationmaster.DefaultClassification
		_c.mutation.SetClassification(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := medicationmaster.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := medicationmaster.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MedicationMasterCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "MedicationMaster.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "MedicationMaster.updated_at"`)}
	}
	if _, ok := _c.mutation.GenericName(); !ok {
		return &ValidationError{Name: "generic_name", err: errors.New(`repo: missing required field "MedicationMaster.generic_name"`)}
	}
	if v, ok := _c.mutation.GenericName(); ok {
		if err := medicationmaster.GenericNameValidator(v); err != nil {
			return &ValidationError{Name: "generic_name", err: fmt.Errorf(`repo: validator failed for field "MedicationMaster.generic_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.BrandName(); ok {
		if err := medicationmaster.BrandNameValidator(v); err != nil {
			return &ValidationError{Name: "brand_name", err: fmt.Errorf(`repo: validator failed for field "MedicationMaster.brand_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DosageForm(); !ok {
		return &ValidationError{Name: "dosage_form", err: errors.New(`repo: missing required field "MedicationMaster.dosage_form"`)}
	}
	if v, ok := _c.mutation.DosageForm(); ok {
		if err := medicationmaster.DosageFormValidator(v); err != nil {
			return &ValidationError{Name: "dosage_form", err: fmt.Errorf(`repo: validator failed for field "MedicationMaster.dosage_form": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Strength(); !ok {
		return &ValidationError{Name: "strength", err: errors.New(`repo: missing required field "MedicationMaster.strength"`)}
	}
	if v, ok := _c.mutation.Strength(); ok {
		if err := medicationmaster.StrengthValidator(v); err != nil {
			return &ValidationError{Name: "strength", err: fmt.Errorf(`repo: validator failed for field "MedicationMaster.strength": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Manufacturer(); ok {
		if err := medicationmaster.ManufacturerValidator(v); err != nil {
			return &ValidationError{Name: "manufacturer", err: fmt.Errorf(`repo: validator failed for field "MedicationMaster.manufacturer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Classification(); !ok {
		return &ValidationError{Name: "classification", err: errors.New(`repo: missing required field "MedicationMaster.classification"`)}
	}
	if v, ok := _c.mutation.Classification(); ok {
		if err := medicationmaster.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`repo: validator failed for field "MedicationMaster.classification": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "MedicationMaster.is_active"`)}
	}
	return nil
}

func (_c *MedicationMasterCreate) sqlSave(ctx context.Context) (*MedicationMaster, error) {
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

func (_c *MedicationMasterCreate) createSpec() (*MedicationMaster, *sqlgraph.CreateSpec) {
	var (
		_node = &MedicationMaster{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(medicationmaster.Table, sqlgraph.NewFieldSpec(medicationmaster.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(medicationmaster.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(medicationmaster.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.GenericName(); ok {
		_spec.SetField(medicationmaster.FieldGenericName, field.TypeString, value)
		_node.GenericName = value
	}
	if value, ok := _c.mutation.BrandName(); ok {
		_spec.SetField(medicationmaster.FieldBrandName, field.TypeString, value)
		_node.BrandName = &value
	}
	if value, ok := _c.mutation.DosageForm(); ok {
		_spec.SetField(medicationmaster.FieldDosageForm, field.TypeEnum, value)
		_node.DosageForm = value
	}
	if value, ok := _c.mutation.Strength(); ok {
		_spec.SetField(medicationmaster.FieldStrength, field.TypeString, value)
		_node.Strength = value
	}
	if value, ok := _c.mutation.Manufacturer(); ok {
		_spec.SetField(medicationmaster.FieldManufacturer, field.TypeString, value)
		_node.Manufacturer = &value
	}
	if value, ok := _c.mutation.Classification(); ok {
		_spec.SetField(medicationmaster.FieldClassification, field.TypeEnum, value)
		_node.Classification = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(medicationmaster.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(medicationmaster.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if nodes := _c.mutation.PatientMedicationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   medicationmaster.PatientMedicationsTable,
			Columns: []string{medicationmaster.PatientMedicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patientmedication.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MedicationMaster.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MedicationMasterUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MedicationMasterCreate) OnConflict(opts ...sql.ConflictOption) *MedicationMasterUpsertOne {
	_c.conflict = opts
	return &MedicationMasterUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MedicationMaster.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MedicationMasterCreate) OnConflictColumns(columns ...string) *MedicationMasterUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MedicationMasterUpsertOne{
		create: _c,
	}
}

type (
	// MedicationMasterUpsertOne is the builder for "upsert"-ing
	//  one MedicationMaster node.
	MedicationMasterUpsertOne struct {
		create *MedicationMasterCreate
	}

	// MedicationMasterUpsert is the "OnConflict" setter.
	MedicationMasterUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *MedicationMasterUpsert) SetUpdatedAt(v time.Time) *MedicationMasterUpsert {
	u.Set(medicationmaster.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MedicationMasterUpsert) UpdateUpdatedAt() *MedicationMasterUpsert {
	u.SetExcluded(medicationmaster.FieldUpdatedAt)
	return u
}

// SetGenericName sets the "generic_name" field.
func (u *MedicationMasterUpsert) SetGenericName(v string) *MedicationMasterUpsert {
	u.Set(medicationmaster.FieldGenericName, v)
	return u
}

// UpdateGenericName sets the "generic_name" field to the value that was provided on create.
func (u *MedicationMasterUpsert) UpdateGenericName() *MedicationMasterUpsert {
	u.SetExcluded(medicationmaster.FieldGenericName)
	return u
}

// SetBrandName sets the "brand_name" field.
func (u *MedicationMasterUpsert) SetBrandName(v string) *MedicationMasterUpsert {
	u.Set(medicationmaster.FieldBrandName, v)
	return u
}

// UpdateBrandName sets the "brand_name" field to the value that was provided on create.
func (u *MedicationMasterUpsert) UpdateBrandName() *MedicationMasterUpsert {
	u.SetExcluded(medicationmaster.FieldBrandName)
	return u
}

// ClearBrandName clears the value of the "brand_name" field.
func (u *MedicationMasterUpsert) ClearBrandName() *MedicationMasterUpsert {
	u.SetNull(medicationmaster.FieldBrandName)
	return u
}

// SetDosageForm sets the "dosage_form" field.
func (u *MedicationMasterUpsert) SetDosageForm(v medicationmaster.DosageForm) *MedicationMasterUpsert {
	u.Set(medicationmaster.FieldDosageForm, v)
	return u
}

// UpdateDosageForm sets the "dosage_form" field to the value that was provided on create.
func (u *MedicationMasterUpsert) UpdateDosageForm() *MedicationMasterUpsert {
	u.SetExcluded(medicationmaster.FieldDosageForm)
	return u
}

// SetStrength sets the "strength" field.
func (u *MedicationMasterUpsert) SetStrength(v string) *MedicationMasterUpsert {
	u.Set(medicationmaster.FieldStrength, v)
	return u
}

// UpdateStrength sets the "strength" field to the value that was provided on create.
func (u *MedicationMasterUpsert) UpdateStrength() *MedicationMasterUpsert {
	u.SetExcluded(medicationmaster.FieldStrength)
	return u
}

// SetManufacturer sets the "manufacturer" field.
func (u *MedicationMasterUpsert) SetManufacturer(v string) *MedicationMasterUpsert {
	u.Set(medicationmaster.FieldManufacturer, v)
	return u
}

// UpdateManufacturer sets the "manufacturer" field to the value that was provided on create.
func (u *MedicationMasterUpsert) UpdateManufacturer() *MedicationMasterUpsert {
	u.SetExcluded(medicationmaster.FieldManufacturer)
	return u
}

// ClearManufacturer clears the value of the "manufacturer" field.
func (u *MedicationMasterUpsert) ClearManufacturer() *MedicationMasterUpsert {
	u.SetNull(medicationmaster.FieldManufacturer)
	return u
}

// SetClassification sets the "classification" field.
func (u *MedicationMasterUpsert) SetClassification(v medicationmaster.Classification) *MedicationMasterUpsert {
	u.Set(medicationmaster.FieldClassification, v)
	return u
}

// UpdateClassification sets the "classification" field to the value that was provided on create.
func (u *MedicationMasterUpsert) UpdateClassification() *MedicationMasterUpsert {
	u.SetExcluded(medicationmaster.FieldClassification)
	return u
}

// SetDescription sets the "description" field.
func (u *MedicationMasterUpsert) SetDescription(v string) *MedicationMasterUpsert {
	u.Set(medicationmaster.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *MedicationMasterUpsert) UpdateDescription() *MedicationMasterUpsert {
	u.SetExcluded(medicationmaster.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *MedicationMasterUpsert) ClearDescription() *MedicationMasterUpsert {
	u.SetNull(medicationmaster.FieldDescription)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *MedicationMasterUpsert) SetIsActive(v bool) *MedicationMasterUpsert {
	u.Set(medicationmaster.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *MedicationMasterUpsert) UpdateIsActive() *MedicationMasterUpsert {
	u.SetExcluded(medicationmaster.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MedicationMaster.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(medicationmaster.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MedicationMasterUpsertOne) UpdateNewValues() *MedicationMasterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(medicationmaster.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(medicationmaster.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MedicationMaster.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MedicationMasterUpsertOne) Ignore() *MedicationMasterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MedicationMasterUpsertOne) DoNothing() *MedicationMasterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MedicationMasterCreate.OnConflict
// documentation for more info.
func (u *MedicationMasterUpsertOne) Update(set func(*MedicationMasterUpsert)) *MedicationMasterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MedicationMasterUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MedicationMasterUpsertOne) SetUpdatedAt(v time.Time) *MedicationMasterUpsertOne {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MedicationMasterUpsertOne) UpdateUpdatedAt() *MedicationMasterUpsertOne {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetGenericName sets the "generic_name" field.
func (u *MedicationMasterUpsertOne) SetGenericName(v string) *MedicationMasterUpsertOne {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.SetGenericName(v)
	})
}

// UpdateGenericName sets the "generic_name" field to the value that was provided on create.
func (u *MedicationMasterUpsertOne) UpdateGenericName() *MedicationMasterUpsertOne {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.UpdateGenericName()
	})
}

// SetBrandName sets the "brand_name" field.
func (u *MedicationMasterUpsertOne) SetBrandName(v string) *MedicationMasterUpsertOne {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.SetBrandName(v)
	})
}

// UpdateBrandName sets the "brand_name" field to the value that was provided on create.
func (u *MedicationMasterUpsertOne) UpdateBrandName() *MedicationMasterUpsertOne {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.UpdateBrandName()
	})
}

// ClearBrandName clears the value of the "brand_name" field.
func (u *MedicationMasterUpsertOne) ClearBrandName() *MedicationMasterUpsertOne {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.ClearBrandName()
	})
}

// SetDosageForm sets the "dosage_form" field.
func (u *MedicationMasterUpsertOne) SetDosageForm(v medicationmaster.DosageForm) *MedicationMasterUpsertOne {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.SetDosageForm(v)
	})
}

// UpdateDosageForm sets the "dosage_form" field to the value that was provided on create.
func (u *MedicationMasterUpsertOne) UpdateDosageForm() *MedicationMasterUpsertOne {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.UpdateDosageForm()
	})
}

// SetStrength sets the "strength" field.
func (u *MedicationMasterUpsertOne) SetStrength(v string) *MedicationMasterUpsertOne {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.SetStrength(v)
	})
}

// UpdateStrength sets the "strength" field to the value that was provided on create.
func (u *MedicationMasterUpsertOne) UpdateStrength() *MedicationMasterUpsertOne {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.UpdateStrength()
	})
}

// SetManufacturer sets the "manufacturer" field.
func (u *MedicationMasterUpsertOne) SetManufacturer(v string) *MedicationMasterUpsertOne {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.SetManufacturer(v)
	})
}

// UpdateManufacturer sets the "manufacturer" field to the value that was provided on create.
func (u *MedicationMasterUpsertOne) UpdateManufacturer() *MedicationMasterUpsertOne {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.UpdateManufacturer()
	})
}

// ClearManufacturer clears the value of the "manufacturer" field.
func (u *MedicationMasterUpsertOne) ClearManufacturer() *MedicationMasterUpsertOne {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.ClearManufacturer()
	})
}

// SetClassification sets the "classification" field.
func (u *MedicationMasterUpsertOne) SetClassification(v medicationmaster.Classification) *MedicationMasterUpsertOne {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.SetClassification(v)
	})
}

// UpdateClassification sets the "classification" field to the value that was provided on create.
func (u *MedicationMasterUpsertOne) UpdateClassification() *MedicationMasterUpsertOne {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.UpdateClassification()
	})
}

// SetDescription sets the "description" field.
func (u *MedicationMasterUpsertOne) SetDescription(v string) *MedicationMasterUpsertOne {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *MedicationMasterUpsertOne) UpdateDescription() *MedicationMasterUpsertOne {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *MedicationMasterUpsertOne) ClearDescription() *MedicationMasterUpsertOne {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.ClearDescription()
	})
}

// SetIsActive sets the "is_active" field.
func (u *MedicationMasterUpsertOne) SetIsActive(v bool) *MedicationMasterUpsertOne {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *MedicationMasterUpsertOne) UpdateIsActive() *MedicationMasterUpsertOne {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *MedicationMasterUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for MedicationMasterCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MedicationMasterUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MedicationMasterUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: MedicationMasterUpsertOne.ID is not supported by MySQL driver. Use MedicationMasterUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MedicationMasterUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MedicationMasterCreateBulk is the builder for creating many MedicationMaster entities in bulk.
type MedicationMasterCreateBulk struct {
	config
	err      error
	builders []*MedicationMasterCreate
	conflict []sql.ConflictOption
}

// Save creates the MedicationMaster entities in the database.
func (_c *MedicationMasterCreateBulk) Save(ctx context.Context) ([]*MedicationMaster, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MedicationMaster, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MedicationMasterMutation)
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
func (_c *MedicationMasterCreateBulk) SaveX(ctx context.Context) []*MedicationMaster {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MedicationMasterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MedicationMasterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MedicationMaster.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MedicationMasterUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MedicationMasterCreateBulk) OnConflict(opts ...sql.ConflictOption) *MedicationMasterUpsertBulk {
	_c.conflict = opts
	return &MedicationMasterUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MedicationMaster.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MedicationMasterCreateBulk) OnConflictColumns(columns ...string) *MedicationMasterUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MedicationMasterUpsertBulk{
		create: _c,
	}
}

// MedicationMasterUpsertBulk is the builder for "upsert"-ing
// a bulk of MedicationMaster nodes.
type MedicationMasterUpsertBulk struct {
	create *MedicationMasterCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MedicationMaster.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(medicationmaster.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MedicationMasterUpsertBulk) UpdateNewValues() *MedicationMasterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(medicationmaster.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(medicationmaster.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MedicationMaster.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MedicationMasterUpsertBulk) Ignore() *MedicationMasterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MedicationMasterUpsertBulk) DoNothing() *MedicationMasterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MedicationMasterCreateBulk.OnConflict
// documentation for more info.
func (u *MedicationMasterUpsertBulk) Update(set func(*MedicationMasterUpsert)) *MedicationMasterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MedicationMasterUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MedicationMasterUpsertBulk) SetUpdatedAt(v time.Time) *MedicationMasterUpsertBulk {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MedicationMasterUpsertBulk) UpdateUpdatedAt() *MedicationMasterUpsertBulk {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetGenericName sets the "generic_name" field.
func (u *MedicationMasterUpsertBulk) SetGenericName(v string) *MedicationMasterUpsertBulk {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.SetGenericName(v)
	})
}

// UpdateGenericName sets the "generic_name" field to the value that was provided on create.
func (u *MedicationMasterUpsertBulk) UpdateGenericName() *MedicationMasterUpsertBulk {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.UpdateGenericName()
	})
}

// SetBrandName sets the "brand_name" field.
func (u *MedicationMasterUpsertBulk) SetBrandName(v string) *MedicationMasterUpsertBulk {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.SetBrandName(v)
	})
}

// UpdateBrandName sets the "brand_name" field to the value that was provided on create.
func (u *MedicationMasterUpsertBulk) UpdateBrandName() *MedicationMasterUpsertBulk {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.UpdateBrandName()
	})
}

// ClearBrandName clears the value of the "brand_name" field.
func (u *MedicationMasterUpsertBulk) ClearBrandName() *MedicationMasterUpsertBulk {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.ClearBrandName()
	})
}

// SetDosageForm sets the "dosage_form" field.
func (u *MedicationMasterUpsertBulk) SetDosageForm(v medicationmaster.DosageForm) *MedicationMasterUpsertBulk {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.SetDosageForm(v)
	})
}

// UpdateDosageForm sets the "dosage_form" field to the value that was provided on create.
func (u *MedicationMasterUpsertBulk) UpdateDosageForm() *MedicationMasterUpsertBulk {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.UpdateDosageForm()
	})
}

// SetStrength sets the "strength" field.
func (u *MedicationMasterUpsertBulk) SetStrength(v string) *MedicationMasterUpsertBulk {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.SetStrength(v)
	})
}

// UpdateStrength sets the "strength" field to the value that was provided on create.
func (u *MedicationMasterUpsertBulk) UpdateStrength() *MedicationMasterUpsertBulk {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.UpdateStrength()
	})
}

// SetManufacturer sets the "manufacturer" field.
func (u *MedicationMasterUpsertBulk) SetManufacturer(v string) *MedicationMasterUpsertBulk {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.SetManufacturer(v)
	})
}

// UpdateManufacturer sets the "manufacturer" field to the value that was provided on create.
func (u *MedicationMasterUpsertBulk) UpdateManufacturer() *MedicationMasterUpsertBulk {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.UpdateManufacturer()
	})
}

// ClearManufacturer clears the value of the "manufacturer" field.
func (u *MedicationMasterUpsertBulk) ClearManufacturer() *MedicationMasterUpsertBulk {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.ClearManufacturer()
	})
}

// SetClassification sets the "classification" field.
func (u *MedicationMasterUpsertBulk) SetClassification(v medicationmaster.Classification) *MedicationMasterUpsertBulk {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.SetClassification(v)
	})
}

// UpdateClassification sets the "classification" field to the value that was provided on create.
func (u *MedicationMasterUpsertBulk) UpdateClassification() *MedicationMasterUpsertBulk {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.UpdateClassification()
	})
}

// SetDescription sets the "description" field.
func (u *MedicationMasterUpsertBulk) SetDescription(v string) *MedicationMasterUpsertBulk {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *MedicationMasterUpsertBulk) UpdateDescription() *MedicationMasterUpsertBulk {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *MedicationMasterUpsertBulk) ClearDescription() *MedicationMasterUpsertBulk {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.ClearDescription()
	})
}

// SetIsActive sets the "is_active" field.
func (u *MedicationMasterUpsertBulk) SetIsActive(v bool) *MedicationMasterUpsertBulk {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *MedicationMasterUpsertBulk) UpdateIsActive() *MedicationMasterUpsertBulk {
	return u.Update(func(s *MedicationMasterUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *MedicationMasterUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the MedicationMasterCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for MedicationMasterCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MedicationMasterUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
