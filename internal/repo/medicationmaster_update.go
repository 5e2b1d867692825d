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
	"github.com/caretide/caretide_backend/internal/repo/patientmedication"
	"github.com/caretide/caretide_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// MedicationMasterUpdate is the builder for updating MedicationMaster entities.
type MedicationMasterUpdate struct {
	config
	hooks    []Hook
	mutation *MedicationMasterMutation
}

// Where appends a list predicates to the MedicationMasterUpdate builder.
func (_u *MedicationMasterUpdate) Where(ps ...predicate.MedicationMaster) *MedicationMasterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MedicationMasterUpdate) SetUpdatedAt(v time.Time) *MedicationMasterUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetGenericName sets the "generic_name" field.
func (_u *MedicationMasterUpdate) SetGenericName(v string) *MedicationMasterUpdate {
	_u.mutation.SetGenericName(v)
	return _u
}

// SetNillableGenericName sets the "generic_name" field if the given value is not nil.
func (_u *MedicationMasterUpdate) SetNillableGenericName(v *string) *MedicationMasterUpdate {
	if v != nil {
		_u.SetGenericName(*v)
	}
	return _u
}

// SetBrandName sets the "brand_name" field.
func (_u *MedicationMasterUpdate) SetBrandName(v string) *MedicationMasterUpdate {
	_u.mutation.SetBrandName(v)
	return _u
}

// SetNillableBrandName sets the "brand_name" field if the given value is not nil.
func (_u *MedicationMasterUpdate) SetNillableBrandName(v *string) *MedicationMasterUpdate {
	if v != nil {
		_u.SetBrandName(*v)
	}
	return _u
}

// ClearBrandName clears the value of the "brand_name" field.
func (_u *MedicationMasterUpdate) ClearBrandName() *MedicationMasterUpdate {
	_u.mutation.ClearBrandName()
	return _u
}

// SetDosageForm sets the "dosage_form" field.
func (_u *MedicationMasterUpdate) SetDosageForm(v medicationmaster.DosageForm) *MedicationMasterUpdate {
	_u.mutation.SetDosageForm(v)
	return _u
}

// SetNillableDosageForm sets the "dosage_form" field if the given value is not nil.
func (_u *MedicationMasterUpdate) SetNillableDosageForm(v *medicationmaster.DosageForm) *MedicationMasterUpdate {
	if v != nil {
		_u.SetDosageForm(*v)
	}
	return _u
}

// SetStrength sets the "strength" field.
func (_u *MedicationMasterUpdate) SetStrength(v string) *MedicationMasterUpdate {
	_u.mutation.SetStrength(v)
	return _u
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (_u *MedicationMasterUpdate) SetNillableStrength(v *string) *MedicationMasterUpdate {
	if v != nil {
		_u.SetStrength(*v)
	}
	return _u
}

// SetManufacturer sets the "manufacturer" field.
func (_u *MedicationMasterUpdate) SetManufacturer(v string) *MedicationMasterUpdate {
	_u.mutation.SetManufacturer(v)
	return _u
}

// SetNillableManufacturer sets the "manufacturer" field if the given value is not nil.
func (_u *MedicationMasterUpdate) SetNillableManufacturer(v *string) *MedicationMasterUpdate {
	if v != nil {
		_u.SetManufacturer(*v)
	}
	return _u
}

// ClearManufacturer clears the value of the "manufacturer" field.
func (_u *MedicationMasterUpdate) ClearManufacturer() *MedicationMasterUpdate {
	_u.mutation.ClearManufacturer()
	return _u
}

// SetClassification sets the "classification" field.
func (_u *MedicationMasterUpdate) SetClassification(v medicationmaster.Classification) *MedicationMasterUpdate {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *MedicationMasterUpdate) SetNillableClassification(v *medicationmaster.Classification) *MedicationMasterUpdate {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *MedicationMasterUpdate) SetDescription(v string) *MedicationMasterUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MedicationMasterUpdate) SetNillableDescription(v *string) *MedicationMasterUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *MedicationMasterUpdate) ClearDescription() *MedicationMasterUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *MedicationMasterUpdate) SetIsActive(v bool) *MedicationMasterUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *MedicationMasterUpdate) SetNillableIsActive(v *bool) *MedicationMasterUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// AddPatientMedicationIDs adds the "patient_medications" edge to the PatientMedication entity by IDs.
func (_u *MedicationMasterUpdate) AddPatientMedicationIDs(ids ...uuid.UUID) *MedicationMasterUpdate {
	_u.mutation.AddPatientMedicationIDs(ids...)
	return _u
}

// AddPatientMedications adds the "patient_medications" edges to the PatientMedication entity.
func (_u *MedicationMasterUpdate) AddPatientMedications(v ...*PatientMedication) *MedicationMasterUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPatientMedicationIDs(ids...)
}

// Mutation returns the MedicationMasterMutation object of the builder.
func (_u *MedicationMasterUpdate) Mutation() *MedicationMasterMutation {
	return _u.mutation
}

// ClearPatientMedications clears all "patient_medications" edges to the PatientMedication entity.
func (_u *MedicationMasterUpdate) ClearPatientMedications() *MedicationMasterUpdate {
	_u.mutation.ClearPatientMedications()
	return _u
}

// RemovePatientMedicationIDs removes the "patient_medications" edge to PatientMedication entities by IDs.
func (_u *MedicationMasterUpdate) RemovePatientMedicationIDs(ids ...uuid.UUID) *MedicationMasterUpdate {
	_u.mutation.RemovePatientMedicationIDs(ids...)
	return _u
}

// RemovePatientMedications removes "patient_medications" edges to PatientMedication entities.
func (_u *MedicationMasterUpdate) RemovePatientMedications(v ...*PatientMedication) *MedicationMasterUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePatientMedicationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MedicationMasterUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MedicationMasterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MedicationMasterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MedicationMasterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MedicationMasterUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := medicationmaster.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MedicationMasterUpdate) check() error {
	if v, ok := _u.mutation.GenericName(); ok {
		if err := medicationmaster.GenericNameValidator(v); err != nil {
			return &ValidationError{Name: "generic_name", err: fmt.Errorf(`repo: validator failed for field "MedicationMaster.generic_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BrandName(); ok {
		if err := medicationmaster.BrandNameValidator(v); err != nil {
			return &ValidationError{Name: "brand_name", err: fmt.Errorf(`repo: validator failed for field "MedicationMaster.brand_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DosageForm(); ok {
		if err := medicationmaster.DosageFormValidator(v); err != nil {
			return &ValidationError{Name: "dosage_form", err: fmt.Errorf(`repo: validator failed for field "MedicationMaster.dosage_form": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Strength(); ok {
		if err := medicationmaster.StrengthValidator(v); err != nil {
			return &ValidationError{Name: "strength", err: fmt.Errorf(`repo: validator failed for field "MedicationMaster.strength": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Manufacturer(); ok {
		if err := medicationmaster.ManufacturerValidator(v); err != nil {
			return &ValidationError{Name: "manufacturer", err: fmt.Errorf(`repo: validator failed for field "MedicationMaster.manufacturer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Classification(); ok {
		if err := medicationmaster.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`repo: validator failed for field "MedicationMaster.classification": %w`, err)}
		}
	}
	return nil
}

func (_u *MedicationMasterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(medicationmaster.Table, medicationmaster.Columns, sqlgraph.NewFieldSpec(medicationmaster.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(medicationmaster.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.GenericName(); ok {
		_spec.SetField(medicationmaster.FieldGenericName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BrandName(); ok {
		_spec.SetField(medicationmaster.FieldBrandName, field.TypeString, value)
	}
	if _u.mutation.BrandNameCleared() {
		_spec.ClearField(medicationmaster.FieldBrandName, field.TypeString)
	}
	if value, ok := _u.mutation.DosageForm(); ok {
		_spec.SetField(medicationmaster.FieldDosageForm, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Strength(); ok {
		_spec.SetField(medicationmaster.FieldStrength, field.TypeString, value)
	}
	if value, ok := _u.mutation.Manufacturer(); ok {
		_spec.SetField(medicationmaster.FieldManufacturer, field.TypeString, value)
	}
	if _u.mutation.ManufacturerCleared() {
		_spec.ClearField(medicationmaster.FieldManufacturer, field.TypeString)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(medicationmaster.FieldClassification, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(medicationmaster.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(medicationmaster.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(medicationmaster.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.PatientMedicationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPatientMedicationsIDs(); len(nodes) > 0 && !_u.mutation.PatientMedicationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientMedicationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{medicationmaster.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MedicationMasterUpdateOne is the builder for updating a single MedicationMaster entity.
type MedicationMasterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MedicationMasterMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MedicationMasterUpdateOne) SetUpdatedAt(v time.Time) *MedicationMasterUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetGenericName sets the "generic_name" field.
func (_u *MedicationMasterUpdateOne) SetGenericName(v string) *MedicationMasterUpdateOne {
	_u.mutation.SetGenericName(v)
	return _u
}

// SetNillableGenericName sets the "generic_name" field if the given value is not nil.
func (_u *MedicationMasterUpdateOne) SetNillableGenericName(v *string) *MedicationMasterUpdateOne {
	if v != nil {
		_u.SetGenericName(*v)
	}
	return _u
}

// SetBrandName sets the "brand_name" field.
func (_u *MedicationMasterUpdateOne) SetBrandName(v string) *MedicationMasterUpdateOne {
	_u.mutation.SetBrandName(v)
	return _u
}

// SetNillableBrandName sets the "brand_name" field if the given value is not nil.
func (_u *MedicationMasterUpdateOne) SetNillableBrandName(v *string) *MedicationMasterUpdateOne {
	if v != nil {
		_u.SetBrandName(*v)
	}
	return _u
}

// ClearBrandName clears the value of the "brand_name" field.
func (_u *MedicationMasterUpdateOne) ClearBrandName() *MedicationMasterUpdateOne {
	_u.mutation.ClearBrandName()
	return _u
}

// SetDosageForm sets the "dosage_form" field.
func (_u *MedicationMasterUpdateOne) SetDosageForm(v medicationmaster.DosageForm) *MedicationMasterUpdateOne {
	_u.mutation.SetDosageForm(v)
	return _u
}

// SetNillableDosageForm sets the "dosage_form" field if the given value is not nil.
func (_u *MedicationMasterUpdateOne) SetNillableDosageForm(v *medicationmaster.DosageForm) *MedicationMasterUpdateOne {
	if v != nil {
		_u.SetDosageForm(*v)
	}
	return _u
}

// SetStrength sets the "strength" field.
func (_u *MedicationMasterUpdateOne) SetStrength(v string) *MedicationMasterUpdateOne {
	_u.mutation.SetStrength(v)
	return _u
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (_u *MedicationMasterUpdateOne) SetNillableStrength(v *string) *MedicationMasterUpdateOne {
	if v != nil {
		_u.SetStrength(*v)
	}
	return _u
}

// SetManufacturer sets the "manufacturer" field.
func (_u *MedicationMasterUpdateOne) SetManufacturer(v string) *MedicationMasterUpdateOne {
	_u.mutation.SetManufacturer(v)
	return _u
}

// SetNillableManufacturer sets the "manufacturer" field if the given value is not nil.
func (_u *MedicationMasterUpdateOne) SetNillableManufacturer(v *string) *MedicationMasterUpdateOne {
	if v != nil {
		_u.SetManufacturer(*v)
	}
	return _u
}

// ClearManufacturer clears the value of the "manufacturer" field.
func (_u *MedicationMasterUpdateOne) ClearManufacturer() *MedicationMasterUpdateOne {
	_u.mutation.ClearManufacturer()
	return _u
}

// SetClassification sets the "classification" field.
func (_u *MedicationMasterUpdateOne) SetClassification(v medicationmaster.Classification) *MedicationMasterUpdateOne {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *MedicationMasterUpdateOne) SetNillableClassification(v *medicationmaster.Classification) *MedicationMasterUpdateOne {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *MedicationMasterUpdateOne) SetDescription(v string) *MedicationMasterUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MedicationMasterUpdateOne) SetNillableDescription(v *string) *MedicationMasterUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *MedicationMasterUpdateOne) ClearDescription() *MedicationMasterUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *MedicationMasterUpdateOne) SetIsActive(v bool) *MedicationMasterUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *MedicationMasterUpdateOne) SetNillableIsActive(v *bool) *MedicationMasterUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// AddPatientMedicationIDs adds the "patient_medications" edge to the PatientMedication entity by IDs.
func (_u *MedicationMasterUpdateOne) AddPatientMedicationIDs(ids ...uuid.UUID) *MedicationMasterUpdateOne {
	_u.mutation.AddPatientMedicationIDs(ids...)
	return _u
}

// AddPatientMedications adds the "patient_medications" edges to the PatientMedication entity.
func (_u *MedicationMasterUpdateOne) AddPatientMedications(v ...*PatientMedication) *MedicationMasterUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPatientMedicationIDs(ids...)
}

// Mutation returns the MedicationMasterMutation object of the builder.
func (_u *MedicationMasterUpdateOne) Mutation() *MedicationMasterMutation {
	return _u.mutation
}

// ClearPatientMedications clears all "patient_medications" edges to the PatientMedication entity.
func (_u *MedicationMasterUpdateOne) ClearPatientMedications() *MedicationMasterUpdateOne {
	_u.mutation.ClearPatientMedications()
	return _u
}

// RemovePatientMedicationIDs removes the "patient_medications" edge to PatientMedication entities by IDs.
func (_u *MedicationMasterUpdateOne) RemovePatientMedicationIDs(ids ...uuid.UUID) *MedicationMasterUpdateOne {
	_u.mutation.RemovePatientMedicationIDs(ids...)
	return _u
}

// RemovePatientMedications removes "patient_medications" edges to PatientMedication entities.
func (_u *MedicationMasterUpdateOne) RemovePatientMedications(v ...*PatientMedication) *MedicationMasterUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePatientMedicationIDs(ids...)
}

// Where appends a list predicates to the MedicationMasterUpdate builder.
func (_u *MedicationMasterUpdateOne) Where(ps ...predicate.MedicationMaster) *MedicationMasterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MedicationMasterUpdateOne) Select(field string, fields ...string) *MedicationMasterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MedicationMaster entity.
func (_u *MedicationMasterUpdateOne) Save(ctx context.Context) (*MedicationMaster, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MedicationMasterUpdateOne) SaveX(ctx context.Context) *MedicationMaster {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MedicationMasterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MedicationMasterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MedicationMasterUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := medicationmaster.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MedicationMasterUpdateOne) check() error {
	if v, ok := _u.mutation.GenericName(); ok {
		if err := medicationmaster.GenericNameValidator(v); err != nil {
			return &ValidationError{Name: "generic_name", err: fmt.Errorf(`repo: validator failed for field "MedicationMaster.generic_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BrandName(); ok {
		if err := medicationmaster.BrandNameValidator(v); err != nil {
			return &ValidationError{Name: "brand_name", err: fmt.Errorf(`repo: validator failed for field "MedicationMaster.brand_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DosageForm(); ok {
		if err := medicationmaster.DosageFormValidator(v); err != nil {
			return &ValidationError{Name: "dosage_form", err: fmt.Errorf(`repo: validator failed for field "MedicationMaster.dosage_form": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Strength(); ok {
		if err := medicationmaster.StrengthValidator(v); err != nil {
			return &ValidationError{Name: "strength", err: fmt.Errorf(`repo: validator failed for field "MedicationMaster.strength": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Manufacturer(); ok {
		if err := medicationmaster.ManufacturerValidator(v); err != nil {
			return &ValidationError{Name: "manufacturer", err: fmt.Errorf(`repo: validator failed for field "MedicationMaster.manufacturer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Classification(); ok {
		if err := medicationmaster.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`repo: validator failed for field "MedicationMaster.classification": %w`, err)}
		}
	}
	return nil
}

func (_u *MedicationMasterUpdateOne) sqlSave(ctx context.Context) (_node *MedicationMaster, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(medicationmaster.Table, medicationmaster.Columns, sqlgraph.NewFieldSpec(medicationmaster.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "MedicationMaster.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, medicationmaster.FieldID)
		for _, f := range fields {
			if !medicationmaster.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != medicationmaster.FieldID {
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
		_spec.SetField(medicationmaster.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.GenericName(); ok {
		_spec.SetField(medicationmaster.FieldGenericName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BrandName(); ok {
		_spec.SetField(medicationmaster.FieldBrandName, field.TypeString, value)
	}
	if _u.mutation.BrandNameCleared() {
		_spec.ClearField(medicationmaster.FieldBrandName, field.TypeString)
	}
	if value, ok := _u.mutation.DosageForm(); ok {
		_spec.SetField(medicationmaster.FieldDosageForm, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Strength(); ok {
		_spec.SetField(medicationmaster.FieldStrength, field.TypeString, value)
	}
	if value, ok := _u.mutation.Manufacturer(); ok {
		_spec.SetField(medicationmaster.FieldManufacturer, field.TypeString, value)
	}
	if _u.mutation.ManufacturerCleared() {
		_spec.ClearField(medicationmaster.FieldManufacturer, field.TypeString)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(medicationmaster.FieldClassification, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(medicationmaster.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(medicationmaster.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(medicationmaster.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.PatientMedicationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPatientMedicationsIDs(); len(nodes) > 0 && !_u.mutation.PatientMedicationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientMedicationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &MedicationMaster{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{medicationmaster.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
