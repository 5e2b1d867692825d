// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/caretide/caretide_backend/internal/repo/medicationmaster"
	"github.com/caretide/caretide_backend/internal/repo/predicate"
)

// MedicationMasterDelete is the builder for deleting a MedicationMaster entity.
type MedicationMasterDelete struct {
	config
	hooks    []Hook
	mutation *MedicationMasterMutation
}

// Where appends a list predicates to the MedicationMasterDelete builder.
func (_d *MedicationMasterDelete) Where(ps ...predicate.MedicationMaster) *MedicationMasterDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MedicationMasterDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MedicationMasterDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MedicationMasterDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(medicationmaster.Table, sqlgraph.NewFieldSpec(medicationmaster.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// MedicationMasterDeleteOne is the builder for deleting a single MedicationMaster entity.
type MedicationMasterDeleteOne struct {
	_d *MedicationMasterDelete
}

// Where appends a list predicates to the MedicationMasterDelete builder.
func (_d *MedicationMasterDeleteOne) Where(ps ...predicate.MedicationMaster) *MedicationMasterDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MedicationMasterDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{medicationmaster.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MedicationMasterDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
