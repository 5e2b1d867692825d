// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/caretide/caretide_backend/internal/repo/medicationmaster"
	"github.com/caretide/caretide_backend/internal/repo/patientmedication"
	"github.com/caretide/caretide_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// MedicationMasterQuery is the builder for querying MedicationMaster entities.
type MedicationMasterQuery struct {
	config
	ctx                    *QueryContext
	order                  []medicationmaster.OrderOption
	inters                 []Interceptor
	predicates             []predicate.MedicationMaster
	withPatientMedications *PatientMedicationQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the MedicationMasterQuery builder.
func (_q *MedicationMasterQuery) Where(ps ...predicate.MedicationMaster) *MedicationMasterQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *MedicationMasterQuery) Limit(limit int) *MedicationMasterQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *MedicationMasterQuery) Offset(offset int) *MedicationMasterQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *MedicationMasterQuery) Unique(unique bool) *MedicationMasterQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *MedicationMasterQuery) Order(o ...medicationmaster.OrderOption) *MedicationMasterQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryPatientMedications chains the current query on the "patient_medications" edge.
func (_q *MedicationMasterQuery) QueryPatientMedications() *PatientMedicationQuery {
	query := (&PatientMedicationClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(medicationmaster.Table, medicationmaster.FieldID, selector),
			sqlgraph.To(patientmedication.Table, patientmedication.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, medicationmaster.PatientMedicationsTable, medicationmaster.PatientMedicationsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first MedicationMaster entity from the query.
// Returns a *NotFoundError when no MedicationMaster was found.
func (_q *MedicationMasterQuery) First(ctx context.Context) (*MedicationMaster, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{medicationmaster.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *MedicationMasterQuery) FirstX(ctx context.Context) *MedicationMaster {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first MedicationMaster ID from the query.
// Returns a *NotFoundError when no MedicationMaster ID was found.
func (_q *MedicationMasterQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{medicationmaster.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *MedicationMasterQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single MedicationMaster entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one MedicationMaster entity is found.
// Returns a *NotFoundError when no MedicationMaster entities are found.
func (_q *MedicationMasterQuery) Only(ctx context.Context) (*MedicationMaster, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{medicationmaster.Label}
	default:
		return nil, &NotSingularError{medicationmaster.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *MedicationMasterQuery) OnlyX(ctx context.Context) *MedicationMaster {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only MedicationMaster ID in the query.
// Returns a *NotSingularError when more than one MedicationMaster ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *MedicationMasterQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{medicationmaster.Label}
	default:
		err = &NotSingularError{medicationmaster.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *MedicationMasterQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of MedicationMasters.
func (_q *MedicationMasterQuery) All(ctx context.Context) ([]*MedicationMaster, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*MedicationMaster, *MedicationMasterQuery]()
	return withInterceptors[[]*MedicationMaster](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *MedicationMasterQuery) AllX(ctx context.Context) []*MedicationMaster {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of MedicationMaster IDs.
func (_q *MedicationMasterQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(medicationmaster.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *MedicationMasterQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *MedicationMasterQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*MedicationMasterQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *MedicationMasterQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *MedicationMasterQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("repo: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *MedicationMasterQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the MedicationMasterQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *MedicationMasterQuery) Clone() *MedicationMasterQuery {
	if _q == nil {
		return nil
	}
	return &MedicationMasterQuery{
		config:                 _q.config,
		ctx:                    _q.ctx.Clone(),
		order:                  append([]medicationmaster.OrderOption{}, _q.order...),
		inters:                 append([]Interceptor{}, _q.inters...),
		predicates:             append([]predicate.MedicationMaster{}, _q.predicates...),
		withPatientMedications: _q.withPatientMedications.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithPatientMedications tells the query-builder to eager-load the nodes that are connected to
// the "patient_medications" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MedicationMasterQuery) WithPatientMedications(opts ...func(*PatientMedicationQuery)) *MedicationMasterQuery {
	query := (&PatientMedicationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPatientMedications = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.MedicationMaster.Query().
//		GroupBy(medicationmaster.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *MedicationMasterQuery) GroupBy(field string, fields ...string) *MedicationMasterGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &MedicationMasterGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = medicationmaster.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.MedicationMaster.Query().
//		Select(medicationmaster.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *MedicationMasterQuery) Select(fields ...string) *MedicationMasterSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &MedicationMasterSelect{MedicationMasterQuery: _q}
	sbuild.label = medicationmaster.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a MedicationMasterSelect configured with the given aggregations.
func (_q *MedicationMasterQuery) Aggregate(fns ...AggregateFunc) *MedicationMasterSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *MedicationMasterQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("repo: uninitialized interceptor (forgotten import repo/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !medicationmaster.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *MedicationMasterQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*MedicationMaster, error) {
	var (
		nodes       = []*MedicationMaster{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withPatientMedications != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*MedicationMaster).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &MedicationMaster{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withPatientMedications; query != nil {
		if err := _q.loadPatientMedications(ctx, query, nodes,
			func(n *MedicationMaster) { n.Edges.PatientMedications = []*PatientMedication{} },
			func(n *MedicationMaster, e *PatientMedication) {
				n.Edges.PatientMedications = append(n.Edges.PatientMedications, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *MedicationMasterQuery) loadPatientMedications(ctx context.Context, query *PatientMedicationQuery, nodes []*MedicationMaster, init func(*MedicationMaster), assign func(*MedicationMaster, *PatientMedication)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*MedicationMaster)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(patientmedication.FieldMedicationID)
	}
	query.Where(predicate.PatientMedication(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(medicationmaster.PatientMedicationsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.MedicationID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "medication_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *MedicationMasterQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *MedicationMasterQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(medicationmaster.Table, medicationmaster.Columns, sqlgraph.NewFieldSpec(medicationmaster.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, medicationmaster.FieldID)
		for i := range fields {
			if fields[i] != medicationmaster.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *MedicationMasterQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(medicationmaster.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = medicationmaster.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// MedicationMasterGroupBy is the group-by builder for MedicationMaster entities.
type MedicationMasterGroupBy struct {
	selector
	build *MedicationMasterQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *MedicationMasterGroupBy) Aggregate(fns ...AggregateFunc) *MedicationMasterGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *MedicationMasterGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MedicationMasterQuery, *MedicationMasterGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *MedicationMasterGroupBy) sqlScan(ctx context.Context, root *MedicationMasterQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// MedicationMasterSelect is the builder for selecting fields of MedicationMaster entities.
type MedicationMasterSelect struct {
	*MedicationMasterQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *MedicationMasterSelect) Aggregate(fns ...AggregateFunc) *MedicationMasterSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *MedicationMasterSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MedicationMasterQuery, *MedicationMasterSelect](ctx, _s.MedicationMasterQuery, _s, _s.inters, v)
}

func (_s *MedicationMasterSelect) sqlScan(ctx context.Context, root *MedicationMasterQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
