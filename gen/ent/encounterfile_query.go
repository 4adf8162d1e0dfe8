// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/retinalab/screening-tracker/gen/ent/encounter"
	"github.com/retinalab/screening-tracker/gen/ent/encounterfile"
	"github.com/retinalab/screening-tracker/gen/ent/predicate"
)

// EncounterFileQuery is the builder for querying EncounterFile entities.
type EncounterFileQuery struct {
	config
	ctx           *QueryContext
	order         []encounterfile.OrderOption
	inters        []Interceptor
	predicates    []predicate.EncounterFile
	withEncounter *EncounterQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the EncounterFileQuery builder.
func (_q *EncounterFileQuery) Where(ps ...predicate.EncounterFile) *EncounterFileQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *EncounterFileQuery) Limit(limit int) *EncounterFileQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *EncounterFileQuery) Offset(offset int) *EncounterFileQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *EncounterFileQuery) Unique(unique bool) *EncounterFileQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *EncounterFileQuery) Order(o ...encounterfile.OrderOption) *EncounterFileQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryEncounter chains the current query on the "encounter" edge.
func (_q *EncounterFileQuery) QueryEncounter() *EncounterQuery {
	query := (&EncounterClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(encounterfile.Table, encounterfile.FieldID, selector),
			sqlgraph.To(encounter.Table, encounter.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, encounterfile.EncounterTable, encounterfile.EncounterColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first EncounterFile entity from the query.
// Returns a *NotFoundError when no EncounterFile was found.
func (_q *EncounterFileQuery) First(ctx context.Context) (*EncounterFile, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{encounterfile.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *EncounterFileQuery) FirstX(ctx context.Context) *EncounterFile {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first EncounterFile ID from the query.
// Returns a *NotFoundError when no EncounterFile ID was found.
func (_q *EncounterFileQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{encounterfile.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *EncounterFileQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single EncounterFile entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one EncounterFile entity is found.
// Returns a *NotFoundError when no EncounterFile entities are found.
func (_q *EncounterFileQuery) Only(ctx context.Context) (*EncounterFile, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{encounterfile.Label}
	default:
		return nil, &NotSingularError{encounterfile.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *EncounterFileQuery) OnlyX(ctx context.Context) *EncounterFile {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only EncounterFile ID in the query.
// Returns a *NotSingularError when more than one EncounterFile ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *EncounterFileQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{encounterfile.Label}
	default:
		err = &NotSingularError{encounterfile.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *EncounterFileQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of EncounterFiles.
func (_q *EncounterFileQuery) All(ctx context.Context) ([]*EncounterFile, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*EncounterFile, *EncounterFileQuery]()
	return withInterceptors[[]*EncounterFile](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *EncounterFileQuery) AllX(ctx context.Context) []*EncounterFile {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of EncounterFile IDs.
func (_q *EncounterFileQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(encounterfile.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *EncounterFileQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *EncounterFileQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*EncounterFileQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *EncounterFileQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *EncounterFileQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *EncounterFileQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the EncounterFileQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *EncounterFileQuery) Clone() *EncounterFileQuery {
	if _q == nil {
		return nil
	}
	return &EncounterFileQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]encounterfile.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.EncounterFile{}, _q.predicates...),
		withEncounter: _q.withEncounter.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithEncounter tells the query-builder to eager-load the nodes that are connected to
// the "encounter" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EncounterFileQuery) WithEncounter(opts ...func(*EncounterQuery)) *EncounterFileQuery {
	query := (&EncounterClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEncounter = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		EncounterID uuid.UUID `json:"encounter_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.EncounterFile.Query().
//		GroupBy(encounterfile.FieldEncounterID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *EncounterFileQuery) GroupBy(field string, fields ...string) *EncounterFileGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &EncounterFileGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = encounterfile.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		EncounterID uuid.UUID `json:"encounter_id,omitempty"`
//	}
//
//	client.EncounterFile.Query().
//		Select(encounterfile.FieldEncounterID).
//		Scan(ctx, &v)
func (_q *EncounterFileQuery) Select(fields ...string) *EncounterFileSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &EncounterFileSelect{EncounterFileQuery: _q}
	sbuild.label = encounterfile.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a EncounterFileSelect configured with the given aggregations.
func (_q *EncounterFileQuery) Aggregate(fns ...AggregateFunc) *EncounterFileSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *EncounterFileQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !encounterfile.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
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

func (_q *EncounterFileQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*EncounterFile, error) {
	var (
		nodes       = []*EncounterFile{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withEncounter != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*EncounterFile).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &EncounterFile{config: _q.config}
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
	if query := _q.withEncounter; query != nil {
		if err := _q.loadEncounter(ctx, query, nodes, nil,
			func(n *EncounterFile, e *Encounter) { n.Edges.Encounter = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *EncounterFileQuery) loadEncounter(ctx context.Context, query *EncounterQuery, nodes []*EncounterFile, init func(*EncounterFile), assign func(*EncounterFile, *Encounter)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*EncounterFile)
	for i := range nodes {
		fk := nodes[i].EncounterID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(encounter.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "encounter_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *EncounterFileQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *EncounterFileQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(encounterfile.Table, encounterfile.Columns, sqlgraph.NewFieldSpec(encounterfile.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, encounterfile.FieldID)
		for i := range fields {
			if fields[i] != encounterfile.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withEncounter != nil {
			_spec.Node.AddColumnOnce(encounterfile.FieldEncounterID)
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

func (_q *EncounterFileQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(encounterfile.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = encounterfile.Columns
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

// EncounterFileGroupBy is the group-by builder for EncounterFile entities.
type EncounterFileGroupBy struct {
	selector
	build *EncounterFileQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *EncounterFileGroupBy) Aggregate(fns ...AggregateFunc) *EncounterFileGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *EncounterFileGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*EncounterFileQuery, *EncounterFileGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *EncounterFileGroupBy) sqlScan(ctx context.Context, root *EncounterFileQuery, v any) error {
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

// EncounterFileSelect is the builder for selecting fields of EncounterFile entities.
type EncounterFileSelect struct {
	*EncounterFileQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *EncounterFileSelect) Aggregate(fns ...AggregateFunc) *EncounterFileSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *EncounterFileSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*EncounterFileQuery, *EncounterFileSelect](ctx, _s.EncounterFileQuery, _s, _s.inters, v)
}

func (_s *EncounterFileSelect) sqlScan(ctx context.Context, root *EncounterFileQuery, v any) error {
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
