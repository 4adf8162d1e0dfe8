// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/retinalab/screening-tracker/gen/ent/archive"
	"github.com/retinalab/screening-tracker/gen/ent/encounter"
	"github.com/retinalab/screening-tracker/gen/ent/encounterfile"
	"github.com/retinalab/screening-tracker/gen/ent/glaucomafinding"
	"github.com/retinalab/screening-tracker/gen/ent/predicate"
	"github.com/retinalab/screening-tracker/gen/ent/retinopathyfinding"
)

// EncounterQuery is the builder for querying Encounter entities.
type EncounterQuery struct {
	config
	ctx                     *QueryContext
	order                   []encounter.OrderOption
	inters                  []Interceptor
	predicates              []predicate.Encounter
	withArchive             *ArchiveQuery
	withFiles               *EncounterFileQuery
	withRetinopathyFindings *RetinopathyFindingQuery
	withGlaucomaFindings    *GlaucomaFindingQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the EncounterQuery builder.
func (_q *EncounterQuery) Where(ps ...predicate.Encounter) *EncounterQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *EncounterQuery) Limit(limit int) *EncounterQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *EncounterQuery) Offset(offset int) *EncounterQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *EncounterQuery) Unique(unique bool) *EncounterQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *EncounterQuery) Order(o ...encounter.OrderOption) *EncounterQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryArchive chains the current query on the "archive" edge.
func (_q *EncounterQuery) QueryArchive() *ArchiveQuery {
	query := (&ArchiveClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(encounter.Table, encounter.FieldID, selector),
			sqlgraph.To(archive.Table, archive.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, encounter.ArchiveTable, encounter.ArchiveColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryFiles chains the current query on the "files" edge.
func (_q *EncounterQuery) QueryFiles() *EncounterFileQuery {
	query := (&EncounterFileClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(encounter.Table, encounter.FieldID, selector),
			sqlgraph.To(encounterfile.Table, encounterfile.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, encounter.FilesTable, encounter.FilesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRetinopathyFindings chains the current query on the "retinopathy_findings" edge.
func (_q *EncounterQuery) QueryRetinopathyFindings() *RetinopathyFindingQuery {
	query := (&RetinopathyFindingClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(encounter.Table, encounter.FieldID, selector),
			sqlgraph.To(retinopathyfinding.Table, retinopathyfinding.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, encounter.RetinopathyFindingsTable, encounter.RetinopathyFindingsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryGlaucomaFindings chains the current query on the "glaucoma_findings" edge.
func (_q *EncounterQuery) QueryGlaucomaFindings() *GlaucomaFindingQuery {
	query := (&GlaucomaFindingClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(encounter.Table, encounter.FieldID, selector),
			sqlgraph.To(glaucomafinding.Table, glaucomafinding.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, encounter.GlaucomaFindingsTable, encounter.GlaucomaFindingsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Encounter entity from the query.
// Returns a *NotFoundError when no Encounter was found.
func (_q *EncounterQuery) First(ctx context.Context) (*Encounter, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{encounter.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *EncounterQuery) FirstX(ctx context.Context) *Encounter {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Encounter ID from the query.
// Returns a *NotFoundError when no Encounter ID was found.
func (_q *EncounterQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{encounter.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *EncounterQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Encounter entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Encounter entity is found.
// Returns a *NotFoundError when no Encounter entities are found.
func (_q *EncounterQuery) Only(ctx context.Context) (*Encounter, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{encounter.Label}
	default:
		return nil, &NotSingularError{encounter.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *EncounterQuery) OnlyX(ctx context.Context) *Encounter {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Encounter ID in the query.
// Returns a *NotSingularError when more than one Encounter ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *EncounterQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{encounter.Label}
	default:
		err = &NotSingularError{encounter.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *EncounterQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Encounters.
func (_q *EncounterQuery) All(ctx context.Context) ([]*Encounter, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Encounter, *EncounterQuery]()
	return withInterceptors[[]*Encounter](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *EncounterQuery) AllX(ctx context.Context) []*Encounter {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Encounter IDs.
func (_q *EncounterQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(encounter.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *EncounterQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *EncounterQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*EncounterQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *EncounterQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *EncounterQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *EncounterQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the EncounterQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *EncounterQuery) Clone() *EncounterQuery {
	if _q == nil {
		return nil
	}
	return &EncounterQuery{
		config:                  _q.config,
		ctx:                     _q.ctx.Clone(),
		order:                   append([]encounter.OrderOption{}, _q.order...),
		inters:                  append([]Interceptor{}, _q.inters...),
		predicates:              append([]predicate.Encounter{}, _q.predicates...),
		withArchive:             _q.withArchive.Clone(),
		withFiles:               _q.withFiles.Clone(),
		withRetinopathyFindings: _q.withRetinopathyFindings.Clone(),
		withGlaucomaFindings:    _q.withGlaucomaFindings.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithArchive tells the query-builder to eager-load the nodes that are connected to
// the "archive" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EncounterQuery) WithArchive(opts ...func(*ArchiveQuery)) *EncounterQuery {
	query := (&ArchiveClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withArchive = query
	return _q
}

// WithFiles tells the query-builder to eager-load the nodes that are connected to
// the "files" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EncounterQuery) WithFiles(opts ...func(*EncounterFileQuery)) *EncounterQuery {
	query := (&EncounterFileClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withFiles = query
	return _q
}

// WithRetinopathyFindings tells the query-builder to eager-load the nodes that are connected to
// the "retinopathy_findings" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EncounterQuery) WithRetinopathyFindings(opts ...func(*RetinopathyFindingQuery)) *EncounterQuery {
	query := (&RetinopathyFindingClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRetinopathyFindings = query
	return _q
}

// WithGlaucomaFindings tells the query-builder to eager-load the nodes that are connected to
// the "glaucoma_findings" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EncounterQuery) WithGlaucomaFindings(opts ...func(*GlaucomaFindingQuery)) *EncounterQuery {
	query := (&GlaucomaFindingClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withGlaucomaFindings = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ArchiveID uuid.UUID `json:"archive_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Encounter.Query().
//		GroupBy(encounter.FieldArchiveID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *EncounterQuery) GroupBy(field string, fields ...string) *EncounterGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &EncounterGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = encounter.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ArchiveID uuid.UUID `json:"archive_id,omitempty"`
//	}
//
//	client.Encounter.Query().
//		Select(encounter.FieldArchiveID).
//		Scan(ctx, &v)
func (_q *EncounterQuery) Select(fields ...string) *EncounterSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &EncounterSelect{EncounterQuery: _q}
	sbuild.label = encounter.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a EncounterSelect configured with the given aggregations.
func (_q *EncounterQuery) Aggregate(fns ...AggregateFunc) *EncounterSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *EncounterQuery) prepareQuery(ctx context.Context) error {
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
		if !encounter.ValidColumn(f) {
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

func (_q *EncounterQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Encounter, error) {
	var (
		nodes       = []*Encounter{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withArchive != nil,
			_q.withFiles != nil,
			_q.withRetinopathyFindings != nil,
			_q.withGlaucomaFindings != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Encounter).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Encounter{config: _q.config}
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
	if query := _q.withArchive; query != nil {
		if err := _q.loadArchive(ctx, query, nodes, nil,
			func(n *Encounter, e *Archive) { n.Edges.Archive = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withFiles; query != nil {
		if err := _q.loadFiles(ctx, query, nodes,
			func(n *Encounter) { n.Edges.Files = []*EncounterFile{} },
			func(n *Encounter, e *EncounterFile) { n.Edges.Files = append(n.Edges.Files, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRetinopathyFindings; query != nil {
		if err := _q.loadRetinopathyFindings(ctx, query, nodes,
			func(n *Encounter) { n.Edges.RetinopathyFindings = []*RetinopathyFinding{} },
			func(n *Encounter, e *RetinopathyFinding) {
				n.Edges.RetinopathyFindings = append(n.Edges.RetinopathyFindings, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withGlaucomaFindings; query != nil {
		if err := _q.loadGlaucomaFindings(ctx, query, nodes,
			func(n *Encounter) { n.Edges.GlaucomaFindings = []*GlaucomaFinding{} },
			func(n *Encounter, e *GlaucomaFinding) { n.Edges.GlaucomaFindings = append(n.Edges.GlaucomaFindings, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *EncounterQuery) loadArchive(ctx context.Context, query *ArchiveQuery, nodes []*Encounter, init func(*Encounter), assign func(*Encounter, *Archive)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Encounter)
	for i := range nodes {
		fk := nodes[i].ArchiveID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(archive.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "archive_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *EncounterQuery) loadFiles(ctx context.Context, query *EncounterFileQuery, nodes []*Encounter, init func(*Encounter), assign func(*Encounter, *EncounterFile)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Encounter)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(encounterfile.FieldEncounterID)
	}
	query.Where(predicate.EncounterFile(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(encounter.FilesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.EncounterID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "encounter_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *EncounterQuery) loadRetinopathyFindings(ctx context.Context, query *RetinopathyFindingQuery, nodes []*Encounter, init func(*Encounter), assign func(*Encounter, *RetinopathyFinding)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Encounter)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(retinopathyfinding.FieldEncounterID)
	}
	query.Where(predicate.RetinopathyFinding(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(encounter.RetinopathyFindingsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.EncounterID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "encounter_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *EncounterQuery) loadGlaucomaFindings(ctx context.Context, query *GlaucomaFindingQuery, nodes []*Encounter, init func(*Encounter), assign func(*Encounter, *GlaucomaFinding)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Encounter)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(glaucomafinding.FieldEncounterID)
	}
	query.Where(predicate.GlaucomaFinding(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(encounter.GlaucomaFindingsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.EncounterID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "encounter_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *EncounterQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *EncounterQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(encounter.Table, encounter.Columns, sqlgraph.NewFieldSpec(encounter.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, encounter.FieldID)
		for i := range fields {
			if fields[i] != encounter.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withArchive != nil {
			_spec.Node.AddColumnOnce(encounter.FieldArchiveID)
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

func (_q *EncounterQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(encounter.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = encounter.Columns
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

// EncounterGroupBy is the group-by builder for Encounter entities.
type EncounterGroupBy struct {
	selector
	build *EncounterQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *EncounterGroupBy) Aggregate(fns ...AggregateFunc) *EncounterGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *EncounterGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*EncounterQuery, *EncounterGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *EncounterGroupBy) sqlScan(ctx context.Context, root *EncounterQuery, v any) error {
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

// EncounterSelect is the builder for selecting fields of Encounter entities.
type EncounterSelect struct {
	*EncounterQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *EncounterSelect) Aggregate(fns ...AggregateFunc) *EncounterSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *EncounterSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*EncounterQuery, *EncounterSelect](ctx, _s.EncounterQuery, _s, _s.inters, v)
}

func (_s *EncounterSelect) sqlScan(ctx context.Context, root *EncounterQuery, v any) error {
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
