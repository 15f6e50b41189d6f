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
	"github.com/rainzero1960/paperscout/ent/customsummary"
	"github.com/rainzero1960/paperscout/ent/defaultsummary"
	"github.com/rainzero1960/paperscout/ent/papermetadata"
	"github.com/rainzero1960/paperscout/ent/predicate"
	"github.com/rainzero1960/paperscout/ent/userpaperlink"
)

// PaperMetadataQuery is the builder for querying PaperMetadata entities.
type PaperMetadataQuery struct {
	config
	ctx                  *QueryContext
	order                []papermetadata.OrderOption
	inters               []Interceptor
	predicates           []predicate.PaperMetadata
	withDefaultSummaries *DefaultSummaryQuery
	withCustomSummaries  *CustomSummaryQuery
	withUserLinks        *UserPaperLinkQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PaperMetadataQuery builder.
func (_q *PaperMetadataQuery) Where(ps ...predicate.PaperMetadata) *PaperMetadataQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *PaperMetadataQuery) Limit(limit int) *PaperMetadataQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *PaperMetadataQuery) Offset(offset int) *PaperMetadataQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *PaperMetadataQuery) Unique(unique bool) *PaperMetadataQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *PaperMetadataQuery) Order(o ...papermetadata.OrderOption) *PaperMetadataQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryDefaultSummaries chains the current query on the "default_summaries" edge.
func (_q *PaperMetadataQuery) QueryDefaultSummaries() *DefaultSummaryQuery {
	query := (&DefaultSummaryClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(papermetadata.Table, papermetadata.FieldID, selector),
			sqlgraph.To(defaultsummary.Table, defaultsummary.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, papermetadata.DefaultSummariesTable, papermetadata.DefaultSummariesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCustomSummaries chains the current query on the "custom_summaries" edge.
func (_q *PaperMetadataQuery) QueryCustomSummaries() *CustomSummaryQuery {
	query := (&CustomSummaryClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(papermetadata.Table, papermetadata.FieldID, selector),
			sqlgraph.To(customsummary.Table, customsummary.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, papermetadata.CustomSummariesTable, papermetadata.CustomSummariesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryUserLinks chains the current query on the "user_links" edge.
func (_q *PaperMetadataQuery) QueryUserLinks() *UserPaperLinkQuery {
	query := (&UserPaperLinkClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(papermetadata.Table, papermetadata.FieldID, selector),
			sqlgraph.To(userpaperlink.Table, userpaperlink.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, papermetadata.UserLinksTable, papermetadata.UserLinksColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first PaperMetadata entity from the query.
// Returns a *NotFoundError when no PaperMetadata was found.
func (_q *PaperMetadataQuery) First(ctx context.Context) (*PaperMetadata, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{papermetadata.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *PaperMetadataQuery) FirstX(ctx context.Context) *PaperMetadata {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first PaperMetadata ID from the query.
// Returns a *NotFoundError when no PaperMetadata ID was found.
func (_q *PaperMetadataQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{papermetadata.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *PaperMetadataQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single PaperMetadata entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one PaperMetadata entity is found.
// Returns a *NotFoundError when no PaperMetadata entities are found.
func (_q *PaperMetadataQuery) Only(ctx context.Context) (*PaperMetadata, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{papermetadata.Label}
	default:
		return nil, &NotSingularError{papermetadata.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *PaperMetadataQuery) OnlyX(ctx context.Context) *PaperMetadata {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only PaperMetadata ID in the query.
// Returns a *NotSingularError when more than one PaperMetadata ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *PaperMetadataQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{papermetadata.Label}
	default:
		err = &NotSingularError{papermetadata.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *PaperMetadataQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of PaperMetadataSlice.
func (_q *PaperMetadataQuery) All(ctx context.Context) ([]*PaperMetadata, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*PaperMetadata, *PaperMetadataQuery]()
	return withInterceptors[[]*PaperMetadata](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *PaperMetadataQuery) AllX(ctx context.Context) []*PaperMetadata {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of PaperMetadata IDs.
func (_q *PaperMetadataQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(papermetadata.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *PaperMetadataQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *PaperMetadataQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*PaperMetadataQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *PaperMetadataQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *PaperMetadataQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *PaperMetadataQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PaperMetadataQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *PaperMetadataQuery) Clone() *PaperMetadataQuery {
	if _q == nil {
		return nil
	}
	return &PaperMetadataQuery{
		config:               _q.config,
		ctx:                  _q.ctx.Clone(),
		order:                append([]papermetadata.OrderOption{}, _q.order...),
		inters:               append([]Interceptor{}, _q.inters...),
		predicates:           append([]predicate.PaperMetadata{}, _q.predicates...),
		withDefaultSummaries: _q.withDefaultSummaries.Clone(),
		withCustomSummaries:  _q.withCustomSummaries.Clone(),
		withUserLinks:        _q.withUserLinks.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithDefaultSummaries tells the query-builder to eager-load the nodes that are connected to
// the "default_summaries" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PaperMetadataQuery) WithDefaultSummaries(opts ...func(*DefaultSummaryQuery)) *PaperMetadataQuery {
	query := (&DefaultSummaryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDefaultSummaries = query
	return _q
}

// WithCustomSummaries tells the query-builder to eager-load the nodes that are connected to
// the "custom_summaries" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PaperMetadataQuery) WithCustomSummaries(opts ...func(*CustomSummaryQuery)) *PaperMetadataQuery {
	query := (&CustomSummaryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCustomSummaries = query
	return _q
}

// WithUserLinks tells the query-builder to eager-load the nodes that are connected to
// the "user_links" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PaperMetadataQuery) WithUserLinks(opts ...func(*UserPaperLinkQuery)) *PaperMetadataQuery {
	query := (&UserPaperLinkClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withUserLinks = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ExternalID string `json:"external_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.PaperMetadata.Query().
//		GroupBy(papermetadata.FieldExternalID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *PaperMetadataQuery) GroupBy(field string, fields ...string) *PaperMetadataGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PaperMetadataGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = papermetadata.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ExternalID string `json:"external_id,omitempty"`
//	}
//
//	client.PaperMetadata.Query().
//		Select(papermetadata.FieldExternalID).
//		Scan(ctx, &v)
func (_q *PaperMetadataQuery) Select(fields ...string) *PaperMetadataSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &PaperMetadataSelect{PaperMetadataQuery: _q}
	sbuild.label = papermetadata.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PaperMetadataSelect configured with the given aggregations.
func (_q *PaperMetadataQuery) Aggregate(fns ...AggregateFunc) *PaperMetadataSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *PaperMetadataQuery) prepareQuery(ctx context.Context) error {
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
		if !papermetadata.ValidColumn(f) {
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

func (_q *PaperMetadataQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*PaperMetadata, error) {
	var (
		nodes       = []*PaperMetadata{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withDefaultSummaries != nil,
			_q.withCustomSummaries != nil,
			_q.withUserLinks != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*PaperMetadata).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &PaperMetadata{config: _q.config}
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
	if query := _q.withDefaultSummaries; query != nil {
		if err := _q.loadDefaultSummaries(ctx, query, nodes,
			func(n *PaperMetadata) { n.Edges.DefaultSummaries = []*DefaultSummary{} },
			func(n *PaperMetadata, e *DefaultSummary) {
				n.Edges.DefaultSummaries = append(n.Edges.DefaultSummaries, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withCustomSummaries; query != nil {
		if err := _q.loadCustomSummaries(ctx, query, nodes,
			func(n *PaperMetadata) { n.Edges.CustomSummaries = []*CustomSummary{} },
			func(n *PaperMetadata, e *CustomSummary) { n.Edges.CustomSummaries = append(n.Edges.CustomSummaries, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withUserLinks; query != nil {
		if err := _q.loadUserLinks(ctx, query, nodes,
			func(n *PaperMetadata) { n.Edges.UserLinks = []*UserPaperLink{} },
			func(n *PaperMetadata, e *UserPaperLink) { n.Edges.UserLinks = append(n.Edges.UserLinks, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *PaperMetadataQuery) loadDefaultSummaries(ctx context.Context, query *DefaultSummaryQuery, nodes []*PaperMetadata, init func(*PaperMetadata), assign func(*PaperMetadata, *DefaultSummary)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*PaperMetadata)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(defaultsummary.FieldPaperID)
	}
	query.Where(predicate.DefaultSummary(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(papermetadata.DefaultSummariesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.PaperID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "paper_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *PaperMetadataQuery) loadCustomSummaries(ctx context.Context, query *CustomSummaryQuery, nodes []*PaperMetadata, init func(*PaperMetadata), assign func(*PaperMetadata, *CustomSummary)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*PaperMetadata)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(customsummary.FieldPaperID)
	}
	query.Where(predicate.CustomSummary(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(papermetadata.CustomSummariesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.PaperID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "paper_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *PaperMetadataQuery) loadUserLinks(ctx context.Context, query *UserPaperLinkQuery, nodes []*PaperMetadata, init func(*PaperMetadata), assign func(*PaperMetadata, *UserPaperLink)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*PaperMetadata)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(userpaperlink.FieldPaperID)
	}
	query.Where(predicate.UserPaperLink(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(papermetadata.UserLinksColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.PaperID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "paper_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *PaperMetadataQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *PaperMetadataQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(papermetadata.Table, papermetadata.Columns, sqlgraph.NewFieldSpec(papermetadata.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, papermetadata.FieldID)
		for i := range fields {
			if fields[i] != papermetadata.FieldID {
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

func (_q *PaperMetadataQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(papermetadata.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = papermetadata.Columns
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

// PaperMetadataGroupBy is the group-by builder for PaperMetadata entities.
type PaperMetadataGroupBy struct {
	selector
	build *PaperMetadataQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *PaperMetadataGroupBy) Aggregate(fns ...AggregateFunc) *PaperMetadataGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *PaperMetadataGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PaperMetadataQuery, *PaperMetadataGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *PaperMetadataGroupBy) sqlScan(ctx context.Context, root *PaperMetadataQuery, v any) error {
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

// PaperMetadataSelect is the builder for selecting fields of PaperMetadata entities.
type PaperMetadataSelect struct {
	*PaperMetadataQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *PaperMetadataSelect) Aggregate(fns ...AggregateFunc) *PaperMetadataSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *PaperMetadataSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PaperMetadataQuery, *PaperMetadataSelect](ctx, _s.PaperMetadataQuery, _s, _s.inters, v)
}

func (_s *PaperMetadataSelect) sqlScan(ctx context.Context, root *PaperMetadataQuery, v any) error {
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
