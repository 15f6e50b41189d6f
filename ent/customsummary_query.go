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
	"github.com/rainzero1960/paperscout/ent/customsummary"
	"github.com/rainzero1960/paperscout/ent/papermetadata"
	"github.com/rainzero1960/paperscout/ent/predicate"
	"github.com/rainzero1960/paperscout/ent/prompt"
	"github.com/rainzero1960/paperscout/ent/user"
)

// CustomSummaryQuery is the builder for querying CustomSummary entities.
type CustomSummaryQuery struct {
	config
	ctx        *QueryContext
	order      []customsummary.OrderOption
	inters     []Interceptor
	predicates []predicate.CustomSummary
	withUser   *UserQuery
	withPaper  *PaperMetadataQuery
	withPrompt *PromptQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CustomSummaryQuery builder.
func (_q *CustomSummaryQuery) Where(ps ...predicate.CustomSummary) *CustomSummaryQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *CustomSummaryQuery) Limit(limit int) *CustomSummaryQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *CustomSummaryQuery) Offset(offset int) *CustomSummaryQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *CustomSummaryQuery) Unique(unique bool) *CustomSummaryQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *CustomSummaryQuery) Order(o ...customsummary.OrderOption) *CustomSummaryQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryUser chains the current query on the "user" edge.
func (_q *CustomSummaryQuery) QueryUser() *UserQuery {
	query := (&UserClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(customsummary.Table, customsummary.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, customsummary.UserTable, customsummary.UserColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryPaper chains the current query on the "paper" edge.
func (_q *CustomSummaryQuery) QueryPaper() *PaperMetadataQuery {
	query := (&PaperMetadataClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(customsummary.Table, customsummary.FieldID, selector),
			sqlgraph.To(papermetadata.Table, papermetadata.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, customsummary.PaperTable, customsummary.PaperColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryPrompt chains the current query on the "prompt" edge.
func (_q *CustomSummaryQuery) QueryPrompt() *PromptQuery {
	query := (&PromptClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(customsummary.Table, customsummary.FieldID, selector),
			sqlgraph.To(prompt.Table, prompt.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, customsummary.PromptTable, customsummary.PromptColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CustomSummary entity from the query.
// Returns a *NotFoundError when no CustomSummary was found.
func (_q *CustomSummaryQuery) First(ctx context.Context) (*CustomSummary, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{customsummary.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *CustomSummaryQuery) FirstX(ctx context.Context) *CustomSummary {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CustomSummary ID from the query.
// Returns a *NotFoundError when no CustomSummary ID was found.
func (_q *CustomSummaryQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{customsummary.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *CustomSummaryQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CustomSummary entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CustomSummary entity is found.
// Returns a *NotFoundError when no CustomSummary entities are found.
func (_q *CustomSummaryQuery) Only(ctx context.Context) (*CustomSummary, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{customsummary.Label}
	default:
		return nil, &NotSingularError{customsummary.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *CustomSummaryQuery) OnlyX(ctx context.Context) *CustomSummary {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CustomSummary ID in the query.
// Returns a *NotSingularError when more than one CustomSummary ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *CustomSummaryQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{customsummary.Label}
	default:
		err = &NotSingularError{customsummary.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *CustomSummaryQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CustomSummaries.
func (_q *CustomSummaryQuery) All(ctx context.Context) ([]*CustomSummary, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CustomSummary, *CustomSummaryQuery]()
	return withInterceptors[[]*CustomSummary](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *CustomSummaryQuery) AllX(ctx context.Context) []*CustomSummary {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CustomSummary IDs.
func (_q *CustomSummaryQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(customsummary.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *CustomSummaryQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *CustomSummaryQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*CustomSummaryQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *CustomSummaryQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *CustomSummaryQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *CustomSummaryQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CustomSummaryQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *CustomSummaryQuery) Clone() *CustomSummaryQuery {
	if _q == nil {
		return nil
	}
	return &CustomSummaryQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]customsummary.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.CustomSummary{}, _q.predicates...),
		withUser:   _q.withUser.Clone(),
		withPaper:  _q.withPaper.Clone(),
		withPrompt: _q.withPrompt.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithUser tells the query-builder to eager-load the nodes that are connected to
// the "user" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CustomSummaryQuery) WithUser(opts ...func(*UserQuery)) *CustomSummaryQuery {
	query := (&UserClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withUser = query
	return _q
}

// WithPaper tells the query-builder to eager-load the nodes that are connected to
// the "paper" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CustomSummaryQuery) WithPaper(opts ...func(*PaperMetadataQuery)) *CustomSummaryQuery {
	query := (&PaperMetadataClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPaper = query
	return _q
}

// WithPrompt tells the query-builder to eager-load the nodes that are connected to
// the "prompt" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CustomSummaryQuery) WithPrompt(opts ...func(*PromptQuery)) *CustomSummaryQuery {
	query := (&PromptClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPrompt = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.CustomSummary.Query().
//		GroupBy(customsummary.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *CustomSummaryQuery) GroupBy(field string, fields ...string) *CustomSummaryGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CustomSummaryGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = customsummary.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//	}
//
//	client.CustomSummary.Query().
//		Select(customsummary.FieldUserID).
//		Scan(ctx, &v)
func (_q *CustomSummaryQuery) Select(fields ...string) *CustomSummarySelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &CustomSummarySelect{CustomSummaryQuery: _q}
	sbuild.label = customsummary.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CustomSummarySelect configured with the given aggregations.
func (_q *CustomSummaryQuery) Aggregate(fns ...AggregateFunc) *CustomSummarySelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *CustomSummaryQuery) prepareQuery(ctx context.Context) error {
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
		if !customsummary.ValidColumn(f) {
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

func (_q *CustomSummaryQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CustomSummary, error) {
	var (
		nodes       = []*CustomSummary{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withUser != nil,
			_q.withPaper != nil,
			_q.withPrompt != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CustomSummary).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CustomSummary{config: _q.config}
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
	if query := _q.withUser; query != nil {
		if err := _q.loadUser(ctx, query, nodes, nil,
			func(n *CustomSummary, e *User) { n.Edges.User = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withPaper; query != nil {
		if err := _q.loadPaper(ctx, query, nodes, nil,
			func(n *CustomSummary, e *PaperMetadata) { n.Edges.Paper = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withPrompt; query != nil {
		if err := _q.loadPrompt(ctx, query, nodes, nil,
			func(n *CustomSummary, e *Prompt) { n.Edges.Prompt = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *CustomSummaryQuery) loadUser(ctx context.Context, query *UserQuery, nodes []*CustomSummary, init func(*CustomSummary), assign func(*CustomSummary, *User)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*CustomSummary)
	for i := range nodes {
		fk := nodes[i].UserID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(user.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "user_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *CustomSummaryQuery) loadPaper(ctx context.Context, query *PaperMetadataQuery, nodes []*CustomSummary, init func(*CustomSummary), assign func(*CustomSummary, *PaperMetadata)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*CustomSummary)
	for i := range nodes {
		fk := nodes[i].PaperID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(papermetadata.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "paper_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *CustomSummaryQuery) loadPrompt(ctx context.Context, query *PromptQuery, nodes []*CustomSummary, init func(*CustomSummary), assign func(*CustomSummary, *Prompt)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*CustomSummary)
	for i := range nodes {
		fk := nodes[i].PromptID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(prompt.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "prompt_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *CustomSummaryQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *CustomSummaryQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(customsummary.Table, customsummary.Columns, sqlgraph.NewFieldSpec(customsummary.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, customsummary.FieldID)
		for i := range fields {
			if fields[i] != customsummary.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withUser != nil {
			_spec.Node.AddColumnOnce(customsummary.FieldUserID)
		}
		if _q.withPaper != nil {
			_spec.Node.AddColumnOnce(customsummary.FieldPaperID)
		}
		if _q.withPrompt != nil {
			_spec.Node.AddColumnOnce(customsummary.FieldPromptID)
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

func (_q *CustomSummaryQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(customsummary.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = customsummary.Columns
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

// CustomSummaryGroupBy is the group-by builder for CustomSummary entities.
type CustomSummaryGroupBy struct {
	selector
	build *CustomSummaryQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *CustomSummaryGroupBy) Aggregate(fns ...AggregateFunc) *CustomSummaryGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *CustomSummaryGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CustomSummaryQuery, *CustomSummaryGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *CustomSummaryGroupBy) sqlScan(ctx context.Context, root *CustomSummaryQuery, v any) error {
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

// CustomSummarySelect is the builder for selecting fields of CustomSummary entities.
type CustomSummarySelect struct {
	*CustomSummaryQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *CustomSummarySelect) Aggregate(fns ...AggregateFunc) *CustomSummarySelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *CustomSummarySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CustomSummaryQuery, *CustomSummarySelect](ctx, _s.CustomSummaryQuery, _s, _s.inters, v)
}

func (_s *CustomSummarySelect) sqlScan(ctx context.Context, root *CustomSummaryQuery, v any) error {
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
