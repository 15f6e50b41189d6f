// Code generated by ent, DO NOT EDIT.

package papermetadata

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the papermetadata type in the database.
	Label = "paper_metadata"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "paper_id"
	// FieldExternalID holds the string denoting the external_id field in the database.
	FieldExternalID = "external_id"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldAuthors holds the string denoting the authors field in the database.
	FieldAuthors = "authors"
	// FieldAbstract holds the string denoting the abstract field in the database.
	FieldAbstract = "abstract"
	// FieldFullText holds the string denoting the full_text field in the database.
	FieldFullText = "full_text"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeDefaultSummaries holds the string denoting the default_summaries edge name in mutations.
	EdgeDefaultSummaries = "default_summaries"
	// EdgeCustomSummaries holds the string denoting the custom_summaries edge name in mutations.
	EdgeCustomSummaries = "custom_summaries"
	// EdgeUserLinks holds the string denoting the user_links edge name in mutations.
	EdgeUserLinks = "user_links"
	// DefaultSummaryFieldID holds the string denoting the ID field of the DefaultSummary.
	DefaultSummaryFieldID = "default_summary_id"
	// CustomSummaryFieldID holds the string denoting the ID field of the CustomSummary.
	CustomSummaryFieldID = "custom_summary_id"
	// UserPaperLinkFieldID holds the string denoting the ID field of the UserPaperLink.
	UserPaperLinkFieldID = "user_paper_link_id"
	// Table holds the table name of the papermetadata in the database.
	Table = "paper_metadata"
	// DefaultSummariesTable is the table that holds the default_summaries relation/edge.
	DefaultSummariesTable = "default_summaries"
	// DefaultSummariesInverseTable is the table name for the DefaultSummary entity.
	// It exists in this package in order to avoid circular dependency with the "defaultsummary" package.
	DefaultSummariesInverseTable = "default_summaries"
	// DefaultSummariesColumn is the table column denoting the default_summaries relation/edge.
	DefaultSummariesColumn = "paper_id"
	// CustomSummariesTable is the table that holds the custom_summaries relation/edge.
	CustomSummariesTable = "custom_summaries"
	// CustomSummariesInverseTable is the table name for the CustomSummary entity.
	// It exists in this package in order to avoid circular dependency with the "customsummary" package.
	CustomSummariesInverseTable = "custom_summaries"
	// CustomSummariesColumn is the table column denoting the custom_summaries relation/edge.
	CustomSummariesColumn = "paper_id"
	// UserLinksTable is the table that holds the user_links relation/edge.
	UserLinksTable = "user_paper_links"
	// UserLinksInverseTable is the table name for the UserPaperLink entity.
	// It exists in this package in order to avoid circular dependency with the "userpaperlink" package.
	UserLinksInverseTable = "user_paper_links"
	// UserLinksColumn is the table column denoting the user_links relation/edge.
	UserLinksColumn = "paper_id"
)

// Columns holds all SQL columns for papermetadata fields.
var Columns = []string{
	FieldID,
	FieldExternalID,
	FieldURL,
	FieldTitle,
	FieldAuthors,
	FieldAbstract,
	FieldFullText,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the PaperMetadata queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExternalID orders the results by the external_id field.
func ByExternalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalID, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByAuthors orders the results by the authors field.
func ByAuthors(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthors, opts...).ToFunc()
}

// ByAbstract orders the results by the abstract field.
func ByAbstract(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAbstract, opts...).ToFunc()
}

// ByFullText orders the results by the full_text field.
func ByFullText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullText, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDefaultSummariesCount orders the results by default_summaries count.
func ByDefaultSummariesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDefaultSummariesStep(), opts...)
	}
}

// ByDefaultSummaries orders the results by default_summaries terms.
func ByDefaultSummaries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDefaultSummariesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCustomSummariesCount orders the results by custom_summaries count.
func ByCustomSummariesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCustomSummariesStep(), opts...)
	}
}

// ByCustomSummaries orders the results by custom_summaries terms.
func ByCustomSummaries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCustomSummariesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByUserLinksCount orders the results by user_links count.
func ByUserLinksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newUserLinksStep(), opts...)
	}
}

// ByUserLinks orders the results by user_links terms.
func ByUserLinks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserLinksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDefaultSummariesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DefaultSummariesInverseTable, DefaultSummaryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DefaultSummariesTable, DefaultSummariesColumn),
	)
}
func newCustomSummariesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CustomSummariesInverseTable, CustomSummaryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CustomSummariesTable, CustomSummariesColumn),
	)
}
func newUserLinksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserLinksInverseTable, UserPaperLinkFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, UserLinksTable, UserLinksColumn),
	)
}
