// Code generated by ent, DO NOT EDIT.

package userpaperlink

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the userpaperlink type in the database.
	Label = "user_paper_link"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "user_paper_link_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldPaperID holds the string denoting the paper_id field in the database.
	FieldPaperID = "paper_id"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldMemo holds the string denoting the memo field in the database.
	FieldMemo = "memo"
	// FieldSelectedDefaultSummaryID holds the string denoting the selected_default_summary_id field in the database.
	FieldSelectedDefaultSummaryID = "selected_default_summary_id"
	// FieldSelectedCustomSummaryID holds the string denoting the selected_custom_summary_id field in the database.
	FieldSelectedCustomSummaryID = "selected_custom_summary_id"
	// FieldLastAccessed holds the string denoting the last_accessed field in the database.
	FieldLastAccessed = "last_accessed"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// EdgePaper holds the string denoting the paper edge name in mutations.
	EdgePaper = "paper"
	// UserFieldID holds the string denoting the ID field of the User.
	UserFieldID = "user_id"
	// PaperMetadataFieldID holds the string denoting the ID field of the PaperMetadata.
	PaperMetadataFieldID = "paper_id"
	// Table holds the table name of the userpaperlink in the database.
	Table = "user_paper_links"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "user_paper_links"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
	// PaperTable is the table that holds the paper relation/edge.
	PaperTable = "user_paper_links"
	// PaperInverseTable is the table name for the PaperMetadata entity.
	// It exists in this package in order to avoid circular dependency with the "papermetadata" package.
	PaperInverseTable = "paper_metadata"
	// PaperColumn is the table column denoting the paper relation/edge.
	PaperColumn = "paper_id"
)

// Columns holds all SQL columns for userpaperlink fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldPaperID,
	FieldTags,
	FieldMemo,
	FieldSelectedDefaultSummaryID,
	FieldSelectedCustomSummaryID,
	FieldLastAccessed,
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

// OrderOption defines the ordering options for the UserPaperLink queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByPaperID orders the results by the paper_id field.
func ByPaperID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaperID, opts...).ToFunc()
}

// ByTags orders the results by the tags field.
func ByTags(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTags, opts...).ToFunc()
}

// ByMemo orders the results by the memo field.
func ByMemo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemo, opts...).ToFunc()
}

// BySelectedDefaultSummaryID orders the results by the selected_default_summary_id field.
func BySelectedDefaultSummaryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSelectedDefaultSummaryID, opts...).ToFunc()
}

// BySelectedCustomSummaryID orders the results by the selected_custom_summary_id field.
func BySelectedCustomSummaryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSelectedCustomSummaryID, opts...).ToFunc()
}

// ByLastAccessed orders the results by the last_accessed field.
func ByLastAccessed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAccessed, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}

// ByPaperField orders the results by paper field.
func ByPaperField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPaperStep(), sql.OrderByField(field, opts...))
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, UserFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
	)
}
func newPaperStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PaperInverseTable, PaperMetadataFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PaperTable, PaperColumn),
	)
}
