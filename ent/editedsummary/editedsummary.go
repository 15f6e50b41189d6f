// Code generated by ent, DO NOT EDIT.

package editedsummary

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the editedsummary type in the database.
	Label = "edited_summary"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "edited_summary_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldDefaultSummaryID holds the string denoting the default_summary_id field in the database.
	FieldDefaultSummaryID = "default_summary_id"
	// FieldCustomSummaryID holds the string denoting the custom_summary_id field in the database.
	FieldCustomSummaryID = "custom_summary_id"
	// FieldBody holds the string denoting the body field in the database.
	FieldBody = "body"
	// FieldOnePoint holds the string denoting the one_point field in the database.
	FieldOnePoint = "one_point"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// UserFieldID holds the string denoting the ID field of the User.
	UserFieldID = "user_id"
	// Table holds the table name of the editedsummary in the database.
	Table = "edited_summaries"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "edited_summaries"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
)

// Columns holds all SQL columns for editedsummary fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldDefaultSummaryID,
	FieldCustomSummaryID,
	FieldBody,
	FieldOnePoint,
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

// OrderOption defines the ordering options for the EditedSummary queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByDefaultSummaryID orders the results by the default_summary_id field.
func ByDefaultSummaryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefaultSummaryID, opts...).ToFunc()
}

// ByCustomSummaryID orders the results by the custom_summary_id field.
func ByCustomSummaryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomSummaryID, opts...).ToFunc()
}

// ByBody orders the results by the body field.
func ByBody(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBody, opts...).ToFunc()
}

// ByOnePoint orders the results by the one_point field.
func ByOnePoint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOnePoint, opts...).ToFunc()
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
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, UserFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
	)
}
