// Code generated by ent, DO NOT EDIT.

package promptgroup

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the promptgroup type in the database.
	Label = "prompt_group"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "prompt_group_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldCoordinatorPromptID holds the string denoting the coordinator_prompt_id field in the database.
	FieldCoordinatorPromptID = "coordinator_prompt_id"
	// FieldPlannerPromptID holds the string denoting the planner_prompt_id field in the database.
	FieldPlannerPromptID = "planner_prompt_id"
	// FieldSupervisorPromptID holds the string denoting the supervisor_prompt_id field in the database.
	FieldSupervisorPromptID = "supervisor_prompt_id"
	// FieldAgentPromptID holds the string denoting the agent_prompt_id field in the database.
	FieldAgentPromptID = "agent_prompt_id"
	// FieldSummaryPromptID holds the string denoting the summary_prompt_id field in the database.
	FieldSummaryPromptID = "summary_prompt_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// UserFieldID holds the string denoting the ID field of the User.
	UserFieldID = "user_id"
	// Table holds the table name of the promptgroup in the database.
	Table = "prompt_groups"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "prompt_groups"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
)

// Columns holds all SQL columns for promptgroup fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldUserID,
	FieldCategory,
	FieldCoordinatorPromptID,
	FieldPlannerPromptID,
	FieldSupervisorPromptID,
	FieldAgentPromptID,
	FieldSummaryPromptID,
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

// Category defines the type for the "category" enum field.
type Category string

// Category values.
const (
	CategoryDeepresearch Category = "deepresearch"
	CategoryDeeprag      Category = "deeprag"
)

func (c Category) String() string {
	return string(c)
}

// CategoryValidator is a validator for the "category" field enum values. It is called by the builders before save.
func CategoryValidator(c Category) error {
	switch c {
	case CategoryDeepresearch, CategoryDeeprag:
		return nil
	default:
		return fmt.Errorf("promptgroup: invalid enum value for category field: %q", c)
	}
}

// OrderOption defines the ordering options for the PromptGroup queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByCoordinatorPromptID orders the results by the coordinator_prompt_id field.
func ByCoordinatorPromptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoordinatorPromptID, opts...).ToFunc()
}

// ByPlannerPromptID orders the results by the planner_prompt_id field.
func ByPlannerPromptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlannerPromptID, opts...).ToFunc()
}

// BySupervisorPromptID orders the results by the supervisor_prompt_id field.
func BySupervisorPromptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupervisorPromptID, opts...).ToFunc()
}

// ByAgentPromptID orders the results by the agent_prompt_id field.
func ByAgentPromptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentPromptID, opts...).ToFunc()
}

// BySummaryPromptID orders the results by the summary_prompt_id field.
func BySummaryPromptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummaryPromptID, opts...).ToFunc()
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
