// Code generated by ent, DO NOT EDIT.

package prompt

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the prompt type in the database.
	Label = "prompt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "prompt_id"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldBody holds the string denoting the body field in the database.
	FieldBody = "body"
	// FieldOwnerUserID holds the string denoting the owner_user_id field in the database.
	FieldOwnerUserID = "owner_user_id"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeOwner holds the string denoting the owner edge name in mutations.
	EdgeOwner = "owner"
	// EdgeCustomSummaries holds the string denoting the custom_summaries edge name in mutations.
	EdgeCustomSummaries = "custom_summaries"
	// UserFieldID holds the string denoting the ID field of the User.
	UserFieldID = "user_id"
	// CustomSummaryFieldID holds the string denoting the ID field of the CustomSummary.
	CustomSummaryFieldID = "custom_summary_id"
	// Table holds the table name of the prompt in the database.
	Table = "prompts"
	// OwnerTable is the table that holds the owner relation/edge.
	OwnerTable = "prompts"
	// OwnerInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	OwnerInverseTable = "users"
	// OwnerColumn is the table column denoting the owner relation/edge.
	OwnerColumn = "owner_user_id"
	// CustomSummariesTable is the table that holds the custom_summaries relation/edge.
	CustomSummariesTable = "custom_summaries"
	// CustomSummariesInverseTable is the table name for the CustomSummary entity.
	// It exists in this package in order to avoid circular dependency with the "customsummary" package.
	CustomSummariesInverseTable = "custom_summaries"
	// CustomSummariesColumn is the table column denoting the custom_summaries relation/edge.
	CustomSummariesColumn = "prompt_id"
)

// Columns holds all SQL columns for prompt fields.
var Columns = []string{
	FieldID,
	FieldType,
	FieldName,
	FieldCategory,
	FieldBody,
	FieldOwnerUserID,
	FieldIsActive,
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
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypePaperSummary        Type = "paper_summary"
	TypeCharacterPersona    Type = "character_persona"
	TypeTagging             Type = "tagging"
	TypePaperChatSystem     Type = "paper_chat_system"
	TypeRagSystem           Type = "rag_system"
	TypeResearchCoordinator Type = "research_coordinator"
	TypeResearchPlanner     Type = "research_planner"
	TypeResearchSupervisor  Type = "research_supervisor"
	TypeResearchAgent       Type = "research_agent"
	TypeResearchSummary     Type = "research_summary"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypePaperSummary, TypeCharacterPersona, TypeTagging, TypePaperChatSystem, TypeRagSystem, TypeResearchCoordinator, TypeResearchPlanner, TypeResearchSupervisor, TypeResearchAgent, TypeResearchSummary:
		return nil
	default:
		return fmt.Errorf("prompt: invalid enum value for type field: %q", _type)
	}
}

// OrderOption defines the ordering options for the Prompt queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByBody orders the results by the body field.
func ByBody(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBody, opts...).ToFunc()
}

// ByOwnerUserID orders the results by the owner_user_id field.
func ByOwnerUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerUserID, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByOwnerField orders the results by owner field.
func ByOwnerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOwnerStep(), sql.OrderByField(field, opts...))
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
func newOwnerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OwnerInverseTable, UserFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
	)
}
func newCustomSummariesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CustomSummariesInverseTable, CustomSummaryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CustomSummariesTable, CustomSummariesColumn),
	)
}
