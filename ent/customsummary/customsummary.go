// Code generated by ent, DO NOT EDIT.

package customsummary

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the customsummary type in the database.
	Label = "custom_summary"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "custom_summary_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldPaperID holds the string denoting the paper_id field in the database.
	FieldPaperID = "paper_id"
	// FieldPromptID holds the string denoting the prompt_id field in the database.
	FieldPromptID = "prompt_id"
	// FieldLlmProvider holds the string denoting the llm_provider field in the database.
	FieldLlmProvider = "llm_provider"
	// FieldLlmModel holds the string denoting the llm_model field in the database.
	FieldLlmModel = "llm_model"
	// FieldCharacter holds the string denoting the character field in the database.
	FieldCharacter = "character"
	// FieldAffinity holds the string denoting the affinity field in the database.
	FieldAffinity = "affinity"
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
	// EdgePaper holds the string denoting the paper edge name in mutations.
	EdgePaper = "paper"
	// EdgePrompt holds the string denoting the prompt edge name in mutations.
	EdgePrompt = "prompt"
	// UserFieldID holds the string denoting the ID field of the User.
	UserFieldID = "user_id"
	// PaperMetadataFieldID holds the string denoting the ID field of the PaperMetadata.
	PaperMetadataFieldID = "paper_id"
	// PromptFieldID holds the string denoting the ID field of the Prompt.
	PromptFieldID = "prompt_id"
	// Table holds the table name of the customsummary in the database.
	Table = "custom_summaries"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "custom_summaries"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
	// PaperTable is the table that holds the paper relation/edge.
	PaperTable = "custom_summaries"
	// PaperInverseTable is the table name for the PaperMetadata entity.
	// It exists in this package in order to avoid circular dependency with the "papermetadata" package.
	PaperInverseTable = "paper_metadata"
	// PaperColumn is the table column denoting the paper relation/edge.
	PaperColumn = "paper_id"
	// PromptTable is the table that holds the prompt relation/edge.
	PromptTable = "custom_summaries"
	// PromptInverseTable is the table name for the Prompt entity.
	// It exists in this package in order to avoid circular dependency with the "prompt" package.
	PromptInverseTable = "prompts"
	// PromptColumn is the table column denoting the prompt relation/edge.
	PromptColumn = "prompt_id"
)

// Columns holds all SQL columns for customsummary fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldPaperID,
	FieldPromptID,
	FieldLlmProvider,
	FieldLlmModel,
	FieldCharacter,
	FieldAffinity,
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
	// DefaultAffinity holds the default value on creation for the "affinity" field.
	DefaultAffinity int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Character defines the type for the "character" enum field.
type Character string

// CharacterNone is the default value of the Character enum.
const DefaultCharacter = CharacterNone

// Character values.
const (
	CharacterNone   Character = "none"
	CharacterSakura Character = "sakura"
	CharacterMiyabi Character = "miyabi"
)

func (c Character) String() string {
	return string(c)
}

// CharacterValidator is a validator for the "character" field enum values. It is called by the builders before save.
func CharacterValidator(c Character) error {
	switch c {
	case CharacterNone, CharacterSakura, CharacterMiyabi:
		return nil
	default:
		return fmt.Errorf("customsummary: invalid enum value for character field: %q", c)
	}
}

// OrderOption defines the ordering options for the CustomSummary queries.
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

// ByPromptID orders the results by the prompt_id field.
func ByPromptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptID, opts...).ToFunc()
}

// ByLlmProvider orders the results by the llm_provider field.
func ByLlmProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmProvider, opts...).ToFunc()
}

// ByLlmModel orders the results by the llm_model field.
func ByLlmModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmModel, opts...).ToFunc()
}

// ByCharacter orders the results by the character field.
func ByCharacter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCharacter, opts...).ToFunc()
}

// ByAffinity orders the results by the affinity field.
func ByAffinity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAffinity, opts...).ToFunc()
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

// ByPaperField orders the results by paper field.
func ByPaperField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPaperStep(), sql.OrderByField(field, opts...))
	}
}

// ByPromptField orders the results by prompt field.
func ByPromptField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPromptStep(), sql.OrderByField(field, opts...))
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
func newPromptStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PromptInverseTable, PromptFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PromptTable, PromptColumn),
	)
}
