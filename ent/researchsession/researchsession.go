// Code generated by ent, DO NOT EDIT.

package researchsession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the researchsession type in the database.
	Label = "research_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "research_session_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldProcessingStatus holds the string denoting the processing_status field in the database.
	FieldProcessingStatus = "processing_status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// EdgeMessages holds the string denoting the messages edge name in mutations.
	EdgeMessages = "messages"
	// UserFieldID holds the string denoting the ID field of the User.
	UserFieldID = "user_id"
	// ResearchMessageFieldID holds the string denoting the ID field of the ResearchMessage.
	ResearchMessageFieldID = "research_message_id"
	// Table holds the table name of the researchsession in the database.
	Table = "research_sessions"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "research_sessions"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
	// MessagesTable is the table that holds the messages relation/edge.
	MessagesTable = "research_messages"
	// MessagesInverseTable is the table name for the ResearchMessage entity.
	// It exists in this package in order to avoid circular dependency with the "researchmessage" package.
	MessagesInverseTable = "research_messages"
	// MessagesColumn is the table column denoting the messages relation/edge.
	MessagesColumn = "session_id"
)

// Columns holds all SQL columns for researchsession fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTitle,
	FieldCategory,
	FieldProcessingStatus,
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
	CategoryRag          Category = "rag"
)

func (c Category) String() string {
	return string(c)
}

// CategoryValidator is a validator for the "category" field enum values. It is called by the builders before save.
func CategoryValidator(c Category) error {
	switch c {
	case CategoryDeepresearch, CategoryDeeprag, CategoryRag:
		return nil
	default:
		return fmt.Errorf("researchsession: invalid enum value for category field: %q", c)
	}
}

// ProcessingStatus defines the type for the "processing_status" enum field.
type ProcessingStatus string

// ProcessingStatusPending is the default value of the ProcessingStatus enum.
const DefaultProcessingStatus = ProcessingStatusPending

// ProcessingStatus values.
const (
	ProcessingStatusPending           ProcessingStatus = "pending"
	ProcessingStatusCoordinator       ProcessingStatus = "coordinator"
	ProcessingStatusPlanning          ProcessingStatus = "planning"
	ProcessingStatusSupervising       ProcessingStatus = "supervising"
	ProcessingStatusAgentRunning      ProcessingStatus = "agent_running"
	ProcessingStatusTools             ProcessingStatus = "tools"
	ProcessingStatusSummarizing       ProcessingStatus = "summarizing"
	ProcessingStatusCompleted         ProcessingStatus = "completed"
	ProcessingStatusFailed            ProcessingStatus = "failed"
	ProcessingStatusUnknownCompletion ProcessingStatus = "unknown_completion"
)

func (ps ProcessingStatus) String() string {
	return string(ps)
}

// ProcessingStatusValidator is a validator for the "processing_status" field enum values. It is called by the builders before save.
func ProcessingStatusValidator(ps ProcessingStatus) error {
	switch ps {
	case ProcessingStatusPending, ProcessingStatusCoordinator, ProcessingStatusPlanning, ProcessingStatusSupervising, ProcessingStatusAgentRunning, ProcessingStatusTools, ProcessingStatusSummarizing, ProcessingStatusCompleted, ProcessingStatusFailed, ProcessingStatusUnknownCompletion:
		return nil
	default:
		return fmt.Errorf("researchsession: invalid enum value for processing_status field: %q", ps)
	}
}

// OrderOption defines the ordering options for the ResearchSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByProcessingStatus orders the results by the processing_status field.
func ByProcessingStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingStatus, opts...).ToFunc()
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

// ByMessagesCount orders the results by messages count.
func ByMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessagesStep(), opts...)
	}
}

// ByMessages orders the results by messages terms.
func ByMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, UserFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
	)
}
func newMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessagesInverseTable, ResearchMessageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
	)
}
