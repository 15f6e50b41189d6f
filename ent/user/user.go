// Code generated by ent, DO NOT EDIT.

package user

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the user type in the database.
	Label = "user"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "user_id"
	// FieldUsername holds the string denoting the username field in the database.
	FieldUsername = "username"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldPoints holds the string denoting the points field in the database.
	FieldPoints = "points"
	// FieldSelectedCharacter holds the string denoting the selected_character field in the database.
	FieldSelectedCharacter = "selected_character"
	// FieldAffinitySakura holds the string denoting the affinity_sakura field in the database.
	FieldAffinitySakura = "affinity_sakura"
	// FieldAffinityMiyabi holds the string denoting the affinity_miyabi field in the database.
	FieldAffinityMiyabi = "affinity_miyabi"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgePaperLinks holds the string denoting the paper_links edge name in mutations.
	EdgePaperLinks = "paper_links"
	// EdgeCustomSummaries holds the string denoting the custom_summaries edge name in mutations.
	EdgeCustomSummaries = "custom_summaries"
	// EdgeEditedSummaries holds the string denoting the edited_summaries edge name in mutations.
	EdgeEditedSummaries = "edited_summaries"
	// EdgePrompts holds the string denoting the prompts edge name in mutations.
	EdgePrompts = "prompts"
	// EdgePromptGroups holds the string denoting the prompt_groups edge name in mutations.
	EdgePromptGroups = "prompt_groups"
	// EdgeResearchSessions holds the string denoting the research_sessions edge name in mutations.
	EdgeResearchSessions = "research_sessions"
	// EdgeChatSessions holds the string denoting the chat_sessions edge name in mutations.
	EdgeChatSessions = "chat_sessions"
	// UserPaperLinkFieldID holds the string denoting the ID field of the UserPaperLink.
	UserPaperLinkFieldID = "user_paper_link_id"
	// CustomSummaryFieldID holds the string denoting the ID field of the CustomSummary.
	CustomSummaryFieldID = "custom_summary_id"
	// EditedSummaryFieldID holds the string denoting the ID field of the EditedSummary.
	EditedSummaryFieldID = "edited_summary_id"
	// PromptFieldID holds the string denoting the ID field of the Prompt.
	PromptFieldID = "prompt_id"
	// PromptGroupFieldID holds the string denoting the ID field of the PromptGroup.
	PromptGroupFieldID = "prompt_group_id"
	// ResearchSessionFieldID holds the string denoting the ID field of the ResearchSession.
	ResearchSessionFieldID = "research_session_id"
	// PaperChatSessionFieldID holds the string denoting the ID field of the PaperChatSession.
	PaperChatSessionFieldID = "paper_chat_session_id"
	// Table holds the table name of the user in the database.
	Table = "users"
	// PaperLinksTable is the table that holds the paper_links relation/edge.
	PaperLinksTable = "user_paper_links"
	// PaperLinksInverseTable is the table name for the UserPaperLink entity.
	// It exists in this package in order to avoid circular dependency with the "userpaperlink" package.
	PaperLinksInverseTable = "user_paper_links"
	// PaperLinksColumn is the table column denoting the paper_links relation/edge.
	PaperLinksColumn = "user_id"
	// CustomSummariesTable is the table that holds the custom_summaries relation/edge.
	CustomSummariesTable = "custom_summaries"
	// CustomSummariesInverseTable is the table name for the CustomSummary entity.
	// It exists in this package in order to avoid circular dependency with the "customsummary" package.
	CustomSummariesInverseTable = "custom_summaries"
	// CustomSummariesColumn is the table column denoting the custom_summaries relation/edge.
	CustomSummariesColumn = "user_id"
	// EditedSummariesTable is the table that holds the edited_summaries relation/edge.
	EditedSummariesTable = "edited_summaries"
	// EditedSummariesInverseTable is the table name for the EditedSummary entity.
	// It exists in this package in order to avoid circular dependency with the "editedsummary" package.
	EditedSummariesInverseTable = "edited_summaries"
	// EditedSummariesColumn is the table column denoting the edited_summaries relation/edge.
	EditedSummariesColumn = "user_id"
	// PromptsTable is the table that holds the prompts relation/edge.
	PromptsTable = "prompts"
	// PromptsInverseTable is the table name for the Prompt entity.
	// It exists in this package in order to avoid circular dependency with the "prompt" package.
	PromptsInverseTable = "prompts"
	// PromptsColumn is the table column denoting the prompts relation/edge.
	PromptsColumn = "owner_user_id"
	// PromptGroupsTable is the table that holds the prompt_groups relation/edge.
	PromptGroupsTable = "prompt_groups"
	// PromptGroupsInverseTable is the table name for the PromptGroup entity.
	// It exists in this package in order to avoid circular dependency with the "promptgroup" package.
	PromptGroupsInverseTable = "prompt_groups"
	// PromptGroupsColumn is the table column denoting the prompt_groups relation/edge.
	PromptGroupsColumn = "user_id"
	// ResearchSessionsTable is the table that holds the research_sessions relation/edge.
	ResearchSessionsTable = "research_sessions"
	// ResearchSessionsInverseTable is the table name for the ResearchSession entity.
	// It exists in this package in order to avoid circular dependency with the "researchsession" package.
	ResearchSessionsInverseTable = "research_sessions"
	// ResearchSessionsColumn is the table column denoting the research_sessions relation/edge.
	ResearchSessionsColumn = "user_id"
	// ChatSessionsTable is the table that holds the chat_sessions relation/edge.
	ChatSessionsTable = "paper_chat_sessions"
	// ChatSessionsInverseTable is the table name for the PaperChatSession entity.
	// It exists in this package in order to avoid circular dependency with the "paperchatsession" package.
	ChatSessionsInverseTable = "paper_chat_sessions"
	// ChatSessionsColumn is the table column denoting the chat_sessions relation/edge.
	ChatSessionsColumn = "user_id"
)

// Columns holds all SQL columns for user fields.
var Columns = []string{
	FieldID,
	FieldUsername,
	FieldDisplayName,
	FieldPoints,
	FieldSelectedCharacter,
	FieldAffinitySakura,
	FieldAffinityMiyabi,
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
	// DefaultPoints holds the default value on creation for the "points" field.
	DefaultPoints int
	// DefaultAffinitySakura holds the default value on creation for the "affinity_sakura" field.
	DefaultAffinitySakura int
	// DefaultAffinityMiyabi holds the default value on creation for the "affinity_miyabi" field.
	DefaultAffinityMiyabi int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// SelectedCharacter defines the type for the "selected_character" enum field.
type SelectedCharacter string

// SelectedCharacterNone is the default value of the SelectedCharacter enum.
const DefaultSelectedCharacter = SelectedCharacterNone

// SelectedCharacter values.
const (
	SelectedCharacterNone   SelectedCharacter = "none"
	SelectedCharacterSakura SelectedCharacter = "sakura"
	SelectedCharacterMiyabi SelectedCharacter = "miyabi"
)

func (sc SelectedCharacter) String() string {
	return string(sc)
}

// SelectedCharacterValidator is a validator for the "selected_character" field enum values. It is called by the builders before save.
func SelectedCharacterValidator(sc SelectedCharacter) error {
	switch sc {
	case SelectedCharacterNone, SelectedCharacterSakura, SelectedCharacterMiyabi:
		return nil
	default:
		return fmt.Errorf("user: invalid enum value for selected_character field: %q", sc)
	}
}

// OrderOption defines the ordering options for the User queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUsername orders the results by the username field.
func ByUsername(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsername, opts...).ToFunc()
}

// ByDisplayName orders the results by the display_name field.
func ByDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayName, opts...).ToFunc()
}

// ByPoints orders the results by the points field.
func ByPoints(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPoints, opts...).ToFunc()
}

// BySelectedCharacter orders the results by the selected_character field.
func BySelectedCharacter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSelectedCharacter, opts...).ToFunc()
}

// ByAffinitySakura orders the results by the affinity_sakura field.
func ByAffinitySakura(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAffinitySakura, opts...).ToFunc()
}

// ByAffinityMiyabi orders the results by the affinity_miyabi field.
func ByAffinityMiyabi(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAffinityMiyabi, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByPaperLinksCount orders the results by paper_links count.
func ByPaperLinksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPaperLinksStep(), opts...)
	}
}

// ByPaperLinks orders the results by paper_links terms.
func ByPaperLinks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPaperLinksStep(), append([]sql.OrderTerm{term}, terms...)...)
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

// ByEditedSummariesCount orders the results by edited_summaries count.
func ByEditedSummariesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEditedSummariesStep(), opts...)
	}
}

// ByEditedSummaries orders the results by edited_summaries terms.
func ByEditedSummaries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEditedSummariesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPromptsCount orders the results by prompts count.
func ByPromptsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPromptsStep(), opts...)
	}
}

// ByPrompts orders the results by prompts terms.
func ByPrompts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPromptsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPromptGroupsCount orders the results by prompt_groups count.
func ByPromptGroupsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPromptGroupsStep(), opts...)
	}
}

// ByPromptGroups orders the results by prompt_groups terms.
func ByPromptGroups(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPromptGroupsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByResearchSessionsCount orders the results by research_sessions count.
func ByResearchSessionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newResearchSessionsStep(), opts...)
	}
}

// ByResearchSessions orders the results by research_sessions terms.
func ByResearchSessions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newResearchSessionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByChatSessionsCount orders the results by chat_sessions count.
func ByChatSessionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChatSessionsStep(), opts...)
	}
}

// ByChatSessions orders the results by chat_sessions terms.
func ByChatSessions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChatSessionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPaperLinksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PaperLinksInverseTable, UserPaperLinkFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PaperLinksTable, PaperLinksColumn),
	)
}
func newCustomSummariesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CustomSummariesInverseTable, CustomSummaryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CustomSummariesTable, CustomSummariesColumn),
	)
}
func newEditedSummariesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EditedSummariesInverseTable, EditedSummaryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EditedSummariesTable, EditedSummariesColumn),
	)
}
func newPromptsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PromptsInverseTable, PromptFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PromptsTable, PromptsColumn),
	)
}
func newPromptGroupsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PromptGroupsInverseTable, PromptGroupFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PromptGroupsTable, PromptGroupsColumn),
	)
}
func newResearchSessionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ResearchSessionsInverseTable, ResearchSessionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ResearchSessionsTable, ResearchSessionsColumn),
	)
}
func newChatSessionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChatSessionsInverseTable, PaperChatSessionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChatSessionsTable, ChatSessionsColumn),
	)
}
