// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rainzero1960/paperscout/ent/user"
)

// User is the model entity for the User schema.
type User struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Username holds the value of the "username" field.
	Username string `json:"username,omitempty"`
	// DisplayName holds the value of the "display_name" field.
	DisplayName string `json:"display_name,omitempty"`
	// Points holds the value of the "points" field.
	Points int `json:"points,omitempty"`
	// SelectedCharacter holds the value of the "selected_character" field.
	SelectedCharacter user.SelectedCharacter `json:"selected_character,omitempty"`
	// Affinity level 0-4 with Sakura
	AffinitySakura int `json:"affinity_sakura,omitempty"`
	// Affinity level 0-4 with Miyabi
	AffinityMiyabi int `json:"affinity_miyabi,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UserQuery when eager-loading is set.
	Edges        UserEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UserEdges holds the relations/edges for other nodes in the graph.
type UserEdges struct {
	// PaperLinks holds the value of the paper_links edge.
	PaperLinks []*UserPaperLink `json:"paper_links,omitempty"`
	// CustomSummaries holds the value of the custom_summaries edge.
	CustomSummaries []*CustomSummary `json:"custom_summaries,omitempty"`
	// EditedSummaries holds the value of the edited_summaries edge.
	EditedSummaries []*EditedSummary `json:"edited_summaries,omitempty"`
	// Prompts holds the value of the prompts edge.
	Prompts []*Prompt `json:"prompts,omitempty"`
	// PromptGroups holds the value of the prompt_groups edge.
	PromptGroups []*PromptGroup `json:"prompt_groups,omitempty"`
	// ResearchSessions holds the value of the research_sessions edge.
	ResearchSessions []*ResearchSession `json:"research_sessions,omitempty"`
	// ChatSessions holds the value of the chat_sessions edge.
	ChatSessions []*PaperChatSession `json:"chat_sessions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [7]bool
}

// PaperLinksOrErr returns the PaperLinks value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) PaperLinksOrErr() ([]*UserPaperLink, error) {
	if e.loadedTypes[0] {
		return e.PaperLinks, nil
	}
	return nil, &NotLoadedError{edge: "paper_links"}
}

// CustomSummariesOrErr returns the CustomSummaries value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) CustomSummariesOrErr() ([]*CustomSummary, error) {
	if e.loadedTypes[1] {
		return e.CustomSummaries, nil
	}
	return nil, &NotLoadedError{edge: "custom_summaries"}
}

// EditedSummariesOrErr returns the EditedSummaries value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) EditedSummariesOrErr() ([]*EditedSummary, error) {
	if e.loadedTypes[2] {
		return e.EditedSummaries, nil
	}
	return nil, &NotLoadedError{edge: "edited_summaries"}
}

// PromptsOrErr returns the Prompts value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) PromptsOrErr() ([]*Prompt, error) {
	if e.loadedTypes[3] {
		return e.Prompts, nil
	}
	return nil, &NotLoadedError{edge: "prompts"}
}

// PromptGroupsOrErr returns the PromptGroups value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) PromptGroupsOrErr() ([]*PromptGroup, error) {
	if e.loadedTypes[4] {
		return e.PromptGroups, nil
	}
	return nil, &NotLoadedError{edge: "prompt_groups"}
}

// ResearchSessionsOrErr returns the ResearchSessions value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) ResearchSessionsOrErr() ([]*ResearchSession, error) {
	if e.loadedTypes[5] {
		return e.ResearchSessions, nil
	}
	return nil, &NotLoadedError{edge: "research_sessions"}
}

// ChatSessionsOrErr returns the ChatSessions value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) ChatSessionsOrErr() ([]*PaperChatSession, error) {
	if e.loadedTypes[6] {
		return e.ChatSessions, nil
	}
	return nil, &NotLoadedError{edge: "chat_sessions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*User) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case user.FieldPoints, user.FieldAffinitySakura, user.FieldAffinityMiyabi:
			values[i] = new(sql.NullInt64)
		case user.FieldID, user.FieldUsername, user.FieldDisplayName, user.FieldSelectedCharacter:
			values[i] = new(sql.NullString)
		case user.FieldCreatedAt, user.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the User fields.
func (_m *User) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case user.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case user.FieldUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username", values[i])
			} else if value.Valid {
				_m.Username = value.String
			}
		case user.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = value.String
			}
		case user.FieldPoints:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field points", values[i])
			} else if value.Valid {
				_m.Points = int(value.Int64)
			}
		case user.FieldSelectedCharacter:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field selected_character", values[i])
			} else if value.Valid {
				_m.SelectedCharacter = user.SelectedCharacter(value.String)
			}
		case user.FieldAffinitySakura:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field affinity_sakura", values[i])
			} else if value.Valid {
				_m.AffinitySakura = int(value.Int64)
			}
		case user.FieldAffinityMiyabi:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field affinity_miyabi", values[i])
			} else if value.Valid {
				_m.AffinityMiyabi = int(value.Int64)
			}
		case user.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case user.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the User.
// This includes values selected through modifiers, order, etc.
func (_m *User) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPaperLinks queries the "paper_links" edge of the User entity.
func (_m *User) QueryPaperLinks() *UserPaperLinkQuery {
	return NewUserClient(_m.config).QueryPaperLinks(_m)
}

// QueryCustomSummaries queries the "custom_summaries" edge of the User entity.
func (_m *User) QueryCustomSummaries() *CustomSummaryQuery {
	return NewUserClient(_m.config).QueryCustomSummaries(_m)
}

// QueryEditedSummaries queries the "edited_summaries" edge of the User entity.
func (_m *User) QueryEditedSummaries() *EditedSummaryQuery {
	return NewUserClient(_m.config).QueryEditedSummaries(_m)
}

// QueryPrompts queries the "prompts" edge of the User entity.
func (_m *User) QueryPrompts() *PromptQuery {
	return NewUserClient(_m.config).QueryPrompts(_m)
}

// QueryPromptGroups queries the "prompt_groups" edge of the User entity.
func (_m *User) QueryPromptGroups() *PromptGroupQuery {
	return NewUserClient(_m.config).QueryPromptGroups(_m)
}

// QueryResearchSessions queries the "research_sessions" edge of the User entity.
func (_m *User) QueryResearchSessions() *ResearchSessionQuery {
	return NewUserClient(_m.config).QueryResearchSessions(_m)
}

// QueryChatSessions queries the "chat_sessions" edge of the User entity.
func (_m *User) QueryChatSessions() *PaperChatSessionQuery {
	return NewUserClient(_m.config).QueryChatSessions(_m)
}

// Update returns a builder for updating this User.
// Note that you need to call User.Unwrap() before calling this method if this User
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *User) Update() *UserUpdateOne {
	return NewUserClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the User entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *User) Unwrap() *User {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: User is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *User) String() string {
	var builder strings.Builder
	builder.WriteString("User(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("username=")
	builder.WriteString(_m.Username)
	builder.WriteString(", ")
	builder.WriteString("display_name=")
	builder.WriteString(_m.DisplayName)
	builder.WriteString(", ")
	builder.WriteString("points=")
	builder.WriteString(fmt.Sprintf("%v", _m.Points))
	builder.WriteString(", ")
	builder.WriteString("selected_character=")
	builder.WriteString(fmt.Sprintf("%v", _m.SelectedCharacter))
	builder.WriteString(", ")
	builder.WriteString("affinity_sakura=")
	builder.WriteString(fmt.Sprintf("%v", _m.AffinitySakura))
	builder.WriteString(", ")
	builder.WriteString("affinity_miyabi=")
	builder.WriteString(fmt.Sprintf("%v", _m.AffinityMiyabi))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Users is a parsable slice of User.
type Users []*User
