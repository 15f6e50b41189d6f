// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rainzero1960/paperscout/ent/customsummary"
	"github.com/rainzero1960/paperscout/ent/papermetadata"
	"github.com/rainzero1960/paperscout/ent/prompt"
	"github.com/rainzero1960/paperscout/ent/user"
)

// CustomSummary is the model entity for the CustomSummary schema.
type CustomSummary struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// PaperID holds the value of the "paper_id" field.
	PaperID string `json:"paper_id,omitempty"`
	// PromptID holds the value of the "prompt_id" field.
	PromptID string `json:"prompt_id,omitempty"`
	// LlmProvider holds the value of the "llm_provider" field.
	LlmProvider string `json:"llm_provider,omitempty"`
	// LlmModel holds the value of the "llm_model" field.
	LlmModel string `json:"llm_model,omitempty"`
	// Character holds the value of the "character" field.
	Character customsummary.Character `json:"character,omitempty"`
	// Affinity holds the value of the "affinity" field.
	Affinity int `json:"affinity,omitempty"`
	// Body holds the value of the "body" field.
	Body string `json:"body,omitempty"`
	// OnePoint holds the value of the "one_point" field.
	OnePoint string `json:"one_point,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CustomSummaryQuery when eager-loading is set.
	Edges        CustomSummaryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CustomSummaryEdges holds the relations/edges for other nodes in the graph.
type CustomSummaryEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// Paper holds the value of the paper edge.
	Paper *PaperMetadata `json:"paper,omitempty"`
	// Prompt holds the value of the prompt edge.
	Prompt *Prompt `json:"prompt,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CustomSummaryEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// PaperOrErr returns the Paper value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CustomSummaryEdges) PaperOrErr() (*PaperMetadata, error) {
	if e.Paper != nil {
		return e.Paper, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: papermetadata.Label}
	}
	return nil, &NotLoadedError{edge: "paper"}
}

// PromptOrErr returns the Prompt value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CustomSummaryEdges) PromptOrErr() (*Prompt, error) {
	if e.Prompt != nil {
		return e.Prompt, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: prompt.Label}
	}
	return nil, &NotLoadedError{edge: "prompt"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CustomSummary) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case customsummary.FieldAffinity:
			values[i] = new(sql.NullInt64)
		case customsummary.FieldID, customsummary.FieldUserID, customsummary.FieldPaperID, customsummary.FieldPromptID, customsummary.FieldLlmProvider, customsummary.FieldLlmModel, customsummary.FieldCharacter, customsummary.FieldBody, customsummary.FieldOnePoint:
			values[i] = new(sql.NullString)
		case customsummary.FieldCreatedAt, customsummary.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CustomSummary fields.
func (_m *CustomSummary) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case customsummary.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case customsummary.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case customsummary.FieldPaperID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field paper_id", values[i])
			} else if value.Valid {
				_m.PaperID = value.String
			}
		case customsummary.FieldPromptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_id", values[i])
			} else if value.Valid {
				_m.PromptID = value.String
			}
		case customsummary.FieldLlmProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field llm_provider", values[i])
			} else if value.Valid {
				_m.LlmProvider = value.String
			}
		case customsummary.FieldLlmModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field llm_model", values[i])
			} else if value.Valid {
				_m.LlmModel = value.String
			}
		case customsummary.FieldCharacter:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field character", values[i])
			} else if value.Valid {
				_m.Character = customsummary.Character(value.String)
			}
		case customsummary.FieldAffinity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field affinity", values[i])
			} else if value.Valid {
				_m.Affinity = int(value.Int64)
			}
		case customsummary.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case customsummary.FieldOnePoint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field one_point", values[i])
			} else if value.Valid {
				_m.OnePoint = value.String
			}
		case customsummary.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case customsummary.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CustomSummary.
// This includes values selected through modifiers, order, etc.
func (_m *CustomSummary) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the CustomSummary entity.
func (_m *CustomSummary) QueryUser() *UserQuery {
	return NewCustomSummaryClient(_m.config).QueryUser(_m)
}

// QueryPaper queries the "paper" edge of the CustomSummary entity.
func (_m *CustomSummary) QueryPaper() *PaperMetadataQuery {
	return NewCustomSummaryClient(_m.config).QueryPaper(_m)
}

// QueryPrompt queries the "prompt" edge of the CustomSummary entity.
func (_m *CustomSummary) QueryPrompt() *PromptQuery {
	return NewCustomSummaryClient(_m.config).QueryPrompt(_m)
}

// Update returns a builder for updating this CustomSummary.
// Note that you need to call CustomSummary.Unwrap() before calling this method if this CustomSummary
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CustomSummary) Update() *CustomSummaryUpdateOne {
	return NewCustomSummaryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CustomSummary entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CustomSummary) Unwrap() *CustomSummary {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CustomSummary is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CustomSummary) String() string {
	var builder strings.Builder
	builder.WriteString("CustomSummary(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("paper_id=")
	builder.WriteString(_m.PaperID)
	builder.WriteString(", ")
	builder.WriteString("prompt_id=")
	builder.WriteString(_m.PromptID)
	builder.WriteString(", ")
	builder.WriteString("llm_provider=")
	builder.WriteString(_m.LlmProvider)
	builder.WriteString(", ")
	builder.WriteString("llm_model=")
	builder.WriteString(_m.LlmModel)
	builder.WriteString(", ")
	builder.WriteString("character=")
	builder.WriteString(fmt.Sprintf("%v", _m.Character))
	builder.WriteString(", ")
	builder.WriteString("affinity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Affinity))
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(_m.Body)
	builder.WriteString(", ")
	builder.WriteString("one_point=")
	builder.WriteString(_m.OnePoint)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CustomSummaries is a parsable slice of CustomSummary.
type CustomSummaries []*CustomSummary
