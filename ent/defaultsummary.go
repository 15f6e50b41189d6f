// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rainzero1960/paperscout/ent/defaultsummary"
	"github.com/rainzero1960/paperscout/ent/papermetadata"
)

// DefaultSummary is the model entity for the DefaultSummary schema.
type DefaultSummary struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// PaperID holds the value of the "paper_id" field.
	PaperID string `json:"paper_id,omitempty"`
	// LlmProvider holds the value of the "llm_provider" field.
	LlmProvider string `json:"llm_provider,omitempty"`
	// LlmModel holds the value of the "llm_model" field.
	LlmModel string `json:"llm_model,omitempty"`
	// Character holds the value of the "character" field.
	Character defaultsummary.Character `json:"character,omitempty"`
	// Affinity holds the value of the "affinity" field.
	Affinity int `json:"affinity,omitempty"`
	// Summary markdown, or [PROCESSING_n] placeholder while in flight
	Body string `json:"body,omitempty"`
	// OnePoint holds the value of the "one_point" field.
	OnePoint string `json:"one_point,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DefaultSummaryQuery when eager-loading is set.
	Edges        DefaultSummaryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DefaultSummaryEdges holds the relations/edges for other nodes in the graph.
type DefaultSummaryEdges struct {
	// Paper holds the value of the paper edge.
	Paper *PaperMetadata `json:"paper,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PaperOrErr returns the Paper value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DefaultSummaryEdges) PaperOrErr() (*PaperMetadata, error) {
	if e.Paper != nil {
		return e.Paper, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: papermetadata.Label}
	}
	return nil, &NotLoadedError{edge: "paper"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DefaultSummary) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case defaultsummary.FieldAffinity:
			values[i] = new(sql.NullInt64)
		case defaultsummary.FieldID, defaultsummary.FieldPaperID, defaultsummary.FieldLlmProvider, defaultsummary.FieldLlmModel, defaultsummary.FieldCharacter, defaultsummary.FieldBody, defaultsummary.FieldOnePoint:
			values[i] = new(sql.NullString)
		case defaultsummary.FieldCreatedAt, defaultsummary.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DefaultSummary fields.
func (_m *DefaultSummary) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case defaultsummary.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case defaultsummary.FieldPaperID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field paper_id", values[i])
			} else if value.Valid {
				_m.PaperID = value.String
			}
		case defaultsummary.FieldLlmProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field llm_provider", values[i])
			} else if value.Valid {
				_m.LlmProvider = value.String
			}
		case defaultsummary.FieldLlmModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field llm_model", values[i])
			} else if value.Valid {
				_m.LlmModel = value.String
			}
		case defaultsummary.FieldCharacter:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field character", values[i])
			} else if value.Valid {
				_m.Character = defaultsummary.Character(value.String)
			}
		case defaultsummary.FieldAffinity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field affinity", values[i])
			} else if value.Valid {
				_m.Affinity = int(value.Int64)
			}
		case defaultsummary.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case defaultsummary.FieldOnePoint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field one_point", values[i])
			} else if value.Valid {
				_m.OnePoint = value.String
			}
		case defaultsummary.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case defaultsummary.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the DefaultSummary.
// This includes values selected through modifiers, order, etc.
func (_m *DefaultSummary) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPaper queries the "paper" edge of the DefaultSummary entity.
func (_m *DefaultSummary) QueryPaper() *PaperMetadataQuery {
	return NewDefaultSummaryClient(_m.config).QueryPaper(_m)
}

// Update returns a builder for updating this DefaultSummary.
// Note that you need to call DefaultSummary.Unwrap() before calling this method if this DefaultSummary
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DefaultSummary) Update() *DefaultSummaryUpdateOne {
	return NewDefaultSummaryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DefaultSummary entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DefaultSummary) Unwrap() *DefaultSummary {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DefaultSummary is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DefaultSummary) String() string {
	var builder strings.Builder
	builder.WriteString("DefaultSummary(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("paper_id=")
	builder.WriteString(_m.PaperID)
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

// DefaultSummaries is a parsable slice of DefaultSummary.
type DefaultSummaries []*DefaultSummary
