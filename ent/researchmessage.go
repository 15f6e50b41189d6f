// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rainzero1960/paperscout/ent/researchmessage"
	"github.com/rainzero1960/paperscout/ent/researchsession"
)

// ResearchMessage is the model entity for the ResearchMessage schema.
type ResearchMessage struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Role holds the value of the "role" field.
	Role researchmessage.Role `json:"role,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// IsIntermediate holds the value of the "is_intermediate" field.
	IsIntermediate bool `json:"is_intermediate,omitempty"`
	// MetadataJSON holds the value of the "metadata_json" field.
	MetadataJSON map[string]interface{} `json:"metadata_json,omitempty"`
	// Creation order within the session
	Sequence int `json:"sequence,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ResearchMessageQuery when eager-loading is set.
	Edges        ResearchMessageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ResearchMessageEdges holds the relations/edges for other nodes in the graph.
type ResearchMessageEdges struct {
	// Session holds the value of the session edge.
	Session *ResearchSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ResearchMessageEdges) SessionOrErr() (*ResearchSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: researchsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ResearchMessage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case researchmessage.FieldMetadataJSON:
			values[i] = new([]byte)
		case researchmessage.FieldIsIntermediate:
			values[i] = new(sql.NullBool)
		case researchmessage.FieldSequence:
			values[i] = new(sql.NullInt64)
		case researchmessage.FieldID, researchmessage.FieldSessionID, researchmessage.FieldRole, researchmessage.FieldContent:
			values[i] = new(sql.NullString)
		case researchmessage.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ResearchMessage fields.
func (_m *ResearchMessage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case researchmessage.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case researchmessage.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case researchmessage.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = researchmessage.Role(value.String)
			}
		case researchmessage.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case researchmessage.FieldIsIntermediate:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_intermediate", values[i])
			} else if value.Valid {
				_m.IsIntermediate = value.Bool
			}
		case researchmessage.FieldMetadataJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MetadataJSON); err != nil {
					return fmt.Errorf("unmarshal field metadata_json: %w", err)
				}
			}
		case researchmessage.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = int(value.Int64)
			}
		case researchmessage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ResearchMessage.
// This includes values selected through modifiers, order, etc.
func (_m *ResearchMessage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the ResearchMessage entity.
func (_m *ResearchMessage) QuerySession() *ResearchSessionQuery {
	return NewResearchMessageClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this ResearchMessage.
// Note that you need to call ResearchMessage.Unwrap() before calling this method if this ResearchMessage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ResearchMessage) Update() *ResearchMessageUpdateOne {
	return NewResearchMessageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ResearchMessage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ResearchMessage) Unwrap() *ResearchMessage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ResearchMessage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ResearchMessage) String() string {
	var builder strings.Builder
	builder.WriteString("ResearchMessage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(fmt.Sprintf("%v", _m.Role))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("is_intermediate=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsIntermediate))
	builder.WriteString(", ")
	builder.WriteString("metadata_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.MetadataJSON))
	builder.WriteString(", ")
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ResearchMessages is a parsable slice of ResearchMessage.
type ResearchMessages []*ResearchMessage
