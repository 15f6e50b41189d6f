// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rainzero1960/paperscout/ent/paperchatsession"
	"github.com/rainzero1960/paperscout/ent/user"
)

// PaperChatSession is the model entity for the PaperChatSession schema.
type PaperChatSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// PaperID holds the value of the "paper_id" field.
	PaperID string `json:"paper_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// ProcessingStatus holds the value of the "processing_status" field.
	ProcessingStatus paperchatsession.ProcessingStatus `json:"processing_status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PaperChatSessionQuery when eager-loading is set.
	Edges        PaperChatSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PaperChatSessionEdges holds the relations/edges for other nodes in the graph.
type PaperChatSessionEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// Messages holds the value of the messages edge.
	Messages []*PaperChatMessage `json:"messages,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PaperChatSessionEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e PaperChatSessionEdges) MessagesOrErr() ([]*PaperChatMessage, error) {
	if e.loadedTypes[1] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PaperChatSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case paperchatsession.FieldID, paperchatsession.FieldUserID, paperchatsession.FieldPaperID, paperchatsession.FieldTitle, paperchatsession.FieldProcessingStatus:
			values[i] = new(sql.NullString)
		case paperchatsession.FieldCreatedAt, paperchatsession.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PaperChatSession fields.
func (_m *PaperChatSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case paperchatsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case paperchatsession.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case paperchatsession.FieldPaperID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field paper_id", values[i])
			} else if value.Valid {
				_m.PaperID = value.String
			}
		case paperchatsession.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case paperchatsession.FieldProcessingStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field processing_status", values[i])
			} else if value.Valid {
				_m.ProcessingStatus = paperchatsession.ProcessingStatus(value.String)
			}
		case paperchatsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case paperchatsession.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PaperChatSession.
// This includes values selected through modifiers, order, etc.
func (_m *PaperChatSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the PaperChatSession entity.
func (_m *PaperChatSession) QueryUser() *UserQuery {
	return NewPaperChatSessionClient(_m.config).QueryUser(_m)
}

// QueryMessages queries the "messages" edge of the PaperChatSession entity.
func (_m *PaperChatSession) QueryMessages() *PaperChatMessageQuery {
	return NewPaperChatSessionClient(_m.config).QueryMessages(_m)
}

// Update returns a builder for updating this PaperChatSession.
// Note that you need to call PaperChatSession.Unwrap() before calling this method if this PaperChatSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PaperChatSession) Update() *PaperChatSessionUpdateOne {
	return NewPaperChatSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PaperChatSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PaperChatSession) Unwrap() *PaperChatSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PaperChatSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PaperChatSession) String() string {
	var builder strings.Builder
	builder.WriteString("PaperChatSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("paper_id=")
	builder.WriteString(_m.PaperID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("processing_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessingStatus))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PaperChatSessions is a parsable slice of PaperChatSession.
type PaperChatSessions []*PaperChatSession
