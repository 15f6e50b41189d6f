// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rainzero1960/paperscout/ent/editedsummary"
	"github.com/rainzero1960/paperscout/ent/user"
)

// EditedSummary is the model entity for the EditedSummary schema.
type EditedSummary struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// DefaultSummaryID holds the value of the "default_summary_id" field.
	DefaultSummaryID *string `json:"default_summary_id,omitempty"`
	// CustomSummaryID holds the value of the "custom_summary_id" field.
	CustomSummaryID *string `json:"custom_summary_id,omitempty"`
	// Body holds the value of the "body" field.
	Body string `json:"body,omitempty"`
	// OnePoint holds the value of the "one_point" field.
	OnePoint string `json:"one_point,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EditedSummaryQuery when eager-loading is set.
	Edges        EditedSummaryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EditedSummaryEdges holds the relations/edges for other nodes in the graph.
type EditedSummaryEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EditedSummaryEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EditedSummary) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case editedsummary.FieldID, editedsummary.FieldUserID, editedsummary.FieldDefaultSummaryID, editedsummary.FieldCustomSummaryID, editedsummary.FieldBody, editedsummary.FieldOnePoint:
			values[i] = new(sql.NullString)
		case editedsummary.FieldCreatedAt, editedsummary.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EditedSummary fields.
func (_m *EditedSummary) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case editedsummary.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case editedsummary.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case editedsummary.FieldDefaultSummaryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field default_summary_id", values[i])
			} else if value.Valid {
				_m.DefaultSummaryID = new(string)
				*_m.DefaultSummaryID = value.String
			}
		case editedsummary.FieldCustomSummaryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field custom_summary_id", values[i])
			} else if value.Valid {
				_m.CustomSummaryID = new(string)
				*_m.CustomSummaryID = value.String
			}
		case editedsummary.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case editedsummary.FieldOnePoint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field one_point", values[i])
			} else if value.Valid {
				_m.OnePoint = value.String
			}
		case editedsummary.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case editedsummary.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the EditedSummary.
// This includes values selected through modifiers, order, etc.
func (_m *EditedSummary) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the EditedSummary entity.
func (_m *EditedSummary) QueryUser() *UserQuery {
	return NewEditedSummaryClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this EditedSummary.
// Note that you need to call EditedSummary.Unwrap() before calling this method if this EditedSummary
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EditedSummary) Update() *EditedSummaryUpdateOne {
	return NewEditedSummaryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EditedSummary entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EditedSummary) Unwrap() *EditedSummary {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EditedSummary is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EditedSummary) String() string {
	var builder strings.Builder
	builder.WriteString("EditedSummary(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	if v := _m.DefaultSummaryID; v != nil {
		builder.WriteString("default_summary_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CustomSummaryID; v != nil {
		builder.WriteString("custom_summary_id=")
		builder.WriteString(*v)
	}
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

// EditedSummaries is a parsable slice of EditedSummary.
type EditedSummaries []*EditedSummary
