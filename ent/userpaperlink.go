// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rainzero1960/paperscout/ent/papermetadata"
	"github.com/rainzero1960/paperscout/ent/user"
	"github.com/rainzero1960/paperscout/ent/userpaperlink"
)

// UserPaperLink is the model entity for the UserPaperLink schema.
type UserPaperLink struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// PaperID holds the value of the "paper_id" field.
	PaperID string `json:"paper_id,omitempty"`
	// Comma-separated tag set
	Tags string `json:"tags,omitempty"`
	// Memo holds the value of the "memo" field.
	Memo string `json:"memo,omitempty"`
	// SelectedDefaultSummaryID holds the value of the "selected_default_summary_id" field.
	SelectedDefaultSummaryID *string `json:"selected_default_summary_id,omitempty"`
	// SelectedCustomSummaryID holds the value of the "selected_custom_summary_id" field.
	SelectedCustomSummaryID *string `json:"selected_custom_summary_id,omitempty"`
	// LastAccessed holds the value of the "last_accessed" field.
	LastAccessed *time.Time `json:"last_accessed,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UserPaperLinkQuery when eager-loading is set.
	Edges        UserPaperLinkEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UserPaperLinkEdges holds the relations/edges for other nodes in the graph.
type UserPaperLinkEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// Paper holds the value of the paper edge.
	Paper *PaperMetadata `json:"paper,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UserPaperLinkEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// PaperOrErr returns the Paper value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UserPaperLinkEdges) PaperOrErr() (*PaperMetadata, error) {
	if e.Paper != nil {
		return e.Paper, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: papermetadata.Label}
	}
	return nil, &NotLoadedError{edge: "paper"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserPaperLink) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userpaperlink.FieldID, userpaperlink.FieldUserID, userpaperlink.FieldPaperID, userpaperlink.FieldTags, userpaperlink.FieldMemo, userpaperlink.FieldSelectedDefaultSummaryID, userpaperlink.FieldSelectedCustomSummaryID:
			values[i] = new(sql.NullString)
		case userpaperlink.FieldLastAccessed, userpaperlink.FieldCreatedAt, userpaperlink.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserPaperLink fields.
func (_m *UserPaperLink) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userpaperlink.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case userpaperlink.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case userpaperlink.FieldPaperID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field paper_id", values[i])
			} else if value.Valid {
				_m.PaperID = value.String
			}
		case userpaperlink.FieldTags:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value.Valid {
				_m.Tags = value.String
			}
		case userpaperlink.FieldMemo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field memo", values[i])
			} else if value.Valid {
				_m.Memo = value.String
			}
		case userpaperlink.FieldSelectedDefaultSummaryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field selected_default_summary_id", values[i])
			} else if value.Valid {
				_m.SelectedDefaultSummaryID = new(string)
				*_m.SelectedDefaultSummaryID = value.String
			}
		case userpaperlink.FieldSelectedCustomSummaryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field selected_custom_summary_id", values[i])
			} else if value.Valid {
				_m.SelectedCustomSummaryID = new(string)
				*_m.SelectedCustomSummaryID = value.String
			}
		case userpaperlink.FieldLastAccessed:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_accessed", values[i])
			} else if value.Valid {
				_m.LastAccessed = new(time.Time)
				*_m.LastAccessed = value.Time
			}
		case userpaperlink.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case userpaperlink.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the UserPaperLink.
// This includes values selected through modifiers, order, etc.
func (_m *UserPaperLink) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the UserPaperLink entity.
func (_m *UserPaperLink) QueryUser() *UserQuery {
	return NewUserPaperLinkClient(_m.config).QueryUser(_m)
}

// QueryPaper queries the "paper" edge of the UserPaperLink entity.
func (_m *UserPaperLink) QueryPaper() *PaperMetadataQuery {
	return NewUserPaperLinkClient(_m.config).QueryPaper(_m)
}

// Update returns a builder for updating this UserPaperLink.
// Note that you need to call UserPaperLink.Unwrap() before calling this method if this UserPaperLink
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserPaperLink) Update() *UserPaperLinkUpdateOne {
	return NewUserPaperLinkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserPaperLink entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserPaperLink) Unwrap() *UserPaperLink {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserPaperLink is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserPaperLink) String() string {
	var builder strings.Builder
	builder.WriteString("UserPaperLink(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("paper_id=")
	builder.WriteString(_m.PaperID)
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(_m.Tags)
	builder.WriteString(", ")
	builder.WriteString("memo=")
	builder.WriteString(_m.Memo)
	builder.WriteString(", ")
	if v := _m.SelectedDefaultSummaryID; v != nil {
		builder.WriteString("selected_default_summary_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SelectedCustomSummaryID; v != nil {
		builder.WriteString("selected_custom_summary_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastAccessed; v != nil {
		builder.WriteString("last_accessed=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UserPaperLinks is a parsable slice of UserPaperLink.
type UserPaperLinks []*UserPaperLink
