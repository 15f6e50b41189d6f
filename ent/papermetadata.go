// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rainzero1960/paperscout/ent/papermetadata"
)

// PaperMetadata is the model entity for the PaperMetadata schema.
type PaperMetadata struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// e.g. arXiv identifier 2403.01234
	ExternalID string `json:"external_id,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Authors holds the value of the "authors" field.
	Authors string `json:"authors,omitempty"`
	// Abstract holds the value of the "abstract" field.
	Abstract string `json:"abstract,omitempty"`
	// FullText holds the value of the "full_text" field.
	FullText *string `json:"full_text,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PaperMetadataQuery when eager-loading is set.
	Edges        PaperMetadataEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PaperMetadataEdges holds the relations/edges for other nodes in the graph.
type PaperMetadataEdges struct {
	// DefaultSummaries holds the value of the default_summaries edge.
	DefaultSummaries []*DefaultSummary `json:"default_summaries,omitempty"`
	// CustomSummaries holds the value of the custom_summaries edge.
	CustomSummaries []*CustomSummary `json:"custom_summaries,omitempty"`
	// UserLinks holds the value of the user_links edge.
	UserLinks []*UserPaperLink `json:"user_links,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// DefaultSummariesOrErr returns the DefaultSummaries value or an error if the edge
// was not loaded in eager-loading.
func (e PaperMetadataEdges) DefaultSummariesOrErr() ([]*DefaultSummary, error) {
	if e.loadedTypes[0] {
		return e.DefaultSummaries, nil
	}
	return nil, &NotLoadedError{edge: "default_summaries"}
}

// CustomSummariesOrErr returns the CustomSummaries value or an error if the edge
// was not loaded in eager-loading.
func (e PaperMetadataEdges) CustomSummariesOrErr() ([]*CustomSummary, error) {
	if e.loadedTypes[1] {
		return e.CustomSummaries, nil
	}
	return nil, &NotLoadedError{edge: "custom_summaries"}
}

// UserLinksOrErr returns the UserLinks value or an error if the edge
// was not loaded in eager-loading.
func (e PaperMetadataEdges) UserLinksOrErr() ([]*UserPaperLink, error) {
	if e.loadedTypes[2] {
		return e.UserLinks, nil
	}
	return nil, &NotLoadedError{edge: "user_links"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PaperMetadata) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case papermetadata.FieldID, papermetadata.FieldExternalID, papermetadata.FieldURL, papermetadata.FieldTitle, papermetadata.FieldAuthors, papermetadata.FieldAbstract, papermetadata.FieldFullText:
			values[i] = new(sql.NullString)
		case papermetadata.FieldCreatedAt, papermetadata.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PaperMetadata fields.
func (_m *PaperMetadata) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case papermetadata.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case papermetadata.FieldExternalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_id", values[i])
			} else if value.Valid {
				_m.ExternalID = value.String
			}
		case papermetadata.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case papermetadata.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case papermetadata.FieldAuthors:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field authors", values[i])
			} else if value.Valid {
				_m.Authors = value.String
			}
		case papermetadata.FieldAbstract:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field abstract", values[i])
			} else if value.Valid {
				_m.Abstract = value.String
			}
		case papermetadata.FieldFullText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_text", values[i])
			} else if value.Valid {
				_m.FullText = new(string)
				*_m.FullText = value.String
			}
		case papermetadata.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case papermetadata.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PaperMetadata.
// This includes values selected through modifiers, order, etc.
func (_m *PaperMetadata) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDefaultSummaries queries the "default_summaries" edge of the PaperMetadata entity.
func (_m *PaperMetadata) QueryDefaultSummaries() *DefaultSummaryQuery {
	return NewPaperMetadataClient(_m.config).QueryDefaultSummaries(_m)
}

// QueryCustomSummaries queries the "custom_summaries" edge of the PaperMetadata entity.
func (_m *PaperMetadata) QueryCustomSummaries() *CustomSummaryQuery {
	return NewPaperMetadataClient(_m.config).QueryCustomSummaries(_m)
}

// QueryUserLinks queries the "user_links" edge of the PaperMetadata entity.
func (_m *PaperMetadata) QueryUserLinks() *UserPaperLinkQuery {
	return NewPaperMetadataClient(_m.config).QueryUserLinks(_m)
}

// Update returns a builder for updating this PaperMetadata.
// Note that you need to call PaperMetadata.Unwrap() before calling this method if this PaperMetadata
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PaperMetadata) Update() *PaperMetadataUpdateOne {
	return NewPaperMetadataClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PaperMetadata entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PaperMetadata) Unwrap() *PaperMetadata {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PaperMetadata is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PaperMetadata) String() string {
	var builder strings.Builder
	builder.WriteString("PaperMetadata(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("external_id=")
	builder.WriteString(_m.ExternalID)
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("authors=")
	builder.WriteString(_m.Authors)
	builder.WriteString(", ")
	builder.WriteString("abstract=")
	builder.WriteString(_m.Abstract)
	builder.WriteString(", ")
	if v := _m.FullText; v != nil {
		builder.WriteString("full_text=")
		builder.WriteString(*v)
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

// PaperMetadataSlice is a parsable slice of PaperMetadata.
type PaperMetadataSlice []*PaperMetadata
