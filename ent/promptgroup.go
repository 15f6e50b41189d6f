// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rainzero1960/paperscout/ent/promptgroup"
	"github.com/rainzero1960/paperscout/ent/user"
)

// PromptGroup is the model entity for the PromptGroup schema.
type PromptGroup struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Category holds the value of the "category" field.
	Category promptgroup.Category `json:"category,omitempty"`
	// CoordinatorPromptID holds the value of the "coordinator_prompt_id" field.
	CoordinatorPromptID *string `json:"coordinator_prompt_id,omitempty"`
	// PlannerPromptID holds the value of the "planner_prompt_id" field.
	PlannerPromptID *string `json:"planner_prompt_id,omitempty"`
	// SupervisorPromptID holds the value of the "supervisor_prompt_id" field.
	SupervisorPromptID *string `json:"supervisor_prompt_id,omitempty"`
	// AgentPromptID holds the value of the "agent_prompt_id" field.
	AgentPromptID *string `json:"agent_prompt_id,omitempty"`
	// SummaryPromptID holds the value of the "summary_prompt_id" field.
	SummaryPromptID *string `json:"summary_prompt_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PromptGroupQuery when eager-loading is set.
	Edges        PromptGroupEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PromptGroupEdges holds the relations/edges for other nodes in the graph.
type PromptGroupEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PromptGroupEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PromptGroup) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case promptgroup.FieldID, promptgroup.FieldName, promptgroup.FieldUserID, promptgroup.FieldCategory, promptgroup.FieldCoordinatorPromptID, promptgroup.FieldPlannerPromptID, promptgroup.FieldSupervisorPromptID, promptgroup.FieldAgentPromptID, promptgroup.FieldSummaryPromptID:
			values[i] = new(sql.NullString)
		case promptgroup.FieldCreatedAt, promptgroup.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PromptGroup fields.
func (_m *PromptGroup) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case promptgroup.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case promptgroup.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case promptgroup.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case promptgroup.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = promptgroup.Category(value.String)
			}
		case promptgroup.FieldCoordinatorPromptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field coordinator_prompt_id", values[i])
			} else if value.Valid {
				_m.CoordinatorPromptID = new(string)
				*_m.CoordinatorPromptID = value.String
			}
		case promptgroup.FieldPlannerPromptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field planner_prompt_id", values[i])
			} else if value.Valid {
				_m.PlannerPromptID = new(string)
				*_m.PlannerPromptID = value.String
			}
		case promptgroup.FieldSupervisorPromptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field supervisor_prompt_id", values[i])
			} else if value.Valid {
				_m.SupervisorPromptID = new(string)
				*_m.SupervisorPromptID = value.String
			}
		case promptgroup.FieldAgentPromptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_prompt_id", values[i])
			} else if value.Valid {
				_m.AgentPromptID = new(string)
				*_m.AgentPromptID = value.String
			}
		case promptgroup.FieldSummaryPromptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary_prompt_id", values[i])
			} else if value.Valid {
				_m.SummaryPromptID = new(string)
				*_m.SummaryPromptID = value.String
			}
		case promptgroup.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case promptgroup.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PromptGroup.
// This includes values selected through modifiers, order, etc.
func (_m *PromptGroup) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the PromptGroup entity.
func (_m *PromptGroup) QueryUser() *UserQuery {
	return NewPromptGroupClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this PromptGroup.
// Note that you need to call PromptGroup.Unwrap() before calling this method if this PromptGroup
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PromptGroup) Update() *PromptGroupUpdateOne {
	return NewPromptGroupClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PromptGroup entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PromptGroup) Unwrap() *PromptGroup {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PromptGroup is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PromptGroup) String() string {
	var builder strings.Builder
	builder.WriteString("PromptGroup(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(fmt.Sprintf("%v", _m.Category))
	builder.WriteString(", ")
	if v := _m.CoordinatorPromptID; v != nil {
		builder.WriteString("coordinator_prompt_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PlannerPromptID; v != nil {
		builder.WriteString("planner_prompt_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SupervisorPromptID; v != nil {
		builder.WriteString("supervisor_prompt_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AgentPromptID; v != nil {
		builder.WriteString("agent_prompt_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SummaryPromptID; v != nil {
		builder.WriteString("summary_prompt_id=")
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

// PromptGroups is a parsable slice of PromptGroup.
type PromptGroups []*PromptGroup
