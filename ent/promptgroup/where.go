// Code generated by ent, DO NOT EDIT.

package promptgroup

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/rainzero1960/paperscout/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldEQ(FieldName, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldEQ(FieldUserID, v))
}

// CoordinatorPromptID applies equality check predicate on the "coordinator_prompt_id" field. It's identical to CoordinatorPromptIDEQ.
func CoordinatorPromptID(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldEQ(FieldCoordinatorPromptID, v))
}

// PlannerPromptID applies equality check predicate on the "planner_prompt_id" field. It's identical to PlannerPromptIDEQ.
func PlannerPromptID(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldEQ(FieldPlannerPromptID, v))
}

// SupervisorPromptID applies equality check predicate on the "supervisor_prompt_id" field. It's identical to SupervisorPromptIDEQ.
func SupervisorPromptID(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldEQ(FieldSupervisorPromptID, v))
}

// AgentPromptID applies equality check predicate on the "agent_prompt_id" field. It's identical to AgentPromptIDEQ.
func AgentPromptID(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldEQ(FieldAgentPromptID, v))
}

// SummaryPromptID applies equality check predicate on the "summary_prompt_id" field. It's identical to SummaryPromptIDEQ.
func SummaryPromptID(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldEQ(FieldSummaryPromptID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldContainsFold(FieldName, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldContainsFold(FieldUserID, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v Category) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v Category) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...Category) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...Category) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldNotIn(FieldCategory, vs...))
}

// CoordinatorPromptIDEQ applies the EQ predicate on the "coordinator_prompt_id" field.
func CoordinatorPromptIDEQ(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldEQ(FieldCoordinatorPromptID, v))
}

// CoordinatorPromptIDNEQ applies the NEQ predicate on the "coordinator_prompt_id" field.
func CoordinatorPromptIDNEQ(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldNEQ(FieldCoordinatorPromptID, v))
}

// CoordinatorPromptIDIn applies the In predicate on the "coordinator_prompt_id" field.
func CoordinatorPromptIDIn(vs ...string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldIn(FieldCoordinatorPromptID, vs...))
}

// CoordinatorPromptIDNotIn applies the NotIn predicate on the "coordinator_prompt_id" field.
func CoordinatorPromptIDNotIn(vs ...string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldNotIn(FieldCoordinatorPromptID, vs...))
}

// CoordinatorPromptIDGT applies the GT predicate on the "coordinator_prompt_id" field.
func CoordinatorPromptIDGT(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldGT(FieldCoordinatorPromptID, v))
}

// CoordinatorPromptIDGTE applies the GTE predicate on the "coordinator_prompt_id" field.
func CoordinatorPromptIDGTE(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldGTE(FieldCoordinatorPromptID, v))
}

// CoordinatorPromptIDLT applies the LT predicate on the "coordinator_prompt_id" field.
func CoordinatorPromptIDLT(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldLT(FieldCoordinatorPromptID, v))
}

// CoordinatorPromptIDLTE applies the LTE predicate on the "coordinator_prompt_id" field.
func CoordinatorPromptIDLTE(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldLTE(FieldCoordinatorPromptID, v))
}

// CoordinatorPromptIDContains applies the Contains predicate on the "coordinator_prompt_id" field.
func CoordinatorPromptIDContains(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldContains(FieldCoordinatorPromptID, v))
}

// CoordinatorPromptIDHasPrefix applies the HasPrefix predicate on the "coordinator_prompt_id" field.
func CoordinatorPromptIDHasPrefix(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldHasPrefix(FieldCoordinatorPromptID, v))
}

// CoordinatorPromptIDHasSuffix applies the HasSuffix predicate on the "coordinator_prompt_id" field.
func CoordinatorPromptIDHasSuffix(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldHasSuffix(FieldCoordinatorPromptID, v))
}

// CoordinatorPromptIDIsNil applies the IsNil predicate on the "coordinator_prompt_id" field.
func CoordinatorPromptIDIsNil() predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldIsNull(FieldCoordinatorPromptID))
}

// CoordinatorPromptIDNotNil applies the NotNil predicate on the "coordinator_prompt_id" field.
func CoordinatorPromptIDNotNil() predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldNotNull(FieldCoordinatorPromptID))
}

// CoordinatorPromptIDEqualFold applies the EqualFold predicate on the "coordinator_prompt_id" field.
func CoordinatorPromptIDEqualFold(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldEqualFold(FieldCoordinatorPromptID, v))
}

// CoordinatorPromptIDContainsFold applies the ContainsFold predicate on the "coordinator_prompt_id" field.
func CoordinatorPromptIDContainsFold(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldContainsFold(FieldCoordinatorPromptID, v))
}

// PlannerPromptIDEQ applies the EQ predicate on the "planner_prompt_id" field.
func PlannerPromptIDEQ(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldEQ(FieldPlannerPromptID, v))
}

// PlannerPromptIDNEQ applies the NEQ predicate on the "planner_prompt_id" field.
func PlannerPromptIDNEQ(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldNEQ(FieldPlannerPromptID, v))
}

// PlannerPromptIDIn applies the In predicate on the "planner_prompt_id" field.
func PlannerPromptIDIn(vs ...string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldIn(FieldPlannerPromptID, vs...))
}

// PlannerPromptIDNotIn applies the NotIn predicate on the "planner_prompt_id" field.
func PlannerPromptIDNotIn(vs ...string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldNotIn(FieldPlannerPromptID, vs...))
}

// PlannerPromptIDGT applies the GT predicate on the "planner_prompt_id" field.
func PlannerPromptIDGT(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldGT(FieldPlannerPromptID, v))
}

// PlannerPromptIDGTE applies the GTE predicate on the "planner_prompt_id" field.
func PlannerPromptIDGTE(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldGTE(FieldPlannerPromptID, v))
}

// PlannerPromptIDLT applies the LT predicate on the "planner_prompt_id" field.
func PlannerPromptIDLT(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldLT(FieldPlannerPromptID, v))
}

// PlannerPromptIDLTE applies the LTE predicate on the "planner_prompt_id" field.
func PlannerPromptIDLTE(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldLTE(FieldPlannerPromptID, v))
}

// PlannerPromptIDContains applies the Contains predicate on the "planner_prompt_id" field.
func PlannerPromptIDContains(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldContains(FieldPlannerPromptID, v))
}

// PlannerPromptIDHasPrefix applies the HasPrefix predicate on the "planner_prompt_id" field.
func PlannerPromptIDHasPrefix(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldHasPrefix(FieldPlannerPromptID, v))
}

// PlannerPromptIDHasSuffix applies the HasSuffix predicate on the "planner_prompt_id" field.
func PlannerPromptIDHasSuffix(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldHasSuffix(FieldPlannerPromptID, v))
}

// PlannerPromptIDIsNil applies the IsNil predicate on the "planner_prompt_id" field.
func PlannerPromptIDIsNil() predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldIsNull(FieldPlannerPromptID))
}

// PlannerPromptIDNotNil applies the NotNil predicate on the "planner_prompt_id" field.
func PlannerPromptIDNotNil() predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldNotNull(FieldPlannerPromptID))
}

// PlannerPromptIDEqualFold applies the EqualFold predicate on the "planner_prompt_id" field.
func PlannerPromptIDEqualFold(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldEqualFold(FieldPlannerPromptID, v))
}

// PlannerPromptIDContainsFold applies the ContainsFold predicate on the "planner_prompt_id" field.
func PlannerPromptIDContainsFold(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldContainsFold(FieldPlannerPromptID, v))
}

// SupervisorPromptIDEQ applies the EQ predicate on the "supervisor_prompt_id" field.
func SupervisorPromptIDEQ(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldEQ(FieldSupervisorPromptID, v))
}

// SupervisorPromptIDNEQ applies the NEQ predicate on the "supervisor_prompt_id" field.
func SupervisorPromptIDNEQ(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldNEQ(FieldSupervisorPromptID, v))
}

// SupervisorPromptIDIn applies the In predicate on the "supervisor_prompt_id" field.
func SupervisorPromptIDIn(vs ...string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldIn(FieldSupervisorPromptID, vs...))
}

// SupervisorPromptIDNotIn applies the NotIn predicate on the "supervisor_prompt_id" field.
func SupervisorPromptIDNotIn(vs ...string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldNotIn(FieldSupervisorPromptID, vs...))
}

// SupervisorPromptIDGT applies the GT predicate on the "supervisor_prompt_id" field.
func SupervisorPromptIDGT(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldGT(FieldSupervisorPromptID, v))
}

// SupervisorPromptIDGTE applies the GTE predicate on the "supervisor_prompt_id" field.
func SupervisorPromptIDGTE(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldGTE(FieldSupervisorPromptID, v))
}

// SupervisorPromptIDLT applies the LT predicate on the "supervisor_prompt_id" field.
func SupervisorPromptIDLT(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldLT(FieldSupervisorPromptID, v))
}

// SupervisorPromptIDLTE applies the LTE predicate on the "supervisor_prompt_id" field.
func SupervisorPromptIDLTE(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldLTE(FieldSupervisorPromptID, v))
}

// SupervisorPromptIDContains applies the Contains predicate on the "supervisor_prompt_id" field.
func SupervisorPromptIDContains(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldContains(FieldSupervisorPromptID, v))
}

// SupervisorPromptIDHasPrefix applies the HasPrefix predicate on the "supervisor_prompt_id" field.
func SupervisorPromptIDHasPrefix(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldHasPrefix(FieldSupervisorPromptID, v))
}

// SupervisorPromptIDHasSuffix applies the HasSuffix predicate on the "supervisor_prompt_id" field.
func SupervisorPromptIDHasSuffix(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldHasSuffix(FieldSupervisorPromptID, v))
}

// SupervisorPromptIDIsNil applies the IsNil predicate on the "supervisor_prompt_id" field.
func SupervisorPromptIDIsNil() predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldIsNull(FieldSupervisorPromptID))
}

// SupervisorPromptIDNotNil applies the NotNil predicate on the "supervisor_prompt_id" field.
func SupervisorPromptIDNotNil() predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldNotNull(FieldSupervisorPromptID))
}

// SupervisorPromptIDEqualFold applies the EqualFold predicate on the "supervisor_prompt_id" field.
func SupervisorPromptIDEqualFold(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldEqualFold(FieldSupervisorPromptID, v))
}

// SupervisorPromptIDContainsFold applies the ContainsFold predicate on the "supervisor_prompt_id" field.
func SupervisorPromptIDContainsFold(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldContainsFold(FieldSupervisorPromptID, v))
}

// AgentPromptIDEQ applies the EQ predicate on the "agent_prompt_id" field.
func AgentPromptIDEQ(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldEQ(FieldAgentPromptID, v))
}

// AgentPromptIDNEQ applies the NEQ predicate on the "agent_prompt_id" field.
func AgentPromptIDNEQ(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldNEQ(FieldAgentPromptID, v))
}

// AgentPromptIDIn applies the In predicate on the "agent_prompt_id" field.
func AgentPromptIDIn(vs ...string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldIn(FieldAgentPromptID, vs...))
}

// AgentPromptIDNotIn applies the NotIn predicate on the "agent_prompt_id" field.
func AgentPromptIDNotIn(vs ...string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldNotIn(FieldAgentPromptID, vs...))
}

// AgentPromptIDGT applies the GT predicate on the "agent_prompt_id" field.
func AgentPromptIDGT(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldGT(FieldAgentPromptID, v))
}

// AgentPromptIDGTE applies the GTE predicate on the "agent_prompt_id" field.
func AgentPromptIDGTE(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldGTE(FieldAgentPromptID, v))
}

// AgentPromptIDLT applies the LT predicate on the "agent_prompt_id" field.
func AgentPromptIDLT(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldLT(FieldAgentPromptID, v))
}

// AgentPromptIDLTE applies the LTE predicate on the "agent_prompt_id" field.
func AgentPromptIDLTE(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldLTE(FieldAgentPromptID, v))
}

// AgentPromptIDContains applies the Contains predicate on the "agent_prompt_id" field.
func AgentPromptIDContains(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldContains(FieldAgentPromptID, v))
}

// AgentPromptIDHasPrefix applies the HasPrefix predicate on the "agent_prompt_id" field.
func AgentPromptIDHasPrefix(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldHasPrefix(FieldAgentPromptID, v))
}

// AgentPromptIDHasSuffix applies the HasSuffix predicate on the "agent_prompt_id" field.
func AgentPromptIDHasSuffix(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldHasSuffix(FieldAgentPromptID, v))
}

// AgentPromptIDIsNil applies the IsNil predicate on the "agent_prompt_id" field.
func AgentPromptIDIsNil() predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldIsNull(FieldAgentPromptID))
}

// AgentPromptIDNotNil applies the NotNil predicate on the "agent_prompt_id" field.
func AgentPromptIDNotNil() predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldNotNull(FieldAgentPromptID))
}

// AgentPromptIDEqualFold applies the EqualFold predicate on the "agent_prompt_id" field.
func AgentPromptIDEqualFold(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldEqualFold(FieldAgentPromptID, v))
}

// AgentPromptIDContainsFold applies the ContainsFold predicate on the "agent_prompt_id" field.
func AgentPromptIDContainsFold(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldContainsFold(FieldAgentPromptID, v))
}

// SummaryPromptIDEQ applies the EQ predicate on the "summary_prompt_id" field.
func SummaryPromptIDEQ(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldEQ(FieldSummaryPromptID, v))
}

// SummaryPromptIDNEQ applies the NEQ predicate on the "summary_prompt_id" field.
func SummaryPromptIDNEQ(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldNEQ(FieldSummaryPromptID, v))
}

// SummaryPromptIDIn applies the In predicate on the "summary_prompt_id" field.
func SummaryPromptIDIn(vs ...string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldIn(FieldSummaryPromptID, vs...))
}

// SummaryPromptIDNotIn applies the NotIn predicate on the "summary_prompt_id" field.
func SummaryPromptIDNotIn(vs ...string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldNotIn(FieldSummaryPromptID, vs...))
}

// SummaryPromptIDGT applies the GT predicate on the "summary_prompt_id" field.
func SummaryPromptIDGT(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldGT(FieldSummaryPromptID, v))
}

// SummaryPromptIDGTE applies the GTE predicate on the "summary_prompt_id" field.
func SummaryPromptIDGTE(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldGTE(FieldSummaryPromptID, v))
}

// SummaryPromptIDLT applies the LT predicate on the "summary_prompt_id" field.
func SummaryPromptIDLT(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldLT(FieldSummaryPromptID, v))
}

// SummaryPromptIDLTE applies the LTE predicate on the "summary_prompt_id" field.
func SummaryPromptIDLTE(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldLTE(FieldSummaryPromptID, v))
}

// SummaryPromptIDContains applies the Contains predicate on the "summary_prompt_id" field.
func SummaryPromptIDContains(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldContains(FieldSummaryPromptID, v))
}

// SummaryPromptIDHasPrefix applies the HasPrefix predicate on the "summary_prompt_id" field.
func SummaryPromptIDHasPrefix(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldHasPrefix(FieldSummaryPromptID, v))
}

// SummaryPromptIDHasSuffix applies the HasSuffix predicate on the "summary_prompt_id" field.
func SummaryPromptIDHasSuffix(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldHasSuffix(FieldSummaryPromptID, v))
}

// SummaryPromptIDIsNil applies the IsNil predicate on the "summary_prompt_id" field.
func SummaryPromptIDIsNil() predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldIsNull(FieldSummaryPromptID))
}

// SummaryPromptIDNotNil applies the NotNil predicate on the "summary_prompt_id" field.
func SummaryPromptIDNotNil() predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldNotNull(FieldSummaryPromptID))
}

// SummaryPromptIDEqualFold applies the EqualFold predicate on the "summary_prompt_id" field.
func SummaryPromptIDEqualFold(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldEqualFold(FieldSummaryPromptID, v))
}

// SummaryPromptIDContainsFold applies the ContainsFold predicate on the "summary_prompt_id" field.
func SummaryPromptIDContainsFold(v string) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldContainsFold(FieldSummaryPromptID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PromptGroup {
	return predicate.PromptGroup(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.PromptGroup {
	return predicate.PromptGroup(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.PromptGroup {
	return predicate.PromptGroup(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PromptGroup) predicate.PromptGroup {
	return predicate.PromptGroup(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PromptGroup) predicate.PromptGroup {
	return predicate.PromptGroup(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PromptGroup) predicate.PromptGroup {
	return predicate.PromptGroup(sql.NotPredicates(p))
}
