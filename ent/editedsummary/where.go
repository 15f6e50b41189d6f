// Code generated by ent, DO NOT EDIT.

package editedsummary

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/rainzero1960/paperscout/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldEQ(FieldUserID, v))
}

// DefaultSummaryID applies equality check predicate on the "default_summary_id" field. It's identical to DefaultSummaryIDEQ.
func DefaultSummaryID(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldEQ(FieldDefaultSummaryID, v))
}

// CustomSummaryID applies equality check predicate on the "custom_summary_id" field. It's identical to CustomSummaryIDEQ.
func CustomSummaryID(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldEQ(FieldCustomSummaryID, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldEQ(FieldBody, v))
}

// OnePoint applies equality check predicate on the "one_point" field. It's identical to OnePointEQ.
func OnePoint(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldEQ(FieldOnePoint, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldContainsFold(FieldUserID, v))
}

// DefaultSummaryIDEQ applies the EQ predicate on the "default_summary_id" field.
func DefaultSummaryIDEQ(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldEQ(FieldDefaultSummaryID, v))
}

// DefaultSummaryIDNEQ applies the NEQ predicate on the "default_summary_id" field.
func DefaultSummaryIDNEQ(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldNEQ(FieldDefaultSummaryID, v))
}

// DefaultSummaryIDIn applies the In predicate on the "default_summary_id" field.
func DefaultSummaryIDIn(vs ...string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldIn(FieldDefaultSummaryID, vs...))
}

// DefaultSummaryIDNotIn applies the NotIn predicate on the "default_summary_id" field.
func DefaultSummaryIDNotIn(vs ...string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldNotIn(FieldDefaultSummaryID, vs...))
}

// DefaultSummaryIDGT applies the GT predicate on the "default_summary_id" field.
func DefaultSummaryIDGT(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldGT(FieldDefaultSummaryID, v))
}

// DefaultSummaryIDGTE applies the GTE predicate on the "default_summary_id" field.
func DefaultSummaryIDGTE(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldGTE(FieldDefaultSummaryID, v))
}

// DefaultSummaryIDLT applies the LT predicate on the "default_summary_id" field.
func DefaultSummaryIDLT(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldLT(FieldDefaultSummaryID, v))
}

// DefaultSummaryIDLTE applies the LTE predicate on the "default_summary_id" field.
func DefaultSummaryIDLTE(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldLTE(FieldDefaultSummaryID, v))
}

// DefaultSummaryIDContains applies the Contains predicate on the "default_summary_id" field.
func DefaultSummaryIDContains(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldContains(FieldDefaultSummaryID, v))
}

// DefaultSummaryIDHasPrefix applies the HasPrefix predicate on the "default_summary_id" field.
func DefaultSummaryIDHasPrefix(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldHasPrefix(FieldDefaultSummaryID, v))
}

// DefaultSummaryIDHasSuffix applies the HasSuffix predicate on the "default_summary_id" field.
func DefaultSummaryIDHasSuffix(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldHasSuffix(FieldDefaultSummaryID, v))
}

// DefaultSummaryIDIsNil applies the IsNil predicate on the "default_summary_id" field.
func DefaultSummaryIDIsNil() predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldIsNull(FieldDefaultSummaryID))
}

// DefaultSummaryIDNotNil applies the NotNil predicate on the "default_summary_id" field.
func DefaultSummaryIDNotNil() predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldNotNull(FieldDefaultSummaryID))
}

// DefaultSummaryIDEqualFold applies the EqualFold predicate on the "default_summary_id" field.
func DefaultSummaryIDEqualFold(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldEqualFold(FieldDefaultSummaryID, v))
}

// DefaultSummaryIDContainsFold applies the ContainsFold predicate on the "default_summary_id" field.
func DefaultSummaryIDContainsFold(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldContainsFold(FieldDefaultSummaryID, v))
}

// CustomSummaryIDEQ applies the EQ predicate on the "custom_summary_id" field.
func CustomSummaryIDEQ(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldEQ(FieldCustomSummaryID, v))
}

// CustomSummaryIDNEQ applies the NEQ predicate on the "custom_summary_id" field.
func CustomSummaryIDNEQ(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldNEQ(FieldCustomSummaryID, v))
}

// CustomSummaryIDIn applies the In predicate on the "custom_summary_id" field.
func CustomSummaryIDIn(vs ...string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldIn(FieldCustomSummaryID, vs...))
}

// CustomSummaryIDNotIn applies the NotIn predicate on the "custom_summary_id" field.
func CustomSummaryIDNotIn(vs ...string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldNotIn(FieldCustomSummaryID, vs...))
}

// CustomSummaryIDGT applies the GT predicate on the "custom_summary_id" field.
func CustomSummaryIDGT(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldGT(FieldCustomSummaryID, v))
}

// CustomSummaryIDGTE applies the GTE predicate on the "custom_summary_id" field.
func CustomSummaryIDGTE(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldGTE(FieldCustomSummaryID, v))
}

// CustomSummaryIDLT applies the LT predicate on the "custom_summary_id" field.
func CustomSummaryIDLT(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldLT(FieldCustomSummaryID, v))
}

// CustomSummaryIDLTE applies the LTE predicate on the "custom_summary_id" field.
func CustomSummaryIDLTE(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldLTE(FieldCustomSummaryID, v))
}

// CustomSummaryIDContains applies the Contains predicate on the "custom_summary_id" field.
func CustomSummaryIDContains(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldContains(FieldCustomSummaryID, v))
}

// CustomSummaryIDHasPrefix applies the HasPrefix predicate on the "custom_summary_id" field.
func CustomSummaryIDHasPrefix(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldHasPrefix(FieldCustomSummaryID, v))
}

// CustomSummaryIDHasSuffix applies the HasSuffix predicate on the "custom_summary_id" field.
func CustomSummaryIDHasSuffix(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldHasSuffix(FieldCustomSummaryID, v))
}

// CustomSummaryIDIsNil applies the IsNil predicate on the "custom_summary_id" field.
func CustomSummaryIDIsNil() predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldIsNull(FieldCustomSummaryID))
}

// CustomSummaryIDNotNil applies the NotNil predicate on the "custom_summary_id" field.
func CustomSummaryIDNotNil() predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldNotNull(FieldCustomSummaryID))
}

// CustomSummaryIDEqualFold applies the EqualFold predicate on the "custom_summary_id" field.
func CustomSummaryIDEqualFold(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldEqualFold(FieldCustomSummaryID, v))
}

// CustomSummaryIDContainsFold applies the ContainsFold predicate on the "custom_summary_id" field.
func CustomSummaryIDContainsFold(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldContainsFold(FieldCustomSummaryID, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldContainsFold(FieldBody, v))
}

// OnePointEQ applies the EQ predicate on the "one_point" field.
func OnePointEQ(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldEQ(FieldOnePoint, v))
}

// OnePointNEQ applies the NEQ predicate on the "one_point" field.
func OnePointNEQ(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldNEQ(FieldOnePoint, v))
}

// OnePointIn applies the In predicate on the "one_point" field.
func OnePointIn(vs ...string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldIn(FieldOnePoint, vs...))
}

// OnePointNotIn applies the NotIn predicate on the "one_point" field.
func OnePointNotIn(vs ...string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldNotIn(FieldOnePoint, vs...))
}

// OnePointGT applies the GT predicate on the "one_point" field.
func OnePointGT(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldGT(FieldOnePoint, v))
}

// OnePointGTE applies the GTE predicate on the "one_point" field.
func OnePointGTE(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldGTE(FieldOnePoint, v))
}

// OnePointLT applies the LT predicate on the "one_point" field.
func OnePointLT(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldLT(FieldOnePoint, v))
}

// OnePointLTE applies the LTE predicate on the "one_point" field.
func OnePointLTE(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldLTE(FieldOnePoint, v))
}

// OnePointContains applies the Contains predicate on the "one_point" field.
func OnePointContains(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldContains(FieldOnePoint, v))
}

// OnePointHasPrefix applies the HasPrefix predicate on the "one_point" field.
func OnePointHasPrefix(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldHasPrefix(FieldOnePoint, v))
}

// OnePointHasSuffix applies the HasSuffix predicate on the "one_point" field.
func OnePointHasSuffix(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldHasSuffix(FieldOnePoint, v))
}

// OnePointIsNil applies the IsNil predicate on the "one_point" field.
func OnePointIsNil() predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldIsNull(FieldOnePoint))
}

// OnePointNotNil applies the NotNil predicate on the "one_point" field.
func OnePointNotNil() predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldNotNull(FieldOnePoint))
}

// OnePointEqualFold applies the EqualFold predicate on the "one_point" field.
func OnePointEqualFold(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldEqualFold(FieldOnePoint, v))
}

// OnePointContainsFold applies the ContainsFold predicate on the "one_point" field.
func OnePointContainsFold(v string) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldContainsFold(FieldOnePoint, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.EditedSummary {
	return predicate.EditedSummary(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.EditedSummary {
	return predicate.EditedSummary(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.EditedSummary {
	return predicate.EditedSummary(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EditedSummary) predicate.EditedSummary {
	return predicate.EditedSummary(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EditedSummary) predicate.EditedSummary {
	return predicate.EditedSummary(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EditedSummary) predicate.EditedSummary {
	return predicate.EditedSummary(sql.NotPredicates(p))
}
