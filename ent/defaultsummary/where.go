// Code generated by ent, DO NOT EDIT.

package defaultsummary

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/rainzero1960/paperscout/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldContainsFold(FieldID, id))
}

// PaperID applies equality check predicate on the "paper_id" field. It's identical to PaperIDEQ.
func PaperID(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldEQ(FieldPaperID, v))
}

// LlmProvider applies equality check predicate on the "llm_provider" field. It's identical to LlmProviderEQ.
func LlmProvider(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldEQ(FieldLlmProvider, v))
}

// LlmModel applies equality check predicate on the "llm_model" field. It's identical to LlmModelEQ.
func LlmModel(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldEQ(FieldLlmModel, v))
}

// Affinity applies equality check predicate on the "affinity" field. It's identical to AffinityEQ.
func Affinity(v int) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldEQ(FieldAffinity, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldEQ(FieldBody, v))
}

// OnePoint applies equality check predicate on the "one_point" field. It's identical to OnePointEQ.
func OnePoint(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldEQ(FieldOnePoint, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldEQ(FieldUpdatedAt, v))
}

// PaperIDEQ applies the EQ predicate on the "paper_id" field.
func PaperIDEQ(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldEQ(FieldPaperID, v))
}

// PaperIDNEQ applies the NEQ predicate on the "paper_id" field.
func PaperIDNEQ(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldNEQ(FieldPaperID, v))
}

// PaperIDIn applies the In predicate on the "paper_id" field.
func PaperIDIn(vs ...string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldIn(FieldPaperID, vs...))
}

// PaperIDNotIn applies the NotIn predicate on the "paper_id" field.
func PaperIDNotIn(vs ...string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldNotIn(FieldPaperID, vs...))
}

// PaperIDGT applies the GT predicate on the "paper_id" field.
func PaperIDGT(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldGT(FieldPaperID, v))
}

// PaperIDGTE applies the GTE predicate on the "paper_id" field.
func PaperIDGTE(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldGTE(FieldPaperID, v))
}

// PaperIDLT applies the LT predicate on the "paper_id" field.
func PaperIDLT(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldLT(FieldPaperID, v))
}

// PaperIDLTE applies the LTE predicate on the "paper_id" field.
func PaperIDLTE(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldLTE(FieldPaperID, v))
}

// PaperIDContains applies the Contains predicate on the "paper_id" field.
func PaperIDContains(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldContains(FieldPaperID, v))
}

// PaperIDHasPrefix applies the HasPrefix predicate on the "paper_id" field.
func PaperIDHasPrefix(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldHasPrefix(FieldPaperID, v))
}

// PaperIDHasSuffix applies the HasSuffix predicate on the "paper_id" field.
func PaperIDHasSuffix(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldHasSuffix(FieldPaperID, v))
}

// PaperIDEqualFold applies the EqualFold predicate on the "paper_id" field.
func PaperIDEqualFold(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldEqualFold(FieldPaperID, v))
}

// PaperIDContainsFold applies the ContainsFold predicate on the "paper_id" field.
func PaperIDContainsFold(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldContainsFold(FieldPaperID, v))
}

// LlmProviderEQ applies the EQ predicate on the "llm_provider" field.
func LlmProviderEQ(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldEQ(FieldLlmProvider, v))
}

// LlmProviderNEQ applies the NEQ predicate on the "llm_provider" field.
func LlmProviderNEQ(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldNEQ(FieldLlmProvider, v))
}

// LlmProviderIn applies the In predicate on the "llm_provider" field.
func LlmProviderIn(vs ...string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldIn(FieldLlmProvider, vs...))
}

// LlmProviderNotIn applies the NotIn predicate on the "llm_provider" field.
func LlmProviderNotIn(vs ...string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldNotIn(FieldLlmProvider, vs...))
}

// LlmProviderGT applies the GT predicate on the "llm_provider" field.
func LlmProviderGT(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldGT(FieldLlmProvider, v))
}

// LlmProviderGTE applies the GTE predicate on the "llm_provider" field.
func LlmProviderGTE(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldGTE(FieldLlmProvider, v))
}

// LlmProviderLT applies the LT predicate on the "llm_provider" field.
func LlmProviderLT(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldLT(FieldLlmProvider, v))
}

// LlmProviderLTE applies the LTE predicate on the "llm_provider" field.
func LlmProviderLTE(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldLTE(FieldLlmProvider, v))
}

// LlmProviderContains applies the Contains predicate on the "llm_provider" field.
func LlmProviderContains(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldContains(FieldLlmProvider, v))
}

// LlmProviderHasPrefix applies the HasPrefix predicate on the "llm_provider" field.
func LlmProviderHasPrefix(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldHasPrefix(FieldLlmProvider, v))
}

// LlmProviderHasSuffix applies the HasSuffix predicate on the "llm_provider" field.
func LlmProviderHasSuffix(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldHasSuffix(FieldLlmProvider, v))
}

// LlmProviderEqualFold applies the EqualFold predicate on the "llm_provider" field.
func LlmProviderEqualFold(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldEqualFold(FieldLlmProvider, v))
}

// LlmProviderContainsFold applies the ContainsFold predicate on the "llm_provider" field.
func LlmProviderContainsFold(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldContainsFold(FieldLlmProvider, v))
}

// LlmModelEQ applies the EQ predicate on the "llm_model" field.
func LlmModelEQ(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldEQ(FieldLlmModel, v))
}

// LlmModelNEQ applies the NEQ predicate on the "llm_model" field.
func LlmModelNEQ(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldNEQ(FieldLlmModel, v))
}

// LlmModelIn applies the In predicate on the "llm_model" field.
func LlmModelIn(vs ...string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldIn(FieldLlmModel, vs...))
}

// LlmModelNotIn applies the NotIn predicate on the "llm_model" field.
func LlmModelNotIn(vs ...string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldNotIn(FieldLlmModel, vs...))
}

// LlmModelGT applies the GT predicate on the "llm_model" field.
func LlmModelGT(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldGT(FieldLlmModel, v))
}

// LlmModelGTE applies the GTE predicate on the "llm_model" field.
func LlmModelGTE(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldGTE(FieldLlmModel, v))
}

// LlmModelLT applies the LT predicate on the "llm_model" field.
func LlmModelLT(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldLT(FieldLlmModel, v))
}

// LlmModelLTE applies the LTE predicate on the "llm_model" field.
func LlmModelLTE(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldLTE(FieldLlmModel, v))
}

// LlmModelContains applies the Contains predicate on the "llm_model" field.
func LlmModelContains(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldContains(FieldLlmModel, v))
}

// LlmModelHasPrefix applies the HasPrefix predicate on the "llm_model" field.
func LlmModelHasPrefix(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldHasPrefix(FieldLlmModel, v))
}

// LlmModelHasSuffix applies the HasSuffix predicate on the "llm_model" field.
func LlmModelHasSuffix(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldHasSuffix(FieldLlmModel, v))
}

// LlmModelEqualFold applies the EqualFold predicate on the "llm_model" field.
func LlmModelEqualFold(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldEqualFold(FieldLlmModel, v))
}

// LlmModelContainsFold applies the ContainsFold predicate on the "llm_model" field.
func LlmModelContainsFold(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldContainsFold(FieldLlmModel, v))
}

// CharacterEQ applies the EQ predicate on the "character" field.
func CharacterEQ(v Character) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldEQ(FieldCharacter, v))
}

// CharacterNEQ applies the NEQ predicate on the "character" field.
func CharacterNEQ(v Character) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldNEQ(FieldCharacter, v))
}

// CharacterIn applies the In predicate on the "character" field.
func CharacterIn(vs ...Character) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldIn(FieldCharacter, vs...))
}

// CharacterNotIn applies the NotIn predicate on the "character" field.
func CharacterNotIn(vs ...Character) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldNotIn(FieldCharacter, vs...))
}

// AffinityEQ applies the EQ predicate on the "affinity" field.
func AffinityEQ(v int) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldEQ(FieldAffinity, v))
}

// AffinityNEQ applies the NEQ predicate on the "affinity" field.
func AffinityNEQ(v int) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldNEQ(FieldAffinity, v))
}

// AffinityIn applies the In predicate on the "affinity" field.
func AffinityIn(vs ...int) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldIn(FieldAffinity, vs...))
}

// AffinityNotIn applies the NotIn predicate on the "affinity" field.
func AffinityNotIn(vs ...int) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldNotIn(FieldAffinity, vs...))
}

// AffinityGT applies the GT predicate on the "affinity" field.
func AffinityGT(v int) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldGT(FieldAffinity, v))
}

// AffinityGTE applies the GTE predicate on the "affinity" field.
func AffinityGTE(v int) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldGTE(FieldAffinity, v))
}

// AffinityLT applies the LT predicate on the "affinity" field.
func AffinityLT(v int) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldLT(FieldAffinity, v))
}

// AffinityLTE applies the LTE predicate on the "affinity" field.
func AffinityLTE(v int) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldLTE(FieldAffinity, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldContainsFold(FieldBody, v))
}

// OnePointEQ applies the EQ predicate on the "one_point" field.
func OnePointEQ(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldEQ(FieldOnePoint, v))
}

// OnePointNEQ applies the NEQ predicate on the "one_point" field.
func OnePointNEQ(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldNEQ(FieldOnePoint, v))
}

// OnePointIn applies the In predicate on the "one_point" field.
func OnePointIn(vs ...string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldIn(FieldOnePoint, vs...))
}

// OnePointNotIn applies the NotIn predicate on the "one_point" field.
func OnePointNotIn(vs ...string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldNotIn(FieldOnePoint, vs...))
}

// OnePointGT applies the GT predicate on the "one_point" field.
func OnePointGT(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldGT(FieldOnePoint, v))
}

// OnePointGTE applies the GTE predicate on the "one_point" field.
func OnePointGTE(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldGTE(FieldOnePoint, v))
}

// OnePointLT applies the LT predicate on the "one_point" field.
func OnePointLT(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldLT(FieldOnePoint, v))
}

// OnePointLTE applies the LTE predicate on the "one_point" field.
func OnePointLTE(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldLTE(FieldOnePoint, v))
}

// OnePointContains applies the Contains predicate on the "one_point" field.
func OnePointContains(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldContains(FieldOnePoint, v))
}

// OnePointHasPrefix applies the HasPrefix predicate on the "one_point" field.
func OnePointHasPrefix(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldHasPrefix(FieldOnePoint, v))
}

// OnePointHasSuffix applies the HasSuffix predicate on the "one_point" field.
func OnePointHasSuffix(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldHasSuffix(FieldOnePoint, v))
}

// OnePointIsNil applies the IsNil predicate on the "one_point" field.
func OnePointIsNil() predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldIsNull(FieldOnePoint))
}

// OnePointNotNil applies the NotNil predicate on the "one_point" field.
func OnePointNotNil() predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldNotNull(FieldOnePoint))
}

// OnePointEqualFold applies the EqualFold predicate on the "one_point" field.
func OnePointEqualFold(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldEqualFold(FieldOnePoint, v))
}

// OnePointContainsFold applies the ContainsFold predicate on the "one_point" field.
func OnePointContainsFold(v string) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldContainsFold(FieldOnePoint, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasPaper applies the HasEdge predicate on the "paper" edge.
func HasPaper() predicate.DefaultSummary {
	return predicate.DefaultSummary(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PaperTable, PaperColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPaperWith applies the HasEdge predicate on the "paper" edge with a given conditions (other predicates).
func HasPaperWith(preds ...predicate.PaperMetadata) predicate.DefaultSummary {
	return predicate.DefaultSummary(func(s *sql.Selector) {
		step := newPaperStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DefaultSummary) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DefaultSummary) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DefaultSummary) predicate.DefaultSummary {
	return predicate.DefaultSummary(sql.NotPredicates(p))
}
