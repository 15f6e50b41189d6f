// Code generated by ent, DO NOT EDIT.

package customsummary

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/rainzero1960/paperscout/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldEQ(FieldUserID, v))
}

// PaperID applies equality check predicate on the "paper_id" field. It's identical to PaperIDEQ.
func PaperID(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldEQ(FieldPaperID, v))
}

// PromptID applies equality check predicate on the "prompt_id" field. It's identical to PromptIDEQ.
func PromptID(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldEQ(FieldPromptID, v))
}

// LlmProvider applies equality check predicate on the "llm_provider" field. It's identical to LlmProviderEQ.
func LlmProvider(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldEQ(FieldLlmProvider, v))
}

// LlmModel applies equality check predicate on the "llm_model" field. It's identical to LlmModelEQ.
func LlmModel(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldEQ(FieldLlmModel, v))
}

// Affinity applies equality check predicate on the "affinity" field. It's identical to AffinityEQ.
func Affinity(v int) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldEQ(FieldAffinity, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldEQ(FieldBody, v))
}

// OnePoint applies equality check predicate on the "one_point" field. It's identical to OnePointEQ.
func OnePoint(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldEQ(FieldOnePoint, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldContainsFold(FieldUserID, v))
}

// PaperIDEQ applies the EQ predicate on the "paper_id" field.
func PaperIDEQ(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldEQ(FieldPaperID, v))
}

// PaperIDNEQ applies the NEQ predicate on the "paper_id" field.
func PaperIDNEQ(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldNEQ(FieldPaperID, v))
}

// PaperIDIn applies the In predicate on the "paper_id" field.
func PaperIDIn(vs ...string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldIn(FieldPaperID, vs...))
}

// PaperIDNotIn applies the NotIn predicate on the "paper_id" field.
func PaperIDNotIn(vs ...string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldNotIn(FieldPaperID, vs...))
}

// PaperIDGT applies the GT predicate on the "paper_id" field.
func PaperIDGT(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldGT(FieldPaperID, v))
}

// PaperIDGTE applies the GTE predicate on the "paper_id" field.
func PaperIDGTE(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldGTE(FieldPaperID, v))
}

// PaperIDLT applies the LT predicate on the "paper_id" field.
func PaperIDLT(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldLT(FieldPaperID, v))
}

// PaperIDLTE applies the LTE predicate on the "paper_id" field.
func PaperIDLTE(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldLTE(FieldPaperID, v))
}

// PaperIDContains applies the Contains predicate on the "paper_id" field.
func PaperIDContains(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldContains(FieldPaperID, v))
}

// PaperIDHasPrefix applies the HasPrefix predicate on the "paper_id" field.
func PaperIDHasPrefix(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldHasPrefix(FieldPaperID, v))
}

// PaperIDHasSuffix applies the HasSuffix predicate on the "paper_id" field.
func PaperIDHasSuffix(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldHasSuffix(FieldPaperID, v))
}

// PaperIDEqualFold applies the EqualFold predicate on the "paper_id" field.
func PaperIDEqualFold(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldEqualFold(FieldPaperID, v))
}

// PaperIDContainsFold applies the ContainsFold predicate on the "paper_id" field.
func PaperIDContainsFold(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldContainsFold(FieldPaperID, v))
}

// PromptIDEQ applies the EQ predicate on the "prompt_id" field.
func PromptIDEQ(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldEQ(FieldPromptID, v))
}

// PromptIDNEQ applies the NEQ predicate on the "prompt_id" field.
func PromptIDNEQ(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldNEQ(FieldPromptID, v))
}

// PromptIDIn applies the In predicate on the "prompt_id" field.
func PromptIDIn(vs ...string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldIn(FieldPromptID, vs...))
}

// PromptIDNotIn applies the NotIn predicate on the "prompt_id" field.
func PromptIDNotIn(vs ...string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldNotIn(FieldPromptID, vs...))
}

// PromptIDGT applies the GT predicate on the "prompt_id" field.
func PromptIDGT(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldGT(FieldPromptID, v))
}

// PromptIDGTE applies the GTE predicate on the "prompt_id" field.
func PromptIDGTE(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldGTE(FieldPromptID, v))
}

// PromptIDLT applies the LT predicate on the "prompt_id" field.
func PromptIDLT(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldLT(FieldPromptID, v))
}

// PromptIDLTE applies the LTE predicate on the "prompt_id" field.
func PromptIDLTE(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldLTE(FieldPromptID, v))
}

// PromptIDContains applies the Contains predicate on the "prompt_id" field.
func PromptIDContains(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldContains(FieldPromptID, v))
}

// PromptIDHasPrefix applies the HasPrefix predicate on the "prompt_id" field.
func PromptIDHasPrefix(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldHasPrefix(FieldPromptID, v))
}

// PromptIDHasSuffix applies the HasSuffix predicate on the "prompt_id" field.
func PromptIDHasSuffix(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldHasSuffix(FieldPromptID, v))
}

// PromptIDEqualFold applies the EqualFold predicate on the "prompt_id" field.
func PromptIDEqualFold(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldEqualFold(FieldPromptID, v))
}

// PromptIDContainsFold applies the ContainsFold predicate on the "prompt_id" field.
func PromptIDContainsFold(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldContainsFold(FieldPromptID, v))
}

// LlmProviderEQ applies the EQ predicate on the "llm_provider" field.
func LlmProviderEQ(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldEQ(FieldLlmProvider, v))
}

// LlmProviderNEQ applies the NEQ predicate on the "llm_provider" field.
func LlmProviderNEQ(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldNEQ(FieldLlmProvider, v))
}

// LlmProviderIn applies the In predicate on the "llm_provider" field.
func LlmProviderIn(vs ...string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldIn(FieldLlmProvider, vs...))
}

// LlmProviderNotIn applies the NotIn predicate on the "llm_provider" field.
func LlmProviderNotIn(vs ...string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldNotIn(FieldLlmProvider, vs...))
}

// LlmProviderGT applies the GT predicate on the "llm_provider" field.
func LlmProviderGT(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldGT(FieldLlmProvider, v))
}

// LlmProviderGTE applies the GTE predicate on the "llm_provider" field.
func LlmProviderGTE(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldGTE(FieldLlmProvider, v))
}

// LlmProviderLT applies the LT predicate on the "llm_provider" field.
func LlmProviderLT(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldLT(FieldLlmProvider, v))
}

// LlmProviderLTE applies the LTE predicate on the "llm_provider" field.
func LlmProviderLTE(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldLTE(FieldLlmProvider, v))
}

// LlmProviderContains applies the Contains predicate on the "llm_provider" field.
func LlmProviderContains(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldContains(FieldLlmProvider, v))
}

// LlmProviderHasPrefix applies the HasPrefix predicate on the "llm_provider" field.
func LlmProviderHasPrefix(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldHasPrefix(FieldLlmProvider, v))
}

// LlmProviderHasSuffix applies the HasSuffix predicate on the "llm_provider" field.
func LlmProviderHasSuffix(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldHasSuffix(FieldLlmProvider, v))
}

// LlmProviderEqualFold applies the EqualFold predicate on the "llm_provider" field.
func LlmProviderEqualFold(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldEqualFold(FieldLlmProvider, v))
}

// LlmProviderContainsFold applies the ContainsFold predicate on the "llm_provider" field.
func LlmProviderContainsFold(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldContainsFold(FieldLlmProvider, v))
}

// LlmModelEQ applies the EQ predicate on the "llm_model" field.
func LlmModelEQ(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldEQ(FieldLlmModel, v))
}

// LlmModelNEQ applies the NEQ predicate on the "llm_model" field.
func LlmModelNEQ(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldNEQ(FieldLlmModel, v))
}

// LlmModelIn applies the In predicate on the "llm_model" field.
func LlmModelIn(vs ...string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldIn(FieldLlmModel, vs...))
}

// LlmModelNotIn applies the NotIn predicate on the "llm_model" field.
func LlmModelNotIn(vs ...string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldNotIn(FieldLlmModel, vs...))
}

// LlmModelGT applies the GT predicate on the "llm_model" field.
func LlmModelGT(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldGT(FieldLlmModel, v))
}

// LlmModelGTE applies the GTE predicate on the "llm_model" field.
func LlmModelGTE(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldGTE(FieldLlmModel, v))
}

// LlmModelLT applies the LT predicate on the "llm_model" field.
func LlmModelLT(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldLT(FieldLlmModel, v))
}

// LlmModelLTE applies the LTE predicate on the "llm_model" field.
func LlmModelLTE(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldLTE(FieldLlmModel, v))
}

// LlmModelContains applies the Contains predicate on the "llm_model" field.
func LlmModelContains(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldContains(FieldLlmModel, v))
}

// LlmModelHasPrefix applies the HasPrefix predicate on the "llm_model" field.
func LlmModelHasPrefix(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldHasPrefix(FieldLlmModel, v))
}

// LlmModelHasSuffix applies the HasSuffix predicate on the "llm_model" field.
func LlmModelHasSuffix(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldHasSuffix(FieldLlmModel, v))
}

// LlmModelEqualFold applies the EqualFold predicate on the "llm_model" field.
func LlmModelEqualFold(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldEqualFold(FieldLlmModel, v))
}

// LlmModelContainsFold applies the ContainsFold predicate on the "llm_model" field.
func LlmModelContainsFold(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldContainsFold(FieldLlmModel, v))
}

// CharacterEQ applies the EQ predicate on the "character" field.
func CharacterEQ(v Character) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldEQ(FieldCharacter, v))
}

// CharacterNEQ applies the NEQ predicate on the "character" field.
func CharacterNEQ(v Character) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldNEQ(FieldCharacter, v))
}

// CharacterIn applies the In predicate on the "character" field.
func CharacterIn(vs ...Character) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldIn(FieldCharacter, vs...))
}

// CharacterNotIn applies the NotIn predicate on the "character" field.
func CharacterNotIn(vs ...Character) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldNotIn(FieldCharacter, vs...))
}

// AffinityEQ applies the EQ predicate on the "affinity" field.
func AffinityEQ(v int) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldEQ(FieldAffinity, v))
}

// AffinityNEQ applies the NEQ predicate on the "affinity" field.
func AffinityNEQ(v int) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldNEQ(FieldAffinity, v))
}

// AffinityIn applies the In predicate on the "affinity" field.
func AffinityIn(vs ...int) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldIn(FieldAffinity, vs...))
}

// AffinityNotIn applies the NotIn predicate on the "affinity" field.
func AffinityNotIn(vs ...int) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldNotIn(FieldAffinity, vs...))
}

// AffinityGT applies the GT predicate on the "affinity" field.
func AffinityGT(v int) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldGT(FieldAffinity, v))
}

// AffinityGTE applies the GTE predicate on the "affinity" field.
func AffinityGTE(v int) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldGTE(FieldAffinity, v))
}

// AffinityLT applies the LT predicate on the "affinity" field.
func AffinityLT(v int) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldLT(FieldAffinity, v))
}

// AffinityLTE applies the LTE predicate on the "affinity" field.
func AffinityLTE(v int) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldLTE(FieldAffinity, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldContainsFold(FieldBody, v))
}

// OnePointEQ applies the EQ predicate on the "one_point" field.
func OnePointEQ(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldEQ(FieldOnePoint, v))
}

// OnePointNEQ applies the NEQ predicate on the "one_point" field.
func OnePointNEQ(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldNEQ(FieldOnePoint, v))
}

// OnePointIn applies the In predicate on the "one_point" field.
func OnePointIn(vs ...string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldIn(FieldOnePoint, vs...))
}

// OnePointNotIn applies the NotIn predicate on the "one_point" field.
func OnePointNotIn(vs ...string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldNotIn(FieldOnePoint, vs...))
}

// OnePointGT applies the GT predicate on the "one_point" field.
func OnePointGT(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldGT(FieldOnePoint, v))
}

// OnePointGTE applies the GTE predicate on the "one_point" field.
func OnePointGTE(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldGTE(FieldOnePoint, v))
}

// OnePointLT applies the LT predicate on the "one_point" field.
func OnePointLT(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldLT(FieldOnePoint, v))
}

// OnePointLTE applies the LTE predicate on the "one_point" field.
func OnePointLTE(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldLTE(FieldOnePoint, v))
}

// OnePointContains applies the Contains predicate on the "one_point" field.
func OnePointContains(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldContains(FieldOnePoint, v))
}

// OnePointHasPrefix applies the HasPrefix predicate on the "one_point" field.
func OnePointHasPrefix(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldHasPrefix(FieldOnePoint, v))
}

// OnePointHasSuffix applies the HasSuffix predicate on the "one_point" field.
func OnePointHasSuffix(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldHasSuffix(FieldOnePoint, v))
}

// OnePointIsNil applies the IsNil predicate on the "one_point" field.
func OnePointIsNil() predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldIsNull(FieldOnePoint))
}

// OnePointNotNil applies the NotNil predicate on the "one_point" field.
func OnePointNotNil() predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldNotNull(FieldOnePoint))
}

// OnePointEqualFold applies the EqualFold predicate on the "one_point" field.
func OnePointEqualFold(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldEqualFold(FieldOnePoint, v))
}

// OnePointContainsFold applies the ContainsFold predicate on the "one_point" field.
func OnePointContainsFold(v string) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldContainsFold(FieldOnePoint, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CustomSummary {
	return predicate.CustomSummary(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.CustomSummary {
	return predicate.CustomSummary(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.CustomSummary {
	return predicate.CustomSummary(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPaper applies the HasEdge predicate on the "paper" edge.
func HasPaper() predicate.CustomSummary {
	return predicate.CustomSummary(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PaperTable, PaperColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPaperWith applies the HasEdge predicate on the "paper" edge with a given conditions (other predicates).
func HasPaperWith(preds ...predicate.PaperMetadata) predicate.CustomSummary {
	return predicate.CustomSummary(func(s *sql.Selector) {
		step := newPaperStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPrompt applies the HasEdge predicate on the "prompt" edge.
func HasPrompt() predicate.CustomSummary {
	return predicate.CustomSummary(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PromptTable, PromptColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPromptWith applies the HasEdge predicate on the "prompt" edge with a given conditions (other predicates).
func HasPromptWith(preds ...predicate.Prompt) predicate.CustomSummary {
	return predicate.CustomSummary(func(s *sql.Selector) {
		step := newPromptStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CustomSummary) predicate.CustomSummary {
	return predicate.CustomSummary(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CustomSummary) predicate.CustomSummary {
	return predicate.CustomSummary(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CustomSummary) predicate.CustomSummary {
	return predicate.CustomSummary(sql.NotPredicates(p))
}
