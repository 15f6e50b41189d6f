// Code generated by ent, DO NOT EDIT.

package papermetadata

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/rainzero1960/paperscout/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldContainsFold(FieldID, id))
}

// ExternalID applies equality check predicate on the "external_id" field. It's identical to ExternalIDEQ.
func ExternalID(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldEQ(FieldExternalID, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldEQ(FieldURL, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldEQ(FieldTitle, v))
}

// Authors applies equality check predicate on the "authors" field. It's identical to AuthorsEQ.
func Authors(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldEQ(FieldAuthors, v))
}

// Abstract applies equality check predicate on the "abstract" field. It's identical to AbstractEQ.
func Abstract(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldEQ(FieldAbstract, v))
}

// FullText applies equality check predicate on the "full_text" field. It's identical to FullTextEQ.
func FullText(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldEQ(FieldFullText, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldEQ(FieldUpdatedAt, v))
}

// ExternalIDEQ applies the EQ predicate on the "external_id" field.
func ExternalIDEQ(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldEQ(FieldExternalID, v))
}

// ExternalIDNEQ applies the NEQ predicate on the "external_id" field.
func ExternalIDNEQ(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldNEQ(FieldExternalID, v))
}

// ExternalIDIn applies the In predicate on the "external_id" field.
func ExternalIDIn(vs ...string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldIn(FieldExternalID, vs...))
}

// ExternalIDNotIn applies the NotIn predicate on the "external_id" field.
func ExternalIDNotIn(vs ...string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldNotIn(FieldExternalID, vs...))
}

// ExternalIDGT applies the GT predicate on the "external_id" field.
func ExternalIDGT(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldGT(FieldExternalID, v))
}

// ExternalIDGTE applies the GTE predicate on the "external_id" field.
func ExternalIDGTE(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldGTE(FieldExternalID, v))
}

// ExternalIDLT applies the LT predicate on the "external_id" field.
func ExternalIDLT(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldLT(FieldExternalID, v))
}

// ExternalIDLTE applies the LTE predicate on the "external_id" field.
func ExternalIDLTE(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldLTE(FieldExternalID, v))
}

// ExternalIDContains applies the Contains predicate on the "external_id" field.
func ExternalIDContains(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldContains(FieldExternalID, v))
}

// ExternalIDHasPrefix applies the HasPrefix predicate on the "external_id" field.
func ExternalIDHasPrefix(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldHasPrefix(FieldExternalID, v))
}

// ExternalIDHasSuffix applies the HasSuffix predicate on the "external_id" field.
func ExternalIDHasSuffix(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldHasSuffix(FieldExternalID, v))
}

// ExternalIDEqualFold applies the EqualFold predicate on the "external_id" field.
func ExternalIDEqualFold(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldEqualFold(FieldExternalID, v))
}

// ExternalIDContainsFold applies the ContainsFold predicate on the "external_id" field.
func ExternalIDContainsFold(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldContainsFold(FieldExternalID, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldContainsFold(FieldURL, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldContainsFold(FieldTitle, v))
}

// AuthorsEQ applies the EQ predicate on the "authors" field.
func AuthorsEQ(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldEQ(FieldAuthors, v))
}

// AuthorsNEQ applies the NEQ predicate on the "authors" field.
func AuthorsNEQ(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldNEQ(FieldAuthors, v))
}

// AuthorsIn applies the In predicate on the "authors" field.
func AuthorsIn(vs ...string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldIn(FieldAuthors, vs...))
}

// AuthorsNotIn applies the NotIn predicate on the "authors" field.
func AuthorsNotIn(vs ...string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldNotIn(FieldAuthors, vs...))
}

// AuthorsGT applies the GT predicate on the "authors" field.
func AuthorsGT(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldGT(FieldAuthors, v))
}

// AuthorsGTE applies the GTE predicate on the "authors" field.
func AuthorsGTE(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldGTE(FieldAuthors, v))
}

// AuthorsLT applies the LT predicate on the "authors" field.
func AuthorsLT(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldLT(FieldAuthors, v))
}

// AuthorsLTE applies the LTE predicate on the "authors" field.
func AuthorsLTE(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldLTE(FieldAuthors, v))
}

// AuthorsContains applies the Contains predicate on the "authors" field.
func AuthorsContains(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldContains(FieldAuthors, v))
}

// AuthorsHasPrefix applies the HasPrefix predicate on the "authors" field.
func AuthorsHasPrefix(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldHasPrefix(FieldAuthors, v))
}

// AuthorsHasSuffix applies the HasSuffix predicate on the "authors" field.
func AuthorsHasSuffix(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldHasSuffix(FieldAuthors, v))
}

// AuthorsIsNil applies the IsNil predicate on the "authors" field.
func AuthorsIsNil() predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldIsNull(FieldAuthors))
}

// AuthorsNotNil applies the NotNil predicate on the "authors" field.
func AuthorsNotNil() predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldNotNull(FieldAuthors))
}

// AuthorsEqualFold applies the EqualFold predicate on the "authors" field.
func AuthorsEqualFold(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldEqualFold(FieldAuthors, v))
}

// AuthorsContainsFold applies the ContainsFold predicate on the "authors" field.
func AuthorsContainsFold(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldContainsFold(FieldAuthors, v))
}

// AbstractEQ applies the EQ predicate on the "abstract" field.
func AbstractEQ(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldEQ(FieldAbstract, v))
}

// AbstractNEQ applies the NEQ predicate on the "abstract" field.
func AbstractNEQ(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldNEQ(FieldAbstract, v))
}

// AbstractIn applies the In predicate on the "abstract" field.
func AbstractIn(vs ...string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldIn(FieldAbstract, vs...))
}

// AbstractNotIn applies the NotIn predicate on the "abstract" field.
func AbstractNotIn(vs ...string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldNotIn(FieldAbstract, vs...))
}

// AbstractGT applies the GT predicate on the "abstract" field.
func AbstractGT(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldGT(FieldAbstract, v))
}

// AbstractGTE applies the GTE predicate on the "abstract" field.
func AbstractGTE(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldGTE(FieldAbstract, v))
}

// AbstractLT applies the LT predicate on the "abstract" field.
func AbstractLT(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldLT(FieldAbstract, v))
}

// AbstractLTE applies the LTE predicate on the "abstract" field.
func AbstractLTE(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldLTE(FieldAbstract, v))
}

// AbstractContains applies the Contains predicate on the "abstract" field.
func AbstractContains(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldContains(FieldAbstract, v))
}

// AbstractHasPrefix applies the HasPrefix predicate on the "abstract" field.
func AbstractHasPrefix(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldHasPrefix(FieldAbstract, v))
}

// AbstractHasSuffix applies the HasSuffix predicate on the "abstract" field.
func AbstractHasSuffix(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldHasSuffix(FieldAbstract, v))
}

// AbstractIsNil applies the IsNil predicate on the "abstract" field.
func AbstractIsNil() predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldIsNull(FieldAbstract))
}

// AbstractNotNil applies the NotNil predicate on the "abstract" field.
func AbstractNotNil() predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldNotNull(FieldAbstract))
}

// AbstractEqualFold applies the EqualFold predicate on the "abstract" field.
func AbstractEqualFold(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldEqualFold(FieldAbstract, v))
}

// AbstractContainsFold applies the ContainsFold predicate on the "abstract" field.
func AbstractContainsFold(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldContainsFold(FieldAbstract, v))
}

// FullTextEQ applies the EQ predicate on the "full_text" field.
func FullTextEQ(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldEQ(FieldFullText, v))
}

// FullTextNEQ applies the NEQ predicate on the "full_text" field.
func FullTextNEQ(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldNEQ(FieldFullText, v))
}

// FullTextIn applies the In predicate on the "full_text" field.
func FullTextIn(vs ...string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldIn(FieldFullText, vs...))
}

// FullTextNotIn applies the NotIn predicate on the "full_text" field.
func FullTextNotIn(vs ...string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldNotIn(FieldFullText, vs...))
}

// FullTextGT applies the GT predicate on the "full_text" field.
func FullTextGT(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldGT(FieldFullText, v))
}

// FullTextGTE applies the GTE predicate on the "full_text" field.
func FullTextGTE(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldGTE(FieldFullText, v))
}

// FullTextLT applies the LT predicate on the "full_text" field.
func FullTextLT(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldLT(FieldFullText, v))
}

// FullTextLTE applies the LTE predicate on the "full_text" field.
func FullTextLTE(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldLTE(FieldFullText, v))
}

// FullTextContains applies the Contains predicate on the "full_text" field.
func FullTextContains(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldContains(FieldFullText, v))
}

// FullTextHasPrefix applies the HasPrefix predicate on the "full_text" field.
func FullTextHasPrefix(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldHasPrefix(FieldFullText, v))
}

// FullTextHasSuffix applies the HasSuffix predicate on the "full_text" field.
func FullTextHasSuffix(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldHasSuffix(FieldFullText, v))
}

// FullTextIsNil applies the IsNil predicate on the "full_text" field.
func FullTextIsNil() predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldIsNull(FieldFullText))
}

// FullTextNotNil applies the NotNil predicate on the "full_text" field.
func FullTextNotNil() predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldNotNull(FieldFullText))
}

// FullTextEqualFold applies the EqualFold predicate on the "full_text" field.
func FullTextEqualFold(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldEqualFold(FieldFullText, v))
}

// FullTextContainsFold applies the ContainsFold predicate on the "full_text" field.
func FullTextContainsFold(v string) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldContainsFold(FieldFullText, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasDefaultSummaries applies the HasEdge predicate on the "default_summaries" edge.
func HasDefaultSummaries() predicate.PaperMetadata {
	return predicate.PaperMetadata(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DefaultSummariesTable, DefaultSummariesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDefaultSummariesWith applies the HasEdge predicate on the "default_summaries" edge with a given conditions (other predicates).
func HasDefaultSummariesWith(preds ...predicate.DefaultSummary) predicate.PaperMetadata {
	return predicate.PaperMetadata(func(s *sql.Selector) {
		step := newDefaultSummariesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCustomSummaries applies the HasEdge predicate on the "custom_summaries" edge.
func HasCustomSummaries() predicate.PaperMetadata {
	return predicate.PaperMetadata(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CustomSummariesTable, CustomSummariesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCustomSummariesWith applies the HasEdge predicate on the "custom_summaries" edge with a given conditions (other predicates).
func HasCustomSummariesWith(preds ...predicate.CustomSummary) predicate.PaperMetadata {
	return predicate.PaperMetadata(func(s *sql.Selector) {
		step := newCustomSummariesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasUserLinks applies the HasEdge predicate on the "user_links" edge.
func HasUserLinks() predicate.PaperMetadata {
	return predicate.PaperMetadata(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, UserLinksTable, UserLinksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserLinksWith applies the HasEdge predicate on the "user_links" edge with a given conditions (other predicates).
func HasUserLinksWith(preds ...predicate.UserPaperLink) predicate.PaperMetadata {
	return predicate.PaperMetadata(func(s *sql.Selector) {
		step := newUserLinksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PaperMetadata) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PaperMetadata) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PaperMetadata) predicate.PaperMetadata {
	return predicate.PaperMetadata(sql.NotPredicates(p))
}
