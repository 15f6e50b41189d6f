// Code generated by ent, DO NOT EDIT.

package userpaperlink

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/rainzero1960/paperscout/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldEQ(FieldUserID, v))
}

// PaperID applies equality check predicate on the "paper_id" field. It's identical to PaperIDEQ.
func PaperID(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldEQ(FieldPaperID, v))
}

// Tags applies equality check predicate on the "tags" field. It's identical to TagsEQ.
func Tags(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldEQ(FieldTags, v))
}

// Memo applies equality check predicate on the "memo" field. It's identical to MemoEQ.
func Memo(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldEQ(FieldMemo, v))
}

// SelectedDefaultSummaryID applies equality check predicate on the "selected_default_summary_id" field. It's identical to SelectedDefaultSummaryIDEQ.
func SelectedDefaultSummaryID(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldEQ(FieldSelectedDefaultSummaryID, v))
}

// SelectedCustomSummaryID applies equality check predicate on the "selected_custom_summary_id" field. It's identical to SelectedCustomSummaryIDEQ.
func SelectedCustomSummaryID(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldEQ(FieldSelectedCustomSummaryID, v))
}

// LastAccessed applies equality check predicate on the "last_accessed" field. It's identical to LastAccessedEQ.
func LastAccessed(v time.Time) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldEQ(FieldLastAccessed, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldContainsFold(FieldUserID, v))
}

// PaperIDEQ applies the EQ predicate on the "paper_id" field.
func PaperIDEQ(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldEQ(FieldPaperID, v))
}

// PaperIDNEQ applies the NEQ predicate on the "paper_id" field.
func PaperIDNEQ(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldNEQ(FieldPaperID, v))
}

// PaperIDIn applies the In predicate on the "paper_id" field.
func PaperIDIn(vs ...string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldIn(FieldPaperID, vs...))
}

// PaperIDNotIn applies the NotIn predicate on the "paper_id" field.
func PaperIDNotIn(vs ...string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldNotIn(FieldPaperID, vs...))
}

// PaperIDGT applies the GT predicate on the "paper_id" field.
func PaperIDGT(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldGT(FieldPaperID, v))
}

// PaperIDGTE applies the GTE predicate on the "paper_id" field.
func PaperIDGTE(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldGTE(FieldPaperID, v))
}

// PaperIDLT applies the LT predicate on the "paper_id" field.
func PaperIDLT(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldLT(FieldPaperID, v))
}

// PaperIDLTE applies the LTE predicate on the "paper_id" field.
func PaperIDLTE(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldLTE(FieldPaperID, v))
}

// PaperIDContains applies the Contains predicate on the "paper_id" field.
func PaperIDContains(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldContains(FieldPaperID, v))
}

// PaperIDHasPrefix applies the HasPrefix predicate on the "paper_id" field.
func PaperIDHasPrefix(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldHasPrefix(FieldPaperID, v))
}

// PaperIDHasSuffix applies the HasSuffix predicate on the "paper_id" field.
func PaperIDHasSuffix(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldHasSuffix(FieldPaperID, v))
}

// PaperIDEqualFold applies the EqualFold predicate on the "paper_id" field.
func PaperIDEqualFold(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldEqualFold(FieldPaperID, v))
}

// PaperIDContainsFold applies the ContainsFold predicate on the "paper_id" field.
func PaperIDContainsFold(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldContainsFold(FieldPaperID, v))
}

// TagsEQ applies the EQ predicate on the "tags" field.
func TagsEQ(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldEQ(FieldTags, v))
}

// TagsNEQ applies the NEQ predicate on the "tags" field.
func TagsNEQ(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldNEQ(FieldTags, v))
}

// TagsIn applies the In predicate on the "tags" field.
func TagsIn(vs ...string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldIn(FieldTags, vs...))
}

// TagsNotIn applies the NotIn predicate on the "tags" field.
func TagsNotIn(vs ...string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldNotIn(FieldTags, vs...))
}

// TagsGT applies the GT predicate on the "tags" field.
func TagsGT(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldGT(FieldTags, v))
}

// TagsGTE applies the GTE predicate on the "tags" field.
func TagsGTE(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldGTE(FieldTags, v))
}

// TagsLT applies the LT predicate on the "tags" field.
func TagsLT(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldLT(FieldTags, v))
}

// TagsLTE applies the LTE predicate on the "tags" field.
func TagsLTE(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldLTE(FieldTags, v))
}

// TagsContains applies the Contains predicate on the "tags" field.
func TagsContains(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldContains(FieldTags, v))
}

// TagsHasPrefix applies the HasPrefix predicate on the "tags" field.
func TagsHasPrefix(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldHasPrefix(FieldTags, v))
}

// TagsHasSuffix applies the HasSuffix predicate on the "tags" field.
func TagsHasSuffix(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldHasSuffix(FieldTags, v))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldNotNull(FieldTags))
}

// TagsEqualFold applies the EqualFold predicate on the "tags" field.
func TagsEqualFold(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldEqualFold(FieldTags, v))
}

// TagsContainsFold applies the ContainsFold predicate on the "tags" field.
func TagsContainsFold(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldContainsFold(FieldTags, v))
}

// MemoEQ applies the EQ predicate on the "memo" field.
func MemoEQ(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldEQ(FieldMemo, v))
}

// MemoNEQ applies the NEQ predicate on the "memo" field.
func MemoNEQ(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldNEQ(FieldMemo, v))
}

// MemoIn applies the In predicate on the "memo" field.
func MemoIn(vs ...string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldIn(FieldMemo, vs...))
}

// MemoNotIn applies the NotIn predicate on the "memo" field.
func MemoNotIn(vs ...string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldNotIn(FieldMemo, vs...))
}

// MemoGT applies the GT predicate on the "memo" field.
func MemoGT(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldGT(FieldMemo, v))
}

// MemoGTE applies the GTE predicate on the "memo" field.
func MemoGTE(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldGTE(FieldMemo, v))
}

// MemoLT applies the LT predicate on the "memo" field.
func MemoLT(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldLT(FieldMemo, v))
}

// MemoLTE applies the LTE predicate on the "memo" field.
func MemoLTE(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldLTE(FieldMemo, v))
}

// MemoContains applies the Contains predicate on the "memo" field.
func MemoContains(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldContains(FieldMemo, v))
}

// MemoHasPrefix applies the HasPrefix predicate on the "memo" field.
func MemoHasPrefix(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldHasPrefix(FieldMemo, v))
}

// MemoHasSuffix applies the HasSuffix predicate on the "memo" field.
func MemoHasSuffix(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldHasSuffix(FieldMemo, v))
}

// MemoIsNil applies the IsNil predicate on the "memo" field.
func MemoIsNil() predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldIsNull(FieldMemo))
}

// MemoNotNil applies the NotNil predicate on the "memo" field.
func MemoNotNil() predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldNotNull(FieldMemo))
}

// MemoEqualFold applies the EqualFold predicate on the "memo" field.
func MemoEqualFold(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldEqualFold(FieldMemo, v))
}

// MemoContainsFold applies the ContainsFold predicate on the "memo" field.
func MemoContainsFold(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldContainsFold(FieldMemo, v))
}

// SelectedDefaultSummaryIDEQ applies the EQ predicate on the "selected_default_summary_id" field.
func SelectedDefaultSummaryIDEQ(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldEQ(FieldSelectedDefaultSummaryID, v))
}

// SelectedDefaultSummaryIDNEQ applies the NEQ predicate on the "selected_default_summary_id" field.
func SelectedDefaultSummaryIDNEQ(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldNEQ(FieldSelectedDefaultSummaryID, v))
}

// SelectedDefaultSummaryIDIn applies the In predicate on the "selected_default_summary_id" field.
func SelectedDefaultSummaryIDIn(vs ...string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldIn(FieldSelectedDefaultSummaryID, vs...))
}

// SelectedDefaultSummaryIDNotIn applies the NotIn predicate on the "selected_default_summary_id" field.
func SelectedDefaultSummaryIDNotIn(vs ...string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldNotIn(FieldSelectedDefaultSummaryID, vs...))
}

// SelectedDefaultSummaryIDGT applies the GT predicate on the "selected_default_summary_id" field.
func SelectedDefaultSummaryIDGT(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldGT(FieldSelectedDefaultSummaryID, v))
}

// SelectedDefaultSummaryIDGTE applies the GTE predicate on the "selected_default_summary_id" field.
func SelectedDefaultSummaryIDGTE(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldGTE(FieldSelectedDefaultSummaryID, v))
}

// SelectedDefaultSummaryIDLT applies the LT predicate on the "selected_default_summary_id" field.
func SelectedDefaultSummaryIDLT(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldLT(FieldSelectedDefaultSummaryID, v))
}

// SelectedDefaultSummaryIDLTE applies the LTE predicate on the "selected_default_summary_id" field.
func SelectedDefaultSummaryIDLTE(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldLTE(FieldSelectedDefaultSummaryID, v))
}

// SelectedDefaultSummaryIDContains applies the Contains predicate on the "selected_default_summary_id" field.
func SelectedDefaultSummaryIDContains(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldContains(FieldSelectedDefaultSummaryID, v))
}

// SelectedDefaultSummaryIDHasPrefix applies the HasPrefix predicate on the "selected_default_summary_id" field.
func SelectedDefaultSummaryIDHasPrefix(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldHasPrefix(FieldSelectedDefaultSummaryID, v))
}

// SelectedDefaultSummaryIDHasSuffix applies the HasSuffix predicate on the "selected_default_summary_id" field.
func SelectedDefaultSummaryIDHasSuffix(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldHasSuffix(FieldSelectedDefaultSummaryID, v))
}

// SelectedDefaultSummaryIDIsNil applies the IsNil predicate on the "selected_default_summary_id" field.
func SelectedDefaultSummaryIDIsNil() predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldIsNull(FieldSelectedDefaultSummaryID))
}

// SelectedDefaultSummaryIDNotNil applies the NotNil predicate on the "selected_default_summary_id" field.
func SelectedDefaultSummaryIDNotNil() predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldNotNull(FieldSelectedDefaultSummaryID))
}

// SelectedDefaultSummaryIDEqualFold applies the EqualFold predicate on the "selected_default_summary_id" field.
func SelectedDefaultSummaryIDEqualFold(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldEqualFold(FieldSelectedDefaultSummaryID, v))
}

// SelectedDefaultSummaryIDContainsFold applies the ContainsFold predicate on the "selected_default_summary_id" field.
func SelectedDefaultSummaryIDContainsFold(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldContainsFold(FieldSelectedDefaultSummaryID, v))
}

// SelectedCustomSummaryIDEQ applies the EQ predicate on the "selected_custom_summary_id" field.
func SelectedCustomSummaryIDEQ(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldEQ(FieldSelectedCustomSummaryID, v))
}

// SelectedCustomSummaryIDNEQ applies the NEQ predicate on the "selected_custom_summary_id" field.
func SelectedCustomSummaryIDNEQ(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldNEQ(FieldSelectedCustomSummaryID, v))
}

// SelectedCustomSummaryIDIn applies the In predicate on the "selected_custom_summary_id" field.
func SelectedCustomSummaryIDIn(vs ...string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldIn(FieldSelectedCustomSummaryID, vs...))
}

// SelectedCustomSummaryIDNotIn applies the NotIn predicate on the "selected_custom_summary_id" field.
func SelectedCustomSummaryIDNotIn(vs ...string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldNotIn(FieldSelectedCustomSummaryID, vs...))
}

// SelectedCustomSummaryIDGT applies the GT predicate on the "selected_custom_summary_id" field.
func SelectedCustomSummaryIDGT(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldGT(FieldSelectedCustomSummaryID, v))
}

// SelectedCustomSummaryIDGTE applies the GTE predicate on the "selected_custom_summary_id" field.
func SelectedCustomSummaryIDGTE(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldGTE(FieldSelectedCustomSummaryID, v))
}

// SelectedCustomSummaryIDLT applies the LT predicate on the "selected_custom_summary_id" field.
func SelectedCustomSummaryIDLT(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldLT(FieldSelectedCustomSummaryID, v))
}

// SelectedCustomSummaryIDLTE applies the LTE predicate on the "selected_custom_summary_id" field.
func SelectedCustomSummaryIDLTE(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldLTE(FieldSelectedCustomSummaryID, v))
}

// SelectedCustomSummaryIDContains applies the Contains predicate on the "selected_custom_summary_id" field.
func SelectedCustomSummaryIDContains(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldContains(FieldSelectedCustomSummaryID, v))
}

// SelectedCustomSummaryIDHasPrefix applies the HasPrefix predicate on the "selected_custom_summary_id" field.
func SelectedCustomSummaryIDHasPrefix(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldHasPrefix(FieldSelectedCustomSummaryID, v))
}

// SelectedCustomSummaryIDHasSuffix applies the HasSuffix predicate on the "selected_custom_summary_id" field.
func SelectedCustomSummaryIDHasSuffix(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldHasSuffix(FieldSelectedCustomSummaryID, v))
}

// SelectedCustomSummaryIDIsNil applies the IsNil predicate on the "selected_custom_summary_id" field.
func SelectedCustomSummaryIDIsNil() predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldIsNull(FieldSelectedCustomSummaryID))
}

// SelectedCustomSummaryIDNotNil applies the NotNil predicate on the "selected_custom_summary_id" field.
func SelectedCustomSummaryIDNotNil() predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldNotNull(FieldSelectedCustomSummaryID))
}

// SelectedCustomSummaryIDEqualFold applies the EqualFold predicate on the "selected_custom_summary_id" field.
func SelectedCustomSummaryIDEqualFold(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldEqualFold(FieldSelectedCustomSummaryID, v))
}

// SelectedCustomSummaryIDContainsFold applies the ContainsFold predicate on the "selected_custom_summary_id" field.
func SelectedCustomSummaryIDContainsFold(v string) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldContainsFold(FieldSelectedCustomSummaryID, v))
}

// LastAccessedEQ applies the EQ predicate on the "last_accessed" field.
func LastAccessedEQ(v time.Time) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldEQ(FieldLastAccessed, v))
}

// LastAccessedNEQ applies the NEQ predicate on the "last_accessed" field.
func LastAccessedNEQ(v time.Time) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldNEQ(FieldLastAccessed, v))
}

// LastAccessedIn applies the In predicate on the "last_accessed" field.
func LastAccessedIn(vs ...time.Time) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldIn(FieldLastAccessed, vs...))
}

// LastAccessedNotIn applies the NotIn predicate on the "last_accessed" field.
func LastAccessedNotIn(vs ...time.Time) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldNotIn(FieldLastAccessed, vs...))
}

// LastAccessedGT applies the GT predicate on the "last_accessed" field.
func LastAccessedGT(v time.Time) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldGT(FieldLastAccessed, v))
}

// LastAccessedGTE applies the GTE predicate on the "last_accessed" field.
func LastAccessedGTE(v time.Time) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldGTE(FieldLastAccessed, v))
}

// LastAccessedLT applies the LT predicate on the "last_accessed" field.
func LastAccessedLT(v time.Time) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldLT(FieldLastAccessed, v))
}

// LastAccessedLTE applies the LTE predicate on the "last_accessed" field.
func LastAccessedLTE(v time.Time) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldLTE(FieldLastAccessed, v))
}

// LastAccessedIsNil applies the IsNil predicate on the "last_accessed" field.
func LastAccessedIsNil() predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldIsNull(FieldLastAccessed))
}

// LastAccessedNotNil applies the NotNil predicate on the "last_accessed" field.
func LastAccessedNotNil() predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldNotNull(FieldLastAccessed))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.UserPaperLink {
	return predicate.UserPaperLink(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.UserPaperLink {
	return predicate.UserPaperLink(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPaper applies the HasEdge predicate on the "paper" edge.
func HasPaper() predicate.UserPaperLink {
	return predicate.UserPaperLink(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PaperTable, PaperColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPaperWith applies the HasEdge predicate on the "paper" edge with a given conditions (other predicates).
func HasPaperWith(preds ...predicate.PaperMetadata) predicate.UserPaperLink {
	return predicate.UserPaperLink(func(s *sql.Selector) {
		step := newPaperStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserPaperLink) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserPaperLink) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserPaperLink) predicate.UserPaperLink {
	return predicate.UserPaperLink(sql.NotPredicates(p))
}
