// Code generated by ent, DO NOT EDIT.

package paperchatsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/rainzero1960/paperscout/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldEQ(FieldUserID, v))
}

// PaperID applies equality check predicate on the "paper_id" field. It's identical to PaperIDEQ.
func PaperID(v string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldEQ(FieldPaperID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldEQ(FieldTitle, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldContainsFold(FieldUserID, v))
}

// PaperIDEQ applies the EQ predicate on the "paper_id" field.
func PaperIDEQ(v string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldEQ(FieldPaperID, v))
}

// PaperIDNEQ applies the NEQ predicate on the "paper_id" field.
func PaperIDNEQ(v string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldNEQ(FieldPaperID, v))
}

// PaperIDIn applies the In predicate on the "paper_id" field.
func PaperIDIn(vs ...string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldIn(FieldPaperID, vs...))
}

// PaperIDNotIn applies the NotIn predicate on the "paper_id" field.
func PaperIDNotIn(vs ...string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldNotIn(FieldPaperID, vs...))
}

// PaperIDGT applies the GT predicate on the "paper_id" field.
func PaperIDGT(v string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldGT(FieldPaperID, v))
}

// PaperIDGTE applies the GTE predicate on the "paper_id" field.
func PaperIDGTE(v string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldGTE(FieldPaperID, v))
}

// PaperIDLT applies the LT predicate on the "paper_id" field.
func PaperIDLT(v string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldLT(FieldPaperID, v))
}

// PaperIDLTE applies the LTE predicate on the "paper_id" field.
func PaperIDLTE(v string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldLTE(FieldPaperID, v))
}

// PaperIDContains applies the Contains predicate on the "paper_id" field.
func PaperIDContains(v string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldContains(FieldPaperID, v))
}

// PaperIDHasPrefix applies the HasPrefix predicate on the "paper_id" field.
func PaperIDHasPrefix(v string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldHasPrefix(FieldPaperID, v))
}

// PaperIDHasSuffix applies the HasSuffix predicate on the "paper_id" field.
func PaperIDHasSuffix(v string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldHasSuffix(FieldPaperID, v))
}

// PaperIDEqualFold applies the EqualFold predicate on the "paper_id" field.
func PaperIDEqualFold(v string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldEqualFold(FieldPaperID, v))
}

// PaperIDContainsFold applies the ContainsFold predicate on the "paper_id" field.
func PaperIDContainsFold(v string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldContainsFold(FieldPaperID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldContainsFold(FieldTitle, v))
}

// ProcessingStatusEQ applies the EQ predicate on the "processing_status" field.
func ProcessingStatusEQ(v ProcessingStatus) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldEQ(FieldProcessingStatus, v))
}

// ProcessingStatusNEQ applies the NEQ predicate on the "processing_status" field.
func ProcessingStatusNEQ(v ProcessingStatus) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldNEQ(FieldProcessingStatus, v))
}

// ProcessingStatusIn applies the In predicate on the "processing_status" field.
func ProcessingStatusIn(vs ...ProcessingStatus) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldIn(FieldProcessingStatus, vs...))
}

// ProcessingStatusNotIn applies the NotIn predicate on the "processing_status" field.
func ProcessingStatusNotIn(vs ...ProcessingStatus) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldNotIn(FieldProcessingStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.PaperChatSession {
	return predicate.PaperChatSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.PaperChatSession {
	return predicate.PaperChatSession(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.PaperChatSession {
	return predicate.PaperChatSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.PaperChatMessage) predicate.PaperChatSession {
	return predicate.PaperChatSession(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PaperChatSession) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PaperChatSession) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PaperChatSession) predicate.PaperChatSession {
	return predicate.PaperChatSession(sql.NotPredicates(p))
}
