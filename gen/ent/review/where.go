// Code generated by ent, DO NOT EDIT.

package review

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/smartqr/reviewd/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldID, id))
}

// QrCodeID applies equality check predicate on the "qr_code_id" field. It's identical to QrCodeIDEQ.
func QrCodeID(v uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldQrCodeID, v))
}

// ReviewText applies equality check predicate on the "review_text" field. It's identical to ReviewTextEQ.
func ReviewText(v string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldReviewText, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldLanguage, v))
}

// Rating applies equality check predicate on the "rating" field. It's identical to RatingEQ.
func Rating(v int) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldRating, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldSource, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldCreatedAt, v))
}

// QrCodeIDEQ applies the EQ predicate on the "qr_code_id" field.
func QrCodeIDEQ(v uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldQrCodeID, v))
}

// QrCodeIDNEQ applies the NEQ predicate on the "qr_code_id" field.
func QrCodeIDNEQ(v uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldQrCodeID, v))
}

// QrCodeIDIn applies the In predicate on the "qr_code_id" field.
func QrCodeIDIn(vs ...uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldQrCodeID, vs...))
}

// QrCodeIDNotIn applies the NotIn predicate on the "qr_code_id" field.
func QrCodeIDNotIn(vs ...uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldQrCodeID, vs...))
}

// ReviewTextEQ applies the EQ predicate on the "review_text" field.
func ReviewTextEQ(v string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldReviewText, v))
}

// ReviewTextNEQ applies the NEQ predicate on the "review_text" field.
func ReviewTextNEQ(v string) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldReviewText, v))
}

// ReviewTextIn applies the In predicate on the "review_text" field.
func ReviewTextIn(vs ...string) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldReviewText, vs...))
}

// ReviewTextNotIn applies the NotIn predicate on the "review_text" field.
func ReviewTextNotIn(vs ...string) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldReviewText, vs...))
}

// ReviewTextGT applies the GT predicate on the "review_text" field.
func ReviewTextGT(v string) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldReviewText, v))
}

// ReviewTextGTE applies the GTE predicate on the "review_text" field.
func ReviewTextGTE(v string) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldReviewText, v))
}

// ReviewTextLT applies the LT predicate on the "review_text" field.
func ReviewTextLT(v string) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldReviewText, v))
}

// ReviewTextLTE applies the LTE predicate on the "review_text" field.
func ReviewTextLTE(v string) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldReviewText, v))
}

// ReviewTextContains applies the Contains predicate on the "review_text" field.
func ReviewTextContains(v string) predicate.Review {
	return predicate.Review(sql.FieldContains(FieldReviewText, v))
}

// ReviewTextHasPrefix applies the HasPrefix predicate on the "review_text" field.
func ReviewTextHasPrefix(v string) predicate.Review {
	return predicate.Review(sql.FieldHasPrefix(FieldReviewText, v))
}

// ReviewTextHasSuffix applies the HasSuffix predicate on the "review_text" field.
func ReviewTextHasSuffix(v string) predicate.Review {
	return predicate.Review(sql.FieldHasSuffix(FieldReviewText, v))
}

// ReviewTextEqualFold applies the EqualFold predicate on the "review_text" field.
func ReviewTextEqualFold(v string) predicate.Review {
	return predicate.Review(sql.FieldEqualFold(FieldReviewText, v))
}

// ReviewTextContainsFold applies the ContainsFold predicate on the "review_text" field.
func ReviewTextContainsFold(v string) predicate.Review {
	return predicate.Review(sql.FieldContainsFold(FieldReviewText, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.Review {
	return predicate.Review(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.Review {
	return predicate.Review(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.Review {
	return predicate.Review(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.Review {
	return predicate.Review(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.Review {
	return predicate.Review(sql.FieldContainsFold(FieldLanguage, v))
}

// RatingEQ applies the EQ predicate on the "rating" field.
func RatingEQ(v int) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldRating, v))
}

// RatingNEQ applies the NEQ predicate on the "rating" field.
func RatingNEQ(v int) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldRating, v))
}

// RatingIn applies the In predicate on the "rating" field.
func RatingIn(vs ...int) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldRating, vs...))
}

// RatingNotIn applies the NotIn predicate on the "rating" field.
func RatingNotIn(vs ...int) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldRating, vs...))
}

// RatingGT applies the GT predicate on the "rating" field.
func RatingGT(v int) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldRating, v))
}

// RatingGTE applies the GTE predicate on the "rating" field.
func RatingGTE(v int) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldRating, v))
}

// RatingLT applies the LT predicate on the "rating" field.
func RatingLT(v int) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldRating, v))
}

// RatingLTE applies the LTE predicate on the "rating" field.
func RatingLTE(v int) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldRating, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.Review {
	return predicate.Review(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.Review {
	return predicate.Review(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.Review {
	return predicate.Review(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.Review {
	return predicate.Review(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.Review {
	return predicate.Review(sql.FieldContainsFold(FieldSource, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldCreatedAt, v))
}

// HasQrCode applies the HasEdge predicate on the "qr_code" edge.
func HasQrCode() predicate.Review {
	return predicate.Review(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, QrCodeTable, QrCodeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQrCodeWith applies the HasEdge predicate on the "qr_code" edge with a given conditions (other predicates).
func HasQrCodeWith(preds ...predicate.QRCode) predicate.Review {
	return predicate.Review(func(s *sql.Selector) {
		step := newQrCodeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Review) predicate.Review {
	return predicate.Review(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Review) predicate.Review {
	return predicate.Review(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Review) predicate.Review {
	return predicate.Review(sql.NotPredicates(p))
}
