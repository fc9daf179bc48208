// Code generated by ent, DO NOT EDIT.

package tempreview

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/smartqr/reviewd/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TempReview {
	return predicate.TempReview(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TempReview {
	return predicate.TempReview(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TempReview {
	return predicate.TempReview(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TempReview {
	return predicate.TempReview(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TempReview {
	return predicate.TempReview(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TempReview {
	return predicate.TempReview(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TempReview {
	return predicate.TempReview(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TempReview {
	return predicate.TempReview(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TempReview {
	return predicate.TempReview(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldEQ(FieldJobID, v))
}

// QrCodeID applies equality check predicate on the "qr_code_id" field. It's identical to QrCodeIDEQ.
func QrCodeID(v uuid.UUID) predicate.TempReview {
	return predicate.TempReview(sql.FieldEQ(FieldQrCodeID, v))
}

// ReviewText applies equality check predicate on the "review_text" field. It's identical to ReviewTextEQ.
func ReviewText(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldEQ(FieldReviewText, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldEQ(FieldLanguage, v))
}

// Rating applies equality check predicate on the "rating" field. It's identical to RatingEQ.
func Rating(v int) predicate.TempReview {
	return predicate.TempReview(sql.FieldEQ(FieldRating, v))
}

// Hash applies equality check predicate on the "hash" field. It's identical to HashEQ.
func Hash(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldEQ(FieldHash, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldEQ(FieldSessionID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TempReview {
	return predicate.TempReview(sql.FieldEQ(FieldCreatedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.TempReview {
	return predicate.TempReview(sql.FieldEQ(FieldExpiresAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.TempReview {
	return predicate.TempReview(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.TempReview {
	return predicate.TempReview(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldContainsFold(FieldJobID, v))
}

// QrCodeIDEQ applies the EQ predicate on the "qr_code_id" field.
func QrCodeIDEQ(v uuid.UUID) predicate.TempReview {
	return predicate.TempReview(sql.FieldEQ(FieldQrCodeID, v))
}

// QrCodeIDNEQ applies the NEQ predicate on the "qr_code_id" field.
func QrCodeIDNEQ(v uuid.UUID) predicate.TempReview {
	return predicate.TempReview(sql.FieldNEQ(FieldQrCodeID, v))
}

// QrCodeIDIn applies the In predicate on the "qr_code_id" field.
func QrCodeIDIn(vs ...uuid.UUID) predicate.TempReview {
	return predicate.TempReview(sql.FieldIn(FieldQrCodeID, vs...))
}

// QrCodeIDNotIn applies the NotIn predicate on the "qr_code_id" field.
func QrCodeIDNotIn(vs ...uuid.UUID) predicate.TempReview {
	return predicate.TempReview(sql.FieldNotIn(FieldQrCodeID, vs...))
}

// ReviewTextEQ applies the EQ predicate on the "review_text" field.
func ReviewTextEQ(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldEQ(FieldReviewText, v))
}

// ReviewTextNEQ applies the NEQ predicate on the "review_text" field.
func ReviewTextNEQ(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldNEQ(FieldReviewText, v))
}

// ReviewTextIn applies the In predicate on the "review_text" field.
func ReviewTextIn(vs ...string) predicate.TempReview {
	return predicate.TempReview(sql.FieldIn(FieldReviewText, vs...))
}

// ReviewTextNotIn applies the NotIn predicate on the "review_text" field.
func ReviewTextNotIn(vs ...string) predicate.TempReview {
	return predicate.TempReview(sql.FieldNotIn(FieldReviewText, vs...))
}

// ReviewTextGT applies the GT predicate on the "review_text" field.
func ReviewTextGT(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldGT(FieldReviewText, v))
}

// ReviewTextGTE applies the GTE predicate on the "review_text" field.
func ReviewTextGTE(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldGTE(FieldReviewText, v))
}

// ReviewTextLT applies the LT predicate on the "review_text" field.
func ReviewTextLT(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldLT(FieldReviewText, v))
}

// ReviewTextLTE applies the LTE predicate on the "review_text" field.
func ReviewTextLTE(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldLTE(FieldReviewText, v))
}

// ReviewTextContains applies the Contains predicate on the "review_text" field.
func ReviewTextContains(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldContains(FieldReviewText, v))
}

// ReviewTextHasPrefix applies the HasPrefix predicate on the "review_text" field.
func ReviewTextHasPrefix(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldHasPrefix(FieldReviewText, v))
}

// ReviewTextHasSuffix applies the HasSuffix predicate on the "review_text" field.
func ReviewTextHasSuffix(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldHasSuffix(FieldReviewText, v))
}

// ReviewTextEqualFold applies the EqualFold predicate on the "review_text" field.
func ReviewTextEqualFold(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldEqualFold(FieldReviewText, v))
}

// ReviewTextContainsFold applies the ContainsFold predicate on the "review_text" field.
func ReviewTextContainsFold(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldContainsFold(FieldReviewText, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.TempReview {
	return predicate.TempReview(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.TempReview {
	return predicate.TempReview(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldContainsFold(FieldLanguage, v))
}

// RatingEQ applies the EQ predicate on the "rating" field.
func RatingEQ(v int) predicate.TempReview {
	return predicate.TempReview(sql.FieldEQ(FieldRating, v))
}

// RatingNEQ applies the NEQ predicate on the "rating" field.
func RatingNEQ(v int) predicate.TempReview {
	return predicate.TempReview(sql.FieldNEQ(FieldRating, v))
}

// RatingIn applies the In predicate on the "rating" field.
func RatingIn(vs ...int) predicate.TempReview {
	return predicate.TempReview(sql.FieldIn(FieldRating, vs...))
}

// RatingNotIn applies the NotIn predicate on the "rating" field.
func RatingNotIn(vs ...int) predicate.TempReview {
	return predicate.TempReview(sql.FieldNotIn(FieldRating, vs...))
}

// RatingGT applies the GT predicate on the "rating" field.
func RatingGT(v int) predicate.TempReview {
	return predicate.TempReview(sql.FieldGT(FieldRating, v))
}

// RatingGTE applies the GTE predicate on the "rating" field.
func RatingGTE(v int) predicate.TempReview {
	return predicate.TempReview(sql.FieldGTE(FieldRating, v))
}

// RatingLT applies the LT predicate on the "rating" field.
func RatingLT(v int) predicate.TempReview {
	return predicate.TempReview(sql.FieldLT(FieldRating, v))
}

// RatingLTE applies the LTE predicate on the "rating" field.
func RatingLTE(v int) predicate.TempReview {
	return predicate.TempReview(sql.FieldLTE(FieldRating, v))
}

// HashEQ applies the EQ predicate on the "hash" field.
func HashEQ(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldEQ(FieldHash, v))
}

// HashNEQ applies the NEQ predicate on the "hash" field.
func HashNEQ(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldNEQ(FieldHash, v))
}

// HashIn applies the In predicate on the "hash" field.
func HashIn(vs ...string) predicate.TempReview {
	return predicate.TempReview(sql.FieldIn(FieldHash, vs...))
}

// HashNotIn applies the NotIn predicate on the "hash" field.
func HashNotIn(vs ...string) predicate.TempReview {
	return predicate.TempReview(sql.FieldNotIn(FieldHash, vs...))
}

// HashGT applies the GT predicate on the "hash" field.
func HashGT(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldGT(FieldHash, v))
}

// HashGTE applies the GTE predicate on the "hash" field.
func HashGTE(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldGTE(FieldHash, v))
}

// HashLT applies the LT predicate on the "hash" field.
func HashLT(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldLT(FieldHash, v))
}

// HashLTE applies the LTE predicate on the "hash" field.
func HashLTE(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldLTE(FieldHash, v))
}

// HashContains applies the Contains predicate on the "hash" field.
func HashContains(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldContains(FieldHash, v))
}

// HashHasPrefix applies the HasPrefix predicate on the "hash" field.
func HashHasPrefix(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldHasPrefix(FieldHash, v))
}

// HashHasSuffix applies the HasSuffix predicate on the "hash" field.
func HashHasSuffix(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldHasSuffix(FieldHash, v))
}

// HashEqualFold applies the EqualFold predicate on the "hash" field.
func HashEqualFold(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldEqualFold(FieldHash, v))
}

// HashContainsFold applies the ContainsFold predicate on the "hash" field.
func HashContainsFold(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldContainsFold(FieldHash, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.TempReview {
	return predicate.TempReview(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.TempReview {
	return predicate.TempReview(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.TempReview {
	return predicate.TempReview(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.TempReview {
	return predicate.TempReview(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.TempReview {
	return predicate.TempReview(sql.FieldContainsFold(FieldSessionID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TempReview {
	return predicate.TempReview(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TempReview {
	return predicate.TempReview(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TempReview {
	return predicate.TempReview(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TempReview {
	return predicate.TempReview(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TempReview {
	return predicate.TempReview(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TempReview {
	return predicate.TempReview(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TempReview {
	return predicate.TempReview(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TempReview {
	return predicate.TempReview(sql.FieldLTE(FieldCreatedAt, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.TempReview {
	return predicate.TempReview(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.TempReview {
	return predicate.TempReview(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.TempReview {
	return predicate.TempReview(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.TempReview {
	return predicate.TempReview(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.TempReview {
	return predicate.TempReview(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.TempReview {
	return predicate.TempReview(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.TempReview {
	return predicate.TempReview(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.TempReview {
	return predicate.TempReview(sql.FieldLTE(FieldExpiresAt, v))
}

// HasQrCode applies the HasEdge predicate on the "qr_code" edge.
func HasQrCode() predicate.TempReview {
	return predicate.TempReview(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, QrCodeTable, QrCodeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQrCodeWith applies the HasEdge predicate on the "qr_code" edge with a given conditions (other predicates).
func HasQrCodeWith(preds ...predicate.QRCode) predicate.TempReview {
	return predicate.TempReview(func(s *sql.Selector) {
		step := newQrCodeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TempReview) predicate.TempReview {
	return predicate.TempReview(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TempReview) predicate.TempReview {
	return predicate.TempReview(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TempReview) predicate.TempReview {
	return predicate.TempReview(sql.NotPredicates(p))
}
