// Code generated by ent, DO NOT EDIT.

package qrcode

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/smartqr/reviewd/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.QRCode {
	return predicate.QRCode(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.QRCode {
	return predicate.QRCode(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.QRCode {
	return predicate.QRCode(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.QRCode {
	return predicate.QRCode(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.QRCode {
	return predicate.QRCode(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.QRCode {
	return predicate.QRCode(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.QRCode {
	return predicate.QRCode(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.QRCode {
	return predicate.QRCode(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.QRCode {
	return predicate.QRCode(sql.FieldLTE(FieldID, id))
}

// BusinessName applies equality check predicate on the "business_name" field. It's identical to BusinessNameEQ.
func BusinessName(v string) predicate.QRCode {
	return predicate.QRCode(sql.FieldEQ(FieldBusinessName, v))
}

// ProductSummary applies equality check predicate on the "product_summary" field. It's identical to ProductSummaryEQ.
func ProductSummary(v string) predicate.QRCode {
	return predicate.QRCode(sql.FieldEQ(FieldProductSummary, v))
}

// MapsLink applies equality check predicate on the "maps_link" field. It's identical to MapsLinkEQ.
func MapsLink(v string) predicate.QRCode {
	return predicate.QRCode(sql.FieldEQ(FieldMapsLink, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QRCode {
	return predicate.QRCode(sql.FieldEQ(FieldCreatedAt, v))
}

// BusinessNameEQ applies the EQ predicate on the "business_name" field.
func BusinessNameEQ(v string) predicate.QRCode {
	return predicate.QRCode(sql.FieldEQ(FieldBusinessName, v))
}

// BusinessNameNEQ applies the NEQ predicate on the "business_name" field.
func BusinessNameNEQ(v string) predicate.QRCode {
	return predicate.QRCode(sql.FieldNEQ(FieldBusinessName, v))
}

// BusinessNameIn applies the In predicate on the "business_name" field.
func BusinessNameIn(vs ...string) predicate.QRCode {
	return predicate.QRCode(sql.FieldIn(FieldBusinessName, vs...))
}

// BusinessNameNotIn applies the NotIn predicate on the "business_name" field.
func BusinessNameNotIn(vs ...string) predicate.QRCode {
	return predicate.QRCode(sql.FieldNotIn(FieldBusinessName, vs...))
}

// BusinessNameGT applies the GT predicate on the "business_name" field.
func BusinessNameGT(v string) predicate.QRCode {
	return predicate.QRCode(sql.FieldGT(FieldBusinessName, v))
}

// BusinessNameGTE applies the GTE predicate on the "business_name" field.
func BusinessNameGTE(v string) predicate.QRCode {
	return predicate.QRCode(sql.FieldGTE(FieldBusinessName, v))
}

// BusinessNameLT applies the LT predicate on the "business_name" field.
func BusinessNameLT(v string) predicate.QRCode {
	return predicate.QRCode(sql.FieldLT(FieldBusinessName, v))
}

// BusinessNameLTE applies the LTE predicate on the "business_name" field.
func BusinessNameLTE(v string) predicate.QRCode {
	return predicate.QRCode(sql.FieldLTE(FieldBusinessName, v))
}

// BusinessNameContains applies the Contains predicate on the "business_name" field.
func BusinessNameContains(v string) predicate.QRCode {
	return predicate.QRCode(sql.FieldContains(FieldBusinessName, v))
}

// BusinessNameHasPrefix applies the HasPrefix predicate on the "business_name" field.
func BusinessNameHasPrefix(v string) predicate.QRCode {
	return predicate.QRCode(sql.FieldHasPrefix(FieldBusinessName, v))
}

// BusinessNameHasSuffix applies the HasSuffix predicate on the "business_name" field.
func BusinessNameHasSuffix(v string) predicate.QRCode {
	return predicate.QRCode(sql.FieldHasSuffix(FieldBusinessName, v))
}

// BusinessNameEqualFold applies the EqualFold predicate on the "business_name" field.
func BusinessNameEqualFold(v string) predicate.QRCode {
	return predicate.QRCode(sql.FieldEqualFold(FieldBusinessName, v))
}

// BusinessNameContainsFold applies the ContainsFold predicate on the "business_name" field.
func BusinessNameContainsFold(v string) predicate.QRCode {
	return predicate.QRCode(sql.FieldContainsFold(FieldBusinessName, v))
}

// ProductSummaryEQ applies the EQ predicate on the "product_summary" field.
func ProductSummaryEQ(v string) predicate.QRCode {
	return predicate.QRCode(sql.FieldEQ(FieldProductSummary, v))
}

// ProductSummaryNEQ applies the NEQ predicate on the "product_summary" field.
func ProductSummaryNEQ(v string) predicate.QRCode {
	return predicate.QRCode(sql.FieldNEQ(FieldProductSummary, v))
}

// ProductSummaryIn applies the In predicate on the "product_summary" field.
func ProductSummaryIn(vs ...string) predicate.QRCode {
	return predicate.QRCode(sql.FieldIn(FieldProductSummary, vs...))
}

// ProductSummaryNotIn applies the NotIn predicate on the "product_summary" field.
func ProductSummaryNotIn(vs ...string) predicate.QRCode {
	return predicate.QRCode(sql.FieldNotIn(FieldProductSummary, vs...))
}

// ProductSummaryGT applies the GT predicate on the "product_summary" field.
func ProductSummaryGT(v string) predicate.QRCode {
	return predicate.QRCode(sql.FieldGT(FieldProductSummary, v))
}

// ProductSummaryGTE applies the GTE predicate on the "product_summary" field.
func ProductSummaryGTE(v string) predicate.QRCode {
	return predicate.QRCode(sql.FieldGTE(FieldProductSummary, v))
}

// ProductSummaryLT applies the LT predicate on the "product_summary" field.
func ProductSummaryLT(v string) predicate.QRCode {
	return predicate.QRCode(sql.FieldLT(FieldProductSummary, v))
}

// ProductSummaryLTE applies the LTE predicate on the "product_summary" field.
func ProductSummaryLTE(v string) predicate.QRCode {
	return predicate.QRCode(sql.FieldLTE(FieldProductSummary, v))
}

// ProductSummaryContains applies the Contains predicate on the "product_summary" field.
func ProductSummaryContains(v string) predicate.QRCode {
	return predicate.QRCode(sql.FieldContains(FieldProductSummary, v))
}

// ProductSummaryHasPrefix applies the HasPrefix predicate on the "product_summary" field.
func ProductSummaryHasPrefix(v string) predicate.QRCode {
	return predicate.QRCode(sql.FieldHasPrefix(FieldProductSummary, v))
}

// ProductSummaryHasSuffix applies the HasSuffix predicate on the "product_summary" field.
func ProductSummaryHasSuffix(v string) predicate.QRCode {
	return predicate.QRCode(sql.FieldHasSuffix(FieldProductSummary, v))
}

// ProductSummaryIsNil applies the IsNil predicate on the "product_summary" field.
func ProductSummaryIsNil() predicate.QRCode {
	return predicate.QRCode(sql.FieldIsNull(FieldProductSummary))
}

// ProductSummaryNotNil applies the NotNil predicate on the "product_summary" field.
func ProductSummaryNotNil() predicate.QRCode {
	return predicate.QRCode(sql.FieldNotNull(FieldProductSummary))
}

// ProductSummaryEqualFold applies the EqualFold predicate on the "product_summary" field.
func ProductSummaryEqualFold(v string) predicate.QRCode {
	return predicate.QRCode(sql.FieldEqualFold(FieldProductSummary, v))
}

// ProductSummaryContainsFold applies the ContainsFold predicate on the "product_summary" field.
func ProductSummaryContainsFold(v string) predicate.QRCode {
	return predicate.QRCode(sql.FieldContainsFold(FieldProductSummary, v))
}

// MapsLinkEQ applies the EQ predicate on the "maps_link" field.
func MapsLinkEQ(v string) predicate.QRCode {
	return predicate.QRCode(sql.FieldEQ(FieldMapsLink, v))
}

// MapsLinkNEQ applies the NEQ predicate on the "maps_link" field.
func MapsLinkNEQ(v string) predicate.QRCode {
	return predicate.QRCode(sql.FieldNEQ(FieldMapsLink, v))
}

// MapsLinkIn applies the In predicate on the "maps_link" field.
func MapsLinkIn(vs ...string) predicate.QRCode {
	return predicate.QRCode(sql.FieldIn(FieldMapsLink, vs...))
}

// MapsLinkNotIn applies the NotIn predicate on the "maps_link" field.
func MapsLinkNotIn(vs ...string) predicate.QRCode {
	return predicate.QRCode(sql.FieldNotIn(FieldMapsLink, vs...))
}

// MapsLinkGT applies the GT predicate on the "maps_link" field.
func MapsLinkGT(v string) predicate.QRCode {
	return predicate.QRCode(sql.FieldGT(FieldMapsLink, v))
}

// MapsLinkGTE applies the GTE predicate on the "maps_link" field.
func MapsLinkGTE(v string) predicate.QRCode {
	return predicate.QRCode(sql.FieldGTE(FieldMapsLink, v))
}

// MapsLinkLT applies the LT predicate on the "maps_link" field.
func MapsLinkLT(v string) predicate.QRCode {
	return predicate.QRCode(sql.FieldLT(FieldMapsLink, v))
}

// MapsLinkLTE applies the LTE predicate on the "maps_link" field.
func MapsLinkLTE(v string) predicate.QRCode {
	return predicate.QRCode(sql.FieldLTE(FieldMapsLink, v))
}

// MapsLinkContains applies the Contains predicate on the "maps_link" field.
func MapsLinkContains(v string) predicate.QRCode {
	return predicate.QRCode(sql.FieldContains(FieldMapsLink, v))
}

// MapsLinkHasPrefix applies the HasPrefix predicate on the "maps_link" field.
func MapsLinkHasPrefix(v string) predicate.QRCode {
	return predicate.QRCode(sql.FieldHasPrefix(FieldMapsLink, v))
}

// MapsLinkHasSuffix applies the HasSuffix predicate on the "maps_link" field.
func MapsLinkHasSuffix(v string) predicate.QRCode {
	return predicate.QRCode(sql.FieldHasSuffix(FieldMapsLink, v))
}

// MapsLinkIsNil applies the IsNil predicate on the "maps_link" field.
func MapsLinkIsNil() predicate.QRCode {
	return predicate.QRCode(sql.FieldIsNull(FieldMapsLink))
}

// MapsLinkNotNil applies the NotNil predicate on the "maps_link" field.
func MapsLinkNotNil() predicate.QRCode {
	return predicate.QRCode(sql.FieldNotNull(FieldMapsLink))
}

// MapsLinkEqualFold applies the EqualFold predicate on the "maps_link" field.
func MapsLinkEqualFold(v string) predicate.QRCode {
	return predicate.QRCode(sql.FieldEqualFold(FieldMapsLink, v))
}

// MapsLinkContainsFold applies the ContainsFold predicate on the "maps_link" field.
func MapsLinkContainsFold(v string) predicate.QRCode {
	return predicate.QRCode(sql.FieldContainsFold(FieldMapsLink, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QRCode {
	return predicate.QRCode(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QRCode {
	return predicate.QRCode(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QRCode {
	return predicate.QRCode(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QRCode {
	return predicate.QRCode(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QRCode {
	return predicate.QRCode(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QRCode {
	return predicate.QRCode(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QRCode {
	return predicate.QRCode(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QRCode {
	return predicate.QRCode(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTempReviews applies the HasEdge predicate on the "temp_reviews" edge.
func HasTempReviews() predicate.QRCode {
	return predicate.QRCode(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TempReviewsTable, TempReviewsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTempReviewsWith applies the HasEdge predicate on the "temp_reviews" edge with a given conditions (other predicates).
func HasTempReviewsWith(preds ...predicate.TempReview) predicate.QRCode {
	return predicate.QRCode(func(s *sql.Selector) {
		step := newTempReviewsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReviews applies the HasEdge predicate on the "reviews" edge.
func HasReviews() predicate.QRCode {
	return predicate.QRCode(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ReviewsTable, ReviewsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReviewsWith applies the HasEdge predicate on the "reviews" edge with a given conditions (other predicates).
func HasReviewsWith(preds ...predicate.Review) predicate.QRCode {
	return predicate.QRCode(func(s *sql.Selector) {
		step := newReviewsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasScanLogs applies the HasEdge predicate on the "scan_logs" edge.
func HasScanLogs() predicate.QRCode {
	return predicate.QRCode(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ScanLogsTable, ScanLogsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasScanLogsWith applies the HasEdge predicate on the "scan_logs" edge with a given conditions (other predicates).
func HasScanLogsWith(preds ...predicate.ScanLog) predicate.QRCode {
	return predicate.QRCode(func(s *sql.Selector) {
		step := newScanLogsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QRCode) predicate.QRCode {
	return predicate.QRCode(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QRCode) predicate.QRCode {
	return predicate.QRCode(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QRCode) predicate.QRCode {
	return predicate.QRCode(sql.NotPredicates(p))
}
