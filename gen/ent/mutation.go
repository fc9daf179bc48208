// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/smartqr/reviewd/gen/ent/predicate"
	"github.com/smartqr/reviewd/gen/ent/qrcode"
	"github.com/smartqr/reviewd/gen/ent/review"
	"github.com/smartqr/reviewd/gen/ent/scanlog"
	"github.com/smartqr/reviewd/gen/ent/tempreview"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeQRCode     = "QRCode"
	TypeReview     = "Review"
	TypeScanLog    = "ScanLog"
	TypeTempReview = "TempReview"
)

// QRCodeMutation represents an operation that mutates the QRCode nodes in the graph.
type QRCodeMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	business_name       *string
	product_summary     *string
	maps_link           *string
	created_at          *time.Time
	clearedFields       map[string]struct{}
	temp_reviews        map[uuid.UUID]struct{}
	removedtemp_reviews map[uuid.UUID]struct{}
	clearedtemp_reviews bool
	reviews             map[uuid.UUID]struct{}
	removedreviews      map[uuid.UUID]struct{}
	clearedreviews      bool
	scan_logs           map[uuid.UUID]struct{}
	removedscan_logs    map[uuid.UUID]struct{}
	clearedscan_logs    bool
	done                bool
	oldValue            func(context.Context) (*QRCode, error)
	predicates          []predicate.QRCode
}

var _ ent.Mutation = (*QRCodeMutation)(nil)

// qrcodeOption allows management of the mutation configuration using functional options.
type qrcodeOption func(*QRCodeMutation)

// newQRCodeMutation creates new mutation for the QRCode entity.
func newQRCodeMutation(c config, op Op, opts ...qrcodeOption) *QRCodeMutation {
	m := &QRCodeMutation{
		config:        c,
		op:            op,
		typ:           TypeQRCode,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQRCodeID sets the ID field of the mutation.
func withQRCodeID(id uuid.UUID) qrcodeOption {
	return func(m *QRCodeMutation) {
		var (
			err   error
			once  sync.Once
			value *QRCode
		)
		m.oldValue = func(ctx context.Context) (*QRCode, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QRCode.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQRCode sets the old QRCode of the mutation.
func withQRCode(node *QRCode) qrcodeOption {
	return func(m *QRCodeMutation) {
		m.oldValue = func(context.Context) (*QRCode, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QRCodeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QRCodeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QRCode entities.
func (m *QRCodeMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QRCodeMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QRCodeMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QRCode.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBusinessName sets the "business_name" field.
func (m *QRCodeMutation) SetBusinessName(s string) {
	m.business_name = &s
}

// BusinessName returns the value of the "business_name" field in the mutation.
func (m *QRCodeMutation) BusinessName() (r string, exists bool) {
	v := m.business_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessName returns the old "business_name" field's value of the QRCode entity.
// If the QRCode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QRCodeMutation) OldBusinessName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessName: %w", err)
	}
	return oldValue.BusinessName, nil
}

// ResetBusinessName resets all changes to the "business_name" field.
func (m *QRCodeMutation) ResetBusinessName() {
	m.business_name = nil
}

// SetProductSummary sets the "product_summary" field.
func (m *QRCodeMutation) SetProductSummary(s string) {
	m.product_summary = &s
}

// ProductSummary returns the value of the "product_summary" field in the mutation.
func (m *QRCodeMutation) ProductSummary() (r string, exists bool) {
	v := m.product_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldProductSummary returns the old "product_summary" field's value of the QRCode entity.
// If the QRCode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QRCodeMutation) OldProductSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProductSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProductSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProductSummary: %w", err)
	}
	return oldValue.ProductSummary, nil
}

// ClearProductSummary clears the value of the "product_summary" field.
func (m *QRCodeMutation) ClearProductSummary() {
	m.product_summary = nil
	m.clearedFields[qrcode.FieldProductSummary] = struct{}{}
}

// ProductSummaryCleared returns if the "product_summary" field was cleared in this mutation.
func (m *QRCodeMutation) ProductSummaryCleared() bool {
	_, ok := m.clearedFields[qrcode.FieldProductSummary]
	return ok
}

// ResetProductSummary resets all changes to the "product_summary" field.
func (m *QRCodeMutation) ResetProductSummary() {
	m.product_summary = nil
	delete(m.clearedFields, qrcode.FieldProductSummary)
}

// SetMapsLink sets the "maps_link" field.
func (m *QRCodeMutation) SetMapsLink(s string) {
	m.maps_link = &s
}

// MapsLink returns the value of the "maps_link" field in the mutation.
func (m *QRCodeMutation) MapsLink() (r string, exists bool) {
	v := m.maps_link
	if v == nil {
		return
	}
	return *v, true
}

// OldMapsLink returns the old "maps_link" field's value of the QRCode entity.
// If the QRCode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QRCodeMutation) OldMapsLink(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMapsLink is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMapsLink requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMapsLink: %w", err)
	}
	return oldValue.MapsLink, nil
}

// ClearMapsLink clears the value of the "maps_link" field.
func (m *QRCodeMutation) ClearMapsLink() {
	m.maps_link = nil
	m.clearedFields[qrcode.FieldMapsLink] = struct{}{}
}

// MapsLinkCleared returns if the "maps_link" field was cleared in this mutation.
func (m *QRCodeMutation) MapsLinkCleared() bool {
	_, ok := m.clearedFields[qrcode.FieldMapsLink]
	return ok
}

// ResetMapsLink resets all changes to the "maps_link" field.
func (m *QRCodeMutation) ResetMapsLink() {
	m.maps_link = nil
	delete(m.clearedFields, qrcode.FieldMapsLink)
}

// SetCreatedAt sets the "created_at" field.
func (m *QRCodeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QRCodeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QRCode entity.
// If the QRCode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QRCodeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QRCodeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddTempReviewIDs adds the "temp_reviews" edge to the TempReview entity by ids.
func (m *QRCodeMutation) AddTempReviewIDs(ids ...uuid.UUID) {
	if m.temp_reviews == nil {
		m.temp_reviews = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.temp_reviews[ids[i]] = struct{}{}
	}
}

// ClearTempReviews clears the "temp_reviews" edge to the TempReview entity.
func (m *QRCodeMutation) ClearTempReviews() {
	m.clearedtemp_reviews = true
}

// TempReviewsCleared reports if the "temp_reviews" edge to the TempReview entity was cleared.
func (m *QRCodeMutation) TempReviewsCleared() bool {
	return m.clearedtemp_reviews
}

// RemoveTempReviewIDs removes the "temp_reviews" edge to the TempReview entity by IDs.
func (m *QRCodeMutation) RemoveTempReviewIDs(ids ...uuid.UUID) {
	if m.removedtemp_reviews == nil {
		m.removedtemp_reviews = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.temp_reviews, ids[i])
		m.removedtemp_reviews[ids[i]] = struct{}{}
	}
}

// RemovedTempReviews returns the removed IDs of the "temp_reviews" edge to the TempReview entity.
func (m *QRCodeMutation) RemovedTempReviewsIDs() (ids []uuid.UUID) {
	for id := range m.removedtemp_reviews {
		ids = append(ids, id)
	}
	return
}

// TempReviewsIDs returns the "temp_reviews" edge IDs in the mutation.
func (m *QRCodeMutation) TempReviewsIDs() (ids []uuid.UUID) {
	for id := range m.temp_reviews {
		ids = append(ids, id)
	}
	return
}

// ResetTempReviews resets all changes to the "temp_reviews" edge.
func (m *QRCodeMutation) ResetTempReviews() {
	m.temp_reviews = nil
	m.clearedtemp_reviews = false
	m.removedtemp_reviews = nil
}

// AddReviewIDs adds the "reviews" edge to the Review entity by ids.
func (m *QRCodeMutation) AddReviewIDs(ids ...uuid.UUID) {
	if m.reviews == nil {
		m.reviews = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.reviews[ids[i]] = struct{}{}
	}
}

// ClearReviews clears the "reviews" edge to the Review entity.
func (m *QRCodeMutation) ClearReviews() {
	m.clearedreviews = true
}

// ReviewsCleared reports if the "reviews" edge to the Review entity was cleared.
func (m *QRCodeMutation) ReviewsCleared() bool {
	return m.clearedreviews
}

// RemoveReviewIDs removes the "reviews" edge to the Review entity by IDs.
func (m *QRCodeMutation) RemoveReviewIDs(ids ...uuid.UUID) {
	if m.removedreviews == nil {
		m.removedreviews = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.reviews, ids[i])
		m.removedreviews[ids[i]] = struct{}{}
	}
}

// RemovedReviews returns the removed IDs of the "reviews" edge to the Review entity.
func (m *QRCodeMutation) RemovedReviewsIDs() (ids []uuid.UUID) {
	for id := range m.removedreviews {
		ids = append(ids, id)
	}
	return
}

// ReviewsIDs returns the "reviews" edge IDs in the mutation.
func (m *QRCodeMutation) ReviewsIDs() (ids []uuid.UUID) {
	for id := range m.reviews {
		ids = append(ids, id)
	}
	return
}

// ResetReviews resets all changes to the "reviews" edge.
func (m *QRCodeMutation) ResetReviews() {
	m.reviews = nil
	m.clearedreviews = false
	m.removedreviews = nil
}

// AddScanLogIDs adds the "scan_logs" edge to the ScanLog entity by ids.
func (m *QRCodeMutation) AddScanLogIDs(ids ...uuid.UUID) {
	if m.scan_logs == nil {
		m.scan_logs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.scan_logs[ids[i]] = struct{}{}
	}
}

// ClearScanLogs clears the "scan_logs" edge to the ScanLog entity.
func (m *QRCodeMutation) ClearScanLogs() {
	m.clearedscan_logs = true
}

// ScanLogsCleared reports if the "scan_logs" edge to the ScanLog entity was cleared.
func (m *QRCodeMutation) ScanLogsCleared() bool {
	return m.clearedscan_logs
}

// RemoveScanLogIDs removes the "scan_logs" edge to the ScanLog entity by IDs.
func (m *QRCodeMutation) RemoveScanLogIDs(ids ...uuid.UUID) {
	if m.removedscan_logs == nil {
		m.removedscan_logs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.scan_logs, ids[i])
		m.removedscan_logs[ids[i]] = struct{}{}
	}
}

// RemovedScanLogs returns the removed IDs of the "scan_logs" edge to the ScanLog entity.
func (m *QRCodeMutation) RemovedScanLogsIDs() (ids []uuid.UUID) {
	for id := range m.removedscan_logs {
		ids = append(ids, id)
	}
	return
}

// ScanLogsIDs returns the "scan_logs" edge IDs in the mutation.
func (m *QRCodeMutation) ScanLogsIDs() (ids []uuid.UUID) {
	for id := range m.scan_logs {
		ids = append(ids, id)
	}
	return
}

// ResetScanLogs resets all changes to the "scan_logs" edge.
func (m *QRCodeMutation) ResetScanLogs() {
	m.scan_logs = nil
	m.clearedscan_logs = false
	m.removedscan_logs = nil
}

// Where appends a list predicates to the QRCodeMutation builder.
func (m *QRCodeMutation) Where(ps ...predicate.QRCode) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QRCodeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QRCodeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QRCode, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QRCodeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QRCodeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QRCode).
func (m *QRCodeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QRCodeMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.business_name != nil {
		fields = append(fields, qrcode.FieldBusinessName)
	}
	if m.product_summary != nil {
		fields = append(fields, qrcode.FieldProductSummary)
	}
	if m.maps_link != nil {
		fields = append(fields, qrcode.FieldMapsLink)
	}
	if m.created_at != nil {
		fields = append(fields, qrcode.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QRCodeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case qrcode.FieldBusinessName:
		return m.BusinessName()
	case qrcode.FieldProductSummary:
		return m.ProductSummary()
	case qrcode.FieldMapsLink:
		return m.MapsLink()
	case qrcode.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QRCodeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case qrcode.FieldBusinessName:
		return m.OldBusinessName(ctx)
	case qrcode.FieldProductSummary:
		return m.OldProductSummary(ctx)
	case qrcode.FieldMapsLink:
		return m.OldMapsLink(ctx)
	case qrcode.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QRCode field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QRCodeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case qrcode.FieldBusinessName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessName(v)
		return nil
	case qrcode.FieldProductSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProductSummary(v)
		return nil
	case qrcode.FieldMapsLink:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMapsLink(v)
		return nil
	case qrcode.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QRCode field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QRCodeMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QRCodeMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QRCodeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown QRCode numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QRCodeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(qrcode.FieldProductSummary) {
		fields = append(fields, qrcode.FieldProductSummary)
	}
	if m.FieldCleared(qrcode.FieldMapsLink) {
		fields = append(fields, qrcode.FieldMapsLink)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QRCodeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QRCodeMutation) ClearField(name string) error {
	switch name {
	case qrcode.FieldProductSummary:
		m.ClearProductSummary()
		return nil
	case qrcode.FieldMapsLink:
		m.ClearMapsLink()
		return nil
	}
	return fmt.Errorf("unknown QRCode nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QRCodeMutation) ResetField(name string) error {
	switch name {
	case qrcode.FieldBusinessName:
		m.ResetBusinessName()
		return nil
	case qrcode.FieldProductSummary:
		m.ResetProductSummary()
		return nil
	case qrcode.FieldMapsLink:
		m.ResetMapsLink()
		return nil
	case qrcode.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown QRCode field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QRCodeMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.temp_reviews != nil {
		edges = append(edges, qrcode.EdgeTempReviews)
	}
	if m.reviews != nil {
		edges = append(edges, qrcode.EdgeReviews)
	}
	if m.scan_logs != nil {
		edges = append(edges, qrcode.EdgeScanLogs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QRCodeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case qrcode.EdgeTempReviews:
		ids := make([]ent.Value, 0, len(m.temp_reviews))
		for id := range m.temp_reviews {
			ids = append(ids, id)
		}
		return ids
	case qrcode.EdgeReviews:
		ids := make([]ent.Value, 0, len(m.reviews))
		for id := range m.reviews {
			ids = append(ids, id)
		}
		return ids
	case qrcode.EdgeScanLogs:
		ids := make([]ent.Value, 0, len(m.scan_logs))
		for id := range m.scan_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QRCodeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedtemp_reviews != nil {
		edges = append(edges, qrcode.EdgeTempReviews)
	}
	if m.removedreviews != nil {
		edges = append(edges, qrcode.EdgeReviews)
	}
	if m.removedscan_logs != nil {
		edges = append(edges, qrcode.EdgeScanLogs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QRCodeMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case qrcode.EdgeTempReviews:
		ids := make([]ent.Value, 0, len(m.removedtemp_reviews))
		for id := range m.removedtemp_reviews {
			ids = append(ids, id)
		}
		return ids
	case qrcode.EdgeReviews:
		ids := make([]ent.Value, 0, len(m.removedreviews))
		for id := range m.removedreviews {
			ids = append(ids, id)
		}
		return ids
	case qrcode.EdgeScanLogs:
		ids := make([]ent.Value, 0, len(m.removedscan_logs))
		for id := range m.removedscan_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QRCodeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedtemp_reviews {
		edges = append(edges, qrcode.EdgeTempReviews)
	}
	if m.clearedreviews {
		edges = append(edges, qrcode.EdgeReviews)
	}
	if m.clearedscan_logs {
		edges = append(edges, qrcode.EdgeScanLogs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QRCodeMutation) EdgeCleared(name string) bool {
	switch name {
	case qrcode.EdgeTempReviews:
		return m.clearedtemp_reviews
	case qrcode.EdgeReviews:
		return m.clearedreviews
	case qrcode.EdgeScanLogs:
		return m.clearedscan_logs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QRCodeMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown QRCode unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QRCodeMutation) ResetEdge(name string) error {
	switch name {
	case qrcode.EdgeTempReviews:
		m.ResetTempReviews()
		return nil
	case qrcode.EdgeReviews:
		m.ResetReviews()
		return nil
	case qrcode.EdgeScanLogs:
		m.ResetScanLogs()
		return nil
	}
	return fmt.Errorf("unknown QRCode edge %s", name)
}

// ReviewMutation represents an operation that mutates the Review nodes in the graph.
type ReviewMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	review_text    *string
	language       *string
	rating         *int
	addrating      *int
	source         *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	qr_code        *uuid.UUID
	clearedqr_code bool
	done           bool
	oldValue       func(context.Context) (*Review, error)
	predicates     []predicate.Review
}

var _ ent.Mutation = (*ReviewMutation)(nil)

// reviewOption allows management of the mutation configuration using functional options.
type reviewOption func(*ReviewMutation)

// newReviewMutation creates new mutation for the Review entity.
func newReviewMutation(c config, op Op, opts ...reviewOption) *ReviewMutation {
	m := &ReviewMutation{
		config:        c,
		op:            op,
		typ:           TypeReview,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReviewID sets the ID field of the mutation.
func withReviewID(id uuid.UUID) reviewOption {
	return func(m *ReviewMutation) {
		var (
			err   error
			once  sync.Once
			value *Review
		)
		m.oldValue = func(ctx context.Context) (*Review, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Review.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReview sets the old Review of the mutation.
func withReview(node *Review) reviewOption {
	return func(m *ReviewMutation) {
		m.oldValue = func(context.Context) (*Review, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReviewMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReviewMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Review entities.
func (m *ReviewMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReviewMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReviewMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Review.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQrCodeID sets the "qr_code_id" field.
func (m *ReviewMutation) SetQrCodeID(u uuid.UUID) {
	m.qr_code = &u
}

// QrCodeID returns the value of the "qr_code_id" field in the mutation.
func (m *ReviewMutation) QrCodeID() (r uuid.UUID, exists bool) {
	v := m.qr_code
	if v == nil {
		return
	}
	return *v, true
}

// OldQrCodeID returns the old "qr_code_id" field's value of the Review entity.
// If the Review object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewMutation) OldQrCodeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQrCodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQrCodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQrCodeID: %w", err)
	}
	return oldValue.QrCodeID, nil
}

// ResetQrCodeID resets all changes to the "qr_code_id" field.
func (m *ReviewMutation) ResetQrCodeID() {
	m.qr_code = nil
}

// SetReviewText sets the "review_text" field.
func (m *ReviewMutation) SetReviewText(s string) {
	m.review_text = &s
}

// ReviewText returns the value of the "review_text" field in the mutation.
func (m *ReviewMutation) ReviewText() (r string, exists bool) {
	v := m.review_text
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewText returns the old "review_text" field's value of the Review entity.
// If the Review object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewMutation) OldReviewText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewText: %w", err)
	}
	return oldValue.ReviewText, nil
}

// ResetReviewText resets all changes to the "review_text" field.
func (m *ReviewMutation) ResetReviewText() {
	m.review_text = nil
}

// SetLanguage sets the "language" field.
func (m *ReviewMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *ReviewMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the Review entity.
// If the Review object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *ReviewMutation) ResetLanguage() {
	m.language = nil
}

// SetRating sets the "rating" field.
func (m *ReviewMutation) SetRating(i int) {
	m.rating = &i
	m.addrating = nil
}

// Rating returns the value of the "rating" field in the mutation.
func (m *ReviewMutation) Rating() (r int, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the Review entity.
// If the Review object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewMutation) OldRating(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// AddRating adds i to the "rating" field.
func (m *ReviewMutation) AddRating(i int) {
	if m.addrating != nil {
		*m.addrating += i
	} else {
		m.addrating = &i
	}
}

// AddedRating returns the value that was added to the "rating" field in this mutation.
func (m *ReviewMutation) AddedRating() (r int, exists bool) {
	v := m.addrating
	if v == nil {
		return
	}
	return *v, true
}

// ResetRating resets all changes to the "rating" field.
func (m *ReviewMutation) ResetRating() {
	m.rating = nil
	m.addrating = nil
}

// SetSource sets the "source" field.
func (m *ReviewMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *ReviewMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Review entity.
// If the Review object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *ReviewMutation) ResetSource() {
	m.source = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ReviewMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReviewMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Review entity.
// If the Review object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReviewMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearQrCode clears the "qr_code" edge to the QRCode entity.
func (m *ReviewMutation) ClearQrCode() {
	m.clearedqr_code = true
	m.clearedFields[review.FieldQrCodeID] = struct{}{}
}

// QrCodeCleared reports if the "qr_code" edge to the QRCode entity was cleared.
func (m *ReviewMutation) QrCodeCleared() bool {
	return m.clearedqr_code
}

// QrCodeIDs returns the "qr_code" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QrCodeID instead. It exists only for internal usage by the builders.
func (m *ReviewMutation) QrCodeIDs() (ids []uuid.UUID) {
	if id := m.qr_code; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQrCode resets all changes to the "qr_code" edge.
func (m *ReviewMutation) ResetQrCode() {
	m.qr_code = nil
	m.clearedqr_code = false
}

// Where appends a list predicates to the ReviewMutation builder.
func (m *ReviewMutation) Where(ps ...predicate.Review) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReviewMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReviewMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Review, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReviewMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReviewMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Review).
func (m *ReviewMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReviewMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.qr_code != nil {
		fields = append(fields, review.FieldQrCodeID)
	}
	if m.review_text != nil {
		fields = append(fields, review.FieldReviewText)
	}
	if m.language != nil {
		fields = append(fields, review.FieldLanguage)
	}
	if m.rating != nil {
		fields = append(fields, review.FieldRating)
	}
	if m.source != nil {
		fields = append(fields, review.FieldSource)
	}
	if m.created_at != nil {
		fields = append(fields, review.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReviewMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case review.FieldQrCodeID:
		return m.QrCodeID()
	case review.FieldReviewText:
		return m.ReviewText()
	case review.FieldLanguage:
		return m.Language()
	case review.FieldRating:
		return m.Rating()
	case review.FieldSource:
		return m.Source()
	case review.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReviewMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case review.FieldQrCodeID:
		return m.OldQrCodeID(ctx)
	case review.FieldReviewText:
		return m.OldReviewText(ctx)
	case review.FieldLanguage:
		return m.OldLanguage(ctx)
	case review.FieldRating:
		return m.OldRating(ctx)
	case review.FieldSource:
		return m.OldSource(ctx)
	case review.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Review field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewMutation) SetField(name string, value ent.Value) error {
	switch name {
	case review.FieldQrCodeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQrCodeID(v)
		return nil
	case review.FieldReviewText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewText(v)
		return nil
	case review.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case review.FieldRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case review.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case review.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Review field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReviewMutation) AddedFields() []string {
	var fields []string
	if m.addrating != nil {
		fields = append(fields, review.FieldRating)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReviewMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case review.FieldRating:
		return m.AddedRating()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewMutation) AddField(name string, value ent.Value) error {
	switch name {
	case review.FieldRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRating(v)
		return nil
	}
	return fmt.Errorf("unknown Review numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReviewMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReviewMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReviewMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Review nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReviewMutation) ResetField(name string) error {
	switch name {
	case review.FieldQrCodeID:
		m.ResetQrCodeID()
		return nil
	case review.FieldReviewText:
		m.ResetReviewText()
		return nil
	case review.FieldLanguage:
		m.ResetLanguage()
		return nil
	case review.FieldRating:
		m.ResetRating()
		return nil
	case review.FieldSource:
		m.ResetSource()
		return nil
	case review.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Review field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReviewMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.qr_code != nil {
		edges = append(edges, review.EdgeQrCode)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReviewMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case review.EdgeQrCode:
		if id := m.qr_code; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReviewMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReviewMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReviewMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedqr_code {
		edges = append(edges, review.EdgeQrCode)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReviewMutation) EdgeCleared(name string) bool {
	switch name {
	case review.EdgeQrCode:
		return m.clearedqr_code
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReviewMutation) ClearEdge(name string) error {
	switch name {
	case review.EdgeQrCode:
		m.ClearQrCode()
		return nil
	}
	return fmt.Errorf("unknown Review unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReviewMutation) ResetEdge(name string) error {
	switch name {
	case review.EdgeQrCode:
		m.ResetQrCode()
		return nil
	}
	return fmt.Errorf("unknown Review edge %s", name)
}

// ScanLogMutation represents an operation that mutates the ScanLog nodes in the graph.
type ScanLogMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	job_id         *string
	device_id      *string
	action         *string
	timestamp      *time.Time
	clearedFields  map[string]struct{}
	qr_code        *uuid.UUID
	clearedqr_code bool
	done           bool
	oldValue       func(context.Context) (*ScanLog, error)
	predicates     []predicate.ScanLog
}

var _ ent.Mutation = (*ScanLogMutation)(nil)

// scanlogOption allows management of the mutation configuration using functional options.
type scanlogOption func(*ScanLogMutation)

// newScanLogMutation creates new mutation for the ScanLog entity.
func newScanLogMutation(c config, op Op, opts ...scanlogOption) *ScanLogMutation {
	m := &ScanLogMutation{
		config:        c,
		op:            op,
		typ:           TypeScanLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScanLogID sets the ID field of the mutation.
func withScanLogID(id uuid.UUID) scanlogOption {
	return func(m *ScanLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ScanLog
		)
		m.oldValue = func(ctx context.Context) (*ScanLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScanLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScanLog sets the old ScanLog of the mutation.
func withScanLog(node *ScanLog) scanlogOption {
	return func(m *ScanLogMutation) {
		m.oldValue = func(context.Context) (*ScanLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScanLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScanLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScanLog entities.
func (m *ScanLogMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScanLogMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScanLogMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScanLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQrCodeID sets the "qr_code_id" field.
func (m *ScanLogMutation) SetQrCodeID(u uuid.UUID) {
	m.qr_code = &u
}

// QrCodeID returns the value of the "qr_code_id" field in the mutation.
func (m *ScanLogMutation) QrCodeID() (r uuid.UUID, exists bool) {
	v := m.qr_code
	if v == nil {
		return
	}
	return *v, true
}

// OldQrCodeID returns the old "qr_code_id" field's value of the ScanLog entity.
// If the ScanLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanLogMutation) OldQrCodeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQrCodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQrCodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQrCodeID: %w", err)
	}
	return oldValue.QrCodeID, nil
}

// ResetQrCodeID resets all changes to the "qr_code_id" field.
func (m *ScanLogMutation) ResetQrCodeID() {
	m.qr_code = nil
}

// SetJobID sets the "job_id" field.
func (m *ScanLogMutation) SetJobID(s string) {
	m.job_id = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *ScanLogMutation) JobID() (r string, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the ScanLog entity.
// If the ScanLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanLogMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ClearJobID clears the value of the "job_id" field.
func (m *ScanLogMutation) ClearJobID() {
	m.job_id = nil
	m.clearedFields[scanlog.FieldJobID] = struct{}{}
}

// JobIDCleared returns if the "job_id" field was cleared in this mutation.
func (m *ScanLogMutation) JobIDCleared() bool {
	_, ok := m.clearedFields[scanlog.FieldJobID]
	return ok
}

// ResetJobID resets all changes to the "job_id" field.
func (m *ScanLogMutation) ResetJobID() {
	m.job_id = nil
	delete(m.clearedFields, scanlog.FieldJobID)
}

// SetDeviceID sets the "device_id" field.
func (m *ScanLogMutation) SetDeviceID(s string) {
	m.device_id = &s
}

// DeviceID returns the value of the "device_id" field in the mutation.
func (m *ScanLogMutation) DeviceID() (r string, exists bool) {
	v := m.device_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDeviceID returns the old "device_id" field's value of the ScanLog entity.
// If the ScanLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanLogMutation) OldDeviceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeviceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeviceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeviceID: %w", err)
	}
	return oldValue.DeviceID, nil
}

// ClearDeviceID clears the value of the "device_id" field.
func (m *ScanLogMutation) ClearDeviceID() {
	m.device_id = nil
	m.clearedFields[scanlog.FieldDeviceID] = struct{}{}
}

// DeviceIDCleared returns if the "device_id" field was cleared in this mutation.
func (m *ScanLogMutation) DeviceIDCleared() bool {
	_, ok := m.clearedFields[scanlog.FieldDeviceID]
	return ok
}

// ResetDeviceID resets all changes to the "device_id" field.
func (m *ScanLogMutation) ResetDeviceID() {
	m.device_id = nil
	delete(m.clearedFields, scanlog.FieldDeviceID)
}

// SetAction sets the "action" field.
func (m *ScanLogMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *ScanLogMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the ScanLog entity.
// If the ScanLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanLogMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *ScanLogMutation) ResetAction() {
	m.action = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ScanLogMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ScanLogMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ScanLog entity.
// If the ScanLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanLogMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ScanLogMutation) ResetTimestamp() {
	m.timestamp = nil
}

// ClearQrCode clears the "qr_code" edge to the QRCode entity.
func (m *ScanLogMutation) ClearQrCode() {
	m.clearedqr_code = true
	m.clearedFields[scanlog.FieldQrCodeID] = struct{}{}
}

// QrCodeCleared reports if the "qr_code" edge to the QRCode entity was cleared.
func (m *ScanLogMutation) QrCodeCleared() bool {
	return m.clearedqr_code
}

// QrCodeIDs returns the "qr_code" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QrCodeID instead. It exists only for internal usage by the builders.
func (m *ScanLogMutation) QrCodeIDs() (ids []uuid.UUID) {
	if id := m.qr_code; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQrCode resets all changes to the "qr_code" edge.
func (m *ScanLogMutation) ResetQrCode() {
	m.qr_code = nil
	m.clearedqr_code = false
}

// Where appends a list predicates to the ScanLogMutation builder.
func (m *ScanLogMutation) Where(ps ...predicate.ScanLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScanLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScanLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScanLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScanLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScanLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScanLog).
func (m *ScanLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScanLogMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.qr_code != nil {
		fields = append(fields, scanlog.FieldQrCodeID)
	}
	if m.job_id != nil {
		fields = append(fields, scanlog.FieldJobID)
	}
	if m.device_id != nil {
		fields = append(fields, scanlog.FieldDeviceID)
	}
	if m.action != nil {
		fields = append(fields, scanlog.FieldAction)
	}
	if m.timestamp != nil {
		fields = append(fields, scanlog.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScanLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scanlog.FieldQrCodeID:
		return m.QrCodeID()
	case scanlog.FieldJobID:
		return m.JobID()
	case scanlog.FieldDeviceID:
		return m.DeviceID()
	case scanlog.FieldAction:
		return m.Action()
	case scanlog.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScanLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scanlog.FieldQrCodeID:
		return m.OldQrCodeID(ctx)
	case scanlog.FieldJobID:
		return m.OldJobID(ctx)
	case scanlog.FieldDeviceID:
		return m.OldDeviceID(ctx)
	case scanlog.FieldAction:
		return m.OldAction(ctx)
	case scanlog.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown ScanLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScanLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scanlog.FieldQrCodeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQrCodeID(v)
		return nil
	case scanlog.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case scanlog.FieldDeviceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeviceID(v)
		return nil
	case scanlog.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case scanlog.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown ScanLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScanLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScanLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScanLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ScanLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScanLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scanlog.FieldJobID) {
		fields = append(fields, scanlog.FieldJobID)
	}
	if m.FieldCleared(scanlog.FieldDeviceID) {
		fields = append(fields, scanlog.FieldDeviceID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScanLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScanLogMutation) ClearField(name string) error {
	switch name {
	case scanlog.FieldJobID:
		m.ClearJobID()
		return nil
	case scanlog.FieldDeviceID:
		m.ClearDeviceID()
		return nil
	}
	return fmt.Errorf("unknown ScanLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScanLogMutation) ResetField(name string) error {
	switch name {
	case scanlog.FieldQrCodeID:
		m.ResetQrCodeID()
		return nil
	case scanlog.FieldJobID:
		m.ResetJobID()
		return nil
	case scanlog.FieldDeviceID:
		m.ResetDeviceID()
		return nil
	case scanlog.FieldAction:
		m.ResetAction()
		return nil
	case scanlog.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown ScanLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScanLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.qr_code != nil {
		edges = append(edges, scanlog.EdgeQrCode)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScanLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case scanlog.EdgeQrCode:
		if id := m.qr_code; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScanLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScanLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScanLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedqr_code {
		edges = append(edges, scanlog.EdgeQrCode)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScanLogMutation) EdgeCleared(name string) bool {
	switch name {
	case scanlog.EdgeQrCode:
		return m.clearedqr_code
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScanLogMutation) ClearEdge(name string) error {
	switch name {
	case scanlog.EdgeQrCode:
		m.ClearQrCode()
		return nil
	}
	return fmt.Errorf("unknown ScanLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScanLogMutation) ResetEdge(name string) error {
	switch name {
	case scanlog.EdgeQrCode:
		m.ResetQrCode()
		return nil
	}
	return fmt.Errorf("unknown ScanLog edge %s", name)
}

// TempReviewMutation represents an operation that mutates the TempReview nodes in the graph.
type TempReviewMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	job_id         *string
	review_text    *string
	language       *string
	rating         *int
	addrating      *int
	hash           *string
	session_id     *string
	created_at     *time.Time
	expires_at     *time.Time
	clearedFields  map[string]struct{}
	qr_code        *uuid.UUID
	clearedqr_code bool
	done           bool
	oldValue       func(context.Context) (*TempReview, error)
	predicates     []predicate.TempReview
}

var _ ent.Mutation = (*TempReviewMutation)(nil)

// tempreviewOption allows management of the mutation configuration using functional options.
type tempreviewOption func(*TempReviewMutation)

// newTempReviewMutation creates new mutation for the TempReview entity.
func newTempReviewMutation(c config, op Op, opts ...tempreviewOption) *TempReviewMutation {
	m := &TempReviewMutation{
		config:        c,
		op:            op,
		typ:           TypeTempReview,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTempReviewID sets the ID field of the mutation.
func withTempReviewID(id uuid.UUID) tempreviewOption {
	return func(m *TempReviewMutation) {
		var (
			err   error
			once  sync.Once
			value *TempReview
		)
		m.oldValue = func(ctx context.Context) (*TempReview, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TempReview.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTempReview sets the old TempReview of the mutation.
func withTempReview(node *TempReview) tempreviewOption {
	return func(m *TempReviewMutation) {
		m.oldValue = func(context.Context) (*TempReview, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TempReviewMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TempReviewMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TempReview entities.
func (m *TempReviewMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TempReviewMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TempReviewMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TempReview.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *TempReviewMutation) SetJobID(s string) {
	m.job_id = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *TempReviewMutation) JobID() (r string, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the TempReview entity.
// If the TempReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TempReviewMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *TempReviewMutation) ResetJobID() {
	m.job_id = nil
}

// SetQrCodeID sets the "qr_code_id" field.
func (m *TempReviewMutation) SetQrCodeID(u uuid.UUID) {
	m.qr_code = &u
}

// QrCodeID returns the value of the "qr_code_id" field in the mutation.
func (m *TempReviewMutation) QrCodeID() (r uuid.UUID, exists bool) {
	v := m.qr_code
	if v == nil {
		return
	}
	return *v, true
}

// OldQrCodeID returns the old "qr_code_id" field's value of the TempReview entity.
// If the TempReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TempReviewMutation) OldQrCodeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQrCodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQrCodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQrCodeID: %w", err)
	}
	return oldValue.QrCodeID, nil
}

// ResetQrCodeID resets all changes to the "qr_code_id" field.
func (m *TempReviewMutation) ResetQrCodeID() {
	m.qr_code = nil
}

// SetReviewText sets the "review_text" field.
func (m *TempReviewMutation) SetReviewText(s string) {
	m.review_text = &s
}

// ReviewText returns the value of the "review_text" field in the mutation.
func (m *TempReviewMutation) ReviewText() (r string, exists bool) {
	v := m.review_text
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewText returns the old "review_text" field's value of the TempReview entity.
// If the TempReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TempReviewMutation) OldReviewText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewText: %w", err)
	}
	return oldValue.ReviewText, nil
}

// ResetReviewText resets all changes to the "review_text" field.
func (m *TempReviewMutation) ResetReviewText() {
	m.review_text = nil
}

// SetLanguage sets the "language" field.
func (m *TempReviewMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *TempReviewMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the TempReview entity.
// If the TempReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TempReviewMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *TempReviewMutation) ResetLanguage() {
	m.language = nil
}

// SetRating sets the "rating" field.
func (m *TempReviewMutation) SetRating(i int) {
	m.rating = &i
	m.addrating = nil
}

// Rating returns the value of the "rating" field in the mutation.
func (m *TempReviewMutation) Rating() (r int, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the TempReview entity.
// If the TempReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TempReviewMutation) OldRating(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// AddRating adds i to the "rating" field.
func (m *TempReviewMutation) AddRating(i int) {
	if m.addrating != nil {
		*m.addrating += i
	} else {
		m.addrating = &i
	}
}

// AddedRating returns the value that was added to the "rating" field in this mutation.
func (m *TempReviewMutation) AddedRating() (r int, exists bool) {
	v := m.addrating
	if v == nil {
		return
	}
	return *v, true
}

// ResetRating resets all changes to the "rating" field.
func (m *TempReviewMutation) ResetRating() {
	m.rating = nil
	m.addrating = nil
}

// SetHash sets the "hash" field.
func (m *TempReviewMutation) SetHash(s string) {
	m.hash = &s
}

// Hash returns the value of the "hash" field in the mutation.
func (m *TempReviewMutation) Hash() (r string, exists bool) {
	v := m.hash
	if v == nil {
		return
	}
	return *v, true
}

// OldHash returns the old "hash" field's value of the TempReview entity.
// If the TempReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TempReviewMutation) OldHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHash: %w", err)
	}
	return oldValue.Hash, nil
}

// ResetHash resets all changes to the "hash" field.
func (m *TempReviewMutation) ResetHash() {
	m.hash = nil
}

// SetSessionID sets the "session_id" field.
func (m *TempReviewMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *TempReviewMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the TempReview entity.
// If the TempReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TempReviewMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *TempReviewMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[tempreview.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *TempReviewMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[tempreview.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *TempReviewMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, tempreview.FieldSessionID)
}

// SetCreatedAt sets the "created_at" field.
func (m *TempReviewMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TempReviewMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TempReview entity.
// If the TempReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TempReviewMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TempReviewMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *TempReviewMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *TempReviewMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the TempReview entity.
// If the TempReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TempReviewMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *TempReviewMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// ClearQrCode clears the "qr_code" edge to the QRCode entity.
func (m *TempReviewMutation) ClearQrCode() {
	m.clearedqr_code = true
	m.clearedFields[tempreview.FieldQrCodeID] = struct{}{}
}

// QrCodeCleared reports if the "qr_code" edge to the QRCode entity was cleared.
func (m *TempReviewMutation) QrCodeCleared() bool {
	return m.clearedqr_code
}

// QrCodeIDs returns the "qr_code" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QrCodeID instead. It exists only for internal usage by the builders.
func (m *TempReviewMutation) QrCodeIDs() (ids []uuid.UUID) {
	if id := m.qr_code; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQrCode resets all changes to the "qr_code" edge.
func (m *TempReviewMutation) ResetQrCode() {
	m.qr_code = nil
	m.clearedqr_code = false
}

// Where appends a list predicates to the TempReviewMutation builder.
func (m *TempReviewMutation) Where(ps ...predicate.TempReview) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TempReviewMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TempReviewMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TempReview, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TempReviewMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TempReviewMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TempReview).
func (m *TempReviewMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TempReviewMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.job_id != nil {
		fields = append(fields, tempreview.FieldJobID)
	}
	if m.qr_code != nil {
		fields = append(fields, tempreview.FieldQrCodeID)
	}
	if m.review_text != nil {
		fields = append(fields, tempreview.FieldReviewText)
	}
	if m.language != nil {
		fields = append(fields, tempreview.FieldLanguage)
	}
	if m.rating != nil {
		fields = append(fields, tempreview.FieldRating)
	}
	if m.hash != nil {
		fields = append(fields, tempreview.FieldHash)
	}
	if m.session_id != nil {
		fields = append(fields, tempreview.FieldSessionID)
	}
	if m.created_at != nil {
		fields = append(fields, tempreview.FieldCreatedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, tempreview.FieldExpiresAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TempReviewMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tempreview.FieldJobID:
		return m.JobID()
	case tempreview.FieldQrCodeID:
		return m.QrCodeID()
	case tempreview.FieldReviewText:
		return m.ReviewText()
	case tempreview.FieldLanguage:
		return m.Language()
	case tempreview.FieldRating:
		return m.Rating()
	case tempreview.FieldHash:
		return m.Hash()
	case tempreview.FieldSessionID:
		return m.SessionID()
	case tempreview.FieldCreatedAt:
		return m.CreatedAt()
	case tempreview.FieldExpiresAt:
		return m.ExpiresAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TempReviewMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tempreview.FieldJobID:
		return m.OldJobID(ctx)
	case tempreview.FieldQrCodeID:
		return m.OldQrCodeID(ctx)
	case tempreview.FieldReviewText:
		return m.OldReviewText(ctx)
	case tempreview.FieldLanguage:
		return m.OldLanguage(ctx)
	case tempreview.FieldRating:
		return m.OldRating(ctx)
	case tempreview.FieldHash:
		return m.OldHash(ctx)
	case tempreview.FieldSessionID:
		return m.OldSessionID(ctx)
	case tempreview.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tempreview.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	}
	return nil, fmt.Errorf("unknown TempReview field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TempReviewMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tempreview.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case tempreview.FieldQrCodeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQrCodeID(v)
		return nil
	case tempreview.FieldReviewText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewText(v)
		return nil
	case tempreview.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case tempreview.FieldRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case tempreview.FieldHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHash(v)
		return nil
	case tempreview.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case tempreview.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tempreview.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	}
	return fmt.Errorf("unknown TempReview field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TempReviewMutation) AddedFields() []string {
	var fields []string
	if m.addrating != nil {
		fields = append(fields, tempreview.FieldRating)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TempReviewMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tempreview.FieldRating:
		return m.AddedRating()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TempReviewMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tempreview.FieldRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRating(v)
		return nil
	}
	return fmt.Errorf("unknown TempReview numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TempReviewMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tempreview.FieldSessionID) {
		fields = append(fields, tempreview.FieldSessionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TempReviewMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TempReviewMutation) ClearField(name string) error {
	switch name {
	case tempreview.FieldSessionID:
		m.ClearSessionID()
		return nil
	}
	return fmt.Errorf("unknown TempReview nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TempReviewMutation) ResetField(name string) error {
	switch name {
	case tempreview.FieldJobID:
		m.ResetJobID()
		return nil
	case tempreview.FieldQrCodeID:
		m.ResetQrCodeID()
		return nil
	case tempreview.FieldReviewText:
		m.ResetReviewText()
		return nil
	case tempreview.FieldLanguage:
		m.ResetLanguage()
		return nil
	case tempreview.FieldRating:
		m.ResetRating()
		return nil
	case tempreview.FieldHash:
		m.ResetHash()
		return nil
	case tempreview.FieldSessionID:
		m.ResetSessionID()
		return nil
	case tempreview.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tempreview.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown TempReview field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TempReviewMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.qr_code != nil {
		edges = append(edges, tempreview.EdgeQrCode)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TempReviewMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tempreview.EdgeQrCode:
		if id := m.qr_code; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TempReviewMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TempReviewMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TempReviewMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedqr_code {
		edges = append(edges, tempreview.EdgeQrCode)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TempReviewMutation) EdgeCleared(name string) bool {
	switch name {
	case tempreview.EdgeQrCode:
		return m.clearedqr_code
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TempReviewMutation) ClearEdge(name string) error {
	switch name {
	case tempreview.EdgeQrCode:
		m.ClearQrCode()
		return nil
	}
	return fmt.Errorf("unknown TempReview unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TempReviewMutation) ResetEdge(name string) error {
	switch name {
	case tempreview.EdgeQrCode:
		m.ResetQrCode()
		return nil
	}
	return fmt.Errorf("unknown TempReview edge %s", name)
}
