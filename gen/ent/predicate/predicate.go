// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// QRCode is the predicate function for qrcode builders.
type QRCode func(*sql.Selector)

// Review is the predicate function for review builders.
type Review func(*sql.Selector)

// ScanLog is the predicate function for scanlog builders.
type ScanLog func(*sql.Selector)

// TempReview is the predicate function for tempreview builders.
type TempReview func(*sql.Selector)
