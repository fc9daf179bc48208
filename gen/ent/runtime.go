// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/smartqr/reviewd/db/ent/schema"
	"github.com/smartqr/reviewd/gen/ent/qrcode"
	"github.com/smartqr/reviewd/gen/ent/review"
	"github.com/smartqr/reviewd/gen/ent/scanlog"
	"github.com/smartqr/reviewd/gen/ent/tempreview"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	qrcodeFields := schema.QRCode{}.Fields()
	_ = qrcodeFields
	// qrcodeDescBusinessName is the schema descriptor for business_name field.
	qrcodeDescBusinessName := qrcodeFields[1].Descriptor()
	// qrcode.BusinessNameValidator is a validator for the "business_name" field. It is called by the builders before save.
	qrcode.BusinessNameValidator = qrcodeDescBusinessName.Validators[0].(func(string) error)
	// qrcodeDescCreatedAt is the schema descriptor for created_at field.
	qrcodeDescCreatedAt := qrcodeFields[4].Descriptor()
	// qrcode.DefaultCreatedAt holds the default value on creation for the created_at field.
	qrcode.DefaultCreatedAt = qrcodeDescCreatedAt.Default.(func() time.Time)
	// qrcodeDescID is the schema descriptor for id field.
	qrcodeDescID := qrcodeFields[0].Descriptor()
	// qrcode.DefaultID holds the default value on creation for the id field.
	qrcode.DefaultID = qrcodeDescID.Default.(func() uuid.UUID)
	reviewFields := schema.Review{}.Fields()
	_ = reviewFields
	// reviewDescReviewText is the schema descriptor for review_text field.
	reviewDescReviewText := reviewFields[2].Descriptor()
	// review.ReviewTextValidator is a validator for the "review_text" field. It is called by the builders before save.
	review.ReviewTextValidator = reviewDescReviewText.Validators[0].(func(string) error)
	// reviewDescLanguage is the schema descriptor for language field.
	reviewDescLanguage := reviewFields[3].Descriptor()
	// review.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	review.LanguageValidator = reviewDescLanguage.Validators[0].(func(string) error)
	// reviewDescRating is the schema descriptor for rating field.
	reviewDescRating := reviewFields[4].Descriptor()
	// review.RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	review.RatingValidator = func() func(int) error {
		validators := reviewDescRating.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(rating int) error {
			for _, fn := range fns {
				if err := fn(rating); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reviewDescSource is the schema descriptor for source field.
	reviewDescSource := reviewFields[5].Descriptor()
	// review.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	review.SourceValidator = reviewDescSource.Validators[0].(func(string) error)
	// reviewDescCreatedAt is the schema descriptor for created_at field.
	reviewDescCreatedAt := reviewFields[6].Descriptor()
	// review.DefaultCreatedAt holds the default value on creation for the created_at field.
	review.DefaultCreatedAt = reviewDescCreatedAt.Default.(func() time.Time)
	// reviewDescID is the schema descriptor for id field.
	reviewDescID := reviewFields[0].Descriptor()
	// review.DefaultID holds the default value on creation for the id field.
	review.DefaultID = reviewDescID.Default.(func() uuid.UUID)
	scanlogFields := schema.ScanLog{}.Fields()
	_ = scanlogFields
	// scanlogDescAction is the schema descriptor for action field.
	scanlogDescAction := scanlogFields[4].Descriptor()
	// scanlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	scanlog.ActionValidator = func() func(string) error {
		validators := scanlogDescAction.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(action string) error {
			for _, fn := range fns {
				if err := fn(action); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// scanlogDescTimestamp is the schema descriptor for timestamp field.
	scanlogDescTimestamp := scanlogFields[5].Descriptor()
	// scanlog.DefaultTimestamp holds the default value on creation for the timestamp field.
	scanlog.DefaultTimestamp = scanlogDescTimestamp.Default.(func() time.Time)
	// scanlogDescID is the schema descriptor for id field.
	scanlogDescID := scanlogFields[0].Descriptor()
	// scanlog.DefaultID holds the default value on creation for the id field.
	scanlog.DefaultID = scanlogDescID.Default.(func() uuid.UUID)
	tempreviewFields := schema.TempReview{}.Fields()
	_ = tempreviewFields
	// tempreviewDescJobID is the schema descriptor for job_id field.
	tempreviewDescJobID := tempreviewFields[1].Descriptor()
	// tempreview.JobIDValidator is a validator for the "job_id" field. It is called by the builders before save.
	tempreview.JobIDValidator = tempreviewDescJobID.Validators[0].(func(string) error)
	// tempreviewDescReviewText is the schema descriptor for review_text field.
	tempreviewDescReviewText := tempreviewFields[3].Descriptor()
	// tempreview.ReviewTextValidator is a validator for the "review_text" field. It is called by the builders before save.
	tempreview.ReviewTextValidator = tempreviewDescReviewText.Validators[0].(func(string) error)
	// tempreviewDescLanguage is the schema descriptor for language field.
	tempreviewDescLanguage := tempreviewFields[4].Descriptor()
	// tempreview.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	tempreview.LanguageValidator = tempreviewDescLanguage.Validators[0].(func(string) error)
	// tempreviewDescRating is the schema descriptor for rating field.
	tempreviewDescRating := tempreviewFields[5].Descriptor()
	// tempreview.RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	tempreview.RatingValidator = func() func(int) error {
		validators := tempreviewDescRating.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(rating int) error {
			for _, fn := range fns {
				if err := fn(rating); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// tempreviewDescHash is the schema descriptor for hash field.
	tempreviewDescHash := tempreviewFields[6].Descriptor()
	// tempreview.HashValidator is a validator for the "hash" field. It is called by the builders before save.
	tempreview.HashValidator = func() func(string) error {
		validators := tempreviewDescHash.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(hash string) error {
			for _, fn := range fns {
				if err := fn(hash); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// tempreviewDescCreatedAt is the schema descriptor for created_at field.
	tempreviewDescCreatedAt := tempreviewFields[8].Descriptor()
	// tempreview.DefaultCreatedAt holds the default value on creation for the created_at field.
	tempreview.DefaultCreatedAt = tempreviewDescCreatedAt.Default.(func() time.Time)
	// tempreviewDescID is the schema descriptor for id field.
	tempreviewDescID := tempreviewFields[0].Descriptor()
	// tempreview.DefaultID holds the default value on creation for the id field.
	tempreview.DefaultID = tempreviewDescID.Default.(func() uuid.UUID)
}
