package order

import (
	"errors"
	"fmt"
	"time"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

// ErrTagIsNotConstructed is returned when a Tag was not created through NewTag.
var ErrTagIsNotConstructed = errors.New("Tag must be created via NewTag constructor")

// TagType identifies the kind of physical tag attached to an order.
type TagType int

const (
	// TagTypeUnknown represents an invalid or undefined tag type.
	TagTypeUnknown TagType = iota

	// TagRFID is a sewn-in RFID chip.
	TagRFID

	// TagQR is a printed QR label. Lost-tag fallback codes are always QR.
	TagQR
)

func getTagTypeStrings() map[TagType]string {
	return map[TagType]string{
		TagTypeUnknown: "unknown",
		TagRFID:        "rfid",
		TagQR:          "qr",
	}
}

// String returns the lowercase name of the tag type, or "unknown".
func (t TagType) String() string {
	if str, ok := getTagTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the tag type is RFID or QR.
func (t TagType) Validate() error {
	if t != TagRFID && t != TagQR {
		return errs.NewValueIsInvalidErrorWithCause("tagType",
			fmt.Errorf("%d is not a valid tag type", t))
	}
	return nil
}

// TagTypeFromString parses a lowercase tag type name.
func TagTypeFromString(s string) (TagType, error) {
	for t, str := range getTagTypeStrings() {
		if str == s && t != TagTypeUnknown {
			return t, nil
		}
	}
	return TagTypeUnknown, errs.NewValueIsInvalidErrorWithCause("tagType",
		fmt.Errorf("%q is not a valid tag type", s))
}

// TagStatus is the lifecycle state of an order's physical tag.
type TagStatus int

const (
	// TagStatusPending means no tag has been bound yet.
	TagStatusPending TagStatus = iota

	// TagStatusTagged means a tag is actively bound to the order.
	TagStatusTagged

	// TagStatusLost means the bound tag was reported lost.
	TagStatusLost

	// TagStatusReplaced means the tag was superseded by a new binding.
	TagStatusReplaced
)

func getTagStatusStrings() map[TagStatus]string {
	return map[TagStatus]string{
		TagStatusPending:  "pending",
		TagStatusTagged:   "tagged",
		TagStatusLost:     "lost",
		TagStatusReplaced: "replaced",
	}
}

// String returns the lowercase name of the tag status, or "pending".
func (s TagStatus) String() string {
	if str, ok := getTagStatusStrings()[s]; ok {
		return str
	}
	return "pending"
}

// Validate checks that the status is one of the defined values.
func (s TagStatus) Validate() error {
	if s < TagStatusPending || s > TagStatusReplaced {
		return errs.NewValueIsInvalidErrorWithCause("tagStatus",
			fmt.Errorf("%d is not a valid tag status", s))
	}
	return nil
}

// TagStatusFromString parses a lowercase tag status name.
func TagStatusFromString(s string) (TagStatus, error) {
	for st, str := range getTagStatusStrings() {
		if str == s {
			return st, nil
		}
	}
	return TagStatusPending, errs.NewValueIsInvalidErrorWithCause("tagStatus",
		fmt.Errorf("%q is not a valid tag status", s))
}

// Tag is a value object representing a physical identifier bound to exactly
// one order. The code is stored already normalized (uppercase, separators
// stripped); normalization itself is the tag registry's concern.
//
// A tag with status "tagged" always carries a non-empty code: the constructor
// rejects empty codes, and status changes never clear the code.
type Tag struct {
	code    string
	tagType TagType
	boundAt time.Time
	boundBy string

	guard guard.ConstructorGuard
}

// NewTag creates a tag binding from an already-normalized code.
func NewTag(code string, tagType TagType, boundAt time.Time, boundBy string) (Tag, error) {
	if code == "" {
		return Tag{}, errs.NewValueIsRequiredError("code")
	}
	if err := tagType.Validate(); err != nil {
		return Tag{}, err
	}
	if boundBy == "" {
		return Tag{}, errs.NewValueIsRequiredError("boundBy")
	}

	return Tag{
		code:    code,
		tagType: tagType,
		boundAt: boundAt,
		boundBy: boundBy,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the tag was created through NewTag.
func (t Tag) Validate() error {
	return t.guard.Validate(ErrTagIsNotConstructed)
}

// Code returns the normalized tag code.
func (t Tag) Code() string {
	return t.code
}

// Type returns the tag type.
func (t Tag) Type() TagType {
	return t.tagType
}

// BoundAt returns the binding timestamp.
func (t Tag) BoundAt() time.Time {
	return t.boundAt
}

// BoundBy returns the operator who bound the tag.
func (t Tag) BoundBy() string {
	return t.boundBy
}
