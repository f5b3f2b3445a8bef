package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"laundry/internal/core/domain/model/bag"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

// minTagCodeLength is the minimum length of a normalized tag code.
const minTagCodeLength = 6

// ErrInvalidTagFormat is returned when a normalized tag code is not
// alphanumeric or is shorter than the minimum length.
var ErrInvalidTagFormat = errors.New("tag code has invalid format")

// TagRegistry is a domain service responsible for binding physical
// identification tags to orders and resolving tag codes within a bag.
//
// Business rules:
//   - Codes are normalized (trimmed, uppercased, separators stripped) before
//     any comparison or storage
//   - A regular binding requires an alphanumeric code of minimum length
//   - The lost-tag fallback flow skips the format check: a synthetic code is
//     derived deterministically from the order id and the binding instant, and
//     the tag type is forced to QR
//   - Duplicate detection is scoped to one bag's member set, not global
type TagRegistry struct{}

// NewTagRegistry creates a new TagRegistry instance.
func NewTagRegistry() TagRegistry {
	return TagRegistry{}
}

// NormalizeCode canonicalizes a raw tag code: whitespace trimmed, letters
// uppercased, the separators "-", "_", "." and inner spaces removed.
func (TagRegistry) NormalizeCode(raw string) string {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', '.', ' ':
			return -1
		}
		return r
	}, normalized)
}

// Bind normalizes and validates rawCode and binds it to the order. The order
// advances from reception to sorting as a side effect of a successful first
// binding.
func (r TagRegistry) Bind(o *order.Order, rawCode string, tagType order.TagType, actor string, now time.Time) (order.Tag, error) {
	if err := o.Validate(); err != nil {
		return order.Tag{}, err
	}

	code := r.NormalizeCode(rawCode)
	if !isWellFormedCode(code) {
		return order.Tag{}, fmt.Errorf("%w: %q", ErrInvalidTagFormat, code)
	}

	tag, err := order.NewTag(code, tagType, now, actor)
	if err != nil {
		return order.Tag{}, err
	}
	if err := o.BindTag(tag, actor, now); err != nil {
		return order.Tag{}, err
	}
	return tag, nil
}

// BindFallback binds a synthetic replacement tag when the physical tag is
// lost or unreadable. The code is derived deterministically from the order id
// and the binding instant, so re-running the flow with the same inputs yields
// the same code. The format check is skipped and the type is forced to QR.
func (r TagRegistry) BindFallback(o *order.Order, actor string, now time.Time) (order.Tag, error) {
	if err := o.Validate(); err != nil {
		return order.Tag{}, err
	}

	code := fallbackCode(o.ID(), now)
	tag, err := order.NewTag(code, order.TagQR, now, actor)
	if err != nil {
		return order.Tag{}, err
	}
	if err := o.BindTag(tag, actor, now); err != nil {
		return order.Tag{}, err
	}
	return tag, nil
}

// LookupByCode resolves a normalized tag code to the member order carrying it
// within the given bag. Returns an ObjectNotFound error when no member
// matches; the scope never widens beyond the bag.
func (r TagRegistry) LookupByCode(normalizedCode string, scope *bag.Bag) (kernel.UUID, error) {
	if err := scope.Validate(); err != nil {
		return kernel.UUID{}, err
	}
	if normalizedCode == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError("normalizedCode")
	}

	for _, m := range scope.Members() {
		if m.TagCode == normalizedCode {
			return m.OrderID, nil
		}
	}
	return kernel.UUID{}, errs.NewObjectNotFoundError("tagCode", nil)
}

// fallbackCode derives the synthetic lost-tag code. The order id prefix keeps
// it traceable, the timestamp keeps successive replacements distinct.
func fallbackCode(orderID kernel.UUID, now time.Time) string {
	id := strings.ToUpper(strings.ReplaceAll(orderID.String(), "-", ""))
	return fmt.Sprintf("LOST%s%d", id[:8], now.Unix())
}

func isWellFormedCode(code string) bool {
	if len(code) < minTagCodeLength {
		return false
	}
	for _, r := range code {
		isDigit := r >= '0' && r <= '9'
		isUpper := r >= 'A' && r <= 'Z'
		if !isDigit && !isUpper {
			return false
		}
	}
	return true
}
