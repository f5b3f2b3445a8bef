package services

import (
	"errors"

	"laundry/internal/core/domain/model/bag"
	"laundry/internal/core/domain/model/order"
)

// ErrNoSuitableBag is returned when no filling bag can admit the order. This
// occurs when no bags are provided, none are in the filling state, or none
// has remaining capacity for the order's weight.
var ErrNoSuitableBag = errors.New("no suitable bag found")

// BagPicker is a domain service selecting the bag for an automatic admission
// when the operator does not name one explicitly.
//
// Selection rules:
//   - only filling bags with remaining capacity for the order qualify
//   - bags whose priority already matches the order (or empty and mixed bags)
//     are preferred over bags the admission would turn mixed
//   - ties break on the lowest sequence number, so the oldest bag fills first
type BagPicker struct{}

// NewBagPicker creates a new BagPicker instance.
func NewBagPicker() BagPicker {
	return BagPicker{}
}

// Pick selects the target bag for the order among the candidates. Returns
// ErrNoSuitableBag when no candidate can take the order at all; a bag that
// would become mixed is still returned when nothing better exists, since
// mixing is a warning rather than a failure.
func (p BagPicker) Pick(o *order.Order, bags []*bag.Bag) (*bag.Bag, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	var (
		bestMatching *bag.Bag
		bestFallback *bag.Bag
	)
	for _, b := range bags {
		if err := b.Validate(); err != nil {
			return nil, err
		}
		if b.Status() != bag.StatusFilling || b.HasMember(o.ID()) {
			continue
		}
		if b.TotalWeight().Add(o.TotalWeight()).Exceeds(b.Capacity()) {
			continue
		}

		if p.keepsPriority(o, b) {
			if bestMatching == nil || b.Seq() < bestMatching.Seq() {
				bestMatching = b
			}
		} else if bestFallback == nil || b.Seq() < bestFallback.Seq() {
			bestFallback = b
		}
	}

	if bestMatching != nil {
		return bestMatching, nil
	}
	if bestFallback != nil {
		return bestFallback, nil
	}
	return nil, ErrNoSuitableBag
}

// keepsPriority reports whether admitting the order leaves the bag's priority
// classification unchanged. Empty and already-mixed bags always qualify.
func (BagPicker) keepsPriority(o *order.Order, b *bag.Bag) bool {
	switch {
	case len(b.Members()) == 0, b.Priority() == bag.PriorityMixed:
		return true
	case o.Express():
		return b.Priority() == bag.PriorityExpress
	default:
		return b.Priority() == bag.PriorityRegular
	}
}
