package order

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through NewLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one service position of an order: a service type with a weight,
// a piece count, a unit price and an optional express flag. Monetary amounts
// are integer cents.
type LineItem struct {
	serviceType    ServiceType
	weight         kernel.Weight
	quantity       int
	unitPriceCents int64
	express        bool

	guard guard.ConstructorGuard
}

// NewLineItem creates a validated line item.
func NewLineItem(
	serviceType ServiceType,
	weight kernel.Weight,
	quantity int,
	unitPriceCents int64,
	express bool,
) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setServiceType(serviceType),
		item.setWeight(weight),
		item.setQuantity(quantity),
		item.setUnitPriceCents(unitPriceCents),
	); err != nil {
		return LineItem{}, err
	}

	item.express = express
	return item, nil
}

// Validate ensures the line item was created through NewLineItem.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// ServiceType returns the item's service type.
func (i LineItem) ServiceType() ServiceType {
	return i.serviceType
}

// Weight returns the item's weight.
func (i LineItem) Weight() kernel.Weight {
	return i.weight
}

// Quantity returns the piece count.
func (i LineItem) Quantity() int {
	return i.quantity
}

// UnitPriceCents returns the price per piece in cents.
func (i LineItem) UnitPriceCents() int64 {
	return i.unitPriceCents
}

// Express reports whether the item was ordered with express processing.
func (i LineItem) Express() bool {
	return i.express
}

// SubtotalCents returns quantity times unit price.
func (i LineItem) SubtotalCents() int64 {
	return i.unitPriceCents * int64(i.quantity)
}

func (i *LineItem) setServiceType(serviceType ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}
	i.serviceType = serviceType
	return nil
}

func (i *LineItem) setWeight(weight kernel.Weight) error {
	if weight.Grams() < kernel.WeightMinGrams {
		return errs.NewValueIsRequiredError("weight")
	}
	i.weight = weight
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, 10000)
	}
	i.quantity = quantity
	return nil
}

func (i *LineItem) setUnitPriceCents(cents int64) error {
	if cents < 0 {
		return errs.NewValueIsInvalidError("unitPriceCents")
	}
	i.unitPriceCents = cents
	return nil
}
