package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerRefIsRequired = errors.New("customer reference is required")
	ErrItemsAreRequired      = errors.New("at least one line item is required")
	ErrActorIsRequired       = errors.New("actor is required")
)

// OrderItem carries one line item of a creation request in primitive form.
// Parsing into domain values happens in the handler.
type OrderItem struct {
	ServiceType    string
	WeightGrams    int64
	Quantity       int
	UnitPriceCents int64
	Express        bool
}

// CreateOrderCommand represents a request to register a new laundry order at
// the reception desk.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	items := []commands.OrderItem{{ServiceType: "wash_iron", WeightGrams: 2500, Quantity: 3, UnitPriceCents: 1200}}
//	cmd, err := NewCreateOrderCommand(orderID, "walk-in-42", items, "card", "reception desk 1")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerRef   string
	items         []OrderItem
	paymentMethod string
	actor         string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the order ID is valid, the customer reference and actor are
// not empty, and at least one item is present. Item contents are validated by
// the domain model in the handler.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerRef string,
	items []OrderItem,
	paymentMethod string,
	actor string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerRef(customerRef),
		cmd.setItems(items),
		cmd.setActor(actor),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.paymentMethod = paymentMethod
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerRef returns the customer reference string.
func (c CreateOrderCommand) CustomerRef() string {
	return c.customerRef
}

// Items returns the requested line items.
func (c CreateOrderCommand) Items() []OrderItem {
	return c.items
}

// PaymentMethod returns the raw payment method name.
func (c CreateOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

// Actor returns who registered the order.
func (c CreateOrderCommand) Actor() string {
	return c.actor
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerRef(customerRef string) error {
	if customerRef == "" {
		return ErrCustomerRefIsRequired
	}

	c.customerRef = customerRef
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}
