// Package ports defines the contracts between the core and infrastructure:
// aggregate repositories, the unit of work, and the machine-state snapshot
// source. Implementations live under internal/adapters.
package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllUncompleted retrieves every order whose business status is not
	// terminal. Used by the estimate-refresh job and the operator views.
	GetAllUncompleted(ctx context.Context) ([]*order.Order, error)

	// GetAllInBag retrieves the member orders of one bag.
	// Used by bag lifecycle handlers to apply member-side effects.
	GetAllInBag(ctx context.Context, bagID kernel.UUID) ([]*order.Order, error)
}
