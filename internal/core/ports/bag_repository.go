package ports

import (
	"context"

	"laundry/internal/core/domain/model/bag"
	"laundry/internal/core/domain/model/kernel"
)

// BagRepository defines the persistence contract for bag aggregates.
type BagRepository interface {
	// Add persists a new bag aggregate to storage.
	// The bag must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *bag.Bag) error

	// Update persists changes to an existing bag aggregate.
	// The bag must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *bag.Bag) error

	// Delete removes a bag record. Only deletable (filling) bags may be
	// destroyed; the handler releases member orders first.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a bag aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*bag.Bag, error)

	// GetAllFilling retrieves every bag still accepting admissions,
	// ordered by sequence number. Used by the automatic bag picker.
	GetAllFilling(ctx context.Context) ([]*bag.Bag, error)

	// NextSequence returns the next free sequence number for the
	// destination class: max existing plus one, starting at 1.
	NextSequence(ctx context.Context, destination bag.Destination) (int, error)
}
