package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrGetBagManifestQueryIsNotConstructed = errors.New(
	"GetBagManifestQuery must be created via NewGetBagManifestQuery constructor",
)

// GetBagManifestQuery retrieves the serializable manifest of one bag:
// member tag codes and weights, totals, priority, destination and the
// transport timestamps. Rendering and printing happen outside the core.
type GetBagManifestQuery struct { //nolint:recvcheck //using for validation
	bagID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBagManifestQuery creates a query for one bag's manifest.
func NewGetBagManifestQuery(bagID kernel.UUID) (GetBagManifestQuery, error) {
	q := GetBagManifestQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setBagID(bagID); err != nil {
		return GetBagManifestQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBagManifestQuery) Validate() error {
	return q.guard.Validate(ErrGetBagManifestQueryIsNotConstructed)
}

// BagID returns the bag whose manifest is requested.
func (q GetBagManifestQuery) BagID() kernel.UUID {
	return q.bagID
}

func (q *GetBagManifestQuery) setBagID(bagID kernel.UUID) error {
	if err := bagID.Validate(); err != nil {
		return err
	}

	q.bagID = bagID
	return nil
}
