package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrGetFillingBagsQueryIsNotConstructed = errors.New(
	"GetFillingBagsQuery must be created via NewGetFillingBagsQuery constructor",
)

// GetFillingBagsQuery retrieves every bag still accepting admissions, for the
// sorting station picklist.
type GetFillingBagsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFillingBagsQuery creates a query for the open bag set.
// This is a parameterless query.
func NewGetFillingBagsQuery() GetFillingBagsQuery {
	return GetFillingBagsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetFillingBagsQuery) Validate() error {
	return q.guard.Validate(ErrGetFillingBagsQueryIsNotConstructed)
}

// GetFillingBagsQueryResponse is one row of the open bag view.
type GetFillingBagsQueryResponse struct {
	ID            kernel.UUID
	Seq           int
	Name          string
	Priority      string
	Destination   string
	MemberCount   int
	TotalGrams    int64
	CapacityGrams int64
}
