// Package queries contains read-side operations of the CQRS split. Handlers
// read through raw SQL against the store, bypassing the aggregates, and
// return flat response models for presentation.
package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrGetUncompletedOrdersQueryIsNotConstructed = errors.New(
	"GetUncompletedOrdersQuery must be created via NewGetUncompletedOrdersQuery constructor",
)

// GetUncompletedOrdersQuery retrieves every order whose business status is
// not terminal, for the operator work queue.
type GetUncompletedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUncompletedOrdersQuery creates a query for the active order set.
// This is a parameterless query.
func NewGetUncompletedOrdersQuery() GetUncompletedOrdersQuery {
	return GetUncompletedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUncompletedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUncompletedOrdersQueryIsNotConstructed)
}

// GetUncompletedOrdersQueryResponse is one row of the active order view.
type GetUncompletedOrdersQueryResponse struct {
	ID               kernel.UUID
	CustomerRef      string
	ServiceType      string
	BusinessStatus   string
	CurrentStage     string
	SortingStatus    string
	Express          bool
	TotalGrams       int64
	EstimatedReadyAt *time.Time
}
