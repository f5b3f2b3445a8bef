package queries

import (
	"context"
	"database/sql"

	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUncompletedOrdersQueryHandler reads the active order set straight from
// the store, filtering out terminal statuses.
type GetUncompletedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUncompletedOrdersQueryHandler creates a handler for the active order
// view. Requires a GORM database connection for query execution.
func NewGetUncompletedOrdersQueryHandler(db *gorm.DB) GetUncompletedOrdersQueryHandler {
	return GetUncompletedOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted oldest first so the desk
// works the backlog in intake order.
func (h GetUncompletedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUncompletedOrdersQuery,
) ([]GetUncompletedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUncompletedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_ref,
			service_type,
			business_status,
			current_stage,
			sorting_status,
			express,
			total_weight,
			estimated_ready_at
		FROM orders
		WHERE business_status NOT IN ('completed', 'cancelled')
		ORDER BY created_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp    GetUncompletedOrdersQueryResponse
			id      uuid.UUID
			readyAt sql.NullTime
		)

		err = rows.Scan(
			&id,
			&resp.CustomerRef,
			&resp.ServiceType,
			&resp.BusinessStatus,
			&resp.CurrentStage,
			&resp.SortingStatus,
			&resp.Express,
			&resp.TotalGrams,
			&readyAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		if readyAt.Valid {
			t := readyAt.Time
			resp.EstimatedReadyAt = &t
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
