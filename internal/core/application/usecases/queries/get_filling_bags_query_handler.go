package queries

import (
	"context"

	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetFillingBagsQueryHandler reads the open bag set straight from the store.
type GetFillingBagsQueryHandler struct {
	db *gorm.DB
}

// NewGetFillingBagsQueryHandler creates a handler for the open bag view.
// Requires a GORM database connection for query execution.
func NewGetFillingBagsQueryHandler(db *gorm.DB) GetFillingBagsQueryHandler {
	return GetFillingBagsQueryHandler{db: db}
}

// Handle executes the query. Bags come back in sequence order, oldest first,
// matching the automatic picker's tie-break.
func (h GetFillingBagsQueryHandler) Handle(
	ctx context.Context,
	query GetFillingBagsQuery,
) ([]GetFillingBagsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	bags := make([]GetFillingBagsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			seq,
			name,
			priority,
			destination,
			jsonb_array_length(members) AS member_count,
			total_weight,
			capacity
		FROM bags
		WHERE status = 'filling'
		ORDER BY seq
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp GetFillingBagsQueryResponse
			id   uuid.UUID
		)

		err = rows.Scan(
			&id,
			&resp.Seq,
			&resp.Name,
			&resp.Priority,
			&resp.Destination,
			&resp.MemberCount,
			&resp.TotalGrams,
			&resp.CapacityGrams,
		)
		if err != nil {
			return nil, err
		}

		bagID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = bagID
		bags = append(bags, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bags, nil
}
