package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"laundry/internal/core/domain/model/bag"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBagManifestQueryHandler reads one bag row and unfolds its member
// snapshots into the manifest structure.
type GetBagManifestQueryHandler struct {
	db *gorm.DB
}

// NewGetBagManifestQueryHandler creates a handler for manifest retrieval.
// Requires a GORM database connection for query execution.
func NewGetBagManifestQueryHandler(db *gorm.DB) GetBagManifestQueryHandler {
	return GetBagManifestQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFound error when the bag
// does not exist.
func (h GetBagManifestQueryHandler) Handle(
	ctx context.Context,
	query GetBagManifestQuery,
) (bag.Manifest, error) {
	if err := query.Validate(); err != nil {
		return bag.Manifest{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			manifest_code,
			destination,
			priority,
			members,
			total_weight,
			capacity,
			ready_at,
			courier,
			handed_over_at
		FROM bags
		WHERE id = ?
	`, query.BagID().Bytes()).Row()

	var (
		manifest     bag.Manifest
		id           uuid.UUID
		membersJSON  []byte
		readyAt      sql.NullTime
		courier      sql.NullString
		handedOverAt sql.NullTime
	)
	err := row.Scan(
		&id,
		&manifest.Name,
		&manifest.ManifestCode,
		&manifest.Destination,
		&manifest.Priority,
		&membersJSON,
		&manifest.TotalGrams,
		&manifest.CapacityGrams,
		&readyAt,
		&courier,
		&handedOverAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return bag.Manifest{}, errs.NewObjectNotFoundError("bagID", query.BagID())
	}
	if err != nil {
		return bag.Manifest{}, err
	}
	manifest.BagID = id.String()

	var members []memberRow
	if err = json.Unmarshal(membersJSON, &members); err != nil {
		return bag.Manifest{}, err
	}
	manifest.Items = make([]bag.ManifestItem, 0, len(members))
	for _, m := range members {
		manifest.Items = append(manifest.Items, bag.ManifestItem{
			OrderID: m.OrderID,
			TagCode: m.TagCode,
			Grams:   m.WeightGrams,
			Express: m.Express,
		})
	}

	if readyAt.Valid {
		t := readyAt.Time
		manifest.ReadyAt = &t
	}
	if courier.Valid {
		manifest.Courier = courier.String
	}
	if handedOverAt.Valid {
		t := handedOverAt.Time
		manifest.HandedOverAt = &t
	}

	return manifest, nil
}

// memberRow mirrors the member snapshot layout stored in the bags.members
// jsonb column.
type memberRow struct {
	OrderID     string `json:"order_id"`
	TagCode     string `json:"tag_code"`
	WeightGrams int64  `json:"weight_grams"`
	Express     bool   `json:"express"`
}
