package bagrepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/bag"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBagRepository implements ports.BagRepository using GORM.
type GormBagRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBagRepository creates a new GORM bag repository.
func NewGormBagRepository(db *gorm.DB, tracker aggregateTracker) *GormBagRepository {
	return &GormBagRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new bag to the database.
func (r *GormBagRepository) Add(ctx context.Context, aggregate *bag.Bag) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing bag to the database. All columns are written so
// that emptied member lists and cleared weights land as-is.
func (r *GormBagRepository) Update(ctx context.Context, aggregate *bag.Bag) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&BagDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a bag record. The handler is responsible for checking
// deletability and releasing member orders first.
func (r *GormBagRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&BagDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("bag", id.String())
	}
	return nil
}

// Get retrieves a bag by ID.
func (r *GormBagRepository) Get(ctx context.Context, id kernel.UUID) (*bag.Bag, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BagDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bag", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllFilling retrieves every bag still accepting admissions, ordered by
// sequence number to match the automatic picker's tie-break.
func (r *GormBagRepository) GetAllFilling(ctx context.Context) ([]*bag.Bag, error) {
	var dtos []BagDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", bag.StatusFilling.String()).
		Order("seq").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	bags := make([]*bag.Bag, 0, len(dtos))
	for _, dto := range dtos {
		b, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		bags = append(bags, b)
	}

	return bags, nil
}

// NextSequence returns the next free sequence number for the destination
// class: max existing plus one, starting at 1. Callers allocate inside the
// same transaction that inserts the bag, so concurrent creations for one
// destination serialize on the insert.
func (r *GormBagRepository) NextSequence(ctx context.Context, destination bag.Destination) (int, error) {
	if err := destination.Validate(); err != nil {
		return 0, err
	}

	var maxSeq int64
	err := r.db.WithContext(ctx).Model(&BagDTO{}).
		Where("destination = ?", destination.String()).
		Select("COALESCE(MAX(seq), 0)").
		Scan(&maxSeq).Error
	if err != nil {
		return 0, err
	}

	return int(maxSeq) + 1, nil
}
