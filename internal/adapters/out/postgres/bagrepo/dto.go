// Package bagrepo provides data transfer objects and mapping functions for
// bag persistence. Member snapshots are stored denormalized in a jsonb
// column; the member orders themselves live in the orders table and carry
// the back-reference.
package bagrepo

import (
	"time"

	"laundry/internal/core/domain/model/bag"
	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BagDTO represents the database structure for persisting bag aggregates.
// Enum columns store the snake_case String() form; seq is indexed together
// with destination because sequence numbers are allocated per destination
// class.
type BagDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq          int       `gorm:"index:idx_bags_destination_seq"`
	Name         string
	Status       string `gorm:"index"`
	Priority     string
	Destination  string      `gorm:"index:idx_bags_destination_seq"`
	Members      []MemberDTO `gorm:"type:jsonb;serializer:json"`
	TotalWeight  int64
	Capacity     int64
	ReadyAt      *time.Time
	ManifestCode string
	Courier      *string
	HandedOverAt *time.Time
	CreatedAt    time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for bag entities.
func (BagDTO) TableName() string {
	return "bags"
}

// MemberDTO is one member snapshot inside the members jsonb document. The
// order id is stored in canonical string form so read-side SQL can unfold
// the document without byte decoding.
type MemberDTO struct {
	OrderID     string `json:"order_id"`
	TagCode     string `json:"tag_code"`
	WeightGrams int64  `json:"weight_grams"`
	Express     bool   `json:"express"`
}

// fromDomain converts a bag aggregate to its database representation.
func fromDomain(aggregate *bag.Bag) BagDTO {
	members := make([]MemberDTO, 0, len(aggregate.Members()))
	for _, m := range aggregate.Members() {
		members = append(members, MemberDTO{
			OrderID:     m.OrderID.String(),
			TagCode:     m.TagCode,
			WeightGrams: m.Weight.Grams(),
			Express:     m.Express,
		})
	}

	dto := BagDTO{
		ID:           aggregate.ID().Bytes(),
		Seq:          aggregate.Seq(),
		Name:         aggregate.Name(),
		Status:       aggregate.Status().String(),
		Priority:     aggregate.Priority().String(),
		Destination:  aggregate.Destination().String(),
		Members:      members,
		TotalWeight:  aggregate.TotalWeight().Grams(),
		Capacity:     aggregate.Capacity().Grams(),
		ReadyAt:      aggregate.ReadyAt(),
		ManifestCode: aggregate.ManifestCode(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
	if h := aggregate.HandoverRecord(); h != nil {
		courier := h.Courier
		at := h.At
		dto.Courier = &courier
		dto.HandedOverAt = &at
	}
	return dto
}

// toDomain converts a database DTO back to a bag aggregate via RestoreBag.
func toDomain(dto BagDTO) (*bag.Bag, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	status, err := bag.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	priority, err := bag.PriorityFromString(dto.Priority)
	if err != nil {
		return nil, err
	}
	destination, err := bag.DestinationFromString(dto.Destination)
	if err != nil {
		return nil, err
	}
	capacity, err := kernel.NewWeight(dto.Capacity)
	if err != nil {
		return nil, err
	}

	members := make([]bag.Member, 0, len(dto.Members))
	for _, m := range dto.Members {
		orderID, memberErr := kernel.UUIDFromString(m.OrderID)
		if memberErr != nil {
			return nil, memberErr
		}
		weight, memberErr := kernel.NewWeight(m.WeightGrams)
		if memberErr != nil {
			return nil, memberErr
		}
		members = append(members, bag.Member{
			OrderID: orderID,
			Weight:  weight,
			Express: m.Express,
			TagCode: m.TagCode,
		})
	}

	var handover *bag.Handover
	if dto.Courier != nil && dto.HandedOverAt != nil {
		handover = &bag.Handover{
			Courier: *dto.Courier,
			At:      *dto.HandedOverAt,
		}
	}

	return bag.RestoreBag(
		id,
		dto.Seq,
		dto.Name,
		status,
		priority,
		members,
		capacity,
		destination,
		dto.ReadyAt,
		dto.ManifestCode,
		handover,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
