// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Scalar columns carry the queryable state (statuses, stage, weight); the
// line items, completed stages, tag and workflow log travel as jsonb
// documents since nothing queries inside them.
//
// Enum columns store the snake_case String() form so that read-side SQL can
// filter on literals ('completed', 'cancelled') without knowing iota values.
type OrderDTO struct {
	ID               uuid.UUID     `gorm:"type:uuid;primaryKey"`
	CustomerRef      string        `gorm:"index"`
	PaymentMethod    string
	ServiceType      string
	BusinessStatus   string `gorm:"index"`
	CurrentStage     string
	SortingStatus    string
	Express          bool
	TotalWeight      int64
	EstimatedReadyAt *time.Time
	BagID            *uuid.UUID     `gorm:"type:uuid;index"`
	Items            []ItemDTO      `gorm:"type:jsonb;serializer:json"`
	CompletedStages  pq.StringArray `gorm:"type:text[]"`
	Tag              *TagDTO        `gorm:"type:jsonb;serializer:json"`
	TagStatus        string
	WorkflowLog      []LogEntryDTO `gorm:"type:jsonb;serializer:json"`
	CreatedAt        time.Time     `gorm:"autoCreateTime:false"`
	UpdatedAt        time.Time     `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one order line inside the items jsonb document.
type ItemDTO struct {
	ServiceType    string `json:"service_type"`
	WeightGrams    int64  `json:"weight_grams"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Express        bool   `json:"express"`
}

// TagDTO is the bound tag snapshot inside the tag jsonb document.
type TagDTO struct {
	Code    string    `json:"code"`
	Type    string    `json:"type"`
	BoundAt time.Time `json:"bound_at"`
	BoundBy string    `json:"bound_by"`
}

// LogEntryDTO is one workflow audit record inside the workflow_log jsonb
// document.
type LogEntryDTO struct {
	From  *string   `json:"from,omitempty"`
	To    string    `json:"to"`
	At    time.Time `json:"at"`
	Actor string    `json:"actor"`
	Note  string    `json:"note,omitempty"`
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ServiceType:    item.ServiceType().String(),
			WeightGrams:    item.Weight().Grams(),
			Quantity:       item.Quantity(),
			UnitPriceCents: item.UnitPriceCents(),
			Express:        item.Express(),
		})
	}

	completed := make(pq.StringArray, 0, len(aggregate.CompletedStages()))
	for _, stage := range aggregate.CompletedStages() {
		completed = append(completed, stage.String())
	}

	var tag *TagDTO
	if t := aggregate.Tag(); t != nil {
		tag = &TagDTO{
			Code:    t.Code(),
			Type:    t.Type().String(),
			BoundAt: t.BoundAt(),
			BoundBy: t.BoundBy(),
		}
	}

	log := make([]LogEntryDTO, 0, len(aggregate.WorkflowLog()))
	for _, entry := range aggregate.WorkflowLog() {
		dto := LogEntryDTO{
			To:    entry.To.String(),
			At:    entry.At,
			Actor: entry.Actor,
			Note:  entry.Note,
		}
		if entry.From != nil {
			from := entry.From.String()
			dto.From = &from
		}
		log = append(log, dto)
	}

	var bagID *uuid.UUID
	if id := aggregate.BagID(); id != nil {
		raw := id.Bytes()
		bagID = &raw
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		CustomerRef:      aggregate.CustomerRef(),
		PaymentMethod:    aggregate.PaymentMethod().String(),
		ServiceType:      aggregate.ServiceType().String(),
		BusinessStatus:   aggregate.BusinessStatus().String(),
		CurrentStage:     aggregate.CurrentStage().String(),
		SortingStatus:    aggregate.SortingStatus().String(),
		Express:          aggregate.Express(),
		TotalWeight:      aggregate.TotalWeight().Grams(),
		EstimatedReadyAt: aggregate.EstimatedReadyAt(),
		BagID:            bagID,
		Items:            items,
		CompletedStages:  completed,
		Tag:              tag,
		TagStatus:        aggregate.TagStatus().String(),
		WorkflowLog:      log,
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO back to an order aggregate via
// RestoreOrder, re-parsing the enum names persisted by fromDomain.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		serviceType, stErr := order.ServiceTypeFromString(itemDTO.ServiceType)
		if stErr != nil {
			return nil, stErr
		}
		weight, wErr := kernel.NewWeight(itemDTO.WeightGrams)
		if wErr != nil {
			return nil, wErr
		}
		item, itemErr := order.NewLineItem(
			serviceType, weight, itemDTO.Quantity, itemDTO.UnitPriceCents, itemDTO.Express)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	payment, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}
	serviceType, err := order.ServiceTypeFromString(dto.ServiceType)
	if err != nil {
		return nil, err
	}
	businessStatus, err := order.BusinessStatusFromString(dto.BusinessStatus)
	if err != nil {
		return nil, err
	}
	currentStage, err := order.StageFromString(dto.CurrentStage)
	if err != nil {
		return nil, err
	}
	sortingStatus, err := order.SortingStatusFromString(dto.SortingStatus)
	if err != nil {
		return nil, err
	}
	tagStatus, err := order.TagStatusFromString(dto.TagStatus)
	if err != nil {
		return nil, err
	}

	completed := make([]order.Stage, 0, len(dto.CompletedStages))
	for _, name := range dto.CompletedStages {
		stage, stageErr := order.StageFromString(name)
		if stageErr != nil {
			return nil, stageErr
		}
		completed = append(completed, stage)
	}

	var tag *order.Tag
	if dto.Tag != nil {
		tagType, tagErr := order.TagTypeFromString(dto.Tag.Type)
		if tagErr != nil {
			return nil, tagErr
		}
		restored, tagErr := order.NewTag(dto.Tag.Code, tagType, dto.Tag.BoundAt, dto.Tag.BoundBy)
		if tagErr != nil {
			return nil, tagErr
		}
		tag = &restored
	}

	var bagID *kernel.UUID
	if dto.BagID != nil {
		restored, bagErr := kernel.UUIDFromBytes((*dto.BagID)[:])
		if bagErr != nil {
			return nil, bagErr
		}
		bagID = &restored
	}

	log := make([]order.LogEntry, 0, len(dto.WorkflowLog))
	for _, entryDTO := range dto.WorkflowLog {
		to, entryErr := order.StageFromString(entryDTO.To)
		if entryErr != nil {
			return nil, entryErr
		}
		entry := order.LogEntry{
			To:    to,
			At:    entryDTO.At,
			Actor: entryDTO.Actor,
			Note:  entryDTO.Note,
		}
		if entryDTO.From != nil {
			from, fromErr := order.StageFromString(*entryDTO.From)
			if fromErr != nil {
				return nil, fromErr
			}
			entry.From = &from
		}
		log = append(log, entry)
	}

	return order.RestoreOrder(
		id,
		dto.CustomerRef,
		items,
		payment,
		serviceType,
		businessStatus,
		currentStage,
		completed,
		tag,
		tagStatus,
		sortingStatus,
		bagID,
		dto.EstimatedReadyAt,
		log,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
