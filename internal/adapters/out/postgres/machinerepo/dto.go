// Package machinerepo reads the facility machine park for the completion
// estimator. Machines are reference data maintained outside the order
// workflow; this adapter only ever reads them.
package machinerepo

import (
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/services"

	"github.com/google/uuid"
)

// MachineDTO represents one facility machine row.
type MachineDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Type     string
	Capacity int64
	Status   string
}

// TableName specifies the database table name for machine entities.
func (MachineDTO) TableName() string {
	return "machines"
}

// toDomain converts a machine row to the estimator's snapshot type.
func toDomain(dto MachineDTO) (services.Machine, error) {
	capacity, err := kernel.NewWeight(dto.Capacity)
	if err != nil {
		return services.Machine{}, err
	}

	return services.Machine{
		Type:     services.MachineTypeFromString(dto.Type),
		Capacity: capacity,
		Status:   services.MachineStatusFromString(dto.Status),
	}, nil
}
