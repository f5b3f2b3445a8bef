package machinerepo

import (
	"context"

	"laundry/internal/core/domain/services"

	"gorm.io/gorm"
)

// GormMachineStateProvider implements ports.MachineStateProvider by reading
// the machines table. Reads happen outside the command transaction: the
// snapshot feeds an estimate, never an invariant, so staleness is tolerable.
type GormMachineStateProvider struct {
	db *gorm.DB
}

// NewGormMachineStateProvider creates a machine snapshot reader.
func NewGormMachineStateProvider(db *gorm.DB) *GormMachineStateProvider {
	return &GormMachineStateProvider{db: db}
}

// GetAll returns the full machine park.
func (p *GormMachineStateProvider) GetAll(ctx context.Context) ([]services.Machine, error) {
	var dtos []MachineDTO
	if err := p.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	machines := make([]services.Machine, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		machines = append(machines, m)
	}

	return machines, nil
}
