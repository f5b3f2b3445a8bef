package ports

import (
	"context"

	"laundry/internal/core/domain/services"
)

// MachineStateProvider supplies read-only machine snapshots to the completion
// estimator. The snapshot may come from an eventually-consistent cache:
// staleness skews an estimate, never an invariant.
type MachineStateProvider interface {
	GetAll(ctx context.Context) ([]services.Machine, error)
}
