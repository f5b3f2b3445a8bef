package services_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(t *testing.T, serviceType order.ServiceType, grams int64, express bool) order.LineItem {
	t.Helper()

	w, err := kernel.NewWeight(grams)
	require.NoError(t, err)
	item, err := order.NewLineItem(serviceType, w, 1, 1000, express)
	require.NoError(t, err)
	return item
}

func idleWasher(t *testing.T, grams int64) services.Machine {
	t.Helper()

	capacity, err := kernel.NewWeight(grams)
	require.NoError(t, err)
	return services.Machine{
		Type:     services.MachineTypeWasher,
		Capacity: capacity,
		Status:   services.MachineStatusIdle,
	}
}

func TestNewOperatingHours(t *testing.T) {
	_, err := services.NewOperatingHours(8, 20)
	require.NoError(t, err)

	_, err = services.NewOperatingHours(-1, 20)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = services.NewOperatingHours(20, 8)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCompletionEstimator_Estimate(t *testing.T) {
	estimator := services.NewCompletionEstimator()
	hours, err := services.NewOperatingHours(8, 20)
	require.NoError(t, err)
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("base duration plus buffer", func(t *testing.T) {
		items := []order.LineItem{newItem(t, order.ServiceWashOnly, 2000, false)}

		got, err := estimator.Estimate(items, nil, hours, now)

		require.NoError(t, err)
		// 2h base + 30m buffer
		assert.Equal(t, now.Add(2*time.Hour+30*time.Minute), got)
	})

	t.Run("maximum across items, not the sum", func(t *testing.T) {
		items := []order.LineItem{
			newItem(t, order.ServiceWashOnly, 1000, false),
			newItem(t, order.ServiceDryClean, 1000, false),
		}

		got, err := estimator.Estimate(items, nil, hours, now)

		require.NoError(t, err)
		// 4h dry-clean base governs
		assert.Equal(t, now.Add(4*time.Hour+30*time.Minute), got)
	})

	t.Run("sequential batching against idle washer capacity", func(t *testing.T) {
		items := []order.LineItem{newItem(t, order.ServiceWashOnly, 8000, false)}
		machines := []services.Machine{idleWasher(t, 3000)}

		got, err := estimator.Estimate(items, machines, hours, now)

		require.NoError(t, err)
		// ceil(8000/3000) = 3 batches of 2h each
		assert.Equal(t, now.Add(6*time.Hour+30*time.Minute), got)
	})

	t.Run("busy washers and non-washers add no capacity", func(t *testing.T) {
		items := []order.LineItem{newItem(t, order.ServiceWashOnly, 8000, false)}
		busy := idleWasher(t, 3000)
		busy.Status = services.MachineStatusBusy
		dryer := idleWasher(t, 9000)
		dryer.Type = services.MachineTypeDryer

		got, err := estimator.Estimate(items, []services.Machine{busy, dryer}, hours, now)

		require.NoError(t, err)
		// no idle washer capacity known: multiplier skipped
		assert.Equal(t, now.Add(2*time.Hour+30*time.Minute), got)
	})

	t.Run("express halves the duration", func(t *testing.T) {
		items := []order.LineItem{newItem(t, order.ServiceWashIron, 2000, true)}

		got, err := estimator.Estimate(items, nil, hours, now)

		require.NoError(t, err)
		// 3h halved + 30m buffer
		assert.Equal(t, now.Add(2*time.Hour), got)
	})

	t.Run("candidate at closing rolls to the next opening", func(t *testing.T) {
		late := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
		items := []order.LineItem{newItem(t, order.ServiceWashOnly, 2000, false)}

		got, err := estimator.Estimate(items, nil, hours, late)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC), got)
	})

	t.Run("candidate before opening rolls to the same opening", func(t *testing.T) {
		early := time.Date(2025, 3, 10, 5, 0, 0, 0, time.UTC)
		items := []order.LineItem{newItem(t, order.ServiceWashOnly, 2000, false)}

		got, err := estimator.Estimate(items, nil, hours, early)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC), got)
	})

	t.Run("requires at least one item", func(t *testing.T) {
		_, err := estimator.Estimate(nil, nil, hours, now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
