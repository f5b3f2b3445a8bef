package services

import (
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

// readyBuffer is the fixed slack added to every estimate.
const readyBuffer = 30 * time.Minute

// OperatingHours describes the facility's daily window as whole hours of the
// local day. An estimate landing outside the window rolls forward to the next
// opening.
type OperatingHours struct {
	Opening int
	Closing int
}

// NewOperatingHours validates and creates an operating window.
func NewOperatingHours(opening, closing int) (OperatingHours, error) {
	if opening < 0 || opening > 23 {
		return OperatingHours{}, errs.NewValueIsOutOfRangeError("opening", opening, 0, 23)
	}
	if closing < 1 || closing > 24 {
		return OperatingHours{}, errs.NewValueIsOutOfRangeError("closing", closing, 1, 24)
	}
	if closing <= opening {
		return OperatingHours{}, errs.NewValueIsInvalidErrorWithCause("closing",
			fmt.Errorf("closing hour %d is not after opening hour %d", closing, opening))
	}
	return OperatingHours{Opening: opening, Closing: closing}, nil
}

// CompletionEstimator derives an expected ready-time from an order's line
// items and a machine availability snapshot.
//
// Algorithm:
//   - nominal time is the maximum base duration across line items (items run
//     through their stages in parallel, not back to back)
//   - when the total weight exceeds the summed capacity of idle washers, the
//     nominal time is multiplied by the number of sequential batches; with no
//     idle capacity known the multiplier is skipped
//   - any express item halves the result
//   - a fixed 30-minute buffer is added
//   - a candidate landing before opening or at/after closing rolls forward to
//     the next opening hour
type CompletionEstimator struct {
	baseDurations map[order.ServiceType]time.Duration
}

// NewCompletionEstimator creates an estimator with the standard per-type base
// duration table.
func NewCompletionEstimator() CompletionEstimator {
	return CompletionEstimator{
		baseDurations: map[order.ServiceType]time.Duration{
			order.ServiceWashOnly: 2 * time.Hour,
			order.ServiceWashIron: 3 * time.Hour,
			order.ServiceDryClean: 4 * time.Hour,
			order.ServiceCustom:   3 * time.Hour,
		},
	}
}

// Estimate computes the expected ready instant for the given line items.
// Pure: the result is a deterministic function of the arguments.
func (e CompletionEstimator) Estimate(
	items []order.LineItem,
	machines []Machine,
	hours OperatingHours,
	now time.Time,
) (time.Time, error) {
	if len(items) == 0 {
		return time.Time{}, errs.NewValueIsRequiredError("items")
	}

	var (
		nominal     time.Duration
		totalWeight kernel.Weight
		express     bool
	)
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return time.Time{}, err
		}
		if base := e.baseDurations[item.ServiceType()]; base > nominal {
			nominal = base
		}
		totalWeight = totalWeight.Add(item.Weight())
		express = express || item.Express()
	}

	idleCapacity := idleWasherCapacity(machines)
	if idleCapacity.Grams() > 0 && totalWeight.Exceeds(idleCapacity) {
		batches := (totalWeight.Grams() + idleCapacity.Grams() - 1) / idleCapacity.Grams()
		nominal *= time.Duration(batches)
	}

	if express {
		nominal /= 2
	}
	nominal += readyBuffer

	return rollIntoOperatingHours(now.Add(nominal), hours), nil
}

// idleWasherCapacity sums the capacity of washers currently idle.
func idleWasherCapacity(machines []Machine) kernel.Weight {
	var capacity kernel.Weight
	for _, m := range machines {
		if m.Type == MachineTypeWasher && m.Status == MachineStatusIdle {
			capacity = capacity.Add(m.Capacity)
		}
	}
	return capacity
}

// rollIntoOperatingHours moves a candidate instant into the operating window:
// before opening rolls to the same day's opening, at or after closing rolls to
// the next day's opening.
func rollIntoOperatingHours(candidate time.Time, hours OperatingHours) time.Time {
	opening := time.Date(candidate.Year(), candidate.Month(), candidate.Day(),
		hours.Opening, 0, 0, 0, candidate.Location())
	closing := time.Date(candidate.Year(), candidate.Month(), candidate.Day(),
		hours.Closing, 0, 0, 0, candidate.Location())

	if candidate.Before(opening) {
		return opening
	}
	if !candidate.Before(closing) {
		return opening.AddDate(0, 0, 1)
	}
	return candidate
}
