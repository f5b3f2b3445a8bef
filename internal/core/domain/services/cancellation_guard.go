package services

import (
	"errors"

	"laundry/internal/core/domain/model/order"
)

var (
	// ErrCancellationForbidden is returned when processing has advanced past
	// the point of no return and the order can no longer be cancelled.
	ErrCancellationForbidden = errors.New("cancellation is forbidden at this stage")

	// ErrApprovalRequired is returned when cancellation needs a secondary
	// confirmation token because the order is already grouped for transport.
	ErrApprovalRequired = errors.New("cancellation requires elevated approval")
)

// Decision is the outcome of the cancellation policy.
type Decision int

const (
	// DecisionUnknown represents an invalid or undefined decision.
	DecisionUnknown Decision = iota

	// DecisionAllowed means the order may be cancelled directly.
	DecisionAllowed

	// DecisionRequiresApproval means cancellation needs a confirmation token.
	DecisionRequiresApproval

	// DecisionForbidden means the order can no longer be cancelled.
	DecisionForbidden
)

func getDecisionStrings() map[Decision]string {
	return map[Decision]string{
		DecisionUnknown:          "unknown",
		DecisionAllowed:          "allowed",
		DecisionRequiresApproval: "requires_approval",
		DecisionForbidden:        "forbidden",
	}
}

// String returns the snake_case name of the decision, or "unknown".
func (d Decision) String() string {
	if str, ok := getDecisionStrings()[d]; ok {
		return str
	}
	return "unknown"
}

// CancellationGuard is the policy gate in front of destructive order
// operations. The policy is keyed by the order's current stage and sorting
// sub-status:
//
//   - forbidden once physical processing started (any stage past sorting),
//     once the order is in transit, or once the order is terminal
//   - requires a secondary approval token while the order sits in a bag or
//     awaits pickup, since it is already physically grouped for transport
//   - allowed directly otherwise
//
// The guard only decides; applying the cancellation (status change, log
// entry, bag removal) stays with the caller.
type CancellationGuard struct{}

// NewCancellationGuard creates a new CancellationGuard instance.
func NewCancellationGuard() CancellationGuard {
	return CancellationGuard{}
}

// Evaluate classifies a cancellation attempt against the policy table.
func (CancellationGuard) Evaluate(o *order.Order) Decision {
	if o.BusinessStatus().IsTerminal() {
		return DecisionForbidden
	}
	if o.SortingStatus() == order.SortingInTransit {
		return DecisionForbidden
	}

	switch o.CurrentStage() {
	case order.StageReception, order.StageSorting:
		// processing has not started yet
	default:
		return DecisionForbidden
	}

	switch o.SortingStatus() {
	case order.SortingInBag, order.SortingReadyForPickup:
		return DecisionRequiresApproval
	}
	return DecisionAllowed
}

// Authorize evaluates the policy and converts the decision into an error for
// the command path. The approved flag carries the confirmation token state; it
// satisfies a requires-approval decision but never overrides a forbidden one.
func (g CancellationGuard) Authorize(o *order.Order, approved bool) error {
	if err := o.Validate(); err != nil {
		return err
	}

	switch g.Evaluate(o) {
	case DecisionForbidden:
		return ErrCancellationForbidden
	case DecisionRequiresApproval:
		if !approved {
			return ErrApprovalRequired
		}
	}
	return nil
}
