package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// BusinessStatus is the commercial state of an order, tracked independently
// of the workflow stage. Stage transitions update it as a side effect:
// entering a facility stage sets Processing, StageReady sets Ready and
// StagePicked sets Completed. Cancelled is reachable only through the
// cancellation guard and never from a completed order.
type BusinessStatus int

const (
	// BusinessStatusUnknown represents an invalid or undefined status.
	BusinessStatusUnknown BusinessStatus = iota

	// BusinessStatusPending is the initial status at intake.
	BusinessStatusPending

	// BusinessStatusProcessing means the order is inside the facility pipeline.
	BusinessStatusProcessing

	// BusinessStatusReady means the order awaits customer pickup.
	BusinessStatusReady

	// BusinessStatusCompleted is terminal: the order was picked up.
	BusinessStatusCompleted

	// BusinessStatusCancelled is terminal: the order was soft-cancelled.
	BusinessStatusCancelled
)

func getBusinessStatusStrings() map[BusinessStatus]string {
	return map[BusinessStatus]string{
		BusinessStatusUnknown:    "unknown",
		BusinessStatusPending:    "pending",
		BusinessStatusProcessing: "processing",
		BusinessStatusReady:      "ready",
		BusinessStatusCompleted:  "completed",
		BusinessStatusCancelled:  "cancelled",
	}
}

// String returns the snake_case name of the status, or "unknown".
func (s BusinessStatus) String() string {
	if str, ok := getBusinessStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the status is one of the defined statuses.
func (s BusinessStatus) Validate() error {
	if s <= BusinessStatusUnknown || s > BusinessStatusCancelled {
		return errs.NewValueIsInvalidErrorWithCause("businessStatus",
			fmt.Errorf("%d is not a valid business status", s))
	}
	return nil
}

// IsTerminal reports whether no further business transitions are possible.
func (s BusinessStatus) IsTerminal() bool {
	return s == BusinessStatusCompleted || s == BusinessStatusCancelled
}

// BusinessStatusFromString parses a snake_case business status name.
func BusinessStatusFromString(s string) (BusinessStatus, error) {
	for bs, str := range getBusinessStatusStrings() {
		if str == s && bs != BusinessStatusUnknown {
			return bs, nil
		}
	}
	return BusinessStatusUnknown, errs.NewValueIsInvalidErrorWithCause("businessStatus",
		fmt.Errorf("%q is not a valid business status", s))
}

// businessStatusForStage maps a newly entered stage to the business status it
// implies. Stages before the facility pipeline leave the order pending.
func businessStatusForStage(stage Stage) BusinessStatus {
	switch stage {
	case StageWashing, StageDrying, StageIroning, StageQualityControl, StagePacking:
		return BusinessStatusProcessing
	case StageReady:
		return BusinessStatusReady
	case StagePicked:
		return BusinessStatusCompleted
	default:
		return BusinessStatusPending
	}
}

// SortingStatus is the transport sub-status of an order within the sorting
// stage: whether it sits unassigned, inside a filling bag, grouped for
// pickup, on the road, or already received at the facility.
type SortingStatus int

const (
	// SortingPending means the order is not assigned to any bag.
	SortingPending SortingStatus = iota

	// SortingInBag means the order is a member of a filling bag.
	SortingInBag

	// SortingReadyForPickup means the order's bag is finalized and awaits a
	// courier.
	SortingReadyForPickup

	// SortingInTransit means the order's bag has been handed over to a courier.
	SortingInTransit

	// SortingReceived means the order's bag arrived at the destination.
	SortingReceived
)

func getSortingStatusStrings() map[SortingStatus]string {
	return map[SortingStatus]string{
		SortingPending:        "pending",
		SortingInBag:          "in_bag",
		SortingReadyForPickup: "ready_for_pickup",
		SortingInTransit:      "in_transit",
		SortingReceived:       "received",
	}
}

// String returns the snake_case name of the sub-status, or "pending".
func (s SortingStatus) String() string {
	if str, ok := getSortingStatusStrings()[s]; ok {
		return str
	}
	return "pending"
}

// Validate checks that the sub-status is one of the defined values.
func (s SortingStatus) Validate() error {
	if s < SortingPending || s > SortingReceived {
		return errs.NewValueIsInvalidErrorWithCause("sortingStatus",
			fmt.Errorf("%d is not a valid sorting status", s))
	}
	return nil
}

// SortingStatusFromString parses a snake_case sorting sub-status name.
func SortingStatusFromString(s string) (SortingStatus, error) {
	for st, str := range getSortingStatusStrings() {
		if str == s {
			return st, nil
		}
	}
	return SortingPending, errs.NewValueIsInvalidErrorWithCause("sortingStatus",
		fmt.Errorf("%q is not a valid sorting status", s))
}

// PaymentMethod is the closed set of accepted payment methods.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined method.
	PaymentMethodUnknown PaymentMethod = iota

	PaymentCash
	PaymentCard
	PaymentTransfer
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodUnknown: "unknown",
		PaymentCash:          "cash",
		PaymentCard:          "card",
		PaymentTransfer:      "transfer",
	}
}

// String returns the snake_case name of the method, or "unknown".
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the method is one of the accepted methods.
func (m PaymentMethod) Validate() error {
	if m <= PaymentMethodUnknown || m > PaymentTransfer {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// PaymentMethodFromString parses a snake_case payment method name.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for m, str := range getPaymentMethodStrings() {
		if str == s && m != PaymentMethodUnknown {
			return m, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause("paymentMethod",
		fmt.Errorf("%q is not a valid payment method", s))
}
