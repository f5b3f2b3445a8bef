package bag

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Status is the lifecycle state of a sorting bag. States are mutually
// exclusive; membership is mutable only while the bag is filling.
//
// State transitions:
//
//	Filling ──> Ready ──> InTransit ──> Received
//	   │
//	   └──> (deleted, members released)
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusFilling means the bag accepts admissions and removals.
	StatusFilling

	// StatusReady means the bag is finalized and awaits courier handover.
	StatusReady

	// StatusInTransit means the bag was handed over and is on the road.
	StatusInTransit

	// StatusReceived is terminal: the bag arrived at its destination.
	StatusReceived
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusFilling:   "filling",
		StatusReady:     "ready",
		StatusInTransit: "in_transit",
		StatusReceived:  "received",
	}
}

// String returns the snake_case name of the status, or "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the status is one of the defined statuses.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > StatusReceived {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid bag status", s))
	}
	return nil
}

// StatusFromString parses a snake_case bag status name.
func StatusFromString(s string) (Status, error) {
	for st, str := range getStatusStrings() {
		if str == s && st != StatusUnknown {
			return st, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid bag status", s))
}

// Priority classifies a bag's members: all express, all regular, or mixed.
// A bag becomes mixed the moment it holds both kinds and never reverts while
// that mixed membership persists; an emptied bag falls back to mixed.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	PriorityExpress
	PriorityRegular
	PriorityMixed
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUnknown: "unknown",
		PriorityExpress: "express",
		PriorityRegular: "regular",
		PriorityMixed:   "mixed",
	}
}

// String returns the lowercase name of the priority, or "unknown".
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the priority is one of the defined classes.
func (p Priority) Validate() error {
	if p <= PriorityUnknown || p > PriorityMixed {
		return errs.NewValueIsInvalidErrorWithCause("priority",
			fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// PriorityFromString parses a lowercase priority name.
func PriorityFromString(s string) (Priority, error) {
	for p, str := range getPriorityStrings() {
		if str == s && p != PriorityUnknown {
			return p, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause("priority",
		fmt.Errorf("%q is not a valid priority", s))
}

// Destination is the transport direction of a bag. Sequence numbers are
// allocated per destination class.
type Destination int

const (
	// DestinationUnknown represents an invalid or undefined destination.
	DestinationUnknown Destination = iota

	// DestinationFacility is outlet to processing facility.
	DestinationFacility

	// DestinationOutlet is processing facility back to the retail outlet.
	DestinationOutlet
)

func getDestinationStrings() map[Destination]string {
	return map[Destination]string{
		DestinationUnknown:  "unknown",
		DestinationFacility: "to_facility",
		DestinationOutlet:   "to_outlet",
	}
}

// String returns the snake_case name of the destination, or "unknown".
func (d Destination) String() string {
	if str, ok := getDestinationStrings()[d]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the destination is one of the defined classes.
func (d Destination) Validate() error {
	if d != DestinationFacility && d != DestinationOutlet {
		return errs.NewValueIsInvalidErrorWithCause("destination",
			fmt.Errorf("%d is not a valid destination", d))
	}
	return nil
}

// DestinationFromString parses a snake_case destination name.
func DestinationFromString(s string) (Destination, error) {
	for d, str := range getDestinationStrings() {
		if str == s && d != DestinationUnknown {
			return d, nil
		}
	}
	return DestinationUnknown, errs.NewValueIsInvalidErrorWithCause("destination",
		fmt.Errorf("%q is not a valid destination", s))
}

// code returns the short destination prefix used in bag names and manifest
// codes.
func (d Destination) code() string {
	switch d {
	case DestinationFacility:
		return "FAC"
	case DestinationOutlet:
		return "OUT"
	default:
		return "UNK"
	}
}
