package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Stage represents one discrete step in an order's physical processing
// sequence. The subset of stages an order passes through, and their order,
// is fixed by the order's service type at creation time.
type Stage int

const (
	// StageUnknown represents an invalid or undefined stage.
	StageUnknown Stage = iota

	// StageReception is the initial stage: the order has been taken in at the
	// outlet counter and awaits a physical identification tag.
	StageReception

	// StageSorting means the order is tagged and eligible for admission into a
	// transport bag headed to the processing facility.
	StageSorting

	// StageWashing through StagePacking are the facility processing stages.
	StageWashing
	StageDrying
	StageIroning
	StageQualityControl
	StagePacking

	// StageReady means the order is processed and awaiting customer pickup.
	StageReady

	// StagePicked is the terminal stage: the customer has collected the order.
	StagePicked
)

func getStageStrings() map[Stage]string {
	return map[Stage]string{
		StageUnknown:        "unknown",
		StageReception:      "reception",
		StageSorting:        "sorting",
		StageWashing:        "washing",
		StageDrying:         "drying",
		StageIroning:        "ironing",
		StageQualityControl: "quality_control",
		StagePacking:        "packing",
		StageReady:          "ready",
		StagePicked:         "picked",
	}
}

// String returns the snake_case name of the stage, or "unknown".
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the stage is one of the defined processing stages.
func (s Stage) Validate() error {
	if s <= StageUnknown || s > StagePicked {
		return errs.NewValueIsInvalidErrorWithCause("stage",
			fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// StageFromString parses a snake_case stage name as produced by Stage.String.
func StageFromString(s string) (Stage, error) {
	for stage, str := range getStageStrings() {
		if str == s && stage != StageUnknown {
			return stage, nil
		}
	}
	return StageUnknown, errs.NewValueIsInvalidErrorWithCause("stage",
		fmt.Errorf("%q is not a valid stage", s))
}

// StageStep is one entry of a service type's stage sequence. Optional steps
// may be skipped when transitioning past them; required steps must be
// completed before any later stage can be entered.
type StageStep struct {
	Stage    Stage
	Required bool
}

// ServiceType determines which stages an order passes through and the base
// processing duration used for completion estimates. The set of service types
// is closed; stage sequences are not user-programmable.
type ServiceType int

const (
	// ServiceTypeUnknown represents an invalid or undefined service type.
	ServiceTypeUnknown ServiceType = iota

	// ServiceWashOnly is machine wash and dry without ironing or quality control.
	ServiceWashOnly

	// ServiceWashIron is the full pipeline including ironing and quality control.
	ServiceWashIron

	// ServiceDryClean is solvent cleaning with pressing; there is no separate
	// drying stage.
	ServiceDryClean

	// ServiceCustom covers bespoke work: washing is required, drying, ironing
	// and quality control are optional.
	ServiceCustom
)

func getServiceTypeStrings() map[ServiceType]string {
	return map[ServiceType]string{
		ServiceTypeUnknown: "unknown",
		ServiceWashOnly:    "wash_only",
		ServiceWashIron:    "wash_iron",
		ServiceDryClean:    "dry_clean",
		ServiceCustom:      "custom",
	}
}

// String returns the snake_case name of the service type, or "unknown".
func (t ServiceType) String() string {
	if str, ok := getServiceTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the service type is one of the defined types.
func (t ServiceType) Validate() error {
	if t <= ServiceTypeUnknown || t > ServiceCustom {
		return errs.NewValueIsInvalidErrorWithCause("serviceType",
			fmt.Errorf("%d is not a valid service type", t))
	}
	return nil
}

// ServiceTypeFromString parses a snake_case service type name.
func ServiceTypeFromString(s string) (ServiceType, error) {
	for st, str := range getServiceTypeStrings() {
		if str == s && st != ServiceTypeUnknown {
			return st, nil
		}
	}
	return ServiceTypeUnknown, errs.NewValueIsInvalidErrorWithCause("serviceType",
		fmt.Errorf("%q is not a valid service type", s))
}

// StageSequence returns the fixed, ordered stage sequence for the service
// type. The returned slice is a fresh copy on every call; callers may not
// mutate the underlying tables.
func (t ServiceType) StageSequence() []StageStep {
	var seq []StageStep
	switch t {
	case ServiceWashOnly:
		seq = []StageStep{
			{StageReception, true},
			{StageSorting, true},
			{StageWashing, true},
			{StageDrying, true},
			{StagePacking, true},
			{StageReady, true},
			{StagePicked, true},
		}
	case ServiceWashIron:
		seq = []StageStep{
			{StageReception, true},
			{StageSorting, true},
			{StageWashing, true},
			{StageDrying, true},
			{StageIroning, true},
			{StageQualityControl, true},
			{StagePacking, true},
			{StageReady, true},
			{StagePicked, true},
		}
	case ServiceDryClean:
		seq = []StageStep{
			{StageReception, true},
			{StageSorting, true},
			{StageWashing, true},
			{StageIroning, true},
			{StageQualityControl, true},
			{StagePacking, true},
			{StageReady, true},
			{StagePicked, true},
		}
	case ServiceCustom:
		seq = []StageStep{
			{StageReception, true},
			{StageSorting, true},
			{StageWashing, true},
			{StageDrying, false},
			{StageIroning, false},
			{StageQualityControl, false},
			{StagePacking, true},
			{StageReady, true},
			{StagePicked, true},
		}
	default:
		return nil
	}
	return seq
}

// stageIndex returns the position of stage in the sequence, or -1 when the
// stage is not part of it.
func stageIndex(seq []StageStep, stage Stage) int {
	for i, step := range seq {
		if step.Stage == stage {
			return i
		}
	}
	return -1
}

// stageAfter returns the stage immediately following the given stage in the
// sequence. Used when a received bag pushes its members into the first
// facility stage.
func stageAfter(seq []StageStep, stage Stage) (Stage, bool) {
	i := stageIndex(seq, stage)
	if i < 0 || i+1 >= len(seq) {
		return StageUnknown, false
	}
	return seq[i+1].Stage, true
}
