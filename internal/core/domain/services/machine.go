package services

import "laundry/internal/core/domain/model/kernel"

// MachineType classifies a processing machine.
type MachineType int

const (
	// MachineTypeUnknown represents an invalid or undefined machine type.
	MachineTypeUnknown MachineType = iota

	MachineTypeWasher
	MachineTypeDryer
	MachineTypeIroner
)

func getMachineTypeStrings() map[MachineType]string {
	return map[MachineType]string{
		MachineTypeUnknown: "unknown",
		MachineTypeWasher:  "washer",
		MachineTypeDryer:   "dryer",
		MachineTypeIroner:  "ironer",
	}
}

// String returns the lowercase name of the machine type, or "unknown".
func (t MachineType) String() string {
	if str, ok := getMachineTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// MachineTypeFromString parses a lowercase machine type name.
func MachineTypeFromString(s string) MachineType {
	for t, str := range getMachineTypeStrings() {
		if str == s {
			return t
		}
	}
	return MachineTypeUnknown
}

// MachineStatus is the availability state of a machine.
type MachineStatus int

const (
	// MachineStatusUnknown represents an invalid or undefined status.
	MachineStatusUnknown MachineStatus = iota

	MachineStatusIdle
	MachineStatusBusy
	MachineStatusOffline
)

func getMachineStatusStrings() map[MachineStatus]string {
	return map[MachineStatus]string{
		MachineStatusUnknown: "unknown",
		MachineStatusIdle:    "idle",
		MachineStatusBusy:    "busy",
		MachineStatusOffline: "offline",
	}
}

// String returns the lowercase name of the status, or "unknown".
func (s MachineStatus) String() string {
	if str, ok := getMachineStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// MachineStatusFromString parses a lowercase machine status name.
func MachineStatusFromString(s string) MachineStatus {
	for st, str := range getMachineStatusStrings() {
		if str == s {
			return st
		}
	}
	return MachineStatusUnknown
}

// Machine is a read-only snapshot of one processing machine, consumed by the
// completion estimator. Snapshots may be stale; staleness only skews an
// estimate, never an invariant.
type Machine struct {
	Type     MachineType
	Capacity kernel.Weight
	Status   MachineStatus
}
