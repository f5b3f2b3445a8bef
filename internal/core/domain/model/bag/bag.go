package bag

import (
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

// DefaultCapacity is the weight ceiling of a bag unless overridden at
// creation: 7 weight-units of 1000 g.
const DefaultCapacity kernel.Weight = 7000

// Domain errors for bag operations, in the order the admission preconditions
// are checked: membership, tagging, duplicate tag, capacity.
var (
	// ErrBagIsNotConstructed is returned when a Bag was not created through
	// NewBag or RestoreBag.
	ErrBagIsNotConstructed = errors.New("Bag must be created via NewBag constructor")

	// ErrAlreadyMember is returned when admitting an order that is already a
	// member of this bag.
	ErrAlreadyMember = errors.New("order is already a member of this bag")

	// ErrUntaggedItem is returned when admitting an order without an active tag.
	ErrUntaggedItem = errors.New("order has no active tag")

	// ErrDuplicateTag is returned when a member of the bag already carries the
	// same normalized tag code.
	ErrDuplicateTag = errors.New("duplicate tag code within bag")

	// ErrCapacityExceeded is returned when admission would push the bag over
	// its capacity ceiling.
	ErrCapacityExceeded = errors.New("bag capacity exceeded")

	// ErrBagLocked is returned when mutating membership of a non-filling bag.
	ErrBagLocked = errors.New("bag membership is frozen")

	// ErrOrderNotMember is returned when removing an order that is not a member.
	ErrOrderNotMember = errors.New("order is not a member of this bag")

	// ErrEmptyBag is returned when finalizing a bag with no members.
	ErrEmptyBag = errors.New("bag has no members")

	// ErrBagNotFillable is returned when deleting a bag that left the filling
	// state.
	ErrBagNotFillable = errors.New("bag is not in filling state")

	// ErrBagNotReady is returned when handing over a bag that is not finalized.
	ErrBagNotReady = errors.New("bag is not ready for handover")

	// ErrBagNotInTransit is returned when receiving a bag that was not handed
	// over.
	ErrBagNotInTransit = errors.New("bag is not in transit")

	// ErrIncompleteScan is the unwrap target of IncompleteScanError.
	ErrIncompleteScan = errors.New("not all members scan-confirmed")

	// ErrMissingTags is returned when receiving a bag with an untagged member.
	ErrMissingTags = errors.New("bag member lacks a tag code")
)

// IncompleteScanError lists the members missing scan confirmation at
// handover. Unwraps to ErrIncompleteScan.
type IncompleteScanError struct {
	Missing []kernel.UUID
}

func (e *IncompleteScanError) Error() string {
	return fmt.Sprintf("%d members not scan-confirmed", len(e.Missing))
}

func (e *IncompleteScanError) Unwrap() error {
	return ErrIncompleteScan
}

// Member is the snapshot of one admitted order kept inside the bag: enough
// to maintain the weight and priority invariants without reloading orders.
type Member struct {
	OrderID kernel.UUID
	Weight  kernel.Weight
	Express bool
	TagCode string
}

// Handover records the custody transfer of a ready bag to a courier.
type Handover struct {
	Courier string
	At      time.Time
}

// AdmissionResult reports the outcome of a successful admission. BecameMixed
// is a warning, not an error: the caller surfaces it to the operator while
// the admission stands.
type AdmissionResult struct {
	Priority    Priority
	BecameMixed bool
}

// FinalizeResult reports the outcome of finalization. Over-capacity is
// deliberately not a hard failure: the operator acknowledges the overage and
// the bag ships anyway.
type FinalizeResult struct {
	OverCapacity bool
	Overage      kernel.Weight
	ManifestCode string
}

// Bag is the aggregate root for a transport container grouping tagged orders
// between the outlet and the processing facility.
//
// Invariants:
//   - totalWeight always equals the sum of member weights (maintained
//     incrementally on every admission and removal)
//   - priority is mixed iff both express and regular members exist; it never
//     reverts while that mixed membership persists
//   - membership is mutable only while status is filling
type Bag struct {
	id           kernel.UUID
	seq          int
	name         string
	status       Status
	priority     Priority
	members      []Member
	totalWeight  kernel.Weight
	expressCount int
	regularCount int
	capacity     kernel.Weight
	destination  Destination
	readyAt      *time.Time
	manifestCode string
	handover     *Handover
	createdAt    time.Time
	updatedAt    time.Time

	guard guard.ConstructorGuard
}

// NewBag creates an empty filling bag. The sequence number is allocated by
// the caller (max existing number for the destination class plus one); the
// priority hint classifies the empty bag until the first admission. A zero
// capacity selects DefaultCapacity.
func NewBag(
	id kernel.UUID,
	seq int,
	priorityHint Priority,
	destination Destination,
	capacity kernel.Weight,
	now time.Time,
) (*Bag, error) {
	if capacity == 0 {
		capacity = DefaultCapacity
	}

	b := &Bag{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setSeq(seq),
		b.setPriority(priorityHint),
		b.setDestination(destination),
		b.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	b.name = fmt.Sprintf("BAG-%s-%04d", destination.code(), seq)
	b.status = StatusFilling
	b.createdAt = now
	b.updatedAt = now

	return b, nil
}

// RestoreBag reconstructs a bag from persistence, recomputing the counters
// and total weight from the member snapshots so the incremental invariants
// hold from the first mutation.
func RestoreBag(
	id kernel.UUID,
	seq int,
	name string,
	status Status,
	priority Priority,
	members []Member,
	capacity kernel.Weight,
	destination Destination,
	readyAt *time.Time,
	manifestCode string,
	handover *Handover,
	createdAt time.Time,
	updatedAt time.Time,
) (*Bag, error) {
	b := &Bag{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setSeq(seq),
		b.setPriority(priority),
		b.setDestination(destination),
		b.setCapacity(capacity),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	b.name = name
	b.status = status
	b.members = append([]Member(nil), members...)
	for _, m := range b.members {
		b.totalWeight = b.totalWeight.Add(m.Weight)
		if m.Express {
			b.expressCount++
		} else {
			b.regularCount++
		}
	}
	b.readyAt = readyAt
	b.manifestCode = manifestCode
	b.handover = handover
	b.createdAt = createdAt
	b.updatedAt = updatedAt

	return b, nil
}

// Validate ensures the bag was created through a constructor.
func (b *Bag) Validate() error {
	if b == nil {
		return ErrBagIsNotConstructed
	}
	return b.guard.Validate(ErrBagIsNotConstructed)
}

// IsEqual compares bags by identity.
func (b *Bag) IsEqual(other *Bag) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the bag's unique identifier.
func (b *Bag) ID() kernel.UUID {
	return b.id
}

// Seq returns the per-destination sequence number.
func (b *Bag) Seq() int {
	return b.seq
}

// Name returns the human-readable bag name.
func (b *Bag) Name() string {
	return b.name
}

// Status returns the lifecycle status.
func (b *Bag) Status() Status {
	return b.status
}

// Priority returns the current priority classification.
func (b *Bag) Priority() Priority {
	return b.priority
}

// Members returns a copy of the member snapshots in admission order.
func (b *Bag) Members() []Member {
	return append([]Member(nil), b.members...)
}

// HasMember reports whether the order is a member of the bag.
func (b *Bag) HasMember(orderID kernel.UUID) bool {
	for _, m := range b.members {
		if m.OrderID.IsEqual(orderID) {
			return true
		}
	}
	return false
}

// TotalWeight returns the incrementally maintained aggregate weight.
func (b *Bag) TotalWeight() kernel.Weight {
	return b.totalWeight
}

// ExpressCount returns the number of express members.
func (b *Bag) ExpressCount() int {
	return b.expressCount
}

// RegularCount returns the number of regular members.
func (b *Bag) RegularCount() int {
	return b.regularCount
}

// Capacity returns the weight ceiling.
func (b *Bag) Capacity() kernel.Weight {
	return b.capacity
}

// Destination returns the transport direction.
func (b *Bag) Destination() Destination {
	return b.destination
}

// ReadyAt returns the finalization timestamp, nil while filling.
func (b *Bag) ReadyAt() *time.Time {
	if b.readyAt == nil {
		return nil
	}
	t := *b.readyAt
	return &t
}

// ManifestCode returns the manifest code, empty while filling.
func (b *Bag) ManifestCode() string {
	return b.manifestCode
}

// HandoverRecord returns the custody record, nil before handover.
func (b *Bag) HandoverRecord() *Handover {
	if b.handover == nil {
		return nil
	}
	h := *b.handover
	return &h
}

// CreatedAt returns the creation timestamp.
func (b *Bag) CreatedAt() time.Time {
	return b.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (b *Bag) UpdatedAt() time.Time {
	return b.updatedAt
}

// Admit adds an order to the bag. Preconditions are checked in a fixed order,
// first failure wins: membership, tagging, duplicate tag code, capacity.
// Admission of an opposite-type order into a single-type bag succeeds and
// turns the bag mixed; the result carries that warning for the operator.
// The order-side write-back (bag reference, in_bag sub-status) belongs to the
// caller, which commits both aggregates together.
func (b *Bag) Admit(o *order.Order, now time.Time) (AdmissionResult, error) {
	if err := o.Validate(); err != nil {
		return AdmissionResult{}, err
	}
	if b.status != StatusFilling {
		return AdmissionResult{}, ErrBagLocked
	}
	if b.HasMember(o.ID()) {
		return AdmissionResult{}, ErrAlreadyMember
	}
	if !o.IsTagged() {
		return AdmissionResult{}, ErrUntaggedItem
	}

	tagCode := o.Tag().Code()
	for _, m := range b.members {
		if m.TagCode == tagCode {
			return AdmissionResult{}, ErrDuplicateTag
		}
	}

	weight := o.TotalWeight()
	if b.totalWeight.Add(weight).Exceeds(b.capacity) {
		return AdmissionResult{}, ErrCapacityExceeded
	}

	wasSingleType := (b.expressCount > 0) != (b.regularCount > 0)

	b.members = append(b.members, Member{
		OrderID: o.ID(),
		Weight:  weight,
		Express: o.Express(),
		TagCode: tagCode,
	})
	b.totalWeight = b.totalWeight.Add(weight)
	if o.Express() {
		b.expressCount++
	} else {
		b.regularCount++
	}
	b.recomputePriority()
	b.updatedAt = now

	return AdmissionResult{
		Priority:    b.priority,
		BecameMixed: wasSingleType && b.priority == PriorityMixed,
	}, nil
}

// Remove takes an order out of a filling bag, decrementing the weight and
// counters and recomputing the priority: a bag reduced to a single type
// reverts to that type, an emptied bag falls back to mixed.
func (b *Bag) Remove(orderID kernel.UUID, now time.Time) error {
	if b.status != StatusFilling {
		return ErrBagLocked
	}

	idx := -1
	for i, m := range b.members {
		if m.OrderID.IsEqual(orderID) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrOrderNotMember
	}

	m := b.members[idx]
	b.members = append(b.members[:idx], b.members[idx+1:]...)
	b.totalWeight = b.totalWeight.Sub(m.Weight)
	if m.Express {
		b.expressCount--
	} else {
		b.regularCount--
	}
	b.recomputePriority()
	b.updatedAt = now

	return nil
}

// Finalize freezes membership and marks the bag ready for handover.
// Over-capacity does not block finalization: the result flags the overage and
// the operator decides. The caller advances every member order to
// ready_for_pickup in the same transaction.
func (b *Bag) Finalize(now time.Time) (FinalizeResult, error) {
	if b.status != StatusFilling {
		return FinalizeResult{}, ErrBagNotFillable
	}
	if len(b.members) == 0 {
		return FinalizeResult{}, ErrEmptyBag
	}

	b.status = StatusReady
	b.readyAt = &now
	b.manifestCode = fmt.Sprintf("MAN-%s-%04d-%s", b.destination.code(), b.seq, now.Format("20060102"))
	b.updatedAt = now

	result := FinalizeResult{ManifestCode: b.manifestCode}
	if b.totalWeight.Exceeds(b.capacity) {
		result.OverCapacity = true
		result.Overage = b.totalWeight.Sub(b.capacity)
	}
	return result, nil
}

// Deletable reports whether the bag may be destroyed. Only filling bags can
// be deleted; the caller releases every member order first.
func (b *Bag) Deletable() error {
	if b.status != StatusFilling {
		return ErrBagNotFillable
	}
	return nil
}

// Handover transfers custody of a ready bag to a courier. The scanned set is
// supplied by the caller (the allocator does not recompute scans); every
// member must be confirmed or the handover fails listing the missing ones.
func (b *Bag) Handover(courier string, scanned map[kernel.UUID]bool, now time.Time) error {
	if b.status != StatusReady {
		return ErrBagNotReady
	}
	if courier == "" {
		return errs.NewValueIsRequiredError("courier")
	}

	var missing []kernel.UUID
	for _, m := range b.members {
		if !scanned[m.OrderID] {
			missing = append(missing, m.OrderID)
		}
	}
	if len(missing) > 0 {
		return &IncompleteScanError{Missing: missing}
	}

	b.status = StatusInTransit
	b.handover = &Handover{Courier: courier, At: now}
	b.updatedAt = now
	return nil
}

// Receive marks an in-transit bag as arrived. Every member must still carry a
// tag code; the caller transitions member orders into their next stage.
func (b *Bag) Receive(now time.Time) error {
	if b.status != StatusInTransit {
		return ErrBagNotInTransit
	}
	for _, m := range b.members {
		if m.TagCode == "" {
			return ErrMissingTags
		}
	}

	b.status = StatusReceived
	b.updatedAt = now
	return nil
}

// recomputePriority derives the classification from the member counters.
// Both kinds present means mixed; an empty bag defaults to mixed.
func (b *Bag) recomputePriority() {
	switch {
	case b.expressCount > 0 && b.regularCount > 0:
		b.priority = PriorityMixed
	case b.expressCount > 0:
		b.priority = PriorityExpress
	case b.regularCount > 0:
		b.priority = PriorityRegular
	default:
		b.priority = PriorityMixed
	}
}

func (b *Bag) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Bag) setSeq(seq int) error {
	if seq < 1 {
		return errs.NewValueIsInvalidErrorWithCause("seq",
			fmt.Errorf("%d is not a positive sequence number", seq))
	}
	b.seq = seq
	return nil
}

func (b *Bag) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	b.priority = priority
	return nil
}

func (b *Bag) setDestination(destination Destination) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	b.destination = destination
	return nil
}

func (b *Bag) setCapacity(capacity kernel.Weight) error {
	if capacity.Grams() < kernel.WeightMinGrams {
		return errs.NewValueIsInvalidError("capacity")
	}
	b.capacity = capacity
	return nil
}
