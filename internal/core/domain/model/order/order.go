package order

import (
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

// Domain errors for order operations. Every rejected operation surfaces its
// specific kind so callers and tests can assert on cause with errors.Is.
var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrTagAlreadyBound is returned when binding a tag to an order that already
	// has an active tag.
	ErrTagAlreadyBound = errors.New("order already has a bound tag")

	// ErrOrderNotTagged is returned when an operation requires an active tag.
	ErrOrderNotTagged = errors.New("order has no bound tag")

	// ErrIllegalTransition is returned when the target stage is not reachable
	// from the order's current stage.
	ErrIllegalTransition = errors.New("illegal stage transition")

	// ErrMissingPrerequisite is the unwrap target of MissingPrerequisiteError.
	ErrMissingPrerequisite = errors.New("required stage not completed")

	// ErrOrderAlreadyInBag is returned when assigning an order that already
	// references an active bag.
	ErrOrderAlreadyInBag = errors.New("order is already assigned to a bag")

	// ErrOrderNotInBag is returned when releasing an order that references no bag.
	ErrOrderNotInBag = errors.New("order is not assigned to a bag")

	// ErrOrderNotSortable is returned when a bag operation is attempted against
	// an order whose sorting sub-status does not permit it.
	ErrOrderNotSortable = errors.New("order sorting status does not permit this operation")
)

// MissingPrerequisiteError names the unmet required stage blocking a
// transition. Unwraps to ErrMissingPrerequisite.
type MissingPrerequisiteError struct {
	Stage Stage
}

func (e *MissingPrerequisiteError) Error() string {
	return fmt.Sprintf("required stage %q not completed", e.Stage)
}

func (e *MissingPrerequisiteError) Unwrap() error {
	return ErrMissingPrerequisite
}

// Order is the aggregate root for a unit of laundry work. It owns the
// workflow state machine for its service type, the tag binding, the sorting
// sub-status used by bag logistics, and the append-only workflow log.
//
// Invariants:
//   - currentStage is always a member of the service type's stage sequence
//   - completedStages never shrinks and only contains stages already entered
//   - a tag with status "tagged" always carries a non-empty code
//   - at most one active bag reference at a time
//   - once past tagging, orders are only ever soft-cancelled
type Order struct {
	id          kernel.UUID
	customerRef string
	items       []LineItem
	payment     PaymentMethod

	serviceType     ServiceType
	businessStatus  BusinessStatus
	currentStage    Stage
	completedStages []Stage

	tag       *Tag
	tagStatus TagStatus

	sortingStatus SortingStatus
	bagID         *kernel.UUID

	estimatedReadyAt *time.Time
	log              []LogEntry

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an order at intake: stage reception, business status
// pending, no tag, no bag. The stage sequence is fixed at this point by the
// governing service type derived from the line items (the widest pipeline
// among them) and never changes for the order's lifetime. One workflow log
// entry records the intake.
func NewOrder(
	id kernel.UUID,
	customerRef string,
	items []LineItem,
	payment PaymentMethod,
	actor string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerRef(customerRef),
		o.setItems(items),
		o.setPayment(payment),
	); err != nil {
		return nil, err
	}
	if actor == "" {
		return nil, errs.NewValueIsRequiredError("actor")
	}

	o.serviceType = governingServiceType(o.items)
	o.businessStatus = BusinessStatusPending
	o.currentStage = StageReception
	o.tagStatus = TagStatusPending
	o.sortingStatus = SortingPending
	o.createdAt = now
	o.updatedAt = now
	o.log = append(o.log, newLogEntry(nil, StageReception, now, actor, "order received at intake"))

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without re-running
// intake side effects. All invariant-bearing fields are validated.
func RestoreOrder(
	id kernel.UUID,
	customerRef string,
	items []LineItem,
	payment PaymentMethod,
	serviceType ServiceType,
	businessStatus BusinessStatus,
	currentStage Stage,
	completedStages []Stage,
	tag *Tag,
	tagStatus TagStatus,
	sortingStatus SortingStatus,
	bagID *kernel.UUID,
	estimatedReadyAt *time.Time,
	log []LogEntry,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerRef(customerRef),
		o.setItems(items),
		o.setPayment(payment),
		serviceType.Validate(),
		businessStatus.Validate(),
		currentStage.Validate(),
		tagStatus.Validate(),
		sortingStatus.Validate(),
	); err != nil {
		return nil, err
	}

	seq := serviceType.StageSequence()
	if stageIndex(seq, currentStage) < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("currentStage",
			fmt.Errorf("stage %q is not in the %q sequence", currentStage, serviceType))
	}
	for _, s := range completedStages {
		if stageIndex(seq, s) < 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause("completedStages",
				fmt.Errorf("stage %q is not in the %q sequence", s, serviceType))
		}
	}
	if tag != nil {
		if err := tag.Validate(); err != nil {
			return nil, err
		}
	}
	if tagStatus == TagStatusTagged && tag == nil {
		return nil, errs.NewValueIsRequiredError("tag")
	}
	if bagID != nil {
		if err := bagID.Validate(); err != nil {
			return nil, err
		}
	}

	o.serviceType = serviceType
	o.businessStatus = businessStatus
	o.currentStage = currentStage
	o.completedStages = append([]Stage(nil), completedStages...)
	o.tag = tag
	o.tagStatus = tagStatus
	o.sortingStatus = sortingStatus
	if bagID != nil {
		b := *bagID
		o.bagID = &b
	}
	o.estimatedReadyAt = estimatedReadyAt
	o.log = append([]LogEntry(nil), log...)
	o.createdAt = createdAt
	o.updatedAt = updatedAt

	return o, nil
}

// governingServiceType picks the item service type whose stage sequence
// governs the whole order: the widest pipeline wins so that no item's
// required stages are skipped.
func governingServiceType(items []LineItem) ServiceType {
	has := map[ServiceType]bool{}
	for _, item := range items {
		has[item.ServiceType()] = true
	}
	switch {
	case has[ServiceWashIron]:
		return ServiceWashIron
	case has[ServiceCustom]:
		return ServiceCustom
	case has[ServiceDryClean]:
		return ServiceDryClean
	default:
		return ServiceWashOnly
	}
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerRef returns the customer reference.
func (o *Order) CustomerRef() string {
	return o.customerRef
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []LineItem {
	return append([]LineItem(nil), o.items...)
}

// PaymentMethod returns the payment method.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.payment
}

// TotalAmountCents returns the sum of line item subtotals.
func (o *Order) TotalAmountCents() int64 {
	var total int64
	for _, item := range o.items {
		total += item.SubtotalCents()
	}
	return total
}

// TotalWeight returns the sum of line item weights.
func (o *Order) TotalWeight() kernel.Weight {
	var total kernel.Weight
	for _, item := range o.items {
		total = total.Add(item.Weight())
	}
	return total
}

// Express reports whether any line item is flagged express.
func (o *Order) Express() bool {
	for _, item := range o.items {
		if item.Express() {
			return true
		}
	}
	return false
}

// ServiceType returns the governing service type fixed at creation.
func (o *Order) ServiceType() ServiceType {
	return o.serviceType
}

// BusinessStatus returns the commercial status.
func (o *Order) BusinessStatus() BusinessStatus {
	return o.businessStatus
}

// CurrentStage returns the current workflow stage.
func (o *Order) CurrentStage() Stage {
	return o.currentStage
}

// CompletedStages returns a copy of the completed stage list in completion
// order.
func (o *Order) CompletedStages() []Stage {
	return append([]Stage(nil), o.completedStages...)
}

// Tag returns the bound tag, nil when none was ever bound.
func (o *Order) Tag() *Tag {
	if o.tag == nil {
		return nil
	}
	t := *o.tag
	return &t
}

// TagStatus returns the tag lifecycle status.
func (o *Order) TagStatus() TagStatus {
	return o.tagStatus
}

// IsTagged reports whether the order carries an active tag.
func (o *Order) IsTagged() bool {
	return o.tagStatus == TagStatusTagged && o.tag != nil
}

// SortingStatus returns the transport sub-status.
func (o *Order) SortingStatus() SortingStatus {
	return o.sortingStatus
}

// BagID returns the active bag reference, nil when unassigned.
func (o *Order) BagID() *kernel.UUID {
	if o.bagID == nil {
		return nil
	}
	b := *o.bagID
	return &b
}

// EstimatedReadyAt returns the current completion estimate, nil when none was
// computed yet.
func (o *Order) EstimatedReadyAt() *time.Time {
	if o.estimatedReadyAt == nil {
		return nil
	}
	t := *o.estimatedReadyAt
	return &t
}

// WorkflowLog returns a copy of the append-only audit log.
func (o *Order) WorkflowLog() []LogEntry {
	return append([]LogEntry(nil), o.log...)
}

// CreatedAt returns the intake timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// BindTag binds a physical tag to the order and, when the order is still at
// reception, advances it into sorting with a single workflow log entry.
// Rebinding after a lost or replaced tag is allowed; rebinding over an active
// tag fails with ErrTagAlreadyBound.
func (o *Order) BindTag(tag Tag, actor string, now time.Time) error {
	if err := tag.Validate(); err != nil {
		return err
	}
	if o.businessStatus.IsTerminal() {
		return ErrIllegalTransition
	}
	if o.tagStatus == TagStatusTagged {
		return ErrTagAlreadyBound
	}

	o.tag = &tag
	o.tagStatus = TagStatusTagged
	o.updatedAt = now

	if o.currentStage == StageReception {
		return o.TransitionTo(StageSorting, actor, fmt.Sprintf("tag %s bound", tag.Code()), now)
	}

	o.log = append(o.log, newLogEntry(nil, o.currentStage, now, actor,
		fmt.Sprintf("replacement tag %s bound", tag.Code())))
	return nil
}

// ReportTagLost marks the active tag as lost. The order keeps its stage; a
// replacement binding goes through the registry's lost-tag fallback flow.
func (o *Order) ReportTagLost(actor string, now time.Time) error {
	if !o.IsTagged() {
		return ErrOrderNotTagged
	}

	o.tagStatus = TagStatusLost
	o.updatedAt = now
	o.log = append(o.log, newLogEntry(nil, o.currentStage, now, actor,
		fmt.Sprintf("tag %s reported lost", o.tag.Code())))
	return nil
}

// TransitionTo moves the order to the target stage. The transition is valid
// iff the target is a later member of the order's stage sequence and every
// required stage before it is completed (the stage being left counts as
// completing). On success the old stage is appended to completedStages
// (idempotently), the business status follows the new stage, and one log
// entry is emitted.
func (o *Order) TransitionTo(target Stage, actor, note string, now time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	if o.businessStatus.IsTerminal() {
		return ErrIllegalTransition
	}

	seq := o.serviceType.StageSequence()
	targetIdx := stageIndex(seq, target)
	if targetIdx < 0 {
		return ErrIllegalTransition
	}
	currentIdx := stageIndex(seq, o.currentStage)
	if targetIdx <= currentIdx {
		return ErrIllegalTransition
	}

	completed := make(map[Stage]bool, len(o.completedStages)+1)
	for _, s := range o.completedStages {
		completed[s] = true
	}
	completed[o.currentStage] = true

	for _, step := range seq[:targetIdx] {
		if step.Required && !completed[step.Stage] {
			return &MissingPrerequisiteError{Stage: step.Stage}
		}
	}

	from := o.currentStage
	o.appendCompleted(from)
	o.currentStage = target
	o.businessStatus = businessStatusForStage(target)
	o.updatedAt = now
	o.log = append(o.log, newLogEntry(&from, target, now, actor, note))

	return nil
}

// AssignToBag records the order's membership in a filling bag and flips the
// sorting sub-status to in_bag. The bag side of the admission lives in the
// bag aggregate; both are committed together by the caller.
func (o *Order) AssignToBag(bagID kernel.UUID, now time.Time) error {
	if err := bagID.Validate(); err != nil {
		return err
	}
	if !o.IsTagged() {
		return ErrOrderNotTagged
	}
	if o.bagID != nil {
		return ErrOrderAlreadyInBag
	}
	if o.sortingStatus != SortingPending {
		return ErrOrderNotSortable
	}

	o.bagID = &bagID
	o.sortingStatus = SortingInBag
	o.updatedAt = now
	return nil
}

// ReleaseFromBag clears the bag reference and reverts the sub-status to
// pending. Used by removal, bag deletion, and permitted cancellation.
func (o *Order) ReleaseFromBag(now time.Time) error {
	if o.bagID == nil {
		return ErrOrderNotInBag
	}

	o.bagID = nil
	o.sortingStatus = SortingPending
	o.updatedAt = now
	return nil
}

// MarkReadyForPickup reflects the finalization of the order's bag.
func (o *Order) MarkReadyForPickup(actor string, now time.Time) error {
	if o.bagID == nil {
		return ErrOrderNotInBag
	}
	if o.sortingStatus != SortingInBag {
		return ErrOrderNotSortable
	}

	o.sortingStatus = SortingReadyForPickup
	o.updatedAt = now
	o.log = append(o.log, newLogEntry(nil, o.currentStage, now, actor, "bag finalized, ready for courier pickup"))
	return nil
}

// MarkInTransit reflects the handover of the order's bag to a courier.
func (o *Order) MarkInTransit(courier string, now time.Time) error {
	if o.bagID == nil {
		return ErrOrderNotInBag
	}
	if o.sortingStatus != SortingReadyForPickup {
		return ErrOrderNotSortable
	}

	o.sortingStatus = SortingInTransit
	o.updatedAt = now
	o.log = append(o.log, newLogEntry(nil, o.currentStage, now, courier, "bag handed over, in transit"))
	return nil
}

// ArriveAtFacility reflects the receipt of the order's bag at the destination:
// the sub-status becomes received and the order transitions into the first
// facility stage of its sequence.
func (o *Order) ArriveAtFacility(actor string, now time.Time) error {
	if o.bagID == nil {
		return ErrOrderNotInBag
	}
	if o.sortingStatus != SortingInTransit {
		return ErrOrderNotSortable
	}

	o.sortingStatus = SortingReceived

	next, ok := stageAfter(o.serviceType.StageSequence(), StageSorting)
	if !ok {
		return ErrIllegalTransition
	}
	return o.TransitionTo(next, actor, "bag received at facility", now)
}

// Cancel soft-cancels the order: business status becomes cancelled and one
// log entry is appended. The stage is left untouched so the audit trail shows
// where the order stopped. Policy (which states permit cancellation at all)
// is the cancellation guard's concern, not the aggregate's.
func (o *Order) Cancel(actor, note string, now time.Time) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	if o.businessStatus.IsTerminal() {
		return ErrIllegalTransition
	}

	o.businessStatus = BusinessStatusCancelled
	o.updatedAt = now
	o.log = append(o.log, newLogEntry(nil, o.currentStage, now, actor, note))
	return nil
}

// SetEstimatedReadyAt records a freshly computed completion estimate.
func (o *Order) SetEstimatedReadyAt(t time.Time, now time.Time) {
	o.estimatedReadyAt = &t
	o.updatedAt = now
}

// appendCompleted appends a stage to completedStages unless already present.
func (o *Order) appendCompleted(stage Stage) {
	for _, s := range o.completedStages {
		if s == stage {
			return
		}
	}
	o.completedStages = append(o.completedStages, stage)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerRef(customerRef string) error {
	if customerRef == "" {
		return errs.NewValueIsRequiredError("customerRef")
	}
	o.customerRef = customerRef
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = append([]LineItem(nil), items...)
	return nil
}

func (o *Order) setPayment(payment PaymentMethod) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	o.payment = payment
	return nil
}
