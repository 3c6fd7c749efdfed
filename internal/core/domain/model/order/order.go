package order

import (
	"errors"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders
	// are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrEvidenceNotFound is returned when removing evidence from a slot
	// that holds no image.
	ErrEvidenceNotFound = errors.New("no evidence image in slot")
)

// Order represents a paid customer order in fulfillment. It is the
// aggregate root tracking the order from payment through packaging,
// dispatch, and delivery or pickup confirmation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty customer name
//   - Its metadata always satisfies the structural rules of the
//     fulfillment engine (canonical status, supported area/type pair)
//   - Evidence images live in fixed named slots, one image per slot
//   - Can only be created through NewOrder or RestoreOrder
//
// Metadata changes go through the update orchestrator; the aggregate only
// accepts already-validated candidates via ApplyMetadata.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerName identifies the paying customer
	customerName string

	// metadata is the fulfillment envelope the status engine validates
	metadata fulfillment.Metadata

	// evidence maps each photo slot to the stored image reference
	evidence map[fulfillment.EvidenceSlot]string

	// version supports optimistic concurrency at the persistence layer
	version int

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order entering fulfillment. The order starts in
// awaiting_processing with the default metadata for its shipping area and
// order type, no evidence, and version 1.
//
// Returns a validation error if the ID is invalid, the customer name is
// empty, or the area/order-type pair is unsupported.
func NewOrder(
	id kernel.UUID,
	customerName string,
	area fulfillment.Area,
	orderType fulfillment.OrderType,
) (*Order, error) {
	metadata, err := fulfillment.NewMetadata(area, orderType)
	if err != nil {
		return nil, err
	}

	newOrder := &Order{
		metadata:      metadata,
		evidence:      make(map[fulfillment.EvidenceSlot]string),
		version:       1,
		isConstructed: true,
	}

	if err = errors.Join(
		newOrder.setID(id),
		newOrder.setCustomerName(customerName),
	); err != nil {
		return nil, err
	}

	return newOrder, nil
}

// RestoreOrder reconstructs an Order from persistence. The metadata must
// already be a constructed fulfillment.Metadata value; evidence may be nil.
func RestoreOrder(
	id kernel.UUID,
	customerName string,
	metadata fulfillment.Metadata,
	evidence map[fulfillment.EvidenceSlot]string,
	version int,
) (*Order, error) {
	if err := metadata.Validate(); err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewValueIsInvalidError("version")
	}

	if evidence == nil {
		evidence = make(map[fulfillment.EvidenceSlot]string)
	}

	restored := &Order{
		metadata:      metadata,
		evidence:      evidence,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		restored.setID(id),
		restored.setCustomerName(customerName),
	); err != nil {
		return nil, err
	}

	return restored, nil
}

// Validate ensures the Order instance was properly constructed.
// Call when reconstructing orders from persistence to ensure integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerName returns the paying customer's name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Metadata returns the current fulfillment envelope.
func (o *Order) Metadata() fulfillment.Metadata {
	return o.metadata
}

// Version returns the optimistic-concurrency version loaded from storage.
func (o *Order) Version() int {
	return o.version
}

// ConfirmPersisted advances the in-memory version after the store accepted
// an update under the optimistic guard, keeping the aggregate in step with
// the incremented stored version. Called by repositories only.
func (o *Order) ConfirmPersisted() {
	o.version++
}

// ApplyMetadata replaces the fulfillment envelope with a candidate already
// validated by the update orchestrator. The aggregate re-checks only
// structural construction; policy and transition legality are the
// orchestrator's responsibility.
func (o *Order) ApplyMetadata(candidate fulfillment.Metadata) error {
	if err := candidate.Validate(); err != nil {
		return err
	}

	o.metadata = candidate
	return nil
}

// EvidenceRef returns the stored image reference for a slot, if any.
func (o *Order) EvidenceRef(slot fulfillment.EvidenceSlot) (string, bool) {
	ref, ok := o.evidence[slot]
	return ref, ok
}

// EvidenceRefs returns a copy of the slot-to-image mapping.
func (o *Order) EvidenceRefs() map[fulfillment.EvidenceSlot]string {
	refs := make(map[fulfillment.EvidenceSlot]string, len(o.evidence))
	for slot, ref := range o.evidence {
		refs[slot] = ref
	}
	return refs
}

// AttachEvidence records the stored image reference for a slot. Uploading
// into an occupied slot replaces the previous image reference.
func (o *Order) AttachEvidence(slot fulfillment.EvidenceSlot, imageRef string) error {
	if err := slot.Validate(); err != nil {
		return err
	}
	if imageRef == "" {
		return errs.NewValueIsRequiredError("image_ref")
	}

	o.evidence[slot] = imageRef
	return nil
}

// RemoveEvidence deletes the image reference from a slot. Deleting evidence
// never rolls the fulfillment status back.
func (o *Order) RemoveEvidence(slot fulfillment.EvidenceSlot) error {
	if err := slot.Validate(); err != nil {
		return err
	}
	if _, ok := o.evidence[slot]; !ok {
		return ErrEvidenceNotFound
	}

	delete(o.evidence, slot)
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerName validates and sets the customer name.
func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customer_name")
	}
	o.customerName = customerName
	return nil
}
