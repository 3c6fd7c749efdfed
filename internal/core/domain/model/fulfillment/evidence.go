package fulfillment

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// EvidenceSlot names a photo-upload checkpoint tied to a fulfillment
// milestone. Each slot holds at most one image; re-uploading replaces the
// image in place, and deleting an image never rolls the status back.
type EvidenceSlot int

const (
	// EvidenceSlotUnknown represents an invalid or undefined slot.
	EvidenceSlotUnknown EvidenceSlot = iota

	// ReadyForPickupPhoto proves the package is staged: for deliver orders
	// it advances the order to ready_to_ship, for pickup orders to
	// ready_for_pickup.
	ReadyForPickupPhoto

	// PickedUpPhoto proves the courier collected the package; advances the
	// order to in_transit.
	PickedUpPhoto

	// DeliveredPhoto proves handover to the customer; advances the order
	// to received.
	DeliveredPhoto

	// ShipmentProofPhoto proves handover to inter-city freight; advances
	// the order to in_transit.
	ShipmentProofPhoto
)

// EvidenceSlotFromString parses an evidence slot token.
func EvidenceSlotFromString(raw string) (EvidenceSlot, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "ready_for_pickup_photo":
		return ReadyForPickupPhoto, nil
	case "picked_up_photo":
		return PickedUpPhoto, nil
	case "delivered_photo":
		return DeliveredPhoto, nil
	case "shipment_proof_photo":
		return ShipmentProofPhoto, nil
	default:
		return EvidenceSlotUnknown, errs.NewValueIsInvalidErrorWithCause("evidence_slot",
			fmt.Errorf("%q is not a valid evidence slot", raw))
	}
}

// Validate checks the EvidenceSlot value is a member of the valid set.
func (s EvidenceSlot) Validate() error {
	switch s {
	case ReadyForPickupPhoto, PickedUpPhoto, DeliveredPhoto, ShipmentProofPhoto:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("evidence_slot",
			fmt.Errorf("%d is not a valid evidence slot", s))
	}
}

func (s EvidenceSlot) String() string {
	switch s {
	case ReadyForPickupPhoto:
		return "ready_for_pickup_photo"
	case PickedUpPhoto:
		return "picked_up_photo"
	case DeliveredPhoto:
		return "delivered_photo"
	case ShipmentProofPhoto:
		return "shipment_proof_photo"
	default:
		return "unknown"
	}
}

// TargetStatus returns the status milestone the slot is tied to. The
// staging photo forks on order type: deliver orders become ready_to_ship,
// pickup orders become ready_for_pickup.
func (s EvidenceSlot) TargetStatus(orderType OrderType) Status {
	switch s {
	case ReadyForPickupPhoto:
		if orderType == Pickup {
			return ReadyForPickup
		}
		return ReadyToShip
	case PickedUpPhoto:
		return InTransit
	case DeliveredPhoto:
		return Received
	case ShipmentProofPhoto:
		return InTransit
	default:
		return StatusUnknown
	}
}

// EvidenceEvent signals a completed photo upload to the orchestrator so it
// can derive the automatic status advance. ImageRef identifies the stored
// image in the evidence store; the engine never reads image bytes.
type EvidenceEvent struct {
	Slot     EvidenceSlot
	ImageRef string
}
