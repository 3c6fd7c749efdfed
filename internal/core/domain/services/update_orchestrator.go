package services

import (
	"fulfillment/internal/core/domain/model/fulfillment"
)

// UpdateOrchestrator is the single entry point for every admin edit of an
// order's fulfillment state. It normalizes raw patch values, merges them
// over the current metadata, derives any automatic status advance from a
// photographic evidence upload, and validates the combined candidate
// against the transition table and the metadata policy.
//
// Apply is a pure function: it performs no I/O and holds no state, so it is
// safe to call concurrently from any number of request handlers.
// Persistence of the returned candidate is the caller's responsibility.
//
// Business rules:
//   - A patch applies atomically: either the whole candidate is returned,
//     or every accumulated error is - never a partial apply.
//   - Evidence can only advance the status along one legal edge; an
//     evidence-derived jump the transition table rejects is an error, never
//     a silent clamp. Re-uploading into a milestone the order has already
//     passed replaces the photo and leaves the status untouched.
//   - Once received, an order accepts no further mutation; identical no-op
//     updates stay idempotent.
//   - Changing the shipping area clears the fields inapplicable to the new
//     area, unless the patch itself supplies conflicting values - those
//     surface as field errors instead of being silently dropped.
//
// Example usage:
//
//	orchestrator := services.NewUpdateOrchestrator()
//	packed := "dikemas"
//	updated, errs := orchestrator.Apply(current, fulfillment.Patch{Status: &packed}, nil)
//	if len(errs) > 0 {
//	    // Surface every violation to the operator at once
//	    return errs
//	}
//	// Persist updated
type UpdateOrchestrator struct {
	policy fulfillment.MetadataPolicy
}

// NewUpdateOrchestrator creates an UpdateOrchestrator instance.
func NewUpdateOrchestrator() UpdateOrchestrator {
	return UpdateOrchestrator{
		policy: fulfillment.NewMetadataPolicy(),
	}
}

// Apply validates and merges an admin edit into a new metadata candidate.
//
// Parameters:
//   - current: the order's metadata as last persisted (re-read immediately
//     before calling; the store's version check guards against staleness)
//   - patch: the raw form values of the edit, legacy spellings included
//   - evidence: an optional completed photo upload to reconcile
//
// Returns:
//   - the validated candidate to persist, with a nil error slice, or
//   - the complete list of violations: IllegalTransitionError,
//     TerminalStateError, InvalidMetadataError, UnsupportedCombinationError
func (o UpdateOrchestrator) Apply(
	current fulfillment.Metadata,
	patch fulfillment.Patch,
	evidence *fulfillment.EvidenceEvent,
) (fulfillment.Metadata, []error) {
	if err := current.Validate(); err != nil {
		return fulfillment.Metadata{}, []error{err}
	}

	candidate, fieldErrors := o.merge(current, patch)

	// Terminal orders accept identical idempotent updates (including a
	// replaced photo for any milestone the order has passed) and nothing
	// else.
	if current.Status().IsTerminal() && len(fieldErrors) == 0 {
		evidenceIsNoOp := evidence == nil ||
			current.Status().HasReached(evidence.Slot.TargetStatus(current.OrderType()))
		if candidate.IsEqual(current) && evidenceIsNoOp {
			return current, nil
		}
		return fulfillment.Metadata{}, []error{fulfillment.NewTerminalStateError(candidate.Status())}
	}

	var applyErrors []error

	if evidence != nil {
		advanced, err := o.applyEvidence(candidate, *evidence)
		if err != nil {
			applyErrors = append(applyErrors, err)
		} else {
			candidate = advanced
		}
	}

	if !current.Status().CanTransitionTo(candidate.Status()) {
		applyErrors = append(applyErrors,
			fulfillment.NewIllegalTransitionError(current.Status(), candidate.Status()))
	}

	policyErrors, err := o.policy.Validate(candidate)
	if err != nil {
		applyErrors = append(applyErrors, err)
	}
	fieldErrors = append(fieldErrors, policyErrors...)

	if len(fieldErrors) > 0 {
		applyErrors = append(applyErrors, fulfillment.NewInvalidMetadataError(fieldErrors))
	}

	if len(applyErrors) > 0 {
		return fulfillment.Metadata{}, applyErrors
	}

	return candidate, nil
}

// merge normalizes the patch and lays its fields over the current metadata.
// Unparseable enum values are reported as field errors and fall back to the
// current value so that validation of the remaining fields can continue.
func (o UpdateOrchestrator) merge(
	current fulfillment.Metadata,
	patch fulfillment.Patch,
) (fulfillment.Metadata, []fulfillment.FieldError) {
	var fieldErrors []fulfillment.FieldError

	status := current.Status()
	if patch.Status != nil {
		status = fulfillment.NormalizeStatus(*patch.Status)
	}

	area := current.Area()
	if patch.ShippingArea != nil {
		parsed, err := fulfillment.AreaFromString(*patch.ShippingArea)
		if err != nil {
			fieldErrors = append(fieldErrors, fulfillment.FieldError{
				Field:  "shipping_area",
				Reason: "unrecognized shipping area",
			})
		} else {
			area = parsed
		}
	}

	orderType := current.OrderType()
	if patch.OrderType != nil {
		parsed, err := fulfillment.OrderTypeFromString(*patch.OrderType)
		if err != nil {
			fieldErrors = append(fieldErrors, fulfillment.FieldError{
				Field:  "order_type",
				Reason: "unrecognized order type",
			})
		} else {
			orderType = parsed
		}
	}

	pickupMethod := current.PickupMethod()
	if patch.PickupMethod != nil {
		parsed, err := fulfillment.PickupMethodFromString(*patch.PickupMethod)
		if err != nil {
			fieldErrors = append(fieldErrors, fulfillment.FieldError{
				Field:  fulfillment.FieldPickupMethod,
				Reason: "unrecognized pickup method",
			})
		} else {
			pickupMethod = parsed
		}
	}

	courierService := valueOr(patch.CourierService, current.CourierService())
	trackingNumber := valueOr(patch.TrackingNumber, current.TrackingNumber())
	deliveryLocation := valueOr(patch.DeliveryLocation, current.DeliveryLocation())
	pickupLocation := valueOr(patch.PickupLocation, current.PickupLocation())
	adminNote := valueOr(patch.AdminNote, current.AdminNote())

	// An area change clears the fields the new area forbids, but only the
	// ones inherited from the current state. Values the patch itself
	// supplies stay put and surface as policy violations instead.
	if area != current.Area() {
		if area == fulfillment.InterCity && patch.PickupMethod == nil {
			pickupMethod = fulfillment.PickupMethodNone
		}
		if area == fulfillment.IntraCity {
			if patch.CourierService == nil {
				courierService = ""
			}
			if patch.TrackingNumber == nil {
				trackingNumber = ""
			}
		}
	}

	candidate, err := fulfillment.RestoreMetadata(
		status, area, orderType, pickupMethod,
		courierService, trackingNumber, deliveryLocation, pickupLocation, adminNote,
	)
	if err != nil {
		// Only reachable when the current state itself carries invalid
		// enums; report it against the patch rather than panicking.
		fieldErrors = append(fieldErrors, fulfillment.FieldError{
			Field:  "metadata",
			Reason: err.Error(),
		})
		return current, fieldErrors
	}

	return candidate, fieldErrors
}

// applyEvidence derives the automatic status advance for an evidence upload.
// A slot whose milestone the order has already reached or passed is a photo
// replacement and leaves the status alone; otherwise the slot's target must
// be one legal edge ahead of the candidate's status. Evidence never jumps
// and never regresses.
func (o UpdateOrchestrator) applyEvidence(
	candidate fulfillment.Metadata,
	evidence fulfillment.EvidenceEvent,
) (fulfillment.Metadata, error) {
	if err := evidence.Slot.Validate(); err != nil {
		return fulfillment.Metadata{}, err
	}

	target := evidence.Slot.TargetStatus(candidate.OrderType())
	if candidate.Status().HasReached(target) {
		return candidate, nil
	}

	if !candidate.Status().CanTransitionTo(target) {
		return fulfillment.Metadata{}, fulfillment.NewIllegalTransitionError(candidate.Status(), target)
	}

	return fulfillment.RestoreMetadata(
		target,
		candidate.Area(),
		candidate.OrderType(),
		candidate.PickupMethod(),
		candidate.CourierService(),
		candidate.TrackingNumber(),
		candidate.DeliveryLocation(),
		candidate.PickupLocation(),
		candidate.AdminNote(),
	)
}

// valueOr dereferences an optional patch field, falling back to the current
// value when the field is absent.
func valueOr(patched *string, current string) string {
	if patched != nil {
		return *patched
	}
	return current
}
