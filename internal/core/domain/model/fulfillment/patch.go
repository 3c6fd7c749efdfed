package fulfillment

// Patch carries the raw form values of an admin edit exactly as they arrive
// from the caller: possibly legacy-cased status strings, possibly absent
// fields. A nil field means "leave unchanged"; a pointer to the empty
// string means "clear". The orchestrator normalizes and validates a Patch
// against the current metadata; a Patch on its own guarantees nothing.
type Patch struct {
	Status           *string
	ShippingArea     *string
	OrderType        *string
	PickupMethod     *string
	CourierService   *string
	TrackingNumber   *string
	DeliveryLocation *string
	PickupLocation   *string
	AdminNote        *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Status == nil &&
		p.ShippingArea == nil &&
		p.OrderType == nil &&
		p.PickupMethod == nil &&
		p.CourierService == nil &&
		p.TrackingNumber == nil &&
		p.DeliveryLocation == nil &&
		p.PickupLocation == nil &&
		p.AdminNote == nil
}
