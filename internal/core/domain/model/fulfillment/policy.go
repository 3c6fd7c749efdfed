package fulfillment

// Metadata field names as exchanged with callers and reported in FieldErrors.
const (
	FieldPickupMethod     = "pickup_method"
	FieldCourierService   = "courier_service"
	FieldTrackingNumber   = "tracking_number"
	FieldDeliveryLocation = "delivery_location"
	FieldPickupLocation   = "pickup_location"
)

// MetadataPolicy decides which metadata fields are required, optional, or
// forbidden for a given shipping area and order type, and validates a
// candidate metadata value against those rules.
//
// Decision table:
//
//	area       | order_type | pickup_method              | courier/tracking            | location required
//	-----------+------------+----------------------------+-----------------------------+------------------
//	intra_city | deliver    | required {self,courier,rh} | tracking forbidden          | delivery_location
//	intra_city | pickup     | required {self,rh}         | tracking forbidden          | pickup_location
//	inter_city | deliver    | forbidden                  | service required, tracking  | none
//	           |            |                            | per service format          |
//	inter_city | pickup     | unsupported combination - rejected outright
//
// Intra-city orders handed to a courier or ride-hailing service may carry a
// free-form courier name (e.g. "GoSend"); tracking numbers remain an
// inter-city freight concern in every case.
//
// Validate accumulates one FieldError per violation instead of
// short-circuiting, so the caller can surface every problem at once.
type MetadataPolicy struct{}

// NewMetadataPolicy creates a MetadataPolicy instance.
func NewMetadataPolicy() MetadataPolicy {
	return MetadataPolicy{}
}

// RequiredFields returns the field names that must be non-empty for the
// given area and order type, in a fixed order. Returns
// UnsupportedCombinationError for inter-city pickup and a validation error
// for non-canonical enum values.
func (p MetadataPolicy) RequiredFields(area Area, orderType OrderType) ([]string, error) {
	if err := area.Validate(); err != nil {
		return nil, err
	}
	if err := orderType.Validate(); err != nil {
		return nil, err
	}

	if area == InterCity {
		if orderType == Pickup {
			return nil, NewUnsupportedCombinationError(area, orderType)
		}
		return []string{FieldCourierService}, nil
	}

	if orderType == Deliver {
		return []string{FieldPickupMethod, FieldDeliveryLocation}, nil
	}
	return []string{FieldPickupMethod, FieldPickupLocation}, nil
}

// Validate runs the full decision table against the candidate metadata.
// It returns every field violation found (never short-circuiting), or an
// UnsupportedCombinationError when no valid field set exists for the
// candidate's area/order-type pair. A nil, nil return means the metadata
// satisfies the policy.
func (p MetadataPolicy) Validate(m Metadata) ([]FieldError, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	if m.Area() == InterCity && m.OrderType() == Pickup {
		return nil, NewUnsupportedCombinationError(m.Area(), m.OrderType())
	}

	if m.Area() == InterCity {
		return p.validateInterCity(m), nil
	}
	return p.validateIntraCity(m), nil
}

// validateIntraCity checks the intra-city rows of the decision table.
func (p MetadataPolicy) validateIntraCity(m Metadata) []FieldError {
	var fieldErrors []FieldError

	switch {
	case !m.PickupMethod().IsSet():
		fieldErrors = append(fieldErrors, FieldError{
			Field:  FieldPickupMethod,
			Reason: "pickup_method is required for intra-city orders",
		})
	case m.OrderType() == Pickup && m.PickupMethod() == PickupCourier:
		fieldErrors = append(fieldErrors, FieldError{
			Field:  FieldPickupMethod,
			Reason: "pickup orders allow self or ride_hailing only",
		})
	}

	if m.TrackingNumber() != "" {
		fieldErrors = append(fieldErrors, FieldError{
			Field:  FieldTrackingNumber,
			Reason: "tracking numbers apply to inter-city freight only",
		})
	}

	if m.CourierService() != "" &&
		m.PickupMethod() != PickupCourier && m.PickupMethod() != PickupRideHailing {
		fieldErrors = append(fieldErrors, FieldError{
			Field:  FieldCourierService,
			Reason: "courier_service applies only to courier or ride-hailing handover",
		})
	}

	if m.OrderType() == Deliver && m.DeliveryLocation() == "" {
		fieldErrors = append(fieldErrors, FieldError{
			Field:  FieldDeliveryLocation,
			Reason: "delivery_location is required for intra-city delivery orders",
		})
	}

	if m.OrderType() == Pickup && m.PickupLocation() == "" {
		fieldErrors = append(fieldErrors, FieldError{
			Field:  FieldPickupLocation,
			Reason: "pickup_location is required for pickup orders",
		})
	}

	return fieldErrors
}

// validateInterCity checks the inter-city deliver row of the decision table.
func (p MetadataPolicy) validateInterCity(m Metadata) []FieldError {
	var fieldErrors []FieldError

	if m.PickupMethod().IsSet() {
		fieldErrors = append(fieldErrors, FieldError{
			Field:  FieldPickupMethod,
			Reason: "pickup_method must be empty for inter-city orders",
		})
	}

	service := CourierServiceFromString(m.CourierService())
	if service == CourierServiceNone {
		fieldErrors = append(fieldErrors, FieldError{
			Field:  FieldCourierService,
			Reason: "courier_service is required for inter-city orders",
		})
	}

	if fieldErr := service.ValidateTrackingNumber(m.TrackingNumber()); fieldErr != nil {
		fieldErrors = append(fieldErrors, *fieldErr)
	}

	return fieldErrors
}
