package order

import (
	"fmt"

	"shiptrack/internal/pkg/errs"
)

// Status represents the shipment state recorded on an order or a shipment
// update. It is a tagged enum without transition rules: the projector copies
// whatever status the latest update carries onto the order, in any sequence.
//
// Status values are persisted and serialized by their snake_case string
// form (see String and StatusFromString).
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status assigned at order creation,
	// before any shipment update has been recorded.
	StatusPending

	// StatusInTransit indicates the shipment is moving between facilities.
	StatusInTransit

	// StatusOutForDelivery indicates the shipment is on its final leg.
	StatusOutForDelivery

	// StatusDelivered indicates the shipment reached its destination.
	StatusDelivered

	// StatusFailedDelivery indicates a delivery attempt did not succeed.
	StatusFailedDelivery

	// StatusReturned indicates the shipment was sent back to its origin.
	StatusReturned

	// StatusCustomsClearance indicates the shipment is held in customs.
	StatusCustomsClearance

	// StatusArrivedAtFacility indicates arrival at an intermediate facility.
	StatusArrivedAtFacility

	// StatusScanned indicates a routine checkpoint scan.
	StatusScanned

	// StatusProblem indicates the shipment needs staff attention.
	StatusProblem
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:           "unknown",
		StatusPending:           "pending",
		StatusInTransit:         "in_transit",
		StatusOutForDelivery:    "out_for_delivery",
		StatusDelivered:         "delivered",
		StatusFailedDelivery:    "failed_delivery",
		StatusReturned:          "returned",
		StatusCustomsClearance:  "customs_clearance",
		StatusArrivedAtFacility: "arrived_at_facility",
		StatusScanned:           "scanned",
		StatusProblem:           "problem",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// StatusUnknown is excluded to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:           "pending",
		StatusInTransit:         "in_transit",
		StatusOutForDelivery:    "out_for_delivery",
		StatusDelivered:         "delivered",
		StatusFailedDelivery:    "failed_delivery",
		StatusReturned:          "returned",
		StatusCustomsClearance:  "customs_clearance",
		StatusArrivedAtFacility: "arrived_at_facility",
		StatusScanned:           "scanned",
		StatusProblem:           "problem",
	}
}

// StatusFromString parses a status from its snake_case string form.
// Returns a ValueIsInvalidError for empty strings and unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}

	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a recognized status", s),
	)
}

// Validate checks if the Status value is one of the recognized enum values.
// StatusUnknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the snake_case name of the status, or "unknown" for
// invalid values. This is the form persisted to the database and rendered
// in API responses.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
