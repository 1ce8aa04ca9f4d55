package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the fulfillment state of an order. It implements an
// ordered state machine: every transition advances exactly one step, so an
// order can never skip a stage or move backwards.
//
// State transitions:
//
//	Placed ──> Accepted ──> ReadyForPickup ──> OutForDelivery ──> Delivered
//
// The original system accepted any status write at any time; the ordered
// progression here is enforced deliberately.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPlaced is the initial status when a customer places an order.
	StatusPlaced

	// StatusAccepted means a restaurant manager has accepted the order.
	StatusAccepted

	// StatusReadyForPickup means the kitchen has finished preparing the order.
	StatusReadyForPickup

	// StatusOutForDelivery means a delivery man has picked the order up.
	// Entering this status requires an assigned delivery man.
	StatusOutForDelivery

	// StatusDelivered is the final state. No further transitions are allowed.
	StatusDelivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "Unknown",
		StatusPlaced:         "Placed",
		StatusAccepted:       "Accepted",
		StatusReadyForPickup: "ReadyForPickup",
		StatusOutForDelivery: "OutForDelivery",
		StatusDelivered:      "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPlaced:         "Placed",
		StatusAccepted:       "Accepted",
		StatusReadyForPickup: "ReadyForPickup",
		StatusOutForDelivery: "OutForDelivery",
		StatusDelivered:      "Delivered",
	}
}

// StatusFromString parses a stored or transport-supplied status name.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a known order status", s))
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered
}

// ProgressTo validates the transition from s to next and returns next.
// Only a single forward step is allowed: Placed -> Accepted,
// Accepted -> ReadyForPickup, and so on. Anything else is rejected,
// including repeats and backward moves.
func (s Status) ProgressTo(next Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if err := next.Validate(); err != nil {
		return 0, err
	}

	if next != s+1 {
		return 0, errs.NewValueIsInvalidErrorWithCause("status transition",
			fmt.Errorf("%s cannot move to %s", s, next))
	}

	return next, nil
}
