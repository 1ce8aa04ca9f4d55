package workrequest

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an inter-enterprise work request.
//
// State transitions:
//
//	New ──┬──> InProgress ──┬──> Completed
//	      │                 │
//	      └──────────┬──────┘
//	                 v
//	             Rejected
//
// Completed and Rejected are terminal. A request may be rejected directly
// from New (declined without being worked on) or from InProgress.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusNew is the initial status of a freshly created request.
	StatusNew

	// StatusInProgress means the receiving enterprise has started on it.
	StatusInProgress

	// StatusCompleted is a terminal state: the request was fulfilled.
	StatusCompleted

	// StatusRejected is a terminal state: the request was declined.
	StatusRejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		StatusNew:        "New",
		StatusInProgress: "InProgress",
		StatusCompleted:  "Completed",
		StatusRejected:   "Rejected",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusNew:        "New",
		StatusInProgress: "InProgress",
		StatusCompleted:  "Completed",
		StatusRejected:   "Rejected",
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
		fmt.Errorf("%q is not a known work request status", s))
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid work request status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRejected
}

// AdvanceTo validates the transition from s to next and returns next.
func (s Status) AdvanceTo(next Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if err := next.Validate(); err != nil {
		return 0, err
	}

	allowed := map[Status][]Status{
		StatusNew:        {StatusInProgress, StatusRejected},
		StatusInProgress: {StatusCompleted, StatusRejected},
	}

	for _, candidate := range allowed[s] {
		if next == candidate {
			return next, nil
		}
	}

	return 0, errs.NewValueIsInvalidErrorWithCause("status transition",
		fmt.Errorf("%s cannot move to %s", s, next))
}
