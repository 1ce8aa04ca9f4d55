package kernel

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// ID is a store-assigned entity identifier. The Entity Store generates
// identifiers on create and writes them back onto the in-memory record, so a
// zero ID means "not yet persisted" or, for optional references such as a
// user's organization, "no reference".
//
// ID is a value object: valid identifiers are always positive.
//
// Example:
//
//	var restaurantID kernel.ID = 42
//	if err := restaurantID.Validate(); err != nil {
//	    // restaurant reference is missing or malformed
//	}
type ID int64

// Validate returns an error unless the ID is positive.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}

// IsZero reports whether the ID carries no reference.
// An absent foreign key (e.g. a Customer with no organization) is stored as zero.
func (id ID) IsZero() bool {
	return id == 0
}

// Int64 returns the raw identifier for persistence adapters.
func (id ID) Int64() int64 {
	return int64(id)
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return fmt.Sprintf("%d", int64(id))
}
