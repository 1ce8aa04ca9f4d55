package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

var (
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	phonePattern = regexp.MustCompile(`^[\d\s\-\+\(\)]+$`)
	digitPattern = regexp.MustCompile(`\d`)
)

// Email is a validated, trimmed e-mail address. The zero value represents
// "no address": e-mail is optional on user records, and an empty Email is
// valid by construction.
type Email struct {
	value string
}

// NewEmail builds an Email from raw input. Surrounding whitespace is trimmed;
// an empty input yields the zero Email. Non-empty input must match the
// standard address shape.
func NewEmail(raw string) (Email, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Email{}, nil
	}
	if !emailPattern.MatchString(trimmed) {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("%q does not match the address format", trimmed))
	}
	return Email{value: trimmed}, nil
}

// IsZero reports whether no address is set.
func (e Email) IsZero() bool {
	return e.value == ""
}

// String returns the address, or "" when unset.
func (e Email) String() string {
	return e.value
}

// Phone is a validated phone number. Like Email, the zero value means unset.
// Accepted input may contain digits, spaces, dashes, plus signs, and
// parentheses, with 10 to 15 digits overall.
type Phone struct {
	value string
}

// NewPhone builds a Phone from raw input. Empty input yields the zero Phone.
func NewPhone(raw string) (Phone, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Phone{}, nil
	}
	if !phonePattern.MatchString(trimmed) {
		return Phone{}, errs.NewValueIsInvalidErrorWithCause("phone",
			fmt.Errorf("%q contains characters outside the phone format", trimmed))
	}
	digits := len(digitPattern.FindAllString(trimmed, -1))
	if digits < 10 || digits > 15 {
		return Phone{}, errs.NewValueIsOutOfRangeError("phone digits", digits, 10, 15)
	}
	return Phone{value: trimmed}, nil
}

// IsZero reports whether no number is set.
func (p Phone) IsZero() bool {
	return p.value == ""
}

// String returns the number, or "" when unset.
func (p Phone) String() string {
	return p.value
}
