package kernel_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_Validate(t *testing.T) {
	t.Run("positive_id_is_valid", func(t *testing.T) {
		require.NoError(t, kernel.ID(1).Validate())
		require.NoError(t, kernel.ID(9000).Validate())
	})

	t.Run("zero_and_negative_are_invalid", func(t *testing.T) {
		require.Error(t, kernel.ID(0).Validate())
		require.Error(t, kernel.ID(-5).Validate())
	})

	t.Run("zero_means_no_reference", func(t *testing.T) {
		assert.True(t, kernel.ID(0).IsZero())
		assert.False(t, kernel.ID(3).IsZero())
	})
}

func TestNewEmail(t *testing.T) {
	t.Run("valid_addresses", func(t *testing.T) {
		for _, raw := range []string{"jane@example.com", "  bob.driver+x@sub.example.org  ", "a_b-c@host.io"} {
			email, err := kernel.NewEmail(raw)
			require.NoError(t, err, raw)
			assert.False(t, email.IsZero())
		}
	})

	t.Run("empty_input_is_unset_not_invalid", func(t *testing.T) {
		email, err := kernel.NewEmail("   ")
		require.NoError(t, err)
		assert.True(t, email.IsZero())
	})

	t.Run("malformed_addresses_are_rejected", func(t *testing.T) {
		for _, raw := range []string{"no-at-sign", "a@b", "x@y.", "@host.com"} {
			_, err := kernel.NewEmail(raw)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, raw)
		}
	})

	t.Run("trims_surrounding_whitespace", func(t *testing.T) {
		email, err := kernel.NewEmail("  jane@example.com ")
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", email.String())
	})
}

func TestNewPhone(t *testing.T) {
	t.Run("valid_numbers", func(t *testing.T) {
		for _, raw := range []string{"+1 (617) 555-0199", "06171234567", "555 123 4567"} {
			phone, err := kernel.NewPhone(raw)
			require.NoError(t, err, raw)
			assert.False(t, phone.IsZero())
		}
	})

	t.Run("empty_input_is_unset", func(t *testing.T) {
		phone, err := kernel.NewPhone("")
		require.NoError(t, err)
		assert.True(t, phone.IsZero())
	})

	t.Run("letters_are_rejected", func(t *testing.T) {
		_, err := kernel.NewPhone("call me maybe")
		require.Error(t, err)
	})

	t.Run("digit_count_bounds", func(t *testing.T) {
		_, err := kernel.NewPhone("555-1111")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = kernel.NewPhone("1234567890123456")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
