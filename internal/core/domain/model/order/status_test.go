package order_test

import (
	"fmt"
	"testing"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.StatusPlaced,
			order.StatusAccepted,
			order.StatusReadyForPickup,
			order.StatusOutForDelivery,
			order.StatusDelivered,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				err := status.Validate()
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.StatusUnknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject out of range status values", func(t *testing.T) {
		for _, status := range []order.Status{order.Status(-1), order.Status(6), order.Status(100)} {
			err := status.Validate()
			require.Error(t, err)
		}
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse all canonical names", func(t *testing.T) {
		cases := map[string]order.Status{
			"Placed":         order.StatusPlaced,
			"Accepted":       order.StatusAccepted,
			"ReadyForPickup": order.StatusReadyForPickup,
			"OutForDelivery": order.StatusOutForDelivery,
			"Delivered":      order.StatusDelivered,
		}

		for name, want := range cases {
			got, err := order.StatusFromString(name)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "placed", "Cancelled", "Unknown"} {
			_, err := order.StatusFromString(name)
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_ProgressTo(t *testing.T) {
	t.Run("should allow each single forward step", func(t *testing.T) {
		steps := []struct {
			from order.Status
			to   order.Status
		}{
			{order.StatusPlaced, order.StatusAccepted},
			{order.StatusAccepted, order.StatusReadyForPickup},
			{order.StatusReadyForPickup, order.StatusOutForDelivery},
			{order.StatusOutForDelivery, order.StatusDelivered},
		}

		for _, step := range steps {
			got, err := step.from.ProgressTo(step.to)
			require.NoError(t, err, "%s -> %s", step.from, step.to)
			assert.Equal(t, step.to, got)
		}
	})

	t.Run("should reject skipping a stage", func(t *testing.T) {
		_, err := order.StatusPlaced.ProgressTo(order.StatusReadyForPickup)
		require.Error(t, err)

		_, err = order.StatusAccepted.ProgressTo(order.StatusDelivered)
		require.Error(t, err)
	})

	t.Run("should reject moving backwards", func(t *testing.T) {
		_, err := order.StatusAccepted.ProgressTo(order.StatusPlaced)
		require.Error(t, err)

		_, err = order.StatusDelivered.ProgressTo(order.StatusOutForDelivery)
		require.Error(t, err)
	})

	t.Run("should reject staying in place", func(t *testing.T) {
		_, err := order.StatusAccepted.ProgressTo(order.StatusAccepted)
		require.Error(t, err)
	})

	t.Run("should reject transitions out of Delivered", func(t *testing.T) {
		for _, next := range []order.Status{
			order.StatusPlaced,
			order.StatusAccepted,
			order.StatusReadyForPickup,
			order.StatusOutForDelivery,
		} {
			_, err := order.StatusDelivered.ProgressTo(next)
			require.Error(t, err)
		}
	})
}
