package order_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	line, err := order.NewItem("Margherita", 9.5, 2)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.ID(1), kernel.ID(2), "1 Main Street, Springfield", "ring twice", []*order.Item{line})
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order in Placed status", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Equal(t, order.StatusPlaced, o.Status())
		assert.True(t, o.ID().IsZero())
		assert.Nil(t, o.DeliveryManID())
		assert.False(t, o.CreatedAt().IsZero())
		assert.Equal(t, "ring twice", o.Comment())
		assert.Len(t, o.Items(), 1)
	})

	t.Run("should require customer and restaurant", func(t *testing.T) {
		_, err := order.NewOrder(kernel.ID(0), kernel.ID(2), "1 Main Street, Springfield", "", nil)
		require.Error(t, err)

		_, err = order.NewOrder(kernel.ID(1), kernel.ID(0), "1 Main Street, Springfield", "", nil)
		require.Error(t, err)
	})

	t.Run("should reject a too-short delivery address", func(t *testing.T) {
		_, err := order.NewOrder(kernel.ID(1), kernel.ID(2), "Main St", "", nil)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Progress(t *testing.T) {
	t.Run("should advance one step at a time", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Progress(order.StatusAccepted, nil))
		assert.Equal(t, order.StatusAccepted, o.Status())

		require.NoError(t, o.Progress(order.StatusReadyForPickup, nil))
		assert.Equal(t, order.StatusReadyForPickup, o.Status())
	})

	t.Run("should reject skipping a stage", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Progress(order.StatusReadyForPickup, nil)
		require.Error(t, err)
		assert.Equal(t, order.StatusPlaced, o.Status(), "failed transition must not change status")
	})

	t.Run("should require a delivery man to go out for delivery", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Progress(order.StatusAccepted, nil))
		require.NoError(t, o.Progress(order.StatusReadyForPickup, nil))

		err := o.Progress(order.StatusOutForDelivery, nil)
		require.ErrorIs(t, err, order.ErrDeliveryManRequired)

		deliveryMan := kernel.ID(7)
		require.NoError(t, o.Progress(order.StatusOutForDelivery, &deliveryMan))
		require.NotNil(t, o.DeliveryManID())
		assert.Equal(t, deliveryMan, *o.DeliveryManID())
	})

	t.Run("should keep an existing assignment when none is supplied", func(t *testing.T) {
		o := newTestOrder(t)
		deliveryMan := kernel.ID(7)
		require.NoError(t, o.Progress(order.StatusAccepted, &deliveryMan))
		require.NoError(t, o.Progress(order.StatusReadyForPickup, nil))

		require.NoError(t, o.Progress(order.StatusOutForDelivery, nil))
		require.NotNil(t, o.DeliveryManID())
		assert.Equal(t, deliveryMan, *o.DeliveryManID())
	})

	t.Run("should reject an invalid delivery man reference", func(t *testing.T) {
		o := newTestOrder(t)
		invalid := kernel.ID(0)

		err := o.Progress(order.StatusAccepted, &invalid)
		require.Error(t, err)
	})

	t.Run("should allow nothing after Delivered", func(t *testing.T) {
		o := newTestOrder(t)
		deliveryMan := kernel.ID(7)
		require.NoError(t, o.Progress(order.StatusAccepted, nil))
		require.NoError(t, o.Progress(order.StatusReadyForPickup, nil))
		require.NoError(t, o.Progress(order.StatusOutForDelivery, &deliveryMan))
		require.NoError(t, o.Progress(order.StatusDelivered, nil))

		err := o.Progress(order.StatusDelivered, nil)
		require.Error(t, err)
	})
}

func TestNewItem(t *testing.T) {
	t.Run("should snapshot name, price and quantity", func(t *testing.T) {
		item, err := order.NewItem("Tiramisu", 4.0, 3)
		require.NoError(t, err)

		assert.Equal(t, "Tiramisu", item.MenuItemName())
		assert.InDelta(t, 4.0, item.UnitPrice(), 0.001)
		assert.Equal(t, 3, item.Quantity())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := order.NewItem("", 4.0, 1)
		require.Error(t, err)
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		_, err := order.NewItem("Tiramisu", 4.0, 0)
		require.Error(t, err)

		_, err = order.NewItem("Tiramisu", 4.0, -1)
		require.Error(t, err)
	})
}
