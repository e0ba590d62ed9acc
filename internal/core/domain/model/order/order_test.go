package order_test

import (
	"math"
	"testing"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMenuItem(t *testing.T, name, price string) *menu.MenuItem {
	t.Helper()
	p, err := kernel.PriceFromString(price)
	require.NoError(t, err)
	item, err := menu.NewMenuItem(kernel.NewUUID(), name, p)
	require.NoError(t, err)
	return item
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), []order.Line{
		{MenuItem: newMenuItem(t, "Burger", "5"), Quantity: 2},
	}, time.Now())
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	burger := newMenuItem(t, "Burger", "5.00")
	fries := newMenuItem(t, "Fries", "2.35")
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should create pending order with computed total", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.NewOrder(id, []order.Line{
			{MenuItem: burger, Quantity: 2},
			{MenuItem: fries, Quantity: 3},
		}, createdAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "17.05", o.TotalPrice().String())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Nil(t, o.DeliveredAt())
		require.Len(t, o.Items(), 2)
		assert.True(t, o.Items()[0].MenuItemID().IsEqual(burger.ID()))
		assert.Equal(t, 2, o.Items()[0].Quantity())
		assert.Equal(t, 3, o.Items()[1].Quantity())
	})

	t.Run("should keep one item per line for repeated menu items", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), []order.Line{
			{MenuItem: burger, Quantity: 1},
			{MenuItem: burger, Quantity: 1},
		}, createdAt)

		require.NoError(t, err)
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, "10.00", o.TotalPrice().String())
	})

	t.Run("should accept free items", func(t *testing.T) {
		water := newMenuItem(t, "Tap water", "0")

		o, err := order.NewOrder(kernel.NewUUID(), []order.Line{{MenuItem: water, Quantity: 4}}, createdAt)

		require.NoError(t, err)
		assert.Equal(t, "0.00", o.TotalPrice().String())
	})

	t.Run("should fail without items", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), nil, createdAt)

		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "order must contain items")
	})

	t.Run("should fail with non positive quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -3} {
			o, err := order.NewOrder(kernel.NewUUID(), []order.Line{{MenuItem: burger, Quantity: quantity}}, createdAt)

			assert.Nil(t, o)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "is not greater than 0")
		}
	})

	t.Run("should fail with quantity above int4 range", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), []order.Line{{MenuItem: burger, Quantity: 3_000_000_000}}, createdAt)

		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should accept quantity at int4 limit", func(t *testing.T) {
		free := newMenuItem(t, "Water", "0")

		o, err := order.NewOrder(kernel.NewUUID(), []order.Line{{MenuItem: free, Quantity: math.MaxInt32}}, createdAt)

		require.NoError(t, err)
		assert.Equal(t, math.MaxInt32, o.Items()[0].Quantity())
	})

	t.Run("should fail when total does not fit a stored price", func(t *testing.T) {
		steak := newMenuItem(t, "Steak", "1000")

		o, err := order.NewOrder(kernel.NewUUID(), []order.Line{{MenuItem: steak, Quantity: 100_000}}, createdAt)

		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "total price")
	})

	t.Run("should accept largest storable total", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), []order.Line{
			{MenuItem: newMenuItem(t, "Banquet", "99999999.99"), Quantity: 1},
		}, createdAt)

		require.NoError(t, err)
		assert.Equal(t, "99999999.99", o.TotalPrice().String())
	})

	t.Run("should fail with missing menu item", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), []order.Line{{MenuItem: nil, Quantity: 1}}, createdAt)

		require.ErrorIs(t, err, menu.ErrMenuItemIsNotConstructed)
	})

	t.Run("should fail with invalid id", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, []order.Line{{MenuItem: burger, Quantity: 1}}, createdAt)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should record placed event", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), []order.Line{{MenuItem: burger, Quantity: 1}}, createdAt)
		require.NoError(t, err)

		events := o.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, order.EventOrderPlaced, events[0].Name)
		assert.Equal(t, order.Pending, events[0].Status)
		assert.Equal(t, "5.00", events[0].TotalPrice.String())

		o.ClearDomainEvents()
		assert.Empty(t, o.DomainEvents())
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should walk the full workflow", func(t *testing.T) {
		o := newPendingOrder(t)
		deliveredAt := time.Date(2026, 3, 1, 20, 30, 0, 0, time.UTC)

		require.NoError(t, o.ChangeStatus(order.Cooking, deliveredAt.Add(-time.Hour)))
		assert.Nil(t, o.DeliveredAt())
		require.NoError(t, o.ChangeStatus(order.Ready, deliveredAt.Add(-time.Minute)))
		assert.Nil(t, o.DeliveredAt())
		require.NoError(t, o.ChangeStatus(order.Delivered, deliveredAt))

		assert.Equal(t, order.Delivered, o.Status())
		require.NotNil(t, o.DeliveredAt())
		assert.Equal(t, deliveredAt, *o.DeliveredAt())
	})

	t.Run("should reject invalid transitions and leave order unchanged", func(t *testing.T) {
		o := newPendingOrder(t)

		for _, next := range []order.Status{order.Pending, order.Ready, order.Delivered, order.Unknown} {
			err := o.ChangeStatus(next, time.Now())

			require.ErrorIs(t, err, errs.ErrStatusTransitionIsInvalid)
			assert.Equal(t, order.Pending, o.Status())
			assert.Nil(t, o.DeliveredAt())
		}
	})

	t.Run("should never change delivered at after delivery", func(t *testing.T) {
		o := newPendingOrder(t)
		deliveredAt := time.Date(2026, 3, 1, 20, 30, 0, 0, time.UTC)
		require.NoError(t, o.ChangeStatus(order.Cooking, deliveredAt))
		require.NoError(t, o.ChangeStatus(order.Ready, deliveredAt))
		require.NoError(t, o.ChangeStatus(order.Delivered, deliveredAt))

		for _, next := range allStatuses {
			err := o.ChangeStatus(next, deliveredAt.Add(time.Hour))

			require.ErrorIs(t, err, errs.ErrStatusTransitionIsInvalid)
			assert.Equal(t, deliveredAt, *o.DeliveredAt())
			assert.Equal(t, order.Delivered, o.Status())
		}
	})

	t.Run("should record status changed events", func(t *testing.T) {
		o := newPendingOrder(t)
		o.ClearDomainEvents()

		require.NoError(t, o.ChangeStatus(order.Cooking, time.Now()))
		require.Error(t, o.ChangeStatus(order.Delivered, time.Now()))

		events := o.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, order.EventOrderStatusChanged, events[0].Name)
		assert.Equal(t, order.Pending, events[0].PreviousStatus)
		assert.Equal(t, order.Cooking, events[0].Status)
	})

	t.Run("should not expose internal delivered at pointer", func(t *testing.T) {
		o := newPendingOrder(t)
		at := time.Date(2026, 3, 1, 20, 30, 0, 0, time.UTC)
		require.NoError(t, o.ChangeStatus(order.Cooking, at))
		require.NoError(t, o.ChangeStatus(order.Ready, at))
		require.NoError(t, o.ChangeStatus(order.Delivered, at))

		*o.DeliveredAt() = at.Add(time.Hour)

		assert.Equal(t, at, *o.DeliveredAt())
	})
}

func TestRestoreOrder(t *testing.T) {
	total, _ := kernel.PriceFromString("10")
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	item, err := order.RestoreItem(kernel.NewUUID(), kernel.NewUUID(), 2)
	require.NoError(t, err)

	t.Run("should restore delivered order", func(t *testing.T) {
		deliveredAt := createdAt.Add(time.Hour)

		o, err := order.RestoreOrder(kernel.NewUUID(), order.Delivered, total, createdAt, &deliveredAt, []*order.Item{item})

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should reject delivered at on undelivered order", func(t *testing.T) {
		deliveredAt := createdAt.Add(time.Hour)

		_, err := order.RestoreOrder(kernel.NewUUID(), order.Ready, total, createdAt, &deliveredAt, []*order.Item{item})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject delivered order without delivered at", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), order.Delivered, total, createdAt, nil, []*order.Item{item})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject order without items", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), order.Pending, total, createdAt, nil, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), order.Unknown, total, createdAt, nil, []*order.Item{item})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
	require.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
}
