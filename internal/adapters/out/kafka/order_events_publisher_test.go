package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func newOrderWithEvents(t *testing.T) *order.Order {
	t.Helper()
	price, err := kernel.PriceFromString("4.50")
	require.NoError(t, err)
	item, err := menu.NewMenuItem(kernel.NewUUID(), "Ramen", price)
	require.NoError(t, err)

	placedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	o, err := order.NewOrder(kernel.NewUUID(), []order.Line{{MenuItem: item, Quantity: 2}}, placedAt)
	require.NoError(t, err)
	require.NoError(t, o.ChangeStatus(order.Cooking, placedAt.Add(time.Minute)))
	return o
}

func TestOrderEventsPublisher_Publish(t *testing.T) {
	t.Run("should write one keyed message per event", func(t *testing.T) {
		writer := &fakeWriter{}
		publisher := newOrderEventsPublisher(writer, "order-events")
		o := newOrderWithEvents(t)

		err := publisher.Publish(t.Context(), o.DomainEvents())

		require.NoError(t, err)
		require.Len(t, writer.messages, 2)
		for _, msg := range writer.messages {
			assert.Equal(t, o.ID().String(), string(msg.Key))
		}

		var placed map[string]any
		require.NoError(t, json.Unmarshal(writer.messages[0].Value, &placed))
		assert.Equal(t, "order.placed", placed["event"])
		assert.Nil(t, placed["previous_status"])
		assert.Equal(t, "pending", placed["status"])
		assert.Equal(t, "9.00", placed["total_price"])

		var changed map[string]any
		require.NoError(t, json.Unmarshal(writer.messages[1].Value, &changed))
		assert.Equal(t, "order.status_changed", changed["event"])
		assert.Equal(t, "pending", changed["previous_status"])
		assert.Equal(t, "cooking", changed["status"])
		assert.Equal(t, "order.status_changed", string(writer.messages[1].Headers[0].Value))
	})

	t.Run("should skip empty batches", func(t *testing.T) {
		writer := &fakeWriter{err: errors.New("must not be called")}
		publisher := newOrderEventsPublisher(writer, "order-events")

		require.NoError(t, publisher.Publish(t.Context(), nil))
	})

	t.Run("should wrap writer errors", func(t *testing.T) {
		cause := errors.New("leader not available")
		publisher := newOrderEventsPublisher(&fakeWriter{err: cause}, "order-events")

		err := publisher.Publish(t.Context(), newOrderWithEvents(t).DomainEvents())

		require.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "order-events")
	})

	t.Run("should close the writer", func(t *testing.T) {
		writer := &fakeWriter{}

		require.NoError(t, newOrderEventsPublisher(writer, "order-events").Close())
		assert.True(t, writer.closed)
	})
}

func TestNoopPublisher(t *testing.T) {
	publisher := NewNoopPublisher()

	require.NoError(t, publisher.Publish(t.Context(), newOrderWithEvents(t).DomainEvents()))
	require.NoError(t, publisher.Close())
}
