// Package kafka publishes committed order events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// messageWriter is the part of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// orderEventMessage is the JSON payload of one order event.
type orderEventMessage struct {
	Event          string    `json:"event"`
	OrderID        string    `json:"order_id"`
	PreviousStatus *string   `json:"previous_status"`
	Status         string    `json:"status"`
	TotalPrice     string    `json:"total_price"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// OrderEventsPublisher writes order events keyed by order ID, so all events of
// one order land on the same partition in the order they were raised.
type OrderEventsPublisher struct {
	writer messageWriter
	topic  string
}

// NewOrderEventsPublisher creates a publisher writing to topic on brokers.
func NewOrderEventsPublisher(brokers []string, topic string) *OrderEventsPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
		RequiredAcks: kafka.RequireOne,
	}

	return newOrderEventsPublisher(writer, topic)
}

func newOrderEventsPublisher(writer messageWriter, topic string) *OrderEventsPublisher {
	return &OrderEventsPublisher{
		writer: writer,
		topic:  topic,
	}
}

// Publish writes all events in one batch.
func (p *OrderEventsPublisher) Publish(ctx context.Context, events []order.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		data, err := json.Marshal(toMessage(event))
		if err != nil {
			return fmt.Errorf("failed to serialize %s event: %w", event.Name, err)
		}

		msgs = append(msgs, kafka.Message{
			Key:   []byte(event.OrderID.String()),
			Value: data,
			Time:  event.OccurredAt,
			Headers: []kafka.Header{
				{Key: "event", Value: []byte(event.Name)},
			},
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", p.topic, err)
	}

	return nil
}

func (p *OrderEventsPublisher) Close() error {
	return p.writer.Close()
}

func toMessage(event order.DomainEvent) orderEventMessage {
	msg := orderEventMessage{
		Event:      event.Name,
		OrderID:    event.OrderID.String(),
		Status:     event.Status.String(),
		TotalPrice: event.TotalPrice.String(),
		OccurredAt: event.OccurredAt,
	}
	if event.PreviousStatus.Validate() == nil {
		previous := event.PreviousStatus.String()
		msg.PreviousStatus = &previous
	}
	return msg
}

// NoopPublisher drops every event. Used when no broker is configured.
type NoopPublisher struct{}

func NewNoopPublisher() NoopPublisher {
	return NoopPublisher{}
}

func (NoopPublisher) Publish(context.Context, []order.DomainEvent) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}
