package order

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
)

const (
	EventOrderPlaced        = "order.placed"
	EventOrderStatusChanged = "order.status_changed"
)

// DomainEvent records something that happened to an order. Events are
// collected on the aggregate and published once the unit of work commits.
type DomainEvent struct {
	Name           string
	OrderID        kernel.UUID
	PreviousStatus Status
	Status         Status
	TotalPrice     kernel.Price
	OccurredAt     time.Time
}
