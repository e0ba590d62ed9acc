package ports

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

// OrderEventPublisher delivers committed order events to other systems.
// Implementations must be safe for concurrent use.
type OrderEventPublisher interface {
	Publish(ctx context.Context, events []order.DomainEvent) error
}
