package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is always stored and loaded together with its items.
type OrderRepository interface {
	// Add persists a new order and all of its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the mutable part of an existing order (status, delivered at).
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items.
	// Returns ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row until the surrounding
	// transaction ends, so concurrent status changes on one order serialize.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
