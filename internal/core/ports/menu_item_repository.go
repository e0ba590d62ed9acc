package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
)

// MenuItemRepository defines the persistence contract for menu items.
type MenuItemRepository interface {
	Add(ctx context.Context, aggregate *menu.MenuItem) error

	// Update returns ObjectNotFoundError when the item does not exist.
	Update(ctx context.Context, aggregate *menu.MenuItem) error

	// Delete returns ObjectNotFoundError when the item does not exist and
	// ObjectIsReferencedError when order items still point to it.
	Delete(ctx context.Context, id kernel.UUID) error

	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)

	// GetMany loads all listed items in one round trip.
	// Returns ObjectNotFoundError naming the first id that does not exist.
	GetMany(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*menu.MenuItem, error)
}
