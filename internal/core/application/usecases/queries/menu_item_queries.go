package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var (
	ErrGetMenuItemQueryIsNotConstructed = errors.New(
		"GetMenuItemQuery must be created via NewGetMenuItemQuery constructor",
	)
	ErrListMenuItemsQueryIsNotConstructed = errors.New(
		"ListMenuItemsQuery must be created via NewListMenuItemsQuery constructor",
	)
)

// MenuItemResponse is the menu item read model.
type MenuItemResponse struct {
	ID    kernel.UUID
	Name  string
	Price kernel.Price
}

// GetMenuItemQuery retrieves one menu item.
type GetMenuItemQuery struct {
	menuItemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetMenuItemQuery(menuItemID kernel.UUID) (GetMenuItemQuery, error) {
	if err := menuItemID.Validate(); err != nil {
		return GetMenuItemQuery{}, err
	}

	return GetMenuItemQuery{
		menuItemID: menuItemID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetMenuItemQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemQueryIsNotConstructed)
}

func (q GetMenuItemQuery) MenuItemID() kernel.UUID {
	return q.menuItemID
}

// ListMenuItemsQuery retrieves the whole menu, ordered by name.
type ListMenuItemsQuery struct {
	guard guard.ConstructorGuard
}

func NewListMenuItemsQuery() ListMenuItemsQuery {
	return ListMenuItemsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrListMenuItemsQueryIsNotConstructed)
}
