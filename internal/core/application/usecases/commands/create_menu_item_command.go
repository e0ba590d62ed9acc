package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCreateMenuItemCommandIsNotConstructed = errors.New(
		"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
	)
)

// CreateMenuItemCommand represents a request to add a dish to the menu.
// Name rules are enforced by the menu item itself when the handler builds it.
//
// Example:
//
//	price, _ := kernel.PriceFromString("5.50")
//	cmd, err := NewCreateMenuItemCommand(kernel.NewUUID(), "Burger", price)
//	if err != nil {
//	    return fmt.Errorf("invalid menu item data: %w", err)
//	}
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID
	name       string
	price      kernel.Price

	guard guard.ConstructorGuard
}

func NewCreateMenuItemCommand(menuItemID kernel.UUID, name string, price kernel.Price) (CreateMenuItemCommand, error) {
	cmd := CreateMenuItemCommand{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMenuItemID(menuItemID),
		cmd.setPrice(price),
	); err != nil {
		return CreateMenuItemCommand{}, err
	}

	return cmd, nil
}

func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

func (c CreateMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

func (c CreateMenuItemCommand) Name() string {
	return c.name
}

func (c CreateMenuItemCommand) Price() kernel.Price {
	return c.price
}

func (c *CreateMenuItemCommand) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.menuItemID = id
	return nil
}

func (c *CreateMenuItemCommand) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}
