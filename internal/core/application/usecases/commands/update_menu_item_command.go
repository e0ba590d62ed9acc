package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var (
	ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
		"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
	)
)

// UpdateMenuItemCommand replaces the name and price of an existing dish.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID
	name       string
	price      kernel.Price

	guard guard.ConstructorGuard
}

func NewUpdateMenuItemCommand(menuItemID kernel.UUID, name string, price kernel.Price) (UpdateMenuItemCommand, error) {
	cmd := UpdateMenuItemCommand{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMenuItemID(menuItemID),
		cmd.setPrice(price),
	); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	return cmd, nil
}

func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

func (c UpdateMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

func (c UpdateMenuItemCommand) Name() string {
	return c.name
}

func (c UpdateMenuItemCommand) Price() kernel.Price {
	return c.price
}

func (c *UpdateMenuItemCommand) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.menuItemID = id
	return nil
}

func (c *UpdateMenuItemCommand) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}
