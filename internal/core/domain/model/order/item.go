package order

import (
	"errors"
	"fmt"
	"math"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned for an Item built without NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Line is one requested entry of a new order: a menu item and how many of it.
type Line struct {
	MenuItem *menu.MenuItem
	Quantity int
}

// Item is an order line as stored with its order. It keeps only the menu item
// reference and the quantity; the price is read from the menu item when needed.
type Item struct {
	id         kernel.UUID
	menuItemID kernel.UUID
	quantity   int

	isConstructed bool
}

// NewItem validates a line of an order.
func NewItem(id kernel.UUID, menuItemID kernel.UUID, quantity int) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setMenuItemID(menuItemID),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem rebuilds an item loaded from storage.
func RestoreItem(id kernel.UUID, menuItemID kernel.UUID, quantity int) (*Item, error) {
	return NewItem(id, menuItemID, quantity)
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

func (i *Item) Quantity() int {
	return i.quantity
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.menuItemID = id
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	// quantities are stored as int4
	if quantity > math.MaxInt32 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, math.MaxInt32)
	}
	i.quantity = quantity
	return nil
}
