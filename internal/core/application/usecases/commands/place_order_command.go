package commands

import (
	"errors"
	"fmt"
	"math"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrPlaceOrderLineIsNotConstructed = errors.New(
		"PlaceOrderLine must be created via NewPlaceOrderLine constructor",
	)
	ErrOrderItemsAreRequired = errs.NewValueIsRequiredErrorWithCause("items", errors.New("order must contain items"))
)

// PlaceOrderLine is one requested entry of an order.
type PlaceOrderLine struct {
	menuItemID kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewPlaceOrderLine validates a requested menu item and its quantity.
func NewPlaceOrderLine(menuItemID kernel.UUID, quantity int) (PlaceOrderLine, error) {
	if err := menuItemID.Validate(); err != nil {
		return PlaceOrderLine{}, err
	}
	if quantity <= 0 {
		return PlaceOrderLine{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if quantity > math.MaxInt32 {
		return PlaceOrderLine{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, math.MaxInt32)
	}

	return PlaceOrderLine{
		menuItemID: menuItemID,
		quantity:   quantity,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (l PlaceOrderLine) Validate() error {
	return l.guard.Validate(ErrPlaceOrderLineIsNotConstructed)
}

func (l PlaceOrderLine) MenuItemID() kernel.UUID {
	return l.menuItemID
}

func (l PlaceOrderLine) Quantity() int {
	return l.quantity
}

// PlaceOrderCommand represents a request to place a new order.
// The caller chooses the order ID so it can read the order back after placement.
//
// Example:
//
//	line, _ := NewPlaceOrderLine(burgerID, 2)
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), []PlaceOrderLine{line})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	lines   []PlaceOrderLine

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the order ID and lines. An empty line list
// returns ErrOrderItemsAreRequired.
func NewPlaceOrderCommand(orderID kernel.UUID, lines []PlaceOrderLine) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLines(lines),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Lines returns a copy of the requested lines in request order.
func (c PlaceOrderCommand) Lines() []PlaceOrderLine {
	lines := make([]PlaceOrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// MenuItemIDs returns the distinct menu item IDs referenced by the lines.
func (c PlaceOrderCommand) MenuItemIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(c.lines))
	ids := make([]kernel.UUID, 0, len(c.lines))
	for _, line := range c.lines {
		if _, ok := seen[line.menuItemID]; ok {
			continue
		}
		seen[line.menuItemID] = struct{}{}
		ids = append(ids, line.menuItemID)
	}
	return ids
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []PlaceOrderLine) error {
	if len(lines) == 0 {
		return ErrOrderItemsAreRequired
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	c.lines = make([]PlaceOrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}
