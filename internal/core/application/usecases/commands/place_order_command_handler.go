package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// The order and all of its items are written in one transaction: a failure at
// any step leaves the store as if the call never happened.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	cmd, _ := NewPlaceOrderCommand(orderID, lines)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory since placement reads menu items and writes orders.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle places the order in Pending status.
// Returns ObjectNotFoundError when any referenced menu item does not exist.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuItems, err := uow.MenuItemRepository().GetMany(ctx, cmd.MenuItemIDs())
	if err != nil {
		return err
	}

	lines := make([]order.Line, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		menuItem, ok := menuItems[line.MenuItemID()]
		if !ok {
			return errs.NewObjectNotFoundError("menuItem", line.MenuItemID().String())
		}
		lines = append(lines, order.Line{MenuItem: menuItem, Quantity: line.Quantity()})
	}

	o, err := order.NewOrder(cmd.OrderID(), lines, time.Now())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
