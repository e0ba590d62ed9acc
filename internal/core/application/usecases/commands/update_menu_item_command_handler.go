package commands

import (
	"context"
	"errors"
)

// UpdateMenuItemCommandHandler renames and reprices a dish.
// Orders placed earlier keep their stored totals.
type UpdateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewUpdateMenuItemCommandHandler(uowFactory MenuUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns ObjectNotFoundError when the menu item does not exist.
func (h *UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) error {
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

	menuRepo := uow.MenuItemRepository()
	menuItem, err := menuRepo.Get(ctx, cmd.MenuItemID())
	if err != nil {
		return err
	}

	if err = errors.Join(
		menuItem.Rename(cmd.Name()),
		menuItem.ChangePrice(cmd.Price()),
	); err != nil {
		return err
	}

	if err = menuRepo.Update(ctx, menuItem); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
