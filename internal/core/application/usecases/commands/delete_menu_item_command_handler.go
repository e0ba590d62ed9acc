package commands

import (
	"context"
)

// DeleteMenuItemCommandHandler removes a dish from the menu.
// Order history is never rewritten: a dish referenced by any order item
// cannot be deleted.
type DeleteMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewDeleteMenuItemCommandHandler(uowFactory MenuUoWFactory) DeleteMenuItemCommandHandler {
	return DeleteMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns ObjectNotFoundError for an unknown item and
// ObjectIsReferencedError when orders still point at it.
func (h *DeleteMenuItemCommandHandler) Handle(ctx context.Context, cmd DeleteMenuItemCommand) error {
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

	if err := uow.MenuItemRepository().Delete(ctx, cmd.MenuItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
