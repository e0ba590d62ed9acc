package queries

import (
	"context"
	"database/sql"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetMenuItemQueryHandler struct {
	db *gorm.DB
}

func NewGetMenuItemQueryHandler(db *gorm.DB) GetMenuItemQueryHandler {
	return GetMenuItemQueryHandler{db: db}
}

// Handle returns ObjectNotFoundError when the item does not exist.
func (h GetMenuItemQueryHandler) Handle(ctx context.Context, query GetMenuItemQuery) (MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return MenuItemResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, name, price
		FROM menu_items
		WHERE id = ?
	`, query.MenuItemID().Bytes()).Row()

	item, err := scanMenuItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return MenuItemResponse{}, errs.NewObjectNotFoundError("menuItem", query.MenuItemID().String())
	}

	return item, err
}

type ListMenuItemsQueryHandler struct {
	db *gorm.DB
}

func NewListMenuItemsQueryHandler(db *gorm.DB) ListMenuItemsQueryHandler {
	return ListMenuItemsQueryHandler{db: db}
}

// Handle returns every menu item ordered by name, then ID.
func (h ListMenuItemsQueryHandler) Handle(ctx context.Context, query ListMenuItemsQuery) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, price
		FROM menu_items
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]MenuItemResponse, 0)
	for rows.Next() {
		item, scanErr := scanMenuItem(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMenuItem(s scanner) (MenuItemResponse, error) {
	var (
		id    uuid.UUID
		name  string
		price decimal.Decimal
	)
	if err := s.Scan(&id, &name, &price); err != nil {
		return MenuItemResponse{}, err
	}

	itemID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return MenuItemResponse{}, err
	}

	itemPrice, err := kernel.NewPrice(price)
	if err != nil {
		return MenuItemResponse{}, err
	}

	return MenuItemResponse{ID: itemID, Name: name, Price: itemPrice}, nil
}
