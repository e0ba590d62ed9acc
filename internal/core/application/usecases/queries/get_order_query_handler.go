package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler loads the order read model.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns ObjectNotFoundError when the order does not exist.
// Items come back in the order they were placed.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var response GetOrderQueryResponse
	err := inSnapshot(ctx, h.db, func(tx *gorm.DB) error {
		var (
			status      int
			totalPrice  decimal.Decimal
			createdAt   time.Time
			deliveredAt sql.NullTime
		)
		row := tx.Raw(`
			SELECT status, total_price, created_at, delivered_at
			FROM orders
			WHERE id = ?
		`, query.OrderID().Bytes()).Row()
		if err := row.Scan(&status, &totalPrice, &createdAt, &deliveredAt); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.NewObjectNotFoundError("order", query.OrderID().String())
			}
			return err
		}

		total, err := kernel.NewPrice(totalPrice)
		if err != nil {
			return err
		}

		response = GetOrderQueryResponse{
			ID:         query.OrderID(),
			Status:     order.Status(status).String(),
			TotalPrice: total,
			CreatedAt:  createdAt.UTC(),
		}
		if deliveredAt.Valid {
			at := deliveredAt.Time.UTC()
			response.DeliveredAt = &at
		}

		response.Items, err = h.loadItems(tx, query.OrderID())
		return err
	})
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}

func (h GetOrderQueryHandler) loadItems(tx *gorm.DB, orderID kernel.UUID) ([]GetOrderQueryItem, error) {
	rows, err := tx.Raw(`
		SELECT oi.id, oi.menu_item_id, m.name, m.price, oi.quantity
		FROM order_items oi
		JOIN menu_items m ON m.id = oi.menu_item_id
		WHERE oi.order_id = ?
		ORDER BY oi.position
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetOrderQueryItem, 0)
	for rows.Next() {
		var (
			id, menuItemID uuid.UUID
			item           GetOrderQueryItem
			price          decimal.Decimal
		)
		if err = rows.Scan(&id, &menuItemID, &item.MenuItemName, &price, &item.Quantity); err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.MenuItemID, err = kernel.UUIDFromBytes(menuItemID[:]); err != nil {
			return nil, err
		}
		if item.MenuItemPrice, err = kernel.NewPrice(price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
