package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetDailySalesReportQueryHandler aggregates delivered orders of one day.
type GetDailySalesReportQueryHandler struct {
	db *gorm.DB
}

func NewGetDailySalesReportQueryHandler(db *gorm.DB) GetDailySalesReportQueryHandler {
	return GetDailySalesReportQueryHandler{db: db}
}

// Handle counts only orders in Delivered status whose delivery time falls
// inside the selected day. Totals and the breakdown come from one snapshot.
func (h GetDailySalesReportQueryHandler) Handle(
	ctx context.Context,
	query GetDailySalesReportQuery,
) (GetDailySalesReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDailySalesReportQueryResponse{}, err
	}

	response := GetDailySalesReportQueryResponse{Date: query.Date()}
	err := inSnapshot(ctx, h.db, func(tx *gorm.DB) error {
		var totalSales decimal.Decimal
		if err := tx.Raw(`
			SELECT COALESCE(SUM(total_price), 0), COUNT(*)
			FROM orders
			WHERE status = ? AND delivered_at >= ? AND delivered_at < ?
		`, int(order.Delivered), query.Start(), query.End()).
			Row().Scan(&totalSales, &response.TotalOrders); err != nil {
			return err
		}

		sales, err := kernel.NewPriceSum(totalSales)
		if err != nil {
			return err
		}
		response.TotalSales = sales

		response.Items, err = h.loadItems(tx, query)
		return err
	})
	if err != nil {
		return GetDailySalesReportQueryResponse{}, err
	}

	return response, nil
}

func (h GetDailySalesReportQueryHandler) loadItems(
	tx *gorm.DB,
	query GetDailySalesReportQuery,
) ([]DailySalesItem, error) {
	rows, err := tx.Raw(`
		SELECT
			m.id,
			m.name,
			SUM(oi.quantity) AS total_quantity,
			SUM(oi.quantity) * m.price AS revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN menu_items m ON m.id = oi.menu_item_id
		WHERE o.status = ? AND o.delivered_at >= ? AND o.delivered_at < ?
		GROUP BY m.id, m.name, m.price
		ORDER BY revenue DESC, m.name ASC, m.id ASC
	`, int(order.Delivered), query.Start(), query.End()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]DailySalesItem, 0)
	for rows.Next() {
		var (
			id      uuid.UUID
			item    DailySalesItem
			revenue decimal.Decimal
		)
		if err = rows.Scan(&id, &item.MenuItemName, &item.TotalQuantity, &revenue); err != nil {
			return nil, err
		}

		if item.MenuItemID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.Revenue, err = kernel.NewPriceSum(revenue); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
