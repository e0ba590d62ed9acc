package queries

import (
	"context"
	"database/sql"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetDashboardQueryHandler aggregates the dashboard figures from one snapshot.
type GetDashboardQueryHandler struct {
	db *gorm.DB
}

func NewGetDashboardQueryHandler(db *gorm.DB) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{db: db}
}

// Handle computes the dashboard. The most ordered item is the menu item name
// with the highest summed quantity over all orders regardless of status.
// Items sharing a name are counted together; ties go to the alphabetically
// first name.
func (h GetDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardQuery,
) (GetDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	var response GetDashboardQueryResponse
	err := inSnapshot(ctx, h.db, func(tx *gorm.DB) error {
		var totalSales decimal.Decimal
		if err := tx.Raw(`
			SELECT
				COALESCE(SUM(total_price) FILTER (WHERE status = ?), 0),
				COUNT(*)
			FROM orders
		`, int(order.Delivered)).Row().Scan(&totalSales, &response.TotalOrders); err != nil {
			return err
		}

		sales, err := kernel.NewPriceSum(totalSales)
		if err != nil {
			return err
		}
		response.TotalSales = sales

		var name string
		err = tx.Raw(`
			SELECT m.name
			FROM order_items oi
			JOIN menu_items m ON m.id = oi.menu_item_id
			GROUP BY m.name
			ORDER BY SUM(oi.quantity) DESC, m.name ASC
			LIMIT 1
		`).Row().Scan(&name)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil
		case err != nil:
			return err
		}

		response.MostOrderedItem = &name
		return nil
	})
	if err != nil {
		return GetDashboardQueryResponse{}, err
	}

	return response, nil
}
