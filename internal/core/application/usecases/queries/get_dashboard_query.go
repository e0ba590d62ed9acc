package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var (
	ErrGetDashboardQueryIsNotConstructed = errors.New(
		"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
	)
)

// GetDashboardQuery computes the all-time headline figures.
//
// Example:
//
//	dashboard, err := handler.Handle(ctx, NewGetDashboardQuery())
//	if err != nil {
//	    return err
//	}
//	if dashboard.MostOrderedItem != nil {
//	    fmt.Println("best seller:", *dashboard.MostOrderedItem)
//	}
type GetDashboardQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDashboardQuery() GetDashboardQuery {
	return GetDashboardQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// GetDashboardQueryResponse holds the dashboard figures.
//
//   - TotalSales sums the stored totals of delivered orders only
//   - TotalOrders counts orders in every status
//   - MostOrderedItem is nil when no order items exist
type GetDashboardQueryResponse struct {
	TotalSales      kernel.Price
	TotalOrders     int64
	MostOrderedItem *string
}
