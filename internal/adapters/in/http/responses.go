package http

import (
	"time"

	"restaurant/internal/core/application/usecases/queries"
)

type menuItemInput struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

type newOrderItem struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

type newOrder struct {
	Items []newOrderItem `json:"items"`
}

type statusChange struct {
	Status string `json:"status"`
}

type menuItemResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

type orderItemResponse struct {
	ID           string `json:"id"`
	MenuItemID   string `json:"menu_item_id"`
	MenuItemName string `json:"menu_item_name"`
	Price        string `json:"price"`
	Quantity     int    `json:"quantity"`
}

type orderResponse struct {
	ID          string              `json:"id"`
	Status      string              `json:"status"`
	TotalPrice  string              `json:"total_price"`
	CreatedAt   time.Time           `json:"created_at"`
	DeliveredAt *time.Time          `json:"delivered_at"`
	Items       []orderItemResponse `json:"items"`
}

type dashboardResponse struct {
	TotalSales      string  `json:"total_sales"`
	TotalOrders     int64   `json:"total_orders"`
	MostOrderedItem *string `json:"most_ordered_item"`
}

type dailySalesItemResponse struct {
	MenuItemID    string `json:"menu_item_id"`
	MenuItemName  string `json:"menu_item_name"`
	TotalQuantity int64  `json:"total_quantity"`
	Revenue       string `json:"revenue"`
}

type dailySalesReportResponse struct {
	Date        string                   `json:"date"`
	TotalSales  string                   `json:"total_sales"`
	TotalOrders int64                    `json:"total_orders"`
	Items       []dailySalesItemResponse `json:"items"`
}

func toMenuItemResponse(m queries.MenuItemResponse) menuItemResponse {
	return menuItemResponse{
		ID:    m.ID.String(),
		Name:  m.Name,
		Price: m.Price.String(),
	}
}

func toOrderResponse(o queries.GetOrderQueryResponse) orderResponse {
	items := make([]orderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = orderItemResponse{
			ID:           item.ID.String(),
			MenuItemID:   item.MenuItemID.String(),
			MenuItemName: item.MenuItemName,
			Price:        item.MenuItemPrice.String(),
			Quantity:     item.Quantity,
		}
	}

	return orderResponse{
		ID:          o.ID.String(),
		Status:      o.Status,
		TotalPrice:  o.TotalPrice.String(),
		CreatedAt:   o.CreatedAt,
		DeliveredAt: o.DeliveredAt,
		Items:       items,
	}
}

func toDashboardResponse(d queries.GetDashboardQueryResponse) dashboardResponse {
	return dashboardResponse{
		TotalSales:      d.TotalSales.String(),
		TotalOrders:     d.TotalOrders,
		MostOrderedItem: d.MostOrderedItem,
	}
}

func toDailySalesReportResponse(r queries.GetDailySalesReportQueryResponse) dailySalesReportResponse {
	items := make([]dailySalesItemResponse, len(r.Items))
	for i, item := range r.Items {
		items[i] = dailySalesItemResponse{
			MenuItemID:    item.MenuItemID.String(),
			MenuItemName:  item.MenuItemName,
			TotalQuantity: item.TotalQuantity,
			Revenue:       item.Revenue.String(),
		}
	}

	return dailySalesReportResponse{
		Date:        r.Date,
		TotalSales:  r.TotalSales.String(),
		TotalOrders: r.TotalOrders,
		Items:       items,
	}
}
