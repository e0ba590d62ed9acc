package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order with its items.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	o, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the order read model.
// Item prices are the current menu prices, TotalPrice is the amount fixed
// when the order was placed.
type GetOrderQueryResponse struct {
	ID          kernel.UUID
	Status      string
	TotalPrice  kernel.Price
	CreatedAt   time.Time
	DeliveredAt *time.Time
	Items       []GetOrderQueryItem
}

type GetOrderQueryItem struct {
	ID            kernel.UUID
	MenuItemID    kernel.UUID
	MenuItemName  string
	MenuItemPrice kernel.Price
	Quantity      int
}
