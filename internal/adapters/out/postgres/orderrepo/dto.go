// Package orderrepo maps the order aggregate to the orders and order_items tables.
package orderrepo

import (
	"time"

	"restaurant/internal/adapters/out/postgres/menurepo"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. The composite index serves the daily report,
// which filters delivered orders by delivery time.
type OrderDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Status      int             `gorm:"type:smallint;not null;index:idx_orders_status_delivered_at,priority:1"`
	TotalPrice  decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt   time.Time       `gorm:"type:timestamptz;not null"`
	DeliveredAt *time.Time      `gorm:"type:timestamptz;index:idx_orders_status_delivered_at,priority:2"`
	Items       []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is the order_items row. Position keeps the items in the order
// they were requested.
type OrderItemDTO struct {
	ID         uuid.UUID             `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID             `gorm:"type:uuid;not null;index"`
	MenuItemID uuid.UUID             `gorm:"type:uuid;not null;index"`
	Quantity   int                   `gorm:"type:int;not null;check:chk_order_items_quantity,quantity > 0"`
	Position   int                   `gorm:"type:int;not null"`
	MenuItem   *menurepo.MenuItemDTO `gorm:"foreignKey:MenuItemID;constraint:OnDelete:RESTRICT"`
}

// TableName overrides GORM's default naming convention to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:         item.ID().Bytes(),
			OrderID:    orderID,
			MenuItemID: item.MenuItemID().Bytes(),
			Quantity:   item.Quantity(),
			Position:   i,
		})
	}

	return OrderDTO{
		ID:          orderID,
		Status:      int(aggregate.Status()),
		TotalPrice:  aggregate.TotalPrice().Decimal(),
		CreatedAt:   aggregate.CreatedAt(),
		DeliveredAt: aggregate.DeliveredAt(),
		Items:       items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewPrice(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var deliveredAt *time.Time
	if dto.DeliveredAt != nil {
		at := dto.DeliveredAt.UTC()
		deliveredAt = &at
	}

	return order.RestoreOrder(id, order.Status(dto.Status), total, dto.CreatedAt.UTC(), deliveredAt, items)
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, menuItemID, dto.Quantity)
}
