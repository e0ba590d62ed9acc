package order

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of a customer purchase. It exclusively owns its items.
//
// Order follows these invariants:
//   - Holds at least one item
//   - totalPrice is Σ price × quantity over the items, fixed when the order is placed
//   - Status only moves forward along Pending → Cooking → Ready → Delivered
//   - deliveredAt is set exactly once, when the order enters Delivered
type Order struct {
	id          kernel.UUID
	status      Status
	items       []*Item
	totalPrice  kernel.Price
	createdAt   time.Time
	deliveredAt *time.Time

	domainEvents []DomainEvent

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder places a new order in Pending status.
//
// Each line becomes one Item, even when several lines name the same menu item.
// The total is computed from the menu items' current prices and never
// recomputed afterwards.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), []order.Line{
//	    {MenuItem: burger, Quantity: 2},
//	    {MenuItem: fries, Quantity: 1},
//	}, time.Now())
func NewOrder(id kernel.UUID, lines []Line, createdAt time.Time) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredErrorWithCause("items", errors.New("order must contain items"))
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("created at")
	}

	items := make([]*Item, 0, len(lines))
	total := kernel.ZeroPrice()
	lineErrs := make([]error, 0)
	for i, line := range lines {
		if err := line.MenuItem.Validate(); err != nil {
			lineErrs = append(lineErrs, fmt.Errorf("item %d: %w", i, err))
			continue
		}
		item, err := NewItem(kernel.NewUUID(), line.MenuItem.ID(), line.Quantity)
		if err != nil {
			lineErrs = append(lineErrs, fmt.Errorf("item %d: %w", i, err))
			continue
		}
		items = append(items, item)
		total = total.Add(line.MenuItem.Price().Mul(line.Quantity))
	}
	if err := errors.Join(lineErrs...); err != nil {
		return nil, err
	}
	if _, err := kernel.NewPrice(total.Decimal()); err != nil {
		return nil, fmt.Errorf("total price: %w", err)
	}

	o := &Order{
		id:            id,
		status:        Pending,
		items:         items,
		totalPrice:    total,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}
	o.raise(EventOrderPlaced, Unknown, o.createdAt)

	return o, nil
}

// RestoreOrder rebuilds an order loaded from storage and checks its invariants.
// No events are recorded.
func RestoreOrder(
	id kernel.UUID,
	status Status,
	totalPrice kernel.Price,
	createdAt time.Time,
	deliveredAt *time.Time,
	items []*Item,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		status.Validate(),
		totalPrice.Validate(),
	); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredErrorWithCause("items", errors.New("order must contain items"))
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	if (status == Delivered) != (deliveredAt != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"delivered at is invalid",
			fmt.Errorf("status %s does not match delivered at %v", status, deliveredAt),
		)
	}

	return &Order{
		id:            id,
		status:        status,
		items:         items,
		totalPrice:    totalPrice,
		createdAt:     createdAt,
		deliveredAt:   deliveredAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the order's items.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) TotalPrice() kernel.Price {
	return o.totalPrice
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DeliveredAt is nil until the order is delivered.
func (o *Order) DeliveredAt() *time.Time {
	if o.deliveredAt == nil {
		return nil
	}
	t := *o.deliveredAt
	return &t
}

// ChangeStatus moves the order to next at time at.
//
// Only Pending → Cooking, Cooking → Ready and Ready → Delivered are accepted;
// every other request returns a StatusTransitionIsInvalidError and leaves the
// order untouched. Entering Delivered stamps deliveredAt unless it is already set.
func (o *Order) ChangeStatus(next Status, at time.Time) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	previous := o.status
	o.status = newStatus
	if newStatus == Delivered && o.deliveredAt == nil {
		deliveredAt := at.UTC()
		o.deliveredAt = &deliveredAt
	}
	o.raise(EventOrderStatusChanged, previous, at.UTC())

	return nil
}

// DomainEvents returns the events recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []DomainEvent {
	events := make([]DomainEvent, len(o.domainEvents))
	copy(events, o.domainEvents)
	return events
}

func (o *Order) ClearDomainEvents() {
	o.domainEvents = nil
}

func (o *Order) raise(name string, previous Status, at time.Time) {
	o.domainEvents = append(o.domainEvents, DomainEvent{
		Name:           name,
		OrderID:        o.id,
		PreviousStatus: previous,
		Status:         o.status,
		TotalPrice:     o.totalPrice,
		OccurredAt:     at,
	})
}
