package menu

import (
	"errors"
	"strings"
	"unicode/utf8"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// MaxNameLength is the longest accepted menu item name, in characters.
const MaxNameLength = 255

var (
	// ErrMenuItemIsNotConstructed is returned for a MenuItem built without NewMenuItem or RestoreMenuItem.
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")
)

// MenuItem is a dish on the menu.
//
// Invariants:
//   - id is a valid UUID
//   - name is non-empty after trimming and at most MaxNameLength characters
//   - price is a valid, non-negative Price
type MenuItem struct {
	id    kernel.UUID
	name  string
	price kernel.Price

	isConstructed bool
}

// NewMenuItem validates all fields and returns a new menu item.
// Every failing field is reported, joined into one error.
func NewMenuItem(id kernel.UUID, name string, price kernel.Price) (*MenuItem, error) {
	item := &MenuItem{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreMenuItem rebuilds a menu item loaded from storage.
func RestoreMenuItem(id kernel.UUID, name string, price kernel.Price) (*MenuItem, error) {
	return NewMenuItem(id, name, price)
}

// Validate reports whether the item was built through a constructor.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

func (m *MenuItem) Name() string {
	return m.name
}

func (m *MenuItem) Price() kernel.Price {
	return m.price
}

// Rename replaces the name; the item is unchanged on error.
func (m *MenuItem) Rename(name string) error {
	return m.setName(name)
}

// ChangePrice replaces the current price. Orders already placed keep their
// stored total; reports computed afterwards use the new price.
func (m *MenuItem) ChangePrice(price kernel.Price) error {
	return m.setPrice(price)
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if length := utf8.RuneCountInString(name); length > MaxNameLength {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"name length", length, 1, MaxNameLength,
			errors.New("name is too long"),
		)
	}
	m.name = name
	return nil
}

func (m *MenuItem) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	m.price = price
	return nil
}
