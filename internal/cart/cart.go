// Package cart holds an employee's unsubmitted selection. Lines are keyed by
// (product id, unit): the same key merges by summing, a different unit is a
// separate line.
package cart

import (
	"supplydesk/internal/contract"
	"supplydesk/internal/order"
)

// Cart is owned by a single session and is not safe for concurrent use.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add merges into the matching line or appends a new one. Stock is not
// checked.
func (c *Cart) Add(p contract.Product, quantity int, unit order.Unit) error {
	if p.ID == 0 {
		return ErrInvalidProduct
	}
	if !unit.Valid() {
		return ErrInvalidUnit
	}

	quantity = NormalizeQuantity(quantity)
	k := lineKey{productID: p.ID, unit: unit}

	for i := range c.lines {
		if c.lines[i].key() == k {
			c.lines[i].Quantity += quantity
			return nil
		}
	}

	c.lines = append(c.lines, Line{Product: p, Quantity: quantity, Unit: unit})
	return nil
}

// Remove deletes the whole line for (productID, unit).
func (c *Cart) Remove(productID int64, unit order.Unit) error {
	k := lineKey{productID: productID, unit: unit}
	for i := range c.lines {
		if c.lines[i].key() == k {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
	}
	return ErrCartItemNotFound
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// TotalUnits sums quantities across lines regardless of unit.
func (c *Cart) TotalUnits() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}
