// Package cart holds the in-session shopping cart. A cart lives exactly as
// long as its owning session and is never persisted or shared.
package cart

import "zouqly-storefront/internal/domain"

// Cart is an ordered collection of lines, one per product id, insertion
// order preserved for display. Mutations never fail: out-of-range input is
// clamped or ignored. Aggregates are recomputed on read.
//
// Cart is not safe for concurrent use; the owning session serializes access.
type Cart struct {
	lines []domain.CartLine
}

func New() *Cart {
	return &Cart{}
}

// AddItem merges quantity into the existing line for the product, or
// appends a new line. Quantities below 1 count as 1.
func (c *Cart) AddItem(p domain.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Quantity += quantity
			return
		}
	}
	c.lines = append(c.lines, domain.CartLine{Product: p, Quantity: quantity})
}

// UpdateQuantity sets the quantity for the product's line, clamping values
// below 1 to 1. It never removes the line; unknown ids are a no-op.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == id {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem deletes the line for id if present.
func (c *Cart) RemoveItem(id string) {
	for i := range c.lines {
		if c.lines[i].Product.ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Safe to call repeatedly.
func (c *Cart) Clear() {
	c.lines = nil
}

// Count is the sum of all line quantities, 0 for an empty cart.
func (c *Cart) Count() int {
	var n int
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Subtotal is the sum of price*quantity over all lines, 0 for an empty cart.
func (c *Cart) Subtotal() int64 {
	var sum int64
	for _, l := range c.lines {
		sum += l.Total()
	}
	return sum
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}
