// Package cart holds the client-local staging area for to-be-reserved tool
// lines. Carts live in memory only; submitting a reservation is what makes
// the lines durable, on the backend's side.
package cart

import (
	"sync"
	"time"

	"herramarket-frontdesk/internal/domain"
	"herramarket-frontdesk/internal/pricing"
)

// Cart is an ordered collection of cart items, unique per tool ID. Insertion
// order is preserved for display. Quantity and availability validation is the
// caller's responsibility; the cart itself accepts whatever it is given.
type Cart struct {
	mu    sync.Mutex
	items []domain.CartItem
}

func New() *Cart {
	return &Cart{}
}

// AddItem appends a line for the tool, or merges into an existing line for
// the same tool ID by summing quantities and overwriting the dates with the
// new values.
func (c *Cart) AddItem(tool domain.Tool, quantity int, start, end time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Tool.ID == tool.ID {
			c.items[i].Quantity += quantity
			c.items[i].StartDate = start
			c.items[i].EndDate = end
			return
		}
	}
	c.items = append(c.items, domain.CartItem{
		Tool:      tool,
		Quantity:  quantity,
		StartDate: start,
		EndDate:   end,
	})
}

// UpdateItem replaces quantity and dates for the matching line. No-op when
// the tool is not in the cart.
func (c *Cart) UpdateItem(toolID int64, quantity int, start, end time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Tool.ID == toolID {
			c.items[i].Quantity = quantity
			c.items[i].StartDate = start
			c.items[i].EndDate = end
			return
		}
	}
}

// RemoveItem removes the matching line. No-op when absent.
func (c *Cart) RemoveItem(toolID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Tool.ID == toolID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []domain.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of distinct tool lines.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// TotalItems returns the sum of quantities across lines.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// TotalPriceCents prices every line with its own date range and sums them.
func (c *Cart) TotalPriceCents() (int64, error) {
	return pricing.CartTotal(c.Items())
}
