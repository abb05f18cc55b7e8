package cart

import (
	"testing"
	"time"

	"herramarket-frontdesk/internal/domain"

	"github.com/stretchr/testify/assert"
)

var (
	drill = domain.Tool{ID: 1, Name: "Taladro", DailyPriceCents: 2500, AvailableQuantity: 5}
	saw   = domain.Tool{ID: 2, Name: "Sierra", DailyPriceCents: 3000, AvailableQuantity: 3}
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	assert.NoError(t, err)
	return d
}

func TestCart_AddItem(t *testing.T) {
	t.Run("Appends new lines in insertion order", func(t *testing.T) {
		c := New()
		c.AddItem(drill, 2, day(t, "2024-01-15"), day(t, "2024-01-17"))
		c.AddItem(saw, 1, day(t, "2024-01-15"), day(t, "2024-01-15"))

		items := c.Items()
		assert.Len(t, items, 2)
		assert.Equal(t, drill.ID, items[0].Tool.ID)
		assert.Equal(t, saw.ID, items[1].Tool.ID)
	})

	t.Run("Merges same tool summing quantity with last-write-wins dates", func(t *testing.T) {
		c := New()
		c.AddItem(drill, 2, day(t, "2024-01-15"), day(t, "2024-01-17"))
		c.AddItem(drill, 3, day(t, "2024-02-01"), day(t, "2024-02-03"))

		items := c.Items()
		assert.Len(t, items, 1)
		assert.Equal(t, 5, items[0].Quantity)
		assert.Equal(t, day(t, "2024-02-01"), items[0].StartDate)
		assert.Equal(t, day(t, "2024-02-03"), items[0].EndDate)
	})

	t.Run("TotalItems sums quantities across repeated adds", func(t *testing.T) {
		c := New()
		for _, q := range []int{1, 2, 4} {
			c.AddItem(drill, q, day(t, "2024-01-15"), day(t, "2024-01-17"))
		}
		assert.Equal(t, 7, c.TotalItems())
		assert.Equal(t, 1, c.Len())
	})
}

func TestCart_UpdateItem(t *testing.T) {
	t.Run("Replaces quantity and dates", func(t *testing.T) {
		c := New()
		c.AddItem(drill, 2, day(t, "2024-01-15"), day(t, "2024-01-17"))
		c.UpdateItem(drill.ID, 1, day(t, "2024-03-01"), day(t, "2024-03-02"))

		items := c.Items()
		assert.Equal(t, 1, items[0].Quantity)
		assert.Equal(t, day(t, "2024-03-01"), items[0].StartDate)
	})

	t.Run("No-op when absent", func(t *testing.T) {
		c := New()
		c.UpdateItem(99, 3, day(t, "2024-01-15"), day(t, "2024-01-17"))
		assert.Equal(t, 0, c.Len())
	})

	t.Run("Remove then update leaves the cart unchanged", func(t *testing.T) {
		c := New()
		c.AddItem(drill, 2, day(t, "2024-01-15"), day(t, "2024-01-17"))
		c.RemoveItem(drill.ID)
		c.UpdateItem(drill.ID, 4, day(t, "2024-01-15"), day(t, "2024-01-17"))
		assert.Equal(t, 0, c.Len())
	})
}

func TestCart_RemoveItem(t *testing.T) {
	c := New()
	c.AddItem(drill, 2, day(t, "2024-01-15"), day(t, "2024-01-17"))
	c.AddItem(saw, 1, day(t, "2024-01-15"), day(t, "2024-01-15"))

	c.RemoveItem(drill.ID)
	items := c.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, saw.ID, items[0].Tool.ID)

	// Removing a tool that is not there is a no-op.
	c.RemoveItem(99)
	assert.Equal(t, 1, c.Len())
}

func TestCart_Clear(t *testing.T) {
	c := New()
	c.AddItem(drill, 2, day(t, "2024-01-15"), day(t, "2024-01-17"))
	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.TotalItems())
}

func TestCart_TotalPriceCents(t *testing.T) {
	// 3 days * $25 * 2 + 1 day * $30 * 1 = $180.00
	c := New()
	c.AddItem(drill, 2, day(t, "2024-01-15"), day(t, "2024-01-17"))
	c.AddItem(saw, 1, day(t, "2024-01-15"), day(t, "2024-01-15"))

	total, err := c.TotalPriceCents()
	assert.NoError(t, err)
	assert.Equal(t, int64(18000), total)
}

func TestStore(t *testing.T) {
	s := NewStore()

	t.Run("Same user gets the same cart", func(t *testing.T) {
		a := s.ForUser(1)
		a.AddItem(drill, 1, day(t, "2024-01-15"), day(t, "2024-01-17"))
		b := s.ForUser(1)
		assert.Equal(t, 1, b.Len())
	})

	t.Run("Users are isolated", func(t *testing.T) {
		other := s.ForUser(2)
		assert.Equal(t, 0, other.Len())
	})

	t.Run("Drop forgets the cart", func(t *testing.T) {
		s.Drop(1)
		assert.Equal(t, 0, s.ForUser(1).Len())
	})
}
