package pricing

import (
	"testing"
	"time"

	"herramarket-frontdesk/internal/domain"

	"github.com/stretchr/testify/assert"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	assert.NoError(t, err)
	return d
}

func TestRentalDays(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected int
	}{
		{"Same day counts as one", "2024-01-15", "2024-01-15", 1},
		{"Consecutive days", "2024-01-15", "2024-01-16", 2},
		{"Five day span", "2024-01-15", "2024-01-19", 5},
		{"Cross month boundary", "2024-01-30", "2024-02-02", 4},
		{"Cross year boundary", "2023-12-30", "2024-01-02", 4},
		{"Leap day included", "2024-02-28", "2024-03-01", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := RentalDays(mustDate(t, tt.start), mustDate(t, tt.end))
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, days)
		})
	}

	t.Run("End before start", func(t *testing.T) {
		_, err := RentalDays(mustDate(t, "2024-01-20"), mustDate(t, "2024-01-15"))
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("Time of day is ignored", func(t *testing.T) {
		start := time.Date(2024, 1, 15, 23, 30, 0, 0, time.UTC)
		end := time.Date(2024, 1, 16, 0, 15, 0, 0, time.UTC)
		days, err := RentalDays(start, end)
		assert.NoError(t, err)
		assert.Equal(t, 2, days)
	})
}

func TestItemCost(t *testing.T) {
	t.Run("Three days two units", func(t *testing.T) {
		// Jan 15 to Jan 17 inclusive = 3 days * $25.00 * 2
		cost, err := ItemCost(mustDate(t, "2024-01-15"), mustDate(t, "2024-01-17"), 2500, 2)
		assert.NoError(t, err)
		assert.Equal(t, int64(15000), cost)
	})

	t.Run("Same day single unit", func(t *testing.T) {
		cost, err := ItemCost(mustDate(t, "2024-01-15"), mustDate(t, "2024-01-15"), 3000, 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(3000), cost)
	})

	t.Run("Invalid range propagates", func(t *testing.T) {
		_, err := ItemCost(mustDate(t, "2024-01-17"), mustDate(t, "2024-01-15"), 2500, 2)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})
}

func TestCartTotal(t *testing.T) {
	t.Run("Two items with differing ranges", func(t *testing.T) {
		// 3 days * $25 * 2 + 1 day * $30 * 1 = $180.00
		items := []domain.CartItem{
			{
				Tool:      domain.Tool{ID: 1, DailyPriceCents: 2500},
				Quantity:  2,
				StartDate: mustDate(t, "2024-01-15"),
				EndDate:   mustDate(t, "2024-01-17"),
			},
			{
				Tool:      domain.Tool{ID: 2, DailyPriceCents: 3000},
				Quantity:  1,
				StartDate: mustDate(t, "2024-01-15"),
				EndDate:   mustDate(t, "2024-01-15"),
			},
		}
		total, err := CartTotal(items)
		assert.NoError(t, err)
		assert.Equal(t, int64(18000), total)
	})

	t.Run("Empty cart totals zero", func(t *testing.T) {
		total, err := CartTotal(nil)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})

	t.Run("One bad range fails the total", func(t *testing.T) {
		items := []domain.CartItem{
			{
				Tool:      domain.Tool{ID: 1, DailyPriceCents: 2500},
				Quantity:  1,
				StartDate: mustDate(t, "2024-01-17"),
				EndDate:   mustDate(t, "2024-01-15"),
			},
		}
		_, err := CartTotal(items)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})
}
