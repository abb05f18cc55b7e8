package pricing

import (
	"errors"
	"fmt"
	"time"

	"herramarket-frontdesk/internal/domain"
)

// ErrInvalidDateRange is returned when the end date falls before the start
// date. Same-day ranges are valid and count as one rental day.
var ErrInvalidDateRange = errors.New("end date must be on or after start date")

// ParseDate converts a yyyy-mm-dd formatted string into a time.Time.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	return t, nil
}

// RentalDays counts the calendar days covered by a rental, inclusive of both
// endpoints: the difference in days plus one. Renting on a single day costs
// one day, not zero.
func RentalDays(start, end time.Time) (int, error) {
	s := toCivilDay(start)
	e := toCivilDay(end)
	if e.Before(s) {
		return 0, ErrInvalidDateRange
	}
	return int(e.Sub(s).Hours()/24) + 1, nil
}

// ItemCost computes rentalDays * dailyPrice * quantity for one cart line.
func ItemCost(start, end time.Time, dailyPriceCents int64, quantity int) (int64, error) {
	days, err := RentalDays(start, end)
	if err != nil {
		return 0, err
	}
	return int64(days) * dailyPriceCents * int64(quantity), nil
}

// CartTotal sums ItemCost over the lines, each with its own date range. The
// dashboards currently apply one shared range to every line, but per-line
// ranges are priced correctly here.
func CartTotal(items []domain.CartItem) (int64, error) {
	var total int64
	for _, item := range items {
		cost, err := ItemCost(item.StartDate, item.EndDate, item.Tool.DailyPriceCents, item.Quantity)
		if err != nil {
			return 0, err
		}
		total += cost
	}
	return total, nil
}

// toCivilDay strips the time-of-day and zone so day arithmetic is immune to
// DST offsets in the inputs.
func toCivilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
