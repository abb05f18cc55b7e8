package domain

import "time"

type ToolStatus string

const (
	ToolStatusAvailable   ToolStatus = "AVAILABLE"
	ToolStatusUnavailable ToolStatus = "UNAVAILABLE"
	ToolStatusUnderRepair ToolStatus = "UNDER_REPAIR"
)

type Tool struct {
	ID                int64      `json:"id"`
	SupplierID        int64      `json:"supplierId"`
	Name              string     `json:"name"`
	Description       string     `json:"description,omitempty"`
	DailyPriceCents   int64      `json:"dailyPriceCents"`
	AvailableQuantity int        `json:"availableQuantity"`
	Status            ToolStatus `json:"status"`
}

// CartItem is one staged line in a client's cart. Items are keyed by tool ID
// and exist only until the cart is submitted as a reservation.
type CartItem struct {
	Tool      Tool      `json:"tool"`
	Quantity  int       `json:"quantity"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}
