package domain

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

type Payment struct {
	ID            int64         `json:"id"`
	ReservationID int64         `json:"reservationId"`
	Status        PaymentStatus `json:"status"`
	AmountCents   int64         `json:"amountCents"`
	PaymentDate   string        `json:"paymentDate"`
}

// PaymentWithClient is the denormalized admin-dashboard row assembled by the
// resolver from three separate backend endpoints. It is built per query and
// never persisted.
type PaymentWithClient struct {
	Payment          Payment      `json:"payment"`
	Reservation      *Reservation `json:"reservation,omitempty"`
	ClientID         int64        `json:"clientId,omitempty"`
	ClienteNombre    string       `json:"clienteNombre,omitempty"`
	ReservationError bool         `json:"reservationError"`
	ErrorMessage     string       `json:"errorMessage,omitempty"`
}
