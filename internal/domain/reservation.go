package domain

type ReservationStatus string

const (
	ReservationStatusPending    ReservationStatus = "PENDING"
	ReservationStatusConfirmed  ReservationStatus = "CONFIRMED"
	ReservationStatusInProgress ReservationStatus = "IN_PROGRESS"
	ReservationStatusFinished   ReservationStatus = "FINISHED"
	ReservationStatusCancelled  ReservationStatus = "CANCELLED"
	ReservationStatusInIncident ReservationStatus = "IN_INCIDENT"
)

// CanModify reports whether a reservation in this status can still be acted
// on. CANCELLED, FINISHED and IN_INCIDENT are terminal.
func (s ReservationStatus) CanModify() bool {
	switch s {
	case ReservationStatusCancelled, ReservationStatusFinished, ReservationStatusInIncident:
		return false
	default:
		return true
	}
}

var reservationLabels = map[ReservationStatus]string{
	ReservationStatusPending:    "Pendiente",
	ReservationStatusConfirmed:  "Confirmada",
	ReservationStatusInProgress: "En curso",
	ReservationStatusFinished:   "Finalizada",
	ReservationStatusCancelled:  "Cancelada",
	ReservationStatusInIncident: "En incidencia",
}

var reservationExplanations = map[ReservationStatus]string{
	ReservationStatusPending:    "La reserva está esperando la confirmación del proveedor.",
	ReservationStatusConfirmed:  "El proveedor aceptó la reserva y las herramientas están apartadas.",
	ReservationStatusInProgress: "Las herramientas están en manos del cliente durante el periodo de alquiler.",
	ReservationStatusFinished:   "La devolución fue recibida y la reserva quedó cerrada.",
	ReservationStatusCancelled:  "La reserva fue cancelada antes de confirmarse.",
	ReservationStatusInIncident: "Una devolución llegó dañada y la reserva quedó en incidencia.",
}

// Label returns the display name for the status. Unknown values map to an
// explicit fallback instead of an empty string.
func (s ReservationStatus) Label() string {
	if label, ok := reservationLabels[s]; ok {
		return label
	}
	return "Desconocido"
}

// Explanation returns the human-readable description shown next to the badge.
func (s ReservationStatus) Explanation() string {
	if msg, ok := reservationExplanations[s]; ok {
		return msg
	}
	return "Estado desconocido."
}

// BlockedMessage returns the message shown when a modification is rejected
// because the reservation reached a terminal status. Empty for modifiable
// statuses.
func (s ReservationStatus) BlockedMessage() string {
	switch s {
	case ReservationStatusCancelled:
		return "La reserva fue cancelada y ya no puede modificarse."
	case ReservationStatusFinished:
		return "La reserva ya finalizó y no admite cambios."
	case ReservationStatusInIncident:
		return "La reserva está en incidencia; contacta al proveedor."
	default:
		return ""
	}
}

var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationStatusPending:    {ReservationStatusConfirmed, ReservationStatusCancelled, ReservationStatusInIncident},
	ReservationStatusConfirmed:  {ReservationStatusInProgress, ReservationStatusInIncident},
	ReservationStatusInProgress: {ReservationStatusFinished, ReservationStatusInIncident},
}

// CanTransitionTo reports whether the backend would accept moving the
// reservation from s to next. The backend owns the transition itself; this is
// the client-side guard that keeps dashboards from issuing doomed requests.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range reservationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Reservation struct {
	ID              int64               `json:"id"`
	ClientID        int64               `json:"clientId"`
	SupplierID      int64               `json:"supplierId"`
	StartDate       string              `json:"startDate"`
	EndDate         string              `json:"endDate"`
	TotalPriceCents int64               `json:"totalPriceCents"`
	Status          ReservationStatus   `json:"status"`
	Details         []ReservationDetail `json:"details,omitempty"`
	CreatedOn       string              `json:"createdOn,omitempty"`
}

// ReservationDetail is one tool line inside a reservation. Subtotal is
// snapshotted at submission time and never recomputed.
type ReservationDetail struct {
	ID               int64  `json:"id"`
	ReservationID    int64  `json:"reservationId"`
	ToolID           int64  `json:"toolId"`
	ToolName         string `json:"toolName"`
	Quantity         int    `json:"quantity"`
	PricePerDayCents int64  `json:"pricePerDayCents"`
	SubtotalCents    int64  `json:"subtotalCents"`
}
