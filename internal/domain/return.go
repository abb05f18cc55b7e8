package domain

import "time"

type ReturnStatus string

const (
	ReturnStatusPending  ReturnStatus = "PENDING"
	ReturnStatusSent     ReturnStatus = "SENT"
	ReturnStatusReceived ReturnStatus = "RECEIVED"
	ReturnStatusDamaged  ReturnStatus = "DAMAGED"
)

// IsTerminal reports whether the return reached a final status. RECEIVED and
// DAMAGED are confirmed by the supplier and close the return.
func (s ReturnStatus) IsTerminal() bool {
	return s == ReturnStatusReceived || s == ReturnStatusDamaged
}

var returnTransitions = map[ReturnStatus][]ReturnStatus{
	ReturnStatusPending: {ReturnStatusSent},
	ReturnStatusSent:    {ReturnStatusReceived, ReturnStatusDamaged},
}

// CanTransitionTo reports whether moving the return from s to next is a legal
// lifecycle step: PENDING -> SENT -> RECEIVED | DAMAGED.
func (s ReturnStatus) CanTransitionTo(next ReturnStatus) bool {
	for _, allowed := range returnTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

var returnLabels = map[ReturnStatus]string{
	ReturnStatusPending:  "Pendiente de envío",
	ReturnStatusSent:     "Enviada",
	ReturnStatusReceived: "Recibida",
	ReturnStatusDamaged:  "Dañada",
}

// Label returns the display name for the status, with the same explicit
// fallback as reservation statuses.
func (s ReturnStatus) Label() string {
	if label, ok := returnLabels[s]; ok {
		return label
	}
	return "Desconocido"
}

var returnMessages = map[ReturnStatus]map[Role]string{
	ReturnStatusPending: {
		RoleClient:   "Prepara las herramientas y confirma el envío cuando salgan.",
		RoleSupplier: "El cliente aún no envía las herramientas.",
		RoleAdmin:    "Devolución creada, pendiente de envío por el cliente.",
	},
	ReturnStatusSent: {
		RoleClient:   "Las herramientas van en camino al proveedor.",
		RoleSupplier: "Revisa el paquete al llegar y confirma la recepción.",
		RoleAdmin:    "Devolución en tránsito hacia el proveedor.",
	},
	ReturnStatusReceived: {
		RoleClient:   "El proveedor recibió las herramientas en buen estado.",
		RoleSupplier: "Recepción confirmada; la reserva quedó finalizada.",
		RoleAdmin:    "Devolución recibida sin incidencias.",
	},
	ReturnStatusDamaged: {
		RoleClient:   "El proveedor reportó daños; la reserva pasó a incidencia.",
		RoleSupplier: "Daños reportados; la herramienta quedó en reparación.",
		RoleAdmin:    "Devolución con daños, reserva en incidencia.",
	},
}

// Message returns the per-role explanation for the status. Total over both
// enums: unknown combinations fall back instead of rendering nothing.
func (s ReturnStatus) Message(role Role) string {
	if byRole, ok := returnMessages[s]; ok {
		if msg, ok := byRole[role]; ok {
			return msg
		}
	}
	return "Estado desconocido."
}

type Return struct {
	ID            int64          `json:"id"`
	ReservationID int64          `json:"reservationId"`
	ClientID      int64          `json:"clientId"`
	SupplierID    int64          `json:"supplierId"`
	Status        ReturnStatus   `json:"status"`
	CreatedAt     time.Time      `json:"createdAt"`
	SentAt        *time.Time     `json:"sentAt,omitempty"`
	ReceivedAt    *time.Time     `json:"receivedAt,omitempty"`
	Details       []ReturnDetail `json:"details,omitempty"`
	Notes         string         `json:"notes,omitempty"`
}

// ReturnDetail is one tool line inside a return. QuantityToReturn must stay
// within (0, QuantityReserved].
type ReturnDetail struct {
	ID               int64  `json:"id"`
	ReturnID         int64  `json:"returnId"`
	ToolID           int64  `json:"toolId"`
	ToolName         string `json:"toolName"`
	QuantityReserved int    `json:"quantityReserved"`
	QuantityToReturn int    `json:"quantityToReturn"`
	Notes            string `json:"notes,omitempty"`
}
