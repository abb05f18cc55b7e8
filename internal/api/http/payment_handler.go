package http

import (
	"net/http"

	"herramarket-frontdesk/internal/domain"
	"herramarket-frontdesk/internal/service"
	"herramarket-frontdesk/internal/upstream"
)

type PaymentHandler struct {
	payments service.PaymentService
}

func NewPaymentHandler(payments service.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// Search serves the admin dashboard's payment listing: payments joined with
// their reservation and client name, one row per payment even when lookups
// fail.
func (h *PaymentHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := upstream.PaymentFilter{
		Status: domain.PaymentStatus(query.Get("status")),
		From:   query.Get("from"),
		To:     query.Get("to"),
	}

	rows, err := h.payments.SearchWithClients(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
