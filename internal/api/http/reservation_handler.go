package http

import (
	"context"
	"net/http"

	"herramarket-frontdesk/internal/cart"
	"herramarket-frontdesk/internal/domain"
	"herramarket-frontdesk/internal/security"
	"herramarket-frontdesk/internal/service"
)

type ReservationHandler struct {
	reservations service.ReservationService
	carts        *cart.Store
}

func NewReservationHandler(reservations service.ReservationService, carts *cart.Store) *ReservationHandler {
	return &ReservationHandler{reservations: reservations, carts: carts}
}

// reservationView decorates a reservation with the status model's display
// strings so the dashboards render badges without their own lookup tables.
type reservationView struct {
	domain.Reservation
	StatusLabel       string `json:"statusLabel"`
	StatusExplanation string `json:"statusExplanation"`
	CanModify         bool   `json:"canModify"`
}

func newReservationView(res domain.Reservation) reservationView {
	return reservationView{
		Reservation:       res,
		StatusLabel:       res.Status.Label(),
		StatusExplanation: res.Status.Explanation(),
		CanModify:         res.Status.CanModify(),
	}
}

// Submit turns the caller's staged cart into a reservation.
func (h *ReservationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	claims, ok := security.ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	res, err := h.reservations.SubmitCart(r.Context(), claims.UserID, h.carts.ForUser(claims.UserID))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newReservationView(*res))
}

func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.reservations.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	views := make([]reservationView, len(reservations))
	for i, res := range reservations {
		views[i] = newReservationView(res)
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	res, err := h.reservations.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newReservationView(*res))
}

func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.reservations.Cancel)
}

func (h *ReservationHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.reservations.Accept)
}

func (h *ReservationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.reservations.Reject)
}

func (h *ReservationHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.reservations.Start)
}

func (h *ReservationHandler) Finish(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.reservations.Finish)
}

func (h *ReservationHandler) transition(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, id int64) (*domain.Reservation, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	res, err := action(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newReservationView(*res))
}
