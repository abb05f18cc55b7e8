package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"herramarket-frontdesk/internal/domain"
	"herramarket-frontdesk/internal/security"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Cart        *CartHandler
	Reservation *ReservationHandler
	Return      *ReturnHandler
	Payment     *PaymentHandler
}

// NewRouter wires the dashboard API under /api/v1 with request-ID, logging
// and bearer-token auth, plus per-route role guards.
func NewRouter(verifier security.TokenVerifier, h Handlers) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestID, RequestLogging)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(mux.MiddlewareFunc(Authenticate(verifier)))

	clientOnly := RequireRole(domain.RoleClient)
	supplierOnly := RequireRole(domain.RoleSupplier)
	adminOnly := RequireRole(domain.RoleAdmin)

	// Cart: client staging area.
	api.Handle("/cart", clientOnly(http.HandlerFunc(h.Cart.Get))).Methods(http.MethodGet)
	api.Handle("/cart", clientOnly(http.HandlerFunc(h.Cart.Clear))).Methods(http.MethodDelete)
	api.Handle("/cart/items", clientOnly(http.HandlerFunc(h.Cart.AddItem))).Methods(http.MethodPost)
	api.Handle("/cart/items/{toolId}", clientOnly(http.HandlerFunc(h.Cart.UpdateItem))).Methods(http.MethodPut)
	api.Handle("/cart/items/{toolId}", clientOnly(http.HandlerFunc(h.Cart.RemoveItem))).Methods(http.MethodDelete)

	// Reservations: clients create and cancel, suppliers drive the rest of
	// the lifecycle, everyone authenticated can read.
	api.HandleFunc("/reservations", h.Reservation.List).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{id}", h.Reservation.Get).Methods(http.MethodGet)
	api.Handle("/reservations", clientOnly(http.HandlerFunc(h.Reservation.Submit))).Methods(http.MethodPost)
	api.Handle("/reservations/{id}/cancel", clientOnly(http.HandlerFunc(h.Reservation.Cancel))).Methods(http.MethodPost)
	api.Handle("/reservations/{id}/accept", supplierOnly(http.HandlerFunc(h.Reservation.Accept))).Methods(http.MethodPost)
	api.Handle("/reservations/{id}/reject", supplierOnly(http.HandlerFunc(h.Reservation.Reject))).Methods(http.MethodPost)
	api.Handle("/reservations/{id}/start", supplierOnly(http.HandlerFunc(h.Reservation.Start))).Methods(http.MethodPost)
	api.Handle("/reservations/{id}/finish", supplierOnly(http.HandlerFunc(h.Reservation.Finish))).Methods(http.MethodPost)

	// Returns: client creates and ships, supplier confirms the outcome.
	api.HandleFunc("/returns", h.Return.List).Methods(http.MethodGet)
	api.HandleFunc("/returns/{id}", h.Return.Get).Methods(http.MethodGet)
	api.Handle("/returns", clientOnly(http.HandlerFunc(h.Return.Create))).Methods(http.MethodPost)
	api.Handle("/returns/{id}/send", clientOnly(http.HandlerFunc(h.Return.Send))).Methods(http.MethodPost)
	api.Handle("/returns/{id}/receive", supplierOnly(http.HandlerFunc(h.Return.Receive))).Methods(http.MethodPost)
	api.Handle("/returns/{id}/damage", supplierOnly(http.HandlerFunc(h.Return.ReportDamage))).Methods(http.MethodPost)

	// Payments: admin dashboard only.
	api.Handle("/payments", adminOnly(http.HandlerFunc(h.Payment.Search))).Methods(http.MethodGet)

	return router
}
