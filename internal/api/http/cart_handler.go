package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"herramarket-frontdesk/internal/cart"
	"herramarket-frontdesk/internal/domain"
	"herramarket-frontdesk/internal/pricing"
	"herramarket-frontdesk/internal/security"
	"herramarket-frontdesk/internal/service"
	"herramarket-frontdesk/internal/upstream"
)

// CartHandler serves the client dashboard's staging cart. Quantity and date
// validation happens here, at the caller level; the cart itself stores
// whatever it is handed.
type CartHandler struct {
	carts   *cart.Store
	backend upstream.Client
}

func NewCartHandler(carts *cart.Store, backend upstream.Client) *CartHandler {
	return &CartHandler{carts: carts, backend: backend}
}

type cartLineRequest struct {
	ToolID    int64  `json:"toolId"`
	Quantity  int    `json:"quantity"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type cartResponse struct {
	Items           []domain.CartItem `json:"items"`
	TotalItems      int               `json:"totalItems"`
	TotalPriceCents int64             `json:"totalPriceCents"`
}

func (h *CartHandler) userCart(r *http.Request) (*cart.Cart, error) {
	claims, ok := security.ClaimsFromContext(r.Context())
	if !ok {
		return nil, fmt.Errorf("not authenticated")
	}
	return h.carts.ForUser(claims.UserID), nil
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.userCart(r)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
		return
	}
	h.writeCart(w, c)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	c, err := h.userCart(r)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
		return
	}

	req, start, end, ok := h.decodeLine(w, r)
	if !ok {
		return
	}

	// Snapshot the tool now; pricing uses this snapshot until submission.
	tool, err := h.backend.GetTool(r.Context(), req.ToolID)
	if err != nil {
		writeError(w, err)
		return
	}
	if req.Quantity > tool.AvailableQuantity {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: fmt.Sprintf("quantity %d exceeds availability %d", req.Quantity, tool.AvailableQuantity),
		})
		return
	}

	c.AddItem(*tool, req.Quantity, start, end)
	h.writeCart(w, c)
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	c, err := h.userCart(r)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
		return
	}

	toolID, err := pathID(r, "toolId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	req, start, end, ok := h.decodeLine(w, r)
	if !ok {
		return
	}

	c.UpdateItem(toolID, req.Quantity, start, end)
	h.writeCart(w, c)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	c, err := h.userCart(r)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
		return
	}

	toolID, err := pathID(r, "toolId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	c.RemoveItem(toolID)
	h.writeCart(w, c)
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	c, err := h.userCart(r)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
		return
	}
	c.Clear()
	h.writeCart(w, c)
}

// decodeLine parses and validates the shared request shape of AddItem and
// UpdateItem. Reports false after writing the error response.
func (h *CartHandler) decodeLine(w http.ResponseWriter, r *http.Request) (cartLineRequest, time.Time, time.Time, bool) {
	var req cartLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return req, time.Time{}, time.Time{}, false
	}
	if req.Quantity < 1 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "quantity must be at least 1"})
		return req, time.Time{}, time.Time{}, false
	}

	start, err := pricing.ParseDate(req.StartDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return req, time.Time{}, time.Time{}, false
	}
	end, err := pricing.ParseDate(req.EndDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return req, time.Time{}, time.Time{}, false
	}
	if _, err := pricing.RentalDays(start, end); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return req, time.Time{}, time.Time{}, false
	}
	return req, start, end, true
}

func (h *CartHandler) writeCart(w http.ResponseWriter, c *cart.Cart) {
	total, err := c.TotalPriceCents()
	if err != nil {
		// Lines are validated on the way in, so a pricing failure here means
		// a stale line slipped through; surface it as a validation problem.
		writeError(w, fmt.Errorf("%w: %s", service.ErrValidation, err))
		return
	}
	writeJSON(w, http.StatusOK, cartResponse{
		Items:           c.Items(),
		TotalItems:      c.TotalItems(),
		TotalPriceCents: total,
	})
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}
