package http

import (
	"context"
	"net/http"

	"herramarket-frontdesk/internal/domain"
	"herramarket-frontdesk/internal/security"
	"herramarket-frontdesk/internal/service"
)

type ReturnHandler struct {
	returns service.ReturnService
}

func NewReturnHandler(returns service.ReturnService) *ReturnHandler {
	return &ReturnHandler{returns: returns}
}

type createReturnRequest struct {
	ReservationID int64                     `json:"reservationId"`
	Lines         []service.ReturnLineInput `json:"lines"`
	Notes         string                    `json:"notes,omitempty"`
}

// returnView decorates a return with the role-specific display message, so
// each dashboard sees its own wording for the same status.
type returnView struct {
	domain.Return
	StatusLabel   string `json:"statusLabel"`
	StatusMessage string `json:"statusMessage"`
}

func newReturnView(ret domain.Return, role domain.Role) returnView {
	return returnView{
		Return:        ret,
		StatusLabel:   ret.Status.Label(),
		StatusMessage: ret.Status.Message(role),
	}
}

func roleFromContext(r *http.Request) domain.Role {
	if claims, ok := security.ClaimsFromContext(r.Context()); ok {
		return claims.Role
	}
	return domain.RoleClient
}

func (h *ReturnHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReturnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	ret, err := h.returns.Create(r.Context(), req.ReservationID, req.Lines, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newReturnView(*ret, roleFromContext(r)))
}

func (h *ReturnHandler) List(w http.ResponseWriter, r *http.Request) {
	returns, err := h.returns.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	role := roleFromContext(r)
	views := make([]returnView, len(returns))
	for i, ret := range returns {
		views[i] = newReturnView(ret, role)
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *ReturnHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	ret, err := h.returns.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newReturnView(*ret, roleFromContext(r)))
}

func (h *ReturnHandler) Send(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.returns.Send)
}

func (h *ReturnHandler) Receive(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.returns.Receive)
}

func (h *ReturnHandler) ReportDamage(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.returns.ReportDamage)
}

func (h *ReturnHandler) transition(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, id int64) (*domain.Return, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	ret, err := action(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newReturnView(*ret, roleFromContext(r)))
}
