// Package upstream wraps the rental backend's REST API. The backend is the
// source of truth for every entity; this client only reads and requests
// transitions, it never owns state.
package upstream

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"

	"herramarket-frontdesk/internal/domain"
	"herramarket-frontdesk/internal/logger"
	"herramarket-frontdesk/internal/security"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	// ErrUnauthorized maps a backend 401. The dashboard shell handles the
	// login redirect; here the operation just fails.
	ErrUnauthorized = errors.New("backend rejected the bearer token")
	ErrNotFound     = errors.New("resource not found")
)

// PaymentFilter narrows the payments search. Empty fields are omitted.
type PaymentFilter struct {
	Status domain.PaymentStatus
	From   string
	To     string
}

// ReservationLine is one tool line of a reservation submission, with the
// subtotal snapshotted client-side.
type ReservationLine struct {
	ToolID           int64  `json:"toolId"`
	ToolName         string `json:"toolName"`
	Quantity         int    `json:"quantity"`
	PricePerDayCents int64  `json:"pricePerDayCents"`
	SubtotalCents    int64  `json:"subtotalCents"`
}

type CreateReservationRequest struct {
	ClientID        int64             `json:"clientId"`
	StartDate       string            `json:"startDate"`
	EndDate         string            `json:"endDate"`
	TotalPriceCents int64             `json:"totalPriceCents"`
	Details         []ReservationLine `json:"details"`
}

type ReturnLine struct {
	ToolID           int64  `json:"toolId"`
	QuantityToReturn int    `json:"quantityToReturn"`
	Notes            string `json:"notes,omitempty"`
}

type CreateReturnRequest struct {
	ReservationID int64        `json:"reservationId"`
	Details       []ReturnLine `json:"details"`
	Notes         string       `json:"notes,omitempty"`
}

// Client is the full backend surface the dashboards consume.
type Client interface {
	SearchPayments(ctx context.Context, filter PaymentFilter) ([]domain.Payment, error)

	GetReservation(ctx context.Context, id int64) (*domain.Reservation, error)
	ListReservations(ctx context.Context) ([]domain.Reservation, error)
	CreateReservation(ctx context.Context, req CreateReservationRequest) (*domain.Reservation, error)
	UpdateReservationStatus(ctx context.Context, id int64, status domain.ReservationStatus) (*domain.Reservation, error)

	GetClient(ctx context.Context, id int64) (*domain.Client, error)

	GetTool(ctx context.Context, id int64) (*domain.Tool, error)
	ListTools(ctx context.Context) ([]domain.Tool, error)

	GetReturn(ctx context.Context, id int64) (*domain.Return, error)
	ListReturns(ctx context.Context) ([]domain.Return, error)
	CreateReturn(ctx context.Context, req CreateReturnRequest) (*domain.Return, error)
	UpdateReturnStatus(ctx context.Context, id int64, status domain.ReturnStatus) (*domain.Return, error)
}

type restClient struct {
	baseURL string
	http    *http.Client
}

// New creates a REST client for the backend at baseURL. The timeout applies
// per request; callers cancel earlier via context.
func New(baseURL string, timeout time.Duration) Client {
	return &restClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *restClient) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := security.TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	logger.BackendCall(method, path)
	resp, err := c.http.Do(req)
	if err != nil {
		logger.BackendResult(method+" "+path, err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		logger.BackendResult(method+" "+path, ErrUnauthorized)
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, path, ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		err := fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
		logger.BackendResult(method+" "+path, err)
		return err
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s %s response: %w", method, path, err)
		}
	}
	logger.BackendResult(method+" "+path, nil)
	return nil
}

func (c *restClient) SearchPayments(ctx context.Context, filter PaymentFilter) ([]domain.Payment, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	if filter.From != "" {
		query.Set("from", filter.From)
	}
	if filter.To != "" {
		query.Set("to", filter.To)
	}
	path := "/payments"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var payments []domain.Payment
	if err := c.do(ctx, http.MethodGet, path, nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (c *restClient) GetReservation(ctx context.Context, id int64) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/reservations/%d", id), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *restClient) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	var reservations []domain.Reservation
	if err := c.do(ctx, http.MethodGet, "/reservations", nil, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (c *restClient) CreateReservation(ctx context.Context, req CreateReservationRequest) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := c.do(ctx, http.MethodPost, "/reservations", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *restClient) UpdateReservationStatus(ctx context.Context, id int64, status domain.ReservationStatus) (*domain.Reservation, error) {
	body := map[string]domain.ReservationStatus{"status": status}
	var res domain.Reservation
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/reservations/%d/status", id), body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *restClient) GetClient(ctx context.Context, id int64) (*domain.Client, error) {
	var cl domain.Client
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/clients/%d", id), nil, &cl); err != nil {
		return nil, err
	}
	return &cl, nil
}

func (c *restClient) GetTool(ctx context.Context, id int64) (*domain.Tool, error) {
	var tool domain.Tool
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tools/%d", id), nil, &tool); err != nil {
		return nil, err
	}
	return &tool, nil
}

func (c *restClient) ListTools(ctx context.Context) ([]domain.Tool, error) {
	var tools []domain.Tool
	if err := c.do(ctx, http.MethodGet, "/tools", nil, &tools); err != nil {
		return nil, err
	}
	return tools, nil
}

func (c *restClient) GetReturn(ctx context.Context, id int64) (*domain.Return, error) {
	var ret domain.Return
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/returns/%d", id), nil, &ret); err != nil {
		return nil, err
	}
	return &ret, nil
}

func (c *restClient) ListReturns(ctx context.Context) ([]domain.Return, error) {
	var returns []domain.Return
	if err := c.do(ctx, http.MethodGet, "/returns", nil, &returns); err != nil {
		return nil, err
	}
	return returns, nil
}

func (c *restClient) CreateReturn(ctx context.Context, req CreateReturnRequest) (*domain.Return, error) {
	var ret domain.Return
	if err := c.do(ctx, http.MethodPost, "/returns", req, &ret); err != nil {
		return nil, err
	}
	return &ret, nil
}

func (c *restClient) UpdateReturnStatus(ctx context.Context, id int64, status domain.ReturnStatus) (*domain.Return, error) {
	body := map[string]domain.ReturnStatus{"status": status}
	var ret domain.Return
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/returns/%d/status", id), body, &ret); err != nil {
		return nil, err
	}
	return &ret, nil
}
