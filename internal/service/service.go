package service

import (
	"context"
	"errors"

	"herramarket-frontdesk/internal/cart"
	"herramarket-frontdesk/internal/domain"
	"herramarket-frontdesk/internal/upstream"
)

var (
	// ErrValidation marks caller mistakes rejected before anything reaches
	// the backend: empty carts, bad quantities, bad dates.
	ErrValidation = errors.New("validation failed")

	// ErrReservationLocked means the reservation reached a terminal status
	// and cannot be modified anymore.
	ErrReservationLocked = errors.New("reservation can no longer be modified")

	// ErrInvalidTransition means the requested status change is not a legal
	// lifecycle step from the current status.
	ErrInvalidTransition = errors.New("status transition not allowed")
)

type ReservationService interface {
	SubmitCart(ctx context.Context, clientID int64, c *cart.Cart) (*domain.Reservation, error)
	Get(ctx context.Context, id int64) (*domain.Reservation, error)
	List(ctx context.Context) ([]domain.Reservation, error)
	Cancel(ctx context.Context, id int64) (*domain.Reservation, error)
	Accept(ctx context.Context, id int64) (*domain.Reservation, error)
	Reject(ctx context.Context, id int64) (*domain.Reservation, error)
	Start(ctx context.Context, id int64) (*domain.Reservation, error)
	Finish(ctx context.Context, id int64) (*domain.Reservation, error)
}

// ReturnLineInput is one tool line of a return request from the client
// dashboard.
type ReturnLineInput struct {
	ToolID           int64  `json:"toolId"`
	QuantityToReturn int    `json:"quantityToReturn"`
	Notes            string `json:"notes,omitempty"`
}

type ReturnService interface {
	Create(ctx context.Context, reservationID int64, lines []ReturnLineInput, notes string) (*domain.Return, error)
	Get(ctx context.Context, id int64) (*domain.Return, error)
	List(ctx context.Context) ([]domain.Return, error)
	Send(ctx context.Context, id int64) (*domain.Return, error)
	Receive(ctx context.Context, id int64) (*domain.Return, error)
	ReportDamage(ctx context.Context, id int64) (*domain.Return, error)
}

type PaymentService interface {
	SearchWithClients(ctx context.Context, filter upstream.PaymentFilter) ([]domain.PaymentWithClient, error)
}
