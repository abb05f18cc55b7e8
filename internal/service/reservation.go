package service

import (
	"context"
	"fmt"

	"herramarket-frontdesk/internal/cart"
	"herramarket-frontdesk/internal/domain"
	"herramarket-frontdesk/internal/logger"
	"herramarket-frontdesk/internal/pricing"
	"herramarket-frontdesk/internal/upstream"
)

type reservationService struct {
	backend upstream.Client
}

func NewReservationService(backend upstream.Client) ReservationService {
	return &reservationService{backend: backend}
}

// SubmitCart validates the staged cart lines, prices them, submits the
// reservation to the backend and clears the cart on success. Every validation
// failure is caught here, before the backend sees anything.
func (s *reservationService) SubmitCart(ctx context.Context, clientID int64, c *cart.Cart) (*domain.Reservation, error) {
	items := c.Items()
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrValidation)
	}

	var (
		lines      []upstream.ReservationLine
		totalCents int64
		startDate  string
		endDate    string
	)
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1 for tool %q", ErrValidation, item.Tool.Name)
		}

		// Availability is checked against the live tool, not the snapshot
		// staged in the cart, so a tool rented out since then is caught.
		tool, err := s.backend.GetTool(ctx, item.Tool.ID)
		if err != nil {
			return nil, fmt.Errorf("verify tool %d: %w", item.Tool.ID, err)
		}
		if tool.Status != domain.ToolStatusAvailable {
			return nil, fmt.Errorf("%w: tool %q is not available", ErrValidation, tool.Name)
		}
		if item.Quantity > tool.AvailableQuantity {
			return nil, fmt.Errorf("%w: quantity %d exceeds availability %d for tool %q",
				ErrValidation, item.Quantity, tool.AvailableQuantity, tool.Name)
		}

		subtotal, err := pricing.ItemCost(item.StartDate, item.EndDate, item.Tool.DailyPriceCents, item.Quantity)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrValidation, err)
		}
		totalCents += subtotal

		itemStart := item.StartDate.Format("2006-01-02")
		itemEnd := item.EndDate.Format("2006-01-02")
		if startDate == "" || itemStart < startDate {
			startDate = itemStart
		}
		if endDate == "" || itemEnd > endDate {
			endDate = itemEnd
		}

		lines = append(lines, upstream.ReservationLine{
			ToolID:           item.Tool.ID,
			ToolName:         item.Tool.Name,
			Quantity:         item.Quantity,
			PricePerDayCents: item.Tool.DailyPriceCents,
			SubtotalCents:    subtotal,
		})
	}

	res, err := s.backend.CreateReservation(ctx, upstream.CreateReservationRequest{
		ClientID:        clientID,
		StartDate:       startDate,
		EndDate:         endDate,
		TotalPriceCents: totalCents,
		Details:         lines,
	})
	if err != nil {
		return nil, err
	}

	c.Clear()
	logger.Info("Reservation submitted", "reservation_id", res.ID, "client_id", clientID, "total_cents", totalCents)
	return res, nil
}

func (s *reservationService) Get(ctx context.Context, id int64) (*domain.Reservation, error) {
	return s.backend.GetReservation(ctx, id)
}

func (s *reservationService) List(ctx context.Context) ([]domain.Reservation, error) {
	return s.backend.ListReservations(ctx)
}

func (s *reservationService) Cancel(ctx context.Context, id int64) (*domain.Reservation, error) {
	return s.transition(ctx, id, domain.ReservationStatusCancelled)
}

func (s *reservationService) Accept(ctx context.Context, id int64) (*domain.Reservation, error) {
	return s.transition(ctx, id, domain.ReservationStatusConfirmed)
}

// Reject maps to cancellation: the marketplace has no separate rejected
// status, a supplier rejection cancels the pending reservation.
func (s *reservationService) Reject(ctx context.Context, id int64) (*domain.Reservation, error) {
	return s.transition(ctx, id, domain.ReservationStatusCancelled)
}

func (s *reservationService) Start(ctx context.Context, id int64) (*domain.Reservation, error) {
	return s.transition(ctx, id, domain.ReservationStatusInProgress)
}

func (s *reservationService) Finish(ctx context.Context, id int64) (*domain.Reservation, error) {
	return s.transition(ctx, id, domain.ReservationStatusFinished)
}

// transition guards a status change client-side before asking the backend,
// so terminal reservations fail fast with the status model's message.
func (s *reservationService) transition(ctx context.Context, id int64, next domain.ReservationStatus) (*domain.Reservation, error) {
	res, err := s.backend.GetReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	if !res.Status.CanModify() {
		return nil, fmt.Errorf("%w: %s", ErrReservationLocked, res.Status.BlockedMessage())
	}
	if !res.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, res.Status, next)
	}
	return s.backend.UpdateReservationStatus(ctx, id, next)
}
