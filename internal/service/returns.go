package service

import (
	"context"
	"fmt"

	"herramarket-frontdesk/internal/domain"
	"herramarket-frontdesk/internal/logger"
	"herramarket-frontdesk/internal/upstream"
)

type returnService struct {
	backend upstream.Client
}

func NewReturnService(backend upstream.Client) ReturnService {
	return &returnService{backend: backend}
}

// Create opens a PENDING return for an in-progress reservation. Each line is
// validated against the reservation's details: the tool must belong to the
// reservation and 0 < quantityToReturn <= quantityReserved.
func (s *returnService) Create(ctx context.Context, reservationID int64, lines []ReturnLineInput, notes string) (*domain.Return, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: return has no lines", ErrValidation)
	}

	res, err := s.backend.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("load reservation %d: %w", reservationID, err)
	}
	if res.Status != domain.ReservationStatusInProgress {
		return nil, fmt.Errorf("%w: reservation %d is %s, only in-progress reservations can be returned",
			ErrValidation, reservationID, res.Status)
	}

	reservedByTool := make(map[int64]int, len(res.Details))
	for _, detail := range res.Details {
		reservedByTool[detail.ToolID] = detail.Quantity
	}

	req := upstream.CreateReturnRequest{ReservationID: reservationID, Notes: notes}
	for _, line := range lines {
		reserved, ok := reservedByTool[line.ToolID]
		if !ok {
			return nil, fmt.Errorf("%w: tool %d is not part of reservation %d", ErrValidation, line.ToolID, reservationID)
		}
		if line.QuantityToReturn <= 0 || line.QuantityToReturn > reserved {
			return nil, fmt.Errorf("%w: quantity to return %d must be within (0, %d] for tool %d",
				ErrValidation, line.QuantityToReturn, reserved, line.ToolID)
		}
		req.Details = append(req.Details, upstream.ReturnLine{
			ToolID:           line.ToolID,
			QuantityToReturn: line.QuantityToReturn,
			Notes:            line.Notes,
		})
	}

	ret, err := s.backend.CreateReturn(ctx, req)
	if err != nil {
		return nil, err
	}
	logger.Info("Return created", "return_id", ret.ID, "reservation_id", reservationID)
	return ret, nil
}

func (s *returnService) Get(ctx context.Context, id int64) (*domain.Return, error) {
	return s.backend.GetReturn(ctx, id)
}

func (s *returnService) List(ctx context.Context) ([]domain.Return, error) {
	return s.backend.ListReturns(ctx)
}

// Send is the client confirming shipment: PENDING -> SENT.
func (s *returnService) Send(ctx context.Context, id int64) (*domain.Return, error) {
	return s.transition(ctx, id, domain.ReturnStatusSent)
}

// Receive is the supplier confirming an intact delivery: SENT -> RECEIVED.
// The backend finishes the reservation and restores tool availability.
func (s *returnService) Receive(ctx context.Context, id int64) (*domain.Return, error) {
	return s.transition(ctx, id, domain.ReturnStatusReceived)
}

// ReportDamage is the supplier flagging a damaged delivery: SENT -> DAMAGED.
// The backend moves the reservation to IN_INCIDENT and the tool to repair.
func (s *returnService) ReportDamage(ctx context.Context, id int64) (*domain.Return, error) {
	return s.transition(ctx, id, domain.ReturnStatusDamaged)
}

func (s *returnService) transition(ctx context.Context, id int64, next domain.ReturnStatus) (*domain.Return, error) {
	ret, err := s.backend.GetReturn(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ret.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, ret.Status, next)
	}
	return s.backend.UpdateReturnStatus(ctx, id, next)
}
