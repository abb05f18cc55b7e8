package service

import (
	"context"

	"herramarket-frontdesk/internal/domain"
	"herramarket-frontdesk/internal/resolver"
	"herramarket-frontdesk/internal/upstream"
)

type paymentService struct {
	resolver *resolver.Resolver
}

func NewPaymentService(r *resolver.Resolver) PaymentService {
	return &paymentService{resolver: r}
}

func (s *paymentService) SearchWithClients(ctx context.Context, filter upstream.PaymentFilter) ([]domain.PaymentWithClient, error) {
	return s.resolver.PaymentsWithClients(ctx, filter)
}
