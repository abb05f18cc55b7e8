package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"herramarket-frontdesk/internal/cart"
	"herramarket-frontdesk/internal/domain"
	"herramarket-frontdesk/internal/security"
	"herramarket-frontdesk/internal/service"
	"herramarket-frontdesk/internal/upstream"
)

type MockReservationService struct {
	mock.Mock
}

func (m *MockReservationService) SubmitCart(ctx context.Context, clientID int64, c *cart.Cart) (*domain.Reservation, error) {
	args := m.Called(ctx, clientID, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationService) Get(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationService) List(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationService) Cancel(ctx context.Context, id int64) (*domain.Reservation, error) {
	return m.transition(ctx, id, "Cancel")
}

func (m *MockReservationService) Accept(ctx context.Context, id int64) (*domain.Reservation, error) {
	return m.transition(ctx, id, "Accept")
}

func (m *MockReservationService) Reject(ctx context.Context, id int64) (*domain.Reservation, error) {
	return m.transition(ctx, id, "Reject")
}

func (m *MockReservationService) Start(ctx context.Context, id int64) (*domain.Reservation, error) {
	return m.transition(ctx, id, "Start")
}

func (m *MockReservationService) Finish(ctx context.Context, id int64) (*domain.Reservation, error) {
	return m.transition(ctx, id, "Finish")
}

func (m *MockReservationService) transition(ctx context.Context, id int64, method string) (*domain.Reservation, error) {
	args := m.MethodCalled(method, ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

type MockReturnService struct {
	mock.Mock
}

func (m *MockReturnService) Create(ctx context.Context, reservationID int64, lines []service.ReturnLineInput, notes string) (*domain.Return, error) {
	args := m.Called(ctx, reservationID, lines, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Return), args.Error(1)
}

func (m *MockReturnService) Get(ctx context.Context, id int64) (*domain.Return, error) {
	return m.transition(ctx, id, "Get")
}

func (m *MockReturnService) List(ctx context.Context) ([]domain.Return, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Return), args.Error(1)
}

func (m *MockReturnService) Send(ctx context.Context, id int64) (*domain.Return, error) {
	return m.transition(ctx, id, "Send")
}

func (m *MockReturnService) Receive(ctx context.Context, id int64) (*domain.Return, error) {
	return m.transition(ctx, id, "Receive")
}

func (m *MockReturnService) ReportDamage(ctx context.Context, id int64) (*domain.Return, error) {
	return m.transition(ctx, id, "ReportDamage")
}

func (m *MockReturnService) transition(ctx context.Context, id int64, method string) (*domain.Return, error) {
	args := m.MethodCalled(method, ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Return), args.Error(1)
}

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) SearchWithClients(ctx context.Context, filter upstream.PaymentFilter) ([]domain.PaymentWithClient, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentWithClient), args.Error(1)
}

// staticVerifier sidesteps real JWT parsing in router tests: any token it is
// constructed with maps to the given claims, everything else is rejected.
type staticVerifier struct {
	tokens map[string]*security.UserClaims
}

func (v *staticVerifier) ValidateToken(tokenString string) (*security.UserClaims, error) {
	claims, ok := v.tokens[tokenString]
	if !ok {
		return nil, security.ErrInvalidToken
	}
	return claims, nil
}
