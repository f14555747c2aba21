package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"orchid/internal/domain"
	apperrors "orchid/internal/errors"
	"orchid/internal/gateway"
)

type mockPaymentOrderRepository struct {
	FindByCodeFunc          func(ctx context.Context, code string) (*domain.Order, error)
	ApplyGatewayOutcomeFunc func(ctx context.Context, orderID uint, payment domain.PaymentStatus, nextWhenPending domain.OrderStatus) (bool, error)
}

func (m *mockPaymentOrderRepository) FindByCode(ctx context.Context, code string) (*domain.Order, error) {
	return m.FindByCodeFunc(ctx, code)
}

func (m *mockPaymentOrderRepository) ApplyGatewayOutcome(ctx context.Context, orderID uint, payment domain.PaymentStatus, nextWhenPending domain.OrderStatus) (bool, error) {
	return m.ApplyGatewayOutcomeFunc(ctx, orderID, payment, nextWhenPending)
}

func pendingGatewayOrder() *domain.Order {
	return &domain.Order{
		ID:            42,
		Code:          "ORD-9F2A61B4",
		PaymentMethod: domain.PaymentMethodGateway,
		PaymentStatus: domain.PaymentStatusPendingGateway,
		OrderStatus:   domain.OrderStatusPending,
		TotalAmount:   290000,
	}
}

func TestApplyGatewayResult_Success(t *testing.T) {
	var gotPayment domain.PaymentStatus
	var gotNext domain.OrderStatus

	repo := &mockPaymentOrderRepository{
		FindByCodeFunc: func(ctx context.Context, code string) (*domain.Order, error) {
			return pendingGatewayOrder(), nil
		},
		ApplyGatewayOutcomeFunc: func(ctx context.Context, orderID uint, payment domain.PaymentStatus, nextWhenPending domain.OrderStatus) (bool, error) {
			gotPayment = payment
			gotNext = nextWhenPending
			return true, nil
		},
	}
	svc := NewPaymentService(repo, zap.NewNop())

	order, err := svc.ApplyGatewayResult(context.Background(), "ORD-9F2A61B4", gateway.OutcomeSuccess, 290000)

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusSuccess, gotPayment)
	assert.Equal(t, domain.OrderStatusConfirmed, gotNext)
	assert.Equal(t, domain.PaymentStatusSuccess, order.PaymentStatus)
	assert.Equal(t, domain.OrderStatusConfirmed, order.OrderStatus)
}

func TestApplyGatewayResult_FailureLeavesOrderPending(t *testing.T) {
	repo := &mockPaymentOrderRepository{
		FindByCodeFunc: func(ctx context.Context, code string) (*domain.Order, error) {
			return pendingGatewayOrder(), nil
		},
		ApplyGatewayOutcomeFunc: func(ctx context.Context, orderID uint, payment domain.PaymentStatus, nextWhenPending domain.OrderStatus) (bool, error) {
			assert.Equal(t, domain.PaymentStatusFailed, payment)
			assert.Equal(t, domain.OrderStatusPending, nextWhenPending)
			return true, nil
		},
	}
	svc := NewPaymentService(repo, zap.NewNop())

	order, err := svc.ApplyGatewayResult(context.Background(), "ORD-9F2A61B4", gateway.OutcomeFailed, 290000)

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusFailed, order.PaymentStatus)
	assert.Equal(t, domain.OrderStatusPending, order.OrderStatus)
}

// A duplicate settle attempt finds payment_status no longer
// pending_gateway; the conditional update affects no rows and the
// second application is rejected without mutating anything.
func TestApplyGatewayResult_SecondApplicationIsConflict(t *testing.T) {
	stored := pendingGatewayOrder()
	applications := 0

	repo := &mockPaymentOrderRepository{
		FindByCodeFunc: func(ctx context.Context, code string) (*domain.Order, error) {
			copy := *stored
			return &copy, nil
		},
		ApplyGatewayOutcomeFunc: func(ctx context.Context, orderID uint, payment domain.PaymentStatus, nextWhenPending domain.OrderStatus) (bool, error) {
			if stored.PaymentStatus != domain.PaymentStatusPendingGateway {
				return false, nil
			}
			applications++
			stored.PaymentStatus = payment
			stored.OrderStatus = nextWhenPending
			return true, nil
		},
	}
	svc := NewPaymentService(repo, zap.NewNop())

	_, err := svc.ApplyGatewayResult(context.Background(), "ORD-9F2A61B4", gateway.OutcomeSuccess, 290000)
	assert.NoError(t, err)

	_, err = svc.ApplyGatewayResult(context.Background(), "ORD-9F2A61B4", gateway.OutcomeSuccess, 290000)
	_, ok := apperrors.IsConflictError(err)
	assert.True(t, ok)

	assert.Equal(t, 1, applications)
	assert.Equal(t, domain.PaymentStatusSuccess, stored.PaymentStatus)
	assert.Equal(t, domain.OrderStatusConfirmed, stored.OrderStatus)
}

func TestApplyGatewayResult_AmountMismatch(t *testing.T) {
	repo := &mockPaymentOrderRepository{
		FindByCodeFunc: func(ctx context.Context, code string) (*domain.Order, error) {
			return pendingGatewayOrder(), nil
		},
		ApplyGatewayOutcomeFunc: func(ctx context.Context, orderID uint, payment domain.PaymentStatus, nextWhenPending domain.OrderStatus) (bool, error) {
			t.Fatal("must not write on amount mismatch")
			return false, nil
		},
	}
	svc := NewPaymentService(repo, zap.NewNop())

	_, err := svc.ApplyGatewayResult(context.Background(), "ORD-9F2A61B4", gateway.OutcomeSuccess, 1000)

	_, ok := apperrors.IsAmountMismatchError(err)
	assert.True(t, ok)
}

func TestApplyGatewayResult_FailureForCancelledOrderIsNoOp(t *testing.T) {
	cancelled := pendingGatewayOrder()
	cancelled.OrderStatus = domain.OrderStatusCancelled

	repo := &mockPaymentOrderRepository{
		FindByCodeFunc: func(ctx context.Context, code string) (*domain.Order, error) {
			return cancelled, nil
		},
		ApplyGatewayOutcomeFunc: func(ctx context.Context, orderID uint, payment domain.PaymentStatus, nextWhenPending domain.OrderStatus) (bool, error) {
			t.Fatal("must not write for a cancelled order on failure")
			return false, nil
		},
	}
	svc := NewPaymentService(repo, zap.NewNop())

	order, err := svc.ApplyGatewayResult(context.Background(), "ORD-9F2A61B4", gateway.OutcomeFailed, 290000)

	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, order.OrderStatus)
	assert.Equal(t, domain.PaymentStatusPendingGateway, order.PaymentStatus)
}

func TestApplyGatewayResult_UnknownOrder(t *testing.T) {
	repo := &mockPaymentOrderRepository{
		FindByCodeFunc: func(ctx context.Context, code string) (*domain.Order, error) {
			return nil, apperrors.NewNotFoundError("order with code " + code + " not found")
		},
	}
	svc := NewPaymentService(repo, zap.NewNop())

	_, err := svc.ApplyGatewayResult(context.Background(), "ORD-UNKNOWN", gateway.OutcomeSuccess, 290000)

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}
