package service

import (
	"context"

	"go.uber.org/zap"

	"orchid/internal/domain"
	apperrors "orchid/internal/errors"
	"orchid/internal/gateway"
)

type PaymentOrderRepository interface {
	FindByCode(ctx context.Context, code string) (*domain.Order, error)
	ApplyGatewayOutcome(ctx context.Context, orderID uint, payment domain.PaymentStatus, nextWhenPending domain.OrderStatus) (bool, error)
}

type PaymentService struct {
	orders PaymentOrderRepository
	logger *zap.Logger
}

func NewPaymentService(orders PaymentOrderRepository, logger *zap.Logger) *PaymentService {
	return &PaymentService{orders: orders, logger: logger}
}

// ApplyGatewayResult reconciles a verified callback against the stored
// order. The caller has already proven the callback authentic; this
// decides what it means. Stale and duplicate callbacks are rejected
// with a conflict, amount disagreements with an amount mismatch, and
// both are logged for manual reconciliation, never retried.
func (s *PaymentService) ApplyGatewayResult(
	ctx context.Context,
	txnRef string,
	outcome gateway.Outcome,
	amount int64,
) (*domain.Order, error) {
	order, err := s.orders.FindByCode(ctx, txnRef)
	if err != nil {
		return nil, err
	}

	if order.TotalAmount != amount {
		s.logger.Warn("callback amount does not match stored order total",
			zap.String("orderCode", txnRef),
			zap.Int64("callbackAmount", amount),
			zap.Int64("storedTotal", order.TotalAmount),
		)
		return nil, apperrors.NewAmountMismatchError("callback amount does not match order total")
	}

	// A failure report for an order the admin has already cancelled
	// changes nothing; acknowledge and move on.
	if outcome == gateway.OutcomeFailed && order.OrderStatus == domain.OrderStatusCancelled {
		s.logger.Info("failed-payment callback for cancelled order ignored",
			zap.String("orderCode", txnRef),
		)
		return order, nil
	}

	payment := domain.PaymentStatusFailed
	nextWhenPending := domain.OrderStatusPending // failed payment is recoverable, order stays pending
	if outcome == gateway.OutcomeSuccess {
		payment = domain.PaymentStatusSuccess
		nextWhenPending = domain.OrderStatusConfirmed
	}

	applied, err := s.orders.ApplyGatewayOutcome(ctx, order.ID, payment, nextWhenPending)
	if err != nil {
		return nil, err
	}
	if !applied {
		s.logger.Warn("gateway callback superseded, payment no longer awaiting gateway",
			zap.String("orderCode", txnRef),
			zap.String("outcome", string(outcome)),
			zap.String("paymentStatus", string(order.PaymentStatus)),
		)
		return nil, apperrors.NewConflictError("payment is no longer awaiting the gateway")
	}

	order.PaymentStatus = payment
	if order.OrderStatus == domain.OrderStatusPending {
		order.OrderStatus = nextWhenPending
	}

	s.logger.Info("gateway outcome applied",
		zap.String("orderCode", txnRef),
		zap.String("paymentStatus", string(order.PaymentStatus)),
		zap.String("orderStatus", string(order.OrderStatus)),
	)
	return order, nil
}
