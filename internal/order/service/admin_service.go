package service

import (
	"context"

	"go.uber.org/zap"

	"orchid/internal/domain"
	apperrors "orchid/internal/errors"
)

type AdminOrderRepository interface {
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID uint, expected, next domain.OrderStatus, payment *domain.PaymentStatus) (bool, error)
	Delete(ctx context.Context, orderID uint) error
}

type AdminService struct {
	orders AdminOrderRepository
	logger *zap.Logger
}

func NewAdminService(orders AdminOrderRepository, logger *zap.Logger) *AdminService {
	return &AdminService{orders: orders, logger: logger}
}

// UpdateStatus applies an admin-initiated fulfillment transition.
// Completing an order requires the money side to be settled: gateway
// orders must already have a successful payment, and completing a
// cash-on-delivery order records the cash collection as the payment
// success in the same update.
func (s *AdminService) UpdateStatus(ctx context.Context, orderID uint, next domain.OrderStatus) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !domain.CanTransition(order.OrderStatus, next) {
		return nil, apperrors.NewConflictError(
			"cannot move order from " + string(order.OrderStatus) + " to " + string(next),
		)
	}

	var payment *domain.PaymentStatus
	if next == domain.OrderStatusCompleted {
		switch order.PaymentMethod {
		case domain.PaymentMethodGateway:
			if order.PaymentStatus != domain.PaymentStatusSuccess {
				return nil, apperrors.NewConflictError("gateway order cannot complete before payment succeeds")
			}
		case domain.PaymentMethodCOD:
			if order.PaymentStatus != domain.PaymentStatusSuccess {
				settled := domain.PaymentStatusSuccess
				payment = &settled
			}
		}
	}

	applied, err := s.orders.UpdateStatus(ctx, orderID, order.OrderStatus, next, payment)
	if err != nil {
		return nil, err
	}
	if !applied {
		s.logger.Warn("order status changed concurrently, update rejected",
			zap.Uint("orderId", orderID),
			zap.String("expected", string(order.OrderStatus)),
			zap.String("requested", string(next)),
		)
		return nil, apperrors.NewConflictError("order status changed concurrently")
	}

	order.OrderStatus = next
	if payment != nil {
		order.PaymentStatus = *payment
	}

	s.logger.Info("order status updated",
		zap.Uint("orderId", orderID),
		zap.String("orderStatus", string(next)),
	)
	return order, nil
}

// Cancel is permitted from any non-terminal fulfillment status. It does
// not touch payment_status; reversing a settled payment is a refund,
// which is a separate concern.
func (s *AdminService) Cancel(ctx context.Context, orderID uint) (*domain.Order, error) {
	return s.UpdateStatus(ctx, orderID, domain.OrderStatusCancelled)
}

func (s *AdminService) Get(ctx context.Context, orderID uint) (*domain.Order, error) {
	return s.orders.FindByID(ctx, orderID)
}

// Delete removes the order row entirely. Explicit admin action only;
// nothing else in the system deletes orders.
func (s *AdminService) Delete(ctx context.Context, orderID uint) error {
	if err := s.orders.Delete(ctx, orderID); err != nil {
		return err
	}
	s.logger.Info("order deleted", zap.Uint("orderId", orderID))
	return nil
}
