package usecase

import (
	"context"

	"go.uber.org/zap"

	"orchid/internal/domain"
	apperrors "orchid/internal/errors"
)

type AdminService interface {
	UpdateStatus(ctx context.Context, orderID uint, next domain.OrderStatus) (*domain.Order, error)
	Cancel(ctx context.Context, orderID uint) (*domain.Order, error)
	Get(ctx context.Context, orderID uint) (*domain.Order, error)
	Delete(ctx context.Context, orderID uint) error
}

type AdminOrderUseCase struct {
	admin  AdminService
	logger *zap.Logger
}

func NewAdminOrderUseCase(admin AdminService, logger *zap.Logger) *AdminOrderUseCase {
	return &AdminOrderUseCase{admin: admin, logger: logger}
}

var validStatuses = map[domain.OrderStatus]bool{
	domain.OrderStatusPending:   true,
	domain.OrderStatusConfirmed: true,
	domain.OrderStatusShipping:  true,
	domain.OrderStatusCompleted: true,
	domain.OrderStatusCancelled: true,
}

func (uc *AdminOrderUseCase) UpdateStatus(ctx context.Context, orderID uint, status string) (*domain.Order, error) {
	next := domain.OrderStatus(status)
	if !validStatuses[next] {
		return nil, apperrors.NewValidationError("unknown order status", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status must be one of pending, confirmed, shipping, completed, cancelled",
		})
	}
	return uc.admin.UpdateStatus(ctx, orderID, next)
}

func (uc *AdminOrderUseCase) Cancel(ctx context.Context, orderID uint) (*domain.Order, error) {
	return uc.admin.Cancel(ctx, orderID)
}

func (uc *AdminOrderUseCase) Get(ctx context.Context, orderID uint) (*domain.Order, error) {
	return uc.admin.Get(ctx, orderID)
}

func (uc *AdminOrderUseCase) Delete(ctx context.Context, orderID uint) error {
	return uc.admin.Delete(ctx, orderID)
}
