package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"orchid/internal/domain"
	"orchid/internal/dto"
	apperrors "orchid/internal/errors"
)

type CheckoutService interface {
	CreateOrder(ctx context.Context, req dto.CheckoutRequest, discount *domain.DiscountCode) (*domain.Order, error)
}

type DiscountRepository interface {
	FindByCode(ctx context.Context, code string) (*domain.DiscountCode, error)
}

type PaymentURLBuilder interface {
	PaymentURL(order *domain.Order, clientIP string, now time.Time) string
}

type CheckoutResult struct {
	Order      *domain.Order
	PaymentURL string
}

type CheckoutUseCase struct {
	checkout  CheckoutService
	discounts DiscountRepository
	payments  PaymentURLBuilder
	logger    *zap.Logger
}

func NewCheckoutUseCase(
	checkout CheckoutService,
	discounts DiscountRepository,
	payments PaymentURLBuilder,
	logger *zap.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		checkout:  checkout,
		discounts: discounts,
		payments:  payments,
		logger:    logger,
	}
}

// Checkout creates the order and, for gateway payments, the signed
// redirect URL the buyer is sent to.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, req dto.CheckoutRequest, clientIP string) (*CheckoutResult, error) {
	uc.logger.Info("checkout started",
		zap.Int("userId", req.UserID),
		zap.Int("itemCount", len(req.Items)),
		zap.String("paymentMethod", req.PaymentMethod),
	)

	var discount *domain.DiscountCode
	if req.DiscountCode != "" {
		found, err := uc.discounts.FindByCode(ctx, req.DiscountCode)
		if err != nil {
			if _, ok := apperrors.IsNotFoundError(err); ok {
				return nil, apperrors.NewNotFoundError("discount code not found")
			}
			return nil, err
		}
		discount = found
	}

	order, err := uc.checkout.CreateOrder(ctx, req, discount)
	if err != nil {
		return nil, err
	}

	result := &CheckoutResult{Order: order}
	if order.PaymentMethod == domain.PaymentMethodGateway {
		result.PaymentURL = uc.payments.PaymentURL(order, clientIP, time.Now())
	}

	return result, nil
}
