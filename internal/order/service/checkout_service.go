package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"orchid/internal/domain"
	"orchid/internal/dto"
	apperrors "orchid/internal/errors"
)

type OrderRepository interface {
	CreateWithItems(ctx context.Context, order *domain.Order) error
}

type ProductRepository interface {
	FindByID(ctx context.Context, id int) (*domain.Product, error)
}

type CheckoutService struct {
	orders   OrderRepository
	products ProductRepository
	logger   *zap.Logger
	now      func() time.Time
}

func NewCheckoutService(
	orders OrderRepository,
	products ProductRepository,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		orders:   orders,
		products: products,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateOrder prices the cart from the catalog, revalidates the discount
// code against the submission clock, computes the total and persists the
// order in its initial pending state. The discount is checked here even
// when it was already checked at display time; the two checks can
// straddle the code's expiry boundary.
func (s *CheckoutService) CreateOrder(
	ctx context.Context,
	req dto.CheckoutRequest,
	discount *domain.DiscountCode,
) (*domain.Order, error) {
	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, reqItem := range req.Items {
		product, err := s.products.FindByID(ctx, reqItem.ProductID)
		if err != nil {
			if _, ok := apperrors.IsNotFoundError(err); ok {
				return nil, apperrors.NewValidationError("unknown product in cart", apperrors.ValidationDetail{
					Field:   "items",
					Message: err.Error(),
				})
			}
			return nil, err
		}
		if !product.IsActive {
			return nil, apperrors.NewValidationError("inactive product in cart", apperrors.ValidationDetail{
				Field:   "items",
				Message: product.Name + " is no longer available",
			})
		}

		items = append(items, domain.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			UnitPrice:   product.Price,
			Quantity:    reqItem.Quantity,
		})
	}

	order := &domain.Order{
		Code:             newOrderCode(),
		UserID:           req.UserID,
		RecipientName:    req.RecipientName,
		RecipientPhone:   req.RecipientPhone,
		RecipientAddress: req.RecipientAddress,
		Items:            items,
		PaymentMethod:    domain.PaymentMethod(req.PaymentMethod),
		PaymentStatus:    domain.PaymentStatusPending,
		OrderStatus:      domain.OrderStatusPending,
		ShippingFee:      req.ShippingFee,
	}
	if order.PaymentMethod == domain.PaymentMethodGateway {
		order.PaymentStatus = domain.PaymentStatusPendingGateway
	}

	if discount != nil {
		discountAmount, err := discount.ValidateForCheckout(s.now(), order.Subtotal())
		if err != nil {
			return nil, err
		}
		order.DiscountAmount = discountAmount
		order.DiscountCode = &discount.Code
	}

	order.ComputeTotal()

	if err := s.orders.CreateWithItems(ctx, order); err != nil {
		s.logger.Error("persisting order failed", zap.String("orderCode", order.Code), zap.Error(err))
		return nil, err
	}

	s.logger.Info("order created",
		zap.String("orderCode", order.Code),
		zap.String("paymentMethod", string(order.PaymentMethod)),
		zap.Int64("totalAmount", order.TotalAmount),
	)
	return order, nil
}

// newOrderCode builds the human-readable order reference, e.g.
// ORD-9F2A61B4.
func newOrderCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "ORD-" + strings.ToUpper(raw[:8])
}
