package controller

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"orchid/internal/dto"
	apperrors "orchid/internal/errors"
	"orchid/internal/order/usecase"
)

type CheckoutUseCase interface {
	Checkout(ctx context.Context, req dto.CheckoutRequest, clientIP string) (*usecase.CheckoutResult, error)
}

type CheckoutController struct {
	useCase CheckoutUseCase
	logger  *zap.Logger
}

func NewCheckoutController(useCase CheckoutUseCase, logger *zap.Logger) *CheckoutController {
	return &CheckoutController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *CheckoutController) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		writeError(w, logger, traceID, http.StatusBadRequest, "VALIDATION_ERROR", "invalid JSON body",
			[]apperrors.ValidationDetail{{Field: "body", Message: "request body must be valid JSON"}})
		return
	}

	if err := validateCheckoutRequest(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		writeError(w, logger, traceID, http.StatusBadRequest, "VALIDATION_ERROR", ve.Message, ve.Details)
		return
	}

	result, err := c.useCase.Checkout(r.Context(), req, clientIP(r))
	if err != nil {
		writeDomainError(w, logger, traceID, err)
		return
	}

	order := result.Order
	writeJSON(w, logger, http.StatusCreated, dto.CheckoutResponse{
		TraceID:        traceID,
		OrderID:        order.ID,
		OrderCode:      order.Code,
		Subtotal:       order.Subtotal(),
		ShippingFee:    order.ShippingFee,
		DiscountAmount: order.DiscountAmount,
		TotalAmount:    order.TotalAmount,
		OrderStatus:    string(order.OrderStatus),
		PaymentStatus:  string(order.PaymentStatus),
		PaymentURL:     result.PaymentURL,
		Timestamp:      time.Now().UTC(),
	})
}

func validateCheckoutRequest(req dto.CheckoutRequest) error {
	var details []apperrors.ValidationDetail

	if req.UserID <= 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "userId",
			Message: "userId must be a positive integer",
		})
	}

	if req.RecipientName == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "recipientName",
			Message: "recipientName is required",
		})
	}

	if req.RecipientPhone == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "recipientPhone",
			Message: "recipientPhone is required",
		})
	}

	if req.RecipientAddress == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "recipientAddress",
			Message: "recipientAddress is required",
		})
	}

	if req.PaymentMethod != "cod" && req.PaymentMethod != "gateway" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "paymentMethod",
			Message: "paymentMethod must be cod or gateway",
		})
	}

	if req.ShippingFee < 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "shippingFee",
			Message: "shippingFee must be non-negative",
		})
	}

	if len(req.Items) == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "items",
			Message: "items must not be empty",
		})
	}

	seen := make(map[int]bool)
	for idx, item := range req.Items {
		if item.ProductID <= 0 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "items[" + strconv.Itoa(idx) + "].productId",
				Message: "each productId must be a positive integer",
			})
		}

		if seen[item.ProductID] {
			details = append(details, apperrors.ValidationDetail{
				Field:   "items[" + strconv.Itoa(idx) + "].productId",
				Message: "productId must not be duplicated",
			})
		}
		seen[item.ProductID] = true

		if item.Quantity < 1 || item.Quantity > 1000 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "items[" + strconv.Itoa(idx) + "].quantity",
				Message: "quantity must be between 1 and 1000",
			})
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}

func clientIP(r *http.Request) string {
	// X-Forwarded-For accumulates one entry per hop; the client is the
	// first one.
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
