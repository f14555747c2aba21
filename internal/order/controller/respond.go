package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"orchid/internal/domain"
	"orchid/internal/dto"
	apperrors "orchid/internal/errors"
)

type errorResponse struct {
	TraceID   string                       `json:"traceId"`
	Status    int                          `json:"status"`
	Code      string                       `json:"code"`
	Message   string                       `json:"message"`
	Details   []apperrors.ValidationDetail `json:"details,omitempty"`
	Timestamp time.Time                    `json:"timestamp"`
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, logger *zap.Logger, traceID string, status int, code, message string, details []apperrors.ValidationDetail) {
	writeJSON(w, logger, status, errorResponse{
		TraceID:   traceID,
		Status:    status,
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
	})
}

// writeDomainError maps the error taxonomy onto HTTP statuses. Signature
// failures deliberately answer with a generic message so verification
// internals never leak to a possible attacker.
func writeDomainError(w http.ResponseWriter, logger *zap.Logger, traceID string, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		writeError(w, logger, traceID, http.StatusBadRequest, "VALIDATION_ERROR", ve.Message, ve.Details)
		return
	}
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		writeError(w, logger, traceID, http.StatusNotFound, "NOT_FOUND", nfe.Message, nil)
		return
	}
	if ee, ok := apperrors.IsExpiredError(err); ok {
		writeError(w, logger, traceID, http.StatusGone, "EXPIRED", ee.Message, nil)
		return
	}
	if me, ok := apperrors.IsMismatchError(err); ok {
		writeError(w, logger, traceID, http.StatusUnauthorized, "MISMATCH", me.Message, nil)
		return
	}
	if ce, ok := apperrors.IsConflictError(err); ok {
		writeError(w, logger, traceID, http.StatusConflict, "CONFLICT", ce.Message, nil)
		return
	}
	if ae, ok := apperrors.IsAmountMismatchError(err); ok {
		writeError(w, logger, traceID, http.StatusConflict, "CONFLICT", ae.Message, nil)
		return
	}
	if _, ok := apperrors.IsSignatureError(err); ok {
		writeError(w, logger, traceID, http.StatusBadRequest, "INVALID_REQUEST", "invalid request", nil)
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	writeError(w, logger, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred", nil)
}

func toOrderResponse(order *domain.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = dto.OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		}
	}

	return dto.OrderResponse{
		OrderID:          order.ID,
		Code:             order.Code,
		UserID:           order.UserID,
		RecipientName:    order.RecipientName,
		RecipientPhone:   order.RecipientPhone,
		RecipientAddress: order.RecipientAddress,
		Items:            items,
		PaymentMethod:    string(order.PaymentMethod),
		PaymentStatus:    string(order.PaymentStatus),
		OrderStatus:      string(order.OrderStatus),
		ShippingFee:      order.ShippingFee,
		DiscountAmount:   order.DiscountAmount,
		DiscountCode:     order.DiscountCode,
		TotalAmount:      order.TotalAmount,
		CreatedAt:        order.CreatedAt,
		UpdatedAt:        order.UpdatedAt,
	}
}
