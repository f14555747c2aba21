package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"orchid/internal/domain"
	"orchid/internal/dto"
	apperrors "orchid/internal/errors"
)

type AdminOrderUseCase interface {
	UpdateStatus(ctx context.Context, orderID uint, status string) (*domain.Order, error)
	Cancel(ctx context.Context, orderID uint) (*domain.Order, error)
	Get(ctx context.Context, orderID uint) (*domain.Order, error)
	Delete(ctx context.Context, orderID uint) error
}

type AdminOrderController struct {
	useCase AdminOrderUseCase
	logger  *zap.Logger
}

func NewAdminOrderController(useCase AdminOrderUseCase, logger *zap.Logger) *AdminOrderController {
	return &AdminOrderController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *AdminOrderController) HandleGet(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID, ok := c.orderIDFromPath(w, logger, traceID, r)
	if !ok {
		return
	}

	order, err := c.useCase.Get(r.Context(), orderID)
	if err != nil {
		writeDomainError(w, logger, traceID, err)
		return
	}

	writeJSON(w, logger, http.StatusOK, toOrderResponse(order))
}

func (c *AdminOrderController) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID, ok := c.orderIDFromPath(w, logger, traceID, r)
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, logger, traceID, http.StatusBadRequest, "VALIDATION_ERROR", "invalid JSON body",
			[]apperrors.ValidationDetail{{Field: "body", Message: "request body must be valid JSON"}})
		return
	}

	order, err := c.useCase.UpdateStatus(r.Context(), orderID, req.Status)
	if err != nil {
		writeDomainError(w, logger, traceID, err)
		return
	}

	writeJSON(w, logger, http.StatusOK, toOrderResponse(order))
}

func (c *AdminOrderController) HandleCancel(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID, ok := c.orderIDFromPath(w, logger, traceID, r)
	if !ok {
		return
	}

	order, err := c.useCase.Cancel(r.Context(), orderID)
	if err != nil {
		writeDomainError(w, logger, traceID, err)
		return
	}

	writeJSON(w, logger, http.StatusOK, toOrderResponse(order))
}

func (c *AdminOrderController) HandleDelete(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID, ok := c.orderIDFromPath(w, logger, traceID, r)
	if !ok {
		return
	}

	if err := c.useCase.Delete(r.Context(), orderID); err != nil {
		writeDomainError(w, logger, traceID, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *AdminOrderController) orderIDFromPath(w http.ResponseWriter, logger *zap.Logger, traceID string, r *http.Request) (uint, bool) {
	orderIDStr := chi.URLParam(r, "orderId")
	orderID, err := strconv.ParseUint(orderIDStr, 10, 64)
	if err != nil || orderID == 0 {
		logger.Warn("invalid orderId in path", zap.String("orderId", orderIDStr))
		writeError(w, logger, traceID, http.StatusBadRequest, "VALIDATION_ERROR", "invalid orderId",
			[]apperrors.ValidationDetail{{Field: "orderId", Message: "orderId must be a positive integer"}})
		return 0, false
	}
	return uint(orderID), true
}
