package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"orchid/internal/domain"
	"orchid/internal/dto"
	apperrors "orchid/internal/errors"
)

type DiscountRepository interface {
	FindByCode(ctx context.Context, code string) (*domain.DiscountCode, error)
}

// PreviewController lets the storefront show what a code would be worth
// before checkout. This preview is advisory only; checkout revalidates
// the code at submission time.
type PreviewController struct {
	discounts DiscountRepository
	logger    *zap.Logger
}

func NewPreviewController(discounts DiscountRepository, logger *zap.Logger) *PreviewController {
	return &PreviewController{
		discounts: discounts,
		logger:    logger,
	}
}

func (c *PreviewController) HandlePreview(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	subtotal, err := strconv.ParseInt(r.URL.Query().Get("subtotal"), 10, 64)
	if err != nil || subtotal < 0 {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "VALIDATION_ERROR",
			"message": "subtotal must be a non-negative integer",
		})
		return
	}

	dc, err := c.discounts.FindByCode(r.Context(), code)
	if err != nil {
		if nfe, ok := apperrors.IsNotFoundError(err); ok {
			c.writeJSON(w, http.StatusNotFound, map[string]string{
				"error":   "NOT_FOUND",
				"message": nfe.Message,
			})
			return
		}
		c.logger.Error("discount preview failed", zap.String("code", code), zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	now := time.Now()
	resp := dto.DiscountPreviewResponse{
		Code:   dc.Code,
		Status: string(dc.StatusOf(now)),
	}
	if dc.StatusOf(now) == domain.DiscountActive {
		resp.DiscountAmount = dc.ComputeDiscount(subtotal)
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *PreviewController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
