package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"orchid/internal/dto"
	apperrors "orchid/internal/errors"
)

type OtpService interface {
	Issue(ctx context.Context, email string) error
	Verify(ctx context.Context, email, submitted string) error
}

type OtpController struct {
	service OtpService
	logger  *zap.Logger
}

func NewOtpController(service OtpService, logger *zap.Logger) *OtpController {
	return &OtpController{
		service: service,
		logger:  logger,
	}
}

func (c *OtpController) HandleIssue(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.IssueOtpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, logger, traceID, "invalid JSON body")
		return
	}

	if !validEmail(req.Email) {
		c.writeValidationError(w, logger, traceID, "email must be a valid address")
		return
	}

	if err := c.service.Issue(r.Context(), req.Email); err != nil {
		c.writeServiceError(w, logger, traceID, err)
		return
	}

	writeJSON(w, logger, http.StatusAccepted, map[string]string{
		"traceId": traceID,
		"message": "verification code sent",
	})
}

func (c *OtpController) HandleVerify(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.VerifyOtpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, logger, traceID, "invalid JSON body")
		return
	}

	if !validEmail(req.Email) || req.Code == "" {
		c.writeValidationError(w, logger, traceID, "email and code are required")
		return
	}

	if err := c.service.Verify(r.Context(), req.Email, req.Code); err != nil {
		c.writeServiceError(w, logger, traceID, err)
		return
	}

	writeJSON(w, logger, http.StatusOK, map[string]string{
		"traceId": traceID,
		"message": "email verified",
	})
}

func (c *OtpController) writeServiceError(w http.ResponseWriter, logger *zap.Logger, traceID string, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_ERROR"
	message := "an unexpected error occurred"

	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		status, code, message = http.StatusNotFound, "NOT_FOUND", nfe.Message
	} else if ee, ok := apperrors.IsExpiredError(err); ok {
		status, code, message = http.StatusGone, "EXPIRED", ee.Message
	} else if me, ok := apperrors.IsMismatchError(err); ok {
		status, code, message = http.StatusUnauthorized, "MISMATCH", me.Message
	} else {
		logger.Error("otp operation failed", zap.Error(err))
	}

	writeJSON(w, logger, status, map[string]interface{}{
		"traceId":   traceID,
		"status":    status,
		"code":      code,
		"message":   message,
		"timestamp": time.Now().UTC(),
	})
}

func (c *OtpController) writeValidationError(w http.ResponseWriter, logger *zap.Logger, traceID, message string) {
	writeJSON(w, logger, http.StatusBadRequest, map[string]interface{}{
		"traceId": traceID,
		"error":   "VALIDATION_ERROR",
		"message": message,
	})
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	_, err := mail.ParseAddress(email)
	return err == nil
}
