package controller

import (
	"context"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"orchid/internal/domain"
	"orchid/internal/dto"
	apperrors "orchid/internal/errors"
)

type GatewayReturnUseCase interface {
	HandleReturn(ctx context.Context, query url.Values) (*domain.Order, error)
}

type GatewayReturnController struct {
	useCase GatewayReturnUseCase
	logger  *zap.Logger
}

func NewGatewayReturnController(useCase GatewayReturnUseCase, logger *zap.Logger) *GatewayReturnController {
	return &GatewayReturnController{
		useCase: useCase,
		logger:  logger,
	}
}

// Gateway acknowledgment codes, fixed by the vendor.
const (
	ackConfirmed      = "00"
	ackOrderNotFound  = "01"
	ackAlreadySettled = "02"
	ackAmountInvalid  = "04"
	ackBadSignature   = "97"
	ackInternalError  = "99"
)

// HandleReturn answers in the vendor's acknowledgment format. The HTTP
// status stays 200 for every recognized condition; the verdict travels
// in the body's RspCode.
func (c *GatewayReturnController) HandleReturn(w http.ResponseWriter, r *http.Request) {
	order, err := c.useCase.HandleReturn(r.Context(), r.URL.Query())
	if err != nil {
		c.writeAck(w, ackFor(err))
		return
	}

	c.logger.Info("gateway return processed",
		zap.String("orderCode", order.Code),
		zap.String("paymentStatus", string(order.PaymentStatus)),
	)
	c.writeAck(w, dto.GatewayAck{RspCode: ackConfirmed, Message: "Confirm Success"})
}

func ackFor(err error) dto.GatewayAck {
	if _, ok := apperrors.IsSignatureError(err); ok {
		return dto.GatewayAck{RspCode: ackBadSignature, Message: "Invalid Checksum"}
	}
	if _, ok := apperrors.IsNotFoundError(err); ok {
		return dto.GatewayAck{RspCode: ackOrderNotFound, Message: "Order Not Found"}
	}
	if _, ok := apperrors.IsAmountMismatchError(err); ok {
		return dto.GatewayAck{RspCode: ackAmountInvalid, Message: "Invalid Amount"}
	}
	if _, ok := apperrors.IsConflictError(err); ok {
		return dto.GatewayAck{RspCode: ackAlreadySettled, Message: "Order Already Confirmed"}
	}
	return dto.GatewayAck{RspCode: ackInternalError, Message: "Unknown Error"}
}

func (c *GatewayReturnController) writeAck(w http.ResponseWriter, ack dto.GatewayAck) {
	writeJSON(w, c.logger, http.StatusOK, ack)
}
