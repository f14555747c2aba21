package usecase

import (
	"context"
	"net/url"

	"go.uber.org/zap"

	"orchid/internal/domain"
	"orchid/internal/gateway"
)

type CallbackParser interface {
	ParseCallback(query url.Values) (*gateway.CallbackResult, error)
}

type PaymentService interface {
	ApplyGatewayResult(ctx context.Context, txnRef string, outcome gateway.Outcome, amount int64) (*domain.Order, error)
}

type GatewayReturnUseCase struct {
	parser   CallbackParser
	payments PaymentService
	logger   *zap.Logger
}

func NewGatewayReturnUseCase(parser CallbackParser, payments PaymentService, logger *zap.Logger) *GatewayReturnUseCase {
	return &GatewayReturnUseCase{
		parser:   parser,
		payments: payments,
		logger:   logger,
	}
}

// HandleReturn verifies the callback first and only then lets the
// payment service decide what the verified outcome means for the
// stored order. A callback that fails verification never reaches the
// order at all.
func (uc *GatewayReturnUseCase) HandleReturn(ctx context.Context, query url.Values) (*domain.Order, error) {
	result, err := uc.parser.ParseCallback(query)
	if err != nil {
		// Full context goes to the log; the response stays generic.
		uc.logger.Warn("gateway callback failed verification",
			zap.String("query", query.Encode()),
			zap.Error(err),
		)
		return nil, err
	}

	uc.logger.Info("gateway callback verified",
		zap.String("txnRef", result.TxnRef),
		zap.String("responseCode", result.ResponseCode),
		zap.String("outcome", string(result.Outcome)),
	)

	return uc.payments.ApplyGatewayResult(ctx, result.TxnRef, result.Outcome, result.Amount)
}
