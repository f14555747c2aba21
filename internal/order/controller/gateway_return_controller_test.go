package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"orchid/internal/domain"
	"orchid/internal/dto"
	apperrors "orchid/internal/errors"
)

type mockGatewayReturnUseCase struct {
	handleReturnFn func(ctx context.Context, query url.Values) (*domain.Order, error)
}

func (m *mockGatewayReturnUseCase) HandleReturn(ctx context.Context, query url.Values) (*domain.Order, error) {
	return m.handleReturnFn(ctx, query)
}

func doReturn(t *testing.T, uc *mockGatewayReturnUseCase) (int, dto.GatewayAck) {
	t.Helper()

	ctrl := NewGatewayReturnController(uc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/payment/return?vnp_TxnRef=ORD-XYZ", nil)
	rec := httptest.NewRecorder()

	ctrl.HandleReturn(rec, req)

	var ack dto.GatewayAck
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))
	return rec.Code, ack
}

func TestGatewayReturnController_AckCodes(t *testing.T) {
	tests := []struct {
		name        string
		result      *domain.Order
		err         error
		wantCode    string
		wantMessage string
	}{
		{
			name:        "settled payment",
			result:      &domain.Order{Code: "ORD-XYZ", PaymentStatus: domain.PaymentStatusSuccess},
			wantCode:    "00",
			wantMessage: "Confirm Success",
		},
		{
			name:        "unknown order",
			err:         apperrors.NewNotFoundError("order with code ORD-XYZ not found"),
			wantCode:    "01",
			wantMessage: "Order Not Found",
		},
		{
			name:        "already settled",
			err:         apperrors.NewConflictError("payment is no longer awaiting the gateway"),
			wantCode:    "02",
			wantMessage: "Order Already Confirmed",
		},
		{
			name:        "amount mismatch",
			err:         apperrors.NewAmountMismatchError("callback amount does not match order total"),
			wantCode:    "04",
			wantMessage: "Invalid Amount",
		},
		{
			name:        "bad signature",
			err:         apperrors.NewSignatureError("signature verification failed"),
			wantCode:    "97",
			wantMessage: "Invalid Checksum",
		},
		{
			name:        "storage failure",
			err:         apperrors.NewInternalError("querying order by code", nil),
			wantCode:    "99",
			wantMessage: "Unknown Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockGatewayReturnUseCase{
				handleReturnFn: func(_ context.Context, _ url.Values) (*domain.Order, error) {
					return tt.result, tt.err
				},
			}

			status, ack := doReturn(t, uc)

			// The gateway treats any non-200 as delivery failure and
			// retries, so every verdict rides on a 200.
			assert.Equal(t, http.StatusOK, status)
			assert.Equal(t, tt.wantCode, ack.RspCode)
			assert.Equal(t, tt.wantMessage, ack.Message)
		})
	}
}
