package gateway

import (
	"strconv"
	"time"

	"orchid/internal/config"
	"orchid/internal/domain"
)

const (
	fieldPrefix   = "vnp_"
	hashField     = "vnp_SecureHash"
	hashTypeField = "vnp_SecureHashType"

	createDateLayout = "20060102150405"
)

// RequestBuilder assembles signed payment requests and parses signed
// callbacks for one merchant account. It never touches order storage;
// deciding what a verified callback means for an order is the order
// service's job.
type RequestBuilder struct {
	cfg    config.GatewayConfig
	signer *Signer
}

func NewRequestBuilder(cfg config.GatewayConfig) *RequestBuilder {
	return &RequestBuilder{
		cfg:    cfg,
		signer: NewSigner(cfg.Secret),
	}
}

// PaymentURL builds the redirect URL the buyer is sent to. The amount
// travels in minor units (stored amount times 100); the transaction
// reference is the order code.
func (b *RequestBuilder) PaymentURL(order *domain.Order, clientIP string, now time.Time) string {
	params := map[string]string{
		"vnp_Version":    b.cfg.Version,
		"vnp_Command":    "pay",
		"vnp_TmnCode":    b.cfg.MerchantCode,
		"vnp_Amount":     strconv.FormatInt(order.TotalAmount*100, 10),
		"vnp_CurrCode":   b.cfg.Currency,
		"vnp_TxnRef":     order.Code,
		"vnp_OrderInfo":  "Thanh toan don hang " + order.Code,
		"vnp_OrderType":  "other",
		"vnp_Locale":     b.cfg.Locale,
		"vnp_ReturnUrl":  b.cfg.ReturnURL,
		"vnp_IpAddr":     clientIP,
		"vnp_CreateDate": now.Format(createDateLayout),
	}

	query := Canonicalize(params)
	hash := b.signer.Sign(params)

	return b.cfg.PayURL + "?" + query + "&" + hashField + "=" + hash
}
