package gateway

import (
	"net/url"
	"strconv"
	"strings"

	"orchid/internal/errors"
)

type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailed  Outcome = "failed"
)

// CallbackResult is what a verified callback asserts: which order, how
// much, and whether the gateway settled or rejected the payment.
type CallbackResult struct {
	TxnRef       string
	Amount       int64
	ResponseCode string
	Outcome      Outcome
}

const successResponseCode = "00"

// ParseCallback verifies a gateway callback and extracts its verdict.
// Every gateway-prefixed field except the hash fields participates in
// the recomputed signature. Verification fails closed: a missing hash,
// a missing required field, a malformed amount, or a signature mismatch
// all yield SignatureError and nothing else is inspected.
func (b *RequestBuilder) ParseCallback(query url.Values) (*CallbackResult, error) {
	providedHash := query.Get(hashField)
	if providedHash == "" {
		return nil, errors.NewSignatureError("callback is missing the secure hash")
	}

	params := make(map[string]string)
	for key := range query {
		if !strings.HasPrefix(key, fieldPrefix) {
			continue
		}
		if key == hashField || key == hashTypeField {
			continue
		}
		params[key] = query.Get(key)
	}

	if !b.signer.Verify(params, providedHash) {
		return nil, errors.NewSignatureError("callback secure hash does not verify")
	}

	txnRef := params["vnp_TxnRef"]
	amountStr := params["vnp_Amount"]
	responseCode := params["vnp_ResponseCode"]
	if txnRef == "" || amountStr == "" || responseCode == "" {
		return nil, errors.NewSignatureError("callback is missing required fields")
	}

	amountMinor, err := strconv.ParseInt(amountStr, 10, 64)
	if err != nil || amountMinor < 0 {
		return nil, errors.NewSignatureError("callback amount is malformed")
	}
	// The wire amount is the stored amount times 100. Anything that does
	// not divide back evenly cannot equal any stored total, and silently
	// rounding it would hide the disagreement.
	if amountMinor%100 != 0 {
		return nil, errors.NewSignatureError("callback amount is malformed")
	}

	outcome := OutcomeFailed
	if responseCode == successResponseCode {
		outcome = OutcomeSuccess
	}

	return &CallbackResult{
		TxnRef:       txnRef,
		Amount:       amountMinor / 100,
		ResponseCode: responseCode,
		Outcome:      outcome,
	}, nil
}
