package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testSecret = "ORCHIDSECRETKEY123456"

func testParams() map[string]string {
	return map[string]string{
		"vnp_Version":    "2.1.0",
		"vnp_Command":    "pay",
		"vnp_TmnCode":    "ORCHID01",
		"vnp_Amount":     "29000000",
		"vnp_CurrCode":   "VND",
		"vnp_TxnRef":     "ORD-9F2A61B4",
		"vnp_OrderInfo":  "Thanh toan don hang ORD-9F2A61B4",
		"vnp_OrderType":  "other",
		"vnp_Locale":     "vn",
		"vnp_ReturnUrl":  "http://localhost:8080/payment/return",
		"vnp_IpAddr":     "203.0.113.10",
		"vnp_CreateDate": "20240615103000",
	}
}

func TestCanonicalize_SortsKeysAscending(t *testing.T) {
	canonical := Canonicalize(map[string]string{
		"vnp_TxnRef":  "ORD-1",
		"vnp_Amount":  "100",
		"vnp_Command": "pay",
	})

	assert.Equal(t, "vnp_Amount=100&vnp_Command=pay&vnp_TxnRef=ORD-1", canonical)
}

func TestCanonicalize_DropsEmptyValues(t *testing.T) {
	canonical := Canonicalize(map[string]string{
		"vnp_Amount":   "100",
		"vnp_BankCode": "",
	})

	assert.Equal(t, "vnp_Amount=100", canonical)
}

func TestCanonicalize_EncodesSpaceAsPlus(t *testing.T) {
	canonical := Canonicalize(map[string]string{
		"vnp_OrderInfo": "Thanh toan don hang ORD-1",
	})

	assert.Equal(t, "vnp_OrderInfo=Thanh+toan+don+hang+ORD-1", canonical)
	assert.NotContains(t, canonical, "%20")
}

func TestSigner_SignIsLowercaseHex(t *testing.T) {
	signer := NewSigner(testSecret)

	hash := signer.Sign(testParams())

	assert.Len(t, hash, 128)
	assert.Regexp(t, "^[0-9a-f]+$", hash)
}

func TestSigner_RoundTrip(t *testing.T) {
	signer := NewSigner(testSecret)
	params := testParams()

	hash := signer.Sign(params)

	assert.True(t, signer.Verify(params, hash))
}

func TestSigner_VerifyIgnoresHexCase(t *testing.T) {
	signer := NewSigner(testSecret)
	params := testParams()

	hash := signer.Sign(params)

	upper := make([]byte, len(hash))
	for i := 0; i < len(hash); i++ {
		c := hash[i]
		if c >= 'a' && c <= 'f' {
			c = c - 'a' + 'A'
		}
		upper[i] = c
	}
	assert.True(t, signer.Verify(params, string(upper)))
}

func TestSigner_FlippingAnyFieldBreaksVerification(t *testing.T) {
	signer := NewSigner(testSecret)
	original := testParams()
	hash := signer.Sign(original)

	for field := range original {
		tampered := testParams()
		tampered[field] = tampered[field] + "x"
		assert.False(t, signer.Verify(tampered, hash), "field %s", field)
	}
}

func TestSigner_TamperedAmountWithOriginalHashFails(t *testing.T) {
	signer := NewSigner(testSecret)
	original := testParams()
	validHashForOriginal := signer.Sign(original)

	forged := testParams()
	forged["vnp_Amount"] = "100"

	assert.False(t, signer.Verify(forged, validHashForOriginal))
}

func TestSigner_WrongSecretFails(t *testing.T) {
	signer := NewSigner(testSecret)
	other := NewSigner("someotherkey")
	params := testParams()

	assert.False(t, other.Verify(params, signer.Sign(params)))
}
