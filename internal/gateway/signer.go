package gateway

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
)

// Signer computes and checks the keyed hash the gateway attaches to
// every request and callback.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Canonicalize turns a parameter set into the exact string both sides
// hash: keys sorted ascending by byte value, empty values dropped, keys
// and values form-encoded, pairs joined with '&'.
//
// The gateway mandates the form-encoding variant (space becomes '+').
// Plain percent-encoding produces %20 instead and silently breaks every
// signature, so all encoding goes through url.QueryEscape.
func Canonicalize(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, url.QueryEscape(k)+"="+url.QueryEscape(params[k]))
	}
	return strings.Join(pairs, "&")
}

// Sign returns the lowercase hex HMAC-SHA512 of the canonicalized
// parameter set.
func (s *Signer) Sign(params map[string]string) string {
	mac := hmac.New(sha512.New, s.secret)
	mac.Write([]byte(Canonicalize(params)))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify recomputes the signature over params and compares it to the
// supplied hash in constant time. Case of the supplied hex is ignored.
func (s *Signer) Verify(params map[string]string, providedHash string) bool {
	want := s.Sign(params)
	got := strings.ToLower(providedHash)
	return hmac.Equal([]byte(want), []byte(got))
}
