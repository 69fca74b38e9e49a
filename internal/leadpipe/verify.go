package leadpipe

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// SignatureHeader carries the hex HMAC-SHA256 of the raw request body.
const SignatureHeader = "X-Leadpipe-Signature"

// VerifySignature checks signatureHeader against the HMAC-SHA256 of rawBody
// keyed by secret. It must run before the body is parsed and before any side
// effect. A missing secret, a missing header, or a header of any length that
// does not match the expected digest all return false; the function never
// panics on malformed input.
func VerifySignature(rawBody []byte, signatureHeader, secret string) bool {
	if secret == "" || signatureHeader == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(rawBody)
	expected := hex.EncodeToString(mac.Sum(nil))

	return subtle.ConstantTimeCompare([]byte(expected), []byte(signatureHeader)) == 1
}

// Sign computes the hex HMAC-SHA256 of body with secret. Used by tests and by
// integrations that need to produce valid signatures.
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
