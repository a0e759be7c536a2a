package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// VerifySignature recomputes the checkout callback signature from the
// server-held key secret and compares it in constant time. The signed
// payload is "<session id>|<payment id>", hex encoded.
func (c *HTTPClient) VerifySignature(sessionID, paymentID, signature string) bool {
	return verify(c.keySecret, sessionID, paymentID, signature)
}

func verify(secret, sessionID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(sessionID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
