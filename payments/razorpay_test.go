package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyRazorpaySignature(t *testing.T) {
	secret := "test_secret"
	orderID := "order_DBJOWzybf0sJbb"
	paymentID := "pay_29QQoUBi66xm2f"

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	signature := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, verifyRazorpaySignature(orderID, paymentID, signature, secret))
	assert.False(t, verifyRazorpaySignature(orderID, paymentID, signature, "wrong_secret"))
	assert.False(t, verifyRazorpaySignature(orderID, "pay_other", signature, secret))
	assert.False(t, verifyRazorpaySignature(orderID, paymentID, "deadbeef", secret))
}

func TestRegistryForName(t *testing.T) {
	r := &Registry{providers: map[string]Provider{
		"stripe": NewStripe(""),
	}}

	p, err := r.ForName("stripe")
	assert.NoError(t, err)
	assert.Equal(t, "stripe", p.Name())

	_, err = r.ForName("paypal")
	assert.Error(t, err)
}
