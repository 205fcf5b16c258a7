package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	razorpay "github.com/razorpay/razorpay-go"
)

type RazorpayProvider struct {
	keyID     string
	keySecret string
	client    *razorpay.Client
}

func NewRazorpay(keyID, keySecret string) *RazorpayProvider {
	p := &RazorpayProvider{keyID: keyID, keySecret: keySecret}
	if keyID != "" && keySecret != "" {
		p.client = razorpay.NewClient(keyID, keySecret)
	}
	return p
}

func (p *RazorpayProvider) Name() string { return "razorpay" }

func (p *RazorpayProvider) CreateIntent(amount float64, currency string, meta Metadata) (*Intent, error) {
	if p.client == nil {
		return nil, &ProviderError{Provider: "razorpay", Err: errors.New("razorpay is not configured, set RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET")}
	}

	receipt := meta["receipt"]
	if receipt == "" {
		receipt = "rcpt_" + uuid.NewString()
	}
	data := map[string]interface{}{
		"amount":   int64(math.Round(amount * 100)),
		"currency": currency,
		"receipt":  receipt,
		"notes":    toNotes(meta),
	}

	order, err := p.client.Order.Create(data, nil)
	if err != nil {
		return nil, &ProviderError{Provider: "razorpay", Err: err}
	}
	orderID, _ := order["id"].(string)
	if orderID == "" {
		return nil, &ProviderError{Provider: "razorpay", Err: errors.New("order response missing id")}
	}

	return &Intent{
		Ref:      orderID,
		Amount:   amount,
		Currency: currency,
		Extra: map[string]string{
			"order_id": orderID,
			"key_id":   p.keyID,
		},
	}, nil
}

func (p *RazorpayProvider) Verify(ref string) (*Verification, error) {
	if p.client == nil {
		return nil, &ProviderError{Provider: "razorpay", Err: errors.New("razorpay is not configured")}
	}

	order, err := p.client.Order.Fetch(ref, nil, nil)
	if err != nil {
		return nil, &ProviderError{Provider: "razorpay", Err: err}
	}

	status, _ := order["status"].(string)
	amountPaise, _ := order["amount"].(float64)
	return &Verification{
		Paid:   status == "paid",
		Ref:    ref,
		Amount: amountPaise / 100,
	}, nil
}

// VerifyCheckoutSignature validates the signature Razorpay Checkout posts back
// to the client after payment: HMAC-SHA256 of "<order_id>|<payment_id>" keyed
// with the key secret.
func (p *RazorpayProvider) VerifyCheckoutSignature(orderID, paymentID, signature string) bool {
	return verifyRazorpaySignature(orderID, paymentID, signature, p.keySecret)
}

func verifyRazorpaySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%s|%s", orderID, paymentID)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func toNotes(meta Metadata) map[string]interface{} {
	notes := make(map[string]interface{}, len(meta))
	for k, v := range meta {
		notes[k] = v
	}
	return notes
}
