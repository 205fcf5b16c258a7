package payments

import (
	"errors"
	"math"
	"strings"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

type StripeProvider struct {
	secretKey string
}

func NewStripe(secretKey string) *StripeProvider {
	if secretKey != "" {
		stripe.Key = secretKey
	}
	return &StripeProvider{secretKey: secretKey}
}

func (p *StripeProvider) Name() string { return "stripe" }

func (p *StripeProvider) CreateIntent(amount float64, currency string, meta Metadata) (*Intent, error) {
	if p.secretKey == "" {
		return nil, &ProviderError{Provider: "stripe", Err: errors.New("stripe is not configured, set STRIPE_SECRET_KEY")}
	}

	// Stripe wants the smallest currency unit (paise for INR).
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(amount * 100))),
		Currency: stripe.String(strings.ToLower(currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	for k, v := range meta {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, &ProviderError{Provider: "stripe", Err: err}
	}

	return &Intent{
		Ref:      pi.ID,
		Amount:   amount,
		Currency: strings.ToUpper(currency),
		Extra: map[string]string{
			"client_secret":     pi.ClientSecret,
			"payment_intent_id": pi.ID,
		},
	}, nil
}

func (p *StripeProvider) Verify(ref string) (*Verification, error) {
	if p.secretKey == "" {
		return nil, &ProviderError{Provider: "stripe", Err: errors.New("stripe is not configured")}
	}

	pi, err := paymentintent.Get(ref, nil)
	if err != nil {
		return nil, &ProviderError{Provider: "stripe", Err: err}
	}

	return &Verification{
		Paid:   pi.Status == stripe.PaymentIntentStatusSucceeded,
		Ref:    pi.ID,
		Amount: float64(pi.Amount) / 100,
	}, nil
}
