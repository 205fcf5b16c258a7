package payments

import (
	"fmt"

	"github.com/UDAVALAPATISURESH/backend-spn/config"
)

// Metadata is passed through to the gateway (appointment id, customer
// contact details for gateways that require them).
type Metadata map[string]string

// Intent is a created payment order/intent. Ref is the provider-side id the
// payment is verified against later; Extra carries provider-specific values
// the frontend checkout needs (client secret, key id, session id).
type Intent struct {
	Ref      string
	Amount   float64
	Currency string
	Extra    map[string]string
}

// Verification is the provider-confirmed state of a payment. Paid is the only
// path by which a payment record may move to the paid status.
type Verification struct {
	Paid   bool
	Ref    string
	Amount float64
}

// Provider abstracts a payment gateway. The core only creates intents and
// reacts to verified status; gateway protocols live behind this interface.
type Provider interface {
	Name() string
	CreateIntent(amount float64, currency string, meta Metadata) (*Intent, error)
	Verify(ref string) (*Verification, error)
}

// ProviderError wraps a gateway failure so callers can surface the provider
// message with a 500.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Registry holds the configured providers keyed by name.
type Registry struct {
	providers map[string]Provider
}

func NewRegistry(cfg *config.Config) *Registry {
	r := &Registry{providers: map[string]Provider{}}
	r.providers["stripe"] = NewStripe(cfg.StripeSecretKey)
	r.providers["razorpay"] = NewRazorpay(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	r.providers["cashfree"] = NewCashfree(cfg)
	return r
}

func (r *Registry) ForName(name string) (Provider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("provider must be \"stripe\", \"razorpay\", or \"cashfree\"")
	}
	return p, nil
}
