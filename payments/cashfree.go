package payments

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/UDAVALAPATISURESH/backend-spn/config"
)

const cashfreeAPIVersion = "2022-09-01"

// CashfreeProvider talks to the Cashfree PG REST API directly. Cashfree has no
// maintained Go SDK, so orders are created and fetched over plain HTTP.
type CashfreeProvider struct {
	appID     string
	secretKey string
	baseURL   string
	returnURL string
	notifyURL string
	client    *http.Client
}

func NewCashfree(cfg *config.Config) *CashfreeProvider {
	base := "https://api.cashfree.com/pg"
	if cfg.TestMode {
		base = "https://sandbox.cashfree.com/pg"
	}
	return &CashfreeProvider{
		appID:     cfg.CashfreeAppID,
		secretKey: cfg.CashfreeSecretKey,
		baseURL:   base,
		returnURL: cfg.FrontendURL + "/payment/status?order_id={order_id}",
		notifyURL: cfg.BackendURL + "/payments/cashfree/webhook",
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (p *CashfreeProvider) Name() string { return "cashfree" }

type cashfreeOrderRequest struct {
	OrderID         string            `json:"order_id"`
	OrderAmount     float64           `json:"order_amount"`
	OrderCurrency   string            `json:"order_currency"`
	CustomerDetails cashfreeCustomer  `json:"customer_details"`
	OrderMeta       cashfreeOrderMeta `json:"order_meta"`
	OrderNote       string            `json:"order_note,omitempty"`
}

type cashfreeCustomer struct {
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
	CustomerPhone string `json:"customer_phone"`
}

type cashfreeOrderMeta struct {
	ReturnURL string `json:"return_url,omitempty"`
	NotifyURL string `json:"notify_url,omitempty"`
}

type cashfreeOrderResponse struct {
	OrderID          string  `json:"order_id"`
	OrderStatus      string  `json:"order_status"`
	OrderAmount      float64 `json:"order_amount"`
	PaymentSessionID string  `json:"payment_session_id"`
	Message          string  `json:"message"`
}

func (p *CashfreeProvider) CreateIntent(amount float64, currency string, meta Metadata) (*Intent, error) {
	if p.appID == "" || p.secretKey == "" {
		return nil, &ProviderError{Provider: "cashfree", Err: errors.New("cashfree is not configured, set CASHFREE_APP_ID and CASHFREE_SECRET_KEY")}
	}
	// Cashfree rejects orders without a customer phone.
	if meta["customer_phone"] == "" {
		return nil, &ProviderError{Provider: "cashfree", Err: errors.New("customer phone number is required for cashfree payments")}
	}

	orderID := meta["order_id"]
	if orderID == "" {
		orderID = "appt_" + uuid.NewString()
	}
	req := cashfreeOrderRequest{
		OrderID:       orderID,
		OrderAmount:   amount,
		OrderCurrency: currency,
		CustomerDetails: cashfreeCustomer{
			CustomerID:    meta["customer_id"],
			CustomerName:  meta["customer_name"],
			CustomerEmail: meta["customer_email"],
			CustomerPhone: meta["customer_phone"],
		},
		OrderMeta: cashfreeOrderMeta{
			ReturnURL: p.returnURL,
			NotifyURL: p.notifyURL,
		},
		OrderNote: meta["note"],
	}

	var resp cashfreeOrderResponse
	if err := p.do(http.MethodPost, "/orders", req, &resp); err != nil {
		return nil, err
	}

	return &Intent{
		Ref:      resp.OrderID,
		Amount:   amount,
		Currency: currency,
		Extra: map[string]string{
			"order_id":           resp.OrderID,
			"payment_session_id": resp.PaymentSessionID,
		},
	}, nil
}

func (p *CashfreeProvider) Verify(ref string) (*Verification, error) {
	if p.appID == "" || p.secretKey == "" {
		return nil, &ProviderError{Provider: "cashfree", Err: errors.New("cashfree is not configured")}
	}

	var resp cashfreeOrderResponse
	if err := p.do(http.MethodGet, "/orders/"+ref, nil, &resp); err != nil {
		return nil, err
	}

	return &Verification{
		Paid:   resp.OrderStatus == "PAID",
		Ref:    resp.OrderID,
		Amount: resp.OrderAmount,
	}, nil
}

func (p *CashfreeProvider) do(method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &ProviderError{Provider: "cashfree", Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, p.baseURL+path, reader)
	if err != nil {
		return &ProviderError{Provider: "cashfree", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-client-id", p.appID)
	req.Header.Set("x-client-secret", p.secretKey)
	req.Header.Set("x-api-version", cashfreeAPIVersion)

	resp, err := p.client.Do(req)
	if err != nil {
		return &ProviderError{Provider: "cashfree", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ProviderError{Provider: "cashfree", Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr cashfreeOrderResponse
		_ = json.Unmarshal(raw, &apiErr)
		msg := apiErr.Message
		if msg == "" {
			msg = string(raw)
		}
		return &ProviderError{Provider: "cashfree", Err: fmt.Errorf("%s %s returned %d: %s", method, path, resp.StatusCode, msg)}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &ProviderError{Provider: "cashfree", Err: err}
	}
	return nil
}
