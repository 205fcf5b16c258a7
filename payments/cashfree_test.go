package payments

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cashfreeTestProvider(srv *httptest.Server) *CashfreeProvider {
	return &CashfreeProvider{
		appID:     "app_test",
		secretKey: "secret_test",
		baseURL:   srv.URL,
		client:    srv.Client(),
	}
}

func TestCashfreeCreateIntent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "app_test", r.Header.Get("x-client-id"))
		assert.Equal(t, "secret_test", r.Header.Get("x-client-secret"))
		assert.Equal(t, cashfreeAPIVersion, r.Header.Get("x-api-version"))

		var req cashfreeOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 750.0, req.OrderAmount)
		assert.Equal(t, "9999999999", req.CustomerDetails.CustomerPhone)

		json.NewEncoder(w).Encode(cashfreeOrderResponse{
			OrderID:          req.OrderID,
			OrderStatus:      "ACTIVE",
			OrderAmount:      req.OrderAmount,
			PaymentSessionID: "session_abc",
		})
	}))
	defer srv.Close()

	p := cashfreeTestProvider(srv)
	intent, err := p.CreateIntent(750, "INR", Metadata{
		"order_id":       "appt_42",
		"customer_id":    "7",
		"customer_phone": "9999999999",
	})
	require.NoError(t, err)
	assert.Equal(t, "appt_42", intent.Ref)
	assert.Equal(t, "session_abc", intent.Extra["payment_session_id"])
}

func TestCashfreeCreateIntentRequiresPhone(t *testing.T) {
	p := &CashfreeProvider{appID: "a", secretKey: "s"}
	_, err := p.CreateIntent(100, "INR", Metadata{})
	var providerErr *ProviderError
	assert.ErrorAs(t, err, &providerErr)
}

func TestCashfreeVerify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/appt_42", r.URL.Path)
		json.NewEncoder(w).Encode(cashfreeOrderResponse{
			OrderID:     "appt_42",
			OrderStatus: "PAID",
			OrderAmount: 750,
		})
	}))
	defer srv.Close()

	p := cashfreeTestProvider(srv)
	v, err := p.Verify("appt_42")
	require.NoError(t, err)
	assert.True(t, v.Paid)
	assert.Equal(t, 750.0, v.Amount)
}

func TestCashfreeVerifyUnpaid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(cashfreeOrderResponse{
			OrderID:     "appt_43",
			OrderStatus: "ACTIVE",
		})
	}))
	defer srv.Close()

	v, err := cashfreeTestProvider(srv).Verify("appt_43")
	require.NoError(t, err)
	assert.False(t, v.Paid)
}

func TestCashfreeErrorResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "authentication failed"})
	}))
	defer srv.Close()

	_, err := cashfreeTestProvider(srv).Verify("appt_44")
	var providerErr *ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Contains(t, err.Error(), "authentication failed")
}
