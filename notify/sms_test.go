package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMSSenderSend(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer key123", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := &SMSSender{url: srv.URL, apiKey: "key123", client: srv.Client()}
	err := s.Send("9999999999", "your appointment starts soon")
	require.NoError(t, err)
	assert.Equal(t, "9999999999", got["to"])
	assert.Equal(t, "your appointment starts soon", got["message"])
}

func TestSMSSenderGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	s := &SMSSender{url: srv.URL, client: srv.Client()}
	assert.Error(t, s.Send("9999999999", "hi"))
}

func TestSMSSenderUnconfigured(t *testing.T) {
	s := &SMSSender{}
	assert.Error(t, s.Send("9999999999", "hi"))
}
