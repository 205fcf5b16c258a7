package notify

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/UDAVALAPATISURESH/backend-spn/config"
)

// SMSSender posts messages to a generic HTTP SMS gateway. The gateway URL and
// API key come from SMS_GATEWAY_URL and SMS_GATEWAY_KEY; when unset, sends
// fail and callers fall back to email.
type SMSSender struct {
	url    string
	apiKey string
	client *http.Client
}

func NewSMSSender(cfg *config.Config) *SMSSender {
	return &SMSSender{
		url:    cfg.SMSGatewayURL,
		apiKey: cfg.SMSGatewayKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *SMSSender) Send(phone, message string) error {
	if s.url == "" {
		return errors.New("sms gateway is not configured")
	}

	payload, err := json.Marshal(map[string]string{
		"to":      phone,
		"message": message,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sms gateway returned %d", resp.StatusCode)
	}
	return nil
}
