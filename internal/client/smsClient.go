package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"yuancity-finance-portal/internal/config"
)

// SMSClient delivers one-time passcodes to a phone number.
type SMSClient interface {
	SendSMS(ctx context.Context, toNumber, body string) error
}

type smsClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	accountSID string
	authToken  string
	fromNumber string
}

func NewSMSClient(cfg *config.SMS) SMSClient {
	return &smsClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL: cfg.BaseApiURL,
		accountSID: cfg.AccountSID,
		authToken:  cfg.AuthToken,
		fromNumber: cfg.FromNumber,
	}
}

func (c *smsClientImpl) SendSMS(ctx context.Context, toNumber, body string) error {
	if !strings.HasPrefix(toNumber, "+") {
		return fmt.Errorf("invalid destination number: %s", toNumber)
	}

	// SMS bodies are capped at 160 characters by the carrier.
	if len(body) > 160 {
		body = body[:160]
	}

	form := url.Values{}
	form.Set("To", toNumber)
	form.Set("From", c.fromNumber)
	form.Set("Body", body)

	endpoint := fmt.Sprintf(
		"%s/2010-04-01/Accounts/%s/Messages.json",
		c.baseApiURL,
		c.accountSID,
	)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		endpoint,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}
	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sms provider error %d: %s", resp.StatusCode, string(b))
	}

	return nil
}
