package sms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const twilioAPIBase = "https://api.twilio.com"

// TwilioClient sends messages through the Twilio REST API.
type TwilioClient struct {
	accountSID string
	authToken  string
	from       string
	baseURL    string
	httpClient *http.Client
}

// NewTwilioClient creates a Twilio-backed sender.
func NewTwilioClient(accountSID, authToken, from string) (*TwilioClient, error) {
	if accountSID == "" || authToken == "" || from == "" {
		return nil, errors.New("twilio account SID, auth token and from number are required")
	}

	return &TwilioClient{
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		baseURL:    twilioAPIBase,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// twilioError is the provider's JSON error body
type twilioError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Send posts one message to the Twilio Messages endpoint.
func (c *TwilioClient) Send(ctx context.Context, to, body string) error {
	if to == "" {
		return errors.New("recipient phone number is required")
	}
	if body == "" {
		return errors.New("message body is required")
	}

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", c.from)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.baseURL, c.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("twilio request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var apiErr twilioError
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
		return fmt.Errorf("twilio rejected message (status %d, code %d): %s",
			resp.StatusCode, apiErr.Code, apiErr.Message)
	}
	return fmt.Errorf("twilio rejected message: status %d", resp.StatusCode)
}
