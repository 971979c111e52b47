// Package sms dispatches text messages through the Twilio REST API.
package sms

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/bookhive/bookhive-service/config"
)

// Sender delivers a text message to a phone number. Unlike the catalog
// path, delivery failures are surfaced to the caller: an undelivered OTP
// has no fallback.
type Sender interface {
	Send(ctx context.Context, to, body string) error
}

type twilioSender struct {
	cfg    config.Twilio
	client *http.Client
}

func NewTwilioSender(cfg config.Twilio) *twilioSender {
	return &twilioSender{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (t *twilioSender) Send(ctx context.Context, to, body string) error {
	form := url.Values{}
	form.Set("To", to)
	form.Set("From", t.cfg.FromNumber)
	form.Set("Body", body)

	u := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", t.cfg.BaseURL, url.PathEscape(t.cfg.AccountSID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, strings.NewReader(form.Encode()))
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(t.cfg.AccountSID, t.cfg.AuthToken)

	resp, err := t.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "twilio request")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(resp.Body)
		return errors.Errorf("twilio API returned %d: %s", resp.StatusCode, respBody)
	}
	return nil
}
