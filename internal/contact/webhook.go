package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Webhook delivers new messages to an external endpoint as JSON.
type Webhook struct {
	URL    string
	client *http.Client
}

// NewWebhook creates a Webhook posting to url.
func NewWebhook(url string) *Webhook {
	return &Webhook{
		URL: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// webhookPayload is the body posted for each message.
type webhookPayload struct {
	Event   string  `json:"event"`
	Message Message `json:"message"`
}

// Send POSTs the message to the webhook URL.
func (w *Webhook) Send(ctx context.Context, m Message) error {
	payload, err := json.Marshal(webhookPayload{Event: "contact.message", Message: m})
	if err != nil {
		return fmt.Errorf("encoding webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.URL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
