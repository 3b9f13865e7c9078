package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Notifier posts the run summary to a chat webhook. Delivery is
// best-effort: callers log failures and let the run succeed anyway.
type Notifier struct {
	url    string
	client *http.Client
}

// NewNotifier creates a notifier for the given webhook URL. An empty URL
// yields a notifier whose Notify is a no-op.
func NewNotifier(url string) *Notifier {
	return &Notifier{
		url:    url,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// chatMessage is the payload shape most chat webhooks accept.
type chatMessage struct {
	Text string `json:"text"`
}

// Notify posts the message to the webhook. A non-2xx response is an error.
func (n *Notifier) Notify(ctx context.Context, text string) error {
	if n.url == "" {
		return nil
	}

	payload, err := json.Marshal(chatMessage{Text: text})
	if err != nil {
		return fmt.Errorf("failed to encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
