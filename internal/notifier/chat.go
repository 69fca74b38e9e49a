package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"partner-program/internal/leadpipe"
)

// ChatNotifier forwards lead events to a chat channel via an incoming
// webhook (Slack-style {"text": ...} payload).
type ChatNotifier struct {
	webhookURL string
	client     *http.Client
}

func NewChatNotifier(webhookURL string) *ChatNotifier {
	return &ChatNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// PostLead sends a formatted lead notification. Returns nil without sending
// when no webhook URL is configured.
func (n *ChatNotifier) PostLead(ctx context.Context, lead leadpipe.Lead) error {
	if n.webhookURL == "" {
		return nil
	}

	text := fmt.Sprintf("New lead: *%s* (%s) from %s, via %s",
		lead.Name, lead.Email, lead.Company, lead.Page)

	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return fmt.Errorf("marshal chat payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("post to chat webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("chat webhook returned HTTP %d", resp.StatusCode)
	}
	return nil
}
