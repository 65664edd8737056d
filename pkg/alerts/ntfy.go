package alerts

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// NtfyNotifier publishes alerts to an ntfy topic. The body is the raw
// message text; authentication is a bearer token header.
type NtfyNotifier struct {
	topicURL string
	token    string
	client   *http.Client
}

// NewNtfyNotifier creates an ntfy notifier for the given server and topic.
func NewNtfyNotifier(baseURL, topic, token string) *NtfyNotifier {
	return &NtfyNotifier{
		topicURL: strings.TrimRight(baseURL, "/") + "/" + topic,
		token:    token,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (n *NtfyNotifier) Name() string { return "ntfy" }

func (n *NtfyNotifier) Send(ctx context.Context, message string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.topicURL, strings.NewReader(message))
	if err != nil {
		return fmt.Errorf("create ntfy request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+n.token)

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send ntfy alert: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("ntfy returned status %d", resp.StatusCode)
	}
	return nil
}
