package alerts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// gotifyPriority maps to a "high" notification on most clients.
const gotifyPriority = 5

// GotifyNotifier sends alerts to a Gotify server.
type GotifyNotifier struct {
	host   string
	token  string
	client *http.Client
}

// NewGotifyNotifier creates a Gotify notifier. The token authenticates as a
// query parameter per the Gotify message API.
func NewGotifyNotifier(host, token string) *GotifyNotifier {
	return &GotifyNotifier{
		host:  strings.TrimRight(host, "/"),
		token: token,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (g *GotifyNotifier) Name() string { return "gotify" }

func (g *GotifyNotifier) Send(ctx context.Context, message string) error {
	payload := gotifyMessage{
		Message:  message,
		Priority: gotifyPriority,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal gotify payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/message?token=%s", g.host, url.QueryEscape(g.token))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create gotify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("send gotify alert: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("gotify returned status %d", resp.StatusCode)
	}
	return nil
}

type gotifyMessage struct {
	Message  string `json:"message"`
	Priority int    `json:"priority"`
}
