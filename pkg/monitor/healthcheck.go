package monitor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Pinger signals liveness to an external health-check endpoint
// (healthchecks.io style: a plain GET on success).
type Pinger struct {
	url    string
	client *http.Client
}

// NewPinger creates a health-check pinger.
func NewPinger(url string) *Pinger {
	return &Pinger{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Ping issues the liveness GET. Callers treat failures as log-and-continue.
func (p *Pinger) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return fmt.Errorf("create health check request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("send health check signal: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}
	return nil
}
