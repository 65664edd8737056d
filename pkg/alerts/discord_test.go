package alerts_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timmyb824/aws-cost-sentinel/pkg/alerts"
)

func TestDiscordNotifier_Name(t *testing.T) {
	n := alerts.NewDiscordNotifier("https://discord.com/api/webhooks/x/y")
	assert.Equal(t, "discord", n.Name())
}

func TestDiscordNotifier_Send(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		err := json.NewDecoder(r.Body).Decode(&received)
		require.NoError(t, err)
		// Real Discord webhooks answer 204.
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	n := alerts.NewDiscordNotifier(server.URL)
	err := n.Send(context.Background(), "projected cost warning")
	require.NoError(t, err)
	assert.Equal(t, "projected cost warning", received["content"])
}

func TestDiscordNotifier_Send_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	n := alerts.NewDiscordNotifier(server.URL)
	err := n.Send(context.Background(), "msg")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}
