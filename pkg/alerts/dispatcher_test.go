package alerts_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timmyb824/aws-cost-sentinel/pkg/alerts"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeNotifier struct {
	name   string
	err    error
	called bool
}

func (f *fakeNotifier) Name() string { return f.name }

func (f *fakeNotifier) Send(_ context.Context, _ string) error {
	f.called = true
	return f.err
}

func TestDispatcher_AllSucceed(t *testing.T) {
	a := &fakeNotifier{name: "gotify"}
	b := &fakeNotifier{name: "discord"}
	c := &fakeNotifier{name: "ntfy"}

	d := alerts.NewDispatcher([]alerts.Notifier{a, b, c}, testLogger())
	outcome := d.Dispatch(context.Background(), "msg")

	assert.True(t, outcome.AllSucceeded)
	require.Len(t, outcome.Results, 3)
	for _, r := range outcome.Results {
		assert.True(t, r.Succeeded)
		assert.Equal(t, "sent", r.Status)
	}
}

func TestDispatcher_FirstChannelFailureDoesNotShortCircuit(t *testing.T) {
	a := &fakeNotifier{name: "gotify", err: errors.New("connection refused")}
	b := &fakeNotifier{name: "discord"}
	c := &fakeNotifier{name: "ntfy"}

	d := alerts.NewDispatcher([]alerts.Notifier{a, b, c}, testLogger())
	outcome := d.Dispatch(context.Background(), "msg")

	assert.True(t, a.called)
	assert.True(t, b.called)
	assert.True(t, c.called)

	assert.False(t, outcome.AllSucceeded)
	require.Len(t, outcome.Results, 3)
	assert.False(t, outcome.Results[0].Succeeded)
	assert.Contains(t, outcome.Results[0].Status, "connection refused")
	assert.True(t, outcome.Results[1].Succeeded)
	assert.True(t, outcome.Results[2].Succeeded)
}

func TestDispatcher_AllSucceededRequiresEveryChannel(t *testing.T) {
	a := &fakeNotifier{name: "gotify"}
	b := &fakeNotifier{name: "discord"}
	c := &fakeNotifier{name: "ntfy", err: errors.New("timeout")}

	d := alerts.NewDispatcher([]alerts.Notifier{a, b, c}, testLogger())
	outcome := d.Dispatch(context.Background(), "msg")

	assert.False(t, outcome.AllSucceeded)
}

func TestDispatcher_RealNotifiers(t *testing.T) {
	okServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer okServer.Close()
	failServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer failServer.Close()

	notifiers := []alerts.Notifier{
		alerts.NewGotifyNotifier(failServer.URL, "tok"),
		alerts.NewDiscordNotifier(okServer.URL),
		alerts.NewNtfyNotifier(okServer.URL, "topic", "tok"),
	}

	d := alerts.NewDispatcher(notifiers, testLogger())
	outcome := d.Dispatch(context.Background(), "msg")

	assert.False(t, outcome.AllSucceeded)
	require.Len(t, outcome.Results, 3)
	assert.Equal(t, "gotify", outcome.Results[0].Channel)
	assert.False(t, outcome.Results[0].Succeeded)
	assert.True(t, outcome.Results[1].Succeeded)
	assert.True(t, outcome.Results[2].Succeeded)
}
