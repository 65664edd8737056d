package monitor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/timmyb824/aws-cost-sentinel/pkg/monitor"
)

func TestEvaluate_EqualIsWithinLimit(t *testing.T) {
	assert.Equal(t, monitor.WithinLimit, monitor.Evaluate(100.00, 100.00))
}

func TestEvaluate_JustOverIsExceeded(t *testing.T) {
	assert.Equal(t, monitor.Exceeded, monitor.Evaluate(100.01, 100.00))
}

func TestEvaluate_UnderIsWithinLimit(t *testing.T) {
	assert.Equal(t, monitor.WithinLimit, monitor.Evaluate(0, 100.00))
	assert.Equal(t, monitor.WithinLimit, monitor.Evaluate(99.99, 100.00))
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "exceeded", monitor.Exceeded.String())
	assert.Equal(t, "within_limit", monitor.WithinLimit.String())
}

func TestAlertMessage(t *testing.T) {
	msg := monitor.AlertMessage(1860.00, 1500.00)

	assert.Contains(t, msg, "1860.00")
	assert.Contains(t, msg, "1500.0")
	assert.Contains(t, msg, "USD")
}
