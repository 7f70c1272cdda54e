package audit_test

import (
	"context"
	"testing"

	"portfolio-backend/pkg/audit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogContact(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := audit.NewWithLogger(zap.New(core), "portfolio", "test")

	l.LogContact(context.Background(), audit.EventContactRelayFailed, "john@example.com", "1.2.3.4", "req-1", nil)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Equal(t, string(audit.EventContactRelayFailed), entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "j***@example.com", fields["subject"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "portfolio", fields["service"])
}

func TestLogLevels(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := audit.NewWithLogger(zap.New(core), "portfolio", "test")

	l.Log(context.Background(), audit.Event{Event: audit.EventContactSent})
	l.Log(context.Background(), audit.Event{Event: audit.EventContactValidationFailed, Details: map[string]interface{}{"reason": "x"}})

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.JSONEq(t, `{"reason":"x"}`, entries[1].ContextMap()["details"].(string))
}

func TestNilLogger(t *testing.T) {
	var l *audit.Logger
	assert.NotPanics(t, func() {
		l.LogRateLimitTriggered(context.Background(), "1.2.3.4", "curl", "", "/v1/contact")
		_ = l.Sync()
	})
}

func TestMasking(t *testing.T) {
	assert.Equal(t, "j***@example.com", audit.MaskEmail("john@example.com"))
	assert.Equal(t, "***", audit.MaskEmail("a"))
	assert.Len(t, audit.HashValue("visitor"), 16)
	assert.Equal(t, audit.HashValue("visitor"), audit.HashValue("visitor"))
}
