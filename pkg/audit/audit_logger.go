package audit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of audit event
type EventType string

const (
	EventContactSent             EventType = "contact_sent"
	EventContactRelayFailed      EventType = "contact_relay_failed"
	EventContactValidationFailed EventType = "contact_validation_failed"
	EventContactInFlight         EventType = "contact_in_flight_rejected"
	EventRateLimitTriggered      EventType = "rate_limit_triggered"
	EventThemeUpdated            EventType = "theme_updated"
)

// Event is a structured audit record
type Event struct {
	Timestamp   time.Time              `json:"timestamp"`
	Service     string                 `json:"service"`
	Environment string                 `json:"env"`
	Level       string                 `json:"level"`
	Event       EventType              `json:"event"`
	Subject     string                 `json:"subject,omitempty"` // masked email or hashed visitor id
	IP          string                 `json:"ip,omitempty"`
	UserAgent   string                 `json:"user_agent,omitempty"`
	RequestID   string                 `json:"request_id,omitempty"`
	Details     map[string]interface{} `json:"details,omitempty"`
}

// Logger writes audit events through zap
type Logger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

// New builds a production zap logger writing JSON to stdout
func New(serviceName, environment string) *Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(zap.AddCaller())
	if err != nil {
		logger, _ = zap.NewProduction()
	}
	return NewWithLogger(logger, serviceName, environment)
}

// NewWithLogger wraps an existing zap logger
func NewWithLogger(z *zap.Logger, serviceName, environment string) *Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return &Logger{
		zapLogger:   z,
		serviceName: serviceName,
		environment: environment,
	}
}

// Nop discards every event
func Nop() *Logger {
	return NewWithLogger(zap.NewNop(), "", "")
}

// Log logs an audit event
func (l *Logger) Log(_ context.Context, event Event) {
	if l == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	event.Service = l.serviceName
	event.Environment = l.environment

	level := zapcore.InfoLevel
	switch event.Event {
	case EventContactValidationFailed, EventContactInFlight, EventRateLimitTriggered:
		level = zapcore.WarnLevel
	case EventContactRelayFailed:
		level = zapcore.ErrorLevel
	}
	event.Level = level.String()

	fields := []zap.Field{
		zap.String("service", event.Service),
		zap.String("env", event.Environment),
		zap.String("event", string(event.Event)),
	}
	if event.Subject != "" {
		fields = append(fields, zap.String("subject", event.Subject))
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.UserAgent != "" {
		fields = append(fields, zap.String("user_agent", event.UserAgent))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if len(event.Details) > 0 {
		detailsJSON, _ := json.Marshal(event.Details)
		fields = append(fields, zap.String("details", string(detailsJSON)))
	}

	l.zapLogger.Log(level, string(event.Event), fields...)
}

// LogContact records the result of a contact submission
func (l *Logger) LogContact(ctx context.Context, event EventType, email, ip, requestID string, details map[string]interface{}) {
	l.Log(ctx, Event{
		Event:     event,
		Subject:   MaskEmail(email),
		IP:        ip,
		RequestID: requestID,
		Details:   details,
	})
}

// LogRateLimitTriggered logs when rate limiting is triggered
func (l *Logger) LogRateLimitTriggered(ctx context.Context, ip, userAgent, requestID, endpoint string) {
	l.Log(ctx, Event{
		Event:     EventRateLimitTriggered,
		Subject:   ip,
		IP:        ip,
		UserAgent: userAgent,
		RequestID: requestID,
		Details:   map[string]interface{}{"endpoint": endpoint},
	})
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() error {
	if l == nil {
		return nil
	}
	return l.zapLogger.Sync()
}

// MaskEmail masks an email for logging (e.g., "j***@example.com")
func MaskEmail(email string) string {
	if len(email) < 3 {
		return "***"
	}
	atIndex := strings.IndexByte(email, '@')
	if atIndex <= 1 {
		return "***" + email[1:]
	}
	return string(email[0]) + "***" + email[atIndex:]
}

// HashValue creates a short SHA256 hash of a value (for logging without PII)
func HashValue(value string) string {
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:8])
}
