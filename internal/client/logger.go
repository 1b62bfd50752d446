package client

import (
	"context"
	"log"

	"github.com/google/uuid"
)

type requestIDKey struct{}

// WithRequestID attaches a request id that the client sends as X-Request-Id
// instead of generating one.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the id stored by WithRequestID, or a fresh one
func RequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok && rid != "" {
		return rid
	}
	return uuid.NewString()
}

// Logger prefixes every line with the request id of one API call
type Logger struct {
	requestID string
}

// NewLogger creates a logger for a single request
func NewLogger(requestID string) *Logger {
	return &Logger{requestID: requestID}
}

// LogError logs an error with context
func (l *Logger) LogError(operation string, err error) {
	log.Printf("[error] request_id=%s operation=%s error=%v", l.requestID, operation, err)
}

// LogInfof logs a formatted info message with context
func (l *Logger) LogInfof(operation string, format string, args ...interface{}) {
	log.Printf("[info] request_id=%s operation=%s "+format, append([]interface{}{l.requestID, operation}, args...)...)
}
