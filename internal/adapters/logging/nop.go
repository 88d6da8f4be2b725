package logging

import (
	"context"

	"github.com/felixgeelhaar/runbook/internal/ports"
)

// NopLogger discards everything. Useful as a default and in tests.
type NopLogger struct{}

// NewNopLogger creates a new NopLogger.
func NewNopLogger() *NopLogger {
	return &NopLogger{}
}

// Debug discards the message.
func (l *NopLogger) Debug(context.Context, string, ...ports.Field) {}

// Info discards the message.
func (l *NopLogger) Info(context.Context, string, ...ports.Field) {}

// Warn discards the message.
func (l *NopLogger) Warn(context.Context, string, ...ports.Field) {}

// Error discards the message.
func (l *NopLogger) Error(context.Context, string, ...ports.Field) {}

// With returns the logger unchanged.
func (l *NopLogger) With(...ports.Field) ports.Logger { return l }

// Ensure NopLogger implements Logger.
var _ ports.Logger = (*NopLogger)(nil)
