package logger

import (
	"context"

	"go.uber.org/zap"
)

// ErrorCounter counts the error logs.
type ErrorCounter interface {
	IncrementErrorCounter()
}

// WithErrorCounterMetric returns logger which increments the error counter on each error log.
func WithErrorCounterMetric(l Logger, counter ErrorCounter) Logger {
	return metricLogger{
		parentLogger: l,
		counter:      counter,
	}
}

type metricLogger struct {
	parentLogger Logger
	counter      ErrorCounter
}

func (l metricLogger) Debug(ctx context.Context, msg string, fields ...zap.Field) {
	l.parentLogger.Debug(ctx, msg, fields...)
}

func (l metricLogger) Info(ctx context.Context, msg string, fields ...zap.Field) {
	l.parentLogger.Info(ctx, msg, fields...)
}

func (l metricLogger) Warn(ctx context.Context, msg string, fields ...zap.Field) {
	l.parentLogger.Warn(ctx, msg, fields...)
}

func (l metricLogger) Error(ctx context.Context, msg string, fields ...zap.Field) {
	l.counter.IncrementErrorCounter()
	l.parentLogger.Error(ctx, msg, fields...)
}
