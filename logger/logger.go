package logger

import (
	"context"

	"go.uber.org/zap"
)

//go:generate mockgen -destination=logger_mocks.go -package=logger . Logger

// Logger is a logger interface.
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...zap.Field)
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Warn(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}
