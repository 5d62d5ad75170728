package logger

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/CoreumFoundation/xrpl-tx-examples/tracing"
)

var _ Logger = &ZapLogger{}

const (
	tracingIDFieldName            = "tracingID"
	tracingProcessFieldName       = "process"
	tracingXRPLTxHashFieldName    = "xrplTxHash"
	tracingXRPLBatchHashFieldName = "xrplBatchHash"
)

// Supported log formats.
const (
	ConsoleFormat = "console"
	JSONFormat    = "json"
)

// ZapLoggerConfig is ZapLogger config.
type ZapLoggerConfig struct {
	Level  string
	Format string
}

// DefaultZapLoggerConfig returns default ZapLoggerConfig.
func DefaultZapLoggerConfig() ZapLoggerConfig {
	return ZapLoggerConfig{
		Level:  "info",
		Format: ConsoleFormat,
	}
}

// ZapLogger is the Logger implementation based on the zap.Logger.
type ZapLogger struct {
	zapLogger *zap.Logger
}

// NewZapLoggerFromLogger returns a new instance of the ZapLogger.
func NewZapLoggerFromLogger(zapLogger *zap.Logger) *ZapLogger {
	return &ZapLogger{
		zapLogger: zapLogger,
	}
}

// NewZapLogger creates a new instance of the ZapLogger.
func NewZapLogger(cfg ZapLoggerConfig) (*ZapLogger, error) {
	logLevel, err := stringToLoggerLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var encoderConfig zapcore.EncoderConfig
	switch cfg.Format {
	case ConsoleFormat:
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case JSONFormat:
		encoderConfig = zap.NewProductionEncoderConfig()
	default:
		return nil, errors.Errorf("unknown log format: %q", cfg.Format)
	}
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zapCfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(logLevel),
		Development:      false,
		Encoding:         cfg.Format,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	zapLogger, err := zapCfg.Build(zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build zap logger from the config, config:%+v", zapCfg)
	}

	return NewZapLoggerFromLogger(zapLogger), nil
}

// Debug logs a message at DebugLevel. The message includes any fields passed at the log site, as well as any fields
// accumulated on the logger.
func (z ZapLogger) Debug(ctx context.Context, msg string, fields ...zap.Field) {
	z.zapLogger.Debug(msg, withTracingFields(ctx, fields)...)
}

// Info logs a message at InfoLevel. The message includes any fields passed at the log site, as well as any fields
// accumulated on the logger.
func (z ZapLogger) Info(ctx context.Context, msg string, fields ...zap.Field) {
	z.zapLogger.Info(msg, withTracingFields(ctx, fields)...)
}

// Warn logs a message at WarnLevel. The message includes any fields passed at the log site, as well as any fields
// accumulated on the logger.
func (z ZapLogger) Warn(ctx context.Context, msg string, fields ...zap.Field) {
	z.zapLogger.Warn(msg, withTracingFields(ctx, fields)...)
}

// Error logs a message at ErrorLevel. The message includes any fields passed at the log site, as well as any fields
// accumulated on the logger.
func (z ZapLogger) Error(ctx context.Context, msg string, fields ...zap.Field) {
	z.zapLogger.Error(msg, withTracingFields(ctx, fields)...)
}

func withTracingFields(ctx context.Context, fields []zap.Field) []zap.Field {
	tracingFields := []struct {
		name  string
		value string
	}{
		{name: tracingIDFieldName, value: tracing.GetTracingID(ctx)},
		{name: tracingProcessFieldName, value: tracing.GetTracingProcess(ctx)},
		{name: tracingXRPLTxHashFieldName, value: tracing.GetTracingXRPLTxHash(ctx)},
		{name: tracingXRPLBatchHashFieldName, value: tracing.GetTracingXRPLBatchHash(ctx)},
	}
	for _, f := range tracingFields {
		if f.value == "" {
			continue
		}
		fields = append(fields, zap.String(f.name, f.value))
	}

	return fields
}

// stringToLoggerLevel converts the string level to zapcore.Level.
func stringToLoggerLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return 0, errors.Errorf("unknown log level: %q", level)
	}
}
