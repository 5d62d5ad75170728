// Package tracing keeps the values which are attached to the logs of a single operation.
package tracing

import (
	"context"

	"github.com/google/uuid"
)

type (
	idKey            struct{}
	processKey       struct{}
	xrplTxHashKey    struct{}
	xrplBatchHashKey struct{}
)

// WithTracingID returns context with a new random tracing ID.
func WithTracingID(ctx context.Context) context.Context {
	return context.WithValue(ctx, idKey{}, uuid.New().String())
}

// GetTracingID returns tracing ID from the context.
func GetTracingID(ctx context.Context) string {
	return stringValue(ctx, idKey{})
}

// WithTracingProcess returns context with set name of the process executing the operation.
func WithTracingProcess(ctx context.Context, process string) context.Context {
	return context.WithValue(ctx, processKey{}, process)
}

// GetTracingProcess returns tracing process from the context.
func GetTracingProcess(ctx context.Context) string {
	return stringValue(ctx, processKey{})
}

// WithTracingXRPLTxHash returns context with set XRPL tx hash.
func WithTracingXRPLTxHash(ctx context.Context, hash string) context.Context {
	return context.WithValue(ctx, xrplTxHashKey{}, hash)
}

// GetTracingXRPLTxHash returns tracing XRPL tx hash from the context.
func GetTracingXRPLTxHash(ctx context.Context) string {
	return stringValue(ctx, xrplTxHashKey{})
}

// WithTracingXRPLBatchHash returns context with set hash of the outer batch transaction.
func WithTracingXRPLBatchHash(ctx context.Context, hash string) context.Context {
	return context.WithValue(ctx, xrplBatchHashKey{}, hash)
}

// GetTracingXRPLBatchHash returns the outer batch transaction hash from the context.
func GetTracingXRPLBatchHash(ctx context.Context) string {
	return stringValue(ctx, xrplBatchHashKey{})
}

func stringValue(ctx context.Context, key any) string {
	v, ok := ctx.Value(key).(string)
	if !ok {
		return ""
	}

	return v
}
