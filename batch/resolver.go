package batch

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/CoreumFoundation/coreum-tools/pkg/parallel"
	"github.com/CoreumFoundation/xrpl-tx-examples/logger"
	"github.com/CoreumFoundation/xrpl-tx-examples/tracing"
	"github.com/CoreumFoundation/xrpl-tx-examples/xrpl"
)

//go:generate mockgen -destination=batch_mocks_test.go -package=batch_test . TxProvider,MetricRegistry

// TxProvider provides the transactions recorded by the ledger.
type TxProvider interface {
	Tx(ctx context.Context, hash string) (xrpl.RawTxResult, error)
}

// MetricRegistry is the metric registry used by the batch inspection.
type MetricRegistry interface {
	IncrementBatchInnerTxStatusCounter(status string)
	IncrementBatchCheckCounter(mode, outcome string)
}

// Resolver resolves the statuses of the inner transactions.
type Resolver struct {
	log            logger.Logger
	txProvider     TxProvider
	metricRegistry MetricRegistry
}

// NewResolver returns a new instance of the Resolver.
func NewResolver(log logger.Logger, txProvider TxProvider, metricRegistry MetricRegistry) *Resolver {
	return &Resolver{
		log:            log,
		txProvider:     txProvider,
		metricRegistry: metricRegistry,
	}
}

// ResolveStatuses looks up all the transactions concurrently and returns one status per hash in the order of the
// hashes. The failure of a single lookup is reported as StatusNotValidated of the corresponding transaction only.
func (r *Resolver) ResolveStatuses(ctx context.Context, hashes []InnerTxHash) []InnerTxStatus {
	statuses := make([]InnerTxStatus, len(hashes))
	for i, h := range hashes {
		statuses[i] = InnerTxStatus{
			Hash:   h.Hash,
			Index:  h.Index,
			Status: StatusNotValidated,
		}
	}
	if len(hashes) == 0 {
		return statuses
	}

	// each task writes its own slot only
	err := parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
		for i, h := range hashes {
			spawn(fmt.Sprintf("tx-%d", i), parallel.Continue, func(ctx context.Context) error {
				statuses[i] = r.resolveStatus(ctx, h)
				return nil
			})
		}
		return nil
	})
	if err != nil {
		r.log.Error(ctx, "Unexpected inner transaction statuses resolution error", zap.Error(err))
	}

	return statuses
}

func (r *Resolver) resolveStatus(ctx context.Context, h InnerTxHash) InnerTxStatus {
	ctx = tracing.WithTracingXRPLTxHash(ctx, h.Hash)
	status := InnerTxStatus{
		Hash:  h.Hash,
		Index: h.Index,
	}

	txRes, err := r.txProvider.Tx(ctx, h.Hash)
	if err != nil {
		r.log.Warn(ctx, "Failed to get inner transaction", zap.Int("index", h.Index), zap.Error(err))
		status.Status = StatusNotValidated
	} else {
		switch meta := txRes.Meta.(type) {
		case xrpl.TxMetaResult:
			status.Successful = xrpl.IsSuccessTxResult(meta.TransactionResult)
			status.Status = meta.TransactionResult
		default:
			status.Status = StatusUnknown
		}
	}

	r.metricRegistry.IncrementBatchInnerTxStatusCounter(status.Status)
	r.log.Debug(
		ctx,
		"Inner transaction status is resolved",
		zap.Int("index", status.Index),
		zap.String("status", status.Status),
		zap.Bool("successful", status.Successful),
	)

	return status
}
