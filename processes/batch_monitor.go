// Package processes contains the long-running processes.
package processes

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	rippledata "github.com/rubblelabs/ripple/data"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/CoreumFoundation/xrpl-tx-examples/batch"
	"github.com/CoreumFoundation/xrpl-tx-examples/logger"
	"github.com/CoreumFoundation/xrpl-tx-examples/tracing"
	"github.com/CoreumFoundation/xrpl-tx-examples/xrpl"
)

//go:generate mockgen -destination=batch_monitor_mocks_test.go -package=processes_test . XRPLAccountTxScanner,BatchChecker

// XRPLAccountTxScanner is XRPL account tx scanner.
type XRPLAccountTxScanner interface {
	ScanTxs(ctx context.Context, ch chan<- xrpl.RawTxResult) error
}

// BatchChecker checks the batch transactions.
type BatchChecker interface {
	CheckTx(ctx context.Context, batchTx xrpl.RawTxResult) (batch.Report, error)
}

// BatchMonitorProcessConfig is BatchMonitorProcess config.
type BatchMonitorProcessConfig struct {
	Account rippledata.Account
	// CheckedCacheSize is the number of the latest checked batch hashes kept to skip the repeated scan results.
	CheckedCacheSize int
}

// DefaultBatchMonitorProcessConfig returns default BatchMonitorProcessConfig.
func DefaultBatchMonitorProcessConfig(account rippledata.Account) BatchMonitorProcessConfig {
	return BatchMonitorProcessConfig{
		Account:          account,
		CheckedCacheSize: 10_000,
	}
}

// BatchMonitorProcess is process which observes the account transactions and checks the outcomes of the batches.
type BatchMonitorProcess struct {
	cfg          BatchMonitorProcessConfig
	log          logger.Logger
	txScanner    XRPLAccountTxScanner
	batchChecker BatchChecker

	checked *lru.Cache[string, struct{}]
}

// NewBatchMonitorProcess returns a new instance of the BatchMonitorProcess.
func NewBatchMonitorProcess(
	cfg BatchMonitorProcessConfig,
	log logger.Logger,
	txScanner XRPLAccountTxScanner,
	batchChecker BatchChecker,
) (*BatchMonitorProcess, error) {
	if cfg.Account == (rippledata.Account{}) {
		return nil, errors.New("monitored account is not set")
	}
	checked, err := lru.New[string, struct{}](cfg.CheckedCacheSize)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create checked batches cache, size:%d", cfg.CheckedCacheSize)
	}

	return &BatchMonitorProcess{
		cfg:          cfg,
		log:          log,
		txScanner:    txScanner,
		batchChecker: batchChecker,
		checked:      checked,
	}, nil
}

// Start starts the process.
func (p *BatchMonitorProcess) Start(ctx context.Context) error {
	p.log.Info(ctx, "Starting batch monitor", zap.String("account", p.cfg.Account.String()))
	txCh := make(chan xrpl.RawTxResult)
	if err := p.txScanner.ScanTxs(ctx, txCh); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case tx := <-txCh:
			if err := p.processTx(ctx, tx); err != nil {
				p.log.Error(ctx, "Failed to process XRPL tx", zap.Error(err))
			}
		}
	}
}

func (p *BatchMonitorProcess) processTx(ctx context.Context, tx xrpl.RawTxResult) error {
	ctx = tracing.WithTracingXRPLTxHash(tracing.WithTracingID(ctx), tx.Hash)
	if !tx.IsBatch() {
		p.log.Debug(ctx, "Skipping not batch transaction", zap.String("type", tx.TransactionType))
		return nil
	}
	if !tx.Validated {
		p.log.Debug(ctx, "Skipping not validated batch")
		return nil
	}
	if found, _ := p.checked.ContainsOrAdd(tx.Hash, struct{}{}); found {
		p.log.Debug(ctx, "Skipping already checked batch")
		return nil
	}

	// the inner transactions of the batch are not applied if the outer transaction is failed
	if outerResult := tx.ResultCode(); !xrpl.IsSuccessTxResult(outerResult) {
		p.log.Info(ctx, "Skipping not applied batch", zap.String("outerResult", outerResult))
		return nil
	}

	report, err := p.batchChecker.CheckTx(ctx, tx)
	if err != nil {
		p.checked.Remove(tx.Hash)
		return errors.Wrapf(err, "failed to check batch, hash:%s", tx.Hash)
	}
	// the lookup failures are temporary, so the batch is checked again on the next scan
	if lo.ContainsBy(report.Inner, func(status batch.InnerTxStatus) bool {
		return status.Status == batch.StatusNotValidated
	}) {
		p.checked.Remove(tx.Hash)
	}

	if err := report.Err(); err != nil {
		p.log.Warn(
			ctx,
			"Batch inner transactions failed",
			zap.String("mode", string(report.Mode)),
			zap.Int("failedCount", len(report.FailedInner())),
			zap.Int("innerCount", len(report.Inner)),
			zap.Error(err),
		)
		return nil
	}
	p.log.Info(
		ctx,
		"All batch inner transactions succeeded",
		zap.String("mode", string(report.Mode)),
		zap.Int("innerCount", len(report.Inner)),
	)

	return nil
}
