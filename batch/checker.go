//nolint:tagliatelle // json naming
package batch

import (
	"context"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/CoreumFoundation/xrpl-tx-examples/logger"
	"github.com/CoreumFoundation/xrpl-tx-examples/tracing"
	"github.com/CoreumFoundation/xrpl-tx-examples/xrpl"
)

var (
	// ErrNotBatch is returned when the checked transaction is not a Batch.
	ErrNotBatch = errors.New("transaction is not a batch")
	// ErrNotValidated is returned when the checked transaction is not validated yet.
	ErrNotValidated = errors.New("transaction is not validated")
	// ErrNoInnerTxs is returned when the checked batch has no inner transactions recorded.
	ErrNoInnerTxs = errors.New("batch has no inner transactions")
)

// Batch check outcomes.
const (
	OutcomeSucceeded = "succeeded"
	OutcomePartial   = "partial"
	OutcomeFailed    = "failed"
)

// Report is the outcome of the batch with its inner transactions.
type Report struct {
	BatchHash   string          `json:"batch_hash"`
	Mode        Mode            `json:"mode"`
	OuterResult string          `json:"outer_result"`
	Inner       []InnerTxStatus `json:"inner"`
}

// AllSucceeded returns true if all the inner transactions are successful.
func (r Report) AllSucceeded() bool {
	return lo.EveryBy(r.Inner, func(s InnerTxStatus) bool {
		return s.Successful
	})
}

// FailedInner returns the statuses of the inner transactions which are not successful.
func (r Report) FailedInner() []InnerTxStatus {
	return lo.Filter(r.Inner, func(s InnerTxStatus, _ int) bool {
		return !s.Successful
	})
}

// Outcome returns OutcomeSucceeded if all inner transactions are successful, OutcomeFailed if none of them are.
// Otherwise, the OutcomePartial is returned.
func (r Report) Outcome() string {
	failed := len(r.FailedInner())
	switch failed {
	case 0:
		return OutcomeSucceeded
	case len(r.Inner):
		return OutcomeFailed
	default:
		return OutcomePartial
	}
}

// Err returns the combined error of the failed inner transactions, or nil if all of them are successful. The inner
// transactions which have the result code are reported with the xrpl.TxResultError.
func (r Report) Err() error {
	var err error
	for _, s := range r.FailedInner() {
		switch s.Status {
		case StatusUnknown, StatusNotValidated:
			err = multierr.Append(err, errors.Errorf(
				"inner transaction status is %s, index:%d, hash:%s", s.Status, s.Index, s.Hash,
			))
		default:
			err = multierr.Append(err, &xrpl.TxResultError{
				TxHash: s.Hash,
				Code:   s.Status,
			})
		}
	}

	return err
}

// Checker fetches batches and resolves the statuses of their inner transactions.
type Checker struct {
	log            logger.Logger
	txProvider     TxProvider
	resolver       *Resolver
	metricRegistry MetricRegistry
}

// NewChecker returns a new instance of the Checker.
func NewChecker(
	log logger.Logger,
	txProvider TxProvider,
	resolver *Resolver,
	metricRegistry MetricRegistry,
) *Checker {
	return &Checker{
		log:            log,
		txProvider:     txProvider,
		resolver:       resolver,
		metricRegistry: metricRegistry,
	}
}

// Check fetches the batch transaction by hash and builds its Report.
func (c *Checker) Check(ctx context.Context, batchHash string) (Report, error) {
	batchTx, err := c.txProvider.Tx(ctx, batchHash)
	if err != nil {
		return Report{}, errors.Wrapf(err, "failed to get batch transaction, hash:%s", batchHash)
	}

	return c.CheckTx(ctx, batchTx)
}

// CheckTx builds the Report of the validated batch transaction.
func (c *Checker) CheckTx(ctx context.Context, batchTx xrpl.RawTxResult) (Report, error) {
	ctx = tracing.WithTracingXRPLBatchHash(ctx, batchTx.Hash)
	if !batchTx.IsBatch() {
		return Report{}, errors.Wrapf(ErrNotBatch, "hash:%s, type:%s", batchTx.Hash, batchTx.TransactionType)
	}
	if !batchTx.Validated {
		return Report{}, errors.Wrapf(ErrNotValidated, "hash:%s", batchTx.Hash)
	}

	hashes, err := ComputeInnerTxHashes(batchTx.RawInnerTransactions())
	if err != nil {
		return Report{}, errors.Wrapf(err, "failed to compute inner transaction hashes, batch hash:%s", batchTx.Hash)
	}
	if len(hashes) == 0 {
		return Report{}, errors.Wrapf(ErrNoInnerTxs, "hash:%s", batchTx.Hash)
	}

	report := Report{
		BatchHash:   batchTx.Hash,
		Mode:        ModeFromFlags(batchTx.Flags),
		OuterResult: batchTx.ResultCode(),
		Inner:       c.resolver.ResolveStatuses(ctx, hashes),
	}
	outcome := report.Outcome()
	c.metricRegistry.IncrementBatchCheckCounter(string(report.Mode), outcome)
	c.log.Info(
		ctx,
		"Batch is checked",
		zap.String("mode", string(report.Mode)),
		zap.String("outerResult", report.OuterResult),
		zap.String("outcome", outcome),
		zap.Int("innerCount", len(report.Inner)),
	)

	return report, nil
}
