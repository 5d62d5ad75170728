package xrpl

import (
	"context"
	"time"

	"github.com/pkg/errors"
	rippledata "github.com/rubblelabs/ripple/data"
	"go.uber.org/zap"

	"github.com/CoreumFoundation/coreum-tools/pkg/retry"
	"github.com/CoreumFoundation/xrpl-tx-examples/logger"
)

//go:generate mockgen -destination=scanner_mocks_test.go -package=xrpl_test . RPCTxProvider,ScannerMetricRegistry

// RPCTxProvider is RPC transactions provider.
type RPCTxProvider interface {
	LedgerCurrent(ctx context.Context) (LedgerCurrentResult, error)
	AccountTx(
		ctx context.Context,
		account rippledata.Account,
		minLedger, maxLedger int64,
		marker map[string]any,
	) (AccountTxResult, error)
}

// ScannerMetricRegistry is the metric registry used by the AccountScanner.
type ScannerMetricRegistry interface {
	SetXRPLAccountRecentHistoryScanLedgerIndex(index float64)
	SetXRPLAccountFullHistoryScanLedgerIndex(index float64)
}

// AccountScannerConfig is the AccountScanner config.
type AccountScannerConfig struct {
	Account rippledata.Account

	RecentScanEnabled bool
	RecentScanWindow  int64
	RepeatRecentScan  bool

	FullScanEnabled bool
	RepeatFullScan  bool

	RetryDelay time.Duration
}

// DefaultAccountScannerConfig returns the default AccountScannerConfig.
func DefaultAccountScannerConfig(account rippledata.Account) AccountScannerConfig {
	return AccountScannerConfig{
		Account: account,

		RecentScanEnabled: true,
		RecentScanWindow:  10_000,
		RepeatRecentScan:  true,

		FullScanEnabled: false,
		RepeatFullScan:  false,
		RetryDelay:      10 * time.Second,
	}
}

// AccountScanner is XRPL transactions scanner.
type AccountScanner struct {
	cfg            AccountScannerConfig
	log            logger.Logger
	rpcTxProvider  RPCTxProvider
	metricRegistry ScannerMetricRegistry
}

// NewAccountScanner returns a new instance of the AccountScanner.
func NewAccountScanner(
	cfg AccountScannerConfig,
	log logger.Logger,
	rpcTxProvider RPCTxProvider,
	metricRegistry ScannerMetricRegistry,
) *AccountScanner {
	return &AccountScanner{
		cfg:            cfg,
		log:            log,
		rpcTxProvider:  rpcTxProvider,
		metricRegistry: metricRegistry,
	}
}

// ScanTxs starts the scanning of the recent and historical account transactions and returns after the scanning
// is started. The found transactions are sent to the channel.
func (s *AccountScanner) ScanTxs(ctx context.Context, ch chan<- RawTxResult) error {
	s.log.Info(ctx, "Starting XRPL account scanner", zap.Any("config", s.cfg))
	if !s.cfg.RecentScanEnabled && !s.cfg.FullScanEnabled {
		return errors.Errorf("both recent and full scans are disabled")
	}

	if s.cfg.RecentScanEnabled {
		currentLedgerRes, err := s.rpcTxProvider.LedgerCurrent(ctx)
		if err != nil {
			return err
		}
		currentLedger := currentLedgerRes.LedgerCurrentIndex
		if currentLedger <= s.cfg.RecentScanWindow {
			return errors.Errorf("current ledger must be greater than the recent scan window, "+
				"currentLedger:%d, recentScanWindow:%d", currentLedger, s.cfg.RecentScanWindow)
		}
		go s.scanRecentHistory(ctx, currentLedger, ch)
	}

	if s.cfg.FullScanEnabled {
		go s.scanFullHistory(ctx, ch)
	}

	return nil
}

func (s *AccountScanner) scanRecentHistory(ctx context.Context, currentLedger int64, ch chan<- RawTxResult) {
	minLedger := currentLedger - s.cfg.RecentScanWindow
	s.doWithRepeat(ctx, s.cfg.RepeatRecentScan, func() {
		s.log.Info(ctx, "Scanning recent history", zap.Int64("minLedger", minLedger))
		lastLedger := s.scanTransactions(ctx, minLedger, ch, s.metricRegistry.SetXRPLAccountRecentHistoryScanLedgerIndex)
		if lastLedger != 0 {
			minLedger = lastLedger + 1
		}
		s.log.Info(ctx, "Scanning of the recent history is done", zap.Int64("lastLedger", lastLedger))
	})
}

func (s *AccountScanner) scanFullHistory(ctx context.Context, ch chan<- RawTxResult) {
	s.doWithRepeat(ctx, s.cfg.RepeatFullScan, func() {
		s.log.Info(ctx, "Scanning full history")
		lastLedger := s.scanTransactions(ctx, -1, ch, s.metricRegistry.SetXRPLAccountFullHistoryScanLedgerIndex)
		s.log.Info(ctx, "Scanning of full history is done", zap.Int64("lastLedger", lastLedger))
	})
}

func (s *AccountScanner) scanTransactions(
	ctx context.Context,
	minLedger int64,
	ch chan<- RawTxResult,
	setLedgerIndex func(index float64),
) int64 {
	if minLedger <= 0 {
		minLedger = -1
	}
	var (
		marker              map[string]any
		lastLedger          int64
		prevProcessedLedger int64
	)
	for {
		var accountTxResult AccountTxResult
		err := retry.Do(ctx, s.cfg.RetryDelay, func() error {
			var err error
			accountTxResult, err = s.rpcTxProvider.AccountTx(ctx, s.cfg.Account, minLedger, -1, marker)
			if err != nil {
				s.log.Warn(ctx, "Failed to get account transactions, retrying", zap.Error(err))
				return retry.Retryable(
					errors.Wrapf(err, "failed to get account transactions, account:%s, minLedger:%d, marker:%+v",
						s.cfg.Account.String(), minLedger, marker),
				)
			}
			return nil
		})
		if err != nil {
			if isCtxError(err) {
				return lastLedger
			}
			// this panic is unexpected
			panic(errors.Wrapf(err, "unexpected error received for the get account transactions with retry"))
		}

		for _, tx := range accountTxResult.Transactions {
			txLedger := int64(tx.LedgerIndex)
			if prevProcessedLedger == 0 {
				prevProcessedLedger = txLedger
			}
			if prevProcessedLedger < txLedger {
				lastLedger = prevProcessedLedger
				prevProcessedLedger = txLedger
				setLedgerIndex(float64(lastLedger))
			}
			select {
			case <-ctx.Done():
				return lastLedger
			case ch <- tx:
			}
		}
		if len(accountTxResult.Marker) == 0 {
			lastLedger = prevProcessedLedger
			setLedgerIndex(float64(lastLedger))
			break
		}
		marker = accountTxResult.Marker
	}

	return lastLedger
}

func (s *AccountScanner) doWithRepeat(ctx context.Context, shouldRepeat bool, f func()) {
	err := retry.Do(ctx, s.cfg.RetryDelay, func() error {
		f()
		if shouldRepeat {
			s.log.Debug(ctx, "Waiting before the next execution", zap.String("retryDelay", s.cfg.RetryDelay.String()))
			return retry.Retryable(errors.New("repeat scan"))
		}
		s.log.Info(ctx, "Execution is fully stopped")
		return nil
	})
	if err == nil || isCtxError(err) {
		return
	}
	// this panic is unexpected
	panic(errors.Wrap(err, "unexpected error in do with repeat"))
}

func isCtxError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
