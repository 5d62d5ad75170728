package metrics

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	rippledata "github.com/rubblelabs/ripple/data"
	"go.uber.org/zap"

	"github.com/CoreumFoundation/coreum-tools/pkg/parallel"
	"github.com/CoreumFoundation/xrpl-tx-examples/logger"
	"github.com/CoreumFoundation/xrpl-tx-examples/xrpl"
)

//go:generate mockgen -destination=collector_mocks_test.go -package=metrics_test . XRPLRPCClient

// XRPLRPCClient is XRPL RPC client interface.
type XRPLRPCClient interface {
	LedgerCurrent(ctx context.Context) (xrpl.LedgerCurrentResult, error)
	GetXRPLBalances(ctx context.Context, acc rippledata.Account) ([]rippledata.Amount, error)
}

// PeriodicCollectorConfig is PeriodicCollector config.
type PeriodicCollectorConfig struct {
	RepeatDelay time.Duration
	// how many decimals we keep in the float values
	FloatTruncationPrecision uint32
	// Account is the account to collect the balances of, the balances are not collected if it's not set.
	Account *rippledata.Account
}

// DefaultPeriodicCollectorConfig returns default PeriodicCollectorConfig.
func DefaultPeriodicCollectorConfig() PeriodicCollectorConfig {
	return PeriodicCollectorConfig{
		RepeatDelay:              30 * time.Second,
		FloatTruncationPrecision: 2,
	}
}

// PeriodicCollector is metric periodic scanner responsible for the periodic collecting of the metrics.
type PeriodicCollector struct {
	cfg           PeriodicCollectorConfig
	log           logger.Logger
	registry      *Registry
	xrplRPCClient XRPLRPCClient

	balancesCachedKeys map[string]struct{}
	cacheMu            sync.Mutex
}

// NewPeriodicCollector returns a new instance of the PeriodicCollector.
func NewPeriodicCollector(
	cfg PeriodicCollectorConfig,
	log logger.Logger,
	registry *Registry,
	xrplRPCClient XRPLRPCClient,
) *PeriodicCollector {
	return &PeriodicCollector{
		cfg:           cfg,
		log:           log,
		registry:      registry,
		xrplRPCClient: xrplRPCClient,

		balancesCachedKeys: make(map[string]struct{}),
		cacheMu:            sync.Mutex{},
	}
}

// Start starts the periodic collector.
func (c *PeriodicCollector) Start(ctx context.Context) error {
	periodicCollectors := map[string]func(ctx context.Context) error{
		xrplLedgerCurrentIndexMetricName: c.CollectLedgerCurrentIndex,
	}
	if c.cfg.Account != nil {
		periodicCollectors[xrplAccountBalancesMetricName] = c.CollectAccountBalances
	}

	return parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
		for name, collector := range periodicCollectors {
			spawn(name, parallel.Continue, func(ctx context.Context) error {
				return c.collectWithRepeat(ctx, name, func() {
					if err := collector(ctx); err != nil {
						c.log.Error(
							ctx,
							"failed to collect metric",
							zap.String("name", name),
							zap.Error(err),
						)
					}
				})
			})
		}
		return nil
	})
}

// CollectLedgerCurrentIndex collects the current ledger index.
func (c *PeriodicCollector) CollectLedgerCurrentIndex(ctx context.Context) error {
	res, err := c.xrplRPCClient.LedgerCurrent(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get XRPL current ledger")
	}
	c.registry.XRPLLedgerCurrentIndexGauge.Set(float64(res.LedgerCurrentIndex))

	return nil
}

// CollectAccountBalances collects the balances of the configured account.
func (c *PeriodicCollector) CollectAccountBalances(ctx context.Context) error {
	if c.cfg.Account == nil {
		return errors.New("account to collect the balances of is not set")
	}
	balances, err := c.xrplRPCClient.GetXRPLBalances(ctx, *c.cfg.Account)
	if err != nil {
		return errors.Wrapf(err, "failed to get XRPL account balances, account:%s", c.cfg.Account.String())
	}

	currentValues := make(map[string]float64, len(balances))
	for _, balance := range balances {
		key := fmt.Sprintf("%s/%s", xrpl.ConvertCurrencyToString(balance.Currency), balance.Issuer.String())
		currentValues[key] = c.truncateFloatByTruncationPrecision(balance.Float())
	}
	c.updateGaugeVecAndCachedValues(currentValues, c.balancesCachedKeys, c.registry.XRPLAccountBalancesGaugeVec)

	return nil
}

func (c *PeriodicCollector) truncateFloatByTruncationPrecision(val float64) float64 {
	ratio := math.Pow(10, float64(c.cfg.FloatTruncationPrecision))
	return math.Trunc(val*ratio) / ratio
}

func (c *PeriodicCollector) updateGaugeVecAndCachedValues(
	currentValues map[string]float64,
	cachedKeys map[string]struct{},
	gaugeVec *prometheus.GaugeVec,
) {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()
	// delete removed keys
	for k := range cachedKeys {
		if _, ok := currentValues[k]; !ok {
			delete(cachedKeys, k)
			gaugeVec.DeleteLabelValues(k)
		}
	}
	for k, v := range currentValues {
		gaugeVec.WithLabelValues(k).Set(v)
		cachedKeys[k] = struct{}{}
	}
}

func (c *PeriodicCollector) collectWithRepeat(ctx context.Context, name string, collector func()) error {
	c.log.Info(ctx,
		"Starting collecting of the metric.",
		zap.String("metricName", name),
	)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			collector()
			c.log.Debug(ctx,
				"Waiting before the repeat of the metric collecting.",
				zap.String("metricName", name),
				zap.String("delay", c.cfg.RepeatDelay.String()),
			)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.cfg.RepeatDelay):
			}
		}
	}
}
