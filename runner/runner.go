package runner

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/pkg/errors"
	rippledata "github.com/rubblelabs/ripple/data"
	"go.uber.org/zap"

	toolshttp "github.com/CoreumFoundation/coreum-tools/pkg/http"
	"github.com/CoreumFoundation/coreum-tools/pkg/parallel"
	"github.com/CoreumFoundation/xrpl-tx-examples/batch"
	"github.com/CoreumFoundation/xrpl-tx-examples/logger"
	"github.com/CoreumFoundation/xrpl-tx-examples/metrics"
	"github.com/CoreumFoundation/xrpl-tx-examples/processes"
	"github.com/CoreumFoundation/xrpl-tx-examples/tracing"
	"github.com/CoreumFoundation/xrpl-tx-examples/xrpl"
)

// Runner aggregates the long-running components.
type Runner struct {
	cfg           Config
	log           logger.Logger
	components    Components
	metricsServer *metrics.Server

	batchMonitorProcess *processes.BatchMonitorProcess
}

// NewRunner return new runner from the config.
func NewRunner(components Components, cfg Config) (*Runner, error) {
	monitoredAccount, err := parseMonitoredAccount(cfg)
	if err != nil {
		return nil, err
	}
	if monitoredAccount == nil {
		return nil, errors.New("monitored account is not configured")
	}

	xrplScanner := xrpl.NewAccountScanner(xrpl.AccountScannerConfig{
		Account:           *monitoredAccount,
		RecentScanEnabled: cfg.XRPL.Scanner.RecentScanEnabled,
		RecentScanWindow:  cfg.XRPL.Scanner.RecentScanWindow,
		RepeatRecentScan:  cfg.XRPL.Scanner.RepeatRecentScan,
		FullScanEnabled:   cfg.XRPL.Scanner.FullScanEnabled,
		RepeatFullScan:    cfg.XRPL.Scanner.RepeatFullScan,
		RetryDelay:        cfg.XRPL.Scanner.RetryDelay,
	},
		components.Log,
		components.XRPLRPCClient,
		components.MetricsRegistry,
	)

	batchMonitorProcess, err := processes.NewBatchMonitorProcess(
		processes.BatchMonitorProcessConfig{
			Account:          *monitoredAccount,
			CheckedCacheSize: cfg.Processes.BatchMonitor.CheckedCacheSize,
		},
		components.Log,
		xrplScanner,
		components.BatchChecker,
	)
	if err != nil {
		return nil, err
	}

	metricsServerCfg := metrics.DefaultServerConfig()
	metricsServerCfg.ListenAddress = cfg.Metrics.Server.ListenAddress
	metricsServer := metrics.NewServer(metricsServerCfg, components.Log, components.MetricsRegistry)

	return &Runner{
		cfg:           cfg,
		log:           components.Log,
		components:    components,
		metricsServer: metricsServer,

		batchMonitorProcess: batchMonitorProcess,
	}, nil
}

// Start starts runner.
func (r *Runner) Start(ctx context.Context) error {
	runnerProcesses := map[string]parallel.Task{
		"batch-monitor": taskWithRestartOnError(
			r.batchMonitorProcess.Start,
			r.log,
			r.cfg.Processes.ExitOnError,
			r.cfg.Processes.RetryDelay,
		),
	}
	if r.cfg.Metrics.Enabled {
		runnerProcesses["metrics-server"] = r.metricsServer.Start
		runnerProcesses["metrics-periodic-collector"] = r.components.MetricsPeriodicCollector.Start
	}
	return parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
		for name, start := range runnerProcesses {
			spawn(name, parallel.Continue, func(ctx context.Context) error {
				ctx = tracing.WithTracingProcess(ctx, name)
				return start(ctx)
			})
		}
		return nil
	})
}

func taskWithRestartOnError(
	task parallel.Task,
	log logger.Logger,
	exitOnError bool,
	retryDelay time.Duration,
) parallel.Task {
	return func(ctx context.Context) error {
		for {
			// start process and handle the panic
			err := func() (err error) {
				defer func() {
					if p := recover(); p != nil {
						err = errors.Wrap(parallel.ErrPanic{Value: p, Stack: debug.Stack()}, "handled panic")
					}
				}()
				return task(ctx)
			}()

			if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}

			// restart the process if it is restartable
			log.Error(ctx, "Received unexpected error from the process", zap.Error(err))
			if exitOnError {
				log.Warn(ctx, "The process is not auto-restartable on error")
				return err
			}

			log.Info(ctx, "Restarting process after the error", zap.Duration("retryDelay", retryDelay))
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(retryDelay):
			}
		}
	}
}

// Components groups components required by runner and other CLI commands.
type Components struct {
	Log                      logger.Logger
	RunnerConfig             Config
	MetricsRegistry          *metrics.Registry
	MetricsPeriodicCollector *metrics.PeriodicCollector
	XRPLRPCClient            *xrpl.RPCClient
	BatchResolver            *batch.Resolver
	BatchChecker             *batch.Checker
}

// NewComponents creates components required by runner and other CLI commands.
func NewComponents(cfg Config, log logger.Logger) (Components, error) {
	monitoredAccount, err := parseMonitoredAccount(cfg)
	if err != nil {
		return Components{}, err
	}

	metricsRegistry := metrics.NewRegistry()
	log = logger.WithErrorCounterMetric(log, metricsRegistry)

	retryableXRPLRPCHTTPClient := toolshttp.NewRetryableClient(toolshttp.RetryableClientConfig(cfg.XRPL.HTTPClient))
	xrplRPCClient := xrpl.NewRPCClient(
		xrpl.RPCClientConfig{
			URL:                      cfg.XRPL.RPC.URL,
			PageLimit:                cfg.XRPL.RPC.PageLimit,
			SubmitAwaitTimeout:       cfg.XRPL.Submit.AwaitTimeout,
			SubmitPollInterval:       cfg.XRPL.Submit.PollInterval,
			SubmitPollRequestTimeout: cfg.XRPL.Submit.PollRequestTimeout,
		},
		log,
		retryableXRPLRPCHTTPClient,
		metricsRegistry,
	)

	batchResolver := batch.NewResolver(log, xrplRPCClient, metricsRegistry)
	batchChecker := batch.NewChecker(log, xrplRPCClient, batchResolver, metricsRegistry)

	metricsPeriodicCollectorCfg := metrics.DefaultPeriodicCollectorConfig()
	metricsPeriodicCollectorCfg.RepeatDelay = cfg.Metrics.PeriodicCollector.RepeatDelay
	metricsPeriodicCollectorCfg.Account = monitoredAccount
	metricsPeriodicCollector := metrics.NewPeriodicCollector(
		metricsPeriodicCollectorCfg,
		log,
		metricsRegistry,
		xrplRPCClient,
	)

	return Components{
		Log:                      log,
		RunnerConfig:             cfg,
		MetricsRegistry:          metricsRegistry,
		MetricsPeriodicCollector: metricsPeriodicCollector,
		XRPLRPCClient:            xrplRPCClient,
		BatchResolver:            batchResolver,
		BatchChecker:             batchChecker,
	}, nil
}

func parseMonitoredAccount(cfg Config) (*rippledata.Account, error) {
	address := cfg.Processes.BatchMonitor.Account
	if address == "" {
		return nil, nil //nolint:nilnil // the account is optional
	}
	account, err := rippledata.NewAccountFromAddress(address)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode monitored account address, address:%s", address)
	}

	return account, nil
}
