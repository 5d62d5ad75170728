package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	rippledata "github.com/rubblelabs/ripple/data"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CoreumFoundation/xrpl-tx-examples/batch"
	"github.com/CoreumFoundation/xrpl-tx-examples/client"
	"github.com/CoreumFoundation/xrpl-tx-examples/logger"
	"github.com/CoreumFoundation/xrpl-tx-examples/runner"
	"github.com/CoreumFoundation/xrpl-tx-examples/xrpl"
)

//go:generate mockgen -destination=cli_mocks_test.go -package=cli_test . LedgerClient,Runner

func init() {
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}

	DefaultHomeDir = filepath.Join(userHomeDir, ".xrpl-tx-examples")
}

// DefaultHomeDir is default home for the application.
var DefaultHomeDir string

const (
	// TxCLIUse is cobra Use tx group name.
	TxCLIUse = "tx"
	// QueryCLIUse is cobra Use query group name.
	QueryCLIUse = "q"
)

const (
	// FlagHome is home flag.
	FlagHome = "home"
	// FlagXRPLRPCURL is XRPL RPC URL flag.
	FlagXRPLRPCURL = "xrpl-rpc-url"
	// FlagMonitoredAccount is the account monitored by the batch monitor.
	FlagMonitoredAccount = "monitored-account"
	// FlagMetricsEnabled enables metrics server.
	FlagMetricsEnabled = "metrics-enabled"
	// FlagMetricsListenAddr sets listen address for metrics server.
	FlagMetricsListenAddr = "metrics-listen-addr"
	// FlagExitOnError stops the processes on the first error instead of the restart.
	FlagExitOnError = "exit-on-error"
	// FlagSeed is the XRPL family seed of the transaction sender.
	FlagSeed = "seed"
	// FlagKeyType is the key type derived from the seed.
	FlagKeyType = "key-type"
	// FlagNoRipple is no ripple trust line flag.
	FlagNoRipple = "no-ripple"
)

// LedgerClient is the client used to submit XRPL transactions and inspect their results.
//
//nolint:interfacebloat
type LedgerClient interface {
	SendPayment(
		ctx context.Context,
		sender client.XRPLTxSigner,
		recipient rippledata.Account,
		amount rippledata.Amount,
	) (xrpl.RawTxResult, error)
	SetTrustLine(
		ctx context.Context,
		sender client.XRPLTxSigner,
		limitAmount rippledata.Amount,
		noRipple bool,
	) (xrpl.RawTxResult, error)
	SetAccountFlag(ctx context.Context, sender client.XRPLTxSigner, flag uint32) (xrpl.RawTxResult, error)
	ClearAccountFlag(ctx context.Context, sender client.XRPLTxSigner, flag uint32) (xrpl.RawTxResult, error)
	CreateTickets(ctx context.Context, sender client.XRPLTxSigner, count uint32) (xrpl.RawTxResult, error)
	SetSignerList(
		ctx context.Context,
		sender client.XRPLTxSigner,
		quorum uint32,
		entries []client.SignerEntry,
	) (xrpl.RawTxResult, error)
	SubmitJSON(ctx context.Context, sender client.XRPLTxSigner, txJSON json.RawMessage) (xrpl.RawTxResult, error)
	GetXRPLBalances(ctx context.Context, acc rippledata.Account) ([]rippledata.Amount, error)
	GetTxStatuses(ctx context.Context, hashes []string) []batch.InnerTxStatus
	CheckBatch(ctx context.Context, batchHash string) (batch.Report, error)
}

// LedgerClientProvider is function which returns the LedgerClient from the components.
type LedgerClientProvider func(components runner.Components) (LedgerClient, error)

// Runner is a runner interface.
type Runner interface {
	Start(ctx context.Context) error
}

// RunnerProvider is function which returns the Runner from the input cmd.
type RunnerProvider func(cmd *cobra.Command) (Runner, error)

// NewRunnerFromHome returns runner from home.
func NewRunnerFromHome(cmd *cobra.Command) (*runner.Runner, error) {
	cfg, err := GetHomeRunnerConfig(cmd)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Lookup(FlagExitOnError) != nil {
		exitOnError, err := cmd.Flags().GetBool(FlagExitOnError)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", FlagExitOnError)
		}
		cfg.Processes.ExitOnError = exitOnError
	}

	logCfg := logger.DefaultZapLoggerConfig()
	logCfg.Level = cfg.LoggingConfig.Level
	logCfg.Format = cfg.LoggingConfig.Format
	zapLogger, err := logger.NewZapLogger(logCfg)
	if err != nil {
		return nil, err
	}

	components, err := runner.NewComponents(cfg, zapLogger)
	if err != nil {
		return nil, err
	}

	return runner.NewRunner(components, cfg)
}

// InitCmd returns the init cmd.
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initializes the home with the default config.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			home, err := getHome(cmd)
			if err != nil {
				return err
			}
			log, err := GetCLILogger()
			if err != nil {
				return err
			}
			log.Info(ctx, "Generating settings", zap.String("home", home))

			xrplRPCURL, err := cmd.Flags().GetString(FlagXRPLRPCURL)
			if err != nil {
				return errors.Wrapf(err, "failed to read %s", FlagXRPLRPCURL)
			}
			monitoredAccount, err := cmd.Flags().GetString(FlagMonitoredAccount)
			if err != nil {
				return errors.Wrapf(err, "failed to read %s", FlagMonitoredAccount)
			}
			if monitoredAccount != "" {
				if _, err := rippledata.NewAccountFromAddress(monitoredAccount); err != nil {
					return errors.Wrapf(err, "invalid %s:%s", FlagMonitoredAccount, monitoredAccount)
				}
			}
			metricsEnabled, err := cmd.Flags().GetBool(FlagMetricsEnabled)
			if err != nil {
				return errors.Wrapf(err, "failed to read %s", FlagMetricsEnabled)
			}
			metricsListenAddr, err := cmd.Flags().GetString(FlagMetricsListenAddr)
			if err != nil {
				return errors.Wrapf(err, "failed to read %s", FlagMetricsListenAddr)
			}

			cfg := runner.DefaultConfig()
			cfg.XRPL.RPC.URL = xrplRPCURL
			cfg.Processes.BatchMonitor.Account = monitoredAccount
			cfg.Metrics.Enabled = metricsEnabled
			cfg.Metrics.Server.ListenAddress = metricsListenAddr

			if err = runner.InitConfig(home, cfg); err != nil {
				return err
			}
			log.Info(ctx, "Settings are generated successfully")
			return nil
		},
	}

	defaultCfg := runner.DefaultConfig()
	cmd.PersistentFlags().String(FlagXRPLRPCURL, defaultCfg.XRPL.RPC.URL, "XRPL RPC address.")
	cmd.PersistentFlags().String(FlagMonitoredAccount, "", "XRPL account which batch transactions are monitored.")
	cmd.PersistentFlags().Bool(FlagMetricsEnabled, false, "Start metric server.")
	cmd.PersistentFlags().String(
		FlagMetricsListenAddr, defaultCfg.Metrics.Server.ListenAddress, "Address metrics server listens on.",
	)

	AddHomeFlag(cmd)

	return cmd
}

// StartCmd returns the start cmd.
func StartCmd(pp RunnerProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the batch monitor.",
		RunE: func(cmd *cobra.Command, args []string) error {
			rnr, err := pp(cmd)
			if err != nil {
				return err
			}

			return rnr.Start(cmd.Context())
		},
	}
	cmd.PersistentFlags().Bool(FlagExitOnError, false, "Exit on the first process error instead of the restart.")
	AddHomeFlag(cmd)

	return cmd
}

// GetCLILogger returns the console logger initialised with the default logger config.
func GetCLILogger() (*logger.ZapLogger, error) {
	zapLogger, err := logger.NewZapLogger(logger.ZapLoggerConfig{
		Level:  "info",
		Format: logger.ConsoleFormat,
	})
	if err != nil {
		return nil, err
	}

	return zapLogger, nil
}

// GetHomeRunnerConfig reads runner config from home directory.
func GetHomeRunnerConfig(cmd *cobra.Command) (runner.Config, error) {
	home, err := getHome(cmd)
	if err != nil {
		return runner.Config{}, err
	}

	return runner.ReadConfig(home)
}

// AddHomeFlag adds home flag to the command.
func AddHomeFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().String(FlagHome, DefaultHomeDir, "Home directory")
}

// AddSeedFlags adds the transaction sender seed flags to the command.
func AddSeedFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String(FlagSeed, "", "XRPL family seed of the sender")
	cmd.PersistentFlags().String(FlagKeyType, xrpl.Secp256k1KeyType, "Key type derived from the seed (secp256k1|ed25519)")
}

func getHome(cmd *cobra.Command) (string, error) {
	return cmd.Flags().GetString(FlagHome)
}

func getTxSigner(cmd *cobra.Command) (*xrpl.SeedTxSigner, error) {
	seed, err := cmd.Flags().GetString(FlagSeed)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", FlagSeed)
	}
	if seed == "" {
		return nil, errors.Errorf("flag %s is required", FlagSeed)
	}
	keyTypeName, err := cmd.Flags().GetString(FlagKeyType)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", FlagKeyType)
	}
	keyType, err := xrpl.ParseKeyType(keyTypeName)
	if err != nil {
		return nil, err
	}

	return xrpl.NewSeedTxSigner(seed, keyType)
}

func runLedgerCmd(
	lcp LedgerClientProvider,
	f func(cmd *cobra.Command, args []string, components runner.Components, ledgerClient LedgerClient) error,
) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		log, err := GetCLILogger()
		if err != nil {
			return err
		}
		cfg, err := GetHomeRunnerConfig(cmd)
		if err != nil {
			return err
		}
		components, err := runner.NewComponents(cfg, log)
		if err != nil {
			return err
		}
		ledgerClient, err := lcp(components)
		if err != nil {
			return err
		}

		return f(cmd, args, components, ledgerClient)
	}
}
