//nolint:tagliatelle // yaml naming
package runner

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	rippledata "github.com/rubblelabs/ripple/data"
	"gopkg.in/yaml.v3"

	toolshttp "github.com/CoreumFoundation/coreum-tools/pkg/http"
	"github.com/CoreumFoundation/xrpl-tx-examples/logger"
	"github.com/CoreumFoundation/xrpl-tx-examples/metrics"
	"github.com/CoreumFoundation/xrpl-tx-examples/processes"
	"github.com/CoreumFoundation/xrpl-tx-examples/xrpl"
)

const (
	configVersion = "v1"
	// ConfigFileName is file name used for the config.
	ConfigFileName = "config.yaml"
	// DefaultTestnetRPCURL is the public XRPL testnet JSON-RPC URL.
	DefaultTestnetRPCURL = "https://s.altnet.rippletest.net:51234/"
)

// LoggingConfig is logging config.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// HTTPClientConfig is http client config.
type HTTPClientConfig struct {
	RequestTimeout time.Duration `yaml:"request_timeout"`
	DoTimeout      time.Duration `yaml:"do_timeout"`
	RetryDelay     time.Duration `yaml:"retry_delay"`
}

// XRPLRPCConfig is XRPL RPC config.
type XRPLRPCConfig struct {
	URL       string `yaml:"url"`
	PageLimit uint32 `yaml:"page_limit"`
}

// XRPLSubmitConfig is XRPL transaction submission config.
type XRPLSubmitConfig struct {
	AwaitTimeout       time.Duration `yaml:"await_timeout"`
	PollInterval       time.Duration `yaml:"poll_interval"`
	PollRequestTimeout time.Duration `yaml:"poll_request_timeout"`
}

// XRPLScannerConfig is XRPL scanner config.
type XRPLScannerConfig struct {
	RecentScanEnabled bool  `yaml:"recent_scan_enabled"`
	RecentScanWindow  int64 `yaml:"recent_scan_window"`
	RepeatRecentScan  bool  `yaml:"repeat_recent_scan"`

	FullScanEnabled bool `yaml:"full_scan_enabled"`
	RepeatFullScan  bool `yaml:"repeat_full_scan"`

	RetryDelay time.Duration `yaml:"retry_delay"`
}

// XRPLConfig is XRPL config.
type XRPLConfig struct {
	HTTPClient HTTPClientConfig  `yaml:"http_client"`
	RPC        XRPLRPCConfig     `yaml:"rpc"`
	Submit     XRPLSubmitConfig  `yaml:"submit"`
	Scanner    XRPLScannerConfig `yaml:"scanner"`
}

// BatchMonitorConfig is batch monitor process config.
type BatchMonitorConfig struct {
	// Account is the address of the account which transactions are monitored.
	Account          string `yaml:"account"`
	CheckedCacheSize int    `yaml:"checked_cache_size"`
}

// ProcessesConfig is processes config.
type ProcessesConfig struct {
	BatchMonitor BatchMonitorConfig `yaml:"batch_monitor"`
	RetryDelay   time.Duration      `yaml:"retry_delay"`
	ExitOnError  bool               `yaml:"-"`
}

// MetricsServerConfig is metric server config.
type MetricsServerConfig struct {
	ListenAddress string `yaml:"listen_address"`
}

// PeriodicCollectorConfig is metric periodic collector config.
type PeriodicCollectorConfig struct {
	RepeatDelay time.Duration `yaml:"repeat_delay"`
}

// MetricsConfig is metric config.
type MetricsConfig struct {
	Enabled           bool                    `yaml:"enabled"`
	Server            MetricsServerConfig     `yaml:"server"`
	PeriodicCollector PeriodicCollectorConfig `yaml:"periodic_collector"`
}

// Config is runner config.
type Config struct {
	Version       string          `yaml:"version"`
	LoggingConfig LoggingConfig   `yaml:"logging"`
	XRPL          XRPLConfig      `yaml:"xrpl"`
	Processes     ProcessesConfig `yaml:"processes"`
	Metrics       MetricsConfig   `yaml:"metrics"`
}

// DefaultConfig returns default runner config.
func DefaultConfig() Config {
	defaultXRPLRPCfg := xrpl.DefaultRPCClientConfig(DefaultTestnetRPCURL)
	defaultXRPLAccountScannerCfg := xrpl.DefaultAccountScannerConfig(rippledata.Account{})
	defaultBatchMonitorCfg := processes.DefaultBatchMonitorProcessConfig(rippledata.Account{})
	defaultMetricsServerCfg := metrics.DefaultServerConfig()
	defaultPeriodicCollectorCfg := metrics.DefaultPeriodicCollectorConfig()

	return Config{
		Version:       configVersion,
		LoggingConfig: LoggingConfig(logger.DefaultZapLoggerConfig()),
		XRPL: XRPLConfig{
			HTTPClient: HTTPClientConfig(toolshttp.DefaultClientConfig()),
			RPC: XRPLRPCConfig{
				URL:       defaultXRPLRPCfg.URL,
				PageLimit: defaultXRPLRPCfg.PageLimit,
			},
			Submit: XRPLSubmitConfig{
				AwaitTimeout:       defaultXRPLRPCfg.SubmitAwaitTimeout,
				PollInterval:       defaultXRPLRPCfg.SubmitPollInterval,
				PollRequestTimeout: defaultXRPLRPCfg.SubmitPollRequestTimeout,
			},
			Scanner: XRPLScannerConfig{
				RecentScanEnabled: defaultXRPLAccountScannerCfg.RecentScanEnabled,
				RecentScanWindow:  defaultXRPLAccountScannerCfg.RecentScanWindow,
				RepeatRecentScan:  defaultXRPLAccountScannerCfg.RepeatRecentScan,
				FullScanEnabled:   defaultXRPLAccountScannerCfg.FullScanEnabled,
				RepeatFullScan:    defaultXRPLAccountScannerCfg.RepeatFullScan,
				RetryDelay:        defaultXRPLAccountScannerCfg.RetryDelay,
			},
		},

		Processes: ProcessesConfig{
			BatchMonitor: BatchMonitorConfig{
				// empty be default
				Account:          "",
				CheckedCacheSize: defaultBatchMonitorCfg.CheckedCacheSize,
			},
			RetryDelay: 10 * time.Second,
		},

		Metrics: MetricsConfig{
			Enabled: false,
			Server: MetricsServerConfig{
				ListenAddress: defaultMetricsServerCfg.ListenAddress,
			},
			PeriodicCollector: PeriodicCollectorConfig{
				RepeatDelay: defaultPeriodicCollectorCfg.RepeatDelay,
			},
		},
	}
}

// InitConfig creates config yaml file.
func InitConfig(homePath string, cfg Config) error {
	path := BuildFilePath(homePath)
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		return errors.Errorf("failed to init config, file already exists, path:%s", path)
	}

	err := os.MkdirAll(homePath, 0o700)
	if err != nil {
		return errors.Errorf("failed to create dirs by path:%s", path)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return errors.Wrapf(err, "failed to create config file, path:%s", path)
	}
	defer file.Close()
	yamlStringConfig, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed convert default config to yaml")
	}
	if _, err := file.Write(yamlStringConfig); err != nil {
		return errors.Wrapf(err, "failed to write yaml config file, path:%s", path)
	}

	return nil
}

// ReadConfig reads config yaml file. The values absent in the file are taken from the DefaultConfig.
func ReadConfig(homePath string) (Config, error) {
	path := BuildFilePath(homePath)
	file, err := os.OpenFile(path, os.O_RDONLY, 0o600)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, errors.Errorf("config file does not exist, path:%s", path)
	}
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to open config file, path:%s", path)
	}
	defer file.Close()
	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read bytes from file, path:%s", path)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(fileBytes, &config); err != nil {
		return Config{}, errors.Wrapf(err, "failed to unmarshal file to yaml, path:%s", path)
	}

	return config, nil
}

// BuildFilePath returns the config file path in the home directory.
func BuildFilePath(homePath string) string {
	return filepath.Join(homePath, ConfigFileName)
}
