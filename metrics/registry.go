package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	errorsTotalMetricName                             = "errors_total"
	xrplRPCDecodingErrorsTotalMetricName              = "xrpl_rpc_decoding_errors_total"
	batchInnerTxStatusesTotalMetricName               = "batch_inner_tx_statuses_total"
	batchChecksTotalMetricName                        = "batch_checks_total"
	xrplAccountRecentHistoryScanLedgerIndexMetricName = "xrpl_account_recent_history_scan_ledger_index"
	xrplAccountFullHistoryScanLedgerIndexMetricName   = "xrpl_account_full_history_scan_ledger_index"
	xrplAccountBalancesMetricName                     = "xrpl_account_balances"
	xrplLedgerCurrentIndexMetricName                  = "xrpl_ledger_current_index"

	// StatusLabel is inner transaction status label.
	StatusLabel = "status"
	// ModeLabel is batch mode label.
	ModeLabel = "mode"
	// OutcomeLabel is batch outcome label.
	OutcomeLabel = "outcome"
	// XRPLCurrencyIssuerLabel is XRPL currency issuer label.
	XRPLCurrencyIssuerLabel = "xrpl_currency_issuer"
)

// Registry contains metrics.
type Registry struct {
	ErrorCounter                                 prometheus.Counter
	XRPLRPCDecodingErrorCounter                  prometheus.Counter
	BatchInnerTxStatusCounterVec                 *prometheus.CounterVec
	BatchCheckCounterVec                         *prometheus.CounterVec
	XRPLAccountRecentHistoryScanLedgerIndexGauge prometheus.Gauge
	XRPLAccountFullHistoryScanLedgerIndexGauge   prometheus.Gauge
	XRPLAccountBalancesGaugeVec                  *prometheus.GaugeVec
	XRPLLedgerCurrentIndexGauge                  prometheus.Gauge
}

// NewRegistry returns new metric registry.
func NewRegistry() *Registry {
	return &Registry{
		ErrorCounter: prometheus.NewCounter(prometheus.CounterOpts{
			Name: errorsTotalMetricName,
			Help: "Error counter",
		}),
		XRPLRPCDecodingErrorCounter: prometheus.NewCounter(prometheus.CounterOpts{
			Name: xrplRPCDecodingErrorsTotalMetricName,
			Help: "XRPL RPC results which can't be decoded",
		}),
		BatchInnerTxStatusCounterVec: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: batchInnerTxStatusesTotalMetricName,
			Help: "Resolved batch inner transaction statuses",
		},
			[]string{StatusLabel},
		),
		BatchCheckCounterVec: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: batchChecksTotalMetricName,
			Help: "Checked batches",
		},
			[]string{
				ModeLabel,
				OutcomeLabel,
			},
		),
		XRPLAccountRecentHistoryScanLedgerIndexGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: xrplAccountRecentHistoryScanLedgerIndexMetricName,
			Help: "XRPL account recent history scan ledger index",
		}),
		XRPLAccountFullHistoryScanLedgerIndexGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: xrplAccountFullHistoryScanLedgerIndexMetricName,
			Help: "XRPL account full history scan ledger index",
		}),
		XRPLAccountBalancesGaugeVec: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: xrplAccountBalancesMetricName,
			Help: "XRPL monitored account balances",
		},
			[]string{XRPLCurrencyIssuerLabel},
		),
		XRPLLedgerCurrentIndexGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: xrplLedgerCurrentIndexMetricName,
			Help: "XRPL current ledger index",
		}),
	}
}

// Register registers all the metrics to prometheus.
func (m *Registry) Register(registry prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.ErrorCounter,
		m.XRPLRPCDecodingErrorCounter,
		m.BatchInnerTxStatusCounterVec,
		m.BatchCheckCounterVec,
		m.XRPLAccountRecentHistoryScanLedgerIndexGauge,
		m.XRPLAccountFullHistoryScanLedgerIndexGauge,
		m.XRPLAccountBalancesGaugeVec,
		m.XRPLLedgerCurrentIndexGauge,
	}

	for _, c := range collectors {
		if err := registry.Register(c); err != nil {
			return errors.Wrapf(err, "failed to register metric collector")
		}
	}

	return nil
}

// IncrementErrorCounter increments ErrorCounter.
func (m *Registry) IncrementErrorCounter() {
	m.ErrorCounter.Inc()
}

// IncrementXRPLRPCDecodingErrorCounter increments XRPLRPCDecodingErrorCounter.
func (m *Registry) IncrementXRPLRPCDecodingErrorCounter() {
	m.XRPLRPCDecodingErrorCounter.Inc()
}

// IncrementBatchInnerTxStatusCounter increments BatchInnerTxStatusCounterVec with the status label.
func (m *Registry) IncrementBatchInnerTxStatusCounter(status string) {
	m.BatchInnerTxStatusCounterVec.WithLabelValues(status).Inc()
}

// IncrementBatchCheckCounter increments BatchCheckCounterVec with the mode and outcome labels.
func (m *Registry) IncrementBatchCheckCounter(mode, outcome string) {
	m.BatchCheckCounterVec.WithLabelValues(mode, outcome).Inc()
}

// SetXRPLAccountRecentHistoryScanLedgerIndex sets XRPLAccountRecentHistoryScanLedgerIndexGauge value.
func (m *Registry) SetXRPLAccountRecentHistoryScanLedgerIndex(index float64) {
	m.XRPLAccountRecentHistoryScanLedgerIndexGauge.Set(index)
}

// SetXRPLAccountFullHistoryScanLedgerIndex sets XRPLAccountFullHistoryScanLedgerIndexGauge value.
func (m *Registry) SetXRPLAccountFullHistoryScanLedgerIndex(index float64) {
	m.XRPLAccountFullHistoryScanLedgerIndexGauge.Set(index)
}
