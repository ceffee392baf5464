package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ReconnectAttempts counts coordinator runs by outcome (skipped, connected, failed).
	ReconnectAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dapp_reconnect_attempts_total",
			Help: "Total number of wallet reconnect attempts",
		},
		[]string{"outcome"},
	)

	// MonitorTicks counts health monitor ticks by monitor and result.
	MonitorTicks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dapp_monitor_ticks_total",
			Help: "Total number of connection health monitor ticks",
		},
		[]string{"monitor", "result"},
	)

	// Escalations counts monitor escalations by policy.
	Escalations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dapp_monitor_escalations_total",
			Help: "Total number of health monitor escalations",
		},
		[]string{"monitor", "policy"},
	)

	SessionReloads = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dapp_session_reloads_total",
			Help: "Total number of full session reloads",
		},
	)

	// Transactions counts submitted dApp actions by action and status.
	Transactions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dapp_transactions_total",
			Help: "Total number of submitted transactions",
		},
		[]string{"action", "status"},
	)

	// ConfirmationLatency tracks how long the node took to confirm a submission.
	ConfirmationLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dapp_confirmation_latency_seconds",
			Help:    "Transaction confirmation latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"action"},
	)

	// UpstreamCalls counts calls to the wallet bridge and chain node.
	UpstreamCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dapp_upstream_calls_total",
			Help: "Total number of calls to the wallet bridge and chain node",
		},
		[]string{"upstream", "method", "status"},
	)
)
