package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"token-recovery-dapp/internal/core/domain"
	"token-recovery-dapp/internal/core/ports"
	"token-recovery-dapp/internal/metrics"
	"token-recovery-dapp/pkg/logger"

	"github.com/rs/zerolog"
	"k8s.io/utils/clock"
)

// Reconnector restores a wallet connection from a session snapshot.
type Reconnector interface {
	Reconnect(ctx context.Context, session domain.WalletSession) Outcome
}

// EscalationPolicy decides what a monitor does when a reconnect attempt
// blows up instead of failing normally.
type EscalationPolicy interface {
	Name() string
	Escalate(ctx context.Context, cause error)
}

// HardReloadPolicy throws away all in-memory session state.
type HardReloadPolicy struct {
	reloader ports.Reloader
	log      zerolog.Logger
}

func NewHardReloadPolicy(reloader ports.Reloader, log zerolog.Logger) *HardReloadPolicy {
	return &HardReloadPolicy{reloader: reloader, log: log}
}

func (p *HardReloadPolicy) Name() string { return "hard_reload" }

func (p *HardReloadPolicy) Escalate(ctx context.Context, cause error) {
	p.log.Error().Err(cause).Msg("reconnect crashed, reloading session")
	if err := p.reloader.Reload(ctx); err != nil {
		p.log.Error().Err(err).Msg("session reload failed")
	}
}

// SilentRetryPolicy logs and leaves recovery to the next tick.
type SilentRetryPolicy struct {
	log zerolog.Logger
}

func NewSilentRetryPolicy(log zerolog.Logger) *SilentRetryPolicy {
	return &SilentRetryPolicy{log: log}
}

func (p *SilentRetryPolicy) Name() string { return "silent_retry" }

func (p *SilentRetryPolicy) Escalate(_ context.Context, cause error) {
	p.log.Warn().Err(cause).Msg("reconnect crashed, retrying on next tick")
}

// HealthMonitorConfig parameterizes a HealthMonitor.
type HealthMonitorConfig struct {
	Name     string
	Interval time.Duration
	Policy   EscalationPolicy
	// Clock defaults to the real clock.
	Clock clock.WithTicker
}

// HealthMonitor periodically verifies the wallet session and reconnects it.
//
// A session that claims to be connected is probed when the adapter supports
// it. Only an explicit not-connected answer forces a disconnect; probe errors
// are logged and ignored. A session that is not connected goes straight to
// the Reconnector. A panic while reconnecting is recovered and handed to the
// monitor's EscalationPolicy.
type HealthMonitor struct {
	cfg         HealthMonitorConfig
	adapter     ports.WalletAdapter
	reconnector Reconnector
	log         zerolog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewHealthMonitor creates a stopped HealthMonitor.
func NewHealthMonitor(cfg HealthMonitorConfig, adapter ports.WalletAdapter, reconnector Reconnector, log zerolog.Logger) *HealthMonitor {
	if cfg.Clock == nil {
		cfg.Clock = clock.RealClock{}
	}
	if cfg.Policy == nil {
		cfg.Policy = NewSilentRetryPolicy(log)
	}
	return &HealthMonitor{
		cfg:         cfg,
		adapter:     adapter,
		reconnector: reconnector,
		log:         logger.Component(log, "health_monitor").With().Str("monitor", cfg.Name).Logger(),
	}
}

// Name returns the monitor name.
func (m *HealthMonitor) Name() string {
	return m.cfg.Name
}

// Start begins ticking. Calling Start on a running monitor is a no-op.
func (m *HealthMonitor) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	ticker := m.cfg.Clock.NewTicker(m.cfg.Interval)

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C():
				if ctx.Err() != nil {
					return
				}
				m.CheckOnce(ctx)
			}
		}
	}()

	m.log.Info().Dur("interval", m.cfg.Interval).Str("policy", m.cfg.Policy.Name()).Msg("health monitor started")
}

// Stop halts the monitor and waits for an in-flight tick to finish.
// No tick runs after Stop returns. Stop is idempotent.
func (m *HealthMonitor) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	m.wg.Wait()
	m.log.Info().Msg("health monitor stopped")
}

// CheckOnce runs a single tick.
func (m *HealthMonitor) CheckOnce(ctx context.Context) {
	session := m.adapter.State()

	if !session.Connected || !session.FullyConnected() {
		m.reconnect(ctx, session)
		return
	}

	prober, ok := m.adapter.(ports.LivenessProber)
	if !ok {
		m.record("healthy")
		return
	}

	alive, err := prober.IsConnected(ctx)
	if err != nil {
		m.log.Warn().Err(err).Str("wallet", session.WalletName).Msg("liveness probe failed")
		m.record("probe_error")
		return
	}
	if alive {
		m.record("healthy")
		return
	}

	m.log.Warn().Str("wallet", session.WalletName).Msg("wallet lost its network connection, forcing disconnect")
	if err := m.adapter.Disconnect(ctx); err != nil {
		m.log.Warn().Err(err).Msg("forced disconnect failed")
		m.record("disconnect_error")
		return
	}

	// Reconnect the same wallet as it looks after the disconnect.
	dropped := session
	dropped.Connected = false
	dropped.Account = nil
	m.reconnect(ctx, dropped)
}

func (m *HealthMonitor) reconnect(ctx context.Context, session domain.WalletSession) {
	defer func() {
		if r := recover(); r != nil {
			cause := fmt.Errorf("reconnect panicked: %v", r)
			m.record("escalated")
			metrics.Escalations.WithLabelValues(m.cfg.Name, m.cfg.Policy.Name()).Inc()
			m.cfg.Policy.Escalate(ctx, cause)
		}
	}()

	outcome := m.reconnector.Reconnect(ctx, session)
	m.record(string(outcome))
}

func (m *HealthMonitor) record(result string) {
	metrics.MonitorTicks.WithLabelValues(m.cfg.Name, result).Inc()
}
