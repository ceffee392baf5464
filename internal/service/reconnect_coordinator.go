package service

import (
	"context"

	"token-recovery-dapp/internal/core/domain"
	"token-recovery-dapp/internal/core/ports"
	"token-recovery-dapp/internal/metrics"
	"token-recovery-dapp/pkg/logger"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Outcome is the result of a reconnect attempt.
type Outcome string

const (
	OutcomeSkipped   Outcome = "skipped"
	OutcomeConnected Outcome = "connected"
	OutcomeFailed    Outcome = "failed"
)

// ReconnectCoordinator restores a wallet connection from the stored preference.
//
// A reconnect is attempted only when a wallet is selected, the session is
// neither connected nor holding an account, and the stored preference names that
// same wallet. A failed connect clears the preference and is never returned
// to the caller. Success is not persisted here; SessionObserver does that.
type ReconnectCoordinator struct {
	adapter ports.WalletAdapter
	prefs   ports.PreferenceStore
	flight  singleflight.Group
	log     zerolog.Logger
}

// NewReconnectCoordinator creates a new ReconnectCoordinator.
func NewReconnectCoordinator(adapter ports.WalletAdapter, prefs ports.PreferenceStore, log zerolog.Logger) *ReconnectCoordinator {
	return &ReconnectCoordinator{
		adapter: adapter,
		prefs:   prefs,
		log:     logger.Component(log, "reconnect_coordinator"),
	}
}

// Reconnect attempts to restore the connection described by session.
// Concurrent calls for the same wallet share one attempt.
func (c *ReconnectCoordinator) Reconnect(ctx context.Context, session domain.WalletSession) Outcome {
	if !c.shouldReconnect(ctx, session) {
		metrics.ReconnectAttempts.WithLabelValues(string(OutcomeSkipped)).Inc()
		return OutcomeSkipped
	}

	v, _, _ := c.flight.Do(session.WalletName, func() (interface{}, error) {
		// A caller that just finished a flight may still hold a stale snapshot.
		if current := c.adapter.State(); current.Connected || current.Account != nil {
			return OutcomeSkipped, nil
		}
		return c.connect(ctx, session.WalletName), nil
	})

	outcome := v.(Outcome)
	metrics.ReconnectAttempts.WithLabelValues(string(outcome)).Inc()
	return outcome
}

func (c *ReconnectCoordinator) shouldReconnect(ctx context.Context, session domain.WalletSession) bool {
	if !session.HasWallet() {
		return false
	}
	if session.Connected || session.Account != nil {
		return false
	}
	stored, ok := c.prefs.Get(ctx, LastWalletKey)
	return ok && stored == session.WalletName
}

func (c *ReconnectCoordinator) connect(ctx context.Context, walletName string) Outcome {
	c.log.Debug().Str("wallet", walletName).Msg("attempting reconnect")

	if err := c.adapter.Connect(ctx, walletName); err != nil {
		c.log.Warn().Err(err).Str("wallet", walletName).Msg("reconnect failed, clearing stored wallet")
		c.prefs.Remove(ctx, LastWalletKey)
		return OutcomeFailed
	}

	c.log.Info().Str("wallet", walletName).Msg("wallet reconnected")
	return OutcomeConnected
}
