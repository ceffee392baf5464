package service

import (
	"context"
	"sync"

	"token-recovery-dapp/internal/core/domain"
	"token-recovery-dapp/internal/core/ports"
	"token-recovery-dapp/pkg/logger"

	"github.com/rs/zerolog"
)

// SessionObserver persists successful connections and runs the initial
// reconnect. It is the only component that writes the wallet preference.
type SessionObserver struct {
	adapter     ports.WalletAdapter
	prefs       ports.PreferenceStore
	reconnector Reconnector
	log         zerolog.Logger

	mountOnce sync.Once
}

// NewSessionObserver creates a new SessionObserver.
func NewSessionObserver(adapter ports.WalletAdapter, prefs ports.PreferenceStore, reconnector Reconnector, log zerolog.Logger) *SessionObserver {
	return &SessionObserver{
		adapter:     adapter,
		prefs:       prefs,
		reconnector: reconnector,
		log:         logger.Component(log, "session_observer"),
	}
}

// Observe records session as the preferred wallet when it is fully connected.
func (o *SessionObserver) Observe(ctx context.Context, session domain.WalletSession) {
	if !session.FullyConnected() {
		return
	}
	o.prefs.Set(ctx, LastWalletKey, session.WalletName)
	o.log.Debug().Str("wallet", session.WalletName).Msg("stored wallet preference")
}

// Mount observes the current session and attempts the initial reconnect.
// Only the first call does anything. A panic from the reconnector counts as a
// failed attempt; the monitors pick the session up on their next tick.
func (o *SessionObserver) Mount(ctx context.Context) Outcome {
	outcome := OutcomeSkipped
	o.mountOnce.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				o.log.Error().Interface("panic", r).Msg("initial reconnect panicked")
				outcome = OutcomeFailed
			}
		}()
		session := o.adapter.State()
		o.Observe(ctx, session)
		outcome = o.reconnector.Reconnect(ctx, session)
	})
	return outcome
}

// Run mounts and then observes every change from watcher until ctx is done
// or the change stream closes.
func (o *SessionObserver) Run(ctx context.Context, watcher ports.SessionWatcher) {
	o.Mount(ctx)

	changes := watcher.Changes()
	for {
		select {
		case <-ctx.Done():
			return
		case session, ok := <-changes:
			if !ok {
				return
			}
			o.Observe(ctx, session)
		}
	}
}
