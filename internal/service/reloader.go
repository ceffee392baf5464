package service

import (
	"context"
	"fmt"

	"token-recovery-dapp/internal/core/domain"
	"token-recovery-dapp/internal/core/ports"
	"token-recovery-dapp/internal/metrics"
	"token-recovery-dapp/pkg/logger"

	"github.com/rs/zerolog"
)

// SessionResetter discards cached wallet session state and re-handshakes.
type SessionResetter interface {
	Reset(ctx context.Context) error
}

// SessionReloader is the last-resort recovery: all in-memory session state is
// dropped. The persisted wallet preference survives.
type SessionReloader struct {
	adapter  ports.WalletAdapter
	resetter SessionResetter
	notices  ports.NoticeService
	audit    ports.AuditService
	log      zerolog.Logger
}

// NewSessionReloader creates a new SessionReloader.
func NewSessionReloader(
	adapter ports.WalletAdapter,
	resetter SessionResetter,
	notices ports.NoticeService,
	audit ports.AuditService,
	log zerolog.Logger,
) *SessionReloader {
	return &SessionReloader{
		adapter:  adapter,
		resetter: resetter,
		notices:  notices,
		audit:    audit,
		log:      logger.Component(log, "session_reloader"),
	}
}

// Reload implements ports.Reloader.
func (r *SessionReloader) Reload(ctx context.Context) error {
	session := r.adapter.State()
	metrics.SessionReloads.Inc()

	r.notices.Post(domain.NoticeLevelError, "Connection lost", "The wallet session was reset. It will reconnect automatically if possible.")
	r.audit.Log(ctx, domain.NewAuditLog(domain.AuditActionReload, session, ""))

	if err := r.resetter.Reset(ctx); err != nil {
		return fmt.Errorf("resetting wallet session: %w", err)
	}

	r.log.Warn().Str("wallet", session.WalletName).Msg("session reloaded")
	return nil
}
