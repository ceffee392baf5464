package service

import (
	"context"
	"strings"

	"token-recovery-dapp/internal/core/domain"
	"token-recovery-dapp/internal/core/ports"
	"token-recovery-dapp/pkg/apperror"
	"token-recovery-dapp/pkg/logger"

	"github.com/rs/zerolog"
)

// WalletServiceImpl handles user-initiated connects and disconnects.
type WalletServiceImpl struct {
	adapter  ports.WalletAdapter
	observer *SessionObserver
	notices  ports.NoticeService
	audit    ports.AuditService
	log      zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	adapter ports.WalletAdapter,
	observer *SessionObserver,
	notices ports.NoticeService,
	audit ports.AuditService,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		adapter:  adapter,
		observer: observer,
		notices:  notices,
		audit:    audit,
		log:      logger.Component(log, "wallet_service"),
	}
}

func (s *WalletServiceImpl) Session() domain.WalletSession {
	return s.adapter.State()
}

// Connect connects the named wallet and persists it as the preferred wallet.
func (s *WalletServiceImpl) Connect(ctx context.Context, walletName string) (domain.WalletSession, error) {
	walletName = strings.TrimSpace(walletName)
	if walletName == "" {
		return domain.WalletSession{}, apperror.Validation("wallet_name is required")
	}

	if err := s.adapter.Connect(ctx, walletName); err != nil {
		s.notices.Post(domain.NoticeLevelError, "Error", err.Error())
		return domain.WalletSession{}, apperror.ErrWalletRejected(err)
	}

	session := s.adapter.State()
	s.observer.Observe(ctx, session)
	s.audit.Log(ctx, domain.NewAuditLog(domain.AuditActionConnect, session, ""))
	return session, nil
}

// Disconnect ends the session. The stored preference is left untouched;
// only a failed reconnect clears it.
func (s *WalletServiceImpl) Disconnect(ctx context.Context) error {
	session := s.adapter.State()
	if err := s.adapter.Disconnect(ctx); err != nil {
		return apperror.ErrWalletRejected(err)
	}
	s.audit.Log(ctx, domain.NewAuditLog(domain.AuditActionDisconnect, session, ""))
	return nil
}
