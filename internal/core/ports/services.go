package ports

import (
	"context"

	"token-recovery-dapp/internal/core/domain"

	"github.com/google/uuid"
)

// DappService runs the user-facing dApp actions against the connected wallet.
type DappService interface {
	Account(ctx context.Context) (*domain.AccountOverview, error)
	Network(ctx context.Context) (*domain.NetworkOverview, error)
	InitializeRecovery(ctx context.Context) (*domain.TransactionResult, error)
	RequestRecovery(ctx context.Context, to, amount string) (*domain.TransactionResult, error)
	Transfer(ctx context.Context, to, amount string) (*domain.TransactionResult, error)
	WriteMessage(ctx context.Context, content string) (*domain.TransactionResult, error)
	Message(ctx context.Context) (string, error)
}

// WalletService handles user-initiated session changes.
type WalletService interface {
	Session() domain.WalletSession
	Connect(ctx context.Context, walletName string) (domain.WalletSession, error)
	Disconnect(ctx context.Context) error
}

// NoticeService holds dismissable notices for the user.
type NoticeService interface {
	Post(level domain.NoticeLevel, title, message string) domain.Notice
	List() []domain.Notice
	Dismiss(id uuid.UUID) bool
}

// AuditService records audit entries without blocking the caller.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
