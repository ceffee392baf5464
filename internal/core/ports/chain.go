package ports

import (
	"context"
	"encoding/json"

	"token-recovery-dapp/internal/core/domain"
)

// ChainClient reads from the network node. It never signs.
type ChainClient interface {
	WaitForTransaction(ctx context.Context, hash string) (*domain.TransactionResult, error)
	GetAccountResources(ctx context.Context, address string) ([]domain.AccountResource, error)
	View(ctx context.Context, function string, typeArgs, args []string) ([]json.RawMessage, error)
	LedgerInfo(ctx context.Context) (*domain.LedgerInfo, error)
}
