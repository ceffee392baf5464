package ports

//go:generate mockgen -source=wallet.go -destination=mocks/mock_wallet.go -package=mocks
//go:generate mockgen -source=chain.go -destination=mocks/mock_chain.go -package=mocks
//go:generate mockgen -source=storage.go -destination=mocks/mock_storage.go -package=mocks
//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks
//go:generate mockgen -source=health.go -destination=mocks/mock_health.go -package=mocks

import (
	"context"
	"errors"

	"token-recovery-dapp/internal/core/domain"
)

// ErrUserRejected is wrapped by adapters when the user declines a request.
var ErrUserRejected = errors.New("user rejected the request")

// WalletAdapter is the external wallet. It owns the session and the keys.
type WalletAdapter interface {
	// State returns a snapshot of the current session.
	State() domain.WalletSession
	Connect(ctx context.Context, walletName string) error
	Disconnect(ctx context.Context) error
	SignAndSubmitTransaction(ctx context.Context, payload domain.TransactionPayload) (*domain.SubmittedTransaction, error)
}

// LivenessProber is implemented by adapters that can verify the network
// connection behind a session that claims to be connected.
type LivenessProber interface {
	IsConnected(ctx context.Context) (bool, error)
}

// ProbingWalletAdapter is a WalletAdapter that can also probe liveness.
type ProbingWalletAdapter interface {
	WalletAdapter
	LivenessProber
}

// SessionWatcher is implemented by adapters that publish session changes.
type SessionWatcher interface {
	Changes() <-chan domain.WalletSession
}

// Reloader drops all in-memory session state and starts over.
type Reloader interface {
	Reload(ctx context.Context) error
}
