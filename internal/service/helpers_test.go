package service

import (
	"context"
	"io"
	"sync"
	"testing"

	"token-recovery-dapp/internal/adapter/storage/memory"
	"token-recovery-dapp/internal/core/domain"
	"token-recovery-dapp/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testModule    = "0x9f3e6b8a1c2d4e5f60718293a4b5c6d7e8f90a1b2c3d4e5f6a7b8c9d0e1f2a3b"
	testAccount   = "0x5e7a19f0c3b24d6e8a1f2c3d4b5a69788796a5b4c3d2e1f00112233445566778"
	testRecipient = "0x00000000000000000000000000000000000000000000000000000000000000a1"
)

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func newMemoryPrefs() *PreferenceStore {
	return NewPreferenceStore(memory.NewKVStore(), "aptos_dapp_", newTestLogger())
}

func connectedSession(wallet string) domain.WalletSession {
	return domain.WalletSession{
		WalletName: wallet,
		Connected:  true,
		Account:    &domain.Account{Address: testAccount},
		Network:    &domain.NetworkInfo{Name: "devnet", ChainID: "174"},
	}
}

func disconnectedSession(wallet string) domain.WalletSession {
	return domain.WalletSession{WalletName: wallet}
}

func assertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, expectedCode, appErr.Code)
}

// recordingReconnector records every session it is asked to reconnect.
type recordingReconnector struct {
	mu      sync.Mutex
	calls   []domain.WalletSession
	outcome Outcome
	panicV  any
	called  chan struct{}
}

func newRecordingReconnector() *recordingReconnector {
	return &recordingReconnector{outcome: OutcomeSkipped, called: make(chan struct{}, 16)}
}

func (r *recordingReconnector) Reconnect(_ context.Context, session domain.WalletSession) Outcome {
	r.mu.Lock()
	r.calls = append(r.calls, session)
	r.mu.Unlock()
	r.called <- struct{}{}
	if r.panicV != nil {
		panic(r.panicV)
	}
	return r.outcome
}

func (r *recordingReconnector) Calls() []domain.WalletSession {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.WalletSession, len(r.calls))
	copy(out, r.calls)
	return out
}
