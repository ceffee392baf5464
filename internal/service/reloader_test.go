package service

import (
	"context"
	"errors"
	"testing"

	"token-recovery-dapp/internal/core/domain"
	"token-recovery-dapp/internal/core/ports/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeResetter struct {
	calls int
	err   error
}

func (f *fakeResetter) Reset(context.Context) error {
	f.calls++
	return f.err
}

func TestSessionReloader_Reload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adapter := mocks.NewMockWalletAdapter(ctrl)
	notices := mocks.NewMockNoticeService(ctrl)
	audit := mocks.NewMockAuditService(ctrl)
	resetter := &fakeResetter{}

	adapter.EXPECT().State().Return(disconnectedSession("Petra"))
	notices.EXPECT().Post(domain.NoticeLevelError, "Connection lost", gomock.Any())
	audit.EXPECT().Log(gomock.Any(), gomock.Any()).Do(func(_ context.Context, entry *domain.AuditLog) {
		assert.Equal(t, domain.AuditActionReload, entry.Action)
		assert.Equal(t, "Petra", entry.WalletName)
	})

	r := NewSessionReloader(adapter, resetter, notices, audit, newTestLogger())
	require.NoError(t, r.Reload(context.Background()))
	assert.Equal(t, 1, resetter.calls)
}

func TestSessionReloader_ResetError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adapter := mocks.NewMockWalletAdapter(ctrl)
	notices := mocks.NewMockNoticeService(ctrl)
	audit := mocks.NewMockAuditService(ctrl)
	resetter := &fakeResetter{err: errors.New("connection refused")}

	adapter.EXPECT().State().Return(domain.WalletSession{})
	notices.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any())
	audit.EXPECT().Log(gomock.Any(), gomock.Any())

	r := NewSessionReloader(adapter, resetter, notices, audit, newTestLogger())
	err := r.Reload(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestSessionReloader_PreferenceSurvives(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adapter := mocks.NewMockWalletAdapter(ctrl)
	prefs := newMemoryPrefs()
	ctx := context.Background()
	prefs.Set(ctx, LastWalletKey, "Petra")

	adapter.EXPECT().State().Return(disconnectedSession("Petra"))

	r := NewSessionReloader(adapter, &fakeResetter{}, NewNoticeBoard(0, newTestLogger()), NewAuditService(nil, newTestLogger()), newTestLogger())
	require.NoError(t, r.Reload(ctx))

	v, ok := prefs.Get(ctx, LastWalletKey)
	assert.True(t, ok)
	assert.Equal(t, "Petra", v)
}
