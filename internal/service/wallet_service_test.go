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

type walletTestDeps struct {
	svc     *WalletServiceImpl
	adapter *mocks.MockWalletAdapter
	notices *mocks.MockNoticeService
	audit   *mocks.MockAuditService
	prefs   *PreferenceStore
	ctrl    *gomock.Controller
}

func setupWalletService(t *testing.T) *walletTestDeps {
	ctrl := gomock.NewController(t)
	d := &walletTestDeps{
		adapter: mocks.NewMockWalletAdapter(ctrl),
		notices: mocks.NewMockNoticeService(ctrl),
		audit:   mocks.NewMockAuditService(ctrl),
		prefs:   newMemoryPrefs(),
		ctrl:    ctrl,
	}
	observer := NewSessionObserver(d.adapter, d.prefs, newRecordingReconnector(), newTestLogger())
	d.svc = NewWalletService(d.adapter, observer, d.notices, d.audit, newTestLogger())
	return d
}

func TestWalletService_Connect_PersistsPreference(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.adapter.EXPECT().Connect(ctx, "Petra").Return(nil)
	d.adapter.EXPECT().State().Return(connectedSession("Petra"))
	d.audit.EXPECT().Log(ctx, gomock.Any())

	session, err := d.svc.Connect(ctx, " Petra ")
	require.NoError(t, err)
	assert.True(t, session.FullyConnected())

	v, ok := d.prefs.Get(ctx, LastWalletKey)
	assert.True(t, ok)
	assert.Equal(t, "Petra", v)
}

func TestWalletService_Connect_EmptyName(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.Connect(context.Background(), "  ")
	assertAppError(t, err, "VAL_000")
}

func TestWalletService_Connect_Rejected(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.adapter.EXPECT().Connect(ctx, "Petra").Return(errors.New("User rejected the request"))
	d.notices.EXPECT().Post(domain.NoticeLevelError, "Error", "User rejected the request")

	_, err := d.svc.Connect(ctx, "Petra")
	assertAppError(t, err, "WAL_002")

	_, ok := d.prefs.Get(ctx, LastWalletKey)
	assert.False(t, ok)
}

func TestWalletService_Disconnect(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()
	d.prefs.Set(ctx, LastWalletKey, "Petra")

	d.adapter.EXPECT().State().Return(connectedSession("Petra"))
	d.adapter.EXPECT().Disconnect(ctx).Return(nil)
	d.audit.EXPECT().Log(ctx, gomock.Any()).Do(func(_ context.Context, entry *domain.AuditLog) {
		assert.Equal(t, domain.AuditActionDisconnect, entry.Action)
	})

	require.NoError(t, d.svc.Disconnect(ctx))

	v, ok := d.prefs.Get(ctx, LastWalletKey)
	assert.True(t, ok)
	assert.Equal(t, "Petra", v)
}

func TestWalletService_Disconnect_Error(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.adapter.EXPECT().State().Return(connectedSession("Petra"))
	d.adapter.EXPECT().Disconnect(ctx).Return(errors.New("bridge unavailable"))

	err := d.svc.Disconnect(ctx)
	assertAppError(t, err, "WAL_002")
}

func TestWalletService_Session(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()

	d.adapter.EXPECT().State().Return(disconnectedSession("Petra"))
	assert.Equal(t, "Petra", d.svc.Session().WalletName)
}
