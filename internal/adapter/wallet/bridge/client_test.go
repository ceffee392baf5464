package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"token-recovery-dapp/internal/core/domain"
	"token-recovery-dapp/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clocktesting "k8s.io/utils/clock/testing"
)

// fakeBridge is an in-process wallet bridge.
type fakeBridge struct {
	mu       sync.Mutex
	session  domain.WalletSession
	alive    bool
	rejectTx bool
	payloads []domain.TransactionPayload
	connects []string
}

func (b *fakeBridge) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /session", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, http.StatusOK, b.session)
	})
	mux.HandleFunc("POST /connect", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			WalletName string `json:"wallet_name"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		b.mu.Lock()
		defer b.mu.Unlock()
		b.connects = append(b.connects, body.WalletName)
		if body.WalletName != "Petra" {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "wallet not installed"})
			return
		}
		b.session = domain.WalletSession{
			WalletName: "Petra",
			Connected:  true,
			Account:    &domain.Account{Address: "0xabc", PublicKey: "0xpub"},
			Network:    &domain.NetworkInfo{Name: "devnet"},
		}
		writeJSON(w, http.StatusOK, b.session)
	})
	mux.HandleFunc("POST /disconnect", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.session = domain.WalletSession{}
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /network/connected", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]bool{"connected": b.alive})
	})
	mux.HandleFunc("POST /transactions", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Data domain.TransactionPayload `json:"data"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.rejectTx {
			writeJSON(w, http.StatusForbidden, map[string]string{"error": "User rejected the request"})
			return
		}
		b.payloads = append(b.payloads, body.Data)
		writeJSON(w, http.StatusOK, map[string]string{"hash": "0xhash"})
	})
	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newTestClient(t *testing.T, b *fakeBridge) *Client {
	t.Helper()
	srv := httptest.NewServer(b.handler())
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL + "/", RequestTimeout: time.Second}, nil, zerolog.Nop())
}

func TestClient_ConnectUpdatesStateAndPublishes(t *testing.T) {
	b := &fakeBridge{}
	c := newTestClient(t, b)

	assert.False(t, c.State().HasWallet())

	require.NoError(t, c.Connect(context.Background(), "Petra"))

	state := c.State()
	assert.True(t, state.FullyConnected())
	assert.Equal(t, "0xabc", state.Account.Address)

	select {
	case s := <-c.Changes():
		assert.Equal(t, "Petra", s.WalletName)
	default:
		t.Fatal("expected a session change")
	}
}

func TestClient_ConnectUnknownWallet(t *testing.T) {
	c := newTestClient(t, &fakeBridge{})

	err := c.Connect(context.Background(), "Nightly")
	require.Error(t, err)

	var bridgeErr *Error
	require.ErrorAs(t, err, &bridgeErr)
	assert.Equal(t, http.StatusNotFound, bridgeErr.Status)
	assert.Equal(t, "wallet not installed", bridgeErr.Message)
	assert.NotErrorIs(t, err, ports.ErrUserRejected)
}

func TestClient_Disconnect(t *testing.T) {
	b := &fakeBridge{}
	c := newTestClient(t, b)
	ctx := context.Background()

	require.NoError(t, c.Connect(ctx, "Petra"))
	<-c.Changes()

	require.NoError(t, c.Disconnect(ctx))
	assert.False(t, c.State().HasWallet())
	assert.False(t, (<-c.Changes()).Connected)
}

func TestClient_IsConnected(t *testing.T) {
	b := &fakeBridge{alive: true}
	c := newTestClient(t, b)

	ok, err := c.IsConnected(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)

	b.mu.Lock()
	b.alive = false
	b.mu.Unlock()

	ok, err = c.IsConnected(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClient_SignAndSubmitTransaction(t *testing.T) {
	b := &fakeBridge{}
	c := newTestClient(t, b)
	payload := domain.BuildTransfer("0x1", "100")

	submitted, err := c.SignAndSubmitTransaction(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, "0xhash", submitted.Hash)

	b.mu.Lock()
	defer b.mu.Unlock()
	require.Len(t, b.payloads, 1)
	assert.Equal(t, payload, b.payloads[0])
}

func TestClient_SignAndSubmitTransaction_Rejected(t *testing.T) {
	c := newTestClient(t, &fakeBridge{rejectTx: true})

	_, err := c.SignAndSubmitTransaction(context.Background(), domain.BuildInitializeRecovery("0x1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ports.ErrUserRejected)
	assert.Contains(t, err.Error(), "User rejected the request")
}

func TestClient_ResetRehandshakes(t *testing.T) {
	b := &fakeBridge{}
	c := newTestClient(t, b)
	ctx := context.Background()

	require.NoError(t, c.Connect(ctx, "Petra"))
	<-c.Changes()

	// The bridge still holds the session: reset clears the cache, then reloads it.
	require.NoError(t, c.Reset(ctx))
	assert.False(t, (<-c.Changes()).HasWallet())
	assert.True(t, (<-c.Changes()).FullyConnected())
	assert.True(t, c.State().FullyConnected())
}

func TestClient_TransportError(t *testing.T) {
	c := NewClient(Config{BaseURL: "http://bridge.invalid"}, &mockHTTPClient{doFunc: func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	}}, zerolog.Nop())

	_, err := c.IsConnected(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")

	assert.Error(t, c.Reset(context.Background()))
}

func TestClient_PlainTextError(t *testing.T) {
	c := NewClient(Config{BaseURL: "http://bridge"}, &mockHTTPClient{doFunc: func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Body:       io.NopCloser(strings.NewReader("extension not responding")),
		}, nil
	}}, zerolog.Nop())

	err := c.Connect(context.Background(), "Petra")
	var bridgeErr *Error
	require.ErrorAs(t, err, &bridgeErr)
	assert.Equal(t, "extension not responding", bridgeErr.Message)
}

func TestClient_WatchPublishesExternalChanges(t *testing.T) {
	b := &fakeBridge{}
	srv := httptest.NewServer(b.handler())
	defer srv.Close()

	clk := clocktesting.NewFakeClock(time.Now())
	c := NewClient(Config{BaseURL: srv.URL, WatchInterval: time.Second, Clock: clk}, nil, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Watch(ctx)
		close(done)
	}()
	defer func() {
		cancel()
		<-done
	}()

	// The user connects through the wallet itself.
	b.mu.Lock()
	b.session = domain.WalletSession{WalletName: "Petra", Connected: true, Account: &domain.Account{Address: "0xabc"}}
	b.mu.Unlock()

	assert.Eventually(t, clk.HasWaiters, time.Second, 5*time.Millisecond)
	clk.Step(time.Second)

	select {
	case s := <-c.Changes():
		assert.True(t, s.FullyConnected())
	case <-time.After(2 * time.Second):
		t.Fatal("expected a session change from polling")
	}
}

func TestSameSession(t *testing.T) {
	a := domain.WalletSession{WalletName: "Petra", Connected: true, Account: &domain.Account{Address: "0x1"}}
	b := domain.WalletSession{WalletName: "Petra", Connected: true, Account: &domain.Account{Address: "0x1"}}
	assert.True(t, sameSession(a, b))

	b.Account = &domain.Account{Address: "0x2"}
	assert.False(t, sameSession(a, b))

	b.Account = nil
	assert.False(t, sameSession(a, b))
	assert.True(t, sameSession(domain.WalletSession{}, domain.WalletSession{}))
}

type mockHTTPClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}
