// Package bridge talks to the local wallet bridge: the process that owns the
// keys and the wallet session and exposes them as JSON over HTTP.
package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"token-recovery-dapp/internal/core/domain"
	"token-recovery-dapp/internal/core/ports"
	"token-recovery-dapp/internal/metrics"
	"token-recovery-dapp/pkg/logger"

	"github.com/rs/zerolog"
	"k8s.io/utils/clock"
)

const (
	upstreamName       = "wallet_bridge"
	changesBufferSize  = 16
	maxErrorBodyLength = 4 << 10
)

// HTTPClient abstracts HTTP calls for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Error is a non-2xx answer from the bridge.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("wallet bridge: %s (status %d)", e.Message, e.Status)
}

// Unwrap maps a 403 to ports.ErrUserRejected.
func (e *Error) Unwrap() error {
	if e.Status == http.StatusForbidden {
		return ports.ErrUserRejected
	}
	return nil
}

// Config configures a Client.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	WatchInterval  time.Duration
	Clock          clock.WithTicker
}

// Client implements ports.ProbingWalletAdapter and ports.SessionWatcher
// against the wallet bridge. The last known session is cached so that
// State never blocks.
type Client struct {
	baseURL string
	http    HTTPClient
	cfg     Config
	log     zerolog.Logger

	mu      sync.RWMutex
	session domain.WalletSession
	changes chan domain.WalletSession
}

// NewClient creates a bridge client. httpClient may be nil.
func NewClient(cfg Config, httpClient HTTPClient, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.RealClock{}
	}
	if cfg.WatchInterval <= 0 {
		cfg.WatchInterval = 2 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    httpClient,
		cfg:     cfg,
		log:     logger.Component(log, "wallet_bridge"),
		changes: make(chan domain.WalletSession, changesBufferSize),
	}
}

// State returns the cached session.
func (c *Client) State() domain.WalletSession {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

// Changes implements ports.SessionWatcher.
func (c *Client) Changes() <-chan domain.WalletSession {
	return c.changes
}

// Refresh fetches the session from the bridge and updates the cache.
func (c *Client) Refresh(ctx context.Context) (domain.WalletSession, error) {
	var session domain.WalletSession
	if err := c.do(ctx, http.MethodGet, "/session", nil, &session); err != nil {
		return domain.WalletSession{}, err
	}
	c.update(session)
	return session, nil
}

func (c *Client) Connect(ctx context.Context, walletName string) error {
	var session domain.WalletSession
	body := map[string]string{"wallet_name": walletName}
	if err := c.do(ctx, http.MethodPost, "/connect", body, &session); err != nil {
		return err
	}
	c.update(session)
	return nil
}

func (c *Client) Disconnect(ctx context.Context) error {
	var session domain.WalletSession
	if err := c.do(ctx, http.MethodPost, "/disconnect", nil, &session); err != nil {
		return err
	}
	c.update(session)
	return nil
}

// IsConnected asks the bridge whether the wallet still reaches its network.
func (c *Client) IsConnected(ctx context.Context) (bool, error) {
	var resp struct {
		Connected bool `json:"connected"`
	}
	if err := c.do(ctx, http.MethodGet, "/network/connected", nil, &resp); err != nil {
		return false, err
	}
	return resp.Connected, nil
}

func (c *Client) SignAndSubmitTransaction(ctx context.Context, payload domain.TransactionPayload) (*domain.SubmittedTransaction, error) {
	body := struct {
		Data domain.TransactionPayload `json:"data"`
	}{Data: payload}

	var submitted domain.SubmittedTransaction
	if err := c.do(ctx, http.MethodPost, "/transactions", body, &submitted); err != nil {
		return nil, err
	}
	if submitted.Hash == "" {
		return nil, errors.New("wallet bridge: empty transaction hash")
	}
	return &submitted, nil
}

// Reset drops the cached session and handshakes with the bridge again.
func (c *Client) Reset(ctx context.Context) error {
	c.update(domain.WalletSession{})
	if _, err := c.Refresh(ctx); err != nil {
		return fmt.Errorf("re-handshake: %w", err)
	}
	return nil
}

// Watch polls the bridge for session changes made outside this process
// until ctx is done.
func (c *Client) Watch(ctx context.Context) {
	ticker := c.cfg.Clock.NewTicker(c.cfg.WatchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			if _, err := c.Refresh(ctx); err != nil && ctx.Err() == nil {
				c.log.Debug().Err(err).Msg("session poll failed")
			}
		}
	}
}

// update stores session and publishes it when it differs from the cache.
func (c *Client) update(session domain.WalletSession) {
	c.mu.Lock()
	changed := !sameSession(c.session, session)
	c.session = session
	c.mu.Unlock()

	if !changed {
		return
	}
	select {
	case c.changes <- session:
	default:
		c.log.Warn().Str("wallet", session.WalletName).Msg("session change dropped, no reader")
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s body: %w", path, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamCalls.WithLabelValues(upstreamName, path, "error").Inc()
		return fmt.Errorf("wallet bridge %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	metrics.UpstreamCalls.WithLabelValues(upstreamName, path, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLength))
	var body struct {
		Error string `json:"error"`
	}
	msg := strings.TrimSpace(string(raw))
	if json.Unmarshal(raw, &body) == nil && body.Error != "" {
		msg = body.Error
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &Error{Status: resp.StatusCode, Message: msg}
}

func sameSession(a, b domain.WalletSession) bool {
	if a.WalletName != b.WalletName || a.Connected != b.Connected {
		return false
	}
	if (a.Account == nil) != (b.Account == nil) {
		return false
	}
	return a.Account == nil || *a.Account == *b.Account
}
