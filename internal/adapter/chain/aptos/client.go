// Package aptos is a read-only client for the Aptos fullnode REST API.
package aptos

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"token-recovery-dapp/internal/core/domain"
	"token-recovery-dapp/internal/core/ports"
	"token-recovery-dapp/internal/metrics"
	"token-recovery-dapp/pkg/logger"

	"github.com/rs/zerolog"
	"k8s.io/utils/clock"
)

const (
	upstreamName        = "aptos_node"
	pendingTransaction  = "pending_transaction"
	defaultPollInterval = 500 * time.Millisecond
	maxErrorBodyLength  = 4 << 10
)

// HTTPClient abstracts HTTP calls for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Error is a non-2xx answer from the node.
type Error struct {
	Status    int
	Message   string
	ErrorCode string
}

func (e *Error) Error() string {
	if e.ErrorCode != "" {
		return fmt.Sprintf("aptos node: %s: %s (status %d)", e.ErrorCode, e.Message, e.Status)
	}
	return fmt.Sprintf("aptos node: %s (status %d)", e.Message, e.Status)
}

type Config struct {
	NodeURL        string
	RequestTimeout time.Duration
	PollInterval   time.Duration
	Clock          clock.Clock
}

// Client implements ports.ChainClient.
type Client struct {
	baseURL string
	http    HTTPClient
	cfg     Config
	log     zerolog.Logger
}

var _ ports.ChainClient = (*Client)(nil)

// NewClient creates a node client. httpClient may be nil.
func NewClient(cfg Config, httpClient HTTPClient, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.RealClock{}
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	base := strings.TrimRight(cfg.NodeURL, "/")
	if !strings.HasSuffix(base, "/v1") {
		base += "/v1"
	}
	return &Client{
		baseURL: base,
		http:    httpClient,
		cfg:     cfg,
		log:     logger.Component(log, "aptos_client"),
	}
}

// LedgerInfo returns the chain head.
func (c *Client) LedgerInfo(ctx context.Context) (*domain.LedgerInfo, error) {
	var info domain.LedgerInfo
	if _, err := c.do(ctx, http.MethodGet, "", "/", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) GetAccountResources(ctx context.Context, address string) ([]domain.AccountResource, error) {
	path := "/accounts/" + url.PathEscape(address) + "/resources"
	var resources []domain.AccountResource
	if _, err := c.do(ctx, http.MethodGet, path, "/accounts/resources", nil, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

// View calls a Move view function and returns its raw return values.
func (c *Client) View(ctx context.Context, function string, typeArgs, args []string) ([]json.RawMessage, error) {
	if typeArgs == nil {
		typeArgs = []string{}
	}
	if args == nil {
		args = []string{}
	}
	body := struct {
		Function      string   `json:"function"`
		TypeArguments []string `json:"type_arguments"`
		Arguments     []string `json:"arguments"`
	}{function, typeArgs, args}

	var out []json.RawMessage
	if _, err := c.do(ctx, http.MethodPost, "/view", "/view", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type transactionResponse struct {
	Type     string `json:"type"`
	Hash     string `json:"hash"`
	Success  bool   `json:"success"`
	VMStatus string `json:"vm_status"`
	Version  string `json:"version"`
}

// WaitForTransaction blocks until the transaction with hash is committed
// or ctx is done. The node answers 404 for a hash it has not seen yet.
func (c *Client) WaitForTransaction(ctx context.Context, hash string) (*domain.TransactionResult, error) {
	path := "/transactions/wait_by_hash/" + url.PathEscape(hash)

	for {
		var tx transactionResponse
		status, err := c.do(ctx, http.MethodGet, path, "/transactions/wait_by_hash", nil, &tx)
		switch {
		case err == nil && tx.Type != pendingTransaction:
			return &domain.TransactionResult{
				Hash:     tx.Hash,
				Success:  tx.Success,
				VMStatus: tx.VMStatus,
				Version:  tx.Version,
			}, nil
		case err != nil && status != http.StatusNotFound:
			return nil, err
		}

		c.log.Debug().Str("hash", hash).Int("status", status).Msg("transaction not committed yet")

		timer := c.cfg.Clock.NewTimer(c.cfg.PollInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("waiting for transaction %s: %w", hash, ctx.Err())
		case <-timer.C():
		}
	}
}

// do performs one request. The returned status is 0 when no response arrived.
func (c *Client) do(ctx context.Context, method, path, route string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encoding %s body: %w", route, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamCalls.WithLabelValues(upstreamName, route, "error").Inc()
		return 0, fmt.Errorf("aptos node %s %s: %w", method, route, err)
	}
	defer resp.Body.Close()
	metrics.UpstreamCalls.WithLabelValues(upstreamName, route, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, decodeError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return resp.StatusCode, fmt.Errorf("decoding %s response: %w", route, err)
	}
	return resp.StatusCode, nil
}

func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLength))
	var body struct {
		Message   string `json:"message"`
		ErrorCode string `json:"error_code"`
	}
	e := &Error{Status: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
	if json.Unmarshal(raw, &body) == nil && body.Message != "" {
		e.Message = body.Message
		e.ErrorCode = body.ErrorCode
	}
	if e.Message == "" {
		e.Message = http.StatusText(resp.StatusCode)
	}
	return e
}
