package aptos

import (
	"context"
	"fmt"
)

// HealthCheck reports the node as healthy when it serves ledger info.
type HealthCheck struct {
	client *Client
}

func NewHealthCheck(client *Client) *HealthCheck {
	return &HealthCheck{client: client}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	if _, err := h.client.LedgerInfo(ctx); err != nil {
		return fmt.Errorf("aptos node health check: %w", err)
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "aptos-node"
}
