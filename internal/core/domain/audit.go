package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionConnect            AuditAction = "WALLET_CONNECT"
	AuditActionDisconnect         AuditAction = "WALLET_DISCONNECT"
	AuditActionTransfer           AuditAction = "TRANSFER"
	AuditActionInitializeRecovery AuditAction = "INITIALIZE_RECOVERY"
	AuditActionRequestRecovery    AuditAction = "REQUEST_RECOVERY"
	AuditActionWriteMessage       AuditAction = "WRITE_MESSAGE"
	AuditActionReload             AuditAction = "SESSION_RELOAD"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID         uuid.UUID   `json:"id"`
	Action     AuditAction `json:"action"`
	WalletName string      `json:"wallet_name,omitempty"`
	Account    string      `json:"account,omitempty"`
	TxHash     string      `json:"tx_hash,omitempty"`
	Details    string      `json:"details,omitempty"` // JSON string
	CreatedAt  time.Time   `json:"created_at"`
}

// NewAuditLog stamps an entry for the given session.
func NewAuditLog(action AuditAction, session WalletSession, txHash string) *AuditLog {
	return &AuditLog{
		ID:         uuid.New(),
		Action:     action,
		WalletName: session.WalletName,
		Account:    session.AccountAddress(),
		TxHash:     txHash,
		CreatedAt:  time.Now().UTC(),
	}
}
