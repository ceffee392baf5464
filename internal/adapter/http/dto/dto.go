package dto

import (
	"token-recovery-dapp/internal/core/domain"
)

// ConnectRequest is the request body for connecting a wallet. An empty
// name selects the configured default wallet.
type ConnectRequest struct {
	WalletName string `json:"wallet_name" binding:"omitempty,wallet_name"`
}

// TransferRequest is the request body for both APT transfers and recovery
// requests. Address and amount are validated by the service so that a
// missing wallet is reported first.
type TransferRequest struct {
	To     string `json:"to"`
	Amount string `json:"amount"`
}

// MessageRequest is the request body for writing to the message board.
type MessageRequest struct {
	Content string `json:"content"`
}

// SessionResponse is the wallet session as shown to the UI.
type SessionResponse struct {
	WalletName string              `json:"wallet_name,omitempty"`
	Connected  bool                `json:"connected"`
	Account    *domain.Account     `json:"account,omitempty"`
	Network    *domain.NetworkInfo `json:"network,omitempty"`
}

// NewSessionResponse converts a session snapshot.
func NewSessionResponse(s domain.WalletSession) SessionResponse {
	return SessionResponse{
		WalletName: s.WalletName,
		Connected:  s.Connected,
		Account:    s.Account,
		Network:    s.Network,
	}
}

// TransactionResponse is the response body for a confirmed transaction.
type TransactionResponse struct {
	Hash     string `json:"hash"`
	Success  bool   `json:"success"`
	VMStatus string `json:"vm_status,omitempty"`
	Version  string `json:"version,omitempty"`
}

func NewTransactionResponse(r *domain.TransactionResult) TransactionResponse {
	return TransactionResponse{
		Hash:     r.Hash,
		Success:  r.Success,
		VMStatus: r.VMStatus,
		Version:  r.Version,
	}
}

// InitializeResponse reports whether an initialize call submitted anything.
// Initialized is true when the recovery store already existed.
type InitializeResponse struct {
	Initialized bool                 `json:"initialized"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
}

// MessageResponse is the message board content.
type MessageResponse struct {
	Content string `json:"content"`
}

// NoticeListResponse wraps the pending notices.
type NoticeListResponse struct {
	Items []domain.Notice `json:"items"`
	Total int             `json:"total"`
}

// OctasResponse is the conversion of an APT amount to octas.
type OctasResponse struct {
	Amount string `json:"amount"`
	Octas  string `json:"octas"`
}
