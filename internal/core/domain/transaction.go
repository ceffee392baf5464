package domain

// SubmittedTransaction is what the wallet returns after signing and submitting.
type SubmittedTransaction struct {
	Hash string `json:"hash"`
}

// TransactionResult is a committed transaction as reported by the node.
type TransactionResult struct {
	Hash     string `json:"hash"`
	Success  bool   `json:"success"`
	VMStatus string `json:"vm_status"`
	Version  string `json:"version"`
}

// LedgerInfo is the node's view of the chain head.
type LedgerInfo struct {
	ChainID       int    `json:"chain_id"`
	LedgerVersion string `json:"ledger_version"`
	BlockHeight   string `json:"block_height"`
	NodeRole      string `json:"node_role"`
}

// NetworkOverview combines the wallet's network with the node's ledger head.
type NetworkOverview struct {
	Network *NetworkInfo `json:"network,omitempty"`
	Ledger  *LedgerInfo  `json:"ledger"`
}
