package domain

// Account is the on-chain account a wallet session is bound to.
type Account struct {
	Address   string `json:"address"`
	PublicKey string `json:"public_key,omitempty"`
}

// NetworkInfo describes the network the wallet is pointed at.
type NetworkInfo struct {
	Name    string `json:"name"`
	ChainID string `json:"chain_id,omitempty"`
	URL     string `json:"url,omitempty"`
}

// WalletSession is a read-only snapshot of the wallet adapter's session.
// The adapter owns the session; callers never mutate a snapshot.
type WalletSession struct {
	WalletName string       `json:"wallet_name,omitempty"`
	Connected  bool         `json:"connected"`
	Account    *Account     `json:"account,omitempty"`
	Network    *NetworkInfo `json:"network,omitempty"`
}

// HasWallet reports whether a wallet adapter is selected.
func (s WalletSession) HasWallet() bool {
	return s.WalletName != ""
}

// FullyConnected reports whether the session has both a wallet and an account.
func (s WalletSession) FullyConnected() bool {
	return s.HasWallet() && s.Account != nil
}

// AccountAddress returns the bound address, or "" when there is none.
func (s WalletSession) AccountAddress() string {
	if s.Account == nil {
		return ""
	}
	return s.Account.Address
}
