package domain

import "encoding/json"

// AccountResource is one entry of an account's on-chain resource list.
type AccountResource struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// HasResource reports whether resources contains an entry of the given type.
func HasResource(resources []AccountResource, resourceType string) bool {
	for _, r := range resources {
		if r.Type == resourceType {
			return true
		}
	}
	return false
}

// AccountOverview is the account view shown to the user.
type AccountOverview struct {
	Session             WalletSession `json:"session"`
	RecoveryInitialized bool          `json:"recovery_initialized"`
}
