package model

import (
	"time"
)

// ProviderBalanceSnapshot is a disposable cached projection of a provider's
// connected-account balance. Never treated as source of truth.
type ProviderBalanceSnapshot struct {
	ProviderAccountID string    `json:"provider_account_id"`
	AvailableCents    int64     `json:"available_cents"`
	PendingCents      int64     `json:"pending_cents"`
	TransferredCents  int64     `json:"transferred_cents"`
	FetchedAt         time.Time `json:"fetched_at"`

	// Stale is set when the snapshot is past its TTL and a refresh attempt
	// failed; balance display is not safety-critical so we prefer a stale
	// number over an error.
	Stale bool `json:"stale"`
}

// BalanceKey is the cache key for balance snapshots.
type BalanceKey struct {
	ProviderAccountID string
}
