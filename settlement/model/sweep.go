package model

import (
	"time"
)

// SweepReport summarizes one reconciler pass. Counts are entries, not orders.
type SweepReport struct {
	StartedAt      time.Time    `json:"started_at"`
	FinishedAt     time.Time    `json:"finished_at"`
	Examined       int          `json:"examined"`
	MovedToHeld    int          `json:"moved_to_held"`
	Transferred    int          `json:"transferred"`
	Paid           int          `json:"paid"`
	Failed         int          `json:"failed"`
	OpenEntries    int          `json:"open_entries"`
	Drift          []DriftEntry `json:"drift,omitempty"`
	ManualReview   []int64      `json:"manual_review,omitempty"`
	AdapterReads   int          `json:"adapter_reads"`
	AdapterWrites  int          `json:"adapter_writes"`
}

// DriftEntry reports an entry stuck in platform_held past the drift threshold
// without sufficient connected-account balance. Reported, never auto-escalated.
type DriftEntry struct {
	EntryID           int64     `json:"entry_id"`
	OrderID           int64     `json:"order_id"`
	ProviderAccountID string    `json:"provider_account_id"`
	RequiredCents     int64     `json:"required_cents"`
	AvailableCents    int64     `json:"available_cents"`
	HeldSince         time.Time `json:"held_since"`
}

// ReconciliationReport is the manual-review queue served to the admin surface:
// failed entries awaiting human correction plus current drift.
type ReconciliationReport struct {
	GeneratedAt  time.Time    `json:"generated_at"`
	ManualReview []TimeEntry  `json:"manual_review"`
	Drift        []DriftEntry `json:"drift,omitempty"`
}
