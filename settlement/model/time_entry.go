package model

import (
	"time"
)

// TimeEntry is a unit of logged work on an order. Amounts are integer cents;
// hours carry at most two decimal places.
type TimeEntry struct {
	ID                  int64         `json:"id"`
	OrderID             int64         `json:"order_id"`
	Category            EntryCategory `json:"category"`
	Hours               float64       `json:"hours"`
	HourlyRateCents     int64         `json:"hourly_rate_cents"`
	BillableAmountCents int64         `json:"billable_amount_cents"`
	EntryStatus         EntryStatus   `json:"entry_status"`
	BillingStatus       BillingStatus `json:"billing_status"`
	PaymentIntentRef    *string       `json:"payment_intent_ref,omitempty"`
	TransferRef         *string       `json:"transfer_ref,omitempty"`
	EvidenceRef         *string       `json:"evidence_ref,omitempty"`
	OverrideNote        *string       `json:"override_note,omitempty"`
	ApprovedBy          *string       `json:"approved_by,omitempty"`
	ApprovedAt          *time.Time    `json:"approved_at,omitempty"`
	HeldAt              *time.Time    `json:"held_at,omitempty"`
	TransferredAt       *time.Time    `json:"transferred_at,omitempty"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

type EntryCategory string

const (
	// CategoryPlanned hours are covered by the order's upfront payment.
	CategoryPlanned EntryCategory = "planned"
	// CategoryAdditional hours are billed on approval.
	CategoryAdditional EntryCategory = "additional"
)

// EntryStatus tracks customer review of a logged entry.
type EntryStatus string

const (
	EntryStatusLogged   EntryStatus = "logged"
	EntryStatusApproved EntryStatus = "approved"
	EntryStatusRejected EntryStatus = "rejected"
)

// BillingStatus tracks how far an entry's money has moved. Transitions are
// monotonic; failed is reachable from any non-terminal state.
type BillingStatus string

const (
	BillingStatusUnbilled       BillingStatus = "unbilled"
	BillingStatusPendingPayment BillingStatus = "pending_payment"
	BillingStatusPlatformHeld   BillingStatus = "platform_held"
	BillingStatusTransferred    BillingStatus = "transferred"
	BillingStatusPaid           BillingStatus = "paid"
	BillingStatusFailed         BillingStatus = "failed"
)
