package model

import (
	"time"
)

// ApprovalRequest is the immutable audit record of one approval action.
// Created once per approval call and never mutated afterwards.
type ApprovalRequest struct {
	ID                 int64          `json:"id"`
	OrderID            int64          `json:"order_id"`
	ApprovedBy         string         `json:"approved_by"`
	TimeEntryIDs       []int64        `json:"time_entry_ids"`
	TotalHoursApproved float64        `json:"total_hours_approved"`
	TotalAmountCents   int64          `json:"total_amount_cents"`
	PaymentIntentRef   *string        `json:"payment_intent_ref,omitempty"`
	ResultStatus       ApprovalResult `json:"result_status"`
	FailureReason      *string        `json:"failure_reason,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
}

type ApprovalResult string

const (
	// ApprovalResultCompleted means no money was owed; entries were approved
	// without touching the payment processor.
	ApprovalResultCompleted ApprovalResult = "completed"
	// ApprovalResultPaymentRequired means a payment authorization was created
	// and the entries now await capture and transfer.
	ApprovalResultPaymentRequired ApprovalResult = "payment_required"
	ApprovalResultFailed          ApprovalResult = "failed"
)
