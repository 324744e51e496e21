// Package gateway is the only place allowed to talk to the payment processor.
// Everything else depends on the PaymentGateway interface, never on processor
// SDKs or wire formats.
package gateway

import (
	"context"
	"errors"

	"encore.dev/beta/errs"
)

// AuthorizationStatus mirrors the processor-side lifecycle of a hold on the
// payer's funds.
type AuthorizationStatus string

const (
	AuthorizationRequiresCapture AuthorizationStatus = "requires_capture"
	AuthorizationSucceeded       AuthorizationStatus = "succeeded"
	AuthorizationCanceled        AuthorizationStatus = "canceled"
)

// Authorization is a processor-side hold/capture of funds from the payer.
type Authorization struct {
	ID          string              `json:"id"`
	AmountCents int64               `json:"amount_cents"`
	Currency    string              `json:"currency"`
	Status      AuthorizationStatus `json:"status"`
	OrderID     int64               `json:"order_id"`
}

type TransferStatus string

const (
	TransferPending TransferStatus = "pending"
	TransferPaid    TransferStatus = "paid"
	TransferFailed  TransferStatus = "failed"
)

// FundTransfer is a processor-side movement of held platform funds to a
// provider's connected account.
type FundTransfer struct {
	ID                   string         `json:"id"`
	AmountCents          int64          `json:"amount_cents"`
	DestinationAccountID string         `json:"destination_account_id"`
	Status               TransferStatus `json:"status"`
	IdempotencyKey       string         `json:"idempotency_key"`
}

// Balance is a point-in-time read of a connected account.
type Balance struct {
	AvailableCents int64 `json:"available_cents"`
	PendingCents   int64 `json:"pending_cents"`
}

type AuthorizeParams struct {
	OrderID        int64
	AmountCents    int64
	EntryIDs       []int64
	IdempotencyKey string
}

type TransferParams struct {
	ProviderAccountID string
	AmountCents       int64
	OrderID           int64
	// IdempotencyKey must be deterministic for the (order, authorization)
	// pair so a retried transfer returns the existing FundTransfer instead of
	// creating a duplicate.
	IdempotencyKey string
}

// PaymentGateway abstracts the payment processor behind a uniform, idempotent
// interface.
type PaymentGateway interface {
	Authorize(ctx context.Context, arg AuthorizeParams) (*Authorization, error)
	GetAuthorization(ctx context.Context, id string) (*Authorization, error)
	GetBalance(ctx context.Context, providerAccountID string) (*Balance, error)
	Transfer(ctx context.Context, arg TransferParams) (*FundTransfer, error)
	GetTransferStatus(ctx context.Context, transferID string) (*FundTransfer, error)
}

// Error constructors and predicates. The reconciler and the retry decorator
// branch on these; callers never inspect processor error strings.

func ErrUnavailable(cause string) error {
	return &errs.Error{Code: errs.Unavailable, Message: "payment gateway unavailable: " + cause}
}

func ErrRejected(cause string) error {
	return &errs.Error{Code: errs.InvalidArgument, Message: "payment gateway rejected request: " + cause}
}

func ErrInsufficientBalance(providerAccountID string) error {
	return &errs.Error{Code: errs.ResourceExhausted, Message: "insufficient balance on account " + providerAccountID}
}

// IsUnavailable reports a transient processor failure worth retrying.
func IsUnavailable(err error) bool {
	return hasCode(err, errs.Unavailable)
}

// IsInsufficientBalance reports that the connected account cannot cover the
// transfer yet; retry later once funds become available, never immediately.
func IsInsufficientBalance(err error) bool {
	return hasCode(err, errs.ResourceExhausted)
}

func hasCode(err error, code errs.ErrCode) bool {
	var e *errs.Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
