package gateway

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// settlementCurrency is the platform's single settlement currency.
const settlementCurrency = "eur"

// StripeGateway implements PaymentGateway against Stripe Connect. Customer
// money is held as a manual-capture PaymentIntent on the platform account and
// moved to the provider's connected account with a Transfer. Stripe dedupes
// mutating calls on our idempotency keys, which is what makes retries safe.
type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(apiKey string) *StripeGateway {
	api := &client.API{}
	api.Init(apiKey, nil)
	return &StripeGateway{api: api}
}

func (g *StripeGateway) Authorize(ctx context.Context, arg AuthorizeParams) (*Authorization, error) {
	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context:        ctx,
			IdempotencyKey: stripe.String(arg.IdempotencyKey),
		},
		Amount:        stripe.Int64(arg.AmountCents),
		Currency:      stripe.String(settlementCurrency),
		CaptureMethod: stripe.String(string(stripe.PaymentIntentCaptureMethodManual)),
	}
	params.AddMetadata("type", "additional_hours")
	params.AddMetadata("order_id", strconv.FormatInt(arg.OrderID, 10))
	params.AddMetadata("entry_ids", joinIDs(arg.EntryIDs))

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, mapStripeError(err)
	}
	return paymentIntentToAuthorization(pi), nil
}

func (g *StripeGateway) GetAuthorization(ctx context.Context, id string) (*Authorization, error) {
	pi, err := g.api.PaymentIntents.Get(id, &stripe.PaymentIntentParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return nil, mapStripeError(err)
	}
	return paymentIntentToAuthorization(pi), nil
}

func (g *StripeGateway) GetBalance(ctx context.Context, providerAccountID string) (*Balance, error) {
	bal, err := g.api.Balance.Get(&stripe.BalanceParams{
		Params: stripe.Params{
			Context:       ctx,
			StripeAccount: stripe.String(providerAccountID),
		},
	})
	if err != nil {
		return nil, mapStripeError(err)
	}

	result := &Balance{}
	for _, a := range bal.Available {
		if string(a.Currency) == settlementCurrency {
			result.AvailableCents += a.Amount
		}
	}
	for _, a := range bal.Pending {
		if string(a.Currency) == settlementCurrency {
			result.PendingCents += a.Amount
		}
	}
	return result, nil
}

func (g *StripeGateway) Transfer(ctx context.Context, arg TransferParams) (*FundTransfer, error) {
	params := &stripe.TransferParams{
		Params: stripe.Params{
			Context:        ctx,
			IdempotencyKey: stripe.String(arg.IdempotencyKey),
		},
		Amount:      stripe.Int64(arg.AmountCents),
		Currency:    stripe.String(settlementCurrency),
		Destination: stripe.String(arg.ProviderAccountID),
	}
	params.AddMetadata("order_id", strconv.FormatInt(arg.OrderID, 10))

	tr, err := g.api.Transfers.New(params)
	if err != nil {
		return nil, mapStripeError(err)
	}
	return transferToFundTransfer(tr, arg.IdempotencyKey), nil
}

func (g *StripeGateway) GetTransferStatus(ctx context.Context, transferID string) (*FundTransfer, error) {
	tr, err := g.api.Transfers.Get(transferID, &stripe.TransferParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return nil, mapStripeError(err)
	}
	return transferToFundTransfer(tr, ""), nil
}

func paymentIntentToAuthorization(pi *stripe.PaymentIntent) *Authorization {
	auth := &Authorization{
		ID:          pi.ID,
		AmountCents: pi.Amount,
		Currency:    string(pi.Currency),
	}
	if raw, ok := pi.Metadata["order_id"]; ok {
		auth.OrderID, _ = strconv.ParseInt(raw, 10, 64)
	}
	switch pi.Status {
	case stripe.PaymentIntentStatusSucceeded:
		auth.Status = AuthorizationSucceeded
	case stripe.PaymentIntentStatusCanceled:
		auth.Status = AuthorizationCanceled
	default:
		// Everything before capture (requires_payment_method, requires
		// confirmation, requires_capture) still counts as an open hold.
		auth.Status = AuthorizationRequiresCapture
	}
	return auth
}

func transferToFundTransfer(tr *stripe.Transfer, idempotencyKey string) *FundTransfer {
	ft := &FundTransfer{
		ID:             tr.ID,
		AmountCents:    tr.Amount,
		IdempotencyKey: idempotencyKey,
		Status:         TransferPaid,
	}
	if tr.Destination != nil {
		ft.DestinationAccountID = tr.Destination.ID
	}
	if tr.Reversed {
		ft.Status = TransferFailed
	} else if tr.BalanceTransaction != nil && tr.BalanceTransaction.Status == stripe.BalanceTransactionStatusPending {
		ft.Status = TransferPending
	}
	return ft
}

func mapStripeError(err error) error {
	var se *stripe.Error
	if !errors.As(err, &se) {
		// Transport-level failure: connection reset, DNS, context timeout.
		return ErrUnavailable(err.Error())
	}
	if se.Code == stripe.ErrorCodeBalanceInsufficient {
		return ErrInsufficientBalance(se.RequestID)
	}
	if se.HTTPStatusCode >= 500 || se.Type == stripe.ErrorTypeAPI {
		return ErrUnavailable(se.Msg)
	}
	return ErrRejected(se.Msg)
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
