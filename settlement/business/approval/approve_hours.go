package approval

import (
	"context"
	"fmt"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/settlement/business/ledger"
	"encore.app/settlement/gateway"
	"encore.app/settlement/model"
)

// ApproveHours validates the batch, authorizes payment for additional hours,
// and only then lets the ledger mutate state. The external call strictly
// precedes any ledger write, so a crash mid-flight leaves the order exactly
// as it was and the call is safe to repeat.
func (b *business) ApproveHours(ctx context.Context, arg ApproveHoursParams) (*model.ApprovalRequest, error) {
	if len(arg.EntryIDs) == 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "no time entries selected"}
	}

	tracking, err := b.ledger.GetOrderTracking(ctx, arg.OrderID)
	if err != nil {
		return nil, err
	}
	if tracking.CustomerID != arg.Actor {
		return nil, &errs.Error{Code: errs.PermissionDenied, Message: "only the order's customer may approve hours"}
	}

	batch, err := b.collectBatch(ctx, arg)
	if err != nil {
		return nil, err
	}

	paymentIntentRef := ""
	if batch.totalAmountCents > 0 {
		auth, err := b.gateway.Authorize(ctx, gateway.AuthorizeParams{
			OrderID:        arg.OrderID,
			AmountCents:    batch.totalAmountCents,
			EntryIDs:       arg.EntryIDs,
			IdempotencyKey: gateway.AuthorizationIdempotencyKey(arg.OrderID, arg.EntryIDs),
		})
		if err != nil {
			rlog.Error("payment authorization failed",
				"order_id", arg.OrderID, "amount_cents", batch.totalAmountCents, "error", err)

			if auditErr := b.ledger.RecordFailedApproval(ctx, ledger.RecordFailedApprovalParams{
				OrderID:     arg.OrderID,
				EntryIDs:    arg.EntryIDs,
				Actor:       arg.Actor,
				TotalHours:  batch.totalHours,
				TotalAmount: batch.totalAmountCents,
				Reason:      err.Error(),
			}); auditErr != nil {
				rlog.Error("failed to record failed approval", "order_id", arg.OrderID, "error", auditErr)
			}

			return nil, &errs.Error{
				Code:    errs.Unavailable,
				Message: fmt.Sprintf("payment could not be authorized for order %d", arg.OrderID),
			}
		}
		paymentIntentRef = auth.ID
	}

	params := ledger.ApproveEntriesParams{
		OrderID:          arg.OrderID,
		EntryIDs:         arg.EntryIDs,
		Actor:            arg.Actor,
		TotalHours:       batch.totalHours,
		TotalAmount:      batch.totalAmountCents,
		PaymentIntentRef: paymentIntentRef,
	}

	// A concurrent ledger write aborts the transaction; retrying immediately
	// is correct because the batch is re-validated inside the transaction and
	// the authorization is already pinned by its idempotency key.
	var approval *model.ApprovalRequest
	for attempt := 0; ; attempt++ {
		approval, err = b.ledger.ApproveEntries(ctx, params)
		if err == nil {
			break
		}
		if !isAborted(err) || attempt >= b.casRetries {
			return nil, err
		}
		rlog.Info("approval hit concurrent modification, retrying", "order_id", arg.OrderID, "attempt", attempt+1)
	}

	return approval, nil
}

type approvalBatch struct {
	totalHours       float64
	totalAmountCents int64
}

// collectBatch checks every selected entry is currently logged and sums the
// batch totals. Additional hours carry the money; planned hours only count
// toward approved time.
func (b *business) collectBatch(ctx context.Context, arg ApproveHoursParams) (*approvalBatch, error) {
	entries, err := b.ledger.ListEntries(ctx, arg.OrderID)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*model.TimeEntry, len(entries))
	for i := range entries {
		byID[entries[i].ID] = &entries[i]
	}

	batch := &approvalBatch{}
	for _, id := range arg.EntryIDs {
		entry, ok := byID[id]
		if !ok {
			return nil, &errs.Error{
				Code:    errs.FailedPrecondition,
				Message: fmt.Sprintf("entry %d does not belong to order %d", id, arg.OrderID),
			}
		}
		if entry.EntryStatus != model.EntryStatusLogged {
			return nil, &errs.Error{
				Code:    errs.FailedPrecondition,
				Message: fmt.Sprintf("entry %d is %s, not logged", id, entry.EntryStatus),
			}
		}

		batch.totalHours += entry.Hours
		if entry.Category == model.CategoryAdditional {
			batch.totalAmountCents += entry.BillableAmountCents
		}
	}

	return batch, nil
}

func isAborted(err error) bool {
	if e, ok := err.(*errs.Error); ok {
		return e.Code == errs.Aborted
	}
	return false
}
