package reconciler

import (
	"context"
	"sort"
	"time"

	"encore.dev/rlog"

	"encore.app/settlement/domain"
	"encore.app/settlement/gateway"
	"encore.app/settlement/model"
)

// SweepAll reconciles every order that still has money in flight.
func (b *business) SweepAll(ctx context.Context) (*model.SweepReport, error) {
	report := newReport()

	orderIDs, err := b.ledger.ListOrdersWithOpenEntries(ctx)
	if err != nil {
		return nil, err
	}

	for _, orderID := range orderIDs {
		orderReport, err := b.SweepOrder(ctx, orderID)
		if err != nil {
			// One stuck order must not stall the rest of the sweep.
			rlog.Error("order sweep failed", "order_id", orderID, "error", err)
			continue
		}
		mergeReports(report, orderReport)
	}

	report.FinishedAt = time.Now()
	return report, nil
}

// SweepOrder drives every non-terminal entry of one order as far toward paid
// as the processor's current state allows.
func (b *business) SweepOrder(ctx context.Context, orderID int64) (*model.SweepReport, error) {
	report := newReport()

	tracking, err := b.ledger.GetOrderTracking(ctx, orderID)
	if err != nil {
		return nil, err
	}

	entries, err := b.ledger.ListEntries(ctx, orderID)
	if err != nil {
		return nil, err
	}

	b.confirmAuthorizations(ctx, entries, report)

	// Re-read so entries just moved to platform_held are picked up by the
	// transfer stage of the same sweep.
	entries, err = b.ledger.ListEntries(ctx, orderID)
	if err != nil {
		return nil, err
	}

	b.transferHeldFunds(ctx, tracking, entries, report)
	b.confirmTransfers(ctx, entries, report)

	entries, err = b.ledger.ListEntries(ctx, orderID)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.BillingStatus == model.BillingStatusUnbilled || domain.IsTerminalBilling(e.BillingStatus) {
			continue
		}
		report.OpenEntries++
	}

	report.FinishedAt = time.Now()
	return report, nil
}

// confirmAuthorizations handles pending_payment entries: once the processor
// reports the authorization captured, the money is platform-held.
func (b *business) confirmAuthorizations(ctx context.Context, entries []model.TimeEntry, report *model.SweepReport) {
	for ref, group := range groupByRef(entries, model.BillingStatusPendingPayment, paymentIntentRef) {
		report.Examined += len(group)
		report.AdapterReads++

		auth, err := b.gateway.GetAuthorization(ctx, ref)
		if err != nil {
			rlog.Warn("authorization status read failed", "payment_intent_ref", ref, "error", err)
			continue
		}

		switch auth.Status {
		case gateway.AuthorizationSucceeded:
			for _, e := range group {
				if err := b.transition(ctx, e.ID, model.BillingStatusPlatformHeld, auth.ID); err != nil {
					rlog.Error("failed to mark entry platform_held", "entry_id", e.ID, "error", err)
					continue
				}
				report.MovedToHeld++
			}
		case gateway.AuthorizationCanceled:
			for _, e := range group {
				b.failEntry(ctx, e.ID, auth.ID, report)
			}
		}
		// requires_capture: nothing to do yet.
	}
}

// transferHeldFunds moves platform-held money to the provider's connected
// account, one transfer per (order, authorization) group, as far as the
// account balance covers. The deterministic idempotency key makes a repeated
// transfer return the processor's existing FundTransfer.
func (b *business) transferHeldFunds(ctx context.Context, tracking *model.OrderTracking, entries []model.TimeEntry, report *model.SweepReport) {
	held := groupByRef(entries, model.BillingStatusPlatformHeld, paymentIntentRef)
	if len(held) == 0 {
		return
	}

	report.AdapterReads++
	balance, err := b.gateway.GetBalance(ctx, tracking.ProviderAccountID)
	if err != nil {
		rlog.Warn("balance read failed", "provider_account_id", tracking.ProviderAccountID, "error", err)
		return
	}
	available := balance.AvailableCents

	for _, ref := range sortedRefs(held) {
		group := held[ref]
		report.Examined += len(group)

		var amount int64
		for _, e := range group {
			amount += e.BillableAmountCents
		}

		if amount > available {
			b.reportDrift(tracking, group, amount, available, report)
			continue
		}

		report.AdapterWrites++
		transfer, err := b.gateway.Transfer(ctx, gateway.TransferParams{
			ProviderAccountID: tracking.ProviderAccountID,
			AmountCents:       amount,
			OrderID:           tracking.OrderID,
			IdempotencyKey:    gateway.TransferIdempotencyKey(tracking.OrderID, ref),
		})
		if err != nil {
			if gateway.IsInsufficientBalance(err) {
				// The processor is the authority on its own balance; our read
				// was optimistic. Leave the group held for the next sweep.
				b.reportDrift(tracking, group, amount, available, report)
				continue
			}
			rlog.Error("transfer failed", "order_id", tracking.OrderID, "payment_intent_ref", ref, "error", err)
			continue
		}

		available -= amount
		for _, e := range group {
			if err := b.transition(ctx, e.ID, model.BillingStatusTransferred, transfer.ID); err != nil {
				rlog.Error("failed to mark entry transferred", "entry_id", e.ID, "transfer_id", transfer.ID, "error", err)
				continue
			}
			report.Transferred++
		}
	}
}

// confirmTransfers polls transfers until the processor reports the payout
// landed. A failed transfer is flagged for manual review and never retried
// automatically: funds-movement failures require human judgment.
func (b *business) confirmTransfers(ctx context.Context, entries []model.TimeEntry, report *model.SweepReport) {
	for ref, group := range groupByRef(entries, model.BillingStatusTransferred, transferRef) {
		report.Examined += len(group)
		report.AdapterReads++

		transfer, err := b.gateway.GetTransferStatus(ctx, ref)
		if err != nil {
			rlog.Warn("transfer status read failed", "transfer_ref", ref, "error", err)
			continue
		}

		switch transfer.Status {
		case gateway.TransferPaid:
			for _, e := range group {
				if err := b.transition(ctx, e.ID, model.BillingStatusPaid, transfer.ID); err != nil {
					rlog.Error("failed to mark entry paid", "entry_id", e.ID, "error", err)
					continue
				}
				report.Paid++
			}
		case gateway.TransferFailed:
			for _, e := range group {
				b.failEntry(ctx, e.ID, transfer.ID, report)
			}
		}
	}
}

func (b *business) failEntry(ctx context.Context, entryID int64, evidenceRef string, report *model.SweepReport) {
	if err := b.transition(ctx, entryID, model.BillingStatusFailed, evidenceRef); err != nil {
		rlog.Error("failed to mark entry failed", "entry_id", entryID, "error", err)
		return
	}
	report.Failed++
	report.ManualReview = append(report.ManualReview, entryID)
}

func (b *business) reportDrift(tracking *model.OrderTracking, group []model.TimeEntry, required, available int64, report *model.SweepReport) {
	for _, e := range group {
		if e.HeldAt == nil || time.Since(*e.HeldAt) < b.driftThreshold {
			continue
		}
		report.Drift = append(report.Drift, model.DriftEntry{
			EntryID:           e.ID,
			OrderID:           tracking.OrderID,
			ProviderAccountID: tracking.ProviderAccountID,
			RequiredCents:     required,
			AvailableCents:    available,
			HeldSince:         *e.HeldAt,
		})
	}
}

func paymentIntentRef(e model.TimeEntry) *string { return e.PaymentIntentRef }
func transferRef(e model.TimeEntry) *string { return e.TransferRef }

// groupByRef collects entries in the given billing status keyed by a
// processor reference; entries without the reference are skipped (they cannot
// be reconciled automatically).
func groupByRef(entries []model.TimeEntry, status model.BillingStatus, ref func(model.TimeEntry) *string) map[string][]model.TimeEntry {
	groups := make(map[string][]model.TimeEntry)
	for _, e := range entries {
		if e.BillingStatus != status {
			continue
		}
		r := ref(e)
		if r == nil || *r == "" {
			rlog.Error("entry missing processor reference, needs manual correction",
				"entry_id", e.ID, "billing_status", status)
			continue
		}
		groups[*r] = append(groups[*r], e)
	}
	return groups
}

func sortedRefs(groups map[string][]model.TimeEntry) []string {
	refs := make([]string, 0, len(groups))
	for ref := range groups {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	return refs
}

func newReport() *model.SweepReport {
	return &model.SweepReport{StartedAt: time.Now()}
}

func mergeReports(dst, src *model.SweepReport) {
	dst.Examined += src.Examined
	dst.MovedToHeld += src.MovedToHeld
	dst.Transferred += src.Transferred
	dst.Paid += src.Paid
	dst.Failed += src.Failed
	dst.OpenEntries += src.OpenEntries
	dst.AdapterReads += src.AdapterReads
	dst.AdapterWrites += src.AdapterWrites
	dst.Drift = append(dst.Drift, src.Drift...)
	dst.ManualReview = append(dst.ManualReview, src.ManualReview...)
}
