package reconciler

import (
	"context"
	"time"

	"encore.dev/rlog"

	"encore.app/settlement/model"
)

// Report builds the manual-review queue: entries that automatic processing
// has given up on, plus held entries stuck past the drift threshold. It is
// read-only against both the ledger and the processor.
func (b *business) Report(ctx context.Context) (*model.ReconciliationReport, error) {
	report := &model.ReconciliationReport{GeneratedAt: time.Now()}

	failed, err := b.ledger.ListEntriesByBillingStatus(ctx, model.BillingStatusFailed)
	if err != nil {
		return nil, err
	}
	report.ManualReview = failed

	held, err := b.ledger.ListEntriesByBillingStatus(ctx, model.BillingStatusPlatformHeld)
	if err != nil {
		return nil, err
	}

	// One balance read per provider account, however many orders share it.
	balances := make(map[string]int64)
	requiredByAccount := make(map[string]int64)
	trackingByOrder := make(map[int64]*model.OrderTracking)

	for _, e := range held {
		tracking, ok := trackingByOrder[e.OrderID]
		if !ok {
			tracking, err = b.ledger.GetOrderTracking(ctx, e.OrderID)
			if err != nil {
				rlog.Warn("tracking read failed during report", "order_id", e.OrderID, "error", err)
				continue
			}
			trackingByOrder[e.OrderID] = tracking
		}
		requiredByAccount[tracking.ProviderAccountID] += e.BillableAmountCents
	}

	for _, e := range held {
		if e.HeldAt == nil || time.Since(*e.HeldAt) < b.driftThreshold {
			continue
		}
		tracking, ok := trackingByOrder[e.OrderID]
		if !ok {
			continue
		}

		account := tracking.ProviderAccountID
		available, ok := balances[account]
		if !ok {
			balance, err := b.gateway.GetBalance(ctx, account)
			if err != nil {
				rlog.Warn("balance read failed during report", "provider_account_id", account, "error", err)
				continue
			}
			available = balance.AvailableCents
			balances[account] = available
		}

		if available >= requiredByAccount[account] {
			continue
		}

		report.Drift = append(report.Drift, model.DriftEntry{
			EntryID:           e.ID,
			OrderID:           e.OrderID,
			ProviderAccountID: account,
			RequiredCents:     requiredByAccount[account],
			AvailableCents:    available,
			HeldSince:         *e.HeldAt,
		})
	}

	return report, nil
}
