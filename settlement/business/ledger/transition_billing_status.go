package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/settlement/domain"
	"encore.app/settlement/model"
	"encore.app/settlement/repository/orders"
	"encore.app/settlement/repository/timeentries"
)

// TransitionBillingStatus advances an entry's money state. evidenceRef is the
// processor object id that justifies the move and is recorded on every
// successful transition for audit.
func (b *business) TransitionBillingStatus(ctx context.Context, entryID int64, to model.BillingStatus, evidenceRef string) (*model.TimeEntry, error) {
	if evidenceRef == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "evidence reference is required"}
	}

	current, err := b.entryRepo.GetTimeEntry(ctx, entryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "time entry not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to read time entry"}
	}

	var result *model.TimeEntry

	err = b.stateMachine.ExecuteWithVersion(ctx, current.OrderID, func(tracking orders.OrderTracking, repos domain.TxRepos) error {
		entry, err := repos.TimeEntries.GetTimeEntry(ctx, entryID)
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to read time entry"}
		}

		from := model.BillingStatus(entry.BillingStatus)
		if err := domain.ValidateBillingTransition(from, to); err != nil {
			rlog.Error("billing invariant violation",
				"entry_id", entryID, "order_id", entry.OrderID,
				"from", from, "to", to, "evidence_ref", evidenceRef)
			return err
		}

		updated, err := applyBillingUpdate(ctx, repos.TimeEntries, entryID, to, evidenceRef, "")
		if err != nil {
			return err
		}

		if err := maybeCompleteTracking(ctx, repos, entry.OrderID, model.EntryCategory(entry.Category), to); err != nil {
			return err
		}

		result = convertDBEntryToModel(updated)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// applyBillingUpdate writes the status change plus the side columns the target
// state owns: held_at for platform_held, transfer_ref/transferred_at for
// transferred.
func applyBillingUpdate(ctx context.Context, repo timeentries.Querier, entryID int64, to model.BillingStatus, evidenceRef, overrideNote string) (timeentries.TimeEntry, error) {
	params := timeentries.UpdateBillingStatusParams{
		ID:            entryID,
		BillingStatus: string(to),
		EvidenceRef:   pgtype.Text{String: evidenceRef, Valid: evidenceRef != ""},
	}
	if overrideNote != "" {
		params.OverrideNote = pgtype.Text{String: overrideNote, Valid: true}
	}

	now := time.Now()
	switch to {
	case model.BillingStatusPlatformHeld:
		params.HeldAt = pgtype.Timestamptz{Time: now, Valid: true}
	case model.BillingStatusTransferred:
		params.TransferRef = pgtype.Text{String: evidenceRef, Valid: true}
		params.TransferredAt = pgtype.Timestamptz{Time: now, Valid: true}
	}

	updated, err := repo.UpdateBillingStatus(ctx, params)
	if err != nil {
		return timeentries.TimeEntry{}, &errs.Error{Code: errs.Internal, Message: "failed to update billing status"}
	}
	return updated, nil
}

// maybeCompleteTracking marks the order's time tracking completed once the
// last additional entry has no more money in flight.
func maybeCompleteTracking(ctx context.Context, repos domain.TxRepos, orderID int64, category model.EntryCategory, to model.BillingStatus) error {
	if category != model.CategoryAdditional {
		return nil
	}
	if to != model.BillingStatusTransferred && to != model.BillingStatusPaid {
		return nil
	}

	open, err := repos.TimeEntries.CountOpenAdditionalEntries(ctx, orderID)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to count open entries"}
	}
	if open > 0 {
		return nil
	}

	err = repos.Orders.UpdateTrackingStatus(ctx, orders.UpdateTrackingStatusParams{
		OrderID: orderID,
		Status:  string(model.TrackingStatusCompleted),
	})
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to complete order tracking"}
	}
	return nil
}
