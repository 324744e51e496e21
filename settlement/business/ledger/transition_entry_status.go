package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/settlement/domain"
	"encore.app/settlement/model"
	"encore.app/settlement/repository/orders"
	"encore.app/settlement/repository/timeentries"
)

// TransitionEntryStatus moves an entry through customer review. Only
// logged→approved and logged→rejected are legal; approving stamps the actor
// and time.
func (b *business) TransitionEntryStatus(ctx context.Context, entryID int64, to model.EntryStatus, actor string) (*model.TimeEntry, error) {
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

		if err := domain.ValidateEntryTransition(model.EntryStatus(entry.EntryStatus), to); err != nil {
			return err
		}

		params := timeentries.UpdateEntryStatusParams{
			ID:          entryID,
			EntryStatus: string(to),
		}
		if to == model.EntryStatusApproved {
			params.ApprovedBy = pgtype.Text{String: actor, Valid: true}
			params.ApprovedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}
		}

		updated, err := repos.TimeEntries.UpdateEntryStatus(ctx, params)
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to update entry status"}
		}

		result = convertDBEntryToModel(updated)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
