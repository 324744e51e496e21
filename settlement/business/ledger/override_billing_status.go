package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/settlement/domain"
	"encore.app/settlement/model"
	"encore.app/settlement/repository/orders"
)

// OverrideBillingStatus is the administrative escape hatch: it may move an
// entry backward or out of failed, which the normal transition path forbids.
// Every override requires an actor and a reason and is stamped onto the entry,
// replacing the untracked one-off correction scripts this engine grew out of.
func (b *business) OverrideBillingStatus(ctx context.Context, entryID int64, to model.BillingStatus, actor, reason string) (*model.TimeEntry, error) {
	if actor == "" || reason == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "override requires an actor and a reason"}
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

		note := fmt.Sprintf("override %s -> %s by %s: %s", entry.BillingStatus, to, actor, reason)
		updated, err := applyBillingUpdate(ctx, repos.TimeEntries, entryID, to, "manual:"+actor, note)
		if err != nil {
			return err
		}

		rlog.Info("billing status overridden",
			"entry_id", entryID, "order_id", entry.OrderID,
			"from", entry.BillingStatus, "to", to, "actor", actor, "reason", reason)

		result = convertDBEntryToModel(updated)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
