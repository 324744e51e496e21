package ledger

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"encore.dev/beta/errs"

	"encore.app/settlement/domain"
	"encore.app/settlement/model"
	"encore.app/settlement/repository/orders"
	"encore.app/settlement/repository/timeentries"
)

type LogEntryParams struct {
	OrderID  int64
	Category model.EntryCategory
	Hours    float64
	// HourlyRateCents of zero snapshots the order's current rate.
	HourlyRateCents int64
}

// LogEntry records a unit of work against the order. The billable amount is
// derived once here and stored; it is never recomputed on later transitions.
func (b *business) LogEntry(ctx context.Context, arg LogEntryParams) (*model.TimeEntry, error) {
	var result *model.TimeEntry

	err := b.stateMachine.ExecuteWithVersion(ctx, arg.OrderID, func(tracking orders.OrderTracking, repos domain.TxRepos) error {
		rate := arg.HourlyRateCents
		if rate == 0 {
			rate = tracking.HourlyRateCents
		}

		if err := domain.ValidateEntryInput(arg.Category, arg.Hours, rate); err != nil {
			return err
		}

		dbEntry, err := repos.TimeEntries.CreateTimeEntry(ctx, timeentries.CreateTimeEntryParams{
			OrderID:             arg.OrderID,
			Category:            string(arg.Category),
			Hours:               arg.Hours,
			HourlyRateCents:     rate,
			BillableAmountCents: domain.BillableAmountCents(arg.Hours, rate),
			EntryStatus:         string(model.EntryStatusLogged),
			BillingStatus:       string(model.BillingStatusUnbilled),
		})
		if err != nil {
			var e *pgconn.PgError
			if errors.As(err, &e) && e.Code == pgerrcode.ForeignKeyViolation {
				return &errs.Error{Code: errs.NotFound, Message: "order tracking no longer exists"}
			}
			return &errs.Error{Code: errs.Internal, Message: "failed to create time entry"}
		}

		result = convertDBEntryToModel(dbEntry)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
