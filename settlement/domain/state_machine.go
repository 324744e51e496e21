package domain

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/beta/errs"

	"encore.app/settlement/repository/approvals"
	"encore.app/settlement/repository/orders"
	"encore.app/settlement/repository/timeentries"
)

// TxRepos are transaction-aware repositories handed to ledger mutations.
type TxRepos struct {
	Orders      orders.Querier
	TimeEntries timeentries.Querier
	Approvals   approvals.Querier
}

// StateMachine serializes all mutations of one order's time-tracking document
// behind a version-checked compare-and-swap.
type StateMachine interface {
	// ExecuteWithVersion runs fn inside a transaction against the order's
	// current tracking row. The row's version is bumped with a conditional
	// update at commit time; if another writer got there first the whole
	// transaction fails with errs.Aborted and the caller must re-read and
	// retry.
	ExecuteWithVersion(ctx context.Context, orderID int64, fn func(tracking orders.OrderTracking, repos TxRepos) error) error
}

// TrackingStateMachine owns transaction boundaries and repository access for
// ledger mutations, in the same way the order document store would hand out a
// version token on read and reject writes carrying a stale one.
type TrackingStateMachine struct {
	db           *pgxpool.Pool
	orderRepo    *orders.Queries
	entryRepo    *timeentries.Queries
	approvalRepo *approvals.Queries
}

func NewTrackingStateMachine(db *pgxpool.Pool, orderRepo *orders.Queries, entryRepo *timeentries.Queries, approvalRepo *approvals.Queries) *TrackingStateMachine {
	return &TrackingStateMachine{
		db:           db,
		orderRepo:    orderRepo,
		entryRepo:    entryRepo,
		approvalRepo: approvalRepo,
	}
}

func (sm *TrackingStateMachine) ExecuteWithVersion(ctx context.Context, orderID int64, fn func(tracking orders.OrderTracking, repos TxRepos) error) error {
	tx, err := sm.db.Begin(ctx)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer tx.Rollback(ctx)

	repos := TxRepos{
		Orders:      sm.orderRepo.WithTx(tx),
		TimeEntries: sm.entryRepo.WithTx(tx),
		Approvals:   sm.approvalRepo.WithTx(tx),
	}

	tracking, err := repos.Orders.GetOrderTracking(ctx, orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.NotFound, Message: "order tracking not found"}
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to read order tracking"}
	}

	if err := fn(tracking, repos); err != nil {
		return err
	}

	affected, err := repos.Orders.BumpTrackingVersion(ctx, orders.BumpTrackingVersionParams{
		OrderID: orderID,
		Version: tracking.Version,
	})
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to advance tracking version"}
	}
	if affected == 0 {
		return &errs.Error{Code: errs.Aborted, Message: "order tracking was modified concurrently"}
	}

	if err := tx.Commit(ctx); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to commit ledger mutation"}
	}

	return nil
}
