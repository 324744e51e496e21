package ledger

import (
	"context"

	"encore.app/settlement/domain"
	"encore.app/settlement/model"
	"encore.app/settlement/repository/approvals"
	"encore.app/settlement/repository/orders"
	"encore.app/settlement/repository/timeentries"
)

// Business is the single source of truth for time entries and approval
// records of an order; every mutation passes through it and runs behind the
// version-checked state machine.
type Business interface {
	RegisterOrder(ctx context.Context, arg RegisterOrderParams) (*model.OrderTracking, error)
	LogEntry(ctx context.Context, arg LogEntryParams) (*model.TimeEntry, error)
	GetOrderTracking(ctx context.Context, orderID int64) (*model.OrderTracking, error)
	ListEntries(ctx context.Context, orderID int64) ([]model.TimeEntry, error)
	ListEntriesByBillingStatus(ctx context.Context, status model.BillingStatus) ([]model.TimeEntry, error)
	ListOrdersWithOpenEntries(ctx context.Context) ([]int64, error)
	SumTransferredCents(ctx context.Context, providerAccountID string) (int64, error)

	TransitionEntryStatus(ctx context.Context, entryID int64, to model.EntryStatus, actor string) (*model.TimeEntry, error)
	TransitionBillingStatus(ctx context.Context, entryID int64, to model.BillingStatus, evidenceRef string) (*model.TimeEntry, error)
	OverrideBillingStatus(ctx context.Context, entryID int64, to model.BillingStatus, actor, reason string) (*model.TimeEntry, error)

	ApproveEntries(ctx context.Context, arg ApproveEntriesParams) (*model.ApprovalRequest, error)
	RecordFailedApproval(ctx context.Context, arg RecordFailedApprovalParams) error
	ListApprovals(ctx context.Context, orderID int64) ([]model.ApprovalRequest, error)
}

type business struct {
	orderRepo    orders.Querier
	entryRepo    timeentries.Querier
	approvalRepo approvals.Querier
	stateMachine domain.StateMachine
}

func NewLedgerBusiness(
	orderRepo orders.Querier,
	entryRepo timeentries.Querier,
	approvalRepo approvals.Querier,
	stateMachine domain.StateMachine,
) Business {
	return &business{
		orderRepo:    orderRepo,
		entryRepo:    entryRepo,
		approvalRepo: approvalRepo,
		stateMachine: stateMachine,
	}
}
