package ledger

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/settlement/model"
)

func (b *business) GetOrderTracking(ctx context.Context, orderID int64) (*model.OrderTracking, error) {
	dbTracking, err := b.orderRepo.GetOrderTracking(ctx, orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "order tracking not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to read order tracking"}
	}
	return convertDBTrackingToModel(dbTracking), nil
}

func (b *business) ListEntries(ctx context.Context, orderID int64) ([]model.TimeEntry, error) {
	dbEntries, err := b.entryRepo.ListTimeEntriesByOrder(ctx, orderID)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list time entries"}
	}
	return convertDBEntriesToModel(dbEntries), nil
}

func (b *business) ListEntriesByBillingStatus(ctx context.Context, status model.BillingStatus) ([]model.TimeEntry, error) {
	dbEntries, err := b.entryRepo.ListTimeEntriesByBillingStatus(ctx, string(status))
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list time entries by billing status"}
	}
	return convertDBEntriesToModel(dbEntries), nil
}

func (b *business) ListOrdersWithOpenEntries(ctx context.Context) ([]int64, error) {
	ids, err := b.entryRepo.ListOrdersWithOpenEntries(ctx)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list orders with open entries"}
	}
	return ids, nil
}

func (b *business) SumTransferredCents(ctx context.Context, providerAccountID string) (int64, error) {
	sum, err := b.entryRepo.SumTransferredCentsByAccount(ctx, providerAccountID)
	if err != nil {
		return 0, &errs.Error{Code: errs.Internal, Message: "failed to sum transferred amounts"}
	}
	return sum, nil
}

func (b *business) ListApprovals(ctx context.Context, orderID int64) ([]model.ApprovalRequest, error) {
	dbApprovals, err := b.approvalRepo.ListApprovalsByOrder(ctx, orderID)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list approval requests"}
	}

	result := make([]model.ApprovalRequest, len(dbApprovals))
	for i, a := range dbApprovals {
		result[i] = *convertDBApprovalToModel(a)
	}
	return result, nil
}
