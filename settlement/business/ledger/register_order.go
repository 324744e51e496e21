package ledger

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/settlement/model"
	"encore.app/settlement/repository/orders"
)

type RegisterOrderParams struct {
	OrderID           int64
	CustomerID        string
	ProviderID        string
	ProviderAccountID string
	PlannedHours      float64
	HourlyRateCents   int64
}

// RegisterOrder creates or refreshes the order's tracking row. The upsert
// never touches version or status, so re-registering an order mid-settlement
// cannot reset its concurrency token or reopen a completed order.
func (b *business) RegisterOrder(ctx context.Context, arg RegisterOrderParams) (*model.OrderTracking, error) {
	tracking, err := b.orderRepo.UpsertOrderTracking(ctx, orders.UpsertOrderTrackingParams{
		OrderID:           arg.OrderID,
		CustomerID:        arg.CustomerID,
		ProviderID:        arg.ProviderID,
		ProviderAccountID: arg.ProviderAccountID,
		PlannedHours:      arg.PlannedHours,
		HourlyRateCents:   arg.HourlyRateCents,
		Status:            string(model.TrackingStatusActive),
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to register order tracking"}
	}

	return convertDBTrackingToModel(tracking), nil
}
