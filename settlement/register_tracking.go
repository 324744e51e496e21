package settlement

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/settlement/business/ledger"
	"encore.app/settlement/model"
)

type RegisterTrackingRequest struct {
	CustomerID        string  `json:"customer_id" validate:"required,max=100"`
	ProviderID        string  `json:"provider_id" validate:"required,max=100"`
	ProviderAccountID string  `json:"provider_account_id" validate:"required,max=100"`
	PlannedHours      float64 `json:"planned_hours" validate:"gte=0"`
	HourlyRateCents   int64   `json:"hourly_rate_cents" validate:"required,min=1"`
}

type TrackingResponse struct {
	Tracking model.OrderTracking `json:"tracking"`
}

// RegisterTracking creates or refreshes the time-tracking projection of an
// order. Order management calls it when an order is placed or amended.
//
//encore:api private path=/v1/orders/:id/tracking method=PUT
func (s *Service) RegisterTracking(ctx context.Context, id int64, req *RegisterTrackingRequest) (*TrackingResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid order ID"}
	}

	result, err := s.ledger.RegisterOrder(ctx, ledger.RegisterOrderParams{
		OrderID:           id,
		CustomerID:        req.CustomerID,
		ProviderID:        req.ProviderID,
		ProviderAccountID: req.ProviderAccountID,
		PlannedHours:      req.PlannedHours,
		HourlyRateCents:   req.HourlyRateCents,
	})
	if err != nil {
		rlog.Error("failed to register order tracking", "error", err, "order_id", id)
		return nil, err
	}

	return &TrackingResponse{
		Tracking: *result,
	}, nil
}

// Validate implements validation for RegisterTrackingRequest
func (r *RegisterTrackingRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
