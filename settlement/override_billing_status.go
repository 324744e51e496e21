package settlement

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/settlement/model"
)

type OverrideBillingStatusRequest struct {
	BillingStatus string `json:"billing_status" validate:"required,oneof=unbilled pending_payment platform_held transferred paid failed"`
	Actor         string `json:"actor" validate:"required,max=100"`
	Reason        string `json:"reason" validate:"required,max=255"`
}

// OverrideBillingStatus is the admin escape hatch for entries the reconciler
// cannot repair, e.g. a transfer confirmed out-of-band. Every override is
// stamped with who did it and why.
//
//encore:api private path=/v1/time-entries/:id/override-billing-status method=POST
func (s *Service) OverrideBillingStatus(ctx context.Context, id int64, req *OverrideBillingStatusRequest) (*TimeEntryResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid time entry ID"}
	}

	result, err := s.ledger.OverrideBillingStatus(ctx, id, model.BillingStatus(req.BillingStatus), req.Actor, req.Reason)
	if err != nil {
		rlog.Error("failed to override billing status", "error", err, "entry_id", id, "actor", req.Actor)
		return nil, err
	}

	rlog.Info("billing status overridden", "entry_id", id, "to", req.BillingStatus, "actor", req.Actor)

	return &TimeEntryResponse{
		TimeEntry: *result,
	}, nil
}

// Validate implements validation for OverrideBillingStatusRequest
func (r *OverrideBillingStatusRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
