package settlement

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/settlement/model"
)

type SweepRequest struct {
	// OrderID limits the sweep to one order; zero sweeps every order with
	// entries in flight.
	OrderID int64 `json:"order_id" validate:"gte=0"`
}

type SweepResponse struct {
	Report model.SweepReport `json:"report"`
}

// RunSweep triggers a reconciliation pass on demand, e.g. from an admin
// console after fixing a failed entry. The scheduled sweep uses the same path
// through the reconciler.
//
//encore:api private path=/v1/reconciliation/sweep method=POST
func (s *Service) RunSweep(ctx context.Context, req *SweepRequest) (*SweepResponse, error) {
	var (
		report *model.SweepReport
		err    error
	)

	if req.OrderID > 0 {
		report, err = s.reconciler.SweepOrder(ctx, req.OrderID)
	} else {
		report, err = s.reconciler.SweepAll(ctx)
	}
	if err != nil {
		rlog.Error("failed to run reconciliation sweep", "error", err, "order_id", req.OrderID)
		return nil, err
	}

	return &SweepResponse{
		Report: *report,
	}, nil
}

// Validate implements validation for SweepRequest
func (r *SweepRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}

type ReconciliationReportResponse struct {
	Report model.ReconciliationReport `json:"report"`
}

// GetReconciliationReport returns the manual-review queue: failed entries and
// entries stuck in platform_held past the drift threshold.
//
//encore:api private path=/v1/reconciliation/report method=GET
func (s *Service) GetReconciliationReport(ctx context.Context) (*ReconciliationReportResponse, error) {
	report, err := s.reconciler.Report(ctx)
	if err != nil {
		rlog.Error("failed to build reconciliation report", "error", err)
		return nil, err
	}

	return &ReconciliationReportResponse{
		Report: *report,
	}, nil
}
