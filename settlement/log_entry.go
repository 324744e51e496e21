package settlement

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/settlement/business/ledger"
	"encore.app/settlement/model"
)

type LogTimeEntryRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	Category string  `json:"category" validate:"required,oneof=planned additional"`
	Hours    float64 `json:"hours" validate:"required,gt=0"`
	// HourlyRateCents of zero snapshots the order's current rate.
	HourlyRateCents int64 `json:"hourly_rate_cents" validate:"gte=0"`
}

type TimeEntryResponse struct {
	TimeEntry model.TimeEntry `json:"time_entry"`
}

// LogTimeEntry records hours worked against an order.
//
//encore:api public path=/v1/orders/:id/time-entries method=POST tag:idempotency
func (s *Service) LogTimeEntry(ctx context.Context, id int64, req *LogTimeEntryRequest) (*TimeEntryResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid order ID"}
	}

	result, err := s.ledger.LogEntry(ctx, ledger.LogEntryParams{
		OrderID:         id,
		Category:        model.EntryCategory(req.Category),
		Hours:           req.Hours,
		HourlyRateCents: req.HourlyRateCents,
	})
	if err != nil {
		rlog.Error("failed to log time entry", "error", err, "order_id", id)
		return nil, err
	}

	return &TimeEntryResponse{
		TimeEntry: *result,
	}, nil
}

// Validate implements validation for LogTimeEntryRequest
func (r *LogTimeEntryRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
