package settlement

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/settlement/model"
)

type RejectEntryRequest struct {
	RejectedBy string `json:"rejected_by" validate:"required,max=100"`
}

// RejectTimeEntry marks a logged entry as rejected. Rejected entries never
// bill; disputed hours are re-logged as a fresh entry.
//
//encore:api public path=/v1/time-entries/:id/reject method=POST
func (s *Service) RejectTimeEntry(ctx context.Context, id int64, req *RejectEntryRequest) (*TimeEntryResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid time entry ID"}
	}

	result, err := s.ledger.TransitionEntryStatus(ctx, id, model.EntryStatusRejected, req.RejectedBy)
	if err != nil {
		rlog.Error("failed to reject time entry", "error", err, "entry_id", id)
		return nil, err
	}

	return &TimeEntryResponse{
		TimeEntry: *result,
	}, nil
}

// Validate implements validation for RejectEntryRequest
func (r *RejectEntryRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
