package settlement

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/settlement/model"
)

type ListApprovalsResponse struct {
	Approvals  []model.ApprovalRequest `json:"approvals"`
	TotalCount int                     `json:"total_count"`
}

// ListApprovals returns the order's approval audit history, newest first.
//
//encore:api public path=/v1/orders/:id/approvals method=GET
func (s *Service) ListApprovals(ctx context.Context, id int64) (*ListApprovalsResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid order ID"}
	}

	approvals, err := s.ledger.ListApprovals(ctx, id)
	if err != nil {
		rlog.Error("failed to list approvals", "error", err, "order_id", id)
		return nil, err
	}

	return &ListApprovalsResponse{
		Approvals:  approvals,
		TotalCount: len(approvals),
	}, nil
}
