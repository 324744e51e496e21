package settlement

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/settlement/model"
)

type ListTimeEntriesRequest struct {
	// BillingStatus filters the listing when set.
	BillingStatus string `query:"billing_status"`
}

type ListTimeEntriesResponse struct {
	TimeEntries []model.TimeEntry `json:"time_entries"`
	TotalCount  int               `json:"total_count"`
}

// ListTimeEntries returns an order's entries, optionally filtered by billing
// status.
//
//encore:api public path=/v1/orders/:id/time-entries method=GET
func (s *Service) ListTimeEntries(ctx context.Context, id int64, req *ListTimeEntriesRequest) (*ListTimeEntriesResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid order ID"}
	}

	entries, err := s.ledger.ListEntries(ctx, id)
	if err != nil {
		rlog.Error("failed to list time entries", "error", err, "order_id", id)
		return nil, err
	}

	if req.BillingStatus != "" {
		filtered := make([]model.TimeEntry, 0, len(entries))
		for _, entry := range entries {
			if entry.BillingStatus == model.BillingStatus(req.BillingStatus) {
				filtered = append(filtered, entry)
			}
		}
		entries = filtered
	}

	return &ListTimeEntriesResponse{
		TimeEntries: entries,
		TotalCount:  len(entries),
	}, nil
}
