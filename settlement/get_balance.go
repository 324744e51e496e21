package settlement

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/settlement/model"
)

type GetBalanceRequest struct {
	// ForceRefresh bypasses the cached snapshot.
	ForceRefresh bool `query:"force_refresh"`
}

type BalanceResponse struct {
	Balance model.ProviderBalanceSnapshot `json:"balance"`
}

// GetProviderBalance serves the provider's earnings dashboard. Snapshots may
// be up to a few minutes old; a stale one is flagged rather than rejected.
//
//encore:api public path=/v1/providers/:id/balance method=GET
func (s *Service) GetProviderBalance(ctx context.Context, id string, req *GetBalanceRequest) (*BalanceResponse, error) {
	if id == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid provider account ID"}
	}

	result, err := s.balance.GetBalance(ctx, id, req.ForceRefresh)
	if err != nil {
		rlog.Error("failed to get provider balance", "error", err, "provider_account_id", id)
		return nil, err
	}

	return &BalanceResponse{
		Balance: *result,
	}, nil
}
