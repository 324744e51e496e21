package balance

import (
	"context"
	"errors"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"encore.app/settlement/business/ledger"
	"encore.app/settlement/gateway"
	"encore.app/settlement/model"
)

// snapshotTTL is how long a cached balance counts as fresh.
const snapshotTTL = 3 * time.Minute

// Business serves fast balance reads to the UI without hammering the
// processor. The snapshot is disposable cache, never source of truth.
type Business interface {
	GetBalance(ctx context.Context, providerAccountID string, forceRefresh bool) (*model.ProviderBalanceSnapshot, error)
}

type business struct {
	ledger  ledger.Business
	gateway gateway.PaymentGateway
	ttl     time.Duration
}

func NewBalanceBusiness(ledgerBusiness ledger.Business, gw gateway.PaymentGateway) Business {
	return &business{
		ledger:  ledgerBusiness,
		gateway: gw,
		ttl:     snapshotTTL,
	}
}

// GetBalance returns the cached snapshot while fresh, otherwise refetches.
// It never blocks longer than one adapter call; if that call fails, the last
// known snapshot comes back flagged stale instead of an error, since balance
// display is not safety-critical.
func (b *business) GetBalance(ctx context.Context, providerAccountID string, forceRefresh bool) (*model.ProviderBalanceSnapshot, error) {
	key := model.BalanceKey{ProviderAccountID: providerAccountID}

	cached, cacheErr := Snapshots.Get(ctx, key)
	haveCached := cacheErr == nil
	if cacheErr != nil && !errors.Is(cacheErr, cache.Miss) {
		rlog.Warn("balance cache read failed", "provider_account_id", providerAccountID, "error", cacheErr)
	}

	if haveCached && !forceRefresh && time.Since(cached.FetchedAt) < b.ttl {
		return &cached, nil
	}

	fresh, err := b.refresh(ctx, providerAccountID)
	if err != nil {
		if haveCached {
			rlog.Warn("balance refresh failed, serving stale snapshot",
				"provider_account_id", providerAccountID, "fetched_at", cached.FetchedAt, "error", err)
			cached.Stale = true
			return &cached, nil
		}
		return nil, &errs.Error{Code: errs.Unavailable, Message: "provider balance is currently unavailable"}
	}

	if err := Snapshots.Set(ctx, key, *fresh); err != nil {
		rlog.Warn("balance cache write failed", "provider_account_id", providerAccountID, "error", err)
	}

	return fresh, nil
}

func (b *business) refresh(ctx context.Context, providerAccountID string) (*model.ProviderBalanceSnapshot, error) {
	bal, err := b.gateway.GetBalance(ctx, providerAccountID)
	if err != nil {
		return nil, err
	}

	transferred, err := b.ledger.SumTransferredCents(ctx, providerAccountID)
	if err != nil {
		return nil, err
	}

	return &model.ProviderBalanceSnapshot{
		ProviderAccountID: providerAccountID,
		AvailableCents:    bal.AvailableCents,
		PendingCents:      bal.PendingCents,
		TransferredCents:  transferred,
		FetchedAt:         time.Now(),
	}, nil
}
