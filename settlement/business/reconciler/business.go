package reconciler

import (
	"context"
	"time"

	"encore.dev/beta/errs"

	"encore.app/settlement/business/ledger"
	"encore.app/settlement/gateway"
	"encore.app/settlement/model"
)

const (
	// defaultDriftThreshold is how long an entry may sit in platform_held
	// without balance coverage before it shows up in the drift report.
	defaultDriftThreshold = 72 * time.Hour

	casRetries = 2
)

// Business closes the gap between "payment authorized" and "provider paid"
// and repairs drift from processor-side asynchrony. The sweep is idempotent:
// with no external state change it performs only status reads.
type Business interface {
	SweepAll(ctx context.Context) (*model.SweepReport, error)
	SweepOrder(ctx context.Context, orderID int64) (*model.SweepReport, error)
	Report(ctx context.Context) (*model.ReconciliationReport, error)
}

type business struct {
	ledger         ledger.Business
	gateway        gateway.PaymentGateway
	driftThreshold time.Duration
}

type Option func(*business)

// WithDriftThreshold overrides how long a held entry may wait for balance
// before being reported as drift.
func WithDriftThreshold(d time.Duration) Option {
	return func(b *business) { b.driftThreshold = d }
}

func NewReconcilerBusiness(ledgerBusiness ledger.Business, gw gateway.PaymentGateway, opts ...Option) Business {
	b := &business{
		ledger:         ledgerBusiness,
		gateway:        gw,
		driftThreshold: defaultDriftThreshold,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// transition applies a billing transition with a bounded immediate retry on
// concurrent-modification aborts.
func (b *business) transition(ctx context.Context, entryID int64, to model.BillingStatus, evidenceRef string) error {
	var err error
	for attempt := 0; attempt <= casRetries; attempt++ {
		_, err = b.ledger.TransitionBillingStatus(ctx, entryID, to, evidenceRef)
		if err == nil {
			return nil
		}
		if e, ok := err.(*errs.Error); !ok || e.Code != errs.Aborted {
			return err
		}
	}
	return err
}
