package approval

import (
	"context"

	"encore.app/settlement/business/ledger"
	"encore.app/settlement/gateway"
	"encore.app/settlement/model"
)

// Business handles customer-initiated bulk approval of logged hours. At most
// one payment authorization is created per call.
type Business interface {
	ApproveHours(ctx context.Context, arg ApproveHoursParams) (*model.ApprovalRequest, error)
}

type ApproveHoursParams struct {
	OrderID  int64
	EntryIDs []int64
	Actor    string
}

type business struct {
	ledger  ledger.Business
	gateway gateway.PaymentGateway

	// casRetries bounds immediate retries after a concurrent-modification
	// abort; the authorization idempotency key makes those retries safe.
	casRetries int
}

func NewApprovalBusiness(ledgerBusiness ledger.Business, gw gateway.PaymentGateway) Business {
	return &business{
		ledger:     ledgerBusiness,
		gateway:    gw,
		casRetries: 2,
	}
}
