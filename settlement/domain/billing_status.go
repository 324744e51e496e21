package domain

import (
	"fmt"

	"encore.dev/beta/errs"

	"encore.app/settlement/model"
)

// billingRank totally orders the billing states an entry moves through.
// failed and paid are terminal.
var billingRank = map[model.BillingStatus]int{
	model.BillingStatusUnbilled:       0,
	model.BillingStatusPendingPayment: 1,
	model.BillingStatusPlatformHeld:   2,
	model.BillingStatusTransferred:    3,
	model.BillingStatusPaid:           4,
}

// IsTerminalBilling reports whether no further automatic processing may touch
// the entry.
func IsTerminalBilling(s model.BillingStatus) bool {
	return s == model.BillingStatusPaid || s == model.BillingStatusFailed
}

// ValidateBillingTransition enforces the monotonic ordering
// unbilled < pending_payment < platform_held < transferred < paid,
// with failed reachable from any non-terminal state. Skipping forward more
// than one step is rejected too: every intermediate state carries its own
// processor evidence and must be recorded.
func ValidateBillingTransition(from, to model.BillingStatus) error {
	if IsTerminalBilling(from) {
		return invalidBillingTransition(from, to)
	}
	if to == model.BillingStatusFailed {
		return nil
	}
	fromRank, ok := billingRank[from]
	if !ok {
		return invalidBillingTransition(from, to)
	}
	toRank, ok := billingRank[to]
	if !ok {
		return invalidBillingTransition(from, to)
	}
	if toRank != fromRank+1 {
		return invalidBillingTransition(from, to)
	}
	return nil
}

func invalidBillingTransition(from, to model.BillingStatus) error {
	return &errs.Error{
		Code:    errs.FailedPrecondition,
		Message: fmt.Sprintf("invalid billing status transition %s -> %s", from, to),
	}
}
