package domain

import (
	"fmt"

	"encore.dev/beta/errs"

	"encore.app/settlement/model"
)

// ValidateEntryTransition checks a review-state change. The only legal moves
// are logged→approved and logged→rejected; both targets are terminal.
func ValidateEntryTransition(from, to model.EntryStatus) error {
	if from == model.EntryStatusLogged &&
		(to == model.EntryStatusApproved || to == model.EntryStatusRejected) {
		return nil
	}
	return &errs.Error{
		Code:    errs.FailedPrecondition,
		Message: fmt.Sprintf("invalid entry status transition %s -> %s", from, to),
	}
}
