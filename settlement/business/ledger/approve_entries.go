package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/settlement/domain"
	"encore.app/settlement/model"
	"encore.app/settlement/repository/approvals"
	"encore.app/settlement/repository/orders"
	"encore.app/settlement/repository/timeentries"
)

type ApproveEntriesParams struct {
	OrderID     int64
	EntryIDs    []int64
	Actor       string
	TotalHours  float64
	TotalAmount int64
	// PaymentIntentRef is empty when the batch owed no money.
	PaymentIntentRef string
}

// ApproveEntries is the unit transaction boundary of an approval: every entry
// in the batch moves to approved (and, when money is owed, to pending_payment
// with the authorization pinned) and the ApprovalRequest audit record is
// written — all inside one version-checked transaction. Any failure leaves
// every entry untouched.
func (b *business) ApproveEntries(ctx context.Context, arg ApproveEntriesParams) (*model.ApprovalRequest, error) {
	if len(arg.EntryIDs) == 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "no time entries given"}
	}

	var result *model.ApprovalRequest

	err := b.stateMachine.ExecuteWithVersion(ctx, arg.OrderID, func(tracking orders.OrderTracking, repos domain.TxRepos) error {
		now := time.Now()

		for _, entryID := range arg.EntryIDs {
			entry, err := repos.TimeEntries.GetTimeEntry(ctx, entryID)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return notApprovable(entryID, "entry not found")
				}
				return &errs.Error{Code: errs.Internal, Message: "failed to read time entry"}
			}
			if entry.OrderID != arg.OrderID {
				return notApprovable(entryID, "entry belongs to a different order")
			}
			if entry.EntryStatus != string(model.EntryStatusLogged) {
				return notApprovable(entryID, fmt.Sprintf("entry is %s, not logged", entry.EntryStatus))
			}

			if _, err := repos.TimeEntries.UpdateEntryStatus(ctx, timeentries.UpdateEntryStatusParams{
				ID:          entryID,
				EntryStatus: string(model.EntryStatusApproved),
				ApprovedBy:  pgtype.Text{String: arg.Actor, Valid: true},
				ApprovedAt:  pgtype.Timestamptz{Time: now, Valid: true},
			}); err != nil {
				return &errs.Error{Code: errs.Internal, Message: "failed to approve time entry"}
			}

			if arg.PaymentIntentRef != "" && entry.Category == string(model.CategoryAdditional) {
				// paymentIntentRef is write-once; the guarded update returning
				// no rows means someone already pinned a different payment to
				// this entry, which must stop automatic processing here.
				if _, err := repos.TimeEntries.SetPaymentIntentRef(ctx, timeentries.SetPaymentIntentRefParams{
					ID:               entryID,
					PaymentIntentRef: arg.PaymentIntentRef,
				}); err != nil {
					if errors.Is(err, pgx.ErrNoRows) {
						return &errs.Error{
							Code:    errs.Internal,
							Message: fmt.Sprintf("entry %d already carries a payment intent; manual correction required", entryID),
						}
					}
					return &errs.Error{Code: errs.Internal, Message: "failed to set payment intent"}
				}

				if _, err := applyBillingUpdate(ctx, repos.TimeEntries, entryID,
					model.BillingStatusPendingPayment, arg.PaymentIntentRef, ""); err != nil {
					return err
				}
			}
		}

		resultStatus := model.ApprovalResultCompleted
		paymentIntentRef := pgtype.Text{}
		if arg.PaymentIntentRef != "" {
			resultStatus = model.ApprovalResultPaymentRequired
			paymentIntentRef = pgtype.Text{String: arg.PaymentIntentRef, Valid: true}
		}

		dbApproval, err := repos.Approvals.CreateApproval(ctx, approvals.CreateApprovalParams{
			OrderID:            arg.OrderID,
			ApprovedBy:         arg.Actor,
			TimeEntryIds:       arg.EntryIDs,
			TotalHoursApproved: arg.TotalHours,
			TotalAmountCents:   arg.TotalAmount,
			PaymentIntentRef:   paymentIntentRef,
			ResultStatus:       string(resultStatus),
		})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to record approval request"}
		}

		result = convertDBApprovalToModel(dbApproval)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

type RecordFailedApprovalParams struct {
	OrderID     int64
	EntryIDs    []int64
	Actor       string
	TotalHours  float64
	TotalAmount int64
	Reason      string
}

// RecordFailedApproval writes the audit record for an approval whose payment
// authorization failed. Entries are untouched by design, so this runs outside
// the state machine.
func (b *business) RecordFailedApproval(ctx context.Context, arg RecordFailedApprovalParams) error {
	_, err := b.approvalRepo.CreateApproval(ctx, approvals.CreateApprovalParams{
		OrderID:            arg.OrderID,
		ApprovedBy:         arg.Actor,
		TimeEntryIds:       arg.EntryIDs,
		TotalHoursApproved: arg.TotalHours,
		TotalAmountCents:   arg.TotalAmount,
		ResultStatus:       string(model.ApprovalResultFailed),
		FailureReason:      pgtype.Text{String: arg.Reason, Valid: true},
	})
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to record failed approval"}
	}
	return nil
}

func notApprovable(entryID int64, reason string) error {
	return &errs.Error{
		Code:    errs.FailedPrecondition,
		Message: fmt.Sprintf("entry %d is not approvable: %s", entryID, reason),
	}
}
