package ledger

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/settlement/model"
	"encore.app/settlement/repository/approvals"
	"encore.app/settlement/repository/orders"
	"encore.app/settlement/repository/timeentries"
)

func loggedEntry(id, orderID int64, category string) timeentries.TimeEntry {
	return timeentries.TimeEntry{
		ID:                  id,
		OrderID:             orderID,
		Category:            category,
		Hours:               2,
		HourlyRateCents:     5000,
		BillableAmountCents: 10000,
		EntryStatus:         "logged",
		BillingStatus:       "unbilled",
	}
}

func TestApproveEntries_PaymentRequired(t *testing.T) {
	b, m := newTestBusiness(t)

	tracking := orders.OrderTracking{OrderID: 20, CustomerID: "cust_1", Version: 5}
	m.expectExecute(tracking)

	planned := loggedEntry(1, 20, "planned")
	additional := loggedEntry(2, 20, "additional")

	m.entryRepo.EXPECT().GetTimeEntry(gomock.Any(), int64(1)).Return(planned, nil)
	m.entryRepo.EXPECT().UpdateEntryStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg timeentries.UpdateEntryStatusParams) (timeentries.TimeEntry, error) {
			assert.Equal(t, "approved", arg.EntryStatus)
			assert.Equal(t, "cust_1", arg.ApprovedBy.String)
			assert.True(t, arg.ApprovedAt.Valid)
			return planned, nil
		})

	m.entryRepo.EXPECT().GetTimeEntry(gomock.Any(), int64(2)).Return(additional, nil)
	m.entryRepo.EXPECT().UpdateEntryStatus(gomock.Any(), gomock.Any()).Return(additional, nil)
	m.entryRepo.EXPECT().
		SetPaymentIntentRef(gomock.Any(), timeentries.SetPaymentIntentRefParams{ID: 2, PaymentIntentRef: "pi_1"}).
		Return(additional, nil)
	m.entryRepo.EXPECT().UpdateBillingStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg timeentries.UpdateBillingStatusParams) (timeentries.TimeEntry, error) {
			assert.Equal(t, int64(2), arg.ID)
			assert.Equal(t, "pending_payment", arg.BillingStatus)
			assert.Equal(t, "pi_1", arg.EvidenceRef.String)
			return additional, nil
		})

	m.approvalRepo.EXPECT().CreateApproval(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg approvals.CreateApprovalParams) (approvals.Approval, error) {
			assert.Equal(t, "payment_required", arg.ResultStatus)
			assert.Equal(t, "pi_1", arg.PaymentIntentRef.String)
			return approvals.Approval{
				ID:               1,
				OrderID:          arg.OrderID,
				ApprovedBy:       arg.ApprovedBy,
				TimeEntryIds:     arg.TimeEntryIds,
				TotalAmountCents: arg.TotalAmountCents,
				PaymentIntentRef: arg.PaymentIntentRef,
				ResultStatus:     arg.ResultStatus,
			}, nil
		})

	result, err := b.ApproveEntries(context.Background(), ApproveEntriesParams{
		OrderID:          20,
		EntryIDs:         []int64{1, 2},
		Actor:            "cust_1",
		TotalHours:       4,
		TotalAmount:      10000,
		PaymentIntentRef: "pi_1",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, model.ApprovalResultPaymentRequired, result.ResultStatus)
	require.NotNil(t, result.PaymentIntentRef)
	assert.Equal(t, "pi_1", *result.PaymentIntentRef)
}

func TestApproveEntries_NoPaymentOwed(t *testing.T) {
	b, m := newTestBusiness(t)

	tracking := orders.OrderTracking{OrderID: 21, CustomerID: "cust_1", Version: 1}
	m.expectExecute(tracking)

	planned := loggedEntry(3, 21, "planned")
	m.entryRepo.EXPECT().GetTimeEntry(gomock.Any(), int64(3)).Return(planned, nil)
	m.entryRepo.EXPECT().UpdateEntryStatus(gomock.Any(), gomock.Any()).Return(planned, nil)

	m.approvalRepo.EXPECT().CreateApproval(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg approvals.CreateApprovalParams) (approvals.Approval, error) {
			assert.Equal(t, "completed", arg.ResultStatus)
			assert.False(t, arg.PaymentIntentRef.Valid)
			return approvals.Approval{ID: 2, OrderID: 21, ResultStatus: arg.ResultStatus}, nil
		})

	result, err := b.ApproveEntries(context.Background(), ApproveEntriesParams{
		OrderID:    21,
		EntryIDs:   []int64{3},
		Actor:      "cust_1",
		TotalHours: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, model.ApprovalResultCompleted, result.ResultStatus)
	assert.Nil(t, result.PaymentIntentRef)
}

// One bad entry fails the whole batch before any approval record is written.
func TestApproveEntries_BatchAtomicity(t *testing.T) {
	testCases := []struct {
		name          string
		entry         timeentries.TimeEntry
		entryErr      error
		expectedError string
	}{
		{
			name:          "entry_not_found",
			entryErr:      pgx.ErrNoRows,
			expectedError: "not approvable",
		},
		{
			name: "entry_already_approved",
			entry: timeentries.TimeEntry{
				ID: 5, OrderID: 22, Category: "additional", EntryStatus: "approved",
			},
			expectedError: "not approvable",
		},
		{
			name: "entry_belongs_to_other_order",
			entry: timeentries.TimeEntry{
				ID: 5, OrderID: 99, Category: "additional", EntryStatus: "logged",
			},
			expectedError: "not approvable",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, m := newTestBusiness(t)

			tracking := orders.OrderTracking{OrderID: 22, Version: 1}
			m.expectExecute(tracking)

			first := loggedEntry(4, 22, "planned")
			m.entryRepo.EXPECT().GetTimeEntry(gomock.Any(), int64(4)).Return(first, nil)
			m.entryRepo.EXPECT().UpdateEntryStatus(gomock.Any(), gomock.Any()).Return(first, nil)

			m.entryRepo.EXPECT().GetTimeEntry(gomock.Any(), int64(5)).Return(tc.entry, tc.entryErr)

			// No approval record may be created for a failed batch.

			result, err := b.ApproveEntries(context.Background(), ApproveEntriesParams{
				OrderID:  22,
				EntryIDs: []int64{4, 5},
				Actor:    "cust_1",
			})

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectedError)
			assert.Nil(t, result)
		})
	}
}

// paymentIntentRef is write-once; finding it already set stops processing with
// an error loud enough for manual correction.
func TestApproveEntries_PaymentIntentAlreadyPinned(t *testing.T) {
	b, m := newTestBusiness(t)

	tracking := orders.OrderTracking{OrderID: 23, Version: 2}
	m.expectExecute(tracking)

	additional := loggedEntry(6, 23, "additional")
	m.entryRepo.EXPECT().GetTimeEntry(gomock.Any(), int64(6)).Return(additional, nil)
	m.entryRepo.EXPECT().UpdateEntryStatus(gomock.Any(), gomock.Any()).Return(additional, nil)
	m.entryRepo.EXPECT().
		SetPaymentIntentRef(gomock.Any(), gomock.Any()).
		Return(timeentries.TimeEntry{}, pgx.ErrNoRows)

	result, err := b.ApproveEntries(context.Background(), ApproveEntriesParams{
		OrderID:          23,
		EntryIDs:         []int64{6},
		Actor:            "cust_1",
		PaymentIntentRef: "pi_2",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already carries a payment intent")
	assert.Nil(t, result)
}

func TestApproveEntries_EmptyBatch(t *testing.T) {
	b, _ := newTestBusiness(t)

	result, err := b.ApproveEntries(context.Background(), ApproveEntriesParams{OrderID: 24})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no time entries given")
	assert.Nil(t, result)
}

func TestRecordFailedApproval(t *testing.T) {
	b, m := newTestBusiness(t)

	m.approvalRepo.EXPECT().CreateApproval(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg approvals.CreateApprovalParams) (approvals.Approval, error) {
			assert.Equal(t, "failed", arg.ResultStatus)
			assert.Equal(t, "gateway timeout", arg.FailureReason.String)
			assert.False(t, arg.PaymentIntentRef.Valid)
			return approvals.Approval{ID: 9, ResultStatus: arg.ResultStatus}, nil
		})

	err := b.RecordFailedApproval(context.Background(), RecordFailedApprovalParams{
		OrderID:  25,
		EntryIDs: []int64{7},
		Actor:    "cust_1",
		Reason:   "gateway timeout",
	})

	require.NoError(t, err)
}
