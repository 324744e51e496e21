package ledger

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/settlement/model"
	"encore.app/settlement/repository/orders"
	"encore.app/settlement/repository/timeentries"
)

func TestTransitionBillingStatus_ForwardMove(t *testing.T) {
	b, m := newTestBusiness(t)

	entry := timeentries.TimeEntry{
		ID: 1, OrderID: 30, Category: "additional",
		EntryStatus: "approved", BillingStatus: "pending_payment",
	}

	m.entryRepo.EXPECT().GetTimeEntry(gomock.Any(), int64(1)).Return(entry, nil)
	m.expectExecute(orders.OrderTracking{OrderID: 30, Version: 4})
	m.entryRepo.EXPECT().GetTimeEntry(gomock.Any(), int64(1)).Return(entry, nil)

	m.entryRepo.EXPECT().UpdateBillingStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg timeentries.UpdateBillingStatusParams) (timeentries.TimeEntry, error) {
			assert.Equal(t, "platform_held", arg.BillingStatus)
			assert.Equal(t, "pi_1", arg.EvidenceRef.String)
			assert.True(t, arg.HeldAt.Valid)
			assert.False(t, arg.TransferRef.Valid)
			updated := entry
			updated.BillingStatus = arg.BillingStatus
			updated.EvidenceRef = arg.EvidenceRef
			updated.HeldAt = arg.HeldAt
			return updated, nil
		})

	result, err := b.TransitionBillingStatus(context.Background(), 1, model.BillingStatusPlatformHeld, "pi_1")

	require.NoError(t, err)
	assert.Equal(t, model.BillingStatusPlatformHeld, result.BillingStatus)
	require.NotNil(t, result.HeldAt)
}

func TestTransitionBillingStatus_BackwardMoveRejected(t *testing.T) {
	b, m := newTestBusiness(t)

	entry := timeentries.TimeEntry{
		ID: 2, OrderID: 31, Category: "additional",
		EntryStatus: "approved", BillingStatus: "transferred",
	}

	m.entryRepo.EXPECT().GetTimeEntry(gomock.Any(), int64(2)).Return(entry, nil)
	m.expectExecute(orders.OrderTracking{OrderID: 31, Version: 1})
	m.entryRepo.EXPECT().GetTimeEntry(gomock.Any(), int64(2)).Return(entry, nil)

	result, err := b.TransitionBillingStatus(context.Background(), 2, model.BillingStatusPendingPayment, "pi_1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid billing status transition")
	assert.Nil(t, result)
}

func TestTransitionBillingStatus_RequiresEvidence(t *testing.T) {
	b, _ := newTestBusiness(t)

	result, err := b.TransitionBillingStatus(context.Background(), 3, model.BillingStatusPlatformHeld, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "evidence reference is required")
	assert.Nil(t, result)
}

func TestTransitionBillingStatus_NotFound(t *testing.T) {
	b, m := newTestBusiness(t)

	m.entryRepo.EXPECT().GetTimeEntry(gomock.Any(), int64(4)).Return(timeentries.TimeEntry{}, pgx.ErrNoRows)

	result, err := b.TransitionBillingStatus(context.Background(), 4, model.BillingStatusPlatformHeld, "pi_1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "time entry not found")
	assert.Nil(t, result)
}

// Settling the last additional entry marks the order's tracking completed.
func TestTransitionBillingStatus_CompletesTracking(t *testing.T) {
	b, m := newTestBusiness(t)

	entry := timeentries.TimeEntry{
		ID: 5, OrderID: 32, Category: "additional",
		EntryStatus: "approved", BillingStatus: "platform_held",
	}
	updated := entry
	updated.BillingStatus = "transferred"

	m.entryRepo.EXPECT().GetTimeEntry(gomock.Any(), int64(5)).Return(entry, nil)
	m.expectExecute(orders.OrderTracking{OrderID: 32, Version: 7})
	m.entryRepo.EXPECT().GetTimeEntry(gomock.Any(), int64(5)).Return(entry, nil)
	m.entryRepo.EXPECT().UpdateBillingStatus(gomock.Any(), gomock.Any()).Return(updated, nil)

	m.entryRepo.EXPECT().CountOpenAdditionalEntries(gomock.Any(), int64(32)).Return(int64(0), nil)
	m.orderRepo.EXPECT().
		UpdateTrackingStatus(gomock.Any(), orders.UpdateTrackingStatusParams{OrderID: 32, Status: "completed"}).
		Return(nil)

	result, err := b.TransitionBillingStatus(context.Background(), 5, model.BillingStatusTransferred, "tr_1")

	require.NoError(t, err)
	assert.Equal(t, model.BillingStatusTransferred, result.BillingStatus)
}

// Other additional entries still in flight keep the tracking open.
func TestTransitionBillingStatus_LeavesTrackingOpen(t *testing.T) {
	b, m := newTestBusiness(t)

	entry := timeentries.TimeEntry{
		ID: 6, OrderID: 33, Category: "additional",
		EntryStatus: "approved", BillingStatus: "platform_held",
	}
	updated := entry
	updated.BillingStatus = "transferred"

	m.entryRepo.EXPECT().GetTimeEntry(gomock.Any(), int64(6)).Return(entry, nil)
	m.expectExecute(orders.OrderTracking{OrderID: 33, Version: 2})
	m.entryRepo.EXPECT().GetTimeEntry(gomock.Any(), int64(6)).Return(entry, nil)
	m.entryRepo.EXPECT().UpdateBillingStatus(gomock.Any(), gomock.Any()).Return(updated, nil)
	m.entryRepo.EXPECT().CountOpenAdditionalEntries(gomock.Any(), int64(33)).Return(int64(2), nil)

	_, err := b.TransitionBillingStatus(context.Background(), 6, model.BillingStatusTransferred, "tr_1")

	require.NoError(t, err)
}
