package reconciler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/settlement/gateway"
	mock_ledger "encore.app/settlement/mocks/business/ledger_business"
	mock_gateway "encore.app/settlement/mocks/gateway/payment_gateway"
	"encore.app/settlement/model"
)

func newTestBusiness(t *testing.T) (*business, *mock_ledger.MockBusiness, *mock_gateway.MockPaymentGateway) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockLedger := mock_ledger.NewMockBusiness(ctrl)
	mockGateway := mock_gateway.NewMockPaymentGateway(ctrl)

	return &business{
		ledger:         mockLedger,
		gateway:        mockGateway,
		driftThreshold: 72 * time.Hour,
	}, mockLedger, mockGateway
}

func strPtr(s string) *string { return &s }

func sweepTracking(orderID int64) *model.OrderTracking {
	return &model.OrderTracking{
		OrderID:           orderID,
		CustomerID:        "cust_1",
		ProviderID:        "prov_1",
		ProviderAccountID: "acct_1",
		Status:            model.TrackingStatusActive,
		Version:           1,
	}
}

// A captured authorization moves the entry to platform_held and, with balance
// available, onward to transferred within the same sweep. The transfer is not
// polled until the next sweep.
func TestSweepOrder_ProgressesHeldAndTransferred(t *testing.T) {
	b, mockLedger, mockGateway := newTestBusiness(t)

	pending := model.TimeEntry{
		ID: 1, OrderID: 70, Category: model.CategoryAdditional,
		BillableAmountCents: 10000,
		EntryStatus:         model.EntryStatusApproved,
		BillingStatus:       model.BillingStatusPendingPayment,
		PaymentIntentRef:    strPtr("pi_1"),
	}
	heldAt := time.Now()
	held := pending
	held.BillingStatus = model.BillingStatusPlatformHeld
	held.HeldAt = &heldAt
	transferred := held
	transferred.BillingStatus = model.BillingStatusTransferred
	transferred.TransferRef = strPtr("tr_1")

	mockLedger.EXPECT().GetOrderTracking(gomock.Any(), int64(70)).Return(sweepTracking(70), nil)

	gomock.InOrder(
		mockLedger.EXPECT().ListEntries(gomock.Any(), int64(70)).Return([]model.TimeEntry{pending}, nil),
		mockLedger.EXPECT().ListEntries(gomock.Any(), int64(70)).Return([]model.TimeEntry{held}, nil),
		mockLedger.EXPECT().ListEntries(gomock.Any(), int64(70)).Return([]model.TimeEntry{transferred}, nil),
	)

	mockGateway.EXPECT().GetAuthorization(gomock.Any(), "pi_1").
		Return(&gateway.Authorization{ID: "pi_1", Status: gateway.AuthorizationSucceeded}, nil)
	mockLedger.EXPECT().
		TransitionBillingStatus(gomock.Any(), int64(1), model.BillingStatusPlatformHeld, "pi_1").
		Return(&held, nil)

	mockGateway.EXPECT().GetBalance(gomock.Any(), "acct_1").
		Return(&gateway.Balance{AvailableCents: 50000}, nil)
	mockGateway.EXPECT().
		Transfer(gomock.Any(), gateway.TransferParams{
			ProviderAccountID: "acct_1",
			AmountCents:       10000,
			OrderID:           70,
			IdempotencyKey:    gateway.TransferIdempotencyKey(70, "pi_1"),
		}).
		Return(&gateway.FundTransfer{ID: "tr_1", Status: gateway.TransferPending}, nil)
	mockLedger.EXPECT().
		TransitionBillingStatus(gomock.Any(), int64(1), model.BillingStatusTransferred, "tr_1").
		Return(&transferred, nil)

	report, err := b.SweepOrder(context.Background(), 70)

	require.NoError(t, err)
	assert.Equal(t, 1, report.MovedToHeld)
	assert.Equal(t, 1, report.Transferred)
	assert.Equal(t, 0, report.Paid)
	assert.Equal(t, 1, report.OpenEntries)
	assert.Equal(t, 2, report.AdapterReads)
	assert.Equal(t, 1, report.AdapterWrites)
	assert.Empty(t, report.ManualReview)
}

func TestSweepOrder_ConfirmsPaidTransfer(t *testing.T) {
	b, mockLedger, mockGateway := newTestBusiness(t)

	transferred := model.TimeEntry{
		ID: 2, OrderID: 71, Category: model.CategoryAdditional,
		BillableAmountCents: 10000,
		EntryStatus:         model.EntryStatusApproved,
		BillingStatus:       model.BillingStatusTransferred,
		PaymentIntentRef:    strPtr("pi_1"),
		TransferRef:         strPtr("tr_1"),
	}
	paid := transferred
	paid.BillingStatus = model.BillingStatusPaid

	mockLedger.EXPECT().GetOrderTracking(gomock.Any(), int64(71)).Return(sweepTracking(71), nil)
	gomock.InOrder(
		mockLedger.EXPECT().ListEntries(gomock.Any(), int64(71)).Return([]model.TimeEntry{transferred}, nil),
		mockLedger.EXPECT().ListEntries(gomock.Any(), int64(71)).Return([]model.TimeEntry{transferred}, nil),
		mockLedger.EXPECT().ListEntries(gomock.Any(), int64(71)).Return([]model.TimeEntry{paid}, nil),
	)

	mockGateway.EXPECT().GetTransferStatus(gomock.Any(), "tr_1").
		Return(&gateway.FundTransfer{ID: "tr_1", Status: gateway.TransferPaid}, nil)
	mockLedger.EXPECT().
		TransitionBillingStatus(gomock.Any(), int64(2), model.BillingStatusPaid, "tr_1").
		Return(&paid, nil)

	report, err := b.SweepOrder(context.Background(), 71)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Paid)
	assert.Equal(t, 0, report.OpenEntries)
	assert.Equal(t, 0, report.AdapterWrites)
}

// Held entries the balance cannot cover stay held. Past the drift threshold
// they are reported; fresher ones are just left for the next sweep.
func TestSweepOrder_InsufficientBalanceReportsDrift(t *testing.T) {
	b, mockLedger, mockGateway := newTestBusiness(t)

	staleHeld := time.Now().Add(-100 * time.Hour)
	freshHeld := time.Now().Add(-time.Hour)
	stale := model.TimeEntry{
		ID: 3, OrderID: 72, Category: model.CategoryAdditional,
		BillableAmountCents: 40000,
		EntryStatus:         model.EntryStatusApproved,
		BillingStatus:       model.BillingStatusPlatformHeld,
		PaymentIntentRef:    strPtr("pi_1"),
		HeldAt:              &staleHeld,
	}
	fresh := stale
	fresh.ID = 4
	fresh.HeldAt = &freshHeld

	mockLedger.EXPECT().GetOrderTracking(gomock.Any(), int64(72)).Return(sweepTracking(72), nil)
	mockLedger.EXPECT().ListEntries(gomock.Any(), int64(72)).
		Return([]model.TimeEntry{stale, fresh}, nil).Times(3)

	mockGateway.EXPECT().GetBalance(gomock.Any(), "acct_1").
		Return(&gateway.Balance{AvailableCents: 5000}, nil)

	report, err := b.SweepOrder(context.Background(), 72)

	require.NoError(t, err)
	assert.Equal(t, 0, report.Transferred)
	assert.Equal(t, 0, report.AdapterWrites)
	require.Len(t, report.Drift, 1)
	assert.Equal(t, int64(3), report.Drift[0].EntryID)
	assert.Equal(t, int64(80000), report.Drift[0].RequiredCents)
	assert.Equal(t, int64(5000), report.Drift[0].AvailableCents)
	assert.Equal(t, 2, report.OpenEntries)
}

// With only unbilled and terminal entries a sweep performs no adapter calls at
// all; repeating it is free.
func TestSweepOrder_QuiescentOrderTouchesNothing(t *testing.T) {
	b, mockLedger, _ := newTestBusiness(t)

	entries := []model.TimeEntry{
		{ID: 5, OrderID: 73, BillingStatus: model.BillingStatusUnbilled, EntryStatus: model.EntryStatusLogged},
		{ID: 6, OrderID: 73, BillingStatus: model.BillingStatusPaid, EntryStatus: model.EntryStatusApproved},
		{ID: 7, OrderID: 73, BillingStatus: model.BillingStatusFailed, EntryStatus: model.EntryStatusApproved},
	}

	mockLedger.EXPECT().GetOrderTracking(gomock.Any(), int64(73)).Return(sweepTracking(73), nil)
	mockLedger.EXPECT().ListEntries(gomock.Any(), int64(73)).Return(entries, nil).Times(3)

	report, err := b.SweepOrder(context.Background(), 73)

	require.NoError(t, err)
	assert.Equal(t, 0, report.AdapterReads)
	assert.Equal(t, 0, report.AdapterWrites)
	assert.Equal(t, 0, report.OpenEntries)
}

func TestSweepOrder_FailedTransferFlagsManualReview(t *testing.T) {
	b, mockLedger, mockGateway := newTestBusiness(t)

	transferred := model.TimeEntry{
		ID: 8, OrderID: 74, Category: model.CategoryAdditional,
		BillableAmountCents: 10000,
		EntryStatus:         model.EntryStatusApproved,
		BillingStatus:       model.BillingStatusTransferred,
		TransferRef:         strPtr("tr_9"),
	}
	failed := transferred
	failed.BillingStatus = model.BillingStatusFailed

	mockLedger.EXPECT().GetOrderTracking(gomock.Any(), int64(74)).Return(sweepTracking(74), nil)
	gomock.InOrder(
		mockLedger.EXPECT().ListEntries(gomock.Any(), int64(74)).Return([]model.TimeEntry{transferred}, nil),
		mockLedger.EXPECT().ListEntries(gomock.Any(), int64(74)).Return([]model.TimeEntry{transferred}, nil),
		mockLedger.EXPECT().ListEntries(gomock.Any(), int64(74)).Return([]model.TimeEntry{failed}, nil),
	)

	mockGateway.EXPECT().GetTransferStatus(gomock.Any(), "tr_9").
		Return(&gateway.FundTransfer{ID: "tr_9", Status: gateway.TransferFailed}, nil)
	mockLedger.EXPECT().
		TransitionBillingStatus(gomock.Any(), int64(8), model.BillingStatusFailed, "tr_9").
		Return(&failed, nil)

	report, err := b.SweepOrder(context.Background(), 74)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, []int64{8}, report.ManualReview)
	assert.Equal(t, 0, report.OpenEntries)
}

// The balance read is optimistic; the processor may still refuse the
// transfer. The group stays held and is reported as drift, and the next sweep
// retries the transfer under the same idempotency key.
func TestSweepOrder_TransferRefusedThenSucceeds(t *testing.T) {
	b, mockLedger, mockGateway := newTestBusiness(t)

	heldAt := time.Now().Add(-100 * time.Hour)
	held := model.TimeEntry{
		ID: 11, OrderID: 76, Category: model.CategoryAdditional,
		BillableAmountCents: 10000,
		EntryStatus:         model.EntryStatusApproved,
		BillingStatus:       model.BillingStatusPlatformHeld,
		PaymentIntentRef:    strPtr("pi_1"),
		HeldAt:              &heldAt,
	}
	transferred := held
	transferred.BillingStatus = model.BillingStatusTransferred
	transferred.TransferRef = strPtr("tr_1")

	mockLedger.EXPECT().GetOrderTracking(gomock.Any(), int64(76)).Return(sweepTracking(76), nil).Times(2)

	gomock.InOrder(
		// First sweep: the entry never leaves platform_held.
		mockLedger.EXPECT().ListEntries(gomock.Any(), int64(76)).Return([]model.TimeEntry{held}, nil),
		mockLedger.EXPECT().ListEntries(gomock.Any(), int64(76)).Return([]model.TimeEntry{held}, nil),
		mockLedger.EXPECT().ListEntries(gomock.Any(), int64(76)).Return([]model.TimeEntry{held}, nil),
		// Second sweep: the retried transfer lands.
		mockLedger.EXPECT().ListEntries(gomock.Any(), int64(76)).Return([]model.TimeEntry{held}, nil),
		mockLedger.EXPECT().ListEntries(gomock.Any(), int64(76)).Return([]model.TimeEntry{held}, nil),
		mockLedger.EXPECT().ListEntries(gomock.Any(), int64(76)).Return([]model.TimeEntry{transferred}, nil),
	)

	mockGateway.EXPECT().GetBalance(gomock.Any(), "acct_1").
		Return(&gateway.Balance{AvailableCents: 50000}, nil).
		Times(2)

	transferParams := gateway.TransferParams{
		ProviderAccountID: "acct_1",
		AmountCents:       10000,
		OrderID:           76,
		IdempotencyKey:    gateway.TransferIdempotencyKey(76, "pi_1"),
	}
	gomock.InOrder(
		mockGateway.EXPECT().Transfer(gomock.Any(), transferParams).
			Return(nil, gateway.ErrInsufficientBalance("acct_1")),
		mockGateway.EXPECT().Transfer(gomock.Any(), transferParams).
			Return(&gateway.FundTransfer{ID: "tr_1", Status: gateway.TransferPending}, nil),
	)

	mockLedger.EXPECT().
		TransitionBillingStatus(gomock.Any(), int64(11), model.BillingStatusTransferred, "tr_1").
		Return(&transferred, nil)

	first, err := b.SweepOrder(context.Background(), 76)
	require.NoError(t, err)
	assert.Equal(t, 0, first.Transferred)
	require.Len(t, first.Drift, 1)
	assert.Equal(t, int64(11), first.Drift[0].EntryID)
	assert.Equal(t, 1, first.OpenEntries)

	second, err := b.SweepOrder(context.Background(), 76)
	require.NoError(t, err)
	assert.Equal(t, 1, second.Transferred)
	assert.Empty(t, second.Drift)
	assert.Equal(t, 1, second.OpenEntries)
}

func TestSweepOrder_RetriesAbortedTransition(t *testing.T) {
	b, mockLedger, mockGateway := newTestBusiness(t)

	pending := model.TimeEntry{
		ID: 9, OrderID: 75, Category: model.CategoryAdditional,
		BillableAmountCents: 10000,
		EntryStatus:         model.EntryStatusApproved,
		BillingStatus:       model.BillingStatusPendingPayment,
		PaymentIntentRef:    strPtr("pi_1"),
	}
	held := pending
	held.BillingStatus = model.BillingStatusPlatformHeld

	mockLedger.EXPECT().GetOrderTracking(gomock.Any(), int64(75)).Return(sweepTracking(75), nil)
	gomock.InOrder(
		mockLedger.EXPECT().ListEntries(gomock.Any(), int64(75)).Return([]model.TimeEntry{pending}, nil),
		mockLedger.EXPECT().ListEntries(gomock.Any(), int64(75)).Return([]model.TimeEntry{}, nil),
		mockLedger.EXPECT().ListEntries(gomock.Any(), int64(75)).Return([]model.TimeEntry{held}, nil),
	)

	mockGateway.EXPECT().GetAuthorization(gomock.Any(), "pi_1").
		Return(&gateway.Authorization{ID: "pi_1", Status: gateway.AuthorizationSucceeded}, nil)

	gomock.InOrder(
		mockLedger.EXPECT().
			TransitionBillingStatus(gomock.Any(), int64(9), model.BillingStatusPlatformHeld, "pi_1").
			Return(nil, &errs.Error{Code: errs.Aborted, Message: "order tracking was modified concurrently"}),
		mockLedger.EXPECT().
			TransitionBillingStatus(gomock.Any(), int64(9), model.BillingStatusPlatformHeld, "pi_1").
			Return(&held, nil),
	)

	report, err := b.SweepOrder(context.Background(), 75)

	require.NoError(t, err)
	assert.Equal(t, 1, report.MovedToHeld)
}

// One stuck order must not stall the rest of the sweep.
func TestSweepAll_ContinuesPastOrderFailure(t *testing.T) {
	b, mockLedger, _ := newTestBusiness(t)

	mockLedger.EXPECT().ListOrdersWithOpenEntries(gomock.Any()).Return([]int64{80, 81}, nil)

	mockLedger.EXPECT().GetOrderTracking(gomock.Any(), int64(80)).
		Return(nil, &errs.Error{Code: errs.Internal, Message: "failed to read order tracking"})

	mockLedger.EXPECT().GetOrderTracking(gomock.Any(), int64(81)).Return(sweepTracking(81), nil)
	mockLedger.EXPECT().ListEntries(gomock.Any(), int64(81)).
		Return([]model.TimeEntry{{ID: 10, OrderID: 81, BillingStatus: model.BillingStatusPaid}}, nil).
		Times(3)

	report, err := b.SweepAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, report.OpenEntries)
}
