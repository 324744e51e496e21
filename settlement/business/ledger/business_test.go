package ledger

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"encore.app/settlement/domain"
	"encore.app/settlement/mocks/domain/state_machine"
	"encore.app/settlement/mocks/repository/approval_repo"
	"encore.app/settlement/mocks/repository/order_repo"
	"encore.app/settlement/mocks/repository/timeentry_repo"
	"encore.app/settlement/repository/orders"
)

type testMocks struct {
	orderRepo    *order_repo.MockQuerier
	entryRepo    *timeentry_repo.MockQuerier
	approvalRepo *approval_repo.MockQuerier
	stateMachine *state_machine.MockStateMachine
}

func newTestBusiness(t *testing.T) (*business, *testMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &testMocks{
		orderRepo:    order_repo.NewMockQuerier(ctrl),
		entryRepo:    timeentry_repo.NewMockQuerier(ctrl),
		approvalRepo: approval_repo.NewMockQuerier(ctrl),
		stateMachine: state_machine.NewMockStateMachine(ctrl),
	}

	b := &business{
		orderRepo:    m.orderRepo,
		entryRepo:    m.entryRepo,
		approvalRepo: m.approvalRepo,
		stateMachine: m.stateMachine,
	}

	return b, m
}

// expectExecute wires ExecuteWithVersion to run the mutation against the same
// mocks, mimicking a transaction whose version check passes.
func (m *testMocks) expectExecute(tracking orders.OrderTracking) *gomock.Call {
	return m.stateMachine.EXPECT().
		ExecuteWithVersion(gomock.Any(), tracking.OrderID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, orderID int64, fn func(orders.OrderTracking, domain.TxRepos) error) error {
			return fn(tracking, domain.TxRepos{
				Orders:      m.orderRepo,
				TimeEntries: m.entryRepo,
				Approvals:   m.approvalRepo,
			})
		})
}
