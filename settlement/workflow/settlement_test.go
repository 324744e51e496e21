package workflow

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/testsuite"
	"go.uber.org/mock/gomock"

	recmock "encore.app/settlement/mocks/business/reconciler_business"
	"encore.app/settlement/model"
)

func newWorkflowEnv(t *testing.T) (*testsuite.TestWorkflowEnvironment, *recmock.MockBusiness) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRec := recmock.NewMockBusiness(ctrl)
	SetActivityDependencies(mockRec)
	t.Cleanup(func() { SetActivityDependencies(nil) })

	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterActivity(SweepOrderActivity)
	env.RegisterActivity(SweepAllActivity)

	return env, mockRec
}

func TestOrderSettlement_CompletesWhenNothingOpen(t *testing.T) {
	env, mockRec := newWorkflowEnv(t)

	mockRec.EXPECT().SweepOrder(gomock.Any(), int64(100)).
		Return(&model.SweepReport{Paid: 2, OpenEntries: 0}, nil).
		Times(1)

	env.ExecuteWorkflow(OrderSettlement, OrderSettlementParams{OrderID: 100})
	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}

func TestOrderSettlement_PollsUntilSettled(t *testing.T) {
	env, mockRec := newWorkflowEnv(t)

	gomock.InOrder(
		mockRec.EXPECT().SweepOrder(gomock.Any(), int64(101)).
			Return(&model.SweepReport{Transferred: 1, OpenEntries: 1}, nil),
		mockRec.EXPECT().SweepOrder(gomock.Any(), int64(101)).
			Return(&model.SweepReport{Transferred: 1, OpenEntries: 1}, nil),
		mockRec.EXPECT().SweepOrder(gomock.Any(), int64(101)).
			Return(&model.SweepReport{Paid: 1, OpenEntries: 0}, nil),
	)

	env.ExecuteWorkflow(OrderSettlement, OrderSettlementParams{OrderID: 101})
	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}

func TestOrderSettlement_TriggerSignalForcesEarlySweep(t *testing.T) {
	env, mockRec := newWorkflowEnv(t)

	gomock.InOrder(
		mockRec.EXPECT().SweepOrder(gomock.Any(), int64(102)).
			Return(&model.SweepReport{OpenEntries: 1}, nil),
		mockRec.EXPECT().SweepOrder(gomock.Any(), int64(102)).
			Return(&model.SweepReport{Paid: 1, OpenEntries: 0}, nil),
	)

	// Fires well before the poll interval elapses.
	env.RegisterDelayedCallback(func() {
		env.SignalWorkflow(TriggerSweepSignalName, TriggerSweepSignal{Reason: "new approval"})
	}, 10*time.Second)

	env.ExecuteWorkflow(OrderSettlement, OrderSettlementParams{OrderID: 102})
	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}

func TestOrderSettlement_PropagatesSweepFailure(t *testing.T) {
	env, mockRec := newWorkflowEnv(t)

	mockRec.EXPECT().SweepOrder(gomock.Any(), int64(103)).
		Return(nil, errors.New("order tracking unavailable")).
		AnyTimes()

	env.ExecuteWorkflow(OrderSettlement, OrderSettlementParams{OrderID: 103})
	require.True(t, env.IsWorkflowCompleted())
	err := env.GetWorkflowError()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "order tracking unavailable")
}

func TestReconciliationSweep_RunsFullPass(t *testing.T) {
	env, mockRec := newWorkflowEnv(t)

	mockRec.EXPECT().SweepAll(gomock.Any()).
		Return(&model.SweepReport{Examined: 4, Paid: 2, OpenEntries: 2}, nil).
		Times(1)

	env.ExecuteWorkflow(ReconciliationSweep)
	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}

func TestActivities_DependenciesNotSet(t *testing.T) {
	SetActivityDependencies(nil)

	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestActivityEnvironment()
	env.RegisterActivity(SweepOrderActivity)
	env.RegisterActivity(SweepAllActivity)

	fut, err := env.ExecuteActivity(SweepOrderActivity, int64(1))
	if err == nil {
		var out interface{}
		err = fut.Get(&out)
	}
	require.Error(t, err)
	assert.Contains(t, err.Error(), "activity dependencies not initialized")

	fut, err = env.ExecuteActivity(SweepAllActivity)
	if err == nil {
		var out interface{}
		err = fut.Get(&out)
	}
	require.Error(t, err)
	assert.Contains(t, err.Error(), "activity dependencies not initialized")
}

func TestActivities_FailurePaths(t *testing.T) {
	testErr := errors.New("boom")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRec := recmock.NewMockBusiness(ctrl)
	SetActivityDependencies(mockRec)
	t.Cleanup(func() { SetActivityDependencies(nil) })

	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestActivityEnvironment()
	env.RegisterActivity(SweepOrderActivity)
	env.RegisterActivity(SweepAllActivity)

	mockRec.EXPECT().SweepOrder(gomock.Any(), int64(1)).Return(nil, testErr).Times(1)
	fut, err := env.ExecuteActivity(SweepOrderActivity, int64(1))
	if err == nil {
		var out interface{}
		err = fut.Get(&out)
	}
	require.Error(t, err)
	assert.Contains(t, err.Error(), testErr.Error())

	mockRec.EXPECT().SweepAll(gomock.Any()).Return(nil, testErr).Times(1)
	fut, err = env.ExecuteActivity(SweepAllActivity)
	if err == nil {
		var out interface{}
		err = fut.Get(&out)
	}
	require.Error(t, err)
	assert.Contains(t, err.Error(), testErr.Error())
}
