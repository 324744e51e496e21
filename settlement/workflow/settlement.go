package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"encore.app/settlement/model"
)

// OrderSettlementParams contains parameters for starting the settlement workflow
type OrderSettlementParams struct {
	OrderID int64 `json:"order_id"`
}

const (
	// pollInterval is how long the workflow waits between sweeps while the
	// order still has entries in flight.
	pollInterval = 5 * time.Minute

	// sweepsPerRun bounds the event history of one workflow run; past it the
	// workflow continues as new.
	sweepsPerRun = 500
)

// OrderSettlement drives one order's approved entries toward paid. It sweeps
// immediately, then keeps polling until nothing is left in flight. A sweep
// can also be forced early via the trigger signal, e.g. after another
// approval on the same order.
func OrderSettlement(ctx workflow.Context, params OrderSettlementParams) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting order settlement workflow", "orderID", params.OrderID)

	triggerCh := workflow.GetSignalChannel(ctx, TriggerSweepSignalName)

	for sweeps := 0; sweeps < sweepsPerRun; sweeps++ {
		report, err := sweepOrder(ctx, params.OrderID)
		if err != nil {
			logger.Error("Order sweep failed", "orderID", params.OrderID, "error", err)
			return err
		}

		if report.OpenEntries == 0 {
			logger.Info("Order settlement complete", "orderID", params.OrderID,
				"paid", report.Paid, "failed", report.Failed)
			return nil
		}

		logger.Info("Order still settling, waiting for next sweep",
			"orderID", params.OrderID, "open", report.OpenEntries, "drift", len(report.Drift))

		timer := workflow.NewTimer(ctx, pollInterval)
		selector := workflow.NewSelector(ctx)

		selector.AddReceive(triggerCh, func(c workflow.ReceiveChannel, more bool) {
			var signal TriggerSweepSignal
			c.Receive(ctx, &signal)
			logger.Info("Received sweep trigger", "orderID", params.OrderID, "reason", signal.Reason)
		})
		selector.AddFuture(timer, func(f workflow.Future) {})

		selector.Select(ctx)
	}

	logger.Info("Sweep limit for this run reached, continuing as new", "orderID", params.OrderID)
	return workflow.NewContinueAsNewError(ctx, OrderSettlement, params)
}

// ReconciliationSweep is the cron workflow: one full drift-repair pass across
// all orders with money in flight.
func ReconciliationSweep(ctx workflow.Context) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting scheduled reconciliation sweep")

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 10 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    30 * time.Second,
			MaximumAttempts:    3,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)

	return workflow.ExecuteActivity(activityCtx, SweepAllActivity).Get(ctx, nil)
}

// sweepOrder executes the SweepOrderActivity
func sweepOrder(ctx workflow.Context, orderID int64) (*model.SweepReport, error) {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 2 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    1 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    15 * time.Second,
			MaximumAttempts:    5,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)

	var report model.SweepReport
	err := workflow.ExecuteActivity(activityCtx, SweepOrderActivity, orderID).Get(ctx, &report)
	if err != nil {
		return nil, err
	}
	return &report, nil
}
