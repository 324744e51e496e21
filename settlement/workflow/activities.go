package workflow

import (
	"context"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.app/settlement/business/reconciler"
	"encore.app/settlement/model"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	Reconciler reconciler.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(rec reconciler.Business) {
	activityDeps = &ActivityDependencies{
		Reconciler: rec,
	}
}

// SweepOrderActivity reconciles a single order's in-flight entries.
func SweepOrderActivity(ctx context.Context, orderID int64) (*model.SweepReport, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing order sweep activity", "orderID", orderID)

	if activityDeps == nil || activityDeps.Reconciler == nil {
		logger.Error("Activity dependencies not set")
		return nil, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	report, err := activityDeps.Reconciler.SweepOrder(ctx, orderID)
	if err != nil {
		logger.Error("Failed to sweep order", "orderID", orderID, "error", err)
		return nil, err
	}

	logger.Info("Order sweep completed", "orderID", orderID,
		"open", report.OpenEntries, "transferred", report.Transferred, "paid", report.Paid)
	return report, nil
}

// SweepAllActivity runs a full reconciliation pass; used by the cron workflow.
func SweepAllActivity(ctx context.Context) (*model.SweepReport, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing full sweep activity")

	if activityDeps == nil || activityDeps.Reconciler == nil {
		logger.Error("Activity dependencies not set")
		return nil, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	report, err := activityDeps.Reconciler.SweepAll(ctx)
	if err != nil {
		logger.Error("Failed to run full sweep", "error", err)
		return nil, err
	}

	logger.Info("Full sweep completed",
		"examined", report.Examined, "open", report.OpenEntries,
		"drift", len(report.Drift), "manual_review", len(report.ManualReview))
	return report, nil
}
