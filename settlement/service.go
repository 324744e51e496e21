package settlement

import (
	"context"
	"fmt"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/worker"

	"encore.app/settlement/business/approval"
	"encore.app/settlement/business/balance"
	"encore.app/settlement/business/ledger"
	"encore.app/settlement/business/reconciler"
	"encore.app/settlement/domain"
	"encore.app/settlement/gateway"
	"encore.app/settlement/repository/approvals"
	"encore.app/settlement/repository/orders"
	"encore.app/settlement/repository/timeentries"
	"encore.app/settlement/workflow"
)

var settlementDB = sqldb.NewDatabase("settlement", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

var secrets struct {
	StripeSecretKey string
}

var validate = validator.New()

const (
	taskQueue = "settlement"

	// sweepCronWorkflowID pins the scheduled reconciliation sweep to a single
	// workflow execution across service restarts.
	sweepCronWorkflowID = "settlement-sweep-cron"
	sweepCronSchedule   = "*/5 * * * *"
)

//encore:service
type Service struct {
	ledger     ledger.Business
	approval   approval.Business
	reconciler reconciler.Business
	balance    balance.Business

	temporal client.Client
	worker   worker.Worker
}

func initService() (*Service, error) {
	pool := sqldb.Driver[*pgxpool.Pool](settlementDB)

	orderRepo := orders.New(pool)
	entryRepo := timeentries.New(pool)
	approvalRepo := approvals.New(pool)
	stateMachine := domain.NewTrackingStateMachine(pool, orderRepo, entryRepo, approvalRepo)

	gw := gateway.WithRetry(gateway.NewStripeGateway(secrets.StripeSecretKey), gateway.RetryConfig{})

	ledgerBusiness := ledger.NewLedgerBusiness(orderRepo, entryRepo, approvalRepo, stateMachine)
	approvalBusiness := approval.NewApprovalBusiness(ledgerBusiness, gw)
	reconcilerBusiness := reconciler.NewReconcilerBusiness(ledgerBusiness, gw)
	balanceBusiness := balance.NewBalanceBusiness(ledgerBusiness, gw)

	workflow.SetActivityDependencies(reconcilerBusiness)

	temporalClient, err := client.Dial(client.Options{})
	if err != nil {
		return nil, fmt.Errorf("dial temporal: %w", err)
	}

	w := worker.New(temporalClient, taskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.OrderSettlement)
	w.RegisterWorkflow(workflow.ReconciliationSweep)
	w.RegisterActivity(workflow.SweepOrderActivity)
	w.RegisterActivity(workflow.SweepAllActivity)

	if err := w.Start(); err != nil {
		temporalClient.Close()
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}

	s := &Service{
		ledger:     ledgerBusiness,
		approval:   approvalBusiness,
		reconciler: reconcilerBusiness,
		balance:    balanceBusiness,
		temporal:   temporalClient,
		worker:     w,
	}

	if err := s.startSweepCron(context.Background()); err != nil {
		rlog.Error("failed to start scheduled sweep workflow", "error", err)
	}

	return s, nil
}

func (s *Service) Shutdown(force context.Context) {
	s.worker.Stop()
	s.temporal.Close()
}

// startSweepCron launches the cron workflow that runs a full reconciliation
// pass every five minutes. AlreadyStarted means a previous instance of the
// service already launched it.
func (s *Service) startSweepCron(ctx context.Context) error {
	options := client.StartWorkflowOptions{
		ID:           sweepCronWorkflowID,
		TaskQueue:    taskQueue,
		CronSchedule: sweepCronSchedule,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.ReconciliationSweep)
	if err != nil {
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("scheduled sweep workflow already running", "workflow_id", sweepCronWorkflowID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", sweepCronWorkflowID, err)
	}
	return nil
}
