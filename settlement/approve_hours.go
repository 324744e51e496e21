package settlement

import (
	"context"
	"fmt"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"encore.app/settlement/business/approval"
	"encore.app/settlement/model"
	"encore.app/settlement/workflow"
)

type ApproveHoursRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	EntryIDs   []int64 `json:"entry_ids" validate:"required,min=1,dive,min=1"`
	ApprovedBy string  `json:"approved_by" validate:"required,max=100"`
}

type ApprovalResponse struct {
	Approval model.ApprovalRequest `json:"approval"`
}

// ApproveHours approves a batch of logged entries on behalf of the order's
// customer. Batches containing additional hours authorize payment before any
// entry changes status.
//
//encore:api public path=/v1/orders/:id/approve-hours method=POST tag:idempotency
func (s *Service) ApproveHours(ctx context.Context, id int64, req *ApproveHoursRequest) (*ApprovalResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid order ID"}
	}

	result, err := s.approval.ApproveHours(ctx, approval.ApproveHoursParams{
		OrderID:  id,
		EntryIDs: req.EntryIDs,
		Actor:    req.ApprovedBy,
	})
	if err != nil {
		rlog.Error("failed to approve hours", "error", err, "order_id", id)
		return nil, err
	}

	// Entries in pending_payment are now the settlement workflow's problem;
	// kick it off (or nudge a running one) without blocking the response.
	if result.ResultStatus == model.ApprovalResultPaymentRequired {
		runAsync("start-settlement-workflow", func(ctx context.Context) error {
			return s.startSettlementWorkflow(ctx, id)
		})
	}

	return &ApprovalResponse{
		Approval: *result,
	}, nil
}

// Validate implements validation for ApproveHoursRequest
func (r *ApproveHoursRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}

// startSettlementWorkflow starts the per-order settlement workflow. If one is
// already running for this order it gets a sweep trigger instead, so a second
// approval on the same order still settles promptly.
func (s *Service) startSettlementWorkflow(ctx context.Context, orderID int64) error {
	workflowID := fmt.Sprintf("settlement-order-%d", orderID)

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: taskQueue,
	}

	params := workflow.OrderSettlementParams{
		OrderID: orderID,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.OrderSettlement, params)
	if err != nil {
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("settlement workflow already running, signaling sweep", "order_id", orderID, "workflow_id", workflowID)
			signal := workflow.TriggerSweepSignal{Reason: "new approval"}
			return s.temporal.SignalWorkflow(ctx, workflowID, "", workflow.TriggerSweepSignalName, signal)
		}
		return fmt.Errorf("execute workflow %s: %w", workflowID, err)
	}
	return nil
}
