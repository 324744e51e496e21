package approvals

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Querier interface {
	CreateApproval(ctx context.Context, arg CreateApprovalParams) (Approval, error)
	ListApprovalsByOrder(ctx context.Context, orderID int64) ([]Approval, error)
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

// Approval rows are write-once audit records; there is deliberately no update
// statement in this package.
type Approval struct {
	ID                 int64
	OrderID            int64
	ApprovedBy         string
	TimeEntryIds       []int64
	TotalHoursApproved float64
	TotalAmountCents   int64
	PaymentIntentRef   pgtype.Text
	ResultStatus       string
	FailureReason      pgtype.Text
	CreatedAt          pgtype.Timestamptz
}

const createApproval = `
INSERT INTO approval_requests (
    order_id, approved_by, time_entry_ids, total_hours_approved,
    total_amount_cents, payment_intent_ref, result_status, failure_reason
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, order_id, approved_by, time_entry_ids, total_hours_approved,
          total_amount_cents, payment_intent_ref, result_status, failure_reason, created_at
`

type CreateApprovalParams struct {
	OrderID            int64
	ApprovedBy         string
	TimeEntryIds       []int64
	TotalHoursApproved float64
	TotalAmountCents   int64
	PaymentIntentRef   pgtype.Text
	ResultStatus       string
	FailureReason      pgtype.Text
}

func (q *Queries) CreateApproval(ctx context.Context, arg CreateApprovalParams) (Approval, error) {
	row := q.db.QueryRow(ctx, createApproval,
		arg.OrderID, arg.ApprovedBy, arg.TimeEntryIds, arg.TotalHoursApproved,
		arg.TotalAmountCents, arg.PaymentIntentRef, arg.ResultStatus, arg.FailureReason,
	)
	return scanApproval(row)
}

const listApprovalsByOrder = `
SELECT id, order_id, approved_by, time_entry_ids, total_hours_approved,
       total_amount_cents, payment_intent_ref, result_status, failure_reason, created_at
FROM approval_requests
WHERE order_id = $1
ORDER BY id DESC
`

func (q *Queries) ListApprovalsByOrder(ctx context.Context, orderID int64) ([]Approval, error) {
	rows, err := q.db.Query(ctx, listApprovalsByOrder, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var approvals []Approval
	for rows.Next() {
		var a Approval
		if err := rows.Scan(
			&a.ID, &a.OrderID, &a.ApprovedBy, &a.TimeEntryIds,
			&a.TotalHoursApproved, &a.TotalAmountCents, &a.PaymentIntentRef,
			&a.ResultStatus, &a.FailureReason, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		approvals = append(approvals, a)
	}
	return approvals, rows.Err()
}

func scanApproval(row pgx.Row) (Approval, error) {
	var a Approval
	err := row.Scan(
		&a.ID, &a.OrderID, &a.ApprovedBy, &a.TimeEntryIds,
		&a.TotalHoursApproved, &a.TotalAmountCents, &a.PaymentIntentRef,
		&a.ResultStatus, &a.FailureReason, &a.CreatedAt,
	)
	return a, err
}
