package timeentries

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
	CreateTimeEntry(ctx context.Context, arg CreateTimeEntryParams) (TimeEntry, error)
	GetTimeEntry(ctx context.Context, id int64) (TimeEntry, error)
	ListTimeEntriesByOrder(ctx context.Context, orderID int64) ([]TimeEntry, error)
	ListTimeEntriesByBillingStatus(ctx context.Context, billingStatus string) ([]TimeEntry, error)
	ListOrdersWithOpenEntries(ctx context.Context) ([]int64, error)
	CountOpenAdditionalEntries(ctx context.Context, orderID int64) (int64, error)
	SumTransferredCentsByAccount(ctx context.Context, providerAccountID string) (int64, error)
	UpdateEntryStatus(ctx context.Context, arg UpdateEntryStatusParams) (TimeEntry, error)
	UpdateBillingStatus(ctx context.Context, arg UpdateBillingStatusParams) (TimeEntry, error)
	SetPaymentIntentRef(ctx context.Context, arg SetPaymentIntentRefParams) (TimeEntry, error)
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

type TimeEntry struct {
	ID                  int64
	OrderID             int64
	Category            string
	Hours               float64
	HourlyRateCents     int64
	BillableAmountCents int64
	EntryStatus         string
	BillingStatus       string
	PaymentIntentRef    pgtype.Text
	TransferRef         pgtype.Text
	EvidenceRef         pgtype.Text
	OverrideNote        pgtype.Text
	ApprovedBy          pgtype.Text
	ApprovedAt          pgtype.Timestamptz
	HeldAt              pgtype.Timestamptz
	TransferredAt       pgtype.Timestamptz
	CreatedAt           pgtype.Timestamptz
	UpdatedAt           pgtype.Timestamptz
}

const timeEntryColumns = `
    id, order_id, category, hours, hourly_rate_cents, billable_amount_cents,
    entry_status, billing_status, payment_intent_ref, transfer_ref, evidence_ref,
    override_note, approved_by, approved_at, held_at, transferred_at,
    created_at, updated_at`

const createTimeEntry = `
INSERT INTO time_entries (
    order_id, category, hours, hourly_rate_cents, billable_amount_cents,
    entry_status, billing_status
) VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING` + timeEntryColumns

type CreateTimeEntryParams struct {
	OrderID             int64
	Category            string
	Hours               float64
	HourlyRateCents     int64
	BillableAmountCents int64
	EntryStatus         string
	BillingStatus       string
}

func (q *Queries) CreateTimeEntry(ctx context.Context, arg CreateTimeEntryParams) (TimeEntry, error) {
	row := q.db.QueryRow(ctx, createTimeEntry,
		arg.OrderID, arg.Category, arg.Hours, arg.HourlyRateCents,
		arg.BillableAmountCents, arg.EntryStatus, arg.BillingStatus,
	)
	return scanTimeEntry(row)
}

const getTimeEntry = `
SELECT` + timeEntryColumns + `
FROM time_entries
WHERE id = $1
`

func (q *Queries) GetTimeEntry(ctx context.Context, id int64) (TimeEntry, error) {
	row := q.db.QueryRow(ctx, getTimeEntry, id)
	return scanTimeEntry(row)
}

const listTimeEntriesByOrder = `
SELECT` + timeEntryColumns + `
FROM time_entries
WHERE order_id = $1
ORDER BY id
`

func (q *Queries) ListTimeEntriesByOrder(ctx context.Context, orderID int64) ([]TimeEntry, error) {
	rows, err := q.db.Query(ctx, listTimeEntriesByOrder, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTimeEntries(rows)
}

const listTimeEntriesByBillingStatus = `
SELECT` + timeEntryColumns + `
FROM time_entries
WHERE billing_status = $1
ORDER BY order_id, id
`

func (q *Queries) ListTimeEntriesByBillingStatus(ctx context.Context, billingStatus string) ([]TimeEntry, error) {
	rows, err := q.db.Query(ctx, listTimeEntriesByBillingStatus, billingStatus)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTimeEntries(rows)
}

const listOrdersWithOpenEntries = `
SELECT DISTINCT order_id
FROM time_entries
WHERE billing_status IN ('pending_payment', 'platform_held', 'transferred')
ORDER BY order_id
`

func (q *Queries) ListOrdersWithOpenEntries(ctx context.Context) ([]int64, error) {
	rows, err := q.db.Query(ctx, listOrdersWithOpenEntries)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

const countOpenAdditionalEntries = `
SELECT count(*)
FROM time_entries
WHERE order_id = $1
  AND category = 'additional'
  AND entry_status <> 'rejected'
  AND billing_status NOT IN ('transferred', 'paid', 'failed')
`

// CountOpenAdditionalEntries counts additional entries that still have money
// in flight; zero means the order's tracking can be marked completed.
func (q *Queries) CountOpenAdditionalEntries(ctx context.Context, orderID int64) (int64, error) {
	var n int64
	err := q.db.QueryRow(ctx, countOpenAdditionalEntries, orderID).Scan(&n)
	return n, err
}

const sumTransferredCentsByAccount = `
SELECT COALESCE(sum(e.billable_amount_cents), 0)
FROM time_entries e
JOIN order_tracking o ON o.order_id = e.order_id
WHERE o.provider_account_id = $1
  AND e.billing_status IN ('transferred', 'paid')
`

// SumTransferredCentsByAccount totals everything already moved to the
// provider's connected account, across all of its orders.
func (q *Queries) SumTransferredCentsByAccount(ctx context.Context, providerAccountID string) (int64, error) {
	var sum int64
	err := q.db.QueryRow(ctx, sumTransferredCentsByAccount, providerAccountID).Scan(&sum)
	return sum, err
}

const updateEntryStatus = `
UPDATE time_entries
SET entry_status = $2,
    approved_by = COALESCE($3, approved_by),
    approved_at = COALESCE($4, approved_at),
    updated_at = now()
WHERE id = $1
RETURNING` + timeEntryColumns

type UpdateEntryStatusParams struct {
	ID          int64
	EntryStatus string
	ApprovedBy  pgtype.Text
	ApprovedAt  pgtype.Timestamptz
}

func (q *Queries) UpdateEntryStatus(ctx context.Context, arg UpdateEntryStatusParams) (TimeEntry, error) {
	row := q.db.QueryRow(ctx, updateEntryStatus,
		arg.ID, arg.EntryStatus, arg.ApprovedBy, arg.ApprovedAt,
	)
	return scanTimeEntry(row)
}

const updateBillingStatus = `
UPDATE time_entries
SET billing_status = $2,
    evidence_ref = $3,
    transfer_ref = COALESCE($4, transfer_ref),
    override_note = COALESCE($5, override_note),
    held_at = COALESCE($6, held_at),
    transferred_at = COALESCE($7, transferred_at),
    updated_at = now()
WHERE id = $1
RETURNING` + timeEntryColumns

type UpdateBillingStatusParams struct {
	ID            int64
	BillingStatus string
	EvidenceRef   pgtype.Text
	TransferRef   pgtype.Text
	OverrideNote  pgtype.Text
	HeldAt        pgtype.Timestamptz
	TransferredAt pgtype.Timestamptz
}

func (q *Queries) UpdateBillingStatus(ctx context.Context, arg UpdateBillingStatusParams) (TimeEntry, error) {
	row := q.db.QueryRow(ctx, updateBillingStatus,
		arg.ID, arg.BillingStatus, arg.EvidenceRef, arg.TransferRef,
		arg.OverrideNote, arg.HeldAt, arg.TransferredAt,
	)
	return scanTimeEntry(row)
}

const setPaymentIntentRef = `
UPDATE time_entries
SET payment_intent_ref = $2, updated_at = now()
WHERE id = $1 AND payment_intent_ref IS NULL
RETURNING` + timeEntryColumns

type SetPaymentIntentRefParams struct {
	ID               int64
	PaymentIntentRef string
}

// SetPaymentIntentRef sets the authorization reference exactly once; the
// WHERE clause makes a second set come back as pgx.ErrNoRows.
func (q *Queries) SetPaymentIntentRef(ctx context.Context, arg SetPaymentIntentRefParams) (TimeEntry, error) {
	row := q.db.QueryRow(ctx, setPaymentIntentRef, arg.ID, arg.PaymentIntentRef)
	return scanTimeEntry(row)
}

func scanTimeEntry(row pgx.Row) (TimeEntry, error) {
	var e TimeEntry
	err := row.Scan(
		&e.ID, &e.OrderID, &e.Category, &e.Hours, &e.HourlyRateCents,
		&e.BillableAmountCents, &e.EntryStatus, &e.BillingStatus,
		&e.PaymentIntentRef, &e.TransferRef, &e.EvidenceRef, &e.OverrideNote,
		&e.ApprovedBy, &e.ApprovedAt, &e.HeldAt, &e.TransferredAt,
		&e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func scanTimeEntries(rows pgx.Rows) ([]TimeEntry, error) {
	var entries []TimeEntry
	for rows.Next() {
		var e TimeEntry
		if err := rows.Scan(
			&e.ID, &e.OrderID, &e.Category, &e.Hours, &e.HourlyRateCents,
			&e.BillableAmountCents, &e.EntryStatus, &e.BillingStatus,
			&e.PaymentIntentRef, &e.TransferRef, &e.EvidenceRef, &e.OverrideNote,
			&e.ApprovedBy, &e.ApprovedAt, &e.HeldAt, &e.TransferredAt,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
