package orders

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Querier interface {
	UpsertOrderTracking(ctx context.Context, arg UpsertOrderTrackingParams) (OrderTracking, error)
	GetOrderTracking(ctx context.Context, orderID int64) (OrderTracking, error)
	BumpTrackingVersion(ctx context.Context, arg BumpTrackingVersionParams) (int64, error)
	UpdateTrackingStatus(ctx context.Context, arg UpdateTrackingStatusParams) error
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

// OrderTracking is the order's time-tracking row. Version is the optimistic
// concurrency token; it only ever moves through BumpTrackingVersion.
type OrderTracking struct {
	OrderID           int64
	CustomerID        string
	ProviderID        string
	ProviderAccountID string
	PlannedHours      float64
	HourlyRateCents   int64
	Status            string
	Version           int64
	CreatedAt         pgtype.Timestamptz
	UpdatedAt         pgtype.Timestamptz
}

const upsertOrderTracking = `
INSERT INTO order_tracking (
    order_id, customer_id, provider_id, provider_account_id,
    planned_hours, hourly_rate_cents, status
) VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (order_id) DO UPDATE SET
    customer_id = EXCLUDED.customer_id,
    provider_id = EXCLUDED.provider_id,
    provider_account_id = EXCLUDED.provider_account_id,
    planned_hours = EXCLUDED.planned_hours,
    hourly_rate_cents = EXCLUDED.hourly_rate_cents,
    updated_at = now()
RETURNING order_id, customer_id, provider_id, provider_account_id,
          planned_hours, hourly_rate_cents, status, version, created_at, updated_at
`

type UpsertOrderTrackingParams struct {
	OrderID           int64
	CustomerID        string
	ProviderID        string
	ProviderAccountID string
	PlannedHours      float64
	HourlyRateCents   int64
	Status            string
}

func (q *Queries) UpsertOrderTracking(ctx context.Context, arg UpsertOrderTrackingParams) (OrderTracking, error) {
	row := q.db.QueryRow(ctx, upsertOrderTracking,
		arg.OrderID, arg.CustomerID, arg.ProviderID, arg.ProviderAccountID,
		arg.PlannedHours, arg.HourlyRateCents, arg.Status,
	)
	return scanOrderTracking(row)
}

const getOrderTracking = `
SELECT order_id, customer_id, provider_id, provider_account_id,
       planned_hours, hourly_rate_cents, status, version, created_at, updated_at
FROM order_tracking
WHERE order_id = $1
`

func (q *Queries) GetOrderTracking(ctx context.Context, orderID int64) (OrderTracking, error) {
	row := q.db.QueryRow(ctx, getOrderTracking, orderID)
	return scanOrderTracking(row)
}

const bumpTrackingVersion = `
UPDATE order_tracking
SET version = version + 1, updated_at = now()
WHERE order_id = $1 AND version = $2
`

type BumpTrackingVersionParams struct {
	OrderID int64
	Version int64
}

// BumpTrackingVersion is the compare-and-swap: zero rows affected means the
// caller read a stale version.
func (q *Queries) BumpTrackingVersion(ctx context.Context, arg BumpTrackingVersionParams) (int64, error) {
	tag, err := q.db.Exec(ctx, bumpTrackingVersion, arg.OrderID, arg.Version)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const updateTrackingStatus = `
UPDATE order_tracking
SET status = $2, updated_at = now()
WHERE order_id = $1
`

type UpdateTrackingStatusParams struct {
	OrderID int64
	Status  string
}

func (q *Queries) UpdateTrackingStatus(ctx context.Context, arg UpdateTrackingStatusParams) error {
	_, err := q.db.Exec(ctx, updateTrackingStatus, arg.OrderID, arg.Status)
	return err
}

func scanOrderTracking(row pgx.Row) (OrderTracking, error) {
	var t OrderTracking
	err := row.Scan(
		&t.OrderID, &t.CustomerID, &t.ProviderID, &t.ProviderAccountID,
		&t.PlannedHours, &t.HourlyRateCents, &t.Status, &t.Version,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}
