package model

import (
	"time"
)

// OrderTracking is the time-tracking sub-structure of an order. The order
// itself is owned by order management; the settlement engine only reads and
// updates this projection. Version backs the compare-and-swap guard on every
// ledger mutation.
type OrderTracking struct {
	OrderID           int64          `json:"order_id"`
	CustomerID        string         `json:"customer_id"`
	ProviderID        string         `json:"provider_id"`
	ProviderAccountID string         `json:"provider_account_id"`
	PlannedHours      float64        `json:"planned_hours"`
	HourlyRateCents   int64          `json:"hourly_rate_cents"`
	Status            TrackingStatus `json:"status"`
	Version           int64          `json:"version"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

type TrackingStatus string

const (
	TrackingStatusActive TrackingStatus = "active"
	// TrackingStatusCompleted is set once every additional entry has been
	// transferred or paid out.
	TrackingStatusCompleted TrackingStatus = "completed"
)
