// Package records defines the read-only transaction entities consumed by the daily
// reconciliation and the repository contracts for fetching them from the remote store.
// Entities are immutable snapshots once fetched; nothing in this package mutates them.
package records

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleStatus is the lifecycle status stamped by the point-of-sale process.
type SaleStatus string

const (
	SaleStatusCompleted  SaleStatus = "COMPLETED"
	SaleStatusAuthorized SaleStatus = "AUTHORIZED"
	SaleStatusPending    SaleStatus = "PENDING"
	SaleStatusRejected   SaleStatus = "REJECTED"
	SaleStatusCancelled  SaleStatus = "CANCELLED"
)

// RevenueStatuses are the sale statuses that count toward revenue recognition.
// Pending, rejected and cancelled sales are excluded from the daily summary.
var RevenueStatuses = []SaleStatus{SaleStatusCompleted, SaleStatusAuthorized}

// Sale is a point-of-sale transaction. Whether it was sold on credit is not a field
// of the sale itself; it is derived from the day's credit grants (see CreditGrant).
type Sale struct {
	ID       uuid.UUID       `json:"id"`
	SoldAt   time.Time       `json:"sold_at"`
	Total    decimal.Decimal `json:"total"`
	Profit   decimal.Decimal `json:"profit"`
	Status   SaleStatus      `json:"status"`
	Receipt  string          `json:"receipt,omitempty"`
	SoldByID string          `json:"sold_by_id,omitempty"`
}
