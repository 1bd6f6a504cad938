// Package cashday holds the per-date opening cash declaration and the end-of-day
// closing snapshot, the only records this service ever writes.
package cashday

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ferreteria-cash-recon/internal/businessday"
)

// OpeningBalance is the declared starting cash for one calendar date.
// Keyed by date with overwrite-on-resubmit semantics: upserting twice for the same
// date leaves one logical record.
type OpeningBalance struct {
	ID              uuid.UUID        `json:"id"`
	Date            businessday.Date `json:"date"`
	Amount          decimal.Decimal  `json:"amount"`
	Notes           string           `json:"notes,omitempty"`
	RecordedByID    string           `json:"recorded_by_id,omitempty"`
	RecordedByName  string           `json:"recorded_by_name,omitempty"`
	RecordedByEmail string           `json:"recorded_by_email,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// ClosingRecord is the append-only end-of-day snapshot: every aggregate figure the
// summary computed for the date, the physically counted drawer, and the opening
// record it closes. At most one closing exists per date.
type ClosingRecord struct {
	ID                   uuid.UUID        `json:"id"`
	Date                 businessday.Date `json:"date"`
	OpeningID            uuid.UUID        `json:"opening_id"`
	SalesTotal           decimal.Decimal  `json:"sales_total"`
	SalesProfit          decimal.Decimal  `json:"sales_profit"`
	IncomeTotal          decimal.Decimal  `json:"income_total"`
	OutflowTotal         decimal.Decimal  `json:"outflow_total"`
	ReceivablePayments   decimal.Decimal  `json:"receivable_payments"`
	SupplierPayments     decimal.Decimal  `json:"supplier_payments"`
	Expenses             decimal.Decimal  `json:"expenses"`
	TransferInflows      decimal.Decimal  `json:"transfer_inflows"`
	TransferOutflows     decimal.Decimal  `json:"transfer_outflows"`
	PhysicalCashMovement decimal.Decimal  `json:"physical_cash_movement"`
	PhysicalCashExpected decimal.Decimal  `json:"physical_cash_expected"`
	PhysicalCashCounted  decimal.Decimal  `json:"physical_cash_counted"`
	ElectronicNet        decimal.Decimal  `json:"electronic_net"`
	BankBalanceFinal     decimal.Decimal  `json:"bank_balance_final"`
	Notes                string           `json:"notes,omitempty"`
	ClosedByID           string           `json:"closed_by_id,omitempty"`
	ClosedByName         string           `json:"closed_by_name,omitempty"`
	ClosedByEmail        string           `json:"closed_by_email,omitempty"`
	CreatedAt            time.Time        `json:"created_at"`
}
