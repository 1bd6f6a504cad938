package records

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayablePayment is a payment made to a supplier against an outstanding bill.
type PayablePayment struct {
	ID               uuid.UUID       `json:"id"`
	SupplierID       uuid.UUID       `json:"supplier_id"`
	SupplierName     string          `json:"supplier_name,omitempty"`
	Amount           decimal.Decimal `json:"amount"`
	Method           string          `json:"method"` // free-form tag, normalized via PayableChannel
	PaidAt           time.Time       `json:"paid_at"`
	Reference        string          `json:"reference,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	ResultingBalance decimal.Decimal `json:"resulting_balance"`
}

// Expense is an operating expense. Expenses are always settled from the physical
// cash drawer in this channel taxonomy.
type Expense struct {
	ID         uuid.UUID       `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason"`
	SpentAt    time.Time       `json:"spent_at"`
	RecordedBy string          `json:"recorded_by,omitempty"`
}
