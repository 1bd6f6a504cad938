package records

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankBalanceSnapshot is the externally maintained bank account balance. It is a
// point-in-time figure, not derived from the day's transactions.
type BankBalanceSnapshot struct {
	Total     decimal.Decimal `json:"total"`
	UpdatedAt time.Time       `json:"updated_at"`
}
