package cashday

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DayClosedEvent is published after a closing record is stored. Downstream
// consumers (reporting exports, notifications) key on the date string.
type DayClosedEvent struct {
	ClosingID            uuid.UUID       `json:"closing_id"`
	Date                 string          `json:"date"`
	OpeningID            uuid.UUID       `json:"opening_id"`
	IncomeTotal          decimal.Decimal `json:"income_total"`
	OutflowTotal         decimal.Decimal `json:"outflow_total"`
	PhysicalCashExpected decimal.Decimal `json:"physical_cash_expected"`
	PhysicalCashCounted  decimal.Decimal `json:"physical_cash_counted"`
	ClosedByID           string          `json:"closed_by_id,omitempty"`
	ClosedAt             time.Time       `json:"closed_at"`
}

// NewDayClosedEvent builds the published view of a stored closing record.
func NewDayClosedEvent(closing *ClosingRecord) DayClosedEvent {
	return DayClosedEvent{
		ClosingID:            closing.ID,
		Date:                 closing.Date.String(),
		OpeningID:            closing.OpeningID,
		IncomeTotal:          closing.IncomeTotal,
		OutflowTotal:         closing.OutflowTotal,
		PhysicalCashExpected: closing.PhysicalCashExpected,
		PhysicalCashCounted:  closing.PhysicalCashCounted,
		ClosedByID:           closing.ClosedByID,
		ClosedAt:             closing.CreatedAt,
	}
}
