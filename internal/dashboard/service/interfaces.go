package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ferreteria-cash-recon/internal/businessday"
	"github.com/ferreteria-cash-recon/internal/domain/cashday"
	"github.com/ferreteria-cash-recon/internal/reporting"
)

// DailySummaryReport bundles the aggregated summary with the advisory alerts
// evaluated over it.
type DailySummaryReport struct {
	Summary *reporting.DailySummary `json:"summary"`
	Alerts  []reporting.Alert       `json:"alerts"`
}

// SummaryService defines the interface for daily summary computation
type SummaryService interface {
	// GetDailySummary fetches the day's records, aggregates them and evaluates
	// the discrepancy rules. Individual source failures degrade to empty sets;
	// the summary itself never fails because one collection is unreachable.
	GetDailySummary(ctx context.Context, date businessday.Date) (*DailySummaryReport, error)
}

// OpeningInput carries the caller-supplied fields of an opening declaration.
// The acting user is taken from the request context, not from the body.
type OpeningInput struct {
	Amount decimal.Decimal
	Notes  string
}

// ClosingInput carries the caller-supplied fields of a day closing. Every
// aggregate figure is recomputed server-side; only the counted drawer and the
// notes come from the caller.
type ClosingInput struct {
	PhysicalCashCounted decimal.Decimal
	Notes               string
}

// CashDayService defines the interface for opening and closing operations
type CashDayService interface {
	// GetOpening retrieves the opening balance for a date, or (nil, nil) when absent
	GetOpening(ctx context.Context, date businessday.Date) (*cashday.OpeningBalance, error)

	// RecordOpening creates or overwrites the opening balance for a date
	RecordOpening(ctx context.Context, date businessday.Date, input OpeningInput) (*cashday.OpeningBalance, error)

	// GetClosing retrieves the closing record for a date, or (nil, nil) when absent
	GetClosing(ctx context.Context, date businessday.Date) (*cashday.ClosingRecord, error)

	// ListClosings retrieves closings in the inclusive date range, ascending
	ListClosings(ctx context.Context, from, to businessday.Date) ([]cashday.ClosingRecord, error)

	// PriorClosing retrieves the most recent closing strictly before the date,
	// or (nil, nil) when none exists
	PriorClosing(ctx context.Context, date businessday.Date) (*cashday.ClosingRecord, error)

	// CloseDay recomputes the day's summary, snapshots it into an append-only
	// closing record and links it to the day's opening balance.
	// Returns cashday.ErrMissingOpeningLink when no opening was declared and
	// cashday.ErrClosingExists when the day is already closed.
	CloseDay(ctx context.Context, date businessday.Date, input ClosingInput) (*cashday.ClosingRecord, error)
}
