package cashday

import (
	"context"
	"errors"

	"github.com/ferreteria-cash-recon/internal/businessday"
)

// ErrMissingOpeningLink rejects a closing that does not reference the opening
// balance record for its date.
var ErrMissingOpeningLink = errors.New("closing record requires a linked opening balance")

// ErrClosingExists indicates a closing already exists for the date. The store
// enforces uniqueness per date, so a concurrent second closing surfaces as this
// error instead of a duplicate row.
type ErrClosingExists struct {
	Date businessday.Date
}

func (e ErrClosingExists) Error() string {
	return "closing record already exists for date: " + e.Date.String()
}

// Is matches any ErrClosingExists when the target carries a zero date.
func (e ErrClosingExists) Is(target error) bool {
	t, ok := target.(ErrClosingExists)
	if !ok {
		return false
	}
	if t.Date.IsZero() {
		return true
	}
	return e.Date == t.Date
}

// Repository persists opening and closing records. Writes surface persistence
// faults verbatim; there are no silent retries.
type Repository interface {
	// GetOpening returns the opening balance for the date, or (nil, nil) when absent.
	GetOpening(ctx context.Context, date businessday.Date) (*OpeningBalance, error)

	// UpsertOpening overwrites-or-creates the opening balance keyed by its Date.
	// Safe to call repeatedly; the final state equals a single call's.
	UpsertOpening(ctx context.Context, opening *OpeningBalance) (*OpeningBalance, error)

	// GetClosing returns the closing for the date, or (nil, nil) when absent.
	GetClosing(ctx context.Context, date businessday.Date) (*ClosingRecord, error)

	// ListClosings returns closings with from <= date <= to, ascending by date.
	ListClosings(ctx context.Context, from, to businessday.Date) ([]ClosingRecord, error)

	// LatestClosingBefore returns the most recent closing strictly before the date,
	// or (nil, nil) when no prior closing exists.
	LatestClosingBefore(ctx context.Context, date businessday.Date) (*ClosingRecord, error)

	// CreateClosing appends a closing record. Returns ErrMissingOpeningLink when
	// the opening linkage is absent and ErrClosingExists on a same-date conflict.
	CreateClosing(ctx context.Context, closing *ClosingRecord) (*ClosingRecord, error)
}
