// Package postgres provides PostgreSQL implementations of the domain repositories.
// It owns the only write path in the system: the opening balance upsert and the
// append-only closing record insert.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/ferreteria-cash-recon/internal/businessday"
	"github.com/ferreteria-cash-recon/internal/domain/cashday"
	"github.com/ferreteria-cash-recon/internal/platform/persistence"
)

const uniqueViolationCode = "23505"

// CashDayRepository implements the cashday.Repository interface for PostgreSQL
type CashDayRepository struct {
	querier persistence.Querier // Can be *pgxpool.Pool or pgx.Tx
	logger  *slog.Logger
}

// NewCashDayRepository creates a new PostgreSQL cash day repository.
// It expects db.Pool() to satisfy persistence.Querier.
func NewCashDayRepository(logger *slog.Logger, db *persistence.PostgresDB) cashday.Repository {
	return &CashDayRepository{
		querier: db.Pool(),
		logger:  logger,
	}
}

// NewCashDayRepositoryWithQuerier creates a repository bound to an arbitrary
// querier, used by tests to inject a mock.
func NewCashDayRepositoryWithQuerier(logger *slog.Logger, querier persistence.Querier) cashday.Repository {
	return &CashDayRepository{
		querier: querier,
		logger:  logger,
	}
}

// WithTx wraps the repository with a transaction, allowing for atomic operations
// across multiple repository calls.
func (r *CashDayRepository) WithTx(tx pgx.Tx) cashday.Repository {
	return &CashDayRepository{
		querier: tx,
		logger:  r.logger,
	}
}

// calendarDate converts a scanned DATE column into its calendar components
// without timezone interpretation.
func calendarDate(t time.Time) businessday.Date {
	y, m, d := t.Date()
	return businessday.Date{Year: y, Month: m, Day: d}
}

// scanAmount parses a NUMERIC column selected as text.
func scanAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// GetOpening retrieves the opening balance for a date, or (nil, nil) when absent.
func (r *CashDayRepository) GetOpening(ctx context.Context, date businessday.Date) (*cashday.OpeningBalance, error) {
	query := `
		SELECT id, date, amount::text, notes, recorded_by_id, recorded_by_name, recorded_by_email, created_at, updated_at
		FROM opening_balances
		WHERE date = $1
	`

	var (
		opening   cashday.OpeningBalance
		rawDate   time.Time
		rawAmount string
	)
	err := r.querier.QueryRow(ctx, query, date.String()).Scan(
		&opening.ID,
		&rawDate,
		&rawAmount,
		&opening.Notes,
		&opening.RecordedByID,
		&opening.RecordedByName,
		&opening.RecordedByEmail,
		&opening.CreatedAt,
		&opening.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get opening balance", "date", date.String(), "error", err)
		return nil, fmt.Errorf("failed to get opening balance: %w", err)
	}

	opening.Date = calendarDate(rawDate)
	opening.Amount, err = scanAmount(rawAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to parse opening amount: %w", err)
	}

	return &opening, nil
}

// UpsertOpening overwrites-or-creates the opening balance keyed by its Date.
// The stored row's created_at is preserved across resubmissions; updated_at moves.
func (r *CashDayRepository) UpsertOpening(ctx context.Context, opening *cashday.OpeningBalance) (*cashday.OpeningBalance, error) {
	query := `
		INSERT INTO opening_balances (id, date, amount, notes, recorded_by_id, recorded_by_name, recorded_by_email, created_at, updated_at)
		VALUES ($1, $2, $3::numeric, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (date) DO UPDATE SET
			amount = EXCLUDED.amount,
			notes = EXCLUDED.notes,
			recorded_by_id = EXCLUDED.recorded_by_id,
			recorded_by_name = EXCLUDED.recorded_by_name,
			recorded_by_email = EXCLUDED.recorded_by_email,
			updated_at = NOW()
		RETURNING id, date, amount::text, notes, recorded_by_id, recorded_by_name, recorded_by_email, created_at, updated_at
	`

	var (
		stored    cashday.OpeningBalance
		rawDate   time.Time
		rawAmount string
	)
	err := r.querier.QueryRow(ctx, query,
		opening.ID,
		opening.Date.String(),
		opening.Amount.String(),
		opening.Notes,
		opening.RecordedByID,
		opening.RecordedByName,
		opening.RecordedByEmail,
	).Scan(
		&stored.ID,
		&rawDate,
		&rawAmount,
		&stored.Notes,
		&stored.RecordedByID,
		&stored.RecordedByName,
		&stored.RecordedByEmail,
		&stored.CreatedAt,
		&stored.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to upsert opening balance", "date", opening.Date.String(), "error", err)
		return nil, fmt.Errorf("failed to upsert opening balance: %w", err)
	}

	stored.Date = calendarDate(rawDate)
	stored.Amount, err = scanAmount(rawAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to parse opening amount: %w", err)
	}

	return &stored, nil
}

const closingColumns = `
	id, date, opening_id,
	sales_total::text, sales_profit::text, income_total::text, outflow_total::text,
	receivable_payments::text, supplier_payments::text, expenses::text,
	transfer_inflows::text, transfer_outflows::text,
	physical_cash_movement::text, physical_cash_expected::text, physical_cash_counted::text,
	electronic_net::text, bank_balance_final::text,
	notes, closed_by_id, closed_by_name, closed_by_email, created_at
`

type closingRow struct {
	rawDate time.Time
	amounts [14]string
	closing cashday.ClosingRecord
}

func (cr *closingRow) scanTargets() []interface{} {
	return []interface{}{
		&cr.closing.ID,
		&cr.rawDate,
		&cr.closing.OpeningID,
		&cr.amounts[0],  // sales_total
		&cr.amounts[1],  // sales_profit
		&cr.amounts[2],  // income_total
		&cr.amounts[3],  // outflow_total
		&cr.amounts[4],  // receivable_payments
		&cr.amounts[5],  // supplier_payments
		&cr.amounts[6],  // expenses
		&cr.amounts[7],  // transfer_inflows
		&cr.amounts[8],  // transfer_outflows
		&cr.amounts[9],  // physical_cash_movement
		&cr.amounts[10], // physical_cash_expected
		&cr.amounts[11], // physical_cash_counted
		&cr.amounts[12], // electronic_net
		&cr.amounts[13], // bank_balance_final
		&cr.closing.Notes,
		&cr.closing.ClosedByID,
		&cr.closing.ClosedByName,
		&cr.closing.ClosedByEmail,
		&cr.closing.CreatedAt,
	}
}

func (cr *closingRow) toDomain() (*cashday.ClosingRecord, error) {
	closing := cr.closing
	closing.Date = calendarDate(cr.rawDate)

	targets := []*decimal.Decimal{
		&closing.SalesTotal, &closing.SalesProfit, &closing.IncomeTotal, &closing.OutflowTotal,
		&closing.ReceivablePayments, &closing.SupplierPayments, &closing.Expenses,
		&closing.TransferInflows, &closing.TransferOutflows,
		&closing.PhysicalCashMovement, &closing.PhysicalCashExpected, &closing.PhysicalCashCounted,
		&closing.ElectronicNet, &closing.BankBalanceFinal,
	}
	for i, target := range targets {
		amount, err := scanAmount(cr.amounts[i])
		if err != nil {
			return nil, fmt.Errorf("failed to parse closing amount: %w", err)
		}
		*target = amount
	}

	return &closing, nil
}

// GetClosing retrieves the closing record for a date, or (nil, nil) when absent.
func (r *CashDayRepository) GetClosing(ctx context.Context, date businessday.Date) (*cashday.ClosingRecord, error) {
	query := `SELECT ` + closingColumns + ` FROM closing_records WHERE date = $1`

	var row closingRow
	err := r.querier.QueryRow(ctx, query, date.String()).Scan(row.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get closing record", "date", date.String(), "error", err)
		return nil, fmt.Errorf("failed to get closing record: %w", err)
	}

	return row.toDomain()
}

// ListClosings retrieves closings with from <= date <= to, ascending by date.
func (r *CashDayRepository) ListClosings(ctx context.Context, from, to businessday.Date) ([]cashday.ClosingRecord, error) {
	query := `SELECT ` + closingColumns + ` FROM closing_records WHERE date >= $1 AND date <= $2 ORDER BY date ASC`

	rows, err := r.querier.Query(ctx, query, from.String(), to.String())
	if err != nil {
		r.logger.Error("Failed to list closing records", "from", from.String(), "to", to.String(), "error", err)
		return nil, fmt.Errorf("failed to list closing records: %w", err)
	}
	defer rows.Close()

	closings := make([]cashday.ClosingRecord, 0)
	for rows.Next() {
		var row closingRow
		if err := rows.Scan(row.scanTargets()...); err != nil {
			return nil, fmt.Errorf("failed to scan closing record: %w", err)
		}
		closing, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		closings = append(closings, *closing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate closing records: %w", err)
	}

	return closings, nil
}

// LatestClosingBefore retrieves the most recent closing strictly before the date,
// or (nil, nil) when no prior closing exists.
func (r *CashDayRepository) LatestClosingBefore(ctx context.Context, date businessday.Date) (*cashday.ClosingRecord, error) {
	query := `SELECT ` + closingColumns + ` FROM closing_records WHERE date < $1 ORDER BY date DESC LIMIT 1`

	var row closingRow
	err := r.querier.QueryRow(ctx, query, date.String()).Scan(row.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get prior closing record", "date", date.String(), "error", err)
		return nil, fmt.Errorf("failed to get prior closing record: %w", err)
	}

	return row.toDomain()
}

// CreateClosing appends a closing record. A same-date conflict surfaces as
// cashday.ErrClosingExists; the unique index makes concurrent double-closing safe.
func (r *CashDayRepository) CreateClosing(ctx context.Context, closing *cashday.ClosingRecord) (*cashday.ClosingRecord, error) {
	if closing.OpeningID == (uuid.UUID{}) {
		return nil, cashday.ErrMissingOpeningLink
	}

	query := `
		INSERT INTO closing_records (
			id, date, opening_id,
			sales_total, sales_profit, income_total, outflow_total,
			receivable_payments, supplier_payments, expenses,
			transfer_inflows, transfer_outflows,
			physical_cash_movement, physical_cash_expected, physical_cash_counted,
			electronic_net, bank_balance_final,
			notes, closed_by_id, closed_by_name, closed_by_email, created_at
		)
		VALUES (
			$1, $2, $3,
			$4::numeric, $5::numeric, $6::numeric, $7::numeric,
			$8::numeric, $9::numeric, $10::numeric,
			$11::numeric, $12::numeric,
			$13::numeric, $14::numeric, $15::numeric,
			$16::numeric, $17::numeric,
			$18, $19, $20, $21, NOW()
		)
		RETURNING ` + closingColumns

	var row closingRow
	err := r.querier.QueryRow(ctx, query,
		closing.ID,
		closing.Date.String(),
		closing.OpeningID,
		closing.SalesTotal.String(),
		closing.SalesProfit.String(),
		closing.IncomeTotal.String(),
		closing.OutflowTotal.String(),
		closing.ReceivablePayments.String(),
		closing.SupplierPayments.String(),
		closing.Expenses.String(),
		closing.TransferInflows.String(),
		closing.TransferOutflows.String(),
		closing.PhysicalCashMovement.String(),
		closing.PhysicalCashExpected.String(),
		closing.PhysicalCashCounted.String(),
		closing.ElectronicNet.String(),
		closing.BankBalanceFinal.String(),
		closing.Notes,
		closing.ClosedByID,
		closing.ClosedByName,
		closing.ClosedByEmail,
	).Scan(row.scanTargets()...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, cashday.ErrClosingExists{Date: closing.Date}
		}
		r.logger.Error("Failed to create closing record", "date", closing.Date.String(), "error", err)
		return nil, fmt.Errorf("failed to create closing record: %w", err)
	}

	return row.toDomain()
}
