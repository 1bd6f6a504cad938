package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ferreteria-cash-recon/internal/businessday"
	"github.com/ferreteria-cash-recon/internal/domain/cashday"
	"github.com/ferreteria-cash-recon/internal/domain/identity"
	"github.com/ferreteria-cash-recon/internal/platform/messaging/producers"
)

// CashDayServiceImpl implements the CashDayService interface
type CashDayServiceImpl struct {
	repo      cashday.Repository
	summaries SummaryService
	publisher producers.MessagePublisher
	logger    *slog.Logger
}

// NewCashDayService creates a new cash day service. The publisher may be nil
// when no broker is configured; closing then skips event publication.
func NewCashDayService(
	logger *slog.Logger,
	repo cashday.Repository,
	summaries SummaryService,
	publisher producers.MessagePublisher,
) CashDayService {
	return &CashDayServiceImpl{
		repo:      repo,
		summaries: summaries,
		publisher: publisher,
		logger:    logger,
	}
}

// GetOpening retrieves the opening balance for a date, or (nil, nil) when absent
func (s *CashDayServiceImpl) GetOpening(ctx context.Context, date businessday.Date) (*cashday.OpeningBalance, error) {
	return s.repo.GetOpening(ctx, date)
}

// RecordOpening creates or overwrites the opening balance for the date, stamping
// the acting user from the request context.
func (s *CashDayServiceImpl) RecordOpening(ctx context.Context, date businessday.Date, input OpeningInput) (*cashday.OpeningBalance, error) {
	caller, _ := identity.FromContext(ctx)

	opening := &cashday.OpeningBalance{
		ID:              uuid.New(),
		Date:            date,
		Amount:          input.Amount,
		Notes:           input.Notes,
		RecordedByID:    caller.ID,
		RecordedByName:  caller.Name,
		RecordedByEmail: caller.Email,
	}

	stored, err := s.repo.UpsertOpening(ctx, opening)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Opening balance recorded",
		"date", date.String(),
		"amount", stored.Amount.String(),
		"recorded_by", stored.RecordedByID)

	return stored, nil
}

// GetClosing retrieves the closing record for a date, or (nil, nil) when absent
func (s *CashDayServiceImpl) GetClosing(ctx context.Context, date businessday.Date) (*cashday.ClosingRecord, error) {
	return s.repo.GetClosing(ctx, date)
}

// ListClosings retrieves closings in the inclusive date range, ascending
func (s *CashDayServiceImpl) ListClosings(ctx context.Context, from, to businessday.Date) ([]cashday.ClosingRecord, error) {
	return s.repo.ListClosings(ctx, from, to)
}

// PriorClosing retrieves the most recent closing strictly before the date
func (s *CashDayServiceImpl) PriorClosing(ctx context.Context, date businessday.Date) (*cashday.ClosingRecord, error) {
	return s.repo.LatestClosingBefore(ctx, date)
}

// CloseDay snapshots the day. The summary is recomputed server-side at closing
// time so the stored figures cannot be tampered with by the caller; only the
// counted drawer amount and the notes are taken from the input. The unique
// date constraint in the store decides the winner of a concurrent double close.
func (s *CashDayServiceImpl) CloseDay(ctx context.Context, date businessday.Date, input ClosingInput) (*cashday.ClosingRecord, error) {
	opening, err := s.repo.GetOpening(ctx, date)
	if err != nil {
		return nil, err
	}
	if opening == nil {
		return nil, cashday.ErrMissingOpeningLink
	}

	if existing, err := s.repo.GetClosing(ctx, date); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, cashday.ErrClosingExists{Date: date}
	}

	report, err := s.summaries.GetDailySummary(ctx, date)
	if err != nil {
		return nil, err
	}
	summary := report.Summary

	caller, _ := identity.FromContext(ctx)

	closing := &cashday.ClosingRecord{
		ID:                   uuid.New(),
		Date:                 date,
		OpeningID:            opening.ID,
		SalesTotal:           summary.Sales.Total,
		SalesProfit:          summary.Sales.Profit,
		IncomeTotal:          summary.Income.Total,
		OutflowTotal:         summary.Outflow.Total,
		ReceivablePayments:   summary.Income.ReceivablePayments,
		SupplierPayments:     summary.Outflow.Suppliers,
		Expenses:             summary.Outflow.Expenses,
		TransferInflows:      summary.Transfers.InflowTotal,
		TransferOutflows:     summary.Transfers.OutflowTotal,
		PhysicalCashMovement: summary.Cash.Physical.Movement,
		PhysicalCashExpected: summary.Cash.Expected,
		PhysicalCashCounted:  input.PhysicalCashCounted,
		ElectronicNet:        summary.Cash.Electronic.Movement,
		BankBalanceFinal:     summary.Cash.Electronic.BankBalance,
		Notes:                input.Notes,
		ClosedByID:           caller.ID,
		ClosedByName:         caller.Name,
		ClosedByEmail:        caller.Email,
	}

	stored, err := s.repo.CreateClosing(ctx, closing)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Day closed",
		"date", date.String(),
		"expected", stored.PhysicalCashExpected.String(),
		"counted", stored.PhysicalCashCounted.String(),
		"closed_by", stored.ClosedByID)

	s.publishDayClosed(ctx, stored)

	return stored, nil
}

// publishDayClosed emits the day-closed event. Publication is best effort: the
// closing is already durable, so a broker failure only logs.
func (s *CashDayServiceImpl) publishDayClosed(ctx context.Context, closing *cashday.ClosingRecord) {
	if s.publisher == nil {
		return
	}

	event := cashday.NewDayClosedEvent(closing)
	if err := s.publisher.Publish(ctx, event.Date, event); err != nil {
		s.logger.Error("Failed to publish day-closed event",
			"date", event.Date,
			"closing_id", event.ClosingID.String(),
			"error", err)
	}
}
