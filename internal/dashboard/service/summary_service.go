package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/ferreteria-cash-recon/internal/businessday"
	"github.com/ferreteria-cash-recon/internal/domain/records"
	"github.com/ferreteria-cash-recon/internal/reporting"
)

// SummaryServiceImpl implements the SummaryService interface. The six record
// fetches plus the bank snapshot read run concurrently on a shared worker pool.
type SummaryServiceImpl struct {
	sales       records.SaleRepository
	credits     records.CreditGrantRepository
	receivables records.ReceivablePaymentRepository
	payables    records.PayablePaymentRepository
	expenses    records.ExpenseRepository
	transfers   records.TransferRepository
	bank        records.BankBalanceRepository
	pool        *ants.Pool
	logger      *slog.Logger
}

// NewSummaryService creates a new summary service backed by the given worker pool
func NewSummaryService(
	logger *slog.Logger,
	pool *ants.Pool,
	sales records.SaleRepository,
	credits records.CreditGrantRepository,
	receivables records.ReceivablePaymentRepository,
	payables records.PayablePaymentRepository,
	expenses records.ExpenseRepository,
	transfers records.TransferRepository,
	bank records.BankBalanceRepository,
) SummaryService {
	return &SummaryServiceImpl{
		sales:       sales,
		credits:     credits,
		receivables: receivables,
		payables:    payables,
		expenses:    expenses,
		transfers:   transfers,
		bank:        bank,
		pool:        pool,
		logger:      logger,
	}
}

// GetDailySummary fetches all record sets for the date's operating window,
// aggregates them and evaluates the discrepancy rules.
func (s *SummaryServiceImpl) GetDailySummary(ctx context.Context, date businessday.Date) (*DailySummaryReport, error) {
	inputs := s.fetchInputs(ctx, date)

	summary := reporting.BuildDailySummary(date, inputs)
	alerts := reporting.DetectDiscrepancies(summary)

	return &DailySummaryReport{
		Summary: summary,
		Alerts:  alerts,
	}, nil
}

// fetchInputs runs the seven source reads concurrently. Each failed source is
// logged and degrades to its empty value so one unreachable collection never
// blanks the whole dashboard. Every task writes a distinct Inputs field.
func (s *SummaryServiceImpl) fetchInputs(ctx context.Context, date businessday.Date) reporting.Inputs {
	start, end := date.Window()

	inputs := reporting.Inputs{
		Sales:              []records.Sale{},
		Credits:            []records.CreditGrant{},
		ReceivablePayments: []records.ReceivablePayment{},
		SupplierPayments:   []records.PayablePayment{},
		Expenses:           []records.Expense{},
		Transfers:          records.EmptyTransferSet(),
	}

	tasks := []struct {
		source string
		run    func() error
	}{
		{"sales", func() error {
			sales, err := s.sales.ListRevenueInWindow(ctx, start, end)
			if err != nil {
				return err
			}
			inputs.Sales = sales
			return nil
		}},
		{"credit_grants", func() error {
			credits, err := s.credits.ListGrantedInWindow(ctx, start, end)
			if err != nil {
				return err
			}
			inputs.Credits = credits
			return nil
		}},
		{"receivable_payments", func() error {
			payments, err := s.receivables.ListPaidInWindow(ctx, start, end)
			if err != nil {
				return err
			}
			inputs.ReceivablePayments = payments
			return nil
		}},
		{"supplier_payments", func() error {
			payments, err := s.payables.ListPaidInWindow(ctx, start, end)
			if err != nil {
				return err
			}
			inputs.SupplierPayments = payments
			return nil
		}},
		{"expenses", func() error {
			expenses, err := s.expenses.ListInWindow(ctx, start, end)
			if err != nil {
				return err
			}
			inputs.Expenses = expenses
			return nil
		}},
		{"transfers", func() error {
			transfers, err := s.transfers.ListInWindow(ctx, start, end)
			if err != nil {
				return err
			}
			inputs.Transfers = transfers
			return nil
		}},
		{"bank_balance", func() error {
			snapshot, err := s.bank.Current(ctx)
			if err != nil {
				return err
			}
			inputs.Bank = snapshot
			return nil
		}},
	}

	var wg sync.WaitGroup
	for _, task := range tasks {
		task := task
		wg.Add(1)
		job := func() {
			defer wg.Done()
			if err := task.run(); err != nil {
				s.logger.Warn("Source fetch failed, degrading to empty",
					"source", task.source,
					"date", date.String(),
					"error", err)
			}
		}
		if err := s.pool.Submit(job); err != nil {
			// Pool saturated or released; run inline rather than dropping the source
			s.logger.Warn("Failed to submit fetch to worker pool, running inline",
				"source", task.source,
				"error", err)
			job()
		}
	}
	wg.Wait()

	return inputs
}
