package records

import (
	"context"
	"time"
)

// The repositories below are the service's only boundary to the remote transaction
// store. Every fetch is read-only and idempotent; windows are inclusive on both ends
// and results come back in descending timestamp order, a presentation convenience
// the aggregation never relies on. Implementations return retrieval errors
// as-is; degrading a failed category to an empty result is the caller's decision.

// SaleRepository fetches point-of-sale transactions.
type SaleRepository interface {
	// ListRevenueInWindow returns sales within [start, end] whose status counts
	// toward revenue recognition (see RevenueStatuses).
	ListRevenueInWindow(ctx context.Context, start, end time.Time) ([]Sale, error)
}

// CreditGrantRepository fetches accounts-receivable originations.
type CreditGrantRepository interface {
	ListGrantedInWindow(ctx context.Context, start, end time.Time) ([]CreditGrant, error)
}

// ReceivablePaymentRepository fetches repayments on accounts receivable.
type ReceivablePaymentRepository interface {
	ListPaidInWindow(ctx context.Context, start, end time.Time) ([]ReceivablePayment, error)
}

// PayablePaymentRepository fetches payments made to suppliers.
type PayablePaymentRepository interface {
	ListPaidInWindow(ctx context.Context, start, end time.Time) ([]PayablePayment, error)
}

// ExpenseRepository fetches operating expenses.
type ExpenseRepository interface {
	ListInWindow(ctx context.Context, start, end time.Time) ([]Expense, error)
}

// TransferRepository fetches bank transfers, already partitioned by direction.
type TransferRepository interface {
	ListInWindow(ctx context.Context, start, end time.Time) (TransferSet, error)
}

// BankBalanceRepository reads the singleton bank balance snapshot.
// Current returns (nil, nil) when no snapshot row exists.
type BankBalanceRepository interface {
	Current(ctx context.Context) (*BankBalanceSnapshot, error)
}
