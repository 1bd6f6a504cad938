// Package reporting contains the pure daily-reconciliation computations: the
// same-day settlement correlator, the summary aggregator and the discrepancy
// detector. Nothing here touches the store; every figure is deterministically
// recomputable from the fetched record sets and the bank snapshot.
package reporting

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ferreteria-cash-recon/internal/businessday"
	"github.com/ferreteria-cash-recon/internal/domain/records"
)

// Inputs are the six fetched record sets plus the bank snapshot for one day.
// A nil Bank means no snapshot row exists and contributes a zero balance.
type Inputs struct {
	Sales              []records.Sale
	Credits            []records.CreditGrant
	ReceivablePayments []records.ReceivablePayment
	SupplierPayments   []records.PayablePayment
	Expenses           []records.Expense
	Transfers          records.TransferSet
	Bank               *records.BankBalanceSnapshot
}

// Period is the resolved operating-day window.
type Period struct {
	Date  businessday.Date `json:"date"`
	Start time.Time        `json:"start"`
	End   time.Time        `json:"end"`
}

// ChannelSplit is the three-way partition of a payment total by channel. The
// three parts always sum exactly to the category total: Other is derived by
// subtraction, never by re-filtering, so unrecognized tags cannot leak value.
type ChannelSplit struct {
	Cash       decimal.Decimal `json:"cash"`
	Electronic decimal.Decimal `json:"electronic"`
	Other      decimal.Decimal `json:"other"`
}

// SalesBreakdown totals the day's revenue-recognized sales, partitioned into cash
// and credit by the credit-grant linkage.
type SalesBreakdown struct {
	Total  decimal.Decimal `json:"total"`
	Cash   decimal.Decimal `json:"cash"`
	Credit decimal.Decimal `json:"credit"`
	Profit decimal.Decimal `json:"profit"`
	Count  int             `json:"count"`
	Items  []records.Sale  `json:"items"`
}

// SameDaySettlement pairs a credit grant with the repayments it received on the
// day it was extended.
type SameDaySettlement struct {
	Grant     records.CreditGrant         `json:"grant"`
	Payments  []records.ReceivablePayment `json:"payments"`
	TotalPaid decimal.Decimal             `json:"total_paid"`
}

// CreditsBreakdown summarizes the day's credit originations.
type CreditsBreakdown struct {
	Granted        []records.CreditGrant `json:"granted"`
	Count          int                   `json:"count"`
	Total          decimal.Decimal       `json:"total"`
	SettledSameDay []SameDaySettlement   `json:"settled_same_day"`
}

// SalesChannelDetail sub-details the sales contribution to income.
type SalesChannelDetail struct {
	Cash   decimal.Decimal `json:"cash"`
	Credit decimal.Decimal `json:"credit"`
}

// IncomeBreakdown is the gross income side: sales, receivable repayments and
// transfer inflows. Count is the number of underlying movements.
type IncomeBreakdown struct {
	Total              decimal.Decimal             `json:"total"`
	Sales              decimal.Decimal             `json:"sales"`
	ReceivablePayments decimal.Decimal             `json:"receivable_payments"`
	Transfers          decimal.Decimal             `json:"transfers"`
	Other              decimal.Decimal             `json:"other"`
	Count              int                         `json:"count"`
	Payments           []records.ReceivablePayment `json:"payments"`
	ReceivableDetail   ChannelSplit                `json:"receivable_detail"`
	SalesDetail        SalesChannelDetail          `json:"sales_detail"`
}

// OutflowBreakdown is the gross outflow side: supplier payments, expenses and
// transfer outflows.
type OutflowBreakdown struct {
	Total            decimal.Decimal          `json:"total"`
	Suppliers        decimal.Decimal          `json:"suppliers"`
	SupplierDetail   ChannelSplit             `json:"supplier_detail"`
	Expenses         decimal.Decimal          `json:"expenses"`
	Transfers        decimal.Decimal          `json:"transfers"`
	Count            int                      `json:"count"`
	SupplierPayments []records.PayablePayment `json:"supplier_payments"`
	ExpenseItems     []records.Expense        `json:"expense_items"`
}

// PhysicalCashFlow details drawer movement: only cash-classified sales and
// receivable repayments come in; only cash-classified supplier payments and
// expenses go out. Electronic amounts never touch the drawer.
type PhysicalCashFlow struct {
	SalesIn              decimal.Decimal `json:"sales_in"`
	ReceivablePaymentsIn decimal.Decimal `json:"receivable_payments_in"`
	OtherIn              decimal.Decimal `json:"other_in"`
	SuppliersOut         decimal.Decimal `json:"suppliers_out"`
	ExpensesOut          decimal.Decimal `json:"expenses_out"`
	Movement             decimal.Decimal `json:"movement"`
}

// ElectronicCashFlow details the same-day delta on bank-held funds plus the
// externally tracked balance snapshot. Movement is a delta, not a balance.
type ElectronicCashFlow struct {
	TransfersIn          decimal.Decimal `json:"transfers_in"`
	ReceivablePaymentsIn decimal.Decimal `json:"receivable_payments_in"`
	TransfersOut         decimal.Decimal `json:"transfers_out"`
	SupplierPaymentsOut  decimal.Decimal `json:"supplier_payments_out"`
	Movement             decimal.Decimal `json:"movement"`
	BankBalance          decimal.Decimal `json:"bank_balance"`
	BankBalanceUpdatedAt *time.Time      `json:"bank_balance_updated_at,omitempty"`
}

// CashReconciliation joins the drawer movement with the bank balance. Expected is
// drawer movement plus the bank snapshot total. The formula deliberately mixes
// the two pools; the closing flow compares it against the counted drawer.
type CashReconciliation struct {
	Expected   decimal.Decimal    `json:"expected"`
	Physical   PhysicalCashFlow   `json:"physical"`
	Electronic ElectronicCashFlow `json:"electronic"`
}

// DailySummary is the aggregation output for one operating day. It is never
// persisted; its only persisted derivative is the cashday closing record.
type DailySummary struct {
	Period    Period              `json:"period"`
	Sales     SalesBreakdown      `json:"sales"`
	Credits   CreditsBreakdown    `json:"credits"`
	Income    IncomeBreakdown     `json:"income"`
	Outflow   OutflowBreakdown    `json:"outflow"`
	Transfers records.TransferSet `json:"transfers"`
	Cash      CashReconciliation  `json:"cash"`
}
