package reporting

import (
	"github.com/shopspring/decimal"

	"github.com/ferreteria-cash-recon/internal/businessday"
	"github.com/ferreteria-cash-recon/internal/domain/records"
)

// BuildDailySummary joins the day's record sets into the reconciliation summary.
// All arithmetic is decimal; the aggregation never depends on record order.
func BuildDailySummary(date businessday.Date, in Inputs) *DailySummary {
	start, end := date.Window()

	sales := buildSales(in.Sales, in.Credits)
	credits := buildCredits(in.Credits, in.ReceivablePayments)

	// Receivable repayments partitioned by channel. Other is total minus the named
	// parts so the three-way split sums exactly even under unrecognized tags.
	receivableTotal := decimal.Zero
	receivableCash := decimal.Zero
	receivableElectronic := decimal.Zero
	for _, p := range in.ReceivablePayments {
		receivableTotal = receivableTotal.Add(p.Amount)
		switch records.ReceivableChannel(p.Method) {
		case records.ChannelCash:
			receivableCash = receivableCash.Add(p.Amount)
		case records.ChannelElectronic:
			receivableElectronic = receivableElectronic.Add(p.Amount)
		}
	}
	receivableSplit := ChannelSplit{
		Cash:       receivableCash,
		Electronic: receivableElectronic,
		Other:      receivableTotal.Sub(receivableCash).Sub(receivableElectronic),
	}

	// Supplier payments use the narrower payable channel vocabulary.
	supplierTotal := decimal.Zero
	supplierCash := decimal.Zero
	supplierElectronic := decimal.Zero
	for _, p := range in.SupplierPayments {
		supplierTotal = supplierTotal.Add(p.Amount)
		switch records.PayableChannel(p.Method) {
		case records.ChannelCash:
			supplierCash = supplierCash.Add(p.Amount)
		case records.ChannelElectronic:
			supplierElectronic = supplierElectronic.Add(p.Amount)
		}
	}
	supplierSplit := ChannelSplit{
		Cash:       supplierCash,
		Electronic: supplierElectronic,
		Other:      supplierTotal.Sub(supplierCash).Sub(supplierElectronic),
	}

	expenseTotal := decimal.Zero
	for _, e := range in.Expenses {
		expenseTotal = expenseTotal.Add(e.Amount)
	}

	// Reserved for future income categories.
	otherIncome := decimal.Zero

	income := IncomeBreakdown{
		Total:              sales.Total.Add(receivableTotal).Add(in.Transfers.InflowTotal).Add(otherIncome),
		Sales:              sales.Total,
		ReceivablePayments: receivableTotal,
		Transfers:          in.Transfers.InflowTotal,
		Other:              otherIncome,
		Count:              len(in.Sales) + len(in.ReceivablePayments) + len(in.Transfers.All),
		Payments:           emptyIfNil(in.ReceivablePayments),
		ReceivableDetail:   receivableSplit,
		SalesDetail:        SalesChannelDetail{Cash: sales.Cash, Credit: sales.Credit},
	}

	outflow := OutflowBreakdown{
		Total:            supplierTotal.Add(expenseTotal).Add(in.Transfers.OutflowTotal),
		Suppliers:        supplierTotal,
		SupplierDetail:   supplierSplit,
		Expenses:         expenseTotal,
		Transfers:        in.Transfers.OutflowTotal,
		Count:            len(in.SupplierPayments) + len(in.Expenses) + len(in.Transfers.Outflows),
		SupplierPayments: emptyIfNil(in.SupplierPayments),
		ExpenseItems:     emptyIfNil(in.Expenses),
	}

	// Drawer movement: cash-classified inflows minus cash-settled outflows.
	// Expenses are assumed always cash-settled.
	physical := PhysicalCashFlow{
		SalesIn:              sales.Cash,
		ReceivablePaymentsIn: receivableSplit.Cash,
		OtherIn:              decimal.Zero,
		SuppliersOut:         supplierSplit.Cash,
		ExpensesOut:          expenseTotal,
	}
	physical.Movement = physical.SalesIn.Add(physical.ReceivablePaymentsIn).Add(physical.OtherIn).
		Sub(physical.SuppliersOut).Sub(physical.ExpensesOut)

	bankBalance := decimal.Zero
	var bankUpdatedAt *records.BankBalanceSnapshot
	if in.Bank != nil {
		bankBalance = in.Bank.Total
		bankUpdatedAt = in.Bank
	}

	electronic := ElectronicCashFlow{
		TransfersIn:          in.Transfers.InflowTotal,
		ReceivablePaymentsIn: receivableSplit.Electronic,
		TransfersOut:         in.Transfers.OutflowTotal,
		SupplierPaymentsOut:  supplierSplit.Electronic,
		BankBalance:          bankBalance,
	}
	electronic.Movement = electronic.TransfersIn.Add(electronic.ReceivablePaymentsIn).
		Sub(electronic.TransfersOut).Sub(electronic.SupplierPaymentsOut)
	if bankUpdatedAt != nil && !bankUpdatedAt.UpdatedAt.IsZero() {
		ts := bankUpdatedAt.UpdatedAt
		electronic.BankBalanceUpdatedAt = &ts
	}

	// Expected cash on hand adds the point-in-time bank balance to the drawer
	// movement. The two custody pools are intentionally conflated here; preserve
	// the formula pending product clarification (DESIGN.md).
	cash := CashReconciliation{
		Expected:   physical.Movement.Add(bankBalance),
		Physical:   physical,
		Electronic: electronic,
	}

	return &DailySummary{
		Period:    Period{Date: date, Start: start, End: end},
		Sales:     sales,
		Credits:   credits,
		Income:    income,
		Outflow:   outflow,
		Transfers: in.Transfers,
		Cash:      cash,
	}
}

// buildSales totals the sales and partitions them into cash vs. credit using the
// sale ids referenced by sale-origin credit grants.
func buildSales(sales []records.Sale, grants []records.CreditGrant) SalesBreakdown {
	creditIDs := records.CreditSaleIDs(grants)

	out := SalesBreakdown{
		Total:  decimal.Zero,
		Cash:   decimal.Zero,
		Credit: decimal.Zero,
		Profit: decimal.Zero,
		Count:  len(sales),
		Items:  emptyIfNil(sales),
	}

	for _, s := range sales {
		out.Total = out.Total.Add(s.Total)
		out.Profit = out.Profit.Add(s.Profit)
		if _, onCredit := creditIDs[s.ID]; onCredit {
			out.Credit = out.Credit.Add(s.Total)
		} else {
			out.Cash = out.Cash.Add(s.Total)
		}
	}

	return out
}

func buildCredits(grants []records.CreditGrant, payments []records.ReceivablePayment) CreditsBreakdown {
	total := decimal.Zero
	for _, g := range grants {
		total = total.Add(g.Amount)
	}

	return CreditsBreakdown{
		Granted:        emptyIfNil(grants),
		Count:          len(grants),
		Total:          total,
		SettledSameDay: MatchSameDaySettlements(grants, payments),
	}
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
