package reporting

import (
	"github.com/shopspring/decimal"

	"github.com/ferreteria-cash-recon/internal/domain/records"
)

// MatchSameDaySettlements finds credit grants that received at least one repayment
// within the same operating day. Credit extended and collected inside one day is
// an accounting caution signal, not a correctness condition; a grant with no
// same-day payments is perfectly legitimate and simply omitted.
func MatchSameDaySettlements(grants []records.CreditGrant, payments []records.ReceivablePayment) []SameDaySettlement {
	settled := []SameDaySettlement{}

	for _, grant := range grants {
		var matched []records.ReceivablePayment
		total := decimal.Zero
		for _, p := range payments {
			if p.CreditID == grant.ID {
				matched = append(matched, p)
				total = total.Add(p.Amount)
			}
		}
		if len(matched) > 0 {
			settled = append(settled, SameDaySettlement{
				Grant:     grant,
				Payments:  matched,
				TotalPaid: total,
			})
		}
	}

	return settled
}
