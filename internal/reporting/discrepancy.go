package reporting

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AlertSeverity tags an advisory as informational or a warning.
type AlertSeverity string

const (
	SeverityInfo    AlertSeverity = "info"
	SeverityWarning AlertSeverity = "warning"
)

// Alert is an advisory produced by the discrepancy rules. Alerts are never
// deduplicated or auto-dismissed.
type Alert struct {
	Severity AlertSeverity `json:"severity"`
	Message  string        `json:"message"`
}

// DetectDiscrepancies evaluates the fixed advisory rule set over a completed
// summary, in priority order. Rules are independent: a quiet day with same-day
// settled credit emits both the settlement info and the no-activity info.
func DetectDiscrepancies(summary *DailySummary) []Alert {
	alerts := []Alert{}

	if n := len(summary.Credits.SettledSameDay); n > 0 {
		total := decimal.Zero
		for _, s := range summary.Credits.SettledSameDay {
			total = total.Add(s.TotalPaid)
		}
		alerts = append(alerts, Alert{
			Severity: SeverityInfo,
			Message: fmt.Sprintf("%d credit(s) granted and repaid today. Same-day settlement: %s",
				n, formatUSD(total)),
		})
	}

	if summary.Sales.Credit.IsPositive() {
		alerts = append(alerts, Alert{
			Severity: SeverityWarning,
			Message: fmt.Sprintf("Credit sales today: %s (not in the drawer)",
				formatUSD(summary.Sales.Credit)),
		})
	}

	if summary.Outflow.Total.GreaterThan(summary.Income.Total) {
		alerts = append(alerts, Alert{
			Severity: SeverityWarning,
			Message: fmt.Sprintf("Outflows (%s) exceed income (%s)",
				formatUSD(summary.Outflow.Total), formatUSD(summary.Income.Total)),
		})
	}

	if summary.Sales.Count == 0 && summary.Income.Count == 0 && summary.Outflow.Count == 0 {
		alerts = append(alerts, Alert{
			Severity: SeverityInfo,
			Message:  "No movements recorded today",
		})
	}

	return alerts
}

// formatUSD renders an amount for alert messages, always with two decimals.
func formatUSD(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
