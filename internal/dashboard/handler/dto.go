package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ferreteria-cash-recon/internal/domain/cashday"
)

// RecordOpeningRequest represents a request to declare the day's starting cash
type RecordOpeningRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Notes  string          `json:"notes"`
}

// CloseDayRequest represents a request to close the day. All aggregate figures
// are recomputed server-side; only the counted drawer and notes are accepted.
type CloseDayRequest struct {
	PhysicalCashCounted decimal.Decimal `json:"physical_cash_counted" binding:"required"`
	Notes               string          `json:"notes"`
}

// OpeningBalanceResponse represents an opening balance in API responses
type OpeningBalanceResponse struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	Amount          string `json:"amount"`
	Notes           string `json:"notes,omitempty"`
	RecordedByID    string `json:"recorded_by_id,omitempty"`
	RecordedByName  string `json:"recorded_by_name,omitempty"`
	RecordedByEmail string `json:"recorded_by_email,omitempty"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// ClosingRecordResponse represents a closing record in API responses
type ClosingRecordResponse struct {
	ID                   string `json:"id"`
	Date                 string `json:"date"`
	OpeningID            string `json:"opening_id"`
	SalesTotal           string `json:"sales_total"`
	SalesProfit          string `json:"sales_profit"`
	IncomeTotal          string `json:"income_total"`
	OutflowTotal         string `json:"outflow_total"`
	ReceivablePayments   string `json:"receivable_payments"`
	SupplierPayments     string `json:"supplier_payments"`
	Expenses             string `json:"expenses"`
	TransferInflows      string `json:"transfer_inflows"`
	TransferOutflows     string `json:"transfer_outflows"`
	PhysicalCashMovement string `json:"physical_cash_movement"`
	PhysicalCashExpected string `json:"physical_cash_expected"`
	PhysicalCashCounted  string `json:"physical_cash_counted"`
	ElectronicNet        string `json:"electronic_net"`
	BankBalanceFinal     string `json:"bank_balance_final"`
	Notes                string `json:"notes,omitempty"`
	ClosedByID           string `json:"closed_by_id,omitempty"`
	ClosedByName         string `json:"closed_by_name,omitempty"`
	ClosedByEmail        string `json:"closed_by_email,omitempty"`
	CreatedAt            string `json:"created_at"`
}

// ClosingListResponse represents a date-range of closings in API responses
type ClosingListResponse struct {
	Closings []ClosingRecordResponse `json:"closings"`
}

func mapOpeningToResponse(opening *cashday.OpeningBalance) OpeningBalanceResponse {
	return OpeningBalanceResponse{
		ID:              opening.ID.String(),
		Date:            opening.Date.String(),
		Amount:          opening.Amount.StringFixed(2),
		Notes:           opening.Notes,
		RecordedByID:    opening.RecordedByID,
		RecordedByName:  opening.RecordedByName,
		RecordedByEmail: opening.RecordedByEmail,
		CreatedAt:       opening.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       opening.UpdatedAt.Format(time.RFC3339),
	}
}

func mapClosingToResponse(closing *cashday.ClosingRecord) ClosingRecordResponse {
	return ClosingRecordResponse{
		ID:                   closing.ID.String(),
		Date:                 closing.Date.String(),
		OpeningID:            closing.OpeningID.String(),
		SalesTotal:           closing.SalesTotal.StringFixed(2),
		SalesProfit:          closing.SalesProfit.StringFixed(2),
		IncomeTotal:          closing.IncomeTotal.StringFixed(2),
		OutflowTotal:         closing.OutflowTotal.StringFixed(2),
		ReceivablePayments:   closing.ReceivablePayments.StringFixed(2),
		SupplierPayments:     closing.SupplierPayments.StringFixed(2),
		Expenses:             closing.Expenses.StringFixed(2),
		TransferInflows:      closing.TransferInflows.StringFixed(2),
		TransferOutflows:     closing.TransferOutflows.StringFixed(2),
		PhysicalCashMovement: closing.PhysicalCashMovement.StringFixed(2),
		PhysicalCashExpected: closing.PhysicalCashExpected.StringFixed(2),
		PhysicalCashCounted:  closing.PhysicalCashCounted.StringFixed(2),
		ElectronicNet:        closing.ElectronicNet.StringFixed(2),
		BankBalanceFinal:     closing.BankBalanceFinal.StringFixed(2),
		Notes:                closing.Notes,
		ClosedByID:           closing.ClosedByID,
		ClosedByName:         closing.ClosedByName,
		ClosedByEmail:        closing.ClosedByEmail,
		CreatedAt:            closing.CreatedAt.Format(time.RFC3339),
	}
}
