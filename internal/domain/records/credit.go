package records

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreditOrigin tags how a receivable came to exist.
type CreditOrigin string

const (
	// CreditOriginSale marks a receivable that originated from an unpaid sale.
	// A grant with this origin must reference exactly one sale.
	CreditOriginSale  CreditOrigin = "SALE"
	CreditOriginOther CreditOrigin = "OTHER"
)

// CreditGrant is an accounts-receivable origination: credit extended to a debtor,
// either for a sale taken on credit or for some other obligation.
type CreditGrant struct {
	ID         uuid.UUID       `json:"id"`
	Code       string          `json:"code,omitempty"`
	DebtorID   uuid.UUID       `json:"debtor_id"`
	DebtorName string          `json:"debtor_name,omitempty"`
	Origin     CreditOrigin    `json:"origin"`
	Amount     decimal.Decimal `json:"amount"`
	Balance    decimal.Decimal `json:"balance"`
	Status     string          `json:"status,omitempty"`
	GrantedAt  time.Time       `json:"granted_at"`
	SaleID     *uuid.UUID      `json:"sale_id,omitempty"` // set iff Origin == CreditOriginSale
	Reason     string          `json:"reason,omitempty"`
}

// CreditSaleIDs collects the sale ids referenced by sale-origin grants. A sale whose
// id appears in this set is credit-classified; every other sale is cash-classified.
func CreditSaleIDs(grants []CreditGrant) map[uuid.UUID]struct{} {
	ids := make(map[uuid.UUID]struct{})
	for _, g := range grants {
		if g.Origin == CreditOriginSale && g.SaleID != nil {
			ids[*g.SaleID] = struct{}{}
		}
	}
	return ids
}

// ReceivablePayment is a repayment against a credit grant.
type ReceivablePayment struct {
	ID         uuid.UUID       `json:"id"`
	CreditID   uuid.UUID       `json:"credit_id"`
	DebtorID   uuid.UUID       `json:"debtor_id"`
	DebtorName string          `json:"debtor_name,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"` // free-form tag, normalized via ReceivableChannel
	PaidAt     time.Time       `json:"paid_at"`
	Notes      string          `json:"notes,omitempty"`
}
