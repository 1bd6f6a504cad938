package records

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferDirection partitions bank transfers exhaustively and disjointly.
type TransferDirection string

const (
	TransferInflow  TransferDirection = "INFLOW"
	TransferOutflow TransferDirection = "OUTFLOW"
)

// Transfer is a movement on the bank account, recorded separately from sales and
// supplier payments.
type Transfer struct {
	ID        uuid.UUID         `json:"id"`
	Amount    decimal.Decimal   `json:"amount"`
	Direction TransferDirection `json:"direction"`
	Reason    string            `json:"reason,omitempty"`
	MovedAt   time.Time         `json:"moved_at"`
}

// TransferSet is the composite result of the transfers fetch: the day's transfers
// partitioned by direction with subtotal sums precomputed.
type TransferSet struct {
	Inflows      []Transfer      `json:"inflows"`
	Outflows     []Transfer      `json:"outflows"`
	All          []Transfer      `json:"all"`
	InflowTotal  decimal.Decimal `json:"inflow_total"`
	OutflowTotal decimal.Decimal `json:"outflow_total"`
	Net          decimal.Decimal `json:"net"`
}

// NewTransferSet partitions transfers by direction and computes subtotals.
// Net is inflow total minus outflow total.
func NewTransferSet(transfers []Transfer) TransferSet {
	set := TransferSet{
		Inflows:      []Transfer{},
		Outflows:     []Transfer{},
		All:          transfers,
		InflowTotal:  decimal.Zero,
		OutflowTotal: decimal.Zero,
	}
	if set.All == nil {
		set.All = []Transfer{}
	}

	for _, t := range transfers {
		if t.Direction == TransferInflow {
			set.Inflows = append(set.Inflows, t)
			set.InflowTotal = set.InflowTotal.Add(t.Amount)
		} else {
			set.Outflows = append(set.Outflows, t)
			set.OutflowTotal = set.OutflowTotal.Add(t.Amount)
		}
	}

	set.Net = set.InflowTotal.Sub(set.OutflowTotal)
	return set
}

// EmptyTransferSet is the zero-valued aggregate used when the transfers fetch
// degrades after a retrieval fault.
func EmptyTransferSet() TransferSet {
	return NewTransferSet(nil)
}
