package records

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func transfer(amount string, dir TransferDirection) Transfer {
	return Transfer{
		ID:        uuid.New(),
		Amount:    decimal.RequireFromString(amount),
		Direction: dir,
	}
}

func TestNewTransferSet(t *testing.T) {
	transfers := []Transfer{
		transfer("100.50", TransferInflow),
		transfer("20.25", TransferOutflow),
		transfer("9.50", TransferInflow),
		transfer("0.75", TransferOutflow),
	}

	set := NewTransferSet(transfers)

	assert.Len(t, set.Inflows, 2)
	assert.Len(t, set.Outflows, 2)
	// Partition is exhaustive and disjoint.
	assert.Equal(t, len(set.All), len(set.Inflows)+len(set.Outflows))

	assert.True(t, set.InflowTotal.Equal(decimal.RequireFromString("110.00")), set.InflowTotal.String())
	assert.True(t, set.OutflowTotal.Equal(decimal.RequireFromString("21.00")), set.OutflowTotal.String())
	assert.True(t, set.Net.Equal(set.InflowTotal.Sub(set.OutflowTotal)))
}

func TestNewTransferSet_Empty(t *testing.T) {
	set := EmptyTransferSet()

	assert.Empty(t, set.All)
	assert.Empty(t, set.Inflows)
	assert.Empty(t, set.Outflows)
	assert.True(t, set.InflowTotal.IsZero())
	assert.True(t, set.OutflowTotal.IsZero())
	assert.True(t, set.Net.IsZero())
}

func TestCreditSaleIDs(t *testing.T) {
	saleID := uuid.New()
	otherSaleID := uuid.New()

	grants := []CreditGrant{
		{ID: uuid.New(), Origin: CreditOriginSale, SaleID: &saleID},
		{ID: uuid.New(), Origin: CreditOriginOther, SaleID: &otherSaleID}, // wrong origin, ignored
		{ID: uuid.New(), Origin: CreditOriginSale, SaleID: nil},           // broken link, ignored
	}

	ids := CreditSaleIDs(grants)

	assert.Len(t, ids, 1)
	_, ok := ids[saleID]
	assert.True(t, ok)
}
