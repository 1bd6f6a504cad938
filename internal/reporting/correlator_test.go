package reporting

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferreteria-cash-recon/internal/domain/records"
)

func TestMatchSameDaySettlements(t *testing.T) {
	grantA := records.CreditGrant{ID: uuid.New(), Amount: decimal.RequireFromString("50.00")}
	grantB := records.CreditGrant{ID: uuid.New(), Amount: decimal.RequireFromString("80.00")}

	payments := []records.ReceivablePayment{
		{ID: uuid.New(), CreditID: grantA.ID, Amount: decimal.RequireFromString("20.00")},
		{ID: uuid.New(), CreditID: grantA.ID, Amount: decimal.RequireFromString("30.00")},
		{ID: uuid.New(), CreditID: uuid.New(), Amount: decimal.RequireFromString("99.00")}, // pays an older grant
	}

	settled := MatchSameDaySettlements([]records.CreditGrant{grantA, grantB}, payments)

	require.Len(t, settled, 1)
	assert.Equal(t, grantA.ID, settled[0].Grant.ID)
	assert.Len(t, settled[0].Payments, 2)
	assert.True(t, settled[0].TotalPaid.Equal(decimal.RequireFromString("50.00")), settled[0].TotalPaid.String())
}

func TestMatchSameDaySettlements_NoMatches(t *testing.T) {
	grants := []records.CreditGrant{{ID: uuid.New()}}

	settled := MatchSameDaySettlements(grants, nil)

	assert.Empty(t, settled)
	assert.NotNil(t, settled)
}

func TestMatchSameDaySettlements_FullSameDayRepayment(t *testing.T) {
	grant := records.CreditGrant{ID: uuid.New(), Amount: decimal.RequireFromString("50.00")}
	payment := records.ReceivablePayment{
		ID:       uuid.New(),
		CreditID: grant.ID,
		Amount:   decimal.RequireFromString("50.00"),
	}

	settled := MatchSameDaySettlements([]records.CreditGrant{grant}, []records.ReceivablePayment{payment})

	require.Len(t, settled, 1)
	assert.True(t, settled[0].TotalPaid.Equal(decimal.RequireFromString("50")))
}
