// Package mongo provides MongoDB implementations of the read-only record
// repositories. All monetary fields are stored as Decimal128 and converted to
// decimal.Decimal at this boundary so no binary floating point ever enters the
// aggregation.
package mongo

import (
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// toAmount converts a stored Decimal128 into an exact decimal amount.
// Non-finite values (NaN, Infinity) degrade to zero.
func toAmount(d primitive.Decimal128) decimal.Decimal {
	amount, err := decimal.NewFromString(d.String())
	if err != nil {
		return decimal.Zero
	}
	return amount
}
