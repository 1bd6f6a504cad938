package mongo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ferreteria-cash-recon/internal/domain/records"
)

const (
	// SupplierPaymentsCollectionName is the name of the supplier payments collection in MongoDB
	SupplierPaymentsCollectionName = "supplier_payments"
)

// PayablePaymentRepository implements records.PayablePaymentRepository for MongoDB
type PayablePaymentRepository struct {
	db     *mongo.Database
	logger *slog.Logger
}

// NewPayablePaymentRepository creates a new MongoDB supplier payment repository
func NewPayablePaymentRepository(logger *slog.Logger, db *mongo.Database) records.PayablePaymentRepository {
	return &PayablePaymentRepository{
		db:     db,
		logger: logger,
	}
}

type payablePaymentDoc struct {
	ID               uuid.UUID            `bson:"_id"`
	SupplierID       uuid.UUID            `bson:"supplier_id"`
	SupplierName     string               `bson:"supplier_name,omitempty"`
	Amount           primitive.Decimal128 `bson:"amount"`
	Method           string               `bson:"method"`
	PaidAt           time.Time            `bson:"paid_at"`
	Reference        string               `bson:"reference,omitempty"`
	Notes            string               `bson:"notes,omitempty"`
	ResultingBalance primitive.Decimal128 `bson:"resulting_balance"`
}

func (d payablePaymentDoc) toDomain() records.PayablePayment {
	return records.PayablePayment{
		ID:               d.ID,
		SupplierID:       d.SupplierID,
		SupplierName:     d.SupplierName,
		Amount:           toAmount(d.Amount),
		Method:           d.Method,
		PaidAt:           d.PaidAt,
		Reference:        d.Reference,
		Notes:            d.Notes,
		ResultingBalance: toAmount(d.ResultingBalance),
	}
}

// ListPaidInWindow retrieves supplier payments within the window, newest first.
func (r *PayablePaymentRepository) ListPaidInWindow(ctx context.Context, start, end time.Time) ([]records.PayablePayment, error) {
	collection := r.db.Collection(SupplierPaymentsCollectionName)

	filter := bson.M{
		"paid_at": bson.M{
			"$gte": start,
			"$lte": end,
		},
	}
	opts := options.Find().SetSort(bson.M{"paid_at": -1})

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		r.logger.Error("Failed to get supplier payments in window",
			"start", start,
			"end", end,
			"error", err)
		return nil, fmt.Errorf("failed to get supplier payments in window: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []payablePaymentDoc
	if err := cursor.All(ctx, &docs); err != nil {
		r.logger.Error("Failed to decode supplier payments",
			"start", start,
			"end", end,
			"error", err)
		return nil, fmt.Errorf("failed to decode supplier payments: %w", err)
	}

	payments := make([]records.PayablePayment, 0, len(docs))
	for _, d := range docs {
		payments = append(payments, d.toDomain())
	}

	return payments, nil
}
