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
	// ReceivablePaymentsCollectionName is the name of the receivable payments collection in MongoDB
	ReceivablePaymentsCollectionName = "receivable_payments"
)

// ReceivablePaymentRepository implements records.ReceivablePaymentRepository for MongoDB
type ReceivablePaymentRepository struct {
	db     *mongo.Database
	logger *slog.Logger
}

// NewReceivablePaymentRepository creates a new MongoDB receivable payment repository
func NewReceivablePaymentRepository(logger *slog.Logger, db *mongo.Database) records.ReceivablePaymentRepository {
	return &ReceivablePaymentRepository{
		db:     db,
		logger: logger,
	}
}

type receivablePaymentDoc struct {
	ID         uuid.UUID            `bson:"_id"`
	CreditID   uuid.UUID            `bson:"credit_id"`
	DebtorID   uuid.UUID            `bson:"debtor_id"`
	DebtorName string               `bson:"debtor_name,omitempty"`
	Amount     primitive.Decimal128 `bson:"amount"`
	Method     string               `bson:"method"`
	PaidAt     time.Time            `bson:"paid_at"`
	Notes      string               `bson:"notes,omitempty"`
}

func (d receivablePaymentDoc) toDomain() records.ReceivablePayment {
	return records.ReceivablePayment{
		ID:         d.ID,
		CreditID:   d.CreditID,
		DebtorID:   d.DebtorID,
		DebtorName: d.DebtorName,
		Amount:     toAmount(d.Amount),
		Method:     d.Method,
		PaidAt:     d.PaidAt,
		Notes:      d.Notes,
	}
}

// ListPaidInWindow retrieves receivable repayments within the window, newest first.
func (r *ReceivablePaymentRepository) ListPaidInWindow(ctx context.Context, start, end time.Time) ([]records.ReceivablePayment, error) {
	collection := r.db.Collection(ReceivablePaymentsCollectionName)

	filter := bson.M{
		"paid_at": bson.M{
			"$gte": start,
			"$lte": end,
		},
	}
	opts := options.Find().SetSort(bson.M{"paid_at": -1})

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		r.logger.Error("Failed to get receivable payments in window",
			"start", start,
			"end", end,
			"error", err)
		return nil, fmt.Errorf("failed to get receivable payments in window: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []receivablePaymentDoc
	if err := cursor.All(ctx, &docs); err != nil {
		r.logger.Error("Failed to decode receivable payments",
			"start", start,
			"end", end,
			"error", err)
		return nil, fmt.Errorf("failed to decode receivable payments: %w", err)
	}

	payments := make([]records.ReceivablePayment, 0, len(docs))
	for _, d := range docs {
		payments = append(payments, d.toDomain())
	}

	return payments, nil
}
