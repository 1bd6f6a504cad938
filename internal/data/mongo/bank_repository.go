package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ferreteria-cash-recon/internal/domain/records"
)

const (
	// BankBalanceCollectionName is the name of the bank balance collection in MongoDB
	BankBalanceCollectionName = "bank_balance"

	// bankBalanceDocID is the fixed id of the singleton snapshot row
	bankBalanceDocID = 1
)

// BankBalanceRepository implements records.BankBalanceRepository for MongoDB
type BankBalanceRepository struct {
	db     *mongo.Database
	logger *slog.Logger
}

// NewBankBalanceRepository creates a new MongoDB bank balance repository
func NewBankBalanceRepository(logger *slog.Logger, db *mongo.Database) records.BankBalanceRepository {
	return &BankBalanceRepository{
		db:     db,
		logger: logger,
	}
}

type bankBalanceDoc struct {
	ID        int                  `bson:"_id"`
	Total     primitive.Decimal128 `bson:"total"`
	UpdatedAt time.Time            `bson:"updated_at"`
}

// Current reads the singleton bank balance snapshot. Returns (nil, nil) when the
// row does not exist.
func (r *BankBalanceRepository) Current(ctx context.Context) (*records.BankBalanceSnapshot, error) {
	collection := r.db.Collection(BankBalanceCollectionName)

	var doc bankBalanceDoc
	err := collection.FindOne(ctx, bson.M{"_id": bankBalanceDocID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		r.logger.Error("Failed to get bank balance snapshot", "error", err)
		return nil, fmt.Errorf("failed to get bank balance snapshot: %w", err)
	}

	return &records.BankBalanceSnapshot{
		Total:     toAmount(doc.Total),
		UpdatedAt: doc.UpdatedAt,
	}, nil
}
