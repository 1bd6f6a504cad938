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
	// CreditGrantsCollectionName is the name of the credit grants collection in MongoDB
	CreditGrantsCollectionName = "credit_grants"
)

// CreditGrantRepository implements records.CreditGrantRepository for MongoDB
type CreditGrantRepository struct {
	db     *mongo.Database
	logger *slog.Logger
}

// NewCreditGrantRepository creates a new MongoDB credit grant repository
func NewCreditGrantRepository(logger *slog.Logger, db *mongo.Database) records.CreditGrantRepository {
	return &CreditGrantRepository{
		db:     db,
		logger: logger,
	}
}

type creditGrantDoc struct {
	ID         uuid.UUID            `bson:"_id"`
	Code       string               `bson:"code,omitempty"`
	DebtorID   uuid.UUID            `bson:"debtor_id"`
	DebtorName string               `bson:"debtor_name,omitempty"`
	Origin     string               `bson:"origin"`
	Amount     primitive.Decimal128 `bson:"amount"`
	Balance    primitive.Decimal128 `bson:"balance"`
	Status     string               `bson:"status,omitempty"`
	GrantedAt  time.Time            `bson:"granted_at"`
	SaleID     *uuid.UUID           `bson:"sale_id,omitempty"`
	Reason     string               `bson:"reason,omitempty"`
}

func (d creditGrantDoc) toDomain() records.CreditGrant {
	return records.CreditGrant{
		ID:         d.ID,
		Code:       d.Code,
		DebtorID:   d.DebtorID,
		DebtorName: d.DebtorName,
		Origin:     records.CreditOrigin(d.Origin),
		Amount:     toAmount(d.Amount),
		Balance:    toAmount(d.Balance),
		Status:     d.Status,
		GrantedAt:  d.GrantedAt,
		SaleID:     d.SaleID,
		Reason:     d.Reason,
	}
}

// ListGrantedInWindow retrieves credit grants originated within the window,
// newest first.
func (r *CreditGrantRepository) ListGrantedInWindow(ctx context.Context, start, end time.Time) ([]records.CreditGrant, error) {
	collection := r.db.Collection(CreditGrantsCollectionName)

	filter := bson.M{
		"granted_at": bson.M{
			"$gte": start,
			"$lte": end,
		},
	}
	opts := options.Find().SetSort(bson.M{"granted_at": -1})

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		r.logger.Error("Failed to get credit grants in window",
			"start", start,
			"end", end,
			"error", err)
		return nil, fmt.Errorf("failed to get credit grants in window: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []creditGrantDoc
	if err := cursor.All(ctx, &docs); err != nil {
		r.logger.Error("Failed to decode credit grants",
			"start", start,
			"end", end,
			"error", err)
		return nil, fmt.Errorf("failed to decode credit grants: %w", err)
	}

	grants := make([]records.CreditGrant, 0, len(docs))
	for _, d := range docs {
		grants = append(grants, d.toDomain())
	}

	return grants, nil
}
