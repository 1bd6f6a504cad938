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
	// TransfersCollectionName is the name of the transfers collection in MongoDB
	TransfersCollectionName = "transfers"
)

// TransferRepository implements records.TransferRepository for MongoDB
type TransferRepository struct {
	db     *mongo.Database
	logger *slog.Logger
}

// NewTransferRepository creates a new MongoDB transfer repository
func NewTransferRepository(logger *slog.Logger, db *mongo.Database) records.TransferRepository {
	return &TransferRepository{
		db:     db,
		logger: logger,
	}
}

type transferDoc struct {
	ID        uuid.UUID            `bson:"_id"`
	Amount    primitive.Decimal128 `bson:"amount"`
	Direction string               `bson:"direction"`
	Reason    string               `bson:"reason,omitempty"`
	MovedAt   time.Time            `bson:"moved_at"`
}

func (d transferDoc) toDomain() records.Transfer {
	return records.Transfer{
		ID:        d.ID,
		Amount:    toAmount(d.Amount),
		Direction: records.TransferDirection(d.Direction),
		Reason:    d.Reason,
		MovedAt:   d.MovedAt,
	}
}

// ListInWindow retrieves the day's transfers, newest first, already partitioned by
// direction with subtotals precomputed.
func (r *TransferRepository) ListInWindow(ctx context.Context, start, end time.Time) (records.TransferSet, error) {
	collection := r.db.Collection(TransfersCollectionName)

	filter := bson.M{
		"moved_at": bson.M{
			"$gte": start,
			"$lte": end,
		},
	}
	opts := options.Find().SetSort(bson.M{"moved_at": -1})

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		r.logger.Error("Failed to get transfers in window",
			"start", start,
			"end", end,
			"error", err)
		return records.EmptyTransferSet(), fmt.Errorf("failed to get transfers in window: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []transferDoc
	if err := cursor.All(ctx, &docs); err != nil {
		r.logger.Error("Failed to decode transfers",
			"start", start,
			"end", end,
			"error", err)
		return records.EmptyTransferSet(), fmt.Errorf("failed to decode transfers: %w", err)
	}

	transfers := make([]records.Transfer, 0, len(docs))
	for _, d := range docs {
		transfers = append(transfers, d.toDomain())
	}

	return records.NewTransferSet(transfers), nil
}
