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
	// SalesCollectionName is the name of the sales collection in MongoDB
	SalesCollectionName = "sales"
)

// SaleRepository implements the records.SaleRepository interface for MongoDB
type SaleRepository struct {
	db     *mongo.Database
	logger *slog.Logger
}

// NewSaleRepository creates a new MongoDB sale repository
func NewSaleRepository(logger *slog.Logger, db *mongo.Database) records.SaleRepository {
	return &SaleRepository{
		db:     db,
		logger: logger,
	}
}

type saleDoc struct {
	ID       uuid.UUID            `bson:"_id"`
	SoldAt   time.Time            `bson:"sold_at"`
	Total    primitive.Decimal128 `bson:"total"`
	Profit   primitive.Decimal128 `bson:"profit"`
	Status   string               `bson:"status"`
	Receipt  string               `bson:"receipt,omitempty"`
	SoldByID string               `bson:"sold_by_id,omitempty"`
}

func (d saleDoc) toDomain() records.Sale {
	return records.Sale{
		ID:       d.ID,
		SoldAt:   d.SoldAt,
		Total:    toAmount(d.Total),
		Profit:   toAmount(d.Profit),
		Status:   records.SaleStatus(d.Status),
		Receipt:  d.Receipt,
		SoldByID: d.SoldByID,
	}
}

// ListRevenueInWindow retrieves sales within the window (inclusive both ends) whose
// status counts toward revenue. Results are sorted by sale time descending.
func (r *SaleRepository) ListRevenueInWindow(ctx context.Context, start, end time.Time) ([]records.Sale, error) {
	collection := r.db.Collection(SalesCollectionName)

	statuses := make([]string, 0, len(records.RevenueStatuses))
	for _, s := range records.RevenueStatuses {
		statuses = append(statuses, string(s))
	}

	filter := bson.M{
		"sold_at": bson.M{
			"$gte": start,
			"$lte": end,
		},
		"status": bson.M{"$in": statuses},
	}
	opts := options.Find().SetSort(bson.M{"sold_at": -1})

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		r.logger.Error("Failed to get sales in window",
			"start", start,
			"end", end,
			"error", err)
		return nil, fmt.Errorf("failed to get sales in window: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []saleDoc
	if err := cursor.All(ctx, &docs); err != nil {
		r.logger.Error("Failed to decode sales",
			"start", start,
			"end", end,
			"error", err)
		return nil, fmt.Errorf("failed to decode sales: %w", err)
	}

	sales := make([]records.Sale, 0, len(docs))
	for _, d := range docs {
		sales = append(sales, d.toDomain())
	}

	return sales, nil
}
