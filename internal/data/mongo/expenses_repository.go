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
	// ExpensesCollectionName is the name of the expenses collection in MongoDB
	ExpensesCollectionName = "expenses"
)

// ExpenseRepository implements records.ExpenseRepository for MongoDB
type ExpenseRepository struct {
	db     *mongo.Database
	logger *slog.Logger
}

// NewExpenseRepository creates a new MongoDB expense repository
func NewExpenseRepository(logger *slog.Logger, db *mongo.Database) records.ExpenseRepository {
	return &ExpenseRepository{
		db:     db,
		logger: logger,
	}
}

type expenseDoc struct {
	ID         uuid.UUID            `bson:"_id"`
	Amount     primitive.Decimal128 `bson:"amount"`
	Reason     string               `bson:"reason"`
	SpentAt    time.Time            `bson:"spent_at"`
	RecordedBy string               `bson:"recorded_by,omitempty"`
}

func (d expenseDoc) toDomain() records.Expense {
	return records.Expense{
		ID:         d.ID,
		Amount:     toAmount(d.Amount),
		Reason:     d.Reason,
		SpentAt:    d.SpentAt,
		RecordedBy: d.RecordedBy,
	}
}

// ListInWindow retrieves expenses within the window, newest first.
func (r *ExpenseRepository) ListInWindow(ctx context.Context, start, end time.Time) ([]records.Expense, error) {
	collection := r.db.Collection(ExpensesCollectionName)

	filter := bson.M{
		"spent_at": bson.M{
			"$gte": start,
			"$lte": end,
		},
	}
	opts := options.Find().SetSort(bson.M{"spent_at": -1})

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		r.logger.Error("Failed to get expenses in window",
			"start", start,
			"end", end,
			"error", err)
		return nil, fmt.Errorf("failed to get expenses in window: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []expenseDoc
	if err := cursor.All(ctx, &docs); err != nil {
		r.logger.Error("Failed to decode expenses",
			"start", start,
			"end", end,
			"error", err)
		return nil, fmt.Errorf("failed to decode expenses: %w", err)
	}

	expenses := make([]records.Expense, 0, len(docs))
	for _, d := range docs {
		expenses = append(expenses, d.toDomain())
	}

	return expenses, nil
}
