package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/fintrackr/finance_tracker_app/internal/apperrors"
	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackr/finance_tracker_app/internal/core/ports/repositories"
	"github.com/fintrackr/finance_tracker_app/internal/models"
	"github.com/fintrackr/finance_tracker_app/internal/utils/mapping"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const transactionCollection = "transactions"

// Ordering: date descending, ties broken by insertion recency so that pages
// over equal dates are stable (no duplicates or gaps between pages).
var transactionSort = bson.D{
	{Key: "date", Value: -1},
	{Key: "created_at", Value: -1},
	{Key: "_id", Value: -1},
}

// MongoTransactionRepository implements the transaction store contract on a
// MongoDB collection.
type MongoTransactionRepository struct {
	coll *mongo.Collection
}

// NewMongoTransactionRepository creates a repository bound to the
// transactions collection of the given database.
func NewMongoTransactionRepository(db *mongo.Database) *MongoTransactionRepository {
	return &MongoTransactionRepository{coll: db.Collection(transactionCollection)}
}

var _ portsrepo.TransactionRepository = (*MongoTransactionRepository)(nil)

// EnsureIndexes creates the compound index backing the list ordering. Called
// once at startup, before the server begins accepting requests.
func (r *MongoTransactionRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "date", Value: -1},
			{Key: "created_at", Value: -1},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create transaction indexes: %w", err)
	}
	return nil
}

// SaveTransaction inserts a single record and returns it with the
// store-assigned ObjectID exposed as the opaque transaction ID.
func (r *MongoTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	model, err := mapping.ToTransactionModel(txn)
	if err != nil {
		return nil, err
	}

	result, err := r.coll.InsertOne(ctx, model)
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted ID type %T", result.InsertedID)
	}

	saved := txn
	saved.TransactionID = insertedID.Hex()
	return &saved, nil
}

// FindTransactions retrieves records matching the filter in list order,
// applying the pagination window when one is given.
func (r *MongoTransactionRepository) FindTransactions(ctx context.Context, filter domain.TransactionFilter, limit, offset int) ([]domain.Transaction, error) {
	opts := options.Find().SetSort(transactionSort)
	if offset > 0 {
		opts.SetSkip(int64(offset))
	}
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	query, err := buildFilterQuery(filter)
	if err != nil {
		return nil, err
	}

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer cursor.Close(ctx)

	var modelTxns []models.Transaction
	if err := cursor.All(ctx, &modelTxns); err != nil {
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}

	return mapping.ToDomainTransactions(modelTxns)
}

// CountTransactions counts all records matching the filter, independent of
// any pagination window.
func (r *MongoTransactionRepository) CountTransactions(ctx context.Context, filter domain.TransactionFilter) (int64, error) {
	query, err := buildFilterQuery(filter)
	if err != nil {
		return 0, err
	}

	count, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// FindTransactionByID retrieves a single record by its hex ObjectID.
func (r *MongoTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	objectID, err := primitive.ObjectIDFromHex(transactionID)
	if err != nil {
		// A malformed ID can never match a stored record.
		return nil, apperrors.ErrNotFound
	}

	var model models.Transaction
	err = r.coll.FindOne(ctx, bson.M{"_id": objectID}).Decode(&model)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	txn, err := mapping.ToDomainTransaction(model)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// buildFilterQuery translates the domain filter set into a bson query. All
// supplied constraints combine with logical AND; absent fields add nothing.
func buildFilterQuery(filter domain.TransactionFilter) (bson.M, error) {
	query := bson.M{}

	if filter.Type != "" {
		query["type"] = string(filter.Type)
	}
	if filter.Category != "" {
		query["category"] = bson.M{"$regex": regexp.QuoteMeta(filter.Category), "$options": "i"}
	}
	if filter.Description != "" {
		query["description"] = bson.M{"$regex": regexp.QuoteMeta(filter.Description), "$options": "i"}
	}
	if filter.Amount != nil {
		amount, err := primitive.ParseDecimal128(filter.Amount.String())
		if err != nil {
			return nil, fmt.Errorf("%w: invalid amount filter", apperrors.ErrInvalidQuery)
		}
		query["amount"] = amount
	}

	return query, nil
}
