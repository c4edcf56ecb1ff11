package mapping

import (
	"fmt"

	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	"github.com/fintrackr/finance_tracker_app/internal/models"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ToTransactionModel converts a domain transaction into its persistence
// shape. The ID field is left zero so the store assigns it on insert.
func ToTransactionModel(txn domain.Transaction) (models.Transaction, error) {
	amount, err := primitive.ParseDecimal128(txn.Amount.String())
	if err != nil {
		return models.Transaction{}, fmt.Errorf("failed to convert amount %s to decimal128: %w", txn.Amount, err)
	}

	return models.Transaction{
		Type:        string(txn.Type),
		Amount:      amount,
		Category:    txn.Category,
		Description: txn.Description,
		Date:        txn.Date,
		CreatedAt:   txn.CreatedAt,
	}, nil
}

// ToDomainTransaction converts a persisted record back into the domain shape,
// exposing the store-assigned ObjectID as the opaque transaction ID.
func ToDomainTransaction(model models.Transaction) (domain.Transaction, error) {
	amount, err := decimal.NewFromString(model.Amount.String())
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("failed to parse stored amount %s: %w", model.Amount, err)
	}

	return domain.Transaction{
		TransactionID: model.ID.Hex(),
		Type:          domain.TransactionType(model.Type),
		Amount:        amount,
		Category:      model.Category,
		Description:   model.Description,
		Date:          model.Date.UTC(),
		CreatedAt:     model.CreatedAt.UTC(),
	}, nil
}

// ToDomainTransactions converts a slice of persisted records.
func ToDomainTransactions(modelTxns []models.Transaction) ([]domain.Transaction, error) {
	txns := make([]domain.Transaction, len(modelTxns))
	for i, model := range modelTxns {
		txn, err := ToDomainTransaction(model)
		if err != nil {
			return nil, err
		}
		txns[i] = txn
	}
	return txns, nil
}
