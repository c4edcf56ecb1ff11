package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Transaction is the persistence shape of a transaction record in the
// document store. The collection assigns ID on insert; Amount is stored as
// Decimal128 so equality filters and comparisons stay exact.
type Transaction struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	Type        string               `bson:"type"`
	Amount      primitive.Decimal128 `bson:"amount"`
	Category    string               `bson:"category"`
	Description string               `bson:"description"`
	Date        time.Time            `bson:"date"`
	CreatedAt   time.Time            `bson:"created_at"`
}
