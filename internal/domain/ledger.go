package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BusinessAccountName is the singleton settlement ledger credited by every
// successful RF-card debit.
const BusinessAccountName = "main-business"

type RFCard struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CardNumber string             `bson:"cardNumber" json:"cardNumber"`
	Balance    int64              `bson:"balance" json:"balance"`
	OwnerName  string             `bson:"ownerName,omitempty" json:"ownerName,omitempty"`
	LastUsed   *time.Time         `bson:"lastUsed,omitempty" json:"lastUsed,omitempty"`
}

type Account struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Balance     int64              `bson:"balance" json:"balance"`
	LastUpdated time.Time          `bson:"lastUpdated" json:"lastUpdated"`
}
