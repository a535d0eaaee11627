package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// DefaultLowStockThreshold applies to items created without an explicit one.
const DefaultLowStockThreshold = 5

type Food struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name              string             `bson:"name" json:"name"`
	Description       string             `bson:"description,omitempty" json:"description,omitempty"`
	Price             int64              `bson:"price" json:"price"`
	Image             string             `bson:"image,omitempty" json:"image,omitempty"`
	Category          string             `bson:"category" json:"category"`
	TodaysMenu        bool               `bson:"todaysMenu" json:"todaysMenu"`
	Stock             int64              `bson:"stock" json:"stock"`
	LowStockThreshold int64              `bson:"lowStockThreshold" json:"lowStockThreshold"`
}

// LowOnStock reports whether the item is at or below its alert threshold.
func (f *Food) LowOnStock() bool {
	threshold := f.LowStockThreshold
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	return f.Stock <= threshold
}
