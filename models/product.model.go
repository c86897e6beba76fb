package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog entry owned by a seller. Orders copy name, price
// and seller out of it at order time, so later edits never touch
// existing orders.
type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	Price         float64            `bson:"price" json:"price"`
	OriginalPrice float64            `bson:"original_price,omitempty" json:"originalPrice,omitempty"`
	Discount      float64            `bson:"discount,omitempty" json:"discount,omitempty"` // percent
	Quantity      int                `bson:"quantity" json:"quantity"`
	Category      string             `bson:"category,omitempty" json:"category,omitempty"`
	Brand         string             `bson:"brand,omitempty" json:"brand,omitempty"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"` // /uploads/<filename>
	Seller        primitive.ObjectID `bson:"seller,omitempty" json:"seller,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}
