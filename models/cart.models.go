package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem references a catalog product with a quantity. A cart holds at
// most one item per product; adding again increments the quantity.
type CartItem struct {
	Product primitive.ObjectID `bson:"product" json:"product"`
	Qty     int                `bson:"qty" json:"qty"`
}

// Cart is a customer's mutable pre-checkout selection, one per customer.
// It is created lazily on first mutation and cleared (not deleted) when
// an order is built from it.
type Cart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Customer  primitive.ObjectID `bson:"customer" json:"customer"`
	Items     []CartItem         `bson:"items" json:"items"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}
