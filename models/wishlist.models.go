package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WishlistItem is a saved product reference.
type WishlistItem struct {
	Product primitive.ObjectID `bson:"product" json:"product"`
	AddedAt time.Time          `bson:"added_at" json:"addedAt"`
}

// Wishlist is a customer's saved-for-later list, one per customer, no
// duplicate products.
type Wishlist struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Customer  primitive.ObjectID `bson:"customer" json:"customer"`
	Items     []WishlistItem     `bson:"items" json:"items"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}
