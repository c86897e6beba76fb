package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is the caller-declared payment record on an order. The system
// never verifies it with a processor; method and status are tags.
type Payment struct {
	Method string `bson:"method" json:"method"` // cod, card, upi, wallet, paypal, stripe
	Status string `bson:"status" json:"status"` // pending, paid, failed, refunded
	TxnID  string `bson:"txn_id,omitempty" json:"txnId,omitempty"`
}

// OrderItem is a priced snapshot of one product at order time. Name,
// price and seller are copied from the catalog when the order is created
// and never change afterwards.
type OrderItem struct {
	Product primitive.ObjectID `bson:"product" json:"product"`
	Seller  primitive.ObjectID `bson:"seller,omitempty" json:"seller,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Price   float64            `bson:"price" json:"price"`
	Qty     int                `bson:"qty" json:"qty"`
}

// Order is created once from a cart or a direct selection. After
// creation only Status and Payment.Status ever change; items, totals and
// the address snapshot are frozen.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Customer        primitive.ObjectID `bson:"customer" json:"customer"`
	Items           []OrderItem        `bson:"items" json:"items"`
	Subtotal        float64            `bson:"subtotal" json:"subtotal"`
	Tax             float64            `bson:"tax" json:"tax"`
	Shipping        float64            `bson:"shipping" json:"shipping"`
	Total           float64            `bson:"total" json:"total"`
	Payment         Payment            `bson:"payment" json:"payment"`
	ShippingAddress Address            `bson:"shipping_address" json:"shippingAddress"`
	Status          string             `bson:"status" json:"status"` // pending, confirmed, shipped, delivered, cancelled
	PlacedAt        time.Time          `bson:"placed_at" json:"placedAt"`
	CreatedAt       time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updatedAt"`
}
