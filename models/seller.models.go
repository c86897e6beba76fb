package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ShippingOption is one delivery choice a seller offers.
type ShippingOption struct {
	Name          string  `bson:"name" json:"name"`
	Cost          float64 `bson:"cost" json:"cost"`
	EstimatedDays int     `bson:"estimated_days" json:"estimatedDays"`
	Active        bool    `bson:"active" json:"active"`
}

// SellerPolicies holds a store's customer-facing policy text.
type SellerPolicies struct {
	ReturnPolicy   string `bson:"return_policy,omitempty" json:"returnPolicy,omitempty"`
	ShippingPolicy string `bson:"shipping_policy,omitempty" json:"shippingPolicy,omitempty"`
	SupportEmail   string `bson:"support_email,omitempty" json:"supportEmail,omitempty"`
}

// SellerPayout is where a seller gets paid out.
type SellerPayout struct {
	Method          string `bson:"method" json:"method"` // bank, paypal, stripe
	AccountHolder   string `bson:"account_holder,omitempty" json:"accountHolder,omitempty"`
	AccountNumber   string `bson:"account_number,omitempty" json:"accountNumber,omitempty"`
	IfscOrSwift     string `bson:"ifsc_or_swift,omitempty" json:"ifscOrSwift,omitempty"`
	PaypalEmail     string `bson:"paypal_email,omitempty" json:"paypalEmail,omitempty"`
	StripeAccountID string `bson:"stripe_account_id,omitempty" json:"stripeAccountId,omitempty"`
}

// SellerProfile is a seller's storefront settings, one per seller,
// created on first access.
type SellerProfile struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Seller          primitive.ObjectID `bson:"seller" json:"seller"`
	StoreName       string             `bson:"store_name,omitempty" json:"storeName,omitempty"`
	Logo            string             `bson:"logo,omitempty" json:"logo,omitempty"`
	Bio             string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Policies        SellerPolicies     `bson:"policies,omitempty" json:"policies,omitempty"`
	ShippingOptions []ShippingOption   `bson:"shipping_options,omitempty" json:"shippingOptions,omitempty"`
	Payout          SellerPayout       `bson:"payout,omitempty" json:"payout,omitempty"`
	CreatedAt       time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updatedAt"`
}
