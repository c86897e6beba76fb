package orders

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-marketplace/models"
)

// ProductFinder is the catalog lookup the order core consumes.
type ProductFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error)
}

// CartStore reads and clears customer carts. FindByCustomer returns
// (nil, nil) when the customer has no cart yet.
type CartStore interface {
	FindByCustomer(ctx context.Context, customerID primitive.ObjectID) (*models.Cart, error)
	SetItems(ctx context.Context, customerID primitive.ObjectID, items []models.CartItem) error
}

// OrderStore persists orders and their status overwrites.
type OrderStore interface {
	Insert(ctx context.Context, o *models.Order) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
	FindByCustomer(ctx context.Context, customerID primitive.ObjectID) ([]models.Order, error)
	FindBySeller(ctx context.Context, sellerID primitive.ObjectID) ([]models.Order, error)
}
