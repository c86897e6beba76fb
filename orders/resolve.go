package orders

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-marketplace/models"
)

// Selection is one caller-supplied (product, qty) pair for the buy-now
// path.
type Selection struct {
	ProductID primitive.ObjectID `json:"productId"`
	Qty       int                `json:"qty"`
}

// resolveFromCart turns the customer's stored cart into priced line
// items. Cart entries whose product no longer exists are silently
// dropped rather than blocking checkout: the cart path is lenient about
// stale references. Name, price and seller come from the catalog as it
// stands right now.
func (s *Service) resolveFromCart(ctx context.Context, customerID primitive.ObjectID) ([]models.OrderItem, error) {
	cart, err := s.carts.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	ids := make([]primitive.ObjectID, 0, len(cart.Items))
	for _, it := range cart.Items {
		ids = append(ids, it.Product)
	}
	products, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var items []models.OrderItem
	for _, it := range cart.Items {
		p, ok := byID[it.Product]
		if !ok {
			continue
		}
		items = append(items, models.OrderItem{
			Product: p.ID,
			Seller:  p.Seller,
			Name:    p.Name,
			Price:   p.Price,
			Qty:     it.Qty,
		})
	}
	if len(items) == 0 {
		// Every referenced product is gone; nothing left to order.
		return nil, ErrEmptyCart
	}
	return items, nil
}

// resolveDirect turns an explicit selection list into priced line items.
// Unlike the cart path this one is strict: any missing product aborts
// the whole order.
func (s *Service) resolveDirect(ctx context.Context, selections []Selection) ([]models.OrderItem, error) {
	if len(selections) == 0 {
		return nil, ErrNoItems
	}

	ids := make([]primitive.ObjectID, 0, len(selections))
	for _, sel := range selections {
		ids = append(ids, sel.ProductID)
	}
	products, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]models.OrderItem, 0, len(selections))
	for _, sel := range selections {
		p, ok := byID[sel.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, sel.ProductID.Hex())
		}
		qty := sel.Qty
		if qty < 1 {
			qty = 1
		}
		items = append(items, models.OrderItem{
			Product: p.ID,
			Seller:  p.Seller,
			Name:    p.Name,
			Price:   p.Price,
			Qty:     qty,
		})
	}
	return items, nil
}
