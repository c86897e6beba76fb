package orders

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-marketplace/models"
)

// SellerOrderView is an order as a participating seller sees it: only
// that seller's line items, never another seller's items or prices.
type SellerOrderView struct {
	ID       primitive.ObjectID `json:"id"`
	Customer primitive.ObjectID `json:"customer"`
	Status   string             `json:"status"`
	PlacedAt time.Time          `json:"placedAt"`
	Totals   Totals             `json:"totals"`
	Items    []models.OrderItem `json:"items"`
}

// ListForCustomer returns the customer's orders, newest first, with full
// line items.
func (s *Service) ListForCustomer(ctx context.Context, customerID primitive.ObjectID) ([]models.Order, error) {
	return s.orders.FindByCustomer(ctx, customerID)
}

// ListForSeller returns every order containing at least one of the
// seller's line items, projected down to just those items.
func (s *Service) ListForSeller(ctx context.Context, sellerID primitive.ObjectID) ([]SellerOrderView, error) {
	orders, err := s.orders.FindBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	views := make([]SellerOrderView, 0, len(orders))
	for _, o := range orders {
		var items []models.OrderItem
		for _, it := range o.Items {
			if !it.Seller.IsZero() && it.Seller == sellerID {
				items = append(items, it)
			}
		}
		views = append(views, SellerOrderView{
			ID:       o.ID,
			Customer: o.Customer,
			Status:   o.Status,
			PlacedAt: o.PlacedAt,
			Totals: Totals{
				Subtotal: o.Subtotal,
				Tax:      o.Tax,
				Shipping: o.Shipping,
				Total:    o.Total,
			},
			Items: items,
		})
	}
	return views, nil
}
