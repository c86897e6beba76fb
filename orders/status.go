package orders

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-marketplace/models"
)

var orderStatuses = map[string]bool{
	StatusPending:   true,
	StatusConfirmed: true,
	StatusShipped:   true,
	StatusDelivered: true,
	StatusCancelled: true,
}

// Statuses a customer may still cancel from. "processing" appears on
// some stored orders as a pre-shipment status and counts as cancellable.
var cancellableStatuses = map[string]bool{
	StatusPending:   true,
	StatusConfirmed: true,
	"processing":    true,
}

// SetStatus lets a seller overwrite an order's status. The seller must
// own at least one line item in the order. Any of the five recognized
// statuses is accepted, including retrograde moves; the policy is
// deliberately this loose and callers depend on it.
func (s *Service) SetStatus(ctx context.Context, orderID, sellerID primitive.ObjectID, status string) (*models.Order, error) {
	if !orderStatuses[status] {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if !sellerInOrder(order, sellerID) {
		return nil, ErrForbidden
	}

	if err := s.orders.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	order.Status = status
	order.UpdatedAt = s.now()
	return order, nil
}

// Cancel lets the owning customer cancel an order that has not shipped.
// It is a pure status flip: no refund, no stock restoration.
func (s *Service) Cancel(ctx context.Context, orderID, customerID primitive.ObjectID) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if order.Customer != customerID {
		return nil, ErrForbidden
	}

	if !cancellableStatuses[strings.ToLower(order.Status)] {
		return nil, fmt.Errorf("%w at status %q", ErrNotCancellable, order.Status)
	}

	if err := s.orders.UpdateStatus(ctx, orderID, StatusCancelled); err != nil {
		return nil, err
	}
	order.Status = StatusCancelled
	order.UpdatedAt = s.now()
	return order, nil
}

func sellerInOrder(order *models.Order, sellerID primitive.ObjectID) bool {
	for _, it := range order.Items {
		if !it.Seller.IsZero() && it.Seller == sellerID {
			return true
		}
	}
	return false
}
