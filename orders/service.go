package orders

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-marketplace/models"
)

// Order sources.
const (
	SourceCart   = "cart"
	SourceDirect = "direct"
)

// Order statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

var paymentMethods = map[string]bool{
	"cod": true, "card": true, "upi": true, "wallet": true, "paypal": true, "stripe": true,
}

var paymentStatuses = map[string]bool{
	"pending": true, "paid": true, "failed": true, "refunded": true,
}

// Service is the order core: it builds immutable orders out of carts or
// direct selections, governs status transitions, and serves the
// customer and seller read views.
type Service struct {
	orders   OrderStore
	carts    CartStore
	products ProductFinder
	rates    Rates
	now      func() time.Time
}

// NewService wires the order core to its stores. Rates come from
// configuration once, at construction.
func NewService(orders OrderStore, carts CartStore, products ProductFinder, rates Rates) *Service {
	return &Service{
		orders:   orders,
		carts:    carts,
		products: products,
		rates:    rates,
		now:      time.Now,
	}
}

// CreateOrderInput is everything the caller supplies to place an order.
type CreateOrderInput struct {
	Source          string
	Selections      []Selection
	ShippingAddress models.Address
	Payment         models.Payment
}

// CreateOrder converts the customer's cart or a direct selection into a
// persisted order with frozen line items and totals. On the cart path
// the cart is cleared only after the order is durably created; any
// failure before that leaves the cart untouched.
func (s *Service) CreateOrder(ctx context.Context, customerID primitive.ObjectID, in CreateOrderInput) (*models.Order, error) {
	var items []models.OrderItem
	var err error

	switch in.Source {
	case SourceCart:
		items, err = s.resolveFromCart(ctx, customerID)
	case SourceDirect:
		items, err = s.resolveDirect(ctx, in.Selections)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSource, in.Source)
	}
	if err != nil {
		return nil, err
	}

	totals, err := ComputeTotals(items, s.rates)
	if err != nil {
		return nil, err
	}

	payment, err := normalizePayment(in.Payment)
	if err != nil {
		return nil, err
	}

	now := s.now()
	order := &models.Order{
		Customer:        customerID,
		Items:           items,
		Subtotal:        totals.Subtotal,
		Tax:             totals.Tax,
		Shipping:        totals.Shipping,
		Total:           totals.Total,
		Payment:         payment,
		ShippingAddress: in.ShippingAddress,
		Status:          StatusPending,
		PlacedAt:        now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	id, err := s.orders.Insert(ctx, order)
	if err != nil {
		return nil, err
	}
	order.ID = id

	if in.Source == SourceCart {
		// The order exists at this point; a failed clear must not turn a
		// placed order into an error response.
		if err := s.carts.SetItems(ctx, customerID, []models.CartItem{}); err != nil {
			log.Printf("order %s created but cart clear failed for customer %s: %v",
				id.Hex(), customerID.Hex(), err)
		}
	}

	return order, nil
}

func normalizePayment(p models.Payment) (models.Payment, error) {
	if p.Method == "" {
		p.Method = "cod"
	}
	if p.Status == "" {
		p.Status = "pending"
	}
	if !paymentMethods[p.Method] {
		return models.Payment{}, fmt.Errorf("%w: unknown method %q", ErrInvalidPayment, p.Method)
	}
	if !paymentStatuses[p.Status] {
		return models.Payment{}, fmt.Errorf("%w: unknown status %q", ErrInvalidPayment, p.Status)
	}
	return p, nil
}
