package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"go-marketplace/middleware"
	"go-marketplace/models"
	"go-marketplace/orders"
	"go-marketplace/utils"
)

// OrderController is the HTTP surface of the order core.
type OrderController struct {
	Service      *orders.Service
	Customers    *mongo.Collection
	EmailService *utils.EmailService
}

// NewOrderController creates a new OrderController.
func NewOrderController(service *orders.Service, db *mongo.Database, emailService *utils.EmailService) *OrderController {
	return &OrderController{
		Service:      service,
		Customers:    db.Collection("customers"),
		EmailService: emailService,
	}
}

type createOrderRequest struct {
	Source          string             `json:"source"`
	Items           []orders.Selection `json:"items"`
	ShippingAddress models.Address     `json:"shippingAddress"`
	Payment         models.Payment     `json:"payment"`
}

// Create places an order from the customer's cart or a direct selection.
func (oc *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	customerID, ok := actorID(w, r)
	if !ok {
		return
	}

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Source == "" {
		req.Source = orders.SourceCart
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, err := oc.Service.CreateOrder(ctx, customerID, orders.CreateOrderInput{
		Source:          req.Source,
		Selections:      req.Items,
		ShippingAddress: req.ShippingAddress,
		Payment:         req.Payment,
	})
	if err != nil {
		writeOrderError(w, err)
		return
	}

	go oc.sendConfirmation(customerID, *order)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(order)
}

// MyOrders lists the authenticated customer's orders, newest first.
func (oc *OrderController) MyOrders(w http.ResponseWriter, r *http.Request) {
	customerID, ok := actorID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	list, err := oc.Service.ListForCustomer(ctx, customerID)
	if err != nil {
		http.Error(w, "Failed to retrieve orders", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []models.Order{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// SellerOrders lists orders containing the seller's items, with the
// line items filtered down to that seller.
func (oc *OrderController) SellerOrders(w http.ResponseWriter, r *http.Request) {
	sellerID, ok := actorID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	views, err := oc.Service.ListForSeller(ctx, sellerID)
	if err != nil {
		http.Error(w, "Failed to retrieve orders", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(views)
}

// UpdateStatus lets a participating seller overwrite an order's status.
func (oc *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	sellerID, ok := actorID(w, r)
	if !ok {
		return
	}

	orderID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, err := oc.Service.SetStatus(ctx, orderID, sellerID, req.Status)
	if err != nil {
		writeOrderError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

// Cancel lets the owning customer cancel a not-yet-shipped order.
func (oc *OrderController) Cancel(w http.ResponseWriter, r *http.Request) {
	customerID, ok := actorID(w, r)
	if !ok {
		return
	}

	orderID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, err := oc.Service.Cancel(ctx, orderID, customerID)
	if err != nil {
		writeOrderError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func (oc *OrderController) sendConfirmation(customerID primitive.ObjectID, order models.Order) {
	if oc.EmailService == nil || oc.Customers == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var customer models.Customer
	if err := oc.Customers.FindOne(ctx, bson.M{"_id": customerID}).Decode(&customer); err != nil {
		log.Printf("order %s: customer lookup for confirmation email failed: %v", order.ID.Hex(), err)
		return
	}
	if err := oc.EmailService.SendOrderConfirmationEmail(customer.Email, order); err != nil {
		log.Printf("Failed to send email to %s: %v", customer.Email, err)
	}
}

// actorID extracts the authenticated account id from the request.
func actorID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return primitive.NilObjectID, false
	}
	return id, true
}

func writeOrderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, orders.ErrEmptyCart),
		errors.Is(err, orders.ErrNoItems),
		errors.Is(err, orders.ErrInvalidSource),
		errors.Is(err, orders.ErrInvalidPayment),
		errors.Is(err, orders.ErrInvalidStatus),
		errors.Is(err, orders.ErrNotCancellable):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, orders.ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, orders.ErrOrderNotFound),
		errors.Is(err, orders.ErrProductNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
