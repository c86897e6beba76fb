package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"go-marketplace/models"
)

// CartController handles cart requests.
type CartController struct {
	Carts    *mongo.Collection
	Products *mongo.Collection
}

// NewCartController creates a new CartController.
func NewCartController(db *mongo.Database) *CartController {
	return &CartController{
		Carts:    db.Collection("carts"),
		Products: db.Collection("products"),
	}
}

type cartViewItem struct {
	Product  cartViewProduct `json:"product"`
	Quantity int             `json:"quantity"`
}

type cartViewProduct struct {
	ID     primitive.ObjectID `json:"id"`
	Name   string             `json:"name"`
	Price  float64            `json:"price"`
	Image  string             `json:"image,omitempty"`
	Seller primitive.ObjectID `json:"seller,omitempty"`
}

// GetCart returns the customer's cart resolved against the live
// catalog. Entries whose product no longer exists are dropped from the
// view.
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	customerID, ok := actorID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var cart models.Cart
	err := cc.Carts.FindOne(ctx, bson.M{"customer": customerID}).Decode(&cart)
	if err != nil || len(cart.Items) == 0 {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]cartViewItem{})
		return
	}

	ids := make([]primitive.ObjectID, 0, len(cart.Items))
	for _, it := range cart.Items {
		ids = append(ids, it.Product)
	}
	cursor, err := cc.Products.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		http.Error(w, "Failed to fetch cart", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		http.Error(w, "Failed to fetch cart", http.StatusInternalServerError)
		return
	}
	byID := make(map[primitive.ObjectID]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := []cartViewItem{}
	for _, it := range cart.Items {
		p, found := byID[it.Product]
		if !found {
			continue
		}
		items = append(items, cartViewItem{
			Product: cartViewProduct{
				ID: p.ID, Name: p.Name, Price: p.Price, Image: p.Image, Seller: p.Seller,
			},
			Quantity: it.Qty,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

// AddToCart adds a product to the customer's cart, creating the cart on
// first use. Adding a product already in the cart increments its
// quantity instead of duplicating the entry.
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	customerID, ok := actorID(w, r)
	if !ok {
		return
	}

	var req struct {
		ProductID primitive.ObjectID `json:"productId"`
		Quantity  int                `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID.IsZero() {
		http.Error(w, "productId is required", http.StatusBadRequest)
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := cc.Products.FindOne(ctx, bson.M{"_id": req.ProductID}).Err(); err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	var cart models.Cart
	err := cc.Carts.FindOne(ctx, bson.M{"customer": customerID}).Decode(&cart)
	if err != nil {
		cart = models.Cart{
			Customer:  customerID,
			Items:     []models.CartItem{{Product: req.ProductID, Qty: req.Quantity}},
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if _, err := cc.Carts.InsertOne(ctx, cart); err != nil {
			http.Error(w, "Error creating cart", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"message": "Added to cart"})
		return
	}

	updated := false
	for i, existing := range cart.Items {
		if existing.Product == req.ProductID {
			cart.Items[i].Qty += req.Quantity
			updated = true
			break
		}
	}
	if !updated {
		cart.Items = append(cart.Items, models.CartItem{Product: req.ProductID, Qty: req.Quantity})
	}

	_, err = cc.Carts.UpdateOne(ctx, bson.M{"_id": cart.ID}, bson.M{
		"$set": bson.M{"items": cart.Items, "updated_at": time.Now()},
	})
	if err != nil {
		http.Error(w, "Error updating cart", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"message": "Added to cart"})
}

// RemoveFromCart removes one product from the customer's cart.
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	customerID, ok := actorID(w, r)
	if !ok {
		return
	}

	productID, err := primitive.ObjectIDFromHex(mux.Vars(r)["productId"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var cart models.Cart
	if err := cc.Carts.FindOne(ctx, bson.M{"customer": customerID}).Decode(&cart); err != nil {
		http.Error(w, "Cart not found", http.StatusNotFound)
		return
	}

	updatedItems := []models.CartItem{}
	for _, item := range cart.Items {
		if item.Product != productID {
			updatedItems = append(updatedItems, item)
		}
	}

	_, err = cc.Carts.UpdateOne(ctx, bson.M{"_id": cart.ID}, bson.M{
		"$set": bson.M{"items": updatedItems, "updated_at": time.Now()},
	})
	if err != nil {
		http.Error(w, "Error updating cart", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"message": "Removed from cart"})
}

// ClearCart empties the customer's cart, creating an empty cart
// document if none exists.
func (cc *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	customerID, ok := actorID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Update().SetUpsert(true)
	_, err := cc.Carts.UpdateOne(ctx, bson.M{"customer": customerID}, bson.M{
		"$set":         bson.M{"items": []models.CartItem{}, "updated_at": time.Now()},
		"$setOnInsert": bson.M{"customer": customerID, "created_at": time.Now()},
	}, opts)
	if err != nil {
		http.Error(w, "Failed to clear cart", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"message": "Cart cleared"})
}
