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

	"go-marketplace/models"
)

// WishlistController handles wishlist requests.
type WishlistController struct {
	Wishlists *mongo.Collection
	Products  *mongo.Collection
}

// NewWishlistController creates a new WishlistController.
func NewWishlistController(db *mongo.Database) *WishlistController {
	return &WishlistController{
		Wishlists: db.Collection("wishlists"),
		Products:  db.Collection("products"),
	}
}

type wishlistViewItem struct {
	ID        primitive.ObjectID `json:"id"`
	Name      string             `json:"name"`
	Price     float64            `json:"price"`
	Image     string             `json:"image,omitempty"`
	Seller    primitive.ObjectID `json:"seller,omitempty"`
	DateAdded time.Time          `json:"dateAdded"`
}

// GetWishlist returns the customer's wishlist resolved against the live
// catalog.
func (wc *WishlistController) GetWishlist(w http.ResponseWriter, r *http.Request) {
	customerID, ok := actorID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var wl models.Wishlist
	err := wc.Wishlists.FindOne(ctx, bson.M{"customer": customerID}).Decode(&wl)
	if err != nil || len(wl.Items) == 0 {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]wishlistViewItem{})
		return
	}

	ids := make([]primitive.ObjectID, 0, len(wl.Items))
	addedAt := make(map[primitive.ObjectID]time.Time, len(wl.Items))
	for _, it := range wl.Items {
		ids = append(ids, it.Product)
		addedAt[it.Product] = it.AddedAt
	}

	cursor, err := wc.Products.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		http.Error(w, "Failed to fetch wishlist", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		http.Error(w, "Failed to fetch wishlist", http.StatusInternalServerError)
		return
	}

	list := []wishlistViewItem{}
	for _, p := range products {
		list = append(list, wishlistViewItem{
			ID: p.ID, Name: p.Name, Price: p.Price, Image: p.Image,
			Seller: p.Seller, DateAdded: addedAt[p.ID],
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// AddToWishlist saves a product; re-adding an already-saved product is a
// no-op.
func (wc *WishlistController) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	customerID, ok := actorID(w, r)
	if !ok {
		return
	}

	var req struct {
		ProductID primitive.ObjectID `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID.IsZero() {
		http.Error(w, "productId is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := wc.Products.FindOne(ctx, bson.M{"_id": req.ProductID}).Err(); err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	var wl models.Wishlist
	err := wc.Wishlists.FindOne(ctx, bson.M{"customer": customerID}).Decode(&wl)
	if err != nil {
		wl = models.Wishlist{
			Customer:  customerID,
			Items:     []models.WishlistItem{{Product: req.ProductID, AddedAt: time.Now()}},
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if _, err := wc.Wishlists.InsertOne(ctx, wl); err != nil {
			http.Error(w, "Failed to add to wishlist", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"message": "Added to wishlist"})
		return
	}

	for _, it := range wl.Items {
		if it.Product == req.ProductID {
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]string{"message": "Added to wishlist"})
			return
		}
	}
	wl.Items = append(wl.Items, models.WishlistItem{Product: req.ProductID, AddedAt: time.Now()})

	_, err = wc.Wishlists.UpdateOne(ctx, bson.M{"_id": wl.ID}, bson.M{
		"$set": bson.M{"items": wl.Items, "updated_at": time.Now()},
	})
	if err != nil {
		http.Error(w, "Failed to add to wishlist", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"message": "Added to wishlist"})
}

// RemoveFromWishlist drops one product from the customer's wishlist.
func (wc *WishlistController) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
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

	var wl models.Wishlist
	if err := wc.Wishlists.FindOne(ctx, bson.M{"customer": customerID}).Decode(&wl); err != nil {
		http.Error(w, "Wishlist not found", http.StatusNotFound)
		return
	}

	updated := []models.WishlistItem{}
	for _, it := range wl.Items {
		if it.Product != productID {
			updated = append(updated, it)
		}
	}

	_, err = wc.Wishlists.UpdateOne(ctx, bson.M{"_id": wl.ID}, bson.M{
		"$set": bson.M{"items": updated, "updated_at": time.Now()},
	})
	if err != nil {
		http.Error(w, "Failed to remove item", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"message": "Removed from wishlist"})
}
