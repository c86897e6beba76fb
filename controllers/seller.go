package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"go-marketplace/models"
)

// SellerController handles seller storefront settings.
type SellerController struct {
	Profiles *mongo.Collection
	Sellers  *mongo.Collection
}

// NewSellerController creates a new SellerController.
func NewSellerController(db *mongo.Database) *SellerController {
	return &SellerController{
		Profiles: db.Collection("seller_profiles"),
		Sellers:  db.Collection("sellers"),
	}
}

// GetProfile returns the seller's profile, creating a default one on
// first access seeded with the seller's business name.
func (sc *SellerController) GetProfile(w http.ResponseWriter, r *http.Request) {
	sellerID, ok := actorID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var profile models.SellerProfile
	err := sc.Profiles.FindOne(ctx, bson.M{"seller": sellerID}).Decode(&profile)
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(profile)
		return
	}

	var seller models.Seller
	_ = sc.Sellers.FindOne(ctx, bson.M{"_id": sellerID}).Decode(&seller)

	profile = models.SellerProfile{
		Seller:    sellerID,
		StoreName: seller.BusinessName,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	res, err := sc.Profiles.InsertOne(ctx, profile)
	if err != nil {
		http.Error(w, "Failed to fetch seller profile", http.StatusInternalServerError)
		return
	}
	profile.ID = res.InsertedID.(primitive.ObjectID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// UpdateProfile upserts the seller's profile with the supplied fields.
func (sc *SellerController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	sellerID, ok := actorID(w, r)
	if !ok {
		return
	}

	var update models.SellerProfile
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	update.ID = primitive.NilObjectID
	update.Seller = sellerID
	update.UpdatedAt = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var profile models.SellerProfile
	err := sc.Profiles.FindOneAndUpdate(ctx,
		bson.M{"seller": sellerID},
		bson.M{
			"$set": bson.M{
				"store_name":       update.StoreName,
				"logo":             update.Logo,
				"bio":              update.Bio,
				"policies":         update.Policies,
				"shipping_options": update.ShippingOptions,
				"payout":           update.Payout,
				"updated_at":       update.UpdatedAt,
			},
			"$setOnInsert": bson.M{"seller": sellerID, "created_at": time.Now()},
		}, opts).Decode(&profile)
	if err != nil {
		http.Error(w, "Failed to update seller profile", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}
