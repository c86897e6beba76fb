package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"go-marketplace/models"
)

// ProductController handles catalog requests. Reads are public; writes
// are restricted to the owning seller.
type ProductController struct {
	Collection *mongo.Collection
	UploadsDir string
}

// NewProductController creates a new ProductController.
func NewProductController(db *mongo.Database, uploadsDir string) *ProductController {
	return &ProductController{
		Collection: db.Collection("products"),
		UploadsDir: uploadsDir,
	}
}

// GetProducts retrieves all products.
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	cursor, err := pc.Collection.Find(ctx, bson.M{})
	if err != nil {
		http.Error(w, "Error fetching products", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		http.Error(w, "Error reading products", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

// GetProductByID retrieves a single product by ID.
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var product models.Product
	if err := pc.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product); err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}

// MyProducts retrieves the authenticated seller's products.
func (pc *ProductController) MyProducts(w http.ResponseWriter, r *http.Request) {
	sellerID, ok := actorID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := pc.Collection.Find(ctx, bson.M{"seller": sellerID})
	if err != nil {
		http.Error(w, "Error fetching products", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		http.Error(w, "Error reading products", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

// CreateProduct adds a new product for the authenticated seller. The
// body is multipart form data with an image file plus the product
// fields; name, price and image are required.
func (pc *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	sellerID, ok := actorID(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Failed to parse multipart form", http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")
	if name == "" {
		name = r.FormValue("title")
	}
	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if name == "" || err != nil || price <= 0 {
		http.Error(w, "Name, price, and image are required", http.StatusBadRequest)
		return
	}

	imagePath, err := pc.saveImage(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	product := models.Product{
		Name:        name,
		Price:       price,
		Category:    r.FormValue("category"),
		Brand:       r.FormValue("brand"),
		Description: r.FormValue("description"),
		Image:       imagePath,
		Seller:      sellerID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if v := r.FormValue("originalPrice"); v != "" {
		product.OriginalPrice, _ = strconv.ParseFloat(v, 64)
	}
	if v := r.FormValue("discount"); v != "" {
		product.Discount, _ = strconv.ParseFloat(v, 64)
	}
	if v := r.FormValue("quantity"); v != "" {
		product.Quantity, _ = strconv.Atoi(v)
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := pc.Collection.InsertOne(ctx, product)
	if err != nil {
		http.Error(w, "Error creating product", http.StatusInternalServerError)
		return
	}
	product.ID = res.InsertedID.(primitive.ObjectID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(product)
}

// UpdateProduct updates one of the authenticated seller's products.
func (pc *ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	sellerID, ok := actorID(w, r)
	if !ok {
		return
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	var update struct {
		Name        string  `json:"name"`
		Price       float64 `json:"price"`
		Quantity    *int    `json:"quantity"`
		Category    string  `json:"category"`
		Brand       string  `json:"brand"`
		Description string  `json:"description"`
		Discount    float64 `json:"discount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	fields := bson.M{"updated_at": time.Now()}
	if update.Name != "" {
		fields["name"] = update.Name
	}
	if update.Price > 0 {
		fields["price"] = update.Price
	}
	if update.Quantity != nil {
		fields["quantity"] = *update.Quantity
	}
	if update.Category != "" {
		fields["category"] = update.Category
	}
	if update.Brand != "" {
		fields["brand"] = update.Brand
	}
	if update.Description != "" {
		fields["description"] = update.Description
	}
	if update.Discount > 0 {
		fields["discount"] = update.Discount
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := pc.Collection.UpdateOne(ctx,
		bson.M{"_id": id, "seller": sellerID},
		bson.M{"$set": fields})
	if err != nil {
		http.Error(w, "Error updating product", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"message": "Product updated"})
}

// DeleteProduct deletes one of the authenticated seller's products.
func (pc *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	sellerID, ok := actorID(w, r)
	if !ok {
		return
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := pc.Collection.DeleteOne(ctx, bson.M{"_id": id, "seller": sellerID})
	if err != nil {
		http.Error(w, "Error deleting product", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"message": "Product deleted"})
}

// saveImage stores the uploaded image under the uploads directory and
// returns its web path.
func (pc *ProductController) saveImage(r *http.Request) (string, error) {
	file, handler, err := r.FormFile("image")
	if err != nil {
		return "", fmt.Errorf("image file is required")
	}
	defer file.Close()

	if err := os.MkdirAll(pc.UploadsDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload directory")
	}

	ext := filepath.Ext(handler.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	filename := fmt.Sprintf("image-%s%s", uuid.NewString(), ext)

	dst, err := os.Create(filepath.Join(pc.UploadsDir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to save image")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to save image")
	}
	return "/uploads/" + filename, nil
}
