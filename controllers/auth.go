package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"go-marketplace/models"
	"go-marketplace/utils"
)

// AuthController handles customer and seller signup/login.
type AuthController struct {
	Customers *mongo.Collection
	Sellers   *mongo.Collection
}

// NewAuthController creates a new AuthController.
func NewAuthController(db *mongo.Database) *AuthController {
	return &AuthController{
		Customers: db.Collection("customers"),
		Sellers:   db.Collection("sellers"),
	}
}

type authResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    interface{} `json:"user"`
}

type authUser struct {
	ID    primitive.ObjectID `json:"id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
	Role  string             `json:"role"`
}

// CustomerSignup registers a new customer account.
func (ac *AuthController) CustomerSignup(w http.ResponseWriter, r *http.Request) {
	var customer models.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if customer.Name == "" || customer.Email == "" || customer.Password == "" {
		http.Error(w, "Please provide name, email, and password", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	count, err := ac.Customers.CountDocuments(ctx, bson.M{"email": customer.Email})
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if count > 0 {
		http.Error(w, "A customer with this email already exists", http.StatusBadRequest)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(customer.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Error hashing password", http.StatusInternalServerError)
		return
	}
	customer.Password = string(hashed)
	customer.CreatedAt = time.Now()

	res, err := ac.Customers.InsertOne(ctx, customer)
	if err != nil {
		http.Error(w, "Error creating customer", http.StatusInternalServerError)
		return
	}
	customer.ID = res.InsertedID.(primitive.ObjectID)

	ac.issueToken(w, http.StatusCreated, "Customer registered successfully", authUser{
		ID: customer.ID, Name: customer.Name, Email: customer.Email, Role: "customer",
	})
}

// CustomerLogin authenticates a customer and returns a bearer token.
func (ac *AuthController) CustomerLogin(w http.ResponseWriter, r *http.Request) {
	ac.login(w, r, ac.Customers, "customer")
}

// SellerSignup registers a new seller account.
func (ac *AuthController) SellerSignup(w http.ResponseWriter, r *http.Request) {
	var seller models.Seller
	if err := json.NewDecoder(r.Body).Decode(&seller); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if seller.Name == "" || seller.Email == "" || seller.Password == "" {
		http.Error(w, "Please provide name, email, and password", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	count, err := ac.Sellers.CountDocuments(ctx, bson.M{"email": seller.Email})
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if count > 0 {
		http.Error(w, "A seller with this email already exists", http.StatusBadRequest)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(seller.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Error hashing password", http.StatusInternalServerError)
		return
	}
	seller.Password = string(hashed)
	seller.CreatedAt = time.Now()

	res, err := ac.Sellers.InsertOne(ctx, seller)
	if err != nil {
		http.Error(w, "Error creating seller", http.StatusInternalServerError)
		return
	}
	seller.ID = res.InsertedID.(primitive.ObjectID)

	ac.issueToken(w, http.StatusCreated, "Seller registered successfully", authUser{
		ID: seller.ID, Name: seller.Name, Email: seller.Email, Role: "seller",
	})
}

// SellerLogin authenticates a seller and returns a bearer token.
func (ac *AuthController) SellerLogin(w http.ResponseWriter, r *http.Request) {
	ac.login(w, r, ac.Sellers, "seller")
}

func (ac *AuthController) login(w http.ResponseWriter, r *http.Request, coll *mongo.Collection, role string) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// Customers and sellers share the same credential fields; decode
	// into the superset.
	var account struct {
		ID       primitive.ObjectID `bson:"_id"`
		Name     string             `bson:"name"`
		Email    string             `bson:"email"`
		Password string             `bson:"password"`
	}
	if err := coll.FindOne(ctx, bson.M{"email": creds.Email}).Decode(&account); err != nil {
		http.Error(w, "Invalid credentials", http.StatusBadRequest)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(creds.Password)); err != nil {
		http.Error(w, "Invalid credentials", http.StatusBadRequest)
		return
	}

	ac.issueToken(w, http.StatusOK, "Login successful", authUser{
		ID: account.ID, Name: account.Name, Email: account.Email, Role: role,
	})
}

func (ac *AuthController) issueToken(w http.ResponseWriter, code int, message string, user authUser) {
	token, err := utils.GenerateJWT(user.ID.Hex(), user.Role)
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(authResponse{Message: message, Token: token, User: user})
}
