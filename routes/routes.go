package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"go-marketplace/controllers"
	"go-marketplace/middleware"
)

// Controllers bundles everything RegisterRoutes wires up.
type Controllers struct {
	Auth     *controllers.AuthController
	Product  *controllers.ProductController
	Cart     *controllers.CartController
	Wishlist *controllers.WishlistController
	Seller   *controllers.SellerController
	Order    *controllers.OrderController
}

// RegisterRoutes sets up all the routes for the application.
func RegisterRoutes(router *mux.Router, c Controllers, uploadsDir string) {
	// Public auth routes
	auth := router.PathPrefix("/api/auth").Subrouter()
	auth.HandleFunc("/customer/signup", c.Auth.CustomerSignup).Methods("POST")
	auth.HandleFunc("/customer/login", c.Auth.CustomerLogin).Methods("POST")
	auth.HandleFunc("/seller/signup", c.Auth.SellerSignup).Methods("POST")
	auth.HandleFunc("/seller/login", c.Auth.SellerLogin).Methods("POST")

	// Public catalog reads
	router.HandleFunc("/api/products", c.Product.GetProducts).Methods("GET")
	router.HandleFunc("/api/products/{id}", c.Product.GetProductByID).Methods("GET")

	// Seller catalog writes
	sellerProducts := router.PathPrefix("/api/products").Subrouter()
	sellerProducts.Use(middleware.AuthMiddleware, middleware.RequireSeller)
	sellerProducts.HandleFunc("/my-products", c.Product.MyProducts).Methods("GET")
	sellerProducts.HandleFunc("", c.Product.CreateProduct).Methods("POST")
	sellerProducts.HandleFunc("/{id}", c.Product.UpdateProduct).Methods("PUT")
	sellerProducts.HandleFunc("/{id}", c.Product.DeleteProduct).Methods("DELETE")

	// Customer cart and wishlist
	features := router.PathPrefix("/api/features").Subrouter()
	features.Use(middleware.AuthMiddleware, middleware.RequireCustomer)
	features.HandleFunc("/cart", c.Cart.GetCart).Methods("GET")
	features.HandleFunc("/cart", c.Cart.AddToCart).Methods("POST")
	features.HandleFunc("/cart/{productId}", c.Cart.RemoveFromCart).Methods("DELETE")
	features.HandleFunc("/cart", c.Cart.ClearCart).Methods("DELETE")
	features.HandleFunc("/wishlist", c.Wishlist.GetWishlist).Methods("GET")
	features.HandleFunc("/wishlist", c.Wishlist.AddToWishlist).Methods("POST")
	features.HandleFunc("/wishlist/{productId}", c.Wishlist.RemoveFromWishlist).Methods("DELETE")

	// Seller storefront settings
	sellerFeatures := router.PathPrefix("/api/features").Subrouter()
	sellerFeatures.Use(middleware.AuthMiddleware, middleware.RequireSeller)
	sellerFeatures.HandleFunc("/seller-profile", c.Seller.GetProfile).Methods("GET")
	sellerFeatures.HandleFunc("/seller-profile", c.Seller.UpdateProfile).Methods("POST")

	// Orders: customer side
	customerOrders := router.PathPrefix("/api/orders").Subrouter()
	customerOrders.Use(middleware.AuthMiddleware, middleware.RequireCustomer)
	customerOrders.HandleFunc("", c.Order.Create).Methods("POST")
	customerOrders.HandleFunc("/my", c.Order.MyOrders).Methods("GET")
	customerOrders.HandleFunc("/{id}/cancel", c.Order.Cancel).Methods("PUT")

	// Orders: seller side
	sellerOrders := router.PathPrefix("/api/orders").Subrouter()
	sellerOrders.Use(middleware.AuthMiddleware, middleware.RequireSeller)
	sellerOrders.HandleFunc("/seller", c.Order.SellerOrders).Methods("GET")
	sellerOrders.HandleFunc("/{id}/status", c.Order.UpdateStatus).Methods("PUT")

	// Uploaded images
	router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir))))
}
