package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"go-marketplace/config"
	"go-marketplace/controllers"
	"go-marketplace/middleware"
	"go-marketplace/orders"
	"go-marketplace/routes"
	"go-marketplace/utils"
)

const uploadsDir = "uploads"

func main() {
	cfg := config.Load()

	// Set the JWT secret key
	utils.JwtKey = []byte(cfg.JWTSecret)

	// Connect to MongoDB
	client := utils.ConnectDB(cfg.MongoURI)
	defer func() {
		if err := client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()
	db := client.Database("marketplace")

	// Initialize EmailService
	emailService := utils.NewEmailService()

	// Order core with its Mongo stores; rates are injected once here.
	orderService := orders.NewService(
		orders.NewMongoOrderStore(db),
		orders.NewMongoCartStore(db),
		orders.NewMongoProductFinder(db),
		cfg.Rates,
	)

	// Initialize controllers
	c := routes.Controllers{
		Auth:     controllers.NewAuthController(db),
		Product:  controllers.NewProductController(db, uploadsDir),
		Cart:     controllers.NewCartController(db),
		Wishlist: controllers.NewWishlistController(db),
		Seller:   controllers.NewSellerController(db),
		Order:    controllers.NewOrderController(orderService, db, emailService),
	}

	// Set up the router
	router := mux.NewRouter()
	router.Use(middleware.RequestID, middleware.Logger)
	routes.RegisterRoutes(router, c, uploadsDir)

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
