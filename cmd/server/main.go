package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/rajibsaha1982/farmcart-api/internal/config"
	"github.com/rajibsaha1982/farmcart-api/internal/handlers"
	"github.com/rajibsaha1982/farmcart-api/internal/middleware"
	"github.com/rajibsaha1982/farmcart-api/internal/repository"
	"github.com/rajibsaha1982/farmcart-api/internal/seed"
	"github.com/rajibsaha1982/farmcart-api/internal/service"
	"github.com/rajibsaha1982/farmcart-api/internal/validation"
	"github.com/rajibsaha1982/farmcart-api/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting farmcart api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Initialize repositories
	productRepo := repository.NewInMemoryProductRepository()
	producerRepo := repository.NewInMemoryProducerRepository()
	cartRepo := repository.NewInMemoryCartRepository()

	// Optionally seed the catalog
	if cfg.Seed.File != "" {
		count, err := seed.Products(context.Background(), cfg.Seed.File, productRepo, log)
		if err != nil {
			log.Error("failed to seed product catalog", "file", cfg.Seed.File, "error", err)
			os.Exit(1)
		}
		log.Info("product catalog seeded", "file", cfg.Seed.File, "products", count)
	}

	// Initialize services
	productService := service.NewProductService(productRepo)
	producerService := service.NewProducerService(producerRepo)
	cartService := service.NewCartService(cartRepo, productRepo)
	checkoutService := service.NewCheckoutService(cartRepo, cfg.Payment.GatewayURL)

	// Request validator shared by the handlers
	valid := validation.New()

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	productHandler := handlers.NewProductHandler(productService, valid, log)
	producerHandler := handlers.NewProducerHandler(producerService, valid, log)
	cartHandler := handlers.NewCartHandler(cartService, log)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, valid, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Product endpoints
		r.Get("/products", productHandler.ListProducts)
		r.Get("/products/{productId}", productHandler.GetProduct)
		r.Post("/products", productHandler.CreateProduct)

		// Shopping cart endpoints
		r.Post("/cart", cartHandler.CreateCart)
		r.Get("/cart/{cartId}", cartHandler.GetCart)
		r.Post("/cart/{cartId}/items", cartHandler.AddItem)
		r.Put("/cart/{cartId}/items/{productId}", cartHandler.UpdateItem)
		r.Delete("/cart/{cartId}/items/{productId}", cartHandler.RemoveItem)

		// Checkout endpoint
		r.Post("/checkout", checkoutHandler.Checkout)

		// Producer endpoints
		r.Get("/producers", producerHandler.ListProducers)
		r.Post("/producers", producerHandler.CreateProducer)
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
