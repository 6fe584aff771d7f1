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

	"kitchenpos/internal/config"
	"kitchenpos/internal/handlers"
	"kitchenpos/internal/middleware"
	"kitchenpos/internal/profanity"
	"kitchenpos/internal/repository"
	"kitchenpos/internal/service"
	"kitchenpos/pkg/logger"
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

	log.Info("starting kitchen pos server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Initialize the name screener
	screener := profanity.NewScreener()
	if cfg.Profanity.FileURL != "" {
		log.Info("loading profanity word list", "url", cfg.Profanity.FileURL)
		if err := screener.LoadFromURL(context.Background(), cfg.Profanity.FileURL); err != nil {
			log.Error("failed to load profanity word list", "error", err)
			os.Exit(1)
		}
	} else {
		screener.LoadWords(cfg.Profanity.Words)
	}

	// Initialize repositories
	productRepo := repository.NewInMemoryProductRepository()
	menuGroupRepo := repository.NewInMemoryMenuGroupRepository()
	menuRepo := repository.NewInMemoryMenuRepository()
	orderTableRepo := repository.NewInMemoryOrderTableRepository()
	orderRepo := repository.NewInMemoryOrderRepository()

	// Initialize services
	menuService := service.NewMenuService(menuRepo, menuGroupRepo, productRepo, screener)
	orderTableService := service.NewOrderTableService(orderTableRepo, orderRepo)
	productService := service.NewProductService(productRepo, menuRepo, screener)
	menuGroupService := service.NewMenuGroupService(menuGroupRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	menuHandler := handlers.NewMenuHandler(menuService, log)
	orderTableHandler := handlers.NewOrderTableHandler(orderTableService, log)
	productHandler := handlers.NewProductHandler(productService, log)
	menuGroupHandler := handlers.NewMenuGroupHandler(menuGroupService, log)

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
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "api_key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes; mutations require an API key
	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.APIKeyAuth(cfg.Auth))

			r.Post("/menus", menuHandler.Create)
			r.Put("/menus/{menuId}/price", menuHandler.ChangePrice)
			r.Put("/menus/{menuId}/display", menuHandler.Display)
			r.Put("/menus/{menuId}/hide", menuHandler.Hide)

			r.Post("/order-tables", orderTableHandler.Create)
			r.Put("/order-tables/{orderTableId}/sit", orderTableHandler.Sit)
			r.Put("/order-tables/{orderTableId}/clear", orderTableHandler.Clear)
			r.Put("/order-tables/{orderTableId}/number-of-guests", orderTableHandler.ChangeNumberOfGuests)

			r.Post("/products", productHandler.Create)
			r.Put("/products/{productId}/price", productHandler.ChangePrice)

			r.Post("/menu-groups", menuGroupHandler.Create)
		})

		r.Get("/menus", menuHandler.List)
		r.Get("/order-tables", orderTableHandler.List)
		r.Get("/products", productHandler.List)
		r.Get("/menu-groups", menuGroupHandler.List)
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
