package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/blisspos/internal/application/service"
	"github.com/sangkips/blisspos/internal/config"
	"github.com/sangkips/blisspos/internal/domain/entity"
	"github.com/sangkips/blisspos/internal/infrastructure/repository"
	"github.com/sangkips/blisspos/internal/infrastructure/storage"
	"github.com/sangkips/blisspos/internal/presentation/http/handler"
	"github.com/sangkips/blisspos/internal/presentation/http/routes"
	"github.com/sangkips/blisspos/pkg/printer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the data directory
	store, err := storage.NewStore(cfg.Storage.DataDir)
	if err != nil {
		log.Fatalf("Failed to open data directory: %v", err)
	}

	// Initialize repositories
	categoryRepo, err := repository.NewCategoryRepository(store)
	if err != nil {
		log.Fatalf("Failed to load categories: %v", err)
	}
	itemRepo, err := repository.NewItemRepository(store)
	if err != nil {
		log.Fatalf("Failed to load items: %v", err)
	}
	saleRepo, err := repository.NewSaleRepository(store)
	if err != nil {
		log.Fatalf("Failed to load sales: %v", err)
	}
	profileRepo, err := repository.NewStoreProfileRepository(store, entity.StoreProfile{
		Name:    cfg.Store.Name,
		Address: cfg.Store.Address,
		Phone:   cfg.Store.Phone,
		Cashier: cfg.Store.Cashier,
	})
	if err != nil {
		log.Fatalf("Failed to load store profile: %v", err)
	}

	// Initialize thermal printer
	receiptPrinter, err := printer.FromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		receiptPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	catalogService := service.NewCatalogService(categoryRepo, itemRepo)
	cartService := service.NewCartService(itemRepo, saleRepo, cfg.Sales.TaxRate)
	ledgerService := service.NewLedgerService(saleRepo)
	settingsService := service.NewSettingsService(profileRepo)
	receiptService := service.NewReceiptService(
		receiptPrinter,
		profileRepo,
		ledgerService,
		cfg.Printer.Type,
		cfg.Printer.Width,
		cfg.Sales.Currency,
	)

	// Initialize handlers
	handlers := &routes.Handlers{
		Catalog:  handler.NewCatalogHandler(catalogService),
		Cart:     handler.NewCartHandler(cartService, receiptService),
		Sales:    handler.NewSalesHandler(ledgerService, receiptService),
		Settings: handler.NewSettingsHandler(settingsService),
		Printer:  handler.NewPrinterHandler(receiptService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)
	log.Printf("Data directory: %s", cfg.Storage.DataDir)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
