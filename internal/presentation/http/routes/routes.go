package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/blisspos/internal/config"
	"github.com/sangkips/blisspos/internal/presentation/http/handler"
	"github.com/sangkips/blisspos/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Catalog  *handler.CatalogHandler
	Cart     *handler.CartHandler
	Sales    *handler.SalesHandler
	Settings *handler.SettingsHandler
	Printer  *handler.PrinterHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
		BurstSize:         cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	router.Use(rateLimiter.Middleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		// Catalog
		v1.GET("/categories", h.Catalog.ListCategories)
		v1.POST("/categories", h.Catalog.CreateCategory)
		v1.DELETE("/categories/:id", h.Catalog.DeleteCategory)
		v1.GET("/items", h.Catalog.ListItems)
		v1.POST("/items", h.Catalog.CreateItem)
		v1.DELETE("/items/:id", h.Catalog.DeleteItem)

		// Working cart
		v1.GET("/cart", h.Cart.View)
		v1.DELETE("/cart", h.Cart.Clear)
		v1.POST("/cart/items", h.Cart.AddItem)
		v1.PUT("/cart/items/:id", h.Cart.UpdateItem)
		v1.DELETE("/cart/items/:id", h.Cart.RemoveItem)
		v1.PUT("/cart/discount", h.Cart.SetDiscount)
		v1.PUT("/cart/payment-method", h.Cart.SetPaymentMethod)
		v1.POST("/cart/checkout", h.Cart.Checkout)

		// Sales history
		v1.GET("/sales", h.Sales.List)
		v1.GET("/sales/stats", h.Sales.Stats)
		v1.GET("/sales/:id", h.Sales.Get)
		v1.GET("/sales/:id/receipt", h.Sales.Receipt)
		v1.POST("/sales/:id/print", h.Sales.Print)

		// Store profile
		v1.GET("/settings", h.Settings.Get)
		v1.PUT("/settings", h.Settings.Update)

		// Printer
		v1.GET("/printer/status", h.Printer.Status)
		v1.POST("/printer/test", h.Printer.TestPrint)
	}

	return router
}
