package router

import (
	"time"

	"github.com/BureddySaiPoojitha/inventory-management-app/internal/config"
	"github.com/BureddySaiPoojitha/inventory-management-app/internal/handler"
	"github.com/BureddySaiPoojitha/inventory-management-app/internal/middleware"
	"github.com/BureddySaiPoojitha/inventory-management-app/internal/repository"
	"github.com/BureddySaiPoojitha/inventory-management-app/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimit, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	productRepo := repository.NewProductRepository(db)
	historyRepo := repository.NewHistoryRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	productSvc := service.NewProductService(productRepo, historyRepo)
	transferSvc := service.NewTransferService(productRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productsH := handler.NewProductsHandler(productSvc)
	transferH := handler.NewTransferHandler(transferSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/", handler.Health(db))

	api := r.Group("/api")
	{
		api.GET("/products", productsH.List)
		api.GET("/products/search", productsH.Search)
		api.POST("/products", productsH.Create)
		api.PUT("/products/:id", productsH.Update)
		api.DELETE("/products/:id", productsH.Delete)
		api.GET("/products/:id/history", productsH.History)

		api.POST("/products/import", transferH.ImportCSV)
		api.GET("/products/export", transferH.ExportCSV)
	}

	return r
}
