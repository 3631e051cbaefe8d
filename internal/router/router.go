package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/mccmmj/cafe-inventory/internal/config"
	"github.com/mccmmj/cafe-inventory/internal/handler"
	"github.com/mccmmj/cafe-inventory/internal/middleware"
	"github.com/mccmmj/cafe-inventory/internal/repository"
	"github.com/mccmmj/cafe-inventory/internal/service"
	"github.com/mccmmj/cafe-inventory/internal/sheetdb"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← sheetdb client
func New(cfg *config.Config, store *sheetdb.Client, rdb *redis.Client) *gin.Engine {
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
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	inventoryRepo := repository.NewInventoryRepository(store)
	vendorRepo := repository.NewVendorRepository(store)
	orderRepo := repository.NewOrderRepository(store)
	historyRepo := repository.NewOrderHistoryRepository(store)
	activityRepo := repository.NewActivityLogRepository(store)
	preferencesRepo := repository.NewPreferencesRepository(store)

	// ── Services ─────────────────────────────────────────────────────────────
	recorder := service.NewActivityRecorder(activityRepo)
	inventorySvc := service.NewInventoryService(inventoryRepo, recorder, rdb)
	orderSvc := service.NewOrderService(orderRepo, historyRepo, inventorySvc)
	vendorSvc := service.NewVendorService(vendorRepo, inventoryRepo)
	preferencesSvc := service.NewPreferencesService(preferencesRepo)
	exportSvc := service.NewExportService(inventoryRepo, activityRepo)
	authSvc := service.NewAuthService(service.NewUserinfoVerifier(cfg.OAuthUserinfoURL), cfg)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	inventoryH := handler.NewInventoryHandler(inventorySvc, recorder)
	ordersH := handler.NewOrdersHandler(orderSvc)
	vendorsH := handler.NewVendorsHandler(vendorSvc)
	activityH := handler.NewActivityHandler(recorder)
	preferencesH := handler.NewPreferencesHandler(preferencesSvc)
	exportH := handler.NewExportHandler(exportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(rdb))
	r.POST("/v1/auth/login", middleware.LoginRateLimiter(), authH.Login)

	// Protected routes
	authMW := middleware.SessionAuth(cfg.JWTSecret, cfg.AllowedEmailList())
	v1 := r.Group("/v1", authMW)
	{
		inv := v1.Group("/inventory")
		{
			inv.GET("", inventoryH.List)
			inv.GET("/stats", inventoryH.Stats)
			inv.GET("/usage", inventoryH.UsageRecords)
			inv.POST("", inventoryH.Create)
			inv.GET("/:id", inventoryH.Get)
			inv.PATCH("/:id", inventoryH.Update)
			inv.POST("/:id/adjust", inventoryH.AdjustStock)
			inv.DELETE("/:id", inventoryH.Delete)
		}

		orders := v1.Group("/orders")
		{
			orders.POST("", ordersH.Submit)
			orders.GET("", ordersH.List)
			orders.GET("/:id", ordersH.Get)
			orders.PATCH("/:id/status", ordersH.SetStatus)
			orders.POST("/:id/fulfill", ordersH.Fulfill)
		}

		vendors := v1.Group("/vendors")
		{
			vendors.POST("", vendorsH.Create)
			vendors.GET("", vendorsH.List)
			vendors.GET("/:name", vendorsH.Get)
			vendors.PUT("/:name", vendorsH.Update)
			vendors.DELETE("/:name", vendorsH.Delete)
		}

		v1.GET("/activity-log", activityH.List)

		v1.GET("/preferences", preferencesH.Get)
		v1.PUT("/preferences", preferencesH.Update)

		export := v1.Group("/export")
		{
			export.GET("/inventory", exportH.Inventory)
			export.GET("/activity-log", exportH.ActivityLog)
		}
	}

	return r
}
