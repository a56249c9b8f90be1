// Package router assembles the HTTP engine: middleware, services and routes.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"spendwise/internal/config"
	_ "spendwise/internal/docs" // Import swagger docs
	"spendwise/internal/handlers"
	"spendwise/internal/middleware"
	"spendwise/internal/models"
	"spendwise/internal/services"
	"spendwise/internal/uploads"
	"spendwise/internal/validator"
)

// New wires services and handlers over db and returns the Gin engine.
func New(cfg *config.Config, db *gorm.DB, uploadStore *uploads.Store) *gin.Engine {
	validator.Register()

	// Services
	userService := services.NewUserService(db)
	auditService := services.NewAuditService(db)
	store := services.NewRecordStore(db)
	incomeService := services.NewTransactionService(models.TransactionKindIncome, store)
	expenseService := services.NewTransactionService(models.TransactionKindExpense, store)
	dashboardService := services.NewDashboardService(store)

	tokens := middleware.NewTokenManager(cfg.JWTSecret, cfg.JWTExpirationDur)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, tokens, uploadStore, auditService)
	incomeHandler := handlers.NewTransactionHandler(incomeService, auditService)
	expenseHandler := handlers.NewTransactionHandler(expenseService, auditService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(cfg.CORSOrigin))

	router.Static(uploads.PublicPath, uploadStore.Dir())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	requireAuth := middleware.AuthMiddleware(tokens, userService)

	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/upload-image", authHandler.UploadImage)
	auth.GET("/getUser", requireAuth, authHandler.GetProfile)
	auth.PUT("/update-profile", requireAuth, authHandler.UpdateProfile)

	registerLedger(v1.Group("/income", requireAuth), incomeHandler)
	registerLedger(v1.Group("/expense", requireAuth), expenseHandler)

	dashboard := v1.Group("/dashboard", requireAuth)
	dashboard.GET("", dashboardHandler.Summary)
	dashboard.GET("/analytics", dashboardHandler.Analytics)

	return router
}

func registerLedger(group *gin.RouterGroup, h *handlers.TransactionHandler) {
	group.POST("/add", h.Add)
	group.GET("/get", h.List)
	group.GET("/breakdown", h.Breakdown)
	group.GET("/downloadexcel", h.DownloadExcel)
	group.GET("/downloadpdf", h.DownloadPDF)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}
