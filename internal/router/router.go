package router

import (
	"github.com/gin-gonic/gin"

	"bakery_console_backend/internal/handlers"
	"bakery_console_backend/internal/middleware"
	"bakery_console_backend/internal/remote"
	"bakery_console_backend/internal/repositories"
	"bakery_console_backend/internal/services"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, client *remote.Client) {
	// Initialize Repositories
	inventoryRepo := repositories.NewInventoryRepository(client)
	productionRepo := repositories.NewProductionRepository(client)
	salesRepo := repositories.NewSalesRepository(client)
	userRepo := repositories.NewUserRepository(client)

	// Initialize Services
	authService := services.NewAuthService(userRepo)
	inventoryService := services.NewInventoryService(inventoryRepo)
	productionService := services.NewProductionService(productionRepo)
	stockService := services.NewStockService(salesRepo)
	salesService := services.NewSalesService(salesRepo)
	userService := services.NewUserService(userRepo)
	reportService := services.NewReportService(inventoryRepo, productionRepo, salesRepo)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	productionHandler := handlers.NewProductionHandler(productionService)
	salesHandler := handlers.NewSalesHandler(stockService, salesService)
	userHandler := handlers.NewUserHandler(userService)
	reportHandler := handlers.NewReportHandler(reportService)

	apiV1 := engine.Group("/api/v1")

	// Public authentication routes
	SetupAuthRoutes(apiV1.Group("/auth"), authHandler)

	// Authenticated routes
	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		SetupInventoryRoutes(authenticated, inventoryHandler)
		SetupProductionRoutes(authenticated, productionHandler)
		SetupSalesRoutes(authenticated, salesHandler)
		SetupUserRoutes(authenticated, userHandler)
		SetupReportRoutes(authenticated, reportHandler)
	}
}
