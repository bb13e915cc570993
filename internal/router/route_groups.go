package router

import (
	"github.com/gin-gonic/gin"

	"bakery_console_backend/internal/handlers"
	"bakery_console_backend/internal/middleware"
	"bakery_console_backend/internal/models"
)

// SetupAuthRoutes sets up the public authentication routes.
func SetupAuthRoutes(authGroup *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	authGroup.POST("/login", authHandler.Login)
}

// SetupInventoryRoutes sets up the inventory item and transaction routes.
func SetupInventoryRoutes(authenticatedGroup *gin.RouterGroup, inventoryHandler *handlers.InventoryHandler) {
	inventoryRoutes := authenticatedGroup.Group("/inventory")
	inventoryRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleInventoryRep))
	{
		inventoryRoutes.POST("", inventoryHandler.CreateItem)
		inventoryRoutes.GET("", inventoryHandler.GetItems)
		inventoryRoutes.GET("/:id", inventoryHandler.GetItemByID)
		inventoryRoutes.PUT("/:id", inventoryHandler.UpdateItem)
		inventoryRoutes.DELETE("/:id", inventoryHandler.DeleteItem)
		inventoryRoutes.GET("/:id/ledger", inventoryHandler.GetItemLedger)
	}

	transactionRoutes := authenticatedGroup.Group("/transactions")
	transactionRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleInventoryRep))
	{
		transactionRoutes.GET("", inventoryHandler.GetTransactions)
	}
}

// SetupProductionRoutes sets up the production record routes.
func SetupProductionRoutes(authenticatedGroup *gin.RouterGroup, productionHandler *handlers.ProductionHandler) {
	productionRoutes := authenticatedGroup.Group("/productions")
	productionRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleProductionRep))
	{
		productionRoutes.POST("", productionHandler.CreateProduction)
		productionRoutes.GET("", productionHandler.GetProductions)
		productionRoutes.GET("/:id", productionHandler.GetProductionByID)
		productionRoutes.PUT("/:id", productionHandler.UpdateProduction)
		productionRoutes.DELETE("/:id", productionHandler.DeleteProduction)
	}
}

// SetupSalesRoutes sets up the sale stock, sale and stock transaction routes.
func SetupSalesRoutes(authenticatedGroup *gin.RouterGroup, salesHandler *handlers.SalesHandler) {
	stockRoutes := authenticatedGroup.Group("/salestocks")
	stockRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleSalesRep))
	{
		stockRoutes.POST("", salesHandler.CreateStock)
		stockRoutes.GET("", salesHandler.GetStocks)
		stockRoutes.GET("/:id", salesHandler.GetStockByID)
		stockRoutes.PUT("/:id", salesHandler.RestockStock)
		stockRoutes.DELETE("/:id", salesHandler.DeleteStock)
	}

	saleRoutes := authenticatedGroup.Group("/sales")
	saleRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleSalesRep))
	{
		saleRoutes.POST("", salesHandler.CreateSale)
		saleRoutes.GET("", salesHandler.GetSales)
		saleRoutes.DELETE("/:id", salesHandler.DeleteSale)
	}

	stockTxRoutes := authenticatedGroup.Group("/salesstocktransactions")
	stockTxRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleSalesRep))
	{
		stockTxRoutes.GET("", salesHandler.GetStockTransactions)
	}
}

// SetupUserRoutes sets up the user management and audit log routes, admin only.
func SetupUserRoutes(authenticatedGroup *gin.RouterGroup, userHandler *handlers.UserHandler) {
	userRoutes := authenticatedGroup.Group("/users")
	userRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
	{
		userRoutes.POST("", userHandler.CreateUser)
		userRoutes.GET("", userHandler.GetUsers)
		userRoutes.GET("/:id", userHandler.GetUserByID)
		userRoutes.PUT("/:id", userHandler.UpdateUser)
		userRoutes.DELETE("/:id", userHandler.DeleteUser)
	}

	auditRoutes := authenticatedGroup.Group("/auditlogs")
	auditRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
	{
		auditRoutes.GET("", userHandler.GetAuditLogs)
		auditRoutes.POST("", userHandler.CreateAuditLog)
	}
}

// SetupReportRoutes sets up the report and dashboard routes, gated per area.
func SetupReportRoutes(authenticatedGroup *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reportRoutes := authenticatedGroup.Group("/reports")
	{
		inventory := reportRoutes.Group("/inventory", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleInventoryRep))
		inventory.GET("", reportHandler.GetInventoryReport)
		inventory.GET("/:date/export", reportHandler.ExportInventoryReport)

		production := reportRoutes.Group("/production", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleProductionRep))
		production.GET("", reportHandler.GetProductionReport)
		production.GET("/:date/export", reportHandler.ExportProductionReport)

		sales := reportRoutes.Group("/sales", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleSalesRep))
		sales.GET("", reportHandler.GetSalesReport)
		sales.GET("/:date/export", reportHandler.ExportSalesReport)
		sales.GET("/:date/stock-export", reportHandler.ExportStockReport)
	}

	dashboardRoutes := authenticatedGroup.Group("/dashboard")
	{
		dashboardRoutes.GET("/inventory", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleInventoryRep), reportHandler.GetInventoryDashboard)
		dashboardRoutes.GET("/production", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleProductionRep), reportHandler.GetProductionDashboard)
		dashboardRoutes.GET("/sales", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleSalesRep), reportHandler.GetSalesDashboard)
	}
}
