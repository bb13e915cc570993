package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bakery_console_backend/internal/services"
	"bakery_console_backend/pkg/utils"
)

// SalesHandler holds the stock and sales services backing the sales screens.
type SalesHandler struct {
	stockService services.StockService
	salesService services.SalesService
}

// NewSalesHandler creates a new SalesHandler.
func NewSalesHandler(st services.StockService, sa services.SalesService) *SalesHandler {
	return &SalesHandler{stockService: st, salesService: sa}
}

// --- Sale stocks ---

// GetStocks lists the sale stock lines visible to the caller.
func (h *SalesHandler) GetStocks(c *gin.Context) {
	stocks, err := h.stockService.ListStocks(c.Request.Context(), actorScope(c))
	if err != nil {
		respondUnhandled(c, err, "GetStocks: Error from stockService.ListStocks")
		return
	}
	c.JSON(http.StatusOK, stocks)
}

// GetStockByID fetches a single stock line.
func (h *SalesHandler) GetStockByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	stock, err := h.stockService.GetStock(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrStockNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Sale stock not found.", err.Error()))
			return
		}
		respondUnhandled(c, err, "GetStockByID: Error from stockService.GetStock")
		return
	}
	c.JSON(http.StatusOK, stock)
}

// CreateStock adds a stock line and records its Addition transaction.
func (h *SalesHandler) CreateStock(c *gin.Context) {
	var req services.CreateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}
	stock, err := h.stockService.CreateStock(c.Request.Context(), actor(c), req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid sale stock.", err.Error()))
			return
		}
		respondUnhandled(c, err, "CreateStock: Error from stockService.CreateStock")
		return
	}
	c.JSON(http.StatusCreated, stock)
}

// RestockStock tops a stock line up and records its Update transaction.
func (h *SalesHandler) RestockStock(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req services.RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}
	stock, err := h.stockService.Restock(c.Request.Context(), actor(c), id, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid restock request.", err.Error()))
		case errors.Is(err, services.ErrStockNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Sale stock not found.", err.Error()))
		default:
			respondUnhandled(c, err, "RestockStock: Error from stockService.Restock")
		}
		return
	}
	c.JSON(http.StatusOK, stock)
}

// DeleteStock removes a stock line.
func (h *SalesHandler) DeleteStock(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.stockService.DeleteStock(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrStockNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Sale stock not found.", err.Error()))
			return
		}
		respondUnhandled(c, err, "DeleteStock: Error from stockService.DeleteStock")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sale stock deleted successfully"})
}

// GetStockTransactions lists the stock transaction trail.
func (h *SalesHandler) GetStockTransactions(c *gin.Context) {
	transactions, err := h.stockService.ListStockTransactions(c.Request.Context())
	if err != nil {
		respondUnhandled(c, err, "GetStockTransactions: Error from stockService.ListStockTransactions")
		return
	}
	c.JSON(http.StatusOK, transactions)
}

// --- Sales ---

// GetSales lists the sales visible to the caller.
func (h *SalesHandler) GetSales(c *gin.Context) {
	sales, err := h.salesService.ListSales(c.Request.Context(), actorScope(c))
	if err != nil {
		respondUnhandled(c, err, "GetSales: Error from salesService.ListSales")
		return
	}
	c.JSON(http.StatusOK, sales)
}

// CreateSale records a sale and decrements the matching stock line.
func (h *SalesHandler) CreateSale(c *gin.Context) {
	var req services.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}
	sale, err := h.salesService.CreateSale(c.Request.Context(), actor(c), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid sale.", err.Error()))
		case errors.Is(err, services.ErrStockNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "No stock line for the requested product.", err.Error()))
		case errors.Is(err, services.ErrInsufficientStock):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Insufficient stock for the requested quantity.", err.Error()))
		case errors.Is(err, services.ErrStockReconciliation):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeReconciliation, "Sale and stock are out of step.", err.Error()))
		default:
			respondUnhandled(c, err, "CreateSale: Error from salesService.CreateSale")
		}
		return
	}
	c.JSON(http.StatusCreated, sale)
}

// DeleteSale restores the sold quantity to stock, then removes the sale.
func (h *SalesHandler) DeleteSale(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.salesService.DeleteSale(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, services.ErrSaleNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Sale not found.", err.Error()))
		case errors.Is(err, services.ErrStockReconciliation):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeReconciliation, "Sale and stock are out of step.", err.Error()))
		default:
			respondUnhandled(c, err, "DeleteSale: Error from salesService.DeleteSale")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sale deleted successfully"})
}
