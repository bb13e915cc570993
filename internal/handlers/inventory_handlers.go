package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bakery_console_backend/internal/services"
	"bakery_console_backend/pkg/utils"
)

// InventoryHandler holds the inventory service.
type InventoryHandler struct {
	inventoryService services.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(is services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: is}
}

// GetItems lists inventory items visible to the caller.
func (h *InventoryHandler) GetItems(c *gin.Context) {
	items, err := h.inventoryService.ListItems(c.Request.Context(), actorScope(c))
	if err != nil {
		respondUnhandled(c, err, "GetItems: Error from inventoryService.ListItems")
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetItemByID fetches a single inventory item.
func (h *InventoryHandler) GetItemByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	item, err := h.inventoryService.GetItem(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Inventory item not found.", err.Error()))
			return
		}
		respondUnhandled(c, err, "GetItemByID: Error from inventoryService.GetItem")
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateItem adds an inventory item and records its opening transaction.
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req services.SaveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}
	item, err := h.inventoryService.AddItem(c.Request.Context(), actor(c), req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid inventory item.", err.Error()))
			return
		}
		respondUnhandled(c, err, "CreateItem: Error from inventoryService.AddItem")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateItem updates an inventory item and records the update transaction.
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req services.SaveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}
	item, err := h.inventoryService.UpdateItem(c.Request.Context(), actor(c), id, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid inventory item.", err.Error()))
		case errors.Is(err, services.ErrItemNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Inventory item not found.", err.Error()))
		default:
			respondUnhandled(c, err, "UpdateItem: Error from inventoryService.UpdateItem")
		}
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteItem removes an inventory item. Its transaction history survives.
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.inventoryService.DeleteItem(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Inventory item not found.", err.Error()))
			return
		}
		respondUnhandled(c, err, "DeleteItem: Error from inventoryService.DeleteItem")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inventory item deleted successfully"})
}

// GetTransactions lists inventory transactions, optionally narrowed to one
// item via the product query parameter.
func (h *InventoryHandler) GetTransactions(c *gin.Context) {
	var productID *int64
	if raw := c.Query("product"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid product format.", err.Error()))
			return
		}
		productID = &id
	}
	transactions, err := h.inventoryService.ListTransactions(c.Request.Context(), productID)
	if err != nil {
		respondUnhandled(c, err, "GetTransactions: Error from inventoryService.ListTransactions")
		return
	}
	c.JSON(http.StatusOK, transactions)
}

// GetItemLedger rebuilds the running-balance ledger for one item.
func (h *InventoryHandler) GetItemLedger(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	ledger, err := h.inventoryService.ItemLedger(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Inventory item not found.", err.Error()))
			return
		}
		respondUnhandled(c, err, "GetItemLedger: Error from inventoryService.ItemLedger")
		return
	}
	c.JSON(http.StatusOK, ledger)
}
