package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bakery_console_backend/internal/services"
	"bakery_console_backend/pkg/utils"
)

// ProductionHandler holds the production service.
type ProductionHandler struct {
	productionService services.ProductionService
}

// NewProductionHandler creates a new ProductionHandler.
func NewProductionHandler(ps services.ProductionService) *ProductionHandler {
	return &ProductionHandler{productionService: ps}
}

// GetProductions lists production records visible to the caller.
func (h *ProductionHandler) GetProductions(c *gin.Context) {
	records, err := h.productionService.ListProductions(c.Request.Context(), actorScope(c))
	if err != nil {
		respondUnhandled(c, err, "GetProductions: Error from productionService.ListProductions")
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetProductionByID fetches a single production record.
func (h *ProductionHandler) GetProductionByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	record, err := h.productionService.GetProduction(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrProductionNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Production record not found.", err.Error()))
			return
		}
		respondUnhandled(c, err, "GetProductionByID: Error from productionService.GetProduction")
		return
	}
	c.JSON(http.StatusOK, record)
}

// CreateProduction records a production run.
func (h *ProductionHandler) CreateProduction(c *gin.Context) {
	var req services.SaveProductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}
	record, err := h.productionService.CreateProduction(c.Request.Context(), actor(c), req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid production record.", err.Error()))
			return
		}
		respondUnhandled(c, err, "CreateProduction: Error from productionService.CreateProduction")
		return
	}
	c.JSON(http.StatusCreated, record)
}

// UpdateProduction updates a production run.
func (h *ProductionHandler) UpdateProduction(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req services.SaveProductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}
	record, err := h.productionService.UpdateProduction(c.Request.Context(), actor(c), id, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid production record.", err.Error()))
		case errors.Is(err, services.ErrProductionNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Production record not found.", err.Error()))
		default:
			respondUnhandled(c, err, "UpdateProduction: Error from productionService.UpdateProduction")
		}
		return
	}
	c.JSON(http.StatusOK, record)
}

// DeleteProduction removes a production record.
func (h *ProductionHandler) DeleteProduction(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.productionService.DeleteProduction(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrProductionNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Production record not found.", err.Error()))
			return
		}
		respondUnhandled(c, err, "DeleteProduction: Error from productionService.DeleteProduction")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Production record deleted successfully"})
}
