package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"bakery_console_backend/internal/reports"
	"bakery_console_backend/internal/services"
	"bakery_console_backend/pkg/utils"
)

// ReportHandler holds the report service.
type ReportHandler struct {
	reportService services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rs services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: rs}
}

// respondDocument writes a rendered report as a CSV download.
func respondDocument(c *gin.Context, doc *reports.Document, err error, operation string) {
	if err != nil {
		if errors.Is(err, services.ErrReportDateNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "No records for the requested date.", err.Error()))
			return
		}
		respondUnhandled(c, err, operation)
		return
	}
	out, err := reports.RenderCSV(*doc)
	if err != nil {
		respondUnhandled(c, err, operation)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, "text/csv", out)
}

// GetInventoryReport lists the dates the inventory report covers.
func (h *ReportHandler) GetInventoryReport(c *gin.Context) {
	report, err := h.reportService.InventoryReport(c.Request.Context())
	if err != nil {
		respondUnhandled(c, err, "GetInventoryReport: Error from reportService.InventoryReport")
		return
	}
	c.JSON(http.StatusOK, report)
}

// ExportInventoryReport downloads the inventory report for one date.
func (h *ReportHandler) ExportInventoryReport(c *gin.Context) {
	doc, err := h.reportService.InventoryExport(c.Request.Context(), c.Param("date"))
	respondDocument(c, doc, err, "ExportInventoryReport: Error from reportService.InventoryExport")
}

// GetProductionReport lists the dates the production report covers.
func (h *ReportHandler) GetProductionReport(c *gin.Context) {
	report, err := h.reportService.ProductionReport(c.Request.Context())
	if err != nil {
		respondUnhandled(c, err, "GetProductionReport: Error from reportService.ProductionReport")
		return
	}
	c.JSON(http.StatusOK, report)
}

// ExportProductionReport downloads the production report for one date.
func (h *ReportHandler) ExportProductionReport(c *gin.Context) {
	doc, err := h.reportService.ProductionExport(c.Request.Context(), c.Param("date"))
	respondDocument(c, doc, err, "ExportProductionReport: Error from reportService.ProductionExport")
}

// GetSalesReport lists the dates carrying sales or stock activity.
func (h *ReportHandler) GetSalesReport(c *gin.Context) {
	report, err := h.reportService.SalesReport(c.Request.Context())
	if err != nil {
		respondUnhandled(c, err, "GetSalesReport: Error from reportService.SalesReport")
		return
	}
	c.JSON(http.StatusOK, report)
}

// ExportSalesReport downloads the sales report for one date.
func (h *ReportHandler) ExportSalesReport(c *gin.Context) {
	doc, err := h.reportService.SalesExport(c.Request.Context(), c.Param("date"))
	respondDocument(c, doc, err, "ExportSalesReport: Error from reportService.SalesExport")
}

// ExportStockReport downloads the stock transaction report for one date.
func (h *ReportHandler) ExportStockReport(c *gin.Context) {
	doc, err := h.reportService.StockExport(c.Request.Context(), c.Param("date"))
	respondDocument(c, doc, err, "ExportStockReport: Error from reportService.StockExport")
}

// GetInventoryDashboard feeds the inventory chart and table.
func (h *ReportHandler) GetInventoryDashboard(c *gin.Context) {
	data, err := h.reportService.InventoryDashboard(c.Request.Context())
	if err != nil {
		respondUnhandled(c, err, "GetInventoryDashboard: Error from reportService.InventoryDashboard")
		return
	}
	c.JSON(http.StatusOK, data)
}

// GetProductionDashboard feeds the production chart, details and usage join.
func (h *ReportHandler) GetProductionDashboard(c *gin.Context) {
	data, err := h.reportService.ProductionDashboard(c.Request.Context())
	if err != nil {
		respondUnhandled(c, err, "GetProductionDashboard: Error from reportService.ProductionDashboard")
		return
	}
	c.JSON(http.StatusOK, data)
}

// GetSalesDashboard feeds the sales chart and the two sales tables.
func (h *ReportHandler) GetSalesDashboard(c *gin.Context) {
	data, err := h.reportService.SalesDashboard(c.Request.Context())
	if err != nil {
		respondUnhandled(c, err, "GetSalesDashboard: Error from reportService.SalesDashboard")
		return
	}
	c.JSON(http.StatusOK, data)
}
