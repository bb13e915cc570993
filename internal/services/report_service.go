package services

import (
	"context"
	"errors"
	"fmt"

	"bakery_console_backend/internal/models"
	"bakery_console_backend/internal/reports"
	"bakery_console_backend/internal/repositories"
)

// --- Custom Service Errors for Reports ---
var ErrReportDateNotFound = errors.New("no records for the requested report date")

// --- Report DTOs ---

// DateListReport is the landing view of a report screen: the dates that have
// data, newest first, each with its assembled row-and-total unit, plus a
// count of records excluded for malformed dates. StockUnits carries the
// stock transaction section shown alongside the sales report.
type DateListReport struct {
	Dates          []string             `json:"dates"`
	Units          []reports.ExportUnit `json:"units"`
	StockUnits     []reports.ExportUnit `json:"stock_units,omitempty"`
	SkippedRecords int                  `json:"skipped_records"`
}

// DashboardData feeds a console dashboard: a chart series ascending by date
// and the table rows ordered latest first.
type DashboardData struct {
	Chart          []reports.ChartPoint `json:"chart"`
	Rows           []reports.Entry      `json:"rows"`
	SkippedRecords int                  `json:"skipped_records"`
}

// ProductionDashboardData adds the per-run details and the raw-material
// usage join to the chart series.
type ProductionDashboardData struct {
	Chart          []reports.ChartPoint      `json:"chart"`
	Details        []reports.ProductionEntry `json:"details"`
	Usage          []reports.UsageRow        `json:"usage"`
	SkippedRecords int                       `json:"skipped_records"`
}

// SalesDashboardData splits the sales table from the stock transaction trail.
type SalesDashboardData struct {
	Chart             []reports.ChartPoint `json:"chart"`
	Sales             []reports.Entry      `json:"sales"`
	StockTransactions []reports.Entry      `json:"stock_transactions"`
	SkippedRecords    int                  `json:"skipped_records"`
}

// --- ReportService Interface ---
type ReportService interface {
	InventoryReport(ctx context.Context) (*DateListReport, error)
	InventoryExport(ctx context.Context, date string) (*reports.Document, error)
	ProductionReport(ctx context.Context) (*DateListReport, error)
	ProductionExport(ctx context.Context, date string) (*reports.Document, error)
	SalesReport(ctx context.Context) (*DateListReport, error)
	SalesExport(ctx context.Context, date string) (*reports.Document, error)
	StockExport(ctx context.Context, date string) (*reports.Document, error)

	InventoryDashboard(ctx context.Context) (*DashboardData, error)
	ProductionDashboard(ctx context.Context) (*ProductionDashboardData, error)
	SalesDashboard(ctx context.Context) (*SalesDashboardData, error)
}

type reportService struct {
	inventoryRepo  repositories.InventoryRepository
	productionRepo repositories.ProductionRepository
	salesRepo      repositories.SalesRepository
}

// NewReportService creates a new ReportService.
func NewReportService(
	inventoryRepo repositories.InventoryRepository,
	productionRepo repositories.ProductionRepository,
	salesRepo repositories.SalesRepository,
) ReportService {
	return &reportService{
		inventoryRepo:  inventoryRepo,
		productionRepo: productionRepo,
		salesRepo:      salesRepo,
	}
}

func (s *reportService) historicalEntries(ctx context.Context) ([]reports.Entry, error) {
	records, err := s.inventoryRepo.HistoricalData(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]reports.Entry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, reports.FromHistorical(rec))
	}
	return entries, nil
}

func (s *reportService) saleEntries(ctx context.Context) ([]reports.Entry, error) {
	sales, err := s.salesRepo.ListSales(ctx, "")
	if err != nil {
		return nil, err
	}
	entries := make([]reports.Entry, 0, len(sales))
	for _, sale := range sales {
		entries = append(entries, reports.FromSale(sale))
	}
	return entries, nil
}

func (s *reportService) stockEntries(ctx context.Context) ([]reports.Entry, error) {
	transactions, err := s.salesRepo.ListStockTransactions(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]reports.Entry, 0, len(transactions))
	for _, tx := range transactions {
		entries = append(entries, reports.FromStockTransaction(tx))
	}
	return entries, nil
}

func (s *reportService) productionEntries(ctx context.Context) ([]models.ProductionRecord, []reports.ProductionEntry, []reports.Entry, error) {
	records, err := s.productionRepo.ListProductions(ctx, "")
	if err != nil {
		return nil, nil, nil, err
	}
	details := make([]reports.ProductionEntry, 0, len(records))
	chartable := make([]reports.Entry, 0, len(records))
	for _, rec := range records {
		entry := reports.FromProduction(rec)
		details = append(details, entry)
		chartable = append(chartable, reports.Entry{
			At:       entry.At,
			Date:     entry.Date,
			Product:  entry.Product,
			Actor:    entry.Actor,
			Quantity: entry.Produced,
		})
	}
	return records, details, chartable, nil
}

func dateListReport(collections ...[]reports.Entry) *DateListReport {
	skipped := 0
	for _, entries := range collections {
		for _, e := range entries {
			if e.Date == "" {
				skipped++
			}
		}
	}
	return &DateListReport{
		Dates:          reports.Dates(collections...),
		SkippedRecords: skipped,
	}
}

// requireDate rejects export requests for dates no record falls on, so the
// console cannot download an empty document by probing arbitrary dates.
func requireDate(dates []string, date string) error {
	for _, d := range dates {
		if d == date {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrReportDateNotFound, date)
}

func (s *reportService) InventoryReport(ctx context.Context) (*DateListReport, error) {
	entries, err := s.historicalEntries(ctx)
	if err != nil {
		return nil, err
	}
	report := dateListReport(entries)
	for _, date := range report.Dates {
		report.Units = append(report.Units, reports.InventoryExportUnit(entries, date))
	}
	return report, nil
}

func (s *reportService) InventoryExport(ctx context.Context, date string) (*reports.Document, error) {
	entries, err := s.historicalEntries(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireDate(reports.Dates(entries), date); err != nil {
		return nil, err
	}
	doc := reports.BuildDocument("Inventory Report", "inventory_report", reports.InventoryExportUnit(entries, date))
	return &doc, nil
}

func (s *reportService) ProductionReport(ctx context.Context) (*DateListReport, error) {
	_, details, chartable, err := s.productionEntries(ctx)
	if err != nil {
		return nil, err
	}
	report := dateListReport(chartable)
	for _, date := range report.Dates {
		report.Units = append(report.Units, reports.ProductionExportUnit(details, date))
	}
	return report, nil
}

func (s *reportService) ProductionExport(ctx context.Context, date string) (*reports.Document, error) {
	_, details, chartable, err := s.productionEntries(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireDate(reports.Dates(chartable), date); err != nil {
		return nil, err
	}
	doc := reports.BuildDocument("Production Report", "production_report", reports.ProductionExportUnit(details, date))
	return &doc, nil
}

// SalesReport lists the dates carrying either a sale or a stock transaction;
// both feeds drive the same report screen.
func (s *reportService) SalesReport(ctx context.Context) (*DateListReport, error) {
	sales, err := s.saleEntries(ctx)
	if err != nil {
		return nil, err
	}
	stock, err := s.stockEntries(ctx)
	if err != nil {
		return nil, err
	}
	report := dateListReport(sales, stock)
	for _, date := range report.Dates {
		report.Units = append(report.Units, reports.SalesExportUnit(sales, date))
		// A date can appear because of a sale alone; only dates with stock
		// activity get a stock section.
		if unit := reports.StockExportUnit(stock, date); len(unit.Rows) > 0 {
			report.StockUnits = append(report.StockUnits, unit)
		}
	}
	return report, nil
}

func (s *reportService) SalesExport(ctx context.Context, date string) (*reports.Document, error) {
	sales, err := s.saleEntries(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireDate(reports.Dates(sales), date); err != nil {
		return nil, err
	}
	doc := reports.BuildDocument("Sales Report", "sales_report", reports.SalesExportUnit(sales, date))
	return &doc, nil
}

func (s *reportService) StockExport(ctx context.Context, date string) (*reports.Document, error) {
	stock, err := s.stockEntries(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireDate(reports.Dates(stock), date); err != nil {
		return nil, err
	}
	doc := reports.BuildDocument("Stock Report", "stock_report", reports.StockExportUnit(stock, date))
	return &doc, nil
}

func (s *reportService) InventoryDashboard(ctx context.Context) (*DashboardData, error) {
	entries, err := s.historicalEntries(ctx)
	if err != nil {
		return nil, err
	}
	chart, skipped := reports.GroupQuantityByDate(entries)
	return &DashboardData{
		Chart:          chart,
		Rows:           reports.LatestFirst(entries),
		SkippedRecords: len(skipped),
	}, nil
}

func (s *reportService) ProductionDashboard(ctx context.Context) (*ProductionDashboardData, error) {
	records, details, chartable, err := s.productionEntries(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.inventoryRepo.ListItems(ctx, "")
	if err != nil {
		return nil, err
	}
	refs := make(map[int64]reports.MaterialRef, len(items))
	for _, item := range items {
		refs[item.ID] = reports.MaterialRef{
			Name:      item.Name,
			UnitPrice: reports.ParseAmount(item.UnitPrice),
		}
	}
	chart, skipped := reports.GroupQuantityByDate(chartable)
	return &ProductionDashboardData{
		Chart:          chart,
		Details:        details,
		Usage:          reports.JoinUsage(records, refs),
		SkippedRecords: len(skipped),
	}, nil
}

func (s *reportService) SalesDashboard(ctx context.Context) (*SalesDashboardData, error) {
	sales, err := s.saleEntries(ctx)
	if err != nil {
		return nil, err
	}
	stock, err := s.stockEntries(ctx)
	if err != nil {
		return nil, err
	}
	chart, skipped := reports.GroupQuantityByDate(sales)
	return &SalesDashboardData{
		Chart:             chart,
		Sales:             reports.LatestFirst(sales),
		StockTransactions: reports.LatestFirst(stock),
		SkippedRecords:    len(skipped),
	}, nil
}
