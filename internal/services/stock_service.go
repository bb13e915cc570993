package services

import (
	"context"
	"errors"
	"fmt"

	"bakery_console_backend/internal/models"
	"bakery_console_backend/internal/repositories"
	"bakery_console_backend/pkg/utils"
)

// --- Custom Service Errors for Sale Stocks ---
var ErrStockNotFound = errors.New("sale stock not found")

// --- Stock DTOs ---
type CreateStockRequest struct {
	ProductID        string `json:"product_id" binding:"required"`
	QuantityObtained int64  `json:"quantity_obtained"`
	StockAmount      string `json:"stock_amount" binding:"required"`
	StockDate        string `json:"stock_date"`
}

// RestockRequest tops an existing stock line up. AdditionalQuantity is added
// to the current quantity on hand; a new stock amount replaces the old price.
type RestockRequest struct {
	AdditionalQuantity int64  `json:"additional_quantity"`
	StockAmount        string `json:"stock_amount" binding:"required"`
}

// --- StockService Interface ---
type StockService interface {
	ListStocks(ctx context.Context, username string) ([]models.SaleStock, error)
	GetStock(ctx context.Context, id int64) (*models.SaleStock, error)
	CreateStock(ctx context.Context, actor string, req CreateStockRequest) (*models.SaleStock, error)
	Restock(ctx context.Context, actor string, id int64, req RestockRequest) (*models.SaleStock, error)
	DeleteStock(ctx context.Context, id int64) error
	ListStockTransactions(ctx context.Context) ([]models.SalesStockTransaction, error)
}

type stockService struct {
	salesRepo repositories.SalesRepository
}

// NewStockService creates a new StockService.
func NewStockService(salesRepo repositories.SalesRepository) StockService {
	return &stockService{salesRepo: salesRepo}
}

func (s *stockService) ListStocks(ctx context.Context, username string) ([]models.SaleStock, error) {
	return s.salesRepo.ListStocks(ctx, username)
}

func (s *stockService) GetStock(ctx context.Context, id int64) (*models.SaleStock, error) {
	stock, err := s.salesRepo.GetStockByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrStockNotFound, id)
		}
		return nil, err
	}
	return stock, nil
}

func (s *stockService) CreateStock(ctx context.Context, actor string, req CreateStockRequest) (*models.SaleStock, error) {
	if utils.IsEmpty(req.ProductID) {
		return nil, fmt.Errorf("%w: product is required", ErrValidation)
	}
	if req.QuantityObtained <= 0 {
		return nil, fmt.Errorf("%w: quantity obtained must be positive", ErrValidation)
	}
	if !utils.IsValidAmount(req.StockAmount) {
		return nil, fmt.Errorf("%w: stock amount must be a decimal number", ErrValidation)
	}
	created, err := s.salesRepo.CreateStock(ctx, &models.SaleStock{
		ProductID:        req.ProductID,
		QuantityObtained: req.QuantityObtained,
		StockAmount:      req.StockAmount,
		StockDate:        req.StockDate,
		Username:         actor,
	})
	if err != nil {
		return nil, err
	}
	recordStockTransaction(ctx, s.salesRepo, created, models.TransactionAddition, "Stock added", actor)
	return created, nil
}

func (s *stockService) Restock(ctx context.Context, actor string, id int64, req RestockRequest) (*models.SaleStock, error) {
	if req.AdditionalQuantity < 0 {
		return nil, fmt.Errorf("%w: additional quantity cannot be negative", ErrValidation)
	}
	if !utils.IsValidAmount(req.StockAmount) {
		return nil, fmt.Errorf("%w: stock amount must be a decimal number", ErrValidation)
	}
	current, err := s.GetStock(ctx, id)
	if err != nil {
		return nil, err
	}
	current.QuantityObtained += req.AdditionalQuantity
	current.StockAmount = req.StockAmount
	updated, err := s.salesRepo.UpdateStock(ctx, current)
	if err != nil {
		return nil, err
	}
	recordStockTransaction(ctx, s.salesRepo, updated, models.TransactionUpdate, "Updated stock", actor)
	return updated, nil
}

func (s *stockService) DeleteStock(ctx context.Context, id int64) error {
	if err := s.salesRepo.DeleteStock(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: id %d", ErrStockNotFound, id)
		}
		return err
	}
	return nil
}

func (s *stockService) ListStockTransactions(ctx context.Context) ([]models.SalesStockTransaction, error) {
	return s.salesRepo.ListStockTransactions(ctx)
}

// recordStockTransaction appends a stock trail entry mirroring the stock
// write. Best effort: a failed append is logged, the stock write stands.
func recordStockTransaction(ctx context.Context, repo repositories.SalesRepository, stock *models.SaleStock, txType, remarks, actor string) {
	if _, err := repo.CreateStockTransaction(ctx, &models.SalesStockTransaction{
		SaleStock:        stock.ID,
		TransactionType:  txType,
		ProductID:        stock.ProductID,
		QuantityObtained: stock.QuantityObtained,
		StockAmount:      stock.StockAmount,
		StockDate:        stock.StockDate,
		Remarks:          remarks,
		Username:         actor,
	}); err != nil {
		utils.LogError(err, fmt.Sprintf("failed to record %s stock transaction for stock %d", txType, stock.ID))
	}
}
