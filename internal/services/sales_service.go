package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"bakery_console_backend/internal/models"
	"bakery_console_backend/internal/reports"
	"bakery_console_backend/internal/repositories"
	"bakery_console_backend/pkg/utils"
)

// --- Custom Service Errors for Sales ---
var (
	ErrSaleNotFound        = errors.New("sale not found")
	ErrInsufficientStock   = errors.New("insufficient stock for sale")
	ErrStockReconciliation = errors.New("sale and stock are out of step, manual reconciliation required")
)

// --- Sales DTOs ---
type CreateSaleRequest struct {
	ProductID    string `json:"product_id" binding:"required"`
	QuantitySold int64  `json:"quantity_sold"`
	SalesDate    string `json:"sales_date"`
}

// --- SalesService Interface ---
type SalesService interface {
	ListSales(ctx context.Context, username string) ([]models.Sale, error)
	GetSale(ctx context.Context, id int64) (*models.Sale, error)
	CreateSale(ctx context.Context, actor string, req CreateSaleRequest) (*models.Sale, error)
	DeleteSale(ctx context.Context, id int64) error
}

type salesService struct {
	salesRepo repositories.SalesRepository
}

// NewSalesService creates a new SalesService.
func NewSalesService(salesRepo repositories.SalesRepository) SalesService {
	return &salesService{salesRepo: salesRepo}
}

func (s *salesService) ListSales(ctx context.Context, username string) ([]models.Sale, error) {
	return s.salesRepo.ListSales(ctx, username)
}

func (s *salesService) GetSale(ctx context.Context, id int64) (*models.Sale, error) {
	sale, err := s.salesRepo.GetSaleByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrSaleNotFound, id)
		}
		return nil, err
	}
	return sale, nil
}

// findStockForProduct locates the actor's stock line for a product.
func (s *salesService) findStockForProduct(ctx context.Context, actor, productID string) (*models.SaleStock, error) {
	stocks, err := s.salesRepo.ListStocks(ctx, actor)
	if err != nil {
		return nil, err
	}
	for i := range stocks {
		if stocks[i].ProductID == productID {
			return &stocks[i], nil
		}
	}
	return nil, fmt.Errorf("%w: product %q", ErrStockNotFound, productID)
}

// CreateSale records a sale and decrements the matching stock line. The
// quantity guard runs before any write: a sale larger than the quantity on
// hand is rejected with no state change. If the stock decrement fails after
// the sale was stored, the sale is rolled back; a failed rollback surfaces
// as a reconciliation error.
func (s *salesService) CreateSale(ctx context.Context, actor string, req CreateSaleRequest) (*models.Sale, error) {
	if utils.IsEmpty(req.ProductID) {
		return nil, fmt.Errorf("%w: product is required", ErrValidation)
	}
	if req.QuantitySold <= 0 {
		return nil, fmt.Errorf("%w: quantity sold must be positive", ErrValidation)
	}

	stock, err := s.findStockForProduct(ctx, actor, req.ProductID)
	if err != nil {
		return nil, err
	}
	if req.QuantitySold > stock.QuantityObtained {
		return nil, fmt.Errorf("%w: requested %d, available %d", ErrInsufficientStock, req.QuantitySold, stock.QuantityObtained)
	}

	amount := reports.ParseAmount(stock.StockAmount).Mul(decimal.NewFromInt(req.QuantitySold))
	sale, err := s.salesRepo.CreateSale(ctx, &models.Sale{
		ProductID:    req.ProductID,
		QuantitySold: req.QuantitySold,
		SalesAmount:  utils.FormatAmount(amount),
		SalesDate:    req.SalesDate,
		Username:     actor,
	})
	if err != nil {
		return nil, err
	}

	stock.QuantityObtained -= req.QuantitySold
	if _, err := s.salesRepo.UpdateStock(ctx, stock); err != nil {
		if rbErr := s.salesRepo.DeleteSale(ctx, sale.ID); rbErr != nil {
			utils.LogError(rbErr, fmt.Sprintf("failed to roll back sale %d after stock update failure", sale.ID))
			return nil, fmt.Errorf("%w: sale %d recorded but stock %d not decremented", ErrStockReconciliation, sale.ID, stock.ID)
		}
		return nil, fmt.Errorf("failed to decrement stock for sale: %w", err)
	}
	recordStockTransaction(ctx, s.salesRepo, stock, models.TransactionUpdate, "Stock sold", actor)
	return sale, nil
}

// DeleteSale restores the sold quantity to the matching stock line first,
// then removes the sale record. If the removal fails the restore is undone;
// a failed undo surfaces as a reconciliation error.
func (s *salesService) DeleteSale(ctx context.Context, id int64) error {
	sale, err := s.GetSale(ctx, id)
	if err != nil {
		return err
	}

	stock, err := s.findStockForProduct(ctx, sale.Username, sale.ProductID)
	if err != nil && !errors.Is(err, ErrStockNotFound) {
		return err
	}

	if stock != nil {
		stock.QuantityObtained += sale.QuantitySold
		if _, err := s.salesRepo.UpdateStock(ctx, stock); err != nil {
			return fmt.Errorf("failed to restore stock before deleting sale: %w", err)
		}
	}

	if err := s.salesRepo.DeleteSale(ctx, sale.ID); err != nil {
		if stock != nil {
			stock.QuantityObtained -= sale.QuantitySold
			if _, rbErr := s.salesRepo.UpdateStock(ctx, stock); rbErr != nil {
				utils.LogError(rbErr, fmt.Sprintf("failed to undo stock restore for sale %d", sale.ID))
				return fmt.Errorf("%w: stock %d restored but sale %d not deleted", ErrStockReconciliation, stock.ID, sale.ID)
			}
		}
		return fmt.Errorf("failed to delete sale: %w", err)
	}
	if stock != nil {
		recordStockTransaction(ctx, s.salesRepo, stock, models.TransactionUpdate, "Sale reversed", sale.Username)
	}
	return nil
}
