package services

import (
	"context"
	"errors"
	"fmt"

	"bakery_console_backend/internal/models"
	"bakery_console_backend/internal/repositories"
	"bakery_console_backend/pkg/utils"
)

// --- Custom Service Errors for Production ---
var ErrProductionNotFound = errors.New("production record not found")

// --- Production DTOs ---
type SaveProductionRequest struct {
	ProductName      string  `json:"productName" binding:"required"`
	RawMaterials     []int64 `json:"rawMaterials"`
	QuantityUsed     []int64 `json:"quantityUsed"`
	QuantityProduced int64   `json:"quantityProduced"`
	QuantityDamaged  int64   `json:"quantityDamaged"`
	ProductionDate   string  `json:"productionDate"`
	UnitPrice        string  `json:"unit_price" binding:"required"`
}

// --- ProductionService Interface ---
type ProductionService interface {
	ListProductions(ctx context.Context, username string) ([]models.ProductionRecord, error)
	GetProduction(ctx context.Context, id int64) (*models.ProductionRecord, error)
	CreateProduction(ctx context.Context, actor string, req SaveProductionRequest) (*models.ProductionRecord, error)
	UpdateProduction(ctx context.Context, actor string, id int64, req SaveProductionRequest) (*models.ProductionRecord, error)
	DeleteProduction(ctx context.Context, id int64) error
}

type productionService struct {
	productionRepo repositories.ProductionRepository
}

// NewProductionService creates a new ProductionService.
func NewProductionService(productionRepo repositories.ProductionRepository) ProductionService {
	return &productionService{productionRepo: productionRepo}
}

// validateProductionRequest enforces the index alignment between the raw
// material list and the quantity-used list, plus the damaged/produced bound.
func validateProductionRequest(req SaveProductionRequest) error {
	if utils.IsEmpty(req.ProductName) {
		return fmt.Errorf("%w: product name is required", ErrValidation)
	}
	if len(req.RawMaterials) != len(req.QuantityUsed) {
		return fmt.Errorf("%w: rawMaterials and quantityUsed must have the same length", ErrValidation)
	}
	if req.QuantityProduced < 0 {
		return fmt.Errorf("%w: quantity produced cannot be negative", ErrValidation)
	}
	if req.QuantityDamaged < 0 || req.QuantityDamaged > req.QuantityProduced {
		return fmt.Errorf("%w: quantity damaged must be between 0 and quantity produced", ErrValidation)
	}
	for _, used := range req.QuantityUsed {
		if used < 0 {
			return fmt.Errorf("%w: quantity used cannot be negative", ErrValidation)
		}
	}
	if !utils.IsValidAmount(req.UnitPrice) {
		return fmt.Errorf("%w: unit price must be a decimal number", ErrValidation)
	}
	return nil
}

func (s *productionService) ListProductions(ctx context.Context, username string) ([]models.ProductionRecord, error) {
	return s.productionRepo.ListProductions(ctx, username)
}

func (s *productionService) GetProduction(ctx context.Context, id int64) (*models.ProductionRecord, error) {
	record, err := s.productionRepo.GetProductionByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrProductionNotFound, id)
		}
		return nil, err
	}
	return record, nil
}

func (s *productionService) CreateProduction(ctx context.Context, actor string, req SaveProductionRequest) (*models.ProductionRecord, error) {
	if err := validateProductionRequest(req); err != nil {
		return nil, err
	}
	return s.productionRepo.CreateProduction(ctx, &models.ProductionRecord{
		ProductName:      req.ProductName,
		RawMaterials:     req.RawMaterials,
		QuantityUsed:     req.QuantityUsed,
		QuantityProduced: req.QuantityProduced,
		QuantityDamaged:  req.QuantityDamaged,
		ProductionDate:   req.ProductionDate,
		UnitPrice:        req.UnitPrice,
		Username:         actor,
	})
}

func (s *productionService) UpdateProduction(ctx context.Context, actor string, id int64, req SaveProductionRequest) (*models.ProductionRecord, error) {
	if err := validateProductionRequest(req); err != nil {
		return nil, err
	}
	current, err := s.GetProduction(ctx, id)
	if err != nil {
		return nil, err
	}
	current.ProductName = req.ProductName
	current.RawMaterials = req.RawMaterials
	current.QuantityUsed = req.QuantityUsed
	current.QuantityProduced = req.QuantityProduced
	current.QuantityDamaged = req.QuantityDamaged
	if req.ProductionDate != "" {
		current.ProductionDate = req.ProductionDate
	}
	current.UnitPrice = req.UnitPrice
	return s.productionRepo.UpdateProduction(ctx, current)
}

func (s *productionService) DeleteProduction(ctx context.Context, id int64) error {
	if err := s.productionRepo.DeleteProduction(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: id %d", ErrProductionNotFound, id)
		}
		return err
	}
	return nil
}
