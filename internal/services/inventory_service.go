package services

import (
	"context"
	"errors"
	"fmt"

	"bakery_console_backend/internal/models"
	"bakery_console_backend/internal/reports"
	"bakery_console_backend/internal/repositories"
	"bakery_console_backend/pkg/utils"
)

// --- Custom Service Errors ---
var (
	ErrValidation   = errors.New("validation failed")
	ErrItemNotFound = errors.New("inventory item not found")
)

// --- Inventory DTOs ---
type SaveItemRequest struct {
	Name         string `json:"name" binding:"required"`
	Category     string `json:"category"`
	UnitPrice    string `json:"unit_price" binding:"required"`
	ReorderLevel int64  `json:"reorder_level"`
}

// ItemLedgerResponse pairs an item with its chronological running-balance
// ledger rebuilt from the transaction trail.
type ItemLedgerResponse struct {
	Item *models.InventoryItem `json:"item"`
	Rows []reports.LedgerRow   `json:"rows"`
}

// --- InventoryService Interface ---
type InventoryService interface {
	ListItems(ctx context.Context, username string) ([]models.InventoryItem, error)
	GetItem(ctx context.Context, id int64) (*models.InventoryItem, error)
	AddItem(ctx context.Context, actor string, req SaveItemRequest) (*models.InventoryItem, error)
	UpdateItem(ctx context.Context, actor string, id int64, req SaveItemRequest) (*models.InventoryItem, error)
	DeleteItem(ctx context.Context, id int64) error
	ListTransactions(ctx context.Context, productID *int64) ([]models.InventoryTransaction, error)
	ItemLedger(ctx context.Context, id int64) (*ItemLedgerResponse, error)
}

type inventoryService struct {
	inventoryRepo repositories.InventoryRepository
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(inventoryRepo repositories.InventoryRepository) InventoryService {
	return &inventoryService{inventoryRepo: inventoryRepo}
}

func validateItemRequest(req SaveItemRequest) error {
	if utils.IsEmpty(req.Name) {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if req.ReorderLevel < 0 {
		return fmt.Errorf("%w: reorder level cannot be negative", ErrValidation)
	}
	if !utils.IsValidAmount(req.UnitPrice) {
		return fmt.Errorf("%w: unit price must be a decimal number", ErrValidation)
	}
	return nil
}

func (s *inventoryService) ListItems(ctx context.Context, username string) ([]models.InventoryItem, error) {
	return s.inventoryRepo.ListItems(ctx, username)
}

func (s *inventoryService) GetItem(ctx context.Context, id int64) (*models.InventoryItem, error) {
	item, err := s.inventoryRepo.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrItemNotFound, id)
		}
		return nil, err
	}
	return item, nil
}

func (s *inventoryService) AddItem(ctx context.Context, actor string, req SaveItemRequest) (*models.InventoryItem, error) {
	if err := validateItemRequest(req); err != nil {
		return nil, err
	}
	created, err := s.inventoryRepo.CreateItem(ctx, &models.InventoryItem{
		Name:         req.Name,
		Category:     req.Category,
		UnitPrice:    req.UnitPrice,
		ReorderLevel: req.ReorderLevel,
		Username:     actor,
	})
	if err != nil {
		return nil, err
	}
	s.recordTransaction(ctx, created, models.TransactionAddition, "Item added", actor)
	return created, nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, actor string, id int64, req SaveItemRequest) (*models.InventoryItem, error) {
	if err := validateItemRequest(req); err != nil {
		return nil, err
	}
	current, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	current.Name = req.Name
	current.Category = req.Category
	current.UnitPrice = req.UnitPrice
	current.ReorderLevel = req.ReorderLevel
	updated, err := s.inventoryRepo.UpdateItem(ctx, current)
	if err != nil {
		return nil, err
	}
	s.recordTransaction(ctx, updated, models.TransactionUpdate, "Item updated", actor)
	return updated, nil
}

// recordTransaction appends a ledger entry for an item write. The entry is
// best effort: a failed append is logged and the item write stands.
func (s *inventoryService) recordTransaction(ctx context.Context, item *models.InventoryItem, txType, remarks, actor string) {
	if _, err := s.inventoryRepo.CreateTransaction(ctx, &models.InventoryTransaction{
		Product:         item.ID,
		TransactionType: txType,
		Quantity:        item.ReorderLevel,
		Remarks:         remarks,
		UnitPrice:       item.UnitPrice,
		Username:        actor,
	}); err != nil {
		utils.LogError(err, fmt.Sprintf("failed to record %s transaction for item %d", txType, item.ID))
	}
}

func (s *inventoryService) DeleteItem(ctx context.Context, id int64) error {
	if err := s.inventoryRepo.DeleteItem(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: id %d", ErrItemNotFound, id)
		}
		return err
	}
	return nil
}

func (s *inventoryService) ListTransactions(ctx context.Context, productID *int64) ([]models.InventoryTransaction, error) {
	return s.inventoryRepo.ListTransactions(ctx, productID)
}

func (s *inventoryService) ItemLedger(ctx context.Context, id int64) (*ItemLedgerResponse, error) {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	transactions, err := s.inventoryRepo.ListTransactions(ctx, &id)
	if err != nil {
		return nil, err
	}
	rows := reports.RunningBalance(reports.FromTransactions(transactions))
	return &ItemLedgerResponse{Item: item, Rows: rows}, nil
}
