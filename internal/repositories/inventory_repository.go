package repositories

import (
	"context"
	"net/url"

	"bakery_console_backend/internal/models"
	"bakery_console_backend/internal/remote"
)

// InventoryRepository defines the remote operations for inventory items,
// their transactions and the flattened historical-data feed.
type InventoryRepository interface {
	ListItems(ctx context.Context, username string) ([]models.InventoryItem, error)
	GetItemByID(ctx context.Context, id int64) (*models.InventoryItem, error)
	CreateItem(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error)
	UpdateItem(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error)
	DeleteItem(ctx context.Context, id int64) error

	ListTransactions(ctx context.Context, productID *int64) ([]models.InventoryTransaction, error)
	CreateTransaction(ctx context.Context, tx *models.InventoryTransaction) (*models.InventoryTransaction, error)

	HistoricalData(ctx context.Context) ([]models.HistoricalRecord, error)
}

type inventoryRepository struct {
	client *remote.Client
}

// NewInventoryRepository creates a new instance of InventoryRepository.
func NewInventoryRepository(client *remote.Client) InventoryRepository {
	return &inventoryRepository{client: client}
}

func (r *inventoryRepository) ListItems(ctx context.Context, username string) ([]models.InventoryItem, error) {
	query := url.Values{}
	if username != "" {
		query.Set("username", username)
	}
	items := []models.InventoryItem{}
	if err := r.client.List(ctx, "inventory", query, &items); err != nil {
		return nil, translate(err, "listing inventory items")
	}
	return items, nil
}

func (r *inventoryRepository) GetItemByID(ctx context.Context, id int64) (*models.InventoryItem, error) {
	item := &models.InventoryItem{}
	if err := r.client.Get(ctx, "inventory", id, item); err != nil {
		return nil, translate(err, "getting inventory item")
	}
	return item, nil
}

func (r *inventoryRepository) CreateItem(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error) {
	created := &models.InventoryItem{}
	if err := r.client.Create(ctx, "inventory", item, created); err != nil {
		return nil, translate(err, "creating inventory item")
	}
	return created, nil
}

func (r *inventoryRepository) UpdateItem(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error) {
	updated := &models.InventoryItem{}
	if err := r.client.Update(ctx, "inventory", item.ID, item, updated); err != nil {
		return nil, translate(err, "updating inventory item")
	}
	return updated, nil
}

func (r *inventoryRepository) DeleteItem(ctx context.Context, id int64) error {
	if err := r.client.Delete(ctx, "inventory", id); err != nil {
		return translate(err, "deleting inventory item")
	}
	return nil
}

func (r *inventoryRepository) ListTransactions(ctx context.Context, productID *int64) ([]models.InventoryTransaction, error) {
	transactions := []models.InventoryTransaction{}
	if err := r.client.List(ctx, "transactions", nil, &transactions); err != nil {
		return nil, translate(err, "listing inventory transactions")
	}
	if productID == nil {
		return transactions, nil
	}
	// The remote feed is unfiltered; narrow to the requested item here while
	// keeping the original fetch order.
	filtered := transactions[:0]
	for _, tx := range transactions {
		if tx.Product == *productID {
			filtered = append(filtered, tx)
		}
	}
	return filtered, nil
}

func (r *inventoryRepository) CreateTransaction(ctx context.Context, tx *models.InventoryTransaction) (*models.InventoryTransaction, error) {
	created := &models.InventoryTransaction{}
	if err := r.client.Create(ctx, "transactions", tx, created); err != nil {
		return nil, translate(err, "recording inventory transaction")
	}
	return created, nil
}

func (r *inventoryRepository) HistoricalData(ctx context.Context) ([]models.HistoricalRecord, error) {
	records := []models.HistoricalRecord{}
	if err := r.client.GetPath(ctx, "historical-data/", &records); err != nil {
		return nil, translate(err, "fetching historical data")
	}
	return records, nil
}
