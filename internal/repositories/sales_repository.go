package repositories

import (
	"context"
	"net/url"

	"bakery_console_backend/internal/models"
	"bakery_console_backend/internal/remote"
)

// SalesRepository defines the remote operations for sale stocks, sales and
// the stock transaction trail.
type SalesRepository interface {
	ListStocks(ctx context.Context, username string) ([]models.SaleStock, error)
	GetStockByID(ctx context.Context, id int64) (*models.SaleStock, error)
	CreateStock(ctx context.Context, stock *models.SaleStock) (*models.SaleStock, error)
	UpdateStock(ctx context.Context, stock *models.SaleStock) (*models.SaleStock, error)
	DeleteStock(ctx context.Context, id int64) error

	ListSales(ctx context.Context, username string) ([]models.Sale, error)
	GetSaleByID(ctx context.Context, id int64) (*models.Sale, error)
	CreateSale(ctx context.Context, sale *models.Sale) (*models.Sale, error)
	DeleteSale(ctx context.Context, id int64) error

	ListStockTransactions(ctx context.Context) ([]models.SalesStockTransaction, error)
	CreateStockTransaction(ctx context.Context, tx *models.SalesStockTransaction) (*models.SalesStockTransaction, error)
}

type salesRepository struct {
	client *remote.Client
}

// NewSalesRepository creates a new instance of SalesRepository.
func NewSalesRepository(client *remote.Client) SalesRepository {
	return &salesRepository{client: client}
}

func usernameQuery(username string) url.Values {
	query := url.Values{}
	if username != "" {
		query.Set("username", username)
	}
	return query
}

func (r *salesRepository) ListStocks(ctx context.Context, username string) ([]models.SaleStock, error) {
	stocks := []models.SaleStock{}
	if err := r.client.List(ctx, "salestocks", usernameQuery(username), &stocks); err != nil {
		return nil, translate(err, "listing sale stocks")
	}
	return stocks, nil
}

func (r *salesRepository) GetStockByID(ctx context.Context, id int64) (*models.SaleStock, error) {
	stock := &models.SaleStock{}
	if err := r.client.Get(ctx, "salestocks", id, stock); err != nil {
		return nil, translate(err, "getting sale stock")
	}
	return stock, nil
}

func (r *salesRepository) CreateStock(ctx context.Context, stock *models.SaleStock) (*models.SaleStock, error) {
	created := &models.SaleStock{}
	if err := r.client.Create(ctx, "salestocks", stock, created); err != nil {
		return nil, translate(err, "creating sale stock")
	}
	return created, nil
}

func (r *salesRepository) UpdateStock(ctx context.Context, stock *models.SaleStock) (*models.SaleStock, error) {
	updated := &models.SaleStock{}
	if err := r.client.Update(ctx, "salestocks", stock.ID, stock, updated); err != nil {
		return nil, translate(err, "updating sale stock")
	}
	return updated, nil
}

func (r *salesRepository) DeleteStock(ctx context.Context, id int64) error {
	if err := r.client.Delete(ctx, "salestocks", id); err != nil {
		return translate(err, "deleting sale stock")
	}
	return nil
}

func (r *salesRepository) ListSales(ctx context.Context, username string) ([]models.Sale, error) {
	sales := []models.Sale{}
	if err := r.client.List(ctx, "sales", usernameQuery(username), &sales); err != nil {
		return nil, translate(err, "listing sales")
	}
	return sales, nil
}

func (r *salesRepository) GetSaleByID(ctx context.Context, id int64) (*models.Sale, error) {
	sale := &models.Sale{}
	if err := r.client.Get(ctx, "sales", id, sale); err != nil {
		return nil, translate(err, "getting sale")
	}
	return sale, nil
}

func (r *salesRepository) CreateSale(ctx context.Context, sale *models.Sale) (*models.Sale, error) {
	created := &models.Sale{}
	if err := r.client.Create(ctx, "sales", sale, created); err != nil {
		return nil, translate(err, "creating sale")
	}
	return created, nil
}

func (r *salesRepository) DeleteSale(ctx context.Context, id int64) error {
	if err := r.client.Delete(ctx, "sales", id); err != nil {
		return translate(err, "deleting sale")
	}
	return nil
}

func (r *salesRepository) ListStockTransactions(ctx context.Context) ([]models.SalesStockTransaction, error) {
	transactions := []models.SalesStockTransaction{}
	if err := r.client.List(ctx, "salesstocktransactions", nil, &transactions); err != nil {
		return nil, translate(err, "listing sales stock transactions")
	}
	return transactions, nil
}

func (r *salesRepository) CreateStockTransaction(ctx context.Context, tx *models.SalesStockTransaction) (*models.SalesStockTransaction, error) {
	created := &models.SalesStockTransaction{}
	if err := r.client.Create(ctx, "salesstocktransactions", tx, created); err != nil {
		return nil, translate(err, "recording sales stock transaction")
	}
	return created, nil
}
