package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakery_console_backend/internal/models"
	"bakery_console_backend/internal/repositories"
)

// stubSalesRepo is an in-memory SalesRepository that records writes so tests
// can assert on the exact sequence of state changes.
type stubSalesRepo struct {
	stocks       []models.SaleStock
	sales        []models.Sale
	transactions []models.SalesStockTransaction

	nextSaleID      int64
	failStockUpdate bool
	failSaleDelete  bool
	stockUpdates    int
}

func (r *stubSalesRepo) ListStocks(ctx context.Context, username string) ([]models.SaleStock, error) {
	out := make([]models.SaleStock, len(r.stocks))
	copy(out, r.stocks)
	return out, nil
}

func (r *stubSalesRepo) GetStockByID(ctx context.Context, id int64) (*models.SaleStock, error) {
	for i := range r.stocks {
		if r.stocks[i].ID == id {
			stock := r.stocks[i]
			return &stock, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *stubSalesRepo) CreateStock(ctx context.Context, stock *models.SaleStock) (*models.SaleStock, error) {
	created := *stock
	created.ID = int64(len(r.stocks) + 1)
	r.stocks = append(r.stocks, created)
	return &created, nil
}

func (r *stubSalesRepo) UpdateStock(ctx context.Context, stock *models.SaleStock) (*models.SaleStock, error) {
	if r.failStockUpdate {
		return nil, errors.New("stock update refused")
	}
	for i := range r.stocks {
		if r.stocks[i].ID == stock.ID {
			r.stocks[i] = *stock
			r.stockUpdates++
			updated := *stock
			return &updated, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *stubSalesRepo) DeleteStock(ctx context.Context, id int64) error {
	for i := range r.stocks {
		if r.stocks[i].ID == id {
			r.stocks = append(r.stocks[:i], r.stocks[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *stubSalesRepo) ListSales(ctx context.Context, username string) ([]models.Sale, error) {
	out := make([]models.Sale, len(r.sales))
	copy(out, r.sales)
	return out, nil
}

func (r *stubSalesRepo) GetSaleByID(ctx context.Context, id int64) (*models.Sale, error) {
	for i := range r.sales {
		if r.sales[i].ID == id {
			sale := r.sales[i]
			return &sale, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *stubSalesRepo) CreateSale(ctx context.Context, sale *models.Sale) (*models.Sale, error) {
	created := *sale
	r.nextSaleID++
	created.ID = r.nextSaleID
	r.sales = append(r.sales, created)
	return &created, nil
}

func (r *stubSalesRepo) DeleteSale(ctx context.Context, id int64) error {
	if r.failSaleDelete {
		return errors.New("sale delete refused")
	}
	for i := range r.sales {
		if r.sales[i].ID == id {
			r.sales = append(r.sales[:i], r.sales[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *stubSalesRepo) ListStockTransactions(ctx context.Context) ([]models.SalesStockTransaction, error) {
	out := make([]models.SalesStockTransaction, len(r.transactions))
	copy(out, r.transactions)
	return out, nil
}

func (r *stubSalesRepo) CreateStockTransaction(ctx context.Context, tx *models.SalesStockTransaction) (*models.SalesStockTransaction, error) {
	created := *tx
	created.ID = int64(len(r.transactions) + 1)
	r.transactions = append(r.transactions, created)
	return &created, nil
}

func newSalesFixture(quantity int64) (*stubSalesRepo, SalesService) {
	repo := &stubSalesRepo{
		stocks: []models.SaleStock{{
			ID:               1,
			ProductID:        "Bread",
			QuantityObtained: quantity,
			StockAmount:      "1500.00",
			StockDate:        "2024-05-01T08:00:00Z",
			Username:         "nakato",
		}},
	}
	return repo, NewSalesService(repo)
}

func TestCreateSaleDecrementsStockAndComputesAmount(t *testing.T) {
	repo, svc := newSalesFixture(15)

	sale, err := svc.CreateSale(context.Background(), "nakato", CreateSaleRequest{
		ProductID:    "Bread",
		QuantitySold: 4,
		SalesDate:    "2024-05-02T09:00:00Z",
	})
	require.NoError(t, err)

	assert.Equal(t, "6000.00", sale.SalesAmount)
	assert.Equal(t, int64(11), repo.stocks[0].QuantityObtained)
	assert.Equal(t, 1, repo.stockUpdates)
	require.Len(t, repo.transactions, 1)
	assert.Equal(t, models.TransactionUpdate, repo.transactions[0].TransactionType)
}

func TestCreateSaleRejectsOversellBeforeAnyWrite(t *testing.T) {
	// A sale of 20 against a stock of 15 fails the guard; nothing is written.
	repo, svc := newSalesFixture(15)

	_, err := svc.CreateSale(context.Background(), "nakato", CreateSaleRequest{
		ProductID:    "Bread",
		QuantitySold: 20,
	})
	require.ErrorIs(t, err, ErrInsufficientStock)

	assert.Equal(t, int64(15), repo.stocks[0].QuantityObtained)
	assert.Empty(t, repo.sales)
	assert.Empty(t, repo.transactions)
}

func TestCreateSaleUnknownProduct(t *testing.T) {
	_, svc := newSalesFixture(15)
	_, err := svc.CreateSale(context.Background(), "nakato", CreateSaleRequest{
		ProductID:    "Croissant",
		QuantitySold: 1,
	})
	assert.ErrorIs(t, err, ErrStockNotFound)
}

func TestCreateSaleRollsBackWhenStockUpdateFails(t *testing.T) {
	repo, svc := newSalesFixture(15)
	repo.failStockUpdate = true

	_, err := svc.CreateSale(context.Background(), "nakato", CreateSaleRequest{
		ProductID:    "Bread",
		QuantitySold: 2,
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrStockReconciliation)
	assert.Empty(t, repo.sales, "sale must be rolled back")
}

func TestDeleteSaleRestoresStockThenRemovesSale(t *testing.T) {
	// Deleting a sale of 4 against a current stock of 10 leaves 14 on hand.
	repo, svc := newSalesFixture(10)
	repo.sales = []models.Sale{{
		ID:           7,
		ProductID:    "Bread",
		QuantitySold: 4,
		SalesAmount:  "6000.00",
		Username:     "nakato",
	}}
	repo.nextSaleID = 7

	err := svc.DeleteSale(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(14), repo.stocks[0].QuantityObtained)
	assert.Empty(t, repo.sales)
}

func TestDeleteSaleWithoutMatchingStockStillDeletes(t *testing.T) {
	repo := &stubSalesRepo{sales: []models.Sale{{
		ID: 3, ProductID: "Scone", QuantitySold: 2, Username: "nakato",
	}}}
	svc := NewSalesService(repo)

	err := svc.DeleteSale(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, repo.sales)
}

func TestDeleteSaleUndoesRestoreWhenDeleteFails(t *testing.T) {
	repo, svc := newSalesFixture(10)
	repo.sales = []models.Sale{{
		ID: 7, ProductID: "Bread", QuantitySold: 4, Username: "nakato",
	}}
	repo.failSaleDelete = true

	err := svc.DeleteSale(context.Background(), 7)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrStockReconciliation)
	assert.Equal(t, int64(10), repo.stocks[0].QuantityObtained, "restore must be undone")
}

func TestCreateSaleValidatesInput(t *testing.T) {
	_, svc := newSalesFixture(15)

	_, err := svc.CreateSale(context.Background(), "nakato", CreateSaleRequest{ProductID: "Bread", QuantitySold: 0})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateSale(context.Background(), "nakato", CreateSaleRequest{ProductID: " ", QuantitySold: 1})
	assert.ErrorIs(t, err, ErrValidation)
}
