package reports

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakery_console_backend/internal/models"
)

func ledgerEntries(t *testing.T, txs []models.InventoryTransaction) []LedgerEntry {
	t.Helper()
	entries := FromTransactions(txs)
	require.Len(t, entries, len(txs))
	return entries
}

func TestRunningBalanceAdditionThenUpdateThenAddition(t *testing.T) {
	// Addition adds, Update replaces outright, the next Addition builds on
	// the replaced value: [10, 5, 8].
	rows := RunningBalance(ledgerEntries(t, []models.InventoryTransaction{
		{TransactionType: "Addition", Quantity: 10, TransactionDate: "2024-05-01T09:00:00Z", UnitPrice: "2.00"},
		{TransactionType: "Update", Quantity: 5, TransactionDate: "2024-05-02T09:00:00Z", UnitPrice: "2.00"},
		{TransactionType: "Addition", Quantity: 3, TransactionDate: "2024-05-03T09:00:00Z", UnitPrice: "2.00"},
	}))

	require.Len(t, rows, 3)
	assert.Equal(t, int64(10), rows[0].RunningQuantity)
	assert.Equal(t, int64(5), rows[1].RunningQuantity)
	assert.Equal(t, int64(8), rows[2].RunningQuantity)
}

func TestRunningBalanceUpdateReplacesRegardlessOfPrior(t *testing.T) {
	rows := RunningBalance(ledgerEntries(t, []models.InventoryTransaction{
		{TransactionType: "Addition", Quantity: 100, TransactionDate: "2024-05-01T09:00:00Z"},
		{TransactionType: "Addition", Quantity: 100, TransactionDate: "2024-05-02T09:00:00Z"},
		{TransactionType: "Update", Quantity: 7, TransactionDate: "2024-05-03T09:00:00Z"},
	}))
	assert.Equal(t, int64(7), rows[2].RunningQuantity)
}

func TestRunningBalanceSortsByTimestampBeforeFolding(t *testing.T) {
	// Fetch order is newest-first; the fold must still run oldest-first.
	rows := RunningBalance(ledgerEntries(t, []models.InventoryTransaction{
		{TransactionType: "Update", Quantity: 5, TransactionDate: "2024-05-02T09:00:00Z"},
		{TransactionType: "Addition", Quantity: 10, TransactionDate: "2024-05-01T09:00:00Z"},
	}))
	require.Len(t, rows, 2)
	assert.Equal(t, int64(10), rows[0].RunningQuantity)
	assert.Equal(t, int64(5), rows[1].RunningQuantity)
}

func TestRunningBalanceEqualTimestampsKeepFetchOrder(t *testing.T) {
	// Declared tie-break policy: identical timestamps process in fetch order.
	rows := RunningBalance(ledgerEntries(t, []models.InventoryTransaction{
		{TransactionType: "Addition", Quantity: 10, TransactionDate: "2024-05-01T09:00:00Z"},
		{TransactionType: "Update", Quantity: 3, TransactionDate: "2024-05-01T09:00:00Z"},
	}))
	require.Len(t, rows, 2)
	assert.Equal(t, int64(10), rows[0].RunningQuantity)
	assert.Equal(t, int64(3), rows[1].RunningQuantity)
}

func TestRunningBalanceTotalCostUsesRowUnitPrice(t *testing.T) {
	rows := RunningBalance(ledgerEntries(t, []models.InventoryTransaction{
		{TransactionType: "Addition", Quantity: 10, TransactionDate: "2024-05-01T09:00:00Z", UnitPrice: "2.50"},
		{TransactionType: "Addition", Quantity: 2, TransactionDate: "2024-05-02T09:00:00Z", UnitPrice: "3.00"},
	}))
	assert.Equal(t, "25.00", rows[0].TotalCost.StringFixed(2))
	assert.Equal(t, "36.00", rows[1].TotalCost.StringFixed(2))
}

func TestGroupQuantityByDateSameDateAccumulates(t *testing.T) {
	// Two production runs of 50 and 30 on one date chart as 80.
	points, skipped := GroupQuantityByDate([]Entry{
		{Date: "2024-05-04", Product: "Cake", Quantity: 50, At: time.Date(2024, 5, 4, 8, 0, 0, 0, time.UTC)},
		{Date: "2024-05-04", Product: "Bread", Quantity: 30, At: time.Date(2024, 5, 4, 12, 0, 0, 0, time.UTC)},
	})

	require.Empty(t, skipped)
	require.Len(t, points, 1)
	assert.Equal(t, "2024-05-04", points[0].Date)
	assert.Equal(t, int64(80), points[0].TotalQuantity)
	assert.Equal(t, []string{"Bread", "Cake"}, points[0].Products)
}

func TestGroupQuantityByDateConservation(t *testing.T) {
	entries := []Entry{
		{Date: "2024-05-01", Quantity: 3},
		{Date: "2024-05-01", Quantity: 4},
		{Date: "2024-05-02", Quantity: 10},
		{Date: "2024-05-03", Quantity: 1},
	}
	var inputSum int64
	for _, e := range entries {
		inputSum += e.Quantity
	}

	points, skipped := GroupQuantityByDate(entries)
	require.Empty(t, skipped)
	var groupedSum int64
	for _, p := range points {
		groupedSum += p.TotalQuantity
	}
	assert.Equal(t, inputSum, groupedSum)
}

func TestGroupQuantityByDateSortedAscending(t *testing.T) {
	points, _ := GroupQuantityByDate([]Entry{
		{Date: "2024-05-03", Quantity: 1},
		{Date: "2024-05-01", Quantity: 1},
		{Date: "2024-05-02", Quantity: 1},
	})
	require.Len(t, points, 3)
	assert.Equal(t, "2024-05-01", points[0].Date)
	assert.Equal(t, "2024-05-03", points[2].Date)
}

func TestGroupQuantityByDateReportsSkipped(t *testing.T) {
	// A record missing its grouping key is excluded and reported, never
	// silently dropped.
	points, skipped := GroupQuantityByDate([]Entry{
		{Date: "2024-05-01", Quantity: 5},
		{Date: "", Product: "Bread", Quantity: 9},
	})
	require.Len(t, points, 1)
	assert.Equal(t, int64(5), points[0].TotalQuantity)
	require.Len(t, skipped, 1)
	assert.Equal(t, "Bread", skipped[0].Product)
}

func TestAggregationIsIdempotent(t *testing.T) {
	entries := []Entry{
		{Date: "2024-05-01", Product: "Flour", Quantity: 3, UnitPrice: decimal.NewFromInt(2)},
		{Date: "2024-05-02", Product: "Sugar", Quantity: 4, UnitPrice: decimal.NewFromInt(5)},
	}
	first, firstSkipped := GroupQuantityByDate(entries)
	second, secondSkipped := GroupQuantityByDate(entries)
	assert.Equal(t, first, second)
	assert.Equal(t, firstSkipped, secondSkipped)
}
