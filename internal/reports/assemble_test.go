package reports

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakery_console_backend/internal/models"
)

func entryAt(date string, hour int, product string, qty int64, price string) Entry {
	at := ParseInstant(date).Add(time.Duration(hour) * time.Hour)
	p := ParseAmount(price)
	return Entry{
		At:        at,
		Date:      date,
		Timestamp: at.Format(time.RFC3339),
		Product:   product,
		Quantity:  qty,
		UnitPrice: p,
		Amount:    p.Mul(decimal.NewFromInt(qty)),
	}
}

func TestDatesUniqueDescendingAcrossCollections(t *testing.T) {
	sales := []Entry{
		entryAt("2024-05-01", 9, "Bread", 1, "1.00"),
		entryAt("2024-05-03", 9, "Bread", 1, "1.00"),
	}
	stock := []Entry{
		entryAt("2024-05-02", 9, "Bread", 1, "1.00"),
		entryAt("2024-05-03", 15, "Cake", 1, "1.00"),
	}
	assert.Equal(t, []string{"2024-05-03", "2024-05-02", "2024-05-01"}, Dates(sales, stock))
}

func TestLatestFirstLeavesInputUntouched(t *testing.T) {
	entries := []Entry{
		entryAt("2024-05-01", 9, "Bread", 1, "1.00"),
		entryAt("2024-05-02", 9, "Cake", 1, "1.00"),
	}
	ordered := LatestFirst(entries)
	require.Len(t, ordered, 2)
	assert.Equal(t, "Cake", ordered[0].Product)
	assert.Equal(t, "Bread", entries[0].Product) // original order intact
}

func TestInventoryExportUnitGrandTotal(t *testing.T) {
	entries := []Entry{
		entryAt("2024-05-01", 9, "Flour", 4, "2.25"),
		entryAt("2024-05-01", 11, "Sugar", 2, "5.00"),
		entryAt("2024-05-02", 9, "Yeast", 1, "100.00"), // other date, excluded
	}
	unit := InventoryExportUnit(entries, "2024-05-01")

	assert.Equal(t, "2024-05-01", unit.Date)
	require.Len(t, unit.Rows, 2)
	assert.Equal(t, []string{"Flour", "2.25", "4", "9.00"}, unit.Rows[0])
	require.Len(t, unit.Totals, 1)
	assert.Equal(t, "19.00", unit.Totals[0].Amount.StringFixed(2))
}

func TestSalesExportUnitLatestFirstRows(t *testing.T) {
	sales := []Entry{
		entryAt("2024-05-01", 9, "Bread", 2, "1500.00"),
		entryAt("2024-05-01", 14, "Cake", 1, "3000.00"),
	}
	unit := SalesExportUnit(sales, "2024-05-01")

	require.Len(t, unit.Rows, 2)
	assert.Equal(t, "Cake", unit.Rows[0][1])
	assert.Equal(t, "Bread", unit.Rows[1][1])
	assert.Equal(t, "6000.00", unit.Totals[0].Amount.StringFixed(2))
}

func TestProductionExportUnitTotals(t *testing.T) {
	entries := []ProductionEntry{
		FromProduction(models.ProductionRecord{
			ProductName:      "Cake",
			QuantityProduced: 50,
			QuantityDamaged:  5,
			UnitPrice:        "10.00",
			ProductionDate:   "2024-05-03T10:00:00Z",
		}),
		FromProduction(models.ProductionRecord{
			ProductName:      "Bread",
			QuantityProduced: 30,
			UnitPrice:        "2.00",
			ProductionDate:   "2024-05-03T12:00:00Z",
		}),
	}
	unit := ProductionExportUnit(entries, "2024-05-03")

	require.Len(t, unit.Rows, 2)
	require.Len(t, unit.Totals, 2)
	assert.Equal(t, "560.00", unit.Totals[0].Amount.StringFixed(2)) // 500 + 60
	assert.Equal(t, "510.00", unit.Totals[1].Amount.StringFixed(2)) // 450 + 60
}

func TestJoinUsageResolvesNamesAndCosts(t *testing.T) {
	records := []models.ProductionRecord{
		{
			ProductName:  "Cake",
			RawMaterials: []int64{1, 2, 99},
			QuantityUsed: []int64{3, 4, 5},
		},
	}
	refs := map[int64]MaterialRef{
		1: {Name: "Flour", UnitPrice: ParseAmount("2.00")},
		2: {Name: "Sugar", UnitPrice: ParseAmount("5.00")},
	}
	rows := JoinUsage(records, refs)

	require.Len(t, rows, 3)
	assert.Equal(t, "Flour", rows[0].RawMaterial)
	assert.Equal(t, "6.00", rows[0].TotalCost.StringFixed(2))
	assert.Equal(t, "Unknown", rows[2].RawMaterial) // deleted item id survives
	assert.True(t, rows[2].TotalCost.IsZero())
}

func TestJoinUsageMismatchedListsJoinCoveredPairs(t *testing.T) {
	records := []models.ProductionRecord{
		{ProductName: "Cake", RawMaterials: []int64{1, 2}, QuantityUsed: []int64{3}},
	}
	rows := JoinUsage(records, map[int64]MaterialRef{1: {Name: "Flour"}})
	require.Len(t, rows, 1)
	assert.Equal(t, int64(3), rows[0].QuantityUsed)
}
