package reports

import (
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"bakery_console_backend/internal/models"
)

// TotalLine is one computed grand-total line of an export unit.
type TotalLine struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// ExportUnit is the self-contained row-and-total set for one report date,
// ready for handoff to the document renderer. The assembler performs no I/O.
type ExportUnit struct {
	Date   string      `json:"date"`
	Header []string    `json:"header"`
	Rows   [][]string  `json:"rows"`
	Totals []TotalLine `json:"totals"`
}

// Dates collects the distinct calendar dates across one or more normalized
// collections, sorted descending for latest-first listing. Entries without a
// valid date are ignored here; the aggregation step reports them.
func Dates(collections ...[]Entry) []string {
	seen := map[string]bool{}
	var dates []string
	for _, entries := range collections {
		for _, e := range entries {
			if e.Date != "" && !seen[e.Date] {
				seen[e.Date] = true
				dates = append(dates, e.Date)
			}
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}

// LatestFirst orders entries descending by timestamp for tabular display,
// keeping fetch order on ties. The input is left untouched.
func LatestFirst(entries []Entry) []Entry {
	ordered := make([]Entry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].At.After(ordered[j].At) })
	return ordered
}

// forDate filters entries down to one calendar date, preserving order.
func forDate(entries []Entry, date string) []Entry {
	var filtered []Entry
	for _, e := range entries {
		if e.Date == date {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// InventoryExportUnit assembles the inventory report for one date: a line per
// transaction with its value, plus the overall total price.
func InventoryExportUnit(entries []Entry, date string) ExportUnit {
	unit := ExportUnit{
		Date:   date,
		Header: []string{"Product", "Unit Price", "Quantity", "Total Price"},
	}
	total := decimal.Zero
	for _, e := range forDate(entries, date) {
		unit.Rows = append(unit.Rows, []string{
			e.Product,
			e.UnitPrice.StringFixed(2),
			formatInt(e.Quantity),
			e.Amount.StringFixed(2),
		})
		total = total.Add(e.Amount)
	}
	unit.Totals = []TotalLine{{Label: "Overall Total Price", Amount: total}}
	return unit
}

// SalesExportUnit assembles the sales report for one date.
func SalesExportUnit(sales []Entry, date string) ExportUnit {
	unit := ExportUnit{
		Date:   date,
		Header: []string{"Date and Time", "Product", "Quantity Sold", "Sales Amount"},
	}
	total := decimal.Zero
	for _, e := range LatestFirst(forDate(sales, date)) {
		unit.Rows = append(unit.Rows, []string{
			e.Timestamp,
			e.Product,
			formatInt(e.Quantity),
			e.Amount.StringFixed(2),
		})
		total = total.Add(e.Amount)
	}
	unit.Totals = []TotalLine{{Label: "Total Sales Amount", Amount: total}}
	return unit
}

// StockExportUnit assembles the stock transaction report for one date.
func StockExportUnit(transactions []Entry, date string) ExportUnit {
	unit := ExportUnit{
		Date:   date,
		Header: []string{"Date and Time", "Product", "Quantity Obtained", "Unit Price", "Transaction Type"},
	}
	total := decimal.Zero
	for _, e := range LatestFirst(forDate(transactions, date)) {
		unit.Rows = append(unit.Rows, []string{
			e.Timestamp,
			e.Product,
			formatInt(e.Quantity),
			e.UnitPrice.StringFixed(2),
			e.Kind,
		})
		total = total.Add(e.Amount)
	}
	unit.Totals = []TotalLine{{Label: "Total Stock Value", Amount: total}}
	return unit
}

// ProductionExportUnit assembles the production report for one date, with
// both the gross total cost and the net value after damage.
func ProductionExportUnit(entries []ProductionEntry, date string) ExportUnit {
	unit := ExportUnit{
		Date:   date,
		Header: []string{"Product", "Quantity Produced", "Quantity Damaged", "Unit Price", "Total Cost", "Net Value"},
	}
	totalCost := decimal.Zero
	netValue := decimal.Zero
	for _, e := range entries {
		if e.Date != date {
			continue
		}
		unit.Rows = append(unit.Rows, []string{
			e.Product,
			formatInt(e.Produced),
			formatInt(e.Damaged),
			e.UnitPrice.StringFixed(2),
			e.TotalCost().StringFixed(2),
			e.NetValue().StringFixed(2),
		})
		totalCost = totalCost.Add(e.TotalCost())
		netValue = netValue.Add(e.NetValue())
	}
	unit.Totals = []TotalLine{
		{Label: "Total Production Cost", Amount: totalCost},
		{Label: "Net Production Value", Amount: netValue},
	}
	return unit
}

// UsageRow is one raw-material consumption line joined from a production
// record and the inventory item it consumed.
type UsageRow struct {
	Product      string          `json:"product"`
	RawMaterial  string          `json:"raw_material"`
	QuantityUsed int64           `json:"quantity_used"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalCost    decimal.Decimal `json:"total_cost"`
}

// MaterialRef resolves a raw-material item id to its name and unit price.
// Items deleted from inventory keep their id in old production records, so a
// missing ref joins as "Unknown" with a zero price rather than failing.
type MaterialRef struct {
	Name      string
	UnitPrice decimal.Decimal
}

// JoinUsage joins each production run's raw-material id list with the
// inventory items consumed. The id and quantity lists are index-aligned; a
// record whose lists disagree in length contributes only the pairs both lists
// cover.
func JoinUsage(records []models.ProductionRecord, refs map[int64]MaterialRef) []UsageRow {
	var rows []UsageRow
	for _, rec := range records {
		n := len(rec.RawMaterials)
		if len(rec.QuantityUsed) < n {
			n = len(rec.QuantityUsed)
		}
		for i := 0; i < n; i++ {
			ref, ok := refs[rec.RawMaterials[i]]
			if !ok {
				ref = MaterialRef{Name: "Unknown"}
			}
			qty := rec.QuantityUsed[i]
			rows = append(rows, UsageRow{
				Product:      rec.ProductName,
				RawMaterial:  ref.Name,
				QuantityUsed: qty,
				UnitPrice:    ref.UnitPrice,
				TotalCost:    ref.UnitPrice.Mul(decimal.NewFromInt(qty)),
			})
		}
	}
	return rows
}

func formatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}
