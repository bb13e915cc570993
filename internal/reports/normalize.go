// Package reports implements the console's reporting pipeline: normalizing
// raw records fetched from the remote store, aggregating them by date or by
// product, and assembling chart series, tables and exportable documents.
// Every function in the package is pure; the pipeline holds no state between
// invocations.
package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"bakery_console_backend/internal/models"
)

// DateLayout is the calendar-date grouping key format.
const DateLayout = "2006-01-02"

// instantLayouts are the timestamp formats the remote store is known to emit.
var instantLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	DateLayout,
}

// ParseInstant coerces a timestamp string to a comparable instant. A malformed
// or empty value yields the zero time as an explicit invalid marker; callers
// must check IsInvalidInstant before formatting or grouping.
func ParseInstant(s string) time.Time {
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// IsInvalidInstant reports whether t is the sentinel produced by ParseInstant
// for malformed input.
func IsInvalidInstant(t time.Time) bool {
	return t.IsZero()
}

// ParseAmount coerces a decimal-as-string field ("12.50") to a decimal.
// Invalid or missing values coerce to zero rather than failing the record.
func ParseAmount(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Entry is the canonical normalized record the aggregation engine consumes:
// one dated quantity with its product, actor and monetary fields resolved.
type Entry struct {
	At        time.Time       `json:"-"`
	Date      string          `json:"date"` // grouping key, empty when the source date was malformed
	Timestamp string          `json:"timestamp,omitempty"`
	Product   string          `json:"product"`
	Actor     string          `json:"actor,omitempty"`
	Kind      string          `json:"kind,omitempty"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Amount    decimal.Decimal `json:"amount"`
}

// dateKey derives the calendar-date grouping key, or "" for invalid instants.
func dateKey(t time.Time) string {
	if IsInvalidInstant(t) {
		return ""
	}
	return t.Format(DateLayout)
}

// FromHistorical normalizes one historical-data row. The feed already carries
// a plain calendar date, so the instant is the start of that day.
func FromHistorical(rec models.HistoricalRecord) Entry {
	at := ParseInstant(rec.Date)
	price := ParseAmount(rec.UnitPrice)
	return Entry{
		At:        at,
		Date:      dateKey(at),
		Timestamp: rec.Date,
		Product:   rec.Product,
		Quantity:  rec.Quantity,
		UnitPrice: price,
		Amount:    price.Mul(decimal.NewFromInt(rec.Quantity)),
	}
}

// FromSale normalizes one sale record. Amount is the stored sales amount,
// not recomputed, so the report reflects the price at the time of sale.
func FromSale(sale models.Sale) Entry {
	at := ParseInstant(sale.SalesDate)
	return Entry{
		At:        at,
		Date:      dateKey(at),
		Timestamp: sale.SalesDate,
		Product:   sale.ProductID,
		Actor:     sale.Username,
		Quantity:  sale.QuantitySold,
		Amount:    ParseAmount(sale.SalesAmount),
	}
}

// FromStockTransaction normalizes one sales stock transaction.
func FromStockTransaction(tx models.SalesStockTransaction) Entry {
	return Entry{
		At:        ParseInstant(tx.StockDate),
		Date:      dateKey(ParseInstant(tx.StockDate)),
		Timestamp: tx.StockDate,
		Product:   tx.ProductID,
		Actor:     tx.Username,
		Kind:      tx.TransactionType,
		Quantity:  tx.QuantityObtained,
		UnitPrice: ParseAmount(tx.StockAmount),
		Amount:    ParseAmount(tx.StockAmount).Mul(decimal.NewFromInt(tx.QuantityObtained)),
	}
}

// ProductionEntry is the normalized form of a production run; it keeps the
// produced/damaged split so derived values can be recomputed per row.
type ProductionEntry struct {
	At        time.Time       `json:"-"`
	Date      string          `json:"date"`
	Timestamp string          `json:"timestamp,omitempty"`
	Product   string          `json:"product"`
	Actor     string          `json:"actor,omitempty"`
	Produced  int64           `json:"quantity_produced"`
	Damaged   int64           `json:"quantity_damaged"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// TotalCost is quantity produced times unit price.
func (e ProductionEntry) TotalCost() decimal.Decimal {
	return e.UnitPrice.Mul(decimal.NewFromInt(e.Produced))
}

// NetValue is total cost minus the damaged share.
func (e ProductionEntry) NetValue() decimal.Decimal {
	return e.TotalCost().Sub(e.UnitPrice.Mul(decimal.NewFromInt(e.Damaged)))
}

// FromProduction normalizes one production record.
func FromProduction(rec models.ProductionRecord) ProductionEntry {
	at := ParseInstant(rec.ProductionDate)
	return ProductionEntry{
		At:        at,
		Date:      dateKey(at),
		Timestamp: rec.ProductionDate,
		Product:   rec.ProductName,
		Actor:     rec.Username,
		Produced:  rec.QuantityProduced,
		Damaged:   rec.QuantityDamaged,
		UnitPrice: ParseAmount(rec.UnitPrice),
	}
}

// LedgerEntry is the normalized form of an inventory transaction, ready for
// the running-balance fold. Seq preserves the original fetch order so equal
// timestamps keep a deterministic processing order.
type LedgerEntry struct {
	At        time.Time       `json:"-"`
	Seq       int             `json:"-"`
	Timestamp string          `json:"timestamp"`
	Type      string          `json:"type"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Actor     string          `json:"actor,omitempty"`
	Remarks   string          `json:"remarks,omitempty"`
}

// FromTransactions normalizes an ordered fetch of inventory transactions.
func FromTransactions(txs []models.InventoryTransaction) []LedgerEntry {
	entries := make([]LedgerEntry, 0, len(txs))
	for i, tx := range txs {
		entries = append(entries, LedgerEntry{
			At:        ParseInstant(tx.TransactionDate),
			Seq:       i,
			Timestamp: tx.TransactionDate,
			Type:      tx.TransactionType,
			Quantity:  tx.Quantity,
			UnitPrice: ParseAmount(tx.UnitPrice),
			Actor:     tx.Username,
			Remarks:   tx.Remarks,
		})
	}
	return entries
}
