package models

// Transaction types recorded against inventory items and sale stocks.
// An Addition contributes its quantity to the running total; an Update
// replaces the running total outright. The replace semantics are a property
// of the domain and must be preserved.
const (
	TransactionAddition = "Addition"
	TransactionRemoval  = "Removal"
	TransactionUpdate   = "Update"
)

// InventoryItem represents a raw-material item as the remote store serializes
// it. Decimal fields travel as strings ("12.50"); the reports package owns the
// conversion into numeric form.
type InventoryItem struct {
	ID           int64  `json:"id"`
	Name         string `json:"name" binding:"required"`
	Category     string `json:"category"`
	UnitPrice    string `json:"unit_price"`
	ReorderLevel int64  `json:"reorder_level"` // on-hand quantity, unit depends on category (Kgs|Pcs|Ltr)
	Username     string `json:"username,omitempty"`
}

// InventoryTransaction records a change to an InventoryItem's quantity.
type InventoryTransaction struct {
	ID              int64  `json:"id"`
	Product         int64  `json:"product"` // referenced InventoryItem id, survives item deletion
	TransactionType string `json:"transaction_type"`
	Quantity        int64  `json:"quantity"`
	TransactionDate string `json:"transaction_date"`
	Remarks         string `json:"remarks,omitempty"`
	UnitPrice       string `json:"unit_price"`
	Username        string `json:"username,omitempty"`
}

// HistoricalRecord is one row of the remote store's historical-data feed:
// every inventory transaction flattened to date, product name, quantity and
// the item's unit price.
type HistoricalRecord struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Product   string `json:"product"`
	Quantity  int64  `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}
