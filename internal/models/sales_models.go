package models

// SaleStock is the per-product quantity a sales actor currently holds for
// sale at a given unit price. Restocks increment QuantityObtained, sales
// decrement it.
type SaleStock struct {
	ID               int64  `json:"id"`
	ProductID        string `json:"product_id" binding:"required"`
	QuantityObtained int64  `json:"quantity_obtained"`
	StockAmount      string `json:"stock_amount"` // unit price
	StockDate        string `json:"stock_date"`
	Username         string `json:"username,omitempty"`
}

// Sale records one sale against a SaleStock. SalesAmount is quantity sold
// times the stock's unit price at the time of sale.
type Sale struct {
	ID           int64  `json:"id"`
	ProductID    string `json:"product_id" binding:"required"`
	QuantitySold int64  `json:"quantity_sold"`
	SalesAmount  string `json:"sales_amount"`
	SalesDate    string `json:"sales_date"`
	Username     string `json:"username,omitempty"`
}

// SalesStockTransaction is the audit trail the remote store keeps for sale
// stocks: an Addition when a stock record is created, an Update when it is
// edited (restock or sale).
type SalesStockTransaction struct {
	ID               int64  `json:"id"`
	SaleStock        int64  `json:"sale_stock"`
	TransactionType  string `json:"transaction_type"`
	ProductID        string `json:"product_id"`
	QuantityObtained int64  `json:"quantity_obtained"`
	StockAmount      string `json:"stock_amount"`
	StockDate        string `json:"stock_date"`
	Remarks          string `json:"remarks,omitempty"`
	Username         string `json:"username,omitempty"`
}
