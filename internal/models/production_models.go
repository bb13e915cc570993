package models

// ProductionRecord describes one production run. RawMaterials and QuantityUsed
// are index-aligned and must have the same length; QuantityDamaged defaults to
// zero and can never exceed QuantityProduced.
type ProductionRecord struct {
	ID               int64   `json:"id"`
	ProductName      string  `json:"productName" binding:"required"`
	RawMaterials     []int64 `json:"rawMaterials"`
	QuantityUsed     []int64 `json:"quantityUsed"`
	QuantityProduced int64   `json:"quantityProduced"`
	QuantityDamaged  int64   `json:"quantityDamaged"`
	ProductionDate   string  `json:"productionDate"`
	UnitPrice        string  `json:"unit_price"`
	Username         string  `json:"username,omitempty"`
}
