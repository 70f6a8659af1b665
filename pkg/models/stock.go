package models

// Stock is the bulk supply count for one (catalog item, office) pair. The
// pair is unique; topping up an existing pair increments the row.
type Stock struct {
	StockID        int `json:"stockID,omitempty"`
	CatalogID      int `json:"catalogID" binding:"required"`
	OfficeID       int `json:"officeID" binding:"required"`
	QuantityOnHand int `json:"quantityOnHand"`
}

type DetailedStock struct {
	Stock
	CatalogItem CatalogItem `json:"catalogItem"`
	Office      Office      `json:"office"`
}
