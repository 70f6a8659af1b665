package models

type CatalogKind string

const (
	KindEquipment CatalogKind = "Equipment"
	KindSupply    CatalogKind = "Supply"
)

// CatalogItem is the blueprint a serialized instance or a stock row points
// at. Identity is immutable once referenced.
type CatalogItem struct {
	CatalogID         int         `json:"catalogID,omitempty"`
	Name              string      `json:"name" binding:"required"`
	Kind              CatalogKind `json:"type" binding:"required,oneof=Equipment Supply"`
	Description       *string     `json:"description"`
	UnitOfMeasurement string      `json:"unitOfMeasurement" binding:"required"`
	SKU               *string     `json:"sku"`
}
