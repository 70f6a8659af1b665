package models

// Asset is the simple-mode record: a self-contained row without a catalog
// reference, kept alongside the instance model.
type Asset struct {
	AssetID              int         `json:"assetID,omitempty"`
	PropertyCode         string      `json:"propertyCode" binding:"required"`
	Name                 string      `json:"name" binding:"required"`
	Kind                 CatalogKind `json:"type" binding:"required,oneof=Equipment Supply"`
	Description          *string     `json:"description"`
	Quantity             int         `json:"quantity"`
	UnitOfMeasurement    *string     `json:"unitOfMeasurement"`
	Status               Status      `json:"status" binding:"required"`
	CurrentOfficeID      int         `json:"currentOfficeId" binding:"required"`
	AssignedToEmployeeID *int        `json:"assignedToEmployeeId"`
	SpecificLocation     *string     `json:"specificLocation"`
}

type AssetWithDetails struct {
	Asset
	OfficeName             string  `json:"officeName"`
	AssignedToEmployeeName *string `json:"assignedToEmployeeName"`
}
