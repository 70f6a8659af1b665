package models

// AssetInstance is one serialized equipment unit of a catalog item.
type AssetInstance struct {
	InstanceID           int     `json:"instanceID,omitempty"`
	CatalogID            int     `json:"catalogID" binding:"required"`
	PropertyCode         string  `json:"propertyCode" binding:"required"`
	SerialNumber         *string `json:"serialNumber"`
	Status               Status  `json:"status" binding:"required"`
	CurrentOfficeID      int     `json:"currentOfficeId" binding:"required"`
	AssignedToEmployeeID *int    `json:"assignedToEmployeeId"`
	SpecificLocation     *string `json:"specificLocation"`
	ReceivingVoucherID   *int    `json:"receivingVoucherID"`
}

// AssetInstanceDetails carries the resolved foreign keys for display.
// Dangling references resolve to "Unknown" placeholders, never an error.
type AssetInstanceDetails struct {
	AssetInstance
	CatalogItem CatalogItem `json:"catalogItem"`
	Office      Office      `json:"office"`
	Employee    *Employee   `json:"employee"`
}
