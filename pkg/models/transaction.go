package models

// AssetTransaction is one immutable audit entry for an asset instance, with
// a snapshot of office and employee at the time of the change. Never updated
// or deleted after creation.
type AssetTransaction struct {
	TransactionID int    `json:"transactionID,omitempty"`
	InstanceID    int    `json:"instanceID"`
	Action        Action `json:"action"`
	OfficeID      *int   `json:"officeID"`
	EmployeeID    *int   `json:"employeeID"`
	Notes         string `json:"notes"`
	Timestamp     string `json:"timestamp"`
}

// HistoryEntry is the simple-mode audit entry for an asset.
type HistoryEntry struct {
	HistoryID int    `json:"historyID,omitempty"`
	AssetID   int    `json:"assetID"`
	Action    Action `json:"action"`
	Timestamp string `json:"timestamp"`
	Notes     string `json:"notes"`
}

// StockTransaction is the immutable audit entry for a stock quantity change.
type StockTransaction struct {
	TransactionID  int         `json:"transactionID,omitempty"`
	StockID        int         `json:"stockID"`
	Action         StockAction `json:"action"`
	QuantityChange int         `json:"quantityChange"`
	Notes          *string     `json:"notes"`
	Timestamp      string      `json:"timestamp"`
}
