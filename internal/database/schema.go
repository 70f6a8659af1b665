package database

import "agos/internal/recordstore"

// SchemaVersion is bumped whenever Declarations gains a collection or index.
// Upgrades are purely additive; existing collections keep their data.
const SchemaVersion = 3

// Collection names. Every entity service goes through these constants so the
// declared schema and the used schema cannot drift apart.
const (
	CollectionOffices           = "offices"
	CollectionEmployees         = "employees"
	CollectionAssetCatalog      = "assetCatalog"
	CollectionAssets            = "assets"
	CollectionAssetHistory      = "assetHistory"
	CollectionAssetInstances    = "assetInstances"
	CollectionAssetTransactions = "assetTransactions"
	CollectionVouchers          = "receivingVouchers"
	CollectionStock             = "stock"
	CollectionStockTransactions = "stockTransactions"
)

// Secondary-index names.
const (
	IndexHistoryAsset       = "assetID_idx"
	IndexInstanceCatalog    = "catalogID_idx"
	IndexInstancePropCode   = "propertyCode_idx"
	IndexInstanceVoucher    = "receivingVoucherID_idx"
	IndexTransactionInst    = "instanceID_idx"
	IndexStockCatalogOffice = "catalogID_officeID_idx"
	IndexStockTransaction   = "stockID_idx"
)

// Declarations is the full schema handed to EnsureSchema at startup.
func Declarations() []recordstore.Collection {
	return []recordstore.Collection{
		{Name: CollectionOffices, Key: "officeID"},
		{Name: CollectionEmployees, Key: "employeeID"},
		{Name: CollectionAssetCatalog, Key: "catalogID"},
		{Name: CollectionAssets, Key: "assetID"},
		{
			Name: CollectionAssetHistory,
			Key:  "historyID",
			Indexes: []recordstore.Index{
				{Name: IndexHistoryAsset, Fields: []string{"assetID"}},
			},
		},
		{
			Name: CollectionAssetInstances,
			Key:  "instanceID",
			Indexes: []recordstore.Index{
				{Name: IndexInstanceCatalog, Fields: []string{"catalogID"}},
				{Name: IndexInstancePropCode, Fields: []string{"propertyCode"}, Unique: true},
				{Name: IndexInstanceVoucher, Fields: []string{"receivingVoucherID"}},
			},
		},
		{
			Name: CollectionAssetTransactions,
			Key:  "transactionID",
			Indexes: []recordstore.Index{
				{Name: IndexTransactionInst, Fields: []string{"instanceID"}},
			},
		},
		{Name: CollectionVouchers, Key: "voucherID"},
		{
			Name: CollectionStock,
			Key:  "stockID",
			Indexes: []recordstore.Index{
				{Name: IndexStockCatalogOffice, Fields: []string{"catalogID", "officeID"}, Unique: true},
			},
		},
		{
			Name: CollectionStockTransactions,
			Key:  "transactionID",
			Indexes: []recordstore.Index{
				{Name: IndexStockTransaction, Fields: []string{"stockID"}},
			},
		},
	}
}
