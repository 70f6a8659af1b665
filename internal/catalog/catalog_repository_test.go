package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agos/internal/database"
	"agos/internal/recordstore"
	custom_error "agos/pkg/errors"
	"agos/pkg/models"
)

func newTestRepository(t *testing.T) *CatalogRepository {
	t.Helper()

	db, err := database.NewSQLiteConnection(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	store := recordstore.New(db)
	require.NoError(t, store.EnsureSchema(database.SchemaVersion, database.Declarations()))
	t.Cleanup(func() { store.Close() })

	return NewRepository(store)
}

func newItem(name string, kind models.CatalogKind) models.CatalogItem {
	return models.CatalogItem{Name: name, Kind: kind, UnitOfMeasurement: "unit"}
}

func TestPersistAndGetCatalogItem(t *testing.T) {
	repo := newTestRepository(t)

	item := newItem("Laptop", models.KindEquipment)
	require.NoError(t, repo.PersistCatalogItem(&item))
	assert.NotZero(t, item.CatalogID)

	got, err := repo.GetCatalogItemByID(int64(item.CatalogID))
	require.NoError(t, err)
	assert.Equal(t, "Laptop", got.Name)

	_, err = repo.GetCatalogItemByID(999)
	var notFound *custom_error.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestUpdateCatalogItem(t *testing.T) {
	repo := newTestRepository(t)

	item := newItem("Laptop", models.KindEquipment)
	require.NoError(t, repo.PersistCatalogItem(&item))

	item.Name = "Laptop 14-inch"
	updated, err := repo.UpdateCatalogItem(item)
	require.NoError(t, err)
	assert.Equal(t, "Laptop 14-inch", updated.Name)

	ghost := newItem("Ghost", models.KindSupply)
	ghost.CatalogID = 999
	_, err = repo.UpdateCatalogItem(ghost)
	var notFound *custom_error.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestRemoveCatalogItemGuardedByInstances(t *testing.T) {
	repo := newTestRepository(t)

	item := newItem("Laptop", models.KindEquipment)
	require.NoError(t, repo.PersistCatalogItem(&item))

	_, err := repo.store.Add(database.CollectionAssetInstances, models.AssetInstance{
		CatalogID:       item.CatalogID,
		PropertyCode:    "PC-001",
		Status:          models.StatusInStorage,
		CurrentOfficeID: 1,
	})
	require.NoError(t, err)

	err = repo.RemoveCatalogItem(int64(item.CatalogID))
	var inUse *custom_error.InUseError
	require.ErrorAs(t, err, &inUse)
	assert.Equal(t, "asset instances", inUse.UsedBy)

	// The item is still there.
	_, err = repo.GetCatalogItemByID(int64(item.CatalogID))
	assert.NoError(t, err)
}

func TestRemoveCatalogItemGuardedByStock(t *testing.T) {
	repo := newTestRepository(t)

	item := newItem("Printer Paper", models.KindSupply)
	require.NoError(t, repo.PersistCatalogItem(&item))

	_, err := repo.store.Add(database.CollectionStock, models.Stock{
		CatalogID: item.CatalogID, OfficeID: 1, QuantityOnHand: 10,
	})
	require.NoError(t, err)

	err = repo.RemoveCatalogItem(int64(item.CatalogID))
	var inUse *custom_error.InUseError
	require.ErrorAs(t, err, &inUse)
	assert.Equal(t, "stock records", inUse.UsedBy)
}

func TestRemoveCatalogItemUnreferenced(t *testing.T) {
	repo := newTestRepository(t)

	item := newItem("Laptop", models.KindEquipment)
	require.NoError(t, repo.PersistCatalogItem(&item))

	require.NoError(t, repo.RemoveCatalogItem(int64(item.CatalogID)))

	_, err := repo.GetCatalogItemByID(int64(item.CatalogID))
	var notFound *custom_error.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
