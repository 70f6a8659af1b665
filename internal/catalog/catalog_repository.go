package catalog

import (
	"agos/internal/database"
	"agos/internal/recordstore"
	custom_error "agos/pkg/errors"
	"agos/pkg/models"
)

type CatalogRepository struct {
	store *recordstore.Store
}

func NewRepository(store *recordstore.Store) *CatalogRepository {
	return &CatalogRepository{store: store}
}

func (r *CatalogRepository) GetCatalogItems() ([]models.CatalogItem, error) {
	return recordstore.All[models.CatalogItem](r.store, database.CollectionAssetCatalog)
}

func (r *CatalogRepository) GetCatalogItemByID(id int64) (*models.CatalogItem, error) {
	item, err := recordstore.ByKey[models.CatalogItem](r.store, database.CollectionAssetCatalog, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, custom_error.NewNotFound("catalog item", id)
	}
	return item, nil
}

func (r *CatalogRepository) PersistCatalogItem(item *models.CatalogItem) error {
	id, err := r.store.Add(database.CollectionAssetCatalog, item)
	if err != nil {
		return err
	}
	item.CatalogID = int(id)
	return nil
}

func (r *CatalogRepository) UpdateCatalogItem(item models.CatalogItem) (*models.CatalogItem, error) {
	if _, err := r.GetCatalogItemByID(int64(item.CatalogID)); err != nil {
		return nil, err
	}
	if err := r.store.Put(database.CollectionAssetCatalog, item); err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveCatalogItem hard-deletes a blueprint, but only when nothing points at
// it anymore: live instances or stock rows keep it alive.
func (r *CatalogRepository) RemoveCatalogItem(id int64) error {
	if _, err := r.GetCatalogItemByID(id); err != nil {
		return err
	}

	used, usedBy, err := r.hasRelatedRecords(id)
	if err != nil {
		return err
	}
	if used {
		return &custom_error.InUseError{Resource: "catalog item", Key: id, UsedBy: usedBy}
	}

	ok, err := r.store.Delete(database.CollectionAssetCatalog, id)
	if err != nil {
		return err
	}
	if !ok {
		return custom_error.NewNotFound("catalog item", id)
	}
	return nil
}

func (r *CatalogRepository) hasRelatedRecords(id int64) (bool, string, error) {
	instances, err := recordstore.ByIndex[models.AssetInstance](
		r.store, database.CollectionAssetInstances, database.IndexInstanceCatalog, id)
	if err != nil {
		return false, "", err
	}
	if len(instances) > 0 {
		return true, "asset instances", nil
	}

	// The stock index is composite, so a per-catalog lookup is a scan.
	stock, err := recordstore.All[models.Stock](r.store, database.CollectionStock)
	if err != nil {
		return false, "", err
	}
	for _, s := range stock {
		if int64(s.CatalogID) == id {
			return true, "stock records", nil
		}
	}

	return false, "", nil
}
