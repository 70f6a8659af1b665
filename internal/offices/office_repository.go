package offices

import (
	"agos/internal/database"
	"agos/internal/recordstore"
	custom_error "agos/pkg/errors"
	"agos/pkg/models"
)

type OfficeRepository struct {
	store *recordstore.Store
}

func NewRepository(store *recordstore.Store) *OfficeRepository {
	return &OfficeRepository{store: store}
}

func (r *OfficeRepository) GetOffices() ([]models.Office, error) {
	return recordstore.All[models.Office](r.store, database.CollectionOffices)
}

func (r *OfficeRepository) GetOfficeByID(id int64) (*models.Office, error) {
	office, err := recordstore.ByKey[models.Office](r.store, database.CollectionOffices, id)
	if err != nil {
		return nil, err
	}
	if office == nil {
		return nil, custom_error.NewNotFound("office", id)
	}
	return office, nil
}

func (r *OfficeRepository) PersistOffice(office *models.Office) error {
	id, err := r.store.Add(database.CollectionOffices, office)
	if err != nil {
		return err
	}
	office.OfficeID = int(id)
	return nil
}

func (r *OfficeRepository) UpdateOffice(office models.Office) (*models.Office, error) {
	if _, err := r.GetOfficeByID(int64(office.OfficeID)); err != nil {
		return nil, err
	}
	if err := r.store.Put(database.CollectionOffices, office); err != nil {
		return nil, err
	}
	return &office, nil
}

func (r *OfficeRepository) RemoveOffice(id int64) error {
	ok, err := r.store.Delete(database.CollectionOffices, id)
	if err != nil {
		return err
	}
	if !ok {
		return custom_error.NewNotFound("office", id)
	}
	return nil
}
