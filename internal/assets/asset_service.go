package assets

import (
	"fmt"

	"agos/internal/audit"
	"agos/internal/database"
	"agos/internal/recordstore"
	custom_error "agos/pkg/errors"
	"agos/pkg/models"
)

const (
	UnknownOffice   = "Unknown Office"
	UnknownEmployee = "Unknown Employee"
)

// AssetService is the simple-mode path: self-contained asset rows with their
// own history log, kept alongside the richer instance model.
type AssetService struct {
	store    *recordstore.Store
	recorder *audit.Recorder
}

func NewService(store *recordstore.Store, recorder *audit.Recorder) *AssetService {
	return &AssetService{store: store, recorder: recorder}
}

func (s *AssetService) GetAssets() ([]models.AssetWithDetails, error) {
	assets, err := recordstore.All[models.Asset](s.store, database.CollectionAssets)
	if err != nil {
		return nil, err
	}
	offices, err := recordstore.All[models.Office](s.store, database.CollectionOffices)
	if err != nil {
		return nil, err
	}
	employees, err := recordstore.All[models.Employee](s.store, database.CollectionEmployees)
	if err != nil {
		return nil, err
	}

	officeNames := make(map[int]string, len(offices))
	for _, o := range offices {
		officeNames[o.OfficeID] = o.OfficeName
	}
	employeeNames := make(map[int]string, len(employees))
	for _, e := range employees {
		employeeNames[e.EmployeeID] = e.FullName()
	}

	detailed := make([]models.AssetWithDetails, 0, len(assets))
	for _, asset := range assets {
		d := models.AssetWithDetails{Asset: asset, OfficeName: UnknownOffice}
		if name, ok := officeNames[asset.CurrentOfficeID]; ok {
			d.OfficeName = name
		}
		if asset.AssignedToEmployeeID != nil {
			name := UnknownEmployee
			if n, ok := employeeNames[*asset.AssignedToEmployeeID]; ok {
				name = n
			}
			d.AssignedToEmployeeName = &name
		}
		detailed = append(detailed, d)
	}
	return detailed, nil
}

func (s *AssetService) GetAssetByID(id int64) (*models.Asset, error) {
	asset, err := recordstore.ByKey[models.Asset](s.store, database.CollectionAssets, id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, custom_error.NewNotFound("asset", id)
	}
	return asset, nil
}

func (s *AssetService) CreateAsset(asset *models.Asset) error {
	return s.store.WithTx(func(tx *recordstore.Tx) error {
		id, err := tx.Add(database.CollectionAssets, asset)
		if err != nil {
			return err
		}
		asset.AssetID = int(id)

		return s.recorder.AssetEvent(tx, models.HistoryEntry{
			AssetID: asset.AssetID,
			Action:  models.ActionCreated,
			Notes:   fmt.Sprintf("Asset created with property code %s.", asset.PropertyCode),
		})
	})
}

func (s *AssetService) UpdateAsset(asset models.Asset) (*models.Asset, error) {
	err := s.store.WithTx(func(tx *recordstore.Tx) error {
		old, err := recordstore.ByKey[models.Asset](tx, database.CollectionAssets, int64(asset.AssetID))
		if err != nil {
			return err
		}
		if old == nil {
			return custom_error.NewNotFound("asset", int64(asset.AssetID))
		}

		action, notes := audit.Classify(snapshotOf(*old), snapshotOf(asset))

		if err := tx.Put(database.CollectionAssets, asset); err != nil {
			return err
		}
		if action == "" {
			return nil
		}

		return s.recorder.AssetEvent(tx, models.HistoryEntry{
			AssetID: asset.AssetID,
			Action:  action,
			Notes:   notes,
		})
	})
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (s *AssetService) DeleteAsset(id int64) error {
	return s.store.WithTx(func(tx *recordstore.Tx) error {
		old, err := recordstore.ByKey[models.Asset](tx, database.CollectionAssets, id)
		if err != nil {
			return err
		}
		if old == nil {
			return custom_error.NewNotFound("asset", id)
		}

		err = s.recorder.AssetEvent(tx, models.HistoryEntry{
			AssetID: old.AssetID,
			Action:  models.ActionDeleted,
			Notes:   "Asset record was deleted from the system.",
		})
		if err != nil {
			return err
		}

		_, err = tx.Delete(database.CollectionAssets, id)
		return err
	})
}

// GetHistoryForAsset returns the asset's history, most recent first.
func (s *AssetService) GetHistoryForAsset(id int64) ([]models.HistoryEntry, error) {
	entries, err := recordstore.ByIndex[models.HistoryEntry](
		s.store, database.CollectionAssetHistory, database.IndexHistoryAsset, id)
	if err != nil {
		return nil, err
	}
	audit.SortNewestFirst(entries, func(e models.HistoryEntry) string { return e.Timestamp })
	return entries, nil
}

func snapshotOf(asset models.Asset) audit.Snapshot {
	location := ""
	if asset.SpecificLocation != nil {
		location = *asset.SpecificLocation
	}
	return audit.Snapshot{
		Status:           asset.Status,
		AssignedTo:       asset.AssignedToEmployeeID,
		OfficeID:         asset.CurrentOfficeID,
		SpecificLocation: location,
	}
}
