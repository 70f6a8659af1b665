package instances

import (
	"fmt"

	"agos/internal/audit"
	"agos/internal/database"
	"agos/internal/recordstore"
	custom_error "agos/pkg/errors"
	"agos/pkg/models"
)

// Placeholders substituted for dangling foreign keys on the listing surface.
const (
	UnknownItem   = "Unknown Item"
	UnknownOffice = "Unknown Office"
)

type InstanceService struct {
	store    *recordstore.Store
	recorder *audit.Recorder
}

func NewService(store *recordstore.Store, recorder *audit.Recorder) *InstanceService {
	return &InstanceService{store: store, recorder: recorder}
}

// GetDetailedInstances lists every instance with its catalog item, office and
// employee resolved. A missing reference becomes a placeholder, never an
// error.
func (s *InstanceService) GetDetailedInstances() ([]models.AssetInstanceDetails, error) {
	instances, err := recordstore.All[models.AssetInstance](s.store, database.CollectionAssetInstances)
	if err != nil {
		return nil, err
	}
	catalog, err := recordstore.All[models.CatalogItem](s.store, database.CollectionAssetCatalog)
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

	catalogByID := make(map[int]models.CatalogItem, len(catalog))
	for _, item := range catalog {
		catalogByID[item.CatalogID] = item
	}
	officeByID := make(map[int]models.Office, len(offices))
	for _, o := range offices {
		officeByID[o.OfficeID] = o
	}
	employeeByID := make(map[int]models.Employee, len(employees))
	for _, e := range employees {
		employeeByID[e.EmployeeID] = e
	}

	detailed := make([]models.AssetInstanceDetails, 0, len(instances))
	for _, inst := range instances {
		d := models.AssetInstanceDetails{AssetInstance: inst}

		if item, ok := catalogByID[inst.CatalogID]; ok {
			d.CatalogItem = item
		} else {
			d.CatalogItem = models.CatalogItem{CatalogID: inst.CatalogID, Name: UnknownItem}
		}
		if office, ok := officeByID[inst.CurrentOfficeID]; ok {
			d.Office = office
		} else {
			d.Office = models.Office{OfficeID: inst.CurrentOfficeID, OfficeName: UnknownOffice}
		}
		if inst.AssignedToEmployeeID != nil {
			if emp, ok := employeeByID[*inst.AssignedToEmployeeID]; ok {
				d.Employee = &emp
			}
		}

		detailed = append(detailed, d)
	}
	return detailed, nil
}

func (s *InstanceService) GetInstanceByID(id int64) (*models.AssetInstance, error) {
	inst, err := recordstore.ByKey[models.AssetInstance](s.store, database.CollectionAssetInstances, id)
	if err != nil {
		return nil, err
	}
	if inst == nil {
		return nil, custom_error.NewNotFound("asset instance", id)
	}
	return inst, nil
}

// GetInstancesByVoucher lists the instances delivered under one receiving
// voucher.
func (s *InstanceService) GetInstancesByVoucher(voucherID int64) ([]models.AssetInstance, error) {
	return recordstore.ByIndex[models.AssetInstance](
		s.store, database.CollectionAssetInstances, database.IndexInstanceVoucher, voucherID)
}

// CreateInstance persists a new instance and its first transaction in one
// unit of work. The initial status doubles as the action label.
func (s *InstanceService) CreateInstance(inst *models.AssetInstance) error {
	return s.store.WithTx(func(tx *recordstore.Tx) error {
		id, err := tx.Add(database.CollectionAssetInstances, inst)
		if err != nil {
			return err
		}
		inst.InstanceID = int(id)

		office := inst.CurrentOfficeID
		return s.recorder.InstanceEvent(tx, models.AssetTransaction{
			InstanceID: inst.InstanceID,
			Action:     models.Action(inst.Status),
			OfficeID:   &office,
			EmployeeID: inst.AssignedToEmployeeID,
			Notes:      fmt.Sprintf("Asset instance created with property code %s.", inst.PropertyCode),
		})
	})
}

// UpdateInstance diffs the incoming record against the stored one, writes the
// new record, and appends a classified transaction when anything meaningful
// changed. A no-op update writes no history.
func (s *InstanceService) UpdateInstance(inst models.AssetInstance) (*models.AssetInstance, error) {
	err := s.store.WithTx(func(tx *recordstore.Tx) error {
		old, err := recordstore.ByKey[models.AssetInstance](tx, database.CollectionAssetInstances, int64(inst.InstanceID))
		if err != nil {
			return err
		}
		if old == nil {
			return custom_error.NewNotFound("asset instance", int64(inst.InstanceID))
		}

		action, notes := audit.Classify(snapshotOf(*old), snapshotOf(inst))

		if err := tx.Put(database.CollectionAssetInstances, inst); err != nil {
			return err
		}
		if action == "" {
			return nil
		}

		office := inst.CurrentOfficeID
		return s.recorder.InstanceEvent(tx, models.AssetTransaction{
			InstanceID: inst.InstanceID,
			Action:     action,
			OfficeID:   &office,
			EmployeeID: inst.AssignedToEmployeeID,
			Notes:      notes,
		})
	})
	if err != nil {
		return nil, err
	}
	return &inst, nil
}

// DeleteInstance appends the terminal transaction first, then removes the
// record; both happen or neither does. The trail outlives the instance.
func (s *InstanceService) DeleteInstance(id int64) error {
	return s.store.WithTx(func(tx *recordstore.Tx) error {
		old, err := recordstore.ByKey[models.AssetInstance](tx, database.CollectionAssetInstances, id)
		if err != nil {
			return err
		}
		if old == nil {
			return custom_error.NewNotFound("asset instance", id)
		}

		office := old.CurrentOfficeID
		err = s.recorder.InstanceEvent(tx, models.AssetTransaction{
			InstanceID: old.InstanceID,
			Action:     models.ActionDeleted,
			OfficeID:   &office,
			EmployeeID: old.AssignedToEmployeeID,
			Notes:      "Asset instance record was deleted from the system.",
		})
		if err != nil {
			return err
		}

		_, err = tx.Delete(database.CollectionAssetInstances, id)
		return err
	})
}

// GetTransactionsForInstance returns the audit trail, most recent first.
func (s *InstanceService) GetTransactionsForInstance(id int64) ([]models.AssetTransaction, error) {
	transactions, err := recordstore.ByIndex[models.AssetTransaction](
		s.store, database.CollectionAssetTransactions, database.IndexTransactionInst, id)
	if err != nil {
		return nil, err
	}
	audit.SortNewestFirst(transactions, func(t models.AssetTransaction) string { return t.Timestamp })
	return transactions, nil
}

func snapshotOf(inst models.AssetInstance) audit.Snapshot {
	location := ""
	if inst.SpecificLocation != nil {
		location = *inst.SpecificLocation
	}
	return audit.Snapshot{
		Status:           inst.Status,
		AssignedTo:       inst.AssignedToEmployeeID,
		OfficeID:         inst.CurrentOfficeID,
		SpecificLocation: location,
	}
}
