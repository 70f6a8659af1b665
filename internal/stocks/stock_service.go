package stocks

import (
	"fmt"

	"agos/internal/audit"
	"agos/internal/database"
	"agos/internal/recordstore"
	custom_error "agos/pkg/errors"
	"agos/pkg/models"
)

const UnknownOffice = "Unknown Office"

type StockService struct {
	store    *recordstore.Store
	recorder *audit.Recorder
}

func NewService(store *recordstore.Store, recorder *audit.Recorder) *StockService {
	return &StockService{store: store, recorder: recorder}
}

// GetDetailedStockLevels joins stock rows with their catalog item and office.
// Rows whose catalog item is known to be Equipment are filtered out; rows
// with a dangling catalog reference stay visible under a placeholder so bad
// data can be found and fixed.
func (s *StockService) GetDetailedStockLevels() ([]models.DetailedStock, error) {
	stock, err := recordstore.All[models.Stock](s.store, database.CollectionStock)
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

	catalogByID := make(map[int]models.CatalogItem, len(catalog))
	for _, item := range catalog {
		catalogByID[item.CatalogID] = item
	}
	officeByID := make(map[int]models.Office, len(offices))
	for _, o := range offices {
		officeByID[o.OfficeID] = o
	}

	detailed := make([]models.DetailedStock, 0, len(stock))
	for _, row := range stock {
		d := models.DetailedStock{Stock: row}

		if item, ok := catalogByID[row.CatalogID]; ok {
			if item.Kind != models.KindSupply {
				continue
			}
			d.CatalogItem = item
		} else {
			d.CatalogItem = models.CatalogItem{CatalogID: row.CatalogID, Name: "Unknown Item"}
		}
		if office, ok := officeByID[row.OfficeID]; ok {
			d.Office = office
		} else {
			d.Office = models.Office{OfficeID: row.OfficeID, OfficeName: UnknownOffice}
		}

		detailed = append(detailed, d)
	}
	return detailed, nil
}

func (s *StockService) GetStockByID(id int64) (*models.Stock, error) {
	stock, err := recordstore.ByKey[models.Stock](s.store, database.CollectionStock, id)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, custom_error.NewNotFound("stock", id)
	}
	return stock, nil
}

// AddStock tops up the (catalog, office) pair, creating the row on first
// delivery. There is never more than one row per pair; the composite unique
// index backs this up if a concurrent writer sneaks past the lookup.
func (s *StockService) AddStock(catalogID, officeID, quantity int) (*models.Stock, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity to add must be positive, got %d", quantity)
	}

	var result models.Stock
	err := s.store.WithTx(func(tx *recordstore.Tx) error {
		existing, err := recordstore.ByIndex[models.Stock](
			tx, database.CollectionStock, database.IndexStockCatalogOffice, catalogID, officeID)
		if err != nil {
			return err
		}

		if len(existing) > 0 {
			result = existing[0]
			result.QuantityOnHand += quantity
			if err := tx.Put(database.CollectionStock, result); err != nil {
				return err
			}
		} else {
			result = models.Stock{CatalogID: catalogID, OfficeID: officeID, QuantityOnHand: quantity}
			id, err := tx.Add(database.CollectionStock, result)
			if err != nil {
				return err
			}
			result.StockID = int(id)
		}

		return s.recorder.StockEvent(tx, models.StockTransaction{
			StockID:        result.StockID,
			Action:         models.StockActionAdded,
			QuantityChange: quantity,
		})
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// AdjustStockQuantity applies a signed adjustment per action kind and appends
// exactly one transaction. An adjustment that would go negative fails with
// NegativeStockError and nothing is written.
func (s *StockService) AdjustStockQuantity(stockID int64, action models.StockAction, quantityChange int, notes *string) (*models.Stock, error) {
	if !action.Valid() {
		return nil, fmt.Errorf("unknown stock action %q", action)
	}
	if quantityChange <= 0 {
		return nil, fmt.Errorf("quantity change must be positive, got %d", quantityChange)
	}

	var result models.Stock
	err := s.store.WithTx(func(tx *recordstore.Tx) error {
		stock, err := recordstore.ByKey[models.Stock](tx, database.CollectionStock, stockID)
		if err != nil {
			return err
		}
		if stock == nil {
			return custom_error.NewNotFound("stock", stockID)
		}

		newQuantity := stock.QuantityOnHand
		if action.Decreasing() {
			newQuantity -= quantityChange
		} else {
			newQuantity += quantityChange
		}
		if newQuantity < 0 {
			return &custom_error.NegativeStockError{
				StockID:   stock.StockID,
				Requested: quantityChange,
				OnHand:    stock.QuantityOnHand,
			}
		}

		stock.QuantityOnHand = newQuantity
		if err := tx.Put(database.CollectionStock, *stock); err != nil {
			return err
		}

		result = *stock
		return s.recorder.StockEvent(tx, models.StockTransaction{
			StockID:        stock.StockID,
			Action:         action,
			QuantityChange: quantityChange,
			Notes:          notes,
		})
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteStock removes a stock row after appending its terminal transaction.
func (s *StockService) DeleteStock(id int64) error {
	return s.store.WithTx(func(tx *recordstore.Tx) error {
		stock, err := recordstore.ByKey[models.Stock](tx, database.CollectionStock, id)
		if err != nil {
			return err
		}
		if stock == nil {
			return custom_error.NewNotFound("stock", id)
		}

		notes := "Stock record was deleted from the system."
		err = s.recorder.StockEvent(tx, models.StockTransaction{
			StockID:        stock.StockID,
			Action:         models.StockActionDeleted,
			QuantityChange: stock.QuantityOnHand,
			Notes:          &notes,
		})
		if err != nil {
			return err
		}

		_, err = tx.Delete(database.CollectionStock, id)
		return err
	})
}

// GetTransactionsForStockItem returns the stock audit trail, most recent
// first.
func (s *StockService) GetTransactionsForStockItem(stockID int64) ([]models.StockTransaction, error) {
	transactions, err := recordstore.ByIndex[models.StockTransaction](
		s.store, database.CollectionStockTransactions, database.IndexStockTransaction, stockID)
	if err != nil {
		return nil, err
	}
	audit.SortNewestFirst(transactions, func(t models.StockTransaction) string { return t.Timestamp })
	return transactions, nil
}
