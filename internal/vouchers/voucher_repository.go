package vouchers

import (
	"agos/internal/database"
	"agos/internal/recordstore"
	custom_error "agos/pkg/errors"
	"agos/pkg/models"
)

const (
	UnknownEmployee = "Unknown"
	NoEmployee      = "N/A"
)

type VoucherRepository struct {
	store *recordstore.Store
}

func NewRepository(store *recordstore.Store) *VoucherRepository {
	return &VoucherRepository{store: store}
}

// GetDetailedVouchers lists every voucher with the receiving employee's name
// resolved.
func (r *VoucherRepository) GetDetailedVouchers() ([]models.DetailedReceivingVoucher, error) {
	vouchers, err := recordstore.All[models.ReceivingVoucher](r.store, database.CollectionVouchers)
	if err != nil {
		return nil, err
	}
	employees, err := recordstore.All[models.Employee](r.store, database.CollectionEmployees)
	if err != nil {
		return nil, err
	}

	employeeNames := make(map[int]string, len(employees))
	for _, e := range employees {
		employeeNames[e.EmployeeID] = e.FullName()
	}

	detailed := make([]models.DetailedReceivingVoucher, 0, len(vouchers))
	for _, v := range vouchers {
		name := NoEmployee
		if v.ReceivedByEmployeeID != nil {
			name = UnknownEmployee
			if n, ok := employeeNames[*v.ReceivedByEmployeeID]; ok {
				name = n
			}
		}
		detailed = append(detailed, models.DetailedReceivingVoucher{
			ReceivingVoucher:       v,
			ReceivedByEmployeeName: name,
		})
	}
	return detailed, nil
}

func (r *VoucherRepository) GetVoucherByID(id int64) (*models.ReceivingVoucher, error) {
	voucher, err := recordstore.ByKey[models.ReceivingVoucher](r.store, database.CollectionVouchers, id)
	if err != nil {
		return nil, err
	}
	if voucher == nil {
		return nil, custom_error.NewNotFound("receiving voucher", id)
	}
	return voucher, nil
}

func (r *VoucherRepository) PersistVoucher(voucher *models.ReceivingVoucher) error {
	id, err := r.store.Add(database.CollectionVouchers, voucher)
	if err != nil {
		return err
	}
	voucher.VoucherID = int(id)
	return nil
}

func (r *VoucherRepository) UpdateVoucher(voucher models.ReceivingVoucher) (*models.ReceivingVoucher, error) {
	if _, err := r.GetVoucherByID(int64(voucher.VoucherID)); err != nil {
		return nil, err
	}
	if err := r.store.Put(database.CollectionVouchers, voucher); err != nil {
		return nil, err
	}
	return &voucher, nil
}
