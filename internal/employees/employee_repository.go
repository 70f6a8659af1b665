package employees

import (
	"agos/internal/database"
	"agos/internal/recordstore"
	custom_error "agos/pkg/errors"
	"agos/pkg/models"
)

// Placeholders used when an office reference is missing or dangling. The
// listing surface never fails on a broken foreign key.
const (
	UnknownOffice = "Unknown Office"
	NoOffice      = "N/A"
)

type EmployeeRepository struct {
	store *recordstore.Store
}

func NewRepository(store *recordstore.Store) *EmployeeRepository {
	return &EmployeeRepository{store: store}
}

// GetEmployees lists every employee enriched with the resolved office name.
func (r *EmployeeRepository) GetEmployees() ([]models.EmployeeWithOffice, error) {
	employees, err := recordstore.All[models.Employee](r.store, database.CollectionEmployees)
	if err != nil {
		return nil, err
	}
	offices, err := recordstore.All[models.Office](r.store, database.CollectionOffices)
	if err != nil {
		return nil, err
	}

	officeNames := make(map[int]string, len(offices))
	for _, o := range offices {
		officeNames[o.OfficeID] = o.OfficeName
	}

	enriched := make([]models.EmployeeWithOffice, 0, len(employees))
	for _, emp := range employees {
		name := NoOffice
		if emp.CurrentOfficeID != nil {
			name = UnknownOffice
			if n, ok := officeNames[*emp.CurrentOfficeID]; ok {
				name = n
			}
		}
		enriched = append(enriched, models.EmployeeWithOffice{Employee: emp, OfficeName: name})
	}
	return enriched, nil
}

func (r *EmployeeRepository) GetEmployeeByID(id int64) (*models.Employee, error) {
	employee, err := recordstore.ByKey[models.Employee](r.store, database.CollectionEmployees, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, custom_error.NewNotFound("employee", id)
	}
	return employee, nil
}

func (r *EmployeeRepository) PersistEmployee(employee *models.Employee) error {
	id, err := r.store.Add(database.CollectionEmployees, employee)
	if err != nil {
		return err
	}
	employee.EmployeeID = int(id)
	return nil
}

func (r *EmployeeRepository) UpdateEmployee(employee models.Employee) (*models.Employee, error) {
	if _, err := r.GetEmployeeByID(int64(employee.EmployeeID)); err != nil {
		return nil, err
	}
	if err := r.store.Put(database.CollectionEmployees, employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *EmployeeRepository) RemoveEmployee(id int64) error {
	ok, err := r.store.Delete(database.CollectionEmployees, id)
	if err != nil {
		return err
	}
	if !ok {
		return custom_error.NewNotFound("employee", id)
	}
	return nil
}
