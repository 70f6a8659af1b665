package employees

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

func newTestRepository(t *testing.T) *EmployeeRepository {
	t.Helper()

	db, err := database.NewSQLiteConnection(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	store := recordstore.New(db)
	require.NoError(t, store.EnsureSchema(database.SchemaVersion, database.Declarations()))
	t.Cleanup(func() { store.Close() })

	return NewRepository(store)
}

func intPtr(v int) *int { return &v }

func TestGetEmployeesResolvesOfficeName(t *testing.T) {
	repo := newTestRepository(t)

	officeID, err := repo.store.Add(database.CollectionOffices, models.Office{OfficeName: "HQ"})
	require.NoError(t, err)

	assigned := models.Employee{
		FirstName: "Ana", LastName: "Reyes", Email: "ana.reyes@example.com",
		CurrentOfficeID: intPtr(int(officeID)),
	}
	require.NoError(t, repo.PersistEmployee(&assigned))

	unassigned := models.Employee{FirstName: "Ben", LastName: "Cruz", Email: "ben.cruz@example.com"}
	require.NoError(t, repo.PersistEmployee(&unassigned))

	dangling := models.Employee{
		FirstName: "Cara", LastName: "Diaz", Email: "cara.diaz@example.com",
		CurrentOfficeID: intPtr(999),
	}
	require.NoError(t, repo.PersistEmployee(&dangling))

	enriched, err := repo.GetEmployees()
	require.NoError(t, err)
	require.Len(t, enriched, 3)

	byFirst := map[string]models.EmployeeWithOffice{}
	for _, e := range enriched {
		byFirst[e.FirstName] = e
	}

	assert.Equal(t, "HQ", byFirst["Ana"].OfficeName)
	assert.Equal(t, NoOffice, byFirst["Ben"].OfficeName)
	assert.Equal(t, UnknownOffice, byFirst["Cara"].OfficeName)
}

func TestEmployeeLifecycle(t *testing.T) {
	repo := newTestRepository(t)

	employee := models.Employee{FirstName: "Ana", LastName: "Reyes", Email: "ana.reyes@example.com"}
	require.NoError(t, repo.PersistEmployee(&employee))
	assert.NotZero(t, employee.EmployeeID)

	employee.LastName = "Reyes-Santos"
	updated, err := repo.UpdateEmployee(employee)
	require.NoError(t, err)
	assert.Equal(t, "Ana Reyes-Santos", updated.FullName())

	require.NoError(t, repo.RemoveEmployee(int64(employee.EmployeeID)))

	_, err = repo.GetEmployeeByID(int64(employee.EmployeeID))
	var notFound *custom_error.NotFoundError
	assert.ErrorAs(t, err, &notFound)

	err = repo.RemoveEmployee(int64(employee.EmployeeID))
	assert.ErrorAs(t, err, &notFound)
}
