package assets

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"agos/internal/audit"
	"agos/internal/database"
	"agos/internal/recordstore"
	custom_error "agos/pkg/errors"
	"agos/pkg/models"
)

func newTestService(t *testing.T) *AssetService {
	t.Helper()

	db, err := database.NewSQLiteConnection(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	store := recordstore.New(db)
	require.NoError(t, store.EnsureSchema(database.SchemaVersion, database.Declarations()))
	t.Cleanup(func() { store.Close() })

	return NewService(store, audit.NewRecorder(zap.NewNop()))
}

func newAsset(propertyCode string) models.Asset {
	return models.Asset{
		PropertyCode:    propertyCode,
		Name:            "Projector",
		Kind:            models.KindEquipment,
		Quantity:        1,
		Status:          models.StatusInStorage,
		CurrentOfficeID: 1,
	}
}

func intPtr(v int) *int { return &v }

func TestCreateAssetWritesHistory(t *testing.T) {
	service := newTestService(t)

	asset := newAsset("AS-001")
	require.NoError(t, service.CreateAsset(&asset))
	assert.NotZero(t, asset.AssetID)

	history, err := service.GetHistoryForAsset(int64(asset.AssetID))
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, models.ActionCreated, history[0].Action)
	assert.Contains(t, history[0].Notes, "AS-001")
}

func TestAssetLifecycleHistory(t *testing.T) {
	service := newTestService(t)

	asset := newAsset("AS-001")
	require.NoError(t, service.CreateAsset(&asset))

	asset.Status = models.StatusIssued
	asset.AssignedToEmployeeID = intPtr(3)
	_, err := service.UpdateAsset(asset)
	require.NoError(t, err)

	asset.Status = models.StatusDisposed
	asset.AssignedToEmployeeID = nil
	_, err = service.UpdateAsset(asset)
	require.NoError(t, err)

	history, err := service.GetHistoryForAsset(int64(asset.AssetID))
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, models.ActionDisposed, history[0].Action)
	assert.Equal(t, models.ActionIssued, history[1].Action)
	assert.Equal(t, models.ActionCreated, history[2].Action)
}

func TestUpdateAssetNoChangeWritesNoHistory(t *testing.T) {
	service := newTestService(t)

	asset := newAsset("AS-001")
	require.NoError(t, service.CreateAsset(&asset))

	_, err := service.UpdateAsset(asset)
	require.NoError(t, err)

	history, err := service.GetHistoryForAsset(int64(asset.AssetID))
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestDeleteAssetKeepsHistory(t *testing.T) {
	service := newTestService(t)

	asset := newAsset("AS-001")
	require.NoError(t, service.CreateAsset(&asset))

	require.NoError(t, service.DeleteAsset(int64(asset.AssetID)))

	_, err := service.GetAssetByID(int64(asset.AssetID))
	var notFound *custom_error.NotFoundError
	require.ErrorAs(t, err, &notFound)

	history, err := service.GetHistoryForAsset(int64(asset.AssetID))
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, models.ActionDeleted, history[0].Action)
}

func TestGetAssetsResolvesNames(t *testing.T) {
	service := newTestService(t)

	officeID, err := service.store.Add(database.CollectionOffices, models.Office{OfficeName: "HQ"})
	require.NoError(t, err)
	employeeID, err := service.store.Add(database.CollectionEmployees, models.Employee{
		FirstName: "Ana", LastName: "Reyes", Email: "ana.reyes@example.com",
	})
	require.NoError(t, err)

	asset := newAsset("AS-001")
	asset.CurrentOfficeID = int(officeID)
	asset.AssignedToEmployeeID = intPtr(int(employeeID))
	require.NoError(t, service.CreateAsset(&asset))

	orphan := newAsset("AS-002")
	orphan.CurrentOfficeID = 888
	orphan.AssignedToEmployeeID = intPtr(777)
	require.NoError(t, service.CreateAsset(&orphan))

	detailed, err := service.GetAssets()
	require.NoError(t, err)
	require.Len(t, detailed, 2)

	byCode := map[string]models.AssetWithDetails{}
	for _, d := range detailed {
		byCode[d.PropertyCode] = d
	}

	assert.Equal(t, "HQ", byCode["AS-001"].OfficeName)
	require.NotNil(t, byCode["AS-001"].AssignedToEmployeeName)
	assert.Equal(t, "Ana Reyes", *byCode["AS-001"].AssignedToEmployeeName)

	assert.Equal(t, UnknownOffice, byCode["AS-002"].OfficeName)
	require.NotNil(t, byCode["AS-002"].AssignedToEmployeeName)
	assert.Equal(t, UnknownEmployee, *byCode["AS-002"].AssignedToEmployeeName)
}
