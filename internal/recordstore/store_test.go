package recordstore_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agos/internal/database"
	. "agos/internal/recordstore"
	custom_error "agos/pkg/errors"
)

type widget struct {
	WidgetID int    `json:"widgetID,omitempty"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	BinID    int    `json:"binID"`
	ShelfID  int    `json:"shelfID"`
}

func testCollections() []Collection {
	return []Collection{
		{
			Name: "widgets",
			Key:  "widgetID",
			Indexes: []Index{
				{Name: "code_idx", Fields: []string{"code"}, Unique: true},
				{Name: "bin_idx", Fields: []string{"binID"}},
				{Name: "bin_shelf_idx", Fields: []string{"binID", "shelfID"}, Unique: true},
			},
		},
		{Name: "crates", Key: "crateID"},
	}
}

func openTestStore(t *testing.T, path string) *Store {
	t.Helper()

	db, err := database.NewSQLiteConnection(path)
	require.NoError(t, err)

	store := New(db)
	require.NoError(t, store.EnsureSchema(1, testCollections()))
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAddAssignsAndInjectsKey(t *testing.T) {
	store := openTestStore(t, filepath.Join(t.TempDir(), "test.db"))

	first, err := store.Add("widgets", widget{Name: "drill", Code: "W-1", BinID: 1, ShelfID: 1})
	require.NoError(t, err)
	second, err := store.Add("widgets", widget{Name: "saw", Code: "W-2", BinID: 1, ShelfID: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)

	// The stored document carries the assigned key.
	got, err := ByKey[widget](store, "widgets", first)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1, got.WidgetID)
	assert.Equal(t, "drill", got.Name)
}

func TestByKeyAbsentReturnsNil(t *testing.T) {
	store := openTestStore(t, filepath.Join(t.TempDir(), "test.db"))

	got, err := ByKey[widget](store, "widgets", 999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAddRejectsUniqueIndexViolation(t *testing.T) {
	store := openTestStore(t, filepath.Join(t.TempDir(), "test.db"))

	_, err := store.Add("widgets", widget{Name: "drill", Code: "W-1", BinID: 1, ShelfID: 1})
	require.NoError(t, err)

	_, err = store.Add("widgets", widget{Name: "other drill", Code: "W-1", BinID: 2, ShelfID: 2})
	var dup *custom_error.DuplicateKeyError
	require.ErrorAs(t, err, &dup)

	all, err := All[widget](store, "widgets")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCompositeUniqueIndex(t *testing.T) {
	store := openTestStore(t, filepath.Join(t.TempDir(), "test.db"))

	_, err := store.Add("widgets", widget{Name: "a", Code: "W-1", BinID: 3, ShelfID: 7})
	require.NoError(t, err)

	_, err = store.Add("widgets", widget{Name: "b", Code: "W-2", BinID: 3, ShelfID: 7})
	var dup *custom_error.DuplicateKeyError
	require.ErrorAs(t, err, &dup)
}

func TestPutUpsertsByPrimaryKey(t *testing.T) {
	store := openTestStore(t, filepath.Join(t.TempDir(), "test.db"))

	id, err := store.Add("widgets", widget{Name: "drill", Code: "W-1", BinID: 1, ShelfID: 1})
	require.NoError(t, err)

	require.NoError(t, store.Put("widgets", widget{WidgetID: int(id), Name: "hammer drill", Code: "W-1", BinID: 1, ShelfID: 1}))

	got, err := ByKey[widget](store, "widgets", id)
	require.NoError(t, err)
	assert.Equal(t, "hammer drill", got.Name)

	all, err := All[widget](store, "widgets")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	// A put with an unused key inserts.
	require.NoError(t, store.Put("widgets", widget{WidgetID: 42, Name: "vise", Code: "W-9", BinID: 9, ShelfID: 9}))
	got, err = ByKey[widget](store, "widgets", 42)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "vise", got.Name)
}

func TestPutWithoutKeyFails(t *testing.T) {
	store := openTestStore(t, filepath.Join(t.TempDir(), "test.db"))

	err := store.Put("widgets", widget{Name: "drill", Code: "W-1"})
	assert.Error(t, err)
}

func TestDeleteReportsExistence(t *testing.T) {
	store := openTestStore(t, filepath.Join(t.TempDir(), "test.db"))

	id, err := store.Add("widgets", widget{Name: "drill", Code: "W-1", BinID: 1, ShelfID: 1})
	require.NoError(t, err)

	ok, err := store.Delete("widgets", id)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Delete("widgets", id)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestByIndexScans(t *testing.T) {
	store := openTestStore(t, filepath.Join(t.TempDir(), "test.db"))

	_, err := store.Add("widgets", widget{Name: "a", Code: "W-1", BinID: 1, ShelfID: 1})
	require.NoError(t, err)
	_, err = store.Add("widgets", widget{Name: "b", Code: "W-2", BinID: 1, ShelfID: 2})
	require.NoError(t, err)
	_, err = store.Add("widgets", widget{Name: "c", Code: "W-3", BinID: 2, ShelfID: 1})
	require.NoError(t, err)

	inBin, err := ByIndex[widget](store, "widgets", "bin_idx", 1)
	require.NoError(t, err)
	assert.Len(t, inBin, 2)

	exact, err := ByIndex[widget](store, "widgets", "bin_shelf_idx", 1, 2)
	require.NoError(t, err)
	require.Len(t, exact, 1)
	assert.Equal(t, "b", exact[0].Name)

	_, err = ByIndex[widget](store, "widgets", "bin_shelf_idx", 1)
	assert.Error(t, err, "composite index wants one value per field")

	_, err = ByIndex[widget](store, "widgets", "no_such_idx", 1)
	assert.Error(t, err)
}

func TestUnknownCollection(t *testing.T) {
	store := openTestStore(t, filepath.Join(t.TempDir(), "test.db"))

	_, err := store.Add("gadgets", widget{Name: "a"})
	assert.Error(t, err)

	_, err = All[widget](store, "gadgets")
	assert.Error(t, err)
}

func TestZeroValueStoreIsNotInitialized(t *testing.T) {
	var store Store

	_, err := store.Add("widgets", widget{Name: "a"})
	var notInit *custom_error.NotInitializedError
	assert.ErrorAs(t, err, &notInit)

	err = store.WithTx(func(tx *Tx) error { return nil })
	assert.ErrorAs(t, err, &notInit)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	store := openTestStore(t, filepath.Join(t.TempDir(), "test.db"))

	err := store.WithTx(func(tx *Tx) error {
		if _, err := tx.Add("widgets", widget{Name: "a", Code: "W-1", BinID: 1, ShelfID: 1}); err != nil {
			return err
		}
		// The duplicate fails the unit of work; the first write must roll
		// back with it.
		_, err := tx.Add("widgets", widget{Name: "b", Code: "W-1", BinID: 2, ShelfID: 2})
		return err
	})
	require.Error(t, err)

	all, err := All[widget](store, "widgets")
	require.NoError(t, err)
	assert.Empty(t, all)
}
