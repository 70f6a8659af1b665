// Package recordstore is a generic, schema-versioned collection store over a
// single embedded SQLite database. Records are JSON documents; declared
// secondary-index fields are mirrored into real columns so lookups and
// uniqueness constraints run in the engine rather than in application code.
package recordstore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	sqlite "modernc.org/sqlite"

	custom_error "agos/pkg/errors"
)

const dialect = "sqlite3"

// SQLite result codes for key conflicts.
const (
	codeConstraintPrimaryKey = 1555
	codeConstraintUnique     = 2067
)

type queryable interface {
	Insert(table interface{}) *goqu.InsertDataset
	Update(table interface{}) *goqu.UpdateDataset
	Delete(table interface{}) *goqu.DeleteDataset
	From(table ...interface{}) *goqu.SelectDataset
}

type conn struct {
	q      queryable
	schema map[string]Collection
}

// Store owns the database handle. It is constructed once and injected into
// every entity service; a zero-value or closed store fails every call with
// NotInitializedError instead of touching a nil handle.
type Store struct {
	conn
	db *sql.DB
}

// Tx is a multi-collection unit of work. Fact and audit writes issued through
// the same Tx commit or roll back together.
type Tx struct {
	conn
}

func New(db *sql.DB) *Store {
	return &Store{
		conn: conn{q: goqu.New(dialect, db)},
		db:   db,
	}
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.q = nil
	return err
}

// WithTx runs fn inside one transaction, committing on success and rolling
// back on error or panic.
func (s *Store) WithTx(fn func(tx *Tx) error) (err error) {
	if s == nil || s.db == nil || s.schema == nil {
		return &custom_error.NotInitializedError{}
	}

	rawTx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	tx := &Tx{conn: conn{q: goqu.NewTx(dialect, rawTx), schema: s.schema}}
	defer func() {
		if p := recover(); p != nil {
			rawTx.Rollback()
			panic(p)
		} else if err != nil {
			rawTx.Rollback()
		} else {
			err = rawTx.Commit()
		}
	}()

	err = fn(tx)
	return
}

// Add inserts a record and returns its new key. The key injection into the
// stored document is a second statement, so the whole add runs in its own
// transaction.
func (s *Store) Add(collection string, record any) (int64, error) {
	var id int64
	err := s.WithTx(func(tx *Tx) error {
		var err error
		id, err = tx.Add(collection, record)
		return err
	})
	return id, err
}

// Add inserts a record within the transaction and returns its new key.
func (c *conn) Add(collection string, record any) (int64, error) {
	decl, doc, err := c.docFor(collection, record)
	if err != nil {
		return 0, err
	}

	// The key is assigned by the store, never taken from the caller.
	delete(doc, decl.Key)
	payload, err := json.Marshal(doc)
	if err != nil {
		return 0, fmt.Errorf("encode record for %q: %w", collection, err)
	}

	rec := goqu.Record{"doc": string(payload)}
	for _, f := range decl.indexedFields() {
		rec[f] = normalize(doc[f])
	}

	res, err := c.q.Insert(collection).Rows(rec).Executor().Exec()
	if err != nil {
		return 0, wrapDBError(collection, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read new key for %q: %w", collection, err)
	}

	// Inject the assigned key into the stored document, mirroring keyPath
	// auto-increment semantics.
	_, err = c.q.Update(collection).
		Set(goqu.Record{"doc": goqu.L("json_set(doc, ?, ?)", "$."+decl.Key, id)}).
		Where(goqu.Ex{"id": id}).
		Executor().Exec()
	if err != nil {
		return 0, fmt.Errorf("store key for %q: %w", collection, err)
	}

	return id, nil
}

// Put upserts a record by its primary key. The record must carry its key.
func (c *conn) Put(collection string, record any) error {
	decl, doc, err := c.docFor(collection, record)
	if err != nil {
		return err
	}

	key := asKey(doc[decl.Key])
	if key <= 0 {
		return fmt.Errorf("record for %q is missing its %s", collection, decl.Key)
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode record for %q: %w", collection, err)
	}

	rec := goqu.Record{"doc": string(payload)}
	for _, f := range decl.indexedFields() {
		rec[f] = normalize(doc[f])
	}

	res, err := c.q.Update(collection).Set(rec).Where(goqu.Ex{"id": key}).Executor().Exec()
	if err != nil {
		return wrapDBError(collection, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("check upsert for %q: %w", collection, err)
	}
	if affected == 0 {
		rec["id"] = key
		if _, err := c.q.Insert(collection).Rows(rec).Executor().Exec(); err != nil {
			return wrapDBError(collection, err)
		}
	}

	return nil
}

// Delete removes a record by key. It reports whether a record existed.
func (c *conn) Delete(collection string, key int64) (bool, error) {
	if _, err := c.decl(collection); err != nil {
		return false, err
	}

	res, err := c.q.Delete(collection).Where(goqu.Ex{"id": key}).Executor().Exec()
	if err != nil {
		return false, fmt.Errorf("delete from %q: %w", collection, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("check delete for %q: %w", collection, err)
	}
	return affected > 0, nil
}

// Source is the read side shared by Store and Tx.
type Source interface {
	docs(collection string, where ...goqu.Expression) ([]string, error)
	decl(collection string) (Collection, error)
}

// All returns every record in the collection, ordered by key.
func All[T any](src Source, collection string) ([]T, error) {
	raw, err := src.docs(collection)
	if err != nil {
		return nil, err
	}
	return decodeAll[T](collection, raw)
}

// ByKey returns the record with the given key, or nil when absent.
func ByKey[T any](src Source, collection string, key int64) (*T, error) {
	raw, err := src.docs(collection, goqu.Ex{"id": key})
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var out T
	if err := json.Unmarshal([]byte(raw[0]), &out); err != nil {
		return nil, fmt.Errorf("decode record from %q: %w", collection, err)
	}
	return &out, nil
}

// ByIndex scans a declared secondary index. Composite indexes take one value
// per field, in declaration order.
func ByIndex[T any](src Source, collection, indexName string, values ...any) ([]T, error) {
	decl, err := src.decl(collection)
	if err != nil {
		return nil, err
	}
	idx, ok := decl.index(indexName)
	if !ok {
		return nil, fmt.Errorf("collection %q has no index %q", collection, indexName)
	}
	if len(values) != len(idx.Fields) {
		return nil, fmt.Errorf("index %q wants %d values, got %d", indexName, len(idx.Fields), len(values))
	}

	ex := goqu.Ex{}
	for i, f := range idx.Fields {
		ex[f] = values[i]
	}
	raw, err := src.docs(collection, ex)
	if err != nil {
		return nil, err
	}
	return decodeAll[T](collection, raw)
}

func decodeAll[T any](collection string, raw []string) ([]T, error) {
	out := make([]T, 0, len(raw))
	for _, doc := range raw {
		var rec T
		if err := json.Unmarshal([]byte(doc), &rec); err != nil {
			return nil, fmt.Errorf("decode record from %q: %w", collection, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (c *conn) docs(collection string, where ...goqu.Expression) ([]string, error) {
	if _, err := c.decl(collection); err != nil {
		return nil, err
	}

	ds := c.q.From(collection).Select("doc").Order(goqu.C("id").Asc())
	if len(where) > 0 {
		ds = ds.Where(where...)
	}

	var raw []string
	if err := ds.ScanVals(&raw); err != nil {
		return nil, fmt.Errorf("scan %q: %w", collection, err)
	}
	return raw, nil
}

func (c *conn) decl(collection string) (Collection, error) {
	if c.q == nil || c.schema == nil {
		return Collection{}, &custom_error.NotInitializedError{}
	}
	decl, ok := c.schema[collection]
	if !ok {
		return Collection{}, fmt.Errorf("unknown collection %q", collection)
	}
	return decl, nil
}

func (c *conn) docFor(collection string, record any) (Collection, map[string]any, error) {
	decl, err := c.decl(collection)
	if err != nil {
		return Collection{}, nil, err
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return Collection{}, nil, fmt.Errorf("encode record for %q: %w", collection, err)
	}
	doc := map[string]any{}
	if err := json.Unmarshal(payload, &doc); err != nil {
		return Collection{}, nil, fmt.Errorf("record for %q is not an object: %w", collection, err)
	}
	return decl, doc, nil
}

func wrapDBError(collection string, err error) error {
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case codeConstraintPrimaryKey, codeConstraintUnique:
			return custom_error.NewDuplicateKey(collection, se.Code())
		}
	}
	return fmt.Errorf("write to %q: %w", collection, err)
}

// normalize keeps whole JSON numbers as integers in index columns so lookups
// by int compare cleanly.
func normalize(v any) any {
	if f, ok := v.(float64); ok && f == math.Trunc(f) {
		return int64(f)
	}
	return v
}

func asKey(v any) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	}
	return 0
}
