package recordstore

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	custom_error "agos/pkg/errors"
)

// Index declares a secondary index on a collection. Composite indexes list
// more than one field; lookups supply values in the same order.
type Index struct {
	Name   string
	Fields []string
	Unique bool
}

// Collection declares one object store: its name, its auto-incrementing key
// field, and its secondary indexes. Declarations are applied additively; a
// collection or index that already exists is left untouched.
type Collection struct {
	Name    string
	Key     string
	Indexes []Index
}

func (c Collection) index(name string) (Index, bool) {
	for _, idx := range c.Indexes {
		if idx.Name == name {
			return idx, true
		}
	}
	return Index{}, false
}

func (c Collection) indexedFields() []string {
	var fields []string
	seen := map[string]bool{}
	for _, idx := range c.Indexes {
		for _, f := range idx.Fields {
			if !seen[f] {
				seen[f] = true
				fields = append(fields, f)
			}
		}
	}
	return fields
}

// EnsureSchema brings the database to the declared schema. It is idempotent:
// re-running at the same version creates nothing, raises nothing, and
// preserves existing rows. A stored version newer than the requested one is a
// downgrade and fails. All DDL runs in one transaction; any failure is
// surfaced as a SchemaError and is fatal to the caller.
func (s *Store) EnsureSchema(version int, collections []Collection) error {
	if s == nil || s.db == nil {
		return &custom_error.NotInitializedError{}
	}

	s.schema = make(map[string]Collection, len(collections))
	for _, c := range collections {
		s.schema[c.Name] = c
	}

	tx, err := s.db.Begin()
	if err != nil {
		return custom_error.WrapSchema(fmt.Errorf("begin upgrade: %w", err))
	}
	defer tx.Rollback()

	stored, err := ensureVersionTable(tx)
	if err != nil {
		return custom_error.WrapSchema(err)
	}
	if stored > version {
		return custom_error.WrapSchema(fmt.Errorf("database is at version %d, newer than requested %d", stored, version))
	}

	for _, c := range collections {
		if err := ensureCollection(tx, c); err != nil {
			return custom_error.WrapSchema(fmt.Errorf("collection %q: %w", c.Name, err))
		}
	}

	if _, err := tx.Exec(`UPDATE schema_info SET version = ?`, version); err != nil {
		return custom_error.WrapSchema(fmt.Errorf("record version: %w", err))
	}
	if err := tx.Commit(); err != nil {
		return custom_error.WrapSchema(fmt.Errorf("commit upgrade: %w", err))
	}

	return nil
}

func ensureVersionTable(tx *sql.Tx) (int, error) {
	if _, err := tx.Exec(`CREATE TABLE IF NOT EXISTS schema_info (version INTEGER NOT NULL)`); err != nil {
		return 0, fmt.Errorf("create schema_info: %w", err)
	}

	var version int
	err := tx.QueryRow(`SELECT version FROM schema_info LIMIT 1`).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		if _, err := tx.Exec(`INSERT INTO schema_info (version) VALUES (0)`); err != nil {
			return 0, fmt.Errorf("seed schema_info: %w", err)
		}
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return version, nil
}

func ensureCollection(tx *sql.Tx, c Collection) error {
	cols := []string{`"id" INTEGER PRIMARY KEY AUTOINCREMENT`, `"doc" TEXT NOT NULL`}
	for _, f := range c.indexedFields() {
		cols = append(cols, fmt.Sprintf("%q", f))
	}
	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %q (%s)", c.Name, strings.Join(cols, ", "))
	if _, err := tx.Exec(ddl); err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	// Additive evolution: an index declared on a pre-existing table may name
	// a field that has no column yet. Add it and backfill from the document.
	existing, err := tableColumns(tx, c.Name)
	if err != nil {
		return err
	}
	for _, f := range c.indexedFields() {
		if existing[f] {
			continue
		}
		if _, err := tx.Exec(fmt.Sprintf("ALTER TABLE %q ADD COLUMN %q", c.Name, f)); err != nil {
			return fmt.Errorf("add column %q: %w", f, err)
		}
		backfill := fmt.Sprintf("UPDATE %q SET %q = json_extract(doc, ?)", c.Name, f)
		if _, err := tx.Exec(backfill, "$."+f); err != nil {
			return fmt.Errorf("backfill column %q: %w", f, err)
		}
	}

	for _, idx := range c.Indexes {
		unique := ""
		if idx.Unique {
			unique = "UNIQUE "
		}
		quoted := make([]string, len(idx.Fields))
		for i, f := range idx.Fields {
			quoted[i] = fmt.Sprintf("%q", f)
		}
		ddl := fmt.Sprintf("CREATE %sINDEX IF NOT EXISTS %q ON %q (%s)",
			unique, idx.Name, c.Name, strings.Join(quoted, ", "))
		if _, err := tx.Exec(ddl); err != nil {
			return fmt.Errorf("create index %q: %w", idx.Name, err)
		}
	}

	return nil
}

func tableColumns(tx *sql.Tx, table string) (map[string]bool, error) {
	rows, err := tx.Query(fmt.Sprintf("PRAGMA table_info(%q)", table))
	if err != nil {
		return nil, fmt.Errorf("read table info: %w", err)
	}
	defer rows.Close()

	cols := map[string]bool{}
	for rows.Next() {
		var (
			cid, notnull, pk int
			name, ctype      string
			dflt             sql.NullString
		)
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("scan table info: %w", err)
		}
		cols[name] = true
	}
	return cols, rows.Err()
}
