package custom_error

import "fmt"

// NotFoundError is returned when a lookup by primary key finds nothing.
type NotFoundError struct {
	Resource string
	Key      int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Resource, e.Key)
}

func NewNotFound(resource string, key int64) *NotFoundError {
	return &NotFoundError{Resource: resource, Key: key}
}

// DuplicateKeyError is raised when an add or put violates the primary key or
// a unique secondary index.
type DuplicateKeyError struct {
	Collection string
	code       int // SQLite result code (1555 primary key, 2067 unique index)
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key in %q (code: %d)", e.Collection, e.code)
}

func NewDuplicateKey(collection string, code int) *DuplicateKeyError {
	return &DuplicateKeyError{Collection: collection, code: code}
}

// NegativeStockError rejects a stock adjustment that would drive the quantity
// on hand below zero. Nothing is written when this is returned.
type NegativeStockError struct {
	StockID   int
	Requested int
	OnHand    int
}

func (e *NegativeStockError) Error() string {
	return fmt.Sprintf("stock %d: cannot remove %d, only %d on hand", e.StockID, e.Requested, e.OnHand)
}

// SchemaError means the database could not be opened or upgraded. Fatal at
// startup, no degraded mode.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema: %v", e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

func WrapSchema(err error) *SchemaError {
	return &SchemaError{Err: err}
}

// AuditWriteFailedError wraps a failure to append a history/transaction
// record. The enclosing unit of work rolls the fact write back with it, so
// the caller can retry the whole operation without losing the trail.
type AuditWriteFailedError struct {
	Err error
}

func (e *AuditWriteFailedError) Error() string {
	return fmt.Sprintf("audit write failed: %v", e.Err)
}

func (e *AuditWriteFailedError) Unwrap() error { return e.Err }

func WrapAuditWrite(err error) *AuditWriteFailedError {
	return &AuditWriteFailedError{Err: err}
}

// NotInitializedError means a record store was used before Open (or after
// Close).
type NotInitializedError struct{}

func (e *NotInitializedError) Error() string {
	return "record store used before initialization"
}

// InUseError rejects deleting a record that other records still reference,
// e.g. a catalog item with live instances or stock.
type InUseError struct {
	Resource string
	Key      int64
	UsedBy   string
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("%s with id %d is still referenced by %s", e.Resource, e.Key, e.UsedBy)
}
