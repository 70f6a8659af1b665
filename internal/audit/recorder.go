package audit

import (
	"go.uber.org/zap"

	"agos/internal/database"
	"agos/internal/recordstore"
	custom_error "agos/pkg/errors"
	"agos/pkg/models"
)

// Recorder appends history records inside the caller's transaction. A failed
// append comes back as AuditWriteFailedError; since fact and audit share the
// transaction, the fact write rolls back with it and the caller can retry the
// whole operation.
type Recorder struct {
	log *zap.Logger
}

func NewRecorder(log *zap.Logger) *Recorder {
	return &Recorder{log: log}
}

func (r *Recorder) InstanceEvent(tx *recordstore.Tx, entry models.AssetTransaction) error {
	if entry.Timestamp == "" {
		entry.Timestamp = Timestamp()
	}
	id, err := tx.Add(database.CollectionAssetTransactions, entry)
	if err != nil {
		return custom_error.WrapAuditWrite(err)
	}
	r.log.Debug("recorded instance transaction",
		zap.Int64("transactionID", id),
		zap.Int("instanceID", entry.InstanceID),
		zap.String("action", string(entry.Action)))
	return nil
}

func (r *Recorder) AssetEvent(tx *recordstore.Tx, entry models.HistoryEntry) error {
	if entry.Timestamp == "" {
		entry.Timestamp = Timestamp()
	}
	id, err := tx.Add(database.CollectionAssetHistory, entry)
	if err != nil {
		return custom_error.WrapAuditWrite(err)
	}
	r.log.Debug("recorded asset history entry",
		zap.Int64("historyID", id),
		zap.Int("assetID", entry.AssetID),
		zap.String("action", string(entry.Action)))
	return nil
}

func (r *Recorder) StockEvent(tx *recordstore.Tx, entry models.StockTransaction) error {
	if entry.Timestamp == "" {
		entry.Timestamp = Timestamp()
	}
	id, err := tx.Add(database.CollectionStockTransactions, entry)
	if err != nil {
		return custom_error.WrapAuditWrite(err)
	}
	r.log.Debug("recorded stock transaction",
		zap.Int64("transactionID", id),
		zap.Int("stockID", entry.StockID),
		zap.String("action", string(entry.Action)))
	return nil
}
