package models

// Status is the lifecycle state of an asset or asset instance. The store does
// not enforce a transition graph; Disposed is terminal by convention only.
type Status string

const (
	StatusInStorage   Status = "In Storage"
	StatusIssued      Status = "Issued"
	StatusTransferred Status = "Transferred"
	StatusReturned    Status = "Returned"
	StatusDisposed    Status = "Disposed"
)

// Action labels a history/transaction entry.
type Action string

const (
	ActionCreated     Action = "Created"
	ActionUpdated     Action = "Updated"
	ActionIssued      Action = "Issued"
	ActionReturned    Action = "Returned"
	ActionTransferred Action = "Transferred"
	ActionDisposed    Action = "Disposed"
	ActionDeleted     Action = "Deleted"
)

// StockAction labels a stock transaction. Issued, decrease corrections and
// write-offs remove quantity; the rest add it.
type StockAction string

const (
	StockActionAdded            StockAction = "Stock Added"
	StockActionIssued           StockAction = "Issued"
	StockActionCountCorrectionI StockAction = "Count Correction - Increase"
	StockActionCountCorrectionD StockAction = "Count Correction - Decrease"
	StockActionWrittenOff       StockAction = "Written Off"
	StockActionDeleted          StockAction = "Deleted"
)

func (a StockAction) Decreasing() bool {
	switch a {
	case StockActionIssued, StockActionCountCorrectionD, StockActionWrittenOff:
		return true
	}
	return false
}

func (a StockAction) Valid() bool {
	switch a {
	case StockActionAdded, StockActionIssued, StockActionCountCorrectionI,
		StockActionCountCorrectionD, StockActionWrittenOff, StockActionDeleted:
		return true
	}
	return false
}
