package models

// ReceivingVoucher records one delivery batch; instances reference it for
// provenance.
type ReceivingVoucher struct {
	VoucherID            int     `json:"voucherID,omitempty"`
	Supplier             *string `json:"supplier"`
	ReferenceNumber      *string `json:"referenceNumber"`
	DateReceived         string  `json:"dateReceived" binding:"required"`
	ReceivedByEmployeeID *int    `json:"receivedByEmployeeId"`
	Notes                *string `json:"notes"`
}

type DetailedReceivingVoucher struct {
	ReceivingVoucher
	ReceivedByEmployeeName string `json:"receivedByEmployeeName"`
}
