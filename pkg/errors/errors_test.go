package custom_error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NewNotFound("office", 7), http.StatusNotFound},
		{"duplicate key", NewDuplicateKey("assetInstances", 2067), http.StatusConflict},
		{"in use", &InUseError{Resource: "catalog item", Key: 3, UsedBy: "stock records"}, http.StatusConflict},
		{"negative stock", &NegativeStockError{StockID: 1, Requested: 5, OnHand: 3}, http.StatusUnprocessableEntity},
		{"wrapped not found", fmt.Errorf("lookup: %w", NewNotFound("stock", 9)), http.StatusNotFound},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestWrappersUnwrap(t *testing.T) {
	cause := errors.New("disk full")

	assert.ErrorIs(t, WrapAuditWrite(cause), cause)
	assert.ErrorIs(t, WrapSchema(cause), cause)
}
