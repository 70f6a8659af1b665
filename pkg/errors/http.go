package custom_error

import (
	"errors"
	"net/http"
)

// HTTPStatus maps the error taxonomy to a response status. Anything outside
// the taxonomy is a plain internal error.
func HTTPStatus(err error) int {
	var (
		notFound  *NotFoundError
		duplicate *DuplicateKeyError
		negative  *NegativeStockError
		inUse     *InUseError
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &duplicate):
		return http.StatusConflict
	case errors.As(err, &inUse):
		return http.StatusConflict
	case errors.As(err, &negative):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
