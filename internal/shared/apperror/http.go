package apperror

import (
	"errors"
	"net/http"
)

// HTTPError is the boundary view of an error: status plus the envelope
// fields the response package writes.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP resolves any error to its HTTP representation. AppErrors map to
// their own code/status; everything else is a 500 so repository and
// driver errors never leak their text to clients.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: ErrInternal.Message,
	}
}
