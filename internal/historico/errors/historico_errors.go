package historicoerrors

import (
	"net/http"

	"go-epi/internal/shared/apperror"
)

var (
	ErrRegistroNotFound = apperror.New(
		apperror.CodeNotFound,
		"History record not found",
		http.StatusNotFound,
	)
	ErrNumeroAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Delivery receipt number already exists",
		http.StatusConflict,
	)
)
