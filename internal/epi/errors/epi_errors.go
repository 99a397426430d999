package epierrors

import (
	"net/http"

	"go-epi/internal/shared/apperror"
)

var (
	ErrEPINotFound = apperror.New(
		apperror.CodeNotFound,
		"EPI not found",
		http.StatusNotFound,
	)
	ErrCAAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"EPI with the same CA already exists",
		http.StatusConflict,
	)
	ErrMissingCA = apperror.New(
		apperror.CodeInvalidInput,
		"Query parameter 'ca' is required",
		http.StatusBadRequest,
	)
	ErrInvalidDays = apperror.New(
		apperror.CodeInvalidInput,
		"Parameter 'dias' must be a non-negative number",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"Parameters 'dataMin' and 'dataMax' must be valid dates in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrInvalidValidade = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid validade format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDataEntrada = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid data_entrada format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
