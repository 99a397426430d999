package empresaerrors

import (
	"net/http"

	"go-epi/internal/shared/apperror"
)

var (
	ErrEmpresaNotFound = apperror.New(
		apperror.CodeNotFound,
		"Empresa not found",
		http.StatusNotFound,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Empresa with the same email already exists",
		http.StatusConflict,
	)
	ErrCNPJAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Empresa with the same CNPJ already exists",
		http.StatusConflict,
	)
	ErrInvalidCNPJ = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid CNPJ",
		http.StatusBadRequest,
	)
	ErrSenhaTooShort = apperror.New(
		apperror.CodeInvalidInput,
		"Senha must be longer than 6 characters",
		http.StatusBadRequest,
	)
	// Deliberately generic so a failed login never reveals whether the
	// email exists.
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid email or senha",
		http.StatusUnauthorized,
	)
	ErrInvalidEmpresaID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid empresa ID",
		http.StatusBadRequest,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Token expired",
		http.StatusUnauthorized,
	)
	ErrInvalidRefreshToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid refresh token",
		http.StatusUnauthorized,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate token",
		http.StatusInternalServerError,
	)
)
