package funcionarioerrors

import (
	"net/http"

	"go-epi/internal/shared/apperror"
)

var (
	ErrFuncionarioNotFound = apperror.New(
		apperror.CodeNotFound,
		"Funcionario not found",
		http.StatusNotFound,
	)
	ErrCPFAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Funcionario with the same CPF already exists",
		http.StatusConflict,
	)
	ErrMissingCPF = apperror.New(
		apperror.CodeInvalidInput,
		"Query parameter cpf is required",
		http.StatusBadRequest,
	)
)
