package funcionario

import (
	"errors"
	"strings"

	funcionarioerrors "go-epi/internal/funcionario/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return funcionarioerrors.ErrFuncionarioNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_funcionario_cpf" {
			return funcionarioerrors.ErrCPFAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_funcionario_cpf") {
		return funcionarioerrors.ErrCPFAlreadyExists
	}

	return err
}
