package empresa

import (
	"errors"
	"strings"

	empresaerrors "go-epi/internal/empresa/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return empresaerrors.ErrEmpresaNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "uq_empresa_email":
				return empresaerrors.ErrEmailAlreadyExists
			case "uq_empresa_cnpj":
				return empresaerrors.ErrCNPJAlreadyExists
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		if strings.Contains(errMsg, "uq_empresa_email") {
			return empresaerrors.ErrEmailAlreadyExists
		}
		if strings.Contains(errMsg, "uq_empresa_cnpj") {
			return empresaerrors.ErrCNPJAlreadyExists
		}
	}

	return err
}
