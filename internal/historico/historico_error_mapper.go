package historico

import (
	"errors"
	"strings"

	historicoerrors "go-epi/internal/historico/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return historicoerrors.ErrRegistroNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_registro_numero" {
			return historicoerrors.ErrNumeroAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_registro_numero") {
		return historicoerrors.ErrNumeroAlreadyExists
	}

	return err
}
