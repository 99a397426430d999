package epi

import (
	"errors"
	"strings"

	epierrors "go-epi/internal/epi/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// MapRepositoryError is exported because the ledger registers catalog
// entries during substitution and needs the same translation.
func MapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return epierrors.ErrEPINotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_epi_ca" {
			return epierrors.ErrCAAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_epi_ca") {
		return epierrors.ErrCAAlreadyExists
	}

	return err
}
