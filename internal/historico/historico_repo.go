package historico

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, reg *Registro) error
	FindActiveByCPF(ctx context.Context, cpf string) ([]Registro, error)
	FindByCPF(ctx context.Context, cpf string) ([]Registro, error)
	CloseActiveByTipo(ctx context.Context, cpf, tipo string, at time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, reg *Registro) error {
	if r.tx != nil {
		now := time.Now()
		reg.CreatedAt = now
		reg.UpdatedAt = now
		_, err := r.tx.ExecContext(ctx, `
			INSERT INTO historico_epis (id, numero, funcionario_cpf, epi_id, data_entrega, data_devolucao, motivo, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, reg.ID, reg.Numero, reg.FuncionarioCPF, reg.EPIID, reg.DataEntrega, reg.DataDevolucao, reg.Motivo, reg.CreatedAt, reg.UpdatedAt)
		return err
	}
	return r.db.WithContext(ctx).Omit("EPI").Create(reg).Error
}

func (r *repository) FindActiveByCPF(ctx context.Context, cpf string) ([]Registro, error) {
	var regs []Registro
	err := r.db.WithContext(ctx).
		Preload("EPI").
		Where("funcionario_cpf = ? AND data_devolucao IS NULL", cpf).
		Order("created_at ASC").
		Find(&regs).Error
	return regs, err
}

func (r *repository) FindByCPF(ctx context.Context, cpf string) ([]Registro, error) {
	var regs []Registro
	err := r.db.WithContext(ctx).
		Preload("EPI").
		Where("funcionario_cpf = ?", cpf).
		Order("created_at ASC").
		Find(&regs).Error
	return regs, err
}

// CloseActiveByTipo stamps the return date on every open record of the
// employee whose equipment has the given tipo. Substitution calls it in
// the same transaction that registers the replacement.
func (r *repository) CloseActiveByTipo(ctx context.Context, cpf, tipo string, at time.Time) (int64, error) {
	query := `
UPDATE historico_epis
SET data_devolucao = $3, updated_at = now()
WHERE funcionario_cpf = $1
  AND data_devolucao IS NULL
  AND epi_id IN (SELECT id FROM epis WHERE tipo = $2)
`
	if r.tx != nil {
		res, err := r.tx.ExecContext(ctx, query, cpf, tipo, at)
		if err != nil {
			return 0, err
		}
		return res.RowsAffected()
	}

	res := r.db.WithContext(ctx).Exec(query, cpf, tipo, at)
	return res.RowsAffected, res.Error
}
