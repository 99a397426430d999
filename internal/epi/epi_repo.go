package epi

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *EPI) error
	FindAll(ctx context.Context) ([]EPI, error)
	FindByCA(ctx context.Context, ca string) (*EPI, error)
	FindExpiringBetween(ctx context.Context, min, max time.Time) ([]EPI, error)
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

func (r *repository) Create(ctx context.Context, e *EPI) error {
	// Inside a ledger transaction the insert must ride the caller's tx so
	// a failed substitution leaves no orphan catalog entry.
	if r.tx != nil {
		now := time.Now()
		e.CreatedAt = now
		e.UpdatedAt = now
		_, err := r.tx.ExecContext(ctx, `
			INSERT INTO epis (id, epi, tipo, ca, validade, modouso, fabricante, data_entrada, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`, e.ID, e.Epi, e.Tipo, e.CA, e.Validade, e.ModoUso, e.Fabricante, e.DataEntrada, e.CreatedAt, e.UpdatedAt)
		return err
	}
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAll(ctx context.Context) ([]EPI, error) {
	var epis []EPI
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&epis).Error
	return epis, err
}

func (r *repository) FindByCA(ctx context.Context, ca string) (*EPI, error) {
	var e EPI
	// Exact string match only, no normalization of case or formatting.
	err := r.db.WithContext(ctx).First(&e, "ca = ?", ca).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindExpiringBetween(ctx context.Context, min, max time.Time) ([]EPI, error) {
	var epis []EPI
	err := r.db.WithContext(ctx).
		Where("validade >= ? AND validade <= ?", min, max).
		Order("validade ASC").
		Find(&epis).Error
	return epis, err
}
