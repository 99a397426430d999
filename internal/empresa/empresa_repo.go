package empresa

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, e *Empresa) error
	FindAll(ctx context.Context) ([]Empresa, error)
	FindByEmail(ctx context.Context, email string) (*Empresa, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Empresa, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Empresa) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Empresa, error) {
	var empresas []Empresa
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&empresas).Error
	return empresas, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Empresa, error) {
	var e Empresa
	err := r.db.WithContext(ctx).First(&e, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Empresa, error) {
	var e Empresa
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}
