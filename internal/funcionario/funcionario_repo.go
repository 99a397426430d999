package funcionario

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, f *Funcionario) error
	FindAll(ctx context.Context) ([]Funcionario, error)
	FindByCPF(ctx context.Context, cpf string) ([]Funcionario, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, f *Funcionario) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Funcionario, error) {
	var funcionarios []Funcionario
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&funcionarios).Error
	return funcionarios, err
}

// FindByCPF returns a slice even though CPF is unique; the directory
// search endpoint always responds with a list.
func (r *repository) FindByCPF(ctx context.Context, cpf string) ([]Funcionario, error) {
	var funcionarios []Funcionario
	err := r.db.WithContext(ctx).
		Where("cpf = ?", cpf).
		Find(&funcionarios).Error
	return funcionarios, err
}
