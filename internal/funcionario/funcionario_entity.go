package funcionario

import (
	"time"

	"github.com/google/uuid"
)

type Funcionario struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nome      string    `gorm:"type:varchar(100);not null"`
	CPF       string    `gorm:"column:cpf;type:varchar(11);not null;uniqueIndex:uq_funcionario_cpf"`
	Cargo     string    `gorm:"type:varchar(100);not null"`
	Setor     string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Funcionario) TableName() string {
	return "funcionarios"
}
