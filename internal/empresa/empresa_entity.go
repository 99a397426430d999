package empresa

import (
	"time"

	"github.com/google/uuid"
)

// Empresa is a registered company account. SenhaHash only ever holds the
// bcrypt hash; the plaintext is never stored or returned.
type Empresa struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nome      string    `gorm:"type:varchar(100);not null"`
	CNPJ      string    `gorm:"column:cnpj;type:varchar(14);not null;uniqueIndex:uq_empresa_cnpj"`
	Endereco  string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_empresa_email"`
	SenhaHash string    `gorm:"column:senha_hash;type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Empresa) TableName() string {
	return "empresas"
}
