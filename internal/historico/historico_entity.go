package historico

import (
	"time"

	"go-epi/internal/epi"

	"github.com/google/uuid"
)

// MotivoAtribuicaoInicial is the reason stamped on first-time deliveries.
const MotivoAtribuicaoInicial = "Atribuição inicial"

// Registro is one row of the delivery ledger. A nil DataDevolucao means
// the equipment is still with the employee; setting it closes the record
// and the transition is one-way. Rows are never deleted.
type Registro struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Numero         string     `gorm:"type:varchar(20);not null;uniqueIndex:uq_registro_numero"`
	FuncionarioCPF string     `gorm:"column:funcionario_cpf;type:varchar(11);not null;index"`
	EPIID          uuid.UUID  `gorm:"column:epi_id;type:uuid;not null;index"`
	EPI            *epi.EPI   `gorm:"foreignKey:EPIID"`
	DataEntrega    time.Time  `gorm:"not null"`
	DataDevolucao  *time.Time `gorm:"default:null"`
	Motivo         string     `gorm:"type:varchar(100);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Registro) TableName() string {
	return "historico_epis"
}
