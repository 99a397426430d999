package epi

import (
	"time"

	"github.com/google/uuid"
)

// EPI is one catalog entry. Substitution never mutates an existing row;
// it always registers a new one.
type EPI struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Epi         string    `gorm:"type:varchar(100);not null"`
	Tipo        string    `gorm:"type:varchar(100);not null"`
	CA          string    `gorm:"column:ca;type:varchar(100);not null;uniqueIndex:uq_epi_ca"`
	Validade    time.Time `gorm:"not null"`
	ModoUso     string    `gorm:"column:modouso;type:text;not null"`
	Fabricante  string    `gorm:"type:varchar(100);not null"`
	DataEntrada time.Time `gorm:"column:data_entrada;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (EPI) TableName() string {
	return "epis"
}
