package events

import "time"

const EntregaLifecycleTopic = "epi.entrega.lifecycle.v1"

const (
	EntregaRegistrada  = "entrega_registrada"
	EntregaSubstituida = "entrega_substituida"
)

// EntregaLifecycleEvent is emitted whenever the ledger hands equipment
// to an employee, either on first assignment or on substitution.
type EntregaLifecycleEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	RegistroID     string    `json:"registro_id"`
	Numero         string    `json:"numero"`
	FuncionarioCPF string    `json:"funcionario_cpf"`
	CA             string    `json:"ca"`
	Tipo           string    `json:"tipo"`
	Validade       string    `json:"validade"`
	Motivo         string    `json:"motivo"`
	OccurredAt     time.Time `json:"occurred_at"`
}
