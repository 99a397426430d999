package historico

import "go-epi/internal/epi"

// Wire field names follow the delivery API (cpfFuncionario/caEPI for
// assignment, Funcionario/novoEpiData/motivoSubstituicao for
// substitution).
type AssignRequest struct {
	CPFFuncionario string `json:"cpfFuncionario" binding:"required,max=11"`
	CAEPI          string `json:"caEPI" binding:"required,max=100"`
}

type SubstituteRequest struct {
	Funcionario        string               `json:"Funcionario" binding:"required,max=11"`
	NovoEpiData        epi.CreateEPIRequest `json:"novoEpiData" binding:"required"`
	MotivoSubstituicao string               `json:"motivoSubstituicao" binding:"required,max=100"`
}

type RegistroResponse struct {
	ID             string          `json:"id"`
	Numero         string          `json:"numero"`
	FuncionarioCPF string          `json:"funcionario_cpf"`
	Epi            epi.EPIResponse `json:"epi"`
	DataEntrega    string          `json:"data_entrega"`
	DataDevolucao  *string         `json:"data_devolucao"`
	Motivo         string          `json:"motivo"`
}

type SubstituteResponse struct {
	EpiCriado epi.EPIResponse  `json:"epiCriado"`
	Historico RegistroResponse `json:"historico"`
}
