package funcionario

type CreateFuncionarioRequest struct {
	Nome  string `json:"nome" binding:"required,max=100"`
	CPF   string `json:"cpf" binding:"required,max=11"`
	Cargo string `json:"cargo" binding:"required,max=100"`
	Setor string `json:"setor" binding:"required,max=100"`
}

type FuncionarioResponse struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	CPF   string `json:"cpf"`
	Cargo string `json:"cargo"`
	Setor string `json:"setor"`
}
