package empresa

type RegisterEmpresaRequest struct {
	Empresa  string `json:"empresa" binding:"required,max=100"`
	CNPJ     string `json:"cnpj" binding:"required"`
	Endereco string `json:"endereco" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Senha    string `json:"senha" binding:"required,min=7"`
}

type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type EmpresaResponse struct {
	ID       string `json:"id"`
	Empresa  string `json:"empresa"`
	CNPJ     string `json:"cnpj"`
	Endereco string `json:"endereco"`
	Email    string `json:"email"`
}
