package epi

// CreateEPIRequest uses the wire field names of the catalog API
// (regulator vocabulary: CA = approval certificate number).
type CreateEPIRequest struct {
	Epi         string `json:"epi" binding:"required,max=100"`
	Tipo        string `json:"tipo" binding:"required,max=100"`
	CA          string `json:"CA" binding:"required,max=100"`
	Validade    string `json:"validade" binding:"required"`
	ModoUso     string `json:"modouso" binding:"required"`
	Fabricante  string `json:"fabricante" binding:"required,max=100"`
	DataEntrada string `json:"data_entrada" binding:"required"`
}

type EPIResponse struct {
	ID          string `json:"id"`
	Epi         string `json:"epi"`
	Tipo        string `json:"tipo"`
	CA          string `json:"CA"`
	Validade    string `json:"validade"`
	ModoUso     string `json:"modouso"`
	Fabricante  string `json:"fabricante"`
	DataEntrada string `json:"data_entrada"`
}
