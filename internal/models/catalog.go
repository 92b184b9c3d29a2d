package models

type Customer struct {
	ID           int64  `json:"cliente_id"`
	Name         string `json:"nome"`
	Phone        string `json:"telefone"`
	Email        string `json:"email"`
	Address      string `json:"endereco,omitempty"`
	RegisteredAt string `json:"data_cadastro,omitempty"`
}

type CustomerInput struct {
	Name    string `json:"nome,omitempty"`
	Phone   string `json:"telefone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"endereco,omitempty"`
}

type Animal struct {
	ID         int64  `json:"animal_id"`
	CustomerID int64  `json:"cliente_id"`
	Name       string `json:"nome"`
	Species    string `json:"especie"`
	Breed      string `json:"raca,omitempty"`
	BirthDate  string `json:"data_nascimento,omitempty"`
	Notes      string `json:"observacoes,omitempty"`
}

type AnimalInput struct {
	CustomerID int64  `json:"cliente_id,omitempty"`
	Name       string `json:"nome,omitempty"`
	Species    string `json:"especie,omitempty"`
	Breed      string `json:"raca,omitempty"`
	BirthDate  string `json:"data_nascimento,omitempty"`
	Notes      string `json:"observacoes,omitempty"`
}

type Employee struct {
	ID       int64  `json:"funcionario_id"`
	Name     string `json:"nome"`
	Role     string `json:"cargo"`
	Phone    string `json:"telefone,omitempty"`
	Email    string `json:"email,omitempty"`
	HiredAt  string `json:"data_contratacao"`
	IsActive bool   `json:"ativo"`
}

type EmployeeInput struct {
	Name     string `json:"nome,omitempty"`
	Role     string `json:"cargo,omitempty"`
	Phone    string `json:"telefone,omitempty"`
	Email    string `json:"email,omitempty"`
	HiredAt  string `json:"data_contratacao,omitempty"`
	IsActive *bool  `json:"ativo,omitempty"`
}

// Service é um item do catálogo de serviços do pet shop.
type Service struct {
	ID          int64  `json:"servico_id"`
	Name        string `json:"nome"`
	Description string `json:"descricao,omitempty"`
	Price       Money  `json:"preco"`
	DurationMin int    `json:"duracao_estimada_minutos"`
}

type ServiceInput struct {
	Name        string `json:"nome,omitempty"`
	Description string `json:"descricao,omitempty"`
	Price       *Money `json:"preco,omitempty"`
	DurationMin int    `json:"duracao_estimada_minutos,omitempty"`
}
