package models

// AppointmentService é o snapshot de um serviço no momento do agendamento.
// O preço registrado não acompanha alterações posteriores no catálogo.
type AppointmentService struct {
	ServiceID       int64  `json:"servico_id"`
	ServiceName     string `json:"nome_servico"`
	RegisteredPrice Money  `json:"preco_registrado"`
	Notes           string `json:"observacoes,omitempty"`
}

type Appointment struct {
	ID int64 `json:"agendamento_id"`

	AnimalID   int64  `json:"animal_id"`
	AnimalName string `json:"animal_nome,omitempty"`
	ClientName string `json:"cliente_nome,omitempty"`

	EmployeeID   *int64 `json:"funcionario_id,omitempty"`
	EmployeeName string `json:"funcionario_nome,omitempty"`

	ScheduledAt string `json:"data_hora_agendamento"`
	CreatedAt   string `json:"data_hora_criacao,omitempty"`

	Status string `json:"status"`
	Notes  string `json:"observacoes,omitempty"`

	Total    *Money               `json:"valor_total,omitempty"`
	Services []AppointmentService `json:"servicos"`
}

// AppointmentInput carrega apenas os campos editáveis, tanto no
// POST quanto no PUT. funcionario_id vai sempre no corpo: null no PUT
// remove o funcionário, já que o backend ignora chaves ausentes.
type AppointmentInput struct {
	AnimalID    int64   `json:"animal_id"`
	EmployeeID  *int64  `json:"funcionario_id"`
	ScheduledAt string  `json:"data_hora_agendamento"`
	Status      string  `json:"status"`
	Notes       string  `json:"observacoes"`
	ServiceIDs  []int64 `json:"servicos_ids"`
}

// Clone devolve uma cópia sem aliasing de ponteiros ou slices.
func (a Appointment) Clone() Appointment {
	out := a
	if a.EmployeeID != nil {
		id := *a.EmployeeID
		out.EmployeeID = &id
	}
	if a.Total != nil {
		t := *a.Total
		out.Total = &t
	}
	if a.Services != nil {
		out.Services = append([]AppointmentService(nil), a.Services...)
	}
	return out
}
