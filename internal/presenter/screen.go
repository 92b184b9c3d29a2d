package presenter

import (
	"time"

	"github.com/BruksfildServices01/petshop-console/internal/console"
	domain "github.com/BruksfildServices01/petshop-console/internal/domain/appointment"
	"github.com/BruksfildServices01/petshop-console/internal/format"
	"github.com/BruksfildServices01/petshop-console/internal/models"
)

type OpView struct {
	Busy  bool   `json:"busy"`
	Error string `json:"error,omitempty"`
}

type SelectedService struct {
	ID       int64  `json:"servico_id"`
	Name     string `json:"nome"`
	Price    string `json:"preco"`
	Duration string `json:"duracao"`
}

type FormView struct {
	Open          bool              `json:"open"`
	Editing       bool              `json:"editing"`
	AppointmentID *int64            `json:"agendamento_id,omitempty"`
	AnimalID      int64             `json:"animal_id"`
	EmployeeID    *int64            `json:"funcionario_id"`
	ScheduledAt   string            `json:"data_hora_agendamento"`
	Status        string            `json:"status"`
	Notes         string            `json:"observacoes"`
	Services      []SelectedService `json:"servicos"`
	ServiceIDs    []int64           `json:"servicos_ids"`
	Total         string            `json:"valor_total"`
	TotalDuration string            `json:"duracao_total"`
}

type ScreenView struct {
	SessionID    string            `json:"session_id"`
	Loaded       bool              `json:"loaded"`
	Error        string            `json:"error,omitempty"`
	Ops          map[string]OpView `json:"ops"`
	Appointments []AppointmentRow  `json:"agendamentos"`
	Count        int               `json:"total"`
	Form         FormView          `json:"form"`
}

func Screen(sessionID string, st console.State, term string, loc *time.Location) ScreenView {
	rows := Rows(st.Appointments, term, loc)
	return ScreenView{
		SessionID: sessionID,
		Loaded:    st.Loaded,
		Error:     st.Error,
		Ops: map[string]OpView{
			"load":       op(st.Load),
			"form_fetch": op(st.FormFetch),
			"submit":     op(st.Submit),
			"delete":     op(st.Delete),
			"export":     op(st.Export),
		},
		Appointments: rows,
		Count:        len(rows),
		Form:         Form(st),
	}
}

func op(s console.OpStatus) OpView {
	return OpView{Busy: s.Busy, Error: s.Err}
}

func Form(st console.State) FormView {
	f := st.Form
	items := f.Services.Items()

	services := make([]SelectedService, 0, len(items))
	for _, svc := range items {
		services = append(services, selected(svc))
	}

	v := FormView{
		Open:          st.FormOpen,
		Editing:       st.Editing != nil,
		AnimalID:      f.AnimalID,
		EmployeeID:    f.EmployeeID,
		ScheduledAt:   f.ScheduledAt,
		Status:        string(f.Status),
		Notes:         f.Notes,
		Services:      services,
		ServiceIDs:    f.Services.IDs(),
		Total:         format.Price(f.Services.Total()),
		TotalDuration: format.Duration(f.Services.TotalDuration()),
	}
	if v.ServiceIDs == nil {
		v.ServiceIDs = []int64{}
	}
	if st.Editing != nil {
		id := st.Editing.ID
		v.AppointmentID = &id
	}
	return v
}

func selected(svc models.Service) SelectedService {
	return SelectedService{
		ID:       svc.ID,
		Name:     svc.Name,
		Price:    format.Price(svc.Price),
		Duration: format.Minutes(svc.DurationMin),
	}
}

// ===============================
// Catalog (pickers)
// ===============================

type AnimalOption struct {
	ID         int64  `json:"animal_id"`
	CustomerID int64  `json:"cliente_id"`
	Name       string `json:"nome"`
	Species    string `json:"especie"`
}

type EmployeeOption struct {
	ID     int64  `json:"funcionario_id"`
	Name   string `json:"nome"`
	Role   string `json:"cargo"`
	Active bool   `json:"ativo"`
}

type ServiceOption struct {
	ID       int64  `json:"servico_id"`
	Name     string `json:"nome"`
	Price    string `json:"preco"`
	Duration string `json:"duracao"`
}

type CatalogView struct {
	Animals   []AnimalOption   `json:"animais"`
	Employees []EmployeeOption `json:"funcionarios"`
	Services  []ServiceOption  `json:"servicos"`
	Statuses  []string         `json:"status"`
}

func Catalog(st console.State) CatalogView {
	v := CatalogView{
		Animals:   make([]AnimalOption, 0, len(st.Animals)),
		Employees: make([]EmployeeOption, 0, len(st.Employees)),
		Services:  make([]ServiceOption, 0, len(st.Services)),
		Statuses:  make([]string, 0, len(domain.Statuses)),
	}
	for _, a := range st.Animals {
		v.Animals = append(v.Animals, AnimalOption{ID: a.ID, CustomerID: a.CustomerID, Name: a.Name, Species: a.Species})
	}
	for _, e := range st.Employees {
		v.Employees = append(v.Employees, EmployeeOption{ID: e.ID, Name: e.Name, Role: e.Role, Active: e.IsActive})
	}
	for _, s := range st.Services {
		sel := selected(s)
		v.Services = append(v.Services, ServiceOption(sel))
	}
	for _, s := range domain.Statuses {
		v.Statuses = append(v.Statuses, string(s))
	}
	return v
}
