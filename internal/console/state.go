package console

import (
	domain "github.com/BruksfildServices01/petshop-console/internal/domain/appointment"
	"github.com/BruksfildServices01/petshop-console/internal/models"
)

// OpStatus é o indicador de uma operação específica da tela
// (carregamento, envio, exclusão...). Cada operação tem o seu.
type OpStatus struct {
	Busy bool
	Err  string
}

// State é tudo que a tela de agendamentos mantém em memória.
// Só é alterado dentro do laço do Screen.
type State struct {
	Appointments []models.Appointment
	Animals      []models.Animal
	Employees    []models.Employee
	Services     []models.Service
	Loaded       bool

	Load      OpStatus
	FormFetch OpStatus
	Submit    OpStatus
	Delete    OpStatus
	Export    OpStatus

	// Error é a mensagem exibida no banner: sempre a mais recente.
	Error string

	FormOpen bool
	Editing  *models.Appointment
	Form     domain.Form
}

func newState() State {
	return State{Form: domain.DefaultForm()}
}

func (s *State) Fail(op *OpStatus, msg string) {
	op.Err = msg
	s.Error = msg
}

func (s *State) Succeed(op *OpStatus) {
	op.Err = ""
	s.Error = ""
}

// ResetForm volta o formulário aos valores de criação e limpa a referência
// de edição.
func (s *State) ResetForm() {
	s.Form = domain.DefaultForm()
	s.Editing = nil
}

func (s *State) CloseForm() {
	s.FormOpen = false
	s.ResetForm()
}

// Clone faz cópia profunda para leitura fora do laço.
func (s State) Clone() State {
	out := s

	if s.Appointments != nil {
		out.Appointments = make([]models.Appointment, len(s.Appointments))
		for i, ap := range s.Appointments {
			out.Appointments[i] = ap.Clone()
		}
	}
	if s.Animals != nil {
		out.Animals = append([]models.Animal(nil), s.Animals...)
	}
	if s.Employees != nil {
		out.Employees = append([]models.Employee(nil), s.Employees...)
	}
	if s.Services != nil {
		out.Services = append([]models.Service(nil), s.Services...)
	}
	if s.Editing != nil {
		ed := s.Editing.Clone()
		out.Editing = &ed
	}
	out.Form = s.Form.Clone()

	return out
}
