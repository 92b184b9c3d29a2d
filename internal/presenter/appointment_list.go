package presenter

import (
	"time"

	domain "github.com/BruksfildServices01/petshop-console/internal/domain/appointment"
	"github.com/BruksfildServices01/petshop-console/internal/format"
	"github.com/BruksfildServices01/petshop-console/internal/models"
)

// AppointmentRow é uma linha da tabela de agendamentos, já formatada.
type AppointmentRow struct {
	ID           int64    `json:"agendamento_id"`
	ScheduledAt  string   `json:"data_hora"`
	AnimalName   string   `json:"animal_nome"`
	ClientName   string   `json:"cliente_nome"`
	EmployeeName string   `json:"funcionario_nome"`
	Status       string   `json:"status"`
	StatusClass  string   `json:"status_class"`
	Services     []string `json:"servicos"`
	Total        string   `json:"valor_total"`
}

func Rows(list []models.Appointment, term string, loc *time.Location) []AppointmentRow {
	filtered := domain.Search(list, term, loc)

	out := make([]AppointmentRow, 0, len(filtered))
	for _, ap := range filtered {
		out = append(out, Row(ap, loc))
	}
	return out
}

func Row(ap models.Appointment, loc *time.Location) AppointmentRow {
	services := make([]string, 0, len(ap.Services))
	for _, s := range ap.Services {
		services = append(services, s.ServiceName)
	}

	employee := ap.EmployeeName
	if employee == "" {
		employee = format.Empty
	}

	return AppointmentRow{
		ID:           ap.ID,
		ScheduledAt:  format.DateTime(ap.ScheduledAt, loc),
		AnimalName:   ap.AnimalName,
		ClientName:   ap.ClientName,
		EmployeeName: employee,
		Status:       ap.Status,
		StatusClass:  format.StatusClass(ap.Status),
		Services:     services,
		Total:        format.OptionalPrice(ap.Total),
	}
}
