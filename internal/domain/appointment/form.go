package appointment

import (
	"time"

	"github.com/BruksfildServices01/petshop-console/internal/models"
	"github.com/BruksfildServices01/petshop-console/internal/timezone"
)

// Form é o estado plano do formulário de agendamento.
// ScheduledAt guarda o valor do campo datetime-local ("2006-01-02T15:04").
type Form struct {
	AnimalID    int64
	EmployeeID  *int64
	ScheduledAt string
	Status      Status
	Notes       string
	Services    Selection
}

// DefaultForm é o estado de "Novo Agendamento".
func DefaultForm() Form {
	return Form{Status: InitialStatus()}
}

// FromAppointment monta o formulário de edição a partir do registro completo.
// Cada linha é resolvida no catálogo atual; se o serviço foi removido do
// catálogo, usa o nome e o preço registrados, com duração zero.
func FromAppointment(ap models.Appointment, catalog []models.Service) Form {
	f := Form{
		AnimalID:    ap.AnimalID,
		ScheduledAt: timezone.TruncateToMinute(ap.ScheduledAt),
		Status:      Status(ap.Status),
		Notes:       ap.Notes,
	}
	if ap.EmployeeID != nil {
		id := *ap.EmployeeID
		f.EmployeeID = &id
	}

	byID := make(map[int64]models.Service, len(catalog))
	for _, svc := range catalog {
		byID[svc.ID] = svc
	}

	for _, line := range ap.Services {
		svc, ok := byID[line.ServiceID]
		if !ok {
			svc = models.Service{
				ID:          line.ServiceID,
				Name:        line.ServiceName,
				Price:       line.RegisteredPrice,
				DurationMin: 0,
			}
		}
		f.Services.add(svc)
	}

	return f
}

// Input converte o formulário no payload da API, normalizando o horário
// para o offset fixo de loc.
func (f Form) Input(loc *time.Location) models.AppointmentInput {
	in := models.AppointmentInput{
		AnimalID:    f.AnimalID,
		ScheduledAt: timezone.Normalize(f.ScheduledAt, loc),
		Status:      string(f.Status),
		Notes:       f.Notes,
		ServiceIDs:  f.Services.IDs(),
	}
	if f.EmployeeID != nil {
		id := *f.EmployeeID
		in.EmployeeID = &id
	}
	return in
}

func (f Form) Clone() Form {
	out := f
	if f.EmployeeID != nil {
		id := *f.EmployeeID
		out.EmployeeID = &id
	}
	out.Services = f.Services.Clone()
	return out
}
