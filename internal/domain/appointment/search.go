package appointment

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/petshop-console/internal/format"
	"github.com/BruksfildServices01/petshop-console/internal/models"
)

// Search filtra a lista pelo termo digitado na busca da tela: nome do
// animal, do cliente ou do funcionário, status, ou parte da data formatada.
// Termo vazio devolve a lista inteira.
func Search(list []models.Appointment, term string, loc *time.Location) []models.Appointment {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return list
	}

	out := make([]models.Appointment, 0, len(list))
	for _, ap := range list {
		if matches(ap, term, loc) {
			out = append(out, ap)
		}
	}
	return out
}

func matches(ap models.Appointment, term string, loc *time.Location) bool {
	fields := []string{
		ap.AnimalName,
		ap.ClientName,
		ap.EmployeeName,
		ap.Status,
		format.DateTime(ap.ScheduledAt, loc),
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
