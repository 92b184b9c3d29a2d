package appointment

import "github.com/BruksfildServices01/petshop-console/internal/models"

// ===============================
// List reconciliation
// ===============================
// Um único resultado de create/update/delete é mesclado na lista local,
// sem recarregar a coleção inteira. As funções nunca alteram a lista
// recebida.

// Replace troca, por identidade, a entrada com o mesmo id.
func Replace(list []models.Appointment, updated models.Appointment) []models.Appointment {
	out := make([]models.Appointment, len(list))
	for i, ap := range list {
		if ap.ID == updated.ID {
			out[i] = updated
			continue
		}
		out[i] = ap
	}
	return out
}

func Append(list []models.Appointment, created models.Appointment) []models.Appointment {
	out := make([]models.Appointment, 0, len(list)+1)
	out = append(out, list...)
	return append(out, created)
}

func Remove(list []models.Appointment, id int64) []models.Appointment {
	out := make([]models.Appointment, 0, len(list))
	for _, ap := range list {
		if ap.ID != id {
			out = append(out, ap)
		}
	}
	return out
}

func Find(list []models.Appointment, id int64) (models.Appointment, bool) {
	for _, ap := range list {
		if ap.ID == id {
			return ap, true
		}
	}
	return models.Appointment{}, false
}
