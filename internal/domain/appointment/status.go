package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "Agendado"
	StatusConfirmed Status = "Confirmado"
	StatusCancelled Status = "Cancelado"
	StatusCompleted Status = "Concluído"
	StatusNoShow    Status = "Não Compareceu"
)

// Statuses na ordem em que aparecem no seletor do formulário.
var Statuses = []Status{
	StatusScheduled,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
	StatusNoShow,
}

func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// InitialStatus é o status de um formulário novo.
func InitialStatus() Status {
	return StatusScheduled
}
