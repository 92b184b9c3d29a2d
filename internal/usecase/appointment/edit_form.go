package appointment

import (
	"github.com/BruksfildServices01/petshop-console/internal/console"
	domain "github.com/BruksfildServices01/petshop-console/internal/domain/appointment"
	"github.com/BruksfildServices01/petshop-console/internal/httperr"
)

const (
	CodeFormNotOpen   = "form_not_open"
	CodeInvalidStatus = "invalid_status"
)

var (
	ErrFormNotOpen = httperr.ErrBusinessMsg(
		CodeFormNotOpen,
		"Abra o formulário de agendamento antes de editá-lo.",
	)
	ErrInvalidStatus = httperr.ErrBusinessMsg(
		CodeInvalidStatus,
		"Status de agendamento inválido.",
	)
)

// FieldsPatch traz apenas os campos que o usuário alterou.
type FieldsPatch struct {
	AnimalID      *int64
	EmployeeID    *int64
	ClearEmployee bool
	ScheduledAt   *string
	Status        *string
	Notes         *string
}

type EditForm struct{}

func NewEditForm() *EditForm {
	return &EditForm{}
}

// AddService é idempotente: um id já selecionado ou ausente do catálogo
// não altera o conjunto.
func (uc *EditForm) AddService(screen *console.Screen, serviceID int64) error {
	var err error
	doErr := screen.Do(func(st *console.State) {
		if !st.FormOpen {
			err = ErrFormNotOpen
			return
		}
		st.Form.Services.Add(st.Services, serviceID)
	})
	if doErr != nil {
		return doErr
	}
	return err
}

func (uc *EditForm) RemoveService(screen *console.Screen, serviceID int64) error {
	var err error
	doErr := screen.Do(func(st *console.State) {
		if !st.FormOpen {
			err = ErrFormNotOpen
			return
		}
		st.Form.Services.Remove(serviceID)
	})
	if doErr != nil {
		return doErr
	}
	return err
}

func (uc *EditForm) UpdateFields(screen *console.Screen, p FieldsPatch) error {
	if p.Status != nil && *p.Status != "" && !domain.Status(*p.Status).Valid() {
		return ErrInvalidStatus
	}

	var err error
	doErr := screen.Do(func(st *console.State) {
		if !st.FormOpen {
			err = ErrFormNotOpen
			return
		}
		f := &st.Form
		if p.AnimalID != nil {
			f.AnimalID = *p.AnimalID
		}
		if p.ClearEmployee {
			f.EmployeeID = nil
		} else if p.EmployeeID != nil {
			id := *p.EmployeeID
			f.EmployeeID = &id
		}
		if p.ScheduledAt != nil {
			f.ScheduledAt = *p.ScheduledAt
		}
		if p.Status != nil {
			f.Status = domain.Status(*p.Status)
		}
		if p.Notes != nil {
			f.Notes = *p.Notes
		}
	})
	if doErr != nil {
		return doErr
	}
	return err
}
