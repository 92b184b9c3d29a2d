package appointment

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/petshop-console/internal/audit"
	"github.com/BruksfildServices01/petshop-console/internal/console"
	domain "github.com/BruksfildServices01/petshop-console/internal/domain/appointment"
	"github.com/BruksfildServices01/petshop-console/internal/httperr"
	"github.com/BruksfildServices01/petshop-console/internal/infra/petshopapi"
	"github.com/BruksfildServices01/petshop-console/internal/models"
)

const MsgSubmitFailed = "Erro ao salvar agendamento. Tente novamente."

type SubmitAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
	log   *zap.Logger
}

func NewSubmitAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
	log *zap.Logger,
) *SubmitAppointment {
	return &SubmitAppointment{
		repo:  repo,
		audit: audit,
		loc:   loc,
		log:   orNop(log),
	}
}

// Execute valida, envia e reconcilia a lista local. Validação reprovada
// nunca chega ao backend.
func (uc *SubmitAppointment) Execute(
	ctx context.Context,
	screen *console.Screen,
) (*models.Appointment, error) {

	var (
		input     models.AppointmentInput
		editingID *int64
		invalid   error
	)

	if err := screen.Do(func(st *console.State) {
		if !st.FormOpen {
			invalid = ErrFormNotOpen
			return
		}
		if err := domain.Validate(st.Form, st.Animals); err != nil {
			invalid = err
			st.Fail(&st.Submit, err.Error())
			return
		}

		input = st.Form.Input(uc.loc)
		if st.Editing != nil {
			id := st.Editing.ID
			editingID = &id
		}
		st.Submit.Busy = true
	}); err != nil {
		return nil, err
	}
	if invalid != nil {
		return nil, invalid
	}

	var (
		saved *models.Appointment
		err   error
	)
	if editingID != nil {
		saved, err = uc.repo.UpdateAppointment(ctx, *editingID, input)
	} else {
		saved, err = uc.repo.CreateAppointment(ctx, input)
	}

	if err != nil {
		uc.log.Warn("submit appointment failed",
			zap.String("session_id", screen.ID),
			zap.Bool("editing", editingID != nil),
			zap.Error(err),
		)
	}

	if doErr := screen.Do(func(st *console.State) {
		st.Submit.Busy = false
		if err != nil {
			st.Fail(&st.Submit, petshopapi.DetailOr(err, MsgSubmitFailed))
			return
		}
		if editingID != nil {
			st.Appointments = domain.Replace(st.Appointments, saved.Clone())
		} else {
			st.Appointments = domain.Append(st.Appointments, saved.Clone())
		}
		st.CloseForm()
		st.Succeed(&st.Submit)
	}); doErr != nil {
		return nil, doErr
	}
	if err != nil {
		return nil, err
	}

	action := "appointment_created"
	if editingID != nil {
		action = "appointment_updated"
	}
	uc.audit.Dispatch(audit.Event{
		SessionID: screen.ID,
		Action:    action,
		Entity:    "appointment",
		EntityID:  &saved.ID,
		Metadata: map[string]any{
			"status":       input.Status,
			"servicos_ids": input.ServiceIDs,
		},
	})

	return saved, nil
}

// IsValidation indica dado do formulário recusado localmente, antes da rede.
func IsValidation(err error) bool {
	return httperr.IsBusiness(err, domain.CodeMissingRequired) ||
		httperr.IsBusiness(err, domain.CodeAnimalWithoutSpecies) ||
		httperr.IsBusiness(err, CodeInvalidStatus)
}
