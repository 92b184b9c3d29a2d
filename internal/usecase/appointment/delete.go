package appointment

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/petshop-console/internal/audit"
	"github.com/BruksfildServices01/petshop-console/internal/console"
	domain "github.com/BruksfildServices01/petshop-console/internal/domain/appointment"
	"github.com/BruksfildServices01/petshop-console/internal/httperr"
	"github.com/BruksfildServices01/petshop-console/internal/infra/petshopapi"
)

const (
	MsgDeleteFailed          = "Erro ao excluir agendamento. Tente novamente."
	CodeConfirmationRequired = "confirmation_required"
)

var ErrConfirmationRequired = httperr.ErrBusinessMsg(
	CodeConfirmationRequired,
	"Confirme a exclusão do agendamento.",
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
		log:   orNop(log),
	}
}

// Execute exige confirmação explícita; sem ela nada é enviado.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	screen *console.Screen,
	appointmentID int64,
	confirmed bool,
) error {

	if !confirmed {
		return ErrConfirmationRequired
	}

	if err := screen.Do(func(st *console.State) {
		st.Delete.Busy = true
	}); err != nil {
		return err
	}

	err := uc.repo.DeleteAppointment(ctx, appointmentID)
	if err != nil {
		uc.log.Warn("delete appointment failed",
			zap.String("session_id", screen.ID),
			zap.Int64("agendamento_id", appointmentID),
			zap.Error(err),
		)
	}

	var meta map[string]any
	if doErr := screen.Do(func(st *console.State) {
		st.Delete.Busy = false
		if err != nil {
			st.Fail(&st.Delete, petshopapi.DetailOr(err, MsgDeleteFailed))
			return
		}
		if removed, ok := domain.Find(st.Appointments, appointmentID); ok {
			meta = map[string]any{
				"animal":                removed.AnimalName,
				"data_hora_agendamento": removed.ScheduledAt,
				"status":                removed.Status,
			}
		}
		st.Appointments = domain.Remove(st.Appointments, appointmentID)
		st.Succeed(&st.Delete)
	}); doErr != nil {
		return doErr
	}
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		SessionID: screen.ID,
		Action:    "appointment_deleted",
		Entity:    "appointment",
		EntityID:  &appointmentID,
		Metadata:  meta,
	})

	return nil
}
