package appointment

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/petshop-console/internal/console"
	domain "github.com/BruksfildServices01/petshop-console/internal/domain/appointment"
	"github.com/BruksfildServices01/petshop-console/internal/infra/petshopapi"
)

const MsgEditFetchPrefix = "Não foi possível carregar os dados do agendamento: "

type OpenForm struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewOpenForm(repo domain.Repository, log *zap.Logger) *OpenForm {
	return &OpenForm{repo: repo, log: orNop(log)}
}

// Execute abre o formulário. Sem id é o modo de criação; com id busca o
// registro completo, porque a listagem pode trazer uma projeção parcial.
//
// Se a busca falhar o formulário abre mesmo assim, com os valores de
// criação e a mensagem de erro no banner.
func (uc *OpenForm) Execute(ctx context.Context, screen *console.Screen, appointmentID *int64) error {
	if appointmentID == nil {
		return screen.Do(func(st *console.State) {
			st.ResetForm()
			st.FormOpen = true
		})
	}

	if err := screen.Do(func(st *console.State) {
		st.FormFetch.Busy = true
	}); err != nil {
		return err
	}

	full, err := uc.repo.GetAppointment(ctx, *appointmentID)
	if err != nil {
		uc.log.Warn("fetch appointment for edit failed",
			zap.String("session_id", screen.ID),
			zap.Int64("agendamento_id", *appointmentID),
			zap.Error(err),
		)
	}

	if doErr := screen.Do(func(st *console.State) {
		st.FormFetch.Busy = false
		st.FormOpen = true

		if err != nil {
			st.ResetForm()
			st.Fail(&st.FormFetch, MsgEditFetchPrefix+petshopapi.DetailOrMessage(err))
			return
		}

		ed := full.Clone()
		st.Editing = &ed
		st.Form = domain.FromAppointment(ed, st.Services)
		st.FormFetch.Err = ""
	}); doErr != nil {
		return doErr
	}

	return err
}

type CloseForm struct{}

func NewCloseForm() *CloseForm {
	return &CloseForm{}
}

func (uc *CloseForm) Execute(screen *console.Screen) error {
	return screen.Do(func(st *console.State) {
		st.CloseForm()
	})
}
