package appointment

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/BruksfildServices01/petshop-console/internal/console"
	domain "github.com/BruksfildServices01/petshop-console/internal/domain/appointment"
	"github.com/BruksfildServices01/petshop-console/internal/infra/petshopapi"
	"github.com/BruksfildServices01/petshop-console/internal/models"
)

const MsgLoadFailed = "Não foi possível carregar os dados. Tente novamente."

type LoadScreen struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewLoadScreen(repo domain.Repository, log *zap.Logger) *LoadScreen {
	return &LoadScreen{repo: repo, log: orNop(log)}
}

// Execute busca as quatro coleções em paralelo. Qualquer falha descarta o
// lote inteiro e mantém o que já estava na tela.
func (uc *LoadScreen) Execute(ctx context.Context, screen *console.Screen) error {
	if err := screen.Do(func(st *console.State) {
		st.Load.Busy = true
	}); err != nil {
		return err
	}

	var (
		appointments []models.Appointment
		animals      []models.Animal
		employees    []models.Employee
		services     []models.Service
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		appointments, err = uc.repo.ListAppointments(gctx)
		return err
	})
	g.Go(func() (err error) {
		animals, err = uc.repo.ListAnimals(gctx)
		return err
	})
	g.Go(func() (err error) {
		employees, err = uc.repo.ListEmployees(gctx)
		return err
	})
	g.Go(func() (err error) {
		services, err = uc.repo.ListServices(gctx)
		return err
	})
	err := g.Wait()

	if err != nil {
		uc.log.Warn("load appointment screen failed",
			zap.String("session_id", screen.ID),
			zap.Error(err),
		)
	}

	if doErr := screen.Do(func(st *console.State) {
		st.Load.Busy = false
		if err != nil {
			st.Fail(&st.Load, petshopapi.DetailOr(err, MsgLoadFailed))
			return
		}
		st.Appointments = appointments
		st.Animals = animals
		st.Employees = employees
		st.Services = services
		st.Loaded = true
		st.Succeed(&st.Load)
	}); doErr != nil {
		return doErr
	}

	return err
}

func orNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
