package repository

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/petshop-console/internal/infra/cache"
	"github.com/BruksfildServices01/petshop-console/internal/infra/petshopapi"
	"github.com/BruksfildServices01/petshop-console/internal/models"
)

// Reference identifica uma coleção de referência guardada no cache.
type Reference string

const (
	RefAnimals   Reference = "ref:animais"
	RefEmployees Reference = "ref:funcionarios"
	RefServices  Reference = "ref:servicos"
)

// AppointmentAPIRepository implementa o repositório da tela sobre o
// backend REST. Coleções de referência passam pelo cache quando ttl > 0.
type AppointmentAPIRepository struct {
	api   *petshopapi.Client
	cache cache.Cache
	ttl   time.Duration
	log   *zap.Logger
}

func NewAppointmentAPIRepository(
	api *petshopapi.Client,
	c cache.Cache,
	ttl time.Duration,
	log *zap.Logger,
) *AppointmentAPIRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &AppointmentAPIRepository{api: api, cache: c, ttl: ttl, log: log}
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentAPIRepository) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	return r.api.Appointments.List(ctx, nil)
}

func (r *AppointmentAPIRepository) GetAppointment(ctx context.Context, id int64) (*models.Appointment, error) {
	return r.api.Appointments.Get(ctx, id)
}

func (r *AppointmentAPIRepository) CreateAppointment(
	ctx context.Context,
	in models.AppointmentInput,
) (*models.Appointment, error) {
	return r.api.Appointments.Create(ctx, in)
}

func (r *AppointmentAPIRepository) UpdateAppointment(
	ctx context.Context,
	id int64,
	in models.AppointmentInput,
) (*models.Appointment, error) {
	return r.api.Appointments.Update(ctx, id, in)
}

func (r *AppointmentAPIRepository) DeleteAppointment(ctx context.Context, id int64) error {
	return r.api.Appointments.Delete(ctx, id)
}

// --------------------------------------------------
// Reference data
// --------------------------------------------------

func (r *AppointmentAPIRepository) ListAnimals(ctx context.Context) ([]models.Animal, error) {
	return cached(ctx, r, RefAnimals, func() ([]models.Animal, error) {
		return r.api.Animals.List(ctx, nil)
	})
}

func (r *AppointmentAPIRepository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	return cached(ctx, r, RefEmployees, func() ([]models.Employee, error) {
		return r.api.Employees.List(ctx, petshopapi.EmployeesQuery(false))
	})
}

func (r *AppointmentAPIRepository) ListServices(ctx context.Context) ([]models.Service, error) {
	return cached(ctx, r, RefServices, func() ([]models.Service, error) {
		return r.api.Services.List(ctx, nil)
	})
}

// Invalidate descarta a coleção cacheada depois de uma escrita no cadastro.
func (r *AppointmentAPIRepository) Invalidate(ctx context.Context, ref Reference) {
	if r.cache == nil || r.ttl <= 0 || ref == "" {
		return
	}
	if err := r.cache.Delete(ctx, string(ref)); err != nil {
		r.log.Warn("reference cache invalidation failed", zap.String("key", string(ref)), zap.Error(err))
	}
}

// cached faz leitura via cache; erros do cache nunca impedem a chamada ao
// backend.
func cached[T any](
	ctx context.Context,
	r *AppointmentAPIRepository,
	ref Reference,
	fetch func() ([]T, error),
) ([]T, error) {
	if r.cache == nil || r.ttl <= 0 {
		return fetch()
	}
	key := string(ref)

	var out []T
	hit, err := r.cache.Get(ctx, key, &out)
	if err != nil {
		r.log.Warn("reference cache read failed", zap.String("key", key), zap.Error(err))
	}
	if hit && err == nil {
		return out, nil
	}

	out, err = fetch()
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, key, out, r.ttl); err != nil {
		r.log.Warn("reference cache write failed", zap.String("key", key), zap.Error(err))
	}
	return out, nil
}
