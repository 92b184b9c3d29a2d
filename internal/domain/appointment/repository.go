package appointment

import (
	"context"

	"github.com/BruksfildServices01/petshop-console/internal/models"
)

// Repository é o que a tela de agendamentos precisa do backend.
type Repository interface {
	// -------- Appointment --------
	ListAppointments(ctx context.Context) ([]models.Appointment, error)

	GetAppointment(
		ctx context.Context,
		id int64,
	) (*models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		in models.AppointmentInput,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		id int64,
		in models.AppointmentInput,
	) (*models.Appointment, error)

	DeleteAppointment(
		ctx context.Context,
		id int64,
	) error

	// -------- Reference data --------
	ListAnimals(ctx context.Context) ([]models.Animal, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	ListServices(ctx context.Context) ([]models.Service, error)
}
