package appointment

import (
	"context"
	"sync"

	"github.com/BruksfildServices01/petshop-console/internal/models"
)

type fakeRepo struct {
	mu sync.Mutex

	appointments []models.Appointment
	animals      []models.Animal
	employees    []models.Employee
	services     []models.Service

	full map[int64]models.Appointment

	listErr   error
	getErr    error
	createErr error
	updateErr error
	deleteErr error

	calls     map[string]int
	lastInput models.AppointmentInput
	nextID    int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		appointments: []models.Appointment{
			{ID: 1, AnimalID: 10, AnimalName: "Rex", Status: "Agendado"},
			{ID: 2, AnimalID: 11, AnimalName: "Mia", Status: "Confirmado"},
			{ID: 3, AnimalID: 10, AnimalName: "Rex", Status: "Concluído"},
		},
		animals: []models.Animal{
			{ID: 10, Name: "Rex", Species: "Cachorro"},
			{ID: 11, Name: "Mia", Species: "Gato"},
			{ID: 12, Name: "Sem Espécie"},
		},
		employees: []models.Employee{{ID: 5, Name: "Bruno"}},
		services: []models.Service{
			{ID: 1, Name: "Banho", Price: 3000, DurationMin: 40},
			{ID: 2, Name: "Tosa", Price: 2000, DurationMin: 30},
		},
		full:   map[int64]models.Appointment{},
		calls:  map[string]int{},
		nextID: 100,
	}
}

func (f *fakeRepo) count(name string) {
	f.mu.Lock()
	f.calls[name]++
	f.mu.Unlock()
}

func (f *fakeRepo) Calls(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeRepo) networkCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeRepo) ListAppointments(context.Context) ([]models.Appointment, error) {
	f.count("ListAppointments")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Appointment(nil), f.appointments...), nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, id int64) (*models.Appointment, error) {
	f.count("GetAppointment")
	if f.getErr != nil {
		return nil, f.getErr
	}
	ap := f.full[id]
	return &ap, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, in models.AppointmentInput) (*models.Appointment, error) {
	f.count("CreateAppointment")
	f.mu.Lock()
	f.lastInput = in
	f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.Appointment{ID: f.nextID, AnimalID: in.AnimalID, Status: in.Status}, nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, id int64, in models.AppointmentInput) (*models.Appointment, error) {
	f.count("UpdateAppointment")
	f.mu.Lock()
	f.lastInput = in
	f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &models.Appointment{ID: id, AnimalID: in.AnimalID, Status: in.Status}, nil
}

func (f *fakeRepo) DeleteAppointment(context.Context, int64) error {
	f.count("DeleteAppointment")
	return f.deleteErr
}

func (f *fakeRepo) ListAnimals(context.Context) ([]models.Animal, error) {
	f.count("ListAnimals")
	return f.animals, nil
}

func (f *fakeRepo) ListEmployees(context.Context) ([]models.Employee, error) {
	f.count("ListEmployees")
	return f.employees, nil
}

func (f *fakeRepo) ListServices(context.Context) ([]models.Service, error) {
	f.count("ListServices")
	return f.services, nil
}
