package console

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/BruksfildServices01/petshop-console/internal/models"
)

func TestScreen_SerializesMutations(t *testing.T) {
	s := NewScreen("test")
	defer s.Close()

	var wg sync.WaitGroup
	for i := 1; i <= 100; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			_ = s.Do(func(st *State) {
				st.Appointments = append(st.Appointments, models.Appointment{ID: id})
			})
		}(int64(i))
	}
	wg.Wait()

	snap, err := s.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(snap.Appointments) != 100 {
		t.Fatalf("expected 100 appointments, got %d", len(snap.Appointments))
	}
}

func TestScreen_SnapshotIsDeepCopy(t *testing.T) {
	s := NewScreen("test")
	defer s.Close()

	total := models.Money(5000)
	_ = s.Do(func(st *State) {
		st.Appointments = []models.Appointment{{ID: 1, Total: &total, Services: []models.AppointmentService{{ServiceID: 1}}}}
		st.Services = []models.Service{{ID: 1, Name: "Banho", Price: 3000}}
		st.Form.Services.Add(st.Services, 1)
	})

	snap, _ := s.Snapshot()
	*snap.Appointments[0].Total = 1
	snap.Appointments[0].Services[0].ServiceID = 9
	snap.Form.Services.Remove(1)

	again, _ := s.Snapshot()
	if *again.Appointments[0].Total != 5000 || again.Appointments[0].Services[0].ServiceID != 1 {
		t.Fatalf("snapshot aliased the appointment list: %+v", again.Appointments[0])
	}
	if again.Form.Services.Len() != 1 {
		t.Fatal("snapshot aliased the working set")
	}
}

func TestScreen_DefaultState(t *testing.T) {
	s := NewScreen("test")
	defer s.Close()

	snap, _ := s.Snapshot()
	if snap.FormOpen || snap.Editing != nil || snap.Form.Status != "Agendado" {
		t.Fatalf("unexpected initial state: %+v", snap)
	}
}

func TestScreen_DoAfterClose(t *testing.T) {
	s := NewScreen("test")
	s.Close()
	s.Close()

	if err := s.Do(func(*State) {}); !errors.Is(err, ErrScreenClosed) {
		t.Fatalf("expected ErrScreenClosed, got %v", err)
	}
}

func TestScreen_PanicReachesCaller(t *testing.T) {
	s := NewScreen("test")
	defer s.Close()

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Fatal("expected panic to propagate")
			}
		}()
		_ = s.Do(func(*State) { panic("boom") })
	}()

	// the screen keeps serving after a panicking operation
	if err := s.Do(func(st *State) { st.Error = "ok" }); err != nil {
		t.Fatalf("screen stopped after panic: %v", err)
	}
}

func TestState_FailAndSucceed(t *testing.T) {
	st := newState()
	st.Fail(&st.Submit, "erro")
	if st.Error != "erro" || st.Submit.Err != "erro" {
		t.Fatalf("unexpected state: %+v", st)
	}
	st.Fail(&st.Delete, "outro")
	if st.Error != "outro" || st.Submit.Err != "erro" {
		t.Fatal("most recent error must replace the banner without touching other ops")
	}
	st.Succeed(&st.Delete)
	if st.Error != "" || st.Delete.Err != "" {
		t.Fatal("success must clear the banner")
	}
}

func TestRegistry_SweepExpired(t *testing.T) {
	r := NewRegistry(time.Minute, nil)
	now := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }

	a := r.Create()
	b := r.Create()

	now = now.Add(45 * time.Second)
	if _, ok := r.Get(a.ID); !ok {
		t.Fatal("expected session a")
	}

	now = now.Add(30 * time.Second)
	if n := r.Sweep(); n != 1 {
		t.Fatalf("expected 1 expired session, got %d", n)
	}
	if _, ok := r.Get(b.ID); ok {
		t.Fatal("session b should have expired")
	}
	if _, ok := r.Get(a.ID); !ok {
		t.Fatal("session a was touched and must survive")
	}
	if r.Len() != 1 {
		t.Fatalf("expected 1 session, got %d", r.Len())
	}

	r.CloseAll()
	if r.Len() != 0 {
		t.Fatal("expected registry to be empty")
	}
}
