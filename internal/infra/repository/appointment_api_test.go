package repository

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/BruksfildServices01/petshop-console/internal/infra/cache"
	"github.com/BruksfildServices01/petshop-console/internal/infra/petshopapi"
)

func newRepo(t *testing.T, ttl time.Duration, h http.HandlerFunc) *AppointmentAPIRepository {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	api, err := petshopapi.New(petshopapi.Options{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return NewAppointmentAPIRepository(api, cache.NewMemory(), ttl, nil)
}

func TestListServices_UsesCacheWhenEnabled(t *testing.T) {
	var calls int32
	repo := newRepo(t, time.Minute, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = io.WriteString(w, `[{"servico_id":1,"nome":"Banho","preco":"30.00","duracao_estimada_minutos":40}]`)
	})

	for i := 0; i < 3; i++ {
		svcs, err := repo.ListServices(context.Background())
		if err != nil {
			t.Fatalf("list services: %v", err)
		}
		if len(svcs) != 1 || svcs[0].Price != 3000 {
			t.Fatalf("unexpected services: %+v", svcs)
		}
	}

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected 1 backend call, got %d", got)
	}
}

func TestListAnimals_NoCacheWhenTTLZero(t *testing.T) {
	var calls int32
	repo := newRepo(t, 0, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = io.WriteString(w, `[{"animal_id":1,"cliente_id":1,"nome":"Rex","especie":"Cachorro"}]`)
	})

	for i := 0; i < 2; i++ {
		if _, err := repo.ListAnimals(context.Background()); err != nil {
			t.Fatalf("list animals: %v", err)
		}
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Fatalf("expected 2 backend calls, got %d", got)
	}
}

func TestListEmployees_IncludesInactive(t *testing.T) {
	repo := newRepo(t, 0, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/funcionarios/" || r.URL.Query().Get("apenas_ativos") != "false" {
			t.Errorf("unexpected request %s?%s", r.URL.Path, r.URL.RawQuery)
		}
		_, _ = io.WriteString(w, `[]`)
	})

	emps, err := repo.ListEmployees(context.Background())
	if err != nil {
		t.Fatalf("list employees: %v", err)
	}
	if emps == nil || len(emps) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", emps)
	}
}

func TestErrorsAreNotCached(t *testing.T) {
	var calls int32
	repo := newRepo(t, time.Minute, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = io.WriteString(w, `[]`)
	})

	if _, err := repo.ListServices(context.Background()); err == nil {
		t.Fatal("expected first call to fail")
	}
	if _, err := repo.ListServices(context.Background()); err != nil {
		t.Fatalf("second call: %v", err)
	}
}

func TestInvalidate_ForcesRefetch(t *testing.T) {
	var calls int32
	repo := newRepo(t, time.Minute, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = io.WriteString(w, `[]`)
	})
	ctx := context.Background()

	_, _ = repo.ListServices(ctx)
	_, _ = repo.ListServices(ctx)
	repo.Invalidate(ctx, RefServices)
	_, _ = repo.ListServices(ctx)

	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Fatalf("expected 2 backend calls, got %d", got)
	}
}
