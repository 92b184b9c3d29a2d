package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/petshop-console/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// cada conexão :memory: é um banco separado
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.AuditLog{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestDispatcher_PersistsThroughGorm(t *testing.T) {
	db := newTestDB(t)
	d := NewDispatcher(New(db), nil)

	id := int64(42)
	d.Dispatch(Event{
		SessionID: "s-1",
		Action:    "appointment_created",
		Entity:    "appointment",
		EntityID:  &id,
		Metadata:  map[string]any{"servicos_ids": []int64{1, 2}},
	})
	d.Close()

	var rows []models.AuditLog
	if err := db.Find(&rows).Error; err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.Action != "appointment_created" || row.SessionID != "s-1" {
		t.Fatalf("unexpected row: %+v", row)
	}
	if row.EntityID == nil || *row.EntityID != 42 {
		t.Fatalf("unexpected entity id: %v", row.EntityID)
	}
	if row.Metadata != `{"servicos_ids":[1,2]}` {
		t.Fatalf("unexpected metadata: %s", row.Metadata)
	}
}

type failingSink struct {
	mu    sync.Mutex
	calls int
}

func (f *failingSink) Log(context.Context, Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return errors.New("disk full")
}

func TestDispatcher_SinkErrorIsLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	sink := &failingSink{}
	d := NewDispatcher(sink, zap.New(core))

	d.Dispatch(Event{Action: "appointment_deleted"})
	d.Close()

	if sink.calls != 1 {
		t.Fatalf("expected 1 sink call, got %d", sink.calls)
	}
	if logs.FilterMessage("audit error").Len() != 1 {
		t.Fatal("expected sink failure to be logged")
	}
}

func TestZapSink(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	id := int64(7)

	if err := NewZapSink(zap.New(core)).Log(context.Background(), Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &id,
	}); err != nil {
		t.Fatalf("log: %v", err)
	}

	entries := logs.FilterMessage("audit").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["entity_id"]; got != int64(7) {
		t.Fatalf("unexpected entity_id field: %v", got)
	}
}

func TestDispatch_NilDispatcherIsNoop(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Action: "appointment_created"})
}
