package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/petshop-console/internal/middleware"
	"github.com/BruksfildServices01/petshop-console/internal/models"
)

type auditPage struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}

func newAuditDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.AuditLog{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	day := func(d, h int) time.Time { return time.Date(2025, 3, d, h, 0, 0, 0, time.UTC) }
	rows := []models.AuditLog{
		{SessionID: "s1", Action: "appointment_created", Entity: "appointment", CreatedAt: day(10, 9)},
		{SessionID: "s1", Action: "appointment_updated", Entity: "appointment", CreatedAt: day(11, 9)},
		{SessionID: "s1", Action: "customer_created", Entity: "customer", CreatedAt: day(11, 15)},
		{SessionID: "s1", Action: "appointment_deleted", Entity: "appointment", CreatedAt: day(12, 9)},
		{SessionID: "s2", Action: "appointment_created", Entity: "appointment", CreatedAt: day(11, 10)},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}

func auditRouter(h *AuditLogsHandler, sessionID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/audit-logs", func(c *gin.Context) {
		c.Set(middleware.ContextSessionID, sessionID)
		c.Next()
	}, h.List)
	return r
}

func getAudit(t *testing.T, r *gin.Engine, query string) (int, auditPage) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/audit-logs"+query, nil))

	var page auditPage
	if w.Code == http.StatusOK {
		if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	return w.Code, page
}

func TestAuditLogs_ScopedToSession(t *testing.T) {
	r := auditRouter(NewAuditLogsHandler(newAuditDB(t), time.UTC), "s1")

	code, page := getAudit(t, r, "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if page.Total != 4 || len(page.Logs) != 4 {
		t.Fatalf("expected 4 logs of s1, got total=%d len=%d", page.Total, len(page.Logs))
	}
	for _, l := range page.Logs {
		if l.SessionID != "s1" {
			t.Fatalf("log of another session leaked: %+v", l)
		}
	}
	if page.Logs[0].Action != "appointment_deleted" {
		t.Fatalf("expected newest first, got %s", page.Logs[0].Action)
	}
}

func TestAuditLogs_Filters(t *testing.T) {
	r := auditRouter(NewAuditLogsHandler(newAuditDB(t), time.UTC), "s1")

	tests := []struct {
		name  string
		query string
		total int64
	}{
		{"action", "?action=appointment_created", 1},
		{"entity", "?entity=appointment", 3},
		{"from", "?from=2025-03-11", 3},
		{"to inclusive", "?to=2025-03-11", 3},
		{"range", "?from=2025-03-11&to=2025-03-11", 2},
		{"range and entity", "?from=2025-03-11&to=2025-03-11&entity=customer", 1},
		{"bad date ignored", "?from=11/03/2025", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, page := getAudit(t, r, tt.query)
			if code != http.StatusOK {
				t.Fatalf("expected 200, got %d", code)
			}
			if page.Total != tt.total {
				t.Fatalf("expected total %d, got %d", tt.total, page.Total)
			}
		})
	}
}

func TestAuditLogs_Pagination(t *testing.T) {
	r := auditRouter(NewAuditLogsHandler(newAuditDB(t), time.UTC), "s1")

	_, page := getAudit(t, r, "?limit=3&page=2")
	if page.Page != 2 || page.Limit != 3 {
		t.Fatalf("unexpected paging echo: %+v", page)
	}
	if page.Total != 4 || len(page.Logs) != 1 {
		t.Fatalf("expected 1 log on page 2 of 4, got total=%d len=%d", page.Total, len(page.Logs))
	}
	if page.Logs[0].Action != "appointment_created" {
		t.Fatalf("expected oldest on last page, got %s", page.Logs[0].Action)
	}

	_, page = getAudit(t, r, "?limit=500&page=-1")
	if page.Page != 1 || page.Limit != 50 {
		t.Fatalf("expected defaults 1/50, got %d/%d", page.Page, page.Limit)
	}
}

func TestAuditLogs_WithoutDatabase(t *testing.T) {
	r := auditRouter(NewAuditLogsHandler(nil, nil), "s1")

	code, _ := getAudit(t, r, "")
	if code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", code)
	}
}
