package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/petshop-console/internal/console"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newSessionRouter(s *Sessions) *gin.Engine {
	r := gin.New()
	r.GET("/screen", s.Middleware(), func(c *gin.Context) {
		if SessionIDFrom(c) != ScreenFrom(c).ID {
			c.String(http.StatusInternalServerError, "session id mismatch")
			return
		}
		c.String(http.StatusOK, ScreenFrom(c).ID)
	})
	return r
}

func resolveScreen(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/screen", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSessions_IssueAndResolve(t *testing.T) {
	reg := console.NewRegistry(time.Hour, nil)
	defer reg.CloseAll()
	s := NewSessions("secret", time.Hour, reg)

	screen, token, _, err := s.Issue()
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	w := resolveScreen(newSessionRouter(s), "Bearer "+token)
	if w.Code != http.StatusOK || w.Body.String() != screen.ID {
		t.Fatalf("expected 200 with screen id, got %d %s", w.Code, w.Body.String())
	}
}

func TestSessions_Rejections(t *testing.T) {
	reg := console.NewRegistry(time.Hour, nil)
	defer reg.CloseAll()
	s := NewSessions("secret", time.Hour, reg)

	_, good, _, _ := s.Issue()
	_, foreign, _, _ := NewSessions("other", time.Hour, reg).Issue()

	expired := NewSessions("secret", time.Minute, reg)
	expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
	_, stale, _, _ := expired.Issue()

	orphan := NewSessions("secret", time.Hour, console.NewRegistry(time.Hour, nil))
	_, unknown, _, _ := orphan.Issue()

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + good, http.StatusUnauthorized},
		{"wrong secret", "Bearer " + foreign, http.StatusUnauthorized},
		{"expired", "Bearer " + stale, http.StatusUnauthorized},
		{"unknown session", "Bearer " + unknown, http.StatusNotFound},
		{"valid", "Bearer " + good, http.StatusOK},
	}

	r := newSessionRouter(s)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := resolveScreen(r, tt.header); w.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, w.Code, w.Body.String())
			}
		})
	}
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"http://localhost:5173"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		name    string
		method  string
		origin  string
		allowed bool
		status  int
	}{
		{"allowed origin", http.MethodGet, "http://localhost:5173", true, http.StatusOK},
		{"other origin", http.MethodGet, "http://evil.test", false, http.StatusOK},
		{"preflight", http.MethodOptions, "http://localhost:5173", true, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/x", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, w.Code)
			}
			got := w.Header().Get("Access-Control-Allow-Origin") == tt.origin
			if got != tt.allowed {
				t.Fatalf("allow-origin header mismatch: %q", w.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(zap.NewNop()))
	r.GET("/boom", func(c *gin.Context) { panic("render") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if body := w.Body.String(); !strings.Contains(body, MsgRenderFailed) {
		t.Fatalf("expected retry message, got %s", body)
	}
}
