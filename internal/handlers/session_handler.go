package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/petshop-console/internal/httperr"
	"github.com/BruksfildServices01/petshop-console/internal/httpresp"
	"github.com/BruksfildServices01/petshop-console/internal/middleware"
	"github.com/BruksfildServices01/petshop-console/internal/presenter"
	ucAppointment "github.com/BruksfildServices01/petshop-console/internal/usecase/appointment"
)

type SessionHandler struct {
	sessions *middleware.Sessions
	load     *ucAppointment.LoadScreen
	loc      *time.Location
	log      *zap.Logger
}

func NewSessionHandler(
	sessions *middleware.Sessions,
	load *ucAppointment.LoadScreen,
	loc *time.Location,
	log *zap.Logger,
) *SessionHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &SessionHandler{sessions: sessions, load: load, loc: loc, log: log}
}

type SessionResponse struct {
	Token     string               `json:"token"`
	ExpiresAt time.Time            `json:"expires_at"`
	Screen    presenter.ScreenView `json:"screen"`
}

// ======================================================
// CREATE SESSION
// ======================================================
// Abre uma tela nova e já dispara o carregamento inicial. Falha no
// carregamento não impede a sessão: a mensagem vai no banner da tela.
func (h *SessionHandler) Create(c *gin.Context) {
	screen, token, exp, err := h.sessions.Issue()
	if err != nil {
		h.log.Error("issue session token", zap.Error(err))
		httperr.Internal(c, "session_error", "Não foi possível abrir a sessão.")
		return
	}

	if err := h.load.Execute(c.Request.Context(), screen); err != nil {
		h.log.Warn("initial screen load failed",
			zap.String("session_id", screen.ID),
			zap.Error(err),
		)
	}

	st, err := screen.Snapshot()
	if err != nil {
		httperr.Internal(c, "session_error", "Não foi possível abrir a sessão.")
		return
	}

	httpresp.Created(c, SessionResponse{
		Token:     token,
		ExpiresAt: exp,
		Screen:    presenter.Screen(screen.ID, st, "", h.loc),
	})
}
