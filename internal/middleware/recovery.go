package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/petshop-console/internal/httperr"
)

const MsgRenderFailed = "Ocorreu um erro ao carregar os agendamentos. Tente novamente."

// Recovery troca qualquer panic por uma mensagem genérica de nova tentativa,
// em vez de deixar a tela em branco.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("panic recovered",
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", recovered),
		)
		httperr.Write(c, http.StatusInternalServerError, "render_failed", MsgRenderFailed)
		c.Abort()
	})
}

// RequestLogger registra cada requisição no logger estruturado.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
