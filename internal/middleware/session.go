package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/petshop-console/internal/console"
	"github.com/BruksfildServices01/petshop-console/internal/httperr"
)

const (
	ContextScreen    = "consoleScreen"
	ContextSessionID = "consoleSessionID"

	CodeSessionNotFound = "session_not_found"
)

var errInvalidSession = errors.New("invalid session token")

// Sessions emite e valida o token que identifica a tela de uma aba do
// navegador. Não é autenticação: o token só aponta para um Screen.
type Sessions struct {
	secret   []byte
	ttl      time.Duration
	registry *console.Registry
	now      func() time.Time
}

func NewSessions(secret string, ttl time.Duration, registry *console.Registry) *Sessions {
	return &Sessions{
		secret:   []byte(secret),
		ttl:      ttl,
		registry: registry,
		now:      time.Now,
	}
}

// Issue cria uma tela nova e devolve o token assinado.
func (s *Sessions) Issue() (*console.Screen, string, time.Time, error) {
	screen := s.registry.Create()

	now := s.now()
	exp := now.Add(s.ttl)
	claims := jwt.MapClaims{
		"sid": screen.ID,
		"iat": now.Unix(),
		"exp": exp.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return screen, signed, exp, nil
}

func (s *Sessions) parse(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return "", errInvalidSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errInvalidSession
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", errInvalidSession
	}
	return sid, nil
}

// Middleware resolve o Screen da requisição a partir do header
// Authorization: Bearer <token>.
func (s *Sessions) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_session_header", "Sessão do console ausente.")
			c.Abort()
			return
		}

		sid, err := s.parse(parts[1])
		if err != nil {
			httperr.Unauthorized(c, "invalid_session_token", "Sessão do console inválida ou expirada.")
			c.Abort()
			return
		}

		screen, ok := s.registry.Get(sid)
		if !ok {
			httperr.Write(c, http.StatusNotFound, CodeSessionNotFound,
				"Sessão do console não encontrada. Abra uma nova sessão.")
			c.Abort()
			return
		}

		c.Set(ContextSessionID, sid)
		c.Set(ContextScreen, screen)
		c.Next()
	}
}

// ScreenFrom devolve o Screen resolvido pelo middleware.
func ScreenFrom(c *gin.Context) *console.Screen {
	v, ok := c.Get(ContextScreen)
	if !ok {
		return nil
	}
	screen, _ := v.(*console.Screen)
	return screen
}

// SessionIDFrom devolve o id da sessão resolvida pelo middleware.
func SessionIDFrom(c *gin.Context) string {
	return c.GetString(ContextSessionID)
}
