package petshopapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

const MsgNoResponse = "Servidor não respondeu. Verifique sua conexão."

// Error é devolvido para qualquer falha de requisição. Status 0 indica que
// nenhuma resposta chegou (falha de transporte).
type Error struct {
	Status  int
	Detail  string
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// statusMessage segue o mapeamento genérico por status HTTP.
func statusMessage(status int, detail string) string {
	switch status {
	case http.StatusNotFound:
		return "Recurso não encontrado"
	case http.StatusBadRequest:
		if detail != "" {
			return detail
		}
		return "Dados inválidos"
	case http.StatusUnauthorized:
		return "Não autorizado"
	case http.StatusForbidden:
		return "Acesso proibido"
	case http.StatusInternalServerError:
		return "Erro interno do servidor"
	}
	return fmt.Sprintf("Erro na requisição (HTTP %d)", status)
}

func newResponseError(status int, body []byte) *Error {
	detail := extractDetail(body)
	return &Error{
		Status:  status,
		Detail:  detail,
		Message: statusMessage(status, detail),
	}
}

func newTransportError(err error) *Error {
	return &Error{
		Message: MsgNoResponse,
		Err:     err,
	}
}

// extractDetail só aceita "detail" textual; listas de validação do
// FastAPI são ignoradas.
func extractDetail(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}

	var detail string
	if err := json.Unmarshal(payload.Detail, &detail); err != nil {
		return ""
	}
	return detail
}

// DetailOr devolve o detail do servidor ou o fallback informado.
func DetailOr(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}

// DetailOrMessage devolve o detail do servidor ou a mensagem do próprio erro.
func DetailOrMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		if apiErr.Detail != "" {
			return apiErr.Detail
		}
		return apiErr.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
