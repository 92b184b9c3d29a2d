package catalog

import (
	"strings"

	"github.com/BruksfildServices01/petshop-console/internal/httperr"
	"github.com/BruksfildServices01/petshop-console/internal/models"
)

const (
	CodeMissingRequired = "missing_required_fields"
	CodeInvalidPrice    = "invalid_price"
	CodeInvalidDuration = "invalid_duration"
)

var (
	ErrMissingRequired = httperr.ErrBusinessMsg(
		CodeMissingRequired,
		"Por favor, preencha todos os campos obrigatórios.",
	)
	ErrInvalidPrice = httperr.ErrBusinessMsg(
		CodeInvalidPrice,
		"O preço deve ser um número positivo.",
	)
	ErrInvalidDuration = httperr.ErrBusinessMsg(
		CodeInvalidDuration,
		"A duração deve ser um número inteiro positivo.",
	)
)

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

// ======================================================
// CADASTROS
// ======================================================

func ValidateCustomer(in models.CustomerInput) error {
	if blank(in.Name, in.Phone, in.Email) {
		return ErrMissingRequired
	}
	return nil
}

func ValidateAnimal(in models.AnimalInput) error {
	if in.CustomerID == 0 || blank(in.Name, in.Species) {
		return ErrMissingRequired
	}
	return nil
}

func ValidateEmployee(in models.EmployeeInput) error {
	if blank(in.Name, in.Role, in.HiredAt) {
		return ErrMissingRequired
	}
	return nil
}

// ValidateService trata preço e duração zerados como campos não
// preenchidos; negativos são recusados com mensagem própria.
func ValidateService(in models.ServiceInput) error {
	if blank(in.Name) || in.Price == nil || *in.Price == 0 || in.DurationMin == 0 {
		return ErrMissingRequired
	}
	if *in.Price < 0 {
		return ErrInvalidPrice
	}
	if in.DurationMin < 0 {
		return ErrInvalidDuration
	}
	return nil
}

// IsValidation indica cadastro recusado localmente, antes da rede.
func IsValidation(err error) bool {
	return httperr.IsBusiness(err, CodeMissingRequired) ||
		httperr.IsBusiness(err, CodeInvalidPrice) ||
		httperr.IsBusiness(err, CodeInvalidDuration)
}
