package handlers

import (
	"errors"
	"net/http"
	"testing"

	domain "github.com/BruksfildServices01/petshop-console/internal/domain/appointment"
	"github.com/BruksfildServices01/petshop-console/internal/infra/petshopapi"
	ucAppointment "github.com/BruksfildServices01/petshop-console/internal/usecase/appointment"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"missing fields", domain.ErrMissingRequired, http.StatusUnprocessableEntity, domain.CodeMissingRequired},
		{"species", domain.ErrAnimalWithoutSpecies, http.StatusUnprocessableEntity, domain.CodeAnimalWithoutSpecies},
		{"invalid status", ucAppointment.ErrInvalidStatus, http.StatusUnprocessableEntity, ucAppointment.CodeInvalidStatus},
		{"confirmation", ucAppointment.ErrConfirmationRequired, http.StatusConflict, ucAppointment.CodeConfirmationRequired},
		{"form closed", ucAppointment.ErrFormNotOpen, http.StatusConflict, ucAppointment.CodeFormNotOpen},
		{"export disabled", ucAppointment.ErrExportDisabled, http.StatusServiceUnavailable, ucAppointment.CodeExportDisabled},
		{"backend", &petshopapi.Error{Status: http.StatusInternalServerError}, http.StatusBadGateway, "backend_error"},
		{"transport", &petshopapi.Error{Message: petshopapi.MsgNoResponse}, http.StatusBadGateway, "backend_error"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := classify(tt.err)
			if status != tt.status || code != tt.code {
				t.Fatalf("expected %d/%s, got %d/%s", tt.status, tt.code, status, code)
			}
		})
	}
}
