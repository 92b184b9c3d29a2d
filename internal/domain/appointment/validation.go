package appointment

import (
	"strings"

	"github.com/BruksfildServices01/petshop-console/internal/httperr"
	"github.com/BruksfildServices01/petshop-console/internal/models"
)

const (
	CodeMissingRequired      = "missing_required_fields"
	CodeAnimalWithoutSpecies = "animal_without_species"
)

var (
	ErrMissingRequired = httperr.ErrBusinessMsg(
		CodeMissingRequired,
		"Por favor, preencha todos os campos obrigatórios e selecione pelo menos um serviço.",
	)
	ErrAnimalWithoutSpecies = httperr.ErrBusinessMsg(
		CodeAnimalWithoutSpecies,
		"O animal selecionado não possui uma espécie válida.",
	)
)

// Validate roda antes de qualquer chamada de rede. A espécie é conferida
// contra os animais já carregados na tela.
func Validate(f Form, animals []models.Animal) error {
	if f.AnimalID == 0 ||
		strings.TrimSpace(f.ScheduledAt) == "" ||
		f.Status == "" ||
		f.Services.Len() == 0 {
		return ErrMissingRequired
	}

	for _, a := range animals {
		if a.ID == f.AnimalID {
			if strings.TrimSpace(a.Species) == "" {
				return ErrAnimalWithoutSpecies
			}
			return nil
		}
	}

	return ErrAnimalWithoutSpecies
}
