package catalog

import (
	"strconv"
	"strings"

	"github.com/BruksfildServices01/petshop-console/internal/models"
)

// OwnerUnknown é exibido quando o tutor do animal não está na lista de
// clientes.
const OwnerUnknown = "Desconhecido"

// OwnedAnimal é o animal com o nome do tutor já resolvido.
type OwnedAnimal struct {
	models.Animal
	ClientName string `json:"cliente_nome"`
}

func WithOwners(animals []models.Animal, customers []models.Customer) []OwnedAnimal {
	names := make(map[int64]string, len(customers))
	for _, c := range customers {
		names[c.ID] = c.Name
	}

	out := make([]OwnedAnimal, 0, len(animals))
	for _, a := range animals {
		name, ok := names[a.CustomerID]
		if !ok || name == "" {
			name = OwnerUnknown
		}
		out = append(out, OwnedAnimal{Animal: a, ClientName: name})
	}
	return out
}

// Filter mantém a ordem original. Termo vazio devolve a lista inteira.
func Filter[T any](list []T, term string, match func(T, string) bool) []T {
	term = strings.TrimSpace(term)
	if term == "" {
		return list
	}

	out := make([]T, 0, len(list))
	for _, item := range list {
		if match(item, term) {
			out = append(out, item)
		}
	}
	return out
}

func containsFold(s, term string) bool {
	return s != "" && strings.Contains(strings.ToLower(s), strings.ToLower(term))
}

// --------------------------------------------------
// Matchers
// --------------------------------------------------
// Telefones e números comparam o texto como digitado.

func MatchCustomer(c models.Customer, term string) bool {
	return containsFold(c.Name, term) ||
		containsFold(c.Email, term) ||
		strings.Contains(c.Phone, term)
}

func MatchAnimal(a OwnedAnimal, term string) bool {
	return containsFold(a.Name, term) ||
		containsFold(a.Species, term) ||
		containsFold(a.Breed, term) ||
		containsFold(a.ClientName, term)
}

func MatchEmployee(e models.Employee, term string) bool {
	return containsFold(e.Name, term) ||
		containsFold(e.Role, term) ||
		containsFold(e.Email, term) ||
		(e.Phone != "" && strings.Contains(e.Phone, term))
}

func MatchService(s models.Service, term string) bool {
	return containsFold(s.Name, term) ||
		containsFold(s.Description, term) ||
		strings.Contains(s.Price.Decimal(), term) ||
		strings.Contains(strconv.Itoa(s.DurationMin), term)
}
