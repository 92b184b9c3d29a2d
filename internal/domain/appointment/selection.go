package appointment

import (
	"time"

	"github.com/BruksfildServices01/petshop-console/internal/models"
)

// Selection é o conjunto de trabalho de serviços do formulário aberto.
// Mantém a ordem de inserção e nunca contém dois serviços com o mesmo id.
type Selection struct {
	items []models.Service
}

func NewSelection(items ...models.Service) Selection {
	var s Selection
	for _, it := range items {
		s.add(it)
	}
	return s
}

// Add procura o serviço no catálogo e o anexa ao final. Retorna false se o
// id não existe no catálogo ou já foi selecionado.
func (s *Selection) Add(catalog []models.Service, serviceID int64) bool {
	for _, svc := range catalog {
		if svc.ID == serviceID {
			return s.add(svc)
		}
	}
	return false
}

func (s *Selection) add(svc models.Service) bool {
	if s.Contains(svc.ID) {
		return false
	}
	s.items = append(s.items, svc)
	return true
}

func (s *Selection) Remove(serviceID int64) bool {
	for i, svc := range s.items {
		if svc.ID == serviceID {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

func (s Selection) Contains(serviceID int64) bool {
	for _, svc := range s.items {
		if svc.ID == serviceID {
			return true
		}
	}
	return false
}

// Total soma os preços a cada chamada; nada é guardado em cache.
func (s Selection) Total() models.Money {
	var total models.Money
	for _, svc := range s.items {
		total += svc.Price
	}
	return total
}

func (s Selection) TotalDuration() time.Duration {
	var d time.Duration
	for _, svc := range s.items {
		d += time.Duration(svc.DurationMin) * time.Minute
	}
	return d
}

func (s Selection) Len() int {
	return len(s.items)
}

func (s Selection) IDs() []int64 {
	ids := make([]int64, 0, len(s.items))
	for _, svc := range s.items {
		ids = append(ids, svc.ID)
	}
	return ids
}

func (s Selection) Items() []models.Service {
	return append([]models.Service(nil), s.items...)
}

func (s Selection) Clone() Selection {
	return Selection{items: s.Items()}
}
