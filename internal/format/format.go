package format

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/BruksfildServices01/petshop-console/internal/models"
	"github.com/BruksfildServices01/petshop-console/internal/timezone"
)

const (
	Empty          = "-"
	dateTimeLayout = "02/01/2006 15:04"
)

var locale = language.BrazilianPortuguese

// Price formata em BRL ("R$ 1.234,50").
func Price(m models.Money) string {
	p := message.NewPrinter(locale)
	return p.Sprintf("R$ %.2f", m.Reais())
}

// OptionalPrice devolve "-" quando o valor não veio da API.
func OptionalPrice(m *models.Money) string {
	if m == nil {
		return Empty
	}
	return Price(*m)
}

// DateTime formata no padrão dd/MM/yyyy HH:mm, na zona informada.
func DateTime(value string, loc *time.Location) string {
	if loc == nil {
		loc = timezone.DefaultOffset
	}
	t, ok := timezone.Parse(value, loc)
	if !ok {
		return Empty
	}
	return t.In(loc).Format(dateTimeLayout)
}

// Duration no formato curto usado na tela: "45min", "1h30min", "2h".
func Duration(d time.Duration) string {
	if d <= 0 {
		return "0min"
	}
	total := int(d.Round(time.Minute) / time.Minute)
	h, m := total/60, total%60

	switch {
	case h == 0:
		return fmt.Sprintf("%dmin", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh%02dmin", h, m)
	}
}

func Minutes(min int) string {
	return Duration(time.Duration(min) * time.Minute)
}
