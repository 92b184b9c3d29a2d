package timezone

import (
	"strings"
	"time"
)

// InputLayout é a precisão aceita pelo campo datetime-local do formulário.
const InputLayout = "2006-01-02T15:04"

const wireLayout = "2006-01-02T15:04:05-07:00"

var naiveLayouts = []string{
	InputLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

// DefaultOffset é usado quando nenhuma zona é configurada.
var DefaultOffset = time.FixedZone("-03:00", -3*60*60)

// Normalize interpreta um horário sem zona como hora de parede em loc e o
// serializa com o offset fixo de loc, ex. "2025-06-10T14:00:00-03:00".
// Horários com offset próprio são convertidos para o mesmo instante em loc.
// Entradas que não parseiam seguem adiante sem alteração.
func Normalize(raw string, loc *time.Location) string {
	if loc == nil {
		loc = DefaultOffset
	}

	s := strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.In(loc).Format(wireLayout)
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.Format(wireLayout)
		}
	}
	return raw
}

// TruncateToMinute reduz o horário armazenado à precisão do campo
// datetime-local, preservando a hora de parede gravada.
func TruncateToMinute(stored string) string {
	s := strings.TrimSpace(stored)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.Format(InputLayout)
	}
	if len(s) >= len(InputLayout) {
		return s[:len(InputLayout)]
	}
	return s
}

// Parse aceita tanto RFC 3339 quanto horários sem zona (interpretados em loc).
func Parse(value string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = DefaultOffset
	}
	s := strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
