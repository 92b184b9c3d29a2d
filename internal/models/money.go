package models

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// Money é um valor em centavos. A API serializa Decimal ora como número,
// ora como string ("30.00"); os dois formatos são aceitos.
type Money int64

func NewMoney(reais float64) Money {
	return Money(math.Round(reais * 100))
}

func (m Money) Reais() float64 {
	return float64(m) / 100
}

// Decimal devolve o valor como o backend o escreve, ex. "30.00".
func (m Money) Decimal() string {
	return strconv.FormatFloat(m.Reais(), 'f', 2, 64)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal()), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	b = bytes.Trim(b, `"`)
	if len(b) == 0 {
		*m = 0
		return nil
	}

	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("invalid money value %q: %w", string(b), err)
	}

	*m = NewMoney(f)
	return nil
}
