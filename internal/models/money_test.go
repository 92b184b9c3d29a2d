package models

import (
	"encoding/json"
	"testing"
)

func TestMoney_UnmarshalNumberAndString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Money
	}{
		{"number", `30`, 3000},
		{"number with cents", `19.9`, 1990},
		{"decimal string", `"45.50"`, 4550},
		{"empty string", `""`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Money
			if err := json.Unmarshal([]byte(tt.in), &m); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.in, err)
			}
			if m != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, m)
			}
		})
	}
}

func TestMoney_UnmarshalInvalid(t *testing.T) {
	var m Money
	if err := json.Unmarshal([]byte(`"abc"`), &m); err == nil {
		t.Fatal("expected error for non numeric value")
	}
}

func TestAppointment_OptionalTotal(t *testing.T) {
	var ap Appointment
	body := `{"agendamento_id":1,"animal_id":2,"data_hora_agendamento":"2025-06-10T14:00:00","status":"Agendado","valor_total":null,"servicos":[{"servico_id":3,"nome_servico":"Banho","preco_registrado":"30.00"}]}`
	if err := json.Unmarshal([]byte(body), &ap); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if ap.Total != nil {
		t.Fatalf("expected nil total, got %v", *ap.Total)
	}
	if len(ap.Services) != 1 || ap.Services[0].RegisteredPrice != 3000 {
		t.Fatalf("unexpected services: %+v", ap.Services)
	}
}

func TestMoney_Marshal(t *testing.T) {
	b, err := json.Marshal(Money(5025))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "50.25" {
		t.Fatalf("expected 50.25, got %s", b)
	}
}
