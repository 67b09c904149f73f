package carteira

import "testing"

func TestTranslate(t *testing.T) {
	tests := []struct{ in, want string }{
		{"brazil", "Brasil"},
		{"BRAZIL", "Brasil"}, // case-insensitive
		{"Brazil", "Brasil"},
		{"usa", "EUA"},
		{"crypto", "Cripto"},
		{"stock", "Ações"},
		{"etf", "ETFs"},
		{"etfs", "ETFs"},
		{"renda fixa", "Renda Fixa"},
		{"fixed_income", "Renda Fixa"},
		{"criptomoedas", "Criptomoedas"},
		{"unknown_key", "unknown_key"}, // passthrough
		{"PETR4", "PETR4"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Translate(tt.in); got != tt.want {
			t.Errorf("Translate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
