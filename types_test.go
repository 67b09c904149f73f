package carteira

import "testing"

func TestMoneyString(t *testing.T) {
	tests := []struct {
		in   Money
		want string
	}{
		{BRL(1234.56), "R$1.234,56"},
		{BRL(0), "R$0,00"},
		{BRL(-42.5), "-R$42,50"},
		{M(99.99, "USD"), "$99.99"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("Money.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := BRL(0).SignedString(); got != "-" {
		t.Errorf("zero SignedString = %q, want -", got)
	}
	if got := BRL(10).SignedString(); got != "+R$10,00" {
		t.Errorf("positive SignedString = %q", got)
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(12.345).String(); got != "12.35%" {
		t.Errorf("Percent.String() = %q", got)
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("zero SignedString = %q, want -", got)
	}
	if !Percent(10.00001).Equal(10) {
		t.Error("Equal should tolerate sub-precision noise")
	}
}

func TestQuantityString(t *testing.T) {
	tests := []struct {
		in   Quantity
		want string
	}{
		{Q(100), "100.00"},
		{Q(2.5), "2.50"},
		{Q(0.00054321), "0.00054321"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("Quantity.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-5-7")
	if err != nil {
		t.Fatalf("lenient parse failed: %v", err)
	}
	if d.String() != "2024-05-07" {
		t.Errorf("String() = %q", d.String())
	}
	if _, err := ParseDate("07/05/2024"); err == nil {
		t.Error("non-ISO date should be rejected")
	}
}
