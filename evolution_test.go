package carteira

import (
	"math"
	"reflect"
	"testing"
)

func TestDedupe(t *testing.T) {
	in := []EvolutionPoint{
		{Date: "01/24", TotalValue: 100},
		{Date: "01/24", TotalValue: 150},
		{Date: "02/24", TotalValue: 200},
	}
	want := []EvolutionPoint{
		{Date: "01/24", TotalValue: 150},
		{Date: "02/24", TotalValue: 200},
	}

	got := Dedupe(in)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Dedupe() = %v, want %v (last occurrence wins, order kept)", got, want)
	}

	// idempotence
	if again := Dedupe(got); !reflect.DeepEqual(again, got) {
		t.Errorf("Dedupe(Dedupe(x)) = %v, want %v", again, got)
	}
}

func TestDedupe_Empty(t *testing.T) {
	if got := Dedupe(nil); len(got) != 0 {
		t.Errorf("Dedupe(nil) = %v, want empty", got)
	}
}

func TestShape(t *testing.T) {
	in := []EvolutionPoint{
		{Date: "Feb/24", InvestedAmount: 100, TotalValue: 110},
		{Date: "Feb/24", InvestedAmount: 120, TotalValue: 150},
		{Date: "Aug/24", InvestedAmount: 200, TotalValue: 180},
	}
	want := []EvolutionEntry{
		{Date: "Fev/24", InvestedAmount: 120, CapitalGain: 30, TotalValue: 150},
		{Date: "Ago/24", InvestedAmount: 200, CapitalGain: -20, TotalValue: 180},
	}
	if got := Shape(in); !reflect.DeepEqual(got, want) {
		t.Errorf("Shape() = %v, want %v", got, want)
	}
}

func TestFormatChartDate(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Jan/24", "Jan/24"},
		{"Feb/24", "Fev/24"},
		{"Apr/25", "Abr/25"},
		{"May/25", "Mai/25"},
		{"Aug/25", "Ago/25"},
		{"Sep/25", "Set/25"},
		{"Oct/25", "Out/25"},
		{"Dec/25", "Dez/25"},
		{"Foo/25", "Foo/25"}, // unknown month passes through
		{"2024-01", "2024-01"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FormatChartDate(tt.in); got != tt.want {
			t.Errorf("FormatChartDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTrailingReturn(t *testing.T) {
	tests := []struct {
		name   string
		points []EvolutionPoint
		want   Percent
		ok     bool
	}{
		{
			name: "growth from first positive point",
			points: []EvolutionPoint{
				{Date: "01/24", TotalValue: 100},
				{Date: "02/24", TotalValue: 150},
			},
			want: 50, ok: true,
		},
		{
			name: "leading zero-value points are skipped",
			points: []EvolutionPoint{
				{Date: "01/24", TotalValue: 0},
				{Date: "02/24", TotalValue: 200},
				{Date: "03/24", TotalValue: 100},
			},
			want: -50, ok: true,
		},
		{
			name:   "single point is undefined",
			points: []EvolutionPoint{{Date: "01/24", TotalValue: 100}},
			ok:     false,
		},
		{
			name:   "empty series is undefined",
			points: nil,
			ok:     false,
		},
		{
			name: "all zero values is undefined, not zero",
			points: []EvolutionPoint{
				{Date: "01/24", TotalValue: 0},
				{Date: "02/24", TotalValue: 0},
			},
			ok: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TrailingReturn(tt.points)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("return = %v, want %v", got, tt.want)
			}
			if math.IsNaN(float64(got)) {
				t.Error("return must never be NaN")
			}
		})
	}
}
