package money

import (
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"empty", "", 0},
		{"integer", "15000", 15000},
		{"decimal", "120.50", 120.5},
		{"spaces", "  42 ", 42},
		{"garbage", "abc", 0},
		{"negative", "-10", 0},
		{"inf", "Inf", 0},
		{"nan", "NaN", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.in); got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize(math.NaN()); got != 0 {
		t.Errorf("Normalize(NaN) = %v, want 0", got)
	}
	if got := Normalize(math.Inf(1)); got != 0 {
		t.Errorf("Normalize(+Inf) = %v, want 0", got)
	}
	if got := Normalize(-1); got != 0 {
		t.Errorf("Normalize(-1) = %v, want 0", got)
	}
	if got := Normalize(99.9); got != 99.9 {
		t.Errorf("Normalize(99.9) = %v, want 99.9", got)
	}
}
