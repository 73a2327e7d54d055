package currency

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1234.50", 1234.5, true},
		{" 99 ", 99, true},
		{"", 0, false},
		{"N/A", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseAmount(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseAmount(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"$120/night", 120, true},
		{"245.50 USD / night", 245.5, true},
		{"from 80", 80, true},
		{"Price not available", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := ExtractAmount(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ExtractAmount(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		amount float64
		code   string
		want   string
	}{
		{0, "USD", "USD 0.00"},
		{999.5, "USD", "USD 999.50"},
		{1234567.891, "EUR", "EUR 1,234,567.89"},
		{-1500, "", "-1,500.00"},
	}

	for _, tt := range tests {
		if got := Format(tt.amount, tt.code); got != tt.want {
			t.Errorf("Format(%v, %q) = %q, want %q", tt.amount, tt.code, got, tt.want)
		}
	}
}
