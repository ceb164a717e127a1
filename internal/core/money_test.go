package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out string
		ok  bool
	}{
		{"1", "1", true},
		{"150.75", "150.75", true},
		{"150,75", "150.75", true},
		{" 2.50 ", "2.5", true},
		{"R$12.30", "12.3", true},
		{"R$ 12", "12", true},
		{"-20", "-20", true},
		{"0", "0", true},
		{"1e3", "1000", true},
		{"abc", "", false},
		{"1.2.3", "", false},
		{"1.000,50", "", false},
		{"", "", false},
		{"R$", "", false},
		{"1e400000000", "", false},
		{"-1e400000000", "", false},
		{"1e-400000000", "", false},
		{"1e15", "", false},
		{"999999999999999.99", "999999999999999.99", true},
		{"0.00000000000000000001", "0.00000000000000000001", true},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil || !got.Equal(decimal.RequireFromString(tc.out)) {
				t.Fatalf("%q expected %s, got %s (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err != ErrInvalidAmount {
				t.Fatalf("%q expected ErrInvalidAmount, got %v", tc.in, err)
			}
		}
	}
}

func TestFormatAmount(t *testing.T) {
	cases := map[string]string{
		"150.75": "150.75",
		"-20":    "-20.00",
		"0":      "0.00",
		"1.005":  "1.01",
		"2.5":    "2.50",
	}
	for in, want := range cases {
		if got := FormatAmount(decimal.RequireFromString(in)); got != want {
			t.Fatalf("FormatAmount(%s) = %q, want %q", in, got, want)
		}
	}
}
