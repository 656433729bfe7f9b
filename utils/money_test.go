package utils

import "testing"

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1.1, "1.10"},
		{34.449, "34.45"},
		{0, "0.00"},
		{2.45, "2.45"},
		{100, "100.00"},
		{12.575, "12.58"},
	}
	for _, c := range cases {
		if got := FormatAmount(c.in); got != c.want {
			t.Fatalf("FormatAmount(%v) got %q want %q", c.in, got, c.want)
		}
	}
}

func TestRound(t *testing.T) {
	if got := Round(34.449); got != 34.45 {
		t.Fatalf("Round(34.449) got %v want 34.45", got)
	}
	if got := Round(10.0); got != 10.0 {
		t.Fatalf("Round(10.0) got %v want 10.0", got)
	}
}
