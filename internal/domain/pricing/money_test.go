package pricing

import "testing"

func TestRound2(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "no-op on cents", in: 12.34, want: 12.34},
		{name: "half rounds away from zero", in: 2.345, want: 2.35},
		{name: "negative half rounds away from zero", in: -2.345, want: -2.35},
		{name: "truncates drift", in: 0.1 + 0.2, want: 0.3},
		{name: "integer", in: 10, want: 10},
		{name: "zero", in: 0, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Round2(tc.in)
			if got != tc.want {
				t.Fatalf("Round2(%v) = %v, want %v", tc.in, got, tc.want)
			}
			if again := Round2(got); again != got {
				t.Fatalf("Round2 not idempotent: %v -> %v", got, again)
			}
		})
	}
}

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{in: 0, want: "$0.00"},
		{in: 38, want: "$38.00"},
		{in: 1234.5, want: "$1,234.50"},
		{in: -3.4, want: "-$3.40"},
	}

	for _, tc := range cases {
		if got := FormatMoney(tc.in); got != tc.want {
			t.Fatalf("FormatMoney(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
