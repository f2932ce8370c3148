//go:build unit

package output

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	v := decimal.NewFromFloat(1234.567)
	got := FormatCurrency(v)
	want := "$1234.57"
	if got != want {
		t.Errorf("FormatCurrency(%v) = %q, want %q", v, got, want)
	}
}

func TestFormatPercentage(t *testing.T) {
	v := decimal.NewFromFloat(12.3456)
	got := FormatPercentage(v)
	want := "12.35%"
	if got != want {
		t.Errorf("FormatPercentage(%v) = %q, want %q", v, got, want)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := map[int]string{0: "0m", 11: "11m", 12: "1y", 31: "2y 7m", 600: "50y"}
	for months, want := range cases {
		if got := FormatDuration(months); got != want {
			t.Errorf("FormatDuration(%d) = %q, want %q", months, got, want)
		}
	}
}

func TestIntAndBoolToString(t *testing.T) {
	if got, want := intToString(600), "600"; got != want {
		t.Errorf("intToString(600) = %q, want %q", got, want)
	}
	if got, want := boolToString(true), "true"; got != want {
		t.Errorf("boolToString(true) = %q, want %q", got, want)
	}
	if got, want := boolToString(false), "false"; got != want {
		t.Errorf("boolToString(false) = %q, want %q", got, want)
	}
}
