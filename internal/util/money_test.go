package util

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount_Valid(t *testing.T) {
	cases := map[string]string{
		"50":     "50",
		"50.5":   "50.5",
		"0.01":   "0.01",
		"-5":     "-5", // sign handling is the caller's concern
		"100.00": "100",
	}

	for in, want := range cases {
		d, err := ParseAmount(in)
		if err != nil {
			t.Errorf("ParseAmount(%q) error = %v, want nil", in, err)
			continue
		}
		if d.String() != want {
			t.Errorf("ParseAmount(%q) = %s, want %s", in, d, want)
		}
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	cases := []string{"", "abc", "$50", "1,000", "12.3.4"}

	for _, in := range cases {
		if _, err := ParseAmount(in); err == nil {
			t.Errorf("ParseAmount(%q) error = nil, want error", in)
		}
	}
}

func TestCentsFromDecimal(t *testing.T) {
	cases := map[string]int64{
		"50":     5000,
		"50.5":   5050,
		"0.01":   1,
		"12.345": 1235, // rounds half away from zero
		"12.344": 1234,
	}

	for in, want := range cases {
		d := decimal.RequireFromString(in)
		if got := CentsFromDecimal(d); got != want {
			t.Errorf("CentsFromDecimal(%s) = %d, want %d", in, got, want)
		}
	}
}

func TestFormatCents(t *testing.T) {
	if got := FormatCents(7000); got != "70.00" {
		t.Errorf("FormatCents(7000) = %q, want %q", got, "70.00")
	}
	if got := FormatCents(5); got != "0.05" {
		t.Errorf("FormatCents(5) = %q, want %q", got, "0.05")
	}
	if got := FormatCents(0); got != "0.00" {
		t.Errorf("FormatCents(0) = %q, want %q", got, "0.00")
	}
}

func TestAmountString(t *testing.T) {
	cases := map[int64]string{
		5000: "50",
		5050: "50.5",
		5055: "50.55",
		1:    "0.01",
	}

	for in, want := range cases {
		if got := AmountString(in); got != want {
			t.Errorf("AmountString(%d) = %q, want %q", in, got, want)
		}
	}
}
