package statements

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

const sampleCompany = `
company: Crystal Works
abbr: CW
currency: USD
fiscal_years:
  - name: "2025"
    start: 2025-01-01
    end: 2025-12-31
  - name: "2026"
    start: 2026-01-01
    end: 2026-12-31
`

func TestDecodeCompany(t *testing.T) {
	c, err := DecodeCompany(strings.NewReader(sampleCompany))
	if err != nil {
		t.Fatalf("DecodeCompany() error = %v", err)
	}
	if c.Name != "Crystal Works" || c.Currency != "USD" {
		t.Errorf("company = %+v", c)
	}
	if len(c.FiscalYears) != 2 {
		t.Fatalf("got %d fiscal years, want 2", len(c.FiscalYears))
	}
	fy, err := c.FiscalYear("2026")
	if err != nil {
		t.Fatalf("FiscalYear(2026) error = %v", err)
	}
	if fy.Start != NewDate(2026, time.January, 1) || fy.End != NewDate(2026, time.December, 31) {
		t.Errorf("fiscal year 2026 spans %s..%s", fy.Start, fy.End)
	}
}

func TestDecodeCompanyValidates(t *testing.T) {
	testCases := []struct{ name, in string }{
		{name: "no name", in: "currency: USD"},
		{name: "no currency", in: "company: X"},
		{name: "reversed fiscal year", in: `
company: X
currency: USD
fiscal_years:
  - name: bad
    start: 2026-12-31
    end: 2026-01-01
`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeCompany(strings.NewReader(tc.in)); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestCompanyRoundTrip(t *testing.T) {
	c := testCompany()
	var buf bytes.Buffer
	if err := EncodeCompany(&buf, c); err != nil {
		t.Fatalf("EncodeCompany() error = %v", err)
	}
	back, err := DecodeCompany(&buf)
	if err != nil {
		t.Fatalf("DecodeCompany() error = %v", err)
	}
	if back.Name != c.Name || back.Currency != c.Currency || len(back.FiscalYears) != len(c.FiscalYears) {
		t.Errorf("round trip = %+v", back)
	}
	for i := range c.FiscalYears {
		if back.FiscalYears[i] != c.FiscalYears[i] {
			t.Errorf("fiscal year %d = %+v, want %+v", i, back.FiscalYears[i], c.FiscalYears[i])
		}
	}
}

func TestFiscalYearOf(t *testing.T) {
	c := testCompany()
	fy, err := c.FiscalYearOf(NewDate(2025, time.June, 15))
	if err != nil {
		t.Fatalf("FiscalYearOf() error = %v", err)
	}
	if fy.Label != "2025" {
		t.Errorf("FiscalYearOf() = %q, want 2025", fy.Label)
	}
	if _, err := c.FiscalYearOf(NewDate(2030, time.June, 15)); err == nil {
		t.Error("expected an error for a date outside all fiscal years")
	}
}
