package statements

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2026-01-31", want: NewDate(2026, time.January, 31)},
		{in: "2026-1-2", want: NewDate(2026, time.January, 2)},
		{in: " 2026-06-15 ", want: NewDate(2026, time.June, 15)},
		// long format seen in some ERP exports
		{in: "2026-03-05T00:00:00.000+0100", want: NewDate(2026, time.March, 5)},
		{in: "31/01/2026", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDate(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestDateArithmetic(t *testing.T) {
	d := NewDate(2026, time.January, 31)

	if got := d.EndOfMonth(); got != NewDate(2026, time.January, 31) {
		t.Errorf("EndOfMonth() = %s", got)
	}
	if got := NewDate(2026, time.February, 10).EndOfMonth(); got != NewDate(2026, time.February, 28) {
		t.Errorf("EndOfMonth() = %s, want 2026-02-28", got)
	}
	// leap year
	if got := NewDate(2028, time.February, 10).EndOfMonth(); got != NewDate(2028, time.February, 29) {
		t.Errorf("EndOfMonth() = %s, want 2028-02-29", got)
	}
	if got := d.StartOfMonth().AddMonth(1).Add(-1); got != NewDate(2026, time.January, 31) {
		t.Errorf("period end arithmetic = %s, want 2026-01-31", got)
	}
	if got := NewDate(2026, time.December, 20).AddMonth(1); got != NewDate(2027, time.January, 20) {
		t.Errorf("AddMonth(1) = %s, want 2027-01-20", got)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2026, time.July, 4)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"2026-07-04"` {
		t.Errorf("Marshal() = %s", data)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}
