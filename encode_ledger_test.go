package statements

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

const sampleLedger = `{"kind":"account","name":"Cash","number":"1100","root_type":"Asset"}
{"kind":"account","name":"Sales","number":"4100","root_type":"Income"}
{"kind":"gl","posting":"2026-01-20","account":"Cash","debit":800,"voucher":"Sales Invoice","voucher_no":"SINV-001"}
{"kind":"gl","posting":"2026-01-20","account":"Sales","credit":800,"voucher":"Sales Invoice","voucher_no":"SINV-001"}
`

var moneyComparer = cmp.Comparer(func(a, b Money) bool {
	return a.Decimal().Equal(b.Decimal()) && a.Currency() == b.Currency()
})

var dateComparer = cmp.Comparer(func(a, b Date) bool { return a == b })

func TestDecodeLedger(t *testing.T) {
	l, err := DecodeLedger(strings.NewReader(sampleLedger), "USD")
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
	if a := l.Account("Cash"); a == nil || a.RootType != Asset || a.Number != "1100" {
		t.Errorf("Account(Cash) = %+v", a)
	}
	want := []GLEntry{
		{Posting: NewDate(2026, time.January, 20), Account: "Cash", Debit: USD(800), Credit: M(0, "USD"), Voucher: "Sales Invoice", VoucherNo: "SINV-001"},
		{Posting: NewDate(2026, time.January, 20), Account: "Sales", Credit: USD(800), Debit: M(0, "USD"), Voucher: "Sales Invoice", VoucherNo: "SINV-001"},
	}
	if diff := cmp.Diff(want, l.Entries(), moneyComparer, dateComparer); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeLedgerForwardReference(t *testing.T) {
	// A posting line before its account declaration is legal, the chart is
	// read in full before entries are validated.
	shuffled := `{"kind":"gl","posting":"2026-01-20","account":"Cash","debit":800}
{"kind":"account","name":"Cash","root_type":"Asset"}
`
	if _, err := DecodeLedger(strings.NewReader(shuffled), "USD"); err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
}

func TestDecodeLedgerErrors(t *testing.T) {
	testCases := []struct{ name, in string }{
		{name: "unknown kind", in: `{"kind":"price","on":"2026-01-01"}` + "\n"},
		{name: "bad root type", in: `{"kind":"account","name":"X","root_type":"Funky"}` + "\n"},
		{name: "unknown account", in: `{"kind":"gl","posting":"2026-01-20","account":"Nope","debit":1}` + "\n"},
		{name: "not json", in: "hello\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeLedger(strings.NewReader(tc.in), "USD"); err == nil {
				t.Error("expected a decode error")
			}
		})
	}
}

func TestEncodeLedgerCanonical(t *testing.T) {
	l, err := DecodeLedger(strings.NewReader(sampleLedger), "USD")
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger() error = %v", err)
	}
	// sampleLedger is already canonical: accounts first, sorted by number,
	// then postings in chronological order, zero sides omitted.
	if buf.String() != sampleLedger {
		t.Errorf("EncodeLedger() =\n%s\nwant\n%s", buf.String(), sampleLedger)
	}
}

func TestLedgerRoundTrip(t *testing.T) {
	original := testLedger(true)
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, original); err != nil {
		t.Fatalf("EncodeLedger() error = %v", err)
	}
	back, err := DecodeLedger(&buf, "USD")
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
	if diff := cmp.Diff(original.Entries(), back.Entries(), moneyComparer, dateComparer); diff != "" {
		t.Errorf("entries mismatch after round trip (-want +got):\n%s", diff)
	}
}
