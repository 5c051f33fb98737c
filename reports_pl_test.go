package statements

import (
	"testing"
)

func findRow(t *testing.T, rows []Row, account string) Row {
	t.Helper()
	for _, r := range rows {
		if r.Account == account {
			return r
		}
	}
	t.Fatalf("no row named %q", account)
	return Row{}
}

func TestNewProfitAndLoss(t *testing.T) {
	l := testLedger(true)
	c := testCompany()
	f := Filters{FromFiscalYear: "2026", ToFiscalYear: "2026", Periodicity: Monthly}

	s, err := NewProfitAndLoss(l, c, f)
	if err != nil {
		t.Fatalf("NewProfitAndLoss() error = %v", err)
	}
	if s.Title != "Profit and Loss Statement" || s.Company != "Crystal Works" {
		t.Errorf("header = %q / %q", s.Title, s.Company)
	}
	if s.Message != "" {
		t.Errorf("unexpected message %q, the books are closed", s.Message)
	}

	// Row order: income accounts, income total, expense accounts, expense
	// total, net profit.
	wantOrder := []string{"Sales", "Total Income (Credit)", "Rent", "Total Expense (Debit)", "'Profit for the year'"}
	if len(s.Rows) != len(wantOrder) {
		t.Fatalf("got %d rows, want %d", len(s.Rows), len(wantOrder))
	}
	for i, want := range wantOrder {
		if s.Rows[i].Account != want {
			t.Errorf("row %d = %q, want %q", i, s.Rows[i].Account, want)
		}
	}

	net := findRow(t, s.Rows, "'Profit for the year'")
	testCases := []struct {
		key  string
		want Money
	}{
		{"jan_2026", USD(800)},
		{"feb_2026", USD(-250)},
		{"mar_2026", USD(-100)},
		{"apr_2026", USD(0)},
	}
	for _, tc := range testCases {
		if got := net.Values[tc.key]; !got.Equal(tc.want) {
			t.Errorf("net[%s] = %s, want %s", tc.key, got, tc.want)
		}
	}
	if !net.Total.Equal(USD(450)) {
		t.Errorf("net total = %s, want $450.00", net.Total)
	}

	// Monthly non-accumulated reports carry a trailing total column.
	if s.Columns[len(s.Columns)-1].Fieldname != "total" {
		t.Errorf("last column = %q, want total", s.Columns[len(s.Columns)-1].Fieldname)
	}

	if s.Chart == nil || s.Chart.Type != "bar" {
		t.Fatalf("chart = %+v, want a bar chart", s.Chart)
	}
	if len(s.Chart.Datasets) != 3 {
		t.Errorf("got %d chart datasets, want Income, Expense and Net", len(s.Chart.Datasets))
	}
	if len(s.Chart.Labels) != 12 {
		t.Errorf("got %d chart labels, want 12 months", len(s.Chart.Labels))
	}

	if len(s.Summary) != 3 {
		t.Fatalf("got %d summary cards, want 3", len(s.Summary))
	}
	if s.Summary[0].Label != "Total Income (Credit)" || s.Summary[0].Value != 800 {
		t.Errorf("income card = %+v", s.Summary[0])
	}
	if s.Summary[1].Value != 350 {
		t.Errorf("expense card = %+v", s.Summary[1])
	}
	if s.Summary[2].Value != 450 || s.Summary[2].Indicator != "Green" {
		t.Errorf("net card = %+v", s.Summary[2])
	}
}

func TestNewProfitAndLossAccumulated(t *testing.T) {
	l := testLedger(true)
	c := testCompany()
	f := Filters{FromFiscalYear: "2026", ToFiscalYear: "2026", Periodicity: Monthly, AccumulatedValues: true}

	s, err := NewProfitAndLoss(l, c, f)
	if err != nil {
		t.Fatalf("NewProfitAndLoss() error = %v", err)
	}
	net := findRow(t, s.Rows, "'Profit for the year'")
	// Running totals: 800, then 550 after the February rent, then 450.
	if !net.Values["jan_2026"].Equal(USD(800)) {
		t.Errorf("net[jan] = %s, want $800.00", net.Values["jan_2026"])
	}
	if !net.Values["feb_2026"].Equal(USD(550)) {
		t.Errorf("net[feb] = %s, want $550.00", net.Values["feb_2026"])
	}
	if !net.Values["dec_2026"].Equal(USD(450)) {
		t.Errorf("net[dec] = %s, want $450.00", net.Values["dec_2026"])
	}
	if !net.Total.Equal(USD(450)) {
		t.Errorf("net total = %s, want the last running total", net.Total)
	}

	// Accumulated reports chart a line and drop the total column.
	if s.Chart.Type != "line" {
		t.Errorf("chart type = %q, want line", s.Chart.Type)
	}
	for _, col := range s.Columns {
		if col.Fieldname == "total" {
			t.Error("accumulated report should not have a total column")
		}
	}
}

func TestNewProfitAndLossAccumulatedTwoYears(t *testing.T) {
	l := testLedger(true)
	c := testCompany()
	f := Filters{FromFiscalYear: "2025", ToFiscalYear: "2026", Periodicity: Monthly, AccumulatedValues: true}

	s, err := NewProfitAndLoss(l, c, f)
	if err != nil {
		t.Fatalf("NewProfitAndLoss() error = %v", err)
	}

	sales := findRow(t, s.Rows, "Sales")
	if !sales.Values["dec_2025"].Equal(USD(500)) {
		t.Errorf("Sales[dec_2025] = %s, want $500.00", sales.Values["dec_2025"])
	}
	if !sales.Values["jan_2026"].Equal(USD(800)) {
		t.Errorf("Sales[jan_2026] = %s, want $800.00: the running total restarts with the fiscal year", sales.Values["jan_2026"])
	}

	net := findRow(t, s.Rows, "'Profit for the year'")
	testCases := []struct {
		key  string
		want Money
	}{
		{"dec_2025", USD(300)},
		{"jan_2026", USD(800)},
		{"dec_2026", USD(450)},
	}
	for _, tc := range testCases {
		if got := net.Values[tc.key]; !got.Equal(tc.want) {
			t.Errorf("net[%s] = %s, want %s", tc.key, got, tc.want)
		}
	}
	if !net.Total.Equal(USD(450)) {
		t.Errorf("net total = %s, want the last running total", net.Total)
	}
}

func TestNewProfitAndLossWithDifferences(t *testing.T) {
	l := testLedger(true)
	c := testCompany()
	f := Filters{
		FromFiscalYear: "2026", ToFiscalYear: "2026",
		Periodicity:    Quarterly,
		ShowDifference: DiffPreviousPeriod,
	}

	s, err := NewProfitAndLoss(l, c, f)
	if err != nil {
		t.Fatalf("NewProfitAndLoss() error = %v", err)
	}
	sales := findRow(t, s.Rows, "Sales")
	// Q1 sales 800, Q2 none.
	if got := sales.Values["diff_with_mar_2026_and_jun_2026"]; !got.Equal(USD(-800)) {
		t.Errorf("diff = %s, want -$800.00", got)
	}
	if got := sales.Percents["percent_with_mar_2026_and_jun_2026"]; !got.Equal(-100) {
		t.Errorf("percent = %s, want -100.00%%", got)
	}
}
