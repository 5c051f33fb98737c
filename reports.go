package statements

import (
	"fmt"
	"strings"
)

// Fieldtype describes how a report column is rendered.
type Fieldtype string

const (
	FieldtypeLink     Fieldtype = "Link"
	FieldtypeData     Fieldtype = "Data"
	FieldtypeCurrency Fieldtype = "Currency"
	FieldtypePercent  Fieldtype = "Percent"
)

// Column is a single column of the report table.
type Column struct {
	Fieldname string
	Label     string
	Fieldtype Fieldtype
	Options   string
	Width     int
	Hidden    bool

	// For derived difference columns, the two period column fieldnames
	// being compared (old and new).
	CompareOld string
	CompareNew string
}

// IsPeriod reports whether the column is a plain period value column
// (currency, not derived, not the trailing total).
func (c Column) IsPeriod() bool {
	return c.Fieldtype == FieldtypeCurrency && c.CompareOld == "" && c.Fieldname != "total"
}

// Row is a single data row of the report table: an account, a derived
// summary line, or a section total.
type Row struct {
	Account        string
	AccountName    string
	Indent         int
	Currency       string
	Values         map[string]Money   // period and difference columns
	Percents       map[string]Percent // percent difference columns
	Total          Money
	OpeningBalance Money
	WarnIfNegative bool
	IsTotal        bool
}

func newRow(account, currency string) Row {
	return Row{
		Account:     account,
		AccountName: account,
		Currency:    currency,
		Values:      make(map[string]Money),
		Percents:    make(map[string]Percent),
		Total:       M(0, currency),
	}
}

// SummaryCard is one headline figure shown above the report table.
type SummaryCard struct {
	Label     string
	Value     float64
	Datatype  string
	Currency  string
	Indicator string // optional color hint, e.g. "Green" or "Red"
}

// DifferenceMode selects which period pairs get difference and percent
// columns.
type DifferenceMode int

const (
	// DiffNone disables difference columns.
	DiffNone DifferenceMode = iota
	// DiffPreviousPeriod compares each period with the one before it.
	DiffPreviousPeriod
	// DiffPriorYear compares each period with the same period one year
	// earlier; pairs without a counterpart column are skipped.
	DiffPriorYear
)

func (m DifferenceMode) String() string {
	switch m {
	case DiffNone:
		return "none"
	case DiffPreviousPeriod:
		return "previous-period"
	case DiffPriorYear:
		return "prior-year"
	default:
		return "none"
	}
}

// ParseDifferenceMode parses a string into a DifferenceMode.
func ParseDifferenceMode(s string) (DifferenceMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return DiffNone, nil
	case "previous-period", "monthly":
		return DiffPreviousPeriod, nil
	case "prior-year", "yearly":
		return DiffPriorYear, nil
	default:
		return DiffNone, fmt.Errorf("unknown difference mode %q", s)
	}
}

// Filters collects the user inputs of a statement computation.
type Filters struct {
	FromFiscalYear string
	ToFiscalYear   string
	Periodicity    Periodicity
	// AccumulatedValues shows running totals instead of per-period
	// movements, and switches the chart from bars to a line.
	AccumulatedValues bool
	// PresentationCurrency overrides the company currency for display.
	PresentationCurrency string
	// ShowDifference injects difference/percent columns.
	ShowDifference DifferenceMode
}

// Currency resolves the presentation currency against the company default.
func (f Filters) Currency(c *Company) string {
	if f.PresentationCurrency != "" {
		return f.PresentationCurrency
	}
	return c.Currency
}

// Statement is the complete output of a report computation, ready for a
// table widget or a renderer.
type Statement struct {
	Title   string
	Company string
	Columns []Column
	Rows    []Row
	// Message is an advisory shown with the report, e.g. when the
	// previous fiscal year is not closed.
	Message string
	Chart   *Chart
	Summary []SummaryCard
	Periods []FiscalPeriod
}

// BuildColumns produces the base column set: the account link column, a
// hidden currency column, one currency column per period, and a trailing
// total column for non-accumulated multi-period reports.
func BuildColumns(periods []FiscalPeriod, periodicity Periodicity, accumulated bool) []Column {
	columns := []Column{
		{Fieldname: "account", Label: "Account", Fieldtype: FieldtypeLink, Options: "Account", Width: 300},
		{Fieldname: "currency", Label: "Currency", Fieldtype: FieldtypeLink, Options: "Currency", Hidden: true},
	}
	for _, p := range periods {
		columns = append(columns, Column{
			Fieldname: p.Key,
			Label:     p.Label,
			Fieldtype: FieldtypeCurrency,
			Options:   "currency",
			Width:     150,
		})
	}
	if periodicity != Yearly && !accumulated {
		columns = append(columns, Column{
			Fieldname: "total",
			Label:     "Total",
			Fieldtype: FieldtypeCurrency,
			Width:     150,
		})
	}
	return columns
}
