package cmd

import (
	"flag"
	"fmt"

	"github.com/finbook/statements"
)

// reportFlags are the filter flags shared by the statement commands.
type reportFlags struct {
	from        string
	to          string
	periodicity string
	accumulated bool
	currency    string
	diff        string
	raw         bool
}

func (r *reportFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.from, "from", "", "first fiscal year of the report, defaults to the latest fiscal year")
	f.StringVar(&r.to, "to", "", "last fiscal year of the report, defaults to -from")
	f.StringVar(&r.periodicity, "p", "yearly", "periodicity: monthly, quarterly, half-yearly or yearly")
	f.BoolVar(&r.accumulated, "accumulated", false, "show running totals instead of per-period movements")
	f.StringVar(&r.currency, "currency", "", "presentation currency, defaults to the company currency")
	f.StringVar(&r.diff, "diff", "none", "difference columns: none, previous-period or prior-year")
	f.BoolVar(&r.raw, "raw", false, "print raw markdown instead of rendering it")
}

// Filters resolves the flags into statement filters. Empty fiscal years
// default to the company's latest one.
func (r *reportFlags) Filters(c *statements.Company) (statements.Filters, error) {
	var f statements.Filters

	p, err := statements.ParsePeriodicity(r.periodicity)
	if err != nil {
		return f, err
	}
	mode, err := statements.ParseDifferenceMode(r.diff)
	if err != nil {
		return f, err
	}

	from, to := r.from, r.to
	if from == "" {
		years := c.SortedFiscalYears()
		if len(years) == 0 {
			return f, fmt.Errorf("company %q declares no fiscal year", c.Name)
		}
		from = years[len(years)-1].Label
	}
	if to == "" {
		to = from
	}

	f = statements.Filters{
		FromFiscalYear:       from,
		ToFiscalYear:         to,
		Periodicity:          p,
		AccumulatedValues:    r.accumulated,
		PresentationCurrency: r.currency,
		ShowDifference:       mode,
	}
	return f, nil
}
