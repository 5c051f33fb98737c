package statements

import (
	"fmt"
	"strings"
)

// FiscalPeriod is a single reporting period within a statement. Its Key
// names the corresponding column fieldname in the report table.
type FiscalPeriod struct {
	Key       string
	Label     string
	From, To  Date
	YearStart Date // start of the fiscal year the period belongs to
}

// PeriodList generates the contiguous reporting periods covering the fiscal
// year range [fromYear, toYear] of the company, stepping by the periodicity.
// The last period is clamped to the fiscal year end, so a fiscal year that
// is not a multiple of the period length yields a shorter trailing period.
func PeriodList(c *Company, fromYear, toYear string, p Periodicity) ([]FiscalPeriod, error) {
	fromFY, err := c.FiscalYear(fromYear)
	if err != nil {
		return nil, err
	}
	toFY, err := c.FiscalYear(toYear)
	if err != nil {
		return nil, err
	}
	if toFY.End.Before(fromFY.Start) {
		return nil, fmt.Errorf("fiscal year %q ends before %q starts", toYear, fromYear)
	}

	var periods []FiscalPeriod
	for start := fromFY.Start; !start.After(toFY.End); {
		to := start.StartOfMonth().AddMonth(p.Months()).Add(-1)
		if to.After(toFY.End) {
			to = toFY.End
		}

		fy := fiscalYearAround(c, start, fromFY)
		period := FiscalPeriod{From: start, To: to, YearStart: fy.Start}
		period.Key, period.Label = periodName(p, period, fy)
		periods = append(periods, period)

		start = to.Add(1)
	}
	return periods, nil
}

// fiscalYearAround finds the fiscal year containing d, falling back to the
// given default when the company settings have a gap.
func fiscalYearAround(c *Company, d Date, fallback FiscalYear) FiscalYear {
	if fy, err := c.FiscalYearOf(d); err == nil {
		return fy
	}
	return fallback
}

// periodName derives the column key and human label for a period.
// Monthly, quarterly and half-yearly periods are named after their end
// month; yearly periods carry the fiscal year name.
func periodName(p Periodicity, period FiscalPeriod, fy FiscalYear) (key, label string) {
	if p == Yearly {
		return sanitizeKey(fy.Label), fy.Label
	}
	return strings.ToLower(period.To.Format("Jan_2006")), period.To.Format("Jan 2006")
}

// sanitizeKey lowers a label into a fieldname-safe key.
func sanitizeKey(label string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(label) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteRune('_')
				lastUnderscore = true
			}
		}
	}
	return strings.Trim(b.String(), "_")
}

// priorYearKey returns the key of the period ending one year before the
// given one, if present in the list. Periods are matched on end month so
// that leap February still pairs up.
func priorYearKey(periods []FiscalPeriod, of FiscalPeriod) (string, bool) {
	for _, p := range periods {
		if p.To.Year() == of.To.Year()-1 && p.To.Month() == of.To.Month() {
			return p.Key, true
		}
	}
	return "", false
}
