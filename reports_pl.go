package statements

// NewProfitAndLoss computes the Profit and Loss statement: income and
// expense sections per period and the derived "Profit for the year" row.
func NewProfitAndLoss(l *Ledger, c *Company, f Filters) (*Statement, error) {
	periods, err := PeriodList(c, f.FromFiscalYear, f.ToFiscalYear, f.Periodicity)
	if err != nil {
		return nil, err
	}
	currency := f.Currency(c)

	sections, err := gatherSections(l, c, f, periods, Income, Expense)
	if err != nil {
		return nil, err
	}
	income, expense := sections[Income], sections[Expense]

	net := NetProfitLoss(income, expense, periods, currency, f.AccumulatedValues)

	var rows []Row
	rows = appendSection(rows, income)
	rows = appendSection(rows, expense)
	rows = append(rows, net)

	columns := BuildColumns(periods, f.Periodicity, f.AccumulatedValues)
	columns = DifferenceColumns(columns, periods, f.ShowDifference)
	ApplyDifferences(columns, rows)

	chart := ChartData(columns, currency, f.AccumulatedValues,
		ChartSeries{Name: "Income", Row: income.Total},
		ChartSeries{Name: "Expense", Row: expense.Total},
		ChartSeries{Name: "Net Profit/Loss", Row: net},
	)

	summary, _ := ProfitAndLossSummary(income, expense, periods, currency, f.AccumulatedValues)

	return &Statement{
		Title:   "Profit and Loss Statement",
		Company: c.Name,
		Columns: columns,
		Rows:    rows,
		Chart:   chart,
		Summary: summary,
		Periods: periods,
	}, nil
}
