package statements

// NewBalanceSheet computes the Balance Sheet: asset, liability and equity
// closing balances per period, the provisional profit of the running year,
// and the carry-over row when previous fiscal years were never closed.
func NewBalanceSheet(l *Ledger, c *Company, f Filters) (*Statement, error) {
	periods, err := PeriodList(c, f.FromFiscalYear, f.ToFiscalYear, f.Periodicity)
	if err != nil {
		return nil, err
	}
	currency := f.Currency(c)

	sections, err := gatherSections(l, c, f, periods, RootTypes...)
	if err != nil {
		return nil, err
	}
	asset, liability, equity := sections[Asset], sections[Liability], sections[Equity]

	// Income and expense are only computed to decide whether previous
	// fiscal years were properly closed into equity.
	message, opening, unclosed := CheckOpeningBalance(asset, liability, equity, sections[Income], sections[Expense])

	var rows []Row
	rows = appendSection(rows, asset)
	rows = appendSection(rows, liability)
	rows = appendSection(rows, equity)

	if provisional, ok := ProvisionalProfitLoss(asset, liability, equity, periods, currency); ok {
		rows = append(rows, provisional)
	}
	if unclosed {
		rows = append(rows, UnclosedRow(opening, periods, currency))
	}

	columns := BuildColumns(periods, f.Periodicity, f.AccumulatedValues)
	columns = DifferenceColumns(columns, periods, f.ShowDifference)
	ApplyDifferences(columns, rows)

	chart := ChartData(columns, currency, f.AccumulatedValues,
		ChartSeries{Name: "Assets", Row: asset.Total},
		ChartSeries{Name: "Liabilities", Row: liability.Total},
		ChartSeries{Name: "Equity", Row: equity.Total},
	)

	summary, _ := BalanceSheetSummary(asset, liability, equity, periods, currency)

	return &Statement{
		Title:   "Balance Sheet",
		Company: c.Name,
		Columns: columns,
		Rows:    rows,
		Message: message,
		Chart:   chart,
		Summary: summary,
		Periods: periods,
	}, nil
}
