package statements

import "fmt"

// Shared assembly for the statement builders: section gathering, row
// flattening and difference application.

// gatherSections computes one section per requested root type.
func gatherSections(l *Ledger, c *Company, f Filters, periods []FiscalPeriod, roots ...RootType) (map[RootType]*Section, error) {
	currency := f.Currency(c)
	sections := make(map[RootType]*Section, len(roots))
	for _, root := range roots {
		opts := SectionOptions{
			Accumulated: f.AccumulatedValues,
			// Income and expense of a closed year are emptied into
			// equity by the closing voucher; skip those vouchers and
			// measure the opening within the fiscal year only.
			IgnoreClosingEntries:  !root.IsBalanceSheet(),
			OnlyCurrentFiscalYear: !root.IsBalanceSheet(),
		}
		s, err := SectionOf(l, root, periods, currency, opts)
		if err != nil {
			return nil, err
		}
		sections[root] = s
	}
	return sections, nil
}

// appendSection flattens a section into report rows: the account rows then
// the section total. Empty sections contribute nothing.
func appendSection(rows []Row, s *Section) []Row {
	if s == nil || len(s.Rows) == 0 {
		return rows
	}
	rows = append(rows, s.Rows...)
	return append(rows, s.Total)
}

// NewStatement computes the combined financial statement: all five root
// type sections per period, the unclosed fiscal years carry-over, the
// headline cards and the chart. It is the most general of the builders;
// NewProfitAndLoss and NewBalanceSheet are its two focused variants.
func NewStatement(l *Ledger, c *Company, f Filters) (*Statement, error) {
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
	income, expense := sections[Income], sections[Expense]

	message, opening, unclosed := CheckOpeningBalance(asset, liability, equity, income, expense)

	var rows []Row
	for _, root := range RootTypes {
		rows = appendSection(rows, sections[root])
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
		ChartSeries{Name: "Income", Row: income.Total},
		ChartSeries{Name: "Expense", Row: expense.Total},
	)

	summary := []SummaryCard{
		{Value: sectionNet(asset, periods, true), Label: "Total Asset", Datatype: "Currency", Currency: currency},
		{Value: sectionNet(liability, periods, true), Label: "Total Liability", Datatype: "Currency", Currency: currency},
		{Value: sectionNet(equity, periods, true), Label: "Total Equity", Datatype: "Currency", Currency: currency},
		{Value: sectionNet(income, periods, f.AccumulatedValues), Label: "Total Income", Datatype: "Currency", Currency: currency},
		{Value: sectionNet(expense, periods, f.AccumulatedValues), Label: "Total Expense", Datatype: "Currency", Currency: currency},
	}

	return &Statement{
		Title:   fmt.Sprintf("Financial Statement (%s)", f.Periodicity),
		Company: c.Name,
		Columns: columns,
		Rows:    rows,
		Message: message,
		Chart:   chart,
		Summary: summary,
		Periods: periods,
	}, nil
}
