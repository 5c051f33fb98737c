package statements

// Derived summary rows and headline cards shared by the statement builders.

// openingBalanceMessage is shown when the previous fiscal year was never
// closed into equity.
const openingBalanceMessage = "Previous Financial Year is not closed"

// UnclosedLabel names the carry-over row for unclosed fiscal years. The
// quotes keep table widgets from linking it to a real account.
const UnclosedLabel = "'Unclosed Fiscal Years Profit / Loss (Credit)'"

// CheckOpeningBalance verifies that the previous fiscal year was closed:
// just before the report start, assets must equal liabilities plus equity
// plus any not-yet-closed income and expense. It returns the residual and
// an advisory message when the residual is not zero.
func CheckOpeningBalance(asset, liability, equity, income, expense *Section) (message string, opening Money, unclosed bool) {
	opening = sectionOpening(asset)
	opening = opening.Sub(sectionOpening(liability))
	opening = opening.Sub(sectionOpening(equity))
	opening = opening.Sub(sectionOpening(income))
	opening = opening.Sub(sectionOpening(expense))
	opening = opening.Round(2)

	if opening.IsZero() {
		return "", opening, false
	}
	return openingBalanceMessage, opening, true
}

func sectionOpening(s *Section) Money {
	if s == nil {
		return Money{}
	}
	return s.OpeningBalance
}

// UnclosedRow builds the carry-over row holding the opening residual in
// every period column.
func UnclosedRow(opening Money, periods []FiscalPeriod, currency string) Row {
	row := newRow(UnclosedLabel, currency)
	row.WarnIfNegative = true
	for _, p := range periods {
		row.Values[p.Key] = opening
	}
	row.Total = opening
	return row
}

// NetProfitLoss derives the "Profit for the year" row: per period, total
// income minus total expense.
func NetProfitLoss(income, expense *Section, periods []FiscalPeriod, currency string, accumulated bool) Row {
	row := newRow("'Profit for the year'", currency)
	row.WarnIfNegative = true
	for _, p := range periods {
		net := income.Total.Values[p.Key].Sub(expense.Total.Values[p.Key])
		row.Values[p.Key] = net
		if !accumulated {
			row.Total = row.Total.Add(net)
		}
	}
	if accumulated {
		row.Total = row.Values[periods[len(periods)-1].Key]
	}
	return row
}

// ProvisionalProfitLoss derives the "Provisional Profit / Loss (Credit)"
// row of a balance sheet: per period, assets minus liabilities and equity.
// It is the profit of the running year, not yet moved into equity by a
// closing voucher.
func ProvisionalProfitLoss(asset, liability, equity *Section, periods []FiscalPeriod, currency string) (Row, bool) {
	row := newRow("'Provisional Profit / Loss (Credit)'", currency)
	row.WarnIfNegative = true
	hasValue := false
	for _, p := range periods {
		provisional := asset.Total.Values[p.Key].
			Sub(liability.Total.Values[p.Key]).
			Sub(equity.Total.Values[p.Key])
		row.Values[p.Key] = provisional
		if !provisional.IsZero() {
			hasValue = true
		}
	}
	row.Total = row.Values[periods[len(periods)-1].Key]
	return row, hasValue
}

// sectionNet folds a section's total row over the report: the last period
// when values accumulate (or are closing balances), the sum of periods
// otherwise.
func sectionNet(s *Section, periods []FiscalPeriod, lastOnly bool) float64 {
	if s == nil || len(periods) == 0 {
		return 0
	}
	if lastOnly {
		return s.Total.Values[periods[len(periods)-1].Key].AsFloat()
	}
	net := 0.0
	for _, p := range periods {
		net += s.Total.Values[p.Key].AsFloat()
	}
	return net
}

// BalanceSheetSummary builds the headline cards of a balance sheet, plus
// the primitive net position (asset minus liability and equity).
func BalanceSheetSummary(asset, liability, equity *Section, periods []FiscalPeriod, currency string) ([]SummaryCard, float64) {
	netAsset := sectionNet(asset, periods, true)
	netLiability := sectionNet(liability, periods, true)
	netEquity := sectionNet(equity, periods, true)
	provisional := netAsset - netLiability - netEquity

	cards := []SummaryCard{
		{Value: netAsset, Label: "Total Asset", Datatype: "Currency", Currency: currency},
		{Value: netLiability, Label: "Total Liability", Datatype: "Currency", Currency: currency},
		{Value: netEquity, Label: "Total Equity", Datatype: "Currency", Currency: currency},
		{Value: provisional, Label: "Provisional Profit / Loss (Credit)", Datatype: "Currency", Currency: currency, Indicator: indicator(provisional)},
	}
	return cards, provisional
}

// ProfitAndLossSummary builds the headline cards of a profit and loss
// statement.
func ProfitAndLossSummary(income, expense *Section, periods []FiscalPeriod, currency string, accumulated bool) ([]SummaryCard, float64) {
	netIncome := sectionNet(income, periods, accumulated)
	netExpense := sectionNet(expense, periods, accumulated)
	netProfit := netIncome - netExpense

	cards := []SummaryCard{
		{Value: netIncome, Label: "Total Income (Credit)", Datatype: "Currency", Currency: currency},
		{Value: netExpense, Label: "Total Expense (Debit)", Datatype: "Currency", Currency: currency},
		{Value: netProfit, Label: "Net Profit / Loss", Datatype: "Currency", Currency: currency, Indicator: indicator(netProfit)},
	}
	return cards, netProfit
}

func indicator(value float64) string {
	if value < 0 {
		return "Red"
	}
	return "Green"
}
