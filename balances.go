package statements

import "fmt"

// SectionOptions tunes how balances are extracted for one root type.
type SectionOptions struct {
	// Accumulated turns period movements into running totals (year to
	// date). It only affects income and expense sections: balance sheet
	// sections always report the closing balance at period end.
	Accumulated bool
	// IgnoreClosingEntries skips period closing vouchers, so income and
	// expense of a closed year still show their activity.
	IgnoreClosingEntries bool
	// OnlyCurrentFiscalYear measures opening balances from the first
	// period's fiscal year start instead of the beginning of the ledger.
	OnlyCurrentFiscalYear bool
}

// Section is the computed balance block for a single root type: one row per
// active account plus a grand total row.
type Section struct {
	RootType RootType
	Rows     []Row
	Total    Row
	// OpeningBalance is the signed balance of the whole section just
	// before the first period. It drives the unclosed fiscal year check.
	OpeningBalance Money
}

// SectionOf aggregates the ledger into per-account, per-period values for
// one root type. Amounts are signed by the normal balance side of the root
// type: a liability credit shows positive.
func SectionOf(l *Ledger, root RootType, periods []FiscalPeriod, currency string, opts SectionOptions) (*Section, error) {
	if len(periods) == 0 {
		return nil, fmt.Errorf("cannot compute %s section without periods", root)
	}
	reportStart := periods[0].From
	openingFrom := Date{} // beginning of the ledger
	if opts.OnlyCurrentFiscalYear {
		openingFrom = periods[0].YearStart
	}

	section := &Section{
		RootType: root,
		Total:    newRow(fmt.Sprintf("Total %s (%s)", root, normalSide(root)), currency),
	}
	section.Total.IsTotal = true
	section.OpeningBalance = M(0, currency)

	for account := range l.Accounts() {
		if account.RootType != root || account.IsGroup {
			continue
		}
		row := newRow(account.Name, currency)
		row.AccountName = account.Name
		row.Indent = l.Depth(account.Name)

		opening := M(0, currency)
		movements := make([]Money, len(periods))
		for i := range movements {
			movements[i] = M(0, currency)
		}

		for _, e := range l.Entries() {
			if e.Account != account.Name {
				continue
			}
			if opts.IgnoreClosingEntries && e.Voucher == VoucherPeriodClosing {
				continue
			}
			amount := signedAmount(e, root)
			if e.Posting.Before(reportStart) {
				if openingFrom.IsZero() || !e.Posting.Before(openingFrom) {
					opening = opening.Add(amount)
				}
				continue
			}
			for i, p := range periods {
				if !e.Posting.Before(p.From) && !e.Posting.After(p.To) {
					movements[i] = movements[i].Add(amount)
					break
				}
			}
		}

		row.OpeningBalance = opening
		fillRowValues(&row, periods, opening, movements, root, opts)

		if rowIsEmpty(row, periods) {
			continue
		}
		section.Rows = append(section.Rows, row)
	}

	// Grand total row and section opening.
	for _, row := range section.Rows {
		for _, p := range periods {
			section.Total.Values[p.Key] = section.Total.Values[p.Key].Add(row.Values[p.Key])
		}
		section.Total.Total = section.Total.Total.Add(row.Total)
		section.Total.OpeningBalance = section.Total.OpeningBalance.Add(row.OpeningBalance)
		section.OpeningBalance = section.OpeningBalance.Add(row.OpeningBalance)
	}
	return section, nil
}

// fillRowValues turns raw period movements into the displayed values.
// Balance sheet accounts show the closing balance at each period end;
// income and expense show the movement, or a running total when accumulated.
func fillRowValues(row *Row, periods []FiscalPeriod, opening Money, movements []Money, root RootType, opts SectionOptions) {
	if root.IsBalanceSheet() {
		running := opening
		for i, p := range periods {
			running = running.Add(movements[i])
			row.Values[p.Key] = running
		}
		row.Total = row.Values[periods[len(periods)-1].Key]
		return
	}

	if opts.Accumulated {
		// Running totals are year-to-date: they restart at every fiscal
		// year boundary.
		running := M(0, row.Currency)
		for i, p := range periods {
			if i > 0 && p.YearStart != periods[i-1].YearStart {
				running = M(0, row.Currency)
			}
			running = running.Add(movements[i])
			row.Values[p.Key] = running
		}
		row.Total = row.Values[periods[len(periods)-1].Key]
		return
	}

	total := M(0, row.Currency)
	for i, p := range periods {
		row.Values[p.Key] = movements[i]
		total = total.Add(movements[i])
	}
	row.Total = total
}

// rowIsEmpty reports whether an account had no balance and no activity over
// the whole report, so the row can be dropped.
func rowIsEmpty(row Row, periods []FiscalPeriod) bool {
	if !row.OpeningBalance.IsZero() || !row.Total.IsZero() {
		return false
	}
	for _, p := range periods {
		if !row.Values[p.Key].IsZero() {
			return false
		}
	}
	return true
}

// signedAmount returns the entry amount signed by the normal balance side
// of the root type.
func signedAmount(e GLEntry, root RootType) Money {
	if root.DebitNormal() {
		return e.Debit.Sub(e.Credit)
	}
	return e.Credit.Sub(e.Debit)
}

func normalSide(root RootType) string {
	if root.DebitNormal() {
		return "Debit"
	}
	return "Credit"
}
