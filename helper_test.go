package statements

import "time"

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// testCompany returns a company with two calendar fiscal years, 2025 and 2026.
func testCompany() *Company {
	return &Company{
		Name:     "Crystal Works",
		Abbr:     "CW",
		Currency: "USD",
		FiscalYears: []FiscalYear{
			{Label: "2025", Start: NewDate(2025, time.January, 1), End: NewDate(2025, time.December, 31)},
			{Label: "2026", Start: NewDate(2026, time.January, 1), End: NewDate(2026, time.December, 31)},
		},
	}
}

func debit(on Date, account string, amount float64, voucher string) GLEntry {
	return GLEntry{Posting: on, Account: account, Debit: USD(amount), Credit: USD(0), Voucher: voucher}
}

func credit(on Date, account string, amount float64, voucher string) GLEntry {
	return GLEntry{Posting: on, Account: account, Credit: USD(amount), Debit: USD(0), Voucher: voucher}
}

// testLedger builds a small two-year ledger:
//
//	2025: 1000 capital injection, 500 sales, 200 rent.
//	2026: 800 sales, 250 rent paid cash, 100 rent on credit.
//
// With closed set, a period closing voucher on 2025-12-31 moves the 300
// profit of 2025 into equity, so that 2026 opens balanced.
func testLedger(closed bool) *Ledger {
	l := NewLedger()
	accounts := []Account{
		{Name: "Cash", Number: "1100", RootType: Asset},
		{Name: "Creditors", Number: "2100", RootType: Liability},
		{Name: "Capital", Number: "3100", RootType: Equity},
		{Name: "Sales", Number: "4100", RootType: Income},
		{Name: "Rent", Number: "5100", RootType: Expense},
	}
	for _, a := range accounts {
		if err := l.DeclareAccount(a); err != nil {
			panic(err.Error())
		}
	}

	entries := []GLEntry{
		debit(NewDate(2025, time.January, 5), "Cash", 1000, "Journal Entry"),
		credit(NewDate(2025, time.January, 5), "Capital", 1000, "Journal Entry"),
		debit(NewDate(2025, time.March, 10), "Cash", 500, "Sales Invoice"),
		credit(NewDate(2025, time.March, 10), "Sales", 500, "Sales Invoice"),
		debit(NewDate(2025, time.April, 15), "Rent", 200, "Purchase Invoice"),
		credit(NewDate(2025, time.April, 15), "Cash", 200, "Purchase Invoice"),

		debit(NewDate(2026, time.January, 20), "Cash", 800, "Sales Invoice"),
		credit(NewDate(2026, time.January, 20), "Sales", 800, "Sales Invoice"),
		debit(NewDate(2026, time.February, 14), "Rent", 250, "Purchase Invoice"),
		credit(NewDate(2026, time.February, 14), "Cash", 250, "Purchase Invoice"),
		debit(NewDate(2026, time.March, 5), "Rent", 100, "Purchase Invoice"),
		credit(NewDate(2026, time.March, 5), "Creditors", 100, "Purchase Invoice"),
	}
	if closed {
		entries = append(entries,
			debit(NewDate(2025, time.December, 31), "Sales", 500, VoucherPeriodClosing),
			credit(NewDate(2025, time.December, 31), "Rent", 200, VoucherPeriodClosing),
			credit(NewDate(2025, time.December, 31), "Capital", 300, VoucherPeriodClosing),
		)
	}
	if err := l.Append(entries...); err != nil {
		panic(err.Error())
	}
	return l
}
