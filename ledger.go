package statements

import (
	"fmt"
	"iter"
	"sort"
	"strings"
)

// RootType classifies an account in the chart of accounts.
type RootType string

const (
	Asset     RootType = "Asset"
	Liability RootType = "Liability"
	Equity    RootType = "Equity"
	Income    RootType = "Income"
	Expense   RootType = "Expense"
)

// RootTypes lists the five root types in the order they appear in a
// combined statement.
var RootTypes = []RootType{Asset, Liability, Equity, Income, Expense}

// ParseRootType parses a string into a RootType.
func ParseRootType(s string) (RootType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asset":
		return Asset, nil
	case "liability":
		return Liability, nil
	case "equity":
		return Equity, nil
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown root type %q", s)
	}
}

// DebitNormal reports whether the root type increases with debits.
// Assets and expenses do; liabilities, equity and income increase with
// credits.
func (rt RootType) DebitNormal() bool { return rt == Asset || rt == Expense }

// IsBalanceSheet reports whether balances of this root type carry over
// across fiscal years.
func (rt RootType) IsBalanceSheet() bool {
	return rt == Asset || rt == Liability || rt == Equity
}

// VoucherPeriodClosing marks the entries posted by a period closing voucher,
// which move the year's profit into equity. Income and expense sections
// ignore them so closed years still show their activity.
const VoucherPeriodClosing = "Period Closing Voucher"

// Account is a single account of the chart of accounts. Parent is used for
// presentation depth only; the report engine does not roll balances up the
// tree.
type Account struct {
	Name     string
	Number   string
	RootType RootType
	Parent   string
	IsGroup  bool
}

// GLEntry is a single general ledger posting. Exactly one of Debit and
// Credit is non-zero.
type GLEntry struct {
	Posting   Date
	Account   string
	Debit     Money
	Credit    Money
	Voucher   string // voucher type, e.g. "Journal Entry"
	VoucherNo string
	IsOpening bool
	Remarks   string
}

// Ledger holds a chart of accounts and its general ledger entries.
//
// In a Ledger, entries are always in chronological order.
type Ledger struct {
	accounts map[string]Account
	entries  []GLEntry
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{accounts: make(map[string]Account)}
}

// DeclareAccount adds an account to the chart of accounts.
func (l *Ledger) DeclareAccount(a Account) error {
	if a.Name == "" {
		return fmt.Errorf("account without a name")
	}
	if _, err := ParseRootType(string(a.RootType)); err != nil {
		return fmt.Errorf("account %q: %w", a.Name, err)
	}
	if _, exists := l.accounts[a.Name]; exists {
		return fmt.Errorf("account %q is already declared", a.Name)
	}
	l.accounts[a.Name] = a
	return nil
}

// Account returns the account declared with this name, or nil if unknown.
func (l *Ledger) Account(name string) *Account {
	a, ok := l.accounts[name]
	if !ok {
		return nil
	}
	return &a
}

// Accounts iterates over the chart of accounts sorted by account number
// then name.
func (l *Ledger) Accounts() iter.Seq[Account] {
	sorted := make([]Account, 0, len(l.accounts))
	for _, a := range l.accounts {
		sorted = append(sorted, a)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Number != sorted[j].Number {
			return sorted[i].Number < sorted[j].Number
		}
		return sorted[i].Name < sorted[j].Name
	})
	return func(yield func(Account) bool) {
		for _, a := range sorted {
			if !yield(a) {
				return
			}
		}
	}
}

// Depth returns the presentation depth of an account, walking the parent
// chain. A broken chain stops counting rather than erroring.
func (l *Ledger) Depth(name string) int {
	depth := 0
	seen := map[string]bool{}
	for {
		a, ok := l.accounts[name]
		if !ok || a.Parent == "" || seen[name] {
			return depth
		}
		seen[name] = true
		name = a.Parent
		depth++
	}
}

// Validate checks a single entry for correctness against the chart of
// accounts.
func (l *Ledger) Validate(e GLEntry) error {
	if e.Posting.IsZero() {
		return fmt.Errorf("entry on account %q has no posting date", e.Account)
	}
	a, ok := l.accounts[e.Account]
	if !ok {
		return fmt.Errorf("entry posted to unknown account %q", e.Account)
	}
	if a.IsGroup {
		return fmt.Errorf("entry posted to group account %q", e.Account)
	}
	if e.Debit.IsNegative() || e.Credit.IsNegative() {
		return fmt.Errorf("entry on account %q has a negative side", e.Account)
	}
	if !e.Debit.IsZero() && !e.Credit.IsZero() {
		return fmt.Errorf("entry on account %q has both debit and credit", e.Account)
	}
	return nil
}

// Append validates entries and inserts them keeping chronological order.
func (l *Ledger) Append(entries ...GLEntry) error {
	for _, e := range entries {
		if err := l.Validate(e); err != nil {
			return err
		}
	}
	l.entries = append(l.entries, entries...)
	sort.SliceStable(l.entries, func(i, j int) bool {
		return l.entries[i].Posting.Before(l.entries[j].Posting)
	})
	return nil
}

// Entries returns the ledger entries in chronological order.
func (l *Ledger) Entries() []GLEntry { return l.entries }

// EntriesBetween iterates over entries with from <= posting date <= to.
func (l *Ledger) EntriesBetween(from, to Date) iter.Seq[GLEntry] {
	return func(yield func(GLEntry) bool) {
		for _, e := range l.entries {
			if e.Posting.Before(from) {
				continue
			}
			if e.Posting.After(to) {
				return // entries are chronological
			}
			if !yield(e) {
				return
			}
		}
	}
}
