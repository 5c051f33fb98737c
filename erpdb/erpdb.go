// Package erpdb pulls a chart of accounts and general ledger entries
// straight out of an ERP's Postgres schema, as an alternative to JSON
// export files. It reads the conventional `accounts` and `gl_entries`
// tables; column names can be adjusted with a Query override.
package erpdb

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/finbook/statements"
)

// Queries holds the two extraction queries. The zero value uses the
// conventional schema.
type Queries struct {
	Accounts string
	Entries  string
}

// DefaultQueries target the conventional schema used by the importer
// fixtures.
var DefaultQueries = Queries{
	Accounts: `SELECT name, COALESCE(number, ''), root_type, COALESCE(parent, ''), is_group
		FROM accounts ORDER BY number, name`,
	Entries: `SELECT posting_date, account, debit, credit, COALESCE(voucher_type, ''), COALESCE(voucher_no, ''), is_opening
		FROM gl_entries ORDER BY posting_date`,
}

func (q Queries) orDefault() Queries {
	if q.Accounts == "" {
		q.Accounts = DefaultQueries.Accounts
	}
	if q.Entries == "" {
		q.Entries = DefaultQueries.Entries
	}
	return q
}

// Fetch connects to the database and loads a complete ledger. Amounts are
// denominated in the given currency.
func Fetch(ctx context.Context, dsn, currency string, queries Queries) (*statements.Ledger, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to ERP database: %w", err)
	}
	defer conn.Close(ctx)

	queries = queries.orDefault()
	ledger := statements.NewLedger()

	if err := fetchAccounts(ctx, conn, queries.Accounts, ledger); err != nil {
		return nil, err
	}
	if err := fetchEntries(ctx, conn, queries.Entries, currency, ledger); err != nil {
		return nil, err
	}
	return ledger, nil
}

func fetchAccounts(ctx context.Context, conn *pgx.Conn, query string, ledger *statements.Ledger) error {
	rows, err := conn.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("querying accounts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name, number, rootType, parent string
		var isGroup bool
		if err := rows.Scan(&name, &number, &rootType, &parent, &isGroup); err != nil {
			return fmt.Errorf("scanning account row: %w", err)
		}
		root, err := statements.ParseRootType(rootType)
		if err != nil {
			return fmt.Errorf("account %q: %w", name, err)
		}
		account := statements.Account{
			Name:     name,
			Number:   number,
			RootType: root,
			Parent:   parent,
			IsGroup:  isGroup,
		}
		if err := ledger.DeclareAccount(account); err != nil {
			return err
		}
	}
	return rows.Err()
}

func fetchEntries(ctx context.Context, conn *pgx.Conn, query, currency string, ledger *statements.Ledger) error {
	rows, err := conn.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("querying gl entries: %w", err)
	}
	defer rows.Close()

	var entries []statements.GLEntry
	for rows.Next() {
		var posting time.Time
		var account, voucher, voucherNo string
		var debit, credit decimal.Decimal
		var isOpening bool
		if err := rows.Scan(&posting, &account, &debit, &credit, &voucher, &voucherNo, &isOpening); err != nil {
			return fmt.Errorf("scanning gl row: %w", err)
		}
		entries = append(entries, statements.GLEntry{
			Posting:   statements.NewDate(posting.Date()),
			Account:   account,
			Debit:     statements.M(debit, currency),
			Credit:    statements.M(credit, currency),
			Voucher:   voucher,
			VoucherNo: voucherNo,
			IsOpening: isOpening,
		})
	}
	if err := rows.Err(); err != nil {
		return err
	}
	return ledger.Append(entries...)
}
