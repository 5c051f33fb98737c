package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"

	"github.com/finbook/statements/erpdb"
)

type importPgCmd struct {
	dsn      string
	accounts string
	entries  string
}

func (*importPgCmd) Name() string { return "import-pg" }
func (*importPgCmd) Synopsis() string {
	return "import the chart of accounts and postings from an ERP Postgres database"
}
func (*importPgCmd) Usage() string {
	return `import-pg [-dsn <connection string>]

  Pulls the chart of accounts and the postings from an ERP's Postgres
  schema and replaces the ledger file with them. The connection string
  defaults to the ERPDB_DSN environment variable; a .env file in the
  working directory is loaded first.
`
}

func (c *importPgCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dsn, "dsn", "", "Postgres connection string, defaults to $ERPDB_DSN")
	f.StringVar(&c.accounts, "accounts-query", "", "override the accounts query")
	f.StringVar(&c.entries, "entries-query", "", "override the postings query")
}

func (c *importPgCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// A missing .env file is fine, the DSN can come from the environment.
	_ = godotenv.Load()

	dsn := c.dsn
	if dsn == "" {
		dsn = os.Getenv("ERPDB_DSN")
	}
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "no connection string: set -dsn or ERPDB_DSN")
		return subcommands.ExitUsageError
	}

	company, err := DecodeCompanyFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading company settings: %v\n", err)
		return subcommands.ExitFailure
	}

	ledger, err := erpdb.Fetch(ctx, dsn, company.Currency, erpdb.Queries{
		Accounts: c.accounts,
		Entries:  c.entries,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching from database: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeLedgerFile(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d postings into %q.\n", len(ledger.Entries()), *ledgerFile)
	return subcommands.ExitSuccess
}
