package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/finbook/statements"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "rewrite the ledger file in canonical form" }
func (*fmtCmd) Usage() string {
	return `fmt:
  rewrites the ledger file in canonical form, accounts first then
  postings in chronological order.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	company, err := DecodeCompanyFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading company settings: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger, err := DecodeLedgerFile(company)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeLedgerFile(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Ledger file %q has been formatted.\n", *ledgerFile)
	return subcommands.ExitSuccess
}

// EncodeLedgerFile writes the ledger back to the app ledger file.
func EncodeLedgerFile(ledger *statements.Ledger) error {
	f, err := os.OpenFile(*ledgerFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("opening ledger file %q for writing: %w", *ledgerFile, err)
	}
	defer f.Close()
	return statements.EncodeLedger(f, ledger)
}
