package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/finbook/statements"
	"github.com/finbook/statements/renderer"
)

type plCmd struct {
	reportFlags
}

func (*plCmd) Name() string     { return "pl" }
func (*plCmd) Synopsis() string { return "compute the Profit and Loss statement" }
func (*plCmd) Usage() string {
	return `pl [-from <year>] [-to <year>] [-p <periodicity>] [-accumulated] [-diff <mode>]

  Computes income and expense per period, and the resulting
  "Profit for the year" row.
`
}

func (c *plCmd) SetFlags(f *flag.FlagSet) { c.reportFlags.SetFlags(f) }

func (c *plCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runReport(&c.reportFlags, statements.NewProfitAndLoss)
}

// runReport is the shared tail of the statement commands: decode the
// books, resolve the filters, build and print.
func runReport(r *reportFlags, build func(*statements.Ledger, *statements.Company, statements.Filters) (*statements.Statement, error)) subcommands.ExitStatus {
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
	filters, err := r.Filters(company)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	statement, err := build(ledger, company, filters)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing statement: %v\n", err)
		return subcommands.ExitFailure
	}
	md := renderer.StatementMarkdown(statement)
	if r.raw {
		fmt.Print(md)
	} else {
		printMarkdown(md)
	}
	return subcommands.ExitSuccess
}
