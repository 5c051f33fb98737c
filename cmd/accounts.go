package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/finbook/statements/renderer"
)

type accountsCmd struct {
	raw bool
}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list the chart of accounts" }
func (*accountsCmd) Usage() string {
	return `accounts

  Lists the accounts declared in the ledger file with their root type
  and hierarchy.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "print raw markdown instead of rendering it")
}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	md := renderer.AccountsMarkdown(ledger)
	if c.raw {
		fmt.Print(md)
	} else {
		printMarkdown(md)
	}
	return subcommands.ExitSuccess
}
