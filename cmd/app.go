// Package cmd implements the CLI application to compute financial
// statements from a ledger file.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/finbook/statements"
)

// Commands lists the subcommands of the application. A main package calls
// Register on each and Execute on the user-selected one.
var Commands = []subcommands.Command{
	&plCmd{},
	&bsCmd{},
	&statementCmd{},
	&periodsCmd{},
	&accountsCmd{},
	&fmtCmd{},
	&importCmd{},
	&importPgCmd{},
	&explainCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var companyFile = flag.String("company-file", "company.yaml", "Path to the company settings file (YAML format)")
var ledgerFile = flag.String("ledger-file", "ledger.jsonl", "Path to the ledger file containing accounts and postings (JSONL format)")

// DecodeCompanyFile reads the company settings from the app company file.
func DecodeCompanyFile() (*statements.Company, error) {
	f, err := os.Open(*companyFile)
	if err != nil {
		return nil, fmt.Errorf("opening company settings %q: %w", *companyFile, err)
	}
	defer f.Close()
	return statements.DecodeCompany(f)
}

// DecodeLedgerFile reads the ledger from the app ledger file, denominated
// in the company currency.
func DecodeLedgerFile(c *statements.Company) (*statements.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if err != nil {
		return nil, fmt.Errorf("opening ledger %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	ledger, err := statements.DecodeLedger(f, c.Currency)
	if err != nil {
		return nil, fmt.Errorf("decoding ledger %q: %w", *ledgerFile, err)
	}
	return ledger, nil
}

// printMarkdown renders markdown to the terminal. If rendering fails the
// raw markdown is printed instead, which is still readable.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
