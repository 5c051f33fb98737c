package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/finbook/statements"
)

type importCmd struct {
	mapping string
	file    string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import postings from an ERP JSON export" }
func (*importCmd) Usage() string {
	return `import -mapping <file> [-file <export>]

  Reads a JSON export, extracts the postings at the jsonpath locations
  given in the mapping file, and appends them to the ledger. Reads the
  export from stdin when -file is "-".
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.mapping, "mapping", "", "YAML mapping file with jsonpath expressions")
	f.StringVar(&c.file, "file", "-", "JSON export to read, or - for stdin")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.mapping == "" {
		fmt.Fprintln(os.Stderr, "-mapping is required")
		return subcommands.ExitUsageError
	}

	mf, err := os.Open(c.mapping)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening mapping file: %v\n", err)
		return subcommands.ExitFailure
	}
	mapping, err := statements.DecodeImportMapping(mf)
	mf.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading mapping file: %v\n", err)
		return subcommands.ExitFailure
	}

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

	var in io.Reader = os.Stdin
	if c.file != "-" {
		ef, err := os.Open(c.file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening export file: %v\n", err)
			return subcommands.ExitFailure
		}
		defer ef.Close()
		in = ef
	}

	entries, err := statements.ImportGLEntries(in, *mapping, company.Currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error extracting postings: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := ledger.Append(entries...); err != nil {
		fmt.Fprintf(os.Stderr, "Error validating postings: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := EncodeLedgerFile(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d postings into %q.\n", len(entries), *ledgerFile)
	return subcommands.ExitSuccess
}
