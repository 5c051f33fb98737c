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

type periodsCmd struct {
	from        string
	to          string
	periodicity string
	raw         bool
}

func (*periodsCmd) Name() string     { return "periods" }
func (*periodsCmd) Synopsis() string { return "list the report periods of a fiscal year range" }
func (*periodsCmd) Usage() string {
	return `periods [-from <year>] [-to <year>] [-p <periodicity>]

  Lists the periods a statement would be split into, with their column
  keys. Useful to pick pairs for difference columns.
`
}

func (c *periodsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "first fiscal year, defaults to the latest fiscal year")
	f.StringVar(&c.to, "to", "", "last fiscal year, defaults to -from")
	f.StringVar(&c.periodicity, "p", "monthly", "periodicity: monthly, quarterly, half-yearly or yearly")
	f.BoolVar(&c.raw, "raw", false, "print raw markdown instead of rendering it")
}

func (c *periodsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	company, err := DecodeCompanyFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading company settings: %v\n", err)
		return subcommands.ExitFailure
	}
	p, err := statements.ParsePeriodicity(c.periodicity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	from, to := c.from, c.to
	if from == "" {
		years := company.SortedFiscalYears()
		if len(years) == 0 {
			fmt.Fprintf(os.Stderr, "Error: company %q declares no fiscal year\n", company.Name)
			return subcommands.ExitFailure
		}
		from = years[len(years)-1].Label
	}
	if to == "" {
		to = from
	}
	periods, err := statements.PeriodList(company, from, to, p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	md := renderer.PeriodsMarkdown(periods)
	if c.raw {
		fmt.Print(md)
	} else {
		printMarkdown(md)
	}
	return subcommands.ExitSuccess
}
