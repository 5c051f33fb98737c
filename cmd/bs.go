package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/finbook/statements"
)

type bsCmd struct {
	reportFlags
}

func (*bsCmd) Name() string     { return "bs" }
func (*bsCmd) Synopsis() string { return "compute the Balance Sheet" }
func (*bsCmd) Usage() string {
	return `bs [-from <year>] [-to <year>] [-p <periodicity>] [-accumulated] [-diff <mode>]

  Computes asset, liability and equity closing balances per period,
  the provisional profit of the running year, and warns when previous
  fiscal years were never closed into equity.
`
}

func (c *bsCmd) SetFlags(f *flag.FlagSet) { c.reportFlags.SetFlags(f) }

func (c *bsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runReport(&c.reportFlags, statements.NewBalanceSheet)
}
