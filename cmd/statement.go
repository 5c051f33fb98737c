package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/finbook/statements"
)

type statementCmd struct {
	reportFlags
}

func (*statementCmd) Name() string { return "statement" }
func (*statementCmd) Synopsis() string {
	return "compute the combined statement over all five root types"
}
func (*statementCmd) Usage() string {
	return `statement [-from <year>] [-to <year>] [-p <periodicity>] [-accumulated] [-diff <mode>]

  Computes one section per root type: asset, liability, equity closing
  balances and income, expense movements, side by side.
`
}

func (c *statementCmd) SetFlags(f *flag.FlagSet) { c.reportFlags.SetFlags(f) }

func (c *statementCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runReport(&c.reportFlags, statements.NewStatement)
}
