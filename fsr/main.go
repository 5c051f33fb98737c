package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"

	"github.com/finbook/statements/cmd"
)

func main() {
	// Shell completion: when invoked by the completion hook this prints
	// candidates and exits, otherwise it is a no-op.
	completer := &complete.Command{Sub: map[string]*complete.Command{}}
	for _, c := range cmd.Commands {
		completer.Sub[c.Name()] = &complete.Command{}
	}
	completer.Complete("fsr")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
