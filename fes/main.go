package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/fennix/emporium/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
)

func main() {
	// Shell completion for the subcommands. This is a no-op outside of a
	// completion request, and exits the program inside one.
	(&complete.Command{
		Sub: map[string]*complete.Command{
			"partner":   {},
			"bet":       {},
			"settle":    {},
			"deposit":   {},
			"withdraw":  {},
			"pay":       {},
			"summary":   {},
			"movements": {},
			"report":    {},
			"reconcile": {},
			"fmt":       {},
			"topic":     {},
			"assist":    {},
		},
	}).Complete("fes")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
