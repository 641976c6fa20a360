package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fennix/emporium"
	"github.com/fennix/emporium/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	scope string
	book  string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the aggregated figures of a scope" }
func (*summaryCmd) Usage() string {
	return `fes summary [-p <partner>] [-b <book>]

  Displays the capital and performance figures for the whole book, or for one
  partner with -p.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.scope, "p", emporium.ScopeAll, "Partner id to report on. Defaults to the whole book.")
	f.StringVar(&c.book, "b", "", "Book to report on. Defaults to the only book if one exists.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook(c.book)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Summary(scopeName(book, c.scope), book.Stats(c.scope)))
	return subcommands.ExitSuccess
}
