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

// movementsCmd holds the flags for the 'movements' subcommand.
type movementsCmd struct {
	scope string
	start string
	date  string
	head  int
	tail  int
	book  string
}

func (*movementsCmd) Name() string     { return "movements" }
func (*movementsCmd) Synopsis() string { return "list the movement ledger of a scope" }
func (*movementsCmd) Usage() string {
	return `fes movements [-p <partner>] [-s <start_date>] [-d <end_date>] [-head <n>] [-tail <n>] [-b <book>]

  Lists the derived movement ledger, newest movement first, with a running
  balance. The ledger is rebuilt from the book on every call.
`
}

func (c *movementsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.scope, "p", emporium.ScopeAll, "Partner id to report on. Defaults to the whole book.")
	f.StringVar(&c.start, "s", "", "The start date for a custom range.")
	f.StringVar(&c.date, "d", "", "The end date for the range.")
	f.IntVar(&c.head, "head", 0, "Show only the first N movements.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N movements.")
	f.StringVar(&c.book, "b", "", "Book to report on. Defaults to the only book if one exists.")
}

func (c *movementsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook(c.book)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	period, err := parseRange(c.start, c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	var entries []emporium.LedgerEntry
	for _, e := range book.Movements(c.scope) {
		if period.Contains(e.Date) {
			entries = append(entries, e)
		}
	}

	if c.head > 0 && len(entries) > c.head {
		entries = entries[:c.head]
	}
	if c.tail > 0 && len(entries) > c.tail {
		entries = entries[len(entries)-c.tail:]
	}

	printMarkdown(renderer.Movements(scopeName(book, c.scope), entries))
	return subcommands.ExitSuccess
}
