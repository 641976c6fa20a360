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

// partnerCmd holds the flags for the 'partner' subcommand.
type partnerCmd struct {
	id         string
	name       string
	commission float64
	date       string
	note       string
	inactive   bool
	list       bool
	book       string
}

func (*partnerCmd) Name() string     { return "partner" }
func (*partnerCmd) Synopsis() string { return "register a partner, or list the roster" }
func (*partnerCmd) Usage() string {
	return `fes partner -id <id> -name <name> [-c <commission>] [-d <date>] [-b <book>]
fes partner -list [-b <book>]

  Registers a partner of the syndicate. The commission is the share of profit,
  in percent, retained by the operator on that partner's winning wagers.
  Re-registering an id updates the partner.
`
}

func (c *partnerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Partner id, e.g. P1.")
	f.StringVar(&c.name, "name", "", "Partner display name.")
	f.Float64Var(&c.commission, "c", 0, "Operator commission on profit, in percent [0,100].")
	f.StringVar(&c.date, "d", "", "Joining date. Defaults to today.")
	f.StringVar(&c.note, "note", "", "Optional free-form note.")
	f.BoolVar(&c.inactive, "inactive", false, "Mark the partner inactive.")
	f.BoolVar(&c.list, "list", false, "List the roster instead of registering.")
	f.StringVar(&c.book, "b", "", "Book to write to. Defaults to the only book if one exists.")
}

func (c *partnerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.list {
		book, err := DecodeBook(c.book)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.Partners(book.Partners(), book.Stats))
		return subcommands.ExitSuccess
	}

	on, err := emporium.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	partner := emporium.NewPartner(on, c.id, c.name, emporium.Percent(c.commission), c.note)
	partner.Inactive = c.inactive
	return AppendRecord(c.book, partner)
}
