package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fennix/emporium"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// depositCmd holds the flags for the 'deposit' subcommand.
type depositCmd struct {
	id          string
	partner     string
	amount      string
	currency    string
	method      string
	description string
	date        string
	book        string
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "record a capital deposit" }
func (*depositCmd) Usage() string {
	return `fes deposit -id <id> -amount <amount> [-p <partner>] [-method <method>] [-desc <text>] [-d <date>] [-b <book>]

  Records capital entering the book. Without -p the deposit is book-wide: it
  counts towards the whole book's balance but no single partner's.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Deposit id, e.g. F3.")
	f.StringVar(&c.partner, "p", "", "Partner id. Empty for a book-wide deposit.")
	f.StringVar(&c.amount, "amount", "", "Amount in major units, positive.")
	f.StringVar(&c.currency, "cur", emporium.DefaultCurrency, "Currency of the amount.")
	f.StringVar(&c.method, "method", "", "How the money came in, e.g. wire.")
	f.StringVar(&c.description, "desc", "", "Description of the deposit.")
	f.StringVar(&c.date, "d", "", "Deposit date. Defaults to today.")
	f.StringVar(&c.book, "b", "", "Book to write to. Defaults to the only book if one exists.")
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := emporium.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}

	fund := emporium.NewFund(on, c.id, c.partner, emporium.M(amount, c.currency), c.method, c.description)
	return AppendRecord(c.book, fund)
}
