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

// withdrawCmd holds the flags for the 'withdraw' subcommand.
type withdrawCmd struct {
	id       string
	partner  string
	amount   string
	currency string
	date     string
	book     string
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "record a partner's withdrawal request" }
func (*withdrawCmd) Usage() string {
	return `fes withdraw -id <id> -p <partner> -amount <amount> [-d <date>] [-b <book>]

  Records a partner's request to take profit out of the book. The request
  starts REQUESTED and only affects balances once paid with 'fes pay'.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Withdrawal id, e.g. W2.")
	f.StringVar(&c.partner, "p", "", "Partner id requesting the withdrawal.")
	f.StringVar(&c.amount, "amount", "", "Amount in major units, positive.")
	f.StringVar(&c.currency, "cur", emporium.DefaultCurrency, "Currency of the amount.")
	f.StringVar(&c.date, "d", "", "Request date. Defaults to today.")
	f.StringVar(&c.book, "b", "", "Book to write to. Defaults to the only book if one exists.")
}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	w := emporium.NewWithdrawal(on, c.id, c.partner, emporium.M(amount, c.currency))
	return AppendRecord(c.book, w)
}
