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

// settleCmd holds the flags for the 'settle' subcommand.
type settleCmd struct {
	id      string
	status  string
	cashOut string
	book    string
}

func (*settleCmd) Name() string     { return "settle" }
func (*settleCmd) Synopsis() string { return "settle a pending wager" }
func (*settleCmd) Usage() string {
	return `fes settle -id <bet> -status <won|lost|cashed_out|void> [-cashout <amount>] [-b <book>]

  Settles a wager by appending a new write of the same bet id carrying the
  terminal status. A cash-out requires the amount received from the bookmaker.
  Settling an already settled wager re-settles it: the last write wins.
`
}

func (c *settleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Bet id to settle.")
	f.StringVar(&c.status, "status", "", "Terminal status: won, lost, cashed_out or void.")
	f.StringVar(&c.cashOut, "cashout", "", "Amount received on an early settlement.")
	f.StringVar(&c.book, "b", "", "Book to write to. Defaults to the only book if one exists.")
}

func (c *settleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	status, err := emporium.ParseBetStatus(c.status)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook(c.book)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	bet, ok := book.Bet(c.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no bet %q in book %q\n", c.id, book.Name())
		return subcommands.ExitFailure
	}

	var cashOut *emporium.Money
	if c.cashOut != "" {
		amount, err := decimal.NewFromString(c.cashOut)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing cash-out %q: %v\n", c.cashOut, err)
			return subcommands.ExitUsageError
		}
		m := emporium.M(amount, bet.Stake.Currency())
		cashOut = &m
	}

	return AppendRecord(book.Name(), bet.Settle(status, cashOut))
}
