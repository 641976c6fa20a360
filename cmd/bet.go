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

// betCmd holds the flags for the 'bet' subcommand.
type betCmd struct {
	id       string
	partner  string
	sport    string
	home     string
	away     string
	market   string
	odds     string
	stake    string
	currency string
	date     string
	note     string
	book     string
}

func (*betCmd) Name() string     { return "bet" }
func (*betCmd) Synopsis() string { return "record a wager placed on behalf of a partner" }
func (*betCmd) Usage() string {
	return `fes bet -id <id> -p <partner> -stake <amount> -odds <odds> [-sport <sport>] [-home <team>] [-away <team>] [-market <market>] [-d <date>] [-b <book>]

  Records a pending wager. The stake leaves the partner's balance immediately;
  the outcome is recorded later with 'fes settle'.

Usage Examples:
# A 20000 COP wager at decimal odds 2.5.
$ fes bet -id B7 -p P1 -stake 20000 -odds 2.5 -sport Football -home Millonarios -away Nacional -market 1X2
`
}

func (c *betCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Bet id, e.g. B7.")
	f.StringVar(&c.partner, "p", "", "Partner id the wager belongs to.")
	f.StringVar(&c.sport, "sport", "", "Sport, e.g. Football.")
	f.StringVar(&c.home, "home", "", "Home team or player.")
	f.StringVar(&c.away, "away", "", "Away team or player.")
	f.StringVar(&c.market, "market", "", "Market description, e.g. 'Over 2.5'.")
	f.StringVar(&c.odds, "odds", "", "Decimal odds, at least 1.0.")
	f.StringVar(&c.stake, "stake", "", "Stake amount in major units.")
	f.StringVar(&c.currency, "cur", emporium.DefaultCurrency, "Currency of the stake.")
	f.StringVar(&c.date, "d", "", "Placement date. Defaults to today.")
	f.StringVar(&c.note, "note", "", "Optional free-form note.")
	f.StringVar(&c.book, "b", "", "Book to write to. Defaults to the only book if one exists.")
}

func (c *betCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := emporium.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	odds, err := decimal.NewFromString(c.odds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing odds %q: %v\n", c.odds, err)
		return subcommands.ExitUsageError
	}
	stake, err := decimal.NewFromString(c.stake)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing stake %q: %v\n", c.stake, err)
		return subcommands.ExitUsageError
	}

	bet := emporium.NewBet(on, c.id, c.partner, c.sport, c.home, c.away, c.market,
		odds, emporium.M(stake, c.currency), c.note)
	return AppendRecord(c.book, bet)
}
