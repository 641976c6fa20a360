package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fennix/emporium"
	"github.com/google/subcommands"
)

// payCmd holds the flags for the 'pay' subcommand.
type payCmd struct {
	id     string
	status string
	book   string
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "progress a withdrawal request" }
func (*payCmd) Usage() string {
	return `fes pay -id <withdrawal> -status <approved|paid|rejected> [-b <book>]

  Progresses a withdrawal through its lifecycle. Only PAID withdrawals are
  deducted from balances; REJECTED ends the request without moving money.
`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Withdrawal id to progress.")
	f.StringVar(&c.status, "status", string(emporium.Paid), "New status: approved, paid or rejected.")
	f.StringVar(&c.book, "b", "", "Book to write to. Defaults to the only book if one exists.")
}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	status, err := emporium.ParseWithdrawalStatus(c.status)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook(c.book)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	w, ok := book.Withdrawal(c.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no withdrawal %q in book %q\n", c.id, book.Name())
		return subcommands.ExitFailure
	}

	return AppendRecord(book.Name(), w.Progress(status))
}
