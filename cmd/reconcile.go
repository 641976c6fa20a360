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

// reconcileCmd holds the flags for the 'reconcile' subcommand.
type reconcileCmd struct {
	scope    string
	url      string
	path     string
	currency string
	book     string
}

func (*reconcileCmd) Name() string     { return "reconcile" }
func (*reconcileCmd) Synopsis() string { return "compare the book against the bookmaker balance" }
func (*reconcileCmd) Usage() string {
	return `fes reconcile -url <endpoint> [-path <jsonpath>] [-p <partner>] [-b <book>]

  Fetches the bookmaker account balance from a JSON endpoint, locates it with
  a JSONPath expression, and compares it against the book's computed balance.
  The response is cached on disk for the day.

Usage Examples:
# Balance exposed at {"account":{"balance":145500}}.
$ fes reconcile -url https://bookie.example.com/api/me -path '$.account.balance'
`
}

func (c *reconcileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.url, "url", "", "JSON endpoint exposing the bookmaker account.")
	f.StringVar(&c.path, "path", "$.balance", "JSONPath expression locating the balance.")
	f.StringVar(&c.currency, "cur", emporium.DefaultCurrency, "Currency of the bookmaker balance.")
	f.StringVar(&c.scope, "p", emporium.ScopeAll, "Partner id to reconcile. Defaults to the whole book.")
	f.StringVar(&c.book, "b", "", "Book to reconcile. Defaults to the only book if one exists.")
}

func (c *reconcileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.url == "" {
		fmt.Fprintln(os.Stderr, "Error: -url is required.")
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook(c.book)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	external, err := emporium.FetchBookieBalance(c.url, c.path, c.currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	rec := emporium.Reconciliation{
		Computed: book.Stats(c.scope).CurrentBalance,
		External: external,
	}
	printMarkdown(renderer.Reconcile(scopeName(book, c.scope), rec))

	if !rec.Reconciled() {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
