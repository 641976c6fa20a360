package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fennix/emporium"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	scope  string
	start  string
	date   string
	output string
	book   string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "export a performance report as CSV" }
func (*reportCmd) Usage() string {
	return `fes report [-p <partner>] [-s <start_date>] [-d <end_date>] [-o <file>] [-b <book>]

  Exports the period's performance report: an executive summary followed by
  one row per wager. Figures are gross, before the commission split. Without
  -o the CSV goes to stdout.

Usage Examples:
# June report for partner P1.
$ fes report -p P1 -s 2025-06-01 -d 2025-06-30 -o june-p1.csv
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.scope, "p", emporium.ScopeAll, "Partner id to report on. Defaults to the whole book.")
	f.StringVar(&c.start, "s", "", "The start date for the report period.")
	f.StringVar(&c.date, "d", "", "The end date for the report period.")
	f.StringVar(&c.output, "o", "", "File to write the CSV to. Defaults to stdout.")
	f.StringVar(&c.book, "b", "", "Book to report on. Defaults to the only book if one exists.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	report := book.Report(c.scope, period)

	w := os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating report file %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	if err := report.WriteCSV(w); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.output != "" {
		fmt.Printf("Successfully wrote report to %s\n", c.output)
	}
	return subcommands.ExitSuccess
}
