package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fennix/emporium"
	"github.com/google/subcommands"
)

// fmtCmd holds the flags for the 'fmt' subcommand.
type fmtCmd struct {
	book string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the book file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `fes fmt [-b <book>]

  Validates and formats the book file. This command reads all records, keeps
  the surviving write of each id, sorts them by date, and writes them back in
  a canonical JSONL format. By default, it formats all books in-place.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.book, "b", "", "Book to format. Formats all by default.")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	books, err := DecodeBooks(c.book)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load books: %v\n", err)
		return subcommands.ExitFailure
	}

	if len(books) == 0 {
		fmt.Fprintf(os.Stderr, "Warning: no books found to format.\n")
		return subcommands.ExitSuccess
	}

	for _, book := range books {
		name := book.Name()
		fmt.Fprintf(os.Stderr, "Formatting book %q...\n", name)

		canonical, err := book.Fmt()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting book %q: %v\n", name, err)
			continue
		}

		if err := emporium.SaveBook(BookDir(), canonical); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving formatted book %q: %v\n", name, err)
			continue
		}
		fmt.Fprintf(os.Stderr, "Finished formatting book %q.\n", name)
	}

	return subcommands.ExitSuccess
}
