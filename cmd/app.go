// Package cmd implements the CLI application to manage a betting syndicate book.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fennix/emporium"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&partnerCmd{}, "records")
	c.Register(&betCmd{}, "records")
	c.Register(&settleCmd{}, "records")
	c.Register(&depositCmd{}, "records")
	c.Register(&withdrawCmd{}, "records")
	c.Register(&payCmd{}, "records")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&movementsCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")
	c.Register(&reconcileCmd{}, "reports")

	c.Register(&fmtCmd{}, "book")
	c.Register(&topicCmd{}, "documentation")
	c.Register(&assistCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookDir = flag.String("book-dir", ".", "Path to the directory holding book files (JSONL format)")

// BookDir returns the directory holding the book files.
func BookDir() string { return *bookDir }

// DecodeBook loads the named book from the app book directory. An empty name
// resolves to the only book, or to a fresh one if none exists yet.
func DecodeBook(name string) (*emporium.Book, error) {
	return emporium.FindBook(*bookDir, name)
}

// DecodeBooks loads all books, or only the named one.
func DecodeBooks(name string) ([]*emporium.Book, error) {
	return emporium.FindBooks(*bookDir, name)
}

// AppendRecord appends a single record to the named book file, creating the
// file if needed. The record is validated first.
func AppendRecord(name string, rec emporium.Record) subcommands.ExitStatus {
	validated, err := rec.Validate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid %s record: %v\n", rec.What(), err)
		return subcommands.ExitFailure
	}

	if name == "" {
		name = "book"
	}
	filename := filepath.Join(*bookDir, name+".jsonl")
	// Open the file in append mode, creating it if it doesn't exist.
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening book file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := emporium.EncodeRecord(f, validated); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to book file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended %s %q to %s\n", validated.What(), validated.Key(), filename)
	return subcommands.ExitSuccess
}

// parseRange builds the date range from the usual -s / -d flags. Both sides
// are optional.
func parseRange(start, end string) (emporium.Range, error) {
	var r emporium.Range
	if start != "" {
		from, err := emporium.ParseDate(start)
		if err != nil {
			return r, fmt.Errorf("invalid start date: %w", err)
		}
		r.From = from
	}
	if end != "" {
		to, err := emporium.ParseDate(end)
		if err != nil {
			return r, fmt.Errorf("invalid end date: %w", err)
		}
		r.To = to
	}
	return emporium.NewRange(r.From, r.To), nil
}

// scopeName resolves the display name of a scope against the book.
func scopeName(book *emporium.Book, scope string) string {
	if scope == emporium.ScopeAll {
		return "All partners"
	}
	return book.PartnerName(scope)
}
