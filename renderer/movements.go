package renderer

import (
	"io"

	"github.com/fennix/emporium"
)

// Movements renders the movement ledger of a scope to a markdown table,
// newest entry first.
func Movements(name string, entries []emporium.LedgerEntry) string {
	r := newRenderer()

	r.Printf("# Movements for %s\n\n", name)
	if len(entries) == 0 {
		r.Printf("No movements.\n")
		return r.String()
	}

	r.Printf("| Date | Category | Partner | Description | Amount | Balance |\n")
	r.Printf("|:---|:---|:---|:---|---:|---:|\n")
	for _, e := range entries {
		desc := e.Description
		if e.Detail != "" {
			desc += " (" + e.Detail + ")"
		}
		r.Printf("| %s | %s | %s | %s | %s | %s |\n",
			e.Date, e.Category, e.PartnerName, desc, e.Amount.SignedString(), e.RunningBalance)
	}

	// Flag wagers still waiting on resolution, if any.
	ConditionalBlock(r, func(w io.Writer) bool {
		printed := false
		for _, e := range entries {
			if e.Status != string(emporium.Pending) {
				continue
			}
			if !printed {
				io.WriteString(w, "\nOpen wagers:\n\n")
				printed = true
			}
			io.WriteString(w, "* "+e.BetID+": "+e.Description+", "+e.Amount.Neg().String()+" at stake\n")
		}
		return printed
	})

	return r.String()
}
