package renderer

import (
	"github.com/fennix/emporium"
)

// Reconcile renders the comparison between the computed balance and the
// balance reported by the bookmaker.
func Reconcile(name string, rec emporium.Reconciliation) string {
	r := newRenderer()

	r.Printf("# Reconciliation for %s\n\n", name)
	r.Printf("| | |\n")
	r.Printf("|:---|---:|\n")
	r.Printf("| Computed balance | %s |\n", rec.Computed)
	r.Printf("| Bookmaker balance | %s |\n", rec.External)
	r.Printf("| Difference | %s |\n", rec.Difference().SignedString())
	r.Printf("\n")
	if rec.Reconciled() {
		r.Printf("The book is reconciled.\n")
	} else {
		r.Printf("The book is NOT reconciled. Check for unrecorded movements.\n")
	}
	return r.String()
}
