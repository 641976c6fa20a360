package renderer

import (
	"io"

	"github.com/fennix/emporium"
)

// Partners renders the partner roster with each partner's headline figures.
// statsFor computes the figures for one partner id.
func Partners(partners []emporium.Partner, statsFor func(id string) emporium.ScopeStats) string {
	r := newRenderer()

	r.Printf("# Partners\n\n")
	if len(partners) == 0 {
		r.Printf("No partners.\n")
		return r.String()
	}

	r.Printf("| ID | Name | Commission | Balance | Net Profit | Bets |\n")
	r.Printf("|:---|:---|---:|---:|---:|---:|\n")
	for _, p := range partners {
		if p.Inactive {
			continue
		}
		s := statsFor(p.ID)
		r.Printf("| %s | %s | %s | %s | %s | %d |\n",
			p.ID, p.Name, p.Commission, s.CurrentBalance, s.PartnerProfit.SignedString(), s.Bets)
	}

	ConditionalBlock(r, func(w io.Writer) bool {
		printed := false
		for _, p := range partners {
			if !p.Inactive {
				continue
			}
			if !printed {
				io.WriteString(w, "\nInactive:\n\n")
				printed = true
			}
			io.WriteString(w, "* "+p.ID+" "+p.Name+"\n")
		}
		return printed
	})

	return r.String()
}
