package renderer

import (
	"github.com/fennix/emporium"
)

// Summary renders the aggregated figures of a scope to a markdown string.
func Summary(name string, s emporium.ScopeStats) string {
	r := newRenderer()

	r.Printf("# Summary for %s\n\n", name)

	r.Printf("## Capital\n\n")
	r.Printf("| Metric | Value |\n")
	r.Printf("|:---|---:|\n")
	r.Printf("| Current Balance | %s |\n", s.CurrentBalance)
	r.Printf("| Total Deposited | %s |\n", s.TotalDeposited)
	r.Printf("| Total Withdrawn | %s |\n", s.TotalWithdrawn)
	r.Printf("| Pending Exposure | %s |\n", s.PendingExposure)
	r.Printf("\n")

	r.Printf("## Performance\n\n")
	r.Printf("| Metric | Value |\n")
	r.Printf("|:---|---:|\n")
	r.Printf("| Bets | %d (settled %d, won %d) |\n", s.Bets, s.SettledBets, s.Wins)
	r.Printf("| Total Staked | %s |\n", s.TotalStaked)
	r.Printf("| Total Returned | %s |\n", s.TotalReturned)
	r.Printf("| Gross Profit | %s |\n", s.GrossProfit.SignedString())
	r.Printf("| Partner Profit | %s |\n", s.PartnerProfit.SignedString())
	r.Printf("| Admin Profit | %s |\n", s.AdminProfit.SignedString())
	r.Printf("| Win Rate | %s |\n", s.WinRate)
	r.Printf("| ROI | %s |\n", s.ROI.SignedString())
	r.Printf("| ROAS | %s |\n", s.ROAS)
	if !s.AvgOdds.IsZero() {
		r.Printf("| Average Odds | %s |\n", s.AvgOdds)
	}

	return r.String()
}
