package emporium

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ReportRow is one wager line of a performance report.
type ReportRow struct {
	Bet         Bet
	FinalReturn Money
	Profit      Money // gross profit, before any commission split.
}

// Report is the date-ranged export artifact the operator hands to a partner:
// an executive summary plus one row per wager in the period. Figures here are
// gross: the report shows the book's performance, not the commission split.
type Report struct {
	ScopeName string
	Period    Range
	Generated Date

	Operations  int
	TotalStaked Money
	WinRate     Percent
	ROI         Percent
	NetProfit   Money

	Rows []ReportRow
}

// NewReport folds the bets falling within the period into a Report.
func NewReport(bets []Bet, scopeName string, period Range) Report {
	r := Report{ScopeName: scopeName, Period: period, Generated: Today()}

	var settled, wins int
	for _, b := range bets {
		if !period.Contains(b.Date) {
			continue
		}
		row := ReportRow{Bet: b}
		if b.Status.Settled() {
			settled++
			if b.Status == Won || (b.Status == CashedOut && b.CashOut != nil && b.CashOut.GreaterThan(b.Stake)) {
				wins++
			}
			// Commission 0: report figures stay gross.
			if outcome, err := ResolveOutcome(b, 0); err == nil {
				row.FinalReturn = outcome.FinalReturn
				row.Profit = outcome.ProfitGross
			}
		}
		r.Operations++
		r.TotalStaked = r.TotalStaked.Add(b.Stake)
		r.NetProfit = r.NetProfit.Add(row.Profit)
		r.Rows = append(r.Rows, row)
	}

	if settled > 0 {
		r.WinRate = Percent(float64(wins) / float64(settled) * 100)
	}
	if r.TotalStaked.IsPositive() {
		r.ROI = Percent(r.NetProfit.Decimal().Div(r.TotalStaked.Decimal()).InexactFloat64() * 100)
	}
	return r
}

// WriteCSV renders the report in the export layout: a header block, the
// executive summary, then the per-wager detail rows.
func (r Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	write := func(fields ...string) {
		cw.Write(fields)
	}

	write("PERFORMANCE REPORT")
	write("Scope", r.ScopeName)
	write("Generated", r.Generated.String())
	write("Period", r.Period.String())
	write()

	write("EXECUTIVE SUMMARY")
	write("Total operations", fmt.Sprintf("%d", r.Operations))
	write("Capital staked", r.TotalStaked.Decimal().String())
	write("Win rate", r.WinRate.String())
	write("ROI", r.ROI.String())
	write("Net profit", r.NetProfit.Decimal().String())
	write()

	write("ID", "Date", "Event", "Market", "Odds", "Stake", "Status", "Return", "Profit")
	for _, row := range r.Rows {
		b := row.Bet
		write(
			b.ID,
			b.Date.String(),
			b.Event(),
			b.Market,
			b.Odds.String(),
			b.Stake.Decimal().String(),
			string(b.Status),
			row.FinalReturn.Decimal().String(),
			row.Profit.Decimal().String(),
		)
	}

	cw.Flush()
	return cw.Error()
}
