package emporium

import (
	"github.com/shopspring/decimal"
)

// ScopeAll selects the whole book instead of a single partner.
const ScopeAll = "ALL"

// ScopeStats is the aggregate view of a scope (one partner or the whole
// book), derived fresh from the four base collections on every call.
//
// CurrentBalance models the real bookmaker account: every stake leaves the
// account the moment the wager is placed, pending included, and only resolved
// wagers return money. It must equal the final running balance of the
// movement ledger built over the same collections.
type ScopeStats struct {
	Scope string

	TotalDeposited  Money // all scoped deposits.
	TotalWithdrawn  Money // PAID withdrawals only.
	CurrentBalance  Money
	TotalStaked     Money // stakes of all scoped bets, pending included.
	TotalReturned   Money // final returns of settled bets.
	GrossProfit     Money
	PartnerProfit   Money
	AdminProfit     Money
	PendingExposure Money // stakes still committed to pending wagers.

	WinRate Percent // a cash-out counts as a win iff its amount exceeds the raw stake.
	AvgOdds decimal.Decimal
	ROI     Percent // gross profit over settled stake.
	ROAS    Percent // total returned over settled stake.

	Bets        int
	SettledBets int
	Wins        int
}

// inScope reports whether a record owned by partnerID belongs to the scope.
// Records referencing an unknown partner still belong to the all scope.
func inScope(scope, partnerID string) bool {
	return scope == ScopeAll || partnerID == scope
}

func partnerIndex(partners []Partner) map[string]Partner {
	idx := make(map[string]Partner, len(partners))
	for _, p := range partners {
		idx[p.ID] = p
	}
	return idx
}

// AggregateStats folds the scoped subset of the four collections into a
// ScopeStats. Empty scopes yield all-zero statistics, never NaN.
func AggregateStats(bets []Bet, partners []Partner, scope string, funds []Fund, withdrawals []Withdrawal) ScopeStats {
	byID := partnerIndex(partners)
	s := ScopeStats{Scope: scope}

	// Base capital: deposits minus paid withdrawals. A book-wide fund (no
	// partner) is only visible to the all scope.
	for _, f := range funds {
		if !inScope(scope, f.PartnerID) {
			continue
		}
		s.TotalDeposited = s.TotalDeposited.Add(f.Amount)
	}
	for _, w := range withdrawals {
		if !inScope(scope, w.PartnerID) || w.Status != Paid {
			continue
		}
		s.TotalWithdrawn = s.TotalWithdrawn.Add(w.Amount)
	}
	baseCapital := s.TotalDeposited.Sub(s.TotalWithdrawn)

	var settledStake Money
	var oddsSum decimal.Decimal
	for _, b := range bets {
		if !inScope(scope, b.PartnerID) {
			continue
		}
		s.Bets++
		oddsSum = oddsSum.Add(b.Odds)

		// Capital is committed the moment a wager is placed.
		s.TotalStaked = s.TotalStaked.Add(b.Stake)
		if !b.Status.Settled() {
			s.PendingExposure = s.PendingExposure.Add(b.Stake)
			continue
		}

		s.SettledBets++
		settledStake = settledStake.Add(b.Stake)
		if b.Status == Won || (b.Status == CashedOut && b.CashOut != nil && b.CashOut.GreaterThan(b.Stake)) {
			s.Wins++
		}

		// An unresolvable bet contributes no outcome.
		outcome, err := ResolveOutcome(b, byID[b.PartnerID].Commission)
		if err != nil {
			continue
		}
		s.TotalReturned = s.TotalReturned.Add(outcome.FinalReturn)
		s.GrossProfit = s.GrossProfit.Add(outcome.ProfitGross)
		s.PartnerProfit = s.PartnerProfit.Add(outcome.ProfitPartner)
		s.AdminProfit = s.AdminProfit.Add(outcome.ProfitAdmin)
	}

	s.CurrentBalance = baseCapital.Sub(s.TotalStaked).Add(s.TotalReturned)

	if s.SettledBets > 0 {
		s.WinRate = Percent(float64(s.Wins) / float64(s.SettledBets) * 100)
	}
	if s.Bets > 0 {
		s.AvgOdds = oddsSum.Div(decimal.NewFromInt(int64(s.Bets)))
	}
	if settledStake.IsPositive() {
		s.ROI = Percent(s.GrossProfit.Decimal().Div(settledStake.Decimal()).Mul(decimal.NewFromInt(100)).InexactFloat64())
		s.ROAS = Percent(s.TotalReturned.Decimal().Div(settledStake.Decimal()).Mul(decimal.NewFromInt(100)).InexactFloat64())
	}
	return s
}
