package emporium

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Outcome is the monetary resolution of a settled wager.
//
// The split always partitions the gross profit: ProfitAdmin + ProfitPartner
// equals ProfitGross. A loss is never redistributed: it is borne entirely by
// the partner and the admin share is zero.
type Outcome struct {
	FinalReturn   Money // what the bookmaker paid back, stake included.
	ProfitGross   Money // FinalReturn minus stake.
	ProfitPartner Money
	ProfitAdmin   Money
}

// ResolveOutcome resolves a settled wager into its final return and the
// partner/admin profit split. commission is the operator's share of profit,
// in [0,100]; it applies to profit only, never to the stake or to a loss.
//
// It is a pure function over validated input: a negative stake, odds below
// 1.0, a commission outside [0,100], a pending bet, or a cashed-out bet
// without its cash-out amount are input errors, never coerced to zero.
func ResolveOutcome(bet Bet, commission Percent) (Outcome, error) {
	if bet.Stake.IsNegative() {
		return Outcome{}, fmt.Errorf("bet %q stake must not be negative, got %v", bet.ID, bet.Stake)
	}
	if bet.Odds.LessThan(decimal.NewFromInt(1)) {
		return Outcome{}, fmt.Errorf("bet %q odds must be at least 1.0, got %v", bet.ID, bet.Odds)
	}
	if commission < 0 || commission > 100 {
		return Outcome{}, fmt.Errorf("bet %q commission must be within [0,100], got %v", bet.ID, commission)
	}

	cur := bet.Stake.Currency()
	var finalReturn Money
	switch bet.Status {
	case Won:
		finalReturn = bet.Stake.Mul(bet.Odds)
	case Lost:
		finalReturn = M(0, cur)
	case CashedOut:
		if bet.CashOut == nil {
			return Outcome{}, fmt.Errorf("bet %q is cashed out but has no cash-out amount", bet.ID)
		}
		finalReturn = *bet.CashOut
	case Void:
		finalReturn = bet.Stake
	case Pending:
		return Outcome{}, fmt.Errorf("bet %q is still pending and has no outcome", bet.ID)
	default:
		return Outcome{}, fmt.Errorf("bet %q has unknown status %q", bet.ID, bet.Status)
	}

	profitGross := finalReturn.Sub(bet.Stake)

	var profitPartner, profitAdmin Money
	switch {
	case profitGross.IsPositive():
		// The admin's commission is a share of profit only.
		profitAdmin = profitGross.MulPercent(commission)
		profitPartner = profitGross.Sub(profitAdmin)
	case profitGross.IsNegative():
		// The loss belongs to the partner in full.
		profitPartner = profitGross
		profitAdmin = M(0, cur)
	default:
		// VOID or a break-even cash-out.
		profitPartner = M(0, cur)
		profitAdmin = M(0, cur)
	}

	return Outcome{
		FinalReturn:   finalReturn,
		ProfitGross:   profitGross,
		ProfitPartner: profitPartner,
		ProfitAdmin:   profitAdmin,
	}, nil
}
