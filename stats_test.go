package emporium

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestAggregateStats(t *testing.T) {
	bets, partners, funds, withdrawals := fixture()

	testCases := []struct {
		name  string
		scope string
		want  map[string]int64 // money figures, in whole pesos
		wins  int
		bets  int
	}{
		{
			name:  "whole book",
			scope: ScopeAll,
			want: map[string]int64{
				"deposited": 170000,
				"withdrawn": 30000,
				"staked":    36000,
				"returned":  41500,
				"gross":     10500,
				"partner":   500,
				"admin":     10000,
				"pending":   5000,
				"balance":   145500,
			},
			wins: 2,
			bets: 4,
		},
		{
			name:  "partner scope excludes the book-wide deposit",
			scope: "P1",
			want: map[string]int64{
				"deposited": 100000,
				"withdrawn": 30000,
				"staked":    25000,
				"returned":  40000,
				"gross":     20000,
				"partner":   10000,
				"admin":     10000,
				"pending":   5000,
				"balance":   85000,
			},
			wins: 1,
			bets: 2,
		},
		{
			name:  "losing partner keeps the full loss",
			scope: "P2",
			want: map[string]int64{
				"deposited": 50000,
				"withdrawn": 0,
				"staked":    10000,
				"returned":  0,
				"gross":     -10000,
				"partner":   -10000,
				"admin":     0,
				"pending":   0,
				"balance":   40000,
			},
			wins: 0,
			bets: 1,
		},
		{
			name:  "scoping is by raw id even for a dangling reference",
			scope: "PX",
			want: map[string]int64{
				"deposited": 0,
				"withdrawn": 0,
				"staked":    1000,
				"returned":  1500,
				"gross":     500,
				"partner":   500,
				"admin":     0,
				"pending":   0,
				"balance":   500,
			},
			wins: 1,
			bets: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := AggregateStats(bets, partners, tc.scope, funds, withdrawals)

			got := map[string]int64{
				"deposited": s.TotalDeposited.Decimal().IntPart(),
				"withdrawn": s.TotalWithdrawn.Decimal().IntPart(),
				"staked":    s.TotalStaked.Decimal().IntPart(),
				"returned":  s.TotalReturned.Decimal().IntPart(),
				"gross":     s.GrossProfit.Decimal().IntPart(),
				"partner":   s.PartnerProfit.Decimal().IntPart(),
				"admin":     s.AdminProfit.Decimal().IntPart(),
				"pending":   s.PendingExposure.Decimal().IntPart(),
				"balance":   s.CurrentBalance.Decimal().IntPart(),
			}
			for k, want := range tc.want {
				if got[k] != want {
					t.Errorf("%s = %d, want %d", k, got[k], want)
				}
			}
			if s.Wins != tc.wins {
				t.Errorf("Wins = %d, want %d", s.Wins, tc.wins)
			}
			if s.Bets != tc.bets {
				t.Errorf("Bets = %d, want %d", s.Bets, tc.bets)
			}
		})
	}
}

func TestAggregateStats_Rates(t *testing.T) {
	bets, partners, funds, withdrawals := fixture()
	s := AggregateStats(bets, partners, ScopeAll, funds, withdrawals)

	// 2 wins out of 3 settled bets.
	if want := Percent(200.0 / 3.0); !s.WinRate.Equal(want) {
		t.Errorf("WinRate = %v, want %v", s.WinRate, want)
	}
	// Mean odds over all 4 bets, pending included: (2.0+1.5+3.0+1.5)/4.
	if want := decimal.NewFromFloat(2.0); !s.AvgOdds.Equal(want) {
		t.Errorf("AvgOdds = %v, want %v", s.AvgOdds, want)
	}
	// Settled stake is 31000: ROI = 10500/31000, ROAS = 41500/31000.
	if want := Percent(10500.0 / 31000.0 * 100); !s.ROI.Equal(want) {
		t.Errorf("ROI = %v, want %v", s.ROI, want)
	}
	if want := Percent(41500.0 / 31000.0 * 100); !s.ROAS.Equal(want) {
		t.Errorf("ROAS = %v, want %v", s.ROAS, want)
	}
}

func TestAggregateStats_CashOutWinRule(t *testing.T) {
	// A cash-out counts as a win only when the amount strictly exceeds the
	// raw stake, even though a lower cash-out is not a LOST record.
	day := NewDate(2025, time.June, 1)
	partners := []Partner{NewPartner(day, "P1", "Carlos", 50, "")}

	mk := func(id string, cashOut int64) Bet {
		b := NewBet(day, id, "P1", "", "", "", "", decimal.NewFromFloat(2.0), cop(10000), "")
		m := cop(cashOut)
		return b.Settle(CashedOut, &m)
	}

	testCases := []struct {
		name    string
		cashOut int64
		want    int
	}{
		{"above stake is a win", 10001, 1},
		{"at stake is not a win", 10000, 0},
		{"below stake is not a win", 8000, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := AggregateStats([]Bet{mk("B1", tc.cashOut)}, partners, ScopeAll, nil, nil)
			if s.Wins != tc.want {
				t.Errorf("Wins = %d, want %d", s.Wins, tc.want)
			}
		})
	}
}

func TestAggregateStats_EmptyScope(t *testing.T) {
	s := AggregateStats(nil, nil, ScopeAll, nil, nil)
	if !s.CurrentBalance.IsZero() || !s.TotalStaked.IsZero() {
		t.Errorf("empty scope should have zero balances, got %+v", s)
	}
	if s.WinRate != 0 || s.ROI != 0 || s.ROAS != 0 {
		t.Errorf("empty scope rates must be zero, got win=%v roi=%v roas=%v", s.WinRate, s.ROI, s.ROAS)
	}
	if !s.AvgOdds.IsZero() {
		t.Errorf("empty scope AvgOdds must be zero, got %v", s.AvgOdds)
	}
}

func TestAggregateStats_Idempotent(t *testing.T) {
	bets, partners, funds, withdrawals := fixture()
	first := AggregateStats(bets, partners, ScopeAll, funds, withdrawals)
	second := AggregateStats(bets, partners, ScopeAll, funds, withdrawals)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("aggregation over an unchanged snapshot differs:\n%+v\n%+v", first, second)
	}
}
