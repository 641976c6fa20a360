package emporium

import (
	"time"

	"github.com/shopspring/decimal"
)

// fixture returns a small syndicate with two partners, a dangling partner
// reference, a book-wide deposit, a pending wager, and a non-paid
// withdrawal, exercising every scoping rule at once.
func fixture() (bets []Bet, partners []Partner, funds []Fund, withdrawals []Withdrawal) {
	day := func(d int) Date { return NewDate(2025, time.June, d) }

	partners = []Partner{
		NewPartner(day(1), "P1", "Carlos", 50, ""),
		NewPartner(day(1), "P2", "Diana", 30, ""),
	}

	funds = []Fund{
		NewFund(day(1), "F1", "P1", cop(100000), "wire", "initial capital"),
		NewFund(day(1), "F2", "P2", cop(50000), "wire", "initial capital"),
		NewFund(day(2), "F3", "", cop(20000), "cash", "book float"),
	}

	b1 := NewBet(day(2), "B1", "P1", "Football", "Millonarios", "Nacional", "1X2", decimal.NewFromFloat(2.0), cop(20000), "")
	b1.Status = Won
	b2 := NewBet(day(3), "B2", "P2", "Football", "Junior", "Cali", "Over 2.5", decimal.NewFromFloat(1.5), cop(10000), "")
	b2.Status = Lost
	b3 := NewBet(day(4), "B3", "P1", "Tennis", "Ruud", "Alcaraz", "Winner", decimal.NewFromFloat(3.0), cop(5000), "")
	b4 := NewBet(day(3), "B4", "PX", "Football", "Santa Fe", "Pereira", "1X2", decimal.NewFromFloat(1.5), cop(1000), "")
	b4.Status = Won
	bets = []Bet{b1, b2, b3, b4}

	w1 := NewWithdrawal(day(5), "W1", "P1", cop(30000)).Progress(Paid)
	w2 := NewWithdrawal(day(5), "W2", "P2", cop(10000))
	withdrawals = []Withdrawal{w1, w2}

	return bets, partners, funds, withdrawals
}
