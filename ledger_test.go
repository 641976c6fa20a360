package emporium

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestBuildLedger_RunningBalance(t *testing.T) {
	// Deposit on day 1; a winning bet placed and resolved on day 2. The
	// stake must leave the account before its return on the same day.
	day := func(d int) Date { return NewDate(2025, time.July, d) }
	partners := []Partner{NewPartner(day(1), "P1", "Carlos", 50, "")}
	funds := []Fund{NewFund(day(1), "F1", "P1", cop(100000), "wire", "capital")}
	bet := NewBet(day(2), "A", "P1", "Football", "Home", "Away", "1X2", decimal.NewFromFloat(2.0), cop(20000), "")
	bet.Status = Won

	entries := BuildLedger([]Bet{bet}, funds, nil, ScopeAll, partners)
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	// Entries come back newest first; walk them oldest first.
	type step struct {
		category Category
		amount   int64
		balance  int64
	}
	want := []step{
		{CatDeposit, 100000, 100000},
		{CatBetStake, -20000, 80000},
		{CatBetReturn, 40000, 120000},
	}
	for i, w := range want {
		e := entries[len(entries)-1-i]
		if e.Category != w.category {
			t.Errorf("entry %d category = %v, want %v", i, e.Category, w.category)
		}
		if got := e.Amount.Decimal().IntPart(); got != w.amount {
			t.Errorf("entry %d amount = %d, want %d", i, got, w.amount)
		}
		if got := e.RunningBalance.Decimal().IntPart(); got != w.balance {
			t.Errorf("entry %d running balance = %d, want %d", i, got, w.balance)
		}
	}

	// The newest entry's running balance is the scope's current balance.
	stats := AggregateStats([]Bet{bet}, partners, ScopeAll, funds, nil)
	if got, want := entries[0].RunningBalance, stats.CurrentBalance; !got.Equal(want) {
		t.Errorf("final running balance = %v, want CurrentBalance %v", got.Decimal(), want.Decimal())
	}
}

func TestBuildLedger_LostBetKeepsZeroReturnEntry(t *testing.T) {
	day := NewDate(2025, time.July, 1)
	bet := NewBet(day, "B1", "P1", "", "", "", "", decimal.NewFromFloat(1.5), cop(10000), "")
	bet.Status = Lost

	entries := BuildLedger([]Bet{bet}, nil, nil, ScopeAll, nil)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want stake and zero-amount return", len(entries))
	}
	ret := entries[0] // newest first: the return comes last in ascending order
	if ret.Category != CatBetReturn {
		t.Fatalf("newest entry category = %v, want %v", ret.Category, CatBetReturn)
	}
	if !ret.Amount.IsZero() {
		t.Errorf("lost bet return amount = %v, want 0", ret.Amount.Decimal())
	}
}

func TestBuildLedger_PendingBetHasNoReturnEntry(t *testing.T) {
	day := NewDate(2025, time.July, 1)
	bet := NewBet(day, "B1", "P1", "", "", "", "", decimal.NewFromFloat(1.5), cop(10000), "")

	entries := BuildLedger([]Bet{bet}, nil, nil, ScopeAll, nil)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want only the stake", len(entries))
	}
	if entries[0].Category != CatBetStake {
		t.Errorf("category = %v, want %v", entries[0].Category, CatBetStake)
	}
	if got := entries[0].Amount.Decimal().IntPart(); got != -10000 {
		t.Errorf("amount = %d, want -10000", got)
	}
}

func TestBuildLedger_SameDayCategoryPrecedence(t *testing.T) {
	// Everything lands on the same day: the order must be deposit, stake,
	// return, withdrawal regardless of input order.
	day := NewDate(2025, time.July, 1)
	partners := []Partner{NewPartner(day, "P1", "Carlos", 0, "")}
	funds := []Fund{NewFund(day, "F1", "P1", cop(50000), "wire", "capital")}
	bet := NewBet(day, "B1", "P1", "", "", "", "", decimal.NewFromFloat(2.0), cop(10000), "")
	bet.Status = Won
	wd := []Withdrawal{NewWithdrawal(day, "W1", "P1", cop(5000)).Progress(Paid)}

	entries := BuildLedger([]Bet{bet}, funds, wd, ScopeAll, partners)
	var got []Category
	for i := len(entries) - 1; i >= 0; i-- {
		got = append(got, entries[i].Category)
	}
	want := []Category{CatDeposit, CatBetStake, CatBetReturn, CatWithdrawal}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ascending categories = %v, want %v", got, want)
	}
	if final := entries[0].RunningBalance.Decimal().IntPart(); final != 55000 {
		t.Errorf("final balance = %d, want 55000", final)
	}
}

func TestBuildLedger_ShuffleStability(t *testing.T) {
	bets, partners, funds, withdrawals := fixture()
	base := BuildLedger(bets, funds, withdrawals, ScopeAll, partners)

	reverse := func(n int, swap func(i, j int)) {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			swap(i, j)
		}
	}
	reverse(len(bets), reflect.Swapper(bets))
	reverse(len(funds), reflect.Swapper(funds))
	reverse(len(withdrawals), reflect.Swapper(withdrawals))
	reverse(len(partners), reflect.Swapper(partners))

	shuffled := BuildLedger(bets, funds, withdrawals, ScopeAll, partners)
	if !reflect.DeepEqual(base, shuffled) {
		t.Errorf("ledger depends on input order:\n%+v\n%+v", base, shuffled)
	}
}

func TestBuildLedger_CrossConsistencyWithStats(t *testing.T) {
	bets, partners, funds, withdrawals := fixture()
	for _, scope := range []string{ScopeAll, "P1", "P2"} {
		t.Run(scope, func(t *testing.T) {
			entries := BuildLedger(bets, funds, withdrawals, scope, partners)
			stats := AggregateStats(bets, partners, scope, funds, withdrawals)
			if len(entries) == 0 {
				t.Fatal("expected ledger entries")
			}
			if got, want := entries[0].RunningBalance, stats.CurrentBalance; !got.Equal(want) {
				t.Errorf("ledger final balance = %v, stats CurrentBalance = %v", got.Decimal(), want.Decimal())
			}
		})
	}
}

func TestBuildLedger_PartnerLabels(t *testing.T) {
	bets, partners, funds, withdrawals := fixture()
	entries := BuildLedger(bets, funds, withdrawals, ScopeAll, partners)

	labels := make(map[string]string)
	for _, e := range entries {
		labels[e.ID] = e.PartnerName
	}
	if labels["F3"] != GeneralLabel {
		t.Errorf("book-wide fund label = %q, want %q", labels["F3"], GeneralLabel)
	}
	if labels["B4-STAKE"] != UnknownPartnerLabel {
		t.Errorf("dangling bet label = %q, want %q", labels["B4-STAKE"], UnknownPartnerLabel)
	}
	if labels["F1"] != "Carlos" {
		t.Errorf("partner fund label = %q, want %q", labels["F1"], "Carlos")
	}
}
