package emporium

import (
	"fmt"
	"sort"
	"strings"
)

// Category classifies a ledger entry. The numeric value is the fixed
// same-day precedence: capital commitments are always reflected in the
// ledger before their resolution on the same day.
type Category int

const (
	CatDeposit    Category = 1
	CatBetStake   Category = 2
	CatBetReturn  Category = 3
	CatWithdrawal Category = 4
)

func (c Category) String() string {
	switch c {
	case CatDeposit:
		return "DEPOSIT"
	case CatBetStake:
		return "BET_STAKE"
	case CatBetReturn:
		return "BET_RETURN"
	case CatWithdrawal:
		return "WITHDRAWAL"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Labels for records whose partner reference cannot be resolved. A dangling
// reference is not an error: the movement still belongs to the book.
const (
	GeneralLabel        = "General"
	UnknownPartnerLabel = "Unknown partner"
)

// LedgerEntry is one movement in the derived ledger. Entries are never
// persisted; they are rebuilt from the base collections on every call.
type LedgerEntry struct {
	ID          string // originating record id, suffixed for bet entries (B1-STAKE, B1-RETURN).
	Date        Date
	PartnerName string
	Description string
	Detail      string
	Amount      Money // signed: deposits and returns are positive, stakes and withdrawals negative.
	Category    Category
	Status      string // lifecycle status of the originating record, for display.
	BetID       string // shared by the STAKE and RETURN entries of one wager.

	// RunningBalance is the cumulative sum up to and including this entry in
	// ascending order, rounded to whole currency units after each step.
	RunningBalance Money
}

// BuildLedger merges the scoped deposits, paid withdrawals and per-wager
// stake/return movements into one balance-annotated sequence, returned
// newest-first for display.
//
// Ordering is deterministic: ascending date, then category precedence
// DEPOSIT < BET_STAKE < BET_RETURN < WITHDRAWAL, then a lexical comparison of
// the originating record id (bet entries tie-break by their shared bet id).
// The final running balance equals ScopeStats.CurrentBalance computed over
// the same collections; that equality is the primary reconciliation check.
func BuildLedger(bets []Bet, funds []Fund, withdrawals []Withdrawal, scope string, partners []Partner) []LedgerEntry {
	byID := partnerIndex(partners)
	name := func(partnerID string) string {
		if partnerID == "" {
			return GeneralLabel
		}
		if p, ok := byID[partnerID]; ok {
			return p.Name
		}
		return UnknownPartnerLabel
	}

	var entries []LedgerEntry

	for _, f := range funds {
		if !inScope(scope, f.PartnerID) {
			continue
		}
		entries = append(entries, LedgerEntry{
			ID:          f.ID,
			Date:        f.Date,
			PartnerName: name(f.PartnerID),
			Description: "Deposit: " + f.Description,
			Detail:      f.Method,
			Amount:      f.Amount,
			Category:    CatDeposit,
			Status:      "COMPLETED",
		})
	}

	for _, w := range withdrawals {
		if !inScope(scope, w.PartnerID) || w.Status != Paid {
			continue
		}
		entries = append(entries, LedgerEntry{
			ID:          w.ID,
			Date:        w.Date,
			PartnerName: name(w.PartnerID),
			Description: "Profit withdrawal",
			Detail:      "Transfer",
			Amount:      w.Amount.Neg(),
			Category:    CatWithdrawal,
			Status:      string(w.Status),
		})
	}

	for _, b := range bets {
		if !inScope(scope, b.PartnerID) {
			continue
		}
		pName := name(b.PartnerID)

		// The stake leaves the account on placement, whatever the status.
		entries = append(entries, LedgerEntry{
			ID:          b.ID + "-STAKE",
			Date:        b.Date,
			PartnerName: pName,
			Description: "Bet: " + b.Event(),
			Detail:      fmt.Sprintf("%s @ %s", b.Market, b.Odds),
			Amount:      b.Stake.Neg(),
			Category:    CatBetStake,
			Status:      string(b.Status),
			BetID:       b.ID,
		})

		if !b.Status.Settled() {
			continue
		}
		outcome, err := ResolveOutcome(b, byID[b.PartnerID].Commission)
		if err != nil {
			continue
		}
		// A settled wager always gets its RETURN entry, zero amounts
		// included: a lost bet's zero return is the audit marker that the
		// wager was resolved, not merely staked.
		description := "Bet return"
		detail := "Net winnings"
		switch b.Status {
		case CashedOut:
			description = "Cash out settled"
			detail = "Early settlement"
		case Lost:
			detail = "Total loss"
		case Void:
			detail = "Stake refund"
		}
		entries = append(entries, LedgerEntry{
			ID:          b.ID + "-RETURN",
			Date:        b.Date,
			PartnerName: pName,
			Description: description,
			Detail:      detail,
			Amount:      outcome.FinalReturn,
			Category:    CatBetReturn,
			Status:      string(b.Status),
			BetID:       b.ID,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return compareEntries(entries[i], entries[j]) < 0
	})

	var balance Money
	for i := range entries {
		balance = balance.Add(entries[i].Amount).RoundUnit()
		entries[i].RunningBalance = balance
	}

	// Newest first for display.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries
}

// compareEntries implements the fixed ledger ordering.
func compareEntries(a, b LedgerEntry) int {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	if a.Category != b.Category {
		return int(a.Category) - int(b.Category)
	}
	ka, kb := a.ID, b.ID
	if a.BetID != "" && b.BetID != "" {
		ka, kb = a.BetID, b.BetID
	}
	if c := strings.Compare(ka, kb); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}
