package emporium

import (
	"fmt"
	"sort"
)

// Book holds the raw records of a syndicate: partners, bets, funds and
// withdrawals, in write order. Within one kind the last write of an id wins,
// which is how bets get settled and withdrawals progress without a mutable
// store. All derived views (stats, movement ledger, reports) are recomputed
// from the materialized collections on every read.
type Book struct {
	name    string
	records []Record
}

// NewBook creates an empty book.
func NewBook() *Book {
	return &Book{}
}

// Name returns the book name, derived from its file location.
func (b *Book) Name() string { return b.name }

// Append validates and adds records to the book, in order.
func (b *Book) Append(recs ...Record) error {
	for _, r := range recs {
		validated, err := r.Validate()
		if err != nil {
			return fmt.Errorf("invalid %s record: %w", r.What(), err)
		}
		b.records = append(b.records, validated)
	}
	return nil
}

// latest returns the surviving record per id for one kind, preserving the
// order in which each id first appeared.
func (b *Book) latest(kind RecordType) []Record {
	index := make(map[string]int)
	var out []Record
	for _, r := range b.records {
		if r.What() != kind {
			continue
		}
		if i, ok := index[r.Key()]; ok {
			out[i] = r
			continue
		}
		index[r.Key()] = len(out)
		out = append(out, r)
	}
	return out
}

// Partners returns the current state of every partner.
func (b *Book) Partners() []Partner {
	var out []Partner
	for _, r := range b.latest(RecPartner) {
		out = append(out, r.(Partner))
	}
	return out
}

// Bets returns the current state of every bet.
func (b *Book) Bets() []Bet {
	var out []Bet
	for _, r := range b.latest(RecBet) {
		out = append(out, r.(Bet))
	}
	return out
}

// Funds returns every deposit.
func (b *Book) Funds() []Fund {
	var out []Fund
	for _, r := range b.latest(RecFund) {
		out = append(out, r.(Fund))
	}
	return out
}

// Withdrawals returns the current state of every withdrawal.
func (b *Book) Withdrawals() []Withdrawal {
	var out []Withdrawal
	for _, r := range b.latest(RecWithdrawal) {
		out = append(out, r.(Withdrawal))
	}
	return out
}

// Partner returns the current state of the partner with this id.
func (b *Book) Partner(id string) (Partner, bool) {
	for _, p := range b.Partners() {
		if p.ID == id {
			return p, true
		}
	}
	return Partner{}, false
}

// Bet returns the current state of the bet with this id.
func (b *Book) Bet(id string) (Bet, bool) {
	for _, bet := range b.Bets() {
		if bet.ID == id {
			return bet, true
		}
	}
	return Bet{}, false
}

// Withdrawal returns the current state of the withdrawal with this id.
func (b *Book) Withdrawal(id string) (Withdrawal, bool) {
	for _, w := range b.Withdrawals() {
		if w.ID == id {
			return w, true
		}
	}
	return Withdrawal{}, false
}

// PartnerName resolves a partner reference for display, with sentinels for
// book-wide records and dangling references.
func (b *Book) PartnerName(id string) string {
	if id == "" {
		return GeneralLabel
	}
	if p, ok := b.Partner(id); ok {
		return p.Name
	}
	return UnknownPartnerLabel
}

// Stats aggregates the book's collections for a scope: ScopeAll or one
// partner id.
func (b *Book) Stats(scope string) ScopeStats {
	return AggregateStats(b.Bets(), b.Partners(), scope, b.Funds(), b.Withdrawals())
}

// Movements builds the derived movement ledger for a scope, newest first.
func (b *Book) Movements(scope string) []LedgerEntry {
	return BuildLedger(b.Bets(), b.Funds(), b.Withdrawals(), scope, b.Partners())
}

// Report builds the date-ranged performance report for a partner scope.
func (b *Book) Report(scope string, period Range) Report {
	var bets []Bet
	for _, bet := range b.Bets() {
		if inScope(scope, bet.PartnerID) {
			bets = append(bets, bet)
		}
	}
	scopeName := "All partners"
	if scope != ScopeAll {
		scopeName = b.PartnerName(scope)
	}
	return NewReport(bets, scopeName, period)
}

// stableSort orders records by date, keeping the write order within a day.
func (b *Book) stableSort() {
	sort.SliceStable(b.records, func(i, j int) bool {
		return b.records[i].When().Before(b.records[j].When())
	})
}

// Fmt returns a canonical copy of the book: the surviving write of every id,
// validated, in chronological order.
func (b *Book) Fmt() (*Book, error) {
	canonical := &Book{name: b.name}
	for _, kind := range []RecordType{RecPartner, RecFund, RecBet, RecWithdrawal} {
		if err := canonical.Append(b.latest(kind)...); err != nil {
			return nil, err
		}
	}
	canonical.stableSort()
	return canonical, nil
}
