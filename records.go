package emporium

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RecordType is a typed string identifying a record kind in the book.
type RecordType string

// Record kinds used as the JSONL discriminator.
const (
	RecPartner    RecordType = "partner"
	RecBet        RecordType = "bet"
	RecFund       RecordType = "fund"
	RecWithdrawal RecordType = "withdrawal"
)

// Record is the common interface of the four base collections. Records are
// append-only facts: writing a record with an existing id supersedes the
// previous write (that is how a wager gets settled and how a withdrawal
// progresses through its statuses).
type Record interface {
	What() RecordType // What returns the record kind (e.g. "bet", "fund").
	When() Date       // When returns the date the fact occurred.
	Key() string      // Key returns the record's identity within its kind.
	Validate() (Record, error)
}

type baseRec struct {
	Kind RecordType `json:"record"`         // Kind discriminates the record type in the book file.
	ID   string     `json:"id"`             // ID is the record's identity; re-writing an id supersedes it.
	Date Date       `json:"date"`           // Date is the day the fact occurred.
	Note string     `json:"note,omitempty"` // Note is an optional free-form annotation.
}

func (r baseRec) What() RecordType { return r.Kind }
func (r baseRec) When() Date       { return r.Date }
func (r baseRec) Key() string      { return r.ID }

// MarshalJSON implements the json.Marshaler interface for baseRec.
func (r baseRec) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", r.Kind)
	w.Append("id", r.ID)
	w.Append("date", r.Date)
	w.Optional("note", r.Note)
	return w.MarshalJSON()
}

// validate checks the base fields. It sets the date to today if it's zero.
// It's meant to be embedded in the record validation methods.
func (r *baseRec) validate() error {
	if r.Date.IsZero() {
		r.Date = Today()
	}
	if r.ID == "" {
		return fmt.Errorf("%s record requires an id", r.Kind)
	}
	return nil
}

// --- Bet ---

// BetStatus is the lifecycle status of a wager. A bet is created PENDING and
// transitions exactly once to a terminal status; a reopen is a new write of
// the same id, not a state machine event.
type BetStatus string

const (
	Pending   BetStatus = "PENDING"
	Won       BetStatus = "WON"
	Lost      BetStatus = "LOST"
	CashedOut BetStatus = "CASHED_OUT"
	Void      BetStatus = "VOID"
)

// Settled reports whether the status is terminal.
func (s BetStatus) Settled() bool { return s != Pending && s != "" }

// ParseBetStatus parses a string into a BetStatus.
func ParseBetStatus(s string) (BetStatus, error) {
	switch BetStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case Pending:
		return Pending, nil
	case Won:
		return Won, nil
	case Lost:
		return Lost, nil
	case CashedOut:
		return CashedOut, nil
	case Void:
		return Void, nil
	default:
		return "", fmt.Errorf("unknown bet status: %q", s)
	}
}

// Bet represents a single wager placed on behalf of a partner. Its monetary
// outcome (final return, profit shares) is never stored: it is derived from
// stake, odds, status and the partner's commission by ResolveOutcome.
type Bet struct {
	baseRec
	PartnerID string          // owning partner; may reference an unknown partner (folded into the all scope only).
	Sport     string          // e.g. "Football".
	HomeTeam  string
	AwayTeam  string
	Market    string          // human description of the market, e.g. "Over 2.5".
	Odds      decimal.Decimal // decimal odds, >= 1.
	Stake     Money           // capital committed, >= 0.
	Status    BetStatus
	CashOut   *Money // early-settlement amount; required iff Status is CASHED_OUT.
}

// NewBet creates a pending Bet.
func NewBet(day Date, id, partnerID, sport, home, away, market string, odds decimal.Decimal, stake Money, note string) Bet {
	return Bet{
		baseRec:   baseRec{Kind: RecBet, ID: id, Date: day, Note: note},
		PartnerID: partnerID,
		Sport:     sport,
		HomeTeam:  home,
		AwayTeam:  away,
		Market:    market,
		Odds:      odds,
		Stake:     stake,
		Status:    Pending,
	}
}

// Settle returns a copy of the bet carrying the terminal status. The copy is
// a new write of the same id. cashOut is only meaningful for CASHED_OUT.
func (b Bet) Settle(status BetStatus, cashOut *Money) Bet {
	b.Status = status
	b.CashOut = cashOut
	return b
}

// Event names the wager's event for display.
func (b Bet) Event() string {
	return b.HomeTeam + " vs " + b.AwayTeam
}

// MarshalJSON implements the json.Marshaler interface for Bet.
func (b Bet) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(b.baseRec)
	w.Append("partner", b.PartnerID)
	w.Optional("sport", b.Sport)
	w.Optional("home", b.HomeTeam)
	w.Optional("away", b.AwayTeam)
	w.Optional("market", b.Market)
	w.Append("odds", b.Odds)
	w.Append("stake", b.Stake.Decimal())
	w.Optional("currency", b.Stake.Currency())
	w.Append("status", b.Status)
	if b.CashOut != nil {
		w.Append("cashout", b.CashOut.Decimal())
	}
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Bet.
func (b *Bet) UnmarshalJSON(data []byte) error {
	var temp struct {
		baseRec
		Partner  string           `json:"partner"`
		Sport    string           `json:"sport"`
		Home     string           `json:"home"`
		Away     string           `json:"away"`
		Market   string           `json:"market"`
		Odds     decimal.Decimal  `json:"odds"`
		Stake    decimal.Decimal  `json:"stake"`
		Currency string           `json:"currency"`
		Status   BetStatus        `json:"status"`
		CashOut  *decimal.Decimal `json:"cashout"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	b.baseRec = temp.baseRec
	b.PartnerID = temp.Partner
	b.Sport = temp.Sport
	b.HomeTeam = temp.Home
	b.AwayTeam = temp.Away
	b.Market = temp.Market
	b.Odds = temp.Odds
	b.Stake = M(temp.Stake, temp.Currency)
	b.Status = temp.Status
	if temp.CashOut != nil {
		m := M(*temp.CashOut, temp.Currency)
		b.CashOut = &m
	}
	return nil
}

// Validate checks the Bet's fields: non-negative stake, odds of at least 1,
// a known status, and a cash-out amount present exactly when the status is
// CASHED_OUT. Invalid input is rejected, never coerced.
func (b Bet) Validate() (Record, error) {
	var errs error
	if err := b.baseRec.validate(); err != nil {
		errs = errors.Join(errs, err)
	}
	if b.PartnerID == "" {
		errs = errors.Join(errs, fmt.Errorf("bet %q requires a partner", b.ID))
	}
	if b.Stake.IsNegative() {
		errs = errors.Join(errs, fmt.Errorf("bet %q stake must not be negative, got %v", b.ID, b.Stake))
	}
	if b.Odds.LessThan(decimal.NewFromInt(1)) {
		errs = errors.Join(errs, fmt.Errorf("bet %q odds must be at least 1.0, got %v", b.ID, b.Odds))
	}
	if _, err := ParseBetStatus(string(b.Status)); err != nil {
		errs = errors.Join(errs, fmt.Errorf("bet %q: %w", b.ID, err))
	}
	if b.Status == CashedOut && b.CashOut == nil {
		errs = errors.Join(errs, fmt.Errorf("bet %q is cashed out but has no cash-out amount", b.ID))
	}
	if b.Status != CashedOut && b.CashOut != nil {
		errs = errors.Join(errs, fmt.Errorf("bet %q carries a cash-out amount but is %s", b.ID, b.Status))
	}
	if c := b.Stake.Currency(); c != "" {
		if err := ValidateCurrency(c); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	return b, errs
}

// --- Partner ---

// Partner is a member of the syndicate. Commission is the share of profit
// retained by the operator; the remainder belongs to the partner. Losses are
// never shared: they are borne entirely by the partner.
type Partner struct {
	baseRec
	Name       string
	Commission Percent // operator's share of profit, in [0,100].
	Inactive   bool
}

// NewPartner creates a Partner joining on the given day.
func NewPartner(day Date, id, name string, commission Percent, note string) Partner {
	return Partner{
		baseRec:    baseRec{Kind: RecPartner, ID: id, Date: day, Note: note},
		Name:       name,
		Commission: commission,
	}
}

// MarshalJSON implements the json.Marshaler interface for Partner.
func (p Partner) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(p.baseRec)
	w.Append("name", p.Name)
	w.Append("commission", decimal.NewFromFloat(float64(p.Commission)))
	if p.Inactive {
		w.Append("inactive", true)
	}
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Partner.
func (p *Partner) UnmarshalJSON(data []byte) error {
	var temp struct {
		baseRec
		Name       string  `json:"name"`
		Commission float64 `json:"commission"`
		Inactive   bool    `json:"inactive"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	p.baseRec = temp.baseRec
	p.Name = temp.Name
	p.Commission = Percent(temp.Commission)
	p.Inactive = temp.Inactive
	return nil
}

// Validate checks the Partner's fields.
func (p Partner) Validate() (Record, error) {
	var errs error
	if err := p.baseRec.validate(); err != nil {
		errs = errors.Join(errs, err)
	}
	if p.Name == "" {
		errs = errors.Join(errs, fmt.Errorf("partner %q requires a name", p.ID))
	}
	if p.Commission < 0 || p.Commission > 100 {
		errs = errors.Join(errs, fmt.Errorf("partner %q commission must be within [0,100], got %v", p.ID, p.Commission))
	}
	return p, errs
}

// --- Fund ---

// Fund is a capital deposit. A fund without a partner is book-wide: it is
// folded into the all-partners scope only.
type Fund struct {
	baseRec
	PartnerID   string // empty for a book-wide deposit.
	Amount      Money  // > 0.
	Method      string // how the money came in, e.g. "wire".
	Description string
}

// NewFund creates a deposit record.
func NewFund(day Date, id, partnerID string, amount Money, method, description string) Fund {
	return Fund{
		baseRec:     baseRec{Kind: RecFund, ID: id, Date: day},
		PartnerID:   partnerID,
		Amount:      amount,
		Method:      method,
		Description: description,
	}
}

// MarshalJSON implements the json.Marshaler interface for Fund.
func (f Fund) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(f.baseRec)
	w.Optional("partner", f.PartnerID)
	w.Append("amount", f.Amount.Decimal())
	w.Optional("currency", f.Amount.Currency())
	w.Optional("method", f.Method)
	w.Optional("description", f.Description)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Fund.
func (f *Fund) UnmarshalJSON(data []byte) error {
	var temp struct {
		baseRec
		Partner     string          `json:"partner"`
		Amount      decimal.Decimal `json:"amount"`
		Currency    string          `json:"currency"`
		Method      string          `json:"method"`
		Description string          `json:"description"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	f.baseRec = temp.baseRec
	f.PartnerID = temp.Partner
	f.Amount = M(temp.Amount, temp.Currency)
	f.Method = temp.Method
	f.Description = temp.Description
	return nil
}

// Validate checks the Fund's fields.
func (f Fund) Validate() (Record, error) {
	var errs error
	if err := f.baseRec.validate(); err != nil {
		errs = errors.Join(errs, err)
	}
	if !f.Amount.IsPositive() {
		errs = errors.Join(errs, fmt.Errorf("fund %q amount must be positive, got %v", f.ID, f.Amount))
	}
	if c := f.Amount.Currency(); c != "" {
		if err := ValidateCurrency(c); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	return f, errs
}

// --- Withdrawal ---

// WithdrawalStatus progresses REQUESTED -> {APPROVED|REJECTED} -> PAID.
// REJECTED and PAID are terminal. Only PAID withdrawals affect balances.
type WithdrawalStatus string

const (
	Requested WithdrawalStatus = "REQUESTED"
	Approved  WithdrawalStatus = "APPROVED"
	Paid      WithdrawalStatus = "PAID"
	Rejected  WithdrawalStatus = "REJECTED"
)

// ParseWithdrawalStatus parses a string into a WithdrawalStatus.
func ParseWithdrawalStatus(s string) (WithdrawalStatus, error) {
	switch WithdrawalStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case Requested:
		return Requested, nil
	case Approved:
		return Approved, nil
	case Paid:
		return Paid, nil
	case Rejected:
		return Rejected, nil
	default:
		return "", fmt.Errorf("unknown withdrawal status: %q", s)
	}
}

// Withdrawal is a partner's request to take profit out of the book.
type Withdrawal struct {
	baseRec
	PartnerID string
	Amount    Money // > 0.
	Status    WithdrawalStatus
}

// NewWithdrawal creates a withdrawal request.
func NewWithdrawal(day Date, id, partnerID string, amount Money) Withdrawal {
	return Withdrawal{
		baseRec:   baseRec{Kind: RecWithdrawal, ID: id, Date: day},
		PartnerID: partnerID,
		Amount:    amount,
		Status:    Requested,
	}
}

// Progress returns a copy of the withdrawal carrying the new status,
// as a new write of the same id.
func (w Withdrawal) Progress(status WithdrawalStatus) Withdrawal {
	w.Status = status
	return w
}

// MarshalJSON implements the json.Marshaler interface for Withdrawal.
func (w Withdrawal) MarshalJSON() ([]byte, error) {
	var jw jsonObjectWriter
	jw.EmbedFrom(w.baseRec)
	jw.Append("partner", w.PartnerID)
	jw.Append("amount", w.Amount.Decimal())
	jw.Optional("currency", w.Amount.Currency())
	jw.Append("status", w.Status)
	return jw.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Withdrawal.
func (w *Withdrawal) UnmarshalJSON(data []byte) error {
	var temp struct {
		baseRec
		Partner  string           `json:"partner"`
		Amount   decimal.Decimal  `json:"amount"`
		Currency string           `json:"currency"`
		Status   WithdrawalStatus `json:"status"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	w.baseRec = temp.baseRec
	w.PartnerID = temp.Partner
	w.Amount = M(temp.Amount, temp.Currency)
	w.Status = temp.Status
	return nil
}

// Validate checks the Withdrawal's fields.
func (w Withdrawal) Validate() (Record, error) {
	var errs error
	if err := w.baseRec.validate(); err != nil {
		errs = errors.Join(errs, err)
	}
	if w.PartnerID == "" {
		errs = errors.Join(errs, fmt.Errorf("withdrawal %q requires a partner", w.ID))
	}
	if !w.Amount.IsPositive() {
		errs = errors.Join(errs, fmt.Errorf("withdrawal %q amount must be positive, got %v", w.ID, w.Amount))
	}
	if _, err := ParseWithdrawalStatus(string(w.Status)); err != nil {
		errs = errors.Join(errs, fmt.Errorf("withdrawal %q: %w", w.ID, err))
	}
	if c := w.Amount.Currency(); c != "" {
		if err := ValidateCurrency(c); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	return w, errs
}
