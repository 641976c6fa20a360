package emporium

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeBook decodes records from a stream of JSONL data, one record per
// line, dispatching on the "record" discriminator.
func DecodeBook(r io.Reader) (*Book, error) {
	book := NewBook()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Record RecordType `json:"record"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(lineBytes), err)
		}

		var decoded Record
		switch identifier.Record {
		case RecPartner:
			var p Partner
			if err := json.Unmarshal(lineBytes, &p); err != nil {
				return nil, err
			}
			decoded = p
		case RecBet:
			var b Bet
			if err := json.Unmarshal(lineBytes, &b); err != nil {
				return nil, err
			}
			decoded = b
		case RecFund:
			var f Fund
			if err := json.Unmarshal(lineBytes, &f); err != nil {
				return nil, err
			}
			decoded = f
		case RecWithdrawal:
			var w Withdrawal
			if err := json.Unmarshal(lineBytes, &w); err != nil {
				return nil, err
			}
			decoded = w
		default:
			return nil, fmt.Errorf("unknown record type %q in line %q", identifier.Record, string(lineBytes))
		}

		if err := book.Append(decoded); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read book: %w", err)
	}
	return book, nil
}

// EncodeRecord writes one record as a JSON line.
func EncodeRecord(w io.Writer, rec Record) error {
	decimal.MarshalJSONWithoutQuotes = true
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal %s record: %w", rec.What(), err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// EncodeBook persists the book's records to an io.Writer in JSONL format,
// in their current order.
func EncodeBook(w io.Writer, book *Book) error {
	for _, rec := range book.records {
		if err := EncodeRecord(w, rec); err != nil {
			return err
		}
	}
	return nil
}
