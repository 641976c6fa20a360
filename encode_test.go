package emporium

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestEncodeDecodeBook(t *testing.T) {
	bets, partners, funds, withdrawals := fixture()
	book := NewBook()
	for _, p := range partners {
		if err := book.Append(p); err != nil {
			t.Fatal(err)
		}
	}
	for _, f := range funds {
		if err := book.Append(f); err != nil {
			t.Fatal(err)
		}
	}
	for _, b := range bets {
		if err := book.Append(b); err != nil {
			t.Fatal(err)
		}
	}
	for _, w := range withdrawals {
		if err := book.Append(w); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	if err := EncodeBook(&buf, book); err != nil {
		t.Fatalf("EncodeBook() error = %v", err)
	}

	// One line per record, first field is the discriminator.
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if got, want := len(lines), len(book.records); got != want {
		t.Fatalf("encoded %d lines, want %d", got, want)
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, `{"record":`) {
			t.Errorf("line does not lead with the discriminator: %s", line)
		}
	}

	decoded, err := DecodeBook(&buf)
	if err != nil {
		t.Fatalf("DecodeBook() error = %v", err)
	}
	if !reflect.DeepEqual(decoded.Bets(), book.Bets()) {
		t.Errorf("bets do not survive the round trip:\n%+v\n%+v", decoded.Bets(), book.Bets())
	}
	if !reflect.DeepEqual(decoded.Funds(), book.Funds()) {
		t.Errorf("funds do not survive the round trip:\n%+v\n%+v", decoded.Funds(), book.Funds())
	}
	if !reflect.DeepEqual(decoded.Withdrawals(), book.Withdrawals()) {
		t.Errorf("withdrawals do not survive the round trip:\n%+v\n%+v", decoded.Withdrawals(), book.Withdrawals())
	}
	if !reflect.DeepEqual(decoded.Partners(), book.Partners()) {
		t.Errorf("partners do not survive the round trip:\n%+v\n%+v", decoded.Partners(), book.Partners())
	}
}

func TestDecodeBook_SkipsEmptyLines(t *testing.T) {
	src := `{"record":"partner","id":"P1","date":"2025-06-01","name":"Carlos","commission":50}

{"record":"fund","id":"F1","date":"2025-06-01","partner":"P1","amount":100000,"currency":"COP"}
`
	book, err := DecodeBook(strings.NewReader(src))
	if err != nil {
		t.Fatalf("DecodeBook() error = %v", err)
	}
	if got := len(book.Partners()); got != 1 {
		t.Errorf("got %d partners, want 1", got)
	}
	if got := len(book.Funds()); got != 1 {
		t.Errorf("got %d funds, want 1", got)
	}
	f := book.Funds()[0]
	if got := f.Amount.Decimal().IntPart(); got != 100000 {
		t.Errorf("amount = %d, want 100000", got)
	}
	if got := f.Amount.Currency(); got != "COP" {
		t.Errorf("currency = %q, want COP", got)
	}
}

func TestDecodeBook_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"not json", "not json at all", "could not identify record"},
		{"unknown kind", `{"record":"trade","id":"T1","date":"2025-06-01"}`, "unknown record type"},
		{"invalid record", `{"record":"fund","id":"F1","date":"2025-06-01","amount":-5}`, "amount must be positive"},
		{"bad date", `{"record":"fund","id":"F1","date":"June 1st","amount":10}`, "invalid date"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeBook(strings.NewReader(tc.src))
			if err == nil {
				t.Fatalf("DecodeBook() expected an error containing %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("DecodeBook() error = %q, want it to contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestEncodeRecord_LastWriteWinsOnDisk(t *testing.T) {
	bets, _, _, _ := fixture()
	pending := bets[2] // B3 is pending in the fixture

	var buf bytes.Buffer
	if err := EncodeRecord(&buf, pending); err != nil {
		t.Fatal(err)
	}
	if err := EncodeRecord(&buf, pending.Settle(Lost, nil)); err != nil {
		t.Fatal(err)
	}

	book, err := DecodeBook(&buf)
	if err != nil {
		t.Fatalf("DecodeBook() error = %v", err)
	}
	got, ok := book.Bet(pending.ID)
	if !ok {
		t.Fatalf("bet %q not found after decode", pending.ID)
	}
	if got.Status != Lost {
		t.Errorf("status = %v, want the later write %v", got.Status, Lost)
	}
}
