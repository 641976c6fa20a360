package emporium

import (
	"strings"
	"testing"
	"time"
)

func TestNewReport(t *testing.T) {
	bets, _, _, _ := fixture()
	report := NewReport(bets, "All partners", Range{})

	if report.Operations != 4 {
		t.Errorf("Operations = %d, want 4", report.Operations)
	}
	if got := report.TotalStaked.Decimal().IntPart(); got != 36000 {
		t.Errorf("TotalStaked = %d, want 36000", got)
	}
	// Gross profit over settled bets: +20000 -10000 +500.
	if got := report.NetProfit.Decimal().IntPart(); got != 10500 {
		t.Errorf("NetProfit = %d, want 10500", got)
	}
	// 2 wins out of 3 settled.
	if want := Percent(200.0 / 3.0); !report.WinRate.Equal(want) {
		t.Errorf("WinRate = %v, want %v", report.WinRate, want)
	}
	// ROI on the full stake, pending included: 10500/36000.
	if want := Percent(10500.0 / 36000.0 * 100); !report.ROI.Equal(want) {
		t.Errorf("ROI = %v, want %v", report.ROI, want)
	}
	if len(report.Rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(report.Rows))
	}
}

func TestNewReport_PeriodFilter(t *testing.T) {
	bets, _, _, _ := fixture()
	// Only day 3 of the fixture: the lost bet and the dangling win.
	day := NewDate(2025, time.June, 3)
	report := NewReport(bets, "All partners", NewRange(day, day))

	if report.Operations != 2 {
		t.Fatalf("Operations = %d, want 2", report.Operations)
	}
	if got := report.TotalStaked.Decimal().IntPart(); got != 11000 {
		t.Errorf("TotalStaked = %d, want 11000", got)
	}
	if got := report.NetProfit.Decimal().IntPart(); got != -9500 {
		t.Errorf("NetProfit = %d, want -9500", got)
	}
}

func TestNewReport_PendingRowsHaveNoProfit(t *testing.T) {
	bets, _, _, _ := fixture()
	report := NewReport(bets, "All partners", Range{})

	for _, row := range report.Rows {
		if row.Bet.Status.Settled() {
			continue
		}
		if !row.FinalReturn.IsZero() || !row.Profit.IsZero() {
			t.Errorf("pending row %q carries figures: return=%v profit=%v",
				row.Bet.ID, row.FinalReturn.Decimal(), row.Profit.Decimal())
		}
	}
}

func TestReport_WriteCSV(t *testing.T) {
	bets, _, _, _ := fixture()
	report := NewReport(bets, "Carlos", NewRange(NewDate(2025, time.June, 1), NewDate(2025, time.June, 30)))

	var sb strings.Builder
	if err := report.WriteCSV(&sb); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	out := sb.String()

	for _, want := range []string{
		"PERFORMANCE REPORT",
		"Scope,Carlos",
		"Period,2025-06-01 to 2025-06-30",
		"EXECUTIVE SUMMARY",
		"Total operations,4",
		"Capital staked,36000",
		"ID,Date,Event,Market,Odds,Stake,Status,Return,Profit",
		"B1,2025-06-02,Millonarios vs Nacional,1X2,2,20000,WON,40000,20000",
		"B3,2025-06-04,Ruud vs Alcaraz,Winner,3,5000,PENDING,0,0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("CSV output missing %q:\n%s", want, out)
		}
	}
}
