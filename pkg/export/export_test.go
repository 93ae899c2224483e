package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/phenomenon0/gradebook/pkg/picks"
)

func gradedPick(league picks.League, status picks.Status, pnl int64) *picks.Pick {
	p := picks.New(time.Date(2025, 11, 9, 0, 0, 0, 0, time.UTC))
	p.League = league
	p.Type = picks.BetSpread
	p.Team = "Buffalo Bills"
	p.Odds = -110
	p.Risk = decimal.NewFromInt(55000)
	p.ToWin = decimal.NewFromInt(50000)
	p.Status = status
	if status.Settled() {
		p.PnL = decimal.NullDecimal{Decimal: decimal.NewFromInt(pnl), Valid: true}
	}
	return p
}

func TestSummarize(t *testing.T) {
	batch := []*picks.Pick{
		gradedPick(picks.LeagueNFL, picks.StatusWin, 50000),
		gradedPick(picks.LeagueNFL, picks.StatusLoss, -55000),
		gradedPick(picks.LeagueNBA, picks.StatusPush, 0),
		gradedPick(picks.LeagueNBA, picks.StatusUngradeable, 0),
	}

	s := Summarize(batch)
	if s.Record() != "1-1-1" {
		t.Errorf("Record = %q, want 1-1-1", s.Record())
	}
	if s.Ungradeable != 1 {
		t.Errorf("Ungradeable = %d, want 1", s.Ungradeable)
	}
	if !s.Net.Equal(decimal.NewFromInt(-5000)) {
		t.Errorf("Net = %s, want -5000", s.Net)
	}
	if len(s.ByLeague) != 2 {
		t.Fatalf("ByLeague = %d entries, want 2", len(s.ByLeague))
	}

	units := s.NetUnits(decimal.NewFromInt(1000))
	if !units.Equal(decimal.NewFromInt(-5)) {
		t.Errorf("NetUnits = %s, want -5", units)
	}
}

func TestWriteCSV(t *testing.T) {
	batch := []*picks.Pick{
		gradedPick(picks.LeagueNFL, picks.StatusWin, 50000),
		gradedPick(picks.LeagueNFL, picks.StatusUngradeable, 0),
	}

	var buf strings.Builder
	if err := WriteCSV(&buf, batch, decimal.NewFromInt(1000)); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("re-reading CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(rows))
	}
	header := rows[0]
	if header[0] != "date" || header[len(header)-1] != "source_text" {
		t.Errorf("unexpected header %v", header)
	}

	// Settled pick carries P&L, ungradeable leaves it blank.
	pnlCol := indexOf(header, "pnl")
	if rows[1][pnlCol] != "50000.00" {
		t.Errorf("win pnl = %q, want 50000.00", rows[1][pnlCol])
	}
	if rows[2][pnlCol] != "" {
		t.Errorf("ungradeable pnl = %q, want blank", rows[2][pnlCol])
	}
}

func indexOf(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}

func TestWriteSummary(t *testing.T) {
	s := Summarize([]*picks.Pick{
		gradedPick(picks.LeagueNFL, picks.StatusWin, 50000),
	})

	var buf strings.Builder
	if err := WriteSummary(&buf, s, decimal.NewFromInt(1000)); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Record: 1-0-0") {
		t.Errorf("summary missing record: %q", out)
	}
	if !strings.Contains(out, "nfl") {
		t.Errorf("summary missing league line: %q", out)
	}
}
