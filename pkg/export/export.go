// Package export renders graded picks as CSV and a plain-text ledger
// summary.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/phenomenon0/gradebook/pkg/picks"
)

var csvHeader = []string{
	"date", "league", "matchup", "segment", "bet_type", "team", "line",
	"direction", "odds", "risk", "to_win", "status", "pnl", "units",
	"game_id", "grade_reason", "source_text",
}

// WriteCSV writes one row per pick. P&L is blank for unsettled picks.
func WriteCSV(w io.Writer, batch []*picks.Pick, baseUnit decimal.Decimal) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, p := range batch {
		pnl := ""
		if p.PnL.Valid {
			pnl = p.PnL.Decimal.StringFixed(2)
		}
		direction := ""
		if p.Type == picks.BetTotal || p.Type == picks.BetTeamTotal {
			direction = p.Direction.String()
		}
		row := []string{
			p.Date.Format("2006-01-02"),
			string(p.League),
			p.Matchup,
			p.Segment.String(),
			p.Type.String(),
			p.Team,
			strconv.FormatFloat(p.Line, 'f', -1, 64),
			direction,
			strconv.Itoa(p.Odds),
			p.Risk.StringFixed(2),
			p.ToWin.StringFixed(2),
			p.Status.String(),
			pnl,
			p.Units(baseUnit).StringFixed(1),
			p.GameID,
			p.GradeReason,
			p.SourceText,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// LeagueLine is the per-league slice of a Summary.
type LeagueLine struct {
	League      picks.League
	Wins        int
	Losses      int
	Pushes      int
	Ungradeable int
	Net         decimal.Decimal
}

// Summary is the aggregate result of a graded batch.
type Summary struct {
	Picks       int
	Wins        int
	Losses      int
	Pushes      int
	Ungradeable int
	Net         decimal.Decimal
	ByLeague    []LeagueLine
}

// Record renders "12-8-1" style win-loss-push.
func (s *Summary) Record() string {
	return fmt.Sprintf("%d-%d-%d", s.Wins, s.Losses, s.Pushes)
}

// NetUnits converts the net P&L to config units.
func (s *Summary) NetUnits(baseUnit decimal.Decimal) decimal.Decimal {
	if baseUnit.IsZero() {
		return decimal.Zero
	}
	return s.Net.Div(baseUnit)
}

// Summarize aggregates a graded batch into a Summary.
func Summarize(batch []*picks.Pick) *Summary {
	s := &Summary{Picks: len(batch)}
	byLeague := make(map[picks.League]*LeagueLine)

	for _, p := range batch {
		line := byLeague[p.League]
		if line == nil {
			line = &LeagueLine{League: p.League}
			byLeague[p.League] = line
		}

		switch p.Status {
		case picks.StatusWin:
			s.Wins++
			line.Wins++
		case picks.StatusLoss:
			s.Losses++
			line.Losses++
		case picks.StatusPush:
			s.Pushes++
			line.Pushes++
		case picks.StatusUngradeable:
			s.Ungradeable++
			line.Ungradeable++
		}
		if p.PnL.Valid {
			s.Net = s.Net.Add(p.PnL.Decimal)
			line.Net = line.Net.Add(p.PnL.Decimal)
		}
	}

	for _, line := range byLeague {
		s.ByLeague = append(s.ByLeague, *line)
	}
	sort.Slice(s.ByLeague, func(i, j int) bool {
		return s.ByLeague[i].League < s.ByLeague[j].League
	})
	return s
}

// WriteSummary renders the ledger summary as aligned plain text.
func WriteSummary(w io.Writer, s *Summary, baseUnit decimal.Decimal) error {
	_, err := fmt.Fprintf(w, "Picks: %d   Record: %s   Ungradeable: %d   Net: %s units ($%s)\n",
		s.Picks, s.Record(), s.Ungradeable,
		s.NetUnits(baseUnit).StringFixed(1), s.Net.StringFixed(2))
	if err != nil {
		return err
	}

	for _, line := range s.ByLeague {
		league := string(line.League)
		if league == "" {
			league = "unknown"
		}
		units := decimal.Zero
		if !baseUnit.IsZero() {
			units = line.Net.Div(baseUnit)
		}
		_, err = fmt.Fprintf(w, "  %-8s %d-%d-%d", league, line.Wins, line.Losses, line.Pushes)
		if err != nil {
			return err
		}
		if line.Ungradeable > 0 {
			if _, err = fmt.Fprintf(w, " (%d ungradeable)", line.Ungradeable); err != nil {
				return err
			}
		}
		if _, err = fmt.Fprintf(w, "  %s units\n", units.StringFixed(1)); err != nil {
			return err
		}
	}
	return nil
}
