package grading

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/phenomenon0/gradebook/pkg/games"
	"github.com/phenomenon0/gradebook/pkg/picks"
	"github.com/phenomenon0/gradebook/pkg/teams"
)

var testDate = time.Date(2025, 11, 9, 0, 0, 0, 0, time.UTC)

func finalGame() *games.GameRecord {
	return &games.GameRecord{
		GameID:    "g1",
		Date:      testDate,
		League:    picks.LeagueNFL,
		HomeTeam:  "Miami Dolphins",
		AwayTeam:  "Buffalo Bills",
		HomeScore: 24,
		AwayScore: 20,
		Status:    games.StatusFinal,
		QuarterScores: &games.Lines{
			Home: []int{7, 10, 0, 7},
			Away: []int{3, 7, 7, 3},
		},
	}
}

func spreadPick(team string, line float64) *picks.Pick {
	p := picks.New(testDate)
	p.League = picks.LeagueNFL
	p.Type = picks.BetSpread
	p.Team = team
	p.Resolved = true
	p.Line = line
	p.Odds = -110
	p.Risk = decimal.NewFromInt(55000)
	p.ToWin = decimal.NewFromInt(50000)
	return p
}

func TestGradeSpreadOutcomes(t *testing.T) {
	e := NewEngine(teams.NewRegistry())

	tests := []struct {
		name string
		team string
		line float64
		want picks.Status
		pnl  int64
	}{
		{"underdog covers", "Buffalo Bills", 6.5, picks.StatusWin, 50000},
		{"underdog misses", "Buffalo Bills", 3, picks.StatusLoss, -55000},
		{"exact push", "Buffalo Bills", 4, picks.StatusPush, 0},
		{"favorite covers", "Miami Dolphins", -3.5, picks.StatusWin, 50000},
		{"favorite fails", "Miami Dolphins", -4.5, picks.StatusLoss, -55000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := spreadPick(tt.team, tt.line)
			e.Grade(p, finalGame())

			if p.Status != tt.want {
				t.Fatalf("Status = %v, want %v", p.Status, tt.want)
			}
			if !p.PnL.Valid {
				t.Fatal("PnL null after settled grade")
			}
			if !p.PnL.Decimal.Equal(decimal.NewFromInt(tt.pnl)) {
				t.Errorf("PnL = %s, want %d", p.PnL.Decimal, tt.pnl)
			}
			if p.GameID != "g1" {
				t.Errorf("GameID = %q, want g1", p.GameID)
			}
		})
	}
}

func TestGradeSpreadAbbreviatedGameNames(t *testing.T) {
	e := NewEngine(teams.NewRegistry())

	// Feed files sometimes carry short codes instead of full names.
	g := &games.GameRecord{
		GameID:    "g2",
		Date:      testDate,
		League:    picks.LeagueNBA,
		HomeTeam:  "BOS",
		AwayTeam:  "MIA",
		HomeScore: 100,
		AwayScore: 95,
		Status:    games.StatusFinal,
	}

	p := picks.New(testDate)
	p.League = picks.LeagueNBA
	p.Type = picks.BetSpread
	p.Team = "Miami Heat"
	p.Resolved = true
	p.Line = 4.5
	p.Risk = decimal.NewFromInt(55000)
	p.ToWin = decimal.NewFromInt(50000)
	e.Grade(p, g)

	// Margin -5 plus 4.5 is -0.5.
	if p.Status != picks.StatusLoss {
		t.Errorf("Status = %v (%s), want LOSS", p.Status, p.GradeReason)
	}
}

func TestGradeMoneylineTiePushes(t *testing.T) {
	e := NewEngine(teams.NewRegistry())

	g := finalGame()
	g.HomeScore = 20
	g.AwayScore = 20

	p := spreadPick("Buffalo Bills", 0)
	p.Type = picks.BetMoneyline
	e.Grade(p, g)

	if p.Status != picks.StatusPush {
		t.Errorf("Status = %v, want PUSH on tie", p.Status)
	}
	if !p.PnL.Valid || !p.PnL.Decimal.IsZero() {
		t.Errorf("PnL = %v, want exactly zero", p.PnL)
	}
}

func TestGradeTotal(t *testing.T) {
	e := NewEngine(teams.NewRegistry())

	tests := []struct {
		name string
		line float64
		dir  picks.Direction
		want picks.Status
	}{
		{"over cashes", 43.5, picks.DirectionOver, picks.StatusWin},
		{"over misses", 45.5, picks.DirectionOver, picks.StatusLoss},
		{"under cashes", 45.5, picks.DirectionUnder, picks.StatusWin},
		{"landed exactly", 44, picks.DirectionOver, picks.StatusPush},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := spreadPick("", tt.line)
			p.Type = picks.BetTotal
			p.Team = ""
			p.Direction = tt.dir
			e.Grade(p, finalGame())

			if p.Status != tt.want {
				t.Errorf("Status = %v, want %v", p.Status, tt.want)
			}
		})
	}
}

func TestGradeTeamTotal(t *testing.T) {
	e := NewEngine(teams.NewRegistry())

	p := spreadPick("Buffalo Bills", 19.5)
	p.Type = picks.BetTeamTotal
	p.Direction = picks.DirectionOver
	e.Grade(p, finalGame())

	// Bills scored 20.
	if p.Status != picks.StatusWin {
		t.Errorf("Status = %v, want WIN (20 over 19.5)", p.Status)
	}
}

func TestGradeFirstHalfSpread(t *testing.T) {
	e := NewEngine(teams.NewRegistry())

	// 1H: home 17, away 10.
	p := spreadPick("Buffalo Bills", 6.5)
	p.Segment = picks.SegmentFirstHalf
	e.Grade(p, finalGame())

	if p.Status != picks.StatusLoss {
		t.Errorf("Status = %v, want LOSS (-7 + 6.5)", p.Status)
	}
}

func TestGradeUngradeable(t *testing.T) {
	e := NewEngine(teams.NewRegistry())

	t.Run("no game", func(t *testing.T) {
		p := spreadPick("Buffalo Bills", 3)
		e.Grade(p, nil)
		if p.Status != picks.StatusUngradeable || p.GradeReason != ReasonNoGame {
			t.Errorf("got %v/%q, want UNGRADEABLE/%q", p.Status, p.GradeReason, ReasonNoGame)
		}
		if p.PnL.Valid {
			t.Error("PnL set for ungradeable pick, want null")
		}
	})

	t.Run("game not final", func(t *testing.T) {
		g := finalGame()
		g.Status = games.StatusLive
		p := spreadPick("Buffalo Bills", 3)
		e.Grade(p, g)
		if p.GradeReason != ReasonGameNotFinal {
			t.Errorf("reason = %q, want %q", p.GradeReason, ReasonGameNotFinal)
		}
	})

	t.Run("missing segment data", func(t *testing.T) {
		g := finalGame()
		g.QuarterScores = nil
		p := spreadPick("Buffalo Bills", 3)
		p.Segment = picks.SegmentQ3
		e.Grade(p, g)
		if p.GradeReason != ReasonNoSegmentData {
			t.Errorf("reason = %q, want %q", p.GradeReason, ReasonNoSegmentData)
		}
	})

	t.Run("team not in game", func(t *testing.T) {
		p := spreadPick("Dallas Cowboys", 3)
		e.Grade(p, finalGame())
		if p.GradeReason != ReasonUnresolvedSide {
			t.Errorf("reason = %q, want %q", p.GradeReason, ReasonUnresolvedSide)
		}
	})
}

func TestRegradeKeepsAuditTrail(t *testing.T) {
	e := NewEngine(teams.NewRegistry())

	p := spreadPick("Buffalo Bills", 3)
	e.Grade(p, nil)
	if p.Status != picks.StatusUngradeable {
		t.Fatalf("first grade = %v, want UNGRADEABLE", p.Status)
	}

	// The game file arrives later; re-grading must keep the prior result.
	e.Grade(p, finalGame())
	if p.Status != picks.StatusLoss {
		t.Errorf("second grade = %v, want LOSS", p.Status)
	}
	if p.PreviousStatus == nil || *p.PreviousStatus != picks.StatusUngradeable {
		t.Errorf("PreviousStatus = %v, want UNGRADEABLE", p.PreviousStatus)
	}
}

func TestGradeDerivesToWinFromOdds(t *testing.T) {
	e := NewEngine(teams.NewRegistry())

	p := spreadPick("Buffalo Bills", 6.5)
	p.ToWin = decimal.Zero
	p.Odds = -110
	e.Grade(p, finalGame())

	if p.Status != picks.StatusWin {
		t.Fatalf("Status = %v, want WIN", p.Status)
	}
	want := decimal.NewFromInt(50000)
	if !p.PnL.Decimal.Equal(want) {
		t.Errorf("PnL = %s, want %s derived from -110", p.PnL.Decimal, want)
	}
}

func TestSettle(t *testing.T) {
	risk := decimal.NewFromInt(110)
	toWin := decimal.NewFromInt(100)

	tests := []struct {
		status picks.Status
		valid  bool
		want   int64
	}{
		{picks.StatusWin, true, 100},
		{picks.StatusLoss, true, -110},
		{picks.StatusPush, true, 0},
		{picks.StatusUngradeable, false, 0},
		{picks.StatusPending, false, 0},
	}

	for _, tt := range tests {
		got := Settle(tt.status, risk, toWin)
		if got.Valid != tt.valid {
			t.Errorf("Settle(%v).Valid = %v, want %v", tt.status, got.Valid, tt.valid)
			continue
		}
		if tt.valid && !got.Decimal.Equal(decimal.NewFromInt(tt.want)) {
			t.Errorf("Settle(%v) = %s, want %d", tt.status, got.Decimal, tt.want)
		}
	}
}
