package pipeline

import (
	"testing"
	"time"

	"github.com/phenomenon0/gradebook/pkg/chat"
	"github.com/phenomenon0/gradebook/pkg/config"
	"github.com/phenomenon0/gradebook/pkg/games"
	"github.com/phenomenon0/gradebook/pkg/picks"
)

func TestRunEndToEnd(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	day := time.Date(2025, 11, 9, 13, 0, 0, 0, loc)

	msgs := []chat.Message{
		{Role: chat.RoleProposer, Timestamp: day, Text: "Bills +3 1h", Seq: 0},
		{Role: chat.RoleConfirmer, Timestamp: day.Add(time.Minute), Text: "In $50", Seq: 1},
	}

	index := games.NewIndex([]*games.GameRecord{{
		GameID:    "g1",
		Date:      time.Date(2025, 11, 9, 0, 0, 0, 0, loc),
		League:    picks.LeagueNFL,
		HomeTeam:  "Miami Dolphins",
		AwayTeam:  "Buffalo Bills",
		HomeScore: 24,
		AwayScore: 20,
		Status:    games.StatusFinal,
		QuarterScores: &games.Lines{
			Home: []int{7, 10, 0, 7},
			Away: []int{3, 14, 0, 3},
		},
	}}, loc)

	var picked, graded int
	pl := New(config.Default(), nil)
	pl.OnPick = func(*picks.Pick) { picked++ }
	pl.OnGrade = func(*picks.Pick) { graded++ }

	result := pl.Run(msgs, index)
	if len(result.Picks) != 1 {
		t.Fatalf("got %d picks, want 1", len(result.Picks))
	}
	if picked != 1 || graded != 1 {
		t.Errorf("observers: picked=%d graded=%d, want 1/1", picked, graded)
	}

	p := result.Picks[0]
	// 1H away 17, home 17: Bills +3 in the first half wins.
	if p.Status != picks.StatusWin {
		t.Errorf("Status = %v (%s), want WIN", p.Status, p.GradeReason)
	}
	if p.GameID != "g1" {
		t.Errorf("GameID = %q, want g1", p.GameID)
	}
	if result.Summary.Record() != "1-0-0" {
		t.Errorf("Record = %q, want 1-0-0", result.Summary.Record())
	}
}

func TestRunUnmatchedPickIsUngradeable(t *testing.T) {
	loc := time.UTC
	day := time.Date(2025, 11, 9, 13, 0, 0, 0, loc)

	msgs := []chat.Message{
		{Role: chat.RoleConfirmer, Timestamp: day, Text: "Lakers -6.5 -110 $50", Seq: 0},
	}

	// Empty slate: nothing to match.
	result := New(config.Default(), nil).Run(msgs, games.NewIndex(nil, loc))
	if len(result.Picks) != 1 {
		t.Fatalf("got %d picks, want 1", len(result.Picks))
	}
	if result.Picks[0].Status != picks.StatusUngradeable {
		t.Errorf("Status = %v, want UNGRADEABLE", result.Picks[0].Status)
	}
	if result.Summary.Ungradeable != 1 {
		t.Errorf("Summary.Ungradeable = %d, want 1", result.Summary.Ungradeable)
	}
}

func TestRunMatchesGameWithFeedTimestamp(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	day := time.Date(2025, 11, 9, 13, 0, 0, 0, loc)

	msgs := []chat.Message{
		{Role: chat.RoleProposer, Timestamp: day, Text: "Bills +3", Seq: 0},
		{Role: chat.RoleConfirmer, Timestamp: day.Add(time.Minute), Text: "In $50", Seq: 1},
	}

	// Feed files carry kickoff in UTC. An 8:15pm ET game on Nov 9 is
	// 01:15 UTC on Nov 10; it must still land in the Nov 9 bucket.
	kickoff := time.Date(2025, 11, 10, 1, 15, 0, 0, time.UTC)
	index := games.NewIndex([]*games.GameRecord{{
		GameID:    "g1",
		Date:      kickoff,
		League:    picks.LeagueNFL,
		HomeTeam:  "Miami Dolphins",
		AwayTeam:  "Buffalo Bills",
		HomeScore: 20,
		AwayScore: 24,
		Status:    games.StatusFinal,
	}}, loc)

	result := New(config.Default(), nil).Run(msgs, index)
	if len(result.Picks) != 1 {
		t.Fatalf("got %d picks, want 1", len(result.Picks))
	}

	p := result.Picks[0]
	if p.Status != picks.StatusWin {
		t.Errorf("Status = %v (%s), want WIN", p.Status, p.GradeReason)
	}
	if p.GameID != "g1" {
		t.Errorf("GameID = %q, want g1", p.GameID)
	}
}
