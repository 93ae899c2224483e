package espn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/phenomenon0/gradebook/pkg/games"
	"github.com/phenomenon0/gradebook/pkg/picks"
)

const scoreboardJSON = `{
  "events": [
    {
      "id": "401547700",
      "date": "2025-11-09T18:00Z",
      "status": {"type": {"state": "post", "completed": true}},
      "competitions": [{
        "competitors": [
          {
            "homeAway": "home",
            "score": "24",
            "team": {"displayName": "Miami Dolphins"},
            "linescores": [{"value": 7}, {"value": 10}, {"value": 0}, {"value": 7}]
          },
          {
            "homeAway": "away",
            "score": "20",
            "team": {"displayName": "Buffalo Bills"},
            "linescores": [{"value": 3}, {"value": 14}, {"value": 0}, {"value": 3}]
          }
        ]
      }]
    }
  ]
}`

func TestFetchDay(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("dates"); got != "20251109" {
			t.Errorf("dates = %q, want 20251109", got)
		}
		w.Write([]byte(scoreboardJSON))
	}))
	defer srv.Close()

	c := New()
	c.baseURL = srv.URL

	day := time.Date(2025, 11, 9, 0, 0, 0, 0, time.UTC)
	records, err := c.FetchDay(context.Background(), picks.LeagueNFL, day)
	if err != nil {
		t.Fatalf("FetchDay: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	g := records[0]
	if g.GameID != "401547700" || g.League != picks.LeagueNFL {
		t.Errorf("identity = %q/%q", g.GameID, g.League)
	}
	if g.HomeTeam != "Miami Dolphins" || g.HomeScore != 24 {
		t.Errorf("home = %q %d", g.HomeTeam, g.HomeScore)
	}
	if g.AwayTeam != "Buffalo Bills" || g.AwayScore != 20 {
		t.Errorf("away = %q %d", g.AwayTeam, g.AwayScore)
	}
	if g.Status != games.StatusFinal {
		t.Errorf("status = %q, want final", g.Status)
	}
	if g.QuarterScores == nil || len(g.QuarterScores.Home) != 4 {
		t.Fatalf("quarter scores = %v, want 4 periods", g.QuarterScores)
	}
	if g.QuarterScores.Away[1] != 14 {
		t.Errorf("away Q2 = %d, want 14", g.QuarterScores.Away[1])
	}
	if g.HalfScores != nil {
		t.Error("NFL linescores landed in HalfScores, want QuarterScores")
	}
}

func TestFetchDayCollegeBasketballUsesHalves(t *testing.T) {
	body := `{
	  "events": [{
	    "id": "1", "date": "2025-11-09T23:00Z",
	    "status": {"type": {"state": "post", "completed": true}},
	    "competitions": [{
	      "competitors": [
	        {"homeAway": "home", "score": "78", "team": {"displayName": "Duke Blue Devils"},
	         "linescores": [{"value": 40}, {"value": 38}]},
	        {"homeAway": "away", "score": "70", "team": {"displayName": "Gonzaga Bulldogs"},
	         "linescores": [{"value": 31}, {"value": 39}]}
	      ]
	    }]
	  }]
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()

	c := New()
	c.baseURL = srv.URL

	records, err := c.FetchDay(context.Background(), picks.LeagueNCAAB, time.Now())
	if err != nil {
		t.Fatalf("FetchDay: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	g := records[0]
	if g.HalfScores == nil || g.HalfScores.Home[0] != 40 {
		t.Fatalf("half scores = %v, want halves for college basketball", g.HalfScores)
	}
	if g.QuarterScores != nil {
		t.Error("college basketball linescores landed in QuarterScores")
	}
}

func TestFetchDayUnknownLeague(t *testing.T) {
	c := New()
	if _, err := c.FetchDay(context.Background(), picks.League("nhl"), time.Now()); err == nil {
		t.Fatal("FetchDay(nhl) = nil error, want error")
	}
}

func TestFetchDayHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New()
	c.baseURL = srv.URL

	if _, err := c.FetchDay(context.Background(), picks.LeagueNFL, time.Now()); err == nil {
		t.Fatal("FetchDay with 502 = nil error, want error")
	}
}
