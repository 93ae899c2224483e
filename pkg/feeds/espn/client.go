// Package espn fetches final scores and period lines from the public ESPN
// scoreboard API and converts them into game records.
package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/phenomenon0/gradebook/pkg/games"
	"github.com/phenomenon0/gradebook/pkg/picks"
)

const BaseURL = "https://site.api.espn.com/apis/site/v2/sports"

// sportPaths maps a league to its ESPN scoreboard path.
var sportPaths = map[picks.League]string{
	picks.LeagueNFL:   "football/nfl",
	picks.LeagueNCAAF: "football/college-football",
	picks.LeagueNBA:   "basketball/nba",
	picks.LeagueNCAAB: "basketball/mens-college-basketball",
}

// Client handles ESPN API requests with client-side rate limiting.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	userAgent  string
	baseURL    string
}

// New creates an ESPN client throttled to a couple of requests per second.
func New() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(2), 4),
		userAgent:  "Mozilla/5.0 (compatible; gradebook/1.0)",
		baseURL:    BaseURL,
	}
}

// scoreboard is the slice of the ESPN response we care about.
type scoreboard struct {
	Events []struct {
		ID     string `json:"id"`
		Date   string `json:"date"`
		Status struct {
			Type struct {
				State     string `json:"state"` // pre, in, post
				Completed bool   `json:"completed"`
			} `json:"type"`
		} `json:"status"`
		Competitions []struct {
			Competitors []struct {
				HomeAway string `json:"homeAway"`
				Score    string `json:"score"`
				Team     struct {
					DisplayName string `json:"displayName"`
				} `json:"team"`
				Linescores []struct {
					Value float64 `json:"value"`
				} `json:"linescores"`
			} `json:"competitors"`
		} `json:"competitions"`
	} `json:"events"`
}

// FetchDay returns all games for a league on the given date.
func (c *Client) FetchDay(ctx context.Context, league picks.League, date time.Time) ([]games.GameRecord, error) {
	path, ok := sportPaths[league]
	if !ok {
		return nil, fmt.Errorf("no ESPN path for league %q", league)
	}

	url := fmt.Sprintf("%s/%s/scoreboard?dates=%s", c.baseURL, path, date.Format("20060102"))
	var sb scoreboard
	if err := c.fetch(ctx, url, &sb); err != nil {
		return nil, err
	}
	return c.convert(league, &sb)
}

// FetchRange walks a date range one day at a time.
func (c *Client) FetchRange(ctx context.Context, league picks.League, from, to time.Time) ([]games.GameRecord, error) {
	var out []games.GameRecord
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		day, err := c.FetchDay(ctx, league, d)
		if err != nil {
			return nil, fmt.Errorf("fetch %s %s: %w", league, d.Format("2006-01-02"), err)
		}
		out = append(out, day...)
	}
	return out, nil
}

func (c *Client) fetch(ctx context.Context, url string, dst interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("ESPN API error: status=%d, body=%s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// convert maps an ESPN scoreboard to game records. College basketball
// linescores are halves; everything else reports quarters, with extra
// entries for overtime.
func (c *Client) convert(league picks.League, sb *scoreboard) ([]games.GameRecord, error) {
	var out []games.GameRecord

	for _, ev := range sb.Events {
		if len(ev.Competitions) == 0 {
			continue
		}

		g := games.GameRecord{
			GameID: ev.ID,
			League: league,
			Status: statusOf(ev.Status.Type.State),
		}
		if ts, err := time.Parse("2006-01-02T15:04Z", ev.Date); err == nil {
			g.Date = ts
		} else if ts, err := time.Parse(time.RFC3339, ev.Date); err == nil {
			g.Date = ts
		}

		var homePeriods, awayPeriods []int
		for _, comp := range ev.Competitions[0].Competitors {
			score, _ := strconv.Atoi(comp.Score)
			periods := make([]int, 0, len(comp.Linescores))
			for _, ls := range comp.Linescores {
				periods = append(periods, int(ls.Value))
			}

			switch comp.HomeAway {
			case "home":
				g.HomeTeam = comp.Team.DisplayName
				g.HomeScore = score
				homePeriods = periods
			case "away":
				g.AwayTeam = comp.Team.DisplayName
				g.AwayScore = score
				awayPeriods = periods
			}
		}

		if len(homePeriods) > 0 && len(awayPeriods) > 0 {
			lines := &games.Lines{Home: homePeriods, Away: awayPeriods}
			if league == picks.LeagueNCAAB {
				g.HalfScores = lines
			} else {
				g.QuarterScores = lines
			}
		}

		out = append(out, g)
	}
	return out, nil
}

func statusOf(state string) string {
	switch state {
	case "post":
		return games.StatusFinal
	case "in":
		return games.StatusLive
	default:
		return games.StatusScheduled
	}
}
