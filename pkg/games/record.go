// Package games holds the read-only game index the grader consults, the
// fuzzy pick-to-game matcher, and the segment score extractor.
package games

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/phenomenon0/gradebook/pkg/picks"
)

// Game status values as they appear in feed files.
const (
	StatusScheduled = "scheduled"
	StatusLive      = "live"
	StatusFinal     = "final"
)

// Lines holds per-period scores for one game, home and away in parallel.
// For college feeds the entries are true halves; for NBA feeds the "half"
// fields actually carry quarters (see segments.go).
type Lines struct {
	Home []int `json:"home"`
	Away []int `json:"away"`
}

// GameRecord is the external game schema. The core treats it as
// authoritative, read-only input.
type GameRecord struct {
	GameID    string       `json:"game_id"`
	Date      time.Time    `json:"date"`
	League    picks.League `json:"league"`
	HomeTeam  string       `json:"home_team"`
	AwayTeam  string       `json:"away_team"`
	HomeScore int          `json:"home_score"`
	AwayScore int          `json:"away_score"`
	Status    string       `json:"status"`

	QuarterScores *Lines `json:"quarter_scores,omitempty"`
	HalfScores    *Lines `json:"half_scores,omitempty"`
}

// Final reports whether the game has a final score.
func (g *GameRecord) Final() bool {
	return g.Status == StatusFinal
}

// indexKey builds the (date, league) bucket key.
func indexKey(date time.Time, league picks.League) string {
	return date.Format("2006-01-02") + "|" + string(league)
}

// Index is a queryable game store keyed by (date, league). All dates are
// bucketed in a single location: feed files store kickoff times in UTC, so
// a US evening game would otherwise land on the next calendar day and
// never meet the picks placed on its local date. Read-only after
// construction.
type Index struct {
	buckets map[string][]*GameRecord
	loc     *time.Location
	count   int
}

// NewIndex builds an index over the given records, bucketing game dates in
// loc. A nil loc uses the process-local zone.
func NewIndex(records []*GameRecord, loc *time.Location) *Index {
	if loc == nil {
		loc = time.Local
	}
	idx := &Index{buckets: make(map[string][]*GameRecord), loc: loc}
	for _, g := range records {
		key := indexKey(g.Date.In(loc), g.League)
		idx.buckets[key] = append(idx.buckets[key], g)
		idx.count++
	}
	return idx
}

// Games returns the games for one (date, league) bucket.
func (idx *Index) Games(date time.Time, league picks.League) []*GameRecord {
	return idx.buckets[indexKey(date.In(idx.loc), league)]
}

// GamesOn returns every game on a date regardless of league, for picks
// whose league never resolved.
func (idx *Index) GamesOn(date time.Time) []*GameRecord {
	var out []*GameRecord
	day := date.In(idx.loc)
	for _, league := range []picks.League{picks.LeagueNFL, picks.LeagueNCAAF, picks.LeagueNBA, picks.LeagueNCAAB} {
		out = append(out, idx.buckets[indexKey(day, league)]...)
	}
	return out
}

// Len returns the number of indexed games.
func (idx *Index) Len() int {
	return idx.count
}

// gamesFile is the on-disk shape: either a bare array or {"games": [...]}.
type gamesFile struct {
	Games []*GameRecord `json:"games"`
}

// LoadRecords reads GameRecord JSON produced by a feed collaborator.
func LoadRecords(path string) ([]*GameRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading games file: %w", err)
	}

	var records []*GameRecord
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}

	var wrapped gamesFile
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("decoding games file %s: %w", path, err)
	}
	return wrapped.Games, nil
}

// LoadIndex reads one or more GameRecord files into a single index with
// dates bucketed in loc.
func LoadIndex(loc *time.Location, paths ...string) (*Index, error) {
	var all []*GameRecord
	for _, p := range paths {
		records, err := LoadRecords(p)
		if err != nil {
			return nil, err
		}
		all = append(all, records...)
	}
	return NewIndex(all, loc), nil
}
