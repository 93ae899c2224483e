package games

import (
	"strings"

	"github.com/phenomenon0/gradebook/pkg/picks"
	"github.com/phenomenon0/gradebook/pkg/teams"
)

// Name-overlap scoring channels. A wrong grade is worse than no grade, so
// anything ambiguous or under threshold is a non-match.
const (
	scoreExact       = 100
	scoreSubstring   = 90 // game team name contains the candidate
	scoreSubstringRe = 80 // candidate contains the game team name
	scoreAliasXref   = 90 // both resolve to the same canonical team
	scoreTokenBase   = 40
	scoreTokenPer    = 10

	// DefaultThreshold is the minimum accepted match score.
	DefaultThreshold = 50
)

// Matcher binds a resolved pick to at most one game record.
type Matcher struct {
	registry  *teams.Registry
	threshold int
}

// NewMatcher creates a matcher. threshold <= 0 selects DefaultThreshold.
func NewMatcher(registry *teams.Registry, threshold int) *Matcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Matcher{registry: registry, threshold: threshold}
}

// MatchResult carries the chosen game and the score that won it.
type MatchResult struct {
	Game  *GameRecord
	Score int
}

// Match returns the unique best-scoring candidate game, or nil when the
// best score is under threshold or tied between two games.
func (m *Matcher) Match(p *picks.Pick, candidates []*GameRecord) *MatchResult {
	names := m.candidateNames(p)
	if len(names) == 0 || len(candidates) == 0 {
		return nil
	}

	var best, second *MatchResult
	for _, g := range candidates {
		score := 0
		for _, name := range names {
			if s := m.scoreName(name, g.HomeTeam, p.League); s > score {
				score = s
			}
			if s := m.scoreName(name, g.AwayTeam, p.League); s > score {
				score = s
			}
		}
		if best == nil || score > best.Score {
			second = best
			best = &MatchResult{Game: g, Score: score}
		} else if second == nil || score > second.Score {
			second = &MatchResult{Game: g, Score: score}
		}
	}

	if best == nil || best.Score < m.threshold {
		return nil
	}
	if second != nil && second.Score == best.Score {
		return nil // ambiguous
	}
	return best
}

// candidateNames lists the names worth comparing against game teams, in
// priority order: the resolved team, both matchup sides, then a team name
// scraped from the raw text when no matchup is bound.
func (m *Matcher) candidateNames(p *picks.Pick) []string {
	var names []string
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		for _, have := range names {
			if strings.EqualFold(have, s) {
				return
			}
		}
		names = append(names, s)
	}

	add(p.Team)
	if p.Matchup != "" {
		for _, side := range splitMatchup(p.Matchup) {
			add(side)
		}
	}
	if p.Matchup == "" && p.Team == "" {
		add(scrapeTeamName(p.SourceText))
	}
	return names
}

// scoreName scores one candidate name against one game team name.
func (m *Matcher) scoreName(name, gameTeam string, hint picks.League) int {
	n := teams.Normalize(name)
	g := teams.Normalize(gameTeam)
	if n == "" || g == "" {
		return 0
	}

	if n == g {
		return scoreExact
	}

	score := 0
	if strings.Contains(g, n) {
		score = scoreSubstring
	} else if strings.Contains(n, g) {
		score = scoreSubstringRe
	}

	if m.registry != nil {
		a := m.registry.Resolve(name, hint)
		b := m.registry.Resolve(gameTeam, hint)
		if a != nil && a == b && scoreAliasXref > score {
			score = scoreAliasXref
		}
	}

	if overlap := tokenOverlap(n, g); overlap > 0 {
		if s := scoreTokenBase + scoreTokenPer*overlap; s > score {
			score = s
		}
	}

	return score
}

func tokenOverlap(a, b string) int {
	bTokens := make(map[string]bool)
	for _, tok := range strings.Fields(b) {
		if len(tok) >= 3 {
			bTokens[tok] = true
		}
	}
	count := 0
	for _, tok := range strings.Fields(a) {
		if len(tok) >= 3 && bTokens[tok] {
			count++
		}
	}
	return count
}

// splitMatchup breaks "Away @ Home" (or "A vs B" / "A at B") into sides.
func splitMatchup(s string) []string {
	for _, sep := range []string{" @ ", " at ", " vs. ", " vs ", " v ", "/"} {
		if idx := strings.Index(strings.ToLower(s), sep); idx > 0 {
			return []string{
				strings.TrimSpace(s[:idx]),
				strings.TrimSpace(s[idx+len(sep):]),
			}
		}
	}
	return []string{strings.TrimSpace(s)}
}

// scrapeTeamName pulls a plausible team reference out of raw pick text:
// the leading run of letters before any number or betting token.
func scrapeTeamName(text string) string {
	fields := strings.Fields(text)
	var kept []string
	for _, f := range fields {
		lower := strings.ToLower(strings.Trim(f, ".,!?"))
		if lower == "ml" || lower == "over" || lower == "under" {
			break
		}
		if strings.IndexFunc(f, func(r rune) bool { return r >= '0' && r <= '9' }) >= 0 {
			break
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}
