package parser

import (
	"github.com/phenomenon0/gradebook/pkg/picks"
	"github.com/phenomenon0/gradebook/pkg/teams"
)

// Matchup is one announced "Away @ Home" pairing. Sides keep their raw
// text even when resolution fails so later fragments can still bind.
type Matchup struct {
	AwayRaw string
	HomeRaw string
	Away    *teams.CanonicalTeam
	Home    *teams.CanonicalTeam
	League  picks.League
}

// String renders "Away @ Home" with canonical names where available.
func (m *Matchup) String() string {
	away, home := m.AwayRaw, m.HomeRaw
	if m.Away != nil {
		away = m.Away.Name
	}
	if m.Home != nil {
		home = m.Home.Name
	}
	return away + " @ " + home
}

// Contains reports whether the team plays in this matchup.
func (m *Matchup) Contains(team *teams.CanonicalTeam) bool {
	return team != nil && (m.Away == team || m.Home == team)
}

// buildMatchup resolves both sides independently and settles on a league.
//
// League conflicts are best-effort heuristics, not guarantees: a context
// hint wins; when the sides resolve to different leagues, a side that is
// unambiguously college pulls the matchup to college; failing that, a side
// claimed by exactly one league decides; otherwise the hint stands.
func buildMatchup(reg *teams.Registry, awayRaw, homeRaw string, hint picks.League) *Matchup {
	m := &Matchup{AwayRaw: awayRaw, HomeRaw: homeRaw, League: hint}

	m.Away = reg.Resolve(awayRaw, hint)
	m.Home = reg.Resolve(homeRaw, hint)

	awayLeagues := reg.LeaguesFor(awayRaw)
	homeLeagues := reg.LeaguesFor(homeRaw)

	league := hint
	switch {
	case m.Away != nil && m.Home != nil && m.Away.League == m.Home.League:
		league = m.Away.League

	case soleCollege(awayLeagues) != picks.LeagueUnknown:
		league = soleCollege(awayLeagues)

	case soleCollege(homeLeagues) != picks.LeagueUnknown:
		league = soleCollege(homeLeagues)

	case len(awayLeagues) == 1:
		league = awayLeagues[0]

	case len(homeLeagues) == 1:
		league = homeLeagues[0]

	case m.Away != nil && hint == picks.LeagueUnknown:
		league = m.Away.League
	}

	if league != hint {
		// Re-resolve with the settled league so both sides agree.
		if t := reg.Resolve(awayRaw, league); t != nil {
			m.Away = t
		}
		if t := reg.Resolve(homeRaw, league); t != nil {
			m.Home = t
		}
	}
	m.League = league
	return m
}

// soleCollege returns the league when the set names exactly one league and
// it is a college league.
func soleCollege(leagues []picks.League) picks.League {
	if len(leagues) == 1 && leagues[0].IsCollege() {
		return leagues[0]
	}
	return picks.LeagueUnknown
}
