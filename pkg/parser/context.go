// Package parser turns an ordered two-party chat transcript into structured
// picks. The proposer supplies intent and context; the confirmer supplies
// commitment (a stake) or rejection. Recognition is split along that line
// rather than forced through one grammar.
package parser

import (
	"time"

	"github.com/phenomenon0/gradebook/pkg/picks"
	"github.com/phenomenon0/gradebook/pkg/teams"
)

// ConversationContext is the mutable per-day state carried between
// messages: current league, current segment, announced matchups, and
// proposals awaiting confirmation. One parse run owns it exclusively.
type ConversationContext struct {
	Date    time.Time
	League  picks.League
	Segment picks.Segment
	LastTS  time.Time

	// Matchups announced today, most recent last.
	Matchups []*Matchup

	// Pending holds the latest proposer message's extracted picks. A new
	// proposer message replaces the whole set.
	Pending []*picks.Pick
}

// newContext starts a fresh day. Everything carried over from the previous
// day is gone: the conversation has moved on.
func newContext(date time.Time) *ConversationContext {
	return &ConversationContext{
		Date:    date,
		Segment: picks.SegmentFullGame,
	}
}

// PushMatchup records an announced matchup and adopts its league when the
// context has none.
func (c *ConversationContext) PushMatchup(m *Matchup) {
	if m == nil {
		return
	}
	c.Matchups = append(c.Matchups, m)
	if m.League != picks.LeagueUnknown {
		c.League = m.League
	}
}

// LatestMatchup returns the most recently announced matchup, or nil.
func (c *ConversationContext) LatestMatchup() *Matchup {
	if len(c.Matchups) == 0 {
		return nil
	}
	return c.Matchups[len(c.Matchups)-1]
}

// FindMatchup scans most-recent-first for a matchup containing the team.
func (c *ConversationContext) FindMatchup(team *teams.CanonicalTeam) *Matchup {
	if team == nil {
		return nil
	}
	for i := len(c.Matchups) - 1; i >= 0; i-- {
		if c.Matchups[i].Contains(team) {
			return c.Matchups[i]
		}
	}
	return nil
}
