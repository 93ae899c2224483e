package grading

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/phenomenon0/gradebook/pkg/games"
	"github.com/phenomenon0/gradebook/pkg/picks"
	"github.com/phenomenon0/gradebook/pkg/teams"
)

// Ungradeable reasons, retained on the pick for the unsettled report.
const (
	ReasonNoGame         = "no matching game"
	ReasonGameNotFinal   = "game not final"
	ReasonNoSegmentData  = "segment data unavailable"
	ReasonUnresolvedSide = "team side unresolved"
)

// Engine grades picks against matched games. Grading never mutates a pick
// twice without recording the prior result (the pick keeps the audit trail).
type Engine struct {
	registry *teams.Registry
}

// NewEngine creates a grading engine backed by the given team registry.
func NewEngine(registry *teams.Registry) *Engine {
	return &Engine{registry: registry}
}

// Grade computes the outcome for a pick against its matched game and
// writes status, P&L, and reason onto the pick. A nil game means the
// matcher found nothing: the pick is Ungradeable, never defaulted.
func (e *Engine) Grade(p *picks.Pick, g *games.GameRecord) {
	if g == nil {
		p.SetResult(picks.StatusUngradeable, decimal.NullDecimal{}, ReasonNoGame)
		return
	}
	if !g.Final() {
		p.SetResult(picks.StatusUngradeable, decimal.NullDecimal{}, ReasonGameNotFinal)
		return
	}

	score := games.ExtractSegment(g, p.Segment)
	if score == nil {
		p.SetResult(picks.StatusUngradeable, decimal.NullDecimal{}, ReasonNoSegmentData)
		return
	}

	// Derive the win amount from odds when confirmation never priced it.
	if p.ToWin.IsZero() && p.Risk.IsPositive() && p.Odds != 0 {
		if toWin, err := ToWinFromRisk(p.Risk, p.Odds); err == nil {
			p.ToWin = toWin
		}
	}

	p.GameID = g.GameID
	status, reason := e.outcome(p, g, score)
	p.SetResult(status, Settle(status, p.Risk, p.ToWin), reason)
}

// outcome applies the bet-type comparison rules.
func (e *Engine) outcome(p *picks.Pick, g *games.GameRecord, s *games.SegmentScore) (picks.Status, string) {
	switch p.Type {
	case picks.BetTotal:
		return gradeTotal(float64(s.Total()), p.Line, p.Direction), ""

	case picks.BetTeamTotal:
		team, _, ok := e.sideScores(p, g, s)
		if !ok {
			return picks.StatusUngradeable, ReasonUnresolvedSide
		}
		return gradeTotal(float64(team), p.Line, p.Direction), ""

	case picks.BetSpread:
		team, opp, ok := e.sideScores(p, g, s)
		if !ok {
			return picks.StatusUngradeable, ReasonUnresolvedSide
		}
		return gradeSpread(team, opp, p.Line), ""

	case picks.BetMoneyline:
		team, opp, ok := e.sideScores(p, g, s)
		if !ok {
			return picks.StatusUngradeable, ReasonUnresolvedSide
		}
		// Moneyline is a spread at line zero; ties push.
		return gradeSpread(team, opp, 0), ""
	}

	return picks.StatusUngradeable, "unknown bet type"
}

// gradeSpread compares margin + line to zero.
func gradeSpread(teamScore, oppScore int, line float64) picks.Status {
	adjusted := float64(teamScore-oppScore) + line
	switch {
	case adjusted > 0:
		return picks.StatusWin
	case adjusted < 0:
		return picks.StatusLoss
	default:
		return picks.StatusPush
	}
}

// gradeTotal compares a points total to the line for the given direction.
func gradeTotal(total, line float64, dir picks.Direction) picks.Status {
	switch {
	case total == line:
		return picks.StatusPush
	case (total > line) == (dir == picks.DirectionOver):
		return picks.StatusWin
	default:
		return picks.StatusLoss
	}
}

// sideScores identifies which side of the game the pick's team is and
// returns (team score, opponent score). Identification tries canonical
// equality and short codes first, then case-insensitive containment in the
// full team name. Failure is Ungradeable, never a default guess.
func (e *Engine) sideScores(p *picks.Pick, g *games.GameRecord, s *games.SegmentScore) (int, int, bool) {
	if p.Team == "" {
		return 0, 0, false
	}

	if e.isSide(p, g.HomeTeam) {
		return s.Home, s.Away, true
	}
	if e.isSide(p, g.AwayTeam) {
		return s.Away, s.Home, true
	}
	return 0, 0, false
}

func (e *Engine) isSide(p *picks.Pick, gameTeam string) bool {
	if e.registry != nil {
		resolved := e.registry.Resolve(gameTeam, p.League)
		if resolved != nil {
			if strings.EqualFold(resolved.Name, p.Team) {
				return true
			}
			if p.ShortCode != "" && strings.EqualFold(resolved.ShortCode, p.ShortCode) {
				return true
			}
		}
	}

	n := teams.Normalize(p.Team)
	g := teams.Normalize(gameTeam)
	if n == "" || g == "" {
		return false
	}
	return strings.Contains(g, n) || strings.Contains(n, g)
}

// Settle converts a result into a signed settlement amount. Win pays
// +toWin, Loss costs -risk, Push is exactly zero. Pending and Ungradeable
// picks settle to null, never zero: zero would falsely imply a push.
func Settle(status picks.Status, risk, toWin decimal.Decimal) decimal.NullDecimal {
	switch status {
	case picks.StatusWin:
		return decimal.NullDecimal{Decimal: toWin, Valid: true}
	case picks.StatusLoss:
		return decimal.NullDecimal{Decimal: risk.Neg(), Valid: true}
	case picks.StatusPush:
		return decimal.NullDecimal{Decimal: decimal.Zero, Valid: true}
	default:
		return decimal.NullDecimal{}
	}
}
