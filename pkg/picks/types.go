// Package picks defines the wager records extracted from chat transcripts
// and the enums that classify them.
package picks

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// League identifies one of the supported leagues.
type League string

const (
	LeagueNFL     League = "nfl"
	LeagueNCAAF   League = "ncaaf"
	LeagueNBA     League = "nba"
	LeagueNCAAB   League = "ncaab"
	LeagueUnknown League = ""
)

// IsCollege returns true for the college leagues.
func (l League) IsCollege() bool {
	return l == LeagueNCAAF || l == LeagueNCAAB
}

// IsBasketball returns true for the basketball leagues.
func (l League) IsBasketball() bool {
	return l == LeagueNBA || l == LeagueNCAAB
}

// IsFootball returns true for the American football leagues.
func (l League) IsFootball() bool {
	return l == LeagueNFL || l == LeagueNCAAF
}

// Segment is the portion of a game a bet applies to.
type Segment int

const (
	SegmentFullGame Segment = iota
	SegmentFirstHalf
	SegmentSecondHalf
	SegmentQ1
	SegmentQ2
	SegmentQ3
	SegmentQ4
)

func (s Segment) String() string {
	switch s {
	case SegmentFirstHalf:
		return "1H"
	case SegmentSecondHalf:
		return "2H"
	case SegmentQ1:
		return "1Q"
	case SegmentQ2:
		return "2Q"
	case SegmentQ3:
		return "3Q"
	case SegmentQ4:
		return "4Q"
	default:
		return "FG"
	}
}

// IsQuarter returns true for single-quarter segments.
func (s Segment) IsQuarter() bool {
	return s >= SegmentQ1 && s <= SegmentQ4
}

// Quarter returns the 1-based quarter number, or 0 for non-quarter segments.
func (s Segment) Quarter() int {
	if !s.IsQuarter() {
		return 0
	}
	return int(s-SegmentQ1) + 1
}

// BetType is the closed set of wager kinds the grader understands.
type BetType int

const (
	BetSpread BetType = iota
	BetMoneyline
	BetTotal
	BetTeamTotal
)

func (t BetType) String() string {
	switch t {
	case BetSpread:
		return "SPREAD"
	case BetMoneyline:
		return "MONEYLINE"
	case BetTotal:
		return "TOTAL"
	case BetTeamTotal:
		return "TEAM_TOTAL"
	default:
		return "UNKNOWN"
	}
}

// Direction is the over/under side of a total.
type Direction int

const (
	DirectionOver Direction = iota
	DirectionUnder
)

func (d Direction) String() string {
	if d == DirectionUnder {
		return "UNDER"
	}
	return "OVER"
}

// Status is the grading outcome of a pick. Ungradeable is a terminal,
// first-class outcome, not an error.
type Status int

const (
	StatusPending Status = iota
	StatusWin
	StatusLoss
	StatusPush
	StatusUngradeable
)

func (s Status) String() string {
	switch s {
	case StatusWin:
		return "WIN"
	case StatusLoss:
		return "LOSS"
	case StatusPush:
		return "PUSH"
	case StatusUngradeable:
		return "UNGRADEABLE"
	default:
		return "PENDING"
	}
}

// Settled returns true once the pick has a Win/Loss/Push result.
func (s Status) Settled() bool {
	return s == StatusWin || s == StatusLoss || s == StatusPush
}

// Pick is a single confirmed wager extracted from a transcript.
//
// Risk and ToWin are both populated at confirmation time, but only one of
// them is authoritative: the confirmed stake is the to-win amount when the
// odds are negative and the risk amount when they are positive.
type Pick struct {
	ID      string    `json:"id"`
	Date    time.Time `json:"date"` // calendar date in the conversation's local zone
	League  League    `json:"league,omitempty"`
	Matchup string    `json:"matchup,omitempty"` // "Away @ Home" when known
	Segment Segment   `json:"segment"`

	Type      BetType   `json:"bet_type"`
	Team      string    `json:"team,omitempty"` // canonical name when resolved, raw otherwise
	ShortCode string    `json:"short_code,omitempty"`
	Resolved  bool      `json:"resolved"` // whether Team is a canonical identity
	Line      float64   `json:"line"`
	Direction Direction `json:"direction"` // totals and team totals only

	Odds  int             `json:"odds"`
	Risk  decimal.Decimal `json:"risk"`
	ToWin decimal.Decimal `json:"to_win"`

	Status Status              `json:"status"`
	PnL    decimal.NullDecimal `json:"pnl"`
	GameID string              `json:"game_id,omitempty"`

	// Audit trail for re-grading. A second grading pass moves the prior
	// result here instead of discarding it.
	PreviousStatus *Status             `json:"previous_status,omitempty"`
	PreviousPnL    decimal.NullDecimal `json:"previous_pnl,omitempty"`

	SourceText  string `json:"source_text"`
	GradeReason string `json:"grade_reason,omitempty"` // why a pick is ungradeable
}

// New returns a pending pick for the given date with a fresh ID.
func New(date time.Time) *Pick {
	return &Pick{
		ID:     uuid.New().String(),
		Date:   date,
		Status: StatusPending,
	}
}

// SetResult records a grading outcome. If the pick was already graded, the
// prior status and P&L move into the audit fields first.
func (p *Pick) SetResult(status Status, pnl decimal.NullDecimal, reason string) {
	if p.Status != StatusPending {
		prev := p.Status
		p.PreviousStatus = &prev
		p.PreviousPnL = p.PnL
	}
	p.Status = status
	p.PnL = pnl
	p.GradeReason = reason
}

// Units returns the quoted stake in config units (risk for positive odds,
// to-win for negative), which is what the confirmer actually typed.
func (p *Pick) Units(baseUnit decimal.Decimal) decimal.Decimal {
	if baseUnit.IsZero() {
		return decimal.Zero
	}
	if p.Odds < 0 {
		return p.ToWin.Div(baseUnit)
	}
	return p.Risk.Div(baseUnit)
}
