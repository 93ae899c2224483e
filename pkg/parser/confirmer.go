package parser

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/phenomenon0/gradebook/pkg/chat"
	"github.com/phenomenon0/gradebook/pkg/grading"
	"github.com/phenomenon0/gradebook/pkg/picks"
)

// confirmShapes are tried in order against each stake-bearing fragment.
// A confirmed fragment is authoritative: whatever it states overrides the
// matching proposal, and whatever it omits is inherited from it.
var confirmShapes = []confirmShape{
	{"odds-on-line", confirmOddsOnLineRe, buildOddsOnLine},
	{"bare-odds", confirmBareOddsRe, buildBareOdds},
	{"pick-em", confirmPickEmRe, buildPickEm},
	{"moneyline", confirmMoneylineRe, buildMoneyline},
	{"total", confirmTotalRe, buildTotal},
	{"spread", confirmSpreadRe, buildSpread},
}

// handleConfirmer turns a confirmer message into zero or more confirmed
// picks. Fragments with a dollar amount are parsed independently through
// the confirm shapes; a bare affirmation confirms every pending proposal at
// the league default stake; a rejection clears them. Anything else is chat.
func (p *Parser) handleConfirmer(ctx *ConversationContext, msg chat.Message) []*picks.Pick {
	var out []*picks.Pick
	stakeSeen := false

	for _, frag := range splitFragments(msg.Text) {
		switch {
		case stakeMarkerRe.MatchString(frag):
			stakeSeen = true

			if m := affirmStakeRe.FindStringSubmatch(frag); m != nil {
				stake := mustDecimal(m[1])
				for _, pending := range ctx.Pending {
					out = append(out, p.confirm(pending, stake, pending.Odds))
				}
				// Spent: a second "In $25" must not re-confirm the
				// same proposals.
				ctx.Pending = nil
				continue
			}

			for _, shape := range confirmShapes {
				m := shape.re.FindStringSubmatch(frag)
				if m == nil {
					continue
				}
				if pick := shape.build(p, ctx, m, frag); pick != nil {
					out = append(out, pick)
				}
				break
			}

		case isRejection(frag):
			ctx.Pending = nil

		case isAffirmative(frag):
			for _, pending := range ctx.Pending {
				out = append(out, p.confirm(pending, p.cfg.DefaultStake(pending.League), pending.Odds))
			}
			ctx.Pending = nil
		}
	}

	// Once money changed hands the proposals are spent either way.
	if stakeSeen {
		ctx.Pending = nil
	}
	return out
}

// confirm finalizes a pick at the quoted stake (in units). The quoted
// number buys the to-win amount at negative odds and the risk amount at
// positive odds.
func (p *Parser) confirm(pick *picks.Pick, stakeUnits decimal.Decimal, odds int) *picks.Pick {
	if odds == 0 {
		odds = p.cfg.DefaultOdds
	}
	pick.Odds = odds

	risk, toWin, err := grading.StakeAmounts(stakeUnits.Mul(p.cfg.BaseUnit), odds)
	if err == nil {
		pick.Risk = risk
		pick.ToWin = toWin
	}
	return pick
}

// pendingFor finds the pending proposal for a given canonical team name,
// falling back to the most recent proposal when no name is given.
func pendingFor(ctx *ConversationContext, team string) *picks.Pick {
	if team != "" {
		for i := len(ctx.Pending) - 1; i >= 0; i-- {
			if ctx.Pending[i].Team == team {
				return ctx.Pending[i]
			}
		}
		return nil
	}
	if len(ctx.Pending) == 0 {
		return nil
	}
	return ctx.Pending[len(ctx.Pending)-1]
}

// inherit copies context a confirm fragment didn't state from the matching
// proposal.
func inherit(pick, pending *picks.Pick) {
	if pending == nil {
		return
	}
	pick.Segment = pending.Segment
	if pick.League == picks.LeagueUnknown {
		pick.League = pending.League
	}
	if pick.Matchup == "" {
		pick.Matchup = pending.Matchup
	}
}

// --- Shape builders ---

// "Lakers -6.5 -110 $50". A three-digit signed number with no explicit
// price is a price, not a spread: "Bills -130 $50" confirms the pending
// Bills bet at -130, or a Bills moneyline when nothing is pending.
func buildSpread(p *Parser, ctx *ConversationContext, m []string, frag string) *picks.Pick {
	line, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return nil
	}
	teamText := cleanTeamText(m[1])
	t := p.registry.Resolve(teamText, ctx.League)
	if t == nil {
		return nil
	}

	pick := p.newProposal(ctx, frag)
	p.bindTeam(ctx, pick, t)

	odds := 0
	if m[3] != "" {
		odds, _ = strconv.Atoi(m[3])
	}

	if (line >= 100 || line <= -100) && odds == 0 {
		odds = int(line)
		if pending := pendingFor(ctx, t.Name); pending != nil {
			pick.Type = pending.Type
			pick.Line = pending.Line
			pick.Direction = pending.Direction
			inherit(pick, pending)
		} else {
			pick.Type = picks.BetMoneyline
		}
	} else {
		pick.Type = picks.BetSpread
		pick.Line = line
		inherit(pick, pendingFor(ctx, t.Name))
	}

	return p.confirm(pick, mustDecimal(m[len(m)-1]), odds)
}

// "over 47 -115 $30", "Heat u 210.5 $20"
func buildTotal(p *Parser, ctx *ConversationContext, m []string, frag string) *picks.Pick {
	pick := p.newProposal(ctx, frag)
	pick.Direction = parseDirection(m[2])
	pick.Line, _ = strconv.ParseFloat(m[3], 64)
	pick.Type = picks.BetTotal

	if teamText := cleanTeamText(m[1]); teamText != "" {
		if t := p.registry.Resolve(teamText, ctx.League); t != nil {
			p.bindTeam(ctx, pick, t)
			pick.Type = picks.BetTeamTotal
		}
	}
	if pick.Type == picks.BetTotal {
		p.bindMatchupOnly(ctx, pick)
		inherit(pick, pendingTotal(ctx))
	} else {
		inherit(pick, pendingFor(ctx, pick.Team))
	}

	odds := 0
	if m[4] != "" {
		odds, _ = strconv.Atoi(m[4])
	}
	return p.confirm(pick, mustDecimal(m[5]), odds)
}

// "-115 $50": odds and stake only, everything else from the proposal.
func buildBareOdds(p *Parser, ctx *ConversationContext, m []string, frag string) *picks.Pick {
	pending := pendingFor(ctx, "")
	if pending == nil {
		return nil
	}
	odds, _ := strconv.Atoi(m[1])
	pending.SourceText = pending.SourceText + " | " + frag
	consumePending(ctx, pending)
	return p.confirm(pending, mustDecimal(m[2]), odds)
}

// "-110 on the +3 $50": price on a stated line, team from the proposal.
func buildOddsOnLine(p *Parser, ctx *ConversationContext, m []string, frag string) *picks.Pick {
	line, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return nil
	}
	pending := pendingLine(ctx, line)
	if pending == nil {
		pending = pendingFor(ctx, "")
	}
	if pending == nil {
		return nil
	}
	odds, _ := strconv.Atoi(m[1])
	pending.Line = line
	pending.SourceText = pending.SourceText + " | " + frag
	consumePending(ctx, pending)
	return p.confirm(pending, mustDecimal(m[3]), odds)
}

// "Bills pk $40": a spread at zero.
func buildPickEm(p *Parser, ctx *ConversationContext, m []string, frag string) *picks.Pick {
	pick := p.newProposal(ctx, frag)
	pick.Type = picks.BetSpread
	pick.Line = 0

	if teamText := cleanTeamText(m[1]); teamText != "" {
		if t := p.registry.Resolve(teamText, ctx.League); t != nil {
			p.bindTeam(ctx, pick, t)
		}
	}
	if !pick.Resolved {
		pending := pendingFor(ctx, "")
		if pending == nil {
			return nil
		}
		pick.Team = pending.Team
		pick.ShortCode = pending.ShortCode
		pick.Resolved = pending.Resolved
		inherit(pick, pending)
	} else {
		inherit(pick, pendingFor(ctx, pick.Team))
	}

	odds := 0
	if m[2] != "" {
		odds, _ = strconv.Atoi(m[2])
	}
	return p.confirm(pick, mustDecimal(m[3]), odds)
}

// "Bills ml $50", "Bills ml +150 $50"
func buildMoneyline(p *Parser, ctx *ConversationContext, m []string, frag string) *picks.Pick {
	teamText := cleanTeamText(m[1])
	t := p.registry.Resolve(teamText, ctx.League)
	if t == nil {
		return nil
	}

	pick := p.newProposal(ctx, frag)
	pick.Type = picks.BetMoneyline
	p.bindTeam(ctx, pick, t)
	inherit(pick, pendingFor(ctx, t.Name))

	odds := 0
	if m[2] != "" {
		odds, _ = strconv.Atoi(m[2])
	}
	return p.confirm(pick, mustDecimal(m[3]), odds)
}

// consumePending removes a confirmed proposal so a later fragment in the
// same message cannot confirm the same pick object again.
func consumePending(ctx *ConversationContext, pick *picks.Pick) {
	for i, pending := range ctx.Pending {
		if pending == pick {
			ctx.Pending = append(ctx.Pending[:i], ctx.Pending[i+1:]...)
			return
		}
	}
}

// pendingTotal returns the most recent pending game total, if any.
func pendingTotal(ctx *ConversationContext) *picks.Pick {
	for i := len(ctx.Pending) - 1; i >= 0; i-- {
		if ctx.Pending[i].Type == picks.BetTotal {
			return ctx.Pending[i]
		}
	}
	return nil
}

// pendingLine returns the most recent pending proposal carrying this line.
func pendingLine(ctx *ConversationContext, line float64) *picks.Pick {
	for i := len(ctx.Pending) - 1; i >= 0; i-- {
		if ctx.Pending[i].Line == line {
			return ctx.Pending[i]
		}
	}
	return nil
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
