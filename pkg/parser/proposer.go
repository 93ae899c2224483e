package parser

import (
	"strconv"
	"strings"

	"github.com/phenomenon0/gradebook/pkg/chat"
	"github.com/phenomenon0/gradebook/pkg/picks"
	"github.com/phenomenon0/gradebook/pkg/teams"
)

// handleProposer splits the message into statements, applies each one's
// context side effects, then extracts candidate picks. Any extracted
// candidates replace the previous pending set: a new proposer message
// supersedes unconfirmed proposals.
func (p *Parser) handleProposer(ctx *ConversationContext, msg chat.Message) {
	var candidates []*picks.Pick

	for _, frag := range splitFragments(msg.Text) {
		p.applyContext(ctx, frag)
		candidates = append(candidates, p.extractProposals(ctx, frag)...)
	}

	if len(candidates) > 0 {
		ctx.Pending = candidates
	}
}

// applyContext updates segment, league, and matchup state from one
// fragment. These are side effects: they fire whether or not the fragment
// also contains a bet.
func (p *Parser) applyContext(ctx *ConversationContext, frag string) {
	for _, tok := range segmentTokens {
		if tok.re.MatchString(frag) {
			ctx.Segment = tok.seg
			break
		}
	}

	for _, tok := range leagueTokens {
		if tok.re.MatchString(frag) {
			ctx.League = tok.league
			break
		}
	}

	if !hasDigit.MatchString(frag) {
		if m := matchupRe.FindStringSubmatch(frag); m != nil {
			away := cleanTeamText(m[1])
			home := cleanTeamText(m[2])
			if away != "" && home != "" {
				ctx.PushMatchup(buildMatchup(p.registry, away, home, ctx.League))
			}
		}
	}
}

// extractProposals tries the pick shapes in precedence order: total,
// moneyline, spread. A team already captured as a moneyline in this
// fragment is skipped by the spread shape, so "Bills ml -130" doesn't also
// become a 130-point spread.
func (p *Parser) extractProposals(ctx *ConversationContext, frag string) []*picks.Pick {
	var out []*picks.Pick
	mlTeams := make(map[string]bool)

	if m := proposalTotalRe.FindStringSubmatch(frag); m != nil {
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
		}
		out = append(out, pick)
	}

	for _, m := range proposalMoneylineRe.FindAllStringSubmatch(frag, -1) {
		teamText := cleanTeamText(m[1])
		t := p.registry.Resolve(teamText, ctx.League)
		if t == nil {
			continue
		}
		pick := p.newProposal(ctx, frag)
		pick.Type = picks.BetMoneyline
		p.bindTeam(ctx, pick, t)
		if m[2] != "" {
			pick.Odds, _ = strconv.Atoi(m[2])
		}
		mlTeams[t.Name] = true
		out = append(out, pick)
	}

	for _, m := range proposalSpreadRe.FindAllStringSubmatch(frag, -1) {
		line, err := strconv.ParseFloat(m[2], 64)
		if err != nil || line >= 100 || line <= -100 {
			continue // three-digit signed numbers are prices, not spreads
		}
		teamText := cleanTeamText(m[1])
		t := p.registry.Resolve(teamText, ctx.League)
		if t == nil || mlTeams[t.Name] {
			continue
		}
		pick := p.newProposal(ctx, frag)
		pick.Type = picks.BetSpread
		pick.Line = line
		p.bindTeam(ctx, pick, t)
		out = append(out, pick)
	}

	return out
}

// newProposal starts a pick carrying the current context.
func (p *Parser) newProposal(ctx *ConversationContext, frag string) *picks.Pick {
	pick := picks.New(ctx.Date)
	pick.League = ctx.League
	pick.Segment = ctx.Segment
	pick.SourceText = strings.TrimSpace(frag)
	return pick
}

// bindTeam attaches a resolved team and fills matchup/league context.
func (p *Parser) bindTeam(ctx *ConversationContext, pick *picks.Pick, t *teams.CanonicalTeam) {
	pick.Team = t.Name
	pick.ShortCode = t.ShortCode
	pick.Resolved = true
	if pick.League == picks.LeagueUnknown {
		pick.League = t.League
	}
	if mu := ctx.FindMatchup(t); mu != nil {
		pick.Matchup = mu.String()
	}
}

// bindMatchupOnly fills the matchup for team-less totals from context.
func (p *Parser) bindMatchupOnly(ctx *ConversationContext, pick *picks.Pick) {
	if mu := ctx.LatestMatchup(); mu != nil {
		pick.Matchup = mu.String()
		if pick.League == picks.LeagueUnknown {
			pick.League = mu.League
		}
	}
}

func parseDirection(s string) picks.Direction {
	switch strings.ToLower(s) {
	case "under", "u":
		return picks.DirectionUnder
	default:
		return picks.DirectionOver
	}
}
