package parser

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/phenomenon0/gradebook/pkg/chat"
	"github.com/phenomenon0/gradebook/pkg/picks"
	"github.com/phenomenon0/gradebook/pkg/teams"
)

// Config carries the parser's tunables.
type Config struct {
	// DefaultOdds is assumed when a confirmed bet states no price.
	DefaultOdds int

	// BaseUnit is the dollar value of one quoted stake unit.
	BaseUnit decimal.Decimal

	// IdleReset wipes conversation context after this much silence.
	IdleReset time.Duration

	// DefaultStake returns the per-league stake (in units) used when a
	// confirmer acknowledges without an amount.
	DefaultStake func(picks.League) decimal.Decimal
}

// DefaultConfig returns the parser defaults: -110 pricing, $1000 units,
// a four-hour idle reset, and a flat 50-unit default stake.
func DefaultConfig() Config {
	return Config{
		DefaultOdds: -110,
		BaseUnit:    decimal.NewFromInt(1000),
		IdleReset:   4 * time.Hour,
		DefaultStake: func(picks.League) decimal.Decimal {
			return decimal.NewFromInt(50)
		},
	}
}

// Parser extracts picks from one transcript. Each Parse call owns a fresh
// ConversationContext; parsers never share context across runs.
type Parser struct {
	registry *teams.Registry
	cfg      Config
}

// New creates a parser over the given registry.
func New(registry *teams.Registry, cfg Config) *Parser {
	if cfg.DefaultOdds == 0 {
		cfg.DefaultOdds = -110
	}
	if cfg.BaseUnit.IsZero() {
		cfg.BaseUnit = decimal.NewFromInt(1000)
	}
	if cfg.IdleReset == 0 {
		cfg.IdleReset = 4 * time.Hour
	}
	if cfg.DefaultStake == nil {
		cfg.DefaultStake = func(picks.League) decimal.Decimal { return decimal.NewFromInt(50) }
	}
	return &Parser{registry: registry, cfg: cfg}
}

// Parse walks the message stream in order and returns every confirmed
// pick, all still StatusPending (grading happens downstream). Proposals
// left unconfirmed at end of stream are dropped; they were never bets.
// A fragment that matches no shape is silently skipped; not every line of
// chat is a wager.
func (p *Parser) Parse(msgs []chat.Message) []*picks.Pick {
	var out []*picks.Pick
	var ctx *ConversationContext

	for _, msg := range msgs {
		day := dateOf(msg.Timestamp)

		switch {
		case ctx == nil:
			ctx = newContext(day)
		case !ctx.Date.Equal(day):
			ctx = newContext(day)
		case !ctx.LastTS.IsZero() && msg.Timestamp.Sub(ctx.LastTS) > p.cfg.IdleReset:
			// Long silence: the conversation has moved on.
			ctx = newContext(day)
		}

		switch msg.Role {
		case chat.RoleProposer:
			p.handleProposer(ctx, msg)
		case chat.RoleConfirmer:
			out = append(out, p.handleConfirmer(ctx, msg)...)
		}

		ctx.LastTS = msg.Timestamp
	}

	return out
}

// dateOf truncates a local timestamp to its calendar day.
func dateOf(ts time.Time) time.Time {
	y, m, d := ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, ts.Location())
}
