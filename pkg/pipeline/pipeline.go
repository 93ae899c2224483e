// Package pipeline runs the full extract-match-grade flow over one
// transcript and game index.
package pipeline

import (
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/phenomenon0/gradebook/pkg/chat"
	"github.com/phenomenon0/gradebook/pkg/config"
	"github.com/phenomenon0/gradebook/pkg/export"
	"github.com/phenomenon0/gradebook/pkg/games"
	"github.com/phenomenon0/gradebook/pkg/grading"
	"github.com/phenomenon0/gradebook/pkg/metrics"
	"github.com/phenomenon0/gradebook/pkg/parser"
	"github.com/phenomenon0/gradebook/pkg/picks"
	"github.com/phenomenon0/gradebook/pkg/teams"
)

// Pipeline wires the parser, matcher, and grading engine together.
type Pipeline struct {
	cfg      *config.Config
	registry *teams.Registry
	parser   *parser.Parser
	matcher  *games.Matcher
	engine   *grading.Engine
	metrics  *metrics.PipelineMetrics

	// Optional observers, invoked synchronously during Run.
	OnPick  func(*picks.Pick)
	OnGrade func(*picks.Pick)
}

// Result is the outcome of one pipeline run.
type Result struct {
	Picks    []*picks.Pick
	Summary  *export.Summary
	Duration time.Duration
}

// New builds a pipeline from config. The registry logs alias collisions
// once at startup so ambiguous nicknames are visible, not silent.
func New(cfg *config.Config, pm *metrics.PipelineMetrics) *Pipeline {
	registry := teams.NewRegistry(
		teams.WithLeaguePriority(cfg.LeaguePriorityList()),
		teams.WithExtraAliases(cfg.ExtraAliases),
		teams.WithCollisionFunc(func(alias string, candidates []*teams.CanonicalTeam) {
			names := make([]string, 0, len(candidates))
			for _, t := range candidates {
				names = append(names, t.Name+"/"+string(t.League))
			}
			log.Printf("[TEAMS] Alias %q is ambiguous across %v", alias, names)
		}),
	)

	p := parser.New(registry, parser.Config{
		DefaultOdds:  cfg.DefaultOdds,
		BaseUnit:     cfg.BaseUnitDecimal(),
		IdleReset:    cfg.IdleReset(),
		DefaultStake: cfg.DefaultStake,
	})

	return &Pipeline{
		cfg:      cfg,
		registry: registry,
		parser:   p,
		matcher:  games.NewMatcher(registry, cfg.MatchAcceptanceThreshold),
		engine:   grading.NewEngine(registry),
		metrics:  pm,
	}
}

// Registry exposes the team registry for collaborators (feeds, tools).
func (pl *Pipeline) Registry() *teams.Registry {
	return pl.registry
}

// Run extracts picks from the transcript, matches each against the game
// index, and grades what it can. Unmatched and unfinished games yield
// Ungradeable picks, never errors.
func (pl *Pipeline) Run(msgs []chat.Message, index *games.Index) *Result {
	start := time.Now()

	if pl.metrics != nil {
		for _, m := range msgs {
			pl.metrics.RecordMessage(m.Role.String())
		}
	}

	extracted := pl.parser.Parse(msgs)
	for _, p := range extracted {
		if pl.metrics != nil {
			pl.metrics.RecordPick(string(p.League), p.Type.String())
			if p.Resolved {
				pl.metrics.RecordResolution("resolved")
			} else {
				pl.metrics.RecordResolution("unresolved")
			}
		}
		if pl.OnPick != nil {
			pl.OnPick(p)
		}
	}

	for _, p := range extracted {
		pl.gradeOne(p, index)
		if pl.OnGrade != nil {
			pl.OnGrade(p)
		}
	}

	result := &Result{
		Picks:    extracted,
		Summary:  export.Summarize(extracted),
		Duration: time.Since(start),
	}

	if pl.metrics != nil {
		base := pl.cfg.BaseUnitDecimal()
		for _, line := range result.Summary.ByLeague {
			units := decimalUnits(line.Net, base)
			pl.metrics.UpdateNetUnits(string(line.League), units)
		}
		pl.metrics.RecordRun("ok", result.Duration.Seconds())
	}
	return result
}

// gradeOne matches and grades a single pick.
func (pl *Pipeline) gradeOne(p *picks.Pick, index *games.Index) {
	var candidates []*games.GameRecord
	if p.League != picks.LeagueUnknown {
		candidates = index.Games(p.Date, p.League)
	} else {
		candidates = index.GamesOn(p.Date)
	}

	match := pl.matcher.Match(p, candidates)
	if match != nil && pl.metrics != nil {
		pl.metrics.RecordMatch(string(p.League), match.Score)
	}

	var game *games.GameRecord
	if match != nil {
		game = match.Game
	}
	pl.engine.Grade(p, game)

	if pl.metrics != nil {
		stake := decimalUnits(p.Risk, pl.cfg.BaseUnitDecimal())
		pl.metrics.RecordGrade(string(p.League), p.Status.String(), stake)
		if p.Status == picks.StatusUngradeable {
			pl.metrics.RecordUngradeable(p.GradeReason)
		}
	}
}

// decimalUnits converts a dollar amount to config units for metrics.
func decimalUnits(amount, base decimal.Decimal) float64 {
	if base.IsZero() {
		return 0
	}
	return metrics.DecimalToFloat64(amount.Div(base))
}
